// Package export renders a finished terrain grid into an image.
//
// What:
//
//   - Palette pairs a height gradient (for scalar grids) with one
//     gradient per terrain label (for classified grids); gradients are
//     built from HTML color stops via colorgrad.
//   - Image walks the grid in row-major order and produces an RGBA
//     image of identical dimensions: scalar cells are mapped through
//     the height gradient across the grid's observed range, labeled
//     cells through their label's gradient.
//   - WritePNG / SavePNG encode the image.
//
// Why:
//
//   - The generation core makes no assumption about output format or
//     color mapping; this package is the consumer side of that
//     boundary, kept apart so renders can change freely.
//
// Errors:
//
//   - ErrNoGradient: a labeled cell's terrain type has no gradient in
//     the palette.
//   - ErrBadGradient: a palette stop list failed to parse.
package export
