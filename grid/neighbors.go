package grid

// neighborOffsets8 is the fixed 8-neighborhood scan order used by
// steepest-descent style passes: N, NE, E, SE, S, SW, W, NW.
// The order is part of the tie-break contract and must not change.
var neighborOffsets8 = [8][2]int{
	{0, -1},  // N
	{1, -1},  // NE
	{1, 0},   // E
	{1, 1},   // SE
	{0, 1},   // S
	{-1, 1},  // SW
	{-1, 0},  // W
	{-1, -1}, // NW
}

// NeighborOffsets8 returns the fixed N,NE,E,SE,S,SW,W,NW offset table.
// Should be used by all 8-neighborhood traversals so tie-breaking stays
// deterministic. Complexity: O(1).
func NeighborOffsets8() [8][2]int {
	return neighborOffsets8
}

// Neighbors returns the in-bounds coordinates within Chebyshev radius r
// of (x,y), excluding (x,y) itself, in row-major scan order. Border
// cells get fewer neighbors; coordinates are clamped at the edge, never
// wrapped or mirrored.
// Stage 1 (Validate): bounds-check the center and radius.
// Stage 2 (Execute): scan the clamped (2r+1)² window.
// Returns ErrOutOfBounds if (x,y) is outside the grid.
// Complexity: O(r²) time and memory.
func (g *Grid) Neighbors(x, y, radius int) ([]Coord, error) {
	if !g.InBounds(x, y) {
		return nil, gridErrorf("Neighbors", x, y, ErrOutOfBounds)
	}
	if radius < 0 {
		return nil, gridErrorf("Neighbors", x, y, ErrInvalidDimension)
	}
	if radius == 0 {
		return nil, nil
	}

	// Clamp the window at the borders.
	x0, x1 := x-radius, x+radius
	y0, y1 := y-radius, y+radius
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 >= g.w {
		x1 = g.w - 1
	}
	if y1 >= g.h {
		y1 = g.h - 1
	}

	out := make([]Coord, 0, (x1-x0+1)*(y1-y0+1)-1)
	for ny := y0; ny <= y1; ny++ {
		for nx := x0; nx <= x1; nx++ {
			if nx == x && ny == y {
				continue
			}
			out = append(out, Coord{X: nx, Y: ny})
		}
	}

	return out, nil
}
