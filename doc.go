// Package terragrid is a procedural terrain toolkit: seeded noise,
// composable grid operations, and a deterministic pipeline that turns a
// handful of parameters into a classified heightmap.
//
// 🚀 What is terragrid?
//
//	A small, deterministic library that brings together:
//		• Grid: a flat row-major 2D buffer of scalar or labeled cells
//		• NoiseSource: seeded fractal simplex/perlin sampling
//		• Operations: NoiseFill, Smooth, Normalize, Classify, Combine, Erode
//		• Pipeline: ordered, atomic, replayable operation chains
//		• terraconf: declarative YAML documents → runnable pipelines
//		• export: gradient palettes and PNG rendering
//
// ✨ Why choose terragrid?
//
//   - Reproducible – same seed and chain, same map, byte for byte
//   - Composable – operations are values; chains are data
//   - Inspectable – sentinel errors with errors.Is at every boundary
//
// Under the hood, everything is organized under flat subpackages:
//
//	grid/      — the 2D cell container and neighbor queries
//	noise/     — seeded fractal noise sources (simplex, perlin)
//	ops/       — the six terrain operations
//	pipeline/  — chain assembly and execution
//	terraconf/ — YAML loading, validation, pipeline building
//	export/    — palettes, image rendering, PNG output
//	cmd/       — the terragrid command-line renderer
//
// Start with grid.New, wrap a noise.Source in ops.NewNoiseFill, and
// hand the chain to pipeline.New. See each subpackage's doc.go for the
// full contract.
package terragrid
