// Package shadegrid synthesizes grayscale "checkerboard of shades" textures.
//
// # Overview
//
// A texture is a grid of squares on a white background. Each square takes
// one shade from a small discrete distribution, the interior is perturbed
// by several rounds of probability-gated integer noise, and a weighted-mean
// convolution smooths the result into a second image.
//
// # Quick Start
//
//	cfg := shadegrid.DefaultConfig()
//	p, err := shadegrid.NewPipeline(cfg, shadegrid.NewRandomSource(seed))
//	if err != nil {
//		return err
//	}
//	res, err := p.Run()
//	if err != nil {
//		return err
//	}
//	return res.Encode(shadegrid.FileEncoder{Dir: "."})
//
// This writes texture.png (painted and noised) and filtered_texture.png.
//
// # Stages
//
// The pipeline always runs in the same order and each stage either runs
// completely or is skipped by configuration:
//
//  1. Paint: squares of SquareSize pixels, separated by GapSize, inside a
//     BorderSize margin. One random draw per square picks the first level
//     whose cumulative bound is >= the draw.
//  2. Noise: Rounds passes over the interior. Round r uses range
//     StartRange*2^r and probability StartProbability/2^r. A bias that
//     would leave [0, 255] is dropped, not saturated.
//  3. Filter: the kernel is normalized once; interior pixels become the
//     weighted mean of their footprint, reading either the unfiltered
//     samples or the partially filtered output.
//
// # Determinism
//
// Output depends only on the configuration and the stream of random draws.
// Seeding the RandomSource with the same value reproduces a texture.
//
// # Coordinate System
//
// Canvases are addressed by (row, col) with the origin at the top-left.
package shadegrid

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
