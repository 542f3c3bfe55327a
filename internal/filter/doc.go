// Package filter provides the weighted-mean convolution used to smooth the
// noised texture.
//
// A Kernel is a square matrix of non-negative weights with odd width. It is
// normalized once at construction so every filtered pixel is a true weighted
// mean of its footprint.
//
// Convolution only touches pixels at least border pixels from each edge;
// border pixels in the output are copied unchanged from the input. Callers
// keep border >= kernel radius so footprints never leave the canvas.
//
// Two addressing modes share one algorithm:
//   - ModeOutOfPlace reads only the unfiltered samples
//   - ModeInPlace reads the output buffer, so pixels later in row-major
//     order see neighbors that were already filtered
package filter
