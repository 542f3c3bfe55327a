package filter

import (
	"github.com/gogpu/shadegrid/internal/image"
)

// Mode selects which buffer the convolution reads neighbors from.
type Mode int

const (
	// ModeOutOfPlace reads neighbors from the unfiltered source.
	ModeOutOfPlace Mode = iota

	// ModeInPlace reads neighbors from the output being written.
	ModeInPlace
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeOutOfPlace:
		return "OutOfPlace"
	case ModeInPlace:
		return "InPlace"
	default:
		return "Unknown"
	}
}

// Apply filters src with k and returns a new canvas. src is never modified;
// the output starts as a copy of src so border pixels carry over unchanged.
func Apply(src *image.Canvas, k *Kernel, border int, mode Mode) *image.Canvas {
	dst := src.Clone()
	read := src
	if mode == ModeInPlace {
		read = dst
	}
	Convolve(read, dst, k, border)
	return dst
}

// Convolve writes the weighted mean of each interior footprint of read into
// write, visiting rows top to bottom and columns left to right. read and
// write may be the same canvas; then later pixels see earlier results.
//
// Both canvases must have the same dimensions and border must be at least
// k.Radius().
func Convolve(read, write *image.Canvas, k *Kernel, border int) {
	width := read.Width()
	height := read.Height()
	radius := k.Radius()
	kw := k.Width()

	raw := k.m.RawMatrix()
	src := read.Data()
	dst := write.Data()

	for row := border; row < height-border; row++ {
		for col := border; col < width-border; col++ {
			var shade float64
			for kr := 0; kr < kw; kr++ {
				srcRow := (row - radius + kr) * width
				weights := raw.Data[kr*raw.Stride : kr*raw.Stride+kw]
				for kc, w := range weights {
					shade += w * float64(src[srcRow+col-radius+kc])
				}
			}
			dst[row*width+col] = clampUint8(shade)
		}
	}
}

// clampUint8 clamps to [0, 255] and rounds to nearest.
func clampUint8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
