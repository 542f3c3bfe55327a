// Package image provides the single-channel pixel buffer used by shadegrid.
//
// A Canvas stores 8-bit grayscale samples row by row with no padding, so the
// sample at (row, col) lives at data[row*width+col]. Stages address pixels by
// (row, col) to match how the texture is described; the standard library
// view returned by Gray uses the usual (x, y) = (col, row) convention.
package image

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ErrInvalidDimensions is returned when width or height is non-positive.
var ErrInvalidDimensions = errors.New("image: invalid dimensions")

// Canvas is a rectangular 8-bit grayscale buffer.
//
// Thread safety: Canvas has no internal locking. The pipeline owns exactly
// one writer per buffer at any time.
type Canvas struct {
	data   []byte
	width  int
	height int
}

// New creates a zeroed canvas with the given dimensions.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Canvas{
		data:   make([]byte, width*height),
		width:  width,
		height: height,
	}, nil
}

// Clone creates a deep copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	data := make([]byte, len(c.data))
	copy(data, c.data)
	return &Canvas{
		data:   data,
		width:  c.width,
		height: c.height,
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Data returns the raw samples. Writes through the slice modify the canvas.
func (c *Canvas) Data() []byte {
	return c.data
}

// Row returns the samples of one row, or nil if row is out of bounds.
func (c *Canvas) Row(row int) []byte {
	if row < 0 || row >= c.height {
		return nil
	}
	start := row * c.width
	return c.data[start : start+c.width]
}

// At returns the shade at (row, col). Out-of-bounds reads return 0.
func (c *Canvas) At(row, col int) uint8 {
	if row < 0 || row >= c.height || col < 0 || col >= c.width {
		return 0
	}
	return c.data[row*c.width+col]
}

// Set writes the shade at (row, col). Out-of-bounds writes are ignored.
func (c *Canvas) Set(row, col int, shade uint8) {
	if row < 0 || row >= c.height || col < 0 || col >= c.width {
		return
	}
	c.data[row*c.width+col] = shade
}

// Fill sets every pixel to shade.
func (c *Canvas) Fill(shade uint8) {
	c.FillRect(0, 0, c.width, c.height, shade)
}

// FillRect paints a width×height rectangle whose top-left corner is
// (row, col). The rectangle is clipped to the canvas.
func (c *Canvas) FillRect(row, col, width, height int, shade uint8) {
	r := image.Rect(col, row, col+width, row+height)
	draw.Draw(c.Gray(), r, image.NewUniform(color.Gray{Y: shade}), image.Point{}, draw.Src)
}

// Gray returns an *image.Gray view sharing the canvas samples.
func (c *Canvas) Gray() *image.Gray {
	return &image.Gray{
		Pix:    c.data,
		Stride: c.width,
		Rect:   image.Rect(0, 0, c.width, c.height),
	}
}

// Equal reports whether both canvases have identical dimensions and samples.
func (c *Canvas) Equal(other *Canvas) bool {
	if c.width != other.width || c.height != other.height {
		return false
	}
	for i := range c.data {
		if c.data[i] != other.data[i] {
			return false
		}
	}
	return true
}
