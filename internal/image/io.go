package image

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// SavePNG saves the canvas as a grayscale PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// EncodePNG encodes the canvas as a grayscale PNG to the given writer.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.Gray()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// DecodePNG decodes a PNG into a canvas, converting color images to gray.
func DecodePNG(r io.Reader) (*Canvas, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode PNG: %w", err)
	}

	bounds := img.Bounds()
	c, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	gray := c.Gray()
	for y := range c.height {
		for x := range c.width {
			gray.Set(x, y, img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return c, nil
}
