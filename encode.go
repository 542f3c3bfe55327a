package shadegrid

import (
	"fmt"
	"path/filepath"
)

// Output file names written by Result.Encode.
const (
	TextureFile         = "texture.png"
	FilteredTextureFile = "filtered_texture.png"
)

// Encoder writes a finished canvas under a file name.
type Encoder interface {
	Encode(name string, c *Canvas) error
}

// EncoderFunc adapts a function to the Encoder interface.
type EncoderFunc func(name string, c *Canvas) error

// Encode calls f(name, c).
func (f EncoderFunc) Encode(name string, c *Canvas) error {
	return f(name, c)
}

// FileEncoder writes grayscale PNG files into Dir.
type FileEncoder struct {
	Dir string
}

// Encode saves c as Dir/name.
func (e FileEncoder) Encode(name string, c *Canvas) error {
	return c.SavePNG(filepath.Join(e.Dir, name))
}

// Encode hands the noised canvas to enc as TextureFile and, when present,
// the filtered canvas as FilteredTextureFile. Failures wrap ErrEncoding;
// the Result is not modified and can be encoded again elsewhere.
func (r *Result) Encode(enc Encoder) error {
	if err := enc.Encode(TextureFile, r.Noised); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncoding, TextureFile, err)
	}
	Logger().Info("wrote texture", "name", TextureFile)

	if r.Filtered == nil {
		return nil
	}
	if err := enc.Encode(FilteredTextureFile, r.Filtered); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncoding, FilteredTextureFile, err)
	}
	Logger().Info("wrote texture", "name", FilteredTextureFile)
	return nil
}
