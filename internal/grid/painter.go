package grid

import (
	"errors"
	"fmt"

	"github.com/gogpu/shadegrid/internal/image"
	"github.com/gogpu/shadegrid/internal/random"
)

// ErrInvalidLayout is returned when layout dimensions cannot form a grid.
var ErrInvalidLayout = errors.New("grid: invalid layout")

// Layout positions the squares on the canvas. All sizes are in pixels
// except SquaresX and SquaresY, which count squares.
type Layout struct {
	SquareSize int
	GapSize    int
	BorderSize int
	SquaresX   int
	SquaresY   int
}

// Validate checks that every dimension is usable.
func (l Layout) Validate() error {
	switch {
	case l.SquareSize <= 0:
		return fmt.Errorf("%w: square size %d must be positive", ErrInvalidLayout, l.SquareSize)
	case l.GapSize < 0:
		return fmt.Errorf("%w: gap size %d is negative", ErrInvalidLayout, l.GapSize)
	case l.BorderSize < 0:
		return fmt.Errorf("%w: border size %d is negative", ErrInvalidLayout, l.BorderSize)
	case l.SquaresX <= 0 || l.SquaresY <= 0:
		return fmt.Errorf("%w: grid %dx%d must have at least one square", ErrInvalidLayout, l.SquaresX, l.SquaresY)
	}
	return nil
}

// Size returns the canvas dimensions that exactly hold the grid:
// 2*border + n*square + (n+1)*gap on each axis.
func (l Layout) Size() (width, height int) {
	width = 2*l.BorderSize + l.SquaresX*l.SquareSize + (l.SquaresX+1)*l.GapSize
	height = 2*l.BorderSize + l.SquaresY*l.SquareSize + (l.SquaresY+1)*l.GapSize
	return width, height
}

// Origin returns the top-left pixel of square (x, y).
func (l Layout) Origin(x, y int) (row, col int) {
	pitch := l.GapSize + l.SquareSize
	row = l.BorderSize + y*pitch + l.GapSize
	col = l.BorderSize + x*pitch + l.GapSize
	return row, col
}

// Fits reports whether c has exactly the dimensions the layout requires.
func (l Layout) Fits(c *image.Canvas) bool {
	w, h := l.Size()
	return c.Width() == w && c.Height() == h
}

// Paint draws every square of the layout onto c. Squares are visited
// column by column (x outer, y inner) and each takes one rng.Float64 draw,
// so the whole square shares a single shade. Pixels outside the squares
// are left untouched.
//
// The caller guarantees c fits the layout.
func Paint(c *image.Canvas, l Layout, t *Table, rng random.Source) {
	for x := 0; x < l.SquaresX; x++ {
		for y := 0; y < l.SquaresY; y++ {
			row, col := l.Origin(x, y)
			shade := t.Pick(rng.Float64())
			c.FillRect(row, col, l.SquareSize, l.SquareSize, shade)
		}
	}
}
