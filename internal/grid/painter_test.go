package grid

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/shadegrid/internal/image"
	"github.com/gogpu/shadegrid/internal/random"
)

const background = 255

func newBackgroundCanvas(t *testing.T, l Layout) *image.Canvas {
	t.Helper()
	w, h := l.Size()
	c, err := image.New(w, h)
	if err != nil {
		t.Fatalf("image.New(%d, %d) error = %v", w, h, err)
	}
	c.Fill(background)
	return c
}

// squareAt returns the grid cell covering (row, col), or ok=false for gap
// and border pixels.
func squareAt(l Layout, row, col int) (x, y int, ok bool) {
	for x = 0; x < l.SquaresX; x++ {
		for y = 0; y < l.SquaresY; y++ {
			r, c := l.Origin(x, y)
			if row >= r && row < r+l.SquareSize && col >= c && col < c+l.SquareSize {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

func TestLayoutSize(t *testing.T) {
	tests := []struct {
		name         string
		layout       Layout
		wantW, wantH int
	}{
		{"default", Layout{SquareSize: 50, GapSize: 4, BorderSize: 10, SquaresX: 16, SquaresY: 11}, 888, 618},
		{"single square", Layout{SquareSize: 3, GapSize: 1, BorderSize: 2, SquaresX: 1, SquaresY: 1}, 9, 9},
		{"no gap", Layout{SquareSize: 4, GapSize: 0, BorderSize: 0, SquaresX: 3, SquaresY: 2}, 12, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.layout.Size()
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Size() = (%d, %d), want (%d, %d)", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestLayoutOrigin(t *testing.T) {
	l := Layout{SquareSize: 50, GapSize: 4, BorderSize: 10, SquaresX: 16, SquaresY: 11}

	row, col := l.Origin(0, 0)
	if row != 14 || col != 14 {
		t.Errorf("Origin(0, 0) = (%d, %d), want (14, 14)", row, col)
	}
	row, col = l.Origin(2, 1)
	if row != 68 || col != 122 {
		t.Errorf("Origin(2, 1) = (%d, %d), want (68, 122)", row, col)
	}
}

func TestLayoutValidate(t *testing.T) {
	valid := Layout{SquareSize: 5, GapSize: 1, BorderSize: 2, SquaresX: 2, SquaresY: 2}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Layout)
	}{
		{"zero square", func(l *Layout) { l.SquareSize = 0 }},
		{"negative gap", func(l *Layout) { l.GapSize = -1 }},
		{"negative border", func(l *Layout) { l.BorderSize = -1 }},
		{"zero columns", func(l *Layout) { l.SquaresX = 0 }},
		{"zero rows", func(l *Layout) { l.SquaresY = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := valid
			tt.mutate(&l)
			if err := l.Validate(); !errors.Is(err, ErrInvalidLayout) {
				t.Errorf("Validate() error = %v, want %v", err, ErrInvalidLayout)
			}
		})
	}
}

func TestLayoutFits(t *testing.T) {
	l := Layout{SquareSize: 3, GapSize: 1, BorderSize: 2, SquaresX: 2, SquaresY: 1}
	c := newBackgroundCanvas(t, l)
	if !l.Fits(c) {
		t.Error("Fits() = false for a canvas built from Size()")
	}
	other, _ := image.New(c.Width()+1, c.Height())
	if l.Fits(other) {
		t.Error("Fits() = true for a wider canvas")
	}
}

func TestPaintSingleSquare(t *testing.T) {
	l := Layout{SquareSize: 3, GapSize: 1, BorderSize: 2, SquaresX: 1, SquaresY: 1}
	table := mustTable(t, defaultLevels())
	c := newBackgroundCanvas(t, l)

	Paint(c, l, table, &random.Sequence{Floats: []float64{0.2}})

	// 9x9 canvas, square of shade 32 at rows/cols [3, 6).
	want := make([]byte, 81)
	for i := range want {
		row, col := i/9, i%9
		if row >= 3 && row < 6 && col >= 3 && col < 6 {
			want[i] = 32
		} else {
			want[i] = background
		}
	}
	if diff := cmp.Diff(want, c.Data()); diff != "" {
		t.Errorf("painted canvas mismatch (-want +got):\n%s", diff)
	}
}

func TestPaintShadesAndBackground(t *testing.T) {
	l := Layout{SquareSize: 4, GapSize: 2, BorderSize: 3, SquaresX: 5, SquaresY: 4}
	table := mustTable(t, defaultLevels())
	c := newBackgroundCanvas(t, l)

	Paint(c, l, table, random.New(7))

	configured := make(map[uint8]bool)
	for _, lv := range defaultLevels() {
		configured[lv.Shade] = true
	}

	shades := make(map[[2]int]uint8)
	for row := range c.Height() {
		for col := range c.Width() {
			got := c.At(row, col)
			x, y, ok := squareAt(l, row, col)
			if !ok {
				if got != background {
					t.Fatalf("gap/border pixel (%d, %d) = %d, want %d", row, col, got, background)
				}
				continue
			}
			if !configured[got] {
				t.Fatalf("square pixel (%d, %d) = %d, not a configured shade", row, col, got)
			}
			key := [2]int{x, y}
			if first, seen := shades[key]; seen && first != got {
				t.Fatalf("square (%d, %d) mixes shades %d and %d", x, y, first, got)
			}
			shades[key] = got
		}
	}
	if len(shades) != l.SquaresX*l.SquaresY {
		t.Errorf("painted %d squares, want %d", len(shades), l.SquaresX*l.SquaresY)
	}
}

func TestPaintOneDrawPerSquareColumnMajor(t *testing.T) {
	l := Layout{SquareSize: 2, GapSize: 1, BorderSize: 0, SquaresX: 2, SquaresY: 3}
	table := mustTable(t, defaultLevels())
	c := newBackgroundCanvas(t, l)

	// Draw order is (0,0) (0,1) (0,2) (1,0) (1,1) (1,2).
	seq := &random.Sequence{Floats: []float64{0.0, 0.1, 0.2, 0.5, 0.9, 0.04}}
	Paint(c, l, table, seq)

	if seq.FloatDraws() != 6 {
		t.Errorf("Paint consumed %d draws, want 6", seq.FloatDraws())
	}
	if seq.IntDraws() != 0 {
		t.Errorf("Paint consumed %d int draws, want 0", seq.IntDraws())
	}

	want := map[[2]int]uint8{
		{0, 0}: 8, {0, 1}: 16, {0, 2}: 32,
		{1, 0}: 64, {1, 1}: 128, {1, 2}: 8,
	}
	for cell, shade := range want {
		row, col := l.Origin(cell[0], cell[1])
		if got := c.At(row+1, col+1); got != shade {
			t.Errorf("square %v = %d, want %d", cell, got, shade)
		}
	}
}
