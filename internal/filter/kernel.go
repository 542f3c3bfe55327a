package filter

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrInvalidKernel is returned when weights cannot form a normalized kernel.
var ErrInvalidKernel = errors.New("filter: invalid kernel")

// Kernel is a normalized square weight matrix of odd width.
type Kernel struct {
	m     *mat.Dense
	width int
}

// NewKernel validates weights and returns a kernel scaled so all weights
// sum to 1. Rows must all have the same odd length as the number of rows,
// weights must be finite and non-negative, and at least one must be
// positive. The input slice is not retained.
func NewKernel(weights [][]float64) (*Kernel, error) {
	n := len(weights)
	if n == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidKernel)
	}
	if n%2 == 0 {
		return nil, fmt.Errorf("%w: width %d is even", ErrInvalidKernel, n)
	}

	data := make([]float64, 0, n*n)
	for i, row := range weights {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d weights, want %d", ErrInvalidKernel, i, len(row), n)
		}
		for j, w := range row {
			if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("%w: weight (%d, %d) = %v", ErrInvalidKernel, i, j, w)
			}
		}
		data = append(data, row...)
	}

	m := mat.NewDense(n, n, data)
	sum := mat.Sum(m)
	if sum <= 0 {
		return nil, fmt.Errorf("%w: weights sum to %v", ErrInvalidKernel, sum)
	}
	m.Scale(1/sum, m)

	return &Kernel{m: m, width: n}, nil
}

// Identity returns a kernel of the given odd width with all weight at the
// center. Filtering with it leaves the canvas unchanged.
func Identity(width int) (*Kernel, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width %d must be positive", ErrInvalidKernel, width)
	}
	weights := make([][]float64, width)
	for i := range weights {
		weights[i] = make([]float64, width)
	}
	weights[width/2][width/2] = 1
	return NewKernel(weights)
}

// Box returns a uniform kernel of the given odd width.
func Box(width int) (*Kernel, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width %d must be positive", ErrInvalidKernel, width)
	}
	weights := make([][]float64, width)
	for i := range weights {
		weights[i] = make([]float64, width)
		for j := range weights[i] {
			weights[i][j] = 1
		}
	}
	return NewKernel(weights)
}

// Width returns the kernel width (and height).
func (k *Kernel) Width() int {
	return k.width
}

// Radius returns the footprint half-width, Width()/2.
func (k *Kernel) Radius() int {
	return k.width / 2
}

// At returns the normalized weight at (row, col).
func (k *Kernel) At(row, col int) float64 {
	return k.m.At(row, col)
}
