// Package noise perturbs the interior of a canvas with probability-gated
// integer biases applied over several rounds.
//
// Round r uses range StartRange*2^r and probability StartProbability/2^r.
// Probabilities above 1 make every pixel of that round noisy.
package noise

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/shadegrid/internal/image"
	"github.com/gogpu/shadegrid/internal/random"
)

// MaxRange is the widest useful round range. Its biases already span
// (-256, 256); anything wider only adds biases no shade can absorb.
const MaxRange = 512

// ErrInvalidParams is returned for noise parameters that cannot be applied.
var ErrInvalidParams = errors.New("noise: invalid parameters")

// Params configures a noise run.
type Params struct {
	StartRange       int
	StartProbability float64
	Rounds           int
}

// RoundParams is the effective range and probability of one round.
type RoundParams struct {
	Range       int
	Probability float64
}

// Stats counts what happened to the pixels that passed the probability gate.
type Stats struct {
	Applied  int // bias written to the pixel
	Reverted int // bias would leave [0, 255]; pixel kept its value
}

// Validate checks the parameters.
func (p Params) Validate() error {
	switch {
	case p.StartRange < 2:
		return fmt.Errorf("%w: start range %d must be at least 2", ErrInvalidParams, p.StartRange)
	case p.StartProbability < 0 || math.IsNaN(p.StartProbability):
		return fmt.Errorf("%w: start probability %v must be non-negative", ErrInvalidParams, p.StartProbability)
	case p.StartRange > MaxRange:
		return fmt.Errorf("%w: start range %d exceeds %d", ErrInvalidParams, p.StartRange, MaxRange)
	case p.Rounds < 0:
		return fmt.Errorf("%w: rounds %d is negative", ErrInvalidParams, p.Rounds)
	case p.Rounds > 0 && p.StartRange > MaxRange>>(p.Rounds-1):
		return fmt.Errorf("%w: range %d doubled over %d rounds exceeds %d",
			ErrInvalidParams, p.StartRange, p.Rounds, MaxRange)
	}
	return nil
}

// Round returns the settings of round r. It depends only on r and p.
func (p Params) Round(r int) RoundParams {
	return RoundParams{
		Range:       p.StartRange << r,
		Probability: math.Ldexp(p.StartProbability, -r),
	}
}

// Bias draws a non-zero integer bias for the given range. Values are uniform
// over the open interval (-range/2, range/2); a zero draw becomes +range/2.
func Bias(rng random.Source, rangeR int) int {
	half := rangeR / 2
	b := rng.IntN(2*half-1) - (half - 1)
	if b == 0 {
		b = half
	}
	return b
}

// Inject runs every round over the pixels at least border pixels away from
// each edge. Rounds compose in place: round r+1 sees round r's output.
func Inject(c *image.Canvas, border int, p Params, rng random.Source) Stats {
	var total Stats
	for r := 0; r < p.Rounds; r++ {
		s := InjectRound(c, border, p.Round(r), rng)
		total.Applied += s.Applied
		total.Reverted += s.Reverted
	}
	return total
}

// InjectRound visits each interior pixel once, row by row. A pixel is
// biased when a fresh draw is <= rp.Probability; a bias that would push
// the shade outside [0, 255] is discarded and the pixel keeps its value.
func InjectRound(c *image.Canvas, border int, rp RoundParams, rng random.Source) Stats {
	var s Stats
	for row := border; row < c.Height()-border; row++ {
		pix := c.Row(row)
		for col := border; col < c.Width()-border; col++ {
			if rng.Float64() > rp.Probability {
				continue
			}
			shade := int(pix[col]) + Bias(rng, rp.Range)
			if shade < 0 || shade > 255 {
				s.Reverted++
				continue
			}
			pix[col] = uint8(shade)
			s.Applied++
		}
	}
	return s
}
