package shadegrid

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/gogpu/shadegrid/internal/filter"
	"github.com/gogpu/shadegrid/internal/grid"
	"github.com/gogpu/shadegrid/internal/image"
	"github.com/gogpu/shadegrid/internal/noise"
	"github.com/gogpu/shadegrid/internal/random"
	"github.com/gogpu/shadegrid/internal/report"
)

// Canvas is a single-channel 8-bit pixel buffer addressed by (row, col).
type Canvas = image.Canvas

// RandomSource supplies uniform draws: Float64 in [0, 1) and IntN in [0, n).
type RandomSource = random.Source

// NoiseStats counts biased and reverted pixels across all noise rounds.
type NoiseStats = noise.Stats

// FilterMode selects in-place or out-of-place convolution.
type FilterMode = filter.Mode

// Filter modes.
const (
	FilterOutOfPlace = filter.ModeOutOfPlace
	FilterInPlace    = filter.ModeInPlace
)

// NewRandomSource returns a generator seeded once for a run.
func NewRandomSource(seed uint64) *rand.Rand {
	return random.New(seed)
}

// Result holds the buffers produced by one run. Both are owned by the
// caller and are not touched by the pipeline again.
type Result struct {
	// Noised is the painted canvas after the noise stage (or just the
	// painted canvas when noise is disabled).
	Noised *Canvas

	// Filtered is the convolved copy of Noised, or nil when the filter
	// stage is disabled.
	Filtered *Canvas

	// Noise reports what the noise stage did.
	Noise NoiseStats
}

// Pipeline runs paint, noise and filter in that fixed order.
// A Pipeline is not safe for concurrent use: its random source is consumed
// sequentially and the draw order determines the texture.
type Pipeline struct {
	cfg    Config
	layout grid.Layout
	table  *grid.Table
	kernel *filter.Kernel
	rng    RandomSource
}

// NewPipeline validates cfg, normalizes the kernel and binds the random
// source. Errors wrap ErrInvalidConfig.
func NewPipeline(cfg Config, rng RandomSource) (*Pipeline, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	table, kernel, err := cfg.build()
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		cfg:    cfg,
		layout: cfg.layout(),
		table:  table,
		kernel: kernel,
		rng:    rng,
	}, nil
}

// Config returns the configuration the pipeline was built with.
func (p *Pipeline) Config() Config {
	return p.cfg
}

// NewCanvas allocates a canvas of the configured size filled with the
// background shade.
func (p *Pipeline) NewCanvas() (*Canvas, error) {
	w, h := p.layout.Size()
	c, err := image.New(w, h)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	c.Fill(p.cfg.Background)
	return c, nil
}

// Run synthesizes one texture. It either returns a complete Result or an
// error and no partial output.
func (p *Pipeline) Run() (*Result, error) {
	c, err := p.NewCanvas()
	if err != nil {
		return nil, err
	}

	if err := p.Paint(c); err != nil {
		return nil, err
	}

	res := &Result{Noised: c}

	if p.cfg.Noise.Enabled {
		stats, err := p.Noise(c)
		if err != nil {
			return nil, err
		}
		res.Noise = stats
	}

	if p.cfg.Filter.Enabled {
		filtered, err := p.Filter(c)
		if err != nil {
			return nil, err
		}
		res.Filtered = filtered
	}

	Logger().Info("texture synthesized",
		"width", c.Width(),
		"height", c.Height(),
		"squares", p.layout.SquaresX*p.layout.SquaresY,
		"noise", p.cfg.Noise.Enabled,
		"filter", p.cfg.Filter.Enabled,
	)
	return res, nil
}

// Paint draws the square grid onto c, one draw per square. Pixels outside
// the squares keep their current value.
func (p *Pipeline) Paint(c *Canvas) error {
	if err := p.checkSize(c); err != nil {
		return err
	}
	grid.Paint(c, p.layout, p.table, p.rng)
	p.debugStage("grid painted", c)
	return nil
}

// Noise applies every configured noise round to the interior of c in place.
// It runs even if the noise stage is disabled in the configuration, using
// the configured parameters.
func (p *Pipeline) Noise(c *Canvas) (NoiseStats, error) {
	if err := p.checkSize(c); err != nil {
		return NoiseStats{}, err
	}
	params := p.cfg.noiseParams()
	if err := params.Validate(); err != nil {
		return NoiseStats{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	stats := noise.Inject(c, p.cfg.BorderSize, params, p.rng)
	p.debugStage("noise injected", c,
		"rounds", params.Rounds,
		"applied", stats.Applied,
		"reverted", stats.Reverted,
	)
	return stats, nil
}

// Filter returns a filtered copy of c; c itself is left unchanged.
func (p *Pipeline) Filter(c *Canvas) (*Canvas, error) {
	if err := p.checkSize(c); err != nil {
		return nil, err
	}
	if p.kernel == nil {
		return nil, fmt.Errorf("%w: filter stage is disabled", ErrInvalidConfig)
	}
	mode := p.cfg.FilterMode()
	out := filter.Apply(c, p.kernel, p.cfg.BorderSize, mode)
	p.debugStage("filter applied", out,
		"mode", mode.String(),
		"kernel_width", p.kernel.Width(),
	)
	return out, nil
}

func (p *Pipeline) checkSize(c *Canvas) error {
	if !p.layout.Fits(c) {
		w, h := p.layout.Size()
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrCanvasSize, c.Width(), c.Height(), w, h)
	}
	return nil
}

// debugStage logs interior statistics after a stage. The statistics pass
// is skipped when debug logging is off.
func (p *Pipeline) debugStage(msg string, c *Canvas, args ...any) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	args = append(args, "interior", report.Summarize(c, p.cfg.BorderSize))
	l.Debug(msg, args...)
}
