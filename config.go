package shadegrid

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/shadegrid/internal/filter"
	"github.com/gogpu/shadegrid/internal/grid"
	"github.com/gogpu/shadegrid/internal/noise"
)

// maxConfigSize caps configuration files at 1 MiB.
const maxConfigSize = 1 << 20

// IntensityLevel is one reachable square shade and the upper bound of its
// cumulative probability interval.
type IntensityLevel = grid.Level

// Config is the complete, immutable description of a texture run.
// Build one with DefaultConfig or LoadConfig and pass it to NewPipeline.
type Config struct {
	// SquareSize is the side of each square in pixels.
	SquareSize int `json:"square_size"`

	// GapSize is the spacing between squares, and between the outer squares
	// and the border.
	GapSize int `json:"gap_size"`

	// SquaresX and SquaresY count the squares along each axis.
	SquaresX int `json:"squares_x"`
	SquaresY int `json:"squares_y"`

	// BorderSize is the margin left untouched by noise and filtering.
	BorderSize int `json:"border_size"`

	// Background is the shade of gaps and border.
	Background uint8 `json:"background"`

	// Levels is the ordered shade distribution for squares.
	Levels []IntensityLevel `json:"levels"`

	Noise  NoiseConfig  `json:"noise"`
	Filter FilterConfig `json:"filter"`
}

// NoiseConfig controls the noise stage.
type NoiseConfig struct {
	Enabled          bool    `json:"enabled"`
	StartRange       int     `json:"start_range"`
	StartProbability float64 `json:"start_probability"`
	Rounds           int     `json:"rounds"`
}

// FilterConfig controls the filter stage.
type FilterConfig struct {
	Enabled bool        `json:"enabled"`
	InPlace bool        `json:"in_place"`
	Kernel  [][]float64 `json:"kernel"`
}

// DefaultConfig returns the stock texture: 16x11 squares of 50 px with
// 4 px gaps and a 10 px white border, eight noise rounds and an in-place
// diagonal streak filter.
func DefaultConfig() Config {
	return Config{
		SquareSize: 50,
		GapSize:    4,
		SquaresX:   16,
		SquaresY:   11,
		BorderSize: 10,
		Background: 255,
		Levels: []IntensityLevel{
			{Shade: 8, Bound: 0.05},
			{Shade: 16, Bound: 0.1},
			{Shade: 32, Bound: 0.3},
			{Shade: 64, Bound: 0.7},
			{Shade: 128, Bound: 1.0},
		},
		Noise: NoiseConfig{
			Enabled:          true,
			StartRange:       2,
			StartProbability: 2.0,
			Rounds:           8,
		},
		Filter: FilterConfig{
			Enabled: true,
			InPlace: true,
			Kernel: [][]float64{
				{0, 0, 0, 0, 1},
				{0, 0, 0, 2, 0},
				{0, 0, 8, 0, 0},
				{0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0},
			},
		},
	}
}

// LoadConfig reads a JSON configuration file and overlays it onto
// DefaultConfig, so fields omitted from the file keep their defaults.
// The result is validated before it is returned.
func LoadConfig(path string) (Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return Config{}, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigSize {
		return Config{}, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Size returns the canvas dimensions implied by the grid:
// 2*border + n*square + (n+1)*gap on each axis.
func (c Config) Size() (width, height int) {
	return c.layout().Size()
}

// FilterMode returns the convolution addressing mode.
func (c Config) FilterMode() filter.Mode {
	if c.Filter.InPlace {
		return filter.ModeInPlace
	}
	return filter.ModeOutOfPlace
}

// Validate reports the first configuration invariant the value breaks.
// Every returned error wraps ErrInvalidConfig.
func (c Config) Validate() error {
	_, _, err := c.build()
	return err
}

func (c Config) layout() grid.Layout {
	return grid.Layout{
		SquareSize: c.SquareSize,
		GapSize:    c.GapSize,
		BorderSize: c.BorderSize,
		SquaresX:   c.SquaresX,
		SquaresY:   c.SquaresY,
	}
}

func (c Config) noiseParams() noise.Params {
	return noise.Params{
		StartRange:       c.Noise.StartRange,
		StartProbability: c.Noise.StartProbability,
		Rounds:           c.Noise.Rounds,
	}
}

// build validates the configuration and constructs the intensity table and,
// when filtering is enabled, the normalized kernel. Stage settings are only
// checked for enabled stages.
func (c Config) build() (*grid.Table, *filter.Kernel, error) {
	if err := c.layout().Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	table, err := grid.NewTable(c.Levels)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if c.Noise.Enabled {
		if err := c.noiseParams().Validate(); err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	var kernel *filter.Kernel
	if c.Filter.Enabled {
		kernel, err = filter.NewKernel(c.Filter.Kernel)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		if c.BorderSize < kernel.Radius() {
			return nil, nil, fmt.Errorf("%w: border %d is narrower than kernel radius %d",
				ErrInvalidConfig, c.BorderSize, kernel.Radius())
		}
	}

	return table, kernel, nil
}
