// Package report summarizes texture canvases for logging and plots their
// shade distribution.
package report

import (
	"errors"
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/gogpu/shadegrid/internal/image"
)

// ErrNoSamples is returned when there are no interior pixels to plot.
var ErrNoSamples = errors.New("report: no interior samples")

// histogramBins groups the 256 shades four at a time.
const histogramBins = 64

// Stats describes the interior shades of a canvas.
type Stats struct {
	Pixels int
	Min    uint8
	Max    uint8
	Mean   float64
	StdDev float64
}

// LogValue renders Stats as a slog group.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("pixels", s.Pixels),
		slog.Int("min", int(s.Min)),
		slog.Int("max", int(s.Max)),
		slog.Float64("mean", s.Mean),
		slog.Float64("stddev", s.StdDev),
	)
}

// Summarize computes statistics over pixels at least border pixels from
// every edge. An empty interior yields zero Stats.
func Summarize(c *image.Canvas, border int) Stats {
	values := interior(c, border)
	if len(values) == 0 {
		return Stats{}
	}

	s := Stats{Pixels: len(values), Min: 255}
	for _, v := range values {
		s.Min = min(s.Min, uint8(v))
		s.Max = max(s.Max, uint8(v))
	}
	s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
	return s
}

// Series is one canvas drawn on a histogram plot.
type Series struct {
	Name   string
	Canvas *image.Canvas
	Border int
}

// WriteHistogram plots the interior shade distribution of each series and
// saves it to path. The file format follows the extension (png, svg, pdf).
func WriteHistogram(path string, series ...Series) error {
	p := plot.New()
	p.Title.Text = "Shade distribution"
	p.X.Label.Text = "Shade"
	p.Y.Label.Text = "Pixels"
	p.X.Min = 0
	p.X.Max = 255

	added := 0
	for i, s := range series {
		values := interior(s.Canvas, s.Border)
		if len(values) == 0 {
			continue
		}
		h, err := plotter.NewHist(plotter.Values(values), histogramBins)
		if err != nil {
			return fmt.Errorf("report: histogram %q: %w", s.Name, err)
		}
		h.FillColor = plotutil.Color(i)
		h.LineStyle.Width = vg.Points(0.5)
		p.Add(h)
		p.Legend.Add(s.Name, h)
		added++
	}
	if added == 0 {
		return ErrNoSamples
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}
	return nil
}

// interior returns the shades of the interior region as float64 samples.
func interior(c *image.Canvas, border int) []float64 {
	w := c.Width() - 2*border
	h := c.Height() - 2*border
	if w <= 0 || h <= 0 {
		return nil
	}

	values := make([]float64, 0, w*h)
	for row := border; row < c.Height()-border; row++ {
		for _, v := range c.Row(row)[border : c.Width()-border] {
			values = append(values, float64(v))
		}
	}
	return values
}
