// Package chart renders aggregated distributions as bar-chart images.
package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/mspanwala8/pokestat/internal/domain"
	"github.com/mspanwala8/pokestat/internal/ports"
)

var defaultBarWidth = vg.Points(20)

// gridGray matches a light dashed guide line at ~70% opacity.
var gridGray = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xb3}

type Renderer struct {
	barWidth vg.Length
}

type Option func(*Renderer)

func WithBarWidth(w vg.Length) Option {
	return func(r *Renderer) { r.barWidth = w }
}

func New(opts ...Option) *Renderer {
	r := &Renderer{barWidth: defaultBarWidth}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.ChartRenderer = (*Renderer)(nil)

// Render draws one bar per label, in the order given, and encodes the
// figure as PNG. Labels and counts must be parallel slices; a mismatch
// means the data was corrupted upstream, so nothing is drawn.
func (r *Renderer) Render(data domain.ChartData, opts domain.DisplayOptions) ([]byte, error) {
	if len(data.Labels) != len(data.Counts) {
		return nil, renderErr(fmt.Errorf("labels/counts length mismatch: %d vs %d", len(data.Labels), len(data.Counts)))
	}

	barColor, err := parseColor(opts.Color)
	if err != nil {
		return nil, renderErr(err)
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XAxisTitle
	p.Y.Label.Text = opts.YAxisTitle

	// Horizontal dashed guides only, drawn behind the bars.
	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = gridGray
	grid.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(grid)

	values := make(plotter.Values, len(data.Counts))
	for i, c := range data.Counts {
		values[i] = float64(c)
	}

	bars, err := plotter.NewBarChart(values, r.barWidth)
	if err != nil {
		return nil, renderErr(err)
	}
	bars.Color = barColor
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(data.Labels...)

	// Slant the category labels so long names stay legible.
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	wt, err := p.WriterTo(vg.Length(opts.Width)*vg.Inch, vg.Length(opts.Height)*vg.Inch, "png")
	if err != nil {
		return nil, renderErr(err)
	}

	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, renderErr(err)
	}
	return buf.Bytes(), nil
}

func renderErr(err error) error {
	return &domain.OpError{
		Op:   "chart.render",
		Kind: domain.KindRender,
		Err:  err,
	}
}
