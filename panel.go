package gpplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Panel

// A Panel is one renderable chart unit: axis labels, a title and a stack
// of layers. A Panel is a value and is never mutated once built; With
// composes a new Panel on top of an existing one.
type Panel struct {
	Title  string
	XLabel string
	YLabel string
	Layers []Layer
}

// With returns a copy of p with extra layers stacked on top. The
// receiver is left untouched, so a base panel can be reused across
// several overlays.
func (p Panel) With(extra ...Layer) Panel {
	layers := make([]Layer, 0, len(p.Layers)+len(extra))
	layers = append(layers, p.Layers...)
	layers = append(layers, extra...)
	p.Layers = layers
	return p
}

// Plot builds a fresh *plot.Plot from the panel. Each call returns a new
// plot; the panel itself carries no drawing state.
func (p Panel) Plot() (*plot.Plot, error) {
	plt := plot.New()
	plt.Title.Text = p.Title
	plt.X.Label.Text = p.XLabel
	plt.Y.Label.Text = p.YLabel
	for _, l := range p.Layers {
		if err := l.addTo(plt); err != nil {
			return nil, fmt.Errorf("gpplot: panel %q: %w", p.Title, err)
		}
	}
	return plt, nil
}

// Draw renders the panel onto dc.
func (p Panel) Draw(dc draw.Canvas) error {
	plt, err := p.Plot()
	if err != nil {
		return err
	}
	plt.Draw(dc)
	return nil
}
