//go:build ignore
// +build ignore

package main

import (
	"math"
	"os"

	"github.com/gpplot/gpplot"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// waves is a closed form stand-in for a fitted model: a sine mean with
// variance growing away from the origin.
type waves struct{}

func (waves) Summarize(points mat.Matrix) (gpplot.Summary, error) {
	n, c := points.Dims()
	s := gpplot.Summary{
		Mean:     make([]float64, n),
		Variance: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		var r float64
		for j := 0; j < c; j++ {
			x := points.At(i, j)
			r += x * x
		}
		r = math.Sqrt(r)
		s.Mean[i] = math.Sin(2 * r)
		s.Variance[i] = 0.05 + 0.02*r
	}
	return s, nil
}

func main() {
	oneD()
	twoD()
}

func oneD() {
	pts := mat.NewDense(120, 1, nil)
	for i := 0; i < 120; i++ {
		pts.Set(i, 0, -3+float64(i)*0.05)
	}

	spec := gpplot.DefaultSpec()
	spec.Title = "Posterior over x"
	spec.XLabel = "x"
	spec.YLabel = "f(x)"

	panels, err := gpplot.Render(waves{}, pts, nil, spec)
	if err != nil {
		panic(err)
	}
	write(panels, 400, 300, "testdata/gp-1d.png")
}

func twoD() {
	pts := mat.NewDense(40*40, 2, nil)
	for i := 0; i < 40; i++ {
		for j := 0; j < 40; j++ {
			pts.Set(i*40+j, 0, -2+float64(i)*0.1)
			pts.Set(i*40+j, 1, -2+float64(j)*0.1)
		}
	}

	spec := gpplot.DefaultSpec()
	spec.XLabel = "x1"
	spec.YLabel = "x2"

	panels, err := gpplot.Render(waves{}, pts, nil, spec)
	if err != nil {
		panic(err)
	}
	write(panels, 800, 400, "testdata/gp-2d.png")
}

func write(panels gpplot.Panels, w, h vg.Length, name string) {
	img := vgimg.New(w, h)
	dc := draw.New(img)
	if err := panels.Draw(dc); err != nil {
		panic(err)
	}

	f, err := os.Create(name)
	if err != nil {
		panic(err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err = png.WriteTo(f); err != nil {
		panic(err)
	}
	if err = f.Close(); err != nil {
		panic(err)
	}
}
