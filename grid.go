package gpplot

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/plotter"
)

// ----------------------------------------------------------------------------
// Evaluation grid helpers

// column extracts column j of m as a fresh slice.
func column(m mat.Matrix, j int) []float64 {
	r, _ := m.Dims()
	col := make([]float64, r)
	for i := range col {
		col[i] = m.At(i, j)
	}
	return col
}

// ascending returns the permutation that sorts xs. Line and band layers
// traverse points in x order regardless of how the evaluation grid was
// laid out.
func ascending(xs []float64) []int {
	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })
	return idx
}

// pick returns vs reordered by idx.
func pick(vs []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = vs[j]
	}
	return out
}

// ----------------------------------------------------------------------------
// Lattice

// A lattice is a scalar field over two covariate columns of an
// evaluation grid, rearranged into the regular structure heatmap and
// contour plotters want. Cells the grid does not cover hold NaN, which
// the plotters skip.
type lattice struct {
	xs, ys []float64 // sorted unique covariate values
	z      []float64 // len(xs)*len(ys), row major in y
}

var _ plotter.GridXYZ = (*lattice)(nil)

// newLattice builds the lattice of vals over columns cx and cy of
// points. Duplicate points keep the last value.
func newLattice(points mat.Matrix, cx, cy int, vals []float64) (*lattice, error) {
	r, _ := points.Dims()
	if len(vals) != r {
		return nil, fmt.Errorf("gpplot: lattice over %d points got %d values", r, len(vals))
	}

	xi := uniqueIndex(column(points, cx))
	yi := uniqueIndex(column(points, cy))
	l := &lattice{
		xs: sortedKeys(xi),
		ys: sortedKeys(yi),
		z:  make([]float64, len(xi)*len(yi)),
	}
	for i := range l.z {
		l.z[i] = math.NaN()
	}
	for i := 0; i < r; i++ {
		c := xi[points.At(i, cx)]
		w := yi[points.At(i, cy)]
		l.z[w*len(l.xs)+c] = vals[i]
	}
	return l, nil
}

// uniqueIndex maps each distinct value to its rank in ascending order.
func uniqueIndex(vs []float64) map[float64]int {
	set := make(map[float64]int, len(vs))
	for _, v := range vs {
		set[v] = 0
	}
	keys := sortedKeys(set)
	for i, k := range keys {
		set[k] = i
	}
	return set
}

func sortedKeys(set map[float64]int) []float64 {
	keys := make([]float64, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Float64s(keys)
	return keys
}

func (l *lattice) Dims() (c, r int)   { return len(l.xs), len(l.ys) }
func (l *lattice) X(c int) float64    { return l.xs[c] }
func (l *lattice) Y(r int) float64    { return l.ys[r] }
func (l *lattice) Z(c, r int) float64 { return l.z[r*len(l.xs)+c] }
