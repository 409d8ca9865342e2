package analysis

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/beamphys/beamgen/internal/phasespace"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Domain errors for statistical estimation.
var (
	// ErrDegenerate indicates a distribution too small or too collapsed
	// to carry second-order statistics.
	ErrDegenerate = errors.New("analysis: degenerate distribution")

	// ErrColumns indicates a table without the five canonical columns.
	ErrColumns = errors.New("analysis: five-column distribution required")
)

// ColumnSummary holds per-coordinate first and second moments.
type ColumnSummary struct {
	Label string
	Mean  float64
	Sigma float64
	Min   float64
	Max   float64
}

// Summarize computes per-column moments. The standard deviation of a
// single-row table is reported as zero.
func Summarize(t *phasespace.Table) []ColumnSummary {
	out := make([]ColumnSummary, t.NumCols())
	for j, label := range t.Labels() {
		col := t.ColumnAt(j)
		s := ColumnSummary{Label: label}
		if len(col) > 0 {
			s.Mean = stat.Mean(col, nil)
			s.Min = floats.Min(col)
			s.Max = floats.Max(col)
		}
		if len(col) > 1 {
			s.Sigma = stat.StdDev(col, nil)
		}
		out[j] = s
	}
	return out
}

// Covariance estimates the sample covariance of the table's columns.
func Covariance(t *phasespace.Table) (*mat.SymDense, error) {
	if t.NumRows() < 2 {
		return nil, fmt.Errorf("%w: %d rows", ErrDegenerate, t.NumRows())
	}
	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, t.Matrix(), nil)
	return &cov, nil
}

// TwissEstimate carries per-plane optics recovered from sampled data.
type TwissEstimate struct {
	EmitX, BetaX, AlphaX float64
	EmitY, BetaY, AlphaY float64
	MeanDpp, SigmaDpp    float64
}

// EstimateTwiss recovers Twiss optics from a five-column distribution:
// ε = sqrt(σ11σ22 − σ12²), β = σ11/ε, α = −σ12/ε per plane.
func EstimateTwiss(t *phasespace.Table) (TwissEstimate, error) {
	if t.NumCols() != phasespace.Dim {
		return TwissEstimate{}, fmt.Errorf("%w: got %d columns", ErrColumns, t.NumCols())
	}
	cov, err := Covariance(t)
	if err != nil {
		return TwissEstimate{}, err
	}

	ex2 := cov.At(0, 0)*cov.At(1, 1) - cov.At(0, 1)*cov.At(0, 1)
	ey2 := cov.At(2, 2)*cov.At(3, 3) - cov.At(2, 3)*cov.At(2, 3)
	if ex2 <= 0 || ey2 <= 0 {
		return TwissEstimate{}, fmt.Errorf("%w: collapsed phase-space area", ErrDegenerate)
	}
	ex := math.Sqrt(ex2)
	ey := math.Sqrt(ey2)

	d := t.ColumnAt(4)
	est := TwissEstimate{
		EmitX: ex, BetaX: cov.At(0, 0) / ex, AlphaX: -cov.At(0, 1) / ex,
		EmitY: ey, BetaY: cov.At(2, 2) / ey, AlphaY: -cov.At(2, 3) / ey,
		MeanDpp: stat.Mean(d, nil),
	}
	if len(d) > 1 {
		est.SigmaDpp = stat.StdDev(d, nil)
	}
	return est, nil
}

// Histogram bins xs into n equal-width bins spanning the data range and
// returns the per-bin counts with the n+1 bin edges. Constant data is
// widened to a unit range so every sample lands in the middle bin.
func Histogram(xs []float64, n int) (counts, edges []float64) {
	if n < 1 || len(xs) == 0 {
		return nil, nil
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	lo := sorted[0]
	hi := sorted[len(sorted)-1]
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}
	edges = make([]float64, n+1)
	floats.Span(edges, lo, hi)
	// stat.Histogram requires the maximum sample to sit strictly below
	// the highest divider.
	edges[n] = math.Nextafter(hi, math.Inf(1))
	counts = stat.Histogram(nil, edges, sorted, nil)
	return counts, edges
}
