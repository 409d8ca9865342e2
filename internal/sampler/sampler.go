package sampler

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// Domain errors for multivariate sampling.
var (
	// ErrInvalidCovariance indicates a covariance matrix that is not
	// positive semi-definite.
	ErrInvalidCovariance = errors.New("sampler: covariance matrix is not positive semi-definite")

	// ErrDimension indicates mean and covariance of different orders.
	ErrDimension = errors.New("sampler: mean and covariance dimensions differ")
)

// Source draws correlated Gaussian samples. Implementations are not
// safe for concurrent use.
type Source interface {
	// SampleNormal draws n samples from N(mean, cov). Each returned row
	// has len(mean) coordinates.
	SampleNormal(mean []float64, cov mat.Symmetric, n int) ([][]float64, error)
}

// Gaussian samples multivariate normals from a seeded stream.
//
// Positive-definite covariances go through the Cholesky-based sampler
// in gonum's distmv. Semi-definite covariances (zero-variance
// coordinates, exact correlations) fall back to an eigendecomposition,
// so degenerate distributions like pencil beams sample without error.
type Gaussian struct {
	src rand.Source
}

// New returns a sampler seeded with seed. Two samplers built from the
// same seed produce identical streams.
func New(seed uint64) *Gaussian {
	return &Gaussian{src: rand.NewSource(seed)}
}

// SampleNormal draws n rows from N(mean, cov).
func (g *Gaussian) SampleNormal(mean []float64, cov mat.Symmetric, n int) ([][]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("sampler: negative sample count %d", n)
	}
	if d := cov.SymmetricDim(); d != len(mean) {
		return nil, fmt.Errorf("%w: mean %d, covariance %d", ErrDimension, len(mean), d)
	}
	if dist, ok := distmv.NewNormal(mean, cov, g.src); ok {
		out := make([][]float64, n)
		for i := range out {
			out[i] = dist.Rand(nil)
		}
		return out, nil
	}
	return g.sampleEigen(mean, cov, n)
}

// sampleEigen draws x = mean + Q·sqrt(Λ)·z with z standard normal.
// Eigenvalues within rounding noise of zero are clamped to zero;
// anything more negative fails as an invalid covariance.
func (g *Gaussian) sampleEigen(mean []float64, cov mat.Symmetric, n int) ([][]float64, error) {
	dim := len(mean)

	var eig mat.EigenSym
	if !eig.Factorize(cov, true) {
		return nil, fmt.Errorf("%w: eigendecomposition failed", ErrInvalidCovariance)
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	scale := 0.0
	for _, v := range vals {
		if math.Abs(v) > scale {
			scale = math.Abs(v)
		}
	}
	tol := 1e-12 * math.Max(scale, 1)

	basis := mat.NewDense(dim, dim, nil)
	for c := 0; c < dim; c++ {
		v := vals[c]
		if v < -tol {
			return nil, fmt.Errorf("%w: eigenvalue %g", ErrInvalidCovariance, v)
		}
		if v < 0 {
			v = 0
		}
		s := math.Sqrt(v)
		for r := 0; r < dim; r++ {
			basis.Set(r, c, vecs.At(r, c)*s)
		}
	}

	std := distuv.Normal{Mu: 0, Sigma: 1, Src: g.src}
	z := make([]float64, dim)
	out := make([][]float64, n)
	for i := range out {
		for j := range z {
			z[j] = std.Rand()
		}
		row := make([]float64, dim)
		for r := 0; r < dim; r++ {
			x := mean[r]
			for c := 0; c < dim; c++ {
				x += basis.At(r, c) * z[c]
			}
			row[r] = x
		}
		out[i] = row
	}
	return out, nil
}

var (
	defaultMu  sync.Mutex
	defaultSrc Source
)

// Default returns the process-wide sampler, seeding one from the clock
// on first use.
func Default() Source {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultSrc == nil {
		defaultSrc = New(uint64(time.Now().UnixNano()))
	}
	return defaultSrc
}

// SetDefault replaces the process-wide sampler. Install a seeded
// sampler from [New] to make unconfigured generation reproducible.
func SetDefault(s Source) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultSrc = s
}
