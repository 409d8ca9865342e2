package beam

import (
	"fmt"

	"github.com/beamphys/beamgen/internal/phasespace"
	"gonum.org/v1/gonum/mat"
)

// SigmaSpec describes a 5×5 phase-space covariance by its independent
// entries plus the first-order means. Unset fields are zero, so the
// zero value is a pencil beam at the origin.
//
// Sij is the covariance between coordinates i and j in the canonical
// [phasespace.Columns5] order; the mirrored ji entries are implied. The
// momentum spread enters as DppRMS and lands on the diagonal squared.
// A non-nil Matrix overrides every entry-wise field.
type SigmaSpec struct {
	X, PX, Y, PY, Dpp float64

	S11, S12, S13, S14, S15 float64
	S22, S23, S24, S25      float64
	S33, S34, S35           float64
	S44, S45                float64
	DppRMS                  float64

	Matrix mat.Symmetric
}

// Mean returns the first-order beam position [X, PX, Y, PY, Dpp].
func (s SigmaSpec) Mean() []float64 {
	return []float64{s.X, s.PX, s.Y, s.PY, s.Dpp}
}

// Covariance assembles the symmetric second-order matrix. An explicit
// Matrix must have order 5.
func (s SigmaSpec) Covariance() (mat.Symmetric, error) {
	if s.Matrix != nil {
		if d := s.Matrix.SymmetricDim(); d != phasespace.Dim {
			return nil, fmt.Errorf("%w: got order %d", ErrMatrixShape, d)
		}
		return s.Matrix, nil
	}
	d2 := s.DppRMS * s.DppRMS
	data := []float64{
		s.S11, s.S12, s.S13, s.S14, s.S15,
		s.S12, s.S22, s.S23, s.S24, s.S25,
		s.S13, s.S23, s.S33, s.S34, s.S35,
		s.S14, s.S24, s.S34, s.S44, s.S45,
		s.S15, s.S25, s.S35, s.S45, d2,
	}
	return mat.NewSymDense(phasespace.Dim, data), nil
}
