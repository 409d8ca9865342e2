package beam

import "errors"

// Domain errors for beam construction and slicing.
var (
	// ErrEmptyDistribution indicates an input distribution with no particles.
	ErrEmptyDistribution = errors.New("beam: distribution has no particles")

	// ErrNoDistribution indicates an operation that needs a distribution
	// on a still-empty beam.
	ErrNoDistribution = errors.New("beam: no distribution set")

	// ErrParticleCount indicates a non-positive particle count.
	ErrParticleCount = errors.New("beam: particle count must be positive")

	// ErrSliceCount indicates a non-positive slice count.
	ErrSliceCount = errors.New("beam: slice count must be positive")

	// ErrColumnCount indicates slicing a distribution whose width is not
	// the five canonical phase-space coordinates.
	ErrColumnCount = errors.New("beam: slicing needs a five-column distribution")

	// ErrTwissParam indicates an unrecognized Twiss parameter key.
	ErrTwissParam = errors.New("beam: unknown twiss parameter")

	// ErrMissingEmittance indicates Twiss optics without a required
	// emittance.
	ErrMissingEmittance = errors.New("beam: missing required emittance")

	// ErrBetaRange indicates a non-positive beta function.
	ErrBetaRange = errors.New("beam: beta function must be positive")

	// ErrMatrixShape indicates an explicit sigma matrix of the wrong order.
	ErrMatrixShape = errors.New("beam: sigma matrix must have order 5")

	// ErrNoKinematics indicates a rigidity query on a beam without
	// energy information.
	ErrNoKinematics = errors.New("beam: no kinematics attached")
)
