package beam

import (
	"fmt"

	"github.com/beamphys/beamgen/internal/phasespace"
	"github.com/beamphys/beamgen/internal/sampler"
)

// Generate draws n particles from the Gaussian described by spec. A nil
// src uses [sampler.Default].
func Generate(src sampler.Source, n int, spec SigmaSpec) (*phasespace.Table, error) {
	if src == nil {
		src = sampler.Default()
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrParticleCount, n)
	}
	cov, err := spec.Covariance()
	if err != nil {
		return nil, err
	}
	rows, err := src.SampleNormal(spec.Mean(), cov, n)
	if err != nil {
		return nil, err
	}
	return phasespace.New(phasespace.Columns5, rows)
}

// GenerateTwiss draws n particles from Twiss optics.
func GenerateTwiss(src sampler.Source, n int, params TwissParams) (*phasespace.Table, error) {
	spec, err := params.Sigma()
	if err != nil {
		return nil, err
	}
	return Generate(src, n, spec)
}

// LoadFile reads a headered CSV distribution and keeps at most n rows.
// A negative n, or an n at or beyond the row count, keeps the whole
// file.
func LoadFile(path string, n int) (*phasespace.Table, error) {
	t, err := phasespace.ReadCSVFile(path)
	if err != nil {
		return nil, err
	}
	return t.Head(n), nil
}
