package beam

import (
	"fmt"
	"iter"

	"github.com/beamphys/beamgen/internal/phasespace"
	"github.com/beamphys/beamgen/internal/physics"
	"github.com/beamphys/beamgen/internal/sampler"
)

// Option configures a new Beam.
type Option func(*Beam)

// WithSpecies sets the particle species. The default is a proton.
func WithSpecies(p physics.Particle) Option {
	return func(b *Beam) { b.species = p }
}

// WithKinematics attaches beam energy information.
func WithKinematics(k *physics.Kinematic) Option {
	return func(b *Beam) { b.kin = k }
}

// WithSlices sets how many chunks [Beam.Slices] partitions the
// distribution into. Counts below one fall back to a single slice.
func WithSlices(n int) Option {
	return func(b *Beam) { b.slices = n }
}

// WithSource sets the sampler used by the generating mutators.
func WithSource(src sampler.Source) Option {
	return func(b *Beam) { b.src = src }
}

// Beam couples a particle distribution with species, energy and slicing
// metadata.
//
// A beam starts empty. Exactly one distribution is held at a time; each
// From* mutator replaces it wholesale, and a slice sequence observes
// the distribution as of the call that produced it.
type Beam struct {
	species physics.Particle
	kin     *physics.Kinematic
	slices  int
	src     sampler.Source

	dist *phasespace.Table
}

// New returns an empty beam. Without options it describes protons, one
// slice, and the process-wide sampler.
func New(opts ...Option) *Beam {
	b := &Beam{species: physics.Proton, slices: 1}
	for _, opt := range opts {
		opt(b)
	}
	if b.slices < 1 {
		b.slices = 1
	}
	if b.src == nil {
		b.src = sampler.Default()
	}
	return b
}

// NewFromTable returns a beam holding an existing distribution.
func NewFromTable(t *phasespace.Table, opts ...Option) (*Beam, error) {
	b := New(opts...)
	if err := b.FromTable(t); err != nil {
		return nil, err
	}
	return b, nil
}

// NewFromFile returns a beam loaded from a headered CSV file, keeping
// at most n rows.
func NewFromFile(path string, n int, opts ...Option) (*Beam, error) {
	b := New(opts...)
	if err := b.FromFile(path, n); err != nil {
		return nil, err
	}
	return b, nil
}

// FromTable replaces the distribution with an existing table. The table
// must hold at least one particle but may have any column layout.
func (b *Beam) FromTable(t *phasespace.Table) error {
	if t == nil || t.NumRows() < 1 {
		return fmt.Errorf("%w: empty input table", ErrEmptyDistribution)
	}
	b.dist = t
	return nil
}

// FromFile replaces the distribution with the first n rows of a CSV
// file. See [LoadFile] for the truncation rules.
func (b *Beam) FromFile(path string, n int) error {
	t, err := LoadFile(path, n)
	if err != nil {
		return err
	}
	return b.FromTable(t)
}

// FromSigmaMatrix replaces the distribution with n particles drawn from
// the covariance description.
func (b *Beam) FromSigmaMatrix(n int, spec SigmaSpec) error {
	t, err := Generate(b.src, n, spec)
	if err != nil {
		return err
	}
	return b.FromTable(t)
}

// FromTwiss replaces the distribution with n particles drawn from Twiss
// optics.
func (b *Beam) FromTwiss(n int, params TwissParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	t, err := GenerateTwiss(b.src, n, params)
	if err != nil {
		return err
	}
	return b.FromTable(t)
}

// Species returns the particle species.
func (b *Beam) Species() physics.Particle { return b.species }

// Kinematics returns the attached energy information, or nil.
func (b *Beam) Kinematics() *physics.Kinematic { return b.kin }

// SliceCount returns the configured number of slices.
func (b *Beam) SliceCount() int { return b.slices }

// Distribution returns the current particle table, or nil for an empty
// beam.
func (b *Beam) Distribution() *phasespace.Table { return b.dist }

// Empty reports whether the beam holds no distribution yet.
func (b *Beam) Empty() bool { return b.dist == nil }

// Particles returns the particle count, zero when empty.
func (b *Beam) Particles() int {
	if b.dist == nil {
		return 0
	}
	return b.dist.NumRows()
}

// Dims returns the number of coordinates per particle, zero when empty.
func (b *Beam) Dims() int {
	if b.dist == nil {
		return 0
	}
	return b.dist.NumCols()
}

// Brho returns the beam rigidity in T·m. It fails when no kinematics
// are attached.
func (b *Beam) Brho() (float64, error) {
	if b.kin == nil {
		return 0, ErrNoKinematics
	}
	return b.kin.Brho()
}

// Slices partitions the distribution into the configured slice count.
// See [Beam.SlicesN].
func (b *Beam) Slices() (iter.Seq[*phasespace.Table], error) {
	return b.SlicesN(b.slices)
}

// SlicesN lazily partitions the distribution into chunks of
// floor(particles/n) rows. The n full chunks are followed by one final
// candidate holding at most a chunk's worth of the remainder; iteration
// stops at the first empty chunk, and rows beyond the final candidate
// are not yielded. Each chunk is a view relabeled to the canonical
// [phasespace.Columns5] names and shares row storage with the
// distribution.
//
// The returned sequence is restartable and reads the distribution as of
// this call; later mutations are not observed.
func (b *Beam) SlicesN(n int) (iter.Seq[*phasespace.Table], error) {
	if b.dist == nil {
		return nil, ErrNoDistribution
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrSliceCount, n)
	}
	if b.dist.NumCols() != phasespace.Dim {
		return nil, fmt.Errorf("%w: %d columns", ErrColumnCount, b.dist.NumCols())
	}

	dist := b.dist
	size := dist.NumRows() / n
	return func(yield func(*phasespace.Table) bool) {
		for i := 0; i <= n; i++ {
			chunk := dist.Slice(i*size, (i+1)*size)
			if chunk.NumRows() < 1 {
				return
			}
			labeled, err := chunk.WithLabels(phasespace.Columns5...)
			if err != nil {
				return
			}
			if !yield(labeled) {
				return
			}
		}
	}, nil
}
