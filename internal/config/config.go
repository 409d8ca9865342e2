package config

import (
	"fmt"
	"maps"
	"os"

	"github.com/beamphys/beamgen/internal/beam"
	"github.com/beamphys/beamgen/internal/physics"
	"github.com/beamphys/beamgen/internal/sampler"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSpecies   = "proton"
	DefaultParticles = 1000
	DefaultSlices    = 1
	DefaultEmit      = 2.5e-6
	DefaultDppRMS    = 1e-3
)

// Config describes one beam: which species at which momentum, how many
// particles, and where the distribution comes from. Source is one of
// "twiss", "sigma", "file", or "none" for a beam left empty.
type Config struct {
	Species   string      `yaml:"species"`
	Momentum  float64     `yaml:"momentum"` // MeV/c, 0 leaves kinematics unset
	Particles int         `yaml:"particles"`
	Slices    int         `yaml:"slices"`
	Seed      uint64      `yaml:"seed"` // 0 seeds from the clock
	Source    string      `yaml:"source"`
	Twiss     TwissConfig `yaml:"twiss"`
	Sigma     SigmaConfig `yaml:"sigma"`
	File      FileConfig  `yaml:"file"`
}

// TwissConfig holds Twiss parameters under their canonical upper-case
// keys. Keys absent from the map take the generator defaults, which is
// why this is a map and not a struct.
type TwissConfig map[string]float64

// SigmaConfig spells out the independent covariance entries. Absent
// keys are zero.
type SigmaConfig struct {
	X   float64 `yaml:"x"`
	PX  float64 `yaml:"px"`
	Y   float64 `yaml:"y"`
	PY  float64 `yaml:"py"`
	Dpp float64 `yaml:"dpp"`

	S11 float64 `yaml:"s11"`
	S12 float64 `yaml:"s12"`
	S13 float64 `yaml:"s13"`
	S14 float64 `yaml:"s14"`
	S15 float64 `yaml:"s15"`
	S22 float64 `yaml:"s22"`
	S23 float64 `yaml:"s23"`
	S24 float64 `yaml:"s24"`
	S25 float64 `yaml:"s25"`
	S33 float64 `yaml:"s33"`
	S34 float64 `yaml:"s34"`
	S35 float64 `yaml:"s35"`
	S44 float64 `yaml:"s44"`
	S45 float64 `yaml:"s45"`

	DppRMS float64 `yaml:"dpprms"`
}

// Spec converts the YAML covariance block to the generator's form.
func (s SigmaConfig) Spec() beam.SigmaSpec {
	return beam.SigmaSpec{
		X: s.X, PX: s.PX, Y: s.Y, PY: s.PY, Dpp: s.Dpp,
		S11: s.S11, S12: s.S12, S13: s.S13, S14: s.S14, S15: s.S15,
		S22: s.S22, S23: s.S23, S24: s.S24, S25: s.S25,
		S33: s.S33, S34: s.S34, S35: s.S35,
		S44: s.S44, S45: s.S45,
		DppRMS: s.DppRMS,
	}
}

// FileConfig points the "file" source at a CSV distribution. Rows at or
// below zero keeps the whole file.
type FileConfig struct {
	Path string `yaml:"path"`
	Rows int    `yaml:"rows"`
}

func DefaultConfig() *Config {
	return &Config{
		Species:   DefaultSpecies,
		Particles: DefaultParticles,
		Slices:    DefaultSlices,
		Source:    "twiss",
		Twiss: TwissConfig{
			"EMITX":  DefaultEmit,
			"EMITY":  DefaultEmit,
			"DPPRMS": DefaultDppRMS,
		},
	}
}

// Load reads path over the defaults, so partial files work.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy, so presets can be modified safely.
func (c *Config) Clone() *Config {
	out := *c
	out.Twiss = maps.Clone(c.Twiss)
	return &out
}

// Build realizes the configured beam: species lookup, kinematics when a
// momentum is given, a seeded sampler when a seed is given, then the
// configured distribution source.
func (c *Config) Build() (*beam.Beam, error) {
	p, err := physics.Species(c.Species)
	if err != nil {
		return nil, err
	}
	opts := []beam.Option{beam.WithSpecies(p), beam.WithSlices(c.Slices)}
	if c.Momentum > 0 {
		k, err := physics.FromMomentum(p, c.Momentum)
		if err != nil {
			return nil, err
		}
		opts = append(opts, beam.WithKinematics(k))
	}
	if c.Seed != 0 {
		opts = append(opts, beam.WithSource(sampler.New(c.Seed)))
	}

	b := beam.New(opts...)
	switch c.Source {
	case "", "none":
		return b, nil
	case "twiss":
		if err := b.FromTwiss(c.Particles, beam.TwissParams(c.Twiss)); err != nil {
			return nil, err
		}
	case "sigma":
		if err := b.FromSigmaMatrix(c.Particles, c.Sigma.Spec()); err != nil {
			return nil, err
		}
	case "file":
		rows := c.File.Rows
		if rows <= 0 {
			rows = -1
		}
		if err := b.FromFile(c.File.Path, rows); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("config: unknown source %q", c.Source)
	}
	return b, nil
}
