package automation

import (
	"fmt"
	"maps"
	"os"
	"time"

	"github.com/beamphys/beamgen/internal/analysis"
	"github.com/beamphys/beamgen/internal/beam"
	"github.com/beamphys/beamgen/internal/config"
	"github.com/beamphys/beamgen/internal/storage"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"
)

// Batch defines a scripted sequence of beam builds
type Batch struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Beams       []BatchBeam `yaml:"beams"`
}

// BatchBeam is a single build step in a batch
type BatchBeam struct {
	Name   string         `yaml:"name"`
	Config *config.Config `yaml:"config"`
}

// LoadBatch loads a batch from a YAML file. Absent config fields fall
// back to the generator defaults.
func LoadBatch(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var batch Batch
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return nil, err
	}

	def := config.DefaultConfig()
	for i := range batch.Beams {
		step := &batch.Beams[i]
		if step.Config == nil {
			return nil, fmt.Errorf("automation: batch step %d (%s) has no config", i+1, step.Name)
		}
		if step.Config.Species == "" {
			step.Config.Species = def.Species
		}
		if step.Config.Particles == 0 {
			step.Config.Particles = def.Particles
		}
		if step.Config.Slices == 0 {
			step.Config.Slices = def.Slices
		}
		if step.Config.Source == "" {
			step.Config.Source = def.Source
		}
		if step.Config.Source == "twiss" && step.Config.Twiss == nil {
			step.Config.Twiss = maps.Clone(def.Twiss)
		}
	}

	return &batch, nil
}

// RunBatch builds every beam in sequence and saves each to the store.
// It returns the run IDs in batch order.
func RunBatch(batch *Batch, st *storage.Store) ([]string, error) {
	if err := st.Init(); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(batch.Beams))
	for i, step := range batch.Beams {
		fmt.Printf("building %d/%d: %s\n", i+1, len(batch.Beams), step.Name)

		b, err := step.Config.Build()
		if err != nil {
			return ids, fmt.Errorf("batch step %q: %w", step.Name, err)
		}
		if b.Empty() {
			return ids, fmt.Errorf("batch step %q: %w", step.Name, beam.ErrNoDistribution)
		}

		meta := storage.RunMetadata{
			ID:       fmt.Sprintf("%s_%d_%02d", step.Config.Species, time.Now().Unix(), i),
			Species:  step.Config.Species,
			Source:   step.Config.Source,
			Slices:   step.Config.Slices,
			Seed:     step.Config.Seed,
			Momentum: step.Config.Momentum,
		}
		if step.Config.Source == "twiss" {
			meta.Params = step.Config.Twiss
		}
		if brho, err := b.Brho(); err == nil {
			meta.Brho = brho
		}

		id, err := st.Save(meta, b.Distribution())
		if err != nil {
			return ids, fmt.Errorf("batch step %q: %w", step.Name, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// Sweep varies one Twiss parameter across a range of values
type Sweep struct {
	Base  *config.Config
	Param string
	Min   float64
	Max   float64
	Steps int
}

// SweepPoint pairs a parameter value with the optics measured from the
// generated distribution
type SweepPoint struct {
	Value float64
	Twiss analysis.TwissEstimate
}

// RunSweep generates one beam per parameter value. The base config must
// use the twiss source.
func RunSweep(sweep *Sweep) ([]SweepPoint, error) {
	if sweep.Steps < 2 {
		return nil, fmt.Errorf("automation: sweep needs at least 2 steps, got %d", sweep.Steps)
	}
	if sweep.Base.Source != "twiss" {
		return nil, fmt.Errorf("automation: sweep requires the twiss source, got %q", sweep.Base.Source)
	}
	if err := (beam.TwissParams{sweep.Param: 0}).Validate(); err != nil {
		return nil, err
	}

	points := make([]SweepPoint, 0, sweep.Steps)
	width := (sweep.Max - sweep.Min) / float64(sweep.Steps-1)

	for i := 0; i < sweep.Steps; i++ {
		val := sweep.Min + float64(i)*width

		cfg := sweep.Base.Clone()
		if cfg.Twiss == nil {
			cfg.Twiss = config.TwissConfig{}
		}
		cfg.Twiss[sweep.Param] = val

		b, err := cfg.Build()
		if err != nil {
			return points, fmt.Errorf("sweep %s=%g: %w", sweep.Param, val, err)
		}
		est, err := analysis.EstimateTwiss(b.Distribution())
		if err != nil {
			return points, fmt.Errorf("sweep %s=%g: %w", sweep.Param, val, err)
		}

		points = append(points, SweepPoint{Value: val, Twiss: est})
		fmt.Printf("sweep %d/%d: %s=%.6g\n", i+1, sweep.Steps, sweep.Param, val)
	}

	return points, nil
}

// TrialResult holds emittance statistics across repeated generations
type TrialResult struct {
	Trials     int
	MeanEmitX  float64
	SigmaEmitX float64
	MeanEmitY  float64
	SigmaEmitY float64
}

// RunTrials regenerates the same config with distinct seeds to estimate
// the statistical spread of the measured emittances. Trial seeds derive
// from the base seed, so a trial set is reproducible.
func RunTrials(base *config.Config, trials int) (TrialResult, error) {
	if trials < 2 {
		return TrialResult{}, fmt.Errorf("automation: need at least 2 trials, got %d", trials)
	}

	emitX := make([]float64, 0, trials)
	emitY := make([]float64, 0, trials)

	for i := 0; i < trials; i++ {
		cfg := base.Clone()
		cfg.Seed = base.Seed + uint64(i) + 1

		b, err := cfg.Build()
		if err != nil {
			return TrialResult{}, fmt.Errorf("trial %d: %w", i+1, err)
		}
		if b.Empty() {
			return TrialResult{}, fmt.Errorf("trial %d: %w", i+1, beam.ErrNoDistribution)
		}
		est, err := analysis.EstimateTwiss(b.Distribution())
		if err != nil {
			return TrialResult{}, fmt.Errorf("trial %d: %w", i+1, err)
		}

		emitX = append(emitX, est.EmitX)
		emitY = append(emitY, est.EmitY)
	}

	return TrialResult{
		Trials:     trials,
		MeanEmitX:  stat.Mean(emitX, nil),
		SigmaEmitX: stat.StdDev(emitX, nil),
		MeanEmitY:  stat.Mean(emitY, nil),
		SigmaEmitY: stat.StdDev(emitY, nil),
	}, nil
}
