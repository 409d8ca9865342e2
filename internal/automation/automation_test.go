package automation

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beamphys/beamgen/internal/beam"
	"github.com/beamphys/beamgen/internal/config"
	"github.com/beamphys/beamgen/internal/storage"
)

const batchYAML = `name: test batch
description: two small beams
beams:
  - name: pencil
    config:
      particles: 50
      seed: 7
  - name: offset electron
    config:
      species: electron
      particles: 40
      slices: 2
      seed: 8
      twiss:
        EMITX: 1.0e-6
        EMITY: 1.0e-6
        X: 0.01
`

func writeBatch(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return path
}

func TestLoadBatchDefaults(t *testing.T) {
	batch, err := LoadBatch(writeBatch(t, batchYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if batch.Name != "test batch" {
		t.Errorf("expected batch name, got %q", batch.Name)
	}
	if len(batch.Beams) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(batch.Beams))
	}

	first := batch.Beams[0].Config
	if first.Species != config.DefaultSpecies {
		t.Errorf("expected default species, got %q", first.Species)
	}
	if first.Source != "twiss" {
		t.Errorf("expected default source, got %q", first.Source)
	}
	if first.Twiss["EMITX"] != config.DefaultEmit {
		t.Errorf("expected default emittance, got %g", first.Twiss["EMITX"])
	}

	second := batch.Beams[1].Config
	if second.Species != "electron" || second.Slices != 2 {
		t.Errorf("expected explicit step values kept, got %+v", second)
	}
	if second.Twiss["X"] != 0.01 {
		t.Errorf("expected explicit twiss kept, got %g", second.Twiss["X"])
	}
}

func TestLoadBatchMissingConfig(t *testing.T) {
	_, err := LoadBatch(writeBatch(t, "beams:\n  - name: broken\n"))
	if err == nil || !strings.Contains(err.Error(), "has no config") {
		t.Errorf("expected missing config error, got %v", err)
	}
}

func TestRunBatch(t *testing.T) {
	batch, err := LoadBatch(writeBatch(t, batchYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st := storage.New(t.TempDir())
	ids, err := RunBatch(batch, st)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 run ids, got %d", len(ids))
	}
	if ids[0] == ids[1] {
		t.Error("expected unique run ids within a batch")
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 stored runs, got %d", len(runs))
	}

	tab, err := st.LoadDistribution(ids[1])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tab.NumRows() != 40 {
		t.Errorf("expected 40 particles in second run, got %d", tab.NumRows())
	}
}

func TestRunSweepMeasuresBeta(t *testing.T) {
	base := config.DefaultConfig()
	base.Particles = 1000
	base.Seed = 11

	points, err := RunSweep(&Sweep{Base: base, Param: beam.TwissBetaX, Min: 1, Max: 3, Steps: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 sweep points, got %d", len(points))
	}
	if points[0].Value != 1 || points[2].Value != 3 {
		t.Errorf("expected inclusive endpoints, got %g..%g", points[0].Value, points[2].Value)
	}
	if points[2].Twiss.BetaX <= points[0].Twiss.BetaX {
		t.Errorf("expected measured beta to grow with the requested beta, got %g then %g",
			points[0].Twiss.BetaX, points[2].Twiss.BetaX)
	}
}

func TestRunSweepErrors(t *testing.T) {
	base := config.DefaultConfig()
	base.Particles = 50

	if _, err := RunSweep(&Sweep{Base: base, Param: beam.TwissBetaX, Min: 1, Max: 2, Steps: 1}); err == nil {
		t.Error("expected error for a single-step sweep")
	}
	if _, err := RunSweep(&Sweep{Base: base, Param: "FOO", Min: 1, Max: 2, Steps: 2}); !errors.Is(err, beam.ErrTwissParam) {
		t.Errorf("expected ErrTwissParam, got %v", err)
	}

	sigma := config.DefaultConfig()
	sigma.Source = "sigma"
	if _, err := RunSweep(&Sweep{Base: sigma, Param: beam.TwissBetaX, Min: 1, Max: 2, Steps: 2}); err == nil {
		t.Error("expected error for a non-twiss base config")
	}
}

func TestRunTrialsReproducible(t *testing.T) {
	base := config.DefaultConfig()
	base.Particles = 400
	base.Seed = 21

	first, err := RunTrials(base, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Trials != 3 {
		t.Errorf("expected 3 trials, got %d", first.Trials)
	}
	if first.MeanEmitX <= 0 || first.MeanEmitY <= 0 {
		t.Errorf("expected positive measured emittances, got %g / %g", first.MeanEmitX, first.MeanEmitY)
	}
	if first.SigmaEmitX < 0 {
		t.Errorf("expected non-negative spread, got %g", first.SigmaEmitX)
	}

	second, err := RunTrials(base, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("expected derived seeds to reproduce results, got %+v then %+v", first, second)
	}
}

func TestRunTrialsTooFew(t *testing.T) {
	if _, err := RunTrials(config.DefaultConfig(), 1); err == nil {
		t.Error("expected error for a single trial")
	}
}
