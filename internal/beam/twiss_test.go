package beam

import (
	"errors"
	"math"
	"testing"
)

func TestTwissSigmaUpright(t *testing.T) {
	spec, err := TwissParams{
		"BETAX": 2, "ALPHAX": 0, "EMITX": 1,
		"BETAY": 1, "EMITY": 1,
	}.Sigma()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.S11 != 2 {
		t.Errorf("expected s11 2, got %g", spec.S11)
	}
	if spec.S12 != 0 {
		t.Errorf("expected s12 0, got %g", spec.S12)
	}
	if spec.S22 != 0.5 {
		t.Errorf("expected s22 0.5, got %g", spec.S22)
	}
}

func TestTwissSigmaTilted(t *testing.T) {
	spec, err := TwissParams{
		"BETAX": 2, "ALPHAX": 1, "EMITX": 1,
		"BETAY": 4, "ALPHAY": -0.5, "EMITY": 2,
	}.Sigma()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.S11 != 2 || spec.S12 != -1 || spec.S22 != 1 {
		t.Errorf("unexpected horizontal plane: s11=%g s12=%g s22=%g", spec.S11, spec.S12, spec.S22)
	}
	if spec.S33 != 8 || spec.S34 != 1 {
		t.Errorf("unexpected vertical plane: s33=%g s34=%g", spec.S33, spec.S34)
	}
	if want := (1 + 0.25) / 4 * 2; math.Abs(spec.S44-want) > 1e-12 {
		t.Errorf("expected s44 %g, got %g", want, spec.S44)
	}
}

func TestTwissDefaults(t *testing.T) {
	spec, err := TwissParams{"EMITX": 1, "EMITY": 1}.Sigma()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// beta defaults to 1, alpha to 0
	if spec.S11 != 1 || spec.S12 != 0 || spec.S22 != 1 {
		t.Errorf("unexpected defaulted optics: s11=%g s12=%g s22=%g", spec.S11, spec.S12, spec.S22)
	}
	for _, v := range spec.Mean() {
		if v != 0 {
			t.Errorf("expected centered beam, got mean %v", spec.Mean())
		}
	}
	if spec.DppRMS != 0 {
		t.Errorf("expected zero momentum spread, got %g", spec.DppRMS)
	}
}

func TestTwissMeans(t *testing.T) {
	spec, err := TwissParams{
		"EMITX": 1, "EMITY": 1,
		"X": 0.01, "PX": -0.002, "Y": 0.03, "PY": 0.004, "DPP": 1e-3, "DPPRMS": 2e-3,
	}.Sigma()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mean := spec.Mean()
	want := []float64{0.01, -0.002, 0.03, 0.004, 1e-3}
	for i := range want {
		if mean[i] != want[i] {
			t.Errorf("expected mean %g at %d, got %g", want[i], i, mean[i])
		}
	}
	if spec.DppRMS != 2e-3 {
		t.Errorf("expected momentum spread 2e-3, got %g", spec.DppRMS)
	}
}

func TestTwissMissingEmittance(t *testing.T) {
	_, err := TwissParams{"EMITX": 1}.Sigma()
	if !errors.Is(err, ErrMissingEmittance) {
		t.Errorf("expected ErrMissingEmittance for EMITY, got %v", err)
	}
	_, err = TwissParams{"EMITY": 1}.Sigma()
	if !errors.Is(err, ErrMissingEmittance) {
		t.Errorf("expected ErrMissingEmittance for EMITX, got %v", err)
	}
}

func TestTwissUnknownKey(t *testing.T) {
	p := TwissParams{"EMITX": 1, "EMITY": 1, "BETAZ": 1}
	if err := p.Validate(); !errors.Is(err, ErrTwissParam) {
		t.Errorf("expected ErrTwissParam, got %v", err)
	}
	if _, err := p.Sigma(); !errors.Is(err, ErrTwissParam) {
		t.Errorf("expected ErrTwissParam from Sigma, got %v", err)
	}
}

func TestTwissBetaRange(t *testing.T) {
	_, err := TwissParams{"EMITX": 1, "EMITY": 1, "BETAX": 0}.Sigma()
	if !errors.Is(err, ErrBetaRange) {
		t.Errorf("expected ErrBetaRange, got %v", err)
	}
	_, err = TwissParams{"EMITX": 1, "EMITY": 1, "BETAY": -2}.Sigma()
	if !errors.Is(err, ErrBetaRange) {
		t.Errorf("expected ErrBetaRange, got %v", err)
	}
}
