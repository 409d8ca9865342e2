package beam

import "fmt"

// Twiss parameter keys accepted by [TwissParams].
const (
	TwissX      = "X"
	TwissPX     = "PX"
	TwissY      = "Y"
	TwissPY     = "PY"
	TwissDpp    = "DPP"
	TwissDppRMS = "DPPRMS"
	TwissBetaX  = "BETAX"
	TwissAlphaX = "ALPHAX"
	TwissBetaY  = "BETAY"
	TwissAlphaY = "ALPHAY"
	TwissEmitX  = "EMITX"
	TwissEmitY  = "EMITY"
)

var twissKeys = map[string]bool{
	TwissX: true, TwissPX: true, TwissY: true, TwissPY: true,
	TwissDpp: true, TwissDppRMS: true,
	TwissBetaX: true, TwissAlphaX: true,
	TwissBetaY: true, TwissAlphaY: true,
	TwissEmitX: true, TwissEmitY: true,
}

// TwissParams maps Twiss parameter keys to values. Optics default to
// BETA = 1 and ALPHA = 0 when absent; the emittances have no default
// and must be present.
type TwissParams map[string]float64

// Validate rejects keys outside the recognized Twiss set.
func (p TwissParams) Validate() error {
	for k := range p {
		if !twissKeys[k] {
			return fmt.Errorf("%w: %q", ErrTwissParam, k)
		}
	}
	return nil
}

func (p TwissParams) get(key string, def float64) float64 {
	if v, ok := p[key]; ok {
		return v
	}
	return def
}

// Sigma converts Twiss optics to the equivalent covariance description:
// σ11 = βε, σ12 = −αε and σ22 = γε with γ = (1+α²)/β, per plane.
func (p TwissParams) Sigma() (SigmaSpec, error) {
	if err := p.Validate(); err != nil {
		return SigmaSpec{}, err
	}
	emitX, ok := p[TwissEmitX]
	if !ok {
		return SigmaSpec{}, fmt.Errorf("%w: %s", ErrMissingEmittance, TwissEmitX)
	}
	emitY, ok := p[TwissEmitY]
	if !ok {
		return SigmaSpec{}, fmt.Errorf("%w: %s", ErrMissingEmittance, TwissEmitY)
	}

	betaX := p.get(TwissBetaX, 1)
	alphaX := p.get(TwissAlphaX, 0)
	betaY := p.get(TwissBetaY, 1)
	alphaY := p.get(TwissAlphaY, 0)
	if betaX <= 0 {
		return SigmaSpec{}, fmt.Errorf("%w: BETAX = %g", ErrBetaRange, betaX)
	}
	if betaY <= 0 {
		return SigmaSpec{}, fmt.Errorf("%w: BETAY = %g", ErrBetaRange, betaY)
	}
	gammaX := (1 + alphaX*alphaX) / betaX
	gammaY := (1 + alphaY*alphaY) / betaY

	return SigmaSpec{
		X:   p.get(TwissX, 0),
		PX:  p.get(TwissPX, 0),
		Y:   p.get(TwissY, 0),
		PY:  p.get(TwissPY, 0),
		Dpp: p.get(TwissDpp, 0),

		S11: betaX * emitX,
		S12: -alphaX * emitX,
		S22: gammaX * emitX,
		S33: betaY * emitY,
		S34: -alphaY * emitY,
		S44: gammaY * emitY,

		DppRMS: p.get(TwissDppRMS, 0),
	}, nil
}
