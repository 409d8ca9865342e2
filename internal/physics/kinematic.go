package physics

import (
	"fmt"
	"math"
)

// brhoFactor converts momentum in MeV/c to magnetic rigidity in T·m for
// one elementary charge: Bρ = p / 299.792458.
const brhoFactor = 299.792458

// Kinematic fixes a particle's energy. Momentum, Lorentz factors and
// rigidity all derive from the stored total energy.
type Kinematic struct {
	particle Particle
	etot     float64 // total energy [MeV]
}

// FromKineticEnergy builds kinematics from kinetic energy in MeV.
func FromKineticEnergy(p Particle, ek float64) (*Kinematic, error) {
	if ek < 0 {
		return nil, fmt.Errorf("%w: kinetic energy %g MeV", ErrEnergyRange, ek)
	}
	return &Kinematic{particle: p, etot: p.Mass + ek}, nil
}

// FromTotalEnergy builds kinematics from total energy in MeV.
func FromTotalEnergy(p Particle, e float64) (*Kinematic, error) {
	if e < p.Mass {
		return nil, fmt.Errorf("%w: total energy %g MeV below rest mass %g MeV", ErrEnergyRange, e, p.Mass)
	}
	return &Kinematic{particle: p, etot: e}, nil
}

// FromMomentum builds kinematics from momentum in MeV/c.
func FromMomentum(p Particle, mom float64) (*Kinematic, error) {
	if mom < 0 {
		return nil, fmt.Errorf("%w: momentum %g MeV/c", ErrEnergyRange, mom)
	}
	return &Kinematic{particle: p, etot: math.Hypot(mom, p.Mass)}, nil
}

// FromBrho builds kinematics from magnetic rigidity in T·m.
func FromBrho(p Particle, brho float64) (*Kinematic, error) {
	if p.Charge == 0 {
		return nil, fmt.Errorf("%w: %s", ErrChargeless, p.Name)
	}
	if brho < 0 {
		return nil, fmt.Errorf("%w: rigidity %g T·m", ErrEnergyRange, brho)
	}
	return FromMomentum(p, brho*brhoFactor*math.Abs(float64(p.Charge)))
}

// Particle returns the species.
func (k *Kinematic) Particle() Particle { return k.particle }

// TotalEnergy returns E in MeV.
func (k *Kinematic) TotalEnergy() float64 { return k.etot }

// KineticEnergy returns E minus the rest mass energy, in MeV.
func (k *Kinematic) KineticEnergy() float64 { return k.etot - k.particle.Mass }

// Momentum returns pc in MeV.
func (k *Kinematic) Momentum() float64 {
	return math.Sqrt(k.etot*k.etot - k.particle.Mass*k.particle.Mass)
}

// Gamma returns the Lorentz factor E/mc².
func (k *Kinematic) Gamma() float64 { return k.etot / k.particle.Mass }

// Beta returns v/c.
func (k *Kinematic) Beta() float64 { return k.Momentum() / k.etot }

// Brho returns the magnetic rigidity in T·m.
func (k *Kinematic) Brho() (float64, error) {
	if k.particle.Charge == 0 {
		return 0, fmt.Errorf("%w: %s", ErrChargeless, k.particle.Name)
	}
	return k.Momentum() / (brhoFactor * math.Abs(float64(k.particle.Charge))), nil
}
