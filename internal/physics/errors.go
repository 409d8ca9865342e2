package physics

import "errors"

// Domain errors for kinematics.
var (
	// ErrUnknownSpecies indicates a species name with no table entry.
	ErrUnknownSpecies = errors.New("physics: unknown particle species")

	// ErrEnergyRange indicates an energy, momentum or rigidity outside
	// the physical range for the particle.
	ErrEnergyRange = errors.New("physics: non-physical kinematic value")

	// ErrChargeless indicates a rigidity operation on a neutral particle.
	ErrChargeless = errors.New("physics: rigidity undefined for neutral particle")
)
