// Package physics provides particle species and relativistic
// kinematics for beam descriptions.
//
//   - [Particle]: species value object (name, rest mass, charge)
//   - [Kinematic]: one beam energy, convertible between total energy,
//     kinetic energy, momentum and magnetic rigidity
//
// Predefined species cover the common beams: [Proton], [AntiProton],
// [Electron], [Positron], [Muon]. [Species] resolves a species by name
// for configuration surfaces.
//
// # Rigidity
//
// Magnetic rigidity follows from momentum and charge:
//
//	k, _ := physics.FromMomentum(physics.Proton, 1000) // MeV/c
//	brho, _ := k.Brho()                                // ≈ 3.3356 T·m
//
// Chargeless rigidity is undefined and returns an error.
package physics
