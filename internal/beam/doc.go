// Package beam builds particle distributions in transverse phase space.
//
// A [Beam] couples a five-column particle table with species, energy
// and slicing metadata. Distributions come from one of four sources:
//
//   - [Beam.FromTable]: adopt an existing table
//   - [Beam.FromFile]: load a headered CSV, truncated to the first n rows
//   - [Beam.FromSigmaMatrix]: draw from a covariance description
//   - [Beam.FromTwiss]: draw from Twiss optics
//
// The free functions [Generate], [GenerateTwiss] and [LoadFile] produce
// bare tables without beam metadata.
//
// # Example
//
//	b := beam.New(
//		beam.WithSpecies(physics.Proton),
//		beam.WithSlices(4),
//		beam.WithSource(sampler.New(42)),
//	)
//	b.FromTwiss(10000, beam.TwissParams{
//		"BETAX": 9.5, "EMITX": 2.5e-6,
//		"BETAY": 4.2, "EMITY": 2.5e-6,
//	})
//	slices, _ := b.Slices()
//	for chunk := range slices {
//		// 2500-particle chunks labeled Y, T, Z, P, D
//	}
//
// # Thread Safety
//
// Beam instances are NOT thread-safe. Construction and slicing follow a
// single-writer discipline; share only the tables a finished beam
// yields.
package beam
