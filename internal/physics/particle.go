package physics

import (
	"fmt"
	"sort"
	"strings"
)

// Particle identifies a species by rest mass and charge.
type Particle struct {
	Name   string
	Mass   float64 // rest mass energy [MeV/c²]
	Charge int     // elementary charges
}

// Standard species, masses in MeV/c² (CODATA 2018).
var (
	Proton     = Particle{Name: "proton", Mass: 938.27208816, Charge: 1}
	AntiProton = Particle{Name: "antiproton", Mass: 938.27208816, Charge: -1}
	Electron   = Particle{Name: "electron", Mass: 0.51099895, Charge: -1}
	Positron   = Particle{Name: "positron", Mass: 0.51099895, Charge: 1}
	Muon       = Particle{Name: "muon", Mass: 105.6583755, Charge: -1}
)

var species = map[string]Particle{
	"proton":     Proton,
	"antiproton": AntiProton,
	"electron":   Electron,
	"positron":   Positron,
	"muon":       Muon,
}

// Species looks up a particle by name, case-insensitively.
func Species(name string) (Particle, error) {
	p, ok := species[strings.ToLower(name)]
	if !ok {
		return Particle{}, fmt.Errorf("%w: %q", ErrUnknownSpecies, name)
	}
	return p, nil
}

// SpeciesNames lists the known species names in sorted order.
func SpeciesNames() []string {
	names := make([]string, 0, len(species))
	for n := range species {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
