package config

import "sort"

var Presets = map[string]map[string]*Config{
	"proton": {
		"pencil": {
			Species: "proton", Momentum: 570.8, Particles: 1000, Slices: 1, Source: "twiss",
			Twiss: TwissConfig{"EMITX": 1e-9, "EMITY": 1e-9},
		},
		"injection": {
			Species: "proton", Momentum: 570.8, Particles: 10000, Slices: 4, Source: "twiss",
			Twiss: TwissConfig{
				"BETAX": 5.6, "ALPHAX": -0.8, "EMITX": 2.5e-6,
				"BETAY": 3.9, "ALPHAY": 0.3, "EMITY": 2.2e-6,
				"DPPRMS": 1.2e-3,
			},
		},
		"flattop": {
			Species: "proton", Momentum: 24000, Particles: 10000, Slices: 8, Source: "twiss",
			Twiss: TwissConfig{
				"BETAX": 22.0, "EMITX": 4e-7,
				"BETAY": 12.5, "EMITY": 3.5e-7,
				"DPPRMS": 2e-4,
			},
		},
		"uncorrelated": {
			Species: "proton", Momentum: 570.8, Particles: 5000, Slices: 2, Source: "sigma",
			Sigma: SigmaConfig{
				S11: 1e-5, S22: 4e-6, S33: 8e-6, S44: 3e-6, DppRMS: 1e-3,
			},
		},
	},
	"electron": {
		"linac": {
			Species: "electron", Momentum: 100, Particles: 5000, Slices: 1, Source: "twiss",
			Twiss: TwissConfig{
				"BETAX": 1.2, "EMITX": 5e-8,
				"BETAY": 1.2, "EMITY": 5e-8,
				"DPPRMS": 5e-4,
			},
		},
		"offset": {
			Species: "electron", Momentum: 100, Particles: 2000, Slices: 1, Source: "twiss",
			Twiss: TwissConfig{
				"X": 1e-3, "Y": -5e-4, "DPP": 2e-3,
				"EMITX": 5e-8, "EMITY": 5e-8,
			},
		},
	},
	"muon": {
		"frontend": {
			Species: "muon", Momentum: 200, Particles: 10000, Slices: 4, Source: "twiss",
			Twiss: TwissConfig{
				"BETAX": 0.8, "EMITX": 2e-3,
				"BETAY": 0.8, "EMITY": 2e-3,
				"DPPRMS": 4e-2,
			},
		},
	},
}

func GetPreset(species, preset string) *Config {
	group, ok := Presets[species]
	if !ok {
		return nil
	}
	cfg, ok := group[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(species string) []string {
	group, ok := Presets[species]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
