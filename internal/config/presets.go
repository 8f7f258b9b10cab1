package config

var Presets = map[string]map[string]*Config{
	"nuclide": {
		"hydrogen-1": {
			Nucleus: NucleusConfig{Model: "liquid-drop", Protons: 1, Neutrons: 0,
				R0: DefaultR0, Shells: DefaultShells, Jitter: DefaultJitter},
		},
		"helium-4": {
			Nucleus: NucleusConfig{Model: "liquid-drop", Protons: 2, Neutrons: 2,
				R0: DefaultR0, Shells: DefaultShells, Jitter: DefaultJitter},
		},
		"carbon-12": {
			Nucleus: NucleusConfig{Model: "liquid-drop", Protons: 6, Neutrons: 6,
				R0: DefaultR0, Shells: DefaultShells, Jitter: DefaultJitter},
		},
		"oxygen-16": {
			Nucleus: NucleusConfig{Model: "liquid-drop", Protons: 8, Neutrons: 8,
				R0: DefaultR0, Shells: DefaultShells, Jitter: DefaultJitter},
		},
		"iron-56": {
			Nucleus: NucleusConfig{Model: "shell", Protons: 26, Neutrons: 30,
				R0: DefaultR0, Shells: DefaultShells, Jitter: DefaultJitter},
		},
		"gold-197": {
			Nucleus: NucleusConfig{Model: "shell", Protons: 79, Neutrons: 118,
				R0: DefaultR0, Shells: 4, Jitter: DefaultJitter},
		},
		"uranium-238": {
			Nucleus: NucleusConfig{Model: "shell", Protons: 92, Neutrons: 146,
				R0: DefaultR0, Shells: 5, Jitter: DefaultJitter},
		},
	},
	"orbital": {
		"1s": {
			Orbital: OrbitalConfig{N: 1, L: 0, M: 0, Z: 1, Points: DefaultCloudPoints},
		},
		"2p": {
			Orbital: OrbitalConfig{N: 2, L: 1, M: 0, Z: 1, Points: DefaultCloudPoints},
		},
		"3d": {
			Orbital: OrbitalConfig{N: 3, L: 2, M: 0, Z: 1, Points: DefaultCloudPoints},
		},
		"4f": {
			Orbital: OrbitalConfig{N: 4, L: 3, M: 0, Z: 1, Points: DefaultCloudPoints},
		},
		"carbon-2p": {
			Orbital: OrbitalConfig{N: 2, L: 1, M: 0, Z: 6, Points: DefaultCloudPoints, Screened: true},
		},
		"iron-3d": {
			Orbital: OrbitalConfig{N: 3, L: 2, M: 1, Z: 26, Points: DefaultCloudPoints, Screened: true},
		},
	},
}

func GetPreset(category, preset string) *Config {
	categoryPresets, ok := Presets[category]
	if !ok {
		return nil
	}
	cfg, ok := categoryPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(category string) []string {
	categoryPresets, ok := Presets[category]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(categoryPresets))
	for name := range categoryPresets {
		names = append(names, name)
	}
	return names
}
