package config

var Presets = map[string]*Config{
	// The lesson-one reference case: Courant number 1.0, the step travels
	// one grid point per timestep.
	"step-hat": {
		Nx: 81, Length: 2.0, Steps: 25, Dt: 0.025, WaveSpeed: 1.0,
		InitialCondition: "hat", Boundary: "wrap",
	},
	"gaussian": {
		Nx: 81, Length: 2.0, Steps: 25, Dt: 0.025, WaveSpeed: 1.0,
		InitialCondition: "gaussian", Boundary: "wrap",
	},
	"sine": {
		Nx: 81, Length: 2.0, Steps: 50, Dt: 0.025, WaveSpeed: 1.0,
		InitialCondition: "sine", Boundary: "wrap",
	},
	// Fine grid at Courant 0.5: visible first-order diffusion of the step.
	"fine": {
		Nx: 201, Length: 2.0, Steps: 100, Dt: 0.005, WaveSpeed: 1.0,
		InitialCondition: "hat", Boundary: "wrap",
	},
	// Courant 1.25: deliberately violates the stability bound so the
	// oscillations and blow-up can be observed.
	"unstable": {
		Nx: 81, Length: 2.0, Steps: 25, Dt: 0.03125, WaveSpeed: 1.0,
		InitialCondition: "hat", Boundary: "wrap",
	},
	"clamped": {
		Nx: 81, Length: 2.0, Steps: 25, Dt: 0.025, WaveSpeed: 1.0,
		InitialCondition: "hat", Boundary: "clamp",
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
