package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/periodica/orbsim/internal/backend"
	"github.com/periodica/orbsim/internal/nucleus"
)

const (
	DefaultTolerance   = 1e-8
	DefaultR0          = 1.25
	DefaultShells      = 3
	DefaultJitter      = 0.05
	DefaultCloudPoints = 2000
)

type Config struct {
	MathBackend   string        `yaml:"math_backend"`
	VectorBackend string        `yaml:"vector_backend"`
	Tolerance     float64       `yaml:"tolerance"`
	Seed          int64         `yaml:"seed"`
	Nucleus       NucleusConfig `yaml:"nucleus"`
	Orbital       OrbitalConfig `yaml:"orbital"`
}

type NucleusConfig struct {
	Model    string  `yaml:"model"`
	Protons  int     `yaml:"protons"`
	Neutrons int     `yaml:"neutrons"`
	R0       float64 `yaml:"r0"`
	Shells   int     `yaml:"shells"`
	Jitter   float64 `yaml:"jitter"`
}

type OrbitalConfig struct {
	N        int  `yaml:"n"`
	L        int  `yaml:"l"`
	M        int  `yaml:"m"`
	Z        int  `yaml:"z"`
	Points   int  `yaml:"points"`
	Screened bool `yaml:"screened"`
}

func DefaultConfig() *Config {
	return &Config{
		MathBackend:   "auto",
		VectorBackend: "auto",
		Tolerance:     DefaultTolerance,
		Nucleus: NucleusConfig{
			Model:    string(nucleus.ModelLiquidDrop),
			Protons:  1,
			Neutrons: 0,
			R0:       DefaultR0,
			Shells:   DefaultShells,
			Jitter:   DefaultJitter,
		},
		Orbital: OrbitalConfig{
			N:      1,
			L:      0,
			M:      0,
			Z:      1,
			Points: DefaultCloudPoints,
		},
	}
}

// Load reads a YAML file over the defaults, so omitted keys keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Apply pushes the configured backend selections onto the registry. An
// empty selection means auto.
func (c *Config) Apply(reg *backend.Registry) error {
	if err := reg.Select(backend.SubsystemMath, implOrAuto(c.MathBackend)); err != nil {
		return err
	}
	return reg.Select(backend.SubsystemVector, implOrAuto(c.VectorBackend))
}

func implOrAuto(s string) backend.Impl {
	if s == "" {
		return backend.ImplAuto
	}
	return backend.Impl(s)
}

// Generator builds a nucleus generator from the configured parameters,
// falling back to defaults for out-of-range values.
func (c *Config) Generator() *nucleus.Generator {
	g := nucleus.NewGenerator()
	if c.Nucleus.R0 > 0 {
		g.R0 = c.Nucleus.R0
	}
	if c.Nucleus.Shells > 0 {
		g.ShellCount = c.Nucleus.Shells
	}
	if c.Nucleus.Jitter >= 0 && c.Nucleus.Jitter <= 1 {
		g.Jitter = c.Nucleus.Jitter
	}
	return g
}
