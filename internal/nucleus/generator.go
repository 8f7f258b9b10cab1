// Package nucleus builds deterministic nucleon arrangements from a seed,
// using either a uniform liquid-drop volume or concentric shells.
package nucleus

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/periodica/orbsim/internal/geom"
)

// Model selects the spatial distribution for generated nucleons.
type Model string

const (
	// ModelLiquidDrop samples positions uniformly inside the nuclear volume.
	ModelLiquidDrop Model = "liquid-drop"
	// ModelShell places nucleons on concentric shells with radial jitter.
	ModelShell Model = "shell"
)

var (
	ErrUnknownModel  = errors.New("nucleus: unknown model")
	ErrNegativeCount = errors.New("nucleus: negative nucleon count")
)

// Nucleon is a positioned nucleon with its isospin label. The label only
// tags the position; it does not change the spatial distribution.
type Nucleon struct {
	Pos    geom.Vec3
	Proton bool
}

// DefaultR0 is the empirical radius constant in femtometers for
// R = r0 A^(1/3).
const DefaultR0 = 1.25

const (
	defaultShellCount = 3
	defaultJitter     = 0.05
)

// Generator produces deterministic nucleon arrangements. Position math uses
// only plain value arithmetic, so output is bit-identical regardless of
// which vector implementation is selected anywhere else in the process.
type Generator struct {
	R0         float64
	ShellCount int
	Jitter     float64
}

func NewGenerator() *Generator {
	return &Generator{
		R0:         DefaultR0,
		ShellCount: defaultShellCount,
		Jitter:     defaultJitter,
	}
}

// Radius returns the nuclear radius R = r0 A^(1/3) in femtometers.
func (g *Generator) Radius(massNumber int) float64 {
	if massNumber <= 0 {
		return 0
	}
	return g.R0 * math.Cbrt(float64(massNumber))
}

// Nucleons generates typed positions for protons+neutrons nucleons. Output
// is a pure function of (model, protons, neutrons, seed). The RNG is scoped
// to the call and consumed in a fixed order: one shuffle of the type
// sequence, then per nucleon the radial draw followed by cos(theta) and phi.
func (g *Generator) Nucleons(model Model, protons, neutrons int, seed int64) ([]Nucleon, error) {
	if protons < 0 || neutrons < 0 {
		return nil, fmt.Errorf("nucleus: %d protons, %d neutrons: %w", protons, neutrons, ErrNegativeCount)
	}
	switch model {
	case ModelLiquidDrop, ModelShell:
	default:
		return nil, fmt.Errorf("nucleus: model %q: %w", model, ErrUnknownModel)
	}

	count := protons + neutrons
	rng := rand.New(rand.NewSource(seed))

	types := make([]bool, count)
	for i := 0; i < protons; i++ {
		types[i] = true
	}
	rng.Shuffle(len(types), func(i, j int) {
		types[i], types[j] = types[j], types[i]
	})

	radius := g.Radius(count)
	var positions []geom.Vec3
	if model == ModelLiquidDrop {
		positions = g.liquidDrop(rng, count, radius)
	} else {
		positions = g.shells(rng, count, radius)
	}

	out := make([]Nucleon, count)
	for i := range out {
		out[i] = Nucleon{Pos: positions[i], Proton: types[i]}
	}
	return out, nil
}

// Positions generates count untyped positions. It shares the geometry of
// Nucleons: the same (model, total count, seed) yields the same coordinates
// whether or not the nucleons are typed.
func (g *Generator) Positions(model Model, count int, seed int64) ([]geom.Vec3, error) {
	if count < 0 {
		return nil, fmt.Errorf("nucleus: %d nucleons: %w", count, ErrNegativeCount)
	}
	nucleons, err := g.Nucleons(model, count, 0, seed)
	if err != nil {
		return nil, err
	}
	out := make([]geom.Vec3, len(nucleons))
	for i, n := range nucleons {
		out[i] = n.Pos
	}
	return out, nil
}

// liquidDrop samples uniformly over the sphere volume: the cube root on the
// radial draw is what makes the density uniform rather than center-heavy.
func (g *Generator) liquidDrop(rng *rand.Rand, count int, radius float64) []geom.Vec3 {
	out := make([]geom.Vec3, count)
	for i := range out {
		r := radius * math.Cbrt(rng.Float64())
		cosTheta := 2*rng.Float64() - 1
		phi := 2 * math.Pi * rng.Float64()
		out[i] = geom.FromSpherical(r, math.Acos(cosTheta), phi)
	}
	return out
}

// shells distributes nucleons over ShellCount concentric shells at radii
// (i+1)/ShellCount * R. Shell i holds a share proportional to the capacity
// (i+1)^2, with the outermost shell absorbing the remainder, and every
// radius jittered by +-Jitter to avoid a lattice look.
func (g *Generator) shells(rng *rand.Rand, count int, radius float64) []geom.Vec3 {
	shellCount := g.ShellCount
	if shellCount < 1 {
		shellCount = 1
	}

	total := 0
	for i := 1; i <= shellCount; i++ {
		total += i * i
	}
	counts := make([]int, shellCount)
	remaining := count
	for i := 0; i < shellCount-1; i++ {
		c := int(math.Round(float64(count) * float64((i+1)*(i+1)) / float64(total)))
		if c > remaining {
			c = remaining
		}
		counts[i] = c
		remaining -= c
	}
	counts[shellCount-1] = remaining

	out := make([]geom.Vec3, 0, count)
	for i, n := range counts {
		shellR := radius * float64(i+1) / float64(shellCount)
		for j := 0; j < n; j++ {
			r := shellR * (1 + g.Jitter*(2*rng.Float64()-1))
			cosTheta := 2*rng.Float64() - 1
			phi := 2 * math.Pi * rng.Float64()
			out = append(out, geom.FromSpherical(r, math.Acos(cosTheta), phi))
		}
	}
	return out
}
