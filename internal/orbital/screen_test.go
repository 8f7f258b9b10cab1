package orbital_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/periodica/orbsim/internal/orbital"
)

func TestEffectiveCharge_Tabulated(t *testing.T) {
	cases := []struct {
		z, n, l int
		want    float64
	}{
		{1, 1, 0, 1.000},
		{2, 1, 0, 1.688},
		{6, 2, 1, 3.136},
		{8, 2, 0, 4.492},
		{26, 3, 2, 6.879},
		{54, 5, 1, 10.970},
		{86, 6, 1, 14.522},
	}
	for _, tc := range cases {
		got := orbital.EffectiveCharge(tc.z, tc.n, tc.l)
		assert.InDelta(t, tc.want, got, 1e-12, "Z=%d n=%d l=%d", tc.z, tc.n, tc.l)
	}
}

func TestEffectiveCharge_ExtrapolatesFromNearestEntry(t *testing.T) {
	// 6s is tabulated up to Z=56; lanthanum extends it at 0.85 per proton.
	got := orbital.EffectiveCharge(57, 6, 0)
	assert.InDelta(t, 6.333+0.85, got, 1e-12)

	got = orbital.EffectiveCharge(60, 6, 0)
	assert.InDelta(t, 6.333+0.85*4, got, 1e-12)
}

func TestEffectiveCharge_SlaterFallback(t *testing.T) {
	// Lithium 2p has no table entry and nothing below it, so Slater's rules
	// apply: sigma = 2*0.85 gives Zeff = 1.3.
	assert.InDelta(t, 1.3, orbital.EffectiveCharge(3, 2, 1), 1e-12)

	// Hydrogen in a 2p state clamps at 1.
	assert.InDelta(t, 1.0, orbital.EffectiveCharge(1, 2, 1), 1e-12)

	// l beyond f never hits the table.
	want := 50.0 - (18 + 18*0.85 + 0.35*13)
	assert.InDelta(t, want, orbital.EffectiveCharge(50, 5, 4), 1e-12)
}

func TestEffectiveCharge_MonotonicIn1s(t *testing.T) {
	prev := 0.0
	for z := 1; z <= 10; z++ {
		got := orbital.EffectiveCharge(z, 1, 0)
		assert.Greater(t, got, prev, "Z=%d", z)
		prev = got
	}
}

func TestEffectiveCharge_InvalidArguments(t *testing.T) {
	assert.Equal(t, 1.0, orbital.EffectiveCharge(0, 1, 0))
	assert.Equal(t, 1.0, orbital.EffectiveCharge(-4, 1, 0))
	assert.Equal(t, 1.0, orbital.EffectiveCharge(6, 0, 0))
	assert.Equal(t, 1.0, orbital.EffectiveCharge(6, 1, 1))
	assert.Equal(t, 1.0, orbital.EffectiveCharge(6, 2, -1))
}

func TestScreened_MatchesBareHydrogen(t *testing.T) {
	e := newEngine()

	// Zeff for hydrogen 1s is exactly 1, so screening changes nothing.
	for _, r := range []float64{0, 0.5, 1, 3} {
		bare, err := e.RadialWavefunction(1, 0, r, 1)
		require.NoError(t, err)
		screened, err := e.RadialWavefunctionScreened(1, 0, r, 1)
		require.NoError(t, err)
		assert.Equal(t, bare, screened, "r=%g", r)
	}

	bare, err := e.Probability(1, 0, 0, 1, 0.4, 0.2, 1)
	require.NoError(t, err)
	screened, err := e.ProbabilityScreened(1, 0, 0, 1, 0.4, 0.2, 1)
	require.NoError(t, err)
	assert.Equal(t, bare, screened)
}

func TestScreened_ContractsHeliumOrbital(t *testing.T) {
	e := newEngine()

	// Helium's 1.688 effective charge pulls density inward: the screened
	// density at the origin-side radius exceeds the bare-hydrogen one.
	bare, err := e.RadialWavefunction(1, 0, 0.2, 1)
	require.NoError(t, err)
	screened, err := e.RadialWavefunctionScreened(1, 0, 0.2, 2)
	require.NoError(t, err)
	assert.Greater(t, screened, bare)

	want, err := e.RadialWavefunction(1, 0, 0.2, 1.688)
	require.NoError(t, err)
	assert.Equal(t, want, screened)
}

func TestScreened_DomainErrors(t *testing.T) {
	e := newEngine()

	_, err := e.RadialWavefunctionScreened(2, 2, 1, 6)
	assert.ErrorIs(t, err, orbital.ErrDomain)
	_, err = e.ProbabilityScreened(2, 1, 2, 1, 0, 0, 6)
	assert.ErrorIs(t, err, orbital.ErrDomain)
}

func TestShellRadiusAngstrom(t *testing.T) {
	// Hydrogen ground state recovers the Bohr radius.
	assert.InDelta(t, 0.529177, orbital.ShellRadiusAngstrom(1, 0, 1), 1e-12)

	// Carbon 2p: a0 * 4 / 3.136.
	want := 0.529177 * 4 / 3.136
	assert.InDelta(t, want, orbital.ShellRadiusAngstrom(2, 1, 6), 1e-12)

	assert.Zero(t, orbital.ShellRadiusAngstrom(0, 0, 6))

	// Radii shrink as the effective charge climbs across a period.
	assert.Greater(t,
		orbital.ShellRadiusAngstrom(2, 1, 5),
		orbital.ShellRadiusAngstrom(2, 1, 9))

	for z := 1; z <= 90; z++ {
		r := orbital.ShellRadiusAngstrom(3, 0, z)
		assert.False(t, math.IsNaN(r) || math.IsInf(r, 0), "Z=%d", z)
		assert.Greater(t, r, 0.0, "Z=%d", z)
	}
}
