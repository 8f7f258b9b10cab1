package orbital

import (
	"fmt"
	"math"
)

const bohrRadiusAngstrom = 0.529177

type clementiKey struct {
	z       int
	orbital string
}

// Effective nuclear charges from Hartree-Fock calculations, Clementi &
// Raimondi, J. Chem. Phys. 38, 2686 (1963) and 47, 1300 (1967). Keyed by
// atomic number and outermost-relevant subshell label.
var clementiZeff = map[clementiKey]float64{
	{1, "1s"}: 1.000, {2, "1s"}: 1.688,
	{3, "1s"}: 2.691, {3, "2s"}: 1.279,
	{4, "1s"}: 3.685, {4, "2s"}: 1.912,
	{5, "1s"}: 4.680, {5, "2s"}: 2.576, {5, "2p"}: 2.421,
	{6, "1s"}: 5.673, {6, "2s"}: 3.217, {6, "2p"}: 3.136,
	{7, "1s"}: 6.665, {7, "2s"}: 3.847, {7, "2p"}: 3.834,
	{8, "1s"}: 7.658, {8, "2s"}: 4.492, {8, "2p"}: 4.453,
	{9, "1s"}: 8.650, {9, "2s"}: 5.128, {9, "2p"}: 5.100,
	{10, "1s"}: 9.642, {10, "2s"}: 5.758, {10, "2p"}: 5.758,
	{11, "3s"}: 2.507, {12, "3s"}: 3.308,
	{13, "3s"}: 4.117, {13, "3p"}: 4.066,
	{14, "3s"}: 4.903, {14, "3p"}: 4.285,
	{15, "3s"}: 5.642, {15, "3p"}: 4.886,
	{16, "3s"}: 6.367, {16, "3p"}: 5.482,
	{17, "3s"}: 7.068, {17, "3p"}: 6.116,
	{18, "3s"}: 7.757, {18, "3p"}: 6.764,
	{19, "4s"}: 3.495, {20, "4s"}: 4.398,
	{21, "3d"}: 4.632, {21, "4s"}: 4.983,
	{22, "3d"}: 5.133, {22, "4s"}: 5.382,
	{23, "3d"}: 5.598, {23, "4s"}: 5.902,
	{24, "3d"}: 6.222, {24, "4s"}: 5.965,
	{25, "3d"}: 6.461, {25, "4s"}: 6.706,
	{26, "3d"}: 6.879, {26, "4s"}: 7.067,
	{27, "3d"}: 7.287, {27, "4s"}: 7.428,
	{28, "3d"}: 7.695, {28, "4s"}: 7.790,
	{29, "3d"}: 8.192, {29, "4s"}: 7.837,
	{30, "3d"}: 8.552, {30, "4s"}: 8.309,
	{31, "4p"}: 6.222, {32, "4p"}: 6.780,
	{33, "4p"}: 7.449, {34, "4p"}: 8.287,
	{35, "4p"}: 9.028, {36, "4p"}: 9.769,
	{37, "5s"}: 4.985, {38, "5s"}: 5.965,
	{39, "4d"}: 6.256, {40, "4d"}: 6.844,
	{41, "4d"}: 7.455, {42, "4d"}: 7.997,
	{43, "4d"}: 8.539, {44, "4d"}: 9.112,
	{45, "4d"}: 9.578, {46, "4d"}: 10.128,
	{47, "4d"}: 10.637, {48, "4d"}: 11.173,
	{49, "5p"}: 6.937, {50, "5p"}: 7.632,
	{51, "5p"}: 8.431, {52, "5p"}: 9.337,
	{53, "5p"}: 10.153, {54, "5p"}: 10.970,
	{55, "6s"}: 5.360, {56, "6s"}: 6.333,
	{72, "5d"}: 10.758, {73, "5d"}: 11.145,
	{74, "5d"}: 11.531, {75, "5d"}: 11.916,
	{76, "5d"}: 12.298, {77, "5d"}: 12.677,
	{78, "5d"}: 13.052, {79, "5d"}: 13.422,
	{80, "5d"}: 13.786,
	{81, "6p"}: 10.165, {82, "6p"}: 10.921,
	{83, "6p"}: 11.795, {84, "6p"}: 12.756,
	{85, "6p"}: 13.639, {86, "6p"}: 14.522,
}

// EffectiveCharge returns the screened nuclear charge seen by an electron
// in subshell (n, l) of element Z. Tabulated Clementi-Raimondi values are
// used directly; an element missing from the table extrapolates from the
// nearest lower-Z entry for the same subshell at 0.85 per added proton,
// and subshells with no entry at all fall back to Slater screening rules.
// Arguments outside any physical subshell yield 1.
func EffectiveCharge(Z, n, l int) float64 {
	if Z <= 0 || n < 1 || l < 0 || l >= n {
		return 1
	}
	if orbital := subshellLabel(n, l); orbital != "" {
		if zeff, ok := clementiZeff[clementiKey{Z, orbital}]; ok {
			return zeff
		}
		bestZ, bestVal := 0, 0.0
		for key, val := range clementiZeff {
			if key.orbital == orbital && key.z <= Z && key.z > bestZ {
				bestZ, bestVal = key.z, val
			}
		}
		if bestZ > 0 {
			return bestVal + 0.85*float64(Z-bestZ)
		}
	}
	return slaterCharge(Z, n)
}

func subshellLabel(n, l int) string {
	const letters = "spdf"
	if l >= len(letters) {
		return ""
	}
	return fmt.Sprintf("%d%c", n, letters[l])
}

// slaterCharge applies Slater's rules with per-period shielding sums. The
// result is clamped to at least 1 so downstream radius formulas stay
// finite.
func slaterCharge(Z, n int) float64 {
	var sigma float64
	switch n {
	case 1:
		if Z > 1 {
			sigma = 0.30 * float64(Z-1)
		}
	case 2:
		sigma = 2*0.85 + 0.35*float64(max(0, Z-3))
	case 3:
		sigma = 2*1.00 + 8*0.85 + 0.35*float64(max(0, Z-11))
	case 4:
		sigma = 10*1.00 + 8*0.85 + 0.35*float64(max(0, Z-19))
	case 5:
		sigma = 18*1.00 + 18*0.85 + 0.35*float64(max(0, Z-37))
	case 6:
		sigma = 36*1.00 + 18*0.85 + 0.35*float64(max(0, Z-55))
	default:
		sigma = 0.85 * float64(Z-1)
	}
	return math.Max(1, float64(Z)-sigma)
}

// RadialWavefunctionScreened evaluates R_nl with the effective charge for
// (Z, n, l) substituted for the bare nuclear charge. Same evaluator, same
// domain rules.
func (e *Engine) RadialWavefunctionScreened(n, l int, r float64, Z int) (float64, error) {
	return e.RadialWavefunction(n, l, r, EffectiveCharge(Z, n, l))
}

// ProbabilityScreened evaluates the full density with the effective charge
// substituted for the bare nuclear charge.
func (e *Engine) ProbabilityScreened(n, l, m int, r, theta, phi float64, Z int) (float64, error) {
	return e.Probability(n, l, m, r, theta, phi, EffectiveCharge(Z, n, l))
}

// ShellRadiusAngstrom estimates the characteristic radius of subshell
// (n, l) for element Z in Angstroms, r = a0 n^2 / Zeff.
func ShellRadiusAngstrom(n, l, Z int) float64 {
	if n < 1 {
		return 0
	}
	return bohrRadiusAngstrom * float64(n*n) / EffectiveCharge(Z, n, l)
}
