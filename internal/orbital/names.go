package orbital

import "fmt"

// Orbital identifies one real orbital by quantum numbers and display name.
type Orbital struct {
	N, L, M int
	Name    string
}

var subshellLetters = "spdfgh"

type lmKey struct{ l, m int }

// Chemistry labels for the real-orbital basis. m > 0 selects the cosine
// combination and m < 0 the sine combination, matching the real spherical
// harmonics the special-function layer evaluates.
var realSuffixes = map[lmKey]string{
	{1, 0}: "z", {1, 1}: "x", {1, -1}: "y",
	{2, 0}: "z²", {2, 1}: "xz", {2, -1}: "yz",
	{2, 2}: "x²-y²", {2, -2}: "xy",
	{3, 0}: "z³", {3, 1}: "xz²", {3, -1}: "yz²",
	{3, 2}: "z(x²-y²)", {3, -2}: "xyz",
	{3, 3}: "x(x²-3y²)", {3, -3}: "y(3x²-y²)",
}

// OrbitalName renders the conventional label for quantum numbers (n, l, m):
// "1s", "2p_z", "3d_xy", "4f_xyz". Combinations without a chemistry label
// fall back to the numeric form "5g_m=+2".
func OrbitalName(n, l, m int) string {
	letter := "?"
	if l >= 0 && l < len(subshellLetters) {
		letter = string(subshellLetters[l])
	}
	if l == 0 {
		return fmt.Sprintf("%d%s", n, letter)
	}
	if suffix, ok := realSuffixes[lmKey{l, m}]; ok {
		return fmt.Sprintf("%d%s_%s", n, letter, suffix)
	}
	return fmt.Sprintf("%d%s_m=%+d", n, letter, m)
}

// Orbitals enumerates every orbital with principal quantum number up to
// maxN in (n, l, m) order.
func Orbitals(maxN int) []Orbital {
	var out []Orbital
	for n := 1; n <= maxN; n++ {
		for l := 0; l < n; l++ {
			for m := -l; m <= l; m++ {
				out = append(out, Orbital{N: n, L: l, M: m, Name: OrbitalName(n, l, m)})
			}
		}
	}
	return out
}
