/*
Package coefficients computes the coefficients in the analytical solution to
the Stokes equations in cylindrical and spherical shell domains.

For a delta-function forcing concentrated at radius r' in the 2D cylindrical
shell the forcing term takes the form

	f = g delta(r-r') cos(n phi) rhat

where r is the distance from the origin, phi the angle with the x axis and n
the wave number. In the 3D spherical shell the forcing is

	f = g delta(r-r') Ylm(theta, phi) rhat

with Ylm the real spherical harmonic of degree l and order m. The smooth
variants replace the delta profile with g*r^k spanning the whole shell.

Each function returns the four coefficients A, B, C, D of the linear
combination of biharmonic radial basis functions that constitutes the exact
solution:

	2D: psi_n(r) = A r^n + B r^-n     + C r^(n+2) + D r^(-n+2)
	3D: P_l(r)   = A r^l + B r^(-l-1) + C r^(l+2) + D r^(-l+1)

For delta forcing the solution differs on either side of the anomaly radius:
sign=+1 selects the upper half (r > r'), substituting

	alpha_pm = Rp/r', alpha_mp = Rm/r', pm = +1, mp = -1

and sign=-1 the lower half (r < r') with the roles of the two shell radii
swapped. The smooth variants are one-sided and carry an additional
particular term G r^(k+3) (2D) or E r^(k+3) (3D) whose coefficient is
returned alongside the Set.

No input validation is performed here: radii out of order or a degree that
makes a denominator vanish (e.g. n=1 in the cylindrical formulas, l such
that l=k+1 or l=k+3 in the smooth spherical ones) produce Inf or NaN, which
callers must filter. This mirrors the mathematical resonance of the
underlying problem and is deliberate.
*/
package coefficients

import (
	"github.com/mantleflow/assess/utils"
)

// Set holds the four multipliers of the radial basis functions, in the
// fixed order documented in the package comment.
type Set struct {
	A, B, C, D float64
}

// IsFinite reports whether all four coefficients are finite, i.e. the
// inputs were not at a resonant degree or degenerate geometry.
func (s Set) IsFinite() bool {
	return !(isBad(s.A) || isBad(s.B) || isBad(s.C) || isBad(s.D))
}

func isBad(x float64) bool {
	return x != x || x > maxFloat || x < -maxFloat
}

const maxFloat = 1.7976931348623157e308

func pow(x float64, p int) float64 {
	return utils.POW(x, p)
}

// branch selects which shell radius plays the near role relative to the
// anomaly radius: sign>0 is the upper half of the solution (r > r').
func branch(upper, lower, sign float64) (alphaPM, alphaMP float64) {
	if sign > 0 {
		return upper, lower
	}
	return lower, upper
}
