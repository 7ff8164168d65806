/*
Package harmonics evaluates the real angular basis functions used by the
shell solutions: fully normalized real spherical harmonics Ylm on the 3D
sphere and the trigonometric basis implicit in the 2D solutions, plus the
coordinate conversions between Cartesian and polar/spherical frames.

The harmonics are orthonormal over the unit sphere and carry no
Condon-Shortley phase. Positive orders use cos(m phi), negative orders
sin(|m| phi), so that superpositions of real coefficients stay real.
*/
package harmonics

import "math"

// Y evaluates the real spherical harmonic of degree l and order m at
// colatitude theta and longitude phi.
func Y(l, m int, theta, phi float64) float64 {
	am := m
	if am < 0 {
		am = -am
	}
	v := normFactor(l, am) * AssocLegendre(l, am, math.Cos(theta))
	switch {
	case m > 0:
		return math.Sqrt2 * v * math.Cos(float64(m)*phi)
	case m < 0:
		return math.Sqrt2 * v * math.Sin(float64(am)*phi)
	}
	return v
}

// DYDTheta is the colatitude derivative of Y.
func DYDTheta(l, m int, theta, phi float64) float64 {
	am := m
	if am < 0 {
		am = -am
	}
	v := normFactor(l, am) * dAssocDTheta(l, am, theta)
	switch {
	case m > 0:
		return math.Sqrt2 * v * math.Cos(float64(m)*phi)
	case m < 0:
		return math.Sqrt2 * v * math.Sin(float64(am)*phi)
	}
	return v
}

// DYDPhi is the longitude derivative of Y. It vanishes identically for
// zonal (m=0) harmonics.
func DYDPhi(l, m int, theta, phi float64) float64 {
	if m == 0 {
		return 0
	}
	am := m
	if am < 0 {
		am = -am
	}
	v := math.Sqrt2 * normFactor(l, am) * AssocLegendre(l, am, math.Cos(theta))
	if m > 0 {
		return -float64(m) * v * math.Sin(float64(m)*phi)
	}
	return float64(am) * v * math.Cos(float64(am)*phi)
}

// AssocLegendre evaluates the unnormalized associated Legendre function
// Plm(x) without the Condon-Shortley phase, by the standard upward
// recursion in degree. It is zero for m > l and requires m >= 0 and
// |x| <= 1.
func AssocLegendre(l, m int, x float64) float64 {
	if m > l {
		return 0
	}
	// seed P_m^m = (2m-1)!! (1-x^2)^(m/2)
	pmm := 1.0
	if m > 0 {
		s := math.Sqrt((1 - x) * (1 + x))
		fact := 1.0
		for i := 0; i < m; i++ {
			pmm *= fact * s
			fact += 2
		}
	}
	if l == m {
		return pmm
	}
	pml := x * float64(2*m+1) * pmm
	if l == m+1 {
		return pml
	}
	for ll := m + 2; ll <= l; ll++ {
		p := (x*float64(2*ll-1)*pml - float64(ll+m-1)*pmm) / float64(ll-m)
		pmm, pml = pml, p
	}
	return pml
}

// dAssocDTheta is d/dtheta of Plm(cos theta), from the degree-lowering
// recurrence. Singular at the poles, as is the operator it feeds.
func dAssocDTheta(l, m int, theta float64) float64 {
	var (
		x = math.Cos(theta)
		s = math.Sin(theta)
	)
	return (float64(l)*x*AssocLegendre(l, m, x) -
		float64(l+m)*AssocLegendre(l-1, m, x)) / s
}

// normFactor is sqrt((2l+1)/(4 pi) * (l-m)!/(l+m)!), accumulated as a
// running product so large degrees stay in float range.
func normFactor(l, m int) float64 {
	ratio := 1.0
	for j := l - m + 1; j <= l+m; j++ {
		ratio *= float64(j)
	}
	return math.Sqrt(float64(2*l+1) / (4 * math.Pi * ratio))
}
