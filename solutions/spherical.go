package solutions

import (
	"math"

	"github.com/mantleflow/assess/coefficients"
	"github.com/mantleflow/assess/harmonics"
	"github.com/mantleflow/assess/utils"
)

// SphericalSolution is the analytical Stokes flow in a 3D spherical shell
// Rm <= r <= Rp driven at a single harmonic degree l and order m. The
// velocity is poloidal, u = curl curl (P(r) Ylm rhat r).
type SphericalSolution struct {
	Rp, Rm float64
	L, M   int
	G, Nu  float64

	rp           float64
	delta        bool
	upper, lower coefficients.Set
	k            int
	part         float64
}

// NewSphericalStokesSolutionDeltaFreeSlip builds the delta-forced
// free-slip solution. The forcing is g*delta(r-rp)*Ylm(theta,phi) rhat.
func NewSphericalStokesSolutionDeltaFreeSlip(Rp, Rm, rp float64, l, m int, g, nu float64) (*SphericalSolution, error) {
	if err := checkDeltaGeometry(Rp, Rm, rp); err != nil {
		return nil, err
	}
	return &SphericalSolution{
		Rp: Rp, Rm: Rm, L: l, M: m, G: g, Nu: nu, rp: rp, delta: true,
		upper: coefficients.SphereDeltaFS(Rp, Rm, rp, l, g, nu, 1),
		lower: coefficients.SphereDeltaFS(Rp, Rm, rp, l, g, nu, -1),
	}, nil
}

// NewSphericalStokesSolutionDeltaZeroSlip is the zero-slip counterpart.
func NewSphericalStokesSolutionDeltaZeroSlip(Rp, Rm, rp float64, l, m int, g, nu float64) (*SphericalSolution, error) {
	if err := checkDeltaGeometry(Rp, Rm, rp); err != nil {
		return nil, err
	}
	return &SphericalSolution{
		Rp: Rp, Rm: Rm, L: l, M: m, G: g, Nu: nu, rp: rp, delta: true,
		upper: coefficients.SphereDeltaNS(Rp, Rm, rp, l, g, nu, 1),
		lower: coefficients.SphereDeltaNS(Rp, Rm, rp, l, g, nu, -1),
	}, nil
}

// NewSphericalStokesSolutionDeltaZeroFreeSlip mixes the conditions:
// zero-slip at r=Rp, free-slip at r=Rm.
func NewSphericalStokesSolutionDeltaZeroFreeSlip(Rp, Rm, rp float64, l, m int, g, nu float64) (*SphericalSolution, error) {
	if err := checkDeltaGeometry(Rp, Rm, rp); err != nil {
		return nil, err
	}
	return &SphericalSolution{
		Rp: Rp, Rm: Rm, L: l, M: m, G: g, Nu: nu, rp: rp, delta: true,
		upper: coefficients.SphereDeltaNSFS(Rp, Rm, rp, l, g, nu, 1),
		lower: coefficients.SphereDeltaNSFS(Rp, Rm, rp, l, g, nu, -1),
	}, nil
}

// NewSphericalStokesSolutionSmoothFreeSlip builds the smooth-forced
// free-slip solution with forcing g*r^k*Ylm(theta,phi) rhat.
func NewSphericalStokesSolutionSmoothFreeSlip(Rp, Rm float64, k, l, m int, g, nu float64) (*SphericalSolution, error) {
	cs, E := coefficients.SphereSmoothFS(Rp, Rm, k, l, g, nu)
	return newSphericalSmooth(Rp, Rm, k, l, m, g, nu, cs, E)
}

// NewSphericalStokesSolutionSmoothZeroSlip is the zero-slip counterpart.
func NewSphericalStokesSolutionSmoothZeroSlip(Rp, Rm float64, k, l, m int, g, nu float64) (*SphericalSolution, error) {
	cs, E := coefficients.SphereSmoothNS(Rp, Rm, k, l, g, nu)
	return newSphericalSmooth(Rp, Rm, k, l, m, g, nu, cs, E)
}

// NewSphericalStokesSolutionSmoothZeroFreeSlip mixes the conditions:
// zero-slip at r=Rp, free-slip at r=Rm.
func NewSphericalStokesSolutionSmoothZeroFreeSlip(Rp, Rm float64, k, l, m int, g, nu float64) (*SphericalSolution, error) {
	cs, E := coefficients.SphereSmoothNSFS(Rp, Rm, k, l, g, nu)
	return newSphericalSmooth(Rp, Rm, k, l, m, g, nu, cs, E)
}

func newSphericalSmooth(Rp, Rm float64, k, l, m int, g, nu float64,
	cs coefficients.Set, E float64) (*SphericalSolution, error) {
	if err := checkShellGeometry(Rp, Rm); err != nil {
		return nil, err
	}
	return &SphericalSolution{
		Rp: Rp, Rm: Rm, L: l, M: m, G: g, Nu: nu,
		upper: cs, lower: cs, k: k, part: E,
	}, nil
}

func (s *SphericalSolution) set(r float64) coefficients.Set {
	if s.delta && r < s.rp {
		return s.lower
	}
	return s.upper
}

func (s *SphericalSolution) exps() [4]int {
	return [4]int{s.L, -s.L - 1, s.L + 2, -s.L + 1}
}

func (s *SphericalSolution) pDeriv(r float64, d int) (v float64) {
	var (
		cs = s.set(r)
		co = [4]float64{cs.A, cs.B, cs.C, cs.D}
	)
	for i, e := range s.exps() {
		v += radialTerm(co[i], e, r, d)
	}
	if !s.delta {
		v += radialTerm(s.part, s.k+3, r, d)
	}
	return
}

// P is the poloidal scalar radial profile.
func (s *SphericalSolution) P(r float64) float64 { return s.pDeriv(r, 0) }

// DPDR is the radial derivative of P.
func (s *SphericalSolution) DPDR(r float64) float64 { return s.pDeriv(r, 1) }

// VelocitySpherical evaluates the velocity components at (r, theta, phi).
func (s *SphericalSolution) VelocitySpherical(r, theta, phi float64) (ur, utheta, uphi float64) {
	var (
		ll   = float64(s.L * (s.L + 1))
		tang = s.DPDR(r) + s.P(r)/r
	)
	ur = ll * s.P(r) / r * harmonics.Y(s.L, s.M, theta, phi)
	utheta = tang * harmonics.DYDTheta(s.L, s.M, theta, phi)
	uphi = tang / math.Sin(theta) * harmonics.DYDPhi(s.L, s.M, theta, phi)
	return
}

// Velocity evaluates the Cartesian velocity at (x, y, z).
func (s *SphericalSolution) Velocity(x, y, z float64) (ux, uy, uz float64) {
	var (
		r, theta, phi  = harmonics.ToSpherical(x, y, z)
		ur, ut, up     = s.VelocitySpherical(r, theta, phi)
		st, ct, sp, cp = math.Sin(theta), math.Cos(theta), math.Sin(phi), math.Cos(phi)
	)
	ux = ur*st*cp + ut*ct*cp - up*sp
	uy = ur*st*sp + ut*ct*sp + up*cp
	uz = ur*ct - ut*st
	return
}

// Pressure evaluates the dynamic pressure at (r, theta, phi). The r^l and
// r^(-l-1) basis terms are harmonic and pressure-free; only the remaining
// two and the smooth particular term contribute.
func (s *SphericalSolution) Pressure(r, theta, phi float64) (p float64) {
	var (
		cs = s.set(r)
		co = [4]float64{cs.A, cs.B, cs.C, cs.D}
		ll = float64(s.L * (s.L + 1))
	)
	for i, e := range s.exps() {
		fe := float64(e)
		p += co[i] * (fe - 1) * (fe*(fe+1) - ll) * utils.POW(r, e-2)
	}
	if !s.delta {
		fe := float64(s.k + 3)
		p += s.part * (fe - 1) * (fe*(fe+1) - ll) * utils.POW(r, s.k+1)
	}
	p *= s.Nu * harmonics.Y(s.L, s.M, theta, phi)
	return
}
