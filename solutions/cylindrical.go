package solutions

import (
	"math"

	"github.com/mantleflow/assess/coefficients"
	"github.com/mantleflow/assess/harmonics"
	"github.com/mantleflow/assess/utils"
)

// CylindricalSolution is the analytical Stokes flow in a 2D cylindrical
// shell Rm <= r <= Rp driven at a single wave number n. The full fields
// are separable: the radial profiles below multiply cos(n phi) (stream
// function, radial velocity, pressure) or sin(n phi) (tangential
// velocity, shear stress).
type CylindricalSolution struct {
	Rp, Rm float64
	N      int
	G, Nu  float64

	rp           float64 // anomaly radius, delta forcing only
	delta        bool
	upper, lower coefficients.Set
	k            int     // forcing power, smooth only
	part         float64 // particular coefficient of r^(k+3), smooth only
}

// NewCylindricalStokesSolutionDeltaFreeSlip builds the delta-forced
// free-slip solution. The forcing is g*delta(r-rp)*cos(n phi) rhat.
func NewCylindricalStokesSolutionDeltaFreeSlip(Rp, Rm, rp float64, n int, g, nu float64) (*CylindricalSolution, error) {
	if err := checkDeltaGeometry(Rp, Rm, rp); err != nil {
		return nil, err
	}
	return &CylindricalSolution{
		Rp: Rp, Rm: Rm, N: n, G: g, Nu: nu, rp: rp, delta: true,
		upper: coefficients.CylinderDeltaFS(Rp, Rm, rp, n, g, nu, 1),
		lower: coefficients.CylinderDeltaFS(Rp, Rm, rp, n, g, nu, -1),
	}, nil
}

// NewCylindricalStokesSolutionDeltaZeroSlip is the zero-slip counterpart.
func NewCylindricalStokesSolutionDeltaZeroSlip(Rp, Rm, rp float64, n int, g, nu float64) (*CylindricalSolution, error) {
	if err := checkDeltaGeometry(Rp, Rm, rp); err != nil {
		return nil, err
	}
	return &CylindricalSolution{
		Rp: Rp, Rm: Rm, N: n, G: g, Nu: nu, rp: rp, delta: true,
		upper: coefficients.CylinderDeltaNS(Rp, Rm, rp, n, g, nu, 1),
		lower: coefficients.CylinderDeltaNS(Rp, Rm, rp, n, g, nu, -1),
	}, nil
}

// NewCylindricalStokesSolutionDeltaZeroFreeSlip mixes the conditions:
// zero-slip at r=Rp, free-slip at r=Rm.
func NewCylindricalStokesSolutionDeltaZeroFreeSlip(Rp, Rm, rp float64, n int, g, nu float64) (*CylindricalSolution, error) {
	if err := checkDeltaGeometry(Rp, Rm, rp); err != nil {
		return nil, err
	}
	return &CylindricalSolution{
		Rp: Rp, Rm: Rm, N: n, G: g, Nu: nu, rp: rp, delta: true,
		upper: coefficients.CylinderDeltaNSFS(Rp, Rm, rp, n, g, nu, 1),
		lower: coefficients.CylinderDeltaNSFS(Rp, Rm, rp, n, g, nu, -1),
	}, nil
}

// NewCylindricalStokesSolutionSmoothFreeSlip builds the smooth-forced
// free-slip solution. The forcing is g*r^k*cos(n phi) rhat over the
// whole shell.
func NewCylindricalStokesSolutionSmoothFreeSlip(Rp, Rm float64, k, n int, g, nu float64) (*CylindricalSolution, error) {
	cs, G := coefficients.CylinderSmoothFS(Rp, Rm, k, n, g, nu)
	return newCylindricalSmooth(Rp, Rm, k, n, g, nu, cs, G)
}

// NewCylindricalStokesSolutionSmoothZeroSlip is the zero-slip counterpart.
func NewCylindricalStokesSolutionSmoothZeroSlip(Rp, Rm float64, k, n int, g, nu float64) (*CylindricalSolution, error) {
	cs, G := coefficients.CylinderSmoothNS(Rp, Rm, k, n, g, nu)
	return newCylindricalSmooth(Rp, Rm, k, n, g, nu, cs, G)
}

// NewCylindricalStokesSolutionSmoothZeroFreeSlip mixes the conditions:
// zero-slip at r=Rp, free-slip at r=Rm.
func NewCylindricalStokesSolutionSmoothZeroFreeSlip(Rp, Rm float64, k, n int, g, nu float64) (*CylindricalSolution, error) {
	cs, G := coefficients.CylinderSmoothNSFS(Rp, Rm, k, n, g, nu)
	return newCylindricalSmooth(Rp, Rm, k, n, g, nu, cs, G)
}

func newCylindricalSmooth(Rp, Rm float64, k, n int, g, nu float64,
	cs coefficients.Set, G float64) (*CylindricalSolution, error) {
	if err := checkShellGeometry(Rp, Rm); err != nil {
		return nil, err
	}
	return &CylindricalSolution{
		Rp: Rp, Rm: Rm, N: n, G: g, Nu: nu,
		upper: cs, lower: cs, k: k, part: G,
	}, nil
}

func (s *CylindricalSolution) set(r float64) coefficients.Set {
	if s.delta && r < s.rp {
		return s.lower
	}
	return s.upper
}

func (s *CylindricalSolution) exps() [4]int {
	return [4]int{s.N, -s.N, s.N + 2, -s.N + 2}
}

// psiDeriv is the d-th radial derivative of the stream function profile.
func (s *CylindricalSolution) psiDeriv(r float64, d int) (v float64) {
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

// Psi is the radial profile of the stream function; the full field is
// Psi(r)*cos(n phi).
func (s *CylindricalSolution) Psi(r float64) float64 { return s.psiDeriv(r, 0) }

// DPsiDR is the radial derivative of Psi.
func (s *CylindricalSolution) DPsiDR(r float64) float64 { return s.psiDeriv(r, 1) }

// VelocityPolar evaluates the velocity components at (r, phi).
func (s *CylindricalSolution) VelocityPolar(r, phi float64) (ur, uphi float64) {
	var (
		fn = float64(s.N)
	)
	ur = fn / r * s.Psi(r) * math.Cos(fn*phi)
	uphi = -s.DPsiDR(r) * math.Sin(fn*phi)
	return
}

// Velocity evaluates the Cartesian velocity at (x, y).
func (s *CylindricalSolution) Velocity(x, y float64) (ux, uy float64) {
	var (
		r, phi   = harmonics.ToPolar(x, y)
		ur, uphi = s.VelocityPolar(r, phi)
		cp, sp   = math.Cos(phi), math.Sin(phi)
	)
	ux = ur*cp - uphi*sp
	uy = ur*sp + uphi*cp
	return
}

// Pressure evaluates the dynamic pressure at (r, phi). Only the r^(n+2)
// and r^(-n+2) basis terms and the smooth particular term carry a
// pressure signature; the harmonic terms are pressure-free.
func (s *CylindricalSolution) Pressure(r, phi float64) (p float64) {
	var (
		cs = s.set(r)
		co = [4]float64{cs.A, cs.B, cs.C, cs.D}
		fn = float64(s.N)
	)
	for i, e := range s.exps() {
		fe := float64(e)
		p += co[i] * (fe - 2) * (fe*fe - fn*fn) * utils.POW(r, e-2)
	}
	if !s.delta {
		fe := float64(s.k + 3)
		p += s.part * (fe - 2) * (fe*fe - fn*fn) * utils.POW(r, s.k+1)
	}
	p *= s.Nu / fn * math.Cos(fn*phi)
	return
}

// ShearStress is the radial profile of the sigma_rphi component; the
// full field is ShearStress(r)*sin(n phi). It vanishes at free-slip
// walls.
func (s *CylindricalSolution) ShearStress(r float64) float64 {
	op := s.psiDeriv(r, 2) - s.psiDeriv(r, 1)/r +
		float64(s.N*s.N)*s.psiDeriv(r, 0)/(r*r)
	return -s.Nu * op
}
