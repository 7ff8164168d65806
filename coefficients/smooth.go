package coefficients

import (
	"math"

	"github.com/mantleflow/assess/utils"
)

// wallCondition selects which boundary operator closes a wall row in the
// smooth-forcing systems.
type wallCondition int

const (
	wallZeroSlip wallCondition = iota
	wallFreeSlip
)

// CylinderSmoothFS computes the solution coefficients for a 2D cylindrical
// shell with smooth forcing g*r^k at angular degree n and free-slip
// boundaries at both walls. It returns the homogeneous coefficient Set and
// the particular radial coefficient G multiplying r^(k+3).
//
// The homogeneous coefficients come from a 4x4 wall-condition solve rather
// than a closed form: the particular solution fixes the right hand side,
// and no ratio symmetry survives the extra radial power. Resonant degrees
// n = k+1 and n = k+3 make G infinite and the result non-finite.
func CylinderSmoothFS(Rp, Rm float64, k, n int, g, nu float64) (Set, float64) {
	return cylinderSmooth(Rp, Rm, k, n, g, nu, wallFreeSlip, wallFreeSlip)
}

// CylinderSmoothNS is the zero-slip counterpart of CylinderSmoothFS.
func CylinderSmoothNS(Rp, Rm float64, k, n int, g, nu float64) (Set, float64) {
	return cylinderSmooth(Rp, Rm, k, n, g, nu, wallZeroSlip, wallZeroSlip)
}

// CylinderSmoothNSFS mixes the conditions: zero-slip at the outer wall
// r=Rp, free-slip at the inner wall r=Rm.
func CylinderSmoothNSFS(Rp, Rm float64, k, n int, g, nu float64) (Set, float64) {
	return cylinderSmooth(Rp, Rm, k, n, g, nu, wallZeroSlip, wallFreeSlip)
}

// SphereSmoothFS computes the solution coefficients for a 3D spherical
// shell with smooth forcing g*r^k at harmonic degree l and free-slip
// boundaries at both walls. It returns the homogeneous coefficient Set and
// the particular radial coefficient E multiplying r^(k+3). Resonant
// degrees l = k+1 and l = k+3 make E infinite and the result non-finite.
func SphereSmoothFS(Rp, Rm float64, k, l int, g, nu float64) (Set, float64) {
	return sphereSmooth(Rp, Rm, k, l, g, nu, wallFreeSlip, wallFreeSlip)
}

// SphereSmoothNS is the zero-slip counterpart of SphereSmoothFS.
func SphereSmoothNS(Rp, Rm float64, k, l int, g, nu float64) (Set, float64) {
	return sphereSmooth(Rp, Rm, k, l, g, nu, wallZeroSlip, wallZeroSlip)
}

// SphereSmoothNSFS mixes the conditions: zero-slip at the outer wall r=Rp,
// free-slip at the inner wall r=Rm.
func SphereSmoothNSFS(Rp, Rm float64, k, l int, g, nu float64) (Set, float64) {
	return sphereSmooth(Rp, Rm, k, l, g, nu, wallZeroSlip, wallFreeSlip)
}

func cylinderSmooth(Rp, Rm float64, k, n int, g, nu float64,
	outer, inner wallCondition) (cs Set, G float64) {
	var (
		fn   = float64(n)
		q    = k + 3
		fq   = float64(q)
		exps = [4]int{n, -n, n + 2, -n + 2}
	)
	// particular coefficient, infinite at the resonant degrees
	G = g * fn / (nu * float64(((k+3)*(k+3)-n*n)*((k+1)*(k+1)-n*n)))

	var (
		A = utils.NewMatrix(4, 4)
		b = make([]float64, 4)
	)
	row := 0
	for _, w := range [2]struct {
		r float64
		c wallCondition
	}{{Rp, outer}, {Rm, inner}} {
		for j, e := range exps {
			A.Set(row, j, pow(w.r, e))
		}
		b[row] = -G * pow(w.r, q)
		row++
		for j, e := range exps {
			fe := float64(e)
			if w.c == wallZeroSlip {
				A.Set(row, j, fe*pow(w.r, e-1))
			} else {
				// tangential stress operator psi'' - psi'/r + n^2 psi/r^2
				A.Set(row, j, (fe*(fe-1)-fe+fn*fn)*pow(w.r, e-2))
			}
		}
		if w.c == wallZeroSlip {
			b[row] = -G * fq * pow(w.r, q-1)
		} else {
			b[row] = -G * (fq*(fq-1) - fq + fn*fn) * pow(w.r, q-2)
		}
		row++
	}
	cs = solveSet(A, b)
	return
}

func sphereSmooth(Rp, Rm float64, k, l int, g, nu float64,
	outer, inner wallCondition) (cs Set, E float64) {
	var (
		ll   = float64(l * (l + 1))
		q    = k + 3
		fq   = float64(q)
		exps = [4]int{l, -l - 1, l + 2, -l + 1}
	)
	E = g / (nu * (float64((k+1)*(k+2)) - ll) * (float64((k+3)*(k+4)) - ll))

	var (
		A = utils.NewMatrix(4, 4)
		b = make([]float64, 4)
	)
	row := 0
	for _, w := range [2]struct {
		r float64
		c wallCondition
	}{{Rp, outer}, {Rm, inner}} {
		for j, e := range exps {
			A.Set(row, j, pow(w.r, e))
		}
		b[row] = -E * pow(w.r, q)
		row++
		for j, e := range exps {
			fe := float64(e)
			if w.c == wallZeroSlip {
				A.Set(row, j, fe*pow(w.r, e-1))
			} else {
				// tangential stress operator P''
				A.Set(row, j, fe*(fe-1)*pow(w.r, e-2))
			}
		}
		if w.c == wallZeroSlip {
			b[row] = -E * fq * pow(w.r, q-1)
		} else {
			b[row] = -E * fq * (fq - 1) * pow(w.r, q-2)
		}
		row++
	}
	cs = solveSet(A, b)
	return
}

// solveSet solves the assembled 4x4 wall system. A singular system (degree
// zero, coincident walls) yields a NaN Set so the failure shows up in the
// output instead of being silently replaced.
func solveSet(A utils.Matrix, b []float64) (cs Set) {
	x, err := A.LUSolve(utils.NewVector(4, b))
	if err != nil {
		nan := math.NaN()
		return Set{A: nan, B: nan, C: nan, D: nan}
	}
	cs = Set{A: x.AtVec(0), B: x.AtVec(1), C: x.AtVec(2), D: x.AtVec(3)}
	return
}
