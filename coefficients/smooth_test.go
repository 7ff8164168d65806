package coefficients

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmoothCoefficients(t *testing.T) {
	var (
		Rp, Rm = 2.0, 1.0
		k      = 1
		g, nu  = 1.0, 1.0
	)
	{ // cylinder, degree 3, against a direct Gaussian-elimination solve
		n := 3
		cs, G := CylinderSmoothFS(Rp, Rm, k, n, g, nu)
		assert.True(t, near(G, -0.08571428571428572, 1.e-12))
		assert.True(t, nearSet(cs, Set{0.10333333333333333, 0.01792717086834734, 0.01778711484593837, -0.053333333333333344}))
		cs, _ = CylinderSmoothNS(Rp, Rm, k, n, g, nu)
		assert.True(t, nearSet(cs, Set{0.09595959595959601, 0.03694083694083699, 0.019769119769119766, -0.06695526695526699}))
		cs, _ = CylinderSmoothNSFS(Rp, Rm, k, n, g, nu)
		assert.True(t, nearSet(cs, Set{0.09276825396825397, 0.015441269841269825, 0.020273015873015866, -0.04276825396825398}))
	}
	{ // sphere, degree 3
		l := 3
		cs, E := SphereSmoothFS(Rp, Rm, k, l, g, nu)
		assert.True(t, near(E, -0.020833333333333332, 1.e-12))
		assert.True(t, nearSet(cs, Set{0.024193548387096767, 0.004473022085546548, 0.004455549343024881, -0.012288786482334878}))
		cs, _ = SphereSmoothNS(Rp, Rm, k, l, g, nu)
		assert.True(t, nearSet(cs, Set{0.022327097055789225, 0.010634076660582515, 0.004947524006031267, -0.017075364389069685}))
		cs, _ = SphereSmoothNSFS(Rp, Rm, k, l, g, nu)
		assert.True(t, nearSet(cs, Set{0.021776411033705464, 0.00388647603501715, 0.0050420953935542785, -0.009871649128943562}))
	}
}

func TestSmoothWallConditions(t *testing.T) {
	var (
		Rp, Rm = 2.2, 1.1
		g, nu  = 1.3, 0.7
	)
	for _, k := range []int{0, 1, 2} {
		for _, n := range []int{k + 4, k + 6, 9} {
			exps := cylExps(n)
			{ // free-slip: psi and the tangential stress vanish at both walls
				cs, G := CylinderSmoothFS(Rp, Rm, k, n, g, nu)
				for _, r := range []float64{Rp, Rm} {
					assert.True(t, near(smoothDeriv(cs, exps, G, k+3, r, 0), 0, 1.e-10))
					assert.True(t, near(smoothStress(cs, G, k, n, r), 0, 1.e-10))
				}
			}
			{ // zero-slip: psi and psi' vanish at both walls
				cs, G := CylinderSmoothNS(Rp, Rm, k, n, g, nu)
				for _, r := range []float64{Rp, Rm} {
					assert.True(t, near(smoothDeriv(cs, exps, G, k+3, r, 0), 0, 1.e-10))
					assert.True(t, near(smoothDeriv(cs, exps, G, k+3, r, 1), 0, 1.e-10))
				}
			}
			{ // mixed: zero-slip outer, free-slip inner
				cs, G := CylinderSmoothNSFS(Rp, Rm, k, n, g, nu)
				assert.True(t, near(smoothDeriv(cs, exps, G, k+3, Rp, 0), 0, 1.e-10))
				assert.True(t, near(smoothDeriv(cs, exps, G, k+3, Rp, 1), 0, 1.e-10))
				assert.True(t, near(smoothDeriv(cs, exps, G, k+3, Rm, 0), 0, 1.e-10))
				assert.True(t, near(smoothStress(cs, G, k, n, Rm), 0, 1.e-10))
			}
			exps = sphExps(n)
			{
				cs, E := SphereSmoothFS(Rp, Rm, k, n, g, nu)
				for _, r := range []float64{Rp, Rm} {
					assert.True(t, near(smoothDeriv(cs, exps, E, k+3, r, 0), 0, 1.e-10))
					assert.True(t, near(smoothDeriv(cs, exps, E, k+3, r, 2), 0, 1.e-10))
				}
			}
			{
				cs, E := SphereSmoothNS(Rp, Rm, k, n, g, nu)
				for _, r := range []float64{Rp, Rm} {
					assert.True(t, near(smoothDeriv(cs, exps, E, k+3, r, 0), 0, 1.e-10))
					assert.True(t, near(smoothDeriv(cs, exps, E, k+3, r, 1), 0, 1.e-10))
				}
			}
			{
				cs, E := SphereSmoothNSFS(Rp, Rm, k, n, g, nu)
				assert.True(t, near(smoothDeriv(cs, exps, E, k+3, Rp, 0), 0, 1.e-10))
				assert.True(t, near(smoothDeriv(cs, exps, E, k+3, Rp, 1), 0, 1.e-10))
				assert.True(t, near(smoothDeriv(cs, exps, E, k+3, Rm, 0), 0, 1.e-10))
				assert.True(t, near(smoothDeriv(cs, exps, E, k+3, Rm, 2), 0, 1.e-10))
			}
		}
	}
}

func TestSmoothResonance(t *testing.T) {
	var (
		Rp, Rm = 2.0, 1.0
		g, nu  = 1.0, 1.0
	)
	// n = k+1 and n = k+3 make the particular coefficient blow up
	for _, k := range []int{0, 1, 2} {
		for _, n := range []int{k + 1, k + 3} {
			cs, G := CylinderSmoothFS(Rp, Rm, k, n, g, nu)
			assert.True(t, math.IsInf(G, 0))
			assert.False(t, cs.IsFinite())
			cs, E := SphereSmoothNS(Rp, Rm, k, n, g, nu)
			assert.True(t, math.IsInf(E, 0))
			assert.False(t, cs.IsFinite())
		}
	}
	// degree zero degenerates the cylindrical basis (r^n and r^-n coincide)
	cs, _ := CylinderSmoothNS(Rp, Rm, 1, 0, g, nu)
	assert.False(t, cs.IsFinite())
}

// smoothDeriv adds the particular term G*r^q to the homogeneous radial
// function before differentiating.
func smoothDeriv(cs Set, exps [4]int, G float64, q int, r float64, d int) (v float64) {
	v = radialDeriv(cs, exps, r, d)
	f := G
	for j := 0; j < d; j++ {
		f *= float64(q - j)
	}
	v += f * math.Pow(r, float64(q-d))
	return
}

func smoothStress(cs Set, G float64, k, n int, r float64) float64 {
	exps := cylExps(n)
	return smoothDeriv(cs, exps, G, k+3, r, 2) - smoothDeriv(cs, exps, G, k+3, r, 1)/r +
		float64(n*n)*smoothDeriv(cs, exps, G, k+3, r, 0)/(r*r)
}
