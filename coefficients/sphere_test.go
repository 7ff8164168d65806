package coefficients

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSphereDelta(t *testing.T) {
	var (
		Rp, Rm, rp = 2.0, 1.0, 1.5
		l          = 2
		g, nu      = 1.0, 1.0
	)
	{ // Free-slip coefficients against hand-solved values
		up := SphereDeltaFS(Rp, Rm, rp, l, g, nu, 1)
		lo := SphereDeltaFS(Rp, Rm, rp, l, g, nu, -1)
		assert.True(t, nearSet(up, Set{-0.011309523809523814, -0.1029371328583927, 0.0008041963504561933, 0.09047619047619049}))
		assert.True(t, nearSet(lo, Set{0.022023809523809522, 0.005545009998750154, -0.005545009998750156, -0.022023809523809522}))
	}
	{ // Zero-slip coefficients
		up := SphereDeltaNS(Rp, Rm, rp, l, g, nu, 1)
		lo := SphereDeltaNS(Rp, Rm, rp, l, g, nu, -1)
		assert.True(t, nearSet(up, Set{-0.016141756360078283, -0.09324309632528811, 0.002129878777995218, 0.08428870406610135}))
		assert.True(t, nearSet(lo, Set{0.01719157697325505, 0.015239046531854726, -0.004219327571211131, -0.028211295933898636}))
	}
	{ // Mixed coefficients
		up := SphereDeltaNSFS(Rp, Rm, rp, l, g, nu, 1)
		lo := SphereDeltaNSFS(Rp, Rm, rp, l, g, nu, -1)
		assert.True(t, nearSet(up, Set{-0.019327262947594903, -0.10470482337702255, 0.0025718868690860403, 0.09849392961426158}))
		assert.True(t, nearSet(lo, Set{0.014006070385738433, 0.0037773194801203097, -0.0037773194801203097, -0.014006070385738433}))
	}
}

func TestSphereDeltaProperties(t *testing.T) {
	var (
		Rp, Rm, rp = 2.3, 1.1, 1.7
		g, nu      = 1.4, 0.6
	)
	for _, l := range []int{2, 3, 5, 8} {
		exps := sphExps(l)
		for _, fn := range []func(Rp, Rm, rp float64, l int, g, nu, sign float64) Set{
			SphereDeltaFS, SphereDeltaNS, SphereDeltaNSFS,
		} {
			up := fn(Rp, Rm, rp, l, g, nu, 1)
			lo := fn(Rp, Rm, rp, l, g, nu, -1)
			// P, P', P'' continuous at the anomaly radius
			for d := 0; d <= 2; d++ {
				assert.True(t, near(radialDeriv(up, exps, rp, d), radialDeriv(lo, exps, rp, d), 1.e-10))
			}
			// P''' jumps by g/(nu*rp) across it
			jump := radialDeriv(up, exps, rp, 3) - radialDeriv(lo, exps, rp, 3)
			assert.True(t, near(jump, g/(nu*rp), 1.e-10))
			// linear in the forcing amplitude
			up2 := fn(Rp, Rm, rp, l, 2*g, nu, 1)
			assert.True(t, nearSet(up2, Set{2 * up.A, 2 * up.B, 2 * up.C, 2 * up.D}))
		}
		{ // free-slip walls: P and P'' vanish
			up := SphereDeltaFS(Rp, Rm, rp, l, g, nu, 1)
			lo := SphereDeltaFS(Rp, Rm, rp, l, g, nu, -1)
			assert.True(t, near(radialDeriv(up, exps, Rp, 0), 0, 1.e-10))
			assert.True(t, near(radialDeriv(up, exps, Rp, 2), 0, 1.e-10))
			assert.True(t, near(radialDeriv(lo, exps, Rm, 0), 0, 1.e-10))
			assert.True(t, near(radialDeriv(lo, exps, Rm, 2), 0, 1.e-10))
		}
		{ // zero-slip walls: P and P' vanish
			up := SphereDeltaNS(Rp, Rm, rp, l, g, nu, 1)
			lo := SphereDeltaNS(Rp, Rm, rp, l, g, nu, -1)
			assert.True(t, near(radialDeriv(up, exps, Rp, 0), 0, 1.e-10))
			assert.True(t, near(radialDeriv(up, exps, Rp, 1), 0, 1.e-10))
			assert.True(t, near(radialDeriv(lo, exps, Rm, 0), 0, 1.e-10))
			assert.True(t, near(radialDeriv(lo, exps, Rm, 1), 0, 1.e-10))
		}
		{ // mixed walls: zero-slip outer, free-slip inner
			up := SphereDeltaNSFS(Rp, Rm, rp, l, g, nu, 1)
			lo := SphereDeltaNSFS(Rp, Rm, rp, l, g, nu, -1)
			assert.True(t, near(radialDeriv(up, exps, Rp, 0), 0, 1.e-10))
			assert.True(t, near(radialDeriv(up, exps, Rp, 1), 0, 1.e-10))
			assert.True(t, near(radialDeriv(lo, exps, Rm, 0), 0, 1.e-10))
			assert.True(t, near(radialDeriv(lo, exps, Rm, 2), 0, 1.e-10))
		}
	}
	{ // scaling all radii by kappa scales A,B,C,D by kappa^(2-l, 3+l, -l, 1+l)
		l, kap := 3, 1.8
		a := SphereDeltaNS(Rp, Rm, rp, l, g, nu, 1)
		b := SphereDeltaNS(kap*Rp, kap*Rm, kap*rp, l, g, nu, 1)
		assert.True(t, nearSet(b, Set{
			a.A * math.Pow(kap, float64(2-l)),
			a.B * math.Pow(kap, float64(3+l)),
			a.C * math.Pow(kap, float64(-l)),
			a.D * math.Pow(kap, float64(1+l)),
		}))
	}
	{ // bit-identical on repeated evaluation
		a := SphereDeltaNSFS(Rp, Rm, rp, 4, g, nu, -1)
		b := SphereDeltaNSFS(Rp, Rm, rp, 4, g, nu, -1)
		assert.Equal(t, a, b)
	}
}
