package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// Transpose
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		mNr, mNc := M.Dims()
		A := M.Transpose()
		aNr, aNc := A.Dims()
		assert.Equal(t, aNc, mNr)
		assert.Equal(t, aNr, mNc)
		assert.Equal(t, 4., A.At(0, 1))
	}
	// Mul / MulVec
	{
		M := NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		})
		A := M.Mul(M)
		assert.Equal(t, NewMatrix(2, 2, []float64{
			7, 10,
			15, 22,
		}), A)
		v := M.MulVec(NewVector(2, []float64{1, 1}))
		assert.Equal(t, []float64{3, 7}, v.RawVector())
	}
	// LUSolve
	{
		M := NewMatrix(2, 2, []float64{
			2, 1,
			1, 3,
		})
		x, err := M.LUSolve(NewVector(2, []float64{5, 10}))
		assert.Nil(t, err)
		assert.InDeltaSlice(t, []float64{1, 3}, x.RawVector(), 1.e-12)
	}
	// LUSolve flags a singular system instead of panicking
	{
		M := NewMatrix(2, 2, []float64{
			1, 2,
			2, 4,
		})
		_, err := M.LUSolve(NewVector(2, []float64{1, 1}))
		assert.NotNil(t, err)
	}
	// Inverse round trip
	{
		M := NewMatrix(2, 2, []float64{
			4, 7,
			2, 6,
		})
		MI, err := M.Inverse()
		assert.Nil(t, err)
		P := M.Mul(MI)
		assert.InDeltaSlice(t, []float64{1, 0, 0, 1}, P.M.RawMatrix().Data, 1.e-12)
	}
	// allocation size mismatch panics
	{
		assert.Panics(t, func() { NewMatrix(2, 2, []float64{1, 2, 3}) })
	}
}

func TestPOW(t *testing.T) {
	for _, x := range []float64{0.3, 1.7, 2.9} {
		for p := -12; p <= 12; p++ {
			assert.InDelta(t, math.Pow(x, float64(p)), POW(x, p), 1.e-12*math.Pow(x, float64(p)))
		}
	}
	assert.Equal(t, 1., POW(3.7, 0))
}

func TestVector(t *testing.T) {
	v := NewVector(3, []float64{1, 2, 3})
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 2., v.AtVec(1))
	v.Scale(2)
	assert.Equal(t, []float64{2, 4, 6}, v.RawVector())
	assert.Equal(t, 2., v.Min())
	assert.Equal(t, 6., v.Max())
	v.Apply(func(x float64) float64 { return x - 2 })
	assert.Equal(t, []float64{0, 2, 4}, v.RawVector())
	assert.Equal(t, []float64{5, 5}, NewVector(2).Set(5).RawVector())
	assert.Equal(t, []float64{4, 4}, ConstArray(2, 4.))
}
