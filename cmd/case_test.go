package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/mantleflow/assess/InputParameters"
)

func TestCaseDispatch(t *testing.T) {
	var (
		err       error
		fileInput = []byte(`
Title: Test Case
Geometry: cylinder
Forcing: delta
BoundaryCondition: NS
OuterRadius: 2.22
InnerRadius: 1.22
AnomalyRadius: 1.72
Degree: 2
Magnitude: 1.0
Viscosity: 1.0
GridRadial: 8
GridAngular: 16
`)
	)
	var input InputParameters.CaseParameters
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.BoundaryCondition, "NS")
	assert.Equal(t, input.AnomalyRadius, 1.72)
	input.Print()

	s, err := newCylindricalSolution(&input)
	if err != nil {
		panic(err)
	}
	// zero-slip wall, both components vanish
	ur, uphi := s.VelocityPolar(input.OuterRadius, 0.3)
	assert.Equal(t, ur < 1.e-10 && ur > -1.e-10, true)
	assert.Equal(t, uphi < 1.e-10 && uphi > -1.e-10, true)

	input.Geometry = "sphere"
	input.Forcing = "smooth"
	input.ForcingPower = 2
	input.Order = 1
	sph, err := newSphericalSolution(&input)
	if err != nil {
		panic(err)
	}
	assert.Equal(t, sph.P(input.OuterRadius) < 1.e-10 && sph.P(input.OuterRadius) > -1.e-10, true)
}
