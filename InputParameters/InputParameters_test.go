package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	var (
		yamlInput = `
Title: delta anomaly in a mantle-like shell
Geometry: sphere
Forcing: delta
BoundaryCondition: NSFS
OuterRadius: 2.22
InnerRadius: 1.22
AnomalyRadius: 1.72
Degree: 2
Order: 1
Magnitude: 1000.0
Viscosity: 1.0e2
GridRadial: 64
GridAngular: 128
`
		cp CaseParameters
	)
	assert.Nil(t, cp.Parse([]byte(yamlInput)))
	assert.Equal(t, "sphere", cp.Geometry)
	assert.Equal(t, "NSFS", cp.BoundaryCondition)
	assert.Equal(t, 2, cp.Degree)
	assert.Equal(t, 1.72, cp.AnomalyRadius)
	assert.Equal(t, 100.0, cp.Viscosity)

	cp = CaseParameters{}
	assert.NotNil(t, cp.Parse([]byte("Geometry: torus")))
	assert.NotNil(t, cp.Parse([]byte("Geometry: sphere\nForcing: impulsive")))
	assert.NotNil(t, cp.Parse([]byte("Geometry: sphere\nForcing: delta\nBoundaryCondition: periodic")))
}
