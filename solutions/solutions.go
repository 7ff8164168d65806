/*
Package solutions assembles the coefficient sets into evaluable flow
fields: stream function or poloidal scalar, velocity, pressure and shear
stress anywhere in the shell.

Twelve constructors cover the cross product of geometry (cylindrical,
spherical), forcing (delta, smooth) and boundary condition (free-slip,
zero-slip, mixed zero/free). Delta solutions carry two coefficient sets
and switch between them at the anomaly radius; the resulting field is
continuous there up to the second radial derivative.
*/
package solutions

import (
	"errors"
	"fmt"

	"github.com/mantleflow/assess/utils"
)

// ErrInvalidGeometry reports shell radii that do not satisfy
// 0 < Rm < rp < Rp for delta forcing, or 0 < Rm < Rp for smooth forcing.
var ErrInvalidGeometry = errors.New("invalid shell geometry")

func checkDeltaGeometry(Rp, Rm, rp float64) error {
	if !(0 < Rm && Rm < rp && rp < Rp) {
		return fmt.Errorf("%w: require 0 < Rm < rp < Rp, got Rm=%v rp=%v Rp=%v",
			ErrInvalidGeometry, Rm, rp, Rp)
	}
	return nil
}

func checkShellGeometry(Rp, Rm float64) error {
	if !(0 < Rm && Rm < Rp) {
		return fmt.Errorf("%w: require 0 < Rm < Rp, got Rm=%v Rp=%v",
			ErrInvalidGeometry, Rm, Rp)
	}
	return nil
}

// radialTerm is the d-th derivative of c*r^e.
func radialTerm(c float64, e int, r float64, d int) float64 {
	f := c
	for j := 0; j < d; j++ {
		f *= float64(e - j)
	}
	return f * utils.POW(r, e-d)
}
