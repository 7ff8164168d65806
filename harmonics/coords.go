package harmonics

import "math"

// ToSpherical converts Cartesian coordinates to (r, theta, phi) with
// theta the colatitude measured from +z and phi the longitude in (-pi, pi].
func ToSpherical(x, y, z float64) (r, theta, phi float64) {
	r = math.Sqrt(x*x + y*y + z*z)
	if r == 0 {
		return
	}
	theta = math.Acos(z / r)
	phi = math.Atan2(y, x)
	return
}

// FromSpherical is the inverse of ToSpherical.
func FromSpherical(r, theta, phi float64) (x, y, z float64) {
	st := math.Sin(theta)
	x = r * st * math.Cos(phi)
	y = r * st * math.Sin(phi)
	z = r * math.Cos(theta)
	return
}

// ToPolar converts 2D Cartesian coordinates to (r, phi).
func ToPolar(x, y float64) (r, phi float64) {
	r = math.Hypot(x, y)
	phi = math.Atan2(y, x)
	return
}

// FromPolar is the inverse of ToPolar.
func FromPolar(r, phi float64) (x, y float64) {
	x = r * math.Cos(phi)
	y = r * math.Sin(phi)
	return
}
