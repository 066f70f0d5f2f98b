// Package geom provides the 3D vector algebra and ray-sphere
// intersection used by the globe renderer. It contains no external
// dependencies to keep the per-pixel math pure and testable.
package geom

import "math"

// Vec3 is an immutable 3-component vector. All operations return a new
// value; nothing is mutated in place.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns the vector scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{s * v.X, s * v.Y, s * v.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Mag2 returns the squared magnitude (dot of the vector with itself).
func (v Vec3) Mag2() float64 {
	return v.Dot(v)
}

// Normalize returns a unit vector in the same direction.
// The zero vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	m2 := v.Mag2()
	if m2 == 0 {
		return v
	}
	return v.Scale(1 / math.Sqrt(m2))
}

// RotXY rotates the vector on the XY plane by the angle whose cosine
// and sine are c and s. Z is unchanged.
func (v Vec3) RotXY(c, s float64) Vec3 {
	return Vec3{v.X*c - v.Y*s, v.X*s + v.Y*c, v.Z}
}

// RotYZ rotates the vector on the YZ plane. X is unchanged.
func (v Vec3) RotYZ(c, s float64) Vec3 {
	return Vec3{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}
}

// RotZX rotates the vector on the ZX plane. Y is unchanged.
func (v Vec3) RotZX(c, s float64) Vec3 {
	return Vec3{v.Z*s + v.X*c, v.Y, v.Z*c - v.X*s}
}
