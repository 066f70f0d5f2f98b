package geom

import "math"

// Ray is an origin plus a direction. The direction does not have to be
// unit length; Intersect normalizes it internally.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// At returns the point at distance d along the (normalized) ray.
func (r Ray) At(d float64) Vec3 {
	return r.Origin.Add(r.Dir.Scale(d))
}

// Sphere is defined by a center and a radius. The globe is always the
// unit sphere at the origin, but Intersect accepts any center/radius.
type Sphere struct {
	Center Vec3
	Radius float64
}

// Intersect returns the nearest point where the ray meets the sphere
// surface going forward from the ray origin, and whether such a point
// exists. Tangent rays count as a hit. If the nearer intersection lies
// behind the origin the ray is treated as a miss; the farther root is
// never used, so rays starting inside the sphere miss.
func (s Sphere) Intersect(r Ray) (Vec3, bool) {
	u := r.Dir.Normalize()

	oc := r.Origin.Sub(s.Center)
	udotoc := u.Dot(oc)
	del := udotoc*udotoc - oc.Mag2() + s.Radius*s.Radius
	if del < 0 {
		return Vec3{}, false
	}

	// The smaller root is the closer intersection.
	d := -udotoc - math.Sqrt(del)
	if d < 0 {
		return Vec3{}, false
	}

	return r.Origin.Add(u.Scale(d)), true
}

// Normal returns the outward unit normal at a point p on the sphere
// surface. p is assumed to lie on the surface, so the result is unit
// length by construction.
func (s Sphere) Normal(p Vec3) Vec3 {
	return p.Sub(s.Center).Scale(1 / s.Radius)
}
