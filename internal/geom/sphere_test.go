package geom

import (
	"math"
	"testing"
)

func TestIntersectHeadOn(t *testing.T) {
	// Origin outside the sphere, aiming straight at the center: the hit
	// is the near-side point at distance originDistance - radius.
	s := Sphere{Center: Vec3{}, Radius: 1}
	r := Ray{Origin: Vec3{0, 0, 2.2}, Dir: Vec3{0, 0, -1}}

	p, ok := s.Intersect(r)
	if !ok {
		t.Fatal("expected hit")
	}
	if !vecEq(p, Vec3{0, 0, 1}) {
		t.Errorf("hit point = %v, want (0,0,1)", p)
	}

	dist := p.Sub(r.Origin)
	if math.Abs(math.Sqrt(dist.Mag2())-1.2) > eps {
		t.Errorf("hit distance = %v, want 1.2", math.Sqrt(dist.Mag2()))
	}
}

func TestIntersectUnnormalizedDirection(t *testing.T) {
	// Callers are not required to pre-normalize the direction.
	s := Sphere{Center: Vec3{}, Radius: 1}
	r := Ray{Origin: Vec3{0, 0, 2.2}, Dir: Vec3{0, 0, -17.5}}

	p, ok := s.Intersect(r)
	if !ok {
		t.Fatal("expected hit")
	}
	if !vecEq(p, Vec3{0, 0, 1}) {
		t.Errorf("hit point = %v, want (0,0,1)", p)
	}
}

func TestIntersectMiss(t *testing.T) {
	s := Sphere{Center: Vec3{}, Radius: 1}

	tests := []struct {
		name string
		ray  Ray
	}{
		{"parallel offset beyond radius", Ray{Origin: Vec3{2, 0, 2.2}, Dir: Vec3{0, 0, -1}}},
		{"pointing away", Ray{Origin: Vec3{0, 0, 2.2}, Dir: Vec3{0, 0, 1}}},
		{"sideways", Ray{Origin: Vec3{0, 0, 2.2}, Dir: Vec3{1, 0, 0}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := s.Intersect(tc.ray); ok {
				t.Error("expected miss")
			}
		})
	}
}

func TestIntersectTangent(t *testing.T) {
	// A ray grazing the sphere at exactly radius offset is a hit at the
	// single tangent point.
	s := Sphere{Center: Vec3{}, Radius: 1}
	r := Ray{Origin: Vec3{1, 0, 5}, Dir: Vec3{0, 0, -1}}

	p, ok := s.Intersect(r)
	if !ok {
		t.Fatal("tangent ray should hit")
	}
	if !vecEq(p, Vec3{1, 0, 0}) {
		t.Errorf("tangent point = %v, want (1,0,0)", p)
	}
}

func TestIntersectInsideOriginRejected(t *testing.T) {
	// Rays starting inside the sphere have a negative nearer root and
	// are rejected; the farther root is deliberately not consulted.
	s := Sphere{Center: Vec3{}, Radius: 1}
	r := Ray{Origin: Vec3{0, 0, 0}, Dir: Vec3{0, 0, -1}}

	if _, ok := s.Intersect(r); ok {
		t.Error("ray from inside the sphere should be treated as a miss")
	}
}

func TestNormalIsUnitLength(t *testing.T) {
	tests := []struct {
		name   string
		sphere Sphere
		ray    Ray
	}{
		{"unit sphere", Sphere{Vec3{}, 1}, Ray{Vec3{0.3, -0.2, 3}, Vec3{0, 0.05, -1}}},
		{"big sphere", Sphere{Vec3{}, 42}, Ray{Vec3{5, 7, 100}, Vec3{-0.02, 0.01, -1}}},
		{"offset center", Sphere{Vec3{1, 2, -3}, 0.5}, Ray{Vec3{1, 2, 4}, Vec3{0.001, -0.002, -1}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := tc.sphere.Intersect(tc.ray)
			if !ok {
				t.Fatal("expected hit")
			}
			n := tc.sphere.Normal(p)
			if math.Abs(n.Mag2()-1) > 1e-9 {
				t.Errorf("normal magnitude^2 = %v, want 1", n.Mag2())
			}
		})
	}
}

func TestIntersectArbitraryCenterRadius(t *testing.T) {
	s := Sphere{Center: Vec3{10, 0, 0}, Radius: 2}
	r := Ray{Origin: Vec3{0, 0, 0}, Dir: Vec3{1, 0, 0}}

	p, ok := s.Intersect(r)
	if !ok {
		t.Fatal("expected hit")
	}
	if !vecEq(p, Vec3{8, 0, 0}) {
		t.Errorf("hit point = %v, want (8,0,0)", p)
	}
}
