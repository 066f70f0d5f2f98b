package render

import (
	"math"

	"github.com/vovakirdan/globegif/internal/geom"
)

// TexCoordX maps a surface normal's longitude onto [0, width).
// atan2 lands in (-pi, pi]; shifting negatives by 2*pi gives a seam at
// the normal's +Z direction. The final clamp guards against
// floating-point rounding at the seam.
func TexCoordX(n geom.Vec3, width int) int {
	a := math.Atan2(n.X, n.Z)
	if a < 0 {
		a += 2 * math.Pi
	}
	return clampInt(int(a*float64(width)/(2*math.Pi)), 0, width-1)
}

// TexCoordY maps a surface normal's latitude onto [0, height).
// asin(-y) + pi/2 runs from 0 at the north pole to pi at the south
// pole; the clamp guards pole rounding.
func TexCoordY(n geom.Vec3, height int) int {
	a := math.Asin(-n.Y) + math.Pi/2
	return clampInt(int(a*float64(height)/math.Pi), 0, height-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
