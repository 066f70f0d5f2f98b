package render

import "image/color"

// Palette index layout: 0 is the background, 1-4 the ocean ramp and
// 5-8 the land ramp, each ordered dark to bright across the four shade
// levels.
const (
	Background = 0
	OceanBase  = 1
	LandBase   = 5

	// NumColors is the size of the global palette.
	NumColors = 9

	// ShadeLevels is the number of brightness buckets per ramp.
	ShadeLevels = 4
)

// Palette returns the fixed 9-entry global palette. The returned slice
// is freshly allocated so callers may hand it to encoders that keep a
// reference.
func Palette() color.Palette {
	return color.Palette{
		color.RGBA{0, 0, 0, 255}, // background
		// Ocean blues.
		color.RGBA{0, 19, 88, 255},
		color.RGBA{0, 24, 132, 255},
		color.RGBA{0, 28, 169, 255},
		color.RGBA{0, 32, 207, 255},
		// Land greens.
		color.RGBA{0, 82, 9, 255},
		color.RGBA{8, 133, 5, 255},
		color.RGBA{14, 169, 3, 255},
		color.RGBA{21, 210, 0, 255},
	}
}
