package texture

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// FromImage thresholds an equirectangular image into a land/ocean map.
// The image is rescaled to Width x Height first, then each pixel whose
// luminance is at or above threshold (0-255) becomes land. Source
// images therefore follow the usual convention of bright landmasses on
// a dark ocean.
func FromImage(img image.Image, threshold int) *Map {
	scaled := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	m := NewMap(Width, Height)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			r, g, b, _ := scaled.At(x, y).RGBA()
			// 16-bit channels; average down to 0-255.
			lum := int((r + g + b) / 3 >> 8)
			if lum >= threshold {
				m.Set(x, y, 1)
			}
		}
	}
	return m
}

// LoadPNG decodes an equirectangular PNG and thresholds it into a map.
func LoadPNG(path string, threshold int) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: cannot open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: cannot decode %s: %w", path, err)
	}

	return FromImage(img, threshold), nil
}
