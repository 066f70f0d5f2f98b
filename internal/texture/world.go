package texture

import (
	_ "embed"
	"strings"
	"sync"
)

// Coarse equirectangular world bitmap, '#' for land. Upscaled to the
// full grid size when first requested.
//
//go:embed world.txt
var worldBitmap string

var (
	worldOnce sync.Once
	worldMap  *Map
)

// BuiltinWorld returns the embedded land/ocean map at the full
// Width x Height resolution. The map is built once and shared; callers
// must treat it as read-only.
func BuiltinWorld() *Map {
	worldOnce.Do(func() {
		worldMap = parseBitmap(worldBitmap)
	})
	return worldMap
}

// parseBitmap upscales an ASCII bitmap to Width x Height with nearest
// neighbour sampling.
func parseBitmap(s string) *Map {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	srcH := len(lines)
	srcW := 0
	for _, ln := range lines {
		if len(ln) > srcW {
			srcW = len(ln)
		}
	}

	m := NewMap(Width, Height)
	if srcW == 0 || srcH == 0 {
		return m
	}

	for y := 0; y < Height; y++ {
		srcY := y * srcH / Height
		line := lines[srcY]
		for x := 0; x < Width; x++ {
			srcX := x * srcW / Width
			if srcX < len(line) && line[srcX] == '#' {
				m.Set(x, y, 1)
			}
		}
	}
	return m
}
