// Package texture provides the binary land/ocean grid the renderer
// samples. The grid is exposed behind the Sampler interface so tests
// and callers can swap the map implementation.
package texture

// Grid dimensions of the lookup table. The renderer maps surface
// normals onto this fixed equirectangular grid.
const (
	Width  = 512
	Height = 256
)

// Sampler is the land/ocean oracle: Sample returns 0 for ocean and 1
// for land at any in-range coordinate, and must be pure.
type Sampler interface {
	Sample(x, y int) int
	Bounds() (w, h int)
}

// Map is a bit-packed binary grid, 64 samples per word in row-major
// order. Safe for concurrent reads once built.
type Map struct {
	w, h  int
	words []uint64
}

// NewMap creates an all-ocean map of the given size.
func NewMap(w, h int) *Map {
	return &Map{
		w:     w,
		h:     h,
		words: make([]uint64, (w*h+63)/64),
	}
}

// Bounds returns the grid dimensions.
func (m *Map) Bounds() (w, h int) {
	return m.w, m.h
}

// Set marks the cell at (x, y) as land (v != 0) or ocean (v == 0).
// Out-of-range coordinates are ignored.
func (m *Map) Set(x, y, v int) {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return
	}
	idx := y*m.w + x
	bit := uint64(1) << (idx % 64)
	if v != 0 {
		m.words[idx/64] |= bit
	} else {
		m.words[idx/64] &^= bit
	}
}

// Sample returns 1 for land and 0 for ocean. Coordinates outside the
// grid return 0.
func (m *Map) Sample(x, y int) int {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return 0
	}
	idx := y*m.w + x
	return int(m.words[idx/64] >> (idx % 64) & 1)
}

// LandCount returns the number of land cells, mostly for sanity checks.
func (m *Map) LandCount() int {
	n := 0
	for x := 0; x < m.w; x++ {
		for y := 0; y < m.h; y++ {
			n += m.Sample(x, y)
		}
	}
	return n
}
