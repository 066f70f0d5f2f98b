package texture

import (
	"image"
	"image/color"
	"testing"
)

func TestMapSetSample(t *testing.T) {
	m := NewMap(Width, Height)

	// Empty map is all ocean.
	if m.Sample(0, 0) != 0 || m.Sample(Width-1, Height-1) != 0 {
		t.Error("new map should be all ocean")
	}

	// Set/clear round trips, including cells that straddle word
	// boundaries (64 samples per word).
	coords := [][2]int{
		{0, 0}, {63, 0}, {64, 0}, {65, 0},
		{Width - 1, 0}, {0, 1}, {Width - 1, Height - 1},
		{137, 42},
	}
	for _, c := range coords {
		m.Set(c[0], c[1], 1)
		if m.Sample(c[0], c[1]) != 1 {
			t.Errorf("Sample(%d,%d) = 0 after Set", c[0], c[1])
		}
	}
	for _, c := range coords {
		m.Set(c[0], c[1], 0)
		if m.Sample(c[0], c[1]) != 0 {
			t.Errorf("Sample(%d,%d) = 1 after clear", c[0], c[1])
		}
	}
}

func TestMapSetDoesNotLeak(t *testing.T) {
	m := NewMap(Width, Height)
	m.Set(100, 100, 1)

	if m.LandCount() != 1 {
		t.Errorf("LandCount = %d, want 1", m.LandCount())
	}
	if m.Sample(99, 100) != 0 || m.Sample(101, 100) != 0 {
		t.Error("Set leaked into neighbouring cells")
	}
}

func TestMapOutOfRange(t *testing.T) {
	m := NewMap(Width, Height)
	m.Set(-1, 0, 1)
	m.Set(0, -1, 1)
	m.Set(Width, 0, 1)
	m.Set(0, Height, 1)

	if m.LandCount() != 0 {
		t.Error("out-of-range Set should be ignored")
	}
	if m.Sample(-1, 0) != 0 || m.Sample(Width, Height) != 0 {
		t.Error("out-of-range Sample should return ocean")
	}
}

func TestBuiltinWorld(t *testing.T) {
	m := BuiltinWorld()

	w, h := m.Bounds()
	if w != Width || h != Height {
		t.Fatalf("Bounds = %dx%d, want %dx%d", w, h, Width, Height)
	}

	// A planet that is all ocean or all land means the bitmap failed to
	// parse. Land covers roughly a third of Earth's surface.
	land := m.LandCount()
	total := Width * Height
	if land == 0 || land == total {
		t.Fatalf("LandCount = %d of %d", land, total)
	}
	if land < total/10 || land > total/2 {
		t.Errorf("LandCount = %d of %d, outside plausible range", land, total)
	}

	// Sampler must be pure.
	if m.Sample(256, 128) != m.Sample(256, 128) {
		t.Error("Sample is not deterministic")
	}
}

func TestFromImageThreshold(t *testing.T) {
	// Left half bright (land), right half dark (ocean).
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			c := color.RGBA{0, 0, 0, 255}
			if x < Width/2 {
				c = color.RGBA{255, 255, 255, 255}
			}
			img.Set(x, y, c)
		}
	}

	m := FromImage(img, 128)

	if m.Sample(10, 128) != 1 {
		t.Error("bright pixel should be land")
	}
	if m.Sample(Width-10, 128) != 0 {
		t.Error("dark pixel should be ocean")
	}

	// Threshold 0 marks everything as land.
	all := FromImage(img, 0)
	if all.Sample(Width-10, 128) != 1 {
		t.Error("threshold 0 should mark every pixel as land")
	}
}

func TestLoadPNGMissingFile(t *testing.T) {
	if _, err := LoadPNG("no/such/file.png", 128); err == nil {
		t.Error("expected error for missing file")
	}
}
