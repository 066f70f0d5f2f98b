package encode

import (
	"bytes"
	"image/gif"
	"testing"

	"github.com/vovakirdan/globegif/internal/render"
)

func TestGIFRoundTrip(t *testing.T) {
	const w, h = 8, 6
	enc := NewGIF(w, h, render.Palette())

	for i := 0; i < 3; i++ {
		buf := make([]byte, w*h)
		for p := range buf {
			buf[p] = byte((p + i) % render.NumColors)
		}
		if err := enc.AddFrame(buf, 3); err != nil {
			t.Fatalf("AddFrame: %v", err)
		}
	}

	if enc.FrameCount() != 3 {
		t.Fatalf("FrameCount = %d, want 3", enc.FrameCount())
	}

	var out bytes.Buffer
	if err := enc.WriteTo(&out); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	decoded, err := gif.DecodeAll(&out)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}

	if len(decoded.Image) != 3 {
		t.Fatalf("decoded %d frames, want 3", len(decoded.Image))
	}
	if decoded.LoopCount != 0 {
		t.Errorf("LoopCount = %d, want 0 (loop forever)", decoded.LoopCount)
	}
	for i, d := range decoded.Delay {
		if d != 3 {
			t.Errorf("frame %d delay = %d, want 3", i, d)
		}
	}

	first := decoded.Image[0]
	if got := first.Rect.Dx(); got != w {
		t.Errorf("decoded width = %d, want %d", got, w)
	}
	if got := first.Rect.Dy(); got != h {
		t.Errorf("decoded height = %d, want %d", got, h)
	}
	if len(first.Palette) < render.NumColors {
		t.Errorf("decoded palette has %d entries, want at least %d",
			len(first.Palette), render.NumColors)
	}

	// Pixel data survives the encode/decode cycle.
	if first.ColorIndexAt(0, 0) != 0 || first.ColorIndexAt(1, 0) != 1 {
		t.Error("first frame pixels did not round trip")
	}
}

func TestGIFRejectsWrongFrameSize(t *testing.T) {
	enc := NewGIF(8, 8, render.Palette())
	if err := enc.AddFrame(make([]byte, 7), 3); err == nil {
		t.Error("expected error for short frame")
	}
}

func TestGIFRejectsEmptyAnimation(t *testing.T) {
	enc := NewGIF(8, 8, render.Palette())
	var out bytes.Buffer
	if err := enc.WriteTo(&out); err == nil {
		t.Error("expected error when no frames were added")
	}
}
