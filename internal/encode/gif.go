// Package encode assembles rendered palette-index frames into an
// animated GIF. It is the sink side of render.FrameSink: frames arrive
// in render order and the encoder owns their buffers from then on.
package encode

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"
)

// GIF collects frames sharing one global palette and encodes them as
// an endlessly looping animation.
type GIF struct {
	width   int
	height  int
	palette color.Palette
	anim    gif.GIF
}

// NewGIF creates an encoder for frames of the given size. The palette
// is shared by every frame; GIF delays are hundredths of a second.
func NewGIF(width, height int, palette color.Palette) *GIF {
	return &GIF{
		width:   width,
		height:  height,
		palette: palette,
		// LoopCount 0 loops forever.
		anim: gif.GIF{LoopCount: 0},
	}
}

// AddFrame appends one frame. buf is a row-major palette-index raster
// of exactly width*height bytes; the encoder keeps it without copying.
func (g *GIF) AddFrame(buf []byte, delayCS int) error {
	if len(buf) != g.width*g.height {
		return fmt.Errorf("encode: frame has %d bytes, want %d", len(buf), g.width*g.height)
	}

	g.anim.Image = append(g.anim.Image, &image.Paletted{
		Pix:     buf,
		Stride:  g.width,
		Rect:    image.Rect(0, 0, g.width, g.height),
		Palette: g.palette,
	})
	g.anim.Delay = append(g.anim.Delay, delayCS)
	return nil
}

// FrameCount returns the number of frames added so far.
func (g *GIF) FrameCount() int {
	return len(g.anim.Image)
}

// WriteTo encodes the collected animation to w.
func (g *GIF) WriteTo(w io.Writer) error {
	if len(g.anim.Image) == 0 {
		return fmt.Errorf("encode: no frames to write")
	}
	if err := gif.EncodeAll(w, &g.anim); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile encodes the animation into the file at path.
func (g *GIF) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("encode: cannot create %s: %w", path, err)
	}

	if err := g.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
