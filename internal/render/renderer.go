// Package render turns a simulation time into an indexed-colour raster
// of the spinning globe. Each frame is a pure function of
// (time, totalTime): the camera and light stay fixed while the texture
// lookup normal is rotated, so identical inputs always produce
// byte-identical buffers.
package render

import (
	"math"
	"runtime"
	"sync"

	"github.com/vovakirdan/globegif/internal/geom"
	"github.com/vovakirdan/globegif/internal/texture"
)

const degToRad = math.Pi / 180

// Default camera and scene parameters.
const (
	DefaultFOV     = 60.0
	DefaultCameraZ = 2.2
	DefaultTiltDeg = 23.4
)

// DefaultLight is the directional light, normalized by the renderer.
var DefaultLight = geom.Vec3{X: 1, Y: 0, Z: -1}

// Renderer holds the per-animation parameters. Fields may be adjusted
// after New but not while Frame is running.
type Renderer struct {
	Width   int
	Height  int
	FOV     float64 // horizontal field of view in degrees
	CameraZ float64 // camera sits at (0, 0, CameraZ) looking toward -Z
	TiltDeg float64 // axial tilt in degrees
	Light   geom.Vec3
	Tex     texture.Sampler
	Workers int // concurrent row workers; <= 1 renders serially
}

// New returns a renderer with the default camera, light and tilt.
func New(width, height int, tex texture.Sampler) *Renderer {
	return &Renderer{
		Width:   width,
		Height:  height,
		FOV:     DefaultFOV,
		CameraZ: DefaultCameraZ,
		TiltDeg: DefaultTiltDeg,
		Light:   DefaultLight,
		Tex:     tex,
		Workers: runtime.NumCPU(),
	}
}

// frameParams are the per-frame constants shared by all rows.
type frameParams struct {
	tanFov2x  float64
	tanFov2y  float64
	pixelSize float64
	light     geom.Vec3
	cTilt     float64
	sTilt     float64
	cRot      float64
	sRot      float64
	texW      int
	texH      int
}

// Frame renders the globe at the given simulation time into buf, one
// palette index per pixel in row-major order. buf must hold
// Width*Height bytes. The spin completes one full revolution over
// totalTime seconds.
func (r *Renderer) Frame(buf []byte, time, totalTime float64) {
	// Half dimensions of the near plane at z = 1; rays are built from
	// the pixel's position on it.
	p := frameParams{}
	p.tanFov2x = math.Tan(r.FOV / 2 * degToRad)
	p.tanFov2y = p.tanFov2x * float64(r.Height) / float64(r.Width)
	p.pixelSize = 2 * p.tanFov2x / float64(r.Width)

	p.light = r.Light.Normalize()

	rot := 0.0
	if totalTime != 0 {
		rot = -2 * math.Pi * time / totalTime
	}
	p.cRot, p.sRot = math.Cos(rot), math.Sin(rot)

	tilt := r.TiltDeg * degToRad
	p.cTilt, p.sTilt = math.Cos(tilt), math.Sin(tilt)

	p.texW, p.texH = r.Tex.Bounds()

	if r.Workers <= 1 {
		for y := 0; y < r.Height; y++ {
			r.renderRow(buf, y, &p)
		}
		return
	}

	// Rows are independent, so they can be handed to workers in any
	// order without changing the output.
	var wg sync.WaitGroup
	for w := 0; w < r.Workers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for y := start; y < r.Height; y += r.Workers {
				r.renderRow(buf, y, &p)
			}
		}(w)
	}
	wg.Wait()
}

// renderRow fills one row of the raster.
func (r *Renderer) renderRow(buf []byte, y int, p *frameParams) {
	globe := geom.Sphere{Radius: 1}
	origin := geom.Vec3{Z: r.CameraZ}

	i := y * r.Width
	for x := 0; x < r.Width; x++ {
		u := geom.Vec3{
			X: -p.tanFov2x + p.pixelSize*(float64(x)+0.5),
			Y: p.tanFov2y - p.pixelSize*(float64(y)-0.5),
			Z: -1,
		}

		hit, ok := globe.Intersect(geom.Ray{Origin: origin, Dir: u})
		if !ok {
			buf[i] = Background
			i++
			continue
		}

		n := globe.Normal(hit)

		bright := -n.Dot(p.light)
		shade := clampInt(int(bright*6), 0, ShadeLevels-1)

		// Rotate the normal, not the surface point: the texture is
		// sampled at a different location each frame so the sphere
		// appears to spin while the lit geometry stays put.
		n = n.RotXY(p.cTilt, p.sTilt)
		n = n.RotZX(p.cRot, p.sRot)

		sample := r.Tex.Sample(TexCoordX(n, p.texW), TexCoordY(n, p.texH))
		buf[i] = byte(OceanBase + ShadeLevels*sample + shade)
		i++
	}
}

// Render rasterizes a single frame with the default parameters and the
// builtin world map. It has no side effects beyond writing buf.
func Render(buf []byte, width, height int, time, totalTime float64) {
	r := New(width, height, texture.BuiltinWorld())
	r.Frame(buf, time, totalTime)
}
