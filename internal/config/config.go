// Package config provides YAML-based render configuration for the
// globe animation.
package config

import (
	"fmt"

	"github.com/vovakirdan/globegif/internal/geom"
	"github.com/vovakirdan/globegif/internal/render"
	"github.com/vovakirdan/globegif/internal/texture"
)

// TextureBuiltin selects the embedded world map as texture source.
const TextureBuiltin = "builtin"

// Config contains every tunable of a render run.
type Config struct {
	Output    string          `yaml:"output"`
	Image     ImageConfig     `yaml:"image"`
	Animation AnimationConfig `yaml:"animation"`
	Camera    CameraConfig    `yaml:"camera"`
	Texture   TextureConfig   `yaml:"texture"`
	Workers   int             `yaml:"workers"` // 0 = one per CPU
}

// ImageConfig defines the output raster size.
type ImageConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// AnimationConfig defines the timeline: frame count and per-frame
// delay in hundredths of a second (the GIF timing unit).
type AnimationConfig struct {
	Frames  int `yaml:"frames"`
	DelayCS int `yaml:"delay_cs"`
}

// CameraConfig defines the view and lighting parameters.
type CameraConfig struct {
	FOVDeg   float64     `yaml:"fov_degrees"`
	Distance float64     `yaml:"distance"`
	TiltDeg  float64     `yaml:"tilt_degrees"`
	Light    LightConfig `yaml:"light"`
}

// LightConfig is the directional light vector; it is normalized by the
// renderer.
type LightConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// TextureConfig selects the land/ocean map: the builtin world or an
// equirectangular PNG thresholded by luminance.
type TextureConfig struct {
	Source    string `yaml:"source"`
	Threshold int    `yaml:"threshold"`
}

// Validate checks the configuration for values the renderer cannot
// work with.
func (c Config) Validate() error {
	if c.Image.Width <= 0 || c.Image.Height <= 0 {
		return fmt.Errorf("config: image size %dx%d is not positive", c.Image.Width, c.Image.Height)
	}
	if c.Animation.Frames <= 0 {
		return fmt.Errorf("config: frames must be positive, got %d", c.Animation.Frames)
	}
	if c.Animation.DelayCS <= 0 {
		return fmt.Errorf("config: delay_cs must be positive, got %d", c.Animation.DelayCS)
	}
	if c.Camera.FOVDeg <= 0 || c.Camera.FOVDeg >= 180 {
		return fmt.Errorf("config: fov_degrees must be in (0, 180), got %v", c.Camera.FOVDeg)
	}
	if c.Camera.Distance <= 1 {
		return fmt.Errorf("config: camera distance must be outside the unit sphere, got %v", c.Camera.Distance)
	}
	if c.Texture.Threshold < 0 || c.Texture.Threshold > 255 {
		return fmt.Errorf("config: threshold must be in [0, 255], got %d", c.Texture.Threshold)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// Sampler resolves the configured texture source.
func (c Config) Sampler() (texture.Sampler, error) {
	if c.Texture.Source == "" || c.Texture.Source == TextureBuiltin {
		return texture.BuiltinWorld(), nil
	}
	return texture.LoadPNG(c.Texture.Source, c.Texture.Threshold)
}

// Renderer builds a renderer from the configuration and the resolved
// texture.
func (c Config) Renderer(tex texture.Sampler) *render.Renderer {
	r := render.New(c.Image.Width, c.Image.Height, tex)
	r.FOV = c.Camera.FOVDeg
	r.CameraZ = c.Camera.Distance
	r.TiltDeg = c.Camera.TiltDeg
	r.Light = geom.Vec3{X: c.Camera.Light.X, Y: c.Camera.Light.Y, Z: c.Camera.Light.Z}
	if c.Workers > 0 {
		r.Workers = c.Workers
	}
	return r
}

// Timeline builds the animation timeline from the configuration.
func (c Config) Timeline() render.Timeline {
	return render.Timeline{
		Frames:  c.Animation.Frames,
		DelayCS: c.Animation.DelayCS,
	}
}
