package config

import (
	_ "embed"
)

//go:embed defaults/globe.yaml
var defaultGlobeYAML []byte

// Default returns the default render configuration: the classic
// 500x500 globe, one revolution over 200 frames at 3cs per frame.
func Default() Config {
	return Config{
		Output: "globe.gif",
		Image: ImageConfig{
			Width:  500,
			Height: 500,
		},
		Animation: AnimationConfig{
			Frames:  200,
			DelayCS: 3,
		},
		Camera: CameraConfig{
			FOVDeg:   60,
			Distance: 2.2,
			TiltDeg:  23.4,
			Light:    LightConfig{X: 1, Y: 0, Z: -1},
		},
		Texture: TextureConfig{
			Source:    TextureBuiltin,
			Threshold: 128,
		},
		Workers: 0,
	}
}
