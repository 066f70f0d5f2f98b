package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/globegif/internal/render"
	"github.com/vovakirdan/globegif/internal/texture"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the resolved configuration",
	Long: `Print the configuration a render would use, after applying the
config file search path, along with the color palette.

Examples:
  globegif info
  globegif info --config ./my-globe.yaml`,
	Run: runInfo,
}

func runInfo(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	timeline := cfg.Timeline()
	duration := time.Duration(timeline.Frames*timeline.DelayCS) * 10 * time.Millisecond

	fmt.Println("Render configuration:")
	fmt.Println()
	fmt.Printf("  %-12s %s\n", "output", cfg.Output)
	fmt.Printf("  %-12s %dx%d\n", "image", cfg.Image.Width, cfg.Image.Height)
	fmt.Printf("  %-12s %d frames, %dcs delay (%s per revolution)\n",
		"animation", timeline.Frames, timeline.DelayCS, duration)
	fmt.Printf("  %-12s fov %v, distance %v, tilt %v\n",
		"camera", cfg.Camera.FOVDeg, cfg.Camera.Distance, cfg.Camera.TiltDeg)
	fmt.Printf("  %-12s (%v, %v, %v)\n",
		"light", cfg.Camera.Light.X, cfg.Camera.Light.Y, cfg.Camera.Light.Z)
	fmt.Printf("  %-12s %s\n", "texture", textureInfo(cfg.Texture.Source, cfg.Texture.Threshold))
	fmt.Printf("  %-12s %d (0 = one per CPU)\n", "workers", cfg.Workers)
	fmt.Println()

	fmt.Println("Palette:")
	fmt.Println()
	fmt.Printf("  background  %s\n", paletteSwatch(render.Background, 1))
	fmt.Printf("  ocean       %s\n", paletteSwatch(render.OceanBase, render.ShadeLevels))
	fmt.Printf("  land        %s\n", paletteSwatch(render.LandBase, render.ShadeLevels))
}

// textureInfo describes the texture source, including the land
// coverage of the builtin map.
func textureInfo(source string, threshold int) string {
	if source == "" || source == "builtin" {
		world := texture.BuiltinWorld()
		w, h := world.Bounds()
		coverage := float64(world.LandCount()) / float64(w*h) * 100
		return fmt.Sprintf("builtin world map (%dx%d, %.0f%% land)", w, h, coverage)
	}
	return fmt.Sprintf("%s (threshold %d)", source, threshold)
}

// paletteSwatch renders consecutive palette entries as colored blocks.
func paletteSwatch(base, count int) string {
	pal := render.Palette()
	var sb strings.Builder
	for i := base; i < base+count && i < len(pal); i++ {
		r, g, b, _ := pal[i].RGBA()
		hex := fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
		sb.WriteString(style.Render("████"))
		sb.WriteRune(' ')
	}
	return sb.String()
}
