package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/globegif/internal/encode"
	"github.com/vovakirdan/globegif/internal/platform/tui"
	"github.com/vovakirdan/globegif/internal/render"
	"github.com/vovakirdan/globegif/internal/storage"
)

var (
	flagOutput  string
	flagFrames  int
	flagDelay   int
	flagWidth   int
	flagHeight  int
	flagTexture string
	flagWorkers int
	flagPlain   bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the animation to a GIF file",
	Long: `Render the full globe animation and write it as an animated GIF.

Flags override the corresponding config file values. The landmass
texture is the builtin world map unless --texture points to an
equirectangular PNG.

Examples:
  globegif render
  globegif render --output earth.gif
  globegif render --frames 100 --delay 5
  globegif render --texture moon.png --width 256 --height 256`,
	Run: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output GIF path (default from config)")
	renderCmd.Flags().IntVar(&flagFrames, "frames", 0, "Number of frames (one full revolution)")
	renderCmd.Flags().IntVar(&flagDelay, "delay", 0, "Per-frame delay in hundredths of a second")
	renderCmd.Flags().IntVar(&flagWidth, "width", 0, "Image width in pixels")
	renderCmd.Flags().IntVar(&flagHeight, "height", 0, "Image height in pixels")
	renderCmd.Flags().StringVar(&flagTexture, "texture", "", "Texture source: 'builtin' or path to a PNG")
	renderCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Row-rendering goroutines (0 = one per CPU)")
	renderCmd.Flags().BoolVar(&flagPlain, "plain", false, "Disable the progress bar UI")
}

func runRender(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()

	// Flag overrides
	if flagOutput != "" {
		cfg.Output = flagOutput
	}
	if cmd.Flags().Changed("frames") {
		cfg.Animation.Frames = flagFrames
	}
	if cmd.Flags().Changed("delay") {
		cfg.Animation.DelayCS = flagDelay
	}
	if cmd.Flags().Changed("width") {
		cfg.Image.Width = flagWidth
	}
	if cmd.Flags().Changed("height") {
		cfg.Image.Height = flagHeight
	}
	if flagTexture != "" {
		cfg.Texture.Source = flagTexture
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = flagWorkers
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tex, err := cfg.Sampler()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading texture: %v\n", err)
		os.Exit(1)
	}

	renderer := cfg.Renderer(tex)
	timeline := cfg.Timeline()
	logger.Debug("render configured",
		"output", cfg.Output,
		"size", fmt.Sprintf("%dx%d", cfg.Image.Width, cfg.Image.Height),
		"frames", timeline.Frames,
		"workers", renderer.Workers,
	)
	g := encode.NewGIF(cfg.Image.Width, cfg.Image.Height, render.Palette())

	start := time.Now()
	if flagPlain {
		err = render.Animate(renderer, timeline, g, func(done int) {
			fmt.Printf("\rrendering frame %d/%d", done, timeline.Frames)
		})
		fmt.Println()
	} else {
		err = tui.RunProgress(timeline.Frames, func(report func(done int)) error {
			return render.Animate(renderer, timeline, g, report)
		})
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	if err := g.WriteFile(cfg.Output); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", cfg.Output, err)
		os.Exit(1)
	}

	saveHistory(cfg.Output, cfg.Image.Width, cfg.Image.Height, timeline.Frames, elapsed)

	fmt.Printf("Wrote %s (%d frames, %dx%d) in %s\n",
		cfg.Output, timeline.Frames, cfg.Image.Width, cfg.Image.Height,
		elapsed.Round(time.Millisecond))
}

// saveHistory records the render in the history database. Best effort,
// a failure never fails the render.
func saveHistory(output string, width, height, frames int, elapsed time.Duration) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		return
	}
	defer store.Close()

	_, err = store.SaveRender(storage.RenderEntry{
		Output:     output,
		Width:      width,
		Height:     height,
		Frames:     frames,
		DurationMS: elapsed.Milliseconds(),
	})
	if err != nil {
		logger.Warn("could not record render", "error", err)
	}
}
