package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/globegif/internal/platform/tui"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Watch the animation live in the terminal",
	Long: `Render the globe animation live at terminal resolution.

Controls:
  Space/P    - Pause
  R          - Restart from the first frame
  Q/Ctrl+C   - Quit

Examples:
  globegif preview
  globegif preview --config ./my-globe.yaml`,
	Run: runPreview,
}

func runPreview(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	// Get terminal size for the initial render target
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunPreview(cfg, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running preview: %v\n", err)
		os.Exit(1)
	}
}
