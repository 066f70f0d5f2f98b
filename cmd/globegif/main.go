// globegif renders a spinning globe as an animated GIF.
//
// Usage:
//
//	globegif render            - Render the animation to a GIF file
//	globegif preview           - Watch the animation live in the terminal
//	globegif serve             - Start SSH server for remote previews
//	globegif history           - Browse past renders
//	globegif info              - Show the resolved configuration
//
// Global flags:
//
//	--config <path>     - Use a specific YAML config file
//	--db <path>         - Set history database path (default: ~/.globegif/history.db)
//	--log-level <level> - Set log verbosity (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/globegif/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "globegif",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "globegif",
	Short: "globegif - Render a spinning globe as an animated GIF",
	Long: `globegif ray-traces a rotating, axis-tilted globe textured with a
land/ocean world map and writes the result as an animated GIF.

Available commands:
  render   - Render the animation to a GIF file
  preview  - Watch the animation live in the terminal
  serve    - Start SSH server for remote previews
  history  - Browse past renders
  info     - Show the resolved configuration

Examples:
  globegif render
  globegif render --output earth.gif --frames 100
  globegif preview
  globegif serve --ssh :2222
  globegif history`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: unknown log level %q\n", flagLogLevel)
			os.Exit(1)
		}
		logger.SetLevel(level)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.globegif/history.db", "Path to history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(infoCmd)
}

// loadConfig resolves the render configuration from the --config flag
// or the default search path.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
