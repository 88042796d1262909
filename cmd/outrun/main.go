// outrun is Obstacle Outrun: dodge the cubes falling toward you, in a
// terminal or over SSH.
//
// Usage:
//
//	outrun play     - Play in this terminal
//	outrun serve    - Start SSH server for remote play
//	outrun config   - Print the default game config
//
// Global flags:
//
//	--fps <rate>        - Set display refresh rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible spawns
//	--config <path>     - Load a custom game config YAML
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/utsabpanta/threejs-obstacle-outrun/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "outrun",
	Short: "Obstacle Outrun - dodge falling cubes in your terminal",
	Long: `Obstacle Outrun is a terminal arcade game. Move the green cube left and
right to dodge the red cubes falling toward it. Every cube that falls past
scores a point; every hit costs one of your three lives.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the default game config

Examples:
  outrun play
  outrun play --seed 42 --config ./my-outrun.yaml
  outrun serve --ssh :2222
  outrun config > ~/.outrun/configs/outrun.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Display refresh rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig loads the game config from the search path. Only a bad
// --config file is an error.
func loadGameConfig() (config.OutrunConfig, error) {
	return config.Load(flagConfig)
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using info\n", err)
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}
