package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/utsabpanta/threejs-obstacle-outrun/internal/core"
	"github.com/utsabpanta/threejs-obstacle-outrun/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Left/A/H    - Move left
  Right/D/L   - Move right
  R           - Restart (after game over)
  ?           - Toggle help
  Q/Ctrl+C    - Quit

The game draws on the alternate screen, so logs are only written when
--log-file is given.

Examples:
  outrun play
  outrun play --seed 42
  outrun play --fps 30
  outrun play --log-file outrun.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "outrun")

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = flagFPS
	rc.Seed = flagSeed

	logger.Debug("starting", "width", rc.ScreenW, "height", rc.ScreenH, "fps", flagFPS, "seed", flagSeed)

	if err := tui.Run(gameCfg, rc, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
