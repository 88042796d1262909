package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/utsabpanta/threejs-obstacle-outrun/internal/config"
	"github.com/utsabpanta/threejs-obstacle-outrun/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagEnvFile     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Obstacle Outrun SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection plays its own independent game. Connections without
a terminal are rejected.

Settings can also come from the environment or a .env file:
  OUTRUN_SSH_ADDR       - listen address (like --ssh)
  OUTRUN_HOST_KEY       - host key path (like --host-key)
  OUTRUN_IDLE_TIMEOUT   - idle timeout, "30m" or minutes (like --idle-timeout)
Flags given on the command line win.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.outrun/host_key

Examples:
  outrun serve                           # Listen on :23234 with auto-generated key
  outrun serve --ssh :2222               # Listen on port 2222
  outrun serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle time before disconnecting")
	serveCmd.Flags().StringVar(&flagEnvFile, "env-file", ".env", "Path to .env file with server settings")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(flagEnvFile); err != nil {
		return err
	}

	flags := cmd.Flags()
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	if !flags.Changed("ssh") {
		cfg.Address = config.EnvString(config.EnvSSHAddr, flagSSHAddr)
	}
	cfg.HostKeyPath = flagHostKey
	if !flags.Changed("host-key") {
		cfg.HostKeyPath = config.EnvString(config.EnvHostKey, flagHostKey)
	}
	cfg.IdleTimeout = flagIdleTimeout
	if !flags.Changed("idle-timeout") {
		cfg.IdleTimeout = config.EnvDuration(config.EnvIdleTimeout, flagIdleTimeout)
	}
	game, err := loadGameConfig()
	if err != nil {
		return err
	}
	cfg.Game = game
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Logger = newLogger(os.Stderr, "outrun-ssh")

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Starting Obstacle Outrun SSH server on %s\n", server.Addr())
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
