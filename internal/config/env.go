package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by the SSH server.
const (
	EnvSSHAddr     = "OUTRUN_SSH_ADDR"
	EnvHostKey     = "OUTRUN_HOST_KEY"
	EnvIdleTimeout = "OUTRUN_IDLE_TIMEOUT"
)

// LoadEnv loads variables from the given .env files into the process
// environment. Missing files are not an error; variables already set in the
// environment win.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: failed to load %s: %w", f, err)
		}
	}
	return nil
}

// EnvString returns the variable's value, or def when unset or empty.
func EnvString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// EnvDuration parses the variable as a Go duration ("30m", "90s").
// A bare integer is taken as minutes. Unset or invalid values return def.
func EnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Minute
	}
	return def
}
