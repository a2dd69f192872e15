// Package config reads console settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"rpsls-lite/rpsls"
)

type Settings struct {
	WinScore     int
	Seed         int64
	PersonasFile string
	LogFile      string
}

// Load reads RPSLS_* variables. Unset values fall back to defaults; malformed
// ones are reported rather than ignored.
func Load() (Settings, error) {
	s := Settings{
		WinScore:     rpsls.DefaultWinScore,
		PersonasFile: strings.TrimSpace(os.Getenv("RPSLS_PERSONAS_FILE")),
		LogFile:      strings.TrimSpace(os.Getenv("RPSLS_LOG_FILE")),
	}

	if raw := strings.TrimSpace(os.Getenv("RPSLS_WIN_SCORE")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return Settings{}, fmt.Errorf("invalid RPSLS_WIN_SCORE %q: must be a positive integer", raw)
		}
		s.WinScore = n
	}

	if raw := strings.TrimSpace(os.Getenv("RPSLS_SEED")); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid RPSLS_SEED %q: %w", raw, err)
		}
		s.Seed = n
	}

	return s, nil
}
