package ledger

import (
	"fmt"
	"os"
	"strings"
)

const (
	ModeMemory   = "memory"
	ModeSQLite   = "sqlite"
	ModePostgres = "postgres"
)

func ledgerModeFromEnv() string {
	raw := strings.ToLower(strings.TrimSpace(os.Getenv("LEDGER_MODE")))
	switch raw {
	case "", ModeMemory, "mem":
		return ModeMemory
	case ModeSQLite, "local":
		return ModeSQLite
	case ModePostgres, "postgresql", "db":
		return ModePostgres
	default:
		return raw
	}
}

// NewServiceFromEnv picks the ledger backend from LEDGER_MODE and reports the
// mode it chose.
func NewServiceFromEnv() (Service, string, error) {
	mode := ledgerModeFromEnv()

	switch mode {
	case ModeMemory:
		return NewMemoryService(envIntOrDefault("LEDGER_RECENT_LIMIT", defaultRecentLimit)), mode, nil
	case ModeSQLite:
		service, err := NewSQLiteServiceFromEnv()
		if err != nil {
			return nil, mode, fmt.Errorf("open sqlite ledger: %w", err)
		}
		return service, mode, nil
	case ModePostgres:
		service, err := NewPostgresServiceFromEnv()
		if err != nil {
			return nil, mode, fmt.Errorf("open postgres ledger: %w", err)
		}
		return service, mode, nil
	default:
		return nil, mode, fmt.Errorf("invalid LEDGER_MODE %q (supported: %s, %s, %s)", mode, ModeMemory, ModeSQLite, ModePostgres)
	}
}
