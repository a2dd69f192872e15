package main

import (
	"context"
	"io"
	"log"
	"os"

	"rpsls-lite/apps/console/internal/config"
	"rpsls-lite/apps/console/internal/ledger"
	"rpsls-lite/apps/console/internal/session"
	"rpsls-lite/apps/console/internal/terminal"
	"rpsls-lite/rpsls/npc"

	"github.com/joho/godotenv"
)

func main() {
	os.Exit(run())
}

func run() int {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Printf("[Console] Invalid configuration: %v", err)
		return 1
	}

	logFile, err := setupLogging(cfg.LogFile)
	if err != nil {
		log.Printf("[Console] Failed to open log file: %v", err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}

	registry := npc.DefaultRegistry()
	if cfg.PersonasFile != "" {
		registry = npc.NewRegistry()
		if err := registry.LoadFromFile(cfg.PersonasFile); err != nil {
			log.Printf("[Console] Failed to load personas: %v", err)
			return fail(err)
		}
	}

	ledgerService, ledgerMode, err := ledger.NewServiceFromEnv()
	if err != nil {
		log.Printf("[Console] Failed to init ledger service: %v", err)
		return fail(err)
	}
	defer ledgerService.Close()
	log.Printf("[Console] Ledger mode: %s", ledgerMode)
	log.Printf("[Console] Personas: %d, win score: %d", registry.Count(), cfg.WinScore)

	console := terminal.Stdio()
	ctrl, err := session.New(session.Options{
		Prompter: console,
		Printer:  console,
		Screen:   console,
		NPCs:     npc.NewManager(registry, cfg.Seed),
		Ledger:   ledgerService,
		WinScore: cfg.WinScore,
	})
	if err != nil {
		return fail(err)
	}

	if err := ctrl.Run(context.Background()); err != nil {
		log.Printf("[Console] Session failed: %v", err)
		return fail(err)
	}
	return 0
}

// setupLogging sends log output to path, or discards it when path is empty so
// the game screen stays clean.
func setupLogging(path string) (*os.File, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return f, nil
}

// fail reports err on stderr, which stays visible even when logs are discarded.
func fail(err error) int {
	os.Stderr.WriteString("rpsls: " + err.Error() + "\n")
	return 1
}
