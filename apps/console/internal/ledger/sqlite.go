package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const defaultLocalDBName = "rpsls_local.db"

type SQLiteService struct {
	db          *sql.DB
	recentLimit int
}

func NewSQLiteServiceFromEnv() (*SQLiteService, error) {
	dbPath, err := ledgerLocalDatabasePathFromEnv()
	if err != nil {
		return nil, err
	}
	return NewSQLiteService(dbPath)
}

func NewSQLiteService(dbPath string) (*SQLiteService, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, fmt.Errorf("empty sqlite database path")
	}
	if dbPath != ":memory:" {
		parent := filepath.Dir(dbPath)
		if parent != "" && parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return nil, err
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, pragma := range []string{
		`PRAGMA busy_timeout = 5000;`,
		`PRAGMA journal_mode = WAL;`,
		`PRAGMA foreign_keys = ON;`,
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := ensureSQLiteLedgerSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteService{
		db:          db,
		recentLimit: envIntOrDefault("LEDGER_RECENT_LIMIT", defaultRecentLimit),
	}, nil
}

func (s *SQLiteService) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteService) RecordGame(ctx context.Context, rec GameRecord, events []EventItem) error {
	if err := rec.validate(); err != nil {
		return err
	}
	if rec.PlayedAt.IsZero() {
		rec.PlayedAt = time.Now().UTC()
	}
	nowMs := time.Now().UTC().UnixMilli()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin record game tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
INSERT INTO game_history (
    game_id, human_name, computer_name, persona_id, winner, stopped,
    rounds, human_score, computer_score, win_score, played_at_ms, created_at_ms
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (game_id) DO UPDATE
SET
    winner = excluded.winner,
    stopped = excluded.stopped,
    rounds = excluded.rounds,
    human_score = excluded.human_score,
    computer_score = excluded.computer_score,
    played_at_ms = excluded.played_at_ms
`, rec.GameID, rec.HumanName, rec.ComputerName, rec.PersonaID, rec.Winner, boolToInt(rec.Stopped),
		rec.Rounds, rec.HumanScore, rec.ComputerScore, rec.WinScore, rec.PlayedAt.UTC().UnixMilli(), nowMs)
	if err != nil {
		return fmt.Errorf("upsert game %s: %w", rec.GameID, err)
	}

	for _, e := range events {
		if e.EventType == "" {
			e.EventType = "unknown"
		}
		_, err := tx.ExecContext(ctx, `
INSERT INTO game_event_stream (game_id, seq, event_type, envelope_b64, created_at_ms)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (game_id, seq) DO UPDATE
SET
    event_type = excluded.event_type,
    envelope_b64 = excluded.envelope_b64
`, rec.GameID, int64(e.Seq), e.EventType, e.EnvelopeB64, nowMs)
		if err != nil {
			return fmt.Errorf("append event game=%s seq=%d: %w", rec.GameID, e.Seq, err)
		}
	}

	if s.recentLimit > 0 {
		_, err = tx.ExecContext(ctx, `
DELETE FROM game_history
WHERE human_name = ?
  AND id IN (
      SELECT id
      FROM game_history
      WHERE human_name = ?
      ORDER BY played_at_ms DESC, id DESC
      LIMIT -1 OFFSET ?
  )
`, rec.HumanName, rec.HumanName, s.recentLimit)
		if err != nil {
			return fmt.Errorf("trim game history: %w", err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteService) ListRecent(ctx context.Context, humanName string, limit int) ([]GameRecord, error) {
	limit = normalizeLimit(limit, s.recentLimit)
	rows, err := s.db.QueryContext(ctx, `
SELECT game_id, human_name, computer_name, persona_id, winner, stopped,
       rounds, human_score, computer_score, win_score, played_at_ms
FROM game_history
WHERE human_name = ?
ORDER BY played_at_ms DESC, id DESC
LIMIT ?
`, strings.TrimSpace(humanName), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]GameRecord, 0)
	for rows.Next() {
		var (
			rec        GameRecord
			stopped    int
			playedAtMs int64
		)
		if err := rows.Scan(
			&rec.GameID, &rec.HumanName, &rec.ComputerName, &rec.PersonaID, &rec.Winner, &stopped,
			&rec.Rounds, &rec.HumanScore, &rec.ComputerScore, &rec.WinScore, &playedAtMs,
		); err != nil {
			return nil, err
		}
		rec.Stopped = stopped != 0
		rec.PlayedAt = time.UnixMilli(playedAtMs).UTC()
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *SQLiteService) CountGames(ctx context.Context, humanName string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM game_history WHERE human_name = ?`,
		strings.TrimSpace(humanName)).Scan(&n)
	return n, err
}

func (s *SQLiteService) GetGameEvents(ctx context.Context, gameID string) ([]EventItem, error) {
	gameID = strings.TrimSpace(gameID)
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM game_history WHERE game_id = ?`, gameID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT seq, event_type, envelope_b64
FROM game_event_stream
WHERE game_id = ?
ORDER BY seq ASC
`, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]EventItem, 0)
	for rows.Next() {
		var (
			item EventItem
			seq  int64
		)
		if err := rows.Scan(&seq, &item.EventType, &item.EnvelopeB64); err != nil {
			return nil, err
		}
		item.Seq = uint64(seq)
		out = append(out, item)
	}
	return out, rows.Err()
}

func ensureSQLiteLedgerSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`
CREATE TABLE IF NOT EXISTS game_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    game_id TEXT NOT NULL UNIQUE,
    human_name TEXT NOT NULL,
    computer_name TEXT NOT NULL,
    persona_id TEXT NOT NULL DEFAULT '',
    winner TEXT NOT NULL DEFAULT '',
    stopped INTEGER NOT NULL DEFAULT 0,
    rounds INTEGER NOT NULL DEFAULT 0,
    human_score INTEGER NOT NULL DEFAULT 0,
    computer_score INTEGER NOT NULL DEFAULT 0,
    win_score INTEGER NOT NULL DEFAULT 0,
    played_at_ms INTEGER NOT NULL,
    created_at_ms INTEGER NOT NULL
)`,
		`CREATE INDEX IF NOT EXISTS idx_game_history_recent ON game_history(human_name, played_at_ms DESC)`,
		`
CREATE TABLE IF NOT EXISTS game_event_stream (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    game_id TEXT NOT NULL REFERENCES game_history(game_id) ON DELETE CASCADE,
    seq INTEGER NOT NULL,
    event_type TEXT NOT NULL,
    envelope_b64 TEXT NOT NULL DEFAULT '',
    created_at_ms INTEGER NOT NULL,
    UNIQUE (game_id, seq)
)`,
		`CREATE INDEX IF NOT EXISTS idx_game_event_stream_game_seq ON game_event_stream(game_id, seq)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func ledgerLocalDatabasePathFromEnv() (string, error) {
	candidates := []string{
		strings.TrimSpace(os.Getenv("LEDGER_LOCAL_DATABASE_PATH")),
		strings.TrimSpace(os.Getenv("LOCAL_DATABASE_PATH")),
	}
	for _, candidate := range candidates {
		if candidate != "" {
			return filepath.Clean(candidate), nil
		}
	}

	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userConfigDir, "rpsls-lite", defaultLocalDBName), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
