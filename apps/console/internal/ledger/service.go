package ledger

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"rpsls-lite/replay"
)

const defaultRecentLimit = 200

var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidGame = errors.New("invalid game record")
)

// Service stores finished games and their replay events.
type Service interface {
	Close() error
	RecordGame(ctx context.Context, rec GameRecord, events []EventItem) error
	ListRecent(ctx context.Context, humanName string, limit int) ([]GameRecord, error)
	CountGames(ctx context.Context, humanName string) (int, error)
	GetGameEvents(ctx context.Context, gameID string) ([]EventItem, error)
}

// GameRecord summarises one finished game. Winner is empty when the game was
// stopped before anyone reached the win score.
type GameRecord struct {
	GameID        string    `json:"game_id"`
	HumanName     string    `json:"human_name"`
	ComputerName  string    `json:"computer_name"`
	PersonaID     string    `json:"persona_id"`
	Winner        string    `json:"winner,omitempty"`
	Stopped       bool      `json:"stopped"`
	Rounds        int       `json:"rounds"`
	HumanScore    int       `json:"human_score"`
	ComputerScore int       `json:"computer_score"`
	WinScore      int       `json:"win_score"`
	PlayedAt      time.Time `json:"played_at"`
}

func (r GameRecord) validate() error {
	if strings.TrimSpace(r.GameID) == "" {
		return errors.Join(ErrInvalidGame, errors.New("game_id is required"))
	}
	if strings.TrimSpace(r.HumanName) == "" {
		return errors.Join(ErrInvalidGame, errors.New("human_name is required"))
	}
	return nil
}

type EventItem struct {
	Seq         uint64 `json:"seq"`
	EventType   string `json:"event_type"`
	EnvelopeB64 string `json:"envelope_b64"`
}

// EventsFromTape converts replay events into ledger rows.
func EventsFromTape(events []replay.ReplayEvent) []EventItem {
	out := make([]EventItem, 0, len(events))
	for _, e := range events {
		out = append(out, EventItem{Seq: e.Seq, EventType: e.Type, EnvelopeB64: e.EnvelopeB64})
	}
	return out
}

func normalizeLimit(limit, max int) int {
	if max <= 0 {
		max = defaultRecentLimit
	}
	if limit <= 0 || limit > max {
		return max
	}
	return limit
}

func envIntOrDefault(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
