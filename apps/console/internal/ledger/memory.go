package ledger

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryService keeps games for the lifetime of the process.
type MemoryService struct {
	mu          sync.RWMutex
	games       map[string]GameRecord
	events      map[string][]EventItem
	recentLimit int
}

func NewMemoryService(recentLimit int) *MemoryService {
	if recentLimit <= 0 {
		recentLimit = defaultRecentLimit
	}
	return &MemoryService{
		games:       make(map[string]GameRecord),
		events:      make(map[string][]EventItem),
		recentLimit: recentLimit,
	}
}

func (s *MemoryService) Close() error { return nil }

func (s *MemoryService) RecordGame(_ context.Context, rec GameRecord, events []EventItem) error {
	if err := rec.validate(); err != nil {
		return err
	}
	if rec.PlayedAt.IsZero() {
		rec.PlayedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[rec.GameID] = rec
	s.events[rec.GameID] = append([]EventItem(nil), events...)
	s.trimLocked(rec.HumanName)
	return nil
}

func (s *MemoryService) ListRecent(_ context.Context, humanName string, limit int) ([]GameRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.byHumanLocked(humanName)
	limit = normalizeLimit(limit, s.recentLimit)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryService) CountGames(_ context.Context, humanName string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byHumanLocked(humanName)), nil
}

func (s *MemoryService) GetGameEvents(_ context.Context, gameID string) ([]EventItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events, ok := s.events[strings.TrimSpace(gameID)]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]EventItem(nil), events...), nil
}

// byHumanLocked returns the human's games, newest first.
func (s *MemoryService) byHumanLocked(humanName string) []GameRecord {
	humanName = strings.TrimSpace(humanName)
	out := make([]GameRecord, 0)
	for _, rec := range s.games {
		if rec.HumanName == humanName {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PlayedAt.Equal(out[j].PlayedAt) {
			return out[i].GameID > out[j].GameID
		}
		return out[i].PlayedAt.After(out[j].PlayedAt)
	})
	return out
}

func (s *MemoryService) trimLocked(humanName string) {
	games := s.byHumanLocked(humanName)
	for _, rec := range games[min(len(games), s.recentLimit):] {
		delete(s.games, rec.GameID)
		delete(s.events, rec.GameID)
	}
}
