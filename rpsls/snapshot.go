package rpsls

import "rpsls-lite/move"

type PlayerSnapshot struct {
	Name    string
	Kind    PlayerKind
	Score   int
	History move.List
}

type Snapshot struct {
	Game     int
	Round    int
	Phase    Phase
	WinScore int
	Stopped  bool

	// Winner is 0 while nobody has reached WinScore.
	Winner PlayerKind

	Human    PlayerSnapshot
	Computer PlayerSnapshot
}

func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		Game:     m.game,
		Round:    m.round,
		Phase:    m.phase,
		WinScore: m.cfg.WinScore,
		Stopped:  m.stopped,
		Human:    snapshotPlayer(m.human),
		Computer: snapshotPlayer(m.computer),
	}
	if m.winner != nil {
		s.Winner = m.winner.Kind
	}
	return s
}

func snapshotPlayer(p *Player) PlayerSnapshot {
	return PlayerSnapshot{
		Name:    p.Name,
		Kind:    p.Kind,
		Score:   p.score,
		History: p.history.Clone(),
	}
}
