package rpsls

import "rpsls-lite/move"

// Player is shared by both variants; Kind decides how a move is obtained.
// Only Match mutates score and history.
type Player struct {
	Name string
	Kind PlayerKind

	score   int
	history move.List
	current move.Move
}

func newPlayer(name string, kind PlayerKind) *Player {
	return &Player{Name: name, Kind: kind}
}

func (p *Player) IsHuman() bool { return p.Kind == PlayerKindHuman }

func (p *Player) Score() int { return p.score }

// History returns a copy of the moves played this game, oldest first.
func (p *Player) History() move.List { return p.history.Clone() }

// CurrentMove is the move of the latest round, or move.Invalid before the first.
func (p *Player) CurrentMove() move.Move { return p.current }

func (p *Player) record(m move.Move) {
	p.current = m
	p.history.Add(m)
}

func (p *Player) addPoint() {
	p.score++
}

func (p *Player) resetForNewGame() {
	p.score = 0
	p.history = nil
	p.current = move.Invalid
}
