package npc

import "rpsls-lite/move"

// GameView is the read-only part of the game a computer player may look at.
type GameView struct {
	Round           int
	MyScore         int
	OpponentScore   int
	OpponentHistory move.List
}

// MoveDecider is implemented by every computer player brain.
type MoveDecider interface {
	// Decide returns the move for the current round.
	Decide(view GameView) move.Move
	// Name returns a human-readable identifier for debugging.
	Name() string
}
