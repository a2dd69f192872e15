package rpsls

import "rpsls-lite/move"

// Resolve decides a round. Equal moves tie.
func Resolve(human, computer move.Move) Outcome {
	switch {
	case move.Beats(human, computer):
		return OutcomeHumanWins
	case move.Beats(computer, human):
		return OutcomeComputerWins
	default:
		return OutcomeTie
	}
}
