package npc

import (
	"fmt"

	"rpsls-lite/move"
)

// Persona defines a named computer opponent. Weights is sampled uniformly,
// so repeating a move in it biases the opponent towards that move.
type Persona struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Tagline string    `json:"tagline"`
	Weights move.List `json:"weights"`
}

func (p *Persona) validate() error {
	if p.ID == "" {
		return fmt.Errorf("persona id must not be empty")
	}
	if p.Name == "" {
		return fmt.Errorf("persona %s: name must not be empty", p.ID)
	}
	if len(p.Weights) == 0 {
		return fmt.Errorf("persona %s: weights must not be empty", p.ID)
	}
	for _, m := range p.Weights {
		if !m.Valid() {
			return fmt.Errorf("persona %s: invalid move in weights", p.ID)
		}
	}
	return nil
}

// Share returns the fraction of Weights taken by m.
func (p *Persona) Share(m move.Move) float64 {
	if len(p.Weights) == 0 {
		return 0
	}
	n := 0
	for _, w := range p.Weights {
		if w == m {
			n++
		}
	}
	return float64(n) / float64(len(p.Weights))
}
