package npc

import (
	"math/rand"

	"rpsls-lite/move"
)

// WeightedBrain ignores the game state and draws from its persona's weights.
type WeightedBrain struct {
	Persona *Persona
	rng     *rand.Rand
}

// NewWeightedBrain creates a WeightedBrain from a persona definition.
func NewWeightedBrain(persona *Persona, seed int64) *WeightedBrain {
	return &WeightedBrain{
		Persona: persona,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (b *WeightedBrain) Name() string { return b.Persona.Name }

// Decide implements MoveDecider.
func (b *WeightedBrain) Decide(_ GameView) move.Move {
	weights := b.Persona.Weights
	if len(weights) == 0 {
		return move.Rock
	}
	return weights[b.rng.Intn(len(weights))]
}
