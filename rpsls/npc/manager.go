package npc

import (
	"fmt"
	"log"
	"math/rand"
	"time"
)

// Opponent is a persona bound to the brain that plays for it.
type Opponent struct {
	Persona *Persona
	Brain   MoveDecider
}

// Manager hands out computer opponents. It is owned by one session and is
// not safe for concurrent use.
type Manager struct {
	registry *PersonaRegistry
	rng      *rand.Rand
}

// NewManager creates a manager drawing from registry. A zero seed is replaced
// by the current time.
func NewManager(registry *PersonaRegistry, seed int64) *Manager {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Manager{
		registry: registry,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Registry returns the underlying PersonaRegistry.
func (m *Manager) Registry() *PersonaRegistry {
	return m.registry
}

// AssignRandomPersona draws one persona uniformly.
func (m *Manager) AssignRandomPersona() (*Persona, error) {
	all := m.registry.All()
	if len(all) == 0 {
		return nil, fmt.Errorf("no personas registered")
	}
	return all[m.rng.Intn(len(all))], nil
}

// Spawn assigns a random persona and builds its brain.
func (m *Manager) Spawn() (*Opponent, error) {
	persona, err := m.AssignRandomPersona()
	if err != nil {
		return nil, err
	}
	return m.SpawnPersona(persona), nil
}

// SpawnPersona builds an opponent for a specific persona.
func (m *Manager) SpawnPersona(persona *Persona) *Opponent {
	seed := m.rng.Int63()
	log.Printf("[NPC] Spawned %s (%s)", persona.Name, persona.ID)
	return &Opponent{
		Persona: persona,
		Brain:   NewWeightedBrain(persona, seed),
	}
}
