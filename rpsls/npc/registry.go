package npc

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

//go:embed personas.json
var defaultPersonasJSON []byte

// PersonaRegistry holds persona definitions in load order.
type PersonaRegistry struct {
	mu       sync.RWMutex
	personas map[string]*Persona
	order    []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *PersonaRegistry {
	return &PersonaRegistry{
		personas: make(map[string]*Persona),
	}
}

// DefaultRegistry returns the five built-in personas.
func DefaultRegistry() *PersonaRegistry {
	r := NewRegistry()
	if err := r.LoadFromJSON(defaultPersonasJSON); err != nil {
		panic(fmt.Sprintf("npc: built-in personas: %v", err))
	}
	return r
}

// LoadFromFile loads personas from a JSON file.
func (r *PersonaRegistry) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read personas file: %w", err)
	}
	return r.LoadFromJSON(data)
}

// LoadFromJSON loads personas from raw JSON bytes. A persona with an ID that
// is already registered replaces the old definition in place.
func (r *PersonaRegistry) LoadFromJSON(data []byte) error {
	var list []*Persona
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("parse personas JSON: %w", err)
	}
	for _, p := range list {
		if err := p.validate(); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range list {
		if _, ok := r.personas[p.ID]; !ok {
			r.order = append(r.order, p.ID)
		}
		r.personas[p.ID] = p
	}
	return nil
}

// Register adds a single persona.
func (r *PersonaRegistry) Register(p *Persona) error {
	if p == nil {
		return fmt.Errorf("nil persona")
	}
	if err := p.validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.personas[p.ID]; !ok {
		r.order = append(r.order, p.ID)
	}
	r.personas[p.ID] = p
	return nil
}

// Get returns a persona by ID.
func (r *PersonaRegistry) Get(id string) *Persona {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.personas[id]
}

// All returns the personas in load order.
func (r *PersonaRegistry) All() []*Persona {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Persona, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.personas[id])
	}
	return out
}

// Count returns the total number of registered personas.
func (r *PersonaRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.personas)
}
