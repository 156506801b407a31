// Package stores provides StateStore adapters for the junction controller.
package stores

import (
	"sync"

	"github.com/anggasct/junction"
)

// MemoryStore keeps intersection state in process memory. Saved and loaded
// maps are deep copies, so the controller and the store never share mutable
// lights.
type MemoryStore struct {
	mutex  sync.Mutex
	lights map[junction.Direction]*junction.TrafficLight
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SaveState implements junction.StateStore
func (s *MemoryStore) SaveState(lights map[junction.Direction]*junction.TrafficLight) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.lights = cloneLights(lights)
	return nil
}

// LoadState implements junction.StateStore. Returns nil when nothing was
// saved yet.
func (s *MemoryStore) LoadState() (map[junction.Direction]*junction.TrafficLight, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.lights == nil {
		return nil, nil
	}
	return cloneLights(s.lights), nil
}

func cloneLights(lights map[junction.Direction]*junction.TrafficLight) map[junction.Direction]*junction.TrafficLight {
	copied := make(map[junction.Direction]*junction.TrafficLight, len(lights))
	for direction, light := range lights {
		copied[direction] = light.Clone()
	}
	return copied
}
