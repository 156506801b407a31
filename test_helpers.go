package junction

import (
	"sync"
	"testing"
)

// TestPublisher is a capturing publisher for tests
type TestPublisher struct {
	mutex   sync.Mutex
	Changes []StateChange
}

// NewTestPublisher creates a new test publisher
func NewTestPublisher() *TestPublisher {
	return &TestPublisher{
		Changes: make([]StateChange, 0),
	}
}

// Publish implements EventPublisher
func (p *TestPublisher) Publish(change StateChange) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.Changes = append(p.Changes, change)
}

// Published returns a copy of the captured changes
func (p *TestPublisher) Published() []StateChange {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	changes := make([]StateChange, len(p.Changes))
	copy(changes, p.Changes)
	return changes
}

// TestStore is a capturing in-memory store for tests
type TestStore struct {
	mutex   sync.Mutex
	Saves   int
	lights  map[Direction]*TrafficLight
	SaveErr error
	LoadErr error
}

// NewTestStore creates a new test store with no prior state
func NewTestStore() *TestStore {
	return &TestStore{}
}

// SaveState implements StateStore
func (s *TestStore) SaveState(lights map[Direction]*TrafficLight) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	copied := make(map[Direction]*TrafficLight, len(lights))
	for direction, light := range lights {
		copied[direction] = light.Clone()
	}
	s.lights = copied
	s.Saves++
	return nil
}

// LoadState implements StateStore
func (s *TestStore) LoadState() (map[Direction]*TrafficLight, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if s.lights == nil {
		return nil, nil
	}
	copied := make(map[Direction]*TrafficLight, len(s.lights))
	for direction, light := range s.lights {
		copied[direction] = light.Clone()
	}
	return copied, nil
}

// Saved returns the last persisted state, or nil when nothing was saved
func (s *TestStore) Saved() map[Direction]*TrafficLight {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.lights == nil {
		return nil
	}
	copied := make(map[Direction]*TrafficLight, len(s.lights))
	for direction, light := range s.lights {
		copied[direction] = light.Clone()
	}
	return copied
}

// CreateTestController creates a controller on a fresh store and publisher
func CreateTestController(t *testing.T) (*Controller, *TestStore, *TestPublisher) {
	t.Helper()

	store := NewTestStore()
	publisher := NewTestPublisher()
	controller, err := NewController(store, publisher)
	if err != nil {
		t.Fatalf("Expected no error creating controller, got: %v", err)
	}
	return controller, store, publisher
}

// AssertColor fails the test if the direction does not show the expected color
func AssertColor(t *testing.T, controller *Controller, direction Direction, expected LightColor) {
	t.Helper()

	state := controller.CurrentState()
	if state[direction] != expected {
		t.Errorf("Expected %s to be %s, got %s", direction, expected, state[direction])
	}
}
