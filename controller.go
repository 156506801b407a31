package junction

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Controller is the single authority over the intersection's light state. It
// owns one TrafficLight per direction, serializes every read and mutation
// behind one mutex, validates conflicts before granting green, and records
// every accepted change in the per-light histories.
//
// The state store and event publisher are injected collaborators: the
// controller calls out to them but does not own them.
type Controller struct {
	lights    map[Direction]*TrafficLight
	paused    bool
	mutex     sync.Mutex
	store     StateStore
	publisher EventPublisher

	now func() time.Time
}

// NewController creates a controller backed by the given store and publisher.
// State is loaded from the store; when the store holds nothing, all four
// directions start at Red with empty histories.
func NewController(store StateStore, publisher EventPublisher) (*Controller, error) {
	if store == nil {
		return nil, NewValidationError("store", "nil", "state store is required")
	}
	if publisher == nil {
		publisher = NopPublisher{}
	}

	lights, err := store.LoadState()
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	if lights == nil {
		lights = make(map[Direction]*TrafficLight)
	}
	for _, direction := range Directions() {
		if lights[direction] == nil {
			lights[direction] = NewTrafficLight(direction)
		}
	}

	return &Controller{
		lights:    lights,
		store:     store,
		publisher: publisher,
		now:       time.Now,
	}, nil
}

// ChangeLight sets the light for a direction to the given color. Requests
// for green are validated against the conflict table first; a rejected
// request leaves state, history, and the store untouched.
func (c *Controller) ChangeLight(direction Direction, color LightColor) error {
	if !direction.IsValid() {
		return NewValidationError("direction", direction.String(), "unknown direction")
	}
	if !color.IsValid() {
		return NewValidationError("color", color.String(), "unknown color")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.changeLightLocked(direction, color)
}

// changeLightLocked applies a single change. The caller must hold the mutex;
// both ChangeLight and RunSequence route through here so the lock is
// acquired exactly once at the outermost call.
func (c *Controller) changeLightLocked(direction Direction, color LightColor) error {
	if c.paused {
		return NewPausedError("ChangeLight")
	}

	if color == Green {
		snapshot := c.snapshotLocked()
		if WouldConflict(direction, snapshot) {
			return NewConflictError(direction, ConflictingWith(direction, snapshot))
		}
	}

	change := c.lights[direction].changeColor(color, c.now())
	c.publisher.Publish(change)

	if err := c.store.SaveState(c.lights); err != nil {
		return fmt.Errorf("save state: %w", err)
	}

	return nil
}

// snapshotLocked builds a direction to color snapshot. Caller must hold the
// mutex.
func (c *Controller) snapshotLocked() map[Direction]LightColor {
	snapshot := make(map[Direction]LightColor, len(c.lights))
	for direction, light := range c.lights {
		snapshot[direction] = light.Color()
	}
	return snapshot
}

// CurrentState returns a snapshot of every direction's current color
func (c *Controller) CurrentState() map[Direction]LightColor {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.snapshotLocked()
}

// History returns a copy of one direction's change records in chronological
// order
func (c *Controller) History(direction Direction) ([]StateChange, error) {
	if !direction.IsValid() {
		return nil, NewValidationError("direction", direction.String(), "unknown direction")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.lights[direction].History(), nil
}

// FullHistory merges the histories of all four lights, sorted by timestamp
// ascending. Entries with equal timestamps keep the canonical direction
// order, so the result is deterministic.
func (c *Controller) FullHistory() []StateChange {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	var all []StateChange
	for _, direction := range Directions() {
		all = append(all, c.lights[direction].History()...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Timestamp.Before(all[j].Timestamp)
	})

	return all
}

// Pause stops the controller from accepting mutations. Pausing an already
// paused controller is a no-op.
func (c *Controller) Pause() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.paused = true
}

// Resume restores mutability. Resuming a running controller is a no-op.
func (c *Controller) Resume() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.paused = false
}

// Paused reports whether the controller is currently paused
func (c *Controller) Paused() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.paused
}
