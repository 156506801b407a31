package junction

// StateStore is the persistence port. Implementations must not mutate the
// map they are handed; maps returned by LoadState become the controller's
// property and may be freely mutated by it afterwards.
type StateStore interface {
	// SaveState persists the full intersection state
	SaveState(lights map[Direction]*TrafficLight) error

	// LoadState returns the previously persisted state, or a nil or empty
	// map when no prior state exists
	LoadState() (map[Direction]*TrafficLight, error)
}

// EventPublisher is the event port. Publish is fire-and-forget from the
// controller's perspective; delivery failures are the publisher's concern
// and must not block or corrupt controller state.
type EventPublisher interface {
	Publish(change StateChange)
}
