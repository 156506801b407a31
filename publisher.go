package junction

import "sync"

// NopPublisher discards every change. Useful when no event sink is wired.
type NopPublisher struct{}

// Publish implements EventPublisher
func (NopPublisher) Publish(change StateChange) {
	// No operation
}

// MultiPublisher fans a change out to a collection of publishers. A panic in
// one publisher is recovered so it cannot take down the controller or starve
// the remaining publishers.
type MultiPublisher struct {
	mutex      sync.RWMutex
	publishers []EventPublisher
}

// NewMultiPublisher creates a fan-out publisher over the given publishers
func NewMultiPublisher(publishers ...EventPublisher) *MultiPublisher {
	return &MultiPublisher{
		publishers: append([]EventPublisher(nil), publishers...),
	}
}

// Add adds a publisher to the fan-out set
func (m *MultiPublisher) Add(publisher EventPublisher) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.publishers = append(m.publishers, publisher)
}

// Remove removes a publisher from the fan-out set
func (m *MultiPublisher) Remove(publisher EventPublisher) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	for i, p := range m.publishers {
		if p == publisher {
			m.publishers = append(m.publishers[:i], m.publishers[i+1:]...)
			break
		}
	}
}

// Publish delivers the change to every registered publisher
func (m *MultiPublisher) Publish(change StateChange) {
	m.mutex.RLock()
	publishers := make([]EventPublisher, len(m.publishers))
	copy(publishers, m.publishers)
	m.mutex.RUnlock()

	for _, publisher := range publishers {
		func() {
			defer func() {
				// Publisher panicked - drop the failure, delivery is
				// fire-and-forget
				recover()
			}()
			publisher.Publish(change)
		}()
	}
}
