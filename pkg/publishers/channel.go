package publishers

import (
	"sync"

	"github.com/anggasct/junction"
)

// ChannelPublisher delivers changes to subscriber channels. Delivery is
// non-blocking: a subscriber whose buffer is full misses the change rather
// than stalling the controller.
type ChannelPublisher struct {
	mutex       sync.Mutex
	subscribers []chan junction.StateChange
	buffer      int
	closed      bool
}

// NewChannelPublisher creates a channel publisher whose subscriber channels
// hold up to buffer pending changes
func NewChannelPublisher(buffer int) *ChannelPublisher {
	if buffer < 1 {
		buffer = 1
	}
	return &ChannelPublisher{buffer: buffer}
}

// Subscribe returns a channel receiving future changes. The channel is
// closed when the publisher is closed.
func (p *ChannelPublisher) Subscribe() <-chan junction.StateChange {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	ch := make(chan junction.StateChange, p.buffer)
	if p.closed {
		close(ch)
		return ch
	}
	p.subscribers = append(p.subscribers, ch)
	return ch
}

// Publish implements junction.EventPublisher
func (p *ChannelPublisher) Publish(change junction.StateChange) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.closed {
		return
	}
	for _, ch := range p.subscribers {
		select {
		case ch <- change:
		default:
			// Subscriber lagging, drop the change for it
		}
	}
}

// Close closes every subscriber channel. Further publishes are dropped.
func (p *ChannelPublisher) Close() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	for _, ch := range p.subscribers {
		close(ch)
	}
	p.subscribers = nil
}
