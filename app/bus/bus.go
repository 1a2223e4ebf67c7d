package bus

import "sync"

// Signal names the structural notifications broadcast to the
// presentation layer. Signals carry no payload.
type Signal string

const (
	SignalDefaultExperience     Signal = "default_experience"
	SignalContentCardExperience Signal = "content_card_experience"
	SignalReorder               Signal = "reorder"
)

// Bus fans a signal out to its registered subscribers. Subscription is
// explicit; there is no process-wide notification center.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[Signal][]func()
}

func New() *Bus {
	return &Bus{
		subscribers: make(map[Signal][]func()),
	}
}

func (b *Bus) Subscribe(signal Signal, fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[signal] = append(b.subscribers[signal], fn)
}

// Publish invokes every subscriber of the signal synchronously, in
// registration order. A signal with no subscribers is a no-op.
func (b *Bus) Publish(signal Signal) {
	b.mu.RLock()
	subscribers := make([]func(), len(b.subscribers[signal]))
	copy(subscribers, b.subscribers[signal])
	b.mu.RUnlock()

	for _, fn := range subscribers {
		fn()
	}
}
