// Package state holds the push-based state containers that sit between the
// repository and whatever surface displays the data. Each container exposes
// its observable fields as Values: a retained last snapshot plus
// subscribe/notify, in place of a reactive-stream library.
package state

import "sync"

// subscriberBuffer is the per-subscriber queue depth. When a subscriber
// lags this far behind, the oldest pending notification is dropped so the
// latest value always lands.
const subscriberBuffer = 16

// Value is a single-producer publish point with a retained last value.
// Subscribers receive the current value immediately on subscribe, then every
// subsequent Set in the order the sets completed.
type Value[T any] struct {
	mu      sync.Mutex
	current T
	subs    map[int]chan T
	nextID  int
}

// NewValue creates a Value holding the given initial snapshot.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{
		current: initial,
		subs:    make(map[int]chan T),
	}
}

// Get returns the current snapshot.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

// Set replaces the snapshot and notifies all subscribers.
func (v *Value[T]) Set(val T) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.current = val
	for _, ch := range v.subs {
		select {
		case ch <- val:
		default:
			// Subscriber is lagging: make room by discarding its oldest
			// pending notification. Only Set sends on these channels, and
			// Set holds v.mu, so the second send cannot block.
			select {
			case <-ch:
			default:
			}
			ch <- val
		}
	}
}

// Subscribe registers a new subscriber. The returned channel replays the
// current value first. The cancel function unregisters the subscriber and
// closes the channel.
func (v *Value[T]) Subscribe() (<-chan T, func()) {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := v.nextID
	v.nextID++

	ch := make(chan T, subscriberBuffer)
	ch <- v.current
	v.subs[id] = ch

	cancel := func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		if sub, ok := v.subs[id]; ok {
			delete(v.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}
