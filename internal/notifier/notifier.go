// Package notifier implements the appointment-change announcement hook:
// an explicit mapping from subscriber handle to callback with
// synchronous fan-out in subscription order.
package notifier

import "sync"

// Listener receives a plain-text announcement.
type Listener func(message string)

type subscription struct {
	handle   string
	listener Listener
}

type Notifier struct {
	mu   sync.Mutex
	subs []subscription
}

func New() *Notifier {
	return &Notifier{}
}

// Subscribe registers a listener under the given handle. Subscribing a
// handle that is already registered is a no-op, so a listener attached
// twice still receives exactly one delivery per Notify.
func (n *Notifier) Subscribe(handle string, l Listener) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, s := range n.subs {
		if s.handle == handle {
			return
		}
	}
	n.subs = append(n.subs, subscription{handle: handle, listener: l})
}

// Unsubscribe removes the listener registered under handle, if any.
func (n *Notifier) Unsubscribe(handle string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, s := range n.subs {
		if s.handle == handle {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			return
		}
	}
}

// Notify delivers message synchronously to every current subscriber in
// subscription order.
func (n *Notifier) Notify(message string) {
	n.mu.Lock()
	subs := make([]subscription, len(n.subs))
	copy(subs, n.subs)
	n.mu.Unlock()

	for _, s := range subs {
		s.listener(message)
	}
}

// Subscribers reports how many listeners are currently registered.
func (n *Notifier) Subscribers() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}
