// Package authevents decouples "a call came back unauthorized" from the
// parts of the application that must react to session expiry.
package authevents

import "sync"

// Registry holds the set of unauthorized handlers. Notify runs them
// synchronously; invocation order is unspecified.
type Registry struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]func()
}

func NewRegistry() *Registry {
	return &Registry{handlers: map[int]func(){}}
}

// Register adds a handler and returns its deregistration func. Deregistering
// more than once is a no-op.
func (r *Registry) Register(handler func()) (deregister func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.handlers[id] = handler

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.handlers, id)
	}
}

// Notify invokes every handler registered at the time of the call, exactly
// once each.
func (r *Registry) Notify() {
	r.mu.Lock()
	handlers := make([]func(), 0, len(r.handlers))
	for _, h := range r.handlers {
		handlers = append(handlers, h)
	}
	r.mu.Unlock()

	for _, h := range handlers {
		h()
	}
}

// Clear removes all handlers.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers = map[int]func(){}
}
