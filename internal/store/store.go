// Package store holds the client-state layer: small observable stores that
// wrap backend calls and cache exactly what the server last returned. There
// is no optimistic patching anywhere; a mutation either replaces the whole
// held aggregate with the server's echo or leaves it untouched.
package store

import (
	"errors"
	"sync"
)

var (
	// ErrNotAuthenticated is returned by operations that need a session
	// before any request is issued.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrQuantityTooLow rejects cart quantities below the floor of 1 before
	// any request is issued.
	ErrQuantityTooLow = errors.New("quantity must be at least 1")
)

// broadcaster is the subscription half every store embeds. Listeners are
// invoked synchronously after each state change.
type broadcaster struct {
	lmu       sync.Mutex
	nextID    int
	listeners map[int]func()
}

// Subscribe registers fn to run after every state change and returns a
// cancel func.
func (b *broadcaster) Subscribe(fn func()) (cancel func()) {
	b.lmu.Lock()
	defer b.lmu.Unlock()
	if b.listeners == nil {
		b.listeners = make(map[int]func())
	}
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	return func() {
		b.lmu.Lock()
		defer b.lmu.Unlock()
		delete(b.listeners, id)
	}
}

func (b *broadcaster) notify() {
	b.lmu.Lock()
	fns := make([]func(), 0, len(b.listeners))
	for _, fn := range b.listeners {
		fns = append(fns, fn)
	}
	b.lmu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
