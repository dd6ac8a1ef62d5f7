// Package session holds the shell's view of the authenticated user.
//
// Holder replaces ambient global state: it is created once, injected into
// whatever renders or routes on the current user, and notifies subscribers
// synchronously on every change.
package session

import (
	"sync"

	"github.com/dmitrijs2005/lumina/internal/client/models"
)

// Listener receives the new current user; nil means logged out.
type Listener func(user *models.User)

type Holder struct {
	mu        sync.RWMutex
	user      *models.User
	listeners map[int]Listener
	nextID    int
}

func NewHolder() *Holder {
	return &Holder{listeners: make(map[int]Listener)}
}

// Current returns a copy of the current user, or nil.
func (h *Holder) Current() *models.User {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.user.Clone()
}

func (h *Holder) IsAuthenticated() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.user != nil
}

func (h *Holder) Set(user *models.User) {
	h.publish(user.Clone())
}

func (h *Holder) Clear() {
	h.publish(nil)
}

// Subscribe registers fn and returns a function that removes it.
func (h *Holder) Subscribe(fn Listener) (unsubscribe func()) {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.listeners, id)
			h.mu.Unlock()
		})
	}
}

func (h *Holder) publish(user *models.User) {
	h.mu.Lock()
	h.user = user
	listeners := make([]Listener, 0, len(h.listeners))
	for _, fn := range h.listeners {
		listeners = append(listeners, fn)
	}
	h.mu.Unlock()

	// listeners run outside the lock so they may call Current.
	for _, fn := range listeners {
		fn(user.Clone())
	}
}
