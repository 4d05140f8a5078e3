package storage

import (
	"sync"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/model"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/service"
)

// subscriberList tracks state-change listeners for a store. Notification is
// synchronous: every listener runs to completion before Save returns.
type subscriberList struct {
	listeners map[int]service.Listener
	nextID    int
	mu        sync.Mutex
}

func newSubscriberList() *subscriberList {
	return &subscriberList{listeners: make(map[int]service.Listener)}
}

// add registers a listener and returns a function that removes it.
func (l *subscriberList) add(fn service.Listener) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextID
	l.nextID++
	l.listeners[id] = fn

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.listeners, id)
	}
}

// notify delivers the new state to every registered listener in turn.
func (l *subscriberList) notify(state *model.AppState) {
	l.mu.Lock()
	fns := make([]service.Listener, 0, len(l.listeners))
	for _, fn := range l.listeners {
		fns = append(fns, fn)
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
}
