package application

import (
	"slices"
	"sync"
)

// listeners is a set of change callbacks. Stores hold deliver across the
// handoff from their state lock to emit so callbacks observe mutations in
// the order they happened.
type listeners[T any] struct {
	mu      sync.Mutex
	deliver sync.Mutex
	next    uint64
	fns     map[uint64]func(T)
}

func (l *listeners[T]) add(fn func(T)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fns == nil {
		l.fns = make(map[uint64]func(T))
	}
	l.next++
	id := l.next
	l.fns[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.fns, id)
			l.mu.Unlock()
		})
	}
}

func (l *listeners[T]) emit(v T) {
	l.mu.Lock()
	ids := make([]uint64, 0, len(l.fns))
	for id := range l.fns {
		ids = append(ids, id)
	}
	fns := make([]func(T), 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		fns = append(fns, l.fns[id])
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

func (l *listeners[T]) clear() {
	l.mu.Lock()
	l.fns = nil
	l.mu.Unlock()
}
