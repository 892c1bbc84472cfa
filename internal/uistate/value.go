package uistate

import "sync"

// Value is an observable single-value store: one writer path, many readers,
// subscriber notification on change. Setting an equal value is a no-op.
type Value[T comparable] struct {
	mu      sync.Mutex
	current T
	subs    map[int]func(T)
	nextID  int
}

func NewValue[T comparable](initial T) *Value[T] {
	return &Value[T]{
		current: initial,
		subs:    make(map[int]func(T)),
	}
}

func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

// Set updates the value and notifies subscribers. Subscribers run outside
// the lock so they may read or write stores themselves.
func (v *Value[T]) Set(next T) {
	v.mu.Lock()
	if v.current == next {
		v.mu.Unlock()
		return
	}
	v.current = next
	notify := make([]func(T), 0, len(v.subs))
	for _, fn := range v.subs {
		notify = append(notify, fn)
	}
	v.mu.Unlock()

	for _, fn := range notify {
		fn(next)
	}
}

// Subscribe registers fn to run on every change and returns an unsubscribe
// function.
func (v *Value[T]) Subscribe(fn func(T)) func() {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.subs[id] = fn
	v.mu.Unlock()

	return func() {
		v.mu.Lock()
		delete(v.subs, id)
		v.mu.Unlock()
	}
}
