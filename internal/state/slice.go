package state

import (
	"context"
	"sync"

	"github.com/MrSnakeDoc/pali/internal/store"
)

// Slice is one persisted piece of state bound to a single store key.
//
// Reads are served from memory only. Set and Update change memory first,
// write through to the store, then notify subscribers; a failed write is
// logged by the store and memory stays authoritative.
type Slice[T any] struct {
	mu      sync.RWMutex
	key     string
	value   T
	adapter *store.Adapter
	copyFn  func(T) T

	subMu   sync.Mutex
	subs    map[uint64]func(T)
	nextSub uint64
}

// loadSlice reads key once from the adapter. fix, if not nil, repairs the
// loaded value (nil collections, unknown enum values) and is also used to
// copy values in and out of the slice.
func loadSlice[T any](ctx context.Context, a *store.Adapter, key string, def T, fix func(T) T) *Slice[T] {
	if fix == nil {
		fix = func(v T) T { return v }
	}
	return &Slice[T]{
		key:     key,
		value:   fix(store.Load(ctx, a, key, def)),
		adapter: a,
		copyFn:  fix,
		subs:    make(map[uint64]func(T)),
	}
}

// Get returns the in-memory value.
func (s *Slice[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.copyFn(s.value)
}

// Set replaces the value and persists it.
func (s *Slice[T]) Set(ctx context.Context, v T) {
	s.mu.Lock()
	s.value = s.copyFn(v)
	store.Save(ctx, s.adapter, s.key, s.value)
	out := s.copyFn(s.value)
	s.mu.Unlock()

	s.publish(out)
}

// Update applies fn to the current value and persists the result.
func (s *Slice[T]) Update(ctx context.Context, fn func(T) T) T {
	s.mu.Lock()
	s.value = s.copyFn(fn(s.copyFn(s.value)))
	store.Save(ctx, s.adapter, s.key, s.value)
	out := s.copyFn(s.value)
	s.mu.Unlock()

	s.publish(out)
	return out
}

// Subscribe registers fn to run after every change. The returned func
// removes the subscription.
func (s *Slice[T]) Subscribe(fn func(T)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Slice[T]) publish(v T) {
	s.subMu.Lock()
	fns := make([]func(T), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}
