// Package profile maps profile ids to their open state containers.
package profile

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/pali/internal/domain"
	"github.com/MrSnakeDoc/pali/internal/logger"
	"github.com/MrSnakeDoc/pali/internal/state"
	"github.com/MrSnakeDoc/pali/internal/store"
)

// NewProfileID returns a fresh random profile id
func NewProfileID() string {
	return uuid.NewString()
}

// ValidProfileID reports whether id looks like an id issued by NewProfileID
func ValidProfileID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil && len(id) == 36
}

type entry struct {
	container *state.Container
	lastSeen  time.Time
	inFlight  int // requests holding the container
}

// Registry keeps the containers of recently active profiles in memory.
// A profile that is not in memory is loaded from the backend on first use.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry // profile id -> entry

	backend store.Backend
	opts    state.Options
	logger  logger.Logger
	now     func() time.Time
}

// NewRegistry creates an empty registry over backend
func NewRegistry(backend store.Backend, opts state.Options, log logger.Logger) *Registry {
	if opts.Logger == nil {
		opts.Logger = log
	}
	return &Registry{
		entries: make(map[string]*entry),
		backend: backend,
		opts:    opts,
		logger:  log,
		now:     time.Now,
	}
}

// Get returns the container of id, opening it if needed, and marks the
// profile as active.
func (r *Registry) Get(ctx context.Context, id string) *state.Container {
	r.mu.Lock()
	if e, ok := r.entries[id]; ok {
		e.lastSeen = r.now()
		r.mu.Unlock()
		return e.container
	}
	opts := r.opts
	r.mu.Unlock()

	// Load outside the lock: a slow backend must not block other profiles.
	c := state.Open(ctx, store.NewAdapter(r.backend, r.logger, id), opts)

	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[id]; ok {
		// Another request opened it first.
		c.Close()
		e.lastSeen = r.now()
		return e.container
	}
	r.entries[id] = &entry{container: c, lastSeen: r.now()}
	r.logger.Debug("profile opened", logger.String("profile", id))
	return c
}

// Acquire is Get for the duration of a request: the container is not evicted
// until release is called.
func (r *Registry) Acquire(ctx context.Context, id string) (c *state.Container, release func()) {
	for {
		c = r.Get(ctx, id)

		r.mu.Lock()
		e, ok := r.entries[id]
		if ok && e.container == c {
			e.inFlight++
			r.mu.Unlock()
			break
		}
		// Evicted or reset between Get and here; open it again.
		r.mu.Unlock()
	}

	var once sync.Once
	return c, func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()

			if e, ok := r.entries[id]; ok && e.container == c {
				e.inFlight--
				e.lastSeen = r.now()
			}
		})
	}
}

// SetSeed replaces the first-run content of profiles opened from now on.
// Profiles with stored content are not affected.
func (r *Registry) SetSeed(c domain.Content) {
	seed := c.Clone().Normalize()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.opts.SeedContent = &seed
}

// Peek returns the container of id only if it is already open
func (r *Registry) Peek(id string) (*state.Container, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	return e.container, true
}

// EvictIdle drops containers not used since now-ttl. Containers held by an
// in-flight request are kept. Persisted state is kept; an evicted profile is
// simply reloaded on its next request.
func (r *Registry) EvictIdle(now time.Time, ttl time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, e := range r.entries {
		if e.inFlight > 0 || now.Sub(e.lastSeen) < ttl {
			continue
		}
		e.container.Close()
		delete(r.entries, id)
		evicted++
	}
	return evicted
}

// Reset deletes every persisted slice of id and forgets its container.
func (r *Registry) Reset(ctx context.Context, id string) error {
	r.mu.Lock()
	e, ok := r.entries[id]
	delete(r.entries, id)
	r.mu.Unlock()

	if ok {
		return e.container.Reset(ctx)
	}
	return store.NewAdapter(r.backend, r.logger, id).Clear(ctx)
}

// Count returns the number of open containers
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}
