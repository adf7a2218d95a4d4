package profile

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MrSnakeDoc/pali/internal/domain"
	"github.com/MrSnakeDoc/pali/internal/logger"
	"github.com/MrSnakeDoc/pali/internal/state"
	"github.com/MrSnakeDoc/pali/internal/store"
)

func newRegistry(backend store.Backend) *Registry {
	return NewRegistry(backend, state.Options{}, logger.New("error", false))
}

func TestNewProfileID(t *testing.T) {
	id := NewProfileID()
	if !ValidProfileID(id) {
		t.Errorf("ValidProfileID(%q) = false", id)
	}
	if id == NewProfileID() {
		t.Error("NewProfileID() returned the same id twice")
	}

	for _, bad := range []string{"", "abc", "../../etc", "pali:profile:x"} {
		if ValidProfileID(bad) {
			t.Errorf("ValidProfileID(%q) = true", bad)
		}
	}
}

func TestGetReturnsSameContainer(t *testing.T) {
	r := newRegistry(store.NewMemoryBackend())
	ctx := context.Background()

	a := r.Get(ctx, "p1")
	b := r.Get(ctx, "p1")
	if a != b {
		t.Error("Get() opened the profile twice")
	}
	if r.Get(ctx, "p2") == a {
		t.Error("profiles share a container")
	}
	if r.Count() != 2 {
		t.Errorf("Count() = %d, want 2", r.Count())
	}
}

func TestGetConcurrent(t *testing.T) {
	r := newRegistry(store.NewMemoryBackend())
	ctx := context.Background()

	var wg sync.WaitGroup
	got := make([]*state.Container, 16)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = r.Get(ctx, "p1")
		}(i)
	}
	wg.Wait()

	for i := range got {
		if got[i] != got[0] {
			t.Fatal("concurrent Get() returned different containers")
		}
	}
}

func TestEvictIdle(t *testing.T) {
	backend := store.NewMemoryBackend()
	r := newRegistry(backend)
	ctx := context.Background()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return start }
	r.Get(ctx, "idle").Theme.Set(ctx, domain.ThemeDark)

	r.now = func() time.Time { return start.Add(20 * time.Minute) }
	r.Get(ctx, "active")

	evicted := r.EvictIdle(start.Add(31*time.Minute), 30*time.Minute)
	if evicted != 1 {
		t.Fatalf("EvictIdle() = %d, want 1", evicted)
	}
	if _, ok := r.Peek("idle"); ok {
		t.Error("idle profile still open")
	}
	if _, ok := r.Peek("active"); !ok {
		t.Error("active profile was evicted")
	}

	// Evicted state comes back from the backend.
	if r.Get(ctx, "idle").Theme.Get() != domain.ThemeDark {
		t.Error("evicted profile lost its persisted theme")
	}
}

func TestEvictIdleKeepsAcquired(t *testing.T) {
	backend := store.NewMemoryBackend()
	r := newRegistry(backend)
	ctx := context.Background()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return start }
	held, release := r.Acquire(ctx, "busy")

	if n := r.EvictIdle(start.Add(time.Hour), 30*time.Minute); n != 0 {
		t.Fatalf("EvictIdle() = %d with a request in flight, want 0", n)
	}
	if c, ok := r.Peek("busy"); !ok || c != held {
		t.Fatal("held container was evicted")
	}

	r.now = func() time.Time { return start.Add(time.Hour) }
	release()
	release() // second call is a no-op

	if n := r.EvictIdle(start.Add(time.Hour+time.Minute), 30*time.Minute); n != 0 {
		t.Fatalf("EvictIdle() = %d right after release, want 0", n)
	}
	if n := r.EvictIdle(start.Add(2*time.Hour), 30*time.Minute); n != 1 {
		t.Fatalf("EvictIdle() = %d once idle, want 1", n)
	}
}

func TestReset(t *testing.T) {
	backend := store.NewMemoryBackend()
	r := newRegistry(backend)
	ctx := context.Background()

	r.Get(ctx, "p1").IsAdmin.Set(ctx, true)
	if err := r.Reset(ctx, "p1"); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if r.Count() != 0 {
		t.Errorf("Count() = %d after Reset, want 0", r.Count())
	}
	if r.Get(ctx, "p1").IsAdmin.Get() {
		t.Error("admin flag survived Reset()")
	}

	// Reset of a profile that is not open still clears the backend.
	r.Get(ctx, "p2").IsAdmin.Set(ctx, true)
	r.EvictIdle(time.Now().Add(time.Hour), time.Minute)
	if err := r.Reset(ctx, "p2"); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if r.Get(ctx, "p2").IsAdmin.Get() {
		t.Error("admin flag of an evicted profile survived Reset()")
	}
}

func TestSetSeed(t *testing.T) {
	backend := store.NewMemoryBackend()
	r := newRegistry(backend)
	ctx := context.Background()

	before := r.Get(ctx, "before")

	seed := domain.DefaultContent()
	seed.Teachers = []domain.Teacher{{ID: "t1", Name: "U Ba"}}
	r.SetSeed(seed)

	if len(before.Content.Get().Teachers) != 0 {
		t.Error("SetSeed() changed an already open profile")
	}
	if got := r.Get(ctx, "after").Content.Get().Teachers; len(got) != 1 {
		t.Errorf("new profile Teachers = %+v, want seed", got)
	}

	// Stored content wins over the seed.
	stored := r.Get(ctx, "stored")
	stored.Content.Set(ctx, domain.DefaultContent())
	r.EvictIdle(time.Now().Add(time.Hour), time.Minute)
	if got := r.Get(ctx, "stored").Content.Get().Teachers; len(got) != 0 {
		t.Errorf("stored profile Teachers = %+v, want stored value", got)
	}
}
