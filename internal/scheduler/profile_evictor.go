package scheduler

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/pali/internal/logger"
)

const (
	// DefaultIdleTTL is how long an unused profile stays in memory
	DefaultIdleTTL = 30 * time.Minute
	// DefaultSweepInterval is how often idle profiles are looked for
	DefaultSweepInterval = 5 * time.Minute
)

// Evictable is a set of in-memory profiles that can drop idle members
type Evictable interface {
	EvictIdle(now time.Time, ttl time.Duration) int
	Count() int
}

// ProfileEvictor periodically drops profiles idle for longer than ttl.
// Their persisted state is untouched.
type ProfileEvictor struct {
	profiles Evictable
	logger   logger.Logger
	interval time.Duration
	ttl      time.Duration
	now      func() time.Time
	stopCh   chan struct{}
}

// NewProfileEvictor creates a new evictor
func NewProfileEvictor(profiles Evictable, log logger.Logger, interval, ttl time.Duration) *ProfileEvictor {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	if ttl <= 0 {
		ttl = DefaultIdleTTL
	}

	return &ProfileEvictor{
		profiles: profiles,
		logger:   log,
		interval: interval,
		ttl:      ttl,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic sweep
func (e *ProfileEvictor) Start(ctx context.Context) error {
	e.logger.Info("starting profile evictor",
		logger.Duration("interval", e.interval),
		logger.Duration("idle_ttl", e.ttl))

	ticker := time.NewTicker(e.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				e.Sweep()
			case <-e.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the evictor
func (e *ProfileEvictor) Stop() {
	close(e.stopCh)
}

// Sweep evicts idle profiles once and returns how many were dropped
func (e *ProfileEvictor) Sweep() int {
	evicted := e.profiles.EvictIdle(e.now(), e.ttl)
	if evicted > 0 {
		e.logger.Info("evicted idle profiles",
			logger.Int("evicted", evicted),
			logger.Int("remaining", e.profiles.Count()))
	} else {
		e.logger.Debug("no idle profiles to evict")
	}
	return evicted
}
