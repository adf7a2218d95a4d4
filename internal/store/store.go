// Package store is the persistent key-value adapter behind every state slice.
//
// Values are JSON encoded. Reads fall back to a caller supplied default on a
// missing key or a corrupt value; writes log failures and never return them.
// Nothing in this package rolls back in-memory state.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MrSnakeDoc/pali/internal/logger"
)

// ErrNotFound is returned by a Backend when a key has no value.
var ErrNotFound = errors.New("store: key not found")

// Backend is raw byte storage. Implementations must be safe for concurrent use.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// Adapter binds a Backend to one profile's key namespace.
type Adapter struct {
	backend   Backend
	logger    logger.Logger
	profileID string
}

// NewAdapter creates an adapter for the given profile.
func NewAdapter(backend Backend, log logger.Logger, profileID string) *Adapter {
	return &Adapter{
		backend:   backend,
		logger:    log,
		profileID: profileID,
	}
}

// ProfileID returns the profile this adapter writes for.
func (a *Adapter) ProfileID() string { return a.profileID }

func (a *Adapter) key(k string) string { return ProfileKey(a.profileID, k) }

// Load reads key and decodes it into a T. A missing key returns def
// unchanged; a backend or decode failure is logged and also returns def.
func Load[T any](ctx context.Context, a *Adapter, key string, def T) T {
	raw, err := a.backend.Get(ctx, a.key(key))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			a.logger.Error("failed to read slice, using default",
				logger.String("profile", a.profileID),
				logger.String("key", key),
				logger.Error(err))
		}
		return def
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		a.logger.Error("failed to decode slice, using default",
			logger.String("profile", a.profileID),
			logger.String("key", key),
			logger.Error(err))
		return def
	}
	return v
}

// Save encodes v and writes it under key. Failures are logged and the
// previously persisted value stays untouched.
func Save[T any](ctx context.Context, a *Adapter, key string, v T) {
	if err := trySave(ctx, a, key, v); err != nil {
		a.logger.Error("failed to persist slice",
			logger.String("profile", a.profileID),
			logger.String("key", key),
			logger.Error(err))
	}
}

func trySave[T any](ctx context.Context, a *Adapter, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := a.backend.Set(ctx, a.key(key), data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Clear deletes every slice of the profile. It is the only deletion path for
// persisted state.
func (a *Adapter) Clear(ctx context.Context) error {
	var errs []error
	for _, k := range SliceKeys {
		if err := a.backend.Delete(ctx, a.key(k)); err != nil {
			errs = append(errs, fmt.Errorf("failed to delete %s: %w", k, err))
		}
	}
	return errors.Join(errs...)
}
