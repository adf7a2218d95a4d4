package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/pali/internal/store"
)

// Backend stores slices as plain Redis strings. Keys carry no TTL: a
// profile's state lives until it is explicitly cleared.
type Backend struct {
	client *redis.Client
}

// NewBackend creates a Redis backed store.Backend
func NewBackend(client *redis.Client) *Backend {
	return &Backend{
		client: client,
	}
}

// Get retrieves the raw value of key
func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := b.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return data, nil
}

// Set writes value under key, replacing any previous value
func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	if err := b.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// Delete removes key
func (b *Backend) Delete(ctx context.Context, key string) error {
	if err := b.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Ping checks the connection
func (b *Backend) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

// CountProfiles counts the distinct profiles that have at least one
// persisted slice.
func (b *Backend) CountProfiles(ctx context.Context) (int, error) {
	seen := make(map[string]struct{})
	iter := b.client.Scan(ctx, 0, store.KeyPrefixProfile+"*", 0).Iterator()
	for iter.Next(ctx) {
		profileID, _, err := store.SplitProfileKey(iter.Val())
		if err != nil {
			continue
		}
		seen[profileID] = struct{}{}
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("failed to scan profiles: %w", err)
	}
	return len(seen), nil
}

var _ store.Backend = (*Backend)(nil)
