// Package redis provides a Redis-backed InputStore for deployments that run
// several server replicas.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/rpgo/coastfire-calculator/internal/domain"
	"github.com/rpgo/coastfire-calculator/internal/storage"
)

// DefaultPrefix namespaces every key written by the store.
const DefaultPrefix = "coastfire:inputs:"

// Store implements storage.InputStore on a Redis client.
type Store struct {
	client *goredis.Client
	prefix string
}

// New connects to the Redis server at addr and verifies it answers PING.
func New(ctx context.Context, addr string) (*Store, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr: addr,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return NewWithClient(rdb, DefaultPrefix), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *goredis.Client, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

// Key returns the Redis key used for a storage key.
func (s *Store) Key(key string) string {
	return s.prefix + key
}

// Save stores inputs under key without expiry.
func (s *Store) Save(ctx context.Context, key string, inputs domain.RawInputs) error {
	if err := storage.ValidateKey(key); err != nil {
		return err
	}
	data, err := storage.Encode(inputs)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.Key(key), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save inputs %q: %w", key, err)
	}
	return nil
}

// Load returns the inputs stored under key or storage.ErrNotFound.
func (s *Store) Load(ctx context.Context, key string) (domain.RawInputs, error) {
	data, err := s.client.Get(ctx, s.Key(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return domain.RawInputs{}, storage.ErrNotFound
	}
	if err != nil {
		return domain.RawInputs{}, fmt.Errorf("failed to load inputs %q: %w", key, err)
	}
	return storage.Decode(data)
}

// Delete removes key.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.Key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete inputs %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
