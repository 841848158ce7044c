// Package redis provides a Redis-backed PlanStore for serve deployments
// that share a plan cache across replicas.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/braid/pkg/grd"
	"github.com/aretw0/braid/pkg/ports"
)

// Store implements ports.PlanStore on Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for cached plans. Zero keeps them forever.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for cached plans.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a Redis store with its own client.
func New(address, password string, db int, opts ...Option) *Store {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "braid:plan:",
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(planKey string) string {
	return s.prefix + planKey
}

// Save persists the plan as JSON with the configured TTL.
func (s *Store) Save(ctx context.Context, key string, steps []grd.Step) error {
	data, err := json.Marshal(steps)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}
	if err := s.client.Set(ctx, s.key(key), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save plan to redis: %w", err)
	}
	return nil
}

// Load retrieves a cached plan.
func (s *Store) Load(ctx context.Context, key string) ([]grd.Step, error) {
	val, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, ports.ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to load plan from redis: %w", err)
	}

	var steps []grd.Step
	if err := json.Unmarshal([]byte(val), &steps); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan: %w", err)
	}
	return steps, nil
}

// Delete removes a cached plan.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete plan from redis: %w", err)
	}
	return nil
}
