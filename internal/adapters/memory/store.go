// Package memory provides an in-process PlanStore, the default for the
// serve command when no Redis address is configured.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/braid/pkg/grd"
	"github.com/aretw0/braid/pkg/ports"
)

// Store is a map-backed PlanStore. Safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	plans map[string][]grd.Step
}

// New creates an empty store.
func New() *Store {
	return &Store{plans: make(map[string][]grd.Step)}
}

// Save stores a copy of steps so later caller mutations cannot leak in.
func (s *Store) Save(ctx context.Context, key string, steps []grd.Step) error {
	cp := make([]grd.Step, len(steps))
	copy(cp, steps)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans[key] = cp
	return nil
}

// Load returns a copy of the stored plan, or ports.ErrPlanNotFound.
func (s *Store) Load(ctx context.Context, key string) ([]grd.Step, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	steps, ok := s.plans[key]
	if !ok {
		return nil, ports.ErrPlanNotFound
	}
	cp := make([]grd.Step, len(steps))
	copy(cp, steps)
	return cp, nil
}

// Delete removes the plan under key.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.plans, key)
	return nil
}
