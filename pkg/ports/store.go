package ports

import (
	"context"
	"errors"

	"github.com/aretw0/braid/pkg/grd"
)

// ErrPlanNotFound is returned when a plan key cannot be found in the store.
var ErrPlanNotFound = errors.New("plan not found")

// PlanStore caches derived execution plans keyed by a digest of the diagram
// source. Parsing is cheap, but the serve surface may face the same diagram
// many times per optimization run; the store lets repeated requests skip
// the pipeline entirely.
type PlanStore interface {
	// Save persists the plan under key, replacing any previous value.
	Save(ctx context.Context, key string, steps []grd.Step) error

	// Load retrieves the plan stored under key, or ErrPlanNotFound.
	Load(ctx context.Context, key string) ([]grd.Step, error)

	// Delete removes the plan under key. Deleting a missing key is not an
	// error.
	Delete(ctx context.Context, key string) error
}
