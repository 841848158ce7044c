// Package tests holds reusable contract suites for the port interfaces.
// Keeping them out of the ports package keeps testing and testify out of
// production binaries.
package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/braid/pkg/grd"
	"github.com/aretw0/braid/pkg/ports"
)

// RunPlanStoreContract verifies that a PlanStore implementation adheres to
// the interface contract. Adapter test packages call this with a fresh
// store.
func RunPlanStoreContract(t *testing.T, store ports.PlanStore) {
	ctx := context.Background()
	key := "contract-" + time.Now().Format("20060102150405")

	plan := []grd.Step{
		{ID: "A", Number: 1, Label: "Analyze"},
		{ID: "B", Number: 2, Label: "Compute", DependsOn: []string{"A"}},
	}

	t.Run("Save and Load", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, plan))

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, plan, loaded)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "missing-"+key)
		assert.ErrorIs(t, err, ports.ErrPlanNotFound)
	})

	t.Run("Overwrite", func(t *testing.T) {
		shorter := plan[:1]
		require.NoError(t, store.Save(ctx, key, shorter))

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, shorter, loaded)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, plan))
		require.NoError(t, store.Delete(ctx, key))

		_, err := store.Load(ctx, key)
		assert.ErrorIs(t, err, ports.ErrPlanNotFound)

		// Deleting again is a no-op, not an error.
		assert.NoError(t, store.Delete(ctx, key))
	})
}
