//go:build unit || e2e

package slot_test

import (
	"context"
	"testing"

	"sdi-showcase/internal/infra/slot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract checks the behavior every driver shares.
func runStoreContract(t *testing.T, store slot.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("absent key reads as nil", func(t *testing.T) {
		v, err := store.Get(ctx, "never_set")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "sdi_listings", []byte(`[{"id":"1"}]`)))

		v, err := store.Get(ctx, "sdi_listings")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"1"}]`, string(v))
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "sdi_clients", []byte(`[1,2,3]`)))
		require.NoError(t, store.Set(ctx, "sdi_clients", []byte(`[]`)))

		v, err := store.Get(ctx, "sdi_clients")
		require.NoError(t, err)
		assert.Equal(t, `[]`, string(v))
	})

	t.Run("keys are independent", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "sdi_affiliates", []byte(`"a"`)))
		require.NoError(t, store.Set(ctx, "other", []byte(`"b"`)))

		v, err := store.Get(ctx, "sdi_affiliates")
		require.NoError(t, err)
		assert.Equal(t, `"a"`, string(v))
	})

	t.Run("invalid key", func(t *testing.T) {
		err := store.Set(ctx, "../escape", []byte(`x`))
		assert.ErrorIs(t, err, slot.ErrInvalidKey)

		_, err = store.Get(ctx, "")
		assert.ErrorIs(t, err, slot.ErrInvalidKey)
	})
}
