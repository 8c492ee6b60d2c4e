//go:build e2e

package slot_test

import (
	"context"
	"testing"

	"sdi-showcase/internal/infra/db"
	"sdi-showcase/internal/infra/slot"
	"sdi-showcase/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStore(t *testing.T) {
	ctx := context.Background()
	cfg := e2e.CreateDatabase(t, e2e.StartPostgres(t))

	pool, cleanup, err := db.ConnectPostgres(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	require.NoError(t, db.MigratePostgres(ctx, pool))

	runStoreContract(t, slot.NewPostgresStore(pool))

	t.Run("migrating twice is a no-op", func(t *testing.T) {
		require.NoError(t, db.MigratePostgres(ctx, pool))

		v, err := slot.NewPostgresStore(pool).Get(ctx, "sdi_listings")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"1"}]`, string(v))
	})
}
