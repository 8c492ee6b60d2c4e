//go:build unit

package slot_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"sdi-showcase/internal/infra/db"
	"sdi-showcase/internal/infra/slot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	runStoreContract(t, slot.NewMemoryStore())

	t.Run("returned bytes are a copy", func(t *testing.T) {
		ctx := context.Background()
		s := slot.NewMemoryStore()
		in := []byte(`[1]`)
		require.NoError(t, s.Set(ctx, "k", in))
		in[1] = '9'

		v, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, `[1]`, string(v))
	})
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	store, err := slot.NewFileStore(filepath.Join(dir, "nested", "data"))
	require.NoError(t, err)

	runStoreContract(t, store)

	t.Run("one json file per key, no temp files left", func(t *testing.T) {
		entries, err := os.ReadDir(filepath.Join(dir, "nested", "data"))
		require.NoError(t, err)
		for _, e := range entries {
			assert.Equal(t, ".json", filepath.Ext(e.Name()), e.Name())
		}
		_, err = os.Stat(filepath.Join(dir, "nested", "data", "sdi_listings.json"))
		assert.NoError(t, err)
	})

	t.Run("survives reopening", func(t *testing.T) {
		reopened, err := slot.NewFileStore(filepath.Join(dir, "nested", "data"))
		require.NoError(t, err)

		v, err := reopened.Get(context.Background(), "sdi_listings")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"1"}]`, string(v))
	})
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sdi.db")

	sqlDB, cleanup, err := db.OpenSQLite(ctx, path)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	require.NoError(t, db.MigrateSQLite(ctx, sqlDB))

	runStoreContract(t, slot.NewSQLiteStore(sqlDB))

	t.Run("migrating twice is a no-op", func(t *testing.T) {
		require.NoError(t, db.MigrateSQLite(ctx, sqlDB))

		v, err := slot.NewSQLiteStore(sqlDB).Get(ctx, "sdi_listings")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"1"}]`, string(v))
	})
}
