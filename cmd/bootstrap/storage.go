package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"sdi-showcase/internal/infra/db"
	"sdi-showcase/internal/infra/slot"
	"sdi-showcase/internal/pkg/config"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewSlotStore,
	),
)

func NewSlotStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (slot.Store, error) {
	store, cleanup, err := OpenSlotStore(context.Background(), cfg.Storage, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return store, nil
}

// OpenSlotStore builds the slot store for the configured driver. SQL drivers are
// migrated before use. cleanup is never nil on success.
func OpenSlotStore(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (slot.Store, func(), error) {
	noop := func() {}

	switch cfg.Driver {
	case config.StorageDriverMemory:
		logger.Warn("memory slot store: records are lost at exit")
		return slot.NewMemoryStore(), noop, nil

	case config.StorageDriverFile:
		store, err := slot.NewFileStore(cfg.Dir)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("file slot store opened", "dir", cfg.Dir)
		return store, noop, nil

	case config.StorageDriverSQLite:
		sqlDB, cleanup, err := db.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := db.MigrateSQLite(ctx, sqlDB); err != nil {
			cleanup()
			return nil, nil, err
		}
		logger.Info("sqlite slot store opened", "path", cfg.SQLitePath)
		return slot.NewSQLiteStore(sqlDB), cleanup, nil

	case config.StorageDriverPostgres:
		pool, cleanup, err := db.ConnectPostgres(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		if err := db.MigratePostgres(ctx, pool); err != nil {
			cleanup()
			return nil, nil, err
		}
		logger.Info("postgres slot store opened", "host", cfg.Postgres.Host, "db", cfg.Postgres.DBName)
		return slot.NewPostgresStore(pool), cleanup, nil

	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}
