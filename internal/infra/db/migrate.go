package db

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"sdi-showcase/internal/infra/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

func MigrateSQLite(ctx context.Context, db *sql.DB) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.SQLite)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "sqlite"); err != nil {
		return fmt.Errorf("failed to migrate sqlite: %w", err)
	}
	return nil
}

func MigratePostgres(ctx context.Context, pool *pgxpool.Pool) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	goose.SetBaseFS(migrations.Postgres)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, "postgres"); err != nil {
		return fmt.Errorf("failed to migrate postgres: %w", err)
	}
	return nil
}
