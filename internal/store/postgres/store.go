// Package pgstore implements store.KV on a Postgres table, namespaced so
// several logical stores can share one database.
package pgstore

import (
	"context"
	"database/sql"
	"embed"

	"github.com/pkg/errors"
	migrate "github.com/rubenv/sql-migrate"
	"github/chapool/pouch-wallet/internal/store"

	// Import postgres driver for database/sql package
	_ "github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type pgStore struct {
	db        *sql.DB
	namespace string
}

// Open connects to dsn, applies pending migrations and returns a KV for namespace.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func Open(ctx context.Context, dsn string, namespace string) (store.KV, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrapf(store.ErrUnavailable, "failed to open database: %v", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(store.ErrUnavailable, "failed to ping database: %v", err)
	}

	if _, err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return New(db, namespace), nil
}

// New wraps an already migrated database.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func New(db *sql.DB, namespace string) store.KV {
	return &pgStore{
		db:        db,
		namespace: namespace,
	}
}

// Migrate applies all pending up migrations and returns how many ran.
func Migrate(db *sql.DB) (int, error) {
	source := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationsFS,
		Root:       "migrations",
	}

	n, err := migrate.Exec(db, "postgres", source, migrate.Up)
	if err != nil {
		return 0, errors.Wrapf(store.ErrUnavailable, "failed to apply migrations: %v", err)
	}

	return n, nil
}

func (s *pgStore) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, store.ErrMissingKey
	}

	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv_entries WHERE namespace = $1 AND key = $2`,
		s.namespace, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}

		return "", false, errors.Wrapf(store.ErrUnavailable, "failed to read key: %v", err)
	}

	return value, true, nil
}

func (s *pgStore) Set(ctx context.Context, key string, value string) error {
	return s.SetMany(ctx, map[string]string{key: value})
}

func (s *pgStore) SetMany(ctx context.Context, entries map[string]string) error {
	for k := range entries {
		if k == "" {
			return store.ErrMissingKey
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrapf(store.ErrUnavailable, "failed to begin transaction: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	for k, v := range entries {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO kv_entries (namespace, key, value) VALUES ($1, $2, $3)
			ON CONFLICT (namespace, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
			s.namespace, k, v,
		); err != nil {
			return errors.Wrapf(store.ErrUnavailable, "failed to write key: %v", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrapf(store.ErrUnavailable, "failed to commit transaction: %v", err)
	}

	return nil
}

func (s *pgStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return store.ErrMissingKey
	}

	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM kv_entries WHERE namespace = $1 AND key = $2`,
		s.namespace, key,
	); err != nil {
		return errors.Wrapf(store.ErrUnavailable, "failed to delete key: %v", err)
	}

	return nil
}

func (s *pgStore) Close() error {
	if err := s.db.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
		return errors.Wrapf(store.ErrUnavailable, "failed to close database: %v", err)
	}

	return nil
}
