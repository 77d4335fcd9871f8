// Package cachedb implements a catalog.Store which keeps its records in an
// SQLite database so that they survive restarts.
package cachedb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	migrate "github.com/ironsmile/sql-migrate"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/ironsmile/artrepo/src/catalog"
)

// sqlMigrateDirectory is the directory whithin the `sqlFilesFS` which contains
// the .sql files for sql-migrate.
const sqlMigrateDirectory = "migrations"

// Store is a catalog.Store backed by SQLite. It is safe for concurrent use.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
	now func() time.Time
}

// Open opens or creates the database at `path` and brings its schema up to
// date using the migrations found in `sqlFilesFS`. Already expired records
// are removed.
func Open(path string, sqlFilesFS fs.FS, logger zerolog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	s := &Store{
		db:  db,
		log: logger.With().Str("component", "cachedb").Logger(),
		now: time.Now,
	}

	if err := s.applyMigrations(sqlFilesFS); err != nil {
		db.Close()
		return nil, err
	}

	purged, err := s.Purge(context.Background(), s.now())
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("purging expired records: %w", err)
	}
	s.log.Debug().Int64("purged", purged).Str("path", path).Msg("cache database opened")

	return s, nil
}

// applyMigrations applies the database migrations from `sqlFilesFS` if it
// is necessary.
func (s *Store) applyMigrations(sqlFilesFS fs.FS) error {
	migrationFiles, err := fs.Sub(sqlFilesFS, sqlMigrateDirectory)
	if err != nil {
		return fmt.Errorf("locating migrate dir within sqlFiles fs.FS failed: %w", err)
	}

	migrations := &migrate.HttpFileSystemMigrationSource{
		FileSystem: http.FS(migrationFiles),
	}

	_, err = migrate.ExecMax(s.db, "sqlite3", migrations, migrate.Up, 0)
	if err == nil {
		return nil
	}

	var planErr *migrate.PlanError
	if errors.As(err, &planErr) {
		s.log.Warn().Err(err).Msg("applying database migrations")
		return nil
	}

	return fmt.Errorf("executing db migration failed: %w", err)
}

// Get implements catalog.Store.
func (s *Store) Get(ctx context.Context, url string) (catalog.Record, bool, error) {
	var (
		encoded   string
		expiresAt int64
	)

	row := s.db.QueryRowContext(ctx, `
		SELECT catalog, expires_at
		FROM catalog_cache
		WHERE url = ?
	`, url)
	err := row.Scan(&encoded, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Record{}, false, nil
	} else if err != nil {
		return catalog.Record{}, false, fmt.Errorf("querying catalog record: %w", err)
	}

	cat := catalog.Catalog{}
	if err := json.Unmarshal([]byte(encoded), &cat); err != nil {
		return catalog.Record{}, false, fmt.Errorf("decoding stored catalog: %w", err)
	}

	return catalog.Record{
		Catalog: cat,
		Expires: time.UnixMilli(expiresAt),
	}, true, nil
}

// Set implements catalog.Store.
func (s *Store) Set(ctx context.Context, url string, rec catalog.Record) error {
	cat := rec.Catalog
	if cat == nil {
		cat = catalog.Catalog{}
	}

	encoded, err := json.Marshal(cat)
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO catalog_cache (url, catalog, expires_at)
		VALUES (?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			catalog = excluded.catalog,
			expires_at = excluded.expires_at
	`, url, string(encoded), rec.Expires.UnixMilli())
	if err != nil {
		return fmt.Errorf("storing catalog record: %w", err)
	}

	return nil
}

// Purge removes all records which are expired at `now` and returns how many
// were removed.
func (s *Store) Purge(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM catalog_cache
		WHERE expires_at <= ?
	`, now.UnixMilli())
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

// Close closes the database. It is safe to call it as many times as you want.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}

	err := s.db.Close()
	s.db = nil
	return err
}
