package cachedb

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ironsmile/artrepo/src/assert"
	"github.com/ironsmile/artrepo/src/catalog"
)

func openTestStore(t *testing.T, path string) *Store {
	t.Helper()

	s, err := Open(path, os.DirFS("../../sqls"), zerolog.Nop())
	if err != nil {
		t.Fatalf("opening store failed: %s", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	return s
}

// TestStoreGetSet checks storing, replacing and reading catalog records.
func TestStoreGetSet(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t, filepath.Join(t.TempDir(), "cache.db"))

	if _, found, err := s.Get(ctx, "https://example.org/movies.json"); err != nil || found {
		t.Fatalf("empty store returned a record (found: %t, err: %v)", found, err)
	}

	expires := time.Date(2030, 1, 2, 3, 4, 5, 6000000, time.UTC)
	rec := catalog.Record{
		Catalog: catalog.Catalog{
			{
				Name:        "The Matrix",
				MachineName: "the-matrix",
				Providers:   catalog.Providers{Imdb: "tt0133093", Tmdb: "603"},
				Images: catalog.ArtworkImages{
					Backdrop: []string{"b2.jpg", "b1.jpg"},
					Logo:     []string{"l.png"},
				},
			},
		},
		Expires: expires,
	}

	if err := s.Set(ctx, "https://example.org/movies.json", rec); err != nil {
		t.Fatalf("storing failed: %s", err)
	}

	found, ok, err := s.Get(ctx, "https://example.org/movies.json")
	if err != nil || !ok {
		t.Fatalf("record not found (err: %v)", err)
	}
	if !found.Expires.Equal(expires) {
		t.Errorf("expected expiry %s but got %s", expires, found.Expires)
	}
	if len(found.Catalog) != 1 {
		t.Fatalf("expected one entry but got %d", len(found.Catalog))
	}

	entry := found.Catalog[0]
	if entry.MachineName != "the-matrix" || entry.Providers.Tmdb != "603" {
		t.Errorf("unexpected entry: %#v", entry)
	}
	if len(entry.Images.Backdrop) != 2 || entry.Images.Backdrop[0] != "b2.jpg" {
		t.Errorf("image order not kept: %v", entry.Images.Backdrop)
	}

	if err := s.Set(ctx, "https://example.org/movies.json", catalog.Record{Expires: expires}); err != nil {
		t.Fatalf("replacing failed: %s", err)
	}
	found, _, _ = s.Get(ctx, "https://example.org/movies.json")
	if found.Catalog == nil || len(found.Catalog) != 0 {
		t.Errorf("expected an empty catalog after replacing but got %#v", found.Catalog)
	}
}

// TestStorePurge checks that only expired records are removed and that this
// happens on opening as well.
func TestStorePurge(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	s := openTestStore(t, dbPath)

	now := time.Now()
	_ = s.Set(ctx, "old", catalog.Record{Expires: now.Add(-time.Minute)})
	_ = s.Set(ctx, "boundary", catalog.Record{Expires: now})
	_ = s.Set(ctx, "fresh", catalog.Record{Expires: now.Add(time.Hour)})

	removed, err := s.Purge(ctx, now)
	assert.NilErr(t, err, "purging")
	assert.Equal(t, int64(2), removed, "removed records")
	if _, found, _ := s.Get(ctx, "fresh"); !found {
		t.Errorf("fresh record was removed")
	}

	_ = s.Set(ctx, "stale", catalog.Record{Expires: time.Now().Add(-time.Second)})
	assert.NilErr(t, s.Close(), "closing")

	s = openTestStore(t, dbPath)
	if _, found, _ := s.Get(ctx, "stale"); found {
		t.Errorf("expired record survived reopening")
	}
	if _, found, _ := s.Get(ctx, "fresh"); !found {
		t.Errorf("fresh record did not survive reopening")
	}
}

// TestStoreMigrations checks that the schema is in place after Open and that
// opening an existing database again works.
func TestStoreMigrations(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	s := openTestStore(t, dbPath)
	_ = s.Close()
	_ = s.Close()

	openTestStore(t, dbPath)

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var count int
	row := db.QueryRow(`SELECT count(*) FROM catalog_cache`)
	if err := row.Scan(&count); err != nil {
		t.Errorf("catalog_cache table is not usable: %s", err)
	}
}

// TestStoreWithCache makes sure the store works as the backend of a
// catalog.Cache.
func TestStoreWithCache(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "cache.db"))

	var fetches int
	fetcher := fetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
		fetches++
		return []byte(`[{"MachineName": "x", "Providers": {"Tvdb": "1"}}]`), nil
	})

	cache := catalog.NewCache(fetcher, s, zerolog.Nop())
	for i := 0; i < 3; i++ {
		cat := cache.FetchCatalog(context.Background(), "https://example.org/series.json")
		if len(cat) != 1 || cat[0].Providers.Tvdb != "1" {
			t.Fatalf("unexpected catalog: %#v", cat)
		}
	}

	assert.Equal(t, 1, fetches, "number of fetches")
}

type fetcherFunc func(ctx context.Context, url string) ([]byte, error)

func (f fetcherFunc) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}
