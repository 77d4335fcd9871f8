package catalog

import (
	"context"
	"sync"
	"time"
)

// Record is a cached catalog together with the moment it stops being valid.
type Record struct {
	Catalog Catalog
	Expires time.Time
}

// Expired returns true when the record must not be used at time `now`.
func (r Record) Expired(now time.Time) bool {
	return !now.Before(r.Expires)
}

//counterfeiter:generate . Store

// Store keeps catalog records keyed by their catalog URL. Implementations must
// be safe for concurrent use. Stores do not interpret expiry, this is left to
// the Cache.
type Store interface {
	// Get returns the record for `url`. The boolean is false when there is
	// no record at all.
	Get(ctx context.Context, url string) (Record, bool, error)

	// Set replaces the record for `url`.
	Set(ctx context.Context, url string, rec Record) error
}

// MemoryStore is a Store which keeps everything in memory. The zero value
// is ready for use.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, url string) (Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[url]
	return rec, ok, nil
}

// Set implements Store.
func (s *MemoryStore) Set(_ context.Context, url string, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.records == nil {
		s.records = make(map[string]Record)
	}
	s.records[url] = rec
	return nil
}

// Purge removes all records which are expired at `now`. It returns the
// number of removed records.
func (s *MemoryStore) Purge(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int
	for url, rec := range s.records {
		if rec.Expired(now) {
			delete(s.records, url)
			removed++
		}
	}
	return removed
}

// Len returns the number of records currently held, expired included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}
