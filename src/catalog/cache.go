package catalog

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTTL is how long a successfully fetched catalog is served from the
// store before it is fetched again.
const DefaultTTL = 5 * time.Minute

// Cache returns repository catalogs, fetching them only when there is no
// valid record in its store. It never fails: every problem with fetching or
// parsing a catalog is logged and results in an empty catalog which is not
// stored. Cache is safe for concurrent use. Two concurrent misses for the
// same URL may both fetch, in which case the last write wins.
type Cache struct {
	fetcher Fetcher
	store   Store
	log     zerolog.Logger
	ttl     time.Duration
	now     func() time.Time
}

// NewCache returns a Cache which uses `fetcher` for getting catalogs over the
// network and `store` for keeping them.
func NewCache(fetcher Fetcher, store Store, logger zerolog.Logger) *Cache {
	return &Cache{
		fetcher: fetcher,
		store:   store,
		log:     logger.With().Str("component", "catalog").Logger(),
		ttl:     DefaultTTL,
		now:     time.Now,
	}
}

// SetTTL changes the time-to-live of newly stored records.
func (c *Cache) SetTTL(ttl time.Duration) {
	c.ttl = ttl
}

// SetClock replaces the function used for telling the current time. Only
// useful for tests.
func (c *Cache) SetClock(now func() time.Time) {
	c.now = now
}

// FetchCatalog returns the catalog found at `url`. See Cache for its failure
// semantics.
func (c *Cache) FetchCatalog(ctx context.Context, url string) Catalog {
	rec, found, err := c.store.Get(ctx, url)
	if err != nil {
		c.log.Warn().Err(err).Str("url", url).Msg("reading catalog store failed")
	} else if found && !rec.Expired(c.now()) {
		c.log.Debug().Str("url", url).Int("entries", len(rec.Catalog)).Msg("catalog cache hit")
		return rec.Catalog
	}

	body, err := c.fetcher.Fetch(ctx, url)
	if ctxErr := ctx.Err(); ctxErr != nil {
		c.log.Debug().Err(ctxErr).Str("url", url).Msg("catalog fetch abandoned")
		return Catalog{}
	}
	if err != nil {
		c.log.Warn().Err(err).Str("url", url).Msg("fetching catalog failed")
		return Catalog{}
	}

	cat, err := Decode(body)
	if err != nil {
		c.log.Warn().Err(err).Str("url", url).Msg("malformed catalog")
		return Catalog{}
	}

	rec = Record{
		Catalog: cat,
		Expires: c.now().Add(c.ttl),
	}
	if err := c.store.Set(ctx, url, rec); err != nil {
		c.log.Warn().Err(err).Str("url", url).Msg("storing catalog failed")
	}

	c.log.Debug().Str("url", url).Int("entries", len(cat)).Msg("catalog fetched")
	return cat
}
