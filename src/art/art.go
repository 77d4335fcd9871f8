package art

import (
	"context"

	"github.com/ironsmile/artrepo/src/catalog"
	"github.com/ironsmile/artrepo/src/match"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of repositories queried at the same time
// when the Client is not told otherwise.
const DefaultConcurrency = 4

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Finder

// Finder defines a type which is capable of finding artwork candidates for
// media items.
type Finder interface {
	// GetImageCandidates returns all artwork candidates for the item with
	// identifiers `ids` in the image category `categoryKey`. The only error
	// it returns is the one of a cancelled `ctx`.
	GetImageCandidates(
		ctx context.Context,
		categoryKey string,
		itemType match.ItemType,
		ids match.Identifiers,
	) ([]Candidate, error)
}

// CatalogSource returns repository catalogs. It never fails, a catalog which
// could not be obtained is empty. catalog.Cache is a CatalogSource.
type CatalogSource interface {
	FetchCatalog(ctx context.Context, url string) catalog.Catalog
}

// RepositoryLister returns the currently configured repositories in order.
type RepositoryLister interface {
	Repositories() []string
}

// Client finds artwork candidates in all configured repositories. The list of
// repositories is read anew for every lookup. It is safe for concurrent use.
//
// It implements Finder.
type Client struct {
	catalogs     CatalogSource
	repositories RepositoryLister
	log          zerolog.Logger
	concurrency  int
}

// NewClient returns a Client which reads catalogs from `catalogs` for every
// repository returned by `repos`.
func NewClient(
	catalogs CatalogSource,
	repos RepositoryLister,
	logger zerolog.Logger,
) *Client {
	return &Client{
		catalogs:     catalogs,
		repositories: repos,
		log:          logger.With().Str("component", "art").Logger(),
		concurrency:  DefaultConcurrency,
	}
}

// SetConcurrency changes how many repositories are queried at the same time.
// Values less than one mean one.
func (c *Client) SetConcurrency(n int) {
	if n < 1 {
		n = 1
	}
	c.concurrency = n
}

// GetImageCandidates implements Finder. Candidates of every repository are
// concatenated in the order of the repositories.
func (c *Client) GetImageCandidates(
	ctx context.Context,
	categoryKey string,
	itemType match.ItemType,
	ids match.Identifiers,
) ([]Candidate, error) {
	repos := c.repositories.Repositories()
	perRepo := make([][]Candidate, len(repos))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, repo := range repos {
		i, repo := i, repo
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			perRepo[i] = c.repositoryCandidates(gctx, repo, categoryKey, itemType, ids)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	candidates := []Candidate{}
	for _, found := range perRepo {
		candidates = append(candidates, found...)
	}

	c.log.Debug().
		Str("category", categoryKey).
		Stringer("item_type", itemType).
		Int("repositories", len(repos)).
		Int("candidates", len(candidates)).
		Msg("artwork lookup done")

	return candidates, nil
}

func (c *Client) repositoryCandidates(
	ctx context.Context,
	repo string,
	categoryKey string,
	itemType match.ItemType,
	ids match.Identifiers,
) []Candidate {
	cat := c.catalogs.FetchCatalog(ctx, catalogURL(repo, categoryKey))

	res, found := match.Find(itemType, ids, cat)
	if !found {
		c.log.Debug().
			Str("repository", repo).
			Str("category", categoryKey).
			Int("entries", len(cat)).
			Msg("no matching entry")
		return nil
	}

	c.log.Debug().
		Str("repository", repo).
		Str("category", categoryKey).
		Str("machine_name", res.Entry.MachineName).
		Int("index", res.Index).
		Str("scheme", string(res.Scheme)).
		Msg("entry matched")

	return BuildCandidates(repo, categoryKey, &res.Entry)
}
