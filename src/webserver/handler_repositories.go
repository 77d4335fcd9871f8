package webserver

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/ironsmile/artrepo/src/art"
	"github.com/ironsmile/artrepo/src/webserver/webutils"
)

type repositoriesHandler struct {
	repos art.RepositoryLister
}

// NewRepositoriesHandler returns a handler which lists the configured artwork
// repositories in the order in which they are queried.
func NewRepositoriesHandler(repos art.RepositoryLister) http.Handler {
	return &repositoriesHandler{
		repos: repos,
	}
}

func (h *repositoriesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := struct {
		Repositories []string `json:"repositories"`
	}{
		Repositories: h.repos.Repositories(),
	}

	if resp.Repositories == nil {
		resp.Repositories = []string{}
	}

	if err := webutils.JSON(w, &resp, http.StatusOK); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("writing repositories response")
	}
}
