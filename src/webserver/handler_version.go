package webserver

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/ironsmile/artrepo/src/version"
	"github.com/ironsmile/artrepo/src/webserver/webutils"
)

// NewVersionHandler returns a handler which tells which version of artrepo
// is running.
func NewVersionHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := struct {
			Version string `json:"version"`
		}{
			Version: version.Version,
		}

		if err := webutils.JSON(w, &resp, http.StatusOK); err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Msg("writing version response")
		}
	})
}
