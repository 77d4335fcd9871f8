package webserver

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Reloader is something which can read its configuration again.
type Reloader interface {
	Reload() error
}

type configReloadHandler struct {
	reloader Reloader
}

// NewConfigReloadHandler returns a handler which reloads the configuration
// file on request.
func NewConfigReloadHandler(reloader Reloader) http.Handler {
	return &configReloadHandler{
		reloader: reloader,
	}
}

func (h *configReloadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.reloader.Reload(); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("reloading configuration failed")
		respondWithJSONError(w, http.StatusInternalServerError, "reloading configuration: %s", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
