package webserver

import (
	"net/http"
	"regexp"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/ironsmile/artrepo/src/art"
	"github.com/ironsmile/artrepo/src/match"
	"github.com/ironsmile/artrepo/src/webserver/webutils"
)

// validCategory is what an image category key may look like.
var validCategory = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// itemTypeQueryParam is the query parameter with the type of the media item.
const itemTypeQueryParam = "type"

type artworkHandler struct {
	finder art.Finder
}

// NewArtworkHandler returns a handler which lists the artwork candidates for
// the media item described by the query parameters of the request. Every
// identifier scheme is a query parameter, e.g. ?type=MusicAlbum&MusicBrainz-Album=...
func NewArtworkHandler(finder art.Finder) http.Handler {
	return &artworkHandler{
		finder: finder,
	}
}

func (h *artworkHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	category := mux.Vars(r)["category"]

	if !validCategory.MatchString(category) {
		respondWithJSONError(w, http.StatusBadRequest, "invalid category %q", category)
		return
	}

	query := r.URL.Query()

	itemType, err := match.ParseItemType(query.Get(itemTypeQueryParam))
	if err != nil {
		respondWithJSONError(w, http.StatusBadRequest, "%s", err)
		return
	}

	ids := make(match.Identifiers)
	for key, values := range query {
		if key == itemTypeQueryParam || len(values) == 0 {
			continue
		}

		scheme, err := match.ParseScheme(key)
		if err != nil {
			continue
		}
		ids[scheme] = values[0]
	}

	candidates, err := h.finder.GetImageCandidates(r.Context(), category, itemType, ids)
	if err != nil {
		logger.Debug().Err(err).Str("category", category).Msg("artwork lookup abandoned")
		return
	}

	logger.Debug().
		Str("category", category).
		Stringer("item_type", itemType).
		Int("identifiers", len(ids)).
		Int("candidates", len(candidates)).
		Msg("artwork lookup")

	if candidates == nil {
		candidates = []art.Candidate{}
	}

	resp := struct {
		Candidates []art.Candidate `json:"candidates"`
	}{
		Candidates: candidates,
	}

	if err := webutils.JSON(w, &resp, http.StatusOK); err != nil {
		logger.Warn().Err(err).Msg("writing artwork response")
	}
}
