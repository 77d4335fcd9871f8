package catalog

import (
	"encoding/json"
	"fmt"
)

// Entry is a single artwork record published by a repository. The JSON field
// names match the catalog files served by the repositories.
type Entry struct {
	Name        string        `json:"Name"`
	MachineName string        `json:"MachineName"`
	Providers   Providers     `json:"Providers"`
	Images      ArtworkImages `json:"ArtworkImages"`
}

// Providers holds the cross-reference identifiers of an entry. Any of them may
// be empty which means the repository did not publish it.
type Providers struct {
	Imdb        string `json:"Imdb,omitempty"`
	Tmdb        string `json:"Tmdb,omitempty"`
	Tvdb        string `json:"Tvdb,omitempty"`
	Anilist     string `json:"Anilist,omitempty"`
	Musicbrainz string `json:"Musicbrainz,omitempty"`
}

// Empty returns true when no identifier at all is set. Such entries can never
// be matched against a media item.
func (p Providers) Empty() bool {
	return p.Imdb == "" &&
		p.Tmdb == "" &&
		p.Tvdb == "" &&
		p.Anilist == "" &&
		p.Musicbrainz == ""
}

// ArtworkImages lists the image file identifiers of an entry per category. The
// order within every list is the one published by the repository.
type ArtworkImages struct {
	Backdrop []string `json:"Backdrop"`
	Primary  []string `json:"Primary"`
	Thumb    []string `json:"Thumb"`
	Logo     []string `json:"Logo"`
}

// Len returns the total number of images in all categories.
func (ai ArtworkImages) Len() int {
	return len(ai.Backdrop) + len(ai.Primary) + len(ai.Thumb) + len(ai.Logo)
}

// Catalog is the ordered list of entries published by one repository for one
// image category key.
type Catalog []Entry

// Decode parses a catalog document. Anything other than a JSON array of entry
// objects is an error, including `null`.
func Decode(data []byte) (Catalog, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("decoding catalog: document is not an array")
	}

	cat := make(Catalog, 0, len(raw))
	for i, msg := range raw {
		var entry Entry
		if err := json.Unmarshal(msg, &entry); err != nil {
			return nil, fmt.Errorf("decoding catalog entry %d: %w", i, err)
		}
		cat = append(cat, entry)
	}

	return cat, nil
}
