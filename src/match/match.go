// Package match finds the catalog entry which corresponds to a media item by
// comparing their external identifiers.
package match

import (
	"strings"

	"github.com/ironsmile/artrepo/src/catalog"
)

// rule compares one identifier scheme of the item with one identifier of
// a catalog entry. A rule is only tried for item types it applies to.
type rule struct {
	scheme  Scheme
	entryID func(catalog.Providers) string
	applies func(ItemType) bool
}

func anyType(ItemType) bool { return true }

func oneOf(types ...ItemType) func(ItemType) bool {
	return func(it ItemType) bool {
		for _, t := range types {
			if t == it {
				return true
			}
		}
		return false
	}
}

func anilistID(p catalog.Providers) string     { return p.Anilist }
func imdbID(p catalog.Providers) string        { return p.Imdb }
func tmdbID(p catalog.Providers) string        { return p.Tmdb }
func tvdbID(p catalog.Providers) string        { return p.Tvdb }
func musicbrainzID(p catalog.Providers) string { return p.Musicbrainz }

// rules is in priority order. For every entry the first satisfied rule wins.
var rules = []rule{
	{scheme: AniList, entryID: anilistID, applies: anyType},
	{scheme: IMDB, entryID: imdbID, applies: anyType},
	{scheme: TMDB, entryID: tmdbID, applies: anyType},
	{scheme: TVDB, entryID: tvdbID, applies: anyType},
	{scheme: MusicBrainzReleaseGroup, entryID: musicbrainzID, applies: oneOf(Audio, MusicAlbum)},
	{scheme: MusicBrainzAlbumArtist, entryID: musicbrainzID, applies: oneOf(Audio)},
	{scheme: MusicBrainzAlbum, entryID: musicbrainzID, applies: oneOf(MusicAlbum, Audio)},
	{scheme: MusicBrainzArtist, entryID: musicbrainzID, applies: oneOf(MusicArtist)},
	{scheme: MusicBrainzTrack, entryID: musicbrainzID, applies: oneOf(Audio)},
}

// Result describes a successful match.
type Result struct {
	Entry  catalog.Entry
	Index  int    // position of Entry in the catalog
	Scheme Scheme // the identifier scheme which matched
}

// Match returns the first entry in `cat` which shares an identifier with the
// item. The boolean is false when there is no such entry.
func Match(
	itemType ItemType,
	ids Identifiers,
	cat catalog.Catalog,
) (catalog.Entry, bool) {
	res, ok := Find(itemType, ids, cat)
	return res.Entry, ok
}

// Find is like Match but also reports where and how the entry was matched.
func Find(itemType ItemType, ids Identifiers, cat catalog.Catalog) (Result, bool) {
	if len(ids) == 0 {
		return Result{}, false
	}

	for i, entry := range cat {
		if entry.Providers.Empty() {
			continue
		}

		if scheme, ok := matchEntry(itemType, ids, entry.Providers); ok {
			return Result{Entry: entry, Index: i, Scheme: scheme}, true
		}
	}

	return Result{}, false
}

func matchEntry(itemType ItemType, ids Identifiers, p catalog.Providers) (Scheme, bool) {
	for _, r := range rules {
		if !r.applies(itemType) {
			continue
		}

		itemID, ok := ids.Get(r.scheme)
		if !ok {
			continue
		}

		entryID := r.entryID(p)
		if entryID == "" {
			continue
		}

		if strings.EqualFold(itemID, entryID) {
			return r.scheme, true
		}
	}

	return "", false
}
