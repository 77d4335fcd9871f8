package match_test

import (
	"errors"
	"testing"

	"github.com/ironsmile/artrepo/src/catalog"
	"github.com/ironsmile/artrepo/src/match"
)

const (
	releaseGroupMBID = "4b6d1e5e-1f5a-3bd6-9d5e-8a1d0e5c0a11"
	albumArtistMBID  = "ca891d65-d9b0-4258-89f7-e6ba29d83767"
	albumMBID        = "6518fd52-58bf-44a3-8150-00e7c3ffcae5"
	artistMBID       = "65f4f0c5-ef9e-490c-aee3-909e7ae6b2ab"
	trackMBID        = "d4a5c7b9-0b5b-4f3a-9b1a-2b2c1c3d4e5f"
)

// TestMatchRules checks every rule in isolation against every item type.
func TestMatchRules(t *testing.T) {
	tests := []struct {
		desc    string
		scheme  match.Scheme
		id      string
		entry   catalog.Providers
		matches map[match.ItemType]bool
	}{
		{
			desc:   "AniList",
			scheme: match.AniList,
			id:     "21",
			entry:  catalog.Providers{Anilist: "21"},
			matches: map[match.ItemType]bool{
				match.General: true, match.Audio: true,
				match.MusicAlbum: true, match.MusicArtist: true,
			},
		},
		{
			desc:   "IMDB",
			scheme: match.IMDB,
			id:     "tt0111161",
			entry:  catalog.Providers{Imdb: "tt0111161"},
			matches: map[match.ItemType]bool{
				match.General: true, match.Audio: true,
				match.MusicAlbum: true, match.MusicArtist: true,
			},
		},
		{
			desc:   "TMDB",
			scheme: match.TMDB,
			id:     "603",
			entry:  catalog.Providers{Tmdb: "603"},
			matches: map[match.ItemType]bool{
				match.General: true, match.Audio: true,
				match.MusicAlbum: true, match.MusicArtist: true,
			},
		},
		{
			desc:   "TVDB",
			scheme: match.TVDB,
			id:     "81189",
			entry:  catalog.Providers{Tvdb: "81189"},
			matches: map[match.ItemType]bool{
				match.General: true, match.Audio: true,
				match.MusicAlbum: true, match.MusicArtist: true,
			},
		},
		{
			desc:   "MusicBrainz release group",
			scheme: match.MusicBrainzReleaseGroup,
			id:     releaseGroupMBID,
			entry:  catalog.Providers{Musicbrainz: releaseGroupMBID},
			matches: map[match.ItemType]bool{
				match.Audio: true, match.MusicAlbum: true,
			},
		},
		{
			desc:   "MusicBrainz album artist",
			scheme: match.MusicBrainzAlbumArtist,
			id:     albumArtistMBID,
			entry:  catalog.Providers{Musicbrainz: albumArtistMBID},
			matches: map[match.ItemType]bool{
				match.Audio: true,
			},
		},
		{
			desc:   "MusicBrainz album",
			scheme: match.MusicBrainzAlbum,
			id:     albumMBID,
			entry:  catalog.Providers{Musicbrainz: albumMBID},
			matches: map[match.ItemType]bool{
				match.Audio: true, match.MusicAlbum: true,
			},
		},
		{
			desc:   "MusicBrainz artist",
			scheme: match.MusicBrainzArtist,
			id:     artistMBID,
			entry:  catalog.Providers{Musicbrainz: artistMBID},
			matches: map[match.ItemType]bool{
				match.MusicArtist: true,
			},
		},
		{
			desc:   "MusicBrainz track",
			scheme: match.MusicBrainzTrack,
			id:     trackMBID,
			entry:  catalog.Providers{Musicbrainz: trackMBID},
			matches: map[match.ItemType]bool{
				match.Audio: true,
			},
		},
	}

	itemTypes := []match.ItemType{
		match.General,
		match.Audio,
		match.MusicAlbum,
		match.MusicArtist,
	}

	for _, test := range tests {
		cat := catalog.Catalog{{MachineName: "entry", Providers: test.entry}}
		ids := match.Identifiers{test.scheme: test.id}

		for _, it := range itemTypes {
			res, found := match.Find(it, ids, cat)
			if found != test.matches[it] {
				t.Errorf("%s with item type %s: expected match %t but got %t",
					test.desc, it, test.matches[it], found)
				continue
			}
			if found && res.Scheme != test.scheme {
				t.Errorf("%s with item type %s: matched by %s",
					test.desc, it, res.Scheme)
			}
		}
	}
}

// TestMatchPriority makes sure that the scheme priority decides which rule
// wins and not the order of the identifiers map.
func TestMatchPriority(t *testing.T) {
	cat := catalog.Catalog{
		{
			MachineName: "both",
			Providers:   catalog.Providers{Anilist: "21", Imdb: "tt0388629"},
		},
	}

	for i := 0; i < 50; i++ {
		ids := match.Identifiers{
			match.IMDB:    "tt0388629",
			match.AniList: "21",
			match.TMDB:    "37854",
		}

		res, found := match.Find(match.General, ids, cat)
		if !found {
			t.Fatalf("expected a match")
		}
		if res.Scheme != match.AniList {
			t.Fatalf("expected AniList rule to win but %s did", res.Scheme)
		}
	}
}

// TestMatchFirstEntryWins checks that entries are tried in catalog order and
// that the first matching entry is returned even when a later entry matches
// a higher priority rule.
func TestMatchFirstEntryWins(t *testing.T) {
	cat := catalog.Catalog{
		{MachineName: "no-ids"},
		{MachineName: "tvdb", Providers: catalog.Providers{Tvdb: "81189"}},
		{MachineName: "anilist", Providers: catalog.Providers{Anilist: "21"}},
	}
	ids := match.Identifiers{match.AniList: "21", match.TVDB: "81189"}

	res, found := match.Find(match.General, ids, cat)
	if !found {
		t.Fatalf("expected a match")
	}
	if res.Entry.MachineName != "tvdb" || res.Index != 1 || res.Scheme != match.TVDB {
		t.Errorf("unexpected match: %#v", res)
	}

	entry, found := match.Match(match.General, ids, cat)
	if !found || entry.MachineName != "tvdb" {
		t.Errorf("Match and Find disagree: %#v", entry)
	}
}

// TestMatchCaseInsensitive checks the identifier comparison.
func TestMatchCaseInsensitive(t *testing.T) {
	cat := catalog.Catalog{
		{MachineName: "shawshank", Providers: catalog.Providers{Imdb: "TT0111161"}},
	}

	entry, found := match.Match(match.General, match.Identifiers{match.IMDB: "tt0111161"}, cat)
	if !found || entry.MachineName != "shawshank" {
		t.Errorf("expected case-insensitive match")
	}

	_, found = match.Match(match.General, match.Identifiers{match.IMDB: "tt011116"}, cat)
	if found {
		t.Errorf("prefix should not match")
	}

	_, found = match.Match(match.General, match.Identifiers{match.IMDB: " tt0111161"}, cat)
	if found {
		t.Errorf("identifiers are compared exactly, whitespace included")
	}
}

// TestMatchMusicBrainzArtistOnlyForArtists checks that an artist MBID selects
// the entry for artists only, while Audio needs one of its own ids.
func TestMatchMusicBrainzArtistOnlyForArtists(t *testing.T) {
	cat := catalog.Catalog{
		{MachineName: "artist", Providers: catalog.Providers{Musicbrainz: artistMBID}},
	}
	ids := match.Identifiers{match.MusicBrainzArtist: artistMBID}

	if _, found := match.Match(match.MusicArtist, ids, cat); !found {
		t.Errorf("expected MusicArtist to match by artist id")
	}
	if _, found := match.Match(match.Audio, ids, cat); found {
		t.Errorf("Audio should not match by artist id")
	}

	ids[match.MusicBrainzAlbumArtist] = artistMBID
	res, found := match.Find(match.Audio, ids, cat)
	if !found || res.Scheme != match.MusicBrainzAlbumArtist {
		t.Errorf("expected Audio to match by album artist id, got %#v", res)
	}
}

// TestMatchNothing checks the cases in which there can be no match at all.
func TestMatchNothing(t *testing.T) {
	full := catalog.Catalog{
		{MachineName: "a", Providers: catalog.Providers{Imdb: "tt1", Tmdb: "1"}},
	}

	tests := []struct {
		desc string
		ids  match.Identifiers
		cat  catalog.Catalog
	}{
		{desc: "nil identifiers", ids: nil, cat: full},
		{desc: "no identifiers", ids: match.Identifiers{}, cat: full},
		{desc: "empty identifier values", ids: match.Identifiers{match.IMDB: "", match.TMDB: ""}, cat: full},
		{desc: "empty catalog", ids: match.Identifiers{match.IMDB: "tt1"}, cat: catalog.Catalog{}},
		{desc: "nil catalog", ids: match.Identifiers{match.IMDB: "tt1"}, cat: nil},
		{desc: "different ids", ids: match.Identifiers{match.IMDB: "tt2", match.TVDB: "1"}, cat: full},
		{
			desc: "entries without identifiers",
			ids:  match.Identifiers{match.IMDB: "tt1"},
			cat:  catalog.Catalog{{MachineName: "x"}, {MachineName: "y"}},
		},
	}

	for _, test := range tests {
		if res, found := match.Find(match.General, test.ids, test.cat); found {
			t.Errorf("%s: unexpected match %#v", test.desc, res)
		}
	}
}

// TestParseItemType checks parsing of item type names.
func TestParseItemType(t *testing.T) {
	tests := map[string]match.ItemType{
		"":            match.General,
		"general":     match.General,
		"Audio":       match.Audio,
		"musicalbum":  match.MusicAlbum,
		"MUSICARTIST": match.MusicArtist,
		" MusicAlbum": match.MusicAlbum,
	}

	for name, expected := range tests {
		found, err := match.ParseItemType(name)
		if err != nil {
			t.Errorf("`%s`: unexpected error %s", name, err)
			continue
		}
		if found != expected {
			t.Errorf("`%s`: expected %s but got %s", name, expected, found)
		}
	}

	if _, err := match.ParseItemType("Series"); !errors.Is(err, match.ErrUnknownItemType) {
		t.Errorf("expected ErrUnknownItemType but got %v", err)
	}
}

// TestParseScheme checks parsing of identifier scheme names.
func TestParseScheme(t *testing.T) {
	for _, scheme := range match.Schemes {
		found, err := match.ParseScheme(string(scheme))
		if err != nil || found != scheme {
			t.Errorf("`%s`: got %s, %v", scheme, found, err)
		}
	}

	found, err := match.ParseScheme("musicbrainz-album")
	if err != nil || found != match.MusicBrainzAlbum {
		t.Errorf("expected case-insensitive parsing, got %s, %v", found, err)
	}

	if _, err := match.ParseScheme("Discogs"); !errors.Is(err, match.ErrUnknownScheme) {
		t.Errorf("expected ErrUnknownScheme but got %v", err)
	}
}
