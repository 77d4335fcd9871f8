package match

import (
	"errors"
	"fmt"
	"strings"
)

// ItemType is the classification of a media item which matters for matching.
// Only the music types change which identifiers are considered, everything
// else is General.
type ItemType int

// All supported item types.
const (
	General ItemType = iota
	Audio
	MusicAlbum
	MusicArtist
)

// ErrUnknownItemType is returned by ParseItemType for unsupported names.
var ErrUnknownItemType = errors.New("unknown item type")

var itemTypeNames = map[ItemType]string{
	General:     "General",
	Audio:       "Audio",
	MusicAlbum:  "MusicAlbum",
	MusicArtist: "MusicArtist",
}

func (it ItemType) String() string {
	if name, ok := itemTypeNames[it]; ok {
		return name
	}
	return fmt.Sprintf("ItemType(%d)", int(it))
}

// ParseItemType returns the item type with name `s`, ignoring case. The empty
// string is General.
func ParseItemType(s string) (ItemType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return General, nil
	}

	for it, name := range itemTypeNames {
		if strings.EqualFold(name, s) {
			return it, nil
		}
	}

	return General, fmt.Errorf("%w: %q", ErrUnknownItemType, s)
}

// Scheme is the name of an external identifier system.
type Scheme string

// The identifier schemes used for matching.
const (
	AniList                 Scheme = "AniList"
	IMDB                    Scheme = "IMDB"
	TMDB                    Scheme = "TMDB"
	TVDB                    Scheme = "TVDB"
	MusicBrainzReleaseGroup Scheme = "MusicBrainz-ReleaseGroup"
	MusicBrainzAlbumArtist  Scheme = "MusicBrainz-AlbumArtist"
	MusicBrainzAlbum        Scheme = "MusicBrainz-Album"
	MusicBrainzArtist       Scheme = "MusicBrainz-Artist"
	MusicBrainzTrack        Scheme = "MusicBrainz-Track"
)

// Schemes lists all known schemes in matching priority order.
var Schemes = []Scheme{
	AniList,
	IMDB,
	TMDB,
	TVDB,
	MusicBrainzReleaseGroup,
	MusicBrainzAlbumArtist,
	MusicBrainzAlbum,
	MusicBrainzArtist,
	MusicBrainzTrack,
}

// ErrUnknownScheme is returned by ParseScheme for unsupported names.
var ErrUnknownScheme = errors.New("unknown identifier scheme")

// ParseScheme returns the scheme with name `s`, ignoring case.
func ParseScheme(s string) (Scheme, error) {
	s = strings.TrimSpace(s)
	for _, scheme := range Schemes {
		if strings.EqualFold(string(scheme), s) {
			return scheme, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScheme, s)
}

// Identifiers maps identifier schemes to the item's value for them.
type Identifiers map[Scheme]string

// Get returns the identifier for `scheme`. Empty values count as missing.
func (ids Identifiers) Get(scheme Scheme) (string, bool) {
	id, ok := ids[scheme]
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
