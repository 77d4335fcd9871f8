/*
Package art is responsible for finding artwork images for media items in remote
artwork repositories.

An artwork repository is a plain HTTP(S) location which publishes one JSON catalog
per image category, for example

	https://example.org/art/movies.json

Every catalog entry carries the external identifiers of a media item (IMDB, TMDB,
TVDB, AniList or MusicBrainz) together with the image ids which exist for it. For
an entry with MachineName "myshow" in category "series" the image ids are turned
into URLs such as

	https://example.org/art/series/myshow/backdrop.a.jpg

The Client asks every configured repository in order and returns the candidates
of all of them. Repositories which cannot be reached or have no matching entry are
simply skipped.
*/
package art
