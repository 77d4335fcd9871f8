//go:build windows

package helpers

// ArtrepoDir is the name of the artrepo directory in the user's home directory.
const ArtrepoDir = "artrepo"
