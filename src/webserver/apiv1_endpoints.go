package webserver

import "net/http"

// The following are URL Path endpoints for certain API calls.
const (
	APIv1EndpointArtwork      = "/v1/artwork/{category}"
	APIv1EndpointRepositories = "/v1/repositories"
	APIv1EndpointConfigReload = "/v1/config/reload"
	APIv1EndpointLoginToken   = "/v1/login/token"
	APIv1EndpointVersion      = "/v1/version"
)

// APIv1Methods defines on which HTTP methods APIv1 endpoints will respond to.
// It is an uri_path => list of HTTP methods map.
var APIv1Methods = map[string][]string{
	APIv1EndpointArtwork:      {http.MethodGet},
	APIv1EndpointRepositories: {http.MethodGet},
	APIv1EndpointConfigReload: {http.MethodPost},
	APIv1EndpointLoginToken:   {http.MethodPost},
	APIv1EndpointVersion:      {http.MethodGet},
}

// authExceptions are the endpoints which never require authentication.
var authExceptions = []string{
	APIv1EndpointLoginToken,
	APIv1EndpointVersion,
}
