package webserver

import (
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/gbrlsnchs/jwt/v3"
	"github.com/rs/zerolog"

	"github.com/ironsmile/artrepo/src/config"
	"github.com/ironsmile/artrepo/src/webserver/webutils"
)

const authRequiredText = "authentication required"

// AuthHandler is a handler wrapper used for authentication. Its only job is
// to do the authentication and then pass the work to the Handler it wraps around.
// Possible methods for authentication:
//
//   - Basic Auth with the username and password
//   - Authorization Bearer JWT token, see the login token endpoint
type AuthHandler struct {
	wrapped    http.Handler // The actual handler that does the APP Logic job
	username   string       // Username to be used for basic authenticate
	password   string       // Password to be used for basic authenticate
	secret     string       // Secret used to craft and decode tokens
	exceptions []string     // Paths which will be exempt from authentication
}

// NewAuthHandler returns an AuthHandler which checks requests against `auth`
// before handing them to `h`. Requests for `exceptions` paths are not checked.
func NewAuthHandler(h http.Handler, auth config.Auth, exceptions []string) *AuthHandler {
	return &AuthHandler{
		wrapped:    h,
		username:   auth.User,
		password:   auth.Password,
		secret:     auth.Secret,
		exceptions: exceptions,
	}
}

// ServeHTTP implements the http.Handler interface and does the actual authentication
// check for every request.
func (hl *AuthHandler) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	if !hl.authenticated(req) {
		zerolog.Ctx(req.Context()).Debug().Str("path", req.URL.Path).Msg("unauthenticated request")
		writer.Header().Set("WWW-Authenticate", `Basic realm="artrepo"`)
		webutils.JSONError(writer, authRequiredText, http.StatusUnauthorized)
		return
	}

	hl.wrapped.ServeHTTP(writer, req)
}

// authenticated compares the authentication header with the stored user and
// password or validates its token and returns true if they pass.
func (hl *AuthHandler) authenticated(r *http.Request) bool {
	for _, path := range hl.exceptions {
		if r.URL.Path == path || strings.TrimSuffix(r.URL.Path, "/") == path {
			return true
		}
	}

	authHeader := r.Header.Get("Authorization")

	if strings.HasPrefix(authHeader, "Bearer ") {
		return hl.withJWT(strings.TrimPrefix(authHeader, "Bearer "))
	}

	if strings.HasPrefix(authHeader, "Basic ") {
		return hl.withBasicAuth(strings.TrimPrefix(authHeader, "Basic "))
	}

	return false
}

func (hl *AuthHandler) withBasicAuth(encoded string) bool {
	b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return false
	}

	pair := strings.SplitN(string(b), ":", 2)

	if len(pair) != 2 {
		return false
	}

	return checkLoginCreds(pair[0], pair[1], hl.username, hl.password)
}

func (hl *AuthHandler) withJWT(token string) bool {
	if hl.secret == "" {
		return false
	}

	var pl jwt.Payload
	exp := jwt.ExpirationTimeValidator(time.Now())
	_, err := jwt.Verify(
		[]byte(strings.TrimSpace(token)),
		jwt.NewHS256([]byte(hl.secret)),
		&pl,
		jwt.ValidatePayload(&pl, exp),
	)

	return err == nil
}

func checkLoginCreds(user, pass, expectedUser, expectedPass string) bool {
	return user == expectedUser && pass == expectedPass
}
