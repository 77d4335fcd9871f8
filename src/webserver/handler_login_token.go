package webserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gbrlsnchs/jwt/v3"
	"github.com/rs/zerolog"

	"github.com/ironsmile/artrepo/src/config"
	"github.com/ironsmile/artrepo/src/webserver/webutils"
)

const (
	wrongLoginText = "wrong username or password"

	// tokenDuration is how long a generated token stays valid.
	tokenDuration = 7 * 24 * time.Hour
)

type loginTokenHandler struct {
	auth config.Auth
	now  func() time.Time
}

// NewLoginTokenHandler returns a new login handler which will use the information in
// auth for deciding when device or program was logged in correctly by entering
// username and password.
func NewLoginTokenHandler(auth config.Auth) http.Handler {
	return &loginTokenHandler{
		auth: auth,
		now:  time.Now,
	}
}

func (h *loginTokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reqBody := struct {
		User string `json:"username"`
		Pass string `json:"password"`
	}{}

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&reqBody); err != nil {
		respondWithJSONError(
			w,
			http.StatusBadRequest,
			"Error parsing JSON request: %s.",
			err,
		)
		return
	}

	if !checkLoginCreds(reqBody.User, reqBody.Pass, h.auth.User, h.auth.Password) {
		respondWithJSONError(w, http.StatusUnauthorized, wrongLoginText)
		return
	}

	if len(h.auth.Secret) == 0 {
		respondWithJSONError(
			w,
			http.StatusInternalServerError,
			"Error generating JWT: secret is empty.",
		)
		return
	}

	now := h.now()
	pl := jwt.Payload{
		IssuedAt:       jwt.NumericDate(now),
		ExpirationTime: jwt.NumericDate(now.Add(tokenDuration)),
	}

	token, err := jwt.Sign(pl, jwt.NewHS256([]byte(h.auth.Secret)))
	if err != nil {
		respondWithJSONError(
			w,
			http.StatusInternalServerError,
			"Error generating JWT: %s.",
			err,
		)
		return
	}

	resp := struct {
		Token string `json:"token"`
	}{
		Token: string(token),
	}

	if err := webutils.JSON(w, &resp, http.StatusOK); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("writing token response")
	}
}

func respondWithJSONError(
	w http.ResponseWriter,
	code int,
	msgf string,
	args ...interface{},
) {
	webutils.JSONError(w, fmt.Sprintf(msgf, args...), code)
}
