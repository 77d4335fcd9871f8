package webserver_test

import (
	"strings"
	"testing"
	"time"

	"github.com/gbrlsnchs/jwt/v3"
)

func assertContentTypeJSON(t *testing.T, contentType string) {
	t.Helper()

	if !strings.HasPrefix(contentType, "application/json") {
		t.Errorf("expected JSON content type but got `%s`", contentType)
	}
}

func assertToken(t *testing.T, token, secret string) {
	t.Helper()

	var pl jwt.Payload
	_, err := jwt.Verify(
		[]byte(token),
		jwt.NewHS256([]byte(secret)),
		&pl,
		jwt.ValidatePayload(&pl, jwt.ExpirationTimeValidator(time.Now())),
	)
	if err != nil {
		t.Fatalf("error verifying JWT token: %s", err)
	}

	if pl.ExpirationTime == nil {
		t.Fatalf("token has no expiration time")
	}

	if pl.ExpirationTime.Time.Before(time.Now().Add(6 * 24 * time.Hour)) {
		t.Errorf("token expires too soon: %s", pl.ExpirationTime.Time)
	}
}

func newToken(t *testing.T, secret string, expires time.Time) string {
	t.Helper()

	pl := jwt.Payload{
		IssuedAt:       jwt.NumericDate(time.Now()),
		ExpirationTime: jwt.NumericDate(expires),
	}
	token, err := jwt.Sign(pl, jwt.NewHS256([]byte(secret)))
	if err != nil {
		t.Fatalf("signing token failed: %s", err)
	}
	return string(token)
}
