package webserver

import (
	"net/http"
	"time"

	"github.com/pborman/uuid"
	"github.com/rs/zerolog"
)

// RequestIDHeader is the response header which carries the ID of the request.
const RequestIDHeader = "X-Request-ID"

// AccessHandler is an http.Handler which wraps around another handler and prints
// access logs. Every request gets an ID which is sent back to the client and is
// part of every log message for this request. Handlers get their logger with
// zerolog.Ctx.
type AccessHandler struct {
	wrapped http.Handler
	log     zerolog.Logger
}

// NewAccessHandler returns an AccessHandler which will call `h` and the log
// information about the http request and response.
func NewAccessHandler(h http.Handler, logger zerolog.Logger) *AccessHandler {
	return &AccessHandler{
		wrapped: h,
		log:     logger,
	}
}

// ServeHTTP implements the http.Handler interface.
func (h *AccessHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	reqID := uuid.New()
	reqLog := h.log.With().Str("request_id", reqID).Logger()

	w.Header().Set(RequestIDHeader, reqID)
	req = req.WithContext(reqLog.WithContext(req.Context()))

	started := time.Now()
	ww := newLoggedResponseWriter(w)
	h.wrapped.ServeHTTP(ww, req)
	elapsed := time.Since(started)

	reqURL := *req.URL
	query := reqURL.Query()
	if t := query.Get("token"); t != "" {
		query.Set("token", queryRedactedValue)
		reqURL.RawQuery = query.Encode()
	}

	reqLog.Info().
		Str("method", req.Method).
		Str("url", reqURL.RequestURI()).
		Dur("dur", elapsed).
		Int("status", ww.code).
		Str("user_agent", req.Header.Get("User-Agent")).
		Str("remote_addr", req.RemoteAddr).
		Msg("access")
}

type loggedResponseWriter struct {
	http.ResponseWriter
	code int
}

func newLoggedResponseWriter(w http.ResponseWriter) *loggedResponseWriter {
	return &loggedResponseWriter{
		ResponseWriter: w,
		code:           http.StatusOK,
	}
}

func (w *loggedResponseWriter) WriteHeader(status int) {
	w.code = status
	w.ResponseWriter.WriteHeader(status)
}

const queryRedactedValue = "REDACTED"
