// Package webserver contains the HTTP API of artrepo. It lets clients look up
// artwork candidates and manage the running service.
package webserver

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/ironsmile/artrepo/src/art"
	"github.com/ironsmile/artrepo/src/config"
)

// ConfigStore is the configuration of the running process as seen by the
// webserver.
type ConfigStore interface {
	art.RepositoryLister
	Reloader
}

// Server represents our webserver. It will be controlled from here.
type Server struct {
	// Configuration of this server
	cfg config.Config

	// Finds the artwork candidates
	finder art.Finder

	// Active configuration, possibly reloaded while the server is running
	cfgStore ConfigStore

	log zerolog.Logger

	// WG used in Server.Wait to sync with server's end
	wg sync.WaitGroup

	// The actual http.Server doing the HTTP work
	httpSrv *http.Server

	mu sync.Mutex

	// The server's net.Listener. Used in the Server.Stop func
	listener net.Listener

	// The reason the server stopped, if any
	serveErr error
}

// NewServer returns a new Server using the supplied configuration cfg. The
// returned server is ready and calling its Serve method will start it.
func NewServer(
	cfg config.Config,
	finder art.Finder,
	cfgStore ConfigStore,
	logger zerolog.Logger,
) *Server {
	return &Server{
		cfg:      cfg,
		finder:   finder,
		cfgStore: cfgStore,
		log:      logger.With().Str("component", "webserver").Logger(),
	}
}

// Handler returns the http.Handler which serves all the API endpoints.
func (srv *Server) Handler() http.Handler {
	router := mux.NewRouter()

	routes := map[string]http.Handler{
		APIv1EndpointArtwork:      NewArtworkHandler(srv.finder),
		APIv1EndpointRepositories: NewRepositoriesHandler(srv.cfgStore),
		APIv1EndpointConfigReload: NewConfigReloadHandler(srv.cfgStore),
		APIv1EndpointLoginToken:   NewLoginTokenHandler(srv.cfg.Authentication),
		APIv1EndpointVersion:      NewVersionHandler(),
	}

	for endpoint, handler := range routes {
		router.Handle(endpoint, handler).Methods(APIv1Methods[endpoint]...)
	}

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondWithJSONError(w, http.StatusNotFound, "not found")
	})

	var handler http.Handler = router

	if srv.cfg.Authentication.Enabled {
		srv.log.Info().Msg("Adding authenticate handler")
		handler = NewAuthHandler(handler, srv.cfg.Authentication, authExceptions)
	}

	return NewAccessHandler(handler, srv.log)
}

// Serve actually starts the webserver. It attaches all the handlers and
// starts the webserver while consulting the configuration supplied. It
// returns once the server is listening or has failed to. Trying to call this
// method more than once for the same server will result in panic.
func (srv *Server) Serve() error {
	srv.mu.Lock()
	if srv.httpSrv != nil {
		srv.mu.Unlock()
		panic("Second Server.Serve call for the same server")
	}

	srv.httpSrv = &http.Server{
		Addr:           srv.cfg.Listen,
		Handler:        srv.Handler(),
		ReadTimeout:    time.Duration(srv.cfg.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(srv.cfg.WriteTimeout) * time.Second,
		MaxHeaderBytes: srv.cfg.MaxHeadersSize,
	}
	srv.mu.Unlock()

	addr := srv.httpSrv.Addr
	if addr == "" {
		addr = ":http"
	}

	lsn, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	srv.mu.Lock()
	srv.listener = lsn
	srv.mu.Unlock()

	srv.wg.Add(1)
	go srv.serveGoroutine(lsn)

	srv.log.Info().Str("address", lsn.Addr().String()).Msg("Webserver started")
	return nil
}

func (srv *Server) serveGoroutine(lsn net.Listener) {
	defer srv.wg.Done()

	reason := srv.httpSrv.Serve(lsn)
	if reason == http.ErrServerClosed {
		reason = nil
	}

	srv.mu.Lock()
	srv.serveErr = reason
	srv.mu.Unlock()

	ev := srv.log.Info()
	if reason != nil {
		ev = srv.log.Error().Err(reason)
	}
	ev.Msg("Webserver stopped")
}

// Addr returns the address the server listens on. It is nil before Serve.
func (srv *Server) Addr() net.Addr {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.listener == nil {
		return nil
	}
	return srv.listener.Addr()
}

// Stop stops the webserver, waiting up to `timeout` for the requests in
// flight to finish.
func (srv *Server) Stop(timeout time.Duration) {
	srv.mu.Lock()
	httpSrv := srv.httpSrv
	srv.mu.Unlock()

	if httpSrv == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		srv.log.Warn().Err(err).Msg("Webserver did not stop gracefully")
		_ = httpSrv.Close()
	}
}

// Wait syncs whoever called this with the server's stop. It returns the
// reason for stopping if it was an error.
func (srv *Server) Wait() error {
	srv.wg.Wait()

	srv.mu.Lock()
	defer srv.mu.Unlock()
	return srv.serveErr
}
