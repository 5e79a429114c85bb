// Package server exposes the player lookup pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"kinorelay/internal/provider"
)

const shutdownTimeout = 10 * time.Second

// Server routes requests to the lookup handlers.
type Server struct {
	handler   http.Handler
	providers []provider.Provider
	now       func() time.Time
}

// New creates a Server that queries the given sources for /cache.
func New(providers []provider.Provider) *Server {
	s := &Server{
		providers: providers,
		now:       time.Now,
	}

	r := mux.NewRouter()
	r.HandleFunc("/health", s.handle(s.handleHealth)).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/cache", s.handle(s.handleCache)).Methods(http.MethodPost)
	r.HandleFunc("/cache_shiki", s.handle(s.handleCacheShiki)).Methods(http.MethodPost)
	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(notFound)

	// Router-level Use() skips the not-found handlers, so wrap the whole router.
	s.handler = recoverer(cors(accessLog(r)))
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Run listens on addr until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.WithField("addr", addr).Info("server listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
