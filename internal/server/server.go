// Package server implements the composite HTTP API.
//
// The API exposes stored graphs and the computations over them: CRUD on
// named graph documents, conversion into any encoding, path enumeration,
// and rendered artifacts. Path and artifact responses are cached keyed by
// the graph's content hash, so mutations never serve stale results.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/composite/pkg/cache"
	"github.com/matzehuels/composite/pkg/store"
)

// Server wires the HTTP routes to the store and cache backends.
type Server struct {
	store  store.Store
	cache  cache.Cache
	keyer  cache.Keyer
	logger *log.Logger
	ttl    time.Duration
}

// Options configures a Server.
type Options struct {
	Store  store.Store   // required
	Cache  cache.Cache   // defaults to the null cache
	Keyer  cache.Keyer   // defaults to the standard keyer
	Logger *log.Logger   // defaults to log.Default()
	TTL    time.Duration // cache TTL for computed results, default 1h
}

// New creates a Server over the given backends.
func New(opts Options) *Server {
	if opts.Cache == nil {
		opts.Cache = cache.NewNullCache()
	}
	if opts.Keyer == nil {
		opts.Keyer = cache.NewDefaultKeyer()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.TTL == 0 {
		opts.TTL = time.Hour
	}
	return &Server{
		store:  opts.Store,
		cache:  opts.Cache,
		keyer:  opts.Keyer,
		logger: opts.Logger,
		ttl:    opts.TTL,
	}
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)

	r.Route("/api/graphs", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Route("/{name}", func(r chi.Router) {
			r.Put("/", s.handleSave)
			r.Get("/", s.handleLoad)
			r.Delete("/", s.handleDelete)
			r.Get("/encodings/{encoding}", s.handleConvert)
			r.Get("/paths", s.handlePaths)
			r.Get("/render", s.handleRender)
		})
	})

	return r
}

// logRequests logs every request with method, path, status, and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
