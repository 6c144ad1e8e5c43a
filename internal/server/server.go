// Package server exposes the dashboard page, the chart JSON API and a
// websocket view-selection channel over the current event snapshot.
package server

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/crimson-sun/errboard/internal/model"
	"github.com/crimson-sun/errboard/internal/store"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageTitle is the dashboard heading.
const PageTitle = "Dashboard de Errores del Computador"

// Renderer renders one view selection over an event set.
type Renderer interface {
	HandleSelection(events []model.Event, selected string) (model.ChartSpec, error)
}

// Loader reloads the snapshot from its source.
type Loader interface {
	Load(ctx context.Context) (*store.Snapshot, error)
}

// Option configures a Server.
type Option func(*Server)

// WithLoader enables POST /api/reload.
func WithLoader(l Loader) Option {
	return func(s *Server) { s.loader = l }
}

// WithBasicAuth protects every route except /healthz with HTTP basic auth.
// hash is a bcrypt hash of the password.
func WithBasicAuth(user, hash string) Option {
	return func(s *Server) {
		if user != "" {
			s.auth = &credentials{user: user, hash: []byte(hash)}
		}
	}
}

// Server serves the dashboard. Every request reads one snapshot; the server
// keeps no other state between requests.
type Server struct {
	store  *store.Store
	engine Renderer
	loader Loader
	auth   *credentials
	tmpl   *template.Template
}

// New creates a Server over st rendered by eng.
func New(st *store.Store, eng Renderer, opts ...Option) *Server {
	s := &Server{
		store:  st,
		engine: eng,
		tmpl:   template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Group(func(r chi.Router) {
		if s.auth != nil {
			r.Use(s.auth.middleware)
		}
		r.Get("/", s.handleIndex)
		r.Get("/ws", s.handleWebSocket)
		r.Route("/api", func(r chi.Router) {
			r.Get("/views", s.handleListViews)
			r.Get("/views/{view}", s.handleView)
			r.Get("/snapshot", s.handleSnapshot)
			r.Post("/reload", s.handleReload)
		})
	})
	return r
}
