package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Server is the side-channel HTTP surface of a run: metrics and health.
type Server struct{ mux *chi.Mux }

func New(l zerolog.Logger) *Server {
	m := chi.NewRouter()

	// middlewares must be registered before any route
	m.Use(chimw.RequestID)
	m.Use(chimw.Recoverer)
	m.Use(chimw.Timeout(10 * time.Second))
	m.Use(Observe(l))

	m.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	return &Server{mux: m}
}

func (s *Server) Mux() http.Handler { return s.mux }

// Mount attaches h (e.g. the metrics handler) at path.
func (s *Server) Mount(path string, h http.Handler) {
	s.mux.Handle(path, h)
}

// HTTPServer wraps the router with listener timeouts.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
