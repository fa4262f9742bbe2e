package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/physioplan/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store  *storage.Store
	log    *slog.Logger
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(store *storage.Store, log *slog.Logger) *Server {
	s := &Server{
		store:  store,
		log:    log,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/api/v1/bodyparts", s.handleBodyParts)
	s.router.Get("/api/v1/exercises", s.handleExercisesByBodyPart)

	s.router.Route("/api/v1/programs", func(r chi.Router) {
		r.Get("/", s.handleListPrograms)
		r.Post("/", s.handleSaveProgram)
		r.Delete("/", s.handleClearPrograms)
	})
}
