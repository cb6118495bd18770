package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lexhaven/lexidoc/internal/assistant"
	"github.com/lexhaven/lexidoc/internal/config"
	"github.com/lexhaven/lexidoc/internal/docstore"
	"github.com/lexhaven/lexidoc/internal/provider"
)

// Server is the HTTP API server for lexidoc.
type Server struct {
	router    chi.Router
	assistant *assistant.Service
	store     *docstore.Store
	stats     *provider.Stats
	log       *slog.Logger
	cfg       config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(svc *assistant.Service, store *docstore.Store, stats *provider.Stats, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		assistant: svc,
		store:     store,
		stats:     stats,
		log:       log,
		cfg:       cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Post("/api/documents", s.handleProcessDocument)
	r.Get("/api/documents", s.handleListDocuments)
	r.Get("/api/documents/{docID}", s.handleGetDocument)
	r.Delete("/api/documents/{docID}", s.handleDeleteDocument)

	r.Post("/api/chat", s.handleChat)
	r.Get("/api/stats/llm", s.handleLLMStats)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
