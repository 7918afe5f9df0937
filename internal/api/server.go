package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/natworks/chatdash/internal/config"
	"github.com/natworks/chatdash/internal/phrases"
	"github.com/natworks/chatdash/internal/ratelimit"
)

// Server exposes the parse-and-analyze pipeline over HTTP. It is the thin
// upload-handler collaborator: fatal parse errors surface to clients as a
// generic failure, never as internal error detail.
type Server struct {
	router  *chi.Mux
	cfg     config.Config
	set     phrases.PhraseSet
	limiter *ratelimit.Limiter
}

// NewServer wires the routes. The catalog must contain the configured
// language tag.
func NewServer(cfg config.Config, catalog phrases.Catalog) (*Server, error) {
	set, err := catalog.ForLanguage(cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("failed to select phrase set: %w", err)
	}

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:  router,
		cfg:     cfg,
		set:     set,
		limiter: ratelimit.NewPerMinute(cfg.UploadRPM),
	}

	router.Get("/health", s.health)
	router.Post("/api/v1/analyze", s.analyze)

	return s, nil
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	slog.Info("API server starting", "addr", addr, "language", s.cfg.Language)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) rateLimited() bool {
	return !s.limiter.Allow(time.Now())
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
