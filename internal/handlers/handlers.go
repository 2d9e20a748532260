package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gitfolio.dev/internal/middleware"
	"gitfolio.dev/internal/site"
	"gitfolio.dev/internal/views"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(s *site.Site, renderer *views.Renderer, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	pageHandler := NewPageHandler(s, renderer, logger)
	fragmentHandler := NewFragmentHandler(s, renderer, logger)
	projectHandler := NewProjectHandler(s.Projects(), logger)

	// Pages
	r.Get("/", pageHandler.Index)
	r.Get("/projects", pageHandler.AllProjects)
	r.Get("/projects/", pageHandler.AllProjects)

	// HTMX fragments
	r.Route("/fragments", func(r chi.Router) {
		r.Get("/carousel/{mode}/{start}", fragmentHandler.Carousel)
		r.Get("/projects/{index}/modal", fragmentHandler.OpenModal)
		r.Get("/modal/close", fragmentHandler.CloseModal)
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{index}", projectHandler.GetProject)

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
		})
	})

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("encoding JSON", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	respondJSON(w, status, map[string]string{"error": message}, logger)
}

// respondHTML buffers render so a template failure still yields a clean 500
func respondHTML(w http.ResponseWriter, logger *slog.Logger, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		logger.Error("rendering template", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
