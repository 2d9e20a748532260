package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"gitfolio.dev/internal/site"
	"gitfolio.dev/internal/views"
)

// PageHandler serves the full pages
type PageHandler struct {
	site     *site.Site
	renderer *views.Renderer
	logger   *slog.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(s *site.Site, renderer *views.Renderer, logger *slog.Logger) *PageHandler {
	return &PageHandler{site: s, renderer: renderer, logger: logger}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	page := h.site.Page()
	respondHTML(w, h.logger, func(out io.Writer) error {
		return h.renderer.Index(out, page)
	})
}

// AllProjects handles GET /projects, the target of the "view all" affordance
func (h *PageHandler) AllProjects(w http.ResponseWriter, r *http.Request) {
	page := h.site.Page()
	respondHTML(w, h.logger, func(out io.Writer) error {
		return h.renderer.AllProjects(out, page)
	})
}
