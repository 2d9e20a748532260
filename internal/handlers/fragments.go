package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gitfolio.dev/internal/carousel"
	"gitfolio.dev/internal/services"
	"gitfolio.dev/internal/site"
	"gitfolio.dev/internal/views"
)

// FragmentHandler serves the HTMX fragments of the carousel and the modal
type FragmentHandler struct {
	site     *site.Site
	renderer *views.Renderer
	logger   *slog.Logger
}

// NewFragmentHandler creates a new FragmentHandler
func NewFragmentHandler(s *site.Site, renderer *views.Renderer, logger *slog.Logger) *FragmentHandler {
	return &FragmentHandler{site: s, renderer: renderer, logger: logger}
}

// Carousel handles GET /fragments/carousel/{mode}/{start}. Manual requests
// come from navigation controls and stop autoplay for good.
func (h *FragmentHandler) Carousel(w http.ResponseWriter, r *http.Request) {
	mode := chi.URLParam(r, "mode")
	if mode != views.ModeAuto && mode != views.ModeManual {
		http.Error(w, "invalid carousel mode", http.StatusBadRequest)
		return
	}

	start, err := strconv.Atoi(chi.URLParam(r, "start"))
	if err != nil || start < 0 {
		http.Error(w, "invalid carousel position", http.StatusBadRequest)
		return
	}

	c := h.site.RestoreCarousel(start, mode == views.ModeManual)
	respondHTML(w, h.logger, func(out io.Writer) error {
		return h.renderer.Carousel(out, c)
	})
}

// OpenModal handles GET /fragments/projects/{index}/modal, triggered by a
// card activation
func (h *FragmentHandler) OpenModal(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "invalid project index", http.StatusBadRequest)
		return
	}

	c := h.site.Carousel()
	if err := c.Activate(index); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			http.Error(w, "project not found", http.StatusNotFound)
			return
		}
		h.logger.Error("normalizing project", "index", index, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	respondHTML(w, h.logger, func(out io.Writer) error {
		return h.renderer.Modal(out, c.Modal())
	})
}

// CloseModal handles GET /fragments/modal/close from the dismiss control or
// the backdrop
func (h *FragmentHandler) CloseModal(w http.ResponseWriter, r *http.Request) {
	var m carousel.Modal
	respondHTML(w, h.logger, func(out io.Writer) error {
		return h.renderer.Modal(out, &m)
	})
}
