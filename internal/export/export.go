// Package export writes the site as static files laid out like the server
// routes, so HTMX fragment requests resolve against a plain file host.
package export

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gitfolio.dev/internal/carousel"
	"gitfolio.dev/internal/site"
	"gitfolio.dev/internal/views"
)

// Suffix is appended to every fragment route in an exported site
const Suffix = ".html"

// Result counts what Write produced
type Result struct {
	Pages     int
	Fragments int
}

// Write renders every page and fragment of s into dir. renderer must be
// built with Suffix so the rendered URLs match the written files.
func Write(dir string, s *site.Site, renderer *views.Renderer, logger *slog.Logger) (Result, error) {
	var result Result
	if renderer.Paths().Suffix != Suffix {
		return result, fmt.Errorf("renderer paths must use suffix %q", Suffix)
	}

	w := writer{dir: dir, logger: logger}
	page := s.Page()

	if err := w.write("index.html", func(out io.Writer) error { return renderer.Index(out, page) }); err != nil {
		return result, err
	}
	if err := w.write(filepath.Join("projects", "index.html"), func(out io.Writer) error { return renderer.AllProjects(out, page) }); err != nil {
		return result, err
	}
	result.Pages = 2

	n := s.Projects().Len()
	for _, mode := range []string{views.ModeAuto, views.ModeManual} {
		for start := 0; start < n; start++ {
			c := s.RestoreCarousel(start, mode == views.ModeManual)
			name := filepath.Join("fragments", "carousel", mode, strconv.Itoa(start)+Suffix)
			if err := w.write(name, func(out io.Writer) error { return renderer.Carousel(out, c) }); err != nil {
				return result, err
			}
			result.Fragments++
		}
	}

	for index := 0; index < n; index++ {
		c := s.Carousel()
		if err := c.Activate(index); err != nil {
			return result, fmt.Errorf("project %d: %w", index, err)
		}
		name := filepath.Join("fragments", "projects", strconv.Itoa(index), "modal"+Suffix)
		if err := w.write(name, func(out io.Writer) error { return renderer.Modal(out, c.Modal()) }); err != nil {
			return result, err
		}
		result.Fragments++
	}

	var closed carousel.Modal
	if err := w.write(filepath.Join("fragments", "modal", "close"+Suffix), func(out io.Writer) error { return renderer.Modal(out, &closed) }); err != nil {
		return result, err
	}
	result.Fragments++

	return result, nil
}

type writer struct {
	dir    string
	logger *slog.Logger
}

func (w writer) write(name string, render func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	path := filepath.Join(w.dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory for %s: %w", name, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	w.logger.Debug("exported file", "path", name, "bytes", buf.Len())
	return nil
}
