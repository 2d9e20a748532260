// Package site assembles the loaded configuration and project sources into
// what one page render needs.
package site

import (
	"fmt"
	"strings"

	"gitfolio.dev/internal/carousel"
	"gitfolio.dev/internal/config"
	"gitfolio.dev/internal/models"
	"gitfolio.dev/internal/services"
	"gitfolio.dev/internal/views"
)

const defaultProjectsHeader = "Projects"

// Site is the immutable state shared by every render
type Site struct {
	title          string
	projectsHeader string
	profile        models.Profile
	projects       *services.ProjectService
	opts           carousel.Options
}

// New builds a site from its configuration and the loaded repositories.
// seeAllURL is where the carousel's "view all" affordance leads; empty
// disables it.
func New(cfg *config.SiteConfig, repos []models.RepositoryProject, seeAllURL string) (*Site, error) {
	projects, err := services.NewProjectService(repos, cfg.Projects.External.Projects)
	if err != nil {
		return nil, fmt.Errorf("invalid projects: %w", err)
	}

	opts := carousel.DefaultOptions()
	cc := cfg.Projects.Carousel
	if cc.ProjectsPerView > 0 {
		opts.ProjectsPerView = cc.ProjectsPerView
	}
	if cc.Autoplay != nil {
		opts.Autoplay = *cc.Autoplay
	}
	if cc.ShowSeeAll != nil {
		opts.ShowSeeAll = *cc.ShowSeeAll
	}
	opts.SeeAllURL = seeAllURL

	header := projectsHeader(cfg.Projects, len(repos) > 0)
	external := cfg.Projects.External
	if len(repos) > 0 && len(external.Projects) > 0 && external.Header != header {
		opts.CuratedHeader = external.Header
	}

	return &Site{
		title:          title(cfg.Profile),
		projectsHeader: header,
		profile:        cfg.Profile,
		projects:       projects,
		opts:           opts,
	}, nil
}

func title(p models.Profile) string {
	if name := strings.TrimSpace(p.Name); name != "" {
		return "Portfolio of " + name
	}
	return "Portfolio"
}

func projectsHeader(p config.ProjectsConfig, hasRepos bool) string {
	if hasRepos && p.GitHub.Header != "" {
		return p.GitHub.Header
	}
	if p.External.Header != "" {
		return p.External.Header
	}
	if p.GitHub.Header != "" {
		return p.GitHub.Header
	}
	return defaultProjectsHeader
}

// Projects returns the project service
func (s *Site) Projects() *services.ProjectService { return s.projects }

// Options returns the carousel options
func (s *Site) Options() carousel.Options { return s.opts }

// Carousel returns a fresh carousel on the first item
func (s *Site) Carousel() *carousel.Carousel {
	return carousel.New(s.projects.Items(), s.opts)
}

// RestoreCarousel returns a fresh carousel positioned at start
func (s *Site) RestoreCarousel(start int, manual bool) *carousel.Carousel {
	return carousel.Restore(s.projects.Items(), s.opts, start, manual)
}

// Page returns the data of a full page render
func (s *Site) Page() views.Page {
	return views.Page{
		Title:          s.title,
		Profile:        s.profile,
		ProjectsHeader: s.projectsHeader,
		Summary:        s.projects.Summary(),
		Carousel:       s.Carousel(),
	}
}
