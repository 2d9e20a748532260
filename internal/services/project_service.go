package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"

	"gitfolio.dev/internal/models"
)

var (
	// ErrUntitledProject is returned when no title can be derived for an item
	ErrUntitledProject = errors.New("project has no title")
	// ErrProjectNotFound is returned for an index outside the aggregate
	ErrProjectNotFound = errors.New("project not found")
)

// Aggregate concatenates repository and curated projects into one tagged
// sequence. Repository items come first; order within each source is kept.
func Aggregate(repos []models.RepositoryProject, curated []models.CuratedProject) []models.Item {
	items := make([]models.Item, 0, len(repos)+len(curated))
	for i := range repos {
		items = append(items, models.Item{Origin: models.OriginRepository, Repository: &repos[i]})
	}
	for i := range curated {
		items = append(items, models.Item{Origin: models.OriginCurated, Curated: &curated[i]})
	}
	return items
}

// Normalize maps an item to the view model shown in the detail modal
func Normalize(item models.Item) (models.ProjectViewModel, error) {
	var vm models.ProjectViewModel
	switch item.Origin {
	case models.OriginRepository:
		if item.Repository == nil {
			return vm, fmt.Errorf("repository item without repository data")
		}
		vm = normalizeRepository(*item.Repository)
	case models.OriginCurated:
		if item.Curated == nil {
			return vm, fmt.Errorf("curated item without curated data")
		}
		vm = normalizeCurated(*item.Curated)
	default:
		return vm, fmt.Errorf("unknown project origin %q", item.Origin)
	}
	if strings.TrimSpace(vm.Title) == "" {
		return vm, ErrUntitledProject
	}
	return vm, nil
}

func normalizeRepository(p models.RepositoryProject) models.ProjectViewModel {
	var ext models.Extended
	if p.Extended != nil {
		ext = *p.Extended
	}

	technologies := ext.Technologies
	if technologies == nil {
		technologies = []string{}
		if p.Language != "" {
			technologies = []string{p.Language}
		}
	}

	links := models.Links{GitHub: p.URL}
	if ext.Links != nil {
		links = *ext.Links
	}

	return build(p.Name, p.Description, technologies, links, ext)
}

func normalizeCurated(p models.CuratedProject) models.ProjectViewModel {
	technologies := p.Technologies
	if technologies == nil {
		technologies = []string{}
	}

	links := models.Links{Website: p.Link}
	if p.Links != nil {
		links = *p.Links
	}

	return build(p.Title, p.Description, technologies, links, p.Extended)
}

func build(title, description string, technologies []string, links models.Links, ext models.Extended) models.ProjectViewModel {
	if ext.LongDescription != "" {
		description = ext.LongDescription
	}
	return models.ProjectViewModel{
		Title:        title,
		Description:  description,
		Technologies: technologies,
		Features:     ext.Features,
		Achievements: ext.Achievements,
		Links:        links,
		Media:        ext.Media,
	}
}

// ProjectService holds the project sources for one render pass
type ProjectService struct {
	repos   []models.RepositoryProject
	curated []models.CuratedProject
}

// NewProjectService creates a new ProjectService. Every item must normalize,
// so a card can never be shown without a view model behind it.
func NewProjectService(repos []models.RepositoryProject, curated []models.CuratedProject) (*ProjectService, error) {
	s := &ProjectService{repos: repos, curated: curated}
	for i, item := range s.Items() {
		if _, err := Normalize(item); err != nil {
			return nil, fmt.Errorf("project %d (%s): %w", i, item.Origin, err)
		}
	}
	return s, nil
}

// Items returns the aggregate sequence
func (s *ProjectService) Items() []models.Item {
	return Aggregate(s.repos, s.curated)
}

// Len returns the number of aggregate items
func (s *ProjectService) Len() int {
	return len(s.repos) + len(s.curated)
}

// ViewModel returns the view model for the item at index
func (s *ProjectService) ViewModel(index int) (models.ProjectViewModel, error) {
	items := s.Items()
	if index < 0 || index >= len(items) {
		return models.ProjectViewModel{}, fmt.Errorf("%w: %d", ErrProjectNotFound, index)
	}
	return Normalize(items[index])
}

// Summary returns star and fork totals over the repository projects
func (s *ProjectService) Summary() models.ProjectSummary {
	summary := models.ProjectSummary{Repositories: len(s.repos)}
	if len(s.repos) == 0 {
		return summary
	}

	starCounts := make(stats.Float64Data, 0, len(s.repos))
	for _, repo := range s.repos {
		summary.TotalStars += repo.Stars
		summary.TotalForks += repo.Forks
		starCounts = append(starCounts, float64(repo.Stars))
	}
	if median, err := starCounts.Median(); err == nil {
		summary.MedianStars = median
	}
	return summary
}
