package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitfolio.dev/internal/models"
)

func TestAggregate(t *testing.T) {
	testCases := []struct {
		name    string
		repos   []models.RepositoryProject
		curated []models.CuratedProject
		titles  []string
	}{
		{name: "both empty"},
		{
			name:   "repositories only",
			repos:  []models.RepositoryProject{{Name: "b"}, {Name: "a"}},
			titles: []string{"b", "a"},
		},
		{
			name:    "repositories precede curated",
			repos:   []models.RepositoryProject{{Name: "repo-1"}, {Name: "repo-2"}},
			curated: []models.CuratedProject{{Title: "talk-1"}, {Title: "talk-2"}},
			titles:  []string{"repo-1", "repo-2", "talk-1", "talk-2"},
		},
		{
			name:    "no dedup across sources",
			repos:   []models.RepositoryProject{{Name: "same"}},
			curated: []models.CuratedProject{{Title: "same"}},
			titles:  []string{"same", "same"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			items := Aggregate(tc.repos, tc.curated)
			require.Len(t, items, len(tc.repos)+len(tc.curated))

			titles := make([]string, 0, len(items))
			for i, item := range items {
				titles = append(titles, item.Title())
				if i < len(tc.repos) {
					assert.Equal(t, models.OriginRepository, item.Origin)
				} else {
					assert.Equal(t, models.OriginCurated, item.Origin)
				}
			}
			if tc.titles == nil {
				assert.Empty(t, titles)
			} else {
				assert.Equal(t, tc.titles, titles)
			}
		})
	}
}

func TestAggregate_DoesNotMutateSources(t *testing.T) {
	repos := []models.RepositoryProject{{Name: "r", Language: "Go"}}
	curated := []models.CuratedProject{{Title: "c"}}

	for _, item := range Aggregate(repos, curated) {
		_, err := Normalize(item)
		require.NoError(t, err)
	}
	assert.Equal(t, []models.RepositoryProject{{Name: "r", Language: "Go"}}, repos)
	assert.Equal(t, []models.CuratedProject{{Title: "c"}}, curated)
}

func TestNormalize_Repository(t *testing.T) {
	testCases := []struct {
		name     string
		project  models.RepositoryProject
		expected models.ProjectViewModel
	}{
		{
			name:    "language becomes the only technology",
			project: models.RepositoryProject{Name: "cipher-shield", URL: "https://github.com/adelmuursepp/cipher-shield", Stars: 12, Forks: 3, Language: "Rust"},
			expected: models.ProjectViewModel{
				Title:        "cipher-shield",
				Description:  "",
				Technologies: []string{"Rust"},
				Links:        models.Links{GitHub: "https://github.com/adelmuursepp/cipher-shield"},
			},
		},
		{
			name:    "no language gives no technologies",
			project: models.RepositoryProject{Name: "plain", URL: "https://github.com/o/plain", Description: "short"},
			expected: models.ProjectViewModel{
				Title:        "plain",
				Description:  "short",
				Technologies: []string{},
				Links:        models.Links{GitHub: "https://github.com/o/plain"},
			},
		},
		{
			name: "extended fields win",
			project: models.RepositoryProject{
				Name:        "pocketdoc",
				URL:         "https://github.com/o/pocketdoc",
				Description: "short",
				Language:    "TypeScript",
				Extended: &models.Extended{
					LongDescription: "long",
					Technologies:    []string{"React", "Node.js"},
					Features:        []string{"offline"},
					Achievements:    []string{"1st place"},
					Links:           &models.Links{Demo: "https://demo.example"},
					Media:           []models.MediaItem{{Type: models.MediaVideo, URL: "https://cdn.example/a.mp4"}},
				},
			},
			expected: models.ProjectViewModel{
				Title:        "pocketdoc",
				Description:  "long",
				Technologies: []string{"React", "Node.js"},
				Features:     []string{"offline"},
				Achievements: []string{"1st place"},
				Links:        models.Links{Demo: "https://demo.example"},
				Media:        []models.MediaItem{{Type: models.MediaVideo, URL: "https://cdn.example/a.mp4"}},
			},
		},
		{
			name: "explicit empty technology list is kept",
			project: models.RepositoryProject{
				Name:     "empty-tech",
				Language: "Go",
				Extended: &models.Extended{Technologies: []string{}},
			},
			expected: models.ProjectViewModel{
				Title:        "empty-tech",
				Technologies: []string{},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			vm, err := Normalize(models.Item{Origin: models.OriginRepository, Repository: &tc.project})
			require.NoError(t, err)
			assert.Equal(t, tc.expected, vm)
		})
	}
}

func TestNormalize_Curated(t *testing.T) {
	testCases := []struct {
		name     string
		project  models.CuratedProject
		expected models.ProjectViewModel
	}{
		{
			name:    "empty link stays absent",
			project: models.CuratedProject{Title: "Talk A", Description: "", Link: ""},
			expected: models.ProjectViewModel{
				Title:        "Talk A",
				Description:  "",
				Technologies: []string{},
			},
		},
		{
			name:    "link becomes website",
			project: models.CuratedProject{Title: "Ambassador", Description: "workshops", Link: "https://reactor.example"},
			expected: models.ProjectViewModel{
				Title:        "Ambassador",
				Description:  "workshops",
				Technologies: []string{},
				Links:        models.Links{Website: "https://reactor.example"},
			},
		},
		{
			name: "language is never inferred for curated items",
			project: models.CuratedProject{
				Title:    "Hackathon",
				Extended: models.Extended{LongDescription: "details", Technologies: []string{"Go", "HTMX"}, Links: &models.Links{GitHub: "https://github.com/o/h"}},
			},
			expected: models.ProjectViewModel{
				Title:        "Hackathon",
				Description:  "details",
				Technologies: []string{"Go", "HTMX"},
				Links:        models.Links{GitHub: "https://github.com/o/h"},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			vm, err := Normalize(models.Item{Origin: models.OriginCurated, Curated: &tc.project})
			require.NoError(t, err)
			assert.Equal(t, tc.expected, vm)
		})
	}
}

func TestNormalize_Errors(t *testing.T) {
	_, err := Normalize(models.Item{Origin: models.OriginCurated, Curated: &models.CuratedProject{Title: "  "}})
	assert.ErrorIs(t, err, ErrUntitledProject)

	_, err = Normalize(models.Item{Origin: models.OriginRepository})
	assert.Error(t, err)

	_, err = Normalize(models.Item{Origin: "other"})
	assert.Error(t, err)
}

func TestNewProjectService_RejectsUntitled(t *testing.T) {
	_, err := NewProjectService(nil, []models.CuratedProject{{Title: "ok"}, {Description: "no title"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUntitledProject))
	assert.Contains(t, err.Error(), "project 1")
}

func TestProjectService_ViewModel(t *testing.T) {
	svc, err := NewProjectService(
		[]models.RepositoryProject{{Name: "cipher-shield", URL: "https://github.com/o/cipher-shield", Language: "Rust"}},
		[]models.CuratedProject{{Title: "Talk A"}},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, svc.Len())

	vm, err := svc.ViewModel(0)
	require.NoError(t, err)
	assert.Equal(t, "cipher-shield", vm.Title)
	assert.Equal(t, []string{"Rust"}, vm.Technologies)

	vm, err = svc.ViewModel(1)
	require.NoError(t, err)
	assert.Equal(t, "Talk A", vm.Title)
	assert.True(t, vm.Links.IsZero())

	_, err = svc.ViewModel(2)
	assert.ErrorIs(t, err, ErrProjectNotFound)
	_, err = svc.ViewModel(-1)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectService_Summary(t *testing.T) {
	svc, err := NewProjectService([]models.RepositoryProject{
		{Name: "a", Stars: 12, Forks: 3},
		{Name: "b", Stars: 2, Forks: 1},
		{Name: "c", Stars: 5},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, models.ProjectSummary{Repositories: 3, TotalStars: 19, TotalForks: 4, MedianStars: 5}, svc.Summary())

	empty, err := NewProjectService(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectSummary{}, empty.Summary())
	assert.Empty(t, empty.Items())
}
