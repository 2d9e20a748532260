package views

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitfolio.dev/internal/carousel"
	"gitfolio.dev/internal/models"
	"gitfolio.dev/internal/services"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(Paths{Base: "/"})
	require.NoError(t, err)
	return r
}

func renderCarousel(t *testing.T, r *Renderer, c *carousel.Carousel) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Carousel(&buf, c))
	return buf.String()
}

func renderModal(t *testing.T, r *Renderer, m *carousel.Modal) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Modal(&buf, m))
	return buf.String()
}

func curated(n int) []models.CuratedProject {
	projects := make([]models.CuratedProject, n)
	for i := range projects {
		projects[i] = models.CuratedProject{Title: fmt.Sprintf("talk-%d", i)}
	}
	return projects
}

func seeAllOptions() carousel.Options {
	opts := carousel.DefaultOptions()
	opts.SeeAllURL = "/projects/"
	return opts
}

func TestPaths(t *testing.T) {
	server := Paths{Base: "/"}
	assert.Equal(t, "/fragments/carousel/auto/2", server.Carousel(ModeAuto, 2))
	assert.Equal(t, "/fragments/projects/4/modal", server.Modal(4))
	assert.Equal(t, "/fragments/modal/close", server.ModalClose())
	assert.Equal(t, "/projects/", server.SeeAll())

	static := Paths{Base: "/portfolio", Suffix: ".html"}
	assert.Equal(t, "/portfolio/fragments/carousel/manual/0.html", static.Carousel(ModeManual, 0))
	assert.Equal(t, "/portfolio/fragments/projects/1/modal.html", static.Modal(1))
	assert.Equal(t, "/portfolio/fragments/modal/close.html", static.ModalClose())

	assert.Equal(t, "/", Paths{}.Home())
}

func TestCarousel_EmptyRendersNothing(t *testing.T) {
	r := newTestRenderer(t)
	out := renderCarousel(t, r, carousel.New(services.Aggregate(nil, nil), seeAllOptions()))
	assert.Empty(t, strings.TrimSpace(out))
}

func TestCarousel_RepositoryCard(t *testing.T) {
	r := newTestRenderer(t)
	items := services.Aggregate([]models.RepositoryProject{
		{Name: "cipher-shield", URL: "https://github.com/o/cipher-shield", Stars: 12, Forks: 3, Language: "Rust"},
		{Name: "quiet"},
	}, nil)

	out := renderCarousel(t, r, carousel.New(items, seeAllOptions()))
	assert.Contains(t, out, "cipher-shield")
	assert.Contains(t, out, "<span>12</span>")
	assert.Contains(t, out, "<span>3</span>")
	assert.Contains(t, out, `badge badge-primary badge-sm ml-auto">Rust</div>`)
	assert.Contains(t, out, "line-clamp-3")
	assert.Contains(t, out, "No description available")
	assert.Contains(t, out, `hx-get="/fragments/projects/0/modal"`)
	assert.Contains(t, out, `hx-get="/fragments/projects/1/modal"`)
	assert.Equal(t, 1, strings.Count(out, "ml-auto"), "language badge only where a language exists")
}

func TestCarousel_CuratedBadgesOverflow(t *testing.T) {
	r := newTestRenderer(t)
	items := services.Aggregate(nil, []models.CuratedProject{{
		Title:    "Hackathon",
		ImageURL: "https://img.example/cover.png",
		Extended: models.Extended{Technologies: []string{"Go", "HTMX", "SQLite", "Docker", "Azure"}},
	}})

	out := renderCarousel(t, r, carousel.New(items, seeAllOptions()))
	assert.Contains(t, out, `src="https://img.example/cover.png"`)
	assert.Contains(t, out, ">SQLite</span>")
	assert.NotContains(t, out, ">Docker</span>")
	assert.Contains(t, out, ">+2</span>")
}

func TestCarousel_SeeAll(t *testing.T) {
	r := newTestRenderer(t)

	out := renderCarousel(t, r, carousel.New(services.Aggregate(nil, curated(3)), seeAllOptions()))
	assert.NotContains(t, out, "View All Repositories")

	out = renderCarousel(t, r, carousel.New(services.Aggregate(nil, curated(4)), seeAllOptions()))
	assert.Contains(t, out, "View All Repositories")
	assert.Contains(t, out, `href="/projects/"`)

	out = renderCarousel(t, r, carousel.New(services.Aggregate(nil, curated(4)), carousel.DefaultOptions()))
	assert.NotContains(t, out, "View All Repositories")
}

func TestCarousel_AutoplayLatch(t *testing.T) {
	r := newTestRenderer(t)
	items := services.Aggregate(nil, curated(5))

	auto := renderCarousel(t, r, carousel.New(items, seeAllOptions()))
	assert.Contains(t, auto, "every 5s")
	assert.Contains(t, auto, `hx-get="/fragments/carousel/auto/1"`)

	assert.Contains(t, auto, `hx-sync="#projects-carousel:drop"`, "a tick never interrupts navigation")

	manual := renderCarousel(t, r, carousel.Restore(items, seeAllOptions(), 1, true))
	assert.NotContains(t, manual, `hx-sync="#projects-carousel:drop"`)
	assert.Equal(t, strings.Count(manual, "hx-get="), strings.Count(manual, `hx-sync="#projects-carousel:replace"`)+strings.Count(manual, `/modal"`),
		"every navigation control cancels a pending autoplay tick")
	assert.NotContains(t, manual, "every 5s")
	assert.NotContains(t, manual, "/fragments/carousel/auto/")
	assert.Contains(t, manual, `hx-get="/fragments/carousel/manual/0"`)
	assert.Contains(t, manual, `hx-get="/fragments/carousel/manual/2"`)

	opts := seeAllOptions()
	opts.Autoplay = false
	off := renderCarousel(t, r, carousel.New(items, opts))
	assert.NotContains(t, off, "every 5s")
}

func TestCarousel_SlideVisibilityPerTier(t *testing.T) {
	r := newTestRenderer(t)
	c := carousel.Restore(services.Aggregate(nil, curated(5)), seeAllOptions(), 1, false)

	out := renderCarousel(t, r, c)
	assert.Contains(t, out, `class="hidden md:hidden lg:hidden h-auto" data-index="0"`)
	assert.Contains(t, out, `class="block md:block lg:block h-auto" data-index="1"`)
	assert.Contains(t, out, `class="hidden md:block lg:block h-auto" data-index="2"`)
	assert.Contains(t, out, `class="hidden md:hidden lg:block h-auto" data-index="3"`)
	assert.Contains(t, out, "lg:grid-cols-3")
}

func TestCarousel_WideTierClampsAfterNarrowPaging(t *testing.T) {
	r := newTestRenderer(t)
	c := carousel.Restore(services.Aggregate(nil, curated(4)), seeAllOptions(), 3, true)

	out := renderCarousel(t, r, c)
	assert.Equal(t, 3, strings.Count(out, "lg:block h-auto"))
	assert.Contains(t, out, `class="hidden md:hidden lg:hidden h-auto" data-index="0"`)
	assert.Contains(t, out, `class="hidden md:hidden lg:block h-auto" data-index="1"`)
	assert.Contains(t, out, `class="block md:block lg:block h-auto" data-index="3"`)

	var wide string
	for _, nav := range strings.Split(out, "<nav")[1:] {
		if strings.Contains(nav, `data-tier="wide"`) {
			wide, _, _ = strings.Cut(nav, "</nav>")
		}
	}
	require.NotEmpty(t, wide)
	assert.Contains(t, wide, `hx-get="/fragments/carousel/manual/0"`, "prev steps back from the clamped position")
	assert.Contains(t, wide, `aria-label="Go to slide 2"`)
	assert.Equal(t, 1, strings.Count(wide, "btn-primary"), "one active bullet")
	assert.Less(t, strings.Index(wide, "btn-ghost"), strings.Index(wide, "btn-primary"), "active bullet is the last window")
}

func TestCarousel_CuratedGroupLabel(t *testing.T) {
	r := newTestRenderer(t)
	items := services.Aggregate([]models.RepositoryProject{{Name: "cipher-shield"}}, curated(2))
	opts := seeAllOptions()
	opts.CuratedHeader = "Community Involvement & Talks"

	out := renderCarousel(t, r, carousel.New(items, opts))
	assert.Equal(t, 1, strings.Count(out, `data-role="group"`))
	label := strings.Index(out, "Community Involvement &amp; Talks")
	require.NotEqual(t, -1, label)
	assert.Less(t, strings.Index(out, "cipher-shield"), label)
	assert.Less(t, label, strings.Index(out, "talk-0"))

	var buf bytes.Buffer
	require.NoError(t, r.AllProjects(&buf, Page{ProjectsHeader: "Projects", Carousel: carousel.New(items, opts)}))
	assert.Equal(t, 1, strings.Count(buf.String(), `data-role="group"`))

	out = renderCarousel(t, r, carousel.New(services.Aggregate(nil, curated(2)), opts))
	assert.NotContains(t, out, `data-role="group"`, "no label without repository cards before it")
}

func TestModal_Closed(t *testing.T) {
	r := newTestRenderer(t)
	var m carousel.Modal
	assert.Empty(t, strings.TrimSpace(renderModal(t, r, &m)))

	m.Open(models.ProjectViewModel{Title: "x"})
	m.Close()
	assert.Empty(t, strings.TrimSpace(renderModal(t, r, &m)))
}

func TestModal_CuratedWithoutLinks(t *testing.T) {
	r := newTestRenderer(t)
	c := carousel.New(services.Aggregate(nil, []models.CuratedProject{{Title: "Talk A", Description: "", Link: ""}}), seeAllOptions())
	require.NoError(t, c.Activate(0))

	out := renderModal(t, r, c.Modal())
	assert.Contains(t, out, "Talk A")
	assert.Contains(t, out, "Description")
	assert.NotContains(t, out, `data-role="links"`)
	assert.NotContains(t, out, "Key Features")
	assert.NotContains(t, out, "Achievements")
	assert.NotContains(t, out, "Technologies Used")
	assert.NotContains(t, out, `data-role="gallery"`)
	assert.Contains(t, out, `data-role="backdrop" hx-get="/fragments/modal/close"`)
	assert.Contains(t, out, `data-role="dismiss" hx-get="/fragments/modal/close"`)
}

func TestModal_FullProject(t *testing.T) {
	r := newTestRenderer(t)
	var m carousel.Modal
	m.Open(models.ProjectViewModel{
		Title:        "pocketdoc",
		Description:  "long form",
		Technologies: []string{"React"},
		Features:     []string{"offline mode"},
		Achievements: []string{"1st place"},
		Links:        models.Links{GitHub: "https://github.com/o/pocketdoc", Website: "https://pocketdoc.example"},
		Media: []models.MediaItem{
			{Type: models.MediaImage, URL: "https://img.example/1.png"},
			{Type: models.MediaVideo, URL: "https://cdn.example/demo.mp4", Caption: "Walkthrough"},
		},
	})

	out := renderModal(t, r, &m)
	assert.Contains(t, out, "long form")
	assert.Contains(t, out, "Key Features")
	assert.Contains(t, out, "<li class=\"text-base-content/80\">offline mode</li>")
	assert.Contains(t, out, "Achievements")
	assert.Contains(t, out, "Technologies Used")
	assert.Contains(t, out, `alt="pocketdoc screenshot 1"`)
	assert.Contains(t, out, `<video src="https://cdn.example/demo.mp4" controls`)
	assert.Contains(t, out, "Walkthrough")
	assert.Contains(t, out, `href="https://github.com/o/pocketdoc" target="_blank" rel="noopener noreferrer"`)
	assert.Contains(t, out, `href="https://pocketdoc.example" target="_blank"`)
	assert.Contains(t, out, "View Code")
	assert.Contains(t, out, "Website")
	assert.NotContains(t, out, "Live Demo")
}

func TestIndex(t *testing.T) {
	r := newTestRenderer(t)
	items := services.Aggregate([]models.RepositoryProject{{Name: "cipher-shield", Stars: 12, Forks: 3}}, nil)

	var buf bytes.Buffer
	require.NoError(t, r.Index(&buf, Page{
		Title:          "Portfolio of Ada",
		Profile:        models.Profile{Name: "Ada", Skills: []string{"Go"}},
		ProjectsHeader: "Featured Projects",
		Summary:        models.ProjectSummary{Repositories: 1, TotalStars: 12, TotalForks: 3},
		Carousel:       carousel.New(items, seeAllOptions()),
	}))
	out := buf.String()
	assert.Contains(t, out, "<title>Portfolio of Ada</title>")
	assert.Contains(t, out, `id="skills"`)
	assert.NotContains(t, out, `id="experience"`)
	assert.Contains(t, out, "Featured Projects")
	assert.Contains(t, out, `id="projects-carousel"`)
	assert.Contains(t, out, `id="project-modal"`)
	assert.Contains(t, out, "12 stars")
}

func TestIndex_NoProjects(t *testing.T) {
	r := newTestRenderer(t)

	var buf bytes.Buffer
	require.NoError(t, r.Index(&buf, Page{
		Title:    "Portfolio",
		Carousel: carousel.New(services.Aggregate(nil, nil), seeAllOptions()),
	}))
	assert.NotContains(t, buf.String(), `id="projects"`)
}

func TestAllProjects(t *testing.T) {
	r := newTestRenderer(t)

	var buf bytes.Buffer
	require.NoError(t, r.AllProjects(&buf, Page{
		Title:          "All projects",
		ProjectsHeader: "Projects",
		Carousel:       carousel.New(services.Aggregate(nil, curated(5)), seeAllOptions()),
	}))
	out := buf.String()
	assert.Contains(t, out, `id="all-projects"`)
	assert.Equal(t, 5, strings.Count(out, "/modal\""))
	assert.NotContains(t, out, "every 5s")
}
