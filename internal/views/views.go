// Package views renders the portfolio pages and the HTMX fragments of the
// projects carousel and detail modal.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"gitfolio.dev/internal/carousel"
	"gitfolio.dev/internal/models"
)

//go:embed templates
var templatesFS embed.FS

// Carousel fragment modes
const (
	ModeAuto   = "auto"
	ModeManual = "manual"
)

const carouselID = "projects-carousel"

// Paths builds the URLs the rendered HTML points at. The server and the
// static export differ only in Suffix.
type Paths struct {
	Base   string
	Suffix string
}

func (p Paths) base() string {
	if p.Base == "" {
		return "/"
	}
	if !strings.HasSuffix(p.Base, "/") {
		return p.Base + "/"
	}
	return p.Base
}

// Carousel returns the URL of the carousel fragment at start
func (p Paths) Carousel(mode string, start int) string {
	return fmt.Sprintf("%sfragments/carousel/%s/%d%s", p.base(), mode, start, p.Suffix)
}

// Modal returns the URL of the open modal fragment for the item at index
func (p Paths) Modal(index int) string {
	return fmt.Sprintf("%sfragments/projects/%d/modal%s", p.base(), index, p.Suffix)
}

// ModalClose returns the URL of the closed modal fragment
func (p Paths) ModalClose() string {
	return p.base() + "fragments/modal/close" + p.Suffix
}

// SeeAll returns the URL of the page listing every project
func (p Paths) SeeAll() string {
	return p.base() + "projects/"
}

// Home returns the URL of the index page
func (p Paths) Home() string {
	return p.base()
}

// Page is the data of a full page render
type Page struct {
	Title          string
	Profile        models.Profile
	ProjectsHeader string
	Summary        models.ProjectSummary
	Carousel       *carousel.Carousel
}

// Renderer executes the embedded templates
type Renderer struct {
	paths     Paths
	fragments *template.Template
	pages     map[string]*template.Template
}

// New parses the embedded templates
func New(paths Paths) (*Renderer, error) {
	base, err := template.New("views").ParseFS(templatesFS, "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse partials: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, name := range []string{"index", "projects"} {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone partials: %w", err)
		}
		page, err := clone.ParseFS(templatesFS, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s page: %w", name, err)
		}
		pages[name] = page
	}

	return &Renderer{paths: paths, fragments: base, pages: pages}, nil
}

// Paths returns the URL builder the renderer was created with
func (r *Renderer) Paths() Paths { return r.paths }

// Index renders the home page
func (r *Renderer) Index(w io.Writer, page Page) error {
	return r.pages["index"].ExecuteTemplate(w, "layout", r.pageView(page))
}

// AllProjects renders the page listing every project card
func (r *Renderer) AllProjects(w io.Writer, page Page) error {
	return r.pages["projects"].ExecuteTemplate(w, "layout", r.pageView(page))
}

// Carousel renders the carousel fragment. An empty carousel renders nothing.
func (r *Renderer) Carousel(w io.Writer, c *carousel.Carousel) error {
	return r.fragments.ExecuteTemplate(w, "carousel", r.carouselView(c))
}

// Modal renders the modal fragment. A closed modal renders nothing.
func (r *Renderer) Modal(w io.Writer, m *carousel.Modal) error {
	return r.fragments.ExecuteTemplate(w, "modal", r.modalView(m))
}

type pageView struct {
	Title          string
	Home           string
	Profile        models.Profile
	ProjectsHeader string
	Summary        models.ProjectSummary
	Carousel       *carouselView
	Cards          []slideView
}

func (r *Renderer) pageView(page Page) pageView {
	view := pageView{
		Title:          page.Title,
		Home:           r.paths.Home(),
		Profile:        page.Profile,
		ProjectsHeader: page.ProjectsHeader,
		Summary:        page.Summary,
	}
	if page.Carousel != nil {
		view.Carousel = r.carouselView(page.Carousel)
		items := page.Carousel.Items()
		header := page.Carousel.Options().CuratedHeader
		for i, item := range items {
			view.Cards = append(view.Cards, slideView{
				Index:    i,
				ModalURL: r.paths.Modal(i),
				Group:    groupLabel(items, i, header),
				Card:     newCardView(item),
			})
		}
	}
	return view
}

type carouselView struct {
	ID           string
	Slides       []slideView
	Tiers        []tierView
	GridClass    string
	ShowSeeAll   bool
	SeeAllURL    string
	IntervalSecs int
}

type slideView struct {
	Index    int
	Class    string
	ModalURL string
	Group    string
	Card     cardView
}

// groupLabel returns the label shown above the item at index, set only on the
// first curated item that follows repository items
func groupLabel(items []models.Item, index int, header string) string {
	if index == 0 || items[index].Origin != models.OriginCurated || items[index-1].Origin != models.OriginRepository {
		return ""
	}
	return header
}

type tierView struct {
	Name     string
	Class    string
	Prev     navView
	Next     navView
	Bullets  []bulletView
	Autoplay *autoplayView
}

type navView struct {
	URL      string
	Disabled bool
}

type bulletView struct {
	Number int
	URL    string
	Active bool
}

type autoplayView struct {
	URL     string
	Trigger string
}

func (r *Renderer) carouselView(c *carousel.Carousel) *carouselView {
	if c == nil || c.Empty() {
		return nil
	}
	opts := c.Options()
	interval := int(carousel.AutoplayInterval / time.Second)

	view := &carouselView{
		ID:           carouselID,
		GridClass:    fmt.Sprintf("grid-cols-1 md:grid-cols-2 lg:grid-cols-%d", opts.ProjectsPerView),
		ShowSeeAll:   c.SeeAllVisible(),
		SeeAllURL:    opts.SeeAllURL,
		IntervalSecs: interval,
	}

	items := c.Items()
	for i, item := range items {
		classes := make([]string, 0, len(carousel.Breakpoints))
		for _, bp := range carousel.Breakpoints {
			display := "hidden"
			if c.VisibleIn(i, bp.Tier) {
				display = "block"
			}
			classes = append(classes, bp.Tier.Prefix()+display)
		}
		view.Slides = append(view.Slides, slideView{
			Index:    i,
			Class:    strings.Join(classes, " "),
			ModalURL: r.paths.Modal(i),
			Group:    groupLabel(items, i, opts.CuratedHeader),
			Card:     newCardView(item),
		})
	}

	for _, bp := range carousel.Breakpoints {
		tier := bp.Tier
		maxStart := c.MaxStart(tier)
		pos := c.Position(tier)
		tv := tierView{
			Name:  tier.String(),
			Class: tierClass(tier),
			Prev:  navView{URL: r.paths.Carousel(ModeManual, max(pos-1, 0)), Disabled: !c.CanPrev(tier)},
			Next:  navView{URL: r.paths.Carousel(ModeManual, min(pos+1, maxStart)), Disabled: !c.CanNext(tier)},
		}
		if maxStart > 0 {
			for start := 0; start <= maxStart; start++ {
				tv.Bullets = append(tv.Bullets, bulletView{
					Number: start + 1,
					URL:    r.paths.Carousel(ModeManual, start),
					Active: start == pos,
				})
			}
		}
		if target, ok := c.AutoplayTarget(tier); ok {
			tv.Autoplay = &autoplayView{
				URL:     r.paths.Carousel(ModeAuto, target),
				Trigger: fmt.Sprintf("every %ds [window.matchMedia('%s').matches]", interval, tier.MediaQuery()),
			}
		}
		view.Tiers = append(view.Tiers, tv)
	}
	return view
}

// tierClass shows an element only within tier
func tierClass(t carousel.Tier) string {
	switch t {
	case carousel.TierNarrow:
		return "flex md:hidden"
	case carousel.TierMedium:
		return "hidden md:flex lg:hidden"
	default:
		return "hidden lg:flex"
	}
}

type cardView struct {
	Repository  bool
	Title       string
	Description string
	Stars       int
	Forks       int
	Language    string
	ImageURL    string
	Badges      []string
	Overflow    int
}

func newCardView(item models.Item) cardView {
	switch item.Origin {
	case models.OriginRepository:
		p := item.Repository
		description := p.Description
		if description == "" {
			description = "No description available"
		}
		return cardView{
			Repository:  true,
			Title:       p.Name,
			Description: description,
			Stars:       p.Stars,
			Forks:       p.Forks,
			Language:    p.Language,
		}
	default:
		p := item.Curated
		badges, overflow := carousel.TechBadges(p.Technologies)
		return cardView{
			Title:       p.Title,
			Description: p.Description,
			ImageURL:    p.ImageURL,
			Badges:      badges,
			Overflow:    overflow,
		}
	}
}

type modalView struct {
	CloseURL     string
	Title        string
	Description  string
	Media        []mediaView
	Features     []string
	Achievements []string
	Technologies []string
	Links        []linkView
}

type mediaView struct {
	Video   bool
	URL     string
	Alt     string
	Caption string
}

type linkView struct {
	Label string
	URL   string
	Class string
}

func (r *Renderer) modalView(m *carousel.Modal) *modalView {
	if m == nil || !m.IsOpen() || m.Project() == nil {
		return nil
	}
	p := m.Project()
	view := &modalView{
		CloseURL:     r.paths.ModalClose(),
		Title:        p.Title,
		Description:  p.Description,
		Features:     p.Features,
		Achievements: p.Achievements,
		Technologies: p.Technologies,
		Links:        linkViews(p.Links),
	}
	for i, item := range p.Media {
		alt := item.Caption
		if alt == "" {
			alt = fmt.Sprintf("%s screenshot %d", p.Title, i+1)
		}
		view.Media = append(view.Media, mediaView{Video: item.IsVideo(), URL: item.URL, Alt: alt, Caption: item.Caption})
	}
	return view
}

func linkViews(l models.Links) []linkView {
	var links []linkView
	if l.GitHub != "" {
		links = append(links, linkView{Label: "View Code", URL: l.GitHub, Class: "btn btn-sm gap-2"})
	}
	if l.Demo != "" {
		links = append(links, linkView{Label: "Live Demo", URL: l.Demo, Class: "btn btn-sm btn-primary gap-2"})
	}
	if l.Website != "" {
		links = append(links, linkView{Label: "Website", URL: l.Website, Class: "btn btn-sm btn-secondary gap-2"})
	}
	return links
}
