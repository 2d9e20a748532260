// Package carousel holds the interaction model of the projects carousel and
// its detail modal: paging per breakpoint, the autoplay latch, the "view all"
// rule and card activation.
package carousel

import (
	"time"

	"gitfolio.dev/internal/models"
	"gitfolio.dev/internal/services"
)

const (
	// DefaultProjectsPerView is the number of cards shown at the widest breakpoint
	DefaultProjectsPerView = 3
	// AutoplayInterval is the delay between automatic advances
	AutoplayInterval = 5 * time.Second
	// MaxCardTechnologies is the number of technology badges shown on a curated card
	MaxCardTechnologies = 3
)

// Options is the caller-facing configuration of a carousel
type Options struct {
	ProjectsPerView int
	Autoplay        bool
	ShowSeeAll      bool
	// SeeAllURL is where the "view all" affordance leads. Empty means no
	// handler was supplied and the affordance is never shown.
	SeeAllURL string
	// CuratedHeader labels the first curated card when repository cards
	// precede it. Empty means no label.
	CuratedHeader string
}

// DefaultOptions returns the options used when the caller sets nothing
func DefaultOptions() Options {
	return Options{
		ProjectsPerView: DefaultProjectsPerView,
		Autoplay:        true,
		ShowSeeAll:      true,
	}
}

// Carousel is the state of one carousel instance
type Carousel struct {
	opts     Options
	items    []models.Item
	start    int
	autoplay bool
	modal    Modal
}

// New creates a carousel positioned on the first item
func New(items []models.Item, opts Options) *Carousel {
	if opts.ProjectsPerView <= 0 {
		opts.ProjectsPerView = DefaultProjectsPerView
	}
	return &Carousel{
		opts:     opts,
		items:    items,
		autoplay: opts.Autoplay,
	}
}

// Restore creates a carousel at start. A manual restore is a navigation and
// stops autoplay.
func Restore(items []models.Item, opts Options, start int, manual bool) *Carousel {
	c := New(items, opts)
	c.start = clamp(start, 0, c.lastIndex())
	if manual {
		c.autoplay = false
	}
	return c
}

// Options returns the effective options
func (c *Carousel) Options() Options { return c.opts }

// Items returns the aggregate sequence shown by the carousel
func (c *Carousel) Items() []models.Item { return c.items }

// Len returns the number of items
func (c *Carousel) Len() int { return len(c.items) }

// Empty reports whether there is nothing to render
func (c *Carousel) Empty() bool { return len(c.items) == 0 }

// Start returns the index of the first visible item
func (c *Carousel) Start() int { return c.start }

// Autoplaying reports whether automatic advancement is still active
func (c *Carousel) Autoplaying() bool { return c.autoplay }

// Visible returns how many items are shown at tier
func (c *Carousel) Visible(t Tier) int {
	switch t {
	case TierNarrow:
		return 1
	case TierMedium:
		return 2
	default:
		return c.opts.ProjectsPerView
	}
}

// MaxStart returns the last start index that still fills tier
func (c *Carousel) MaxStart(t Tier) int {
	return max(len(c.items)-c.Visible(t), 0)
}

// Position returns the first visible item at tier. The shared start is
// clamped to the tier's MaxStart so a wider tier always shows a full window.
func (c *Carousel) Position(t Tier) int {
	return min(c.start, c.MaxStart(t))
}

// VisibleIn reports whether the item at index is on screen at tier
func (c *Carousel) VisibleIn(index int, t Tier) bool {
	pos := c.Position(t)
	return index >= pos && index < pos+c.Visible(t)
}

// Navigate moves to start on user request. Autoplay never resumes afterwards.
func (c *Carousel) Navigate(t Tier, start int) {
	c.autoplay = false
	c.start = clamp(start, 0, c.MaxStart(t))
}

// Next moves one item forward on user request
func (c *Carousel) Next(t Tier) { c.Navigate(t, c.Position(t)+1) }

// Prev moves one item back on user request
func (c *Carousel) Prev(t Tier) { c.Navigate(t, c.Position(t)-1) }

// CanPrev reports whether there is an item before the visible window at tier
func (c *Carousel) CanPrev(t Tier) bool { return c.Position(t) > 0 }

// CanNext reports whether there is an item after the visible window at tier
func (c *Carousel) CanNext(t Tier) bool { return c.Position(t) < c.MaxStart(t) }

// AutoplayTarget returns where the next autoplay tick at tier moves to. ok is
// false when autoplay is stopped or every item already fits.
func (c *Carousel) AutoplayTarget(t Tier) (start int, ok bool) {
	if !c.autoplay || c.MaxStart(t) == 0 {
		return 0, false
	}
	pos := c.Position(t)
	if pos >= c.MaxStart(t) {
		return 0, true
	}
	return pos + 1, true
}

// Advance applies one autoplay tick at tier
func (c *Carousel) Advance(t Tier) {
	if next, ok := c.AutoplayTarget(t); ok {
		c.start = next
	}
}

// SeeAllVisible reports whether the "view all" affordance is shown
func (c *Carousel) SeeAllVisible() bool {
	return c.opts.ShowSeeAll && c.opts.SeeAllURL != "" && len(c.items) > c.opts.ProjectsPerView
}

// Activate normalizes the item at index and opens the modal with it
func (c *Carousel) Activate(index int) error {
	if index < 0 || index >= len(c.items) {
		return services.ErrProjectNotFound
	}
	vm, err := services.Normalize(c.items[index])
	if err != nil {
		return err
	}
	c.modal.Open(vm)
	return nil
}

// Modal returns the carousel's detail modal
func (c *Carousel) Modal() *Modal { return &c.modal }

func (c *Carousel) lastIndex() int {
	return max(len(c.items)-1, 0)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// TechBadges splits technologies into the badges shown on a card and the
// number of hidden ones
func TechBadges(technologies []string) (shown []string, overflow int) {
	if len(technologies) <= MaxCardTechnologies {
		return technologies, 0
	}
	return technologies[:MaxCardTechnologies], len(technologies) - MaxCardTechnologies
}
