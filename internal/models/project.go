package models

// Origin tags where a project item came from
type Origin string

const (
	OriginRepository Origin = "repository"
	OriginCurated    Origin = "curated"
)

// MediaType selects how a media item is rendered
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// MediaItem is one entry of a project's gallery
type MediaItem struct {
	Type    MediaType `json:"type"`
	URL     string    `json:"url"`
	Caption string    `json:"caption,omitempty"`
}

// IsVideo reports whether the item needs playback controls
func (m MediaItem) IsVideo() bool {
	return m.Type == MediaVideo
}

// Links holds the outbound links of a project. Empty fields are absent.
type Links struct {
	GitHub  string `json:"github,omitempty"`
	Demo    string `json:"demo,omitempty"`
	Website string `json:"website,omitempty"`
}

// IsZero reports whether no link is set
func (l Links) IsZero() bool {
	return l.GitHub == "" && l.Demo == "" && l.Website == ""
}

// Extended holds the optional detail fields shared by both project sources
type Extended struct {
	LongDescription string      `json:"longDescription,omitempty"`
	Media           []MediaItem `json:"media,omitempty"`
	Technologies    []string    `json:"technologies,omitempty"`
	Features        []string    `json:"features,omitempty"`
	Achievements    []string    `json:"achievements,omitempty"`
	Links           *Links      `json:"links,omitempty"`
}

// RepositoryProject is a project sourced from repository metadata
type RepositoryProject struct {
	Name        string    `json:"name"`
	FullName    string    `json:"full_name,omitempty"`
	URL         string    `json:"html_url"`
	Description string    `json:"description,omitempty"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	Language    string    `json:"language,omitempty"`
	Extended    *Extended `json:"extended,omitempty"`
}

// CuratedProject is a manually authored project entry
type CuratedProject struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Link        string `json:"link,omitempty"`
	Extended
}

// Item is one entry of the aggregate sequence. Exactly one of Repository or
// Curated is set, matching Origin.
type Item struct {
	Origin     Origin             `json:"type"`
	Repository *RepositoryProject `json:"repository,omitempty"`
	Curated    *CuratedProject    `json:"curated,omitempty"`
}

// Title returns the display title of the item
func (it Item) Title() string {
	switch it.Origin {
	case OriginRepository:
		if it.Repository != nil {
			return it.Repository.Name
		}
	case OriginCurated:
		if it.Curated != nil {
			return it.Curated.Title
		}
	}
	return ""
}

// ProjectViewModel is the render-ready form of a project shown in the modal
type ProjectViewModel struct {
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Technologies []string    `json:"technologies"`
	Features     []string    `json:"features,omitempty"`
	Achievements []string    `json:"achievements,omitempty"`
	Links        Links       `json:"links"`
	Media        []MediaItem `json:"media,omitempty"`
}

// ProjectSummary aggregates repository numbers for the section header
type ProjectSummary struct {
	Repositories int     `json:"repositories"`
	TotalStars   int     `json:"total_stars"`
	TotalForks   int     `json:"total_forks"`
	MedianStars  float64 `json:"median_stars"`
}
