package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"gitfolio.dev/internal/models"
)

// GitHub project selection modes
const (
	ModeManual    = "manual"
	ModeAutomatic = "automatic"
)

// Automatic mode sort keys
const (
	SortByStars   = "stars"
	SortByUpdated = "updated"
)

const (
	defaultProjectsPerView = 3
	defaultAutomaticLimit  = 6
	profileFile            = "profile.json"
)

// Config holds all application configuration
type Config struct {
	ServerAddr  string
	DataPath    string
	CachePath   string
	CacheTTL    time.Duration
	LogLevel    string
	GitHubToken string
	Site        *SiteConfig
}

// SiteConfig is the contents of profile.json
type SiteConfig struct {
	GitHub   GitHubAccount  `json:"github"`
	Base     string         `json:"base"`
	Profile  models.Profile `json:"profile"`
	Projects ProjectsConfig `json:"projects"`
}

// GitHubAccount names the account repositories are loaded from
type GitHubAccount struct {
	Username string `json:"username"`
}

// ProjectsConfig holds both project sources and the carousel settings
type ProjectsConfig struct {
	GitHub   GitHubProjects   `json:"github"`
	External ExternalProjects `json:"external"`
	Carousel CarouselConfig   `json:"carousel"`
}

// GitHubProjects selects which repositories are shown
type GitHubProjects struct {
	Display   *bool                      `json:"display"`
	Header    string                     `json:"header"`
	Mode      string                     `json:"mode"`
	Automatic AutomaticMode              `json:"automatic"`
	Manual    ManualMode                 `json:"manual"`
	Extended  map[string]models.Extended `json:"extended"`
}

// Enabled reports whether repository projects should be loaded
func (g GitHubProjects) Enabled() bool {
	return g.Display == nil || *g.Display
}

// AutomaticMode lists the account's repositories and picks the top ones
type AutomaticMode struct {
	SortBy  string  `json:"sortBy"`
	Limit   int     `json:"limit"`
	Exclude Exclude `json:"exclude"`
}

// Exclude filters repositories out of automatic mode
type Exclude struct {
	Forks    bool     `json:"forks"`
	Projects []string `json:"projects"`
}

// ManualMode lists repositories explicitly as owner/name
type ManualMode struct {
	Projects []string `json:"projects"`
}

// ExternalProjects holds the curated projects
type ExternalProjects struct {
	Header   string                  `json:"header"`
	Projects []models.CuratedProject `json:"projects"`
}

// CarouselConfig holds the caller-facing carousel options
type CarouselConfig struct {
	ProjectsPerView int   `json:"projectsPerView"`
	Autoplay        *bool `json:"autoplay"`
	ShowSeeAll      *bool `json:"showSeeAll"`
}

// serverEnv holds raw env values
type serverEnv struct {
	Addr        string        `env:"GITFOLIO_ADDR" envDefault:":8080"`
	DataDir     string        `env:"GITFOLIO_DATA_DIR" envDefault:"data"`
	CachePath   string        `env:"GITFOLIO_CACHE_PATH"`
	CacheTTL    time.Duration `env:"GITFOLIO_CACHE_TTL" envDefault:"1h"`
	LogLevel    string        `env:"GITFOLIO_LOG_LEVEL" envDefault:"info"`
	GitHubToken string        `env:"GITHUB_TOKEN"`
}

// Load reads the environment and the profile file under the data directory
func Load() (*Config, error) {
	var raw serverEnv
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	site, err := LoadSite(filepath.Join(raw.DataDir, profileFile))
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerAddr:  raw.Addr,
		DataPath:    raw.DataDir,
		CachePath:   strings.TrimSpace(raw.CachePath),
		CacheTTL:    raw.CacheTTL,
		LogLevel:    raw.LogLevel,
		GitHubToken: raw.GitHubToken,
		Site:        site,
	}, nil
}

// LoadSite reads and validates a profile file
func LoadSite(path string) (*SiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return ParseSite(data)
}

// ParseSite decodes a profile document and applies defaults
func ParseSite(data []byte) (*SiteConfig, error) {
	var site SiteConfig
	if err := json.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	site.applyDefaults()
	if err := site.validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

func (s *SiteConfig) applyDefaults() {
	if s.Base == "" {
		s.Base = "/"
	}
	gh := &s.Projects.GitHub
	if gh.Mode == "" {
		gh.Mode = ModeAutomatic
	}
	if gh.Automatic.SortBy == "" {
		gh.Automatic.SortBy = SortByStars
	}
	if gh.Automatic.Limit <= 0 {
		gh.Automatic.Limit = defaultAutomaticLimit
	}
	if s.Projects.Carousel.ProjectsPerView <= 0 {
		s.Projects.Carousel.ProjectsPerView = defaultProjectsPerView
	}
}

func (s *SiteConfig) validate() error {
	gh := s.Projects.GitHub
	switch gh.Mode {
	case ModeManual, ModeAutomatic:
	default:
		return fmt.Errorf("invalid github mode %q: want %q or %q", gh.Mode, ModeManual, ModeAutomatic)
	}
	switch gh.Automatic.SortBy {
	case SortByStars, SortByUpdated:
	default:
		return fmt.Errorf("invalid sortBy %q: want %q or %q", gh.Automatic.SortBy, SortByStars, SortByUpdated)
	}
	for _, full := range gh.Manual.Projects {
		if _, _, ok := SplitFullName(full); !ok {
			return fmt.Errorf("invalid manual project %q: want owner/name", full)
		}
	}
	return nil
}

// SplitFullName splits "owner/name"
func SplitFullName(full string) (owner, name string, ok bool) {
	owner, name, ok = strings.Cut(strings.TrimSpace(full), "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", false
	}
	return owner, name, true
}
