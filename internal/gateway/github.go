// Package gateway provides access to repository metadata on GitHub.
package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"gitfolio.dev/internal/models"
)

// Repository is a repository as fetched from GitHub, with the fields needed to
// select it in automatic mode.
type Repository struct {
	Project   models.RepositoryProject `json:"project"`
	Fork      bool                     `json:"fork"`
	UpdatedAt time.Time                `json:"updated_at"`
}

// Fetcher fetches repository metadata
type Fetcher interface {
	FetchRepository(ctx context.Context, owner, name string) (*Repository, error)
	ListRepositories(ctx context.Context, user string) ([]Repository, error)
}

// GitHubGateway is the REST implementation of Fetcher
type GitHubGateway struct {
	restClient *github.Client
	logger     *slog.Logger
}

// NewGitHubGateway creates a gateway. An empty token uses unauthenticated
// requests, which GitHub rate-limits harder.
func NewGitHubGateway(token string, logger *slog.Logger) (*GitHubGateway, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(time.Minute, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}

	var transport http.RoundTripper = rateLimitWaiter
	if token != "" {
		transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		}
	}

	return &GitHubGateway{
		restClient: github.NewClient(&http.Client{Transport: transport, Timeout: 30 * time.Second}),
		logger:     logger,
	}, nil
}

// FetchRepository fetches one repository by owner and name
func (g *GitHubGateway) FetchRepository(ctx context.Context, owner, name string) (*Repository, error) {
	g.logger.Debug("fetching repository", "owner", owner, "name", name)
	repo, _, err := g.restClient.Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get repository %s/%s: %w", owner, name, err)
	}
	converted := fromGitHub(repo)
	return &converted, nil
}

// ListRepositories lists every public repository owned by user
func (g *GitHubGateway) ListRepositories(ctx context.Context, user string) ([]Repository, error) {
	g.logger.Debug("listing repositories", "user", user)
	opts := &github.RepositoryListByUserOptions{
		Type:        "owner",
		ListOptions: github.ListOptions{PerPage: 100},
	}
	var repos []Repository
	for {
		page, resp, err := g.restClient.Repositories.ListByUser(ctx, user, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list repositories for %s: %w", user, err)
		}
		for _, repo := range page {
			repos = append(repos, fromGitHub(repo))
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		g.logger.Debug("fetching next page of repositories", "user", user, "page", resp.NextPage)
	}
	return repos, nil
}

func fromGitHub(repo *github.Repository) Repository {
	return Repository{
		Project: models.RepositoryProject{
			Name:        repo.GetName(),
			FullName:    repo.GetFullName(),
			URL:         repo.GetHTMLURL(),
			Description: repo.GetDescription(),
			Stars:       repo.GetStargazersCount(),
			Forks:       repo.GetForksCount(),
			Language:    repo.GetLanguage(),
		},
		Fork:      repo.GetFork(),
		UpdatedAt: repo.GetUpdatedAt().Time,
	}
}
