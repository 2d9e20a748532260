package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"gitfolio.dev/internal/config"
	"gitfolio.dev/internal/gateway"
	"gitfolio.dev/internal/models"
	"gitfolio.dev/internal/storage"
)

const maxConcurrentFetches = 4

// RepositoryService resolves the configured GitHub repositories into
// repository projects, reading through an optional cache.
type RepositoryService struct {
	fetcher gateway.Fetcher
	cache   storage.RepositoryCache
	ttl     time.Duration
	logger  *slog.Logger
	now     func() time.Time
}

// NewRepositoryService creates a new RepositoryService. cache may be nil.
func NewRepositoryService(fetcher gateway.Fetcher, cache storage.RepositoryCache, ttl time.Duration, logger *slog.Logger) *RepositoryService {
	return &RepositoryService{
		fetcher: fetcher,
		cache:   cache,
		ttl:     ttl,
		logger:  logger,
		now:     time.Now,
	}
}

// Load returns the repository projects selected by cfg for username
func (s *RepositoryService) Load(ctx context.Context, username string, cfg config.GitHubProjects) ([]models.RepositoryProject, error) {
	if !cfg.Enabled() || strings.TrimSpace(username) == "" {
		return nil, nil
	}

	var (
		repos []gateway.Repository
		err   error
	)
	switch cfg.Mode {
	case config.ModeManual:
		repos, err = s.loadManual(ctx, cfg.Manual.Projects)
	default:
		repos, err = s.loadAutomatic(ctx, username, cfg.Automatic)
	}
	if err != nil {
		return nil, err
	}

	extended := make(map[string]models.Extended, len(cfg.Extended))
	for name, ext := range cfg.Extended {
		extended[strings.ToLower(name)] = ext
	}

	projects := make([]models.RepositoryProject, 0, len(repos))
	for _, repo := range repos {
		project := repo.Project
		if ext, ok := extended[strings.ToLower(project.FullName)]; ok {
			project.Extended = &ext
		}
		projects = append(projects, project)
	}
	s.logger.Info("loaded repository projects", "mode", cfg.Mode, "count", len(projects))
	return projects, nil
}

func (s *RepositoryService) loadManual(ctx context.Context, names []string) ([]gateway.Repository, error) {
	repos := make([]gateway.Repository, len(names))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(maxConcurrentFetches)
	for i, full := range names {
		eg.Go(func() error {
			owner, name, ok := config.SplitFullName(full)
			if !ok {
				return fmt.Errorf("invalid repository name %q", full)
			}
			repo, err := s.repository(egCtx, owner, name)
			if err != nil {
				return err
			}
			if repo.Project.FullName == "" {
				repo.Project.FullName = owner + "/" + name
			}
			repos[i] = repo
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return repos, nil
}

func (s *RepositoryService) loadAutomatic(ctx context.Context, username string, cfg config.AutomaticMode) ([]gateway.Repository, error) {
	all, err := s.listing(ctx, username)
	if err != nil {
		return nil, err
	}

	excluded := make(map[string]bool, len(cfg.Exclude.Projects))
	for _, name := range cfg.Exclude.Projects {
		excluded[strings.ToLower(strings.TrimSpace(name))] = true
	}

	selected := make([]gateway.Repository, 0, len(all))
	for _, repo := range all {
		if cfg.Exclude.Forks && repo.Fork {
			continue
		}
		if excluded[strings.ToLower(repo.Project.FullName)] {
			continue
		}
		selected = append(selected, repo)
	}

	switch cfg.SortBy {
	case config.SortByUpdated:
		sort.SliceStable(selected, func(i, j int) bool {
			return selected[i].UpdatedAt.After(selected[j].UpdatedAt)
		})
	default:
		sort.SliceStable(selected, func(i, j int) bool {
			return selected[i].Project.Stars > selected[j].Project.Stars
		})
	}

	if cfg.Limit > 0 && len(selected) > cfg.Limit {
		selected = selected[:cfg.Limit]
	}
	return selected, nil
}

// repository fetches one repository, preferring a fresh cache entry and
// falling back to a stale one when GitHub fails.
func (s *RepositoryService) repository(ctx context.Context, owner, name string) (gateway.Repository, error) {
	full := owner + "/" + name

	cached, cacheErr := s.cachedRepository(ctx, full)
	if cacheErr == nil && storage.Fresh(cached.FetchedAt, s.ttl, s.now()) {
		s.logger.Debug("repository cache hit", "repository", full)
		return cached.Repository, nil
	}

	repo, err := s.fetcher.FetchRepository(ctx, owner, name)
	if err != nil {
		if cacheErr == nil {
			s.logger.Warn("using stale cached repository", "repository", full, "error", err)
			return cached.Repository, nil
		}
		return gateway.Repository{}, err
	}

	if s.cache != nil {
		entry := storage.CachedRepository{FullName: full, Repository: *repo, FetchedAt: s.now()}
		if err := s.cache.PutRepository(ctx, entry); err != nil {
			s.logger.Warn("failed to cache repository", "repository", full, "error", err)
		}
	}
	return *repo, nil
}

func (s *RepositoryService) listing(ctx context.Context, username string) ([]gateway.Repository, error) {
	cached, cacheErr := s.cachedListing(ctx, username)
	if cacheErr == nil && storage.Fresh(cached.FetchedAt, s.ttl, s.now()) {
		s.logger.Debug("listing cache hit", "user", username)
		return cached.Repositories, nil
	}

	repos, err := s.fetcher.ListRepositories(ctx, username)
	if err != nil {
		if cacheErr == nil {
			s.logger.Warn("using stale cached listing", "user", username, "error", err)
			return cached.Repositories, nil
		}
		return nil, err
	}

	if s.cache != nil {
		entry := storage.CachedListing{User: username, Repositories: repos, FetchedAt: s.now()}
		if err := s.cache.PutListing(ctx, entry); err != nil {
			s.logger.Warn("failed to cache listing", "user", username, "error", err)
		}
	}
	return repos, nil
}

var errNoCache = errors.New("cache disabled")

func (s *RepositoryService) cachedRepository(ctx context.Context, full string) (storage.CachedRepository, error) {
	if s.cache == nil {
		return storage.CachedRepository{}, errNoCache
	}
	entry, err := s.cache.GetRepository(ctx, full)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		s.logger.Warn("failed to read cached repository", "repository", full, "error", err)
	}
	return entry, err
}

func (s *RepositoryService) cachedListing(ctx context.Context, username string) (storage.CachedListing, error) {
	if s.cache == nil {
		return storage.CachedListing{}, errNoCache
	}
	entry, err := s.cache.GetListing(ctx, username)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		s.logger.Warn("failed to read cached listing", "user", username, "error", err)
	}
	return entry, err
}
