package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"gitfolio.dev/internal/config"
	"gitfolio.dev/internal/gateway"
	"gitfolio.dev/internal/log"
	"gitfolio.dev/internal/models"
	"gitfolio.dev/internal/services"
	"gitfolio.dev/internal/storage"
	"gitfolio.dev/internal/storage/sqlite"
)

// app is what every command needs after startup
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *sqlite.Store
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := cfg.LogLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}
	logger := log.Init(level)

	a := &app{cfg: cfg, logger: logger}
	if cfg.CachePath != "" {
		store, err := sqlite.Open(cfg.CachePath)
		if err != nil {
			return nil, fmt.Errorf("open cache: %w", err)
		}
		a.store = store
		logger.Debug("repository cache opened", "path", cfg.CachePath, "ttl", cfg.CacheTTL)
	}
	return a, nil
}

func (a *app) close() {
	if a.store == nil {
		return
	}
	if err := a.store.Close(); err != nil {
		a.logger.Warn("closing cache", "error", err)
	}
}

// loadRepositories resolves the configured repositories through the cache
func (a *app) loadRepositories(ctx context.Context) ([]models.RepositoryProject, error) {
	site := a.cfg.Site
	if !site.Projects.GitHub.Enabled() {
		return nil, nil
	}

	githubGateway, err := gateway.NewGitHubGateway(a.cfg.GitHubToken, a.logger)
	if err != nil {
		return nil, fmt.Errorf("create GitHub gateway: %w", err)
	}

	var cache storage.RepositoryCache
	if a.store != nil {
		cache = a.store
	}
	repositories := services.NewRepositoryService(githubGateway, cache, a.cfg.CacheTTL, a.logger)
	return repositories.Load(ctx, site.GitHub.Username, site.Projects.GitHub)
}
