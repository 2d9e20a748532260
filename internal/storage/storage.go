// Package storage defines the repository metadata cache contract.
package storage

import (
	"context"
	"errors"
	"time"

	"gitfolio.dev/internal/gateway"
)

// ErrNotFound is returned when no cache entry exists for a key.
var ErrNotFound = errors.New("record not found")

// CachedRepository is one repository as last fetched from GitHub.
type CachedRepository struct {
	FullName   string
	Repository gateway.Repository
	FetchedAt  time.Time
}

// CachedListing is the repository list of one user as last fetched.
type CachedListing struct {
	User         string
	Repositories []gateway.Repository
	FetchedAt    time.Time
}

// Fresh reports whether the entry is younger than ttl at now.
func Fresh(fetchedAt time.Time, ttl time.Duration, now time.Time) bool {
	return ttl > 0 && now.Sub(fetchedAt) < ttl
}

// RepositoryCache persists fetched repository metadata.
type RepositoryCache interface {
	GetRepository(ctx context.Context, fullName string) (CachedRepository, error)
	PutRepository(ctx context.Context, entry CachedRepository) error
	GetListing(ctx context.Context, user string) (CachedListing, error)
	PutListing(ctx context.Context, entry CachedListing) error
}
