// Package sqlite provides a SQLite-backed repository cache.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"gitfolio.dev/internal/gateway"
	"gitfolio.dev/internal/storage"
)

//go:embed schema.sql
var schema string

// Store persists repository metadata in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var _ storage.RepositoryCache = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite store and creates its tables.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := "file:" + filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetRepository returns the cached repository for fullName.
func (s *Store) GetRepository(ctx context.Context, fullName string) (storage.CachedRepository, error) {
	var (
		payload   string
		fetchedAt int64
	)
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT payload, fetched_at FROM repositories WHERE full_name = ?`,
		strings.ToLower(fullName),
	).Scan(&payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.CachedRepository{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.CachedRepository{}, fmt.Errorf("get repository %s: %w", fullName, err)
	}

	var repo gateway.Repository
	if err := json.Unmarshal([]byte(payload), &repo); err != nil {
		return storage.CachedRepository{}, fmt.Errorf("decode repository %s: %w", fullName, err)
	}
	return storage.CachedRepository{FullName: fullName, Repository: repo, FetchedAt: fromMillis(fetchedAt)}, nil
}

// PutRepository inserts or replaces one cached repository.
func (s *Store) PutRepository(ctx context.Context, entry storage.CachedRepository) error {
	if strings.TrimSpace(entry.FullName) == "" {
		return fmt.Errorf("full name is required")
	}
	payload, err := json.Marshal(entry.Repository)
	if err != nil {
		return fmt.Errorf("encode repository %s: %w", entry.FullName, err)
	}
	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO repositories (full_name, payload, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(full_name) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at`,
		strings.ToLower(entry.FullName), string(payload), toMillis(entry.FetchedAt),
	)
	if err != nil {
		return fmt.Errorf("put repository %s: %w", entry.FullName, err)
	}
	return nil
}

// GetListing returns the cached repository list of user.
func (s *Store) GetListing(ctx context.Context, user string) (storage.CachedListing, error) {
	var (
		payload   string
		fetchedAt int64
	)
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT payload, fetched_at FROM repository_listings WHERE user_login = ?`,
		strings.ToLower(user),
	).Scan(&payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.CachedListing{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.CachedListing{}, fmt.Errorf("get listing %s: %w", user, err)
	}

	var repos []gateway.Repository
	if err := json.Unmarshal([]byte(payload), &repos); err != nil {
		return storage.CachedListing{}, fmt.Errorf("decode listing %s: %w", user, err)
	}
	return storage.CachedListing{User: user, Repositories: repos, FetchedAt: fromMillis(fetchedAt)}, nil
}

// PutListing inserts or replaces the cached repository list of a user.
func (s *Store) PutListing(ctx context.Context, entry storage.CachedListing) error {
	if strings.TrimSpace(entry.User) == "" {
		return fmt.Errorf("user is required")
	}
	payload, err := json.Marshal(entry.Repositories)
	if err != nil {
		return fmt.Errorf("encode listing %s: %w", entry.User, err)
	}
	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO repository_listings (user_login, payload, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(user_login) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at`,
		strings.ToLower(entry.User), string(payload), toMillis(entry.FetchedAt),
	)
	if err != nil {
		return fmt.Errorf("put listing %s: %w", entry.User, err)
	}
	return nil
}
