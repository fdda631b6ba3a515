package repositories

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// DefaultURL is the storage used when nothing is configured.
const DefaultURL = "file://./pocketpet/save.json"

// NewFromURL opens the repository named by a storage URL:
// file://<path>, sqlite://<path> or postgresql://<connection>.
// A bare path is treated as a file.
func NewFromURL(ctx context.Context, rawURL string) (Repository, error) {
	if !strings.Contains(rawURL, "://") {
		return NewFileRepository(rawURL), nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse storage url: %w", err)
	}

	switch u.Scheme {
	case "file":
		return NewFileRepository(localPath(u)), nil
	case "sqlite":
		repository, err := NewSQLiteRepository(ctx, localPath(u))
		if err != nil {
			return nil, fmt.Errorf("failed to create SQLite repository: %w", err)
		}
		return repository, nil
	case "postgres", "postgresql":
		repository, err := NewPostgresRepository(ctx, u.String())
		if err != nil {
			return nil, fmt.Errorf("failed to create Postgres repository: %w", err)
		}
		return repository, nil
	default:
		return nil, fmt.Errorf("unknown storage type %s", u.Scheme)
	}
}

// localPath turns file://./a/b.json and file:///a/b.json into ./a/b.json and /a/b.json.
func localPath(u *url.URL) string {
	return u.Host + u.Path
}

// ResolveURL returns the first non-empty candidate, or DefaultURL.
func ResolveURL(candidates ...string) string {
	for _, v := range candidates {
		if v != "" {
			return v
		}
	}
	return DefaultURL
}
