package repositories

import (
	"context"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromURL(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	repo, err := NewFromURL(ctx, filepath.Join(dir, "bare.json"))
	require.NoError(t, err)
	assert.IsType(t, &FileRepository{}, repo)
	assert.Equal(t, filepath.Join(dir, "bare.json"), repo.(*FileRepository).Path())

	repo, err = NewFromURL(ctx, "file://"+filepath.Join(dir, "save.json"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "save.json"), repo.(*FileRepository).Path())

	repo, err = NewFromURL(ctx, "sqlite://"+filepath.Join(dir, "pet.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLiteRepository{}, repo)
	require.NoError(t, repo.Close(ctx))

	_, err = NewFromURL(ctx, "redis://localhost:6379")
	assert.Error(t, err)
}

func TestLocalPath(t *testing.T) {
	u, err := url.Parse(DefaultURL)
	require.NoError(t, err)
	assert.Equal(t, "./pocketpet/save.json", localPath(u))

	u, err = url.Parse("file:///var/lib/pocketpet/save.json")
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/pocketpet/save.json", localPath(u))
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       string
	}{
		{name: "none", want: DefaultURL},
		{name: "all empty", candidates: []string{"", "", ""}, want: DefaultURL},
		{name: "first set wins", candidates: []string{"", "sqlite://e.db", "sqlite://c.db"}, want: "sqlite://e.db"},
		{name: "flag", candidates: []string{"file:///tmp/f.json", "sqlite://e.db"}, want: "file:///tmp/f.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveURL(tt.candidates...))
		})
	}
}
