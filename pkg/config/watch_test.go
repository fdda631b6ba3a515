package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_Poll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pocketpet.toml")
	require.NoError(t, os.WriteFile(path, []byte("[decay]\nhunger = 1\n"), 0644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	_, ok := w.Poll()
	assert.False(t, ok, "no change yet")

	require.NoError(t, os.WriteFile(path, []byte("[decay]\nhunger = 5\n"), 0644))

	var cfg *Config
	require.Eventually(t, func() bool {
		cfg, ok = w.Poll()
		return ok
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, 5, cfg.Decay.Hunger)
}

func TestWatcher_Poll_invalidEditIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pocketpet.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("[decay]\nhunger = -3\n"), 0644))
	// give the watcher time to see the write, then every poll must refuse it
	time.Sleep(200 * time.Millisecond)
	for i := 0; i < 5; i++ {
		_, ok := w.Poll()
		assert.False(t, ok)
	}
}

func TestWatcher_ignoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pocketpet.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0644))
	time.Sleep(200 * time.Millisecond)
	_, ok := w.Poll()
	assert.False(t, ok)
}

func TestWatcher_Close_idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pocketpet.toml")
	w, err := NewWatcher(path)
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
