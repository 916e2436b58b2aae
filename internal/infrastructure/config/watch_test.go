package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForEvent(t *testing.T, events <-chan string) (string, bool) {
	t.Helper()
	select {
	case path := <-events:
		return path, true
	case <-time.After(2 * time.Second):
		return "", false
	}
}

func TestWatcherReportsConfigChanges(t *testing.T) {
	dir := t.TempDir()
	watcher, err := NewWatcher(dir)
	require.NoError(t, err)
	defer func() { _ = watcher.Close() }()

	path := filepath.Join(dir, "stage.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: test"), 0o644))

	got, ok := waitForEvent(t, watcher.Events)
	require.True(t, ok, "expected an event for %s", path)
	assert.Equal(t, path, got)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	watcher, err := NewWatcher(dir)
	require.NoError(t, err)
	defer func() { _ = watcher.Close() }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	select {
	case path := <-watcher.Events:
		t.Fatalf("unexpected event for %s", path)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	watcher, err := NewWatcher(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, watcher.Close())
	assert.NoError(t, watcher.Close())
}
