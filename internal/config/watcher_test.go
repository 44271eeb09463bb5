package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reload struct {
	cfg Config
	err error
}

func startWatcher(t *testing.T, path string) chan reload {
	t.Helper()
	w, err := NewWatcher(path, WithDebounce(10*time.Millisecond), WithLoadOptions(WithoutEnv()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	ch := make(chan reload, 4)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() {
		_ = w.Run(ctx, func(cfg Config, err error) {
			ch <- reload{cfg: cfg, err: err}
		})
	}()
	return ch
}

func waitReload(t *testing.T, ch chan reload) reload {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
		return reload{}
	}
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "boxselect.toml")
	require.NoError(t, os.WriteFile(path, []byte("[tool]\npreset = \"box_select\"\n"), 0o644))

	ch := startWatcher(t, path)

	require.NoError(t, os.WriteFile(path, []byte("[tool]\npreset = \"ybox_select\"\n"), 0o644))
	r := waitReload(t, ch)
	require.NoError(t, r.err)
	assert.Equal(t, "ybox_select", r.cfg.Tool.Preset)

	require.NoError(t, os.WriteFile(path, []byte("[tool]\npreset = \"nope\"\n"), 0o644))
	r = waitReload(t, ch)
	assert.ErrorIs(t, r.err, ErrInvalidConfig)
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "boxselect.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	ch := startWatcher(t, path)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1"), 0o644))

	select {
	case r := <-ch:
		t.Fatalf("unexpected reload: %+v", r)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherClose(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "boxselect.toml"))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- w.Run(context.Background(), func(Config, error) {}) }()

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Close")
	}
}
