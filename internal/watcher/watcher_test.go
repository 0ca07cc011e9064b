package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/nguyentantai21042004/lyricflow/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
	err   error
}

func (r *recorder) handle(_ context.Context, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
	return r.err
}

func (r *recorder) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func startWatcher(t *testing.T, dir string, rec *recorder) context.CancelFunc {
	t.Helper()

	w, err := New(dir, ".LRC", rec.handle, logger.Discard(), 50*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	t.Cleanup(func() {
		cancel()
		assert.ErrorIs(t, <-done, context.Canceled)
		assert.NoError(t, w.Stop())
	})
	return cancel
}

func TestWatcher_HandlesMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	rec := &recorder{}
	startWatcher(t, dir, rec)

	lrc := filepath.Join(dir, "song.lrc")
	require.NoError(t, os.WriteFile(lrc, []byte("[00:01.00]a\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	require.Eventually(t, func() bool {
		return len(rec.seen()) > 0
	}, 3*time.Second, 20*time.Millisecond)

	assert.Equal(t, []string{lrc}, rec.seen())
}

func TestWatcher_HandlerErrorKeepsRunning(t *testing.T) {
	dir := t.TempDir()
	rec := &recorder{err: errors.New("boom")}
	startWatcher(t, dir, rec)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.lrc"), []byte("x"), 0644))
	require.Eventually(t, func() bool { return len(rec.seen()) == 1 }, 3*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.lrc"), []byte("x"), 0644))
	require.Eventually(t, func() bool { return len(rec.seen()) == 2 }, 3*time.Second, 20*time.Millisecond)
}

func TestFlush_OnlySettledInOrder(t *testing.T) {
	rec := &recorder{}
	w := &implWatcher{
		handler: rec.handle,
		logger:  logger.Discard(),
		settle:  time.Second,
		pending: map[string]time.Time{},
	}

	now := time.Now()
	w.pending["b.lrc"] = now.Add(-2 * time.Second)
	w.pending["a.lrc"] = now.Add(-3 * time.Second)
	w.pending["fresh.lrc"] = now

	w.flush(context.Background(), now)

	assert.Equal(t, []string{"a.lrc", "b.lrc"}, rec.seen())
	assert.Contains(t, w.pending, "fresh.lrc")
	assert.Len(t, w.pending, 1)
}

func TestNew_MissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), ".lrc", nil, logger.Discard(), 0)
	assert.Error(t, err)
}
