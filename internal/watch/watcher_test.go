package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// settle drains stragglers until the channel stays quiet for a moment, so
// the next assertion starts from an empty buffer. A single write can fan out
// into several fsnotify events and the buffer only holds one of them.
func settle(ch <-chan Event) {
	for {
		select {
		case <-ch:
		case <-time.After(200 * time.Millisecond):
			return
		}
	}
}

// expectEvent waits for one event and asserts it refers to path.
func expectEvent(t *testing.T, ch <-chan Event, path string) {
	t.Helper()
	select {
	case event, ok := <-ch:
		require.True(t, ok, "event channel closed unexpectedly")
		assert.Equal(t, path, event.Path)
	case <-time.After(3 * time.Second):
		t.Fatalf("timeout waiting for event on %s", path)
	}
}

// expectQuiet asserts that no event arrives for a short while.
func expectQuiet(t *testing.T, ch <-chan Event) {
	t.Helper()
	select {
	case event := <-ch:
		t.Fatalf("unexpected event: %+v", event)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherReportsChanges(t *testing.T) {
	tempDir := t.TempDir()

	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.Watch(tempDir))
	require.NoError(t, w.Start())
	defer w.Stop()

	evChan := w.Events()
	require.NotNil(t, evChan)

	// Give fsnotify a moment to establish the watch
	time.Sleep(100 * time.Millisecond)

	// Creating a file reports an event
	filePath := filepath.Join(tempDir, "testfile.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("hello"), 0o644))
	expectEvent(t, evChan, filePath)

	// So does creating a directory: it appears in the listing too
	settle(evChan)
	dirPath := filepath.Join(tempDir, "newdir")
	require.NoError(t, os.Mkdir(dirPath, 0o755))
	expectEvent(t, evChan, dirPath)

	// And removing a file
	settle(evChan)
	require.NoError(t, os.Remove(filePath))
	expectEvent(t, evChan, filePath)
}

func TestWatcherStopClosesChannel(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.Watch(t.TempDir()))
	require.NoError(t, w.Start())
	assert.True(t, w.IsRunning())

	w.Stop()
	assert.False(t, w.IsRunning())

	select {
	case _, ok := <-w.Events():
		assert.False(t, ok, "event channel should be closed after stop")
	case <-time.After(time.Second):
		t.Error("timeout waiting for event channel to close after stop")
	}

	// Stopping again is harmless
	w.Stop()
}

func TestWatcherIgnoresScratchFiles(t *testing.T) {
	tempDir := t.TempDir()

	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.Watch(tempDir))
	require.NoError(t, w.Start())
	defer w.Stop()

	time.Sleep(100 * time.Millisecond)

	// Editor scratch files come and go without triggering refreshes
	for _, name := range []string{"doc.txt.swp", "doc.txt.swo", "doc.txt~", ".#doc.txt", "4913"} {
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, name), []byte("x"), 0o644))
	}
	expectQuiet(t, w.Events())

	// A real file still gets through, so the watcher is alive
	realPath := filepath.Join(tempDir, "real.txt")
	require.NoError(t, os.WriteFile(realPath, []byte("x"), 0o644))
	expectEvent(t, w.Events(), realPath)
}

func TestWatchSwapsDirectory(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()

	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.Watch(dirA))
	require.NoError(t, w.Start())
	defer w.Stop()

	time.Sleep(100 * time.Millisecond)

	require.NoError(t, w.Watch(dirB))
	assert.Equal(t, dirB, w.Dir())

	// The old directory no longer reports
	require.NoError(t, os.WriteFile(filepath.Join(dirA, "old.txt"), []byte("x"), 0o644))
	expectQuiet(t, w.Events())

	// The new one does
	newPath := filepath.Join(dirB, "new.txt")
	require.NoError(t, os.WriteFile(newPath, []byte("x"), 0o644))
	expectEvent(t, w.Events(), newPath)
}

func TestWatchValidatesDirectory(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	defer w.Stop()

	t.Run("missing directory", func(t *testing.T) {
		err := w.Watch(filepath.Join(t.TempDir(), "missing"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error accessing directory")
	})

	t.Run("not a directory", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "plain.txt")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		err := w.Watch(file)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not a directory")
	})
}

func TestEventsCoalesce(t *testing.T) {
	tempDir := t.TempDir()

	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.Watch(tempDir))
	require.NoError(t, w.Start())
	defer w.Stop()

	time.Sleep(100 * time.Millisecond)

	// A burst of changes with nobody reading buffers at most one event
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "burst"+string(rune('a'+i))+".txt"), []byte("x"), 0o644))
	}
	time.Sleep(300 * time.Millisecond)

	buffered := 0
	for {
		select {
		case <-w.Events():
			buffered++
		default:
			assert.Equal(t, 1, buffered, "burst should coalesce into one pending event")
			return
		}
	}
}

func TestIgnoredPatterns(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	defer w.Stop()

	tests := []struct {
		path    string
		ignored bool
	}{
		{"/some/dir/file.swp", true},
		{"/some/dir/file.swo", true},
		{"/some/dir/backup~", true},
		{"/some/dir/.#lockfile", true},
		{"/some/dir/4913", true},
		{"/some/dir/49131", false},
		{"/some/dir/file.swpx", false},
		{"/some/dir/normal.txt", false},
		{"/some/dir/archive.tar", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ignored, w.ignored(tt.path), "path %s", tt.path)
	}
}
