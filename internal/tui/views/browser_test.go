package views_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pickd/internal/browse"
	"pickd/internal/tui/views"
)

// stubBrowser satisfies views.Browser with canned data.
type stubBrowser struct {
	cwd     string
	entries []browse.Entry
	cursor  int
	marked  map[string]bool
	offset  int
	height  int
	status  string
	isErr   bool
}

func (s *stubBrowser) Cwd() string             { return s.cwd }
func (s *stubBrowser) Entries() []browse.Entry { return s.entries }
func (s *stubBrowser) Cursor() int             { return s.cursor }
func (s *stubBrowser) Marked(path string) bool { return s.marked[path] }
func (s *stubBrowser) MarkedCount() int        { return len(s.marked) }
func (s *stubBrowser) Offset() int             { return s.offset }
func (s *stubBrowser) ListHeight() int         { return s.height }
func (s *stubBrowser) Status() (string, bool)  { return s.status, s.isErr }
func (s *stubBrowser) HelpView() string        { return "q quit" }

func sampleEntries() []browse.Entry {
	return []browse.Entry{
		{Name: "docs", Path: "/home/x/docs", IsDir: true, ModTime: time.Now()},
		{Name: "a.txt", Path: "/home/x/a.txt", Size: 2048, ModTime: time.Now()},
		{Name: "b.txt", Path: "/home/x/b.txt", Size: 10, ModTime: time.Now()},
		{Name: "c.txt", Path: "/home/x/c.txt", Size: 10, ModTime: time.Now()},
	}
}

func TestRenderEntry(t *testing.T) {
	t.Run("file row", func(t *testing.T) {
		row := views.RenderEntry(browse.Entry{Name: "a.txt"}, false, false)
		assert.Contains(t, row, "○")
		assert.Contains(t, row, "📄")
		assert.Contains(t, row, "a.txt")
		assert.NotContains(t, row, "➤")
	})

	t.Run("directory row", func(t *testing.T) {
		row := views.RenderEntry(browse.Entry{Name: "docs", IsDir: true}, false, false)
		assert.Contains(t, row, "📁")
	})

	t.Run("marked row", func(t *testing.T) {
		row := views.RenderEntry(browse.Entry{Name: "a.txt"}, false, true)
		assert.Contains(t, row, "●")
		assert.NotContains(t, row, "○")
	})

	t.Run("cursor row", func(t *testing.T) {
		row := views.RenderEntry(browse.Entry{Name: "a.txt"}, true, false)
		assert.Contains(t, row, "➤")
	})
}

func TestRenderListing(t *testing.T) {
	t.Run("window clips to offset and height", func(t *testing.T) {
		b := &stubBrowser{entries: sampleEntries(), cursor: 2, offset: 1, height: 2}
		got := views.RenderListing(b)

		assert.NotContains(t, got, "docs")
		assert.Contains(t, got, "a.txt")
		assert.Contains(t, got, "b.txt")
		assert.NotContains(t, got, "c.txt")
		assert.Equal(t, 1, strings.Count(got, "\n"))
	})

	t.Run("empty listing", func(t *testing.T) {
		b := &stubBrowser{height: 10}
		assert.Contains(t, views.RenderListing(b), "(empty directory)")
	})
}

func TestRenderHeader(t *testing.T) {
	got := views.RenderHeader("/home/x", 3)
	assert.Contains(t, got, "/home/x")
	assert.Contains(t, got, "marked: 3")
}

func TestRenderStatus(t *testing.T) {
	t.Run("pending message wins", func(t *testing.T) {
		b := &stubBrowser{entries: sampleEntries(), cursor: 1, status: "vi exited with status 2"}
		assert.Contains(t, views.RenderStatus(b), "vi exited with status 2")
	})

	t.Run("file details", func(t *testing.T) {
		b := &stubBrowser{entries: sampleEntries(), cursor: 1, height: 4}
		got := views.RenderStatus(b)
		assert.Contains(t, got, "4 entries")
		assert.Contains(t, got, "kB")
	})

	t.Run("directory details", func(t *testing.T) {
		b := &stubBrowser{entries: sampleEntries(), cursor: 0, height: 4}
		assert.Contains(t, views.RenderStatus(b), "directory")
	})

	t.Run("empty listing", func(t *testing.T) {
		b := &stubBrowser{cursor: -1}
		assert.Contains(t, views.RenderStatus(b), "0 entries")
	})
}

func TestRenderBrowser(t *testing.T) {
	b := &stubBrowser{
		cwd:     "/home/x",
		entries: sampleEntries(),
		cursor:  0,
		marked:  map[string]bool{"/home/x/a.txt": true},
		height:  10,
	}
	got := views.RenderBrowser(b)

	assert.Contains(t, got, "pickd")
	assert.Contains(t, got, "/home/x")
	assert.Contains(t, got, "marked: 1")
	assert.Contains(t, got, "docs")
	assert.Contains(t, got, "q quit")
}
