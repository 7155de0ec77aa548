// Package browse implements the navigation core of the directory browser:
// reading and ordering directory listings, the cursor state machine, and the
// persistent set of marked paths.
package browse

import (
	"path/filepath"

	"pickd/internal/errors"
)

// State is the browsing state machine. It holds the current directory, its
// listing, the cursor, and the selection. The cursor is -1 exactly when the
// listing is empty, otherwise it indexes a listing entry.
//
// Directory changes read the new listing before committing, so a failed read
// leaves the previous directory, listing, and cursor fully intact.
type State struct {
	cwd       string
	entries   []Entry
	cursor    int
	selection *Selection
}

// New creates browsing state rooted at dir, reading its listing immediately.
func New(dir string) (*State, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.NewReadError("resolving directory", dir, errors.DirectoryUnreadable, err)
	}
	entries, err := ReadDir(abs)
	if err != nil {
		return nil, err
	}
	s := &State{
		cwd:       abs,
		entries:   entries,
		cursor:    -1,
		selection: NewSelection(),
	}
	if len(entries) > 0 {
		s.cursor = 0
	}
	return s, nil
}

// Cwd returns the current directory.
func (s *State) Cwd() string {
	return s.cwd
}

// Entries returns the current listing.
func (s *State) Entries() []Entry {
	return s.entries
}

// Cursor returns the cursor index, or -1 when the listing is empty.
func (s *State) Cursor() int {
	return s.cursor
}

// Selection returns the set of marked paths.
func (s *State) Selection() *Selection {
	return s.selection
}

// Current returns the entry under the cursor.
func (s *State) Current() (*Entry, bool) {
	if s.cursor < 0 || s.cursor >= len(s.entries) {
		return nil, false
	}
	return &s.entries[s.cursor], true
}

// MoveBy moves the cursor delta positions with wraparound at both ends:
// moving -1 from the first entry lands on the last, moving past the last
// lands on the first. With an empty listing the cursor stays parked.
func (s *State) MoveBy(delta int) {
	n := len(s.entries)
	if n == 0 {
		s.cursor = -1
		return
	}
	start := s.cursor
	if start < 0 {
		start = 0
	}
	idx := (start + delta) % n
	if idx < 0 {
		idx += n
	}
	s.cursor = idx
}

// Home moves the cursor to the first entry.
func (s *State) Home() {
	if len(s.entries) > 0 {
		s.cursor = 0
	}
}

// End moves the cursor to the last entry.
func (s *State) End() {
	if n := len(s.entries); n > 0 {
		s.cursor = n - 1
	}
}

// Reload re-reads the current directory and replaces the listing. The
// cursor keeps its position when possible, clamping to the last entry when
// the listing shrank. The selection is untouched, including marks on paths
// the new listing no longer contains.
func (s *State) Reload() error {
	entries, err := ReadDir(s.cwd)
	if err != nil {
		return err
	}
	s.entries = entries
	s.cursor = clampCursor(s.cursor, len(entries))
	return nil
}

// ToggleMark flips the mark on the entry under the cursor. With an empty
// listing it does nothing.
func (s *State) ToggleMark() {
	if e, ok := s.Current(); ok {
		s.selection.Toggle(e.Path)
	}
}

// Enter descends into the entry under the cursor when it is a directory and
// returns (nil, nil). When the entry is a file it is returned unchanged so
// the caller can hand its path to an external program. With an empty listing
// Enter does nothing.
func (s *State) Enter() (*Entry, error) {
	e, ok := s.Current()
	if !ok {
		return nil, nil
	}
	if !e.IsDir {
		return e, nil
	}
	return nil, s.changeDir(e.Path)
}

// UpDir moves to the parent directory. At the filesystem root it does
// nothing and reports no error.
func (s *State) UpDir() error {
	parent := filepath.Dir(s.cwd)
	if parent == s.cwd {
		return nil
	}
	return s.changeDir(parent)
}

// changeDir reads dir and, on success, makes it the current directory with
// the cursor on the first entry.
func (s *State) changeDir(dir string) error {
	entries, err := ReadDir(dir)
	if err != nil {
		return err
	}
	s.cwd = dir
	s.entries = entries
	s.cursor = -1
	if len(entries) > 0 {
		s.cursor = 0
	}
	return nil
}

func clampCursor(cursor, n int) int {
	if n == 0 {
		return -1
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
