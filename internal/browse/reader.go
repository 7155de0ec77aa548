package browse

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"pickd/internal/errors"
)

// ReadDir lists the immediate children of dir in display order. A directory
// that cannot be listed at all produces a ReadError; an entry whose own
// metadata cannot be read (deleted mid-listing) is dropped rather than
// failing the whole listing. Symlinks are not followed, so a link to a
// directory lists as a file.
func ReadDir(dir string) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		kind := errors.DirectoryUnreadable
		if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
			kind = errors.NotADirectory
		}
		return nil, errors.NewReadError("reading directory", dir, kind, err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		info, err := de.Info()
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			Name:    de.Name(),
			Path:    filepath.Join(dir, de.Name()),
			IsDir:   info.IsDir(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sortEntries(entries)
	return entries, nil
}

// sortEntries orders directories before files and each kind
// case-insensitively by name. The sort is stable, so names equal under
// folding keep the lexical order the directory read produced.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
}
