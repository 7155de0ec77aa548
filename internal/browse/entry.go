package browse

import "time"

// Entry is a single row of a directory listing. Entries are rebuilt
// wholesale on every reload and never mutated in place; selection state is
// keyed by Path, not by identity.
type Entry struct {
	Name    string // Base name as shown in the listing
	Path    string // Absolute path
	IsDir   bool
	Size    int64 // Byte size as reported by the listing read
	ModTime time.Time
}
