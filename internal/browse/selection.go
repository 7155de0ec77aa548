package browse

// Selection tracks which paths carry a user mark. Marks are keyed by path
// rather than by list position, so they survive reloads and directory
// changes, and a path stays marked even when the current listing no longer
// contains it.
type Selection struct {
	marked map[string]struct{}
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{marked: make(map[string]struct{})}
}

// Toggle adds path to the selection, or removes it when already present.
func (s *Selection) Toggle(path string) {
	if _, ok := s.marked[path]; ok {
		delete(s.marked, path)
		return
	}
	s.marked[path] = struct{}{}
}

// Contains reports whether path is marked.
func (s *Selection) Contains(path string) bool {
	_, ok := s.marked[path]
	return ok
}

// Count returns the number of marked paths.
func (s *Selection) Count() int {
	return len(s.marked)
}

// Paths returns the marked paths in no particular order.
func (s *Selection) Paths() []string {
	paths := make([]string, 0, len(s.marked))
	for path := range s.marked {
		paths = append(paths, path)
	}
	return paths
}
