package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the core UI styles
var Theme = struct {
	Title     lipgloss.Style
	Path      lipgloss.Style
	Directory lipgloss.Style
	File      lipgloss.Style
	Cursor    lipgloss.Style
	Marked    lipgloss.Style
	Unmarked  lipgloss.Style
	Muted     lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7B61FF")),
	Path: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5A9")),
	Directory: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#81A1C1")),
	File: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#CCCCCC")),
	Cursor: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#4F4FB7")),
	Marked: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#73F59F")),
	Unmarked: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666")),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#959595")),
	Warning: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#E5C07B")),
	Error: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF5555")),
}
