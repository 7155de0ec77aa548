// Package views renders the browser screen from a read-only view of the
// UI model. Keeping rendering behind the Browser interface lets the view
// functions be tested without standing up a program loop.
package views

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"pickd/internal/browse"
	"pickd/internal/tui/styles"
)

// Browser is the read surface the renderers need from the UI model.
type Browser interface {
	Cwd() string
	Entries() []browse.Entry
	Cursor() int
	Marked(path string) bool
	MarkedCount() int
	Offset() int
	ListHeight() int
	Status() (text string, isErr bool)
	HelpView() string
}

// RenderBrowser assembles the full screen: title, location header, the
// visible window of the listing, a status line and the help footer.
func RenderBrowser(b Browser) string {
	var sb strings.Builder

	sb.WriteString(RenderTitle())
	sb.WriteString("\n")
	sb.WriteString(RenderHeader(b.Cwd(), b.MarkedCount()))
	sb.WriteString("\n\n")
	sb.WriteString(RenderListing(b))
	sb.WriteString("\n")
	sb.WriteString(RenderStatus(b))
	sb.WriteString("\n")
	sb.WriteString(b.HelpView())

	return sb.String()
}

// RenderTitle renders the application name.
func RenderTitle() string {
	return styles.Theme.Title.Render("pickd")
}

// RenderHeader renders the current directory and the mark tally.
func RenderHeader(cwd string, marked int) string {
	return fmt.Sprintf("%s %s%s",
		styles.Theme.Muted.Render("cwd:"),
		styles.Theme.Path.Render(cwd),
		styles.Theme.Muted.Render(fmt.Sprintf("  |  marked: %d", marked)),
	)
}

// RenderListing renders the window of entries starting at the model's
// offset. Rows outside the window are not drawn at all.
func RenderListing(b Browser) string {
	entries := b.Entries()
	if len(entries) == 0 {
		return styles.Theme.Muted.Render("  (empty directory)")
	}

	offset := b.Offset()
	end := offset + b.ListHeight()
	if end > len(entries) {
		end = len(entries)
	}

	var sb strings.Builder
	for i := offset; i < end; i++ {
		sb.WriteString(RenderEntry(entries[i], i == b.Cursor(), b.Marked(entries[i].Path)))
		if i < end-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// RenderEntry renders a single listing row: mark, icon and name.
func RenderEntry(e browse.Entry, current, marked bool) string {
	mark := styles.Theme.Unmarked.Render("○")
	if marked {
		mark = styles.Theme.Marked.Render("●")
	}

	icon := "📄"
	if e.IsDir {
		icon = "📁"
	}

	name := e.Name
	switch {
	case current:
		name = styles.Theme.Cursor.Render(name)
	case e.IsDir:
		name = styles.Theme.Directory.Render(name)
	default:
		name = styles.Theme.File.Render(name)
	}

	prefix := "  "
	if current {
		prefix = styles.Theme.Cursor.Render("➤") + " "
	}
	return fmt.Sprintf("%s%s %s %s", prefix, mark, icon, name)
}

// RenderStatus renders the transient status message when one is pending,
// otherwise details for the entry under the cursor.
func RenderStatus(b Browser) string {
	if text, isErr := b.Status(); text != "" {
		if isErr {
			return styles.Theme.Error.Render(text)
		}
		return styles.Theme.Warning.Render(text)
	}

	entries := b.Entries()
	cursor := b.Cursor()
	if cursor < 0 || cursor >= len(entries) {
		return styles.Theme.Muted.Render("0 entries")
	}

	e := entries[cursor]
	details := fmt.Sprintf("%d entries  ·  %s  %s",
		len(entries), humanize.Bytes(uint64(e.Size)), humanize.Time(e.ModTime))
	if e.IsDir {
		details = fmt.Sprintf("%d entries  ·  directory  %s",
			len(entries), humanize.Time(e.ModTime))
	}
	return styles.Theme.Muted.Render(details)
}
