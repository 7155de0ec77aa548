// Package tui wires the pure browsing state into a bubbletea program:
// key dispatch, the editor handoff and filesystem-driven refreshes.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pickd/internal/browse"
	"pickd/internal/editor"
	"pickd/internal/errors"
	"pickd/internal/log"
	"pickd/internal/tui/views"
	"pickd/internal/watch"
)

// defaultListHeight is used before the first window size arrives.
const defaultListHeight = 20

type Model struct {
	state    *browse.State
	launcher *editor.Launcher
	watcher  *watch.Watcher

	keys keyMap
	help help.Model

	width  int
	height int
	offset int

	status    string
	statusErr bool
	fatal     error
}

// New builds the browser UI around already-initialized collaborators.
// The watcher may be nil when change watching is disabled.
func New(state *browse.State, launcher *editor.Launcher, watcher *watch.Watcher) *Model {
	return &Model{
		state:    state,
		launcher: launcher,
		watcher:  watcher,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return m.listenWatch()
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ensureCursorVisible()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case editorFinishedMsg:
		return m.handleEditorFinished(msg)

	case fsChangedMsg:
		if err := m.state.Reload(); err != nil {
			m.setError(err)
		}
		m.ensureCursorVisible()
		return m, m.listenWatch()

	case watchClosedMsg:
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	return views.RenderBrowser(m)
}

// Err reports the error that forced the session to end, if any. The
// caller inspects it once the program loop has returned.
func (m *Model) Err() error {
	return m.fatal
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	m.statusErr = false

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Down):
		m.state.MoveBy(1)

	case key.Matches(msg, m.keys.Up):
		m.state.MoveBy(-1)

	case key.Matches(msg, m.keys.Top):
		m.state.Home()

	case key.Matches(msg, m.keys.Bottom):
		m.state.End()

	case key.Matches(msg, m.keys.UpDir):
		if err := m.state.UpDir(); err != nil {
			m.setError(err)
		} else {
			m.watchCwd()
		}

	case key.Matches(msg, m.keys.Reload):
		if err := m.state.Reload(); err != nil {
			m.setError(err)
		}

	case key.Matches(msg, m.keys.ToggleMark):
		m.state.ToggleMark()

	case key.Matches(msg, m.keys.Enter):
		return m, m.enter()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	m.ensureCursorVisible()
	return m, nil
}

// enter opens the entry under the cursor: directories become the new
// working directory, files are handed to the editor launcher.
func (m *Model) enter() tea.Cmd {
	entry, err := m.state.Enter()
	if err != nil {
		m.setError(err)
		m.ensureCursorVisible()
		return nil
	}
	if entry == nil {
		m.watchCwd()
		m.ensureCursorVisible()
		return nil
	}
	return m.openEditor(entry.Path)
}

// openEditor suspends the program loop and hands the terminal to the
// launcher. The loop restores the screen before the callback fires.
func (m *Model) openEditor(path string) tea.Cmd {
	cmd := m.launcher.Command(path)
	log.LogWithFields(log.F("path", path)).Info("Opening entry")
	return tea.Exec(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err, command: cmd.Ran(), status: cmd.ExitStatus()}
	})
}

func (m *Model) handleEditorFinished(msg editorFinishedMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.err == nil && msg.status == 0:
		// Clean run, nothing to report

	case msg.err == nil:
		m.setStatus(fmt.Sprintf("%s exited with status %d", msg.command, msg.status))
		log.LogWithFields(
			log.F("command", msg.command),
			log.F("status", msg.status),
		).Warn("Editor exited non-zero")

	case errors.IsSpawnError(msg.err):
		m.setError(msg.err)

	default:
		// The screen handoff itself failed, so the terminal state is
		// no longer trustworthy. End the session through the loop.
		m.fatal = errors.NewTerminalModeError("restore screen", msg.err)
		log.LogWithError(m.fatal).Error("Terminal handoff failed")
		return m, tea.Quit
	}

	return m, nil
}

// listenWatch waits for the next change notification. It re-arms itself
// from the Update handler after every received message.
func (m *Model) listenWatch() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	ch := m.watcher.Events()
	return func() tea.Msg {
		if _, ok := <-ch; ok {
			return fsChangedMsg{}
		}
		return watchClosedMsg{}
	}
}

// watchCwd points the watcher at the current directory after a change
// of location. Watch failures degrade to manual refresh only.
func (m *Model) watchCwd() {
	if m.watcher == nil {
		return
	}
	if err := m.watcher.Watch(m.state.Cwd()); err != nil {
		log.LogWithError(err).Warn("Could not watch directory")
	}
}

func (m *Model) setStatus(text string) {
	m.status = text
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
	log.LogWithError(err).Error("Browser operation failed")
}

// ensureCursorVisible slides the listing window so the cursor row stays
// on screen, without leaving blank rows when the listing shrinks.
func (m *Model) ensureCursorVisible() {
	rows := m.ListHeight()
	total := len(m.state.Entries())
	cursor := m.state.Cursor()

	if total == 0 || cursor < 0 {
		m.offset = 0
		return
	}
	if maxOffset := total - rows; m.offset > maxOffset {
		if maxOffset < 0 {
			maxOffset = 0
		}
		m.offset = maxOffset
	}
	if cursor < m.offset {
		m.offset = cursor
	} else if cursor >= m.offset+rows {
		m.offset = cursor - rows + 1
	}
}

// Cwd implements views.Browser
func (m *Model) Cwd() string {
	return m.state.Cwd()
}

// Entries implements views.Browser
func (m *Model) Entries() []browse.Entry {
	return m.state.Entries()
}

// Cursor implements views.Browser
func (m *Model) Cursor() int {
	return m.state.Cursor()
}

// Marked implements views.Browser
func (m *Model) Marked(path string) bool {
	return m.state.Selection().Contains(path)
}

// MarkedCount implements views.Browser
func (m *Model) MarkedCount() int {
	return m.state.Selection().Count()
}

// Offset implements views.Browser
func (m *Model) Offset() int {
	return m.offset
}

// ListHeight implements views.Browser. It is the number of rows left for
// the listing once the title, header, status and help lines are drawn. The
// help height is measured, not assumed: expanded help lays its groups out
// as columns and stands as tall as the largest group.
func (m *Model) ListHeight() int {
	if m.height == 0 {
		return defaultListHeight
	}
	h := m.height - (4 + lipgloss.Height(m.HelpView()))
	if h < 1 {
		h = 1
	}
	return h
}

// Status implements views.Browser
func (m *Model) Status() (string, bool) {
	return m.status, m.statusErr
}

// HelpView implements views.Browser
func (m *Model) HelpView() string {
	return m.help.View(m.keys)
}
