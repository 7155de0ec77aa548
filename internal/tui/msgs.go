package tui

// editorFinishedMsg arrives when the terminal comes back from an external
// program.
type editorFinishedMsg struct {
	err     error
	command string
	status  int
}

// fsChangedMsg arrives when the watched directory changed on disk.
type fsChangedMsg struct{}

// watchClosedMsg arrives when the watcher has shut down and will send no
// further events.
type watchClosedMsg struct{}
