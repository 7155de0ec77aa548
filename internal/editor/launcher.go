// Package editor launches an external program on a file and waits for it to
// exit. The caller is responsible for handing over and reclaiming the
// terminal around the launch; this package only decides what to run and how.
package editor

import (
	"io"
	"os/exec"
	"strings"

	"pickd/internal/errors"
)

// Launcher resolves which external command opens a file. The configured
// editor leads, then the pager, then the fallback editor; a candidate is
// only skipped when it cannot be started at all.
type Launcher struct {
	editor   string // Configured command, may carry flags
	pager    string
	fallback string
}

// New creates a launcher. An empty editor means the pager leads the chain.
func New(editor, pager, fallback string) *Launcher {
	return &Launcher{editor: editor, pager: pager, fallback: fallback}
}

// Command builds the blocking command that opens path.
func (l *Launcher) Command(path string) *Cmd {
	return &Cmd{path: path, candidates: l.candidates()}
}

func (l *Launcher) candidates() []string {
	cands := make([]string, 0, 3)
	if l.editor != "" {
		cands = append(cands, l.editor)
	}
	cands = append(cands, l.pager, l.fallback)
	return cands
}

// Cmd opens one path with the first candidate that can be started. Run
// blocks until that child exits. The stdio setters exist so the interactive
// host can wire its own terminal streams through before running.
type Cmd struct {
	path       string
	candidates []string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	ran        string
	exitStatus int
}

func (c *Cmd) SetStdin(r io.Reader)  { c.stdin = r }
func (c *Cmd) SetStdout(w io.Writer) { c.stdout = w }
func (c *Cmd) SetStderr(w io.Writer) { c.stderr = w }

// Ran returns the candidate command that was started, if any.
func (c *Cmd) Ran() string {
	return c.ran
}

// ExitStatus returns the exit status of the child that ran. A non-zero
// status is informational only; it never fails Run.
func (c *Cmd) ExitStatus() int {
	return c.exitStatus
}

// Run tries each candidate in order until one starts, then waits for it.
// Only failures to start advance the chain: once a child runs, its exit
// status is recorded and Run returns nil regardless. When every candidate
// fails to start, Run returns a SpawnError wrapping the last cause.
func (c *Cmd) Run() error {
	var lastErr error
	for _, candidate := range c.candidates {
		cmd := buildCommand(candidate, c.path)
		cmd.Stdin = c.stdin
		cmd.Stdout = c.stdout
		cmd.Stderr = c.stderr

		err := cmd.Run()
		if err == nil {
			c.ran = candidate
			c.exitStatus = 0
			return nil
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			c.ran = candidate
			c.exitStatus = exitErr.ExitCode()
			return nil
		}
		lastErr = err
	}
	return errors.NewSpawnError("no viable editor", strings.Join(c.candidates, ", "), errors.EditorSpawnFailed, lastErr)
}

// buildCommand prepares the child process for one candidate. A candidate
// containing whitespace carries its own flags, so it runs through sh -c
// with the path quoted; a bare command gets the path as a single direct
// argument with no shell in between.
func buildCommand(command, path string) *exec.Cmd {
	if strings.ContainsAny(command, " \t") {
		return exec.Command("sh", "-c", command+" "+Quote(path))
	}
	return exec.Command(command, path)
}
