// Command pickd is an interactive directory browser for the terminal.
// It lists a directory, lets you mark entries, and opens files in your
// editor, refreshing the listing as the directory changes on disk.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pickd/internal/browse"
	"pickd/internal/config"
	"pickd/internal/editor"
	"pickd/internal/errors"
	"pickd/internal/log"
	"pickd/internal/tui"
	"pickd/internal/watch"
)

var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pickd:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		dir     string
		logFile string
		debug   bool
		noWatch bool
	)

	cmd := &cobra.Command{
		Use:   "pickd [directory]",
		Short: "An interactive directory browser",
		Long: `Pickd opens a directory listing in the terminal. Move around with the
arrow or vi keys, mark entries with space, and open files in your $EDITOR.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv()
			if len(args) > 0 {
				cfg.StartDir = args[0]
			}
			if dir != "" {
				cfg.StartDir = dir
			}
			if logFile != "" {
				cfg.LogFile = logFile
			}
			cfg.Debug = debug
			cfg.Watch = !noWatch

			return run(cfg)
		},
	}

	cmd.Flags().StringVarP(&dir, "directory", "d", "", "Directory to browse (overrides the argument, defaults to current directory)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Append application logs to this file")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not refresh when the directory changes on disk")

	return cmd
}

func run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	log.SetDebug(cfg.Debug)
	if cfg.LogFile != "" {
		if err := log.ToFile(cfg.LogFile); err != nil {
			return err
		}
		defer log.Close()
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("standard input and output must be a terminal")
	}

	state, err := browse.New(cfg.StartDir)
	if err != nil {
		return err
	}

	launcher := editor.New(cfg.Editor, cfg.Pager, cfg.FallbackEditor)

	watcher := newWatcher(cfg, state.Cwd())
	if watcher != nil {
		defer watcher.Stop()
	}

	p := tea.NewProgram(tui.New(state, launcher, watcher), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return errors.NewTerminalModeError("run interactive session", err)
	}
	if m, ok := final.(*tui.Model); ok {
		if err := m.Err(); err != nil {
			return err
		}
	}

	log.LogWithFields(
		log.F("marked", state.Selection().Count()),
		log.F("paths", state.Selection().Paths()),
	).Debug("Session ended")
	return nil
}

// newWatcher builds and starts the change watcher. Any failure degrades to
// manual refresh: browsing works the same, the listing just stops following
// the filesystem on its own.
func newWatcher(cfg *config.Config, dir string) *watch.Watcher {
	if !cfg.Watch {
		return nil
	}
	watcher, err := watch.New()
	if err != nil {
		log.LogWithError(err).Warn("Change watching unavailable")
		return nil
	}
	if err := watcher.Watch(dir); err != nil {
		// The first Watch from the model will retry when the directory
		// changes, so keep the watcher around.
		log.LogWithError(err).Warn("Change watching unavailable")
	}
	if err := watcher.Start(); err != nil {
		log.LogWithError(err).Warn("Change watching unavailable")
		watcher.Stop()
		return nil
	}
	return watcher
}
