package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/tutorloop/tutorloop/internal/corpus"
)

func newValidateCmd() *cobra.Command {
	var (
		watch      bool
		debounceMs int
	)

	cmd := &cobra.Command{
		Use:   "validate <corpus-dir>",
		Short: "Validate corpus files without starting a session",
		Long: `Check every .toml file in a corpus directory against the entry and
template schemas: required fields, difficulty and question-type enums, and
cross-file ID uniqueness. The same checks run at startup; this command makes
them available while authoring corpus content.

With --watch the directory is monitored and re-validated on every change.
Press Ctrl-C to stop.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]

			if err := validateDir(dir); err != nil {
				if !watch {
					return err
				}
				fmt.Fprintln(os.Stderr, "Error:", err)
			}

			if !watch {
				return nil
			}
			return watchAndRevalidate(dir, time.Duration(debounceMs)*time.Millisecond)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-validate on file changes")
	cmd.Flags().IntVar(&debounceMs, "debounce", 500, "debounce window in milliseconds")

	return cmd
}

// validateDir validates each corpus file individually (for per-file error
// reporting), then the directory as a whole (for cross-file ID collisions).
func validateDir(dir string) error {
	infos, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read corpus dir: %w", err)
	}

	var names []string
	for _, fi := range infos {
		if !fi.IsDir() && strings.HasSuffix(fi.Name(), ".toml") {
			names = append(names, fi.Name())
		}
	}
	sort.Strings(names)
	if len(names) == 0 {
		return fmt.Errorf("no .toml files in %s", dir)
	}

	bar := progressbar.NewOptions(len(names),
		progressbar.OptionSetDescription("  Validating corpus"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
	)

	entries, templates := 0, 0
	for _, name := range names {
		es, ts, err := corpus.LoadFile(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		for _, e := range es {
			if err := e.Validate(); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
		for _, t := range ts {
			if err := t.Validate(); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
		entries += len(es)
		templates += len(ts)
		_ = bar.Add(1)
	}

	// Cross-file pass catches duplicate IDs spanning files.
	c, err := corpus.LoadDir(dir)
	if err != nil {
		return err
	}

	fmt.Printf("OK: %d files, %d entries, %d templates, %d topics\n",
		len(names), entries, templates, len(c.Topics()))
	return nil
}

// watchAndRevalidate re-runs validation whenever a .toml file in dir changes,
// batching rapid edits into a single pass.
func watchAndRevalidate(dir string, debounce time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	fmt.Printf("Watching %s (debounce %s). Press Ctrl-C to stop.\n", dir, debounce)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	timer := time.NewTimer(debounce)
	timer.Stop() // Don't fire immediately.

	for {
		select {
		case <-sigCh:
			fmt.Println("\nStopping watcher.")
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(ev.Name, ".toml") {
				continue
			}
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, "watch error:", err)

		case <-timer.C:
			if err := validateDir(dir); err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
			}
		}
	}
}
