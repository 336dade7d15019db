package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/editor-collab/collab-cli/internal/adapters/driving/present"
	"github.com/editor-collab/collab-cli/internal/core/domain"
	"github.com/editor-collab/collab-cli/internal/logger"
)

var (
	renderProfile string
	renderFormat  string
	renderWatch   bool
)

var renderCmd = &cobra.Command{
	Use:   "render [file|-]",
	Short: "Render a document in the site's text format",
	Long: `Render a document into blocks and print it as styled text, JSON or HTML.

Reads standard input when no file (or "-") is given.

Profiles:
  informative  headings, lists, rules, centered lines and emphasis (legal pages)
  rich         informative plus images and [label](target) links
  faq          informative plus [label](__url__), [label](/path) and [Question] references

Examples:
  collab render terms.txt
  collab render --profile faq --format html answer.txt
  echo "# Hello" | collab render --format json
  collab render --watch draft.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderProfile, "profile", "p", domain.ProfileInformative.Name,
		"rendering profile (informative, rich, faq)")
	addFormatFlag(renderCmd, &renderFormat)
	renderCmd.Flags().BoolVarP(&renderWatch, "watch", "w", false, "re-render whenever the file changes")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderService == nil {
		return fmt.Errorf("render: %w", errNotConfigured)
	}

	format, err := present.ParseFormat(renderFormat)
	if err != nil {
		return err
	}

	path := ""
	if len(args) == 1 && args[0] != "-" {
		path = args[0]
	}

	once := func() error {
		doc, err := readDocument(cmd.InOrStdin(), path)
		if err != nil {
			return err
		}
		blocks, err := renderService.Render(doc, renderProfile)
		if err != nil {
			return err
		}
		return writeOutput(cmd, format, blocks,
			func(t *present.Terminal) string { return t.Blocks(blocks) + "\n" },
			func() string { return present.HTMLBlocks(blocks) },
		)
	}

	if !renderWatch {
		return once()
	}
	if path == "" {
		return fmt.Errorf("%w: --watch needs a file argument", domain.ErrInvalidInput)
	}

	if err := once(); err != nil {
		return err
	}
	return watchFile(cmd.Context(), path, func() error {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Repeat("─", 40))
		return once()
	})
}

// readDocument reads path, or r when path is empty.
func readDocument(r io.Reader, path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// watchFile calls onChange after every write to path until ctx is done.
// The parent directory is watched so editors that replace the file on save
// keep triggering.
func watchFile(ctx context.Context, path string, onChange func() error) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	logger.Info("Watching %s", abs)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("Change detected: %s", event)
			if err := onChange(); err != nil {
				// Keep watching; the next save may fix it.
				logger.Error("render: %v", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if !errors.Is(err, fsnotify.ErrEventOverflow) {
				return fmt.Errorf("watching %s: %w", path, err)
			}
			logger.Warn("watch events overflowed")
		}
	}
}
