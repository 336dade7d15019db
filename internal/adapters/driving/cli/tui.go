package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/editor-collab/collab-cli/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui [page]",
	Short: "Launch the interactive page viewer",
	Long: `Launch the interactive terminal viewer for the legal pages, FAQ and changelog.

Pass a page (tos, privacy-policy, refund-policy, faq, changelog) to open it
directly instead of the menu.

Controls:
  ↑/k, ↓/j     - Navigate / scroll
  Enter        - Open page
  Tab, ←/→     - Switch changelog tab
  r            - Refresh page
  t            - Toggle theme
  Esc          - Back to menu
  ?            - Toggle help
  q            - Quit`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"tos", "privacy-policy", "refund-policy", "faq", "changelog"},
	RunE:      runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := tui.NewPorts(contentService, changelogService, themeService)

	// Create the TUI app
	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())
	if len(args) == 1 {
		app.WithInitialPage(args[0])
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
