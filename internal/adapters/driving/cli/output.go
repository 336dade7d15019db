package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/editor-collab/collab-cli/internal/adapters/driving/present"
	"github.com/editor-collab/collab-cli/internal/adapters/driving/tui/styles"
	"github.com/editor-collab/collab-cli/internal/core/domain"
)

// addFormatFlag registers the shared --format flag.
func addFormatFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "format", "f", string(present.FormatText),
		fmt.Sprintf("output format (%s)", strings.Join(present.Formats(), ", ")))
}

// newTerminal returns a terminal presenter for the command's output using
// the stored theme.
func newTerminal(cmd *cobra.Command) *present.Terminal {
	theme := domain.ThemeDark
	if themeService != nil {
		theme = themeService.Current()
	}

	width := 80
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		width = present.TerminalWidth(f)
	}
	return present.NewTerminal(styles.ForTheme(theme), width)
}

// writeOutput writes v in the chosen format. text and html produce the
// presentation; json writes v itself.
func writeOutput(cmd *cobra.Command, format present.Format, v any, text func(*present.Terminal) string, html func() string) error {
	out := cmd.OutOrStdout()
	switch format {
	case present.FormatJSON:
		return present.WriteJSON(out, v)
	case present.FormatHTML:
		_, err := fmt.Fprint(out, html())
		return err
	default:
		_, err := fmt.Fprint(out, text(newTerminal(cmd)))
		return err
	}
}
