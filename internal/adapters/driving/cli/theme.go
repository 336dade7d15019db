package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/editor-collab/collab-cli/internal/core/domain"
)

var themeCmd = &cobra.Command{
	Use:   "theme [toggle|dark|light]",
	Short: "Show or change the colour theme",
	Long: `Show the stored colour theme, flip it with "toggle", or set it directly.

The theme styles terminal output and the interactive viewer.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"toggle", string(domain.ThemeDark), string(domain.ThemeLight)},
	RunE:      runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	if themeService == nil {
		return fmt.Errorf("theme: %w", errNotConfigured)
	}

	if len(args) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), themeService.Current())
		return nil
	}

	if args[0] == "toggle" {
		theme, err := themeService.Toggle()
		if err != nil {
			return fmt.Errorf("failed to toggle theme: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", theme)
		return nil
	}

	theme := domain.Theme(args[0])
	if err := themeService.Set(theme); err != nil {
		return fmt.Errorf("failed to set theme: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", theme)
	return nil
}
