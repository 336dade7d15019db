package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/editor-collab/collab-cli/internal/adapters/driving/present"
	"github.com/editor-collab/collab-cli/internal/core/domain"
)

var legalFormat string

var legalCmd = &cobra.Command{
	Use:   "legal [name]",
	Short: "Show a legal page",
	Long: `Show the Terms of Service, Privacy Policy or Refund Policy.

Without a name, lists the available pages.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"tos", "privacy-policy", "refund-policy"},
	RunE:      runLegal,
}

func init() {
	addFormatFlag(legalCmd, &legalFormat)
	rootCmd.AddCommand(legalCmd)
}

func runLegal(cmd *cobra.Command, args []string) error {
	if contentService == nil {
		return fmt.Errorf("legal: %w", errNotConfigured)
	}

	format, err := present.ParseFormat(legalFormat)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return listLegal(cmd, format)
	}

	page, err := contentService.LegalPage(args[0])
	if err != nil {
		return err
	}
	return writeOutput(cmd, format, page,
		func(t *present.Terminal) string { return t.Page(page, 0) },
		func() string { return present.HTMLPage(page) },
	)
}

// listLegal prints the legal page names with their titles.
func listLegal(cmd *cobra.Command, format present.Format) error {
	type entry struct {
		Name      string `json:"name"`
		Title     string `json:"title"`
		UpdatedAt string `json:"updated_at,omitempty"`
	}

	names := contentService.LegalNames()
	entries := make([]entry, 0, len(names))
	for _, name := range names {
		page, err := contentService.LegalPage(name)
		if err != nil {
			return err
		}
		entries = append(entries, entry{Name: name, Title: page.Title, UpdatedAt: page.UpdatedAt})
	}

	if format == present.FormatJSON {
		return present.WriteJSON(cmd.OutOrStdout(), entries)
	}
	if format == present.FormatHTML {
		return fmt.Errorf("%w: the page list has no html form", domain.ErrInvalidInput)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tLAST UPDATED")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Title, e.UpdatedAt)
	}
	return w.Flush()
}
