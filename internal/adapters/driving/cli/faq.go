package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/editor-collab/collab-cli/internal/adapters/driving/present"
)

var (
	faqAnchor string
	faqFormat string
)

var faqCmd = &cobra.Command{
	Use:   "faq",
	Short: "Show the FAQ or a single question",
	Long: `Show every FAQ section, or the one question whose anchor id matches --anchor.

Anchor ids are the slugified question text, e.g.
"How do I activate hosting after payment?" is how-do-i-activate-hosting-after-payment.`,
	Args: cobra.NoArgs,
	RunE: runFAQ,
}

func init() {
	faqCmd.Flags().StringVarP(&faqAnchor, "anchor", "a", "", "show only the question with this anchor id")
	addFormatFlag(faqCmd, &faqFormat)
	rootCmd.AddCommand(faqCmd)
}

func runFAQ(cmd *cobra.Command, _ []string) error {
	if contentService == nil {
		return fmt.Errorf("faq: %w", errNotConfigured)
	}

	format, err := present.ParseFormat(faqFormat)
	if err != nil {
		return err
	}

	if faqAnchor != "" {
		entry, err := contentService.ResolveAnchor(faqAnchor)
		if err != nil {
			return err
		}
		return writeOutput(cmd, format, entry,
			func(t *present.Terminal) string { return t.FAQEntry(entry) + "\n" },
			func() string { return present.HTMLFAQEntry(entry) },
		)
	}

	faq, err := contentService.FAQ()
	if err != nil {
		return err
	}
	return writeOutput(cmd, format, faq,
		func(t *present.Terminal) string { return t.FAQ(faq) },
		func() string { return present.HTMLFAQ(faq) },
	)
}
