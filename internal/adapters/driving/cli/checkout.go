package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/editor-collab/collab-cli/internal/adapters/driving/present"
)

var checkoutFormat string

var checkoutCmd = &cobra.Command{
	Use:   "checkout [session-id]",
	Short: "Redeem a checkout session for activation keys",
	Long: `Exchange a payment session id for the purchased activation keys.

The result is shown the way the checkout redirect page shows it: the keys and
next steps on success, or one of the invalid link, session not found, server
error or generic failure states. The command exits non-zero on failure.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheckout,
}

func init() {
	addFormatFlag(checkoutCmd, &checkoutFormat)
	rootCmd.AddCommand(checkoutCmd)
}

func runCheckout(cmd *cobra.Command, args []string) error {
	if checkoutService == nil {
		return fmt.Errorf("checkout: %w", errNotConfigured)
	}

	format, err := present.ParseFormat(checkoutFormat)
	if err != nil {
		return err
	}

	sessionID := ""
	if len(args) == 1 {
		sessionID = args[0]
	}

	result := checkoutService.Redeem(cmd.Context(), sessionID)
	if err := writeOutput(cmd, format, result,
		func(t *present.Terminal) string { return t.Checkout(result) },
		func() string { return present.HTMLCheckout(result) },
	); err != nil {
		return err
	}

	if !result.OK() {
		kind := "unknown"
		if result.Failure != nil {
			kind = string(result.Failure.Kind)
		}
		return fmt.Errorf("checkout failed: %s", kind)
	}
	return nil
}
