package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/editor-collab/collab-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the collaborator endpoints, cache lifetime, HTTP timeout
and theme stored in ~/.collab/config.toml.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a setting.

Keys:
  checkout.endpoint        key-issuance webhook URL
  mods.endpoint            mod index URL (mods are fetched from <endpoint>/<id>)
  mods.cache_ttl_seconds   how long fetched mods stay fresh (0 disables the cache)
  http.timeout_seconds     timeout for outbound requests
  ui.theme                 dark or light`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset <key>",
	Short: "Restore a setting to its default",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", errNotConfigured)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	defaults := settingsService.GetDefaults()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tVALUE\t")
	for _, key := range settingsService.Keys() {
		value := settingValue(settings, key)
		marker := ""
		if value == settingValue(&defaults, key) {
			marker = "(default)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", key, value, marker)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	ids := make([]string, len(settings.Mods.Tracked))
	for i, m := range settings.Mods.Tracked {
		ids[i] = m.ID
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nTracked mods: %s\n", strings.Join(ids, ", "))
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", errNotConfigured)
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])
	return nil
}

func runSettingsReset(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", errNotConfigured)
	}

	if err := settingsService.Reset(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Reset %s\n", args[0])
	return nil
}

// settingValue formats the value of key the way it is entered with set.
func settingValue(s *domain.AppSettings, key string) string {
	switch key {
	case "checkout.endpoint":
		return s.Checkout.Endpoint
	case "mods.endpoint":
		return s.Mods.Endpoint
	case "mods.cache_ttl_seconds":
		return strconv.Itoa(int(s.Mods.CacheTTL.Seconds()))
	case "http.timeout_seconds":
		return strconv.Itoa(int(s.HTTP.Timeout.Seconds()))
	case "ui.theme":
		return string(s.UI.Theme)
	default:
		return ""
	}
}
