package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/editor-collab/collab-cli/internal/adapters/driving/present"
	"github.com/editor-collab/collab-cli/internal/core/domain"
)

var (
	changelogRefresh bool
	changelogFormat  string
)

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Show the changelog of the Editor Collab mods",
	Long: `Fetch the Editor Collab and Editor Collab UI mods from the Geode index and
show their changelogs, latest versions and download counts.

Responses are cached locally for mods.cache_ttl_seconds; use --refresh to skip
the cache.`,
	Args: cobra.NoArgs,
	RunE: runChangelog,
}

func init() {
	changelogCmd.Flags().BoolVarP(&changelogRefresh, "refresh", "r", false, "bypass the local cache")
	addFormatFlag(changelogCmd, &changelogFormat)
	rootCmd.AddCommand(changelogCmd)
}

func runChangelog(cmd *cobra.Command, _ []string) error {
	if changelogService == nil {
		return fmt.Errorf("changelog: %w", errNotConfigured)
	}

	format, err := present.ParseFormat(changelogFormat)
	if err != nil {
		return err
	}

	var page *domain.Page
	if changelogRefresh {
		page, err = changelogService.Refresh(cmd.Context())
	} else {
		page, err = changelogService.Page(cmd.Context())
	}
	if err != nil {
		return fmt.Errorf("building changelog: %w", err)
	}

	return writeOutput(cmd, format, page,
		func(t *present.Terminal) string { return t.AllTabs(page) },
		func() string { return present.HTMLPage(page) },
	)
}
