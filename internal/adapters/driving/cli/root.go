// Package cli provides the collab command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/editor-collab/collab-cli/internal/core/ports/driving"
	"github.com/editor-collab/collab-cli/internal/logger"
)

// version is set by SetVersion from the build.
var version = "dev"

// Global flags.
var (
	verbose   bool
	configDir string
	ephemeral bool
)

// Services holds the driving ports the commands use.
type Services struct {
	Render    driving.RenderService
	Content   driving.ContentService
	Checkout  driving.CheckoutService
	Changelog driving.ChangelogService
	Settings  driving.SettingsService
	Theme     driving.ThemeService
}

// Options carries the global flags to the wiring code.
type Options struct {
	Verbose   bool
	ConfigDir string
	Ephemeral bool
}

// Bootstrap builds the services once the global flags are parsed. The
// returned cleanup runs after the command.
type Bootstrap func(opts Options) (*Services, func() error, error)

var (
	renderService    driving.RenderService
	contentService   driving.ContentService
	checkoutService  driving.CheckoutService
	changelogService driving.ChangelogService
	settingsService  driving.SettingsService
	themeService     driving.ThemeService

	bootstrap Bootstrap
	cleanup   func() error
)

var errNotConfigured = errors.New("service not configured")

var rootCmd = &cobra.Command{
	Use:   "collab",
	Short: "Editor Collab site content toolkit",
	Long: `collab renders the Editor Collab legal pages, FAQ and mod changelogs,
redeems checkout sessions into activation keys, and serves the same content to
AI assistants over MCP.

Documents use a small line-based format: "#", "##" and "###" headings,
"---" rules, "-> centered <-" lines, "- " lists (three spaces nest an item),
and **bold**, *italic* and ` + "`code`" + ` spans.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log fetches, cache hits and timings to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.collab)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep settings in memory and skip the on-disk cache")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices injects the driving ports directly.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	renderService = s.Render
	contentService = s.Content
	checkoutService = s.Checkout
	changelogService = s.Changelog
	settingsService = s.Settings
	themeService = s.Theme
}

// SetBootstrap registers the function that builds the services.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// setup applies the global flags and runs the bootstrap.
func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if bootstrap == nil {
		return nil
	}

	services, done, err := bootstrap(Options{
		Verbose:   verbose,
		ConfigDir: configDir,
		Ephemeral: ephemeral,
	})
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	SetServices(services)
	cleanup = done
	return nil
}

// Execute runs the root command.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if cleanup != nil {
		if cerr := cleanup(); cerr != nil {
			logger.Warn("cleanup: %v", cerr)
		}
		cleanup = nil
	}
	return err
}
