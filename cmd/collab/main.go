// Command collab renders the Editor Collab site content in the terminal and
// serves it over MCP.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/editor-collab/collab-cli/internal/adapters/driven/config/file"
	"github.com/editor-collab/collab-cli/internal/adapters/driven/content/embedded"
	"github.com/editor-collab/collab-cli/internal/adapters/driven/geode"
	"github.com/editor-collab/collab-cli/internal/adapters/driven/httpclient"
	"github.com/editor-collab/collab-cli/internal/adapters/driven/keyissuer"
	"github.com/editor-collab/collab-cli/internal/adapters/driven/storage/memory"
	"github.com/editor-collab/collab-cli/internal/adapters/driven/storage/sqlite"
	"github.com/editor-collab/collab-cli/internal/adapters/driving/cli"
	"github.com/editor-collab/collab-cli/internal/core/ports/driven"
	"github.com/editor-collab/collab-cli/internal/core/services"
	"github.com/editor-collab/collab-cli/internal/logger"
	"github.com/editor-collab/collab-cli/internal/richtext"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap wires the adapters into the services.
func bootstrap(opts cli.Options) (*cli.Services, func() error, error) {
	var configStore driven.ConfigStore
	if opts.Ephemeral {
		configStore = memory.NewConfigStore()
	} else {
		store, err := file.NewConfigStore(opts.ConfigDir)
		if err != nil {
			return nil, nil, fmt.Errorf("loading config: %w", err)
		}
		configStore = store
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("reading settings: %w", err)
	}

	client := httpclient.New(httpclient.Config{
		Timeout: settings.HTTP.Timeout,
		Verbose: opts.Verbose,
	})

	issuer := keyissuer.NewClient(keyissuer.Config{
		Endpoint:   settings.Checkout.Endpoint,
		Timeout:    settings.HTTP.Timeout,
		HTTPClient: client,
	})
	registry := geode.NewClient(geode.Config{
		BaseURL:    settings.Mods.Endpoint,
		Timeout:    settings.HTTP.Timeout,
		HTTPClient: client,
	})

	cleanup := func() error { return nil }
	var cache driven.ModCache
	switch {
	case settings.Mods.CacheTTL == 0:
		logger.Debug("Mod cache disabled")
	case opts.Ephemeral:
		cache = memory.NewModCache()
	default:
		dataDir := ""
		if opts.ConfigDir != "" {
			dataDir = filepath.Join(opts.ConfigDir, "data")
		}
		store, err := sqlite.NewStore(dataDir)
		if err != nil {
			// Fall back to a per-process cache.
			logger.Warn("Mod cache unavailable: %v", err)
			cache = memory.NewModCache()
			break
		}
		cache = store.ModCache()
		cleanup = store.Close
	}

	parser := richtext.New()
	return &cli.Services{
		Render:    services.NewRenderService(parser),
		Content:   services.NewContentService(embedded.NewStore(), parser),
		Checkout:  services.NewCheckoutService(issuer),
		Changelog: services.NewChangelogService(registry, cache, parser, settings.Mods.Tracked, settings.Mods.CacheTTL),
		Settings:  settingsService,
		Theme:     services.NewThemeService(configStore),
	}, cleanup, nil
}
