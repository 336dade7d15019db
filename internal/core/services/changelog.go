package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/editor-collab/collab-cli/internal/core/domain"
	"github.com/editor-collab/collab-cli/internal/core/ports/driven"
	"github.com/editor-collab/collab-cli/internal/core/ports/driving"
	"github.com/editor-collab/collab-cli/internal/logger"
)

// Ensure ChangelogService implements the interface.
var _ driving.ChangelogService = (*ChangelogService)(nil)

// Changelog page chrome.
const (
	changelogTitle     = "Changelog"
	changelogBackHref  = "/"
	changelogBackLabel = "Back to Home"
)

// ChangelogService builds the changelog page from the mod registry.
type ChangelogService struct {
	registry driven.ModRegistry
	cache    driven.ModCache // optional
	parser   driven.BlockParser
	tracked  []domain.TrackedMod
	ttl      time.Duration
	printer  *message.Printer
}

// NewChangelogService creates a changelog service for the tracked mods.
// cache may be nil, in which case every build hits the registry.
func NewChangelogService(
	registry driven.ModRegistry,
	cache driven.ModCache,
	parser driven.BlockParser,
	tracked []domain.TrackedMod,
	ttl time.Duration,
) *ChangelogService {
	return &ChangelogService{
		registry: registry,
		cache:    cache,
		parser:   parser,
		tracked:  tracked,
		ttl:      ttl,
		printer:  message.NewPrinter(language.English),
	}
}

// Page builds the changelog page, serving fresh mods from the cache.
func (s *ChangelogService) Page(ctx context.Context) (*domain.Page, error) {
	return s.build(ctx, true)
}

// Refresh builds the changelog page from the registry only.
func (s *ChangelogService) Refresh(ctx context.Context) (*domain.Page, error) {
	return s.build(ctx, false)
}

func (s *ChangelogService) build(ctx context.Context, useCache bool) (*domain.Page, error) {
	logger.Section("Changelog")
	defer logger.Timed("changelog build")()

	mods := make([]*domain.Mod, len(s.tracked))
	g, gctx := errgroup.WithContext(ctx)
	for i, tm := range s.tracked {
		g.Go(func() error {
			m, err := s.fetch(gctx, tm.ID, useCache)
			if err != nil {
				return fmt.Errorf("fetch mod %s: %w", tm.ID, err)
			}
			mods[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	page := &domain.Page{
		Title:     changelogTitle,
		BackHref:  changelogBackHref,
		BackLabel: changelogBackLabel,
		Tabs:      make([]domain.Tab, 0, len(mods)),
	}
	if latest := domain.LatestUpdate(mods); !latest.IsZero() {
		page.UpdatedAt = latest.UTC().Format(domain.DateLayout)
	}

	for i, tm := range s.tracked {
		m := mods[i]
		page.Tabs = append(page.Tabs, domain.Tab{
			Label:  tm.Label,
			Icon:   tm.Icon,
			Blocks: s.parser.Parse(m.Changelog, domain.ProfileInformative),
			Stats: []domain.Stat{
				{Icon: domain.IconVersion, Value: "v" + m.LatestVersion()},
				{Icon: domain.IconDownloads, Value: s.printer.Sprintf("%d downloads", m.DownloadCount)},
			},
		})
	}
	return page, nil
}

// fetch returns a mod from the cache when allowed and fresh, else from the
// registry, refreshing the cache. Cache failures never fail the page.
func (s *ChangelogService) fetch(ctx context.Context, id string, useCache bool) (*domain.Mod, error) {
	if s.cache != nil && useCache {
		m, err := s.cache.Get(ctx, id, s.ttl)
		switch {
		case err == nil:
			logger.Debug("Cache hit for %s", id)
			return m, nil
		case errors.Is(err, domain.ErrCacheMiss):
			logger.Debug("Cache miss for %s", id)
		default:
			logger.Warn("Reading cached %s: %v", id, err)
		}
	}

	m, err := s.registry.GetMod(ctx, id)
	if err != nil {
		return nil, err
	}
	logger.Debug("Fetched %s: %d versions, %d downloads", id, len(m.Versions), m.DownloadCount)

	if s.cache != nil {
		if err := s.cache.Put(ctx, m); err != nil {
			logger.Warn("Caching %s: %v", id, err)
		}
	}
	return m, nil
}
