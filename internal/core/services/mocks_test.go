package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/editor-collab/collab-cli/internal/adapters/driven/storage/memory"
	"github.com/editor-collab/collab-cli/internal/core/domain"
	"github.com/editor-collab/collab-cli/internal/core/ports/driven"
)

// mockKeyIssuer records redemptions and returns a canned answer.
type mockKeyIssuer struct {
	mu       sync.Mutex
	calls    []string
	purchase *domain.Purchase
	err      error
}

func (m *mockKeyIssuer) RedeemSession(_ context.Context, sessionID string) (*domain.Purchase, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, sessionID)
	return m.purchase, m.err
}

// statusError is a minimal driven.StatusCoder.
type statusError struct {
	status int
}

func (e *statusError) Error() string   { return fmt.Sprintf("unexpected status %d", e.status) }
func (e *statusError) HTTPStatus() int { return e.status }

var _ driven.StatusCoder = (*statusError)(nil)

// mockModRegistry serves mods from a map and counts calls per id.
type mockModRegistry struct {
	mu    sync.Mutex
	mods  map[string]*domain.Mod
	errs  map[string]error
	calls map[string]int
}

func newMockModRegistry(mods ...*domain.Mod) *mockModRegistry {
	r := &mockModRegistry{
		mods:  make(map[string]*domain.Mod),
		errs:  make(map[string]error),
		calls: make(map[string]int),
	}
	for _, m := range mods {
		r.mods[m.ID] = m
	}
	return r
}

func (m *mockModRegistry) GetMod(_ context.Context, id string) (*domain.Mod, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[id]++
	if err, ok := m.errs[id]; ok {
		return nil, err
	}
	mod, ok := m.mods[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *mod
	return &cp, nil
}

func (m *mockModRegistry) callCount(id string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[id]
}

// brokenModCache fails every operation.
type brokenModCache struct{}

var errCacheBroken = errors.New("cache unavailable")

func (brokenModCache) Get(context.Context, string, time.Duration) (*domain.Mod, error) {
	return nil, errCacheBroken
}
func (brokenModCache) Put(context.Context, *domain.Mod) error { return errCacheBroken }
func (brokenModCache) Clear(context.Context) error            { return errCacheBroken }
func (brokenModCache) Close() error                           { return nil }

// failingConfigStore accepts reads but rejects writes.
type failingConfigStore struct {
	*memory.ConfigStore
}

var errReadOnly = errors.New("read-only config")

func (failingConfigStore) Set(string, any) error { return errReadOnly }
func (failingConfigStore) Delete(string) error   { return errReadOnly }

// mockContentStore serves in-memory content.
type mockContentStore struct {
	docs       map[string]*driven.LegalDocument
	categories []domain.FAQCategory
	faqErr     error
	faqCalls   int
}

func (m *mockContentStore) LegalDocument(name string) (*driven.LegalDocument, error) {
	doc, ok := m.docs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownDocument, name)
	}
	return doc, nil
}

func (m *mockContentStore) LegalDocumentNames() []string {
	names := make([]string, 0, len(m.docs))
	for n := range m.docs {
		names = append(names, n)
	}
	return names
}

func (m *mockContentStore) FAQCategories() ([]domain.FAQCategory, error) {
	m.faqCalls++
	return m.categories, m.faqErr
}
