// Package geode is the client for the Geode mod index, the distribution API
// the changelog page reads mod metadata from.
package geode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/editor-collab/collab-cli/internal/core/domain"
	"github.com/editor-collab/collab-cli/internal/core/ports/driven"
	"github.com/editor-collab/collab-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.ModRegistry = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = domain.DefaultModsEndpoint
	DefaultTimeout = domain.DefaultHTTPTimeout
)

// maxErrorBody caps how much of an error response is read into APIError.
const maxErrorBody = 4 << 10

// Config holds configuration for the mod index client.
type Config struct {
	// BaseURL is the mods collection URL (default: DefaultBaseURL).
	BaseURL string

	// Timeout bounds one request (default: 15s).
	Timeout time.Duration

	// RequestsPerSecond and Burst configure proactive throttling.
	RequestsPerSecond float64
	Burst             int

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// Client reads mods from the index.
type Client struct {
	client  *http.Client
	baseURL string
	limiter *RateLimiter
}

// envelope is the index's response wrapper.
type envelope struct {
	Error   string     `json:"error"`
	Payload *modRecord `json:"payload"`
}

// modRecord is the subset of a mod record the site uses.
type modRecord struct {
	Changelog     string              `json:"changelog"`
	DownloadCount int64               `json:"download_count"`
	UpdatedAt     time.Time           `json:"updated_at"`
	Versions      []domain.ModVersion `json:"versions"`
}

// NewClient creates a mod index client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		client:  client,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		limiter: NewRateLimiter(cfg.RequestsPerSecond, cfg.Burst),
	}
}

// GetMod fetches GET <baseURL>/<id>.
func (c *Client) GetMod(ctx context.Context, id string) (*domain.Mod, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := c.baseURL + "/" + url.PathEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")

	logger.Debug("GET %s (request %s)", endpoint, requestID)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if err := c.limiter.CheckResponse(resp); err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp, endpoint)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if env.Payload == nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "response has no payload", URL: endpoint}
	}

	p := env.Payload
	return &domain.Mod{
		ID:            id,
		Changelog:     p.Changelog,
		DownloadCount: p.DownloadCount,
		UpdatedAt:     p.UpdatedAt,
		Versions:      p.Versions,
	}, nil
}

// apiError builds an APIError, preferring the envelope's error message.
func apiError(resp *http.Response, endpoint string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := strings.TrimSpace(string(body))

	var env envelope
	if json.Unmarshal(body, &env) == nil && env.Error != "" {
		msg = env.Error
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg, URL: endpoint}
}
