// Package keyissuer is the HTTP client for the key-issuance webhook that
// exchanges a checkout session id for the activation keys it paid for.
package keyissuer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/editor-collab/collab-cli/internal/core/domain"
	"github.com/editor-collab/collab-cli/internal/core/ports/driven"
	"github.com/editor-collab/collab-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.KeyIssuer = (*Client)(nil)

// Default configuration values.
const (
	DefaultEndpoint = domain.DefaultCheckoutEndpoint
	DefaultTimeout  = domain.DefaultHTTPTimeout
)

// HeaderRequestID correlates a redemption with webhook logs.
const HeaderRequestID = "X-Request-ID"

// validate flags suspicious payloads. Validators cache struct metadata and
// are safe for concurrent use.
var validate = validator.New()

// purchasePayload is the webhook's JSON body. The tags only describe what a
// well-formed answer looks like; a 2xx body is a purchase even when they fail.
type purchasePayload struct {
	SlotCount      int      `json:"slot_count" validate:"gte=0"`
	IndividualKeys []string `json:"individual_keys" validate:"dive,required"`
	Email          string   `json:"email" validate:"omitempty,email"`
}

// Config holds configuration for the webhook client.
type Config struct {
	// Endpoint is the redirect_key URL (default: DefaultEndpoint).
	Endpoint string

	// Timeout bounds one redemption (default: 15s).
	Timeout time.Duration

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// Client redeems checkout sessions over HTTP.
type Client struct {
	client   *http.Client
	endpoint string
}

// NewClient creates a webhook client.
func NewClient(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{client: client, endpoint: cfg.Endpoint}
}

// RedeemSession performs GET <endpoint>?session_id=<id> exactly once.
// Non-2xx answers return a *StatusError; transport failures and undecodable
// bodies are returned wrapped. Any decoded 2xx body is a purchase, odd
// fields are only logged.
func (c *Client) RedeemSession(ctx context.Context, sessionID string) (*domain.Purchase, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set("session_id", sessionID)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set(HeaderRequestID, requestID)
	req.Header.Set("Accept", "application/json")

	logger.Debug("Redeeming checkout session (request %s)", requestID)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, RequestID: requestID}
	}

	var payload purchasePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if err := validate.Struct(payload); err != nil {
		logger.Warn("Unexpected purchase payload (request %s): %v", requestID, err)
	}
	if payload.IndividualKeys == nil {
		payload.IndividualKeys = []string{}
	}
	return &domain.Purchase{
		SlotCount:      payload.SlotCount,
		IndividualKeys: payload.IndividualKeys,
		Email:          payload.Email,
	}, nil
}
