package driven

import (
	"context"

	"github.com/editor-collab/collab-cli/internal/core/domain"
)

// KeyIssuer exchanges a payment session for the activation keys it bought.
type KeyIssuer interface {
	// RedeemSession fetches the purchase for a checkout session.
	// A non-2xx answer is reported as an error carrying the HTTP status;
	// see StatusCoder.
	RedeemSession(ctx context.Context, sessionID string) (*domain.Purchase, error)
}

// StatusCoder is implemented by errors that carry an HTTP status code.
type StatusCoder interface {
	HTTPStatus() int
}
