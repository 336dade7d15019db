package driving

import (
	"context"

	"github.com/editor-collab/collab-cli/internal/core/domain"
)

// CheckoutService resolves the post-purchase redirect.
type CheckoutService interface {
	// Redeem looks up the purchase for a checkout session.
	// It never fails: every problem is reported as result.Failure.
	Redeem(ctx context.Context, sessionID string) *domain.CheckoutResult
}
