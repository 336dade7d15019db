package services

import (
	"context"
	"errors"

	"github.com/editor-collab/collab-cli/internal/core/domain"
	"github.com/editor-collab/collab-cli/internal/core/ports/driven"
	"github.com/editor-collab/collab-cli/internal/core/ports/driving"
	"github.com/editor-collab/collab-cli/internal/logger"
)

// Ensure CheckoutService implements the interface.
var _ driving.CheckoutService = (*CheckoutService)(nil)

// CheckoutService turns a checkout redirect into a purchase or a failure page.
type CheckoutService struct {
	issuer driven.KeyIssuer
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(issuer driven.KeyIssuer) *CheckoutService {
	return &CheckoutService{issuer: issuer}
}

// Redeem looks up the purchase for a checkout session.
// A missing session id fails before the key issuer is called. Issuer errors
// are mapped by HTTP status; anything without a status is a generic failure.
// The lookup is attempted exactly once.
func (s *CheckoutService) Redeem(ctx context.Context, sessionID string) *domain.CheckoutResult {
	if sessionID == "" {
		logger.Debug("Checkout redirect without session id")
		return &domain.CheckoutResult{Failure: domain.NewCheckoutFailure(domain.FailureInvalidLink, 0)}
	}

	purchase, err := s.issuer.RedeemSession(ctx, sessionID)
	if err != nil {
		status := 0
		var sc driven.StatusCoder
		if errors.As(err, &sc) {
			status = sc.HTTPStatus()
		}
		logger.Warn("Redeeming checkout session failed (status %d): %v", status, err)
		return &domain.CheckoutResult{
			Failure: domain.NewCheckoutFailure(domain.FailureKindForStatus(status), status),
		}
	}
	if purchase == nil {
		return &domain.CheckoutResult{Failure: domain.NewCheckoutFailure(domain.FailureUnknown, 0)}
	}

	logger.Debug("Checkout session resolved: %d slot(s), %d key(s)", purchase.SlotCount, len(purchase.IndividualKeys))
	return &domain.CheckoutResult{Purchase: purchase}
}
