package domain

import "fmt"

// Site paths linked from checkout pages.
const (
	// SupportHref is the contact page every checkout page links to.
	SupportHref = "/contact"

	// FAQHref is the help page linked after a purchase.
	FAQHref = "/faq"

	// HomeHref is the back link of failure pages.
	HomeHref = "/"
)

// PurchaseHeadline is the title of a successful checkout page.
const PurchaseHeadline = "Purchase confirmed!"

// Purchase is the key-issuance payload for a completed checkout session.
type Purchase struct {
	SlotCount      int      `json:"slot_count"`
	IndividualKeys []string `json:"individual_keys"`
	Email          string   `json:"email"`
}

// Summary returns the confirmation sentence shown above the keys.
func (p *Purchase) Summary() string {
	if p.SlotCount > 1 {
		return fmt.Sprintf("Your %d keys have been sent to %s. Save them somewhere safe.", p.SlotCount, p.Email)
	}
	return fmt.Sprintf("Your key has been sent to %s. Save them somewhere safe.", p.Email)
}

// KeysLabel returns the heading of the key list.
func (p *Purchase) KeysLabel() string {
	if len(p.IndividualKeys) == 1 {
		return "Your activation key"
	}
	return "Your activation keys"
}

// NextSteps are shown after a successful purchase.
var NextSteps = []string{
	"Install Editor Collab via the Geode mod menu if you haven't already.",
	"Open a level in the editor, Press the editor collab button and when its coloured, Go into a level and press the share button.",
	"Enter your key(s), Then press Activate.",
	"Enjoy Hosting!",
}

// FailureKind classifies why a checkout session could not be resolved.
type FailureKind string

// Checkout failure kinds.
const (
	FailureInvalidLink     FailureKind = "invalid_link"
	FailureSessionNotFound FailureKind = "session_not_found"
	FailureServerError     FailureKind = "server_error"
	FailureUnknown         FailureKind = "unknown"
)

// CheckoutFailure is the replacement page state for a failed lookup.
type CheckoutFailure struct {
	Kind    FailureKind `json:"kind"`
	Status  int         `json:"status,omitempty"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
}

// NewCheckoutFailure builds the failure state for kind with its user-facing text.
func NewCheckoutFailure(kind FailureKind, status int) *CheckoutFailure {
	f := &CheckoutFailure{Kind: kind, Status: status}
	switch kind {
	case FailureInvalidLink:
		f.Title = "Invalid link"
		f.Message = "No session ID was provided in the URL, If you believe this is an error on our end, Please contact us."
	case FailureSessionNotFound:
		f.Title = "Session not found"
		f.Message = "We couldn't find a purchase linked to this session, Please refresh the page or contact us if you believe this is a mistake."
	case FailureServerError:
		f.Title = "Server error."
		f.Message = "We're experiencing issues on our end right now. Please contact us with your Stripe receipt email in hand and we'll sort it out as soon as possible."
	default:
		f.Kind = FailureUnknown
		f.Title = "Something went wrong"
		f.Message = "We couldn't retrieve your purchase details. If you just completed your purchase, wait a few seconds and refresh. If the issue persists, contact us."
	}
	return f
}

// FailureKindForStatus maps an HTTP status from the key-issuance webhook to a failure kind.
// Status 0 stands for a transport failure.
func FailureKindForStatus(status int) FailureKind {
	switch status {
	case 404:
		return FailureSessionNotFound
	case 500:
		return FailureServerError
	default:
		return FailureUnknown
	}
}

// CheckoutResult is the outcome of a checkout redirect.
// Exactly one of Purchase and Failure is set.
type CheckoutResult struct {
	Purchase *Purchase        `json:"purchase,omitempty"`
	Failure  *CheckoutFailure `json:"failure,omitempty"`
}

// OK reports whether the session resolved to a purchase.
func (r *CheckoutResult) OK() bool {
	return r.Purchase != nil && r.Failure == nil
}
