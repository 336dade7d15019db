package geode

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultRate is the proactive request rate against the index.
	DefaultRate = 4

	// DefaultBurst allows both tracked mods to be fetched at once.
	DefaultBurst = 2

	// HeaderRetryAfter is the retry-after header (seconds).
	HeaderRetryAfter = "Retry-After"

	// defaultBackoff applies when a 429 carries no usable Retry-After.
	defaultBackoff = 30 * time.Second
)

// RateLimiter throttles calls to the mod index: a token bucket paces every
// request, and a 429 blocks further requests until its Retry-After passes.
type RateLimiter struct {
	mu         sync.Mutex
	bucket     *rate.Limiter
	blockUntil time.Time
	now        func() time.Time
}

// NewRateLimiter creates a limiter allowing perSecond requests with burst.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	if perSecond <= 0 {
		perSecond = DefaultRate
	}
	if burst <= 0 {
		burst = DefaultBurst
	}
	return &RateLimiter{
		bucket: rate.NewLimiter(rate.Limit(perSecond), burst),
		now:    time.Now,
	}
}

// Wait blocks until a request may be sent or ctx is done.
// While a Retry-After window is open it fails fast with a *RateLimitError
// instead of sleeping through it.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	blockUntil := r.blockUntil
	r.mu.Unlock()

	if r.now().Before(blockUntil) {
		return &RateLimitError{ResetAt: blockUntil}
	}
	return r.bucket.Wait(ctx)
}

// CheckResponse records a 429 and returns the matching *RateLimitError.
// Other responses return nil.
func (r *RateLimiter) CheckResponse(resp *http.Response) error {
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		return nil
	}

	wait := defaultBackoff
	if v := resp.Header.Get(HeaderRetryAfter); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds >= 0 {
			wait = time.Duration(seconds) * time.Second
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.blockUntil = r.now().Add(wait)
	return &RateLimitError{ResetAt: r.blockUntil}
}

// BlockedUntil returns the end of the current Retry-After window.
func (r *RateLimiter) BlockedUntil() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.blockUntil
}
