package geode

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateLimiter_Defaults(t *testing.T) {
	r := NewRateLimiter(0, 0)

	assert.InDelta(t, float64(DefaultRate), float64(r.bucket.Limit()), 0.001)
	assert.Equal(t, DefaultBurst, r.bucket.Burst())
}

func TestRateLimiter_CheckResponse(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name       string
		status     int
		retryAfter string
		wantErr    bool
		wantUntil  time.Time
	}{
		{"ok", http.StatusOK, "", false, time.Time{}},
		{"not found", http.StatusNotFound, "", false, time.Time{}},
		{"429 with header", http.StatusTooManyRequests, "10", true, now.Add(10 * time.Second)},
		{"429 without header", http.StatusTooManyRequests, "", true, now.Add(defaultBackoff)},
		{"429 with http date", http.StatusTooManyRequests, "Wed, 21 Oct 2026 07:28:00 GMT", true, now.Add(defaultBackoff)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRateLimiter(10, 1)
			r.now = func() time.Time { return now }
			resp := &http.Response{StatusCode: tt.status, Header: http.Header{}}
			if tt.retryAfter != "" {
				resp.Header.Set(HeaderRetryAfter, tt.retryAfter)
			}

			err := r.CheckResponse(resp)

			if !tt.wantErr {
				assert.NoError(t, err)
				assert.True(t, r.BlockedUntil().IsZero())
				return
			}
			var rl *RateLimitError
			require.ErrorAs(t, err, &rl)
			assert.Equal(t, tt.wantUntil, rl.ResetAt)
			assert.Equal(t, tt.wantUntil, r.BlockedUntil())
		})
	}
}

func TestRateLimiter_WaitFailsFastWhileBlocked(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r := NewRateLimiter(10, 1)
	r.now = func() time.Time { return now }
	_ = r.CheckResponse(&http.Response{StatusCode: http.StatusTooManyRequests, Header: http.Header{HeaderRetryAfter: {"5"}}})

	err := r.Wait(context.Background())
	assert.True(t, IsRateLimited(err))

	now = now.Add(6 * time.Second)
	assert.NoError(t, r.Wait(context.Background()))
}

func TestRateLimiter_CheckResponseNil(t *testing.T) {
	assert.NoError(t, NewRateLimiter(1, 1).CheckResponse(nil))
}
