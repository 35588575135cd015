package llm

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
)

// RetryConfig configures the transient-failure policy for direct model calls.
type RetryConfig struct {
	MaxAttempts int
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
}

// DefaultRetryConfig matches the provider defaults: 5 attempts, exponential
// backoff bounded between 4s and 10s.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 5,
		BaseBackoff: 4 * time.Second,
		MaxBackoff:  10 * time.Second,
	}
}

type retryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WrapWithRetry decorates a provider so that rate-limit, timeout and
// connection-class failures of Complete and ChatStream are retried with
// exponential backoff. A stream attempt is only retried while no delta has
// been delivered to the consumer yet; retries are therefore invisible, and a
// failure after output began is surfaced rather than replayed. After the
// attempt ceiling the original error is returned unmodified. SearchStream is
// deliberately not retried: it is a tool-internal call with its own failure
// surface.
func WrapWithRetry(p Provider, cfg RetryConfig) Provider {
	if cfg.MaxAttempts < 1 {
		cfg = DefaultRetryConfig()
	}
	return &retryProvider{inner: p, cfg: cfg}
}

func (r *retryProvider) Complete(ctx context.Context, req *ChatRequest) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= r.cfg.MaxAttempts; attempt++ {
		result, err := r.inner.Complete(ctx, req)
		if err == nil {
			return result, nil
		}
		if !isRetryable(err) {
			return "", err
		}
		lastErr = err
		if attempt >= r.cfg.MaxAttempts || ctx.Err() != nil {
			break
		}
		if err := r.sleep(ctx, attempt, err); err != nil {
			return "", lastErr
		}
	}
	return "", lastErr
}

func (r *retryProvider) ChatStream(ctx context.Context, req *ChatRequest, ch chan<- StreamDelta) error {
	defer close(ch)

	var lastErr error
	for attempt := 1; attempt <= r.cfg.MaxAttempts; attempt++ {
		inner := make(chan StreamDelta)
		go r.inner.ChatStream(ctx, req, inner) //nolint:errcheck // failures arrive in-band

		forwarded, err := forwardDeltas(ctx, inner, ch)
		if err == nil {
			return nil
		}
		if forwarded || !isRetryable(err) {
			// Once a delta has reached the consumer, replaying the request
			// would repeat output it already saw.
			sendErr(ctx, ch, err)
			return err
		}
		lastErr = err
		if attempt >= r.cfg.MaxAttempts || ctx.Err() != nil {
			break
		}
		if err := r.sleep(ctx, attempt, err); err != nil {
			break
		}
	}
	sendErr(ctx, ch, lastErr)
	return lastErr
}

func (r *retryProvider) SearchStream(ctx context.Context, query string, ch chan<- string) error {
	return r.inner.SearchStream(ctx, query, ch)
}

// forwardDeltas relays deltas from one attempt's stream and reports whether
// any were delivered. An in-band Err delta is returned instead of forwarded
// so the caller can decide whether to retry.
func forwardDeltas(ctx context.Context, in <-chan StreamDelta, out chan<- StreamDelta) (bool, error) {
	forwarded := false
	for delta := range in {
		if delta.Err != nil {
			return forwarded, delta.Err
		}
		select {
		case out <- delta:
			forwarded = true
		case <-ctx.Done():
			return forwarded, ctx.Err()
		}
	}
	return forwarded, nil
}

func sendErr(ctx context.Context, ch chan<- StreamDelta, err error) {
	if err == nil {
		return
	}
	select {
	case ch <- StreamDelta{Err: err}:
	case <-ctx.Done():
	}
}

func (r *retryProvider) sleep(ctx context.Context, attempt int, cause error) error {
	wait := r.backoff(attempt)
	slog.Warn("Transient provider error, backing off before retry",
		"attempt", attempt,
		"max_attempts", r.cfg.MaxAttempts,
		"wait", wait,
		"error", cause,
	)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return nil
	}
}

// backoff grows exponentially from BaseBackoff, capped at MaxBackoff.
func (r *retryProvider) backoff(attempt int) time.Duration {
	d := float64(r.cfg.BaseBackoff) * math.Pow(2, float64(attempt-1))
	if d > float64(r.cfg.MaxBackoff) {
		d = float64(r.cfg.MaxBackoff)
	}
	return time.Duration(d)
}

// isRetryable reports whether the error is a rate-limit, timeout or
// connection-class failure. Context cancellation is never retried.
func isRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests ||
			apiErr.StatusCode == http.StatusRequestTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "too many requests") ||
		strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "no such host")
}
