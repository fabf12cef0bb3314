package llm

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// RetryProvider is a decorator that retries transient errors with
// exponential backoff and jitter.
//
// Cancellation contract: an attempt already issued runs to completion on a
// context detached from caller cancellation (bounded only by CallTimeout);
// cancellation is honored between attempts. A generation request is not
// idempotent-safe to abort mid-flight, so the single in-flight call always
// finishes before the caller's cancellation takes effect.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error

	for attempt := range r.config.MaxAttempts {
		resp, err := r.attempt(ctx, attempt, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		// Cancellation observed after a completed attempt: skip all
		// further retries.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if !shouldRetry(err) {
			return nil, err
		}

		// Last attempt: don't sleep, just return the error.
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		notifyRetry(ctx, attempt+1, err)

		wait := r.backoff(attempt, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, lastErr
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// attempt issues one provider call on a detached, deadline-bounded context.
func (r *RetryProvider) attempt(ctx context.Context, n int, req Request) (*Response, error) {
	callCtx := context.WithoutCancel(ctx)
	if r.config.CallTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(callCtx, r.config.CallTimeout)
		defer cancel()
	}
	callCtx = withAttempt(callCtx, n+1)

	resp, err := r.inner.Generate(callCtx, req)
	if err != nil && errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		// The per-attempt deadline fired, not the caller's context.
		// Report it as a transient provider failure.
		return nil, &ErrProviderUnavailable{
			Err: fmt.Errorf("attempt %d timed out after %s", n+1, r.config.CallTimeout),
		}
	}
	return resp, err
}

// shouldRetry determines if an error is retryable.
func shouldRetry(err error) bool {
	// Caller context errors are never retried.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// Max tokens is a configuration issue, not transient.
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return false
	}

	// Malformed responses are transient: the next attempt may produce
	// parseable output. Rate limits, unavailability and other network
	// errors likewise.
	return true
}

// backoff computes the wait duration for the given attempt.
func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	// Respect RetryAfter for rate limits.
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// Add ±20% jitter.
	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
