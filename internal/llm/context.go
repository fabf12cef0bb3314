package llm

import "context"

type contextKey string

const (
	purposeKey       contextKey = "llm_purpose"
	attemptKey       contextKey = "llm_attempt"
	retryObserverKey contextKey = "llm_retry_observer"
)

// WithPurpose attaches a purpose label to the context for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

// withAttempt records the 1-based attempt number the retry layer is
// currently issuing, so the logging layer can attribute each event.
func withAttempt(ctx context.Context, attempt int) context.Context {
	return context.WithValue(ctx, attemptKey, attempt)
}

// AttemptFrom extracts the attempt number from the context. Returns 1 for
// calls that did not pass through the retry layer.
func AttemptFrom(ctx context.Context) int {
	if v, ok := ctx.Value(attemptKey).(int); ok {
		return v
	}
	return 1
}

// RetryObserver is notified before each retry sleep with the number of
// attempts already made (1-based) and the error that caused the retry.
type RetryObserver func(attempt int, err error)

// WithRetryObserver attaches an invocation-scoped retry observer, in the
// manner of httptrace hooks. The observer runs on the goroutine executing
// the Generate call.
func WithRetryObserver(ctx context.Context, fn RetryObserver) context.Context {
	return context.WithValue(ctx, retryObserverKey, fn)
}

func notifyRetry(ctx context.Context, attempt int, err error) {
	if fn, ok := ctx.Value(retryObserverKey).(RetryObserver); ok && fn != nil {
		fn(attempt, err)
	}
}
