package llm

import "context"

// RequestEvent captures one LLM API call for the request event log.
type RequestEvent struct {
	Provider     string
	Model        string
	Purpose      string
	Attempt      int
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventSink receives request events from the logging decorator. The store
// implements it; keeping the port on this side means no provider code
// depends on where the events end up.
type EventSink interface {
	Record(ctx context.Context, ev RequestEvent) error
}
