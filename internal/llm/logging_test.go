package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

// recordingSink collects events in memory.
type recordingSink struct {
	events []RequestEvent
	err    error
}

func (s *recordingSink) Record(_ context.Context, ev RequestEvent) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, ev)
	return nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 34},
	})
	sink := &recordingSink{}
	p := WithLogging(mock, "groq", sink)

	ctx := WithPurpose(context.Background(), "plan.generate")
	resp, err := p.Generate(ctx, Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("response passed through wrong: %s", resp.Content)
	}

	if len(sink.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(sink.events))
	}
	ev := sink.events[0]
	if ev.Provider != "groq" {
		t.Fatalf("event attributes the provider name, got %q", ev.Provider)
	}
	if !ev.Success || ev.ErrorMessage != "" {
		t.Fatalf("expected success event, got %+v", ev)
	}
	if ev.Purpose != "plan.generate" {
		t.Fatalf("unexpected purpose %q", ev.Purpose)
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 34 {
		t.Fatalf("usage not recorded: %+v", ev)
	}
	if ev.ResponseBody != `{"ok":true}` {
		t.Fatalf("response body not recorded: %q", ev.ResponseBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})
	sink := &recordingSink{}
	p := WithLogging(mock, "anthropic", sink)

	_, err := p.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("provider error must pass through, got %v", err)
	}

	if len(sink.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(sink.events))
	}
	ev := sink.events[0]
	if ev.Success {
		t.Fatal("expected failure event")
	}
	if ev.ErrorMessage == "" {
		t.Fatal("failure event must carry the error message")
	}
}

func TestLogging_SinkErrorDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	sink := &recordingSink{err: errors.New("disk full")}
	p := WithLogging(mock, "groq", sink)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("sink failure must not fail the request: %v", err)
	}
	if resp == nil {
		t.Fatal("expected a response")
	}
}
