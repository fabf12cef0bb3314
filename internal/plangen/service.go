package plangen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/lessonforge/internal/intake"
	"github.com/abhisek/lessonforge/internal/llm"
)

// stage is the name this component reports in errors.
const stage = "generation"

// Service orchestrates one generation run against the LLM provider.
// Retry of transient failures lives in the provider decorator; this service
// owns the contract, the verdict, and the single repair round-trip.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate produces validated structured content for a normalized request.
// The returned Run records the state machine of the invocation regardless
// of outcome; callers use it for reporting and event logs.
//
// Caller cancellation is honored between attempts and stages, never
// mid-call; it propagates as the bare context error, not a GenerationError.
func (s *Service) Generate(ctx context.Context, req intake.GenerationRequest) (*StructuredContent, *Run, error) {
	run := newRun()

	// Observe retries made by the provider decorator so the run's state
	// history and attempt count stay accurate. The observer runs on this
	// goroutine.
	ctx = llm.WithRetryObserver(ctx, func(attempt int, err error) {
		run.retryObserved()
	})

	userMsg := buildPlanUserMessage(req)

	run.request()
	resp, err := s.provider.Generate(llm.WithPurpose(ctx, "plan.generate"), llm.Request{
		System: planSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      PlanSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		run.to(StateFailed)
		if ctxErr := contextError(err); ctxErr != nil {
			return nil, run, ctxErr
		}
		return nil, run, &GenerationError{
			Kind:     KindExhausted,
			Stage:    stage,
			Attempts: run.Attempts,
			Raw:      rawFrom(err),
			Err:      err,
		}
	}

	run.to(StateValidating)
	content, verdict, perr := s.validate(resp.Content, req.SessionCount)
	if perr != nil {
		// Nothing resembling the contract came back. Treat it like any
		// other unrecoverable verdict: one repair round-trip.
		verdict = Verdict{Kind: VerdictUnrecoverable, Issues: []string{perr.Error()}}
	}
	if verdict.Kind != VerdictUnrecoverable {
		run.to(StateSucceeded)
		return content, run, nil
	}

	// One repair attempt: re-invoke with the amended contract naming each
	// discrepancy. The previous response rides along as an assistant turn.
	run.repair()
	repairResp, err := s.provider.Generate(llm.WithPurpose(ctx, "plan.repair"), llm.Request{
		System: planSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
			{Role: llm.RoleAssistant, Content: string(resp.Content)},
			{Role: llm.RoleUser, Content: buildRepairMessage(verdict.Issues)},
		},
		Schema:      PlanSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		run.to(StateFailed)
		if ctxErr := contextError(err); ctxErr != nil {
			return nil, run, ctxErr
		}
		return nil, run, &GenerationError{
			Kind:     KindExhausted,
			Stage:    stage,
			Attempts: run.Attempts,
			Detail:   fmt.Sprintf("repair round-trip failed: %s", verdict.Detail()),
			Raw:      rawFrom(err),
			Err:      err,
		}
	}

	run.to(StateValidating)
	content, verdict, perr = s.validate(repairResp.Content, req.SessionCount)
	if perr != nil || verdict.Kind == VerdictUnrecoverable {
		detail := verdict.Detail()
		if perr != nil {
			detail = perr.Error()
		}
		run.to(StateFailed)
		return nil, run, &GenerationError{
			Kind:     KindSchemaInvalid,
			Stage:    stage,
			Attempts: run.Attempts,
			Detail:   detail,
			Raw:      repairResp.Content,
		}
	}

	run.to(StateSucceeded)
	return content, run, nil
}

// validate parses a raw response and classifies it against the contract.
func (s *Service) validate(raw json.RawMessage, sessionCount int) (*StructuredContent, Verdict, error) {
	content, notes, err := parsePlan(raw)
	if err != nil {
		return nil, Verdict{}, err
	}
	return content, evaluate(content, sessionCount, notes), nil
}

// contextError returns the caller's context error when err stems from
// cancellation or the caller's deadline, nil otherwise. Per-attempt
// timeouts never reach here; the retry layer reports those as transient
// provider failures.
func contextError(err error) error {
	if errors.Is(err, context.Canceled) {
		return context.Canceled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return context.DeadlineExceeded
	}
	return nil
}

// rawFrom salvages whatever response content a provider error carries, so
// diagnostics keep the last observed output.
func rawFrom(err error) json.RawMessage {
	var invalid *llm.ErrInvalidResponse
	if errors.As(err, &invalid) {
		return invalid.Content
	}
	var maxTok *llm.ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return maxTok.Content
	}
	return nil
}
