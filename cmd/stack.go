package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/lessonforge/internal/intake"
	"github.com/abhisek/lessonforge/internal/lessonplan"
	"github.com/abhisek/lessonforge/internal/llm"
	"github.com/abhisek/lessonforge/internal/pipeline"
	"github.com/abhisek/lessonforge/internal/plangen"
	"github.com/abhisek/lessonforge/internal/store"
	"github.com/abhisek/lessonforge/internal/transcribe"
)

// buildStack assembles the generation pipeline on top of an open store:
// LLM provider with retry and event logging, the transcription adapter,
// and the coordinator that runs the stages in order.
//
// A missing transcription key is not fatal. Text input never touches the
// speech-to-text backend; audio input fails with a clear error instead.
func buildStack(ctx context.Context, st *store.Store) (*pipeline.Coordinator, *transcribe.Adapter, error) {
	cfg, err := llm.ResolveConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("LLM provider not configured: %w", err)
	}

	provider, err := llm.NewProvider(ctx, cfg, st.LLMEventRepo())
	if err != nil {
		return nil, nil, fmt.Errorf("build LLM provider: %w", err)
	}

	var stt llm.Transcriber
	if whisper, err := llm.NewTranscriber(cfg.Transcribe); err == nil {
		stt = whisper
	} else {
		fmt.Fprintln(os.Stderr, "Transcription not configured:", err)
		fmt.Fprintln(os.Stderr, "Audio input will be unavailable.")
	}
	adapter := transcribe.NewAdapter(stt)

	coordinator := pipeline.New(
		adapter,
		plangen.NewService(provider, plangen.DefaultConfig()),
		lessonplan.NewBuilder(),
		intake.DefaultLimits(),
		st.PlanRepo(),
	)
	return coordinator, adapter, nil
}
