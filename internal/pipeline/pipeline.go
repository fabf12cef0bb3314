// Package pipeline composes transcription, normalization, generation and
// model building into one lesson generation flow.
package pipeline

import (
	"context"

	"github.com/abhisek/lessonforge/internal/export"
	"github.com/abhisek/lessonforge/internal/intake"
	"github.com/abhisek/lessonforge/internal/lessonplan"
	"github.com/abhisek/lessonforge/internal/plangen"
	"github.com/abhisek/lessonforge/internal/transcribe"
)

// Saver persists a built plan. The coordinator treats persistence as a
// hand-off: it runs after a successful build and its absence (nil) simply
// skips the step.
type Saver interface {
	Save(ctx context.Context, plan *lessonplan.LessonPlan) error
}

// Coordinator runs the stages strictly in sequence. Stage failures
// propagate unchanged; there is no masking and no cross-stage retry.
// Cancellation is observed between stages.
type Coordinator struct {
	transcriber *transcribe.Adapter
	generator   *plangen.Service
	builder     *lessonplan.Builder
	limits      intake.Limits
	saver       Saver
}

// New creates a Coordinator. saver may be nil when persistence is not
// configured.
func New(transcriber *transcribe.Adapter, generator *plangen.Service, builder *lessonplan.Builder, limits intake.Limits, saver Saver) *Coordinator {
	return &Coordinator{
		transcriber: transcriber,
		generator:   generator,
		builder:     builder,
		limits:      limits,
		saver:       saver,
	}
}

// Run executes transcription, normalization, generation and building for
// one input, hands the plan to the saver when one is configured, and
// returns the built plan.
func (c *Coordinator) Run(ctx context.Context, input transcribe.RawInput, meta intake.Metadata) (*lessonplan.LessonPlan, error) {
	transcript, err := c.transcriber.Transcribe(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req, err := intake.Normalize(*transcript, meta, c.limits)
	if err != nil {
		return nil, err
	}

	content, _, err := c.generator.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	plan, err := c.builder.Build(content, req)
	if err != nil {
		return nil, err
	}

	if c.saver != nil {
		if err := c.saver.Save(ctx, plan); err != nil {
			return nil, err
		}
	}
	return plan, nil
}

// Export renders a plan. It is independent of Run: any plan can be
// exported any number of times, in any format.
func (c *Coordinator) Export(plan *lessonplan.LessonPlan, format export.Format) (export.Artifact, error) {
	return export.Render(plan, format)
}
