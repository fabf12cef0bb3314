package lessonplan

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/lessonforge/internal/intake"
	"github.com/abhisek/lessonforge/internal/plangen"
)

const stage = "build"

// Builder maps validated structured content to a LessonPlan. The id and
// clock sources are injectable so builds are reproducible in tests.
type Builder struct {
	Now   func() time.Time
	NewID func() string
}

// NewBuilder creates a Builder with production defaults: UTC wall clock and
// uuid-derived 8-character ids.
func NewBuilder() *Builder {
	return &Builder{
		Now:   time.Now,
		NewID: func() string { return uuid.New().String()[:8] },
	}
}

// Build constructs the plan. The mapping is deterministic given the injected
// id and clock: sessions keep arrival order and receive indices 1..n, and
// objectives, activities and worksheets are copied verbatim.
//
// A session count that disagrees with the request is a contract defect
// upstream validation must have caught, so Build refuses with an
// InternalInvariantError rather than truncating or padding.
func (b *Builder) Build(content *plangen.StructuredContent, req intake.GenerationRequest) (*LessonPlan, error) {
	if content == nil {
		return nil, &InternalInvariantError{Stage: stage, Message: "no structured content"}
	}
	if req.SessionCount < 1 {
		return nil, &InternalInvariantError{
			Stage:   stage,
			Message: fmt.Sprintf("request carries non-positive session count %d", req.SessionCount),
		}
	}
	if len(content.Sessions) != req.SessionCount {
		return nil, &InternalInvariantError{
			Stage:   stage,
			Message: fmt.Sprintf("expected %d sessions, got %d", req.SessionCount, len(content.Sessions)),
		}
	}

	plan := &LessonPlan{
		ID:        b.NewID(),
		Title:     planTitle(content.Title, req),
		CreatedAt: b.Now().UTC(),
		Request:   req,
		Sessions:  make([]Session, 0, len(content.Sessions)),
	}

	for i, sc := range content.Sessions {
		plan.Sessions = append(plan.Sessions, Session{
			Index:      i + 1,
			Title:      sc.Title,
			Objectives: append([]string(nil), sc.Objectives...),
			Activities: buildActivities(sc.Activities),
			Worksheet:  buildWorksheet(sc.Worksheet),
		})
	}

	return plan, nil
}

// planTitle prefers the generated title; when the generator omitted one, it
// derives a display title from the request rather than inventing content.
func planTitle(generated string, req intake.GenerationRequest) string {
	if generated != "" {
		return generated
	}
	return fmt.Sprintf("%s, Grade %s: %s", req.Subject, req.GradeLevel, req.Topic)
}

func buildActivities(in []plangen.ActivityContent) []Activity {
	if len(in) == 0 {
		return nil
	}
	out := make([]Activity, 0, len(in))
	for _, a := range in {
		out = append(out, Activity{
			Title:            a.Title,
			Description:      a.Description,
			EstimatedMinutes: a.EstimatedMinutes,
		})
	}
	return out
}

func buildWorksheet(in *plangen.WorksheetContent) *Worksheet {
	if in == nil || len(in.Questions) == 0 {
		return nil
	}
	ws := &Worksheet{Questions: make([]Question, 0, len(in.Questions))}
	for _, q := range in.Questions {
		ws.Questions = append(ws.Questions, Question{
			Prompt:        q.Prompt,
			AnswerKeyHint: q.AnswerKeyHint,
		})
	}
	return ws
}
