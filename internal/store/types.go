package store

import (
	"context"
	"time"

	"github.com/abhisek/lessonforge/internal/lessonplan"
	"github.com/abhisek/lessonforge/internal/llm"
)

// PlanQuery filters stored plan listings. Zero-value fields are ignored.
type PlanQuery struct {
	Topic      string
	Subject    string
	GradeLevel string
	Limit      int
}

// PlanSummary is one row of a stored plan listing.
type PlanSummary struct {
	LessonID     string    `json:"lesson_id"`
	Title        string    `json:"title"`
	Topic        string    `json:"topic"`
	Subject      string    `json:"subject"`
	GradeLevel   string    `json:"grade_level"`
	SessionCount int       `json:"session_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// SessionDetail is one stored session row, decoded for session-level reads.
type SessionDetail struct {
	LessonID      string                `json:"lesson_id"`
	SessionNumber int                   `json:"session_number"`
	Title         string                `json:"title"`
	Objectives    []string              `json:"objectives"`
	Activities    []lessonplan.Activity `json:"activities"`
	Worksheet     *lessonplan.Worksheet `json:"worksheet,omitempty"`
}

// Statistics summarizes the stored corpus.
type Statistics struct {
	TotalPlans       int            `json:"total_plans"`
	TotalSessions    int            `json:"total_sessions"`
	TotalTranscripts int            `json:"total_transcripts"`
	SubjectCounts    map[string]int `json:"subject_counts"`
	LastCreatedAt    *time.Time     `json:"last_created_at,omitempty"`
}

// PlanRepo persists and retrieves lesson plans. Save is transactional
// across the plan, its session rows and the originating transcript.
type PlanRepo interface {
	Save(ctx context.Context, plan *lessonplan.LessonPlan) error

	// Get returns the stored plan, or nil when no plan has that id.
	Get(ctx context.Context, lessonID string) (*lessonplan.LessonPlan, error)

	// Sessions returns the stored session rows of one plan in order.
	Sessions(ctx context.Context, lessonID string) ([]SessionDetail, error)

	// Recent lists the newest plans, newest first.
	Recent(ctx context.Context, limit int) ([]PlanSummary, error)

	// Search lists plans matching the query, newest first.
	Search(ctx context.Context, q PlanQuery) ([]PlanSummary, error)

	// Delete removes a plan and its session rows. It reports whether a
	// plan was actually deleted.
	Delete(ctx context.Context, lessonID string) (bool, error)

	Statistics(ctx context.Context) (*Statistics, error)
}

// StoredTranscript is one persisted transcript.
type StoredTranscript struct {
	ID         int       `json:"id"`
	Text       string    `json:"text"`
	Source     string    `json:"source"`
	Confidence *float64  `json:"confidence,omitempty"`
	LessonID   string    `json:"lesson_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// TranscriptRepo persists transcripts independently of plans.
type TranscriptRepo interface {
	// Save stores the transcript and fills in its assigned ID.
	Save(ctx context.Context, t *StoredTranscript) error

	// Get returns the stored transcript, or nil when the id is unknown.
	Get(ctx context.Context, id int) (*StoredTranscript, error)

	Recent(ctx context.Context, limit int) ([]StoredTranscript, error)

	// Search matches transcript text, newest first.
	Search(ctx context.Context, text string, limit int) ([]StoredTranscript, error)

	// ByLesson returns the transcripts linked to a stored plan.
	ByLesson(ctx context.Context, lessonID string) ([]StoredTranscript, error)
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	Sequence  int64     `json:"sequence"`
	Timestamp time.Time `json:"timestamp"`
	llm.RequestEvent
}

// ModelUsage aggregates token consumption for one model.
type ModelUsage struct {
	Requests     int `json:"requests"`
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// LLMTotals aggregates the request event log.
type LLMTotals struct {
	Requests     int                   `json:"requests"`
	Failures     int                   `json:"failures"`
	InputTokens  int                   `json:"input_tokens"`
	OutputTokens int                   `json:"output_tokens"`
	ByModel      map[string]ModelUsage `json:"by_model"`
}

// LLMEventRepo appends and reads the LLM request event log. Appending is
// the llm.EventSink port, so the logging decorator can record events
// without knowing about this package.
type LLMEventRepo interface {
	llm.EventSink

	// Get returns the event with the given sequence number, or nil when
	// the sequence is unknown.
	Get(ctx context.Context, sequence int64) (*LLMEventRecord, error)

	// Recent returns the newest events, newest first.
	Recent(ctx context.Context, limit int) ([]LLMEventRecord, error)

	Totals(ctx context.Context) (*LLMTotals, error)
}
