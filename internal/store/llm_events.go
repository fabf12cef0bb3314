package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/abhisek/lessonforge/ent"
	"github.com/abhisek/lessonforge/ent/llmrequestevent"
	"github.com/abhisek/lessonforge/internal/llm"
)

// llmEventRepo implements LLMEventRepo backed by ent and the global
// sequence counter.
type llmEventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

var _ llm.EventSink = (*llmEventRepo)(nil)

// Record appends one request event, assigning it the next global sequence
// number.
func (r *llmEventRepo) Record(ctx context.Context, data llm.RequestEvent) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	attempt := data.Attempt
	if attempt < 1 {
		attempt = 1
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetAttempt(attempt).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *llmEventRepo) Get(ctx context.Context, sequence int64) (*LLMEventRecord, error) {
	rec, err := r.client.LLMRequestEvent.Query().
		Where(llmrequestevent.Sequence(sequence)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM event %d: %w", sequence, err)
	}
	out := llmEventRecord(rec)
	return &out, nil
}

func (r *llmEventRepo) Recent(ctx context.Context, limit int) ([]LLMEventRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent LLM events: %w", err)
	}

	out := make([]LLMEventRecord, 0, len(rows))
	for _, rec := range rows {
		out = append(out, llmEventRecord(rec))
	}
	return out, nil
}

func llmEventRecord(rec *ent.LLMRequestEvent) LLMEventRecord {
	return LLMEventRecord{
		Sequence:  rec.Sequence,
		Timestamp: rec.Timestamp,
		RequestEvent: llm.RequestEvent{
			Provider:     rec.Provider,
			Model:        rec.Model,
			Purpose:      rec.Purpose,
			Attempt:      rec.Attempt,
			InputTokens:  rec.InputTokens,
			OutputTokens: rec.OutputTokens,
			LatencyMs:    rec.LatencyMs,
			Success:      rec.Success,
			ErrorMessage: rec.ErrorMessage,
			RequestBody:  rec.RequestBody,
			ResponseBody: rec.ResponseBody,
		},
	}
}

func (r *llmEventRepo) Totals(ctx context.Context) (*LLMTotals, error) {
	totals := &LLMTotals{ByModel: map[string]ModelUsage{}}

	var byModel []struct {
		Model  string `json:"model"`
		Count  int    `json:"count"`
		Input  int    `json:"input_tokens"`
		Output int    `json:"output_tokens"`
	}
	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldModel).
		Aggregate(
			ent.Count(),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "input_tokens"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "output_tokens"),
		).
		Scan(ctx, &byModel)
	if err != nil {
		return nil, fmt.Errorf("aggregate by model: %w", err)
	}

	for _, row := range byModel {
		totals.ByModel[row.Model] = ModelUsage{
			Requests:     row.Count,
			InputTokens:  row.Input,
			OutputTokens: row.Output,
		}
		totals.Requests += row.Count
		totals.InputTokens += row.Input
		totals.OutputTokens += row.Output
	}

	totals.Failures, err = r.client.LLMRequestEvent.Query().
		Where(llmrequestevent.Success(false)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count failures: %w", err)
	}

	return totals, nil
}

// sequenceCounter assigns the global monotonic sequence shared by all event
// types. Each event type lives in its own ent-managed table, so per-table
// auto-increment IDs cannot establish cross-type ordering; this counter can.
// Raw SQL because ent has no database-level atomic counter; the RETURNING
// clause makes the increment atomic, the mutex serializes this process.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}
