package store

import (
	"context"
	"fmt"

	"github.com/abhisek/lessonforge/ent"
	"github.com/abhisek/lessonforge/ent/transcriptrecord"
)

// transcriptRepo implements TranscriptRepo using the ent client.
type transcriptRepo struct {
	client *ent.Client
}

func (r *transcriptRepo) Save(ctx context.Context, t *StoredTranscript) error {
	create := r.client.TranscriptRecord.Create().
		SetText(t.Text).
		SetSource(t.Source).
		SetNillableConfidence(t.Confidence).
		SetLessonID(t.LessonID)
	if !t.CreatedAt.IsZero() {
		create.SetCreatedAt(t.CreatedAt)
	}

	rec, err := create.Save(ctx)
	if err != nil {
		return fmt.Errorf("save transcript: %w", err)
	}

	t.ID = rec.ID
	t.CreatedAt = rec.CreatedAt
	return nil
}

func (r *transcriptRepo) Get(ctx context.Context, id int) (*StoredTranscript, error) {
	rec, err := r.client.TranscriptRecord.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get transcript %d: %w", id, err)
	}
	out := storedTranscripts([]*ent.TranscriptRecord{rec})
	return &out[0], nil
}

func (r *transcriptRepo) Recent(ctx context.Context, limit int) ([]StoredTranscript, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := r.client.TranscriptRecord.Query().
		Order(ent.Desc(transcriptrecord.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent transcripts: %w", err)
	}
	return storedTranscripts(rows), nil
}

func (r *transcriptRepo) Search(ctx context.Context, text string, limit int) ([]StoredTranscript, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := r.client.TranscriptRecord.Query().
		Where(transcriptrecord.TextContainsFold(text)).
		Order(ent.Desc(transcriptrecord.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search transcripts: %w", err)
	}
	return storedTranscripts(rows), nil
}

func (r *transcriptRepo) ByLesson(ctx context.Context, lessonID string) ([]StoredTranscript, error) {
	rows, err := r.client.TranscriptRecord.Query().
		Where(transcriptrecord.LessonID(lessonID)).
		Order(ent.Asc(transcriptrecord.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query transcripts for %s: %w", lessonID, err)
	}
	return storedTranscripts(rows), nil
}

func storedTranscripts(rows []*ent.TranscriptRecord) []StoredTranscript {
	out := make([]StoredTranscript, 0, len(rows))
	for _, rec := range rows {
		out = append(out, StoredTranscript{
			ID:         rec.ID,
			Text:       rec.Text,
			Source:     rec.Source,
			Confidence: rec.Confidence,
			LessonID:   rec.LessonID,
			CreatedAt:  rec.CreatedAt,
		})
	}
	return out
}
