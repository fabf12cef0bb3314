package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/lessonforge/ent"
	"github.com/abhisek/lessonforge/ent/lessonplanrecord"
	"github.com/abhisek/lessonforge/ent/lessonsessionrecord"
	"github.com/abhisek/lessonforge/ent/transcriptrecord"
	"github.com/abhisek/lessonforge/internal/lessonplan"
)

const defaultListLimit = 20

// planRepo implements PlanRepo using the ent client.
type planRepo struct {
	client *ent.Client
}

func (r *planRepo) Save(ctx context.Context, plan *lessonplan.LessonPlan) error {
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	req := plan.Request
	_, err = tx.LessonPlanRecord.Create().
		SetLessonID(plan.ID).
		SetTitle(plan.Title).
		SetTopic(req.Topic).
		SetSubject(req.Subject).
		SetGradeLevel(req.GradeLevel).
		SetSessionCount(req.SessionCount).
		SetSessionDurationMinutes(req.SessionDurationMinutes).
		SetPlanJSON(string(planJSON)).
		SetCreatedAt(plan.CreatedAt).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("save plan record: %w", err)
	}

	for _, s := range plan.Sessions {
		create := tx.LessonSessionRecord.Create().
			SetLessonID(plan.ID).
			SetSessionNumber(s.Index).
			SetTitle(s.Title).
			SetObjectivesJSON(mustJSON(s.Objectives)).
			SetActivitiesJSON(mustJSON(s.Activities))
		if s.Worksheet != nil {
			create.SetWorksheetJSON(mustJSON(s.Worksheet))
		}
		if _, err := create.Save(ctx); err != nil {
			tx.Rollback()
			return fmt.Errorf("save session %d: %w", s.Index, err)
		}
	}

	if req.Transcript.Text != "" {
		_, err = tx.TranscriptRecord.Create().
			SetText(req.Transcript.Text).
			SetSource(string(req.Transcript.Source)).
			SetNillableConfidence(req.Transcript.Confidence).
			SetLessonID(plan.ID).
			SetCreatedAt(plan.CreatedAt).
			Save(ctx)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("save transcript: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *planRepo) Get(ctx context.Context, lessonID string) (*lessonplan.LessonPlan, error) {
	rec, err := r.client.LessonPlanRecord.Query().
		Where(lessonplanrecord.LessonID(lessonID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query plan %s: %w", lessonID, err)
	}

	var plan lessonplan.LessonPlan
	if err := json.Unmarshal([]byte(rec.PlanJSON), &plan); err != nil {
		return nil, fmt.Errorf("decode plan %s: %w", lessonID, err)
	}
	return &plan, nil
}

func (r *planRepo) Sessions(ctx context.Context, lessonID string) ([]SessionDetail, error) {
	rows, err := r.client.LessonSessionRecord.Query().
		Where(lessonsessionrecord.LessonID(lessonID)).
		Order(ent.Asc(lessonsessionrecord.FieldSessionNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions %s: %w", lessonID, err)
	}

	details := make([]SessionDetail, 0, len(rows))
	for _, row := range rows {
		d := SessionDetail{
			LessonID:      row.LessonID,
			SessionNumber: row.SessionNumber,
			Title:         row.Title,
		}
		if err := json.Unmarshal([]byte(row.ObjectivesJSON), &d.Objectives); err != nil {
			return nil, fmt.Errorf("decode objectives %s/%d: %w", lessonID, row.SessionNumber, err)
		}
		if err := json.Unmarshal([]byte(row.ActivitiesJSON), &d.Activities); err != nil {
			return nil, fmt.Errorf("decode activities %s/%d: %w", lessonID, row.SessionNumber, err)
		}
		if row.WorksheetJSON != "" {
			d.Worksheet = &lessonplan.Worksheet{}
			if err := json.Unmarshal([]byte(row.WorksheetJSON), d.Worksheet); err != nil {
				return nil, fmt.Errorf("decode worksheet %s/%d: %w", lessonID, row.SessionNumber, err)
			}
		}
		details = append(details, d)
	}
	return details, nil
}

func (r *planRepo) Recent(ctx context.Context, limit int) ([]PlanSummary, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := r.client.LessonPlanRecord.Query().
		Order(ent.Desc(lessonplanrecord.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent plans: %w", err)
	}
	return summaries(rows), nil
}

func (r *planRepo) Search(ctx context.Context, q PlanQuery) ([]PlanSummary, error) {
	query := r.client.LessonPlanRecord.Query()
	if q.Topic != "" {
		query = query.Where(lessonplanrecord.TopicContainsFold(q.Topic))
	}
	if q.Subject != "" {
		query = query.Where(lessonplanrecord.SubjectEqualFold(q.Subject))
	}
	if q.GradeLevel != "" {
		query = query.Where(lessonplanrecord.GradeLevelEqualFold(q.GradeLevel))
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := query.
		Order(ent.Desc(lessonplanrecord.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search plans: %w", err)
	}
	return summaries(rows), nil
}

func (r *planRepo) Delete(ctx context.Context, lessonID string) (bool, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}

	n, err := tx.LessonPlanRecord.Delete().
		Where(lessonplanrecord.LessonID(lessonID)).
		Exec(ctx)
	if err != nil {
		tx.Rollback()
		return false, fmt.Errorf("delete plan %s: %w", lessonID, err)
	}

	if _, err := tx.LessonSessionRecord.Delete().
		Where(lessonsessionrecord.LessonID(lessonID)).
		Exec(ctx); err != nil {
		tx.Rollback()
		return false, fmt.Errorf("delete sessions %s: %w", lessonID, err)
	}

	// Transcripts stay as history; they just lose the link.
	if _, err := tx.TranscriptRecord.Update().
		Where(transcriptrecord.LessonID(lessonID)).
		SetLessonID("").
		Save(ctx); err != nil {
		tx.Rollback()
		return false, fmt.Errorf("unlink transcripts %s: %w", lessonID, err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}
	return n > 0, nil
}

func (r *planRepo) Statistics(ctx context.Context) (*Statistics, error) {
	stats := &Statistics{SubjectCounts: map[string]int{}}

	var err error
	if stats.TotalPlans, err = r.client.LessonPlanRecord.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("count plans: %w", err)
	}
	if stats.TotalSessions, err = r.client.LessonSessionRecord.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}
	if stats.TotalTranscripts, err = r.client.TranscriptRecord.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("count transcripts: %w", err)
	}

	var bySubject []struct {
		Subject string `json:"subject"`
		Count   int    `json:"count"`
	}
	err = r.client.LessonPlanRecord.Query().
		GroupBy(lessonplanrecord.FieldSubject).
		Aggregate(ent.Count()).
		Scan(ctx, &bySubject)
	if err != nil {
		return nil, fmt.Errorf("group by subject: %w", err)
	}
	for _, row := range bySubject {
		stats.SubjectCounts[row.Subject] = row.Count
	}

	latest, err := r.client.LessonPlanRecord.Query().
		Order(ent.Desc(lessonplanrecord.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("query latest plan: %w", err)
		}
	} else {
		t := latest.CreatedAt
		stats.LastCreatedAt = &t
	}

	return stats, nil
}

func summaries(rows []*ent.LessonPlanRecord) []PlanSummary {
	out := make([]PlanSummary, 0, len(rows))
	for _, rec := range rows {
		out = append(out, PlanSummary{
			LessonID:     rec.LessonID,
			Title:        rec.Title,
			Topic:        rec.Topic,
			Subject:      rec.Subject,
			GradeLevel:   rec.GradeLevel,
			SessionCount: rec.SessionCount,
			CreatedAt:    rec.CreatedAt,
		})
	}
	return out
}

// mustJSON marshals values whose encoding cannot fail (slices and structs
// of plain data).
func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("store: marshal %T: %v", v, err))
	}
	return string(b)
}
