package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/lessonforge/internal/intake"
	"github.com/abhisek/lessonforge/internal/lessonplan"
	"github.com/abhisek/lessonforge/internal/llm"
	"github.com/abhisek/lessonforge/internal/transcribe"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func storedPlan(id, topic, subject, grade string, sessions int) *lessonplan.LessonPlan {
	plan := &lessonplan.LessonPlan{
		ID:        id,
		Title:     topic + " Plan",
		CreatedAt: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
		Request: intake.GenerationRequest{
			Topic:                  topic,
			Subject:                subject,
			GradeLevel:             grade,
			SessionCount:           sessions,
			SessionDurationMinutes: 40,
			Transcript: transcribe.Transcript{
				Text:   topic,
				Source: transcribe.SourceText,
			},
		},
	}
	for i := 1; i <= sessions; i++ {
		s := lessonplan.Session{
			Index:      i,
			Title:      fmt.Sprintf("Part %d", i),
			Objectives: []string{"Understand the idea"},
			Activities: []lessonplan.Activity{
				{Title: "Warm-up", Description: "Quick recap.", EstimatedMinutes: 10},
			},
		}
		if i == 1 {
			s.Worksheet = &lessonplan.Worksheet{Questions: []lessonplan.Question{
				{Prompt: "Try one.", AnswerKeyHint: "Easy"},
			}}
		}
		plan.Sessions = append(plan.Sessions, s)
	}
	return plan
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		require.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestPlanSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	want := storedPlan("abcd1234", "Fractions", "Math", "5", 2)
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Get(ctx, "abcd1234")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, want.ID, got.ID)
	require.Equal(t, want.Title, got.Title)
	require.Len(t, got.Sessions, 2)
	require.Equal(t, want.Sessions[0].Worksheet, got.Sessions[0].Worksheet)
	require.True(t, want.CreatedAt.Equal(got.CreatedAt))

	missing, err := repo.Get(ctx, "nope0000")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPlanSessions(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, storedPlan("abcd1234", "Fractions", "Math", "5", 3)))

	sessions, err := repo.Sessions(ctx, "abcd1234")
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	for i, d := range sessions {
		require.Equal(t, i+1, d.SessionNumber)
		require.Equal(t, []string{"Understand the idea"}, d.Objectives)
		require.Len(t, d.Activities, 1)
	}
	require.NotNil(t, sessions[0].Worksheet)
	require.Nil(t, sessions[1].Worksheet)
}

func TestPlanRecentAndSearch(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	plans := []*lessonplan.LessonPlan{
		storedPlan("plan0001", "Fractions", "Math", "5", 1),
		storedPlan("plan0002", "Photosynthesis", "Science", "7", 1),
		storedPlan("plan0003", "Decimal Fractions", "Math", "6", 1),
	}
	for i, p := range plans {
		p.CreatedAt = p.CreatedAt.Add(time.Duration(i) * time.Hour)
		require.NoError(t, repo.Save(ctx, p))
	}

	recent, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Equal(t, "plan0003", recent[0].LessonID)
	require.Equal(t, "plan0002", recent[1].LessonID)

	math, err := repo.Search(ctx, PlanQuery{Subject: "math"})
	require.NoError(t, err)
	require.Len(t, math, 2)

	fractions, err := repo.Search(ctx, PlanQuery{Topic: "fraction"})
	require.NoError(t, err)
	require.Len(t, fractions, 2)

	grade7, err := repo.Search(ctx, PlanQuery{GradeLevel: "7"})
	require.NoError(t, err)
	require.Len(t, grade7, 1)
	require.Equal(t, "plan0002", grade7[0].LessonID)
}

func TestPlanDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, storedPlan("abcd1234", "Fractions", "Math", "5", 2)))

	deleted, err := repo.Delete(ctx, "abcd1234")
	require.NoError(t, err)
	require.True(t, deleted)

	got, err := repo.Get(ctx, "abcd1234")
	require.NoError(t, err)
	require.Nil(t, got)

	sessions, err := repo.Sessions(ctx, "abcd1234")
	require.NoError(t, err)
	require.Empty(t, sessions)

	// The transcript survives, unlinked.
	orphans, err := s.TranscriptRepo().Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	require.Empty(t, orphans[0].LessonID)

	deleted, err = repo.Delete(ctx, "abcd1234")
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestStatistics(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	stats, err := repo.Statistics(ctx)
	require.NoError(t, err)
	require.Zero(t, stats.TotalPlans)
	require.Nil(t, stats.LastCreatedAt)

	require.NoError(t, repo.Save(ctx, storedPlan("plan0001", "Fractions", "Math", "5", 2)))
	require.NoError(t, repo.Save(ctx, storedPlan("plan0002", "Photosynthesis", "Science", "7", 3)))

	stats, err = repo.Statistics(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, stats.TotalPlans)
	require.Equal(t, 5, stats.TotalSessions)
	require.Equal(t, 2, stats.TotalTranscripts)
	require.Equal(t, map[string]int{"Math": 1, "Science": 1}, stats.SubjectCounts)
	require.NotNil(t, stats.LastCreatedAt)
}

func TestTranscriptRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.TranscriptRepo()
	ctx := context.Background()

	conf := 0.9
	first := &StoredTranscript{Text: "Fractions for grade five", Source: "audio", Confidence: &conf}
	require.NoError(t, repo.Save(ctx, first))
	require.NotZero(t, first.ID)
	require.False(t, first.CreatedAt.IsZero())

	second := &StoredTranscript{Text: "Photosynthesis basics", Source: "text", LessonID: "plan0002"}
	require.NoError(t, repo.Save(ctx, second))

	got, err := repo.Get(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Fractions for grade five", got.Text)

	missing, err := repo.Get(ctx, 9999)
	require.NoError(t, err)
	require.Nil(t, missing)

	recent, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	found, err := repo.Search(ctx, "fractions", 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, first.ID, found[0].ID)
	require.NotNil(t, found[0].Confidence)
	require.InDelta(t, 0.9, *found[0].Confidence, 1e-9)

	linked, err := repo.ByLesson(ctx, "plan0002")
	require.NoError(t, err)
	require.Len(t, linked, 1)
	require.Equal(t, "Photosynthesis basics", linked[0].Text)
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.LLMEventRepo()
	ctx := context.Background()

	events := []llm.RequestEvent{
		{Provider: "groq", Model: "llama-3.3-70b-versatile", Purpose: "plan.generate", Attempt: 1, InputTokens: 100, OutputTokens: 400, LatencyMs: 900, Success: true},
		{Provider: "groq", Model: "llama-3.3-70b-versatile", Purpose: "plan.repair", Attempt: 1, InputTokens: 150, OutputTokens: 420, LatencyMs: 800, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "plan.generate", Attempt: 2, InputTokens: 90, OutputTokens: 0, LatencyMs: 1200, Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		require.NoError(t, repo.Record(ctx, e))
	}

	recent, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Greater(t, recent[0].Sequence, recent[1].Sequence)
	require.Equal(t, "anthropic", recent[0].Provider)
	require.Equal(t, 2, recent[0].Attempt)

	got, err := repo.Get(ctx, recent[1].Sequence)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "plan.repair", got.Purpose)

	missing, err := repo.Get(ctx, 9999)
	require.NoError(t, err)
	require.Nil(t, missing)

	totals, err := repo.Totals(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, totals.Requests)
	require.Equal(t, 1, totals.Failures)
	require.Equal(t, 340, totals.InputTokens)
	require.Equal(t, 820, totals.OutputTokens)
	require.Equal(t, 2, totals.ByModel["llama-3.3-70b-versatile"].Requests)
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	require.NoError(t, err)

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		require.NoError(t, err)
		seqs = append(seqs, seq)
	}

	// Monotonically increasing starting from 1.
	for i, seq := range seqs {
		require.Equal(t, int64(i+1), seq)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{
		"lesson_plan_records",
		"lesson_session_records",
		"transcript_records",
		"llm_request_events",
	} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s", table)
		require.Equal(t, table, name)
	}
}
