package server

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/lessonforge/internal/intake"
	"github.com/abhisek/lessonforge/internal/lessonplan"
	"github.com/abhisek/lessonforge/internal/llm"
	"github.com/abhisek/lessonforge/internal/pipeline"
	"github.com/abhisek/lessonforge/internal/plangen"
	"github.com/abhisek/lessonforge/internal/store"
	"github.com/abhisek/lessonforge/internal/transcribe"
)

func newTestRegistry(t *testing.T) (*toolRegistry, *store.Store) {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	coordinator := pipeline.New(
		transcribe.NewAdapter(nil),
		plangen.NewService(llm.NewMockProvider(), plangen.DefaultConfig()),
		lessonplan.NewBuilder(),
		intake.DefaultLimits(),
		st.PlanRepo(),
	)
	return newToolRegistry(coordinator, st.PlanRepo(), st.TranscriptRepo()), st
}

func registryPlan(id string) *lessonplan.LessonPlan {
	return &lessonplan.LessonPlan{
		ID:        id,
		Title:     "Fractions for Grade 5",
		CreatedAt: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
		Request: intake.GenerationRequest{
			Topic: "Fractions", Subject: "Math", GradeLevel: "5",
			SessionCount: 1, SessionDurationMinutes: 40,
			Transcript: transcribe.Transcript{Text: "Fractions", Source: transcribe.SourceText},
		},
		Sessions: []lessonplan.Session{
			{Index: 1, Title: "Understanding Halves", Objectives: []string{"Recognize one half"}},
		},
	}
}

func TestToolRegistry_ListOrder(t *testing.T) {
	reg, _ := newTestRegistry(t)

	want := []string{
		"generate_lesson_plan",
		"export_lesson_plan",
		"get_lesson_plan",
		"get_lesson_sessions",
		"search_lesson_plans",
		"delete_lesson_plan",
		"get_transcript",
		"search_transcripts",
		"get_recent_transcripts",
		"get_statistics",
	}

	infos := reg.list()
	require.Len(t, infos, len(want))
	for i, info := range infos {
		require.Equal(t, want[i], info.Name)
		require.NotEmpty(t, info.Description)
	}
}

func TestToolRegistry_UnknownTool(t *testing.T) {
	reg, _ := newTestRegistry(t)

	res := reg.execute(context.Background(), "does_not_exist", nil)
	require.False(t, res.Success)
	require.Contains(t, res.Error, "unknown tool")
}

func TestToolRegistry_RequiredArguments(t *testing.T) {
	reg, _ := newTestRegistry(t)

	res := reg.execute(context.Background(), "get_lesson_plan", map[string]any{})
	require.False(t, res.Success)
	require.Contains(t, res.Error, "lesson_id is required")

	res = reg.execute(context.Background(), "search_transcripts", map[string]any{})
	require.False(t, res.Success)
	require.Contains(t, res.Error, "search_term is required")
}

func TestToolRegistry_PlanTools(t *testing.T) {
	reg, st := newTestRegistry(t)
	ctx := context.Background()
	require.NoError(t, st.PlanRepo().Save(ctx, registryPlan("abcd1234")))

	res := reg.execute(ctx, "get_lesson_plan", map[string]any{"lesson_id": "abcd1234"})
	require.True(t, res.Success, res.Error)
	plan := res.Data.(*lessonplan.LessonPlan)
	require.Equal(t, "Fractions for Grade 5", plan.Title)

	res = reg.execute(ctx, "get_lesson_sessions", map[string]any{"lesson_id": "abcd1234"})
	require.True(t, res.Success, res.Error)
	sessions := res.Data.(map[string]any)
	require.EqualValues(t, 1, sessions["total_sessions"])

	// JSON decoding hands numbers over as float64.
	res = reg.execute(ctx, "search_lesson_plans", map[string]any{"subject": "math", "limit": float64(5)})
	require.True(t, res.Success, res.Error)
	found := res.Data.(map[string]any)
	require.EqualValues(t, 1, found["count"])

	res = reg.execute(ctx, "export_lesson_plan", map[string]any{"lesson_id": "abcd1234", "format": "printable"})
	require.True(t, res.Success, res.Error)
	artifact := res.Data.(map[string]any)
	require.Equal(t, "lesson_plan_abcd1234.html", artifact["filename"])
	page, err := base64.StdEncoding.DecodeString(artifact["content_base64"].(string))
	require.NoError(t, err)
	require.Contains(t, string(page), "Understanding Halves")

	res = reg.execute(ctx, "delete_lesson_plan", map[string]any{"lesson_id": "abcd1234"})
	require.True(t, res.Success, res.Error)

	res = reg.execute(ctx, "get_lesson_plan", map[string]any{"lesson_id": "abcd1234"})
	require.False(t, res.Success)
	require.Contains(t, res.Error, "not found")
}

func TestToolRegistry_TranscriptTools(t *testing.T) {
	reg, st := newTestRegistry(t)
	ctx := context.Background()

	saved := &store.StoredTranscript{Text: "Fractions for grade five", Source: "audio"}
	require.NoError(t, st.TranscriptRepo().Save(ctx, saved))

	res := reg.execute(ctx, "get_transcript", map[string]any{"transcript_id": float64(saved.ID)})
	require.True(t, res.Success, res.Error)
	tr := res.Data.(*store.StoredTranscript)
	require.Equal(t, "Fractions for grade five", tr.Text)

	res = reg.execute(ctx, "search_transcripts", map[string]any{"search_term": "fractions"})
	require.True(t, res.Success, res.Error)
	found := res.Data.(map[string]any)
	require.EqualValues(t, 1, found["count"])

	res = reg.execute(ctx, "get_recent_transcripts", nil)
	require.True(t, res.Success, res.Error)
	recent := res.Data.(map[string]any)
	require.EqualValues(t, 1, recent["count"])

	res = reg.execute(ctx, "get_transcript", map[string]any{"transcript_id": float64(9999)})
	require.False(t, res.Success)
	require.Contains(t, res.Error, "not found")
}

func TestToolRegistry_Statistics(t *testing.T) {
	reg, st := newTestRegistry(t)
	ctx := context.Background()
	require.NoError(t, st.PlanRepo().Save(ctx, registryPlan("abcd1234")))

	res := reg.execute(ctx, "get_statistics", nil)
	require.True(t, res.Success, res.Error)
	stats := res.Data.(*store.Statistics)
	require.Equal(t, 1, stats.TotalPlans)
	require.Equal(t, 1, stats.TotalSessions)
}

func TestIntArg(t *testing.T) {
	args := map[string]any{
		"float":  float64(7),
		"int":    3,
		"string": "12",
		"bad":    "not-a-number",
	}

	require.Equal(t, 7, intArg(args, "float", 0))
	require.Equal(t, 3, intArg(args, "int", 0))
	require.Equal(t, 12, intArg(args, "string", 0))
	require.Equal(t, 5, intArg(args, "bad", 5))
	require.Equal(t, 5, intArg(args, "missing", 5))
}
