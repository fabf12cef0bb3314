package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/lessonforge/internal/export"
	"github.com/abhisek/lessonforge/internal/intake"
	"github.com/abhisek/lessonforge/internal/lessonplan"
	"github.com/abhisek/lessonforge/internal/llm"
	"github.com/abhisek/lessonforge/internal/pipeline"
	"github.com/abhisek/lessonforge/internal/plangen"
	"github.com/abhisek/lessonforge/internal/store"
	"github.com/abhisek/lessonforge/internal/transcribe"
)

const fractionsPlan = `{
	"title": "Fractions for Grade 5",
	"sessions": [
		{
			"title": "Understanding Halves",
			"objectives": ["Recognize one half of a shape"],
			"activities": [{"title": "Paper folding", "description": "Fold paper into halves.", "estimated_minutes": 20}]
		},
		{
			"title": "Understanding Quarters",
			"objectives": ["Recognize one quarter of a shape"],
			"activities": [{"title": "Pizza slices", "description": "Divide a pizza drawing into quarters.", "estimated_minutes": 20}]
		}
	]
}`

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer wires a Server over an in-memory store and canned LLM
// responses. A nil stt leaves the deployment text-only.
func newTestServer(t *testing.T, stt llm.Transcriber, responses ...llm.MockResponse) (*Server, *store.Store) {
	t.Helper()

	st, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	provider := llm.WithRetry(llm.NewMockProvider(responses...), llm.RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     4 * time.Millisecond,
		Multiplier:  2.0,
	})
	adapter := transcribe.NewAdapter(stt)

	coordinator := pipeline.New(
		adapter,
		plangen.NewService(provider, plangen.DefaultConfig()),
		lessonplan.NewBuilder(),
		intake.DefaultLimits(),
		st.PlanRepo(),
	)

	srv, err := New(Config{Mode: "dev"}, Deps{
		Coordinator: coordinator,
		Transcriber: adapter,
		Plans:       st.PlanRepo(),
		Transcripts: st.TranscriptRepo(),
		Log:         zap.NewNop().Sugar(),
	})
	require.NoError(t, err)
	return srv, st
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m), "body: %s", w.Body.String())
	return m
}

func fractionsRequest() map[string]any {
	return map[string]any{
		"topic":                    "Fractions",
		"subject":                  "Math",
		"grade_level":              "5",
		"session_count":            2,
		"session_duration_minutes": 40,
	}
}

func createLesson(t *testing.T, srv *Server, req map[string]any) string {
	t.Helper()
	w := doJSON(t, srv, http.MethodPost, "/api/lessons", req)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	body := decodeBody(t, w)
	plan := body["plan"].(map[string]any)
	return plan["id"].(string)
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	w := doJSON(t, srv, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	require.Equal(t, "healthy", body["status"])
	require.EqualValues(t, 10, body["available_tools"])
}

func TestCreateLesson(t *testing.T) {
	srv, st := newTestServer(t, nil, llm.MockResponse{Content: json.RawMessage(fractionsPlan)})

	w := doJSON(t, srv, http.MethodPost, "/api/lessons", fractionsRequest())
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	body := decodeBody(t, w)
	plan := body["plan"].(map[string]any)
	id := plan["id"].(string)
	require.Len(t, id, 8)
	require.Len(t, plan["sessions"], 2)

	res := body["resources"].(map[string]any)
	require.NotEmpty(t, res["videos"])
	require.NotEmpty(t, res["web"])

	stored, err := st.PlanRepo().Get(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, "Fractions for Grade 5", stored.Title)
}

func TestCreateLesson_ValidationError(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	req := fractionsRequest()
	req["session_count"] = 0

	w := doJSON(t, srv, http.MethodPost, "/api/lessons", req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, decodeBody(t, w)["error"], "sessionCount")
}

func TestCreateLesson_ProviderExhausted(t *testing.T) {
	// An empty response queue makes every attempt fail as unavailable.
	srv, _ := newTestServer(t, nil)

	w := doJSON(t, srv, http.MethodPost, "/api/lessons", fractionsRequest())
	require.Equal(t, http.StatusBadGateway, w.Code)
}

func TestCreateLesson_SchemaInvalid(t *testing.T) {
	noTitle := `{"title": "Fractions", "sessions": [
		{"title": "", "objectives": ["One"]},
		{"title": "Quarters", "objectives": ["Two"]}
	]}`
	srv, _ := newTestServer(t, nil,
		llm.MockResponse{Content: json.RawMessage(noTitle)},
		llm.MockResponse{Content: json.RawMessage(noTitle)},
	)

	w := doJSON(t, srv, http.MethodPost, "/api/lessons", fractionsRequest())
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestTranscribe(t *testing.T) {
	conf := 0.93
	stt := llm.NewMockTranscriber(llm.MockTranscription{Text: "Fractions for grade five", Confidence: &conf})
	srv, st := newTestServer(t, stt)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("audio", "lesson.wav")
	require.NoError(t, err)
	_, err = part.Write([]byte("riff-data"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	srv.Engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	body := decodeBody(t, w)
	tr := body["transcript"].(map[string]any)
	require.Equal(t, "Fractions for grade five", tr["text"])
	require.Equal(t, "audio", tr["source"])

	saved, err := st.TranscriptRepo().Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, saved, 1)
}

func TestTranscribe_NoBackend(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("audio", "lesson.wav")
	require.NoError(t, err)
	_, err = part.Write([]byte("riff-data"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	srv.Engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadGateway, w.Code)
}

func TestListLessons(t *testing.T) {
	srv, _ := newTestServer(t, nil,
		llm.MockResponse{Content: json.RawMessage(fractionsPlan)},
		llm.MockResponse{Content: json.RawMessage(fractionsPlan)},
	)

	createLesson(t, srv, fractionsRequest())

	science := fractionsRequest()
	science["topic"] = "Photosynthesis"
	science["subject"] = "Science"
	createLesson(t, srv, science)

	w := doJSON(t, srv, http.MethodGet, "/api/lessons", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 2, decodeBody(t, w)["count"])

	w = doJSON(t, srv, http.MethodGet, "/api/lessons?subject=science", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.EqualValues(t, 1, body["count"])
	plansList := body["lesson_plans"].([]any)
	first := plansList[0].(map[string]any)
	require.Equal(t, "Photosynthesis", first["topic"])
}

func TestGetLesson_NotFound(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	w := doJSON(t, srv, http.MethodGet, "/api/lessons/nope0000", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteLesson(t *testing.T) {
	srv, _ := newTestServer(t, nil, llm.MockResponse{Content: json.RawMessage(fractionsPlan)})
	id := createLesson(t, srv, fractionsRequest())

	w := doJSON(t, srv, http.MethodDelete, "/api/lessons/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, decodeBody(t, w)["deleted"])

	w = doJSON(t, srv, http.MethodDelete, "/api/lessons/"+id, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownload(t *testing.T) {
	srv, _ := newTestServer(t, nil, llm.MockResponse{Content: json.RawMessage(fractionsPlan)})
	id := createLesson(t, srv, fractionsRequest())

	w := doJSON(t, srv, http.MethodPost, "/download/"+id, map[string]any{"format": "printable"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Disposition"), "lesson_plan_"+id+".html")
	require.Contains(t, w.Body.String(), "Understanding Halves")

	// No body means the default document format.
	w = doJSON(t, srv, http.MethodPost, "/download/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "officedocument")
	require.Contains(t, w.Header().Get("Content-Disposition"), ".docx")
}

func TestDownload_Errors(t *testing.T) {
	srv, _ := newTestServer(t, nil, llm.MockResponse{Content: json.RawMessage(fractionsPlan)})
	id := createLesson(t, srv, fractionsRequest())

	w := doJSON(t, srv, http.MethodPost, "/download/nope0000", map[string]any{"format": "printable"})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, srv, http.MethodPost, "/download/"+id, map[string]any{"format": "pdf"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, decodeBody(t, w)["error"], "unknown export format")
}

func TestToolsEndpoints(t *testing.T) {
	srv, _ := newTestServer(t, nil, llm.MockResponse{Content: json.RawMessage(fractionsPlan)})

	w := doJSON(t, srv, http.MethodGet, "/tools", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, true, body["success"])
	tools := body["tools"].([]any)
	require.Len(t, tools, 10)
	first := tools[0].(map[string]any)
	require.Equal(t, "generate_lesson_plan", first["name"])

	w = doJSON(t, srv, http.MethodPost, "/tools/execute", map[string]any{
		"tool": "generate_lesson_plan",
		"arguments": map[string]any{
			"topic":                    "Fractions",
			"subject":                  "Math",
			"grade_level":              "5",
			"session_count":            2,
			"session_duration_minutes": 40,
		},
	})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	body = decodeBody(t, w)
	require.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	require.Len(t, data["sessions"], 2)

	w = doJSON(t, srv, http.MethodPost, "/tools/execute", map[string]any{
		"tool": "does_not_exist", "arguments": map[string]any{},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body = decodeBody(t, w)
	require.Equal(t, false, body["success"])
	require.Contains(t, body["error"], "unknown tool")
}

func TestCORSPreflights(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/lessons", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	srv.Engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &intake.ValidationError{Field: "topic", Message: "must not be empty"}, http.StatusBadRequest},
		{"external", &transcribe.ExternalServiceError{Stage: "transcription"}, http.StatusBadGateway},
		{"exhausted", &plangen.GenerationError{Kind: plangen.KindExhausted, Stage: "generation"}, http.StatusBadGateway},
		{"schema invalid", &plangen.GenerationError{Kind: plangen.KindSchemaInvalid, Stage: "generation"}, http.StatusUnprocessableEntity},
		{"empty plan", &export.EmptyPlanError{PlanID: "abcd1234"}, http.StatusConflict},
		{"invariant", &lessonplan.InternalInvariantError{Stage: "build", Message: "boom"}, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
