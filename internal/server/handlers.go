package server

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/lessonforge/internal/export"
	"github.com/abhisek/lessonforge/internal/intake"
	"github.com/abhisek/lessonforge/internal/pipeline"
	"github.com/abhisek/lessonforge/internal/resources"
	"github.com/abhisek/lessonforge/internal/store"
	"github.com/abhisek/lessonforge/internal/transcribe"
)

type handlers struct {
	coordinator *pipeline.Coordinator
	transcriber *transcribe.Adapter
	plans       store.PlanRepo
	transcripts store.TranscriptRepo
	tools       *toolRegistry
	log         *zap.SugaredLogger
}

// GET /api/health
func (h *handlers) health(c *gin.Context) {
	tools := h.tools.list()
	names := make([]string, 0, len(tools))
	for _, t := range tools {
		names = append(names, t.Name)
	}
	c.JSON(http.StatusOK, gin.H{
		"status":          "healthy",
		"available_tools": len(names),
		"tools":           names,
	})
}

// lessonRequest is the JSON body of POST /api/lessons. Text is optional;
// when absent the topic stands in as the generation transcript.
type lessonRequest struct {
	Topic                  string `json:"topic"`
	Subject                string `json:"subject"`
	GradeLevel             string `json:"grade_level"`
	SessionCount           int    `json:"session_count"`
	SessionDurationMinutes int    `json:"session_duration_minutes"`
	Text                   string `json:"text"`
}

// POST /api/lessons
func (h *handlers) createLesson(c *gin.Context) {
	var req lessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	text := req.Text
	if text == "" {
		text = req.Topic
	}

	plan, err := h.coordinator.Run(c.Request.Context(), transcribe.TextInput(text), intake.Metadata{
		Topic:                  req.Topic,
		Subject:                req.Subject,
		GradeLevel:             req.GradeLevel,
		SessionCount:           req.SessionCount,
		SessionDurationMinutes: req.SessionDurationMinutes,
	})
	if err != nil {
		h.log.Warnw("lesson generation failed", "topic", req.Topic, "error", err)
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	h.log.Infow("lesson generated", "lesson_id", plan.ID, "sessions", len(plan.Sessions))
	c.JSON(http.StatusCreated, gin.H{
		"plan":      plan,
		"resources": resources.Suggest(plan.Request.Topic, plan.Request.Subject, plan.Request.GradeLevel),
	})
}

// POST /api/transcribe
func (h *handlers) transcribeAudio(c *gin.Context) {
	file, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing audio file"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable audio file"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable audio file"})
		return
	}

	mime := file.Header.Get("Content-Type")
	transcript, err := h.transcriber.Transcribe(c.Request.Context(), transcribe.AudioInput(data, mime))
	if err != nil {
		h.log.Warnw("transcription failed", "filename", file.Filename, "error", err)
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	stored := &store.StoredTranscript{
		Text:       transcript.Text,
		Source:     string(transcript.Source),
		Confidence: transcript.Confidence,
	}
	if err := h.transcripts.Save(c.Request.Context(), stored); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         stored.ID,
		"transcript": transcript,
	})
}

// GET /api/lessons
func (h *handlers) listLessons(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	q := store.PlanQuery{
		Topic:      c.Query("topic"),
		Subject:    c.Query("subject"),
		GradeLevel: c.Query("grade_level"),
		Limit:      limit,
	}

	var (
		summaries []store.PlanSummary
		err       error
	)
	if q.Topic == "" && q.Subject == "" && q.GradeLevel == "" {
		summaries, err = h.plans.Recent(c.Request.Context(), limit)
	} else {
		summaries, err = h.plans.Search(c.Request.Context(), q)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(summaries), "lesson_plans": summaries})
}

// GET /api/lessons/:id
func (h *handlers) getLesson(c *gin.Context) {
	id := c.Param("id")
	plan, err := h.plans.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if plan == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("lesson plan %s not found", id)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

// DELETE /api/lessons/:id
func (h *handlers) deleteLesson(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.plans.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("lesson plan %s not found", id)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true, "lesson_id": id})
}

// POST /download/:id
func (h *handlers) downloadLesson(c *gin.Context) {
	id := c.Param("id")

	var body struct {
		Format string `json:"format"`
	}
	// An empty or absent body means the default format.
	_ = c.ShouldBindJSON(&body)
	if body.Format == "" {
		body.Format = string(export.FormatDocument)
	}

	format, err := export.ParseFormat(body.Format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.plans.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if plan == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("lesson plan %s not found", id)})
		return
	}

	artifact, err := h.coordinator.Export(plan, format)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", artifact.Filename))
	c.Data(http.StatusOK, format.MediaType(), artifact.Bytes)
}

// GET /tools
func (h *handlers) listTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "tools": h.tools.list()})
}

// toolCall is the JSON body of POST /tools/execute.
type toolCall struct {
	Tool      string         `json:"tool"`
	Arguments map[string]any `json:"arguments"`
}

// POST /tools/execute
func (h *handlers) executeTool(c *gin.Context) {
	var call toolCall
	if err := c.ShouldBindJSON(&call); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	result := h.tools.execute(c.Request.Context(), call.Tool, call.Arguments)
	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}
	c.JSON(status, result)
}
