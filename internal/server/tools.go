package server

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/lessonforge/internal/export"
	"github.com/abhisek/lessonforge/internal/intake"
	"github.com/abhisek/lessonforge/internal/pipeline"
	"github.com/abhisek/lessonforge/internal/store"
	"github.com/abhisek/lessonforge/internal/transcribe"
)

// toolParam describes one argument of a tool.
type toolParam struct {
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// toolInfo is the listable surface of a tool.
type toolInfo struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Parameters  map[string]toolParam `json:"parameters"`
}

// toolResult is the execution envelope every tool call returns.
type toolResult struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Error   string `json:"error,omitempty"`
}

type toolFunc func(ctx context.Context, args map[string]any) (any, error)

type tool struct {
	toolInfo
	run toolFunc
}

// toolRegistry dispatches named tool calls to thin wrappers over the
// coordinator and the repositories. Tools never add logic of their own;
// anything a tool can do, a REST route does identically.
type toolRegistry struct {
	tools map[string]tool
	order []string
}

func newToolRegistry(coordinator *pipeline.Coordinator, plans store.PlanRepo, transcripts store.TranscriptRepo) *toolRegistry {
	r := &toolRegistry{tools: map[string]tool{}}

	r.add(toolInfo{
		Name:        "generate_lesson_plan",
		Description: "Generate and store a lesson plan",
		Parameters: map[string]toolParam{
			"topic":                    {Type: "string", Required: true},
			"subject":                  {Type: "string", Required: true},
			"grade_level":              {Type: "string", Required: true},
			"session_count":            {Type: "integer", Required: true},
			"session_duration_minutes": {Type: "integer", Required: true},
			"text":                     {Type: "string", Required: false},
		},
	}, func(ctx context.Context, args map[string]any) (any, error) {
		meta := intake.Metadata{
			Topic:                  stringArg(args, "topic"),
			Subject:                stringArg(args, "subject"),
			GradeLevel:             stringArg(args, "grade_level"),
			SessionCount:           intArg(args, "session_count", 0),
			SessionDurationMinutes: intArg(args, "session_duration_minutes", 0),
		}
		text := stringArg(args, "text")
		if text == "" {
			text = meta.Topic
		}
		plan, err := coordinator.Run(ctx, transcribe.TextInput(text), meta)
		if err != nil {
			return nil, err
		}
		return plan, nil
	})

	r.add(toolInfo{
		Name:        "export_lesson_plan",
		Description: "Render a stored lesson plan into a downloadable artifact",
		Parameters: map[string]toolParam{
			"lesson_id": {Type: "string", Required: true},
			"format":    {Type: "string", Required: false},
		},
	}, func(ctx context.Context, args map[string]any) (any, error) {
		id := stringArg(args, "lesson_id")
		if id == "" {
			return nil, fmt.Errorf("lesson_id is required")
		}
		raw := stringArg(args, "format")
		if raw == "" {
			raw = string(export.FormatDocument)
		}
		format, err := export.ParseFormat(raw)
		if err != nil {
			return nil, err
		}
		plan, err := plans.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if plan == nil {
			return nil, fmt.Errorf("lesson plan %s not found", id)
		}
		artifact, err := coordinator.Export(plan, format)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"lesson_id":      id,
			"filename":       artifact.Filename,
			"media_type":     format.MediaType(),
			"content_base64": base64.StdEncoding.EncodeToString(artifact.Bytes),
		}, nil
	})

	r.add(toolInfo{
		Name:        "get_lesson_plan",
		Description: "Retrieve a lesson plan by ID",
		Parameters: map[string]toolParam{
			"lesson_id": {Type: "string", Required: true},
		},
	}, func(ctx context.Context, args map[string]any) (any, error) {
		id := stringArg(args, "lesson_id")
		if id == "" {
			return nil, fmt.Errorf("lesson_id is required")
		}
		plan, err := plans.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if plan == nil {
			return nil, fmt.Errorf("lesson plan %s not found", id)
		}
		return plan, nil
	})

	r.add(toolInfo{
		Name:        "get_lesson_sessions",
		Description: "Get all sessions for a lesson plan",
		Parameters: map[string]toolParam{
			"lesson_id": {Type: "string", Required: true},
		},
	}, func(ctx context.Context, args map[string]any) (any, error) {
		id := stringArg(args, "lesson_id")
		if id == "" {
			return nil, fmt.Errorf("lesson_id is required")
		}
		sessions, err := plans.Sessions(ctx, id)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"lesson_id":      id,
			"total_sessions": len(sessions),
			"sessions":       sessions,
		}, nil
	})

	r.add(toolInfo{
		Name:        "search_lesson_plans",
		Description: "Search lesson plans by filters",
		Parameters: map[string]toolParam{
			"topic":       {Type: "string", Required: false},
			"subject":     {Type: "string", Required: false},
			"grade_level": {Type: "string", Required: false},
			"limit":       {Type: "integer", Required: false},
		},
	}, func(ctx context.Context, args map[string]any) (any, error) {
		q := store.PlanQuery{
			Topic:      stringArg(args, "topic"),
			Subject:    stringArg(args, "subject"),
			GradeLevel: stringArg(args, "grade_level"),
			Limit:      intArg(args, "limit", 10),
		}
		summaries, err := plans.Search(ctx, q)
		if err != nil {
			return nil, err
		}
		return map[string]any{"count": len(summaries), "lesson_plans": summaries}, nil
	})

	r.add(toolInfo{
		Name:        "delete_lesson_plan",
		Description: "Delete a lesson plan and its sessions",
		Parameters: map[string]toolParam{
			"lesson_id": {Type: "string", Required: true},
		},
	}, func(ctx context.Context, args map[string]any) (any, error) {
		id := stringArg(args, "lesson_id")
		if id == "" {
			return nil, fmt.Errorf("lesson_id is required")
		}
		deleted, err := plans.Delete(ctx, id)
		if err != nil {
			return nil, err
		}
		if !deleted {
			return nil, fmt.Errorf("lesson plan %s not found", id)
		}
		return map[string]any{"message": fmt.Sprintf("lesson plan %s deleted", id)}, nil
	})

	r.add(toolInfo{
		Name:        "get_transcript",
		Description: "Retrieve a transcript by ID",
		Parameters: map[string]toolParam{
			"transcript_id": {Type: "integer", Required: true},
		},
	}, func(ctx context.Context, args map[string]any) (any, error) {
		id := intArg(args, "transcript_id", 0)
		if id <= 0 {
			return nil, fmt.Errorf("transcript_id is required")
		}
		t, err := transcripts.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, fmt.Errorf("transcript %d not found", id)
		}
		return t, nil
	})

	r.add(toolInfo{
		Name:        "search_transcripts",
		Description: "Search transcripts by text content",
		Parameters: map[string]toolParam{
			"search_term": {Type: "string", Required: true},
			"limit":       {Type: "integer", Required: false},
		},
	}, func(ctx context.Context, args map[string]any) (any, error) {
		term := stringArg(args, "search_term")
		if term == "" {
			return nil, fmt.Errorf("search_term is required")
		}
		found, err := transcripts.Search(ctx, term, intArg(args, "limit", 10))
		if err != nil {
			return nil, err
		}
		return map[string]any{"count": len(found), "transcripts": found}, nil
	})

	r.add(toolInfo{
		Name:        "get_recent_transcripts",
		Description: "Get most recent transcripts",
		Parameters: map[string]toolParam{
			"limit": {Type: "integer", Required: false},
		},
	}, func(ctx context.Context, args map[string]any) (any, error) {
		found, err := transcripts.Recent(ctx, intArg(args, "limit", 10))
		if err != nil {
			return nil, err
		}
		return map[string]any{"count": len(found), "transcripts": found}, nil
	})

	r.add(toolInfo{
		Name:        "get_statistics",
		Description: "Get database statistics",
		Parameters:  map[string]toolParam{},
	}, func(ctx context.Context, args map[string]any) (any, error) {
		return plans.Statistics(ctx)
	})

	return r
}

func (r *toolRegistry) add(info toolInfo, run toolFunc) {
	r.tools[info.Name] = tool{toolInfo: info, run: run}
	r.order = append(r.order, info.Name)
}

// list returns the tools in registration order.
func (r *toolRegistry) list() []toolInfo {
	out := make([]toolInfo, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name].toolInfo)
	}
	return out
}

// execute runs one named tool. Failures come back in the envelope rather
// than as Go errors; the transport decides the status code.
func (r *toolRegistry) execute(ctx context.Context, name string, args map[string]any) toolResult {
	t, ok := r.tools[name]
	if !ok {
		return toolResult{Success: false, Error: fmt.Sprintf("unknown tool: %s", name)}
	}
	if args == nil {
		args = map[string]any{}
	}
	data, err := t.run(ctx, args)
	if err != nil {
		return toolResult{Success: false, Error: err.Error()}
	}
	return toolResult{Success: true, Data: data}
}

func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return strings.TrimSpace(s)
}

// intArg tolerates the numeric shapes JSON decoding produces.
func intArg(args map[string]any, key string, fallback int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
