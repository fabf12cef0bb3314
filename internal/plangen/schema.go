package plangen

import "github.com/abhisek/lessonforge/internal/llm"

// PlanSchema declares the structural shape of a generated lesson plan.
// The schema is deliberately structural only: dynamic constraints (exact
// session count, non-empty titles, at least one objective) cannot be
// expressed statically and are enforced by the verdict in this package,
// which is what makes the repair round-trip possible.
var PlanSchema = &llm.Schema{
	Name:        "lesson-plan",
	Description: "A structured multi-session lesson plan for a school teacher",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "A short headline for the whole plan",
			},
			"sessions": map[string]any{
				"type":        "array",
				"description": "Exactly the number of sessions requested, in teaching order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "A concise session title",
						},
						"objectives": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Concrete learning objectives, at least one per session",
						},
						"activities": map[string]any{
							"type":        "array",
							"description": "Ordered activities whose minutes roughly sum to the session duration",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"title": map[string]any{
										"type":        "string",
										"description": "Activity name",
									},
									"description": map[string]any{
										"type":        "string",
										"description": "What the teacher and students do",
									},
									"estimated_minutes": map[string]any{
										"type":        "integer",
										"minimum":     0,
										"description": "Estimated duration in minutes",
									},
								},
								"required":             []any{"title", "description", "estimated_minutes"},
								"additionalProperties": false,
							},
						},
						"worksheet": map[string]any{
							"type":        "object",
							"description": "Practice questions for the session; leave questions empty when none fit",
							"properties": map[string]any{
								"questions": map[string]any{
									"type": "array",
									"items": map[string]any{
										"type": "object",
										"properties": map[string]any{
											"prompt": map[string]any{
												"type":        "string",
												"description": "The question as shown to students",
											},
											"answer_key_hint": map[string]any{
												"type":        "string",
												"description": "A short hint for the teacher's answer key; empty when not needed",
											},
										},
										"required":             []any{"prompt", "answer_key_hint"},
										"additionalProperties": false,
									},
								},
							},
							"required":             []any{"questions"},
							"additionalProperties": false,
						},
					},
					"required":             []any{"title", "objectives", "activities", "worksheet"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "sessions"},
		"additionalProperties": false,
	},
}
