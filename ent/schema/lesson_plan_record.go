package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonPlanRecord is the stored form of a built lesson plan. plan_json
// holds the canonical plan used for re-export; the scalar columns exist
// for listing, search and statistics.
type LessonPlanRecord struct {
	ent.Schema
}

func (LessonPlanRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("lesson_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Opaque 8-character plan id handed back to callers"),
		field.String("title").NotEmpty(),
		field.String("topic").NotEmpty(),
		field.String("subject").NotEmpty(),
		field.String("grade_level").NotEmpty(),
		field.Int("session_count").Positive(),
		field.Int("session_duration_minutes").Positive(),
		field.Text("plan_json").
			NotEmpty().
			Comment("Canonical JSON of the built plan, round-tripped on export"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (LessonPlanRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
		index.Fields("subject"),
		index.Fields("grade_level"),
		index.Fields("created_at"),
	}
}
