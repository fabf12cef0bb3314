package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonSessionRecord is one session row of a stored plan, kept separately
// so session-level lookups never decode the whole plan.
type LessonSessionRecord struct {
	ent.Schema
}

func (LessonSessionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("lesson_id").NotEmpty().Immutable(),
		field.Int("session_number").
			Positive().
			Comment("1-based, contiguous within a plan"),
		field.String("title"),
		field.Text("objectives_json").Default("[]"),
		field.Text("activities_json").Default("[]"),
		field.Text("worksheet_json").Default(""),
	}
}

func (LessonSessionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id"),
		index.Fields("lesson_id", "session_number").Unique(),
	}
}
