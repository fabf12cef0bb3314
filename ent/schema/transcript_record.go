package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TranscriptRecord stores one produced transcript. lesson_id is filled in
// when the transcript went on to produce a stored plan; standalone
// transcriptions leave it empty.
type TranscriptRecord struct {
	ent.Schema
}

func (TranscriptRecord) Fields() []ent.Field {
	return []ent.Field{
		field.Text("text").NotEmpty(),
		field.String("source").
			NotEmpty().
			Comment("audio or text"),
		field.Float("confidence").
			Optional().
			Nillable().
			Comment("Speech-to-text confidence in [0,1], absent for text input"),
		field.String("lesson_id").Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (TranscriptRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id"),
		index.Fields("created_at"),
	}
}
