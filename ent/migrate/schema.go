// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "attempt", Type: field.TypeInt, Default: 1},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[10]},
			},
		},
	}
	// LessonPlanRecordsColumns holds the columns for the "lesson_plan_records" table.
	LessonPlanRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "lesson_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "grade_level", Type: field.TypeString},
		{Name: "session_count", Type: field.TypeInt},
		{Name: "session_duration_minutes", Type: field.TypeInt},
		{Name: "plan_json", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LessonPlanRecordsTable holds the schema information for the "lesson_plan_records" table.
	LessonPlanRecordsTable = &schema.Table{
		Name:       "lesson_plan_records",
		Columns:    LessonPlanRecordsColumns,
		PrimaryKey: []*schema.Column{LessonPlanRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonplanrecord_topic",
				Unique:  false,
				Columns: []*schema.Column{LessonPlanRecordsColumns[3]},
			},
			{
				Name:    "lessonplanrecord_subject",
				Unique:  false,
				Columns: []*schema.Column{LessonPlanRecordsColumns[4]},
			},
			{
				Name:    "lessonplanrecord_grade_level",
				Unique:  false,
				Columns: []*schema.Column{LessonPlanRecordsColumns[5]},
			},
			{
				Name:    "lessonplanrecord_created_at",
				Unique:  false,
				Columns: []*schema.Column{LessonPlanRecordsColumns[9]},
			},
		},
	}
	// LessonSessionRecordsColumns holds the columns for the "lesson_session_records" table.
	LessonSessionRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "session_number", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString},
		{Name: "objectives_json", Type: field.TypeString, Size: 2147483647, Default: "[]"},
		{Name: "activities_json", Type: field.TypeString, Size: 2147483647, Default: "[]"},
		{Name: "worksheet_json", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LessonSessionRecordsTable holds the schema information for the "lesson_session_records" table.
	LessonSessionRecordsTable = &schema.Table{
		Name:       "lesson_session_records",
		Columns:    LessonSessionRecordsColumns,
		PrimaryKey: []*schema.Column{LessonSessionRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonsessionrecord_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{LessonSessionRecordsColumns[1]},
			},
			{
				Name:    "lessonsessionrecord_lesson_id_session_number",
				Unique:  true,
				Columns: []*schema.Column{LessonSessionRecordsColumns[1], LessonSessionRecordsColumns[2]},
			},
		},
	}
	// TranscriptRecordsColumns holds the columns for the "transcript_records" table.
	TranscriptRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "source", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "lesson_id", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TranscriptRecordsTable holds the schema information for the "transcript_records" table.
	TranscriptRecordsTable = &schema.Table{
		Name:       "transcript_records",
		Columns:    TranscriptRecordsColumns,
		PrimaryKey: []*schema.Column{TranscriptRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "transcriptrecord_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{TranscriptRecordsColumns[4]},
			},
			{
				Name:    "transcriptrecord_created_at",
				Unique:  false,
				Columns: []*schema.Column{TranscriptRecordsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		LessonPlanRecordsTable,
		LessonSessionRecordsTable,
		TranscriptRecordsTable,
	}
)

func init() {
}
