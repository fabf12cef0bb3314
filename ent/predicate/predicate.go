// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// LessonPlanRecord is the predicate function for lessonplanrecord builders.
type LessonPlanRecord func(*sql.Selector)

// LessonSessionRecord is the predicate function for lessonsessionrecord builders.
type LessonSessionRecord func(*sql.Selector)

// TranscriptRecord is the predicate function for transcriptrecord builders.
type TranscriptRecord func(*sql.Selector)
