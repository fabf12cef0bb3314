// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/lessonforge/ent/lessonplanrecord"
	"github.com/abhisek/lessonforge/ent/lessonsessionrecord"
	"github.com/abhisek/lessonforge/ent/llmrequestevent"
	"github.com/abhisek/lessonforge/ent/schema"
	"github.com/abhisek/lessonforge/ent/transcriptrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescAttempt is the schema descriptor for attempt field.
	llmrequesteventDescAttempt := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultAttempt holds the default value on creation for the attempt field.
	llmrequestevent.DefaultAttempt = llmrequesteventDescAttempt.Default.(int)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	lessonplanrecordFields := schema.LessonPlanRecord{}.Fields()
	_ = lessonplanrecordFields
	// lessonplanrecordDescLessonID is the schema descriptor for lesson_id field.
	lessonplanrecordDescLessonID := lessonplanrecordFields[0].Descriptor()
	// lessonplanrecord.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessonplanrecord.LessonIDValidator = lessonplanrecordDescLessonID.Validators[0].(func(string) error)
	// lessonplanrecordDescTitle is the schema descriptor for title field.
	lessonplanrecordDescTitle := lessonplanrecordFields[1].Descriptor()
	// lessonplanrecord.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	lessonplanrecord.TitleValidator = lessonplanrecordDescTitle.Validators[0].(func(string) error)
	// lessonplanrecordDescTopic is the schema descriptor for topic field.
	lessonplanrecordDescTopic := lessonplanrecordFields[2].Descriptor()
	// lessonplanrecord.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	lessonplanrecord.TopicValidator = lessonplanrecordDescTopic.Validators[0].(func(string) error)
	// lessonplanrecordDescSubject is the schema descriptor for subject field.
	lessonplanrecordDescSubject := lessonplanrecordFields[3].Descriptor()
	// lessonplanrecord.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	lessonplanrecord.SubjectValidator = lessonplanrecordDescSubject.Validators[0].(func(string) error)
	// lessonplanrecordDescGradeLevel is the schema descriptor for grade_level field.
	lessonplanrecordDescGradeLevel := lessonplanrecordFields[4].Descriptor()
	// lessonplanrecord.GradeLevelValidator is a validator for the "grade_level" field. It is called by the builders before save.
	lessonplanrecord.GradeLevelValidator = lessonplanrecordDescGradeLevel.Validators[0].(func(string) error)
	// lessonplanrecordDescSessionCount is the schema descriptor for session_count field.
	lessonplanrecordDescSessionCount := lessonplanrecordFields[5].Descriptor()
	// lessonplanrecord.SessionCountValidator is a validator for the "session_count" field. It is called by the builders before save.
	lessonplanrecord.SessionCountValidator = lessonplanrecordDescSessionCount.Validators[0].(func(int) error)
	// lessonplanrecordDescSessionDurationMinutes is the schema descriptor for session_duration_minutes field.
	lessonplanrecordDescSessionDurationMinutes := lessonplanrecordFields[6].Descriptor()
	// lessonplanrecord.SessionDurationMinutesValidator is a validator for the "session_duration_minutes" field. It is called by the builders before save.
	lessonplanrecord.SessionDurationMinutesValidator = lessonplanrecordDescSessionDurationMinutes.Validators[0].(func(int) error)
	// lessonplanrecordDescPlanJSON is the schema descriptor for plan_json field.
	lessonplanrecordDescPlanJSON := lessonplanrecordFields[7].Descriptor()
	// lessonplanrecord.PlanJSONValidator is a validator for the "plan_json" field. It is called by the builders before save.
	lessonplanrecord.PlanJSONValidator = lessonplanrecordDescPlanJSON.Validators[0].(func(string) error)
	// lessonplanrecordDescCreatedAt is the schema descriptor for created_at field.
	lessonplanrecordDescCreatedAt := lessonplanrecordFields[8].Descriptor()
	// lessonplanrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	lessonplanrecord.DefaultCreatedAt = lessonplanrecordDescCreatedAt.Default.(func() time.Time)
	lessonsessionrecordFields := schema.LessonSessionRecord{}.Fields()
	_ = lessonsessionrecordFields
	// lessonsessionrecordDescLessonID is the schema descriptor for lesson_id field.
	lessonsessionrecordDescLessonID := lessonsessionrecordFields[0].Descriptor()
	// lessonsessionrecord.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessonsessionrecord.LessonIDValidator = lessonsessionrecordDescLessonID.Validators[0].(func(string) error)
	// lessonsessionrecordDescSessionNumber is the schema descriptor for session_number field.
	lessonsessionrecordDescSessionNumber := lessonsessionrecordFields[1].Descriptor()
	// lessonsessionrecord.SessionNumberValidator is a validator for the "session_number" field. It is called by the builders before save.
	lessonsessionrecord.SessionNumberValidator = lessonsessionrecordDescSessionNumber.Validators[0].(func(int) error)
	// lessonsessionrecordDescObjectivesJSON is the schema descriptor for objectives_json field.
	lessonsessionrecordDescObjectivesJSON := lessonsessionrecordFields[3].Descriptor()
	// lessonsessionrecord.DefaultObjectivesJSON holds the default value on creation for the objectives_json field.
	lessonsessionrecord.DefaultObjectivesJSON = lessonsessionrecordDescObjectivesJSON.Default.(string)
	// lessonsessionrecordDescActivitiesJSON is the schema descriptor for activities_json field.
	lessonsessionrecordDescActivitiesJSON := lessonsessionrecordFields[4].Descriptor()
	// lessonsessionrecord.DefaultActivitiesJSON holds the default value on creation for the activities_json field.
	lessonsessionrecord.DefaultActivitiesJSON = lessonsessionrecordDescActivitiesJSON.Default.(string)
	// lessonsessionrecordDescWorksheetJSON is the schema descriptor for worksheet_json field.
	lessonsessionrecordDescWorksheetJSON := lessonsessionrecordFields[5].Descriptor()
	// lessonsessionrecord.DefaultWorksheetJSON holds the default value on creation for the worksheet_json field.
	lessonsessionrecord.DefaultWorksheetJSON = lessonsessionrecordDescWorksheetJSON.Default.(string)
	transcriptrecordFields := schema.TranscriptRecord{}.Fields()
	_ = transcriptrecordFields
	// transcriptrecordDescText is the schema descriptor for text field.
	transcriptrecordDescText := transcriptrecordFields[0].Descriptor()
	// transcriptrecord.TextValidator is a validator for the "text" field. It is called by the builders before save.
	transcriptrecord.TextValidator = transcriptrecordDescText.Validators[0].(func(string) error)
	// transcriptrecordDescSource is the schema descriptor for source field.
	transcriptrecordDescSource := transcriptrecordFields[1].Descriptor()
	// transcriptrecord.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	transcriptrecord.SourceValidator = transcriptrecordDescSource.Validators[0].(func(string) error)
	// transcriptrecordDescLessonID is the schema descriptor for lesson_id field.
	transcriptrecordDescLessonID := transcriptrecordFields[3].Descriptor()
	// transcriptrecord.DefaultLessonID holds the default value on creation for the lesson_id field.
	transcriptrecord.DefaultLessonID = transcriptrecordDescLessonID.Default.(string)
	// transcriptrecordDescCreatedAt is the schema descriptor for created_at field.
	transcriptrecordDescCreatedAt := transcriptrecordFields[4].Descriptor()
	// transcriptrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	transcriptrecord.DefaultCreatedAt = transcriptrecordDescCreatedAt.Default.(func() time.Time)
}
