// Code generated by ent, DO NOT EDIT.

package lessonplanrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lessonplanrecord type in the database.
	Label = "lesson_plan_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLessonID holds the string denoting the lesson_id field in the database.
	FieldLessonID = "lesson_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldGradeLevel holds the string denoting the grade_level field in the database.
	FieldGradeLevel = "grade_level"
	// FieldSessionCount holds the string denoting the session_count field in the database.
	FieldSessionCount = "session_count"
	// FieldSessionDurationMinutes holds the string denoting the session_duration_minutes field in the database.
	FieldSessionDurationMinutes = "session_duration_minutes"
	// FieldPlanJSON holds the string denoting the plan_json field in the database.
	FieldPlanJSON = "plan_json"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the lessonplanrecord in the database.
	Table = "lesson_plan_records"
)

// Columns holds all SQL columns for lessonplanrecord fields.
var Columns = []string{
	FieldID,
	FieldLessonID,
	FieldTitle,
	FieldTopic,
	FieldSubject,
	FieldGradeLevel,
	FieldSessionCount,
	FieldSessionDurationMinutes,
	FieldPlanJSON,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	LessonIDValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	SubjectValidator func(string) error
	// GradeLevelValidator is a validator for the "grade_level" field. It is called by the builders before save.
	GradeLevelValidator func(string) error
	// SessionCountValidator is a validator for the "session_count" field. It is called by the builders before save.
	SessionCountValidator func(int) error
	// SessionDurationMinutesValidator is a validator for the "session_duration_minutes" field. It is called by the builders before save.
	SessionDurationMinutesValidator func(int) error
	// PlanJSONValidator is a validator for the "plan_json" field. It is called by the builders before save.
	PlanJSONValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the LessonPlanRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLessonID orders the results by the lesson_id field.
func ByLessonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByGradeLevel orders the results by the grade_level field.
func ByGradeLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGradeLevel, opts...).ToFunc()
}

// BySessionCount orders the results by the session_count field.
func BySessionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionCount, opts...).ToFunc()
}

// BySessionDurationMinutes orders the results by the session_duration_minutes field.
func BySessionDurationMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionDurationMinutes, opts...).ToFunc()
}

// ByPlanJSON orders the results by the plan_json field.
func ByPlanJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanJSON, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
