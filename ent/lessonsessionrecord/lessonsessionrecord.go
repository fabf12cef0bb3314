// Code generated by ent, DO NOT EDIT.

package lessonsessionrecord

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lessonsessionrecord type in the database.
	Label = "lesson_session_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLessonID holds the string denoting the lesson_id field in the database.
	FieldLessonID = "lesson_id"
	// FieldSessionNumber holds the string denoting the session_number field in the database.
	FieldSessionNumber = "session_number"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldObjectivesJSON holds the string denoting the objectives_json field in the database.
	FieldObjectivesJSON = "objectives_json"
	// FieldActivitiesJSON holds the string denoting the activities_json field in the database.
	FieldActivitiesJSON = "activities_json"
	// FieldWorksheetJSON holds the string denoting the worksheet_json field in the database.
	FieldWorksheetJSON = "worksheet_json"
	// Table holds the table name of the lessonsessionrecord in the database.
	Table = "lesson_session_records"
)

// Columns holds all SQL columns for lessonsessionrecord fields.
var Columns = []string{
	FieldID,
	FieldLessonID,
	FieldSessionNumber,
	FieldTitle,
	FieldObjectivesJSON,
	FieldActivitiesJSON,
	FieldWorksheetJSON,
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
	// SessionNumberValidator is a validator for the "session_number" field. It is called by the builders before save.
	SessionNumberValidator func(int) error
	// DefaultObjectivesJSON holds the default value on creation for the "objectives_json" field.
	DefaultObjectivesJSON string
	// DefaultActivitiesJSON holds the default value on creation for the "activities_json" field.
	DefaultActivitiesJSON string
	// DefaultWorksheetJSON holds the default value on creation for the "worksheet_json" field.
	DefaultWorksheetJSON string
)

// OrderOption defines the ordering options for the LessonSessionRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLessonID orders the results by the lesson_id field.
func ByLessonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonID, opts...).ToFunc()
}

// BySessionNumber orders the results by the session_number field.
func BySessionNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionNumber, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByObjectivesJSON orders the results by the objectives_json field.
func ByObjectivesJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObjectivesJSON, opts...).ToFunc()
}

// ByActivitiesJSON orders the results by the activities_json field.
func ByActivitiesJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivitiesJSON, opts...).ToFunc()
}

// ByWorksheetJSON orders the results by the worksheet_json field.
func ByWorksheetJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorksheetJSON, opts...).ToFunc()
}
