// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lessonforge/ent/lessonsessionrecord"
)

// LessonSessionRecord is the model entity for the LessonSessionRecord schema.
type LessonSessionRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LessonID holds the value of the "lesson_id" field.
	LessonID string `json:"lesson_id,omitempty"`
	// 1-based, contiguous within a plan
	SessionNumber int `json:"session_number,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// ObjectivesJSON holds the value of the "objectives_json" field.
	ObjectivesJSON string `json:"objectives_json,omitempty"`
	// ActivitiesJSON holds the value of the "activities_json" field.
	ActivitiesJSON string `json:"activities_json,omitempty"`
	// WorksheetJSON holds the value of the "worksheet_json" field.
	WorksheetJSON string `json:"worksheet_json,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LessonSessionRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lessonsessionrecord.FieldID, lessonsessionrecord.FieldSessionNumber:
			values[i] = new(sql.NullInt64)
		case lessonsessionrecord.FieldLessonID, lessonsessionrecord.FieldTitle, lessonsessionrecord.FieldObjectivesJSON, lessonsessionrecord.FieldActivitiesJSON, lessonsessionrecord.FieldWorksheetJSON:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LessonSessionRecord fields.
func (_m *LessonSessionRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lessonsessionrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lessonsessionrecord.FieldLessonID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value.Valid {
				_m.LessonID = value.String
			}
		case lessonsessionrecord.FieldSessionNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_number", values[i])
			} else if value.Valid {
				_m.SessionNumber = int(value.Int64)
			}
		case lessonsessionrecord.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case lessonsessionrecord.FieldObjectivesJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field objectives_json", values[i])
			} else if value.Valid {
				_m.ObjectivesJSON = value.String
			}
		case lessonsessionrecord.FieldActivitiesJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field activities_json", values[i])
			} else if value.Valid {
				_m.ActivitiesJSON = value.String
			}
		case lessonsessionrecord.FieldWorksheetJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field worksheet_json", values[i])
			} else if value.Valid {
				_m.WorksheetJSON = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LessonSessionRecord.
// This includes values selected through modifiers, order, etc.
func (_m *LessonSessionRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LessonSessionRecord.
// Note that you need to call LessonSessionRecord.Unwrap() before calling this method if this LessonSessionRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LessonSessionRecord) Update() *LessonSessionRecordUpdateOne {
	return NewLessonSessionRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LessonSessionRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LessonSessionRecord) Unwrap() *LessonSessionRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LessonSessionRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LessonSessionRecord) String() string {
	var builder strings.Builder
	builder.WriteString("LessonSessionRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("lesson_id=")
	builder.WriteString(_m.LessonID)
	builder.WriteString(", ")
	builder.WriteString("session_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionNumber))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("objectives_json=")
	builder.WriteString(_m.ObjectivesJSON)
	builder.WriteString(", ")
	builder.WriteString("activities_json=")
	builder.WriteString(_m.ActivitiesJSON)
	builder.WriteString(", ")
	builder.WriteString("worksheet_json=")
	builder.WriteString(_m.WorksheetJSON)
	builder.WriteByte(')')
	return builder.String()
}

// LessonSessionRecords is a parsable slice of LessonSessionRecord.
type LessonSessionRecords []*LessonSessionRecord
