// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lessonforge/ent/lessonplanrecord"
)

// LessonPlanRecord is the model entity for the LessonPlanRecord schema.
type LessonPlanRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Opaque 8-character plan id handed back to callers
	LessonID string `json:"lesson_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// GradeLevel holds the value of the "grade_level" field.
	GradeLevel string `json:"grade_level,omitempty"`
	// SessionCount holds the value of the "session_count" field.
	SessionCount int `json:"session_count,omitempty"`
	// SessionDurationMinutes holds the value of the "session_duration_minutes" field.
	SessionDurationMinutes int `json:"session_duration_minutes,omitempty"`
	// Canonical JSON of the built plan, round-tripped on export
	PlanJSON string `json:"plan_json,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LessonPlanRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lessonplanrecord.FieldID, lessonplanrecord.FieldSessionCount, lessonplanrecord.FieldSessionDurationMinutes:
			values[i] = new(sql.NullInt64)
		case lessonplanrecord.FieldLessonID, lessonplanrecord.FieldTitle, lessonplanrecord.FieldTopic, lessonplanrecord.FieldSubject, lessonplanrecord.FieldGradeLevel, lessonplanrecord.FieldPlanJSON:
			values[i] = new(sql.NullString)
		case lessonplanrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LessonPlanRecord fields.
func (_m *LessonPlanRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lessonplanrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lessonplanrecord.FieldLessonID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value.Valid {
				_m.LessonID = value.String
			}
		case lessonplanrecord.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case lessonplanrecord.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case lessonplanrecord.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case lessonplanrecord.FieldGradeLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grade_level", values[i])
			} else if value.Valid {
				_m.GradeLevel = value.String
			}
		case lessonplanrecord.FieldSessionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_count", values[i])
			} else if value.Valid {
				_m.SessionCount = int(value.Int64)
			}
		case lessonplanrecord.FieldSessionDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_duration_minutes", values[i])
			} else if value.Valid {
				_m.SessionDurationMinutes = int(value.Int64)
			}
		case lessonplanrecord.FieldPlanJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_json", values[i])
			} else if value.Valid {
				_m.PlanJSON = value.String
			}
		case lessonplanrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LessonPlanRecord.
// This includes values selected through modifiers, order, etc.
func (_m *LessonPlanRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LessonPlanRecord.
// Note that you need to call LessonPlanRecord.Unwrap() before calling this method if this LessonPlanRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LessonPlanRecord) Update() *LessonPlanRecordUpdateOne {
	return NewLessonPlanRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LessonPlanRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LessonPlanRecord) Unwrap() *LessonPlanRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LessonPlanRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LessonPlanRecord) String() string {
	var builder strings.Builder
	builder.WriteString("LessonPlanRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("lesson_id=")
	builder.WriteString(_m.LessonID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("grade_level=")
	builder.WriteString(_m.GradeLevel)
	builder.WriteString(", ")
	builder.WriteString("session_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionCount))
	builder.WriteString(", ")
	builder.WriteString("session_duration_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionDurationMinutes))
	builder.WriteString(", ")
	builder.WriteString("plan_json=")
	builder.WriteString(_m.PlanJSON)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LessonPlanRecords is a parsable slice of LessonPlanRecord.
type LessonPlanRecords []*LessonPlanRecord
