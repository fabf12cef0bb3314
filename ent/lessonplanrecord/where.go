// Code generated by ent, DO NOT EDIT.

package lessonplanrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lessonforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldLTE(FieldID, id))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldEQ(FieldLessonID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldEQ(FieldTitle, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldEQ(FieldTopic, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldEQ(FieldSubject, v))
}

// GradeLevel applies equality check predicate on the "grade_level" field. It's identical to GradeLevelEQ.
func GradeLevel(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldEQ(FieldGradeLevel, v))
}

// SessionCount applies equality check predicate on the "session_count" field. It's identical to SessionCountEQ.
func SessionCount(v int) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldEQ(FieldSessionCount, v))
}

// SessionDurationMinutes applies equality check predicate on the "session_duration_minutes" field. It's identical to SessionDurationMinutesEQ.
func SessionDurationMinutes(v int) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldEQ(FieldSessionDurationMinutes, v))
}

// PlanJSON applies equality check predicate on the "plan_json" field. It's identical to PlanJSONEQ.
func PlanJSON(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldEQ(FieldPlanJSON, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldContainsFold(FieldLessonID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldContainsFold(FieldTitle, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldContainsFold(FieldTopic, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldContainsFold(FieldSubject, v))
}

// GradeLevelEQ applies the EQ predicate on the "grade_level" field.
func GradeLevelEQ(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldEQ(FieldGradeLevel, v))
}

// GradeLevelNEQ applies the NEQ predicate on the "grade_level" field.
func GradeLevelNEQ(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldNEQ(FieldGradeLevel, v))
}

// GradeLevelIn applies the In predicate on the "grade_level" field.
func GradeLevelIn(vs ...string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldIn(FieldGradeLevel, vs...))
}

// GradeLevelNotIn applies the NotIn predicate on the "grade_level" field.
func GradeLevelNotIn(vs ...string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldNotIn(FieldGradeLevel, vs...))
}

// GradeLevelGT applies the GT predicate on the "grade_level" field.
func GradeLevelGT(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldGT(FieldGradeLevel, v))
}

// GradeLevelGTE applies the GTE predicate on the "grade_level" field.
func GradeLevelGTE(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldGTE(FieldGradeLevel, v))
}

// GradeLevelLT applies the LT predicate on the "grade_level" field.
func GradeLevelLT(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldLT(FieldGradeLevel, v))
}

// GradeLevelLTE applies the LTE predicate on the "grade_level" field.
func GradeLevelLTE(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldLTE(FieldGradeLevel, v))
}

// GradeLevelContains applies the Contains predicate on the "grade_level" field.
func GradeLevelContains(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldContains(FieldGradeLevel, v))
}

// GradeLevelHasPrefix applies the HasPrefix predicate on the "grade_level" field.
func GradeLevelHasPrefix(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldHasPrefix(FieldGradeLevel, v))
}

// GradeLevelHasSuffix applies the HasSuffix predicate on the "grade_level" field.
func GradeLevelHasSuffix(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldHasSuffix(FieldGradeLevel, v))
}

// GradeLevelEqualFold applies the EqualFold predicate on the "grade_level" field.
func GradeLevelEqualFold(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldEqualFold(FieldGradeLevel, v))
}

// GradeLevelContainsFold applies the ContainsFold predicate on the "grade_level" field.
func GradeLevelContainsFold(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldContainsFold(FieldGradeLevel, v))
}

// SessionCountEQ applies the EQ predicate on the "session_count" field.
func SessionCountEQ(v int) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldEQ(FieldSessionCount, v))
}

// SessionCountNEQ applies the NEQ predicate on the "session_count" field.
func SessionCountNEQ(v int) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldNEQ(FieldSessionCount, v))
}

// SessionCountIn applies the In predicate on the "session_count" field.
func SessionCountIn(vs ...int) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldIn(FieldSessionCount, vs...))
}

// SessionCountNotIn applies the NotIn predicate on the "session_count" field.
func SessionCountNotIn(vs ...int) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldNotIn(FieldSessionCount, vs...))
}

// SessionCountGT applies the GT predicate on the "session_count" field.
func SessionCountGT(v int) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldGT(FieldSessionCount, v))
}

// SessionCountGTE applies the GTE predicate on the "session_count" field.
func SessionCountGTE(v int) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldGTE(FieldSessionCount, v))
}

// SessionCountLT applies the LT predicate on the "session_count" field.
func SessionCountLT(v int) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldLT(FieldSessionCount, v))
}

// SessionCountLTE applies the LTE predicate on the "session_count" field.
func SessionCountLTE(v int) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldLTE(FieldSessionCount, v))
}

// SessionDurationMinutesEQ applies the EQ predicate on the "session_duration_minutes" field.
func SessionDurationMinutesEQ(v int) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldEQ(FieldSessionDurationMinutes, v))
}

// SessionDurationMinutesNEQ applies the NEQ predicate on the "session_duration_minutes" field.
func SessionDurationMinutesNEQ(v int) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldNEQ(FieldSessionDurationMinutes, v))
}

// SessionDurationMinutesIn applies the In predicate on the "session_duration_minutes" field.
func SessionDurationMinutesIn(vs ...int) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldIn(FieldSessionDurationMinutes, vs...))
}

// SessionDurationMinutesNotIn applies the NotIn predicate on the "session_duration_minutes" field.
func SessionDurationMinutesNotIn(vs ...int) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldNotIn(FieldSessionDurationMinutes, vs...))
}

// SessionDurationMinutesGT applies the GT predicate on the "session_duration_minutes" field.
func SessionDurationMinutesGT(v int) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldGT(FieldSessionDurationMinutes, v))
}

// SessionDurationMinutesGTE applies the GTE predicate on the "session_duration_minutes" field.
func SessionDurationMinutesGTE(v int) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldGTE(FieldSessionDurationMinutes, v))
}

// SessionDurationMinutesLT applies the LT predicate on the "session_duration_minutes" field.
func SessionDurationMinutesLT(v int) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldLT(FieldSessionDurationMinutes, v))
}

// SessionDurationMinutesLTE applies the LTE predicate on the "session_duration_minutes" field.
func SessionDurationMinutesLTE(v int) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldLTE(FieldSessionDurationMinutes, v))
}

// PlanJSONEQ applies the EQ predicate on the "plan_json" field.
func PlanJSONEQ(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldEQ(FieldPlanJSON, v))
}

// PlanJSONNEQ applies the NEQ predicate on the "plan_json" field.
func PlanJSONNEQ(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldNEQ(FieldPlanJSON, v))
}

// PlanJSONIn applies the In predicate on the "plan_json" field.
func PlanJSONIn(vs ...string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldIn(FieldPlanJSON, vs...))
}

// PlanJSONNotIn applies the NotIn predicate on the "plan_json" field.
func PlanJSONNotIn(vs ...string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldNotIn(FieldPlanJSON, vs...))
}

// PlanJSONGT applies the GT predicate on the "plan_json" field.
func PlanJSONGT(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldGT(FieldPlanJSON, v))
}

// PlanJSONGTE applies the GTE predicate on the "plan_json" field.
func PlanJSONGTE(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldGTE(FieldPlanJSON, v))
}

// PlanJSONLT applies the LT predicate on the "plan_json" field.
func PlanJSONLT(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldLT(FieldPlanJSON, v))
}

// PlanJSONLTE applies the LTE predicate on the "plan_json" field.
func PlanJSONLTE(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldLTE(FieldPlanJSON, v))
}

// PlanJSONContains applies the Contains predicate on the "plan_json" field.
func PlanJSONContains(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldContains(FieldPlanJSON, v))
}

// PlanJSONHasPrefix applies the HasPrefix predicate on the "plan_json" field.
func PlanJSONHasPrefix(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldHasPrefix(FieldPlanJSON, v))
}

// PlanJSONHasSuffix applies the HasSuffix predicate on the "plan_json" field.
func PlanJSONHasSuffix(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldHasSuffix(FieldPlanJSON, v))
}

// PlanJSONEqualFold applies the EqualFold predicate on the "plan_json" field.
func PlanJSONEqualFold(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldEqualFold(FieldPlanJSON, v))
}

// PlanJSONContainsFold applies the ContainsFold predicate on the "plan_json" field.
func PlanJSONContainsFold(v string) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldContainsFold(FieldPlanJSON, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonPlanRecord) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonPlanRecord) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonPlanRecord) predicate.LessonPlanRecord {
	return predicate.LessonPlanRecord(sql.NotPredicates(p))
}
