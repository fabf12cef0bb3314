// Code generated by ent, DO NOT EDIT.

package lessonsessionrecord

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lessonforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldLTE(FieldID, id))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldEQ(FieldLessonID, v))
}

// SessionNumber applies equality check predicate on the "session_number" field. It's identical to SessionNumberEQ.
func SessionNumber(v int) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldEQ(FieldSessionNumber, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldEQ(FieldTitle, v))
}

// ObjectivesJSON applies equality check predicate on the "objectives_json" field. It's identical to ObjectivesJSONEQ.
func ObjectivesJSON(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldEQ(FieldObjectivesJSON, v))
}

// ActivitiesJSON applies equality check predicate on the "activities_json" field. It's identical to ActivitiesJSONEQ.
func ActivitiesJSON(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldEQ(FieldActivitiesJSON, v))
}

// WorksheetJSON applies equality check predicate on the "worksheet_json" field. It's identical to WorksheetJSONEQ.
func WorksheetJSON(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldEQ(FieldWorksheetJSON, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldContainsFold(FieldLessonID, v))
}

// SessionNumberEQ applies the EQ predicate on the "session_number" field.
func SessionNumberEQ(v int) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldEQ(FieldSessionNumber, v))
}

// SessionNumberNEQ applies the NEQ predicate on the "session_number" field.
func SessionNumberNEQ(v int) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldNEQ(FieldSessionNumber, v))
}

// SessionNumberIn applies the In predicate on the "session_number" field.
func SessionNumberIn(vs ...int) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldIn(FieldSessionNumber, vs...))
}

// SessionNumberNotIn applies the NotIn predicate on the "session_number" field.
func SessionNumberNotIn(vs ...int) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldNotIn(FieldSessionNumber, vs...))
}

// SessionNumberGT applies the GT predicate on the "session_number" field.
func SessionNumberGT(v int) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldGT(FieldSessionNumber, v))
}

// SessionNumberGTE applies the GTE predicate on the "session_number" field.
func SessionNumberGTE(v int) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldGTE(FieldSessionNumber, v))
}

// SessionNumberLT applies the LT predicate on the "session_number" field.
func SessionNumberLT(v int) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldLT(FieldSessionNumber, v))
}

// SessionNumberLTE applies the LTE predicate on the "session_number" field.
func SessionNumberLTE(v int) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldLTE(FieldSessionNumber, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldContainsFold(FieldTitle, v))
}

// ObjectivesJSONEQ applies the EQ predicate on the "objectives_json" field.
func ObjectivesJSONEQ(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldEQ(FieldObjectivesJSON, v))
}

// ObjectivesJSONNEQ applies the NEQ predicate on the "objectives_json" field.
func ObjectivesJSONNEQ(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldNEQ(FieldObjectivesJSON, v))
}

// ObjectivesJSONIn applies the In predicate on the "objectives_json" field.
func ObjectivesJSONIn(vs ...string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldIn(FieldObjectivesJSON, vs...))
}

// ObjectivesJSONNotIn applies the NotIn predicate on the "objectives_json" field.
func ObjectivesJSONNotIn(vs ...string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldNotIn(FieldObjectivesJSON, vs...))
}

// ObjectivesJSONGT applies the GT predicate on the "objectives_json" field.
func ObjectivesJSONGT(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldGT(FieldObjectivesJSON, v))
}

// ObjectivesJSONGTE applies the GTE predicate on the "objectives_json" field.
func ObjectivesJSONGTE(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldGTE(FieldObjectivesJSON, v))
}

// ObjectivesJSONLT applies the LT predicate on the "objectives_json" field.
func ObjectivesJSONLT(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldLT(FieldObjectivesJSON, v))
}

// ObjectivesJSONLTE applies the LTE predicate on the "objectives_json" field.
func ObjectivesJSONLTE(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldLTE(FieldObjectivesJSON, v))
}

// ObjectivesJSONContains applies the Contains predicate on the "objectives_json" field.
func ObjectivesJSONContains(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldContains(FieldObjectivesJSON, v))
}

// ObjectivesJSONHasPrefix applies the HasPrefix predicate on the "objectives_json" field.
func ObjectivesJSONHasPrefix(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldHasPrefix(FieldObjectivesJSON, v))
}

// ObjectivesJSONHasSuffix applies the HasSuffix predicate on the "objectives_json" field.
func ObjectivesJSONHasSuffix(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldHasSuffix(FieldObjectivesJSON, v))
}

// ObjectivesJSONEqualFold applies the EqualFold predicate on the "objectives_json" field.
func ObjectivesJSONEqualFold(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldEqualFold(FieldObjectivesJSON, v))
}

// ObjectivesJSONContainsFold applies the ContainsFold predicate on the "objectives_json" field.
func ObjectivesJSONContainsFold(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldContainsFold(FieldObjectivesJSON, v))
}

// ActivitiesJSONEQ applies the EQ predicate on the "activities_json" field.
func ActivitiesJSONEQ(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldEQ(FieldActivitiesJSON, v))
}

// ActivitiesJSONNEQ applies the NEQ predicate on the "activities_json" field.
func ActivitiesJSONNEQ(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldNEQ(FieldActivitiesJSON, v))
}

// ActivitiesJSONIn applies the In predicate on the "activities_json" field.
func ActivitiesJSONIn(vs ...string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldIn(FieldActivitiesJSON, vs...))
}

// ActivitiesJSONNotIn applies the NotIn predicate on the "activities_json" field.
func ActivitiesJSONNotIn(vs ...string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldNotIn(FieldActivitiesJSON, vs...))
}

// ActivitiesJSONGT applies the GT predicate on the "activities_json" field.
func ActivitiesJSONGT(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldGT(FieldActivitiesJSON, v))
}

// ActivitiesJSONGTE applies the GTE predicate on the "activities_json" field.
func ActivitiesJSONGTE(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldGTE(FieldActivitiesJSON, v))
}

// ActivitiesJSONLT applies the LT predicate on the "activities_json" field.
func ActivitiesJSONLT(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldLT(FieldActivitiesJSON, v))
}

// ActivitiesJSONLTE applies the LTE predicate on the "activities_json" field.
func ActivitiesJSONLTE(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldLTE(FieldActivitiesJSON, v))
}

// ActivitiesJSONContains applies the Contains predicate on the "activities_json" field.
func ActivitiesJSONContains(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldContains(FieldActivitiesJSON, v))
}

// ActivitiesJSONHasPrefix applies the HasPrefix predicate on the "activities_json" field.
func ActivitiesJSONHasPrefix(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldHasPrefix(FieldActivitiesJSON, v))
}

// ActivitiesJSONHasSuffix applies the HasSuffix predicate on the "activities_json" field.
func ActivitiesJSONHasSuffix(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldHasSuffix(FieldActivitiesJSON, v))
}

// ActivitiesJSONEqualFold applies the EqualFold predicate on the "activities_json" field.
func ActivitiesJSONEqualFold(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldEqualFold(FieldActivitiesJSON, v))
}

// ActivitiesJSONContainsFold applies the ContainsFold predicate on the "activities_json" field.
func ActivitiesJSONContainsFold(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldContainsFold(FieldActivitiesJSON, v))
}

// WorksheetJSONEQ applies the EQ predicate on the "worksheet_json" field.
func WorksheetJSONEQ(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldEQ(FieldWorksheetJSON, v))
}

// WorksheetJSONNEQ applies the NEQ predicate on the "worksheet_json" field.
func WorksheetJSONNEQ(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldNEQ(FieldWorksheetJSON, v))
}

// WorksheetJSONIn applies the In predicate on the "worksheet_json" field.
func WorksheetJSONIn(vs ...string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldIn(FieldWorksheetJSON, vs...))
}

// WorksheetJSONNotIn applies the NotIn predicate on the "worksheet_json" field.
func WorksheetJSONNotIn(vs ...string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldNotIn(FieldWorksheetJSON, vs...))
}

// WorksheetJSONGT applies the GT predicate on the "worksheet_json" field.
func WorksheetJSONGT(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldGT(FieldWorksheetJSON, v))
}

// WorksheetJSONGTE applies the GTE predicate on the "worksheet_json" field.
func WorksheetJSONGTE(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldGTE(FieldWorksheetJSON, v))
}

// WorksheetJSONLT applies the LT predicate on the "worksheet_json" field.
func WorksheetJSONLT(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldLT(FieldWorksheetJSON, v))
}

// WorksheetJSONLTE applies the LTE predicate on the "worksheet_json" field.
func WorksheetJSONLTE(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldLTE(FieldWorksheetJSON, v))
}

// WorksheetJSONContains applies the Contains predicate on the "worksheet_json" field.
func WorksheetJSONContains(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldContains(FieldWorksheetJSON, v))
}

// WorksheetJSONHasPrefix applies the HasPrefix predicate on the "worksheet_json" field.
func WorksheetJSONHasPrefix(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldHasPrefix(FieldWorksheetJSON, v))
}

// WorksheetJSONHasSuffix applies the HasSuffix predicate on the "worksheet_json" field.
func WorksheetJSONHasSuffix(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldHasSuffix(FieldWorksheetJSON, v))
}

// WorksheetJSONEqualFold applies the EqualFold predicate on the "worksheet_json" field.
func WorksheetJSONEqualFold(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldEqualFold(FieldWorksheetJSON, v))
}

// WorksheetJSONContainsFold applies the ContainsFold predicate on the "worksheet_json" field.
func WorksheetJSONContainsFold(v string) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.FieldContainsFold(FieldWorksheetJSON, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonSessionRecord) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonSessionRecord) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonSessionRecord) predicate.LessonSessionRecord {
	return predicate.LessonSessionRecord(sql.NotPredicates(p))
}
