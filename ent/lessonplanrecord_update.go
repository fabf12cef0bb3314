// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lessonforge/ent/lessonplanrecord"
	"github.com/abhisek/lessonforge/ent/predicate"
)

// LessonPlanRecordUpdate is the builder for updating LessonPlanRecord entities.
type LessonPlanRecordUpdate struct {
	config
	hooks    []Hook
	mutation *LessonPlanRecordMutation
}

// Where appends a list predicates to the LessonPlanRecordUpdate builder.
func (_u *LessonPlanRecordUpdate) Where(ps ...predicate.LessonPlanRecord) *LessonPlanRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonPlanRecordUpdate) SetTitle(v string) *LessonPlanRecordUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonPlanRecordUpdate) SetNillableTitle(v *string) *LessonPlanRecordUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *LessonPlanRecordUpdate) SetTopic(v string) *LessonPlanRecordUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *LessonPlanRecordUpdate) SetNillableTopic(v *string) *LessonPlanRecordUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *LessonPlanRecordUpdate) SetSubject(v string) *LessonPlanRecordUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *LessonPlanRecordUpdate) SetNillableSubject(v *string) *LessonPlanRecordUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetGradeLevel sets the "grade_level" field.
func (_u *LessonPlanRecordUpdate) SetGradeLevel(v string) *LessonPlanRecordUpdate {
	_u.mutation.SetGradeLevel(v)
	return _u
}

// SetNillableGradeLevel sets the "grade_level" field if the given value is not nil.
func (_u *LessonPlanRecordUpdate) SetNillableGradeLevel(v *string) *LessonPlanRecordUpdate {
	if v != nil {
		_u.SetGradeLevel(*v)
	}
	return _u
}

// SetSessionCount sets the "session_count" field.
func (_u *LessonPlanRecordUpdate) SetSessionCount(v int) *LessonPlanRecordUpdate {
	_u.mutation.ResetSessionCount()
	_u.mutation.SetSessionCount(v)
	return _u
}

// SetNillableSessionCount sets the "session_count" field if the given value is not nil.
func (_u *LessonPlanRecordUpdate) SetNillableSessionCount(v *int) *LessonPlanRecordUpdate {
	if v != nil {
		_u.SetSessionCount(*v)
	}
	return _u
}

// AddSessionCount adds value to the "session_count" field.
func (_u *LessonPlanRecordUpdate) AddSessionCount(v int) *LessonPlanRecordUpdate {
	_u.mutation.AddSessionCount(v)
	return _u
}

// SetSessionDurationMinutes sets the "session_duration_minutes" field.
func (_u *LessonPlanRecordUpdate) SetSessionDurationMinutes(v int) *LessonPlanRecordUpdate {
	_u.mutation.ResetSessionDurationMinutes()
	_u.mutation.SetSessionDurationMinutes(v)
	return _u
}

// SetNillableSessionDurationMinutes sets the "session_duration_minutes" field if the given value is not nil.
func (_u *LessonPlanRecordUpdate) SetNillableSessionDurationMinutes(v *int) *LessonPlanRecordUpdate {
	if v != nil {
		_u.SetSessionDurationMinutes(*v)
	}
	return _u
}

// AddSessionDurationMinutes adds value to the "session_duration_minutes" field.
func (_u *LessonPlanRecordUpdate) AddSessionDurationMinutes(v int) *LessonPlanRecordUpdate {
	_u.mutation.AddSessionDurationMinutes(v)
	return _u
}

// SetPlanJSON sets the "plan_json" field.
func (_u *LessonPlanRecordUpdate) SetPlanJSON(v string) *LessonPlanRecordUpdate {
	_u.mutation.SetPlanJSON(v)
	return _u
}

// SetNillablePlanJSON sets the "plan_json" field if the given value is not nil.
func (_u *LessonPlanRecordUpdate) SetNillablePlanJSON(v *string) *LessonPlanRecordUpdate {
	if v != nil {
		_u.SetPlanJSON(*v)
	}
	return _u
}

// Mutation returns the LessonPlanRecordMutation object of the builder.
func (_u *LessonPlanRecordUpdate) Mutation() *LessonPlanRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonPlanRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonPlanRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonPlanRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonPlanRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonPlanRecordUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := lessonplanrecord.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "LessonPlanRecord.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := lessonplanrecord.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "LessonPlanRecord.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := lessonplanrecord.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "LessonPlanRecord.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GradeLevel(); ok {
		if err := lessonplanrecord.GradeLevelValidator(v); err != nil {
			return &ValidationError{Name: "grade_level", err: fmt.Errorf(`ent: validator failed for field "LessonPlanRecord.grade_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionCount(); ok {
		if err := lessonplanrecord.SessionCountValidator(v); err != nil {
			return &ValidationError{Name: "session_count", err: fmt.Errorf(`ent: validator failed for field "LessonPlanRecord.session_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionDurationMinutes(); ok {
		if err := lessonplanrecord.SessionDurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "session_duration_minutes", err: fmt.Errorf(`ent: validator failed for field "LessonPlanRecord.session_duration_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlanJSON(); ok {
		if err := lessonplanrecord.PlanJSONValidator(v); err != nil {
			return &ValidationError{Name: "plan_json", err: fmt.Errorf(`ent: validator failed for field "LessonPlanRecord.plan_json": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonPlanRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonplanrecord.Table, lessonplanrecord.Columns, sqlgraph.NewFieldSpec(lessonplanrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lessonplanrecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(lessonplanrecord.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(lessonplanrecord.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradeLevel(); ok {
		_spec.SetField(lessonplanrecord.FieldGradeLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionCount(); ok {
		_spec.SetField(lessonplanrecord.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionCount(); ok {
		_spec.AddField(lessonplanrecord.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionDurationMinutes(); ok {
		_spec.SetField(lessonplanrecord.FieldSessionDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionDurationMinutes(); ok {
		_spec.AddField(lessonplanrecord.FieldSessionDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlanJSON(); ok {
		_spec.SetField(lessonplanrecord.FieldPlanJSON, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonplanrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonPlanRecordUpdateOne is the builder for updating a single LessonPlanRecord entity.
type LessonPlanRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonPlanRecordMutation
}

// SetTitle sets the "title" field.
func (_u *LessonPlanRecordUpdateOne) SetTitle(v string) *LessonPlanRecordUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonPlanRecordUpdateOne) SetNillableTitle(v *string) *LessonPlanRecordUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *LessonPlanRecordUpdateOne) SetTopic(v string) *LessonPlanRecordUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *LessonPlanRecordUpdateOne) SetNillableTopic(v *string) *LessonPlanRecordUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *LessonPlanRecordUpdateOne) SetSubject(v string) *LessonPlanRecordUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *LessonPlanRecordUpdateOne) SetNillableSubject(v *string) *LessonPlanRecordUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetGradeLevel sets the "grade_level" field.
func (_u *LessonPlanRecordUpdateOne) SetGradeLevel(v string) *LessonPlanRecordUpdateOne {
	_u.mutation.SetGradeLevel(v)
	return _u
}

// SetNillableGradeLevel sets the "grade_level" field if the given value is not nil.
func (_u *LessonPlanRecordUpdateOne) SetNillableGradeLevel(v *string) *LessonPlanRecordUpdateOne {
	if v != nil {
		_u.SetGradeLevel(*v)
	}
	return _u
}

// SetSessionCount sets the "session_count" field.
func (_u *LessonPlanRecordUpdateOne) SetSessionCount(v int) *LessonPlanRecordUpdateOne {
	_u.mutation.ResetSessionCount()
	_u.mutation.SetSessionCount(v)
	return _u
}

// SetNillableSessionCount sets the "session_count" field if the given value is not nil.
func (_u *LessonPlanRecordUpdateOne) SetNillableSessionCount(v *int) *LessonPlanRecordUpdateOne {
	if v != nil {
		_u.SetSessionCount(*v)
	}
	return _u
}

// AddSessionCount adds value to the "session_count" field.
func (_u *LessonPlanRecordUpdateOne) AddSessionCount(v int) *LessonPlanRecordUpdateOne {
	_u.mutation.AddSessionCount(v)
	return _u
}

// SetSessionDurationMinutes sets the "session_duration_minutes" field.
func (_u *LessonPlanRecordUpdateOne) SetSessionDurationMinutes(v int) *LessonPlanRecordUpdateOne {
	_u.mutation.ResetSessionDurationMinutes()
	_u.mutation.SetSessionDurationMinutes(v)
	return _u
}

// SetNillableSessionDurationMinutes sets the "session_duration_minutes" field if the given value is not nil.
func (_u *LessonPlanRecordUpdateOne) SetNillableSessionDurationMinutes(v *int) *LessonPlanRecordUpdateOne {
	if v != nil {
		_u.SetSessionDurationMinutes(*v)
	}
	return _u
}

// AddSessionDurationMinutes adds value to the "session_duration_minutes" field.
func (_u *LessonPlanRecordUpdateOne) AddSessionDurationMinutes(v int) *LessonPlanRecordUpdateOne {
	_u.mutation.AddSessionDurationMinutes(v)
	return _u
}

// SetPlanJSON sets the "plan_json" field.
func (_u *LessonPlanRecordUpdateOne) SetPlanJSON(v string) *LessonPlanRecordUpdateOne {
	_u.mutation.SetPlanJSON(v)
	return _u
}

// SetNillablePlanJSON sets the "plan_json" field if the given value is not nil.
func (_u *LessonPlanRecordUpdateOne) SetNillablePlanJSON(v *string) *LessonPlanRecordUpdateOne {
	if v != nil {
		_u.SetPlanJSON(*v)
	}
	return _u
}

// Mutation returns the LessonPlanRecordMutation object of the builder.
func (_u *LessonPlanRecordUpdateOne) Mutation() *LessonPlanRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonPlanRecordUpdate builder.
func (_u *LessonPlanRecordUpdateOne) Where(ps ...predicate.LessonPlanRecord) *LessonPlanRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonPlanRecordUpdateOne) Select(field string, fields ...string) *LessonPlanRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonPlanRecord entity.
func (_u *LessonPlanRecordUpdateOne) Save(ctx context.Context) (*LessonPlanRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonPlanRecordUpdateOne) SaveX(ctx context.Context) *LessonPlanRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonPlanRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonPlanRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonPlanRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := lessonplanrecord.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "LessonPlanRecord.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := lessonplanrecord.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "LessonPlanRecord.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := lessonplanrecord.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "LessonPlanRecord.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GradeLevel(); ok {
		if err := lessonplanrecord.GradeLevelValidator(v); err != nil {
			return &ValidationError{Name: "grade_level", err: fmt.Errorf(`ent: validator failed for field "LessonPlanRecord.grade_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionCount(); ok {
		if err := lessonplanrecord.SessionCountValidator(v); err != nil {
			return &ValidationError{Name: "session_count", err: fmt.Errorf(`ent: validator failed for field "LessonPlanRecord.session_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionDurationMinutes(); ok {
		if err := lessonplanrecord.SessionDurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "session_duration_minutes", err: fmt.Errorf(`ent: validator failed for field "LessonPlanRecord.session_duration_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlanJSON(); ok {
		if err := lessonplanrecord.PlanJSONValidator(v); err != nil {
			return &ValidationError{Name: "plan_json", err: fmt.Errorf(`ent: validator failed for field "LessonPlanRecord.plan_json": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonPlanRecordUpdateOne) sqlSave(ctx context.Context) (_node *LessonPlanRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonplanrecord.Table, lessonplanrecord.Columns, sqlgraph.NewFieldSpec(lessonplanrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonPlanRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonplanrecord.FieldID)
		for _, f := range fields {
			if !lessonplanrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonplanrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lessonplanrecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(lessonplanrecord.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(lessonplanrecord.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradeLevel(); ok {
		_spec.SetField(lessonplanrecord.FieldGradeLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionCount(); ok {
		_spec.SetField(lessonplanrecord.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionCount(); ok {
		_spec.AddField(lessonplanrecord.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionDurationMinutes(); ok {
		_spec.SetField(lessonplanrecord.FieldSessionDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionDurationMinutes(); ok {
		_spec.AddField(lessonplanrecord.FieldSessionDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlanJSON(); ok {
		_spec.SetField(lessonplanrecord.FieldPlanJSON, field.TypeString, value)
	}
	_node = &LessonPlanRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonplanrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
