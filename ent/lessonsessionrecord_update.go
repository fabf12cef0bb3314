// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lessonforge/ent/lessonsessionrecord"
	"github.com/abhisek/lessonforge/ent/predicate"
)

// LessonSessionRecordUpdate is the builder for updating LessonSessionRecord entities.
type LessonSessionRecordUpdate struct {
	config
	hooks    []Hook
	mutation *LessonSessionRecordMutation
}

// Where appends a list predicates to the LessonSessionRecordUpdate builder.
func (_u *LessonSessionRecordUpdate) Where(ps ...predicate.LessonSessionRecord) *LessonSessionRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionNumber sets the "session_number" field.
func (_u *LessonSessionRecordUpdate) SetSessionNumber(v int) *LessonSessionRecordUpdate {
	_u.mutation.ResetSessionNumber()
	_u.mutation.SetSessionNumber(v)
	return _u
}

// SetNillableSessionNumber sets the "session_number" field if the given value is not nil.
func (_u *LessonSessionRecordUpdate) SetNillableSessionNumber(v *int) *LessonSessionRecordUpdate {
	if v != nil {
		_u.SetSessionNumber(*v)
	}
	return _u
}

// AddSessionNumber adds value to the "session_number" field.
func (_u *LessonSessionRecordUpdate) AddSessionNumber(v int) *LessonSessionRecordUpdate {
	_u.mutation.AddSessionNumber(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonSessionRecordUpdate) SetTitle(v string) *LessonSessionRecordUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonSessionRecordUpdate) SetNillableTitle(v *string) *LessonSessionRecordUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetObjectivesJSON sets the "objectives_json" field.
func (_u *LessonSessionRecordUpdate) SetObjectivesJSON(v string) *LessonSessionRecordUpdate {
	_u.mutation.SetObjectivesJSON(v)
	return _u
}

// SetNillableObjectivesJSON sets the "objectives_json" field if the given value is not nil.
func (_u *LessonSessionRecordUpdate) SetNillableObjectivesJSON(v *string) *LessonSessionRecordUpdate {
	if v != nil {
		_u.SetObjectivesJSON(*v)
	}
	return _u
}

// SetActivitiesJSON sets the "activities_json" field.
func (_u *LessonSessionRecordUpdate) SetActivitiesJSON(v string) *LessonSessionRecordUpdate {
	_u.mutation.SetActivitiesJSON(v)
	return _u
}

// SetNillableActivitiesJSON sets the "activities_json" field if the given value is not nil.
func (_u *LessonSessionRecordUpdate) SetNillableActivitiesJSON(v *string) *LessonSessionRecordUpdate {
	if v != nil {
		_u.SetActivitiesJSON(*v)
	}
	return _u
}

// SetWorksheetJSON sets the "worksheet_json" field.
func (_u *LessonSessionRecordUpdate) SetWorksheetJSON(v string) *LessonSessionRecordUpdate {
	_u.mutation.SetWorksheetJSON(v)
	return _u
}

// SetNillableWorksheetJSON sets the "worksheet_json" field if the given value is not nil.
func (_u *LessonSessionRecordUpdate) SetNillableWorksheetJSON(v *string) *LessonSessionRecordUpdate {
	if v != nil {
		_u.SetWorksheetJSON(*v)
	}
	return _u
}

// Mutation returns the LessonSessionRecordMutation object of the builder.
func (_u *LessonSessionRecordUpdate) Mutation() *LessonSessionRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonSessionRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonSessionRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonSessionRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonSessionRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonSessionRecordUpdate) check() error {
	if v, ok := _u.mutation.SessionNumber(); ok {
		if err := lessonsessionrecord.SessionNumberValidator(v); err != nil {
			return &ValidationError{Name: "session_number", err: fmt.Errorf(`ent: validator failed for field "LessonSessionRecord.session_number": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonSessionRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonsessionrecord.Table, lessonsessionrecord.Columns, sqlgraph.NewFieldSpec(lessonsessionrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionNumber(); ok {
		_spec.SetField(lessonsessionrecord.FieldSessionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionNumber(); ok {
		_spec.AddField(lessonsessionrecord.FieldSessionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lessonsessionrecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ObjectivesJSON(); ok {
		_spec.SetField(lessonsessionrecord.FieldObjectivesJSON, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivitiesJSON(); ok {
		_spec.SetField(lessonsessionrecord.FieldActivitiesJSON, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorksheetJSON(); ok {
		_spec.SetField(lessonsessionrecord.FieldWorksheetJSON, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonsessionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonSessionRecordUpdateOne is the builder for updating a single LessonSessionRecord entity.
type LessonSessionRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonSessionRecordMutation
}

// SetSessionNumber sets the "session_number" field.
func (_u *LessonSessionRecordUpdateOne) SetSessionNumber(v int) *LessonSessionRecordUpdateOne {
	_u.mutation.ResetSessionNumber()
	_u.mutation.SetSessionNumber(v)
	return _u
}

// SetNillableSessionNumber sets the "session_number" field if the given value is not nil.
func (_u *LessonSessionRecordUpdateOne) SetNillableSessionNumber(v *int) *LessonSessionRecordUpdateOne {
	if v != nil {
		_u.SetSessionNumber(*v)
	}
	return _u
}

// AddSessionNumber adds value to the "session_number" field.
func (_u *LessonSessionRecordUpdateOne) AddSessionNumber(v int) *LessonSessionRecordUpdateOne {
	_u.mutation.AddSessionNumber(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonSessionRecordUpdateOne) SetTitle(v string) *LessonSessionRecordUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonSessionRecordUpdateOne) SetNillableTitle(v *string) *LessonSessionRecordUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetObjectivesJSON sets the "objectives_json" field.
func (_u *LessonSessionRecordUpdateOne) SetObjectivesJSON(v string) *LessonSessionRecordUpdateOne {
	_u.mutation.SetObjectivesJSON(v)
	return _u
}

// SetNillableObjectivesJSON sets the "objectives_json" field if the given value is not nil.
func (_u *LessonSessionRecordUpdateOne) SetNillableObjectivesJSON(v *string) *LessonSessionRecordUpdateOne {
	if v != nil {
		_u.SetObjectivesJSON(*v)
	}
	return _u
}

// SetActivitiesJSON sets the "activities_json" field.
func (_u *LessonSessionRecordUpdateOne) SetActivitiesJSON(v string) *LessonSessionRecordUpdateOne {
	_u.mutation.SetActivitiesJSON(v)
	return _u
}

// SetNillableActivitiesJSON sets the "activities_json" field if the given value is not nil.
func (_u *LessonSessionRecordUpdateOne) SetNillableActivitiesJSON(v *string) *LessonSessionRecordUpdateOne {
	if v != nil {
		_u.SetActivitiesJSON(*v)
	}
	return _u
}

// SetWorksheetJSON sets the "worksheet_json" field.
func (_u *LessonSessionRecordUpdateOne) SetWorksheetJSON(v string) *LessonSessionRecordUpdateOne {
	_u.mutation.SetWorksheetJSON(v)
	return _u
}

// SetNillableWorksheetJSON sets the "worksheet_json" field if the given value is not nil.
func (_u *LessonSessionRecordUpdateOne) SetNillableWorksheetJSON(v *string) *LessonSessionRecordUpdateOne {
	if v != nil {
		_u.SetWorksheetJSON(*v)
	}
	return _u
}

// Mutation returns the LessonSessionRecordMutation object of the builder.
func (_u *LessonSessionRecordUpdateOne) Mutation() *LessonSessionRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonSessionRecordUpdate builder.
func (_u *LessonSessionRecordUpdateOne) Where(ps ...predicate.LessonSessionRecord) *LessonSessionRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonSessionRecordUpdateOne) Select(field string, fields ...string) *LessonSessionRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonSessionRecord entity.
func (_u *LessonSessionRecordUpdateOne) Save(ctx context.Context) (*LessonSessionRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonSessionRecordUpdateOne) SaveX(ctx context.Context) *LessonSessionRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonSessionRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonSessionRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonSessionRecordUpdateOne) check() error {
	if v, ok := _u.mutation.SessionNumber(); ok {
		if err := lessonsessionrecord.SessionNumberValidator(v); err != nil {
			return &ValidationError{Name: "session_number", err: fmt.Errorf(`ent: validator failed for field "LessonSessionRecord.session_number": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonSessionRecordUpdateOne) sqlSave(ctx context.Context) (_node *LessonSessionRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonsessionrecord.Table, lessonsessionrecord.Columns, sqlgraph.NewFieldSpec(lessonsessionrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonSessionRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonsessionrecord.FieldID)
		for _, f := range fields {
			if !lessonsessionrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonsessionrecord.FieldID {
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
	if value, ok := _u.mutation.SessionNumber(); ok {
		_spec.SetField(lessonsessionrecord.FieldSessionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionNumber(); ok {
		_spec.AddField(lessonsessionrecord.FieldSessionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lessonsessionrecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ObjectivesJSON(); ok {
		_spec.SetField(lessonsessionrecord.FieldObjectivesJSON, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivitiesJSON(); ok {
		_spec.SetField(lessonsessionrecord.FieldActivitiesJSON, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorksheetJSON(); ok {
		_spec.SetField(lessonsessionrecord.FieldWorksheetJSON, field.TypeString, value)
	}
	_node = &LessonSessionRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonsessionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
