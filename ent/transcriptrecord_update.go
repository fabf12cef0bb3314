// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lessonforge/ent/predicate"
	"github.com/abhisek/lessonforge/ent/transcriptrecord"
)

// TranscriptRecordUpdate is the builder for updating TranscriptRecord entities.
type TranscriptRecordUpdate struct {
	config
	hooks    []Hook
	mutation *TranscriptRecordMutation
}

// Where appends a list predicates to the TranscriptRecordUpdate builder.
func (_u *TranscriptRecordUpdate) Where(ps ...predicate.TranscriptRecord) *TranscriptRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetText sets the "text" field.
func (_u *TranscriptRecordUpdate) SetText(v string) *TranscriptRecordUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *TranscriptRecordUpdate) SetNillableText(v *string) *TranscriptRecordUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *TranscriptRecordUpdate) SetSource(v string) *TranscriptRecordUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *TranscriptRecordUpdate) SetNillableSource(v *string) *TranscriptRecordUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *TranscriptRecordUpdate) SetConfidence(v float64) *TranscriptRecordUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *TranscriptRecordUpdate) SetNillableConfidence(v *float64) *TranscriptRecordUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *TranscriptRecordUpdate) AddConfidence(v float64) *TranscriptRecordUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *TranscriptRecordUpdate) ClearConfidence() *TranscriptRecordUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *TranscriptRecordUpdate) SetLessonID(v string) *TranscriptRecordUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *TranscriptRecordUpdate) SetNillableLessonID(v *string) *TranscriptRecordUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// Mutation returns the TranscriptRecordMutation object of the builder.
func (_u *TranscriptRecordUpdate) Mutation() *TranscriptRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TranscriptRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TranscriptRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptRecordUpdate) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := transcriptrecord.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "TranscriptRecord.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := transcriptrecord.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "TranscriptRecord.source": %w`, err)}
		}
	}
	return nil
}

func (_u *TranscriptRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcriptrecord.Table, transcriptrecord.Columns, sqlgraph.NewFieldSpec(transcriptrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(transcriptrecord.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(transcriptrecord.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(transcriptrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(transcriptrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(transcriptrecord.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(transcriptrecord.FieldLessonID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcriptrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TranscriptRecordUpdateOne is the builder for updating a single TranscriptRecord entity.
type TranscriptRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TranscriptRecordMutation
}

// SetText sets the "text" field.
func (_u *TranscriptRecordUpdateOne) SetText(v string) *TranscriptRecordUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *TranscriptRecordUpdateOne) SetNillableText(v *string) *TranscriptRecordUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *TranscriptRecordUpdateOne) SetSource(v string) *TranscriptRecordUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *TranscriptRecordUpdateOne) SetNillableSource(v *string) *TranscriptRecordUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *TranscriptRecordUpdateOne) SetConfidence(v float64) *TranscriptRecordUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *TranscriptRecordUpdateOne) SetNillableConfidence(v *float64) *TranscriptRecordUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *TranscriptRecordUpdateOne) AddConfidence(v float64) *TranscriptRecordUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *TranscriptRecordUpdateOne) ClearConfidence() *TranscriptRecordUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *TranscriptRecordUpdateOne) SetLessonID(v string) *TranscriptRecordUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *TranscriptRecordUpdateOne) SetNillableLessonID(v *string) *TranscriptRecordUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// Mutation returns the TranscriptRecordMutation object of the builder.
func (_u *TranscriptRecordUpdateOne) Mutation() *TranscriptRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the TranscriptRecordUpdate builder.
func (_u *TranscriptRecordUpdateOne) Where(ps ...predicate.TranscriptRecord) *TranscriptRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TranscriptRecordUpdateOne) Select(field string, fields ...string) *TranscriptRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TranscriptRecord entity.
func (_u *TranscriptRecordUpdateOne) Save(ctx context.Context) (*TranscriptRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptRecordUpdateOne) SaveX(ctx context.Context) *TranscriptRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TranscriptRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := transcriptrecord.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "TranscriptRecord.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := transcriptrecord.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "TranscriptRecord.source": %w`, err)}
		}
	}
	return nil
}

func (_u *TranscriptRecordUpdateOne) sqlSave(ctx context.Context) (_node *TranscriptRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcriptrecord.Table, transcriptrecord.Columns, sqlgraph.NewFieldSpec(transcriptrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TranscriptRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transcriptrecord.FieldID)
		for _, f := range fields {
			if !transcriptrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transcriptrecord.FieldID {
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
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(transcriptrecord.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(transcriptrecord.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(transcriptrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(transcriptrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(transcriptrecord.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(transcriptrecord.FieldLessonID, field.TypeString, value)
	}
	_node = &TranscriptRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcriptrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
