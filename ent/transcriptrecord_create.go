// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lessonforge/ent/transcriptrecord"
)

// TranscriptRecordCreate is the builder for creating a TranscriptRecord entity.
type TranscriptRecordCreate struct {
	config
	mutation *TranscriptRecordMutation
	hooks    []Hook
}

// SetText sets the "text" field.
func (_c *TranscriptRecordCreate) SetText(v string) *TranscriptRecordCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *TranscriptRecordCreate) SetSource(v string) *TranscriptRecordCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *TranscriptRecordCreate) SetConfidence(v float64) *TranscriptRecordCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *TranscriptRecordCreate) SetNillableConfidence(v *float64) *TranscriptRecordCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *TranscriptRecordCreate) SetLessonID(v string) *TranscriptRecordCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_c *TranscriptRecordCreate) SetNillableLessonID(v *string) *TranscriptRecordCreate {
	if v != nil {
		_c.SetLessonID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TranscriptRecordCreate) SetCreatedAt(v time.Time) *TranscriptRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TranscriptRecordCreate) SetNillableCreatedAt(v *time.Time) *TranscriptRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the TranscriptRecordMutation object of the builder.
func (_c *TranscriptRecordCreate) Mutation() *TranscriptRecordMutation {
	return _c.mutation
}

// Save creates the TranscriptRecord in the database.
func (_c *TranscriptRecordCreate) Save(ctx context.Context) (*TranscriptRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TranscriptRecordCreate) SaveX(ctx context.Context) *TranscriptRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TranscriptRecordCreate) defaults() {
	if _, ok := _c.mutation.LessonID(); !ok {
		v := transcriptrecord.DefaultLessonID
		_c.mutation.SetLessonID(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := transcriptrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TranscriptRecordCreate) check() error {
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "TranscriptRecord.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := transcriptrecord.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "TranscriptRecord.text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "TranscriptRecord.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := transcriptrecord.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "TranscriptRecord.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "TranscriptRecord.lesson_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TranscriptRecord.created_at"`)}
	}
	return nil
}

func (_c *TranscriptRecordCreate) sqlSave(ctx context.Context) (*TranscriptRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TranscriptRecordCreate) createSpec() (*TranscriptRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &TranscriptRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transcriptrecord.Table, sqlgraph.NewFieldSpec(transcriptrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(transcriptrecord.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(transcriptrecord.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(transcriptrecord.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(transcriptrecord.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(transcriptrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TranscriptRecordCreateBulk is the builder for creating many TranscriptRecord entities in bulk.
type TranscriptRecordCreateBulk struct {
	config
	err      error
	builders []*TranscriptRecordCreate
}

// Save creates the TranscriptRecord entities in the database.
func (_c *TranscriptRecordCreateBulk) Save(ctx context.Context) ([]*TranscriptRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TranscriptRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TranscriptRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TranscriptRecordCreateBulk) SaveX(ctx context.Context) []*TranscriptRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
