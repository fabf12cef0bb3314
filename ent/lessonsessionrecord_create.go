// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lessonforge/ent/lessonsessionrecord"
)

// LessonSessionRecordCreate is the builder for creating a LessonSessionRecord entity.
type LessonSessionRecordCreate struct {
	config
	mutation *LessonSessionRecordMutation
	hooks    []Hook
}

// SetLessonID sets the "lesson_id" field.
func (_c *LessonSessionRecordCreate) SetLessonID(v string) *LessonSessionRecordCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetSessionNumber sets the "session_number" field.
func (_c *LessonSessionRecordCreate) SetSessionNumber(v int) *LessonSessionRecordCreate {
	_c.mutation.SetSessionNumber(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *LessonSessionRecordCreate) SetTitle(v string) *LessonSessionRecordCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetObjectivesJSON sets the "objectives_json" field.
func (_c *LessonSessionRecordCreate) SetObjectivesJSON(v string) *LessonSessionRecordCreate {
	_c.mutation.SetObjectivesJSON(v)
	return _c
}

// SetNillableObjectivesJSON sets the "objectives_json" field if the given value is not nil.
func (_c *LessonSessionRecordCreate) SetNillableObjectivesJSON(v *string) *LessonSessionRecordCreate {
	if v != nil {
		_c.SetObjectivesJSON(*v)
	}
	return _c
}

// SetActivitiesJSON sets the "activities_json" field.
func (_c *LessonSessionRecordCreate) SetActivitiesJSON(v string) *LessonSessionRecordCreate {
	_c.mutation.SetActivitiesJSON(v)
	return _c
}

// SetNillableActivitiesJSON sets the "activities_json" field if the given value is not nil.
func (_c *LessonSessionRecordCreate) SetNillableActivitiesJSON(v *string) *LessonSessionRecordCreate {
	if v != nil {
		_c.SetActivitiesJSON(*v)
	}
	return _c
}

// SetWorksheetJSON sets the "worksheet_json" field.
func (_c *LessonSessionRecordCreate) SetWorksheetJSON(v string) *LessonSessionRecordCreate {
	_c.mutation.SetWorksheetJSON(v)
	return _c
}

// SetNillableWorksheetJSON sets the "worksheet_json" field if the given value is not nil.
func (_c *LessonSessionRecordCreate) SetNillableWorksheetJSON(v *string) *LessonSessionRecordCreate {
	if v != nil {
		_c.SetWorksheetJSON(*v)
	}
	return _c
}

// Mutation returns the LessonSessionRecordMutation object of the builder.
func (_c *LessonSessionRecordCreate) Mutation() *LessonSessionRecordMutation {
	return _c.mutation
}

// Save creates the LessonSessionRecord in the database.
func (_c *LessonSessionRecordCreate) Save(ctx context.Context) (*LessonSessionRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonSessionRecordCreate) SaveX(ctx context.Context) *LessonSessionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonSessionRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonSessionRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonSessionRecordCreate) defaults() {
	if _, ok := _c.mutation.ObjectivesJSON(); !ok {
		v := lessonsessionrecord.DefaultObjectivesJSON
		_c.mutation.SetObjectivesJSON(v)
	}
	if _, ok := _c.mutation.ActivitiesJSON(); !ok {
		v := lessonsessionrecord.DefaultActivitiesJSON
		_c.mutation.SetActivitiesJSON(v)
	}
	if _, ok := _c.mutation.WorksheetJSON(); !ok {
		v := lessonsessionrecord.DefaultWorksheetJSON
		_c.mutation.SetWorksheetJSON(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonSessionRecordCreate) check() error {
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "LessonSessionRecord.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := lessonsessionrecord.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonSessionRecord.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionNumber(); !ok {
		return &ValidationError{Name: "session_number", err: errors.New(`ent: missing required field "LessonSessionRecord.session_number"`)}
	}
	if v, ok := _c.mutation.SessionNumber(); ok {
		if err := lessonsessionrecord.SessionNumberValidator(v); err != nil {
			return &ValidationError{Name: "session_number", err: fmt.Errorf(`ent: validator failed for field "LessonSessionRecord.session_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "LessonSessionRecord.title"`)}
	}
	if _, ok := _c.mutation.ObjectivesJSON(); !ok {
		return &ValidationError{Name: "objectives_json", err: errors.New(`ent: missing required field "LessonSessionRecord.objectives_json"`)}
	}
	if _, ok := _c.mutation.ActivitiesJSON(); !ok {
		return &ValidationError{Name: "activities_json", err: errors.New(`ent: missing required field "LessonSessionRecord.activities_json"`)}
	}
	if _, ok := _c.mutation.WorksheetJSON(); !ok {
		return &ValidationError{Name: "worksheet_json", err: errors.New(`ent: missing required field "LessonSessionRecord.worksheet_json"`)}
	}
	return nil
}

func (_c *LessonSessionRecordCreate) sqlSave(ctx context.Context) (*LessonSessionRecord, error) {
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

func (_c *LessonSessionRecordCreate) createSpec() (*LessonSessionRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonSessionRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessonsessionrecord.Table, sqlgraph.NewFieldSpec(lessonsessionrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(lessonsessionrecord.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.SessionNumber(); ok {
		_spec.SetField(lessonsessionrecord.FieldSessionNumber, field.TypeInt, value)
		_node.SessionNumber = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(lessonsessionrecord.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.ObjectivesJSON(); ok {
		_spec.SetField(lessonsessionrecord.FieldObjectivesJSON, field.TypeString, value)
		_node.ObjectivesJSON = value
	}
	if value, ok := _c.mutation.ActivitiesJSON(); ok {
		_spec.SetField(lessonsessionrecord.FieldActivitiesJSON, field.TypeString, value)
		_node.ActivitiesJSON = value
	}
	if value, ok := _c.mutation.WorksheetJSON(); ok {
		_spec.SetField(lessonsessionrecord.FieldWorksheetJSON, field.TypeString, value)
		_node.WorksheetJSON = value
	}
	return _node, _spec
}

// LessonSessionRecordCreateBulk is the builder for creating many LessonSessionRecord entities in bulk.
type LessonSessionRecordCreateBulk struct {
	config
	err      error
	builders []*LessonSessionRecordCreate
}

// Save creates the LessonSessionRecord entities in the database.
func (_c *LessonSessionRecordCreateBulk) Save(ctx context.Context) ([]*LessonSessionRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonSessionRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonSessionRecordMutation)
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
func (_c *LessonSessionRecordCreateBulk) SaveX(ctx context.Context) []*LessonSessionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonSessionRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonSessionRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
