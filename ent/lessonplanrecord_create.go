// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lessonforge/ent/lessonplanrecord"
)

// LessonPlanRecordCreate is the builder for creating a LessonPlanRecord entity.
type LessonPlanRecordCreate struct {
	config
	mutation *LessonPlanRecordMutation
	hooks    []Hook
}

// SetLessonID sets the "lesson_id" field.
func (_c *LessonPlanRecordCreate) SetLessonID(v string) *LessonPlanRecordCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *LessonPlanRecordCreate) SetTitle(v string) *LessonPlanRecordCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *LessonPlanRecordCreate) SetTopic(v string) *LessonPlanRecordCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *LessonPlanRecordCreate) SetSubject(v string) *LessonPlanRecordCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetGradeLevel sets the "grade_level" field.
func (_c *LessonPlanRecordCreate) SetGradeLevel(v string) *LessonPlanRecordCreate {
	_c.mutation.SetGradeLevel(v)
	return _c
}

// SetSessionCount sets the "session_count" field.
func (_c *LessonPlanRecordCreate) SetSessionCount(v int) *LessonPlanRecordCreate {
	_c.mutation.SetSessionCount(v)
	return _c
}

// SetSessionDurationMinutes sets the "session_duration_minutes" field.
func (_c *LessonPlanRecordCreate) SetSessionDurationMinutes(v int) *LessonPlanRecordCreate {
	_c.mutation.SetSessionDurationMinutes(v)
	return _c
}

// SetPlanJSON sets the "plan_json" field.
func (_c *LessonPlanRecordCreate) SetPlanJSON(v string) *LessonPlanRecordCreate {
	_c.mutation.SetPlanJSON(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LessonPlanRecordCreate) SetCreatedAt(v time.Time) *LessonPlanRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LessonPlanRecordCreate) SetNillableCreatedAt(v *time.Time) *LessonPlanRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the LessonPlanRecordMutation object of the builder.
func (_c *LessonPlanRecordCreate) Mutation() *LessonPlanRecordMutation {
	return _c.mutation
}

// Save creates the LessonPlanRecord in the database.
func (_c *LessonPlanRecordCreate) Save(ctx context.Context) (*LessonPlanRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonPlanRecordCreate) SaveX(ctx context.Context) *LessonPlanRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonPlanRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonPlanRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonPlanRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lessonplanrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonPlanRecordCreate) check() error {
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "LessonPlanRecord.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := lessonplanrecord.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonPlanRecord.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "LessonPlanRecord.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := lessonplanrecord.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "LessonPlanRecord.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "LessonPlanRecord.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := lessonplanrecord.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "LessonPlanRecord.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "LessonPlanRecord.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := lessonplanrecord.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "LessonPlanRecord.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GradeLevel(); !ok {
		return &ValidationError{Name: "grade_level", err: errors.New(`ent: missing required field "LessonPlanRecord.grade_level"`)}
	}
	if v, ok := _c.mutation.GradeLevel(); ok {
		if err := lessonplanrecord.GradeLevelValidator(v); err != nil {
			return &ValidationError{Name: "grade_level", err: fmt.Errorf(`ent: validator failed for field "LessonPlanRecord.grade_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionCount(); !ok {
		return &ValidationError{Name: "session_count", err: errors.New(`ent: missing required field "LessonPlanRecord.session_count"`)}
	}
	if v, ok := _c.mutation.SessionCount(); ok {
		if err := lessonplanrecord.SessionCountValidator(v); err != nil {
			return &ValidationError{Name: "session_count", err: fmt.Errorf(`ent: validator failed for field "LessonPlanRecord.session_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionDurationMinutes(); !ok {
		return &ValidationError{Name: "session_duration_minutes", err: errors.New(`ent: missing required field "LessonPlanRecord.session_duration_minutes"`)}
	}
	if v, ok := _c.mutation.SessionDurationMinutes(); ok {
		if err := lessonplanrecord.SessionDurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "session_duration_minutes", err: fmt.Errorf(`ent: validator failed for field "LessonPlanRecord.session_duration_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PlanJSON(); !ok {
		return &ValidationError{Name: "plan_json", err: errors.New(`ent: missing required field "LessonPlanRecord.plan_json"`)}
	}
	if v, ok := _c.mutation.PlanJSON(); ok {
		if err := lessonplanrecord.PlanJSONValidator(v); err != nil {
			return &ValidationError{Name: "plan_json", err: fmt.Errorf(`ent: validator failed for field "LessonPlanRecord.plan_json": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LessonPlanRecord.created_at"`)}
	}
	return nil
}

func (_c *LessonPlanRecordCreate) sqlSave(ctx context.Context) (*LessonPlanRecord, error) {
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

func (_c *LessonPlanRecordCreate) createSpec() (*LessonPlanRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonPlanRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessonplanrecord.Table, sqlgraph.NewFieldSpec(lessonplanrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(lessonplanrecord.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(lessonplanrecord.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(lessonplanrecord.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(lessonplanrecord.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.GradeLevel(); ok {
		_spec.SetField(lessonplanrecord.FieldGradeLevel, field.TypeString, value)
		_node.GradeLevel = value
	}
	if value, ok := _c.mutation.SessionCount(); ok {
		_spec.SetField(lessonplanrecord.FieldSessionCount, field.TypeInt, value)
		_node.SessionCount = value
	}
	if value, ok := _c.mutation.SessionDurationMinutes(); ok {
		_spec.SetField(lessonplanrecord.FieldSessionDurationMinutes, field.TypeInt, value)
		_node.SessionDurationMinutes = value
	}
	if value, ok := _c.mutation.PlanJSON(); ok {
		_spec.SetField(lessonplanrecord.FieldPlanJSON, field.TypeString, value)
		_node.PlanJSON = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lessonplanrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// LessonPlanRecordCreateBulk is the builder for creating many LessonPlanRecord entities in bulk.
type LessonPlanRecordCreateBulk struct {
	config
	err      error
	builders []*LessonPlanRecordCreate
}

// Save creates the LessonPlanRecord entities in the database.
func (_c *LessonPlanRecordCreateBulk) Save(ctx context.Context) ([]*LessonPlanRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonPlanRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonPlanRecordMutation)
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
func (_c *LessonPlanRecordCreateBulk) SaveX(ctx context.Context) []*LessonPlanRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonPlanRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonPlanRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
