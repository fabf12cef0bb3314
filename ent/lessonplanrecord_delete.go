// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lessonforge/ent/lessonplanrecord"
	"github.com/abhisek/lessonforge/ent/predicate"
)

// LessonPlanRecordDelete is the builder for deleting a LessonPlanRecord entity.
type LessonPlanRecordDelete struct {
	config
	hooks    []Hook
	mutation *LessonPlanRecordMutation
}

// Where appends a list predicates to the LessonPlanRecordDelete builder.
func (_d *LessonPlanRecordDelete) Where(ps ...predicate.LessonPlanRecord) *LessonPlanRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LessonPlanRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LessonPlanRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LessonPlanRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(lessonplanrecord.Table, sqlgraph.NewFieldSpec(lessonplanrecord.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// LessonPlanRecordDeleteOne is the builder for deleting a single LessonPlanRecord entity.
type LessonPlanRecordDeleteOne struct {
	_d *LessonPlanRecordDelete
}

// Where appends a list predicates to the LessonPlanRecordDelete builder.
func (_d *LessonPlanRecordDeleteOne) Where(ps ...predicate.LessonPlanRecord) *LessonPlanRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LessonPlanRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{lessonplanrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LessonPlanRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
