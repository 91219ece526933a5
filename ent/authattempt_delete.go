// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fiber-ent-market-pg/ent/authattempt"
	"fiber-ent-market-pg/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// AuthAttemptDelete is the builder for deleting a AuthAttempt entity.
type AuthAttemptDelete struct {
	config
	hooks    []Hook
	mutation *AuthAttemptMutation
}

// Where appends a list predicates to the AuthAttemptDelete builder.
func (_d *AuthAttemptDelete) Where(ps ...predicate.AuthAttempt) *AuthAttemptDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AuthAttemptDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AuthAttemptDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AuthAttemptDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(authattempt.Table, sqlgraph.NewFieldSpec(authattempt.FieldID, field.TypeUUID))
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

// AuthAttemptDeleteOne is the builder for deleting a single AuthAttempt entity.
type AuthAttemptDeleteOne struct {
	_d *AuthAttemptDelete
}

// Where appends a list predicates to the AuthAttemptDelete builder.
func (_d *AuthAttemptDeleteOne) Where(ps ...predicate.AuthAttempt) *AuthAttemptDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AuthAttemptDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{authattempt.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AuthAttemptDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
