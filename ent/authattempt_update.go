// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fiber-ent-market-pg/ent/authattempt"
	"fiber-ent-market-pg/ent/predicate"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// AuthAttemptUpdate is the builder for updating AuthAttempt entities.
type AuthAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *AuthAttemptMutation
}

// Where appends a list predicates to the AuthAttemptUpdate builder.
func (_u *AuthAttemptUpdate) Where(ps ...predicate.AuthAttempt) *AuthAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIPAddress sets the "ip_address" field.
func (_u *AuthAttemptUpdate) SetIPAddress(v string) *AuthAttemptUpdate {
	_u.mutation.SetIPAddress(v)
	return _u
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (_u *AuthAttemptUpdate) SetNillableIPAddress(v *string) *AuthAttemptUpdate {
	if v != nil {
		_u.SetIPAddress(*v)
	}
	return _u
}

// SetIdentifier sets the "identifier" field.
func (_u *AuthAttemptUpdate) SetIdentifier(v string) *AuthAttemptUpdate {
	_u.mutation.SetIdentifier(v)
	return _u
}

// SetNillableIdentifier sets the "identifier" field if the given value is not nil.
func (_u *AuthAttemptUpdate) SetNillableIdentifier(v *string) *AuthAttemptUpdate {
	if v != nil {
		_u.SetIdentifier(*v)
	}
	return _u
}

// ClearIdentifier clears the value of the "identifier" field.
func (_u *AuthAttemptUpdate) ClearIdentifier() *AuthAttemptUpdate {
	_u.mutation.ClearIdentifier()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AuthAttemptUpdate) SetSuccess(v bool) *AuthAttemptUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AuthAttemptUpdate) SetNillableSuccess(v *bool) *AuthAttemptUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// Mutation returns the AuthAttemptMutation object of the builder.
func (_u *AuthAttemptUpdate) Mutation() *AuthAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuthAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuthAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuthAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuthAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuthAttemptUpdate) check() error {
	if v, ok := _u.mutation.IPAddress(); ok {
		if err := authattempt.IPAddressValidator(v); err != nil {
			return &ValidationError{Name: "ip_address", err: fmt.Errorf(`ent: validator failed for field "AuthAttempt.ip_address": %w`, err)}
		}
	}
	return nil
}

func (_u *AuthAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(authattempt.Table, authattempt.Columns, sqlgraph.NewFieldSpec(authattempt.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IPAddress(); ok {
		_spec.SetField(authattempt.FieldIPAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.Identifier(); ok {
		_spec.SetField(authattempt.FieldIdentifier, field.TypeString, value)
	}
	if _u.mutation.IdentifierCleared() {
		_spec.ClearField(authattempt.FieldIdentifier, field.TypeString)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(authattempt.FieldSuccess, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{authattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuthAttemptUpdateOne is the builder for updating a single AuthAttempt entity.
type AuthAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuthAttemptMutation
}

// SetIPAddress sets the "ip_address" field.
func (_u *AuthAttemptUpdateOne) SetIPAddress(v string) *AuthAttemptUpdateOne {
	_u.mutation.SetIPAddress(v)
	return _u
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (_u *AuthAttemptUpdateOne) SetNillableIPAddress(v *string) *AuthAttemptUpdateOne {
	if v != nil {
		_u.SetIPAddress(*v)
	}
	return _u
}

// SetIdentifier sets the "identifier" field.
func (_u *AuthAttemptUpdateOne) SetIdentifier(v string) *AuthAttemptUpdateOne {
	_u.mutation.SetIdentifier(v)
	return _u
}

// SetNillableIdentifier sets the "identifier" field if the given value is not nil.
func (_u *AuthAttemptUpdateOne) SetNillableIdentifier(v *string) *AuthAttemptUpdateOne {
	if v != nil {
		_u.SetIdentifier(*v)
	}
	return _u
}

// ClearIdentifier clears the value of the "identifier" field.
func (_u *AuthAttemptUpdateOne) ClearIdentifier() *AuthAttemptUpdateOne {
	_u.mutation.ClearIdentifier()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AuthAttemptUpdateOne) SetSuccess(v bool) *AuthAttemptUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AuthAttemptUpdateOne) SetNillableSuccess(v *bool) *AuthAttemptUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// Mutation returns the AuthAttemptMutation object of the builder.
func (_u *AuthAttemptUpdateOne) Mutation() *AuthAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the AuthAttemptUpdate builder.
func (_u *AuthAttemptUpdateOne) Where(ps ...predicate.AuthAttempt) *AuthAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuthAttemptUpdateOne) Select(field string, fields ...string) *AuthAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuthAttempt entity.
func (_u *AuthAttemptUpdateOne) Save(ctx context.Context) (*AuthAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuthAttemptUpdateOne) SaveX(ctx context.Context) *AuthAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuthAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuthAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuthAttemptUpdateOne) check() error {
	if v, ok := _u.mutation.IPAddress(); ok {
		if err := authattempt.IPAddressValidator(v); err != nil {
			return &ValidationError{Name: "ip_address", err: fmt.Errorf(`ent: validator failed for field "AuthAttempt.ip_address": %w`, err)}
		}
	}
	return nil
}

func (_u *AuthAttemptUpdateOne) sqlSave(ctx context.Context) (_node *AuthAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(authattempt.Table, authattempt.Columns, sqlgraph.NewFieldSpec(authattempt.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuthAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, authattempt.FieldID)
		for _, f := range fields {
			if !authattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != authattempt.FieldID {
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
	if value, ok := _u.mutation.IPAddress(); ok {
		_spec.SetField(authattempt.FieldIPAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.Identifier(); ok {
		_spec.SetField(authattempt.FieldIdentifier, field.TypeString, value)
	}
	if _u.mutation.IdentifierCleared() {
		_spec.ClearField(authattempt.FieldIdentifier, field.TypeString)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(authattempt.FieldSuccess, field.TypeBool, value)
	}
	_node = &AuthAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{authattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
