// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fiber-ent-market-pg/ent/authattempt"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// AuthAttemptCreate is the builder for creating a AuthAttempt entity.
type AuthAttemptCreate struct {
	config
	mutation *AuthAttemptMutation
	hooks    []Hook
}

// SetIPAddress sets the "ip_address" field.
func (_c *AuthAttemptCreate) SetIPAddress(v string) *AuthAttemptCreate {
	_c.mutation.SetIPAddress(v)
	return _c
}

// SetIdentifier sets the "identifier" field.
func (_c *AuthAttemptCreate) SetIdentifier(v string) *AuthAttemptCreate {
	_c.mutation.SetIdentifier(v)
	return _c
}

// SetNillableIdentifier sets the "identifier" field if the given value is not nil.
func (_c *AuthAttemptCreate) SetNillableIdentifier(v *string) *AuthAttemptCreate {
	if v != nil {
		_c.SetIdentifier(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *AuthAttemptCreate) SetSuccess(v bool) *AuthAttemptCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AuthAttemptCreate) SetCreatedAt(v time.Time) *AuthAttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AuthAttemptCreate) SetNillableCreatedAt(v *time.Time) *AuthAttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AuthAttemptCreate) SetID(v uuid.UUID) *AuthAttemptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AuthAttemptCreate) SetNillableID(v *uuid.UUID) *AuthAttemptCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AuthAttemptMutation object of the builder.
func (_c *AuthAttemptCreate) Mutation() *AuthAttemptMutation {
	return _c.mutation
}

// Save creates the AuthAttempt in the database.
func (_c *AuthAttemptCreate) Save(ctx context.Context) (*AuthAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuthAttemptCreate) SaveX(ctx context.Context) *AuthAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuthAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuthAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuthAttemptCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := authattempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := authattempt.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuthAttemptCreate) check() error {
	if _, ok := _c.mutation.IPAddress(); !ok {
		return &ValidationError{Name: "ip_address", err: errors.New(`ent: missing required field "AuthAttempt.ip_address"`)}
	}
	if v, ok := _c.mutation.IPAddress(); ok {
		if err := authattempt.IPAddressValidator(v); err != nil {
			return &ValidationError{Name: "ip_address", err: fmt.Errorf(`ent: validator failed for field "AuthAttempt.ip_address": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "AuthAttempt.success"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AuthAttempt.created_at"`)}
	}
	return nil
}

func (_c *AuthAttemptCreate) sqlSave(ctx context.Context) (*AuthAttempt, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AuthAttemptCreate) createSpec() (*AuthAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &AuthAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(authattempt.Table, sqlgraph.NewFieldSpec(authattempt.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.IPAddress(); ok {
		_spec.SetField(authattempt.FieldIPAddress, field.TypeString, value)
		_node.IPAddress = value
	}
	if value, ok := _c.mutation.Identifier(); ok {
		_spec.SetField(authattempt.FieldIdentifier, field.TypeString, value)
		_node.Identifier = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(authattempt.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(authattempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AuthAttemptCreateBulk is the builder for creating many AuthAttempt entities in bulk.
type AuthAttemptCreateBulk struct {
	config
	err      error
	builders []*AuthAttemptCreate
}

// Save creates the AuthAttempt entities in the database.
func (_c *AuthAttemptCreateBulk) Save(ctx context.Context) ([]*AuthAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuthAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuthAttemptMutation)
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
func (_c *AuthAttemptCreateBulk) SaveX(ctx context.Context) []*AuthAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuthAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuthAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
