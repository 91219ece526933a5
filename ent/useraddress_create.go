// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fiber-ent-market-pg/ent/user"
	"fiber-ent-market-pg/ent/useraddress"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// UserAddressCreate is the builder for creating a UserAddress entity.
type UserAddressCreate struct {
	config
	mutation *UserAddressMutation
	hooks    []Hook
}

// SetLabel sets the "label" field.
func (_c *UserAddressCreate) SetLabel(v string) *UserAddressCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_c *UserAddressCreate) SetNillableLabel(v *string) *UserAddressCreate {
	if v != nil {
		_c.SetLabel(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *UserAddressCreate) SetCity(v string) *UserAddressCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetStreet sets the "street" field.
func (_c *UserAddressCreate) SetStreet(v string) *UserAddressCreate {
	_c.mutation.SetStreet(v)
	return _c
}

// SetBuilding sets the "building" field.
func (_c *UserAddressCreate) SetBuilding(v string) *UserAddressCreate {
	_c.mutation.SetBuilding(v)
	return _c
}

// SetNillableBuilding sets the "building" field if the given value is not nil.
func (_c *UserAddressCreate) SetNillableBuilding(v *string) *UserAddressCreate {
	if v != nil {
		_c.SetBuilding(*v)
	}
	return _c
}

// SetApartment sets the "apartment" field.
func (_c *UserAddressCreate) SetApartment(v string) *UserAddressCreate {
	_c.mutation.SetApartment(v)
	return _c
}

// SetNillableApartment sets the "apartment" field if the given value is not nil.
func (_c *UserAddressCreate) SetNillableApartment(v *string) *UserAddressCreate {
	if v != nil {
		_c.SetApartment(*v)
	}
	return _c
}

// SetPostalCode sets the "postal_code" field.
func (_c *UserAddressCreate) SetPostalCode(v string) *UserAddressCreate {
	_c.mutation.SetPostalCode(v)
	return _c
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_c *UserAddressCreate) SetNillablePostalCode(v *string) *UserAddressCreate {
	if v != nil {
		_c.SetPostalCode(*v)
	}
	return _c
}

// SetIsDefault sets the "is_default" field.
func (_c *UserAddressCreate) SetIsDefault(v bool) *UserAddressCreate {
	_c.mutation.SetIsDefault(v)
	return _c
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_c *UserAddressCreate) SetNillableIsDefault(v *bool) *UserAddressCreate {
	if v != nil {
		_c.SetIsDefault(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserAddressCreate) SetCreatedAt(v time.Time) *UserAddressCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserAddressCreate) SetNillableCreatedAt(v *time.Time) *UserAddressCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserAddressCreate) SetUpdatedAt(v time.Time) *UserAddressCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserAddressCreate) SetNillableUpdatedAt(v *time.Time) *UserAddressCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserAddressCreate) SetID(v uuid.UUID) *UserAddressCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UserAddressCreate) SetNillableID(v *uuid.UUID) *UserAddressCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_c *UserAddressCreate) SetUserID(id uuid.UUID) *UserAddressCreate {
	_c.mutation.SetUserID(id)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *UserAddressCreate) SetUser(v *User) *UserAddressCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the UserAddressMutation object of the builder.
func (_c *UserAddressCreate) Mutation() *UserAddressMutation {
	return _c.mutation
}

// Save creates the UserAddress in the database.
func (_c *UserAddressCreate) Save(ctx context.Context) (*UserAddress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserAddressCreate) SaveX(ctx context.Context) *UserAddress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserAddressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserAddressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserAddressCreate) defaults() {
	if _, ok := _c.mutation.Label(); !ok {
		v := useraddress.DefaultLabel
		_c.mutation.SetLabel(v)
	}
	if _, ok := _c.mutation.IsDefault(); !ok {
		v := useraddress.DefaultIsDefault
		_c.mutation.SetIsDefault(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := useraddress.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := useraddress.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := useraddress.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserAddressCreate) check() error {
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required field "UserAddress.label"`)}
	}
	if _, ok := _c.mutation.City(); !ok {
		return &ValidationError{Name: "city", err: errors.New(`ent: missing required field "UserAddress.city"`)}
	}
	if v, ok := _c.mutation.City(); ok {
		if err := useraddress.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`ent: validator failed for field "UserAddress.city": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Street(); !ok {
		return &ValidationError{Name: "street", err: errors.New(`ent: missing required field "UserAddress.street"`)}
	}
	if v, ok := _c.mutation.Street(); ok {
		if err := useraddress.StreetValidator(v); err != nil {
			return &ValidationError{Name: "street", err: fmt.Errorf(`ent: validator failed for field "UserAddress.street": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsDefault(); !ok {
		return &ValidationError{Name: "is_default", err: errors.New(`ent: missing required field "UserAddress.is_default"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UserAddress.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UserAddress.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "UserAddress.user"`)}
	}
	return nil
}

func (_c *UserAddressCreate) sqlSave(ctx context.Context) (*UserAddress, error) {
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

func (_c *UserAddressCreate) createSpec() (*UserAddress, *sqlgraph.CreateSpec) {
	var (
		_node = &UserAddress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(useraddress.Table, sqlgraph.NewFieldSpec(useraddress.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(useraddress.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(useraddress.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.Street(); ok {
		_spec.SetField(useraddress.FieldStreet, field.TypeString, value)
		_node.Street = value
	}
	if value, ok := _c.mutation.Building(); ok {
		_spec.SetField(useraddress.FieldBuilding, field.TypeString, value)
		_node.Building = value
	}
	if value, ok := _c.mutation.Apartment(); ok {
		_spec.SetField(useraddress.FieldApartment, field.TypeString, value)
		_node.Apartment = value
	}
	if value, ok := _c.mutation.PostalCode(); ok {
		_spec.SetField(useraddress.FieldPostalCode, field.TypeString, value)
		_node.PostalCode = value
	}
	if value, ok := _c.mutation.IsDefault(); ok {
		_spec.SetField(useraddress.FieldIsDefault, field.TypeBool, value)
		_node.IsDefault = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(useraddress.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(useraddress.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   useraddress.UserTable,
			Columns: []string{useraddress.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.user_addresses = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UserAddressCreateBulk is the builder for creating many UserAddress entities in bulk.
type UserAddressCreateBulk struct {
	config
	err      error
	builders []*UserAddressCreate
}

// Save creates the UserAddress entities in the database.
func (_c *UserAddressCreateBulk) Save(ctx context.Context) ([]*UserAddress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserAddress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserAddressMutation)
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
func (_c *UserAddressCreateBulk) SaveX(ctx context.Context) []*UserAddress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserAddressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserAddressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
