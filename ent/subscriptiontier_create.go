// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fiber-ent-market-pg/ent/sellersubscription"
	"fiber-ent-market-pg/ent/subscriptiontier"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// SubscriptionTierCreate is the builder for creating a SubscriptionTier entity.
type SubscriptionTierCreate struct {
	config
	mutation *SubscriptionTierMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *SubscriptionTierCreate) SetName(v string) *SubscriptionTierCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPrice sets the "price" field.
func (_c *SubscriptionTierCreate) SetPrice(v float64) *SubscriptionTierCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetMaxProducts sets the "max_products" field.
func (_c *SubscriptionTierCreate) SetMaxProducts(v int) *SubscriptionTierCreate {
	_c.mutation.SetMaxProducts(v)
	return _c
}

// SetMaxContactMethods sets the "max_contact_methods" field.
func (_c *SubscriptionTierCreate) SetMaxContactMethods(v int) *SubscriptionTierCreate {
	_c.mutation.SetMaxContactMethods(v)
	return _c
}

// SetMaxBanners sets the "max_banners" field.
func (_c *SubscriptionTierCreate) SetMaxBanners(v int) *SubscriptionTierCreate {
	_c.mutation.SetMaxBanners(v)
	return _c
}

// SetFeatures sets the "features" field.
func (_c *SubscriptionTierCreate) SetFeatures(v map[string]interface{}) *SubscriptionTierCreate {
	_c.mutation.SetFeatures(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubscriptionTierCreate) SetCreatedAt(v time.Time) *SubscriptionTierCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubscriptionTierCreate) SetNillableCreatedAt(v *time.Time) *SubscriptionTierCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SubscriptionTierCreate) SetID(v uuid.UUID) *SubscriptionTierCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SubscriptionTierCreate) SetNillableID(v *uuid.UUID) *SubscriptionTierCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddSubscriptionIDs adds the "subscriptions" edge to the SellerSubscription entity by IDs.
func (_c *SubscriptionTierCreate) AddSubscriptionIDs(ids ...uuid.UUID) *SubscriptionTierCreate {
	_c.mutation.AddSubscriptionIDs(ids...)
	return _c
}

// AddSubscriptions adds the "subscriptions" edges to the SellerSubscription entity.
func (_c *SubscriptionTierCreate) AddSubscriptions(v ...*SellerSubscription) *SubscriptionTierCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubscriptionIDs(ids...)
}

// Mutation returns the SubscriptionTierMutation object of the builder.
func (_c *SubscriptionTierCreate) Mutation() *SubscriptionTierMutation {
	return _c.mutation
}

// Save creates the SubscriptionTier in the database.
func (_c *SubscriptionTierCreate) Save(ctx context.Context) (*SubscriptionTier, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubscriptionTierCreate) SaveX(ctx context.Context) *SubscriptionTier {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubscriptionTierCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubscriptionTierCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubscriptionTierCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := subscriptiontier.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := subscriptiontier.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubscriptionTierCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "SubscriptionTier.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := subscriptiontier.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SubscriptionTier.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`ent: missing required field "SubscriptionTier.price"`)}
	}
	if v, ok := _c.mutation.Price(); ok {
		if err := subscriptiontier.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`ent: validator failed for field "SubscriptionTier.price": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxProducts(); !ok {
		return &ValidationError{Name: "max_products", err: errors.New(`ent: missing required field "SubscriptionTier.max_products"`)}
	}
	if v, ok := _c.mutation.MaxProducts(); ok {
		if err := subscriptiontier.MaxProductsValidator(v); err != nil {
			return &ValidationError{Name: "max_products", err: fmt.Errorf(`ent: validator failed for field "SubscriptionTier.max_products": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxContactMethods(); !ok {
		return &ValidationError{Name: "max_contact_methods", err: errors.New(`ent: missing required field "SubscriptionTier.max_contact_methods"`)}
	}
	if v, ok := _c.mutation.MaxContactMethods(); ok {
		if err := subscriptiontier.MaxContactMethodsValidator(v); err != nil {
			return &ValidationError{Name: "max_contact_methods", err: fmt.Errorf(`ent: validator failed for field "SubscriptionTier.max_contact_methods": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxBanners(); !ok {
		return &ValidationError{Name: "max_banners", err: errors.New(`ent: missing required field "SubscriptionTier.max_banners"`)}
	}
	if v, ok := _c.mutation.MaxBanners(); ok {
		if err := subscriptiontier.MaxBannersValidator(v); err != nil {
			return &ValidationError{Name: "max_banners", err: fmt.Errorf(`ent: validator failed for field "SubscriptionTier.max_banners": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SubscriptionTier.created_at"`)}
	}
	return nil
}

func (_c *SubscriptionTierCreate) sqlSave(ctx context.Context) (*SubscriptionTier, error) {
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

func (_c *SubscriptionTierCreate) createSpec() (*SubscriptionTier, *sqlgraph.CreateSpec) {
	var (
		_node = &SubscriptionTier{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subscriptiontier.Table, sqlgraph.NewFieldSpec(subscriptiontier.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(subscriptiontier.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(subscriptiontier.FieldPrice, field.TypeFloat64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.MaxProducts(); ok {
		_spec.SetField(subscriptiontier.FieldMaxProducts, field.TypeInt, value)
		_node.MaxProducts = value
	}
	if value, ok := _c.mutation.MaxContactMethods(); ok {
		_spec.SetField(subscriptiontier.FieldMaxContactMethods, field.TypeInt, value)
		_node.MaxContactMethods = value
	}
	if value, ok := _c.mutation.MaxBanners(); ok {
		_spec.SetField(subscriptiontier.FieldMaxBanners, field.TypeInt, value)
		_node.MaxBanners = value
	}
	if value, ok := _c.mutation.Features(); ok {
		_spec.SetField(subscriptiontier.FieldFeatures, field.TypeJSON, value)
		_node.Features = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(subscriptiontier.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SubscriptionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subscriptiontier.SubscriptionsTable,
			Columns: []string{subscriptiontier.SubscriptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sellersubscription.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SubscriptionTierCreateBulk is the builder for creating many SubscriptionTier entities in bulk.
type SubscriptionTierCreateBulk struct {
	config
	err      error
	builders []*SubscriptionTierCreate
}

// Save creates the SubscriptionTier entities in the database.
func (_c *SubscriptionTierCreateBulk) Save(ctx context.Context) ([]*SubscriptionTier, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubscriptionTier, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubscriptionTierMutation)
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
func (_c *SubscriptionTierCreateBulk) SaveX(ctx context.Context) []*SubscriptionTier {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubscriptionTierCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubscriptionTierCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
