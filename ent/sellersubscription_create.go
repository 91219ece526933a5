// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fiber-ent-market-pg/ent/seller"
	"fiber-ent-market-pg/ent/sellersubscription"
	"fiber-ent-market-pg/ent/subscriptiontier"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// SellerSubscriptionCreate is the builder for creating a SellerSubscription entity.
type SellerSubscriptionCreate struct {
	config
	mutation *SellerSubscriptionMutation
	hooks    []Hook
}

// SetStartsAt sets the "starts_at" field.
func (_c *SellerSubscriptionCreate) SetStartsAt(v time.Time) *SellerSubscriptionCreate {
	_c.mutation.SetStartsAt(v)
	return _c
}

// SetEndsAt sets the "ends_at" field.
func (_c *SellerSubscriptionCreate) SetEndsAt(v time.Time) *SellerSubscriptionCreate {
	_c.mutation.SetEndsAt(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *SellerSubscriptionCreate) SetIsActive(v bool) *SellerSubscriptionCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *SellerSubscriptionCreate) SetNillableIsActive(v *bool) *SellerSubscriptionCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetPaymentStatus sets the "payment_status" field.
func (_c *SellerSubscriptionCreate) SetPaymentStatus(v sellersubscription.PaymentStatus) *SellerSubscriptionCreate {
	_c.mutation.SetPaymentStatus(v)
	return _c
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_c *SellerSubscriptionCreate) SetNillablePaymentStatus(v *sellersubscription.PaymentStatus) *SellerSubscriptionCreate {
	if v != nil {
		_c.SetPaymentStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SellerSubscriptionCreate) SetCreatedAt(v time.Time) *SellerSubscriptionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SellerSubscriptionCreate) SetNillableCreatedAt(v *time.Time) *SellerSubscriptionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SellerSubscriptionCreate) SetID(v uuid.UUID) *SellerSubscriptionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SellerSubscriptionCreate) SetNillableID(v *uuid.UUID) *SellerSubscriptionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSellerID sets the "seller" edge to the Seller entity by ID.
func (_c *SellerSubscriptionCreate) SetSellerID(id uuid.UUID) *SellerSubscriptionCreate {
	_c.mutation.SetSellerID(id)
	return _c
}

// SetSeller sets the "seller" edge to the Seller entity.
func (_c *SellerSubscriptionCreate) SetSeller(v *Seller) *SellerSubscriptionCreate {
	return _c.SetSellerID(v.ID)
}

// SetTierID sets the "tier" edge to the SubscriptionTier entity by ID.
func (_c *SellerSubscriptionCreate) SetTierID(id uuid.UUID) *SellerSubscriptionCreate {
	_c.mutation.SetTierID(id)
	return _c
}

// SetTier sets the "tier" edge to the SubscriptionTier entity.
func (_c *SellerSubscriptionCreate) SetTier(v *SubscriptionTier) *SellerSubscriptionCreate {
	return _c.SetTierID(v.ID)
}

// Mutation returns the SellerSubscriptionMutation object of the builder.
func (_c *SellerSubscriptionCreate) Mutation() *SellerSubscriptionMutation {
	return _c.mutation
}

// Save creates the SellerSubscription in the database.
func (_c *SellerSubscriptionCreate) Save(ctx context.Context) (*SellerSubscription, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SellerSubscriptionCreate) SaveX(ctx context.Context) *SellerSubscription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SellerSubscriptionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SellerSubscriptionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SellerSubscriptionCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := sellersubscription.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.PaymentStatus(); !ok {
		v := sellersubscription.DefaultPaymentStatus
		_c.mutation.SetPaymentStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sellersubscription.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := sellersubscription.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SellerSubscriptionCreate) check() error {
	if _, ok := _c.mutation.StartsAt(); !ok {
		return &ValidationError{Name: "starts_at", err: errors.New(`ent: missing required field "SellerSubscription.starts_at"`)}
	}
	if _, ok := _c.mutation.EndsAt(); !ok {
		return &ValidationError{Name: "ends_at", err: errors.New(`ent: missing required field "SellerSubscription.ends_at"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "SellerSubscription.is_active"`)}
	}
	if _, ok := _c.mutation.PaymentStatus(); !ok {
		return &ValidationError{Name: "payment_status", err: errors.New(`ent: missing required field "SellerSubscription.payment_status"`)}
	}
	if v, ok := _c.mutation.PaymentStatus(); ok {
		if err := sellersubscription.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`ent: validator failed for field "SellerSubscription.payment_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SellerSubscription.created_at"`)}
	}
	if len(_c.mutation.SellerIDs()) == 0 {
		return &ValidationError{Name: "seller", err: errors.New(`ent: missing required edge "SellerSubscription.seller"`)}
	}
	if len(_c.mutation.TierIDs()) == 0 {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required edge "SellerSubscription.tier"`)}
	}
	return nil
}

func (_c *SellerSubscriptionCreate) sqlSave(ctx context.Context) (*SellerSubscription, error) {
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

func (_c *SellerSubscriptionCreate) createSpec() (*SellerSubscription, *sqlgraph.CreateSpec) {
	var (
		_node = &SellerSubscription{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sellersubscription.Table, sqlgraph.NewFieldSpec(sellersubscription.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.StartsAt(); ok {
		_spec.SetField(sellersubscription.FieldStartsAt, field.TypeTime, value)
		_node.StartsAt = value
	}
	if value, ok := _c.mutation.EndsAt(); ok {
		_spec.SetField(sellersubscription.FieldEndsAt, field.TypeTime, value)
		_node.EndsAt = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(sellersubscription.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.PaymentStatus(); ok {
		_spec.SetField(sellersubscription.FieldPaymentStatus, field.TypeEnum, value)
		_node.PaymentStatus = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sellersubscription.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SellerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sellersubscription.SellerTable,
			Columns: []string{sellersubscription.SellerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(seller.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.seller_subscriptions = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TierIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sellersubscription.TierTable,
			Columns: []string{sellersubscription.TierColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subscriptiontier.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.subscription_tier_subscriptions = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SellerSubscriptionCreateBulk is the builder for creating many SellerSubscription entities in bulk.
type SellerSubscriptionCreateBulk struct {
	config
	err      error
	builders []*SellerSubscriptionCreate
}

// Save creates the SellerSubscription entities in the database.
func (_c *SellerSubscriptionCreateBulk) Save(ctx context.Context) ([]*SellerSubscription, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SellerSubscription, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SellerSubscriptionMutation)
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
func (_c *SellerSubscriptionCreateBulk) SaveX(ctx context.Context) []*SellerSubscription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SellerSubscriptionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SellerSubscriptionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
