// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fiber-ent-market-pg/ent/banner"
	"fiber-ent-market-pg/ent/seller"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// BannerCreate is the builder for creating a Banner entity.
type BannerCreate struct {
	config
	mutation *BannerMutation
	hooks    []Hook
}

// SetImageURL sets the "image_url" field.
func (_c *BannerCreate) SetImageURL(v string) *BannerCreate {
	_c.mutation.SetImageURL(v)
	return _c
}

// SetLinkURL sets the "link_url" field.
func (_c *BannerCreate) SetLinkURL(v string) *BannerCreate {
	_c.mutation.SetLinkURL(v)
	return _c
}

// SetNillableLinkURL sets the "link_url" field if the given value is not nil.
func (_c *BannerCreate) SetNillableLinkURL(v *string) *BannerCreate {
	if v != nil {
		_c.SetLinkURL(*v)
	}
	return _c
}

// SetPlacement sets the "placement" field.
func (_c *BannerCreate) SetPlacement(v string) *BannerCreate {
	_c.mutation.SetPlacement(v)
	return _c
}

// SetNillablePlacement sets the "placement" field if the given value is not nil.
func (_c *BannerCreate) SetNillablePlacement(v *string) *BannerCreate {
	if v != nil {
		_c.SetPlacement(*v)
	}
	return _c
}

// SetStartsAt sets the "starts_at" field.
func (_c *BannerCreate) SetStartsAt(v time.Time) *BannerCreate {
	_c.mutation.SetStartsAt(v)
	return _c
}

// SetEndsAt sets the "ends_at" field.
func (_c *BannerCreate) SetEndsAt(v time.Time) *BannerCreate {
	_c.mutation.SetEndsAt(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *BannerCreate) SetIsActive(v bool) *BannerCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *BannerCreate) SetNillableIsActive(v *bool) *BannerCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BannerCreate) SetCreatedAt(v time.Time) *BannerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BannerCreate) SetNillableCreatedAt(v *time.Time) *BannerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BannerCreate) SetID(v uuid.UUID) *BannerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BannerCreate) SetNillableID(v *uuid.UUID) *BannerCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSellerID sets the "seller" edge to the Seller entity by ID.
func (_c *BannerCreate) SetSellerID(id uuid.UUID) *BannerCreate {
	_c.mutation.SetSellerID(id)
	return _c
}

// SetSeller sets the "seller" edge to the Seller entity.
func (_c *BannerCreate) SetSeller(v *Seller) *BannerCreate {
	return _c.SetSellerID(v.ID)
}

// Mutation returns the BannerMutation object of the builder.
func (_c *BannerCreate) Mutation() *BannerMutation {
	return _c.mutation
}

// Save creates the Banner in the database.
func (_c *BannerCreate) Save(ctx context.Context) (*Banner, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BannerCreate) SaveX(ctx context.Context) *Banner {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BannerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BannerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BannerCreate) defaults() {
	if _, ok := _c.mutation.Placement(); !ok {
		v := banner.DefaultPlacement
		_c.mutation.SetPlacement(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := banner.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := banner.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := banner.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BannerCreate) check() error {
	if _, ok := _c.mutation.ImageURL(); !ok {
		return &ValidationError{Name: "image_url", err: errors.New(`ent: missing required field "Banner.image_url"`)}
	}
	if v, ok := _c.mutation.ImageURL(); ok {
		if err := banner.ImageURLValidator(v); err != nil {
			return &ValidationError{Name: "image_url", err: fmt.Errorf(`ent: validator failed for field "Banner.image_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Placement(); !ok {
		return &ValidationError{Name: "placement", err: errors.New(`ent: missing required field "Banner.placement"`)}
	}
	if _, ok := _c.mutation.StartsAt(); !ok {
		return &ValidationError{Name: "starts_at", err: errors.New(`ent: missing required field "Banner.starts_at"`)}
	}
	if _, ok := _c.mutation.EndsAt(); !ok {
		return &ValidationError{Name: "ends_at", err: errors.New(`ent: missing required field "Banner.ends_at"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Banner.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Banner.created_at"`)}
	}
	if len(_c.mutation.SellerIDs()) == 0 {
		return &ValidationError{Name: "seller", err: errors.New(`ent: missing required edge "Banner.seller"`)}
	}
	return nil
}

func (_c *BannerCreate) sqlSave(ctx context.Context) (*Banner, error) {
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

func (_c *BannerCreate) createSpec() (*Banner, *sqlgraph.CreateSpec) {
	var (
		_node = &Banner{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(banner.Table, sqlgraph.NewFieldSpec(banner.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ImageURL(); ok {
		_spec.SetField(banner.FieldImageURL, field.TypeString, value)
		_node.ImageURL = value
	}
	if value, ok := _c.mutation.LinkURL(); ok {
		_spec.SetField(banner.FieldLinkURL, field.TypeString, value)
		_node.LinkURL = value
	}
	if value, ok := _c.mutation.Placement(); ok {
		_spec.SetField(banner.FieldPlacement, field.TypeString, value)
		_node.Placement = value
	}
	if value, ok := _c.mutation.StartsAt(); ok {
		_spec.SetField(banner.FieldStartsAt, field.TypeTime, value)
		_node.StartsAt = value
	}
	if value, ok := _c.mutation.EndsAt(); ok {
		_spec.SetField(banner.FieldEndsAt, field.TypeTime, value)
		_node.EndsAt = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(banner.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(banner.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SellerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   banner.SellerTable,
			Columns: []string{banner.SellerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(seller.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.seller_banners = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BannerCreateBulk is the builder for creating many Banner entities in bulk.
type BannerCreateBulk struct {
	config
	err      error
	builders []*BannerCreate
}

// Save creates the Banner entities in the database.
func (_c *BannerCreateBulk) Save(ctx context.Context) ([]*Banner, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Banner, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BannerMutation)
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
func (_c *BannerCreateBulk) SaveX(ctx context.Context) []*Banner {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BannerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BannerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
