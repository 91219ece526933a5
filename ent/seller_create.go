// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fiber-ent-market-pg/ent/banner"
	"fiber-ent-market-pg/ent/favorite"
	"fiber-ent-market-pg/ent/product"
	"fiber-ent-market-pg/ent/seller"
	"fiber-ent-market-pg/ent/sellersubscription"
	"fiber-ent-market-pg/ent/user"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// SellerCreate is the builder for creating a Seller entity.
type SellerCreate struct {
	config
	mutation *SellerMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *SellerCreate) SetName(v string) *SellerCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *SellerCreate) SetDescription(v string) *SellerCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *SellerCreate) SetNillableDescription(v *string) *SellerCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetRating sets the "rating" field.
func (_c *SellerCreate) SetRating(v float64) *SellerCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_c *SellerCreate) SetNillableRating(v *float64) *SellerCreate {
	if v != nil {
		_c.SetRating(*v)
	}
	return _c
}

// SetImage sets the "image" field.
func (_c *SellerCreate) SetImage(v string) *SellerCreate {
	_c.mutation.SetImage(v)
	return _c
}

// SetNillableImage sets the "image" field if the given value is not nil.
func (_c *SellerCreate) SetNillableImage(v *string) *SellerCreate {
	if v != nil {
		_c.SetImage(*v)
	}
	return _c
}

// SetContactPhone sets the "contact_phone" field.
func (_c *SellerCreate) SetContactPhone(v string) *SellerCreate {
	_c.mutation.SetContactPhone(v)
	return _c
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (_c *SellerCreate) SetNillableContactPhone(v *string) *SellerCreate {
	if v != nil {
		_c.SetContactPhone(*v)
	}
	return _c
}

// SetContactEmail sets the "contact_email" field.
func (_c *SellerCreate) SetContactEmail(v string) *SellerCreate {
	_c.mutation.SetContactEmail(v)
	return _c
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (_c *SellerCreate) SetNillableContactEmail(v *string) *SellerCreate {
	if v != nil {
		_c.SetContactEmail(*v)
	}
	return _c
}

// SetTelegramUsername sets the "telegram_username" field.
func (_c *SellerCreate) SetTelegramUsername(v string) *SellerCreate {
	_c.mutation.SetTelegramUsername(v)
	return _c
}

// SetNillableTelegramUsername sets the "telegram_username" field if the given value is not nil.
func (_c *SellerCreate) SetNillableTelegramUsername(v *string) *SellerCreate {
	if v != nil {
		_c.SetTelegramUsername(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SellerCreate) SetCreatedAt(v time.Time) *SellerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SellerCreate) SetNillableCreatedAt(v *time.Time) *SellerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SellerCreate) SetUpdatedAt(v time.Time) *SellerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SellerCreate) SetNillableUpdatedAt(v *time.Time) *SellerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SellerCreate) SetID(v uuid.UUID) *SellerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SellerCreate) SetNillableID(v *uuid.UUID) *SellerCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_c *SellerCreate) SetUserID(id uuid.UUID) *SellerCreate {
	_c.mutation.SetUserID(id)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *SellerCreate) SetUser(v *User) *SellerCreate {
	return _c.SetUserID(v.ID)
}

// AddProductIDs adds the "products" edge to the Product entity by IDs.
func (_c *SellerCreate) AddProductIDs(ids ...uuid.UUID) *SellerCreate {
	_c.mutation.AddProductIDs(ids...)
	return _c
}

// AddProducts adds the "products" edges to the Product entity.
func (_c *SellerCreate) AddProducts(v ...*Product) *SellerCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddProductIDs(ids...)
}

// AddBannerIDs adds the "banners" edge to the Banner entity by IDs.
func (_c *SellerCreate) AddBannerIDs(ids ...uuid.UUID) *SellerCreate {
	_c.mutation.AddBannerIDs(ids...)
	return _c
}

// AddBanners adds the "banners" edges to the Banner entity.
func (_c *SellerCreate) AddBanners(v ...*Banner) *SellerCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBannerIDs(ids...)
}

// AddSubscriptionIDs adds the "subscriptions" edge to the SellerSubscription entity by IDs.
func (_c *SellerCreate) AddSubscriptionIDs(ids ...uuid.UUID) *SellerCreate {
	_c.mutation.AddSubscriptionIDs(ids...)
	return _c
}

// AddSubscriptions adds the "subscriptions" edges to the SellerSubscription entity.
func (_c *SellerCreate) AddSubscriptions(v ...*SellerSubscription) *SellerCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubscriptionIDs(ids...)
}

// AddFavoriteIDs adds the "favorites" edge to the Favorite entity by IDs.
func (_c *SellerCreate) AddFavoriteIDs(ids ...uuid.UUID) *SellerCreate {
	_c.mutation.AddFavoriteIDs(ids...)
	return _c
}

// AddFavorites adds the "favorites" edges to the Favorite entity.
func (_c *SellerCreate) AddFavorites(v ...*Favorite) *SellerCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFavoriteIDs(ids...)
}

// Mutation returns the SellerMutation object of the builder.
func (_c *SellerCreate) Mutation() *SellerMutation {
	return _c.mutation
}

// Save creates the Seller in the database.
func (_c *SellerCreate) Save(ctx context.Context) (*Seller, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SellerCreate) SaveX(ctx context.Context) *Seller {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SellerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SellerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SellerCreate) defaults() {
	if _, ok := _c.mutation.Rating(); !ok {
		v := seller.DefaultRating
		_c.mutation.SetRating(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := seller.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := seller.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := seller.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SellerCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Seller.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := seller.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Seller.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`ent: missing required field "Seller.rating"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Seller.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Seller.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Seller.user"`)}
	}
	return nil
}

func (_c *SellerCreate) sqlSave(ctx context.Context) (*Seller, error) {
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

func (_c *SellerCreate) createSpec() (*Seller, *sqlgraph.CreateSpec) {
	var (
		_node = &Seller{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(seller.Table, sqlgraph.NewFieldSpec(seller.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(seller.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(seller.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(seller.FieldRating, field.TypeFloat64, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.Image(); ok {
		_spec.SetField(seller.FieldImage, field.TypeString, value)
		_node.Image = value
	}
	if value, ok := _c.mutation.ContactPhone(); ok {
		_spec.SetField(seller.FieldContactPhone, field.TypeString, value)
		_node.ContactPhone = value
	}
	if value, ok := _c.mutation.ContactEmail(); ok {
		_spec.SetField(seller.FieldContactEmail, field.TypeString, value)
		_node.ContactEmail = value
	}
	if value, ok := _c.mutation.TelegramUsername(); ok {
		_spec.SetField(seller.FieldTelegramUsername, field.TypeString, value)
		_node.TelegramUsername = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(seller.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(seller.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   seller.UserTable,
			Columns: []string{seller.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.user_seller = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProductsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   seller.ProductsTable,
			Columns: []string{seller.ProductsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BannersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   seller.BannersTable,
			Columns: []string{seller.BannersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(banner.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SubscriptionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   seller.SubscriptionsTable,
			Columns: []string{seller.SubscriptionsColumn},
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
	if nodes := _c.mutation.FavoritesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   seller.FavoritesTable,
			Columns: []string{seller.FavoritesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(favorite.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SellerCreateBulk is the builder for creating many Seller entities in bulk.
type SellerCreateBulk struct {
	config
	err      error
	builders []*SellerCreate
}

// Save creates the Seller entities in the database.
func (_c *SellerCreateBulk) Save(ctx context.Context) ([]*Seller, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Seller, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SellerMutation)
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
func (_c *SellerCreateBulk) SaveX(ctx context.Context) []*Seller {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SellerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SellerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
