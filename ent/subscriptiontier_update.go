// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fiber-ent-market-pg/ent/predicate"
	"fiber-ent-market-pg/ent/sellersubscription"
	"fiber-ent-market-pg/ent/subscriptiontier"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// SubscriptionTierUpdate is the builder for updating SubscriptionTier entities.
type SubscriptionTierUpdate struct {
	config
	hooks    []Hook
	mutation *SubscriptionTierMutation
}

// Where appends a list predicates to the SubscriptionTierUpdate builder.
func (_u *SubscriptionTierUpdate) Where(ps ...predicate.SubscriptionTier) *SubscriptionTierUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *SubscriptionTierUpdate) SetName(v string) *SubscriptionTierUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SubscriptionTierUpdate) SetNillableName(v *string) *SubscriptionTierUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *SubscriptionTierUpdate) SetPrice(v float64) *SubscriptionTierUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *SubscriptionTierUpdate) SetNillablePrice(v *float64) *SubscriptionTierUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *SubscriptionTierUpdate) AddPrice(v float64) *SubscriptionTierUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetMaxProducts sets the "max_products" field.
func (_u *SubscriptionTierUpdate) SetMaxProducts(v int) *SubscriptionTierUpdate {
	_u.mutation.ResetMaxProducts()
	_u.mutation.SetMaxProducts(v)
	return _u
}

// SetNillableMaxProducts sets the "max_products" field if the given value is not nil.
func (_u *SubscriptionTierUpdate) SetNillableMaxProducts(v *int) *SubscriptionTierUpdate {
	if v != nil {
		_u.SetMaxProducts(*v)
	}
	return _u
}

// AddMaxProducts adds value to the "max_products" field.
func (_u *SubscriptionTierUpdate) AddMaxProducts(v int) *SubscriptionTierUpdate {
	_u.mutation.AddMaxProducts(v)
	return _u
}

// SetMaxContactMethods sets the "max_contact_methods" field.
func (_u *SubscriptionTierUpdate) SetMaxContactMethods(v int) *SubscriptionTierUpdate {
	_u.mutation.ResetMaxContactMethods()
	_u.mutation.SetMaxContactMethods(v)
	return _u
}

// SetNillableMaxContactMethods sets the "max_contact_methods" field if the given value is not nil.
func (_u *SubscriptionTierUpdate) SetNillableMaxContactMethods(v *int) *SubscriptionTierUpdate {
	if v != nil {
		_u.SetMaxContactMethods(*v)
	}
	return _u
}

// AddMaxContactMethods adds value to the "max_contact_methods" field.
func (_u *SubscriptionTierUpdate) AddMaxContactMethods(v int) *SubscriptionTierUpdate {
	_u.mutation.AddMaxContactMethods(v)
	return _u
}

// SetMaxBanners sets the "max_banners" field.
func (_u *SubscriptionTierUpdate) SetMaxBanners(v int) *SubscriptionTierUpdate {
	_u.mutation.ResetMaxBanners()
	_u.mutation.SetMaxBanners(v)
	return _u
}

// SetNillableMaxBanners sets the "max_banners" field if the given value is not nil.
func (_u *SubscriptionTierUpdate) SetNillableMaxBanners(v *int) *SubscriptionTierUpdate {
	if v != nil {
		_u.SetMaxBanners(*v)
	}
	return _u
}

// AddMaxBanners adds value to the "max_banners" field.
func (_u *SubscriptionTierUpdate) AddMaxBanners(v int) *SubscriptionTierUpdate {
	_u.mutation.AddMaxBanners(v)
	return _u
}

// SetFeatures sets the "features" field.
func (_u *SubscriptionTierUpdate) SetFeatures(v map[string]interface{}) *SubscriptionTierUpdate {
	_u.mutation.SetFeatures(v)
	return _u
}

// ClearFeatures clears the value of the "features" field.
func (_u *SubscriptionTierUpdate) ClearFeatures() *SubscriptionTierUpdate {
	_u.mutation.ClearFeatures()
	return _u
}

// AddSubscriptionIDs adds the "subscriptions" edge to the SellerSubscription entity by IDs.
func (_u *SubscriptionTierUpdate) AddSubscriptionIDs(ids ...uuid.UUID) *SubscriptionTierUpdate {
	_u.mutation.AddSubscriptionIDs(ids...)
	return _u
}

// AddSubscriptions adds the "subscriptions" edges to the SellerSubscription entity.
func (_u *SubscriptionTierUpdate) AddSubscriptions(v ...*SellerSubscription) *SubscriptionTierUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubscriptionIDs(ids...)
}

// Mutation returns the SubscriptionTierMutation object of the builder.
func (_u *SubscriptionTierUpdate) Mutation() *SubscriptionTierMutation {
	return _u.mutation
}

// ClearSubscriptions clears all "subscriptions" edges to the SellerSubscription entity.
func (_u *SubscriptionTierUpdate) ClearSubscriptions() *SubscriptionTierUpdate {
	_u.mutation.ClearSubscriptions()
	return _u
}

// RemoveSubscriptionIDs removes the "subscriptions" edge to SellerSubscription entities by IDs.
func (_u *SubscriptionTierUpdate) RemoveSubscriptionIDs(ids ...uuid.UUID) *SubscriptionTierUpdate {
	_u.mutation.RemoveSubscriptionIDs(ids...)
	return _u
}

// RemoveSubscriptions removes "subscriptions" edges to SellerSubscription entities.
func (_u *SubscriptionTierUpdate) RemoveSubscriptions(v ...*SellerSubscription) *SubscriptionTierUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubscriptionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubscriptionTierUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubscriptionTierUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubscriptionTierUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubscriptionTierUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubscriptionTierUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := subscriptiontier.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SubscriptionTier.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := subscriptiontier.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`ent: validator failed for field "SubscriptionTier.price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxProducts(); ok {
		if err := subscriptiontier.MaxProductsValidator(v); err != nil {
			return &ValidationError{Name: "max_products", err: fmt.Errorf(`ent: validator failed for field "SubscriptionTier.max_products": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxContactMethods(); ok {
		if err := subscriptiontier.MaxContactMethodsValidator(v); err != nil {
			return &ValidationError{Name: "max_contact_methods", err: fmt.Errorf(`ent: validator failed for field "SubscriptionTier.max_contact_methods": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxBanners(); ok {
		if err := subscriptiontier.MaxBannersValidator(v); err != nil {
			return &ValidationError{Name: "max_banners", err: fmt.Errorf(`ent: validator failed for field "SubscriptionTier.max_banners": %w`, err)}
		}
	}
	return nil
}

func (_u *SubscriptionTierUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subscriptiontier.Table, subscriptiontier.Columns, sqlgraph.NewFieldSpec(subscriptiontier.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(subscriptiontier.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(subscriptiontier.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(subscriptiontier.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxProducts(); ok {
		_spec.SetField(subscriptiontier.FieldMaxProducts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxProducts(); ok {
		_spec.AddField(subscriptiontier.FieldMaxProducts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxContactMethods(); ok {
		_spec.SetField(subscriptiontier.FieldMaxContactMethods, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxContactMethods(); ok {
		_spec.AddField(subscriptiontier.FieldMaxContactMethods, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxBanners(); ok {
		_spec.SetField(subscriptiontier.FieldMaxBanners, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxBanners(); ok {
		_spec.AddField(subscriptiontier.FieldMaxBanners, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Features(); ok {
		_spec.SetField(subscriptiontier.FieldFeatures, field.TypeJSON, value)
	}
	if _u.mutation.FeaturesCleared() {
		_spec.ClearField(subscriptiontier.FieldFeatures, field.TypeJSON)
	}
	if _u.mutation.SubscriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubscriptionsIDs(); len(nodes) > 0 && !_u.mutation.SubscriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubscriptionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subscriptiontier.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubscriptionTierUpdateOne is the builder for updating a single SubscriptionTier entity.
type SubscriptionTierUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubscriptionTierMutation
}

// SetName sets the "name" field.
func (_u *SubscriptionTierUpdateOne) SetName(v string) *SubscriptionTierUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SubscriptionTierUpdateOne) SetNillableName(v *string) *SubscriptionTierUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *SubscriptionTierUpdateOne) SetPrice(v float64) *SubscriptionTierUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *SubscriptionTierUpdateOne) SetNillablePrice(v *float64) *SubscriptionTierUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *SubscriptionTierUpdateOne) AddPrice(v float64) *SubscriptionTierUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetMaxProducts sets the "max_products" field.
func (_u *SubscriptionTierUpdateOne) SetMaxProducts(v int) *SubscriptionTierUpdateOne {
	_u.mutation.ResetMaxProducts()
	_u.mutation.SetMaxProducts(v)
	return _u
}

// SetNillableMaxProducts sets the "max_products" field if the given value is not nil.
func (_u *SubscriptionTierUpdateOne) SetNillableMaxProducts(v *int) *SubscriptionTierUpdateOne {
	if v != nil {
		_u.SetMaxProducts(*v)
	}
	return _u
}

// AddMaxProducts adds value to the "max_products" field.
func (_u *SubscriptionTierUpdateOne) AddMaxProducts(v int) *SubscriptionTierUpdateOne {
	_u.mutation.AddMaxProducts(v)
	return _u
}

// SetMaxContactMethods sets the "max_contact_methods" field.
func (_u *SubscriptionTierUpdateOne) SetMaxContactMethods(v int) *SubscriptionTierUpdateOne {
	_u.mutation.ResetMaxContactMethods()
	_u.mutation.SetMaxContactMethods(v)
	return _u
}

// SetNillableMaxContactMethods sets the "max_contact_methods" field if the given value is not nil.
func (_u *SubscriptionTierUpdateOne) SetNillableMaxContactMethods(v *int) *SubscriptionTierUpdateOne {
	if v != nil {
		_u.SetMaxContactMethods(*v)
	}
	return _u
}

// AddMaxContactMethods adds value to the "max_contact_methods" field.
func (_u *SubscriptionTierUpdateOne) AddMaxContactMethods(v int) *SubscriptionTierUpdateOne {
	_u.mutation.AddMaxContactMethods(v)
	return _u
}

// SetMaxBanners sets the "max_banners" field.
func (_u *SubscriptionTierUpdateOne) SetMaxBanners(v int) *SubscriptionTierUpdateOne {
	_u.mutation.ResetMaxBanners()
	_u.mutation.SetMaxBanners(v)
	return _u
}

// SetNillableMaxBanners sets the "max_banners" field if the given value is not nil.
func (_u *SubscriptionTierUpdateOne) SetNillableMaxBanners(v *int) *SubscriptionTierUpdateOne {
	if v != nil {
		_u.SetMaxBanners(*v)
	}
	return _u
}

// AddMaxBanners adds value to the "max_banners" field.
func (_u *SubscriptionTierUpdateOne) AddMaxBanners(v int) *SubscriptionTierUpdateOne {
	_u.mutation.AddMaxBanners(v)
	return _u
}

// SetFeatures sets the "features" field.
func (_u *SubscriptionTierUpdateOne) SetFeatures(v map[string]interface{}) *SubscriptionTierUpdateOne {
	_u.mutation.SetFeatures(v)
	return _u
}

// ClearFeatures clears the value of the "features" field.
func (_u *SubscriptionTierUpdateOne) ClearFeatures() *SubscriptionTierUpdateOne {
	_u.mutation.ClearFeatures()
	return _u
}

// AddSubscriptionIDs adds the "subscriptions" edge to the SellerSubscription entity by IDs.
func (_u *SubscriptionTierUpdateOne) AddSubscriptionIDs(ids ...uuid.UUID) *SubscriptionTierUpdateOne {
	_u.mutation.AddSubscriptionIDs(ids...)
	return _u
}

// AddSubscriptions adds the "subscriptions" edges to the SellerSubscription entity.
func (_u *SubscriptionTierUpdateOne) AddSubscriptions(v ...*SellerSubscription) *SubscriptionTierUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubscriptionIDs(ids...)
}

// Mutation returns the SubscriptionTierMutation object of the builder.
func (_u *SubscriptionTierUpdateOne) Mutation() *SubscriptionTierMutation {
	return _u.mutation
}

// ClearSubscriptions clears all "subscriptions" edges to the SellerSubscription entity.
func (_u *SubscriptionTierUpdateOne) ClearSubscriptions() *SubscriptionTierUpdateOne {
	_u.mutation.ClearSubscriptions()
	return _u
}

// RemoveSubscriptionIDs removes the "subscriptions" edge to SellerSubscription entities by IDs.
func (_u *SubscriptionTierUpdateOne) RemoveSubscriptionIDs(ids ...uuid.UUID) *SubscriptionTierUpdateOne {
	_u.mutation.RemoveSubscriptionIDs(ids...)
	return _u
}

// RemoveSubscriptions removes "subscriptions" edges to SellerSubscription entities.
func (_u *SubscriptionTierUpdateOne) RemoveSubscriptions(v ...*SellerSubscription) *SubscriptionTierUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubscriptionIDs(ids...)
}

// Where appends a list predicates to the SubscriptionTierUpdate builder.
func (_u *SubscriptionTierUpdateOne) Where(ps ...predicate.SubscriptionTier) *SubscriptionTierUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubscriptionTierUpdateOne) Select(field string, fields ...string) *SubscriptionTierUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubscriptionTier entity.
func (_u *SubscriptionTierUpdateOne) Save(ctx context.Context) (*SubscriptionTier, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubscriptionTierUpdateOne) SaveX(ctx context.Context) *SubscriptionTier {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubscriptionTierUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubscriptionTierUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubscriptionTierUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := subscriptiontier.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SubscriptionTier.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := subscriptiontier.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`ent: validator failed for field "SubscriptionTier.price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxProducts(); ok {
		if err := subscriptiontier.MaxProductsValidator(v); err != nil {
			return &ValidationError{Name: "max_products", err: fmt.Errorf(`ent: validator failed for field "SubscriptionTier.max_products": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxContactMethods(); ok {
		if err := subscriptiontier.MaxContactMethodsValidator(v); err != nil {
			return &ValidationError{Name: "max_contact_methods", err: fmt.Errorf(`ent: validator failed for field "SubscriptionTier.max_contact_methods": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxBanners(); ok {
		if err := subscriptiontier.MaxBannersValidator(v); err != nil {
			return &ValidationError{Name: "max_banners", err: fmt.Errorf(`ent: validator failed for field "SubscriptionTier.max_banners": %w`, err)}
		}
	}
	return nil
}

func (_u *SubscriptionTierUpdateOne) sqlSave(ctx context.Context) (_node *SubscriptionTier, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subscriptiontier.Table, subscriptiontier.Columns, sqlgraph.NewFieldSpec(subscriptiontier.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubscriptionTier.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subscriptiontier.FieldID)
		for _, f := range fields {
			if !subscriptiontier.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subscriptiontier.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(subscriptiontier.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(subscriptiontier.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(subscriptiontier.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxProducts(); ok {
		_spec.SetField(subscriptiontier.FieldMaxProducts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxProducts(); ok {
		_spec.AddField(subscriptiontier.FieldMaxProducts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxContactMethods(); ok {
		_spec.SetField(subscriptiontier.FieldMaxContactMethods, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxContactMethods(); ok {
		_spec.AddField(subscriptiontier.FieldMaxContactMethods, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxBanners(); ok {
		_spec.SetField(subscriptiontier.FieldMaxBanners, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxBanners(); ok {
		_spec.AddField(subscriptiontier.FieldMaxBanners, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Features(); ok {
		_spec.SetField(subscriptiontier.FieldFeatures, field.TypeJSON, value)
	}
	if _u.mutation.FeaturesCleared() {
		_spec.ClearField(subscriptiontier.FieldFeatures, field.TypeJSON)
	}
	if _u.mutation.SubscriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubscriptionsIDs(); len(nodes) > 0 && !_u.mutation.SubscriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubscriptionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SubscriptionTier{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subscriptiontier.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
