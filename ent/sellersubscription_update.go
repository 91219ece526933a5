// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fiber-ent-market-pg/ent/predicate"
	"fiber-ent-market-pg/ent/seller"
	"fiber-ent-market-pg/ent/sellersubscription"
	"fiber-ent-market-pg/ent/subscriptiontier"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// SellerSubscriptionUpdate is the builder for updating SellerSubscription entities.
type SellerSubscriptionUpdate struct {
	config
	hooks    []Hook
	mutation *SellerSubscriptionMutation
}

// Where appends a list predicates to the SellerSubscriptionUpdate builder.
func (_u *SellerSubscriptionUpdate) Where(ps ...predicate.SellerSubscription) *SellerSubscriptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStartsAt sets the "starts_at" field.
func (_u *SellerSubscriptionUpdate) SetStartsAt(v time.Time) *SellerSubscriptionUpdate {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *SellerSubscriptionUpdate) SetNillableStartsAt(v *time.Time) *SellerSubscriptionUpdate {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// SetEndsAt sets the "ends_at" field.
func (_u *SellerSubscriptionUpdate) SetEndsAt(v time.Time) *SellerSubscriptionUpdate {
	_u.mutation.SetEndsAt(v)
	return _u
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_u *SellerSubscriptionUpdate) SetNillableEndsAt(v *time.Time) *SellerSubscriptionUpdate {
	if v != nil {
		_u.SetEndsAt(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *SellerSubscriptionUpdate) SetIsActive(v bool) *SellerSubscriptionUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *SellerSubscriptionUpdate) SetNillableIsActive(v *bool) *SellerSubscriptionUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetPaymentStatus sets the "payment_status" field.
func (_u *SellerSubscriptionUpdate) SetPaymentStatus(v sellersubscription.PaymentStatus) *SellerSubscriptionUpdate {
	_u.mutation.SetPaymentStatus(v)
	return _u
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_u *SellerSubscriptionUpdate) SetNillablePaymentStatus(v *sellersubscription.PaymentStatus) *SellerSubscriptionUpdate {
	if v != nil {
		_u.SetPaymentStatus(*v)
	}
	return _u
}

// SetSellerID sets the "seller" edge to the Seller entity by ID.
func (_u *SellerSubscriptionUpdate) SetSellerID(id uuid.UUID) *SellerSubscriptionUpdate {
	_u.mutation.SetSellerID(id)
	return _u
}

// SetSeller sets the "seller" edge to the Seller entity.
func (_u *SellerSubscriptionUpdate) SetSeller(v *Seller) *SellerSubscriptionUpdate {
	return _u.SetSellerID(v.ID)
}

// SetTierID sets the "tier" edge to the SubscriptionTier entity by ID.
func (_u *SellerSubscriptionUpdate) SetTierID(id uuid.UUID) *SellerSubscriptionUpdate {
	_u.mutation.SetTierID(id)
	return _u
}

// SetTier sets the "tier" edge to the SubscriptionTier entity.
func (_u *SellerSubscriptionUpdate) SetTier(v *SubscriptionTier) *SellerSubscriptionUpdate {
	return _u.SetTierID(v.ID)
}

// Mutation returns the SellerSubscriptionMutation object of the builder.
func (_u *SellerSubscriptionUpdate) Mutation() *SellerSubscriptionMutation {
	return _u.mutation
}

// ClearSeller clears the "seller" edge to the Seller entity.
func (_u *SellerSubscriptionUpdate) ClearSeller() *SellerSubscriptionUpdate {
	_u.mutation.ClearSeller()
	return _u
}

// ClearTier clears the "tier" edge to the SubscriptionTier entity.
func (_u *SellerSubscriptionUpdate) ClearTier() *SellerSubscriptionUpdate {
	_u.mutation.ClearTier()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SellerSubscriptionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SellerSubscriptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SellerSubscriptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SellerSubscriptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SellerSubscriptionUpdate) check() error {
	if v, ok := _u.mutation.PaymentStatus(); ok {
		if err := sellersubscription.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`ent: validator failed for field "SellerSubscription.payment_status": %w`, err)}
		}
	}
	if _u.mutation.SellerCleared() && len(_u.mutation.SellerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SellerSubscription.seller"`)
	}
	if _u.mutation.TierCleared() && len(_u.mutation.TierIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SellerSubscription.tier"`)
	}
	return nil
}

func (_u *SellerSubscriptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sellersubscription.Table, sellersubscription.Columns, sqlgraph.NewFieldSpec(sellersubscription.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(sellersubscription.FieldStartsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndsAt(); ok {
		_spec.SetField(sellersubscription.FieldEndsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(sellersubscription.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PaymentStatus(); ok {
		_spec.SetField(sellersubscription.FieldPaymentStatus, field.TypeEnum, value)
	}
	if _u.mutation.SellerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SellerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TierCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TierIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sellersubscription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SellerSubscriptionUpdateOne is the builder for updating a single SellerSubscription entity.
type SellerSubscriptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SellerSubscriptionMutation
}

// SetStartsAt sets the "starts_at" field.
func (_u *SellerSubscriptionUpdateOne) SetStartsAt(v time.Time) *SellerSubscriptionUpdateOne {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *SellerSubscriptionUpdateOne) SetNillableStartsAt(v *time.Time) *SellerSubscriptionUpdateOne {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// SetEndsAt sets the "ends_at" field.
func (_u *SellerSubscriptionUpdateOne) SetEndsAt(v time.Time) *SellerSubscriptionUpdateOne {
	_u.mutation.SetEndsAt(v)
	return _u
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_u *SellerSubscriptionUpdateOne) SetNillableEndsAt(v *time.Time) *SellerSubscriptionUpdateOne {
	if v != nil {
		_u.SetEndsAt(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *SellerSubscriptionUpdateOne) SetIsActive(v bool) *SellerSubscriptionUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *SellerSubscriptionUpdateOne) SetNillableIsActive(v *bool) *SellerSubscriptionUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetPaymentStatus sets the "payment_status" field.
func (_u *SellerSubscriptionUpdateOne) SetPaymentStatus(v sellersubscription.PaymentStatus) *SellerSubscriptionUpdateOne {
	_u.mutation.SetPaymentStatus(v)
	return _u
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_u *SellerSubscriptionUpdateOne) SetNillablePaymentStatus(v *sellersubscription.PaymentStatus) *SellerSubscriptionUpdateOne {
	if v != nil {
		_u.SetPaymentStatus(*v)
	}
	return _u
}

// SetSellerID sets the "seller" edge to the Seller entity by ID.
func (_u *SellerSubscriptionUpdateOne) SetSellerID(id uuid.UUID) *SellerSubscriptionUpdateOne {
	_u.mutation.SetSellerID(id)
	return _u
}

// SetSeller sets the "seller" edge to the Seller entity.
func (_u *SellerSubscriptionUpdateOne) SetSeller(v *Seller) *SellerSubscriptionUpdateOne {
	return _u.SetSellerID(v.ID)
}

// SetTierID sets the "tier" edge to the SubscriptionTier entity by ID.
func (_u *SellerSubscriptionUpdateOne) SetTierID(id uuid.UUID) *SellerSubscriptionUpdateOne {
	_u.mutation.SetTierID(id)
	return _u
}

// SetTier sets the "tier" edge to the SubscriptionTier entity.
func (_u *SellerSubscriptionUpdateOne) SetTier(v *SubscriptionTier) *SellerSubscriptionUpdateOne {
	return _u.SetTierID(v.ID)
}

// Mutation returns the SellerSubscriptionMutation object of the builder.
func (_u *SellerSubscriptionUpdateOne) Mutation() *SellerSubscriptionMutation {
	return _u.mutation
}

// ClearSeller clears the "seller" edge to the Seller entity.
func (_u *SellerSubscriptionUpdateOne) ClearSeller() *SellerSubscriptionUpdateOne {
	_u.mutation.ClearSeller()
	return _u
}

// ClearTier clears the "tier" edge to the SubscriptionTier entity.
func (_u *SellerSubscriptionUpdateOne) ClearTier() *SellerSubscriptionUpdateOne {
	_u.mutation.ClearTier()
	return _u
}

// Where appends a list predicates to the SellerSubscriptionUpdate builder.
func (_u *SellerSubscriptionUpdateOne) Where(ps ...predicate.SellerSubscription) *SellerSubscriptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SellerSubscriptionUpdateOne) Select(field string, fields ...string) *SellerSubscriptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SellerSubscription entity.
func (_u *SellerSubscriptionUpdateOne) Save(ctx context.Context) (*SellerSubscription, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SellerSubscriptionUpdateOne) SaveX(ctx context.Context) *SellerSubscription {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SellerSubscriptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SellerSubscriptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SellerSubscriptionUpdateOne) check() error {
	if v, ok := _u.mutation.PaymentStatus(); ok {
		if err := sellersubscription.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`ent: validator failed for field "SellerSubscription.payment_status": %w`, err)}
		}
	}
	if _u.mutation.SellerCleared() && len(_u.mutation.SellerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SellerSubscription.seller"`)
	}
	if _u.mutation.TierCleared() && len(_u.mutation.TierIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SellerSubscription.tier"`)
	}
	return nil
}

func (_u *SellerSubscriptionUpdateOne) sqlSave(ctx context.Context) (_node *SellerSubscription, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sellersubscription.Table, sellersubscription.Columns, sqlgraph.NewFieldSpec(sellersubscription.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SellerSubscription.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sellersubscription.FieldID)
		for _, f := range fields {
			if !sellersubscription.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sellersubscription.FieldID {
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
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(sellersubscription.FieldStartsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndsAt(); ok {
		_spec.SetField(sellersubscription.FieldEndsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(sellersubscription.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PaymentStatus(); ok {
		_spec.SetField(sellersubscription.FieldPaymentStatus, field.TypeEnum, value)
	}
	if _u.mutation.SellerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SellerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TierCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TierIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SellerSubscription{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sellersubscription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
