// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fiber-ent-market-pg/ent/analyticsevent"
	"fiber-ent-market-pg/ent/predicate"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// AnalyticsEventUpdate is the builder for updating AnalyticsEvent entities.
type AnalyticsEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnalyticsEventMutation
}

// Where appends a list predicates to the AnalyticsEventUpdate builder.
func (_u *AnalyticsEventUpdate) Where(ps ...predicate.AnalyticsEvent) *AnalyticsEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *AnalyticsEventUpdate) SetEventType(v string) *AnalyticsEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *AnalyticsEventUpdate) SetNillableEventType(v *string) *AnalyticsEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AnalyticsEventUpdate) SetUserID(v uuid.UUID) *AnalyticsEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AnalyticsEventUpdate) SetNillableUserID(v *uuid.UUID) *AnalyticsEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *AnalyticsEventUpdate) ClearUserID() *AnalyticsEventUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetSellerID sets the "seller_id" field.
func (_u *AnalyticsEventUpdate) SetSellerID(v uuid.UUID) *AnalyticsEventUpdate {
	_u.mutation.SetSellerID(v)
	return _u
}

// SetNillableSellerID sets the "seller_id" field if the given value is not nil.
func (_u *AnalyticsEventUpdate) SetNillableSellerID(v *uuid.UUID) *AnalyticsEventUpdate {
	if v != nil {
		_u.SetSellerID(*v)
	}
	return _u
}

// ClearSellerID clears the value of the "seller_id" field.
func (_u *AnalyticsEventUpdate) ClearSellerID() *AnalyticsEventUpdate {
	_u.mutation.ClearSellerID()
	return _u
}

// SetProductID sets the "product_id" field.
func (_u *AnalyticsEventUpdate) SetProductID(v uuid.UUID) *AnalyticsEventUpdate {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *AnalyticsEventUpdate) SetNillableProductID(v *uuid.UUID) *AnalyticsEventUpdate {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// ClearProductID clears the value of the "product_id" field.
func (_u *AnalyticsEventUpdate) ClearProductID() *AnalyticsEventUpdate {
	_u.mutation.ClearProductID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *AnalyticsEventUpdate) SetMetadata(v map[string]interface{}) *AnalyticsEventUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AnalyticsEventUpdate) ClearMetadata() *AnalyticsEventUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the AnalyticsEventMutation object of the builder.
func (_u *AnalyticsEventUpdate) Mutation() *AnalyticsEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalyticsEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalyticsEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalyticsEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalyticsEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalyticsEventUpdate) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := analyticsevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "AnalyticsEvent.event_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalyticsEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analyticsevent.Table, analyticsevent.Columns, sqlgraph.NewFieldSpec(analyticsevent.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(analyticsevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(analyticsevent.FieldUserID, field.TypeUUID, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(analyticsevent.FieldUserID, field.TypeUUID)
	}
	if value, ok := _u.mutation.SellerID(); ok {
		_spec.SetField(analyticsevent.FieldSellerID, field.TypeUUID, value)
	}
	if _u.mutation.SellerIDCleared() {
		_spec.ClearField(analyticsevent.FieldSellerID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ProductID(); ok {
		_spec.SetField(analyticsevent.FieldProductID, field.TypeUUID, value)
	}
	if _u.mutation.ProductIDCleared() {
		_spec.ClearField(analyticsevent.FieldProductID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(analyticsevent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(analyticsevent.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analyticsevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalyticsEventUpdateOne is the builder for updating a single AnalyticsEvent entity.
type AnalyticsEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalyticsEventMutation
}

// SetEventType sets the "event_type" field.
func (_u *AnalyticsEventUpdateOne) SetEventType(v string) *AnalyticsEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *AnalyticsEventUpdateOne) SetNillableEventType(v *string) *AnalyticsEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AnalyticsEventUpdateOne) SetUserID(v uuid.UUID) *AnalyticsEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AnalyticsEventUpdateOne) SetNillableUserID(v *uuid.UUID) *AnalyticsEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *AnalyticsEventUpdateOne) ClearUserID() *AnalyticsEventUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetSellerID sets the "seller_id" field.
func (_u *AnalyticsEventUpdateOne) SetSellerID(v uuid.UUID) *AnalyticsEventUpdateOne {
	_u.mutation.SetSellerID(v)
	return _u
}

// SetNillableSellerID sets the "seller_id" field if the given value is not nil.
func (_u *AnalyticsEventUpdateOne) SetNillableSellerID(v *uuid.UUID) *AnalyticsEventUpdateOne {
	if v != nil {
		_u.SetSellerID(*v)
	}
	return _u
}

// ClearSellerID clears the value of the "seller_id" field.
func (_u *AnalyticsEventUpdateOne) ClearSellerID() *AnalyticsEventUpdateOne {
	_u.mutation.ClearSellerID()
	return _u
}

// SetProductID sets the "product_id" field.
func (_u *AnalyticsEventUpdateOne) SetProductID(v uuid.UUID) *AnalyticsEventUpdateOne {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *AnalyticsEventUpdateOne) SetNillableProductID(v *uuid.UUID) *AnalyticsEventUpdateOne {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// ClearProductID clears the value of the "product_id" field.
func (_u *AnalyticsEventUpdateOne) ClearProductID() *AnalyticsEventUpdateOne {
	_u.mutation.ClearProductID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *AnalyticsEventUpdateOne) SetMetadata(v map[string]interface{}) *AnalyticsEventUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AnalyticsEventUpdateOne) ClearMetadata() *AnalyticsEventUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the AnalyticsEventMutation object of the builder.
func (_u *AnalyticsEventUpdateOne) Mutation() *AnalyticsEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalyticsEventUpdate builder.
func (_u *AnalyticsEventUpdateOne) Where(ps ...predicate.AnalyticsEvent) *AnalyticsEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalyticsEventUpdateOne) Select(field string, fields ...string) *AnalyticsEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalyticsEvent entity.
func (_u *AnalyticsEventUpdateOne) Save(ctx context.Context) (*AnalyticsEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalyticsEventUpdateOne) SaveX(ctx context.Context) *AnalyticsEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalyticsEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalyticsEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalyticsEventUpdateOne) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := analyticsevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "AnalyticsEvent.event_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalyticsEventUpdateOne) sqlSave(ctx context.Context) (_node *AnalyticsEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analyticsevent.Table, analyticsevent.Columns, sqlgraph.NewFieldSpec(analyticsevent.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalyticsEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analyticsevent.FieldID)
		for _, f := range fields {
			if !analyticsevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analyticsevent.FieldID {
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
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(analyticsevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(analyticsevent.FieldUserID, field.TypeUUID, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(analyticsevent.FieldUserID, field.TypeUUID)
	}
	if value, ok := _u.mutation.SellerID(); ok {
		_spec.SetField(analyticsevent.FieldSellerID, field.TypeUUID, value)
	}
	if _u.mutation.SellerIDCleared() {
		_spec.ClearField(analyticsevent.FieldSellerID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ProductID(); ok {
		_spec.SetField(analyticsevent.FieldProductID, field.TypeUUID, value)
	}
	if _u.mutation.ProductIDCleared() {
		_spec.ClearField(analyticsevent.FieldProductID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(analyticsevent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(analyticsevent.FieldMetadata, field.TypeJSON)
	}
	_node = &AnalyticsEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analyticsevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
