// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fiber-ent-market-pg/ent/predicate"
	"fiber-ent-market-pg/ent/user"
	"fiber-ent-market-pg/ent/useraddress"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// UserAddressUpdate is the builder for updating UserAddress entities.
type UserAddressUpdate struct {
	config
	hooks    []Hook
	mutation *UserAddressMutation
}

// Where appends a list predicates to the UserAddressUpdate builder.
func (_u *UserAddressUpdate) Where(ps ...predicate.UserAddress) *UserAddressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLabel sets the "label" field.
func (_u *UserAddressUpdate) SetLabel(v string) *UserAddressUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *UserAddressUpdate) SetNillableLabel(v *string) *UserAddressUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *UserAddressUpdate) SetCity(v string) *UserAddressUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *UserAddressUpdate) SetNillableCity(v *string) *UserAddressUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetStreet sets the "street" field.
func (_u *UserAddressUpdate) SetStreet(v string) *UserAddressUpdate {
	_u.mutation.SetStreet(v)
	return _u
}

// SetNillableStreet sets the "street" field if the given value is not nil.
func (_u *UserAddressUpdate) SetNillableStreet(v *string) *UserAddressUpdate {
	if v != nil {
		_u.SetStreet(*v)
	}
	return _u
}

// SetBuilding sets the "building" field.
func (_u *UserAddressUpdate) SetBuilding(v string) *UserAddressUpdate {
	_u.mutation.SetBuilding(v)
	return _u
}

// SetNillableBuilding sets the "building" field if the given value is not nil.
func (_u *UserAddressUpdate) SetNillableBuilding(v *string) *UserAddressUpdate {
	if v != nil {
		_u.SetBuilding(*v)
	}
	return _u
}

// ClearBuilding clears the value of the "building" field.
func (_u *UserAddressUpdate) ClearBuilding() *UserAddressUpdate {
	_u.mutation.ClearBuilding()
	return _u
}

// SetApartment sets the "apartment" field.
func (_u *UserAddressUpdate) SetApartment(v string) *UserAddressUpdate {
	_u.mutation.SetApartment(v)
	return _u
}

// SetNillableApartment sets the "apartment" field if the given value is not nil.
func (_u *UserAddressUpdate) SetNillableApartment(v *string) *UserAddressUpdate {
	if v != nil {
		_u.SetApartment(*v)
	}
	return _u
}

// ClearApartment clears the value of the "apartment" field.
func (_u *UserAddressUpdate) ClearApartment() *UserAddressUpdate {
	_u.mutation.ClearApartment()
	return _u
}

// SetPostalCode sets the "postal_code" field.
func (_u *UserAddressUpdate) SetPostalCode(v string) *UserAddressUpdate {
	_u.mutation.SetPostalCode(v)
	return _u
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_u *UserAddressUpdate) SetNillablePostalCode(v *string) *UserAddressUpdate {
	if v != nil {
		_u.SetPostalCode(*v)
	}
	return _u
}

// ClearPostalCode clears the value of the "postal_code" field.
func (_u *UserAddressUpdate) ClearPostalCode() *UserAddressUpdate {
	_u.mutation.ClearPostalCode()
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *UserAddressUpdate) SetIsDefault(v bool) *UserAddressUpdate {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *UserAddressUpdate) SetNillableIsDefault(v *bool) *UserAddressUpdate {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserAddressUpdate) SetUpdatedAt(v time.Time) *UserAddressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *UserAddressUpdate) SetUserID(id uuid.UUID) *UserAddressUpdate {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *UserAddressUpdate) SetUser(v *User) *UserAddressUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the UserAddressMutation object of the builder.
func (_u *UserAddressUpdate) Mutation() *UserAddressMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *UserAddressUpdate) ClearUser() *UserAddressUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserAddressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserAddressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserAddressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserAddressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserAddressUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := useraddress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserAddressUpdate) check() error {
	if v, ok := _u.mutation.City(); ok {
		if err := useraddress.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`ent: validator failed for field "UserAddress.city": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Street(); ok {
		if err := useraddress.StreetValidator(v); err != nil {
			return &ValidationError{Name: "street", err: fmt.Errorf(`ent: validator failed for field "UserAddress.street": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UserAddress.user"`)
	}
	return nil
}

func (_u *UserAddressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(useraddress.Table, useraddress.Columns, sqlgraph.NewFieldSpec(useraddress.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(useraddress.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(useraddress.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Street(); ok {
		_spec.SetField(useraddress.FieldStreet, field.TypeString, value)
	}
	if value, ok := _u.mutation.Building(); ok {
		_spec.SetField(useraddress.FieldBuilding, field.TypeString, value)
	}
	if _u.mutation.BuildingCleared() {
		_spec.ClearField(useraddress.FieldBuilding, field.TypeString)
	}
	if value, ok := _u.mutation.Apartment(); ok {
		_spec.SetField(useraddress.FieldApartment, field.TypeString, value)
	}
	if _u.mutation.ApartmentCleared() {
		_spec.ClearField(useraddress.FieldApartment, field.TypeString)
	}
	if value, ok := _u.mutation.PostalCode(); ok {
		_spec.SetField(useraddress.FieldPostalCode, field.TypeString, value)
	}
	if _u.mutation.PostalCodeCleared() {
		_spec.ClearField(useraddress.FieldPostalCode, field.TypeString)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(useraddress.FieldIsDefault, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(useraddress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{useraddress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserAddressUpdateOne is the builder for updating a single UserAddress entity.
type UserAddressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserAddressMutation
}

// SetLabel sets the "label" field.
func (_u *UserAddressUpdateOne) SetLabel(v string) *UserAddressUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *UserAddressUpdateOne) SetNillableLabel(v *string) *UserAddressUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *UserAddressUpdateOne) SetCity(v string) *UserAddressUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *UserAddressUpdateOne) SetNillableCity(v *string) *UserAddressUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetStreet sets the "street" field.
func (_u *UserAddressUpdateOne) SetStreet(v string) *UserAddressUpdateOne {
	_u.mutation.SetStreet(v)
	return _u
}

// SetNillableStreet sets the "street" field if the given value is not nil.
func (_u *UserAddressUpdateOne) SetNillableStreet(v *string) *UserAddressUpdateOne {
	if v != nil {
		_u.SetStreet(*v)
	}
	return _u
}

// SetBuilding sets the "building" field.
func (_u *UserAddressUpdateOne) SetBuilding(v string) *UserAddressUpdateOne {
	_u.mutation.SetBuilding(v)
	return _u
}

// SetNillableBuilding sets the "building" field if the given value is not nil.
func (_u *UserAddressUpdateOne) SetNillableBuilding(v *string) *UserAddressUpdateOne {
	if v != nil {
		_u.SetBuilding(*v)
	}
	return _u
}

// ClearBuilding clears the value of the "building" field.
func (_u *UserAddressUpdateOne) ClearBuilding() *UserAddressUpdateOne {
	_u.mutation.ClearBuilding()
	return _u
}

// SetApartment sets the "apartment" field.
func (_u *UserAddressUpdateOne) SetApartment(v string) *UserAddressUpdateOne {
	_u.mutation.SetApartment(v)
	return _u
}

// SetNillableApartment sets the "apartment" field if the given value is not nil.
func (_u *UserAddressUpdateOne) SetNillableApartment(v *string) *UserAddressUpdateOne {
	if v != nil {
		_u.SetApartment(*v)
	}
	return _u
}

// ClearApartment clears the value of the "apartment" field.
func (_u *UserAddressUpdateOne) ClearApartment() *UserAddressUpdateOne {
	_u.mutation.ClearApartment()
	return _u
}

// SetPostalCode sets the "postal_code" field.
func (_u *UserAddressUpdateOne) SetPostalCode(v string) *UserAddressUpdateOne {
	_u.mutation.SetPostalCode(v)
	return _u
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_u *UserAddressUpdateOne) SetNillablePostalCode(v *string) *UserAddressUpdateOne {
	if v != nil {
		_u.SetPostalCode(*v)
	}
	return _u
}

// ClearPostalCode clears the value of the "postal_code" field.
func (_u *UserAddressUpdateOne) ClearPostalCode() *UserAddressUpdateOne {
	_u.mutation.ClearPostalCode()
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *UserAddressUpdateOne) SetIsDefault(v bool) *UserAddressUpdateOne {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *UserAddressUpdateOne) SetNillableIsDefault(v *bool) *UserAddressUpdateOne {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserAddressUpdateOne) SetUpdatedAt(v time.Time) *UserAddressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *UserAddressUpdateOne) SetUserID(id uuid.UUID) *UserAddressUpdateOne {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *UserAddressUpdateOne) SetUser(v *User) *UserAddressUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the UserAddressMutation object of the builder.
func (_u *UserAddressUpdateOne) Mutation() *UserAddressMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *UserAddressUpdateOne) ClearUser() *UserAddressUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the UserAddressUpdate builder.
func (_u *UserAddressUpdateOne) Where(ps ...predicate.UserAddress) *UserAddressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserAddressUpdateOne) Select(field string, fields ...string) *UserAddressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserAddress entity.
func (_u *UserAddressUpdateOne) Save(ctx context.Context) (*UserAddress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserAddressUpdateOne) SaveX(ctx context.Context) *UserAddress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserAddressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserAddressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserAddressUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := useraddress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserAddressUpdateOne) check() error {
	if v, ok := _u.mutation.City(); ok {
		if err := useraddress.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`ent: validator failed for field "UserAddress.city": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Street(); ok {
		if err := useraddress.StreetValidator(v); err != nil {
			return &ValidationError{Name: "street", err: fmt.Errorf(`ent: validator failed for field "UserAddress.street": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UserAddress.user"`)
	}
	return nil
}

func (_u *UserAddressUpdateOne) sqlSave(ctx context.Context) (_node *UserAddress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(useraddress.Table, useraddress.Columns, sqlgraph.NewFieldSpec(useraddress.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserAddress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, useraddress.FieldID)
		for _, f := range fields {
			if !useraddress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != useraddress.FieldID {
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
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(useraddress.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(useraddress.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Street(); ok {
		_spec.SetField(useraddress.FieldStreet, field.TypeString, value)
	}
	if value, ok := _u.mutation.Building(); ok {
		_spec.SetField(useraddress.FieldBuilding, field.TypeString, value)
	}
	if _u.mutation.BuildingCleared() {
		_spec.ClearField(useraddress.FieldBuilding, field.TypeString)
	}
	if value, ok := _u.mutation.Apartment(); ok {
		_spec.SetField(useraddress.FieldApartment, field.TypeString, value)
	}
	if _u.mutation.ApartmentCleared() {
		_spec.ClearField(useraddress.FieldApartment, field.TypeString)
	}
	if value, ok := _u.mutation.PostalCode(); ok {
		_spec.SetField(useraddress.FieldPostalCode, field.TypeString, value)
	}
	if _u.mutation.PostalCodeCleared() {
		_spec.ClearField(useraddress.FieldPostalCode, field.TypeString)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(useraddress.FieldIsDefault, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(useraddress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &UserAddress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{useraddress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
