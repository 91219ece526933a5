// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fiber-ent-market-pg/ent/predicate"
	"fiber-ent-market-pg/ent/telegramaccount"
	"fiber-ent-market-pg/ent/user"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// TelegramAccountUpdate is the builder for updating TelegramAccount entities.
type TelegramAccountUpdate struct {
	config
	hooks    []Hook
	mutation *TelegramAccountMutation
}

// Where appends a list predicates to the TelegramAccountUpdate builder.
func (_u *TelegramAccountUpdate) Where(ps ...predicate.TelegramAccount) *TelegramAccountUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTelegramID sets the "telegram_id" field.
func (_u *TelegramAccountUpdate) SetTelegramID(v int64) *TelegramAccountUpdate {
	_u.mutation.ResetTelegramID()
	_u.mutation.SetTelegramID(v)
	return _u
}

// SetNillableTelegramID sets the "telegram_id" field if the given value is not nil.
func (_u *TelegramAccountUpdate) SetNillableTelegramID(v *int64) *TelegramAccountUpdate {
	if v != nil {
		_u.SetTelegramID(*v)
	}
	return _u
}

// AddTelegramID adds value to the "telegram_id" field.
func (_u *TelegramAccountUpdate) AddTelegramID(v int64) *TelegramAccountUpdate {
	_u.mutation.AddTelegramID(v)
	return _u
}

// SetUsername sets the "username" field.
func (_u *TelegramAccountUpdate) SetUsername(v string) *TelegramAccountUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *TelegramAccountUpdate) SetNillableUsername(v *string) *TelegramAccountUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// ClearUsername clears the value of the "username" field.
func (_u *TelegramAccountUpdate) ClearUsername() *TelegramAccountUpdate {
	_u.mutation.ClearUsername()
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *TelegramAccountUpdate) SetFirstName(v string) *TelegramAccountUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *TelegramAccountUpdate) SetNillableFirstName(v *string) *TelegramAccountUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *TelegramAccountUpdate) SetLastName(v string) *TelegramAccountUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *TelegramAccountUpdate) SetNillableLastName(v *string) *TelegramAccountUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *TelegramAccountUpdate) ClearLastName() *TelegramAccountUpdate {
	_u.mutation.ClearLastName()
	return _u
}

// SetPhotoURL sets the "photo_url" field.
func (_u *TelegramAccountUpdate) SetPhotoURL(v string) *TelegramAccountUpdate {
	_u.mutation.SetPhotoURL(v)
	return _u
}

// SetNillablePhotoURL sets the "photo_url" field if the given value is not nil.
func (_u *TelegramAccountUpdate) SetNillablePhotoURL(v *string) *TelegramAccountUpdate {
	if v != nil {
		_u.SetPhotoURL(*v)
	}
	return _u
}

// ClearPhotoURL clears the value of the "photo_url" field.
func (_u *TelegramAccountUpdate) ClearPhotoURL() *TelegramAccountUpdate {
	_u.mutation.ClearPhotoURL()
	return _u
}

// SetLanguageCode sets the "language_code" field.
func (_u *TelegramAccountUpdate) SetLanguageCode(v string) *TelegramAccountUpdate {
	_u.mutation.SetLanguageCode(v)
	return _u
}

// SetNillableLanguageCode sets the "language_code" field if the given value is not nil.
func (_u *TelegramAccountUpdate) SetNillableLanguageCode(v *string) *TelegramAccountUpdate {
	if v != nil {
		_u.SetLanguageCode(*v)
	}
	return _u
}

// ClearLanguageCode clears the value of the "language_code" field.
func (_u *TelegramAccountUpdate) ClearLanguageCode() *TelegramAccountUpdate {
	_u.mutation.ClearLanguageCode()
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *TelegramAccountUpdate) SetLastLoginAt(v time.Time) *TelegramAccountUpdate {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *TelegramAccountUpdate) SetNillableLastLoginAt(v *time.Time) *TelegramAccountUpdate {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *TelegramAccountUpdate) ClearLastLoginAt() *TelegramAccountUpdate {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *TelegramAccountUpdate) SetUserID(id uuid.UUID) *TelegramAccountUpdate {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *TelegramAccountUpdate) SetUser(v *User) *TelegramAccountUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the TelegramAccountMutation object of the builder.
func (_u *TelegramAccountUpdate) Mutation() *TelegramAccountMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *TelegramAccountUpdate) ClearUser() *TelegramAccountUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TelegramAccountUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TelegramAccountUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TelegramAccountUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TelegramAccountUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TelegramAccountUpdate) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := telegramaccount.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "TelegramAccount.first_name": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TelegramAccount.user"`)
	}
	return nil
}

func (_u *TelegramAccountUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(telegramaccount.Table, telegramaccount.Columns, sqlgraph.NewFieldSpec(telegramaccount.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TelegramID(); ok {
		_spec.SetField(telegramaccount.FieldTelegramID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTelegramID(); ok {
		_spec.AddField(telegramaccount.FieldTelegramID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(telegramaccount.FieldUsername, field.TypeString, value)
	}
	if _u.mutation.UsernameCleared() {
		_spec.ClearField(telegramaccount.FieldUsername, field.TypeString)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(telegramaccount.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(telegramaccount.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(telegramaccount.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.PhotoURL(); ok {
		_spec.SetField(telegramaccount.FieldPhotoURL, field.TypeString, value)
	}
	if _u.mutation.PhotoURLCleared() {
		_spec.ClearField(telegramaccount.FieldPhotoURL, field.TypeString)
	}
	if value, ok := _u.mutation.LanguageCode(); ok {
		_spec.SetField(telegramaccount.FieldLanguageCode, field.TypeString, value)
	}
	if _u.mutation.LanguageCodeCleared() {
		_spec.ClearField(telegramaccount.FieldLanguageCode, field.TypeString)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(telegramaccount.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(telegramaccount.FieldLastLoginAt, field.TypeTime)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   telegramaccount.UserTable,
			Columns: []string{telegramaccount.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   telegramaccount.UserTable,
			Columns: []string{telegramaccount.UserColumn},
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
			err = &NotFoundError{telegramaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TelegramAccountUpdateOne is the builder for updating a single TelegramAccount entity.
type TelegramAccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TelegramAccountMutation
}

// SetTelegramID sets the "telegram_id" field.
func (_u *TelegramAccountUpdateOne) SetTelegramID(v int64) *TelegramAccountUpdateOne {
	_u.mutation.ResetTelegramID()
	_u.mutation.SetTelegramID(v)
	return _u
}

// SetNillableTelegramID sets the "telegram_id" field if the given value is not nil.
func (_u *TelegramAccountUpdateOne) SetNillableTelegramID(v *int64) *TelegramAccountUpdateOne {
	if v != nil {
		_u.SetTelegramID(*v)
	}
	return _u
}

// AddTelegramID adds value to the "telegram_id" field.
func (_u *TelegramAccountUpdateOne) AddTelegramID(v int64) *TelegramAccountUpdateOne {
	_u.mutation.AddTelegramID(v)
	return _u
}

// SetUsername sets the "username" field.
func (_u *TelegramAccountUpdateOne) SetUsername(v string) *TelegramAccountUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *TelegramAccountUpdateOne) SetNillableUsername(v *string) *TelegramAccountUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// ClearUsername clears the value of the "username" field.
func (_u *TelegramAccountUpdateOne) ClearUsername() *TelegramAccountUpdateOne {
	_u.mutation.ClearUsername()
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *TelegramAccountUpdateOne) SetFirstName(v string) *TelegramAccountUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *TelegramAccountUpdateOne) SetNillableFirstName(v *string) *TelegramAccountUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *TelegramAccountUpdateOne) SetLastName(v string) *TelegramAccountUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *TelegramAccountUpdateOne) SetNillableLastName(v *string) *TelegramAccountUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *TelegramAccountUpdateOne) ClearLastName() *TelegramAccountUpdateOne {
	_u.mutation.ClearLastName()
	return _u
}

// SetPhotoURL sets the "photo_url" field.
func (_u *TelegramAccountUpdateOne) SetPhotoURL(v string) *TelegramAccountUpdateOne {
	_u.mutation.SetPhotoURL(v)
	return _u
}

// SetNillablePhotoURL sets the "photo_url" field if the given value is not nil.
func (_u *TelegramAccountUpdateOne) SetNillablePhotoURL(v *string) *TelegramAccountUpdateOne {
	if v != nil {
		_u.SetPhotoURL(*v)
	}
	return _u
}

// ClearPhotoURL clears the value of the "photo_url" field.
func (_u *TelegramAccountUpdateOne) ClearPhotoURL() *TelegramAccountUpdateOne {
	_u.mutation.ClearPhotoURL()
	return _u
}

// SetLanguageCode sets the "language_code" field.
func (_u *TelegramAccountUpdateOne) SetLanguageCode(v string) *TelegramAccountUpdateOne {
	_u.mutation.SetLanguageCode(v)
	return _u
}

// SetNillableLanguageCode sets the "language_code" field if the given value is not nil.
func (_u *TelegramAccountUpdateOne) SetNillableLanguageCode(v *string) *TelegramAccountUpdateOne {
	if v != nil {
		_u.SetLanguageCode(*v)
	}
	return _u
}

// ClearLanguageCode clears the value of the "language_code" field.
func (_u *TelegramAccountUpdateOne) ClearLanguageCode() *TelegramAccountUpdateOne {
	_u.mutation.ClearLanguageCode()
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *TelegramAccountUpdateOne) SetLastLoginAt(v time.Time) *TelegramAccountUpdateOne {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *TelegramAccountUpdateOne) SetNillableLastLoginAt(v *time.Time) *TelegramAccountUpdateOne {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *TelegramAccountUpdateOne) ClearLastLoginAt() *TelegramAccountUpdateOne {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *TelegramAccountUpdateOne) SetUserID(id uuid.UUID) *TelegramAccountUpdateOne {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *TelegramAccountUpdateOne) SetUser(v *User) *TelegramAccountUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the TelegramAccountMutation object of the builder.
func (_u *TelegramAccountUpdateOne) Mutation() *TelegramAccountMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *TelegramAccountUpdateOne) ClearUser() *TelegramAccountUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the TelegramAccountUpdate builder.
func (_u *TelegramAccountUpdateOne) Where(ps ...predicate.TelegramAccount) *TelegramAccountUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TelegramAccountUpdateOne) Select(field string, fields ...string) *TelegramAccountUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TelegramAccount entity.
func (_u *TelegramAccountUpdateOne) Save(ctx context.Context) (*TelegramAccount, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TelegramAccountUpdateOne) SaveX(ctx context.Context) *TelegramAccount {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TelegramAccountUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TelegramAccountUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TelegramAccountUpdateOne) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := telegramaccount.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "TelegramAccount.first_name": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TelegramAccount.user"`)
	}
	return nil
}

func (_u *TelegramAccountUpdateOne) sqlSave(ctx context.Context) (_node *TelegramAccount, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(telegramaccount.Table, telegramaccount.Columns, sqlgraph.NewFieldSpec(telegramaccount.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TelegramAccount.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, telegramaccount.FieldID)
		for _, f := range fields {
			if !telegramaccount.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != telegramaccount.FieldID {
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
	if value, ok := _u.mutation.TelegramID(); ok {
		_spec.SetField(telegramaccount.FieldTelegramID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTelegramID(); ok {
		_spec.AddField(telegramaccount.FieldTelegramID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(telegramaccount.FieldUsername, field.TypeString, value)
	}
	if _u.mutation.UsernameCleared() {
		_spec.ClearField(telegramaccount.FieldUsername, field.TypeString)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(telegramaccount.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(telegramaccount.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(telegramaccount.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.PhotoURL(); ok {
		_spec.SetField(telegramaccount.FieldPhotoURL, field.TypeString, value)
	}
	if _u.mutation.PhotoURLCleared() {
		_spec.ClearField(telegramaccount.FieldPhotoURL, field.TypeString)
	}
	if value, ok := _u.mutation.LanguageCode(); ok {
		_spec.SetField(telegramaccount.FieldLanguageCode, field.TypeString, value)
	}
	if _u.mutation.LanguageCodeCleared() {
		_spec.ClearField(telegramaccount.FieldLanguageCode, field.TypeString)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(telegramaccount.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(telegramaccount.FieldLastLoginAt, field.TypeTime)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   telegramaccount.UserTable,
			Columns: []string{telegramaccount.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   telegramaccount.UserTable,
			Columns: []string{telegramaccount.UserColumn},
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
	_node = &TelegramAccount{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{telegramaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
