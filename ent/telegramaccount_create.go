// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fiber-ent-market-pg/ent/telegramaccount"
	"fiber-ent-market-pg/ent/user"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// TelegramAccountCreate is the builder for creating a TelegramAccount entity.
type TelegramAccountCreate struct {
	config
	mutation *TelegramAccountMutation
	hooks    []Hook
}

// SetTelegramID sets the "telegram_id" field.
func (_c *TelegramAccountCreate) SetTelegramID(v int64) *TelegramAccountCreate {
	_c.mutation.SetTelegramID(v)
	return _c
}

// SetUsername sets the "username" field.
func (_c *TelegramAccountCreate) SetUsername(v string) *TelegramAccountCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_c *TelegramAccountCreate) SetNillableUsername(v *string) *TelegramAccountCreate {
	if v != nil {
		_c.SetUsername(*v)
	}
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *TelegramAccountCreate) SetFirstName(v string) *TelegramAccountCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *TelegramAccountCreate) SetLastName(v string) *TelegramAccountCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_c *TelegramAccountCreate) SetNillableLastName(v *string) *TelegramAccountCreate {
	if v != nil {
		_c.SetLastName(*v)
	}
	return _c
}

// SetPhotoURL sets the "photo_url" field.
func (_c *TelegramAccountCreate) SetPhotoURL(v string) *TelegramAccountCreate {
	_c.mutation.SetPhotoURL(v)
	return _c
}

// SetNillablePhotoURL sets the "photo_url" field if the given value is not nil.
func (_c *TelegramAccountCreate) SetNillablePhotoURL(v *string) *TelegramAccountCreate {
	if v != nil {
		_c.SetPhotoURL(*v)
	}
	return _c
}

// SetLanguageCode sets the "language_code" field.
func (_c *TelegramAccountCreate) SetLanguageCode(v string) *TelegramAccountCreate {
	_c.mutation.SetLanguageCode(v)
	return _c
}

// SetNillableLanguageCode sets the "language_code" field if the given value is not nil.
func (_c *TelegramAccountCreate) SetNillableLanguageCode(v *string) *TelegramAccountCreate {
	if v != nil {
		_c.SetLanguageCode(*v)
	}
	return _c
}

// SetLastLoginAt sets the "last_login_at" field.
func (_c *TelegramAccountCreate) SetLastLoginAt(v time.Time) *TelegramAccountCreate {
	_c.mutation.SetLastLoginAt(v)
	return _c
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_c *TelegramAccountCreate) SetNillableLastLoginAt(v *time.Time) *TelegramAccountCreate {
	if v != nil {
		_c.SetLastLoginAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TelegramAccountCreate) SetCreatedAt(v time.Time) *TelegramAccountCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TelegramAccountCreate) SetNillableCreatedAt(v *time.Time) *TelegramAccountCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TelegramAccountCreate) SetID(v uuid.UUID) *TelegramAccountCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TelegramAccountCreate) SetNillableID(v *uuid.UUID) *TelegramAccountCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_c *TelegramAccountCreate) SetUserID(id uuid.UUID) *TelegramAccountCreate {
	_c.mutation.SetUserID(id)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *TelegramAccountCreate) SetUser(v *User) *TelegramAccountCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the TelegramAccountMutation object of the builder.
func (_c *TelegramAccountCreate) Mutation() *TelegramAccountMutation {
	return _c.mutation
}

// Save creates the TelegramAccount in the database.
func (_c *TelegramAccountCreate) Save(ctx context.Context) (*TelegramAccount, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TelegramAccountCreate) SaveX(ctx context.Context) *TelegramAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TelegramAccountCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TelegramAccountCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TelegramAccountCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := telegramaccount.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := telegramaccount.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TelegramAccountCreate) check() error {
	if _, ok := _c.mutation.TelegramID(); !ok {
		return &ValidationError{Name: "telegram_id", err: errors.New(`ent: missing required field "TelegramAccount.telegram_id"`)}
	}
	if _, ok := _c.mutation.FirstName(); !ok {
		return &ValidationError{Name: "first_name", err: errors.New(`ent: missing required field "TelegramAccount.first_name"`)}
	}
	if v, ok := _c.mutation.FirstName(); ok {
		if err := telegramaccount.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "TelegramAccount.first_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TelegramAccount.created_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "TelegramAccount.user"`)}
	}
	return nil
}

func (_c *TelegramAccountCreate) sqlSave(ctx context.Context) (*TelegramAccount, error) {
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

func (_c *TelegramAccountCreate) createSpec() (*TelegramAccount, *sqlgraph.CreateSpec) {
	var (
		_node = &TelegramAccount{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(telegramaccount.Table, sqlgraph.NewFieldSpec(telegramaccount.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TelegramID(); ok {
		_spec.SetField(telegramaccount.FieldTelegramID, field.TypeInt64, value)
		_node.TelegramID = value
	}
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(telegramaccount.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(telegramaccount.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(telegramaccount.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.PhotoURL(); ok {
		_spec.SetField(telegramaccount.FieldPhotoURL, field.TypeString, value)
		_node.PhotoURL = value
	}
	if value, ok := _c.mutation.LanguageCode(); ok {
		_spec.SetField(telegramaccount.FieldLanguageCode, field.TypeString, value)
		_node.LanguageCode = value
	}
	if value, ok := _c.mutation.LastLoginAt(); ok {
		_spec.SetField(telegramaccount.FieldLastLoginAt, field.TypeTime, value)
		_node.LastLoginAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(telegramaccount.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.user_telegram_account = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TelegramAccountCreateBulk is the builder for creating many TelegramAccount entities in bulk.
type TelegramAccountCreateBulk struct {
	config
	err      error
	builders []*TelegramAccountCreate
}

// Save creates the TelegramAccount entities in the database.
func (_c *TelegramAccountCreateBulk) Save(ctx context.Context) ([]*TelegramAccount, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TelegramAccount, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TelegramAccountMutation)
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
func (_c *TelegramAccountCreateBulk) SaveX(ctx context.Context) []*TelegramAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TelegramAccountCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TelegramAccountCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
