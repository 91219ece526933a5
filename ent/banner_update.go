// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fiber-ent-market-pg/ent/banner"
	"fiber-ent-market-pg/ent/predicate"
	"fiber-ent-market-pg/ent/seller"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// BannerUpdate is the builder for updating Banner entities.
type BannerUpdate struct {
	config
	hooks    []Hook
	mutation *BannerMutation
}

// Where appends a list predicates to the BannerUpdate builder.
func (_u *BannerUpdate) Where(ps ...predicate.Banner) *BannerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *BannerUpdate) SetImageURL(v string) *BannerUpdate {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableImageURL(v *string) *BannerUpdate {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// SetLinkURL sets the "link_url" field.
func (_u *BannerUpdate) SetLinkURL(v string) *BannerUpdate {
	_u.mutation.SetLinkURL(v)
	return _u
}

// SetNillableLinkURL sets the "link_url" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableLinkURL(v *string) *BannerUpdate {
	if v != nil {
		_u.SetLinkURL(*v)
	}
	return _u
}

// ClearLinkURL clears the value of the "link_url" field.
func (_u *BannerUpdate) ClearLinkURL() *BannerUpdate {
	_u.mutation.ClearLinkURL()
	return _u
}

// SetPlacement sets the "placement" field.
func (_u *BannerUpdate) SetPlacement(v string) *BannerUpdate {
	_u.mutation.SetPlacement(v)
	return _u
}

// SetNillablePlacement sets the "placement" field if the given value is not nil.
func (_u *BannerUpdate) SetNillablePlacement(v *string) *BannerUpdate {
	if v != nil {
		_u.SetPlacement(*v)
	}
	return _u
}

// SetStartsAt sets the "starts_at" field.
func (_u *BannerUpdate) SetStartsAt(v time.Time) *BannerUpdate {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableStartsAt(v *time.Time) *BannerUpdate {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// SetEndsAt sets the "ends_at" field.
func (_u *BannerUpdate) SetEndsAt(v time.Time) *BannerUpdate {
	_u.mutation.SetEndsAt(v)
	return _u
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableEndsAt(v *time.Time) *BannerUpdate {
	if v != nil {
		_u.SetEndsAt(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *BannerUpdate) SetIsActive(v bool) *BannerUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableIsActive(v *bool) *BannerUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetSellerID sets the "seller" edge to the Seller entity by ID.
func (_u *BannerUpdate) SetSellerID(id uuid.UUID) *BannerUpdate {
	_u.mutation.SetSellerID(id)
	return _u
}

// SetSeller sets the "seller" edge to the Seller entity.
func (_u *BannerUpdate) SetSeller(v *Seller) *BannerUpdate {
	return _u.SetSellerID(v.ID)
}

// Mutation returns the BannerMutation object of the builder.
func (_u *BannerUpdate) Mutation() *BannerMutation {
	return _u.mutation
}

// ClearSeller clears the "seller" edge to the Seller entity.
func (_u *BannerUpdate) ClearSeller() *BannerUpdate {
	_u.mutation.ClearSeller()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BannerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BannerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BannerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BannerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BannerUpdate) check() error {
	if v, ok := _u.mutation.ImageURL(); ok {
		if err := banner.ImageURLValidator(v); err != nil {
			return &ValidationError{Name: "image_url", err: fmt.Errorf(`ent: validator failed for field "Banner.image_url": %w`, err)}
		}
	}
	if _u.mutation.SellerCleared() && len(_u.mutation.SellerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Banner.seller"`)
	}
	return nil
}

func (_u *BannerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(banner.Table, banner.Columns, sqlgraph.NewFieldSpec(banner.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(banner.FieldImageURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.LinkURL(); ok {
		_spec.SetField(banner.FieldLinkURL, field.TypeString, value)
	}
	if _u.mutation.LinkURLCleared() {
		_spec.ClearField(banner.FieldLinkURL, field.TypeString)
	}
	if value, ok := _u.mutation.Placement(); ok {
		_spec.SetField(banner.FieldPlacement, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(banner.FieldStartsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndsAt(); ok {
		_spec.SetField(banner.FieldEndsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(banner.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.SellerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SellerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{banner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BannerUpdateOne is the builder for updating a single Banner entity.
type BannerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BannerMutation
}

// SetImageURL sets the "image_url" field.
func (_u *BannerUpdateOne) SetImageURL(v string) *BannerUpdateOne {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableImageURL(v *string) *BannerUpdateOne {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// SetLinkURL sets the "link_url" field.
func (_u *BannerUpdateOne) SetLinkURL(v string) *BannerUpdateOne {
	_u.mutation.SetLinkURL(v)
	return _u
}

// SetNillableLinkURL sets the "link_url" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableLinkURL(v *string) *BannerUpdateOne {
	if v != nil {
		_u.SetLinkURL(*v)
	}
	return _u
}

// ClearLinkURL clears the value of the "link_url" field.
func (_u *BannerUpdateOne) ClearLinkURL() *BannerUpdateOne {
	_u.mutation.ClearLinkURL()
	return _u
}

// SetPlacement sets the "placement" field.
func (_u *BannerUpdateOne) SetPlacement(v string) *BannerUpdateOne {
	_u.mutation.SetPlacement(v)
	return _u
}

// SetNillablePlacement sets the "placement" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillablePlacement(v *string) *BannerUpdateOne {
	if v != nil {
		_u.SetPlacement(*v)
	}
	return _u
}

// SetStartsAt sets the "starts_at" field.
func (_u *BannerUpdateOne) SetStartsAt(v time.Time) *BannerUpdateOne {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableStartsAt(v *time.Time) *BannerUpdateOne {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// SetEndsAt sets the "ends_at" field.
func (_u *BannerUpdateOne) SetEndsAt(v time.Time) *BannerUpdateOne {
	_u.mutation.SetEndsAt(v)
	return _u
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableEndsAt(v *time.Time) *BannerUpdateOne {
	if v != nil {
		_u.SetEndsAt(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *BannerUpdateOne) SetIsActive(v bool) *BannerUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableIsActive(v *bool) *BannerUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetSellerID sets the "seller" edge to the Seller entity by ID.
func (_u *BannerUpdateOne) SetSellerID(id uuid.UUID) *BannerUpdateOne {
	_u.mutation.SetSellerID(id)
	return _u
}

// SetSeller sets the "seller" edge to the Seller entity.
func (_u *BannerUpdateOne) SetSeller(v *Seller) *BannerUpdateOne {
	return _u.SetSellerID(v.ID)
}

// Mutation returns the BannerMutation object of the builder.
func (_u *BannerUpdateOne) Mutation() *BannerMutation {
	return _u.mutation
}

// ClearSeller clears the "seller" edge to the Seller entity.
func (_u *BannerUpdateOne) ClearSeller() *BannerUpdateOne {
	_u.mutation.ClearSeller()
	return _u
}

// Where appends a list predicates to the BannerUpdate builder.
func (_u *BannerUpdateOne) Where(ps ...predicate.Banner) *BannerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BannerUpdateOne) Select(field string, fields ...string) *BannerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Banner entity.
func (_u *BannerUpdateOne) Save(ctx context.Context) (*Banner, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BannerUpdateOne) SaveX(ctx context.Context) *Banner {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BannerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BannerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BannerUpdateOne) check() error {
	if v, ok := _u.mutation.ImageURL(); ok {
		if err := banner.ImageURLValidator(v); err != nil {
			return &ValidationError{Name: "image_url", err: fmt.Errorf(`ent: validator failed for field "Banner.image_url": %w`, err)}
		}
	}
	if _u.mutation.SellerCleared() && len(_u.mutation.SellerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Banner.seller"`)
	}
	return nil
}

func (_u *BannerUpdateOne) sqlSave(ctx context.Context) (_node *Banner, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(banner.Table, banner.Columns, sqlgraph.NewFieldSpec(banner.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Banner.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, banner.FieldID)
		for _, f := range fields {
			if !banner.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != banner.FieldID {
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
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(banner.FieldImageURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.LinkURL(); ok {
		_spec.SetField(banner.FieldLinkURL, field.TypeString, value)
	}
	if _u.mutation.LinkURLCleared() {
		_spec.ClearField(banner.FieldLinkURL, field.TypeString)
	}
	if value, ok := _u.mutation.Placement(); ok {
		_spec.SetField(banner.FieldPlacement, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(banner.FieldStartsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndsAt(); ok {
		_spec.SetField(banner.FieldEndsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(banner.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.SellerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SellerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Banner{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{banner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
