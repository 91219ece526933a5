// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fiber-ent-market-pg/ent/seller"
	"fiber-ent-market-pg/ent/sellersubscription"
	"fiber-ent-market-pg/ent/subscriptiontier"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// SellerSubscription is the model entity for the SellerSubscription schema.
type SellerSubscription struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// StartsAt holds the value of the "starts_at" field.
	StartsAt time.Time `json:"starts_at,omitempty"`
	// EndsAt holds the value of the "ends_at" field.
	EndsAt time.Time `json:"ends_at,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// PaymentStatus holds the value of the "payment_status" field.
	PaymentStatus sellersubscription.PaymentStatus `json:"payment_status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SellerSubscriptionQuery when eager-loading is set.
	Edges                           SellerSubscriptionEdges `json:"edges"`
	seller_subscriptions            *uuid.UUID
	subscription_tier_subscriptions *uuid.UUID
	selectValues                    sql.SelectValues
}

// SellerSubscriptionEdges holds the relations/edges for other nodes in the graph.
type SellerSubscriptionEdges struct {
	// Seller holds the value of the seller edge.
	Seller *Seller `json:"seller,omitempty"`
	// Tier holds the value of the tier edge.
	Tier *SubscriptionTier `json:"tier,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SellerOrErr returns the Seller value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SellerSubscriptionEdges) SellerOrErr() (*Seller, error) {
	if e.Seller != nil {
		return e.Seller, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: seller.Label}
	}
	return nil, &NotLoadedError{edge: "seller"}
}

// TierOrErr returns the Tier value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SellerSubscriptionEdges) TierOrErr() (*SubscriptionTier, error) {
	if e.Tier != nil {
		return e.Tier, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: subscriptiontier.Label}
	}
	return nil, &NotLoadedError{edge: "tier"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SellerSubscription) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sellersubscription.FieldIsActive:
			values[i] = new(sql.NullBool)
		case sellersubscription.FieldPaymentStatus:
			values[i] = new(sql.NullString)
		case sellersubscription.FieldStartsAt, sellersubscription.FieldEndsAt, sellersubscription.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case sellersubscription.FieldID:
			values[i] = new(uuid.UUID)
		case sellersubscription.ForeignKeys[0]: // seller_subscriptions
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case sellersubscription.ForeignKeys[1]: // subscription_tier_subscriptions
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SellerSubscription fields.
func (_m *SellerSubscription) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sellersubscription.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case sellersubscription.FieldStartsAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field starts_at", values[i])
			} else if value.Valid {
				_m.StartsAt = value.Time
			}
		case sellersubscription.FieldEndsAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ends_at", values[i])
			} else if value.Valid {
				_m.EndsAt = value.Time
			}
		case sellersubscription.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case sellersubscription.FieldPaymentStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_status", values[i])
			} else if value.Valid {
				_m.PaymentStatus = sellersubscription.PaymentStatus(value.String)
			}
		case sellersubscription.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case sellersubscription.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field seller_subscriptions", values[i])
			} else if value.Valid {
				_m.seller_subscriptions = new(uuid.UUID)
				*_m.seller_subscriptions = *value.S.(*uuid.UUID)
			}
		case sellersubscription.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field subscription_tier_subscriptions", values[i])
			} else if value.Valid {
				_m.subscription_tier_subscriptions = new(uuid.UUID)
				*_m.subscription_tier_subscriptions = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SellerSubscription.
// This includes values selected through modifiers, order, etc.
func (_m *SellerSubscription) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySeller queries the "seller" edge of the SellerSubscription entity.
func (_m *SellerSubscription) QuerySeller() *SellerQuery {
	return NewSellerSubscriptionClient(_m.config).QuerySeller(_m)
}

// QueryTier queries the "tier" edge of the SellerSubscription entity.
func (_m *SellerSubscription) QueryTier() *SubscriptionTierQuery {
	return NewSellerSubscriptionClient(_m.config).QueryTier(_m)
}

// Update returns a builder for updating this SellerSubscription.
// Note that you need to call SellerSubscription.Unwrap() before calling this method if this SellerSubscription
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SellerSubscription) Update() *SellerSubscriptionUpdateOne {
	return NewSellerSubscriptionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SellerSubscription entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SellerSubscription) Unwrap() *SellerSubscription {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SellerSubscription is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SellerSubscription) String() string {
	var builder strings.Builder
	builder.WriteString("SellerSubscription(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("starts_at=")
	builder.WriteString(_m.StartsAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("ends_at=")
	builder.WriteString(_m.EndsAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("payment_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.PaymentStatus))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SellerSubscriptions is a parsable slice of SellerSubscription.
type SellerSubscriptions []*SellerSubscription
