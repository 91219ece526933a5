// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fiber-ent-market-pg/ent/subscriptiontier"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// SubscriptionTier is the model entity for the SubscriptionTier schema.
type SubscriptionTier struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Price holds the value of the "price" field.
	Price float64 `json:"price,omitempty"`
	// MaxProducts holds the value of the "max_products" field.
	MaxProducts int `json:"max_products,omitempty"`
	// MaxContactMethods holds the value of the "max_contact_methods" field.
	MaxContactMethods int `json:"max_contact_methods,omitempty"`
	// MaxBanners holds the value of the "max_banners" field.
	MaxBanners int `json:"max_banners,omitempty"`
	// Features holds the value of the "features" field.
	Features map[string]interface{} `json:"features,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SubscriptionTierQuery when eager-loading is set.
	Edges        SubscriptionTierEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SubscriptionTierEdges holds the relations/edges for other nodes in the graph.
type SubscriptionTierEdges struct {
	// Subscriptions holds the value of the subscriptions edge.
	Subscriptions []*SellerSubscription `json:"subscriptions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SubscriptionsOrErr returns the Subscriptions value or an error if the edge
// was not loaded in eager-loading.
func (e SubscriptionTierEdges) SubscriptionsOrErr() ([]*SellerSubscription, error) {
	if e.loadedTypes[0] {
		return e.Subscriptions, nil
	}
	return nil, &NotLoadedError{edge: "subscriptions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SubscriptionTier) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case subscriptiontier.FieldFeatures:
			values[i] = new([]byte)
		case subscriptiontier.FieldPrice:
			values[i] = new(sql.NullFloat64)
		case subscriptiontier.FieldMaxProducts, subscriptiontier.FieldMaxContactMethods, subscriptiontier.FieldMaxBanners:
			values[i] = new(sql.NullInt64)
		case subscriptiontier.FieldName:
			values[i] = new(sql.NullString)
		case subscriptiontier.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case subscriptiontier.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SubscriptionTier fields.
func (_m *SubscriptionTier) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case subscriptiontier.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case subscriptiontier.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case subscriptiontier.FieldPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = value.Float64
			}
		case subscriptiontier.FieldMaxProducts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_products", values[i])
			} else if value.Valid {
				_m.MaxProducts = int(value.Int64)
			}
		case subscriptiontier.FieldMaxContactMethods:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_contact_methods", values[i])
			} else if value.Valid {
				_m.MaxContactMethods = int(value.Int64)
			}
		case subscriptiontier.FieldMaxBanners:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_banners", values[i])
			} else if value.Valid {
				_m.MaxBanners = int(value.Int64)
			}
		case subscriptiontier.FieldFeatures:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field features", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Features); err != nil {
					return fmt.Errorf("unmarshal field features: %w", err)
				}
			}
		case subscriptiontier.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SubscriptionTier.
// This includes values selected through modifiers, order, etc.
func (_m *SubscriptionTier) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubscriptions queries the "subscriptions" edge of the SubscriptionTier entity.
func (_m *SubscriptionTier) QuerySubscriptions() *SellerSubscriptionQuery {
	return NewSubscriptionTierClient(_m.config).QuerySubscriptions(_m)
}

// Update returns a builder for updating this SubscriptionTier.
// Note that you need to call SubscriptionTier.Unwrap() before calling this method if this SubscriptionTier
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SubscriptionTier) Update() *SubscriptionTierUpdateOne {
	return NewSubscriptionTierClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SubscriptionTier entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SubscriptionTier) Unwrap() *SubscriptionTier {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SubscriptionTier is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SubscriptionTier) String() string {
	var builder strings.Builder
	builder.WriteString("SubscriptionTier(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("price=")
	builder.WriteString(fmt.Sprintf("%v", _m.Price))
	builder.WriteString(", ")
	builder.WriteString("max_products=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxProducts))
	builder.WriteString(", ")
	builder.WriteString("max_contact_methods=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxContactMethods))
	builder.WriteString(", ")
	builder.WriteString("max_banners=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxBanners))
	builder.WriteString(", ")
	builder.WriteString("features=")
	builder.WriteString(fmt.Sprintf("%v", _m.Features))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SubscriptionTiers is a parsable slice of SubscriptionTier.
type SubscriptionTiers []*SubscriptionTier
