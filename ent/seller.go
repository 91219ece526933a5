// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fiber-ent-market-pg/ent/seller"
	"fiber-ent-market-pg/ent/user"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Seller is the model entity for the Seller schema.
type Seller struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Rating holds the value of the "rating" field.
	Rating float64 `json:"rating,omitempty"`
	// Image holds the value of the "image" field.
	Image string `json:"image,omitempty"`
	// ContactPhone holds the value of the "contact_phone" field.
	ContactPhone string `json:"contact_phone,omitempty"`
	// ContactEmail holds the value of the "contact_email" field.
	ContactEmail string `json:"contact_email,omitempty"`
	// TelegramUsername holds the value of the "telegram_username" field.
	TelegramUsername string `json:"telegram_username,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SellerQuery when eager-loading is set.
	Edges        SellerEdges `json:"edges"`
	user_seller  *uuid.UUID
	selectValues sql.SelectValues
}

// SellerEdges holds the relations/edges for other nodes in the graph.
type SellerEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Products holds the value of the products edge.
	Products []*Product `json:"products,omitempty"`
	// Banners holds the value of the banners edge.
	Banners []*Banner `json:"banners,omitempty"`
	// Subscriptions holds the value of the subscriptions edge.
	Subscriptions []*SellerSubscription `json:"subscriptions,omitempty"`
	// Favorites holds the value of the favorites edge.
	Favorites []*Favorite `json:"favorites,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SellerEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// ProductsOrErr returns the Products value or an error if the edge
// was not loaded in eager-loading.
func (e SellerEdges) ProductsOrErr() ([]*Product, error) {
	if e.loadedTypes[1] {
		return e.Products, nil
	}
	return nil, &NotLoadedError{edge: "products"}
}

// BannersOrErr returns the Banners value or an error if the edge
// was not loaded in eager-loading.
func (e SellerEdges) BannersOrErr() ([]*Banner, error) {
	if e.loadedTypes[2] {
		return e.Banners, nil
	}
	return nil, &NotLoadedError{edge: "banners"}
}

// SubscriptionsOrErr returns the Subscriptions value or an error if the edge
// was not loaded in eager-loading.
func (e SellerEdges) SubscriptionsOrErr() ([]*SellerSubscription, error) {
	if e.loadedTypes[3] {
		return e.Subscriptions, nil
	}
	return nil, &NotLoadedError{edge: "subscriptions"}
}

// FavoritesOrErr returns the Favorites value or an error if the edge
// was not loaded in eager-loading.
func (e SellerEdges) FavoritesOrErr() ([]*Favorite, error) {
	if e.loadedTypes[4] {
		return e.Favorites, nil
	}
	return nil, &NotLoadedError{edge: "favorites"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Seller) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case seller.FieldRating:
			values[i] = new(sql.NullFloat64)
		case seller.FieldName, seller.FieldDescription, seller.FieldImage, seller.FieldContactPhone, seller.FieldContactEmail, seller.FieldTelegramUsername:
			values[i] = new(sql.NullString)
		case seller.FieldCreatedAt, seller.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case seller.FieldID:
			values[i] = new(uuid.UUID)
		case seller.ForeignKeys[0]: // user_seller
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Seller fields.
func (_m *Seller) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case seller.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case seller.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case seller.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case seller.FieldRating:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rating", values[i])
			} else if value.Valid {
				_m.Rating = value.Float64
			}
		case seller.FieldImage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image", values[i])
			} else if value.Valid {
				_m.Image = value.String
			}
		case seller.FieldContactPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_phone", values[i])
			} else if value.Valid {
				_m.ContactPhone = value.String
			}
		case seller.FieldContactEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_email", values[i])
			} else if value.Valid {
				_m.ContactEmail = value.String
			}
		case seller.FieldTelegramUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field telegram_username", values[i])
			} else if value.Valid {
				_m.TelegramUsername = value.String
			}
		case seller.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case seller.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case seller.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field user_seller", values[i])
			} else if value.Valid {
				_m.user_seller = new(uuid.UUID)
				*_m.user_seller = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Seller.
// This includes values selected through modifiers, order, etc.
func (_m *Seller) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Seller entity.
func (_m *Seller) QueryUser() *UserQuery {
	return NewSellerClient(_m.config).QueryUser(_m)
}

// QueryProducts queries the "products" edge of the Seller entity.
func (_m *Seller) QueryProducts() *ProductQuery {
	return NewSellerClient(_m.config).QueryProducts(_m)
}

// QueryBanners queries the "banners" edge of the Seller entity.
func (_m *Seller) QueryBanners() *BannerQuery {
	return NewSellerClient(_m.config).QueryBanners(_m)
}

// QuerySubscriptions queries the "subscriptions" edge of the Seller entity.
func (_m *Seller) QuerySubscriptions() *SellerSubscriptionQuery {
	return NewSellerClient(_m.config).QuerySubscriptions(_m)
}

// QueryFavorites queries the "favorites" edge of the Seller entity.
func (_m *Seller) QueryFavorites() *FavoriteQuery {
	return NewSellerClient(_m.config).QueryFavorites(_m)
}

// Update returns a builder for updating this Seller.
// Note that you need to call Seller.Unwrap() before calling this method if this Seller
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Seller) Update() *SellerUpdateOne {
	return NewSellerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Seller entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Seller) Unwrap() *Seller {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Seller is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Seller) String() string {
	var builder strings.Builder
	builder.WriteString("Seller(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("rating=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rating))
	builder.WriteString(", ")
	builder.WriteString("image=")
	builder.WriteString(_m.Image)
	builder.WriteString(", ")
	builder.WriteString("contact_phone=")
	builder.WriteString(_m.ContactPhone)
	builder.WriteString(", ")
	builder.WriteString("contact_email=")
	builder.WriteString(_m.ContactEmail)
	builder.WriteString(", ")
	builder.WriteString("telegram_username=")
	builder.WriteString(_m.TelegramUsername)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Sellers is a parsable slice of Seller.
type Sellers []*Seller
