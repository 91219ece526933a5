// Code generated by ent, DO NOT EDIT.

package subscriptiontier

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the subscriptiontier type in the database.
	Label = "subscription_tier"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldMaxProducts holds the string denoting the max_products field in the database.
	FieldMaxProducts = "max_products"
	// FieldMaxContactMethods holds the string denoting the max_contact_methods field in the database.
	FieldMaxContactMethods = "max_contact_methods"
	// FieldMaxBanners holds the string denoting the max_banners field in the database.
	FieldMaxBanners = "max_banners"
	// FieldFeatures holds the string denoting the features field in the database.
	FieldFeatures = "features"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSubscriptions holds the string denoting the subscriptions edge name in mutations.
	EdgeSubscriptions = "subscriptions"
	// Table holds the table name of the subscriptiontier in the database.
	Table = "subscription_tiers"
	// SubscriptionsTable is the table that holds the subscriptions relation/edge.
	SubscriptionsTable = "seller_subscriptions"
	// SubscriptionsInverseTable is the table name for the SellerSubscription entity.
	// It exists in this package in order to avoid circular dependency with the "sellersubscription" package.
	SubscriptionsInverseTable = "seller_subscriptions"
	// SubscriptionsColumn is the table column denoting the subscriptions relation/edge.
	SubscriptionsColumn = "subscription_tier_subscriptions"
)

// Columns holds all SQL columns for subscriptiontier fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldPrice,
	FieldMaxProducts,
	FieldMaxContactMethods,
	FieldMaxBanners,
	FieldFeatures,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// PriceValidator is a validator for the "price" field. It is called by the builders before save.
	PriceValidator func(float64) error
	// MaxProductsValidator is a validator for the "max_products" field. It is called by the builders before save.
	MaxProductsValidator func(int) error
	// MaxContactMethodsValidator is a validator for the "max_contact_methods" field. It is called by the builders before save.
	MaxContactMethodsValidator func(int) error
	// MaxBannersValidator is a validator for the "max_banners" field. It is called by the builders before save.
	MaxBannersValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the SubscriptionTier queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// ByMaxProducts orders the results by the max_products field.
func ByMaxProducts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxProducts, opts...).ToFunc()
}

// ByMaxContactMethods orders the results by the max_contact_methods field.
func ByMaxContactMethods(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxContactMethods, opts...).ToFunc()
}

// ByMaxBanners orders the results by the max_banners field.
func ByMaxBanners(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxBanners, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySubscriptionsCount orders the results by subscriptions count.
func BySubscriptionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSubscriptionsStep(), opts...)
	}
}

// BySubscriptions orders the results by subscriptions terms.
func BySubscriptions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubscriptionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSubscriptionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubscriptionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SubscriptionsTable, SubscriptionsColumn),
	)
}
