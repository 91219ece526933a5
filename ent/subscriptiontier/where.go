// Code generated by ent, DO NOT EDIT.

package subscriptiontier

import (
	"fiber-ent-market-pg/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldEQ(FieldName, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v float64) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldEQ(FieldPrice, v))
}

// MaxProducts applies equality check predicate on the "max_products" field. It's identical to MaxProductsEQ.
func MaxProducts(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldEQ(FieldMaxProducts, v))
}

// MaxContactMethods applies equality check predicate on the "max_contact_methods" field. It's identical to MaxContactMethodsEQ.
func MaxContactMethods(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldEQ(FieldMaxContactMethods, v))
}

// MaxBanners applies equality check predicate on the "max_banners" field. It's identical to MaxBannersEQ.
func MaxBanners(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldEQ(FieldMaxBanners, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldContainsFold(FieldName, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v float64) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v float64) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...float64) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...float64) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v float64) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v float64) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v float64) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v float64) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldLTE(FieldPrice, v))
}

// MaxProductsEQ applies the EQ predicate on the "max_products" field.
func MaxProductsEQ(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldEQ(FieldMaxProducts, v))
}

// MaxProductsNEQ applies the NEQ predicate on the "max_products" field.
func MaxProductsNEQ(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldNEQ(FieldMaxProducts, v))
}

// MaxProductsIn applies the In predicate on the "max_products" field.
func MaxProductsIn(vs ...int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldIn(FieldMaxProducts, vs...))
}

// MaxProductsNotIn applies the NotIn predicate on the "max_products" field.
func MaxProductsNotIn(vs ...int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldNotIn(FieldMaxProducts, vs...))
}

// MaxProductsGT applies the GT predicate on the "max_products" field.
func MaxProductsGT(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldGT(FieldMaxProducts, v))
}

// MaxProductsGTE applies the GTE predicate on the "max_products" field.
func MaxProductsGTE(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldGTE(FieldMaxProducts, v))
}

// MaxProductsLT applies the LT predicate on the "max_products" field.
func MaxProductsLT(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldLT(FieldMaxProducts, v))
}

// MaxProductsLTE applies the LTE predicate on the "max_products" field.
func MaxProductsLTE(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldLTE(FieldMaxProducts, v))
}

// MaxContactMethodsEQ applies the EQ predicate on the "max_contact_methods" field.
func MaxContactMethodsEQ(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldEQ(FieldMaxContactMethods, v))
}

// MaxContactMethodsNEQ applies the NEQ predicate on the "max_contact_methods" field.
func MaxContactMethodsNEQ(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldNEQ(FieldMaxContactMethods, v))
}

// MaxContactMethodsIn applies the In predicate on the "max_contact_methods" field.
func MaxContactMethodsIn(vs ...int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldIn(FieldMaxContactMethods, vs...))
}

// MaxContactMethodsNotIn applies the NotIn predicate on the "max_contact_methods" field.
func MaxContactMethodsNotIn(vs ...int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldNotIn(FieldMaxContactMethods, vs...))
}

// MaxContactMethodsGT applies the GT predicate on the "max_contact_methods" field.
func MaxContactMethodsGT(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldGT(FieldMaxContactMethods, v))
}

// MaxContactMethodsGTE applies the GTE predicate on the "max_contact_methods" field.
func MaxContactMethodsGTE(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldGTE(FieldMaxContactMethods, v))
}

// MaxContactMethodsLT applies the LT predicate on the "max_contact_methods" field.
func MaxContactMethodsLT(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldLT(FieldMaxContactMethods, v))
}

// MaxContactMethodsLTE applies the LTE predicate on the "max_contact_methods" field.
func MaxContactMethodsLTE(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldLTE(FieldMaxContactMethods, v))
}

// MaxBannersEQ applies the EQ predicate on the "max_banners" field.
func MaxBannersEQ(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldEQ(FieldMaxBanners, v))
}

// MaxBannersNEQ applies the NEQ predicate on the "max_banners" field.
func MaxBannersNEQ(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldNEQ(FieldMaxBanners, v))
}

// MaxBannersIn applies the In predicate on the "max_banners" field.
func MaxBannersIn(vs ...int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldIn(FieldMaxBanners, vs...))
}

// MaxBannersNotIn applies the NotIn predicate on the "max_banners" field.
func MaxBannersNotIn(vs ...int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldNotIn(FieldMaxBanners, vs...))
}

// MaxBannersGT applies the GT predicate on the "max_banners" field.
func MaxBannersGT(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldGT(FieldMaxBanners, v))
}

// MaxBannersGTE applies the GTE predicate on the "max_banners" field.
func MaxBannersGTE(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldGTE(FieldMaxBanners, v))
}

// MaxBannersLT applies the LT predicate on the "max_banners" field.
func MaxBannersLT(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldLT(FieldMaxBanners, v))
}

// MaxBannersLTE applies the LTE predicate on the "max_banners" field.
func MaxBannersLTE(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldLTE(FieldMaxBanners, v))
}

// FeaturesIsNil applies the IsNil predicate on the "features" field.
func FeaturesIsNil() predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldIsNull(FieldFeatures))
}

// FeaturesNotNil applies the NotNil predicate on the "features" field.
func FeaturesNotNil() predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldNotNull(FieldFeatures))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSubscriptions applies the HasEdge predicate on the "subscriptions" edge.
func HasSubscriptions() predicate.SubscriptionTier {
	return predicate.SubscriptionTier(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SubscriptionsTable, SubscriptionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubscriptionsWith applies the HasEdge predicate on the "subscriptions" edge with a given conditions (other predicates).
func HasSubscriptionsWith(preds ...predicate.SellerSubscription) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(func(s *sql.Selector) {
		step := newSubscriptionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SubscriptionTier) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SubscriptionTier) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SubscriptionTier) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.NotPredicates(p))
}
