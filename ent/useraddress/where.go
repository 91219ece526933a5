// Code generated by ent, DO NOT EDIT.

package useraddress

import (
	"fiber-ent-market-pg/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldLTE(FieldID, id))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldEQ(FieldCity, v))
}

// Street applies equality check predicate on the "street" field. It's identical to StreetEQ.
func Street(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldEQ(FieldStreet, v))
}

// Building applies equality check predicate on the "building" field. It's identical to BuildingEQ.
func Building(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldEQ(FieldBuilding, v))
}

// Apartment applies equality check predicate on the "apartment" field. It's identical to ApartmentEQ.
func Apartment(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldEQ(FieldApartment, v))
}

// PostalCode applies equality check predicate on the "postal_code" field. It's identical to PostalCodeEQ.
func PostalCode(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldEQ(FieldPostalCode, v))
}

// IsDefault applies equality check predicate on the "is_default" field. It's identical to IsDefaultEQ.
func IsDefault(v bool) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldEQ(FieldIsDefault, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldEQ(FieldUpdatedAt, v))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldNotIn(FieldLabel, vs...))
}

// LabelGT applies the GT predicate on the "label" field.
func LabelGT(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldGT(FieldLabel, v))
}

// LabelGTE applies the GTE predicate on the "label" field.
func LabelGTE(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldGTE(FieldLabel, v))
}

// LabelLT applies the LT predicate on the "label" field.
func LabelLT(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldLT(FieldLabel, v))
}

// LabelLTE applies the LTE predicate on the "label" field.
func LabelLTE(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldLTE(FieldLabel, v))
}

// LabelContains applies the Contains predicate on the "label" field.
func LabelContains(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldContains(FieldLabel, v))
}

// LabelHasPrefix applies the HasPrefix predicate on the "label" field.
func LabelHasPrefix(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldHasPrefix(FieldLabel, v))
}

// LabelHasSuffix applies the HasSuffix predicate on the "label" field.
func LabelHasSuffix(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldHasSuffix(FieldLabel, v))
}

// LabelEqualFold applies the EqualFold predicate on the "label" field.
func LabelEqualFold(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldEqualFold(FieldLabel, v))
}

// LabelContainsFold applies the ContainsFold predicate on the "label" field.
func LabelContainsFold(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldContainsFold(FieldLabel, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldHasSuffix(FieldCity, v))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldContainsFold(FieldCity, v))
}

// StreetEQ applies the EQ predicate on the "street" field.
func StreetEQ(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldEQ(FieldStreet, v))
}

// StreetNEQ applies the NEQ predicate on the "street" field.
func StreetNEQ(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldNEQ(FieldStreet, v))
}

// StreetIn applies the In predicate on the "street" field.
func StreetIn(vs ...string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldIn(FieldStreet, vs...))
}

// StreetNotIn applies the NotIn predicate on the "street" field.
func StreetNotIn(vs ...string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldNotIn(FieldStreet, vs...))
}

// StreetGT applies the GT predicate on the "street" field.
func StreetGT(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldGT(FieldStreet, v))
}

// StreetGTE applies the GTE predicate on the "street" field.
func StreetGTE(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldGTE(FieldStreet, v))
}

// StreetLT applies the LT predicate on the "street" field.
func StreetLT(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldLT(FieldStreet, v))
}

// StreetLTE applies the LTE predicate on the "street" field.
func StreetLTE(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldLTE(FieldStreet, v))
}

// StreetContains applies the Contains predicate on the "street" field.
func StreetContains(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldContains(FieldStreet, v))
}

// StreetHasPrefix applies the HasPrefix predicate on the "street" field.
func StreetHasPrefix(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldHasPrefix(FieldStreet, v))
}

// StreetHasSuffix applies the HasSuffix predicate on the "street" field.
func StreetHasSuffix(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldHasSuffix(FieldStreet, v))
}

// StreetEqualFold applies the EqualFold predicate on the "street" field.
func StreetEqualFold(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldEqualFold(FieldStreet, v))
}

// StreetContainsFold applies the ContainsFold predicate on the "street" field.
func StreetContainsFold(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldContainsFold(FieldStreet, v))
}

// BuildingEQ applies the EQ predicate on the "building" field.
func BuildingEQ(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldEQ(FieldBuilding, v))
}

// BuildingNEQ applies the NEQ predicate on the "building" field.
func BuildingNEQ(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldNEQ(FieldBuilding, v))
}

// BuildingIn applies the In predicate on the "building" field.
func BuildingIn(vs ...string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldIn(FieldBuilding, vs...))
}

// BuildingNotIn applies the NotIn predicate on the "building" field.
func BuildingNotIn(vs ...string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldNotIn(FieldBuilding, vs...))
}

// BuildingGT applies the GT predicate on the "building" field.
func BuildingGT(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldGT(FieldBuilding, v))
}

// BuildingGTE applies the GTE predicate on the "building" field.
func BuildingGTE(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldGTE(FieldBuilding, v))
}

// BuildingLT applies the LT predicate on the "building" field.
func BuildingLT(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldLT(FieldBuilding, v))
}

// BuildingLTE applies the LTE predicate on the "building" field.
func BuildingLTE(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldLTE(FieldBuilding, v))
}

// BuildingContains applies the Contains predicate on the "building" field.
func BuildingContains(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldContains(FieldBuilding, v))
}

// BuildingHasPrefix applies the HasPrefix predicate on the "building" field.
func BuildingHasPrefix(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldHasPrefix(FieldBuilding, v))
}

// BuildingHasSuffix applies the HasSuffix predicate on the "building" field.
func BuildingHasSuffix(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldHasSuffix(FieldBuilding, v))
}

// BuildingIsNil applies the IsNil predicate on the "building" field.
func BuildingIsNil() predicate.UserAddress {
	return predicate.UserAddress(sql.FieldIsNull(FieldBuilding))
}

// BuildingNotNil applies the NotNil predicate on the "building" field.
func BuildingNotNil() predicate.UserAddress {
	return predicate.UserAddress(sql.FieldNotNull(FieldBuilding))
}

// BuildingEqualFold applies the EqualFold predicate on the "building" field.
func BuildingEqualFold(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldEqualFold(FieldBuilding, v))
}

// BuildingContainsFold applies the ContainsFold predicate on the "building" field.
func BuildingContainsFold(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldContainsFold(FieldBuilding, v))
}

// ApartmentEQ applies the EQ predicate on the "apartment" field.
func ApartmentEQ(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldEQ(FieldApartment, v))
}

// ApartmentNEQ applies the NEQ predicate on the "apartment" field.
func ApartmentNEQ(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldNEQ(FieldApartment, v))
}

// ApartmentIn applies the In predicate on the "apartment" field.
func ApartmentIn(vs ...string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldIn(FieldApartment, vs...))
}

// ApartmentNotIn applies the NotIn predicate on the "apartment" field.
func ApartmentNotIn(vs ...string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldNotIn(FieldApartment, vs...))
}

// ApartmentGT applies the GT predicate on the "apartment" field.
func ApartmentGT(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldGT(FieldApartment, v))
}

// ApartmentGTE applies the GTE predicate on the "apartment" field.
func ApartmentGTE(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldGTE(FieldApartment, v))
}

// ApartmentLT applies the LT predicate on the "apartment" field.
func ApartmentLT(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldLT(FieldApartment, v))
}

// ApartmentLTE applies the LTE predicate on the "apartment" field.
func ApartmentLTE(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldLTE(FieldApartment, v))
}

// ApartmentContains applies the Contains predicate on the "apartment" field.
func ApartmentContains(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldContains(FieldApartment, v))
}

// ApartmentHasPrefix applies the HasPrefix predicate on the "apartment" field.
func ApartmentHasPrefix(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldHasPrefix(FieldApartment, v))
}

// ApartmentHasSuffix applies the HasSuffix predicate on the "apartment" field.
func ApartmentHasSuffix(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldHasSuffix(FieldApartment, v))
}

// ApartmentIsNil applies the IsNil predicate on the "apartment" field.
func ApartmentIsNil() predicate.UserAddress {
	return predicate.UserAddress(sql.FieldIsNull(FieldApartment))
}

// ApartmentNotNil applies the NotNil predicate on the "apartment" field.
func ApartmentNotNil() predicate.UserAddress {
	return predicate.UserAddress(sql.FieldNotNull(FieldApartment))
}

// ApartmentEqualFold applies the EqualFold predicate on the "apartment" field.
func ApartmentEqualFold(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldEqualFold(FieldApartment, v))
}

// ApartmentContainsFold applies the ContainsFold predicate on the "apartment" field.
func ApartmentContainsFold(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldContainsFold(FieldApartment, v))
}

// PostalCodeEQ applies the EQ predicate on the "postal_code" field.
func PostalCodeEQ(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldEQ(FieldPostalCode, v))
}

// PostalCodeNEQ applies the NEQ predicate on the "postal_code" field.
func PostalCodeNEQ(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldNEQ(FieldPostalCode, v))
}

// PostalCodeIn applies the In predicate on the "postal_code" field.
func PostalCodeIn(vs ...string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldIn(FieldPostalCode, vs...))
}

// PostalCodeNotIn applies the NotIn predicate on the "postal_code" field.
func PostalCodeNotIn(vs ...string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldNotIn(FieldPostalCode, vs...))
}

// PostalCodeGT applies the GT predicate on the "postal_code" field.
func PostalCodeGT(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldGT(FieldPostalCode, v))
}

// PostalCodeGTE applies the GTE predicate on the "postal_code" field.
func PostalCodeGTE(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldGTE(FieldPostalCode, v))
}

// PostalCodeLT applies the LT predicate on the "postal_code" field.
func PostalCodeLT(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldLT(FieldPostalCode, v))
}

// PostalCodeLTE applies the LTE predicate on the "postal_code" field.
func PostalCodeLTE(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldLTE(FieldPostalCode, v))
}

// PostalCodeContains applies the Contains predicate on the "postal_code" field.
func PostalCodeContains(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldContains(FieldPostalCode, v))
}

// PostalCodeHasPrefix applies the HasPrefix predicate on the "postal_code" field.
func PostalCodeHasPrefix(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldHasPrefix(FieldPostalCode, v))
}

// PostalCodeHasSuffix applies the HasSuffix predicate on the "postal_code" field.
func PostalCodeHasSuffix(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldHasSuffix(FieldPostalCode, v))
}

// PostalCodeIsNil applies the IsNil predicate on the "postal_code" field.
func PostalCodeIsNil() predicate.UserAddress {
	return predicate.UserAddress(sql.FieldIsNull(FieldPostalCode))
}

// PostalCodeNotNil applies the NotNil predicate on the "postal_code" field.
func PostalCodeNotNil() predicate.UserAddress {
	return predicate.UserAddress(sql.FieldNotNull(FieldPostalCode))
}

// PostalCodeEqualFold applies the EqualFold predicate on the "postal_code" field.
func PostalCodeEqualFold(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldEqualFold(FieldPostalCode, v))
}

// PostalCodeContainsFold applies the ContainsFold predicate on the "postal_code" field.
func PostalCodeContainsFold(v string) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldContainsFold(FieldPostalCode, v))
}

// IsDefaultEQ applies the EQ predicate on the "is_default" field.
func IsDefaultEQ(v bool) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldEQ(FieldIsDefault, v))
}

// IsDefaultNEQ applies the NEQ predicate on the "is_default" field.
func IsDefaultNEQ(v bool) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldNEQ(FieldIsDefault, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UserAddress {
	return predicate.UserAddress(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.UserAddress {
	return predicate.UserAddress(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.UserAddress {
	return predicate.UserAddress(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserAddress) predicate.UserAddress {
	return predicate.UserAddress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserAddress) predicate.UserAddress {
	return predicate.UserAddress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserAddress) predicate.UserAddress {
	return predicate.UserAddress(sql.NotPredicates(p))
}
