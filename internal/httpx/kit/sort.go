package kit

import (
	"strings"

	"fiber-ent-market-pg/ent"
	"fiber-ent-market-pg/ent/product"
	"fiber-ent-market-pg/ent/seller"

	"github.com/samber/lo"
)

type productSortApplier struct {
	Asc  func(*ent.ProductQuery) *ent.ProductQuery
	Desc func(*ent.ProductQuery) *ent.ProductQuery
}

// ProductSortWhitelist defines allowed sort fields and their query modifiers for products
var ProductSortWhitelist = map[string]productSortApplier{
	"created_at": {Asc: func(q *ent.ProductQuery) *ent.ProductQuery { return q.Order(ent.Asc(product.FieldCreatedAt)) }, Desc: func(q *ent.ProductQuery) *ent.ProductQuery { return q.Order(ent.Desc(product.FieldCreatedAt)) }},
	"price":      {Asc: func(q *ent.ProductQuery) *ent.ProductQuery { return q.Order(ent.Asc(product.FieldPrice)) }, Desc: func(q *ent.ProductQuery) *ent.ProductQuery { return q.Order(ent.Desc(product.FieldPrice)) }},
	"name":       {Asc: func(q *ent.ProductQuery) *ent.ProductQuery { return q.Order(ent.Asc(product.FieldName)) }, Desc: func(q *ent.ProductQuery) *ent.ProductQuery { return q.Order(ent.Desc(product.FieldName)) }},
	"id":         {Asc: func(q *ent.ProductQuery) *ent.ProductQuery { return q.Order(ent.Asc(product.FieldID)) }, Desc: func(q *ent.ProductQuery) *ent.ProductQuery { return q.Order(ent.Desc(product.FieldID)) }},
}

type sellerSortApplier struct {
	Asc  func(*ent.SellerQuery) *ent.SellerQuery
	Desc func(*ent.SellerQuery) *ent.SellerQuery
}

// SellerSortWhitelist defines allowed sort fields for sellers
var SellerSortWhitelist = map[string]sellerSortApplier{
	"created_at": {Asc: func(q *ent.SellerQuery) *ent.SellerQuery { return q.Order(ent.Asc(seller.FieldCreatedAt)) }, Desc: func(q *ent.SellerQuery) *ent.SellerQuery { return q.Order(ent.Desc(seller.FieldCreatedAt)) }},
	"rating":     {Asc: func(q *ent.SellerQuery) *ent.SellerQuery { return q.Order(ent.Asc(seller.FieldRating)) }, Desc: func(q *ent.SellerQuery) *ent.SellerQuery { return q.Order(ent.Desc(seller.FieldRating)) }},
	"name":       {Asc: func(q *ent.SellerQuery) *ent.SellerQuery { return q.Order(ent.Asc(seller.FieldName)) }, Desc: func(q *ent.SellerQuery) *ent.SellerQuery { return q.Order(ent.Desc(seller.FieldName)) }},
}

func parseSortSpec(spec string) (field string, asc bool, err error) {
	if spec == "" {
		return "", true, nil
	}
	parts := strings.Split(spec, ":")
	field = strings.TrimSpace(parts[0])
	dir := lo.TernaryF(len(parts) > 1,
		func() string { return strings.ToLower(strings.TrimSpace(parts[1])) },
		func() string { return "asc" },
	)
	switch dir {
	case "asc":
		asc = true
	case "desc":
		asc = false
	default:
		return "", true, BadRequest("invalid sort direction", dir)
	}
	return field, asc, nil
}

// ApplyProductSort applies a validated sort spec to an ent ProductQuery
func ApplyProductSort(q *ent.ProductQuery, s string) (*ent.ProductQuery, error) {
	field, asc, err := parseSortSpec(s)
	if err != nil {
		return nil, err
	}
	if field == "" {
		return q, nil
	}
	ap, ok := ProductSortWhitelist[field]
	if !ok {
		return nil, BadRequest("invalid sort field", field)
	}
	if asc {
		return ap.Asc(q), nil
	}
	return ap.Desc(q), nil
}

// ApplySellerSort applies a validated sort spec to an ent SellerQuery
func ApplySellerSort(q *ent.SellerQuery, s string) (*ent.SellerQuery, error) {
	field, asc, err := parseSortSpec(s)
	if err != nil {
		return nil, err
	}
	if field == "" {
		return q, nil
	}
	ap, ok := SellerSortWhitelist[field]
	if !ok {
		return nil, BadRequest("invalid sort field", field)
	}
	if asc {
		return ap.Asc(q), nil
	}
	return ap.Desc(q), nil
}
