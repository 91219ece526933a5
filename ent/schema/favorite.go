package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Favorite marks a product or a seller as a favorite of a user. Exactly one
// of the product/seller edges is set; handlers enforce that.
type Favorite struct{ ent.Schema }

// Fields of the Favorite.
func (Favorite) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Edges of the Favorite.
func (Favorite) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).Ref("favorites").Unique().Required(),
		edge.From("product", Product.Type).Ref("favorites").Unique(),
		edge.From("seller", Seller.Type).Ref("favorites").Unique(),
	}
}

// Indexes of the Favorite.
func (Favorite) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("user", "product").Unique(),
		index.Edges("user", "seller").Unique(),
	}
}
