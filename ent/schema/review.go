package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Review holds the schema definition for the Review entity.
type Review struct{ ent.Schema }

// Fields of the Review.
func (Review) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.Int("rating").Min(1).Max(5),
		field.String("comment").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Edges of the Review.
func (Review) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).Ref("reviews").Unique().Required(),
		edge.From("product", Product.Type).Ref("reviews").Unique().Required(),
	}
}

// Indexes of the Review. One review per user and product.
func (Review) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("user", "product").Unique(),
	}
}
