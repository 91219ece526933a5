package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Banner holds the schema definition for a promotional banner. A banner is
// visible while is_active and now is inside [starts_at, ends_at].
type Banner struct{ ent.Schema }

// Fields of the Banner.
func (Banner) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("image_url").NotEmpty(),
		field.String("link_url").Optional(),
		field.String("placement").Default("home"),
		field.Time("starts_at").SchemaType(map[string]string{
			dialect.Postgres: "timestamptz",
		}),
		field.Time("ends_at").SchemaType(map[string]string{
			dialect.Postgres: "timestamptz",
		}),
		field.Bool("is_active").Default(true),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Edges of the Banner.
func (Banner) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("seller", Seller.Type).Ref("banners").Unique().Required(),
	}
}

// Indexes of the Banner.
func (Banner) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("placement", "is_active"),
	}
}
