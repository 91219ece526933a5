package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// UserAddress holds the schema definition for a delivery address.
type UserAddress struct{ ent.Schema }

// Fields of the UserAddress.
func (UserAddress) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("label").Default("home"),
		field.String("city").NotEmpty(),
		field.String("street").NotEmpty(),
		field.String("building").Optional(),
		field.String("apartment").Optional(),
		field.String("postal_code").Optional(),
		field.Bool("is_default").Default(false),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the UserAddress.
func (UserAddress) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).Ref("addresses").Unique().Required(),
	}
}
