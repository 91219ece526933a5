// Package schema contains ent entity schema definitions for the marketplace:
// accounts and linked identities, sellers and their subscriptions, the product
// catalog, reviews, favorites, banners and the analytics event log.
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// User holds the schema definition for the User entity.
type User struct{ ent.Schema }

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("username").NotEmpty().Unique(),
		field.String("display_name").Optional(),
		field.String("email").Optional(),
		field.String("avatar_url").Optional(),
		field.String("bio").Optional(),
		field.Enum("type").Values("user", "admin").Default("user"),
		field.Bool("is_active").Default(true),
		field.Time("last_login_at").Optional().SchemaType(map[string]string{
			dialect.Postgres: "timestamptz",
		}),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("identities", Identity.Type),
		edge.To("telegram_account", TelegramAccount.Type).Unique(),
		edge.To("seller", Seller.Type).Unique(),
		edge.To("reviews", Review.Type),
		edge.To("favorites", Favorite.Type),
		edge.To("addresses", UserAddress.Type),
		edge.To("notifications", Notification.Type),
	}
}
