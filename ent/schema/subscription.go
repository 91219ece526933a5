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

// SubscriptionTier describes a paid plan for sellers with per-resource caps.
type SubscriptionTier struct{ ent.Schema }

// Fields of the SubscriptionTier.
func (SubscriptionTier) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("name").NotEmpty().Unique(),
		field.Float("price").Min(0),
		field.Int("max_products").Min(0),
		field.Int("max_contact_methods").Min(0),
		field.Int("max_banners").Min(0),
		field.JSON("features", map[string]interface{}{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Edges of the SubscriptionTier.
func (SubscriptionTier) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("subscriptions", SellerSubscription.Type),
	}
}

// SellerSubscription is a seller's purchase of a tier for a time window.
type SellerSubscription struct{ ent.Schema }

// Fields of the SellerSubscription.
func (SellerSubscription) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.Time("starts_at").SchemaType(map[string]string{
			dialect.Postgres: "timestamptz",
		}),
		field.Time("ends_at").SchemaType(map[string]string{
			dialect.Postgres: "timestamptz",
		}),
		field.Bool("is_active").Default(true),
		field.Enum("payment_status").Values("pending", "paid", "failed").Default("pending"),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Edges of the SellerSubscription.
func (SellerSubscription) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("seller", Seller.Type).Ref("subscriptions").Unique().Required(),
		edge.From("tier", SubscriptionTier.Type).Ref("subscriptions").Unique().Required(),
	}
}

// Indexes of the SellerSubscription.
func (SellerSubscription) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_active"),
	}
}
