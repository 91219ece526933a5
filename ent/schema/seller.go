package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Seller holds the schema definition for the Seller entity.
type Seller struct{ ent.Schema }

// Fields of the Seller.
func (Seller) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("name").NotEmpty(),
		field.String("description").Optional(),
		// Cached mean over reviews of the seller's products; recomputed on
		// review creation.
		field.Float("rating").Default(0),
		field.String("image").Optional(),
		field.String("contact_phone").Optional(),
		field.String("contact_email").Optional(),
		field.String("telegram_username").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the Seller.
func (Seller) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).Ref("seller").Unique().Required(),
		edge.To("products", Product.Type),
		edge.To("banners", Banner.Type),
		edge.To("subscriptions", SellerSubscription.Type),
		edge.To("favorites", Favorite.Type),
	}
}
