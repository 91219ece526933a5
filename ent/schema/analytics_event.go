package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// AnalyticsEvent is a raw tracking event (page view, product view, contact
// click). The admin analytics endpoints aggregate over this table.
type AnalyticsEvent struct{ ent.Schema }

// Fields of the AnalyticsEvent.
func (AnalyticsEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("event_type").NotEmpty(),
		field.UUID("user_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("seller_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("product_id", uuid.UUID{}).Optional().Nillable(),
		field.JSON("metadata", map[string]interface{}{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Indexes of the AnalyticsEvent.
func (AnalyticsEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_type", "created_at"),
		index.Fields("seller_id"),
	}
}
