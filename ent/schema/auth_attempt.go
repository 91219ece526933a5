package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// AuthAttempt is the login attempt ledger used for per-IP lockout.
type AuthAttempt struct{ ent.Schema }

// Fields of the AuthAttempt.
func (AuthAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("ip_address").NotEmpty(),
		field.String("identifier").Optional(),
		field.Bool("success"),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Indexes of the AuthAttempt.
func (AuthAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ip_address", "created_at"),
	}
}
