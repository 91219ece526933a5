package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// TelegramAccount links a local account to a Telegram numeric id. One row per
// Telegram account; the numeric id is the durable external identity key.
type TelegramAccount struct{ ent.Schema }

// Fields of the TelegramAccount.
func (TelegramAccount) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.Int64("telegram_id").Unique(),
		field.String("username").Optional(),
		field.String("first_name").NotEmpty(),
		field.String("last_name").Optional(),
		field.String("photo_url").Optional(),
		field.String("language_code").Optional(),
		field.Time("last_login_at").Optional().SchemaType(map[string]string{
			dialect.Postgres: "timestamptz",
		}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Edges of the TelegramAccount.
func (TelegramAccount) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).Ref("telegram_account").Unique().Required(),
	}
}
