package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatSession is a saved roleplay conversation. One row per
// (theme, language, user role, partner role) combination.
type ChatSession struct {
	ent.Schema
}

func (ChatSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			NotEmpty().
			Comment("Client-generated UUID"),
		field.Time("timestamp").
			Default(time.Now),
		field.String("theme").NotEmpty(),
		field.String("language").NotEmpty(),
		field.String("user_role").NotEmpty(),
		field.String("partner_role").NotEmpty(),
		field.Text("context_description").
			Default(""),
		field.JSON("messages", json.RawMessage{}),
	}
}

func (ChatSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("theme", "language", "user_role", "partner_role"),
	}
}
