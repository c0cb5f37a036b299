package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HistoryItem is one saved learning context: the analyzed input, the
// generated content pack, and optionally the chat transcript.
type HistoryItem struct {
	ent.Schema
}

func (HistoryItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").
			Unique().
			NotEmpty().
			Comment("Client-generated UUID"),
		field.Time("timestamp").
			Default(time.Now),
		field.String("theme").NotEmpty(),
		field.String("language").NotEmpty(),
		field.String("difficulty").
			Default(""),
		field.Text("context_description").
			Default(""),
		field.Text("thumbnail").
			Optional().
			Comment("Base64 source image, dropped on storage pressure"),
		field.JSON("content", json.RawMessage{}).
			Comment("Vocabulary, quizzes and roles for this context"),
		field.JSON("chat", json.RawMessage{}).
			Optional(),
	}
}

func (HistoryItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("theme", "language"),
	}
}
