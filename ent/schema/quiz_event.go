package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records one completed quiz pass, including retry passes.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("theme").
			Default(""),
		field.String("language").
			Default(""),
		field.String("mode").
			Comment("Pass mode: initial, smart-retry, full-reset"),
		field.Int("total"),
		field.Int("score"),
		field.Strings("mistake_ids").
			Optional(),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("theme"),
		index.Fields("mode"),
	}
}
