package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MissionEvent records a daily mission completing, for streak analytics
// and the stats command.
type MissionEvent struct {
	ent.Schema
}

func (MissionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MissionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("mission_id").NotEmpty(),
		field.String("label").NotEmpty(),
		field.String("category").
			Comment("Mission category: vocabulary, quiz, conversation"),
		field.Int("target"),
		field.Int("xp_awarded").
			Default(0),
	}
}

func (MissionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("mission_id"),
		index.Fields("category"),
	}
}
