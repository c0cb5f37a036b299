package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RoundEvent records a finished word-chain round.
type RoundEvent struct {
	ent.Schema
}

func (RoundEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RoundEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("round_id").NotEmpty(),
		field.Int("turns").
			Comment("Total turns played, both players"),
		field.Int("score"),
		field.String("outcome").
			Comment("Why the round ended: chain, duplicate, rejected, timeout, concession, connection"),
		field.Int("xp_awarded").
			Default(0),
	}
}

func (RoundEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("round_id"),
		index.Fields("outcome"),
	}
}
