package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RewardEvent records XP awarded for a submitted quiz attempt.
// At most one reward event exists per attempt.
type RewardEvent struct {
	ent.Schema
}

func (RewardEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RewardEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			Unique().
			NotEmpty().
			Comment("Quiz attempt that earned the reward"),
		field.String("lesson_id").NotEmpty(),
		field.String("tier").
			Comment("Reward tier: mastery or attempt"),
		field.Int("points").
			Comment("XP awarded"),
		field.Int("score"),
		field.Int("max_score"),
	}
}

func (RewardEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id"),
	}
}
