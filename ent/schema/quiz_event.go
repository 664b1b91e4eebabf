package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records a submitted quiz attempt and its grade.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").NotEmpty(),
		field.String("lesson_id").NotEmpty(),
		field.Int("question_count"),
		field.Int("score"),
		field.Bool("perfect"),
		field.String("language").
			Default("en").
			Comment("Language the quiz was generated in"),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("lesson_id"),
	}
}
