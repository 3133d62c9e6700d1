package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one answer given during a quiz session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("learner_id").
			Comment("Learner name, empty for guests"),
		field.String("syllabary").
			NotEmpty().
			Comment("hiragana or katakana"),
		field.String("row").
			NotEmpty().
			Comment("Row the character was drawn from"),
		field.String("glyph").
			NotEmpty().
			Comment("The character shown"),
		field.String("expected").
			NotEmpty().
			Comment("The correct romanization"),
		field.String("submitted").
			Comment("What the learner picked"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Int("time_ms").
			Default(0).
			Comment("Milliseconds to answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("learner_id", "syllabary"),
	}
}
