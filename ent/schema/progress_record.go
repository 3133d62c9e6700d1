package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressRecord is the durable row position of a learner in one syllabary.
// There is at most one record per (learner_id, syllabary).
type ProgressRecord struct {
	ent.Schema
}

func (ProgressRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty(),
		field.String("syllabary").
			NotEmpty().
			Comment("hiragana or katakana"),
		field.String("current_row").
			NotEmpty(),
		field.Int("correct_count").
			Default(0).
			NonNegative(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (ProgressRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "syllabary").
			Unique(),
	}
}
