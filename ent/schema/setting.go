package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Setting holds the quiz preferences saved from the settings screen.
// The guest row uses an empty learner_id.
type Setting struct {
	ent.Schema
}

func (Setting) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			Unique(),
		field.Int("characters_per_row").
			Default(5),
		field.String("theme").
			Default("dark"),
		field.String("language").
			Default("en"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
