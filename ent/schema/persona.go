package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Persona holds the schema definition for a reusable narration voice/style
// descriptor referenced by script generation.
type Persona struct {
	ent.Schema
}

// Fields of the Persona.
func (Persona) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("persona_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("persona_type").
			Optional(),
		field.String("style").
			Optional(),
		field.String("target_audience").
			Optional(),
		field.JSON("characteristics", []string{}).
			Optional(),
		field.String("tone").
			Optional(),
		field.JSON("keywords", []string{}).
			Optional(),
		field.Text("custom_prompt").
			Optional().
			Comment("Free-form fragment appended to the system prompt"),
		field.Bool("is_preset").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Persona.
func (Persona) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
		index.Fields("is_preset"),
	}
}
