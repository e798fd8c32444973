package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PromptTemplate holds the schema definition for a keyed catalog of prompt
// fragments used by the script generator.
type PromptTemplate struct {
	ent.Schema
}

// Fields of the PromptTemplate.
func (PromptTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("template_id").
			Unique().
			Immutable(),
		field.String("template_type").
			Comment("e.g. 'system_role', 'core_task', 'methodology'"),
		field.String("template_style").
			Default("professional"),
		field.String("name").
			Optional(),
		field.Text("content"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the PromptTemplate.
func (PromptTemplate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("template_type", "template_style").
			Unique(),
	}
}
