package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScriptContent holds the schema definition for the generated narration
// script of one sub-task.
type ScriptContent struct {
	ent.Schema
}

// Fields of the ScriptContent.
func (ScriptContent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("script_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("sub_task_id").
			Immutable(),
		field.String("persona_id").
			Optional().
			Nillable(),
		field.String("style").
			Default("professional"),
		field.Enum("generation_status").
			Values("processing", "completed", "failed").
			Default("processing"),
		field.JSON("titles", []string{}).
			Optional(),
		field.Text("narration").
			Optional(),
		field.Text("description").
			Optional(),
		field.JSON("scenes", []map[string]interface{}{}).
			Optional().
			Comment("Normalized scenes: scene_id, timing, narration, material_id, description"),
		field.JSON("material_mapping", map[string]string{}).
			Optional().
			Comment("material_id -> usage"),
		field.JSON("tags", []string{}).
			Optional(),
		field.Int("estimated_duration").
			Default(0).
			Comment("Seconds"),
		field.Int("word_count").
			Default(0),
		field.Int("material_count").
			Default(0),
		field.Text("raw_prompt").
			Optional().
			Comment("Full LLM request prompt kept for audit"),
		field.Text("raw_response").
			Optional(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ScriptContent.
func (ScriptContent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("scripts").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ScriptContent.
func (ScriptContent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sub_task_id").
			Unique(),
		index.Fields("task_id"),
	}
}
