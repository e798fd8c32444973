package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MaterialAnalysis holds the schema definition for the AI analysis of one
// (task, media item) pair.
type MaterialAnalysis struct {
	ent.Schema
}

// Fields of the MaterialAnalysis.
func (MaterialAnalysis) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("analysis_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("media_item_id"),
		field.Text("original_url"),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed").
			Default("pending").
			Comment("completed is sticky: upserts never downgrade it"),
		field.Text("ai_description").
			Optional(),
		field.JSON("key_objects", []string{}).
			Optional(),
		field.String("emotional_tone").
			Optional(),
		field.String("visual_style").
			Optional(),
		field.Float("quality_score").
			Optional(),
		field.String("quality_level").
			Optional(),
		field.JSON("usage_suggestions", []string{}).
			Optional(),
		field.JSON("keyframe_urls", []string{}).
			Optional().
			Comment("Uploaded keyframe object URLs, video items only"),
		field.Float("fps").
			Optional(),
		field.Int("width").
			Optional(),
		field.Int("height").
			Optional(),
		field.Float("duration").
			Optional(),
		field.Text("raw_response").
			Optional().
			Comment("Raw model output kept for audit"),
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

// Edges of the MaterialAnalysis.
func (MaterialAnalysis) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("analyses").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the MaterialAnalysis.
func (MaterialAnalysis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "original_url").
			Unique(),
		index.Fields("task_id", "status"),
	}
}
