package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubVideoTask holds the schema definition for one requested video variant
// within a task. Identity is `{task_id}_video_{index}`.
type SubVideoTask struct {
	ent.Schema
}

// Fields of the SubVideoTask.
func (SubVideoTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("sub_task_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Int("index").
			Comment("1-based position within the parent task"),
		field.String("script_style").
			Default("professional"),
		field.Enum("status").
			Values("pending", "processing", "processing_subtitles", "completed", "failed").
			Default("pending"),
		field.Int("progress").
			Default(0),
		field.String("script_id").
			Optional().
			Nillable().
			Comment("ScriptContent id, set after script generation"),
		field.JSON("script_data", map[string]interface{}{}).
			Optional().
			Comment("Condensed script blob for the HTTP read surface"),
		field.String("course_media_id").
			Optional().
			Nillable().
			Comment("External merge-service job id, set on submission"),
		field.String("video_url").
			Optional(),
		field.String("thumbnail_url").
			Optional(),
		field.Float("duration").
			Optional().
			Comment("Produced video duration in seconds"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the SubVideoTask.
func (SubVideoTask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("sub_tasks").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SubVideoTask.
func (SubVideoTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "index").
			Unique(),
		index.Fields("status"),
		index.Fields("status", "updated_at"),
	}
}
