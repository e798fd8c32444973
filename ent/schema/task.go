package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity — the top-level
// text-to-video generation job.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.String("creator_id").
			Optional().
			Comment("Owning user, assigned by the HTTP collaborator"),
		field.String("task_type").
			Default("text_to_video"),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed", "partial_success", "cancelled").
			Default("pending"),
		field.Int("progress").
			Default(0).
			Comment("0..100, monotonic non-decreasing except the reconciler's single controlled rewrite"),
		field.Enum("current_stage").
			Values("material_processing", "material_analysis", "subtask_creation",
				"script_generation", "video_generation", "completed", "failed").
			Default("material_processing"),
		field.String("workspace_dir").
			Comment("Per-task workspace: workspace/task_<uuid>/"),
		field.String("source_file").
			Comment("Path to source_manifest.md inside the workspace"),
		field.String("script_style").
			Default("professional"),
		field.String("persona_id").
			Optional().
			Nillable(),
		field.Int("sub_video_count").
			Default(1).
			Comment("Requested video variants N, 1..5"),
		field.Int("completed_count").
			Default(0).
			Comment("Aggregate count of completed sub-tasks, maintained by the reconciler"),
		field.JSON("video_results", []map[string]interface{}{}).
			Optional().
			Comment("Per-sub-video result summaries"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the task (pending -> processing)"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan observation"),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("sub_tasks", SubVideoTask.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("media_items", MediaItem.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("analyses", MaterialAnalysis.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("scripts", ScriptContent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("creator_id"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
	}
}
