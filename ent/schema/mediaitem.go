package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MediaItem holds the schema definition for one media URL discovered in a
// task's source manifest.
type MediaItem struct {
	ent.Schema
}

// Fields of the MediaItem.
func (MediaItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("media_item_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Text("original_url").
			Comment("URL as it appeared in the manifest"),
		field.Text("cloud_url").
			Optional().
			Comment("Object-storage URL after re-upload (or original_url when already in-namespace)"),
		field.String("local_path").
			Optional().
			Comment("Transient download path inside the workspace"),
		field.String("filename").
			Optional(),
		field.String("mime_type").
			Optional(),
		field.Enum("media_type").
			Values("image", "video", "audio", "markdown").
			Comment("Authoritative once set"),
		field.Int64("file_size").
			Optional(),
		field.Int("width").
			Optional(),
		field.Int("height").
			Optional(),
		field.Float("duration").
			Optional().
			Comment("Seconds, video/audio only"),
		field.Text("context_before").
			Optional().
			Comment("Sandwich context: full prior non-empty paragraph"),
		field.Text("caption").
			Optional().
			Comment("Sandwich context: alt/caption text"),
		field.Text("context_after").
			Optional().
			Comment("Sandwich context: full next non-empty paragraph"),
		field.Int("position").
			Default(0).
			Comment("Byte offset of the reference in the source document"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the MediaItem.
func (MediaItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("media_items").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the MediaItem.
func (MediaItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "original_url").
			Unique(),
		index.Fields("task_id", "media_type"),
	}
}
