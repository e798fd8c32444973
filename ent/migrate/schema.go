// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// MaterialAnalysesColumns holds the columns for the "material_analyses" table.
	MaterialAnalysesColumns = []*schema.Column{
		{Name: "analysis_id", Type: field.TypeString, Unique: true},
		{Name: "media_item_id", Type: field.TypeString},
		{Name: "original_url", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "ai_description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "key_objects", Type: field.TypeJSON, Nullable: true},
		{Name: "emotional_tone", Type: field.TypeString, Nullable: true},
		{Name: "visual_style", Type: field.TypeString, Nullable: true},
		{Name: "quality_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "quality_level", Type: field.TypeString, Nullable: true},
		{Name: "usage_suggestions", Type: field.TypeJSON, Nullable: true},
		{Name: "keyframe_urls", Type: field.TypeJSON, Nullable: true},
		{Name: "fps", Type: field.TypeFloat64, Nullable: true},
		{Name: "width", Type: field.TypeInt, Nullable: true},
		{Name: "height", Type: field.TypeInt, Nullable: true},
		{Name: "duration", Type: field.TypeFloat64, Nullable: true},
		{Name: "raw_response", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// MaterialAnalysesTable holds the schema information for the "material_analyses" table.
	MaterialAnalysesTable = &schema.Table{
		Name:       "material_analyses",
		Columns:    MaterialAnalysesColumns,
		PrimaryKey: []*schema.Column{MaterialAnalysesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "material_analyses_tasks_analyses",
				Columns:    []*schema.Column{MaterialAnalysesColumns[20]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "materialanalysis_task_id_original_url",
				Unique:  true,
				Columns: []*schema.Column{MaterialAnalysesColumns[20], MaterialAnalysesColumns[2]},
			},
			{
				Name:    "materialanalysis_task_id_status",
				Unique:  false,
				Columns: []*schema.Column{MaterialAnalysesColumns[20], MaterialAnalysesColumns[3]},
			},
		},
	}
	// MediaItemsColumns holds the columns for the "media_items" table.
	MediaItemsColumns = []*schema.Column{
		{Name: "media_item_id", Type: field.TypeString, Unique: true},
		{Name: "original_url", Type: field.TypeString, Size: 2147483647},
		{Name: "cloud_url", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "local_path", Type: field.TypeString, Nullable: true},
		{Name: "filename", Type: field.TypeString, Nullable: true},
		{Name: "mime_type", Type: field.TypeString, Nullable: true},
		{Name: "media_type", Type: field.TypeEnum, Enums: []string{"image", "video", "audio", "markdown"}},
		{Name: "file_size", Type: field.TypeInt64, Nullable: true},
		{Name: "width", Type: field.TypeInt, Nullable: true},
		{Name: "height", Type: field.TypeInt, Nullable: true},
		{Name: "duration", Type: field.TypeFloat64, Nullable: true},
		{Name: "context_before", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "caption", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "context_after", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// MediaItemsTable holds the schema information for the "media_items" table.
	MediaItemsTable = &schema.Table{
		Name:       "media_items",
		Columns:    MediaItemsColumns,
		PrimaryKey: []*schema.Column{MediaItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "media_items_tasks_media_items",
				Columns:    []*schema.Column{MediaItemsColumns[16]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "mediaitem_task_id_original_url",
				Unique:  true,
				Columns: []*schema.Column{MediaItemsColumns[16], MediaItemsColumns[1]},
			},
			{
				Name:    "mediaitem_task_id_media_type",
				Unique:  false,
				Columns: []*schema.Column{MediaItemsColumns[16], MediaItemsColumns[6]},
			},
		},
	}
	// PersonasColumns holds the columns for the "personas" table.
	PersonasColumns = []*schema.Column{
		{Name: "persona_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "persona_type", Type: field.TypeString, Nullable: true},
		{Name: "style", Type: field.TypeString, Nullable: true},
		{Name: "target_audience", Type: field.TypeString, Nullable: true},
		{Name: "characteristics", Type: field.TypeJSON, Nullable: true},
		{Name: "tone", Type: field.TypeString, Nullable: true},
		{Name: "keywords", Type: field.TypeJSON, Nullable: true},
		{Name: "custom_prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_preset", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PersonasTable holds the schema information for the "personas" table.
	PersonasTable = &schema.Table{
		Name:       "personas",
		Columns:    PersonasColumns,
		PrimaryKey: []*schema.Column{PersonasColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "persona_name",
				Unique:  false,
				Columns: []*schema.Column{PersonasColumns[1]},
			},
			{
				Name:    "persona_is_preset",
				Unique:  false,
				Columns: []*schema.Column{PersonasColumns[9]},
			},
		},
	}
	// PromptTemplatesColumns holds the columns for the "prompt_templates" table.
	PromptTemplatesColumns = []*schema.Column{
		{Name: "template_id", Type: field.TypeString, Unique: true},
		{Name: "template_type", Type: field.TypeString},
		{Name: "template_style", Type: field.TypeString, Default: "professional"},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PromptTemplatesTable holds the schema information for the "prompt_templates" table.
	PromptTemplatesTable = &schema.Table{
		Name:       "prompt_templates",
		Columns:    PromptTemplatesColumns,
		PrimaryKey: []*schema.Column{PromptTemplatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "prompttemplate_template_type_template_style",
				Unique:  true,
				Columns: []*schema.Column{PromptTemplatesColumns[1], PromptTemplatesColumns[2]},
			},
		},
	}
	// ScriptContentsColumns holds the columns for the "script_contents" table.
	ScriptContentsColumns = []*schema.Column{
		{Name: "script_id", Type: field.TypeString, Unique: true},
		{Name: "sub_task_id", Type: field.TypeString},
		{Name: "persona_id", Type: field.TypeString, Nullable: true},
		{Name: "style", Type: field.TypeString, Default: "professional"},
		{Name: "generation_status", Type: field.TypeEnum, Enums: []string{"processing", "completed", "failed"}, Default: "processing"},
		{Name: "titles", Type: field.TypeJSON, Nullable: true},
		{Name: "narration", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "scenes", Type: field.TypeJSON, Nullable: true},
		{Name: "material_mapping", Type: field.TypeJSON, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "estimated_duration", Type: field.TypeInt, Default: 0},
		{Name: "word_count", Type: field.TypeInt, Default: 0},
		{Name: "material_count", Type: field.TypeInt, Default: 0},
		{Name: "raw_prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "raw_response", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// ScriptContentsTable holds the schema information for the "script_contents" table.
	ScriptContentsTable = &schema.Table{
		Name:       "script_contents",
		Columns:    ScriptContentsColumns,
		PrimaryKey: []*schema.Column{ScriptContentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "script_contents_tasks_scripts",
				Columns:    []*schema.Column{ScriptContentsColumns[19]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "scriptcontent_sub_task_id",
				Unique:  true,
				Columns: []*schema.Column{ScriptContentsColumns[1]},
			},
			{
				Name:    "scriptcontent_task_id",
				Unique:  false,
				Columns: []*schema.Column{ScriptContentsColumns[19]},
			},
		},
	}
	// SubVideoTasksColumns holds the columns for the "sub_video_tasks" table.
	SubVideoTasksColumns = []*schema.Column{
		{Name: "sub_task_id", Type: field.TypeString, Unique: true},
		{Name: "index", Type: field.TypeInt},
		{Name: "script_style", Type: field.TypeString, Default: "professional"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "processing_subtitles", "completed", "failed"}, Default: "pending"},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "script_id", Type: field.TypeString, Nullable: true},
		{Name: "script_data", Type: field.TypeJSON, Nullable: true},
		{Name: "course_media_id", Type: field.TypeString, Nullable: true},
		{Name: "video_url", Type: field.TypeString, Nullable: true},
		{Name: "thumbnail_url", Type: field.TypeString, Nullable: true},
		{Name: "duration", Type: field.TypeFloat64, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "task_id", Type: field.TypeString},
	}
	// SubVideoTasksTable holds the schema information for the "sub_video_tasks" table.
	SubVideoTasksTable = &schema.Table{
		Name:       "sub_video_tasks",
		Columns:    SubVideoTasksColumns,
		PrimaryKey: []*schema.Column{SubVideoTasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sub_video_tasks_tasks_sub_tasks",
				Columns:    []*schema.Column{SubVideoTasksColumns[15]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subvideotask_task_id_index",
				Unique:  true,
				Columns: []*schema.Column{SubVideoTasksColumns[15], SubVideoTasksColumns[1]},
			},
			{
				Name:    "subvideotask_status",
				Unique:  false,
				Columns: []*schema.Column{SubVideoTasksColumns[3]},
			},
			{
				Name:    "subvideotask_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{SubVideoTasksColumns[3], SubVideoTasksColumns[13]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "creator_id", Type: field.TypeString, Nullable: true},
		{Name: "task_type", Type: field.TypeString, Default: "text_to_video"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed", "partial_success", "cancelled"}, Default: "pending"},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "current_stage", Type: field.TypeEnum, Enums: []string{"material_processing", "material_analysis", "subtask_creation", "script_generation", "video_generation", "completed", "failed"}, Default: "material_processing"},
		{Name: "workspace_dir", Type: field.TypeString},
		{Name: "source_file", Type: field.TypeString},
		{Name: "script_style", Type: field.TypeString, Default: "professional"},
		{Name: "persona_id", Type: field.TypeString, Nullable: true},
		{Name: "sub_video_count", Type: field.TypeInt, Default: 1},
		{Name: "completed_count", Type: field.TypeInt, Default: 0},
		{Name: "video_results", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[5]},
			},
			{
				Name:    "task_creator_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[3]},
			},
			{
				Name:    "task_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[5], TasksColumns[16]},
			},
			{
				Name:    "task_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[5], TasksColumns[21]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		MaterialAnalysesTable,
		MediaItemsTable,
		PersonasTable,
		PromptTemplatesTable,
		ScriptContentsTable,
		SubVideoTasksTable,
		TasksTable,
	}
)

func init() {
	MaterialAnalysesTable.ForeignKeys[0].RefTable = TasksTable
	MediaItemsTable.ForeignKeys[0].RefTable = TasksTable
	ScriptContentsTable.ForeignKeys[0].RefTable = TasksTable
	SubVideoTasksTable.ForeignKeys[0].RefTable = TasksTable
}
