// Code generated by ent, DO NOT EDIT.

package task

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldCreatorID holds the string denoting the creator_id field in the database.
	FieldCreatorID = "creator_id"
	// FieldTaskType holds the string denoting the task_type field in the database.
	FieldTaskType = "task_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldProgress holds the string denoting the progress field in the database.
	FieldProgress = "progress"
	// FieldCurrentStage holds the string denoting the current_stage field in the database.
	FieldCurrentStage = "current_stage"
	// FieldWorkspaceDir holds the string denoting the workspace_dir field in the database.
	FieldWorkspaceDir = "workspace_dir"
	// FieldSourceFile holds the string denoting the source_file field in the database.
	FieldSourceFile = "source_file"
	// FieldScriptStyle holds the string denoting the script_style field in the database.
	FieldScriptStyle = "script_style"
	// FieldPersonaID holds the string denoting the persona_id field in the database.
	FieldPersonaID = "persona_id"
	// FieldSubVideoCount holds the string denoting the sub_video_count field in the database.
	FieldSubVideoCount = "sub_video_count"
	// FieldCompletedCount holds the string denoting the completed_count field in the database.
	FieldCompletedCount = "completed_count"
	// FieldVideoResults holds the string denoting the video_results field in the database.
	FieldVideoResults = "video_results"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// EdgeSubTasks holds the string denoting the sub_tasks edge name in mutations.
	EdgeSubTasks = "sub_tasks"
	// EdgeMediaItems holds the string denoting the media_items edge name in mutations.
	EdgeMediaItems = "media_items"
	// EdgeAnalyses holds the string denoting the analyses edge name in mutations.
	EdgeAnalyses = "analyses"
	// EdgeScripts holds the string denoting the scripts edge name in mutations.
	EdgeScripts = "scripts"
	// SubVideoTaskFieldID holds the string denoting the ID field of the SubVideoTask.
	SubVideoTaskFieldID = "sub_task_id"
	// MediaItemFieldID holds the string denoting the ID field of the MediaItem.
	MediaItemFieldID = "media_item_id"
	// MaterialAnalysisFieldID holds the string denoting the ID field of the MaterialAnalysis.
	MaterialAnalysisFieldID = "analysis_id"
	// ScriptContentFieldID holds the string denoting the ID field of the ScriptContent.
	ScriptContentFieldID = "script_id"
	// Table holds the table name of the task in the database.
	Table = "tasks"
	// SubTasksTable is the table that holds the sub_tasks relation/edge.
	SubTasksTable = "sub_video_tasks"
	// SubTasksInverseTable is the table name for the SubVideoTask entity.
	// It exists in this package in order to avoid circular dependency with the "subvideotask" package.
	SubTasksInverseTable = "sub_video_tasks"
	// SubTasksColumn is the table column denoting the sub_tasks relation/edge.
	SubTasksColumn = "task_id"
	// MediaItemsTable is the table that holds the media_items relation/edge.
	MediaItemsTable = "media_items"
	// MediaItemsInverseTable is the table name for the MediaItem entity.
	// It exists in this package in order to avoid circular dependency with the "mediaitem" package.
	MediaItemsInverseTable = "media_items"
	// MediaItemsColumn is the table column denoting the media_items relation/edge.
	MediaItemsColumn = "task_id"
	// AnalysesTable is the table that holds the analyses relation/edge.
	AnalysesTable = "material_analyses"
	// AnalysesInverseTable is the table name for the MaterialAnalysis entity.
	// It exists in this package in order to avoid circular dependency with the "materialanalysis" package.
	AnalysesInverseTable = "material_analyses"
	// AnalysesColumn is the table column denoting the analyses relation/edge.
	AnalysesColumn = "task_id"
	// ScriptsTable is the table that holds the scripts relation/edge.
	ScriptsTable = "script_contents"
	// ScriptsInverseTable is the table name for the ScriptContent entity.
	// It exists in this package in order to avoid circular dependency with the "scriptcontent" package.
	ScriptsInverseTable = "script_contents"
	// ScriptsColumn is the table column denoting the scripts relation/edge.
	ScriptsColumn = "task_id"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldDescription,
	FieldCreatorID,
	FieldTaskType,
	FieldStatus,
	FieldProgress,
	FieldCurrentStage,
	FieldWorkspaceDir,
	FieldSourceFile,
	FieldScriptStyle,
	FieldPersonaID,
	FieldSubVideoCount,
	FieldCompletedCount,
	FieldVideoResults,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldPodID,
	FieldLastHeartbeatAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTaskType holds the default value on creation for the "task_type" field.
	DefaultTaskType string
	// DefaultProgress holds the default value on creation for the "progress" field.
	DefaultProgress int
	// DefaultScriptStyle holds the default value on creation for the "script_style" field.
	DefaultScriptStyle string
	// DefaultSubVideoCount holds the default value on creation for the "sub_video_count" field.
	DefaultSubVideoCount int
	// DefaultCompletedCount holds the default value on creation for the "completed_count" field.
	DefaultCompletedCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending        Status = "pending"
	StatusProcessing     Status = "processing"
	StatusCompleted      Status = "completed"
	StatusFailed         Status = "failed"
	StatusPartialSuccess Status = "partial_success"
	StatusCancelled      Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed, StatusPartialSuccess, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for status field: %q", s)
	}
}

// CurrentStage defines the type for the "current_stage" enum field.
type CurrentStage string

// CurrentStageMaterialProcessing is the default value of the CurrentStage enum.
const DefaultCurrentStage = CurrentStageMaterialProcessing

// CurrentStage values.
const (
	CurrentStageMaterialProcessing CurrentStage = "material_processing"
	CurrentStageMaterialAnalysis   CurrentStage = "material_analysis"
	CurrentStageSubtaskCreation    CurrentStage = "subtask_creation"
	CurrentStageScriptGeneration   CurrentStage = "script_generation"
	CurrentStageVideoGeneration    CurrentStage = "video_generation"
	CurrentStageCompleted          CurrentStage = "completed"
	CurrentStageFailed             CurrentStage = "failed"
)

func (cs CurrentStage) String() string {
	return string(cs)
}

// CurrentStageValidator is a validator for the "current_stage" field enum values. It is called by the builders before save.
func CurrentStageValidator(cs CurrentStage) error {
	switch cs {
	case CurrentStageMaterialProcessing, CurrentStageMaterialAnalysis, CurrentStageSubtaskCreation, CurrentStageScriptGeneration, CurrentStageVideoGeneration, CurrentStageCompleted, CurrentStageFailed:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for current_stage field: %q", cs)
	}
}

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByCreatorID orders the results by the creator_id field.
func ByCreatorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatorID, opts...).ToFunc()
}

// ByTaskType orders the results by the task_type field.
func ByTaskType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByProgress orders the results by the progress field.
func ByProgress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgress, opts...).ToFunc()
}

// ByCurrentStage orders the results by the current_stage field.
func ByCurrentStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStage, opts...).ToFunc()
}

// ByWorkspaceDir orders the results by the workspace_dir field.
func ByWorkspaceDir(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceDir, opts...).ToFunc()
}

// BySourceFile orders the results by the source_file field.
func BySourceFile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceFile, opts...).ToFunc()
}

// ByScriptStyle orders the results by the script_style field.
func ByScriptStyle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScriptStyle, opts...).ToFunc()
}

// ByPersonaID orders the results by the persona_id field.
func ByPersonaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersonaID, opts...).ToFunc()
}

// BySubVideoCount orders the results by the sub_video_count field.
func BySubVideoCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubVideoCount, opts...).ToFunc()
}

// ByCompletedCount orders the results by the completed_count field.
func ByCompletedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedCount, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// BySubTasksCount orders the results by sub_tasks count.
func BySubTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSubTasksStep(), opts...)
	}
}

// BySubTasks orders the results by sub_tasks terms.
func BySubTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMediaItemsCount orders the results by media_items count.
func ByMediaItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMediaItemsStep(), opts...)
	}
}

// ByMediaItems orders the results by media_items terms.
func ByMediaItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMediaItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAnalysesCount orders the results by analyses count.
func ByAnalysesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAnalysesStep(), opts...)
	}
}

// ByAnalyses orders the results by analyses terms.
func ByAnalyses(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnalysesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByScriptsCount orders the results by scripts count.
func ByScriptsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newScriptsStep(), opts...)
	}
}

// ByScripts orders the results by scripts terms.
func ByScripts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newScriptsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSubTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubTasksInverseTable, SubVideoTaskFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SubTasksTable, SubTasksColumn),
	)
}
func newMediaItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MediaItemsInverseTable, MediaItemFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MediaItemsTable, MediaItemsColumn),
	)
}
func newAnalysesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnalysesInverseTable, MaterialAnalysisFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AnalysesTable, AnalysesColumn),
	)
}
func newScriptsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ScriptsInverseTable, ScriptContentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ScriptsTable, ScriptsColumn),
	)
}
