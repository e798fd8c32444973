// Code generated by ent, DO NOT EDIT.

package materialanalysis

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the materialanalysis type in the database.
	Label = "material_analysis"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "analysis_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldMediaItemID holds the string denoting the media_item_id field in the database.
	FieldMediaItemID = "media_item_id"
	// FieldOriginalURL holds the string denoting the original_url field in the database.
	FieldOriginalURL = "original_url"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAiDescription holds the string denoting the ai_description field in the database.
	FieldAiDescription = "ai_description"
	// FieldKeyObjects holds the string denoting the key_objects field in the database.
	FieldKeyObjects = "key_objects"
	// FieldEmotionalTone holds the string denoting the emotional_tone field in the database.
	FieldEmotionalTone = "emotional_tone"
	// FieldVisualStyle holds the string denoting the visual_style field in the database.
	FieldVisualStyle = "visual_style"
	// FieldQualityScore holds the string denoting the quality_score field in the database.
	FieldQualityScore = "quality_score"
	// FieldQualityLevel holds the string denoting the quality_level field in the database.
	FieldQualityLevel = "quality_level"
	// FieldUsageSuggestions holds the string denoting the usage_suggestions field in the database.
	FieldUsageSuggestions = "usage_suggestions"
	// FieldKeyframeUrls holds the string denoting the keyframe_urls field in the database.
	FieldKeyframeUrls = "keyframe_urls"
	// FieldFps holds the string denoting the fps field in the database.
	FieldFps = "fps"
	// FieldWidth holds the string denoting the width field in the database.
	FieldWidth = "width"
	// FieldHeight holds the string denoting the height field in the database.
	FieldHeight = "height"
	// FieldDuration holds the string denoting the duration field in the database.
	FieldDuration = "duration"
	// FieldRawResponse holds the string denoting the raw_response field in the database.
	FieldRawResponse = "raw_response"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// Table holds the table name of the materialanalysis in the database.
	Table = "material_analyses"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "material_analyses"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
)

// Columns holds all SQL columns for materialanalysis fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldMediaItemID,
	FieldOriginalURL,
	FieldStatus,
	FieldAiDescription,
	FieldKeyObjects,
	FieldEmotionalTone,
	FieldVisualStyle,
	FieldQualityScore,
	FieldQualityLevel,
	FieldUsageSuggestions,
	FieldKeyframeUrls,
	FieldFps,
	FieldWidth,
	FieldHeight,
	FieldDuration,
	FieldRawResponse,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("materialanalysis: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the MaterialAnalysis queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByMediaItemID orders the results by the media_item_id field.
func ByMediaItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMediaItemID, opts...).ToFunc()
}

// ByOriginalURL orders the results by the original_url field.
func ByOriginalURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalURL, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAiDescription orders the results by the ai_description field.
func ByAiDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiDescription, opts...).ToFunc()
}

// ByEmotionalTone orders the results by the emotional_tone field.
func ByEmotionalTone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmotionalTone, opts...).ToFunc()
}

// ByVisualStyle orders the results by the visual_style field.
func ByVisualStyle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisualStyle, opts...).ToFunc()
}

// ByQualityScore orders the results by the quality_score field.
func ByQualityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualityScore, opts...).ToFunc()
}

// ByQualityLevel orders the results by the quality_level field.
func ByQualityLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualityLevel, opts...).ToFunc()
}

// ByFps orders the results by the fps field.
func ByFps(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFps, opts...).ToFunc()
}

// ByWidth orders the results by the width field.
func ByWidth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWidth, opts...).ToFunc()
}

// ByHeight orders the results by the height field.
func ByHeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeight, opts...).ToFunc()
}

// ByDuration orders the results by the duration field.
func ByDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDuration, opts...).ToFunc()
}

// ByRawResponse orders the results by the raw_response field.
func ByRawResponse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawResponse, opts...).ToFunc()
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

// ByTaskField orders the results by task field.
func ByTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskStep(), sql.OrderByField(field, opts...))
	}
}
func newTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskInverseTable, TaskFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
	)
}
