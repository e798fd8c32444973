// Code generated by ent, DO NOT EDIT.

package scriptcontent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the scriptcontent type in the database.
	Label = "script_content"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "script_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldSubTaskID holds the string denoting the sub_task_id field in the database.
	FieldSubTaskID = "sub_task_id"
	// FieldPersonaID holds the string denoting the persona_id field in the database.
	FieldPersonaID = "persona_id"
	// FieldStyle holds the string denoting the style field in the database.
	FieldStyle = "style"
	// FieldGenerationStatus holds the string denoting the generation_status field in the database.
	FieldGenerationStatus = "generation_status"
	// FieldTitles holds the string denoting the titles field in the database.
	FieldTitles = "titles"
	// FieldNarration holds the string denoting the narration field in the database.
	FieldNarration = "narration"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldScenes holds the string denoting the scenes field in the database.
	FieldScenes = "scenes"
	// FieldMaterialMapping holds the string denoting the material_mapping field in the database.
	FieldMaterialMapping = "material_mapping"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldEstimatedDuration holds the string denoting the estimated_duration field in the database.
	FieldEstimatedDuration = "estimated_duration"
	// FieldWordCount holds the string denoting the word_count field in the database.
	FieldWordCount = "word_count"
	// FieldMaterialCount holds the string denoting the material_count field in the database.
	FieldMaterialCount = "material_count"
	// FieldRawPrompt holds the string denoting the raw_prompt field in the database.
	FieldRawPrompt = "raw_prompt"
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
	// Table holds the table name of the scriptcontent in the database.
	Table = "script_contents"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "script_contents"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
)

// Columns holds all SQL columns for scriptcontent fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldSubTaskID,
	FieldPersonaID,
	FieldStyle,
	FieldGenerationStatus,
	FieldTitles,
	FieldNarration,
	FieldDescription,
	FieldScenes,
	FieldMaterialMapping,
	FieldTags,
	FieldEstimatedDuration,
	FieldWordCount,
	FieldMaterialCount,
	FieldRawPrompt,
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
	// DefaultStyle holds the default value on creation for the "style" field.
	DefaultStyle string
	// DefaultEstimatedDuration holds the default value on creation for the "estimated_duration" field.
	DefaultEstimatedDuration int
	// DefaultWordCount holds the default value on creation for the "word_count" field.
	DefaultWordCount int
	// DefaultMaterialCount holds the default value on creation for the "material_count" field.
	DefaultMaterialCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// GenerationStatus defines the type for the "generation_status" enum field.
type GenerationStatus string

// GenerationStatusProcessing is the default value of the GenerationStatus enum.
const DefaultGenerationStatus = GenerationStatusProcessing

// GenerationStatus values.
const (
	GenerationStatusProcessing GenerationStatus = "processing"
	GenerationStatusCompleted  GenerationStatus = "completed"
	GenerationStatusFailed     GenerationStatus = "failed"
)

func (gs GenerationStatus) String() string {
	return string(gs)
}

// GenerationStatusValidator is a validator for the "generation_status" field enum values. It is called by the builders before save.
func GenerationStatusValidator(gs GenerationStatus) error {
	switch gs {
	case GenerationStatusProcessing, GenerationStatusCompleted, GenerationStatusFailed:
		return nil
	default:
		return fmt.Errorf("scriptcontent: invalid enum value for generation_status field: %q", gs)
	}
}

// OrderOption defines the ordering options for the ScriptContent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// BySubTaskID orders the results by the sub_task_id field.
func BySubTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubTaskID, opts...).ToFunc()
}

// ByPersonaID orders the results by the persona_id field.
func ByPersonaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersonaID, opts...).ToFunc()
}

// ByStyle orders the results by the style field.
func ByStyle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStyle, opts...).ToFunc()
}

// ByGenerationStatus orders the results by the generation_status field.
func ByGenerationStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenerationStatus, opts...).ToFunc()
}

// ByNarration orders the results by the narration field.
func ByNarration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNarration, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByEstimatedDuration orders the results by the estimated_duration field.
func ByEstimatedDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedDuration, opts...).ToFunc()
}

// ByWordCount orders the results by the word_count field.
func ByWordCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordCount, opts...).ToFunc()
}

// ByMaterialCount orders the results by the material_count field.
func ByMaterialCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaterialCount, opts...).ToFunc()
}

// ByRawPrompt orders the results by the raw_prompt field.
func ByRawPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawPrompt, opts...).ToFunc()
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
