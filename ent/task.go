// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/textloom/textloom/ent/task"
)

// Task is the model entity for the Task schema.
type Task struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Owning user, assigned by the HTTP collaborator
	CreatorID string `json:"creator_id,omitempty"`
	// TaskType holds the value of the "task_type" field.
	TaskType string `json:"task_type,omitempty"`
	// Status holds the value of the "status" field.
	Status task.Status `json:"status,omitempty"`
	// 0..100, monotonic non-decreasing except the reconciler's single controlled rewrite
	Progress int `json:"progress,omitempty"`
	// CurrentStage holds the value of the "current_stage" field.
	CurrentStage task.CurrentStage `json:"current_stage,omitempty"`
	// Per-task workspace: workspace/task_<uuid>/
	WorkspaceDir string `json:"workspace_dir,omitempty"`
	// Path to source_manifest.md inside the workspace
	SourceFile string `json:"source_file,omitempty"`
	// ScriptStyle holds the value of the "script_style" field.
	ScriptStyle string `json:"script_style,omitempty"`
	// PersonaID holds the value of the "persona_id" field.
	PersonaID *string `json:"persona_id,omitempty"`
	// Requested video variants N, 1..5
	SubVideoCount int `json:"sub_video_count,omitempty"`
	// Aggregate count of completed sub-tasks, maintained by the reconciler
	CompletedCount int `json:"completed_count,omitempty"`
	// Per-sub-video result summaries
	VideoResults []map[string]interface{} `json:"video_results,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// When a worker claimed the task (pending -> processing)
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// For orphan observation
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskQuery when eager-loading is set.
	Edges        TaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskEdges holds the relations/edges for other nodes in the graph.
type TaskEdges struct {
	// SubTasks holds the value of the sub_tasks edge.
	SubTasks []*SubVideoTask `json:"sub_tasks,omitempty"`
	// MediaItems holds the value of the media_items edge.
	MediaItems []*MediaItem `json:"media_items,omitempty"`
	// Analyses holds the value of the analyses edge.
	Analyses []*MaterialAnalysis `json:"analyses,omitempty"`
	// Scripts holds the value of the scripts edge.
	Scripts []*ScriptContent `json:"scripts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// SubTasksOrErr returns the SubTasks value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) SubTasksOrErr() ([]*SubVideoTask, error) {
	if e.loadedTypes[0] {
		return e.SubTasks, nil
	}
	return nil, &NotLoadedError{edge: "sub_tasks"}
}

// MediaItemsOrErr returns the MediaItems value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) MediaItemsOrErr() ([]*MediaItem, error) {
	if e.loadedTypes[1] {
		return e.MediaItems, nil
	}
	return nil, &NotLoadedError{edge: "media_items"}
}

// AnalysesOrErr returns the Analyses value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) AnalysesOrErr() ([]*MaterialAnalysis, error) {
	if e.loadedTypes[2] {
		return e.Analyses, nil
	}
	return nil, &NotLoadedError{edge: "analyses"}
}

// ScriptsOrErr returns the Scripts value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) ScriptsOrErr() ([]*ScriptContent, error) {
	if e.loadedTypes[3] {
		return e.Scripts, nil
	}
	return nil, &NotLoadedError{edge: "scripts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Task) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case task.FieldVideoResults:
			values[i] = new([]byte)
		case task.FieldProgress, task.FieldSubVideoCount, task.FieldCompletedCount:
			values[i] = new(sql.NullInt64)
		case task.FieldID, task.FieldTitle, task.FieldDescription, task.FieldCreatorID, task.FieldTaskType, task.FieldStatus, task.FieldCurrentStage, task.FieldWorkspaceDir, task.FieldSourceFile, task.FieldScriptStyle, task.FieldPersonaID, task.FieldErrorMessage, task.FieldPodID:
			values[i] = new(sql.NullString)
		case task.FieldCreatedAt, task.FieldUpdatedAt, task.FieldStartedAt, task.FieldCompletedAt, task.FieldLastHeartbeatAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Task fields.
func (_m *Task) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case task.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case task.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case task.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case task.FieldCreatorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field creator_id", values[i])
			} else if value.Valid {
				_m.CreatorID = value.String
			}
		case task.FieldTaskType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_type", values[i])
			} else if value.Valid {
				_m.TaskType = value.String
			}
		case task.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = task.Status(value.String)
			}
		case task.FieldProgress:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress", values[i])
			} else if value.Valid {
				_m.Progress = int(value.Int64)
			}
		case task.FieldCurrentStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_stage", values[i])
			} else if value.Valid {
				_m.CurrentStage = task.CurrentStage(value.String)
			}
		case task.FieldWorkspaceDir:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_dir", values[i])
			} else if value.Valid {
				_m.WorkspaceDir = value.String
			}
		case task.FieldSourceFile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_file", values[i])
			} else if value.Valid {
				_m.SourceFile = value.String
			}
		case task.FieldScriptStyle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field script_style", values[i])
			} else if value.Valid {
				_m.ScriptStyle = value.String
			}
		case task.FieldPersonaID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field persona_id", values[i])
			} else if value.Valid {
				_m.PersonaID = new(string)
				*_m.PersonaID = value.String
			}
		case task.FieldSubVideoCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sub_video_count", values[i])
			} else if value.Valid {
				_m.SubVideoCount = int(value.Int64)
			}
		case task.FieldCompletedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_count", values[i])
			} else if value.Valid {
				_m.CompletedCount = int(value.Int64)
			}
		case task.FieldVideoResults:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field video_results", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.VideoResults); err != nil {
					return fmt.Errorf("unmarshal field video_results: %w", err)
				}
			}
		case task.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case task.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case task.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case task.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case task.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case task.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case task.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Task.
// This includes values selected through modifiers, order, etc.
func (_m *Task) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubTasks queries the "sub_tasks" edge of the Task entity.
func (_m *Task) QuerySubTasks() *SubVideoTaskQuery {
	return NewTaskClient(_m.config).QuerySubTasks(_m)
}

// QueryMediaItems queries the "media_items" edge of the Task entity.
func (_m *Task) QueryMediaItems() *MediaItemQuery {
	return NewTaskClient(_m.config).QueryMediaItems(_m)
}

// QueryAnalyses queries the "analyses" edge of the Task entity.
func (_m *Task) QueryAnalyses() *MaterialAnalysisQuery {
	return NewTaskClient(_m.config).QueryAnalyses(_m)
}

// QueryScripts queries the "scripts" edge of the Task entity.
func (_m *Task) QueryScripts() *ScriptContentQuery {
	return NewTaskClient(_m.config).QueryScripts(_m)
}

// Update returns a builder for updating this Task.
// Note that you need to call Task.Unwrap() before calling this method if this Task
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Task) Update() *TaskUpdateOne {
	return NewTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Task entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Task) Unwrap() *Task {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Task is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Task) String() string {
	var builder strings.Builder
	builder.WriteString("Task(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("creator_id=")
	builder.WriteString(_m.CreatorID)
	builder.WriteString(", ")
	builder.WriteString("task_type=")
	builder.WriteString(_m.TaskType)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.Progress))
	builder.WriteString(", ")
	builder.WriteString("current_stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentStage))
	builder.WriteString(", ")
	builder.WriteString("workspace_dir=")
	builder.WriteString(_m.WorkspaceDir)
	builder.WriteString(", ")
	builder.WriteString("source_file=")
	builder.WriteString(_m.SourceFile)
	builder.WriteString(", ")
	builder.WriteString("script_style=")
	builder.WriteString(_m.ScriptStyle)
	builder.WriteString(", ")
	if v := _m.PersonaID; v != nil {
		builder.WriteString("persona_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("sub_video_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubVideoCount))
	builder.WriteString(", ")
	builder.WriteString("completed_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedCount))
	builder.WriteString(", ")
	builder.WriteString("video_results=")
	builder.WriteString(fmt.Sprintf("%v", _m.VideoResults))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Tasks is a parsable slice of Task.
type Tasks []*Task
