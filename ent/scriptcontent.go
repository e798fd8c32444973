// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/textloom/textloom/ent/scriptcontent"
	"github.com/textloom/textloom/ent/task"
)

// ScriptContent is the model entity for the ScriptContent schema.
type ScriptContent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// SubTaskID holds the value of the "sub_task_id" field.
	SubTaskID string `json:"sub_task_id,omitempty"`
	// PersonaID holds the value of the "persona_id" field.
	PersonaID *string `json:"persona_id,omitempty"`
	// Style holds the value of the "style" field.
	Style string `json:"style,omitempty"`
	// GenerationStatus holds the value of the "generation_status" field.
	GenerationStatus scriptcontent.GenerationStatus `json:"generation_status,omitempty"`
	// Titles holds the value of the "titles" field.
	Titles []string `json:"titles,omitempty"`
	// Narration holds the value of the "narration" field.
	Narration string `json:"narration,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Normalized scenes: scene_id, timing, narration, material_id, description
	Scenes []map[string]interface{} `json:"scenes,omitempty"`
	// material_id -> usage
	MaterialMapping map[string]string `json:"material_mapping,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// Seconds
	EstimatedDuration int `json:"estimated_duration,omitempty"`
	// WordCount holds the value of the "word_count" field.
	WordCount int `json:"word_count,omitempty"`
	// MaterialCount holds the value of the "material_count" field.
	MaterialCount int `json:"material_count,omitempty"`
	// Full LLM request prompt kept for audit
	RawPrompt string `json:"raw_prompt,omitempty"`
	// RawResponse holds the value of the "raw_response" field.
	RawResponse string `json:"raw_response,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ScriptContentQuery when eager-loading is set.
	Edges        ScriptContentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ScriptContentEdges holds the relations/edges for other nodes in the graph.
type ScriptContentEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ScriptContentEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScriptContent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scriptcontent.FieldTitles, scriptcontent.FieldScenes, scriptcontent.FieldMaterialMapping, scriptcontent.FieldTags:
			values[i] = new([]byte)
		case scriptcontent.FieldEstimatedDuration, scriptcontent.FieldWordCount, scriptcontent.FieldMaterialCount:
			values[i] = new(sql.NullInt64)
		case scriptcontent.FieldID, scriptcontent.FieldTaskID, scriptcontent.FieldSubTaskID, scriptcontent.FieldPersonaID, scriptcontent.FieldStyle, scriptcontent.FieldGenerationStatus, scriptcontent.FieldNarration, scriptcontent.FieldDescription, scriptcontent.FieldRawPrompt, scriptcontent.FieldRawResponse, scriptcontent.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case scriptcontent.FieldCreatedAt, scriptcontent.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScriptContent fields.
func (_m *ScriptContent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scriptcontent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case scriptcontent.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case scriptcontent.FieldSubTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sub_task_id", values[i])
			} else if value.Valid {
				_m.SubTaskID = value.String
			}
		case scriptcontent.FieldPersonaID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field persona_id", values[i])
			} else if value.Valid {
				_m.PersonaID = new(string)
				*_m.PersonaID = value.String
			}
		case scriptcontent.FieldStyle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field style", values[i])
			} else if value.Valid {
				_m.Style = value.String
			}
		case scriptcontent.FieldGenerationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field generation_status", values[i])
			} else if value.Valid {
				_m.GenerationStatus = scriptcontent.GenerationStatus(value.String)
			}
		case scriptcontent.FieldTitles:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field titles", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Titles); err != nil {
					return fmt.Errorf("unmarshal field titles: %w", err)
				}
			}
		case scriptcontent.FieldNarration:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field narration", values[i])
			} else if value.Valid {
				_m.Narration = value.String
			}
		case scriptcontent.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case scriptcontent.FieldScenes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field scenes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Scenes); err != nil {
					return fmt.Errorf("unmarshal field scenes: %w", err)
				}
			}
		case scriptcontent.FieldMaterialMapping:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field material_mapping", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MaterialMapping); err != nil {
					return fmt.Errorf("unmarshal field material_mapping: %w", err)
				}
			}
		case scriptcontent.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case scriptcontent.FieldEstimatedDuration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_duration", values[i])
			} else if value.Valid {
				_m.EstimatedDuration = int(value.Int64)
			}
		case scriptcontent.FieldWordCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field word_count", values[i])
			} else if value.Valid {
				_m.WordCount = int(value.Int64)
			}
		case scriptcontent.FieldMaterialCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field material_count", values[i])
			} else if value.Valid {
				_m.MaterialCount = int(value.Int64)
			}
		case scriptcontent.FieldRawPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_prompt", values[i])
			} else if value.Valid {
				_m.RawPrompt = value.String
			}
		case scriptcontent.FieldRawResponse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_response", values[i])
			} else if value.Valid {
				_m.RawResponse = value.String
			}
		case scriptcontent.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case scriptcontent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case scriptcontent.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScriptContent.
// This includes values selected through modifiers, order, etc.
func (_m *ScriptContent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the ScriptContent entity.
func (_m *ScriptContent) QueryTask() *TaskQuery {
	return NewScriptContentClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this ScriptContent.
// Note that you need to call ScriptContent.Unwrap() before calling this method if this ScriptContent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScriptContent) Update() *ScriptContentUpdateOne {
	return NewScriptContentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScriptContent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScriptContent) Unwrap() *ScriptContent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScriptContent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScriptContent) String() string {
	var builder strings.Builder
	builder.WriteString("ScriptContent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("sub_task_id=")
	builder.WriteString(_m.SubTaskID)
	builder.WriteString(", ")
	if v := _m.PersonaID; v != nil {
		builder.WriteString("persona_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("style=")
	builder.WriteString(_m.Style)
	builder.WriteString(", ")
	builder.WriteString("generation_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.GenerationStatus))
	builder.WriteString(", ")
	builder.WriteString("titles=")
	builder.WriteString(fmt.Sprintf("%v", _m.Titles))
	builder.WriteString(", ")
	builder.WriteString("narration=")
	builder.WriteString(_m.Narration)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("scenes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scenes))
	builder.WriteString(", ")
	builder.WriteString("material_mapping=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaterialMapping))
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	builder.WriteString("estimated_duration=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedDuration))
	builder.WriteString(", ")
	builder.WriteString("word_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.WordCount))
	builder.WriteString(", ")
	builder.WriteString("material_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaterialCount))
	builder.WriteString(", ")
	builder.WriteString("raw_prompt=")
	builder.WriteString(_m.RawPrompt)
	builder.WriteString(", ")
	builder.WriteString("raw_response=")
	builder.WriteString(_m.RawResponse)
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
	builder.WriteByte(')')
	return builder.String()
}

// ScriptContents is a parsable slice of ScriptContent.
type ScriptContents []*ScriptContent
