// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/textloom/textloom/ent/materialanalysis"
	"github.com/textloom/textloom/ent/task"
)

// MaterialAnalysis is the model entity for the MaterialAnalysis schema.
type MaterialAnalysis struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// MediaItemID holds the value of the "media_item_id" field.
	MediaItemID string `json:"media_item_id,omitempty"`
	// OriginalURL holds the value of the "original_url" field.
	OriginalURL string `json:"original_url,omitempty"`
	// completed is sticky: upserts never downgrade it
	Status materialanalysis.Status `json:"status,omitempty"`
	// AiDescription holds the value of the "ai_description" field.
	AiDescription string `json:"ai_description,omitempty"`
	// KeyObjects holds the value of the "key_objects" field.
	KeyObjects []string `json:"key_objects,omitempty"`
	// EmotionalTone holds the value of the "emotional_tone" field.
	EmotionalTone string `json:"emotional_tone,omitempty"`
	// VisualStyle holds the value of the "visual_style" field.
	VisualStyle string `json:"visual_style,omitempty"`
	// QualityScore holds the value of the "quality_score" field.
	QualityScore float64 `json:"quality_score,omitempty"`
	// QualityLevel holds the value of the "quality_level" field.
	QualityLevel string `json:"quality_level,omitempty"`
	// UsageSuggestions holds the value of the "usage_suggestions" field.
	UsageSuggestions []string `json:"usage_suggestions,omitempty"`
	// Uploaded keyframe object URLs, video items only
	KeyframeUrls []string `json:"keyframe_urls,omitempty"`
	// Fps holds the value of the "fps" field.
	Fps float64 `json:"fps,omitempty"`
	// Width holds the value of the "width" field.
	Width int `json:"width,omitempty"`
	// Height holds the value of the "height" field.
	Height int `json:"height,omitempty"`
	// Duration holds the value of the "duration" field.
	Duration float64 `json:"duration,omitempty"`
	// Raw model output kept for audit
	RawResponse string `json:"raw_response,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MaterialAnalysisQuery when eager-loading is set.
	Edges        MaterialAnalysisEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MaterialAnalysisEdges holds the relations/edges for other nodes in the graph.
type MaterialAnalysisEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MaterialAnalysisEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MaterialAnalysis) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case materialanalysis.FieldKeyObjects, materialanalysis.FieldUsageSuggestions, materialanalysis.FieldKeyframeUrls:
			values[i] = new([]byte)
		case materialanalysis.FieldQualityScore, materialanalysis.FieldFps, materialanalysis.FieldDuration:
			values[i] = new(sql.NullFloat64)
		case materialanalysis.FieldWidth, materialanalysis.FieldHeight:
			values[i] = new(sql.NullInt64)
		case materialanalysis.FieldID, materialanalysis.FieldTaskID, materialanalysis.FieldMediaItemID, materialanalysis.FieldOriginalURL, materialanalysis.FieldStatus, materialanalysis.FieldAiDescription, materialanalysis.FieldEmotionalTone, materialanalysis.FieldVisualStyle, materialanalysis.FieldQualityLevel, materialanalysis.FieldRawResponse, materialanalysis.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case materialanalysis.FieldCreatedAt, materialanalysis.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MaterialAnalysis fields.
func (_m *MaterialAnalysis) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case materialanalysis.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case materialanalysis.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case materialanalysis.FieldMediaItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field media_item_id", values[i])
			} else if value.Valid {
				_m.MediaItemID = value.String
			}
		case materialanalysis.FieldOriginalURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_url", values[i])
			} else if value.Valid {
				_m.OriginalURL = value.String
			}
		case materialanalysis.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = materialanalysis.Status(value.String)
			}
		case materialanalysis.FieldAiDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ai_description", values[i])
			} else if value.Valid {
				_m.AiDescription = value.String
			}
		case materialanalysis.FieldKeyObjects:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field key_objects", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.KeyObjects); err != nil {
					return fmt.Errorf("unmarshal field key_objects: %w", err)
				}
			}
		case materialanalysis.FieldEmotionalTone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field emotional_tone", values[i])
			} else if value.Valid {
				_m.EmotionalTone = value.String
			}
		case materialanalysis.FieldVisualStyle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field visual_style", values[i])
			} else if value.Valid {
				_m.VisualStyle = value.String
			}
		case materialanalysis.FieldQualityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quality_score", values[i])
			} else if value.Valid {
				_m.QualityScore = value.Float64
			}
		case materialanalysis.FieldQualityLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quality_level", values[i])
			} else if value.Valid {
				_m.QualityLevel = value.String
			}
		case materialanalysis.FieldUsageSuggestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field usage_suggestions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.UsageSuggestions); err != nil {
					return fmt.Errorf("unmarshal field usage_suggestions: %w", err)
				}
			}
		case materialanalysis.FieldKeyframeUrls:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field keyframe_urls", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.KeyframeUrls); err != nil {
					return fmt.Errorf("unmarshal field keyframe_urls: %w", err)
				}
			}
		case materialanalysis.FieldFps:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field fps", values[i])
			} else if value.Valid {
				_m.Fps = value.Float64
			}
		case materialanalysis.FieldWidth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field width", values[i])
			} else if value.Valid {
				_m.Width = int(value.Int64)
			}
		case materialanalysis.FieldHeight:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field height", values[i])
			} else if value.Valid {
				_m.Height = int(value.Int64)
			}
		case materialanalysis.FieldDuration:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field duration", values[i])
			} else if value.Valid {
				_m.Duration = value.Float64
			}
		case materialanalysis.FieldRawResponse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_response", values[i])
			} else if value.Valid {
				_m.RawResponse = value.String
			}
		case materialanalysis.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case materialanalysis.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case materialanalysis.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MaterialAnalysis.
// This includes values selected through modifiers, order, etc.
func (_m *MaterialAnalysis) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the MaterialAnalysis entity.
func (_m *MaterialAnalysis) QueryTask() *TaskQuery {
	return NewMaterialAnalysisClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this MaterialAnalysis.
// Note that you need to call MaterialAnalysis.Unwrap() before calling this method if this MaterialAnalysis
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MaterialAnalysis) Update() *MaterialAnalysisUpdateOne {
	return NewMaterialAnalysisClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MaterialAnalysis entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MaterialAnalysis) Unwrap() *MaterialAnalysis {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MaterialAnalysis is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MaterialAnalysis) String() string {
	var builder strings.Builder
	builder.WriteString("MaterialAnalysis(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("media_item_id=")
	builder.WriteString(_m.MediaItemID)
	builder.WriteString(", ")
	builder.WriteString("original_url=")
	builder.WriteString(_m.OriginalURL)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("ai_description=")
	builder.WriteString(_m.AiDescription)
	builder.WriteString(", ")
	builder.WriteString("key_objects=")
	builder.WriteString(fmt.Sprintf("%v", _m.KeyObjects))
	builder.WriteString(", ")
	builder.WriteString("emotional_tone=")
	builder.WriteString(_m.EmotionalTone)
	builder.WriteString(", ")
	builder.WriteString("visual_style=")
	builder.WriteString(_m.VisualStyle)
	builder.WriteString(", ")
	builder.WriteString("quality_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.QualityScore))
	builder.WriteString(", ")
	builder.WriteString("quality_level=")
	builder.WriteString(_m.QualityLevel)
	builder.WriteString(", ")
	builder.WriteString("usage_suggestions=")
	builder.WriteString(fmt.Sprintf("%v", _m.UsageSuggestions))
	builder.WriteString(", ")
	builder.WriteString("keyframe_urls=")
	builder.WriteString(fmt.Sprintf("%v", _m.KeyframeUrls))
	builder.WriteString(", ")
	builder.WriteString("fps=")
	builder.WriteString(fmt.Sprintf("%v", _m.Fps))
	builder.WriteString(", ")
	builder.WriteString("width=")
	builder.WriteString(fmt.Sprintf("%v", _m.Width))
	builder.WriteString(", ")
	builder.WriteString("height=")
	builder.WriteString(fmt.Sprintf("%v", _m.Height))
	builder.WriteString(", ")
	builder.WriteString("duration=")
	builder.WriteString(fmt.Sprintf("%v", _m.Duration))
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

// MaterialAnalyses is a parsable slice of MaterialAnalysis.
type MaterialAnalyses []*MaterialAnalysis
