// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/textloom/textloom/ent/persona"
)

// Persona is the model entity for the Persona schema.
type Persona struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// PersonaType holds the value of the "persona_type" field.
	PersonaType string `json:"persona_type,omitempty"`
	// Style holds the value of the "style" field.
	Style string `json:"style,omitempty"`
	// TargetAudience holds the value of the "target_audience" field.
	TargetAudience string `json:"target_audience,omitempty"`
	// Characteristics holds the value of the "characteristics" field.
	Characteristics []string `json:"characteristics,omitempty"`
	// Tone holds the value of the "tone" field.
	Tone string `json:"tone,omitempty"`
	// Keywords holds the value of the "keywords" field.
	Keywords []string `json:"keywords,omitempty"`
	// Free-form fragment appended to the system prompt
	CustomPrompt string `json:"custom_prompt,omitempty"`
	// IsPreset holds the value of the "is_preset" field.
	IsPreset bool `json:"is_preset,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Persona) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case persona.FieldCharacteristics, persona.FieldKeywords:
			values[i] = new([]byte)
		case persona.FieldIsPreset:
			values[i] = new(sql.NullBool)
		case persona.FieldID, persona.FieldName, persona.FieldPersonaType, persona.FieldStyle, persona.FieldTargetAudience, persona.FieldTone, persona.FieldCustomPrompt:
			values[i] = new(sql.NullString)
		case persona.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Persona fields.
func (_m *Persona) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case persona.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case persona.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case persona.FieldPersonaType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field persona_type", values[i])
			} else if value.Valid {
				_m.PersonaType = value.String
			}
		case persona.FieldStyle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field style", values[i])
			} else if value.Valid {
				_m.Style = value.String
			}
		case persona.FieldTargetAudience:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_audience", values[i])
			} else if value.Valid {
				_m.TargetAudience = value.String
			}
		case persona.FieldCharacteristics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field characteristics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Characteristics); err != nil {
					return fmt.Errorf("unmarshal field characteristics: %w", err)
				}
			}
		case persona.FieldTone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tone", values[i])
			} else if value.Valid {
				_m.Tone = value.String
			}
		case persona.FieldKeywords:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field keywords", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Keywords); err != nil {
					return fmt.Errorf("unmarshal field keywords: %w", err)
				}
			}
		case persona.FieldCustomPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field custom_prompt", values[i])
			} else if value.Valid {
				_m.CustomPrompt = value.String
			}
		case persona.FieldIsPreset:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_preset", values[i])
			} else if value.Valid {
				_m.IsPreset = value.Bool
			}
		case persona.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Persona.
// This includes values selected through modifiers, order, etc.
func (_m *Persona) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Persona.
// Note that you need to call Persona.Unwrap() before calling this method if this Persona
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Persona) Update() *PersonaUpdateOne {
	return NewPersonaClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Persona entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Persona) Unwrap() *Persona {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Persona is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Persona) String() string {
	var builder strings.Builder
	builder.WriteString("Persona(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("persona_type=")
	builder.WriteString(_m.PersonaType)
	builder.WriteString(", ")
	builder.WriteString("style=")
	builder.WriteString(_m.Style)
	builder.WriteString(", ")
	builder.WriteString("target_audience=")
	builder.WriteString(_m.TargetAudience)
	builder.WriteString(", ")
	builder.WriteString("characteristics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Characteristics))
	builder.WriteString(", ")
	builder.WriteString("tone=")
	builder.WriteString(_m.Tone)
	builder.WriteString(", ")
	builder.WriteString("keywords=")
	builder.WriteString(fmt.Sprintf("%v", _m.Keywords))
	builder.WriteString(", ")
	builder.WriteString("custom_prompt=")
	builder.WriteString(_m.CustomPrompt)
	builder.WriteString(", ")
	builder.WriteString("is_preset=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPreset))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Personas is a parsable slice of Persona.
type Personas []*Persona
