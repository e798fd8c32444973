// Code generated by ent, DO NOT EDIT.

package persona

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the persona type in the database.
	Label = "persona"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "persona_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPersonaType holds the string denoting the persona_type field in the database.
	FieldPersonaType = "persona_type"
	// FieldStyle holds the string denoting the style field in the database.
	FieldStyle = "style"
	// FieldTargetAudience holds the string denoting the target_audience field in the database.
	FieldTargetAudience = "target_audience"
	// FieldCharacteristics holds the string denoting the characteristics field in the database.
	FieldCharacteristics = "characteristics"
	// FieldTone holds the string denoting the tone field in the database.
	FieldTone = "tone"
	// FieldKeywords holds the string denoting the keywords field in the database.
	FieldKeywords = "keywords"
	// FieldCustomPrompt holds the string denoting the custom_prompt field in the database.
	FieldCustomPrompt = "custom_prompt"
	// FieldIsPreset holds the string denoting the is_preset field in the database.
	FieldIsPreset = "is_preset"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the persona in the database.
	Table = "personas"
)

// Columns holds all SQL columns for persona fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldPersonaType,
	FieldStyle,
	FieldTargetAudience,
	FieldCharacteristics,
	FieldTone,
	FieldKeywords,
	FieldCustomPrompt,
	FieldIsPreset,
	FieldCreatedAt,
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
	// DefaultIsPreset holds the default value on creation for the "is_preset" field.
	DefaultIsPreset bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Persona queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPersonaType orders the results by the persona_type field.
func ByPersonaType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersonaType, opts...).ToFunc()
}

// ByStyle orders the results by the style field.
func ByStyle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStyle, opts...).ToFunc()
}

// ByTargetAudience orders the results by the target_audience field.
func ByTargetAudience(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetAudience, opts...).ToFunc()
}

// ByTone orders the results by the tone field.
func ByTone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTone, opts...).ToFunc()
}

// ByCustomPrompt orders the results by the custom_prompt field.
func ByCustomPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomPrompt, opts...).ToFunc()
}

// ByIsPreset orders the results by the is_preset field.
func ByIsPreset(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsPreset, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
