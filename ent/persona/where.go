// Code generated by ent, DO NOT EDIT.

package persona

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/textloom/textloom/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Persona {
	return predicate.Persona(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Persona {
	return predicate.Persona(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Persona {
	return predicate.Persona(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Persona {
	return predicate.Persona(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Persona {
	return predicate.Persona(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Persona {
	return predicate.Persona(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Persona {
	return predicate.Persona(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Persona {
	return predicate.Persona(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Persona {
	return predicate.Persona(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldName, v))
}

// PersonaType applies equality check predicate on the "persona_type" field. It's identical to PersonaTypeEQ.
func PersonaType(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldPersonaType, v))
}

// Style applies equality check predicate on the "style" field. It's identical to StyleEQ.
func Style(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldStyle, v))
}

// TargetAudience applies equality check predicate on the "target_audience" field. It's identical to TargetAudienceEQ.
func TargetAudience(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldTargetAudience, v))
}

// Tone applies equality check predicate on the "tone" field. It's identical to ToneEQ.
func Tone(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldTone, v))
}

// CustomPrompt applies equality check predicate on the "custom_prompt" field. It's identical to CustomPromptEQ.
func CustomPrompt(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldCustomPrompt, v))
}

// IsPreset applies equality check predicate on the "is_preset" field. It's identical to IsPresetEQ.
func IsPreset(v bool) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldIsPreset, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Persona {
	return predicate.Persona(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Persona {
	return predicate.Persona(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Persona {
	return predicate.Persona(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Persona {
	return predicate.Persona(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Persona {
	return predicate.Persona(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Persona {
	return predicate.Persona(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Persona {
	return predicate.Persona(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Persona {
	return predicate.Persona(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Persona {
	return predicate.Persona(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Persona {
	return predicate.Persona(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Persona {
	return predicate.Persona(sql.FieldContainsFold(FieldName, v))
}

// PersonaTypeEQ applies the EQ predicate on the "persona_type" field.
func PersonaTypeEQ(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldPersonaType, v))
}

// PersonaTypeNEQ applies the NEQ predicate on the "persona_type" field.
func PersonaTypeNEQ(v string) predicate.Persona {
	return predicate.Persona(sql.FieldNEQ(FieldPersonaType, v))
}

// PersonaTypeIn applies the In predicate on the "persona_type" field.
func PersonaTypeIn(vs ...string) predicate.Persona {
	return predicate.Persona(sql.FieldIn(FieldPersonaType, vs...))
}

// PersonaTypeNotIn applies the NotIn predicate on the "persona_type" field.
func PersonaTypeNotIn(vs ...string) predicate.Persona {
	return predicate.Persona(sql.FieldNotIn(FieldPersonaType, vs...))
}

// PersonaTypeGT applies the GT predicate on the "persona_type" field.
func PersonaTypeGT(v string) predicate.Persona {
	return predicate.Persona(sql.FieldGT(FieldPersonaType, v))
}

// PersonaTypeGTE applies the GTE predicate on the "persona_type" field.
func PersonaTypeGTE(v string) predicate.Persona {
	return predicate.Persona(sql.FieldGTE(FieldPersonaType, v))
}

// PersonaTypeLT applies the LT predicate on the "persona_type" field.
func PersonaTypeLT(v string) predicate.Persona {
	return predicate.Persona(sql.FieldLT(FieldPersonaType, v))
}

// PersonaTypeLTE applies the LTE predicate on the "persona_type" field.
func PersonaTypeLTE(v string) predicate.Persona {
	return predicate.Persona(sql.FieldLTE(FieldPersonaType, v))
}

// PersonaTypeContains applies the Contains predicate on the "persona_type" field.
func PersonaTypeContains(v string) predicate.Persona {
	return predicate.Persona(sql.FieldContains(FieldPersonaType, v))
}

// PersonaTypeHasPrefix applies the HasPrefix predicate on the "persona_type" field.
func PersonaTypeHasPrefix(v string) predicate.Persona {
	return predicate.Persona(sql.FieldHasPrefix(FieldPersonaType, v))
}

// PersonaTypeHasSuffix applies the HasSuffix predicate on the "persona_type" field.
func PersonaTypeHasSuffix(v string) predicate.Persona {
	return predicate.Persona(sql.FieldHasSuffix(FieldPersonaType, v))
}

// PersonaTypeIsNil applies the IsNil predicate on the "persona_type" field.
func PersonaTypeIsNil() predicate.Persona {
	return predicate.Persona(sql.FieldIsNull(FieldPersonaType))
}

// PersonaTypeNotNil applies the NotNil predicate on the "persona_type" field.
func PersonaTypeNotNil() predicate.Persona {
	return predicate.Persona(sql.FieldNotNull(FieldPersonaType))
}

// PersonaTypeEqualFold applies the EqualFold predicate on the "persona_type" field.
func PersonaTypeEqualFold(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEqualFold(FieldPersonaType, v))
}

// PersonaTypeContainsFold applies the ContainsFold predicate on the "persona_type" field.
func PersonaTypeContainsFold(v string) predicate.Persona {
	return predicate.Persona(sql.FieldContainsFold(FieldPersonaType, v))
}

// StyleEQ applies the EQ predicate on the "style" field.
func StyleEQ(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldStyle, v))
}

// StyleNEQ applies the NEQ predicate on the "style" field.
func StyleNEQ(v string) predicate.Persona {
	return predicate.Persona(sql.FieldNEQ(FieldStyle, v))
}

// StyleIn applies the In predicate on the "style" field.
func StyleIn(vs ...string) predicate.Persona {
	return predicate.Persona(sql.FieldIn(FieldStyle, vs...))
}

// StyleNotIn applies the NotIn predicate on the "style" field.
func StyleNotIn(vs ...string) predicate.Persona {
	return predicate.Persona(sql.FieldNotIn(FieldStyle, vs...))
}

// StyleGT applies the GT predicate on the "style" field.
func StyleGT(v string) predicate.Persona {
	return predicate.Persona(sql.FieldGT(FieldStyle, v))
}

// StyleGTE applies the GTE predicate on the "style" field.
func StyleGTE(v string) predicate.Persona {
	return predicate.Persona(sql.FieldGTE(FieldStyle, v))
}

// StyleLT applies the LT predicate on the "style" field.
func StyleLT(v string) predicate.Persona {
	return predicate.Persona(sql.FieldLT(FieldStyle, v))
}

// StyleLTE applies the LTE predicate on the "style" field.
func StyleLTE(v string) predicate.Persona {
	return predicate.Persona(sql.FieldLTE(FieldStyle, v))
}

// StyleContains applies the Contains predicate on the "style" field.
func StyleContains(v string) predicate.Persona {
	return predicate.Persona(sql.FieldContains(FieldStyle, v))
}

// StyleHasPrefix applies the HasPrefix predicate on the "style" field.
func StyleHasPrefix(v string) predicate.Persona {
	return predicate.Persona(sql.FieldHasPrefix(FieldStyle, v))
}

// StyleHasSuffix applies the HasSuffix predicate on the "style" field.
func StyleHasSuffix(v string) predicate.Persona {
	return predicate.Persona(sql.FieldHasSuffix(FieldStyle, v))
}

// StyleIsNil applies the IsNil predicate on the "style" field.
func StyleIsNil() predicate.Persona {
	return predicate.Persona(sql.FieldIsNull(FieldStyle))
}

// StyleNotNil applies the NotNil predicate on the "style" field.
func StyleNotNil() predicate.Persona {
	return predicate.Persona(sql.FieldNotNull(FieldStyle))
}

// StyleEqualFold applies the EqualFold predicate on the "style" field.
func StyleEqualFold(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEqualFold(FieldStyle, v))
}

// StyleContainsFold applies the ContainsFold predicate on the "style" field.
func StyleContainsFold(v string) predicate.Persona {
	return predicate.Persona(sql.FieldContainsFold(FieldStyle, v))
}

// TargetAudienceEQ applies the EQ predicate on the "target_audience" field.
func TargetAudienceEQ(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldTargetAudience, v))
}

// TargetAudienceNEQ applies the NEQ predicate on the "target_audience" field.
func TargetAudienceNEQ(v string) predicate.Persona {
	return predicate.Persona(sql.FieldNEQ(FieldTargetAudience, v))
}

// TargetAudienceIn applies the In predicate on the "target_audience" field.
func TargetAudienceIn(vs ...string) predicate.Persona {
	return predicate.Persona(sql.FieldIn(FieldTargetAudience, vs...))
}

// TargetAudienceNotIn applies the NotIn predicate on the "target_audience" field.
func TargetAudienceNotIn(vs ...string) predicate.Persona {
	return predicate.Persona(sql.FieldNotIn(FieldTargetAudience, vs...))
}

// TargetAudienceGT applies the GT predicate on the "target_audience" field.
func TargetAudienceGT(v string) predicate.Persona {
	return predicate.Persona(sql.FieldGT(FieldTargetAudience, v))
}

// TargetAudienceGTE applies the GTE predicate on the "target_audience" field.
func TargetAudienceGTE(v string) predicate.Persona {
	return predicate.Persona(sql.FieldGTE(FieldTargetAudience, v))
}

// TargetAudienceLT applies the LT predicate on the "target_audience" field.
func TargetAudienceLT(v string) predicate.Persona {
	return predicate.Persona(sql.FieldLT(FieldTargetAudience, v))
}

// TargetAudienceLTE applies the LTE predicate on the "target_audience" field.
func TargetAudienceLTE(v string) predicate.Persona {
	return predicate.Persona(sql.FieldLTE(FieldTargetAudience, v))
}

// TargetAudienceContains applies the Contains predicate on the "target_audience" field.
func TargetAudienceContains(v string) predicate.Persona {
	return predicate.Persona(sql.FieldContains(FieldTargetAudience, v))
}

// TargetAudienceHasPrefix applies the HasPrefix predicate on the "target_audience" field.
func TargetAudienceHasPrefix(v string) predicate.Persona {
	return predicate.Persona(sql.FieldHasPrefix(FieldTargetAudience, v))
}

// TargetAudienceHasSuffix applies the HasSuffix predicate on the "target_audience" field.
func TargetAudienceHasSuffix(v string) predicate.Persona {
	return predicate.Persona(sql.FieldHasSuffix(FieldTargetAudience, v))
}

// TargetAudienceIsNil applies the IsNil predicate on the "target_audience" field.
func TargetAudienceIsNil() predicate.Persona {
	return predicate.Persona(sql.FieldIsNull(FieldTargetAudience))
}

// TargetAudienceNotNil applies the NotNil predicate on the "target_audience" field.
func TargetAudienceNotNil() predicate.Persona {
	return predicate.Persona(sql.FieldNotNull(FieldTargetAudience))
}

// TargetAudienceEqualFold applies the EqualFold predicate on the "target_audience" field.
func TargetAudienceEqualFold(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEqualFold(FieldTargetAudience, v))
}

// TargetAudienceContainsFold applies the ContainsFold predicate on the "target_audience" field.
func TargetAudienceContainsFold(v string) predicate.Persona {
	return predicate.Persona(sql.FieldContainsFold(FieldTargetAudience, v))
}

// CharacteristicsIsNil applies the IsNil predicate on the "characteristics" field.
func CharacteristicsIsNil() predicate.Persona {
	return predicate.Persona(sql.FieldIsNull(FieldCharacteristics))
}

// CharacteristicsNotNil applies the NotNil predicate on the "characteristics" field.
func CharacteristicsNotNil() predicate.Persona {
	return predicate.Persona(sql.FieldNotNull(FieldCharacteristics))
}

// ToneEQ applies the EQ predicate on the "tone" field.
func ToneEQ(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldTone, v))
}

// ToneNEQ applies the NEQ predicate on the "tone" field.
func ToneNEQ(v string) predicate.Persona {
	return predicate.Persona(sql.FieldNEQ(FieldTone, v))
}

// ToneIn applies the In predicate on the "tone" field.
func ToneIn(vs ...string) predicate.Persona {
	return predicate.Persona(sql.FieldIn(FieldTone, vs...))
}

// ToneNotIn applies the NotIn predicate on the "tone" field.
func ToneNotIn(vs ...string) predicate.Persona {
	return predicate.Persona(sql.FieldNotIn(FieldTone, vs...))
}

// ToneGT applies the GT predicate on the "tone" field.
func ToneGT(v string) predicate.Persona {
	return predicate.Persona(sql.FieldGT(FieldTone, v))
}

// ToneGTE applies the GTE predicate on the "tone" field.
func ToneGTE(v string) predicate.Persona {
	return predicate.Persona(sql.FieldGTE(FieldTone, v))
}

// ToneLT applies the LT predicate on the "tone" field.
func ToneLT(v string) predicate.Persona {
	return predicate.Persona(sql.FieldLT(FieldTone, v))
}

// ToneLTE applies the LTE predicate on the "tone" field.
func ToneLTE(v string) predicate.Persona {
	return predicate.Persona(sql.FieldLTE(FieldTone, v))
}

// ToneContains applies the Contains predicate on the "tone" field.
func ToneContains(v string) predicate.Persona {
	return predicate.Persona(sql.FieldContains(FieldTone, v))
}

// ToneHasPrefix applies the HasPrefix predicate on the "tone" field.
func ToneHasPrefix(v string) predicate.Persona {
	return predicate.Persona(sql.FieldHasPrefix(FieldTone, v))
}

// ToneHasSuffix applies the HasSuffix predicate on the "tone" field.
func ToneHasSuffix(v string) predicate.Persona {
	return predicate.Persona(sql.FieldHasSuffix(FieldTone, v))
}

// ToneIsNil applies the IsNil predicate on the "tone" field.
func ToneIsNil() predicate.Persona {
	return predicate.Persona(sql.FieldIsNull(FieldTone))
}

// ToneNotNil applies the NotNil predicate on the "tone" field.
func ToneNotNil() predicate.Persona {
	return predicate.Persona(sql.FieldNotNull(FieldTone))
}

// ToneEqualFold applies the EqualFold predicate on the "tone" field.
func ToneEqualFold(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEqualFold(FieldTone, v))
}

// ToneContainsFold applies the ContainsFold predicate on the "tone" field.
func ToneContainsFold(v string) predicate.Persona {
	return predicate.Persona(sql.FieldContainsFold(FieldTone, v))
}

// KeywordsIsNil applies the IsNil predicate on the "keywords" field.
func KeywordsIsNil() predicate.Persona {
	return predicate.Persona(sql.FieldIsNull(FieldKeywords))
}

// KeywordsNotNil applies the NotNil predicate on the "keywords" field.
func KeywordsNotNil() predicate.Persona {
	return predicate.Persona(sql.FieldNotNull(FieldKeywords))
}

// CustomPromptEQ applies the EQ predicate on the "custom_prompt" field.
func CustomPromptEQ(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldCustomPrompt, v))
}

// CustomPromptNEQ applies the NEQ predicate on the "custom_prompt" field.
func CustomPromptNEQ(v string) predicate.Persona {
	return predicate.Persona(sql.FieldNEQ(FieldCustomPrompt, v))
}

// CustomPromptIn applies the In predicate on the "custom_prompt" field.
func CustomPromptIn(vs ...string) predicate.Persona {
	return predicate.Persona(sql.FieldIn(FieldCustomPrompt, vs...))
}

// CustomPromptNotIn applies the NotIn predicate on the "custom_prompt" field.
func CustomPromptNotIn(vs ...string) predicate.Persona {
	return predicate.Persona(sql.FieldNotIn(FieldCustomPrompt, vs...))
}

// CustomPromptGT applies the GT predicate on the "custom_prompt" field.
func CustomPromptGT(v string) predicate.Persona {
	return predicate.Persona(sql.FieldGT(FieldCustomPrompt, v))
}

// CustomPromptGTE applies the GTE predicate on the "custom_prompt" field.
func CustomPromptGTE(v string) predicate.Persona {
	return predicate.Persona(sql.FieldGTE(FieldCustomPrompt, v))
}

// CustomPromptLT applies the LT predicate on the "custom_prompt" field.
func CustomPromptLT(v string) predicate.Persona {
	return predicate.Persona(sql.FieldLT(FieldCustomPrompt, v))
}

// CustomPromptLTE applies the LTE predicate on the "custom_prompt" field.
func CustomPromptLTE(v string) predicate.Persona {
	return predicate.Persona(sql.FieldLTE(FieldCustomPrompt, v))
}

// CustomPromptContains applies the Contains predicate on the "custom_prompt" field.
func CustomPromptContains(v string) predicate.Persona {
	return predicate.Persona(sql.FieldContains(FieldCustomPrompt, v))
}

// CustomPromptHasPrefix applies the HasPrefix predicate on the "custom_prompt" field.
func CustomPromptHasPrefix(v string) predicate.Persona {
	return predicate.Persona(sql.FieldHasPrefix(FieldCustomPrompt, v))
}

// CustomPromptHasSuffix applies the HasSuffix predicate on the "custom_prompt" field.
func CustomPromptHasSuffix(v string) predicate.Persona {
	return predicate.Persona(sql.FieldHasSuffix(FieldCustomPrompt, v))
}

// CustomPromptIsNil applies the IsNil predicate on the "custom_prompt" field.
func CustomPromptIsNil() predicate.Persona {
	return predicate.Persona(sql.FieldIsNull(FieldCustomPrompt))
}

// CustomPromptNotNil applies the NotNil predicate on the "custom_prompt" field.
func CustomPromptNotNil() predicate.Persona {
	return predicate.Persona(sql.FieldNotNull(FieldCustomPrompt))
}

// CustomPromptEqualFold applies the EqualFold predicate on the "custom_prompt" field.
func CustomPromptEqualFold(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEqualFold(FieldCustomPrompt, v))
}

// CustomPromptContainsFold applies the ContainsFold predicate on the "custom_prompt" field.
func CustomPromptContainsFold(v string) predicate.Persona {
	return predicate.Persona(sql.FieldContainsFold(FieldCustomPrompt, v))
}

// IsPresetEQ applies the EQ predicate on the "is_preset" field.
func IsPresetEQ(v bool) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldIsPreset, v))
}

// IsPresetNEQ applies the NEQ predicate on the "is_preset" field.
func IsPresetNEQ(v bool) predicate.Persona {
	return predicate.Persona(sql.FieldNEQ(FieldIsPreset, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Persona) predicate.Persona {
	return predicate.Persona(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Persona) predicate.Persona {
	return predicate.Persona(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Persona) predicate.Persona {
	return predicate.Persona(sql.NotPredicates(p))
}
