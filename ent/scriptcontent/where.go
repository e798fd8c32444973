// Code generated by ent, DO NOT EDIT.

package scriptcontent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/textloom/textloom/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldTaskID, v))
}

// SubTaskID applies equality check predicate on the "sub_task_id" field. It's identical to SubTaskIDEQ.
func SubTaskID(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldSubTaskID, v))
}

// PersonaID applies equality check predicate on the "persona_id" field. It's identical to PersonaIDEQ.
func PersonaID(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldPersonaID, v))
}

// Style applies equality check predicate on the "style" field. It's identical to StyleEQ.
func Style(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldStyle, v))
}

// Narration applies equality check predicate on the "narration" field. It's identical to NarrationEQ.
func Narration(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldNarration, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldDescription, v))
}

// EstimatedDuration applies equality check predicate on the "estimated_duration" field. It's identical to EstimatedDurationEQ.
func EstimatedDuration(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldEstimatedDuration, v))
}

// WordCount applies equality check predicate on the "word_count" field. It's identical to WordCountEQ.
func WordCount(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldWordCount, v))
}

// MaterialCount applies equality check predicate on the "material_count" field. It's identical to MaterialCountEQ.
func MaterialCount(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldMaterialCount, v))
}

// RawPrompt applies equality check predicate on the "raw_prompt" field. It's identical to RawPromptEQ.
func RawPrompt(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldRawPrompt, v))
}

// RawResponse applies equality check predicate on the "raw_response" field. It's identical to RawResponseEQ.
func RawResponse(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldRawResponse, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldUpdatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldContainsFold(FieldTaskID, v))
}

// SubTaskIDEQ applies the EQ predicate on the "sub_task_id" field.
func SubTaskIDEQ(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldSubTaskID, v))
}

// SubTaskIDNEQ applies the NEQ predicate on the "sub_task_id" field.
func SubTaskIDNEQ(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNEQ(FieldSubTaskID, v))
}

// SubTaskIDIn applies the In predicate on the "sub_task_id" field.
func SubTaskIDIn(vs ...string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIn(FieldSubTaskID, vs...))
}

// SubTaskIDNotIn applies the NotIn predicate on the "sub_task_id" field.
func SubTaskIDNotIn(vs ...string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotIn(FieldSubTaskID, vs...))
}

// SubTaskIDGT applies the GT predicate on the "sub_task_id" field.
func SubTaskIDGT(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGT(FieldSubTaskID, v))
}

// SubTaskIDGTE applies the GTE predicate on the "sub_task_id" field.
func SubTaskIDGTE(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGTE(FieldSubTaskID, v))
}

// SubTaskIDLT applies the LT predicate on the "sub_task_id" field.
func SubTaskIDLT(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLT(FieldSubTaskID, v))
}

// SubTaskIDLTE applies the LTE predicate on the "sub_task_id" field.
func SubTaskIDLTE(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLTE(FieldSubTaskID, v))
}

// SubTaskIDContains applies the Contains predicate on the "sub_task_id" field.
func SubTaskIDContains(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldContains(FieldSubTaskID, v))
}

// SubTaskIDHasPrefix applies the HasPrefix predicate on the "sub_task_id" field.
func SubTaskIDHasPrefix(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldHasPrefix(FieldSubTaskID, v))
}

// SubTaskIDHasSuffix applies the HasSuffix predicate on the "sub_task_id" field.
func SubTaskIDHasSuffix(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldHasSuffix(FieldSubTaskID, v))
}

// SubTaskIDEqualFold applies the EqualFold predicate on the "sub_task_id" field.
func SubTaskIDEqualFold(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEqualFold(FieldSubTaskID, v))
}

// SubTaskIDContainsFold applies the ContainsFold predicate on the "sub_task_id" field.
func SubTaskIDContainsFold(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldContainsFold(FieldSubTaskID, v))
}

// PersonaIDEQ applies the EQ predicate on the "persona_id" field.
func PersonaIDEQ(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldPersonaID, v))
}

// PersonaIDNEQ applies the NEQ predicate on the "persona_id" field.
func PersonaIDNEQ(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNEQ(FieldPersonaID, v))
}

// PersonaIDIn applies the In predicate on the "persona_id" field.
func PersonaIDIn(vs ...string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIn(FieldPersonaID, vs...))
}

// PersonaIDNotIn applies the NotIn predicate on the "persona_id" field.
func PersonaIDNotIn(vs ...string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotIn(FieldPersonaID, vs...))
}

// PersonaIDGT applies the GT predicate on the "persona_id" field.
func PersonaIDGT(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGT(FieldPersonaID, v))
}

// PersonaIDGTE applies the GTE predicate on the "persona_id" field.
func PersonaIDGTE(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGTE(FieldPersonaID, v))
}

// PersonaIDLT applies the LT predicate on the "persona_id" field.
func PersonaIDLT(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLT(FieldPersonaID, v))
}

// PersonaIDLTE applies the LTE predicate on the "persona_id" field.
func PersonaIDLTE(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLTE(FieldPersonaID, v))
}

// PersonaIDContains applies the Contains predicate on the "persona_id" field.
func PersonaIDContains(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldContains(FieldPersonaID, v))
}

// PersonaIDHasPrefix applies the HasPrefix predicate on the "persona_id" field.
func PersonaIDHasPrefix(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldHasPrefix(FieldPersonaID, v))
}

// PersonaIDHasSuffix applies the HasSuffix predicate on the "persona_id" field.
func PersonaIDHasSuffix(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldHasSuffix(FieldPersonaID, v))
}

// PersonaIDIsNil applies the IsNil predicate on the "persona_id" field.
func PersonaIDIsNil() predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIsNull(FieldPersonaID))
}

// PersonaIDNotNil applies the NotNil predicate on the "persona_id" field.
func PersonaIDNotNil() predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotNull(FieldPersonaID))
}

// PersonaIDEqualFold applies the EqualFold predicate on the "persona_id" field.
func PersonaIDEqualFold(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEqualFold(FieldPersonaID, v))
}

// PersonaIDContainsFold applies the ContainsFold predicate on the "persona_id" field.
func PersonaIDContainsFold(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldContainsFold(FieldPersonaID, v))
}

// StyleEQ applies the EQ predicate on the "style" field.
func StyleEQ(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldStyle, v))
}

// StyleNEQ applies the NEQ predicate on the "style" field.
func StyleNEQ(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNEQ(FieldStyle, v))
}

// StyleIn applies the In predicate on the "style" field.
func StyleIn(vs ...string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIn(FieldStyle, vs...))
}

// StyleNotIn applies the NotIn predicate on the "style" field.
func StyleNotIn(vs ...string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotIn(FieldStyle, vs...))
}

// StyleGT applies the GT predicate on the "style" field.
func StyleGT(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGT(FieldStyle, v))
}

// StyleGTE applies the GTE predicate on the "style" field.
func StyleGTE(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGTE(FieldStyle, v))
}

// StyleLT applies the LT predicate on the "style" field.
func StyleLT(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLT(FieldStyle, v))
}

// StyleLTE applies the LTE predicate on the "style" field.
func StyleLTE(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLTE(FieldStyle, v))
}

// StyleContains applies the Contains predicate on the "style" field.
func StyleContains(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldContains(FieldStyle, v))
}

// StyleHasPrefix applies the HasPrefix predicate on the "style" field.
func StyleHasPrefix(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldHasPrefix(FieldStyle, v))
}

// StyleHasSuffix applies the HasSuffix predicate on the "style" field.
func StyleHasSuffix(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldHasSuffix(FieldStyle, v))
}

// StyleEqualFold applies the EqualFold predicate on the "style" field.
func StyleEqualFold(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEqualFold(FieldStyle, v))
}

// StyleContainsFold applies the ContainsFold predicate on the "style" field.
func StyleContainsFold(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldContainsFold(FieldStyle, v))
}

// GenerationStatusEQ applies the EQ predicate on the "generation_status" field.
func GenerationStatusEQ(v GenerationStatus) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldGenerationStatus, v))
}

// GenerationStatusNEQ applies the NEQ predicate on the "generation_status" field.
func GenerationStatusNEQ(v GenerationStatus) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNEQ(FieldGenerationStatus, v))
}

// GenerationStatusIn applies the In predicate on the "generation_status" field.
func GenerationStatusIn(vs ...GenerationStatus) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIn(FieldGenerationStatus, vs...))
}

// GenerationStatusNotIn applies the NotIn predicate on the "generation_status" field.
func GenerationStatusNotIn(vs ...GenerationStatus) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotIn(FieldGenerationStatus, vs...))
}

// TitlesIsNil applies the IsNil predicate on the "titles" field.
func TitlesIsNil() predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIsNull(FieldTitles))
}

// TitlesNotNil applies the NotNil predicate on the "titles" field.
func TitlesNotNil() predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotNull(FieldTitles))
}

// NarrationEQ applies the EQ predicate on the "narration" field.
func NarrationEQ(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldNarration, v))
}

// NarrationNEQ applies the NEQ predicate on the "narration" field.
func NarrationNEQ(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNEQ(FieldNarration, v))
}

// NarrationIn applies the In predicate on the "narration" field.
func NarrationIn(vs ...string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIn(FieldNarration, vs...))
}

// NarrationNotIn applies the NotIn predicate on the "narration" field.
func NarrationNotIn(vs ...string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotIn(FieldNarration, vs...))
}

// NarrationGT applies the GT predicate on the "narration" field.
func NarrationGT(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGT(FieldNarration, v))
}

// NarrationGTE applies the GTE predicate on the "narration" field.
func NarrationGTE(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGTE(FieldNarration, v))
}

// NarrationLT applies the LT predicate on the "narration" field.
func NarrationLT(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLT(FieldNarration, v))
}

// NarrationLTE applies the LTE predicate on the "narration" field.
func NarrationLTE(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLTE(FieldNarration, v))
}

// NarrationContains applies the Contains predicate on the "narration" field.
func NarrationContains(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldContains(FieldNarration, v))
}

// NarrationHasPrefix applies the HasPrefix predicate on the "narration" field.
func NarrationHasPrefix(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldHasPrefix(FieldNarration, v))
}

// NarrationHasSuffix applies the HasSuffix predicate on the "narration" field.
func NarrationHasSuffix(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldHasSuffix(FieldNarration, v))
}

// NarrationIsNil applies the IsNil predicate on the "narration" field.
func NarrationIsNil() predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIsNull(FieldNarration))
}

// NarrationNotNil applies the NotNil predicate on the "narration" field.
func NarrationNotNil() predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotNull(FieldNarration))
}

// NarrationEqualFold applies the EqualFold predicate on the "narration" field.
func NarrationEqualFold(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEqualFold(FieldNarration, v))
}

// NarrationContainsFold applies the ContainsFold predicate on the "narration" field.
func NarrationContainsFold(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldContainsFold(FieldNarration, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldContainsFold(FieldDescription, v))
}

// ScenesIsNil applies the IsNil predicate on the "scenes" field.
func ScenesIsNil() predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIsNull(FieldScenes))
}

// ScenesNotNil applies the NotNil predicate on the "scenes" field.
func ScenesNotNil() predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotNull(FieldScenes))
}

// MaterialMappingIsNil applies the IsNil predicate on the "material_mapping" field.
func MaterialMappingIsNil() predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIsNull(FieldMaterialMapping))
}

// MaterialMappingNotNil applies the NotNil predicate on the "material_mapping" field.
func MaterialMappingNotNil() predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotNull(FieldMaterialMapping))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotNull(FieldTags))
}

// EstimatedDurationEQ applies the EQ predicate on the "estimated_duration" field.
func EstimatedDurationEQ(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldEstimatedDuration, v))
}

// EstimatedDurationNEQ applies the NEQ predicate on the "estimated_duration" field.
func EstimatedDurationNEQ(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNEQ(FieldEstimatedDuration, v))
}

// EstimatedDurationIn applies the In predicate on the "estimated_duration" field.
func EstimatedDurationIn(vs ...int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIn(FieldEstimatedDuration, vs...))
}

// EstimatedDurationNotIn applies the NotIn predicate on the "estimated_duration" field.
func EstimatedDurationNotIn(vs ...int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotIn(FieldEstimatedDuration, vs...))
}

// EstimatedDurationGT applies the GT predicate on the "estimated_duration" field.
func EstimatedDurationGT(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGT(FieldEstimatedDuration, v))
}

// EstimatedDurationGTE applies the GTE predicate on the "estimated_duration" field.
func EstimatedDurationGTE(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGTE(FieldEstimatedDuration, v))
}

// EstimatedDurationLT applies the LT predicate on the "estimated_duration" field.
func EstimatedDurationLT(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLT(FieldEstimatedDuration, v))
}

// EstimatedDurationLTE applies the LTE predicate on the "estimated_duration" field.
func EstimatedDurationLTE(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLTE(FieldEstimatedDuration, v))
}

// WordCountEQ applies the EQ predicate on the "word_count" field.
func WordCountEQ(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldWordCount, v))
}

// WordCountNEQ applies the NEQ predicate on the "word_count" field.
func WordCountNEQ(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNEQ(FieldWordCount, v))
}

// WordCountIn applies the In predicate on the "word_count" field.
func WordCountIn(vs ...int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIn(FieldWordCount, vs...))
}

// WordCountNotIn applies the NotIn predicate on the "word_count" field.
func WordCountNotIn(vs ...int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotIn(FieldWordCount, vs...))
}

// WordCountGT applies the GT predicate on the "word_count" field.
func WordCountGT(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGT(FieldWordCount, v))
}

// WordCountGTE applies the GTE predicate on the "word_count" field.
func WordCountGTE(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGTE(FieldWordCount, v))
}

// WordCountLT applies the LT predicate on the "word_count" field.
func WordCountLT(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLT(FieldWordCount, v))
}

// WordCountLTE applies the LTE predicate on the "word_count" field.
func WordCountLTE(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLTE(FieldWordCount, v))
}

// MaterialCountEQ applies the EQ predicate on the "material_count" field.
func MaterialCountEQ(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldMaterialCount, v))
}

// MaterialCountNEQ applies the NEQ predicate on the "material_count" field.
func MaterialCountNEQ(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNEQ(FieldMaterialCount, v))
}

// MaterialCountIn applies the In predicate on the "material_count" field.
func MaterialCountIn(vs ...int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIn(FieldMaterialCount, vs...))
}

// MaterialCountNotIn applies the NotIn predicate on the "material_count" field.
func MaterialCountNotIn(vs ...int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotIn(FieldMaterialCount, vs...))
}

// MaterialCountGT applies the GT predicate on the "material_count" field.
func MaterialCountGT(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGT(FieldMaterialCount, v))
}

// MaterialCountGTE applies the GTE predicate on the "material_count" field.
func MaterialCountGTE(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGTE(FieldMaterialCount, v))
}

// MaterialCountLT applies the LT predicate on the "material_count" field.
func MaterialCountLT(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLT(FieldMaterialCount, v))
}

// MaterialCountLTE applies the LTE predicate on the "material_count" field.
func MaterialCountLTE(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLTE(FieldMaterialCount, v))
}

// RawPromptEQ applies the EQ predicate on the "raw_prompt" field.
func RawPromptEQ(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldRawPrompt, v))
}

// RawPromptNEQ applies the NEQ predicate on the "raw_prompt" field.
func RawPromptNEQ(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNEQ(FieldRawPrompt, v))
}

// RawPromptIn applies the In predicate on the "raw_prompt" field.
func RawPromptIn(vs ...string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIn(FieldRawPrompt, vs...))
}

// RawPromptNotIn applies the NotIn predicate on the "raw_prompt" field.
func RawPromptNotIn(vs ...string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotIn(FieldRawPrompt, vs...))
}

// RawPromptGT applies the GT predicate on the "raw_prompt" field.
func RawPromptGT(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGT(FieldRawPrompt, v))
}

// RawPromptGTE applies the GTE predicate on the "raw_prompt" field.
func RawPromptGTE(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGTE(FieldRawPrompt, v))
}

// RawPromptLT applies the LT predicate on the "raw_prompt" field.
func RawPromptLT(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLT(FieldRawPrompt, v))
}

// RawPromptLTE applies the LTE predicate on the "raw_prompt" field.
func RawPromptLTE(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLTE(FieldRawPrompt, v))
}

// RawPromptContains applies the Contains predicate on the "raw_prompt" field.
func RawPromptContains(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldContains(FieldRawPrompt, v))
}

// RawPromptHasPrefix applies the HasPrefix predicate on the "raw_prompt" field.
func RawPromptHasPrefix(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldHasPrefix(FieldRawPrompt, v))
}

// RawPromptHasSuffix applies the HasSuffix predicate on the "raw_prompt" field.
func RawPromptHasSuffix(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldHasSuffix(FieldRawPrompt, v))
}

// RawPromptIsNil applies the IsNil predicate on the "raw_prompt" field.
func RawPromptIsNil() predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIsNull(FieldRawPrompt))
}

// RawPromptNotNil applies the NotNil predicate on the "raw_prompt" field.
func RawPromptNotNil() predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotNull(FieldRawPrompt))
}

// RawPromptEqualFold applies the EqualFold predicate on the "raw_prompt" field.
func RawPromptEqualFold(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEqualFold(FieldRawPrompt, v))
}

// RawPromptContainsFold applies the ContainsFold predicate on the "raw_prompt" field.
func RawPromptContainsFold(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldContainsFold(FieldRawPrompt, v))
}

// RawResponseEQ applies the EQ predicate on the "raw_response" field.
func RawResponseEQ(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldRawResponse, v))
}

// RawResponseNEQ applies the NEQ predicate on the "raw_response" field.
func RawResponseNEQ(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNEQ(FieldRawResponse, v))
}

// RawResponseIn applies the In predicate on the "raw_response" field.
func RawResponseIn(vs ...string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIn(FieldRawResponse, vs...))
}

// RawResponseNotIn applies the NotIn predicate on the "raw_response" field.
func RawResponseNotIn(vs ...string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotIn(FieldRawResponse, vs...))
}

// RawResponseGT applies the GT predicate on the "raw_response" field.
func RawResponseGT(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGT(FieldRawResponse, v))
}

// RawResponseGTE applies the GTE predicate on the "raw_response" field.
func RawResponseGTE(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGTE(FieldRawResponse, v))
}

// RawResponseLT applies the LT predicate on the "raw_response" field.
func RawResponseLT(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLT(FieldRawResponse, v))
}

// RawResponseLTE applies the LTE predicate on the "raw_response" field.
func RawResponseLTE(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLTE(FieldRawResponse, v))
}

// RawResponseContains applies the Contains predicate on the "raw_response" field.
func RawResponseContains(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldContains(FieldRawResponse, v))
}

// RawResponseHasPrefix applies the HasPrefix predicate on the "raw_response" field.
func RawResponseHasPrefix(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldHasPrefix(FieldRawResponse, v))
}

// RawResponseHasSuffix applies the HasSuffix predicate on the "raw_response" field.
func RawResponseHasSuffix(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldHasSuffix(FieldRawResponse, v))
}

// RawResponseIsNil applies the IsNil predicate on the "raw_response" field.
func RawResponseIsNil() predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIsNull(FieldRawResponse))
}

// RawResponseNotNil applies the NotNil predicate on the "raw_response" field.
func RawResponseNotNil() predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotNull(FieldRawResponse))
}

// RawResponseEqualFold applies the EqualFold predicate on the "raw_response" field.
func RawResponseEqualFold(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEqualFold(FieldRawResponse, v))
}

// RawResponseContainsFold applies the ContainsFold predicate on the "raw_response" field.
func RawResponseContainsFold(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldContainsFold(FieldRawResponse, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.ScriptContent {
	return predicate.ScriptContent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.ScriptContent {
	return predicate.ScriptContent(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScriptContent) predicate.ScriptContent {
	return predicate.ScriptContent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScriptContent) predicate.ScriptContent {
	return predicate.ScriptContent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScriptContent) predicate.ScriptContent {
	return predicate.ScriptContent(sql.NotPredicates(p))
}
