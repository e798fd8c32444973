// Code generated by ent, DO NOT EDIT.

package materialanalysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/textloom/textloom/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldTaskID, v))
}

// MediaItemID applies equality check predicate on the "media_item_id" field. It's identical to MediaItemIDEQ.
func MediaItemID(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldMediaItemID, v))
}

// OriginalURL applies equality check predicate on the "original_url" field. It's identical to OriginalURLEQ.
func OriginalURL(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldOriginalURL, v))
}

// AiDescription applies equality check predicate on the "ai_description" field. It's identical to AiDescriptionEQ.
func AiDescription(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldAiDescription, v))
}

// EmotionalTone applies equality check predicate on the "emotional_tone" field. It's identical to EmotionalToneEQ.
func EmotionalTone(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldEmotionalTone, v))
}

// VisualStyle applies equality check predicate on the "visual_style" field. It's identical to VisualStyleEQ.
func VisualStyle(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldVisualStyle, v))
}

// QualityScore applies equality check predicate on the "quality_score" field. It's identical to QualityScoreEQ.
func QualityScore(v float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldQualityScore, v))
}

// QualityLevel applies equality check predicate on the "quality_level" field. It's identical to QualityLevelEQ.
func QualityLevel(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldQualityLevel, v))
}

// Fps applies equality check predicate on the "fps" field. It's identical to FpsEQ.
func Fps(v float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldFps, v))
}

// Width applies equality check predicate on the "width" field. It's identical to WidthEQ.
func Width(v int) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldWidth, v))
}

// Height applies equality check predicate on the "height" field. It's identical to HeightEQ.
func Height(v int) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldHeight, v))
}

// Duration applies equality check predicate on the "duration" field. It's identical to DurationEQ.
func Duration(v float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldDuration, v))
}

// RawResponse applies equality check predicate on the "raw_response" field. It's identical to RawResponseEQ.
func RawResponse(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldRawResponse, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldUpdatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldContainsFold(FieldTaskID, v))
}

// MediaItemIDEQ applies the EQ predicate on the "media_item_id" field.
func MediaItemIDEQ(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldMediaItemID, v))
}

// MediaItemIDNEQ applies the NEQ predicate on the "media_item_id" field.
func MediaItemIDNEQ(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNEQ(FieldMediaItemID, v))
}

// MediaItemIDIn applies the In predicate on the "media_item_id" field.
func MediaItemIDIn(vs ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIn(FieldMediaItemID, vs...))
}

// MediaItemIDNotIn applies the NotIn predicate on the "media_item_id" field.
func MediaItemIDNotIn(vs ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotIn(FieldMediaItemID, vs...))
}

// MediaItemIDGT applies the GT predicate on the "media_item_id" field.
func MediaItemIDGT(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGT(FieldMediaItemID, v))
}

// MediaItemIDGTE applies the GTE predicate on the "media_item_id" field.
func MediaItemIDGTE(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGTE(FieldMediaItemID, v))
}

// MediaItemIDLT applies the LT predicate on the "media_item_id" field.
func MediaItemIDLT(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLT(FieldMediaItemID, v))
}

// MediaItemIDLTE applies the LTE predicate on the "media_item_id" field.
func MediaItemIDLTE(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLTE(FieldMediaItemID, v))
}

// MediaItemIDContains applies the Contains predicate on the "media_item_id" field.
func MediaItemIDContains(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldContains(FieldMediaItemID, v))
}

// MediaItemIDHasPrefix applies the HasPrefix predicate on the "media_item_id" field.
func MediaItemIDHasPrefix(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldHasPrefix(FieldMediaItemID, v))
}

// MediaItemIDHasSuffix applies the HasSuffix predicate on the "media_item_id" field.
func MediaItemIDHasSuffix(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldHasSuffix(FieldMediaItemID, v))
}

// MediaItemIDEqualFold applies the EqualFold predicate on the "media_item_id" field.
func MediaItemIDEqualFold(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEqualFold(FieldMediaItemID, v))
}

// MediaItemIDContainsFold applies the ContainsFold predicate on the "media_item_id" field.
func MediaItemIDContainsFold(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldContainsFold(FieldMediaItemID, v))
}

// OriginalURLEQ applies the EQ predicate on the "original_url" field.
func OriginalURLEQ(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldOriginalURL, v))
}

// OriginalURLNEQ applies the NEQ predicate on the "original_url" field.
func OriginalURLNEQ(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNEQ(FieldOriginalURL, v))
}

// OriginalURLIn applies the In predicate on the "original_url" field.
func OriginalURLIn(vs ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIn(FieldOriginalURL, vs...))
}

// OriginalURLNotIn applies the NotIn predicate on the "original_url" field.
func OriginalURLNotIn(vs ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotIn(FieldOriginalURL, vs...))
}

// OriginalURLGT applies the GT predicate on the "original_url" field.
func OriginalURLGT(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGT(FieldOriginalURL, v))
}

// OriginalURLGTE applies the GTE predicate on the "original_url" field.
func OriginalURLGTE(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGTE(FieldOriginalURL, v))
}

// OriginalURLLT applies the LT predicate on the "original_url" field.
func OriginalURLLT(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLT(FieldOriginalURL, v))
}

// OriginalURLLTE applies the LTE predicate on the "original_url" field.
func OriginalURLLTE(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLTE(FieldOriginalURL, v))
}

// OriginalURLContains applies the Contains predicate on the "original_url" field.
func OriginalURLContains(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldContains(FieldOriginalURL, v))
}

// OriginalURLHasPrefix applies the HasPrefix predicate on the "original_url" field.
func OriginalURLHasPrefix(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldHasPrefix(FieldOriginalURL, v))
}

// OriginalURLHasSuffix applies the HasSuffix predicate on the "original_url" field.
func OriginalURLHasSuffix(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldHasSuffix(FieldOriginalURL, v))
}

// OriginalURLEqualFold applies the EqualFold predicate on the "original_url" field.
func OriginalURLEqualFold(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEqualFold(FieldOriginalURL, v))
}

// OriginalURLContainsFold applies the ContainsFold predicate on the "original_url" field.
func OriginalURLContainsFold(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldContainsFold(FieldOriginalURL, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotIn(FieldStatus, vs...))
}

// AiDescriptionEQ applies the EQ predicate on the "ai_description" field.
func AiDescriptionEQ(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldAiDescription, v))
}

// AiDescriptionNEQ applies the NEQ predicate on the "ai_description" field.
func AiDescriptionNEQ(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNEQ(FieldAiDescription, v))
}

// AiDescriptionIn applies the In predicate on the "ai_description" field.
func AiDescriptionIn(vs ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIn(FieldAiDescription, vs...))
}

// AiDescriptionNotIn applies the NotIn predicate on the "ai_description" field.
func AiDescriptionNotIn(vs ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotIn(FieldAiDescription, vs...))
}

// AiDescriptionGT applies the GT predicate on the "ai_description" field.
func AiDescriptionGT(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGT(FieldAiDescription, v))
}

// AiDescriptionGTE applies the GTE predicate on the "ai_description" field.
func AiDescriptionGTE(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGTE(FieldAiDescription, v))
}

// AiDescriptionLT applies the LT predicate on the "ai_description" field.
func AiDescriptionLT(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLT(FieldAiDescription, v))
}

// AiDescriptionLTE applies the LTE predicate on the "ai_description" field.
func AiDescriptionLTE(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLTE(FieldAiDescription, v))
}

// AiDescriptionContains applies the Contains predicate on the "ai_description" field.
func AiDescriptionContains(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldContains(FieldAiDescription, v))
}

// AiDescriptionHasPrefix applies the HasPrefix predicate on the "ai_description" field.
func AiDescriptionHasPrefix(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldHasPrefix(FieldAiDescription, v))
}

// AiDescriptionHasSuffix applies the HasSuffix predicate on the "ai_description" field.
func AiDescriptionHasSuffix(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldHasSuffix(FieldAiDescription, v))
}

// AiDescriptionIsNil applies the IsNil predicate on the "ai_description" field.
func AiDescriptionIsNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIsNull(FieldAiDescription))
}

// AiDescriptionNotNil applies the NotNil predicate on the "ai_description" field.
func AiDescriptionNotNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotNull(FieldAiDescription))
}

// AiDescriptionEqualFold applies the EqualFold predicate on the "ai_description" field.
func AiDescriptionEqualFold(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEqualFold(FieldAiDescription, v))
}

// AiDescriptionContainsFold applies the ContainsFold predicate on the "ai_description" field.
func AiDescriptionContainsFold(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldContainsFold(FieldAiDescription, v))
}

// KeyObjectsIsNil applies the IsNil predicate on the "key_objects" field.
func KeyObjectsIsNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIsNull(FieldKeyObjects))
}

// KeyObjectsNotNil applies the NotNil predicate on the "key_objects" field.
func KeyObjectsNotNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotNull(FieldKeyObjects))
}

// EmotionalToneEQ applies the EQ predicate on the "emotional_tone" field.
func EmotionalToneEQ(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldEmotionalTone, v))
}

// EmotionalToneNEQ applies the NEQ predicate on the "emotional_tone" field.
func EmotionalToneNEQ(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNEQ(FieldEmotionalTone, v))
}

// EmotionalToneIn applies the In predicate on the "emotional_tone" field.
func EmotionalToneIn(vs ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIn(FieldEmotionalTone, vs...))
}

// EmotionalToneNotIn applies the NotIn predicate on the "emotional_tone" field.
func EmotionalToneNotIn(vs ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotIn(FieldEmotionalTone, vs...))
}

// EmotionalToneGT applies the GT predicate on the "emotional_tone" field.
func EmotionalToneGT(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGT(FieldEmotionalTone, v))
}

// EmotionalToneGTE applies the GTE predicate on the "emotional_tone" field.
func EmotionalToneGTE(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGTE(FieldEmotionalTone, v))
}

// EmotionalToneLT applies the LT predicate on the "emotional_tone" field.
func EmotionalToneLT(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLT(FieldEmotionalTone, v))
}

// EmotionalToneLTE applies the LTE predicate on the "emotional_tone" field.
func EmotionalToneLTE(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLTE(FieldEmotionalTone, v))
}

// EmotionalToneContains applies the Contains predicate on the "emotional_tone" field.
func EmotionalToneContains(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldContains(FieldEmotionalTone, v))
}

// EmotionalToneHasPrefix applies the HasPrefix predicate on the "emotional_tone" field.
func EmotionalToneHasPrefix(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldHasPrefix(FieldEmotionalTone, v))
}

// EmotionalToneHasSuffix applies the HasSuffix predicate on the "emotional_tone" field.
func EmotionalToneHasSuffix(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldHasSuffix(FieldEmotionalTone, v))
}

// EmotionalToneIsNil applies the IsNil predicate on the "emotional_tone" field.
func EmotionalToneIsNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIsNull(FieldEmotionalTone))
}

// EmotionalToneNotNil applies the NotNil predicate on the "emotional_tone" field.
func EmotionalToneNotNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotNull(FieldEmotionalTone))
}

// EmotionalToneEqualFold applies the EqualFold predicate on the "emotional_tone" field.
func EmotionalToneEqualFold(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEqualFold(FieldEmotionalTone, v))
}

// EmotionalToneContainsFold applies the ContainsFold predicate on the "emotional_tone" field.
func EmotionalToneContainsFold(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldContainsFold(FieldEmotionalTone, v))
}

// VisualStyleEQ applies the EQ predicate on the "visual_style" field.
func VisualStyleEQ(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldVisualStyle, v))
}

// VisualStyleNEQ applies the NEQ predicate on the "visual_style" field.
func VisualStyleNEQ(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNEQ(FieldVisualStyle, v))
}

// VisualStyleIn applies the In predicate on the "visual_style" field.
func VisualStyleIn(vs ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIn(FieldVisualStyle, vs...))
}

// VisualStyleNotIn applies the NotIn predicate on the "visual_style" field.
func VisualStyleNotIn(vs ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotIn(FieldVisualStyle, vs...))
}

// VisualStyleGT applies the GT predicate on the "visual_style" field.
func VisualStyleGT(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGT(FieldVisualStyle, v))
}

// VisualStyleGTE applies the GTE predicate on the "visual_style" field.
func VisualStyleGTE(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGTE(FieldVisualStyle, v))
}

// VisualStyleLT applies the LT predicate on the "visual_style" field.
func VisualStyleLT(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLT(FieldVisualStyle, v))
}

// VisualStyleLTE applies the LTE predicate on the "visual_style" field.
func VisualStyleLTE(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLTE(FieldVisualStyle, v))
}

// VisualStyleContains applies the Contains predicate on the "visual_style" field.
func VisualStyleContains(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldContains(FieldVisualStyle, v))
}

// VisualStyleHasPrefix applies the HasPrefix predicate on the "visual_style" field.
func VisualStyleHasPrefix(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldHasPrefix(FieldVisualStyle, v))
}

// VisualStyleHasSuffix applies the HasSuffix predicate on the "visual_style" field.
func VisualStyleHasSuffix(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldHasSuffix(FieldVisualStyle, v))
}

// VisualStyleIsNil applies the IsNil predicate on the "visual_style" field.
func VisualStyleIsNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIsNull(FieldVisualStyle))
}

// VisualStyleNotNil applies the NotNil predicate on the "visual_style" field.
func VisualStyleNotNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotNull(FieldVisualStyle))
}

// VisualStyleEqualFold applies the EqualFold predicate on the "visual_style" field.
func VisualStyleEqualFold(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEqualFold(FieldVisualStyle, v))
}

// VisualStyleContainsFold applies the ContainsFold predicate on the "visual_style" field.
func VisualStyleContainsFold(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldContainsFold(FieldVisualStyle, v))
}

// QualityScoreEQ applies the EQ predicate on the "quality_score" field.
func QualityScoreEQ(v float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldQualityScore, v))
}

// QualityScoreNEQ applies the NEQ predicate on the "quality_score" field.
func QualityScoreNEQ(v float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNEQ(FieldQualityScore, v))
}

// QualityScoreIn applies the In predicate on the "quality_score" field.
func QualityScoreIn(vs ...float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIn(FieldQualityScore, vs...))
}

// QualityScoreNotIn applies the NotIn predicate on the "quality_score" field.
func QualityScoreNotIn(vs ...float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotIn(FieldQualityScore, vs...))
}

// QualityScoreGT applies the GT predicate on the "quality_score" field.
func QualityScoreGT(v float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGT(FieldQualityScore, v))
}

// QualityScoreGTE applies the GTE predicate on the "quality_score" field.
func QualityScoreGTE(v float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGTE(FieldQualityScore, v))
}

// QualityScoreLT applies the LT predicate on the "quality_score" field.
func QualityScoreLT(v float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLT(FieldQualityScore, v))
}

// QualityScoreLTE applies the LTE predicate on the "quality_score" field.
func QualityScoreLTE(v float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLTE(FieldQualityScore, v))
}

// QualityScoreIsNil applies the IsNil predicate on the "quality_score" field.
func QualityScoreIsNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIsNull(FieldQualityScore))
}

// QualityScoreNotNil applies the NotNil predicate on the "quality_score" field.
func QualityScoreNotNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotNull(FieldQualityScore))
}

// QualityLevelEQ applies the EQ predicate on the "quality_level" field.
func QualityLevelEQ(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldQualityLevel, v))
}

// QualityLevelNEQ applies the NEQ predicate on the "quality_level" field.
func QualityLevelNEQ(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNEQ(FieldQualityLevel, v))
}

// QualityLevelIn applies the In predicate on the "quality_level" field.
func QualityLevelIn(vs ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIn(FieldQualityLevel, vs...))
}

// QualityLevelNotIn applies the NotIn predicate on the "quality_level" field.
func QualityLevelNotIn(vs ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotIn(FieldQualityLevel, vs...))
}

// QualityLevelGT applies the GT predicate on the "quality_level" field.
func QualityLevelGT(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGT(FieldQualityLevel, v))
}

// QualityLevelGTE applies the GTE predicate on the "quality_level" field.
func QualityLevelGTE(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGTE(FieldQualityLevel, v))
}

// QualityLevelLT applies the LT predicate on the "quality_level" field.
func QualityLevelLT(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLT(FieldQualityLevel, v))
}

// QualityLevelLTE applies the LTE predicate on the "quality_level" field.
func QualityLevelLTE(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLTE(FieldQualityLevel, v))
}

// QualityLevelContains applies the Contains predicate on the "quality_level" field.
func QualityLevelContains(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldContains(FieldQualityLevel, v))
}

// QualityLevelHasPrefix applies the HasPrefix predicate on the "quality_level" field.
func QualityLevelHasPrefix(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldHasPrefix(FieldQualityLevel, v))
}

// QualityLevelHasSuffix applies the HasSuffix predicate on the "quality_level" field.
func QualityLevelHasSuffix(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldHasSuffix(FieldQualityLevel, v))
}

// QualityLevelIsNil applies the IsNil predicate on the "quality_level" field.
func QualityLevelIsNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIsNull(FieldQualityLevel))
}

// QualityLevelNotNil applies the NotNil predicate on the "quality_level" field.
func QualityLevelNotNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotNull(FieldQualityLevel))
}

// QualityLevelEqualFold applies the EqualFold predicate on the "quality_level" field.
func QualityLevelEqualFold(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEqualFold(FieldQualityLevel, v))
}

// QualityLevelContainsFold applies the ContainsFold predicate on the "quality_level" field.
func QualityLevelContainsFold(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldContainsFold(FieldQualityLevel, v))
}

// UsageSuggestionsIsNil applies the IsNil predicate on the "usage_suggestions" field.
func UsageSuggestionsIsNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIsNull(FieldUsageSuggestions))
}

// UsageSuggestionsNotNil applies the NotNil predicate on the "usage_suggestions" field.
func UsageSuggestionsNotNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotNull(FieldUsageSuggestions))
}

// KeyframeUrlsIsNil applies the IsNil predicate on the "keyframe_urls" field.
func KeyframeUrlsIsNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIsNull(FieldKeyframeUrls))
}

// KeyframeUrlsNotNil applies the NotNil predicate on the "keyframe_urls" field.
func KeyframeUrlsNotNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotNull(FieldKeyframeUrls))
}

// FpsEQ applies the EQ predicate on the "fps" field.
func FpsEQ(v float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldFps, v))
}

// FpsNEQ applies the NEQ predicate on the "fps" field.
func FpsNEQ(v float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNEQ(FieldFps, v))
}

// FpsIn applies the In predicate on the "fps" field.
func FpsIn(vs ...float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIn(FieldFps, vs...))
}

// FpsNotIn applies the NotIn predicate on the "fps" field.
func FpsNotIn(vs ...float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotIn(FieldFps, vs...))
}

// FpsGT applies the GT predicate on the "fps" field.
func FpsGT(v float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGT(FieldFps, v))
}

// FpsGTE applies the GTE predicate on the "fps" field.
func FpsGTE(v float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGTE(FieldFps, v))
}

// FpsLT applies the LT predicate on the "fps" field.
func FpsLT(v float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLT(FieldFps, v))
}

// FpsLTE applies the LTE predicate on the "fps" field.
func FpsLTE(v float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLTE(FieldFps, v))
}

// FpsIsNil applies the IsNil predicate on the "fps" field.
func FpsIsNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIsNull(FieldFps))
}

// FpsNotNil applies the NotNil predicate on the "fps" field.
func FpsNotNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotNull(FieldFps))
}

// WidthEQ applies the EQ predicate on the "width" field.
func WidthEQ(v int) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldWidth, v))
}

// WidthNEQ applies the NEQ predicate on the "width" field.
func WidthNEQ(v int) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNEQ(FieldWidth, v))
}

// WidthIn applies the In predicate on the "width" field.
func WidthIn(vs ...int) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIn(FieldWidth, vs...))
}

// WidthNotIn applies the NotIn predicate on the "width" field.
func WidthNotIn(vs ...int) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotIn(FieldWidth, vs...))
}

// WidthGT applies the GT predicate on the "width" field.
func WidthGT(v int) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGT(FieldWidth, v))
}

// WidthGTE applies the GTE predicate on the "width" field.
func WidthGTE(v int) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGTE(FieldWidth, v))
}

// WidthLT applies the LT predicate on the "width" field.
func WidthLT(v int) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLT(FieldWidth, v))
}

// WidthLTE applies the LTE predicate on the "width" field.
func WidthLTE(v int) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLTE(FieldWidth, v))
}

// WidthIsNil applies the IsNil predicate on the "width" field.
func WidthIsNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIsNull(FieldWidth))
}

// WidthNotNil applies the NotNil predicate on the "width" field.
func WidthNotNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotNull(FieldWidth))
}

// HeightEQ applies the EQ predicate on the "height" field.
func HeightEQ(v int) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldHeight, v))
}

// HeightNEQ applies the NEQ predicate on the "height" field.
func HeightNEQ(v int) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNEQ(FieldHeight, v))
}

// HeightIn applies the In predicate on the "height" field.
func HeightIn(vs ...int) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIn(FieldHeight, vs...))
}

// HeightNotIn applies the NotIn predicate on the "height" field.
func HeightNotIn(vs ...int) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotIn(FieldHeight, vs...))
}

// HeightGT applies the GT predicate on the "height" field.
func HeightGT(v int) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGT(FieldHeight, v))
}

// HeightGTE applies the GTE predicate on the "height" field.
func HeightGTE(v int) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGTE(FieldHeight, v))
}

// HeightLT applies the LT predicate on the "height" field.
func HeightLT(v int) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLT(FieldHeight, v))
}

// HeightLTE applies the LTE predicate on the "height" field.
func HeightLTE(v int) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLTE(FieldHeight, v))
}

// HeightIsNil applies the IsNil predicate on the "height" field.
func HeightIsNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIsNull(FieldHeight))
}

// HeightNotNil applies the NotNil predicate on the "height" field.
func HeightNotNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotNull(FieldHeight))
}

// DurationEQ applies the EQ predicate on the "duration" field.
func DurationEQ(v float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldDuration, v))
}

// DurationNEQ applies the NEQ predicate on the "duration" field.
func DurationNEQ(v float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNEQ(FieldDuration, v))
}

// DurationIn applies the In predicate on the "duration" field.
func DurationIn(vs ...float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIn(FieldDuration, vs...))
}

// DurationNotIn applies the NotIn predicate on the "duration" field.
func DurationNotIn(vs ...float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotIn(FieldDuration, vs...))
}

// DurationGT applies the GT predicate on the "duration" field.
func DurationGT(v float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGT(FieldDuration, v))
}

// DurationGTE applies the GTE predicate on the "duration" field.
func DurationGTE(v float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGTE(FieldDuration, v))
}

// DurationLT applies the LT predicate on the "duration" field.
func DurationLT(v float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLT(FieldDuration, v))
}

// DurationLTE applies the LTE predicate on the "duration" field.
func DurationLTE(v float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLTE(FieldDuration, v))
}

// DurationIsNil applies the IsNil predicate on the "duration" field.
func DurationIsNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIsNull(FieldDuration))
}

// DurationNotNil applies the NotNil predicate on the "duration" field.
func DurationNotNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotNull(FieldDuration))
}

// RawResponseEQ applies the EQ predicate on the "raw_response" field.
func RawResponseEQ(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldRawResponse, v))
}

// RawResponseNEQ applies the NEQ predicate on the "raw_response" field.
func RawResponseNEQ(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNEQ(FieldRawResponse, v))
}

// RawResponseIn applies the In predicate on the "raw_response" field.
func RawResponseIn(vs ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIn(FieldRawResponse, vs...))
}

// RawResponseNotIn applies the NotIn predicate on the "raw_response" field.
func RawResponseNotIn(vs ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotIn(FieldRawResponse, vs...))
}

// RawResponseGT applies the GT predicate on the "raw_response" field.
func RawResponseGT(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGT(FieldRawResponse, v))
}

// RawResponseGTE applies the GTE predicate on the "raw_response" field.
func RawResponseGTE(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGTE(FieldRawResponse, v))
}

// RawResponseLT applies the LT predicate on the "raw_response" field.
func RawResponseLT(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLT(FieldRawResponse, v))
}

// RawResponseLTE applies the LTE predicate on the "raw_response" field.
func RawResponseLTE(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLTE(FieldRawResponse, v))
}

// RawResponseContains applies the Contains predicate on the "raw_response" field.
func RawResponseContains(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldContains(FieldRawResponse, v))
}

// RawResponseHasPrefix applies the HasPrefix predicate on the "raw_response" field.
func RawResponseHasPrefix(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldHasPrefix(FieldRawResponse, v))
}

// RawResponseHasSuffix applies the HasSuffix predicate on the "raw_response" field.
func RawResponseHasSuffix(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldHasSuffix(FieldRawResponse, v))
}

// RawResponseIsNil applies the IsNil predicate on the "raw_response" field.
func RawResponseIsNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIsNull(FieldRawResponse))
}

// RawResponseNotNil applies the NotNil predicate on the "raw_response" field.
func RawResponseNotNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotNull(FieldRawResponse))
}

// RawResponseEqualFold applies the EqualFold predicate on the "raw_response" field.
func RawResponseEqualFold(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEqualFold(FieldRawResponse, v))
}

// RawResponseContainsFold applies the ContainsFold predicate on the "raw_response" field.
func RawResponseContainsFold(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldContainsFold(FieldRawResponse, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MaterialAnalysis) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MaterialAnalysis) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MaterialAnalysis) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.NotPredicates(p))
}
