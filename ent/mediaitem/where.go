// Code generated by ent, DO NOT EDIT.

package mediaitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/textloom/textloom/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldTaskID, v))
}

// OriginalURL applies equality check predicate on the "original_url" field. It's identical to OriginalURLEQ.
func OriginalURL(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldOriginalURL, v))
}

// CloudURL applies equality check predicate on the "cloud_url" field. It's identical to CloudURLEQ.
func CloudURL(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldCloudURL, v))
}

// LocalPath applies equality check predicate on the "local_path" field. It's identical to LocalPathEQ.
func LocalPath(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldLocalPath, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldFilename, v))
}

// MimeType applies equality check predicate on the "mime_type" field. It's identical to MimeTypeEQ.
func MimeType(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldMimeType, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int64) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldFileSize, v))
}

// Width applies equality check predicate on the "width" field. It's identical to WidthEQ.
func Width(v int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldWidth, v))
}

// Height applies equality check predicate on the "height" field. It's identical to HeightEQ.
func Height(v int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldHeight, v))
}

// Duration applies equality check predicate on the "duration" field. It's identical to DurationEQ.
func Duration(v float64) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldDuration, v))
}

// ContextBefore applies equality check predicate on the "context_before" field. It's identical to ContextBeforeEQ.
func ContextBefore(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldContextBefore, v))
}

// Caption applies equality check predicate on the "caption" field. It's identical to CaptionEQ.
func Caption(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldCaption, v))
}

// ContextAfter applies equality check predicate on the "context_after" field. It's identical to ContextAfterEQ.
func ContextAfter(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldContextAfter, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldPosition, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContainsFold(FieldTaskID, v))
}

// OriginalURLEQ applies the EQ predicate on the "original_url" field.
func OriginalURLEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldOriginalURL, v))
}

// OriginalURLNEQ applies the NEQ predicate on the "original_url" field.
func OriginalURLNEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNEQ(FieldOriginalURL, v))
}

// OriginalURLIn applies the In predicate on the "original_url" field.
func OriginalURLIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIn(FieldOriginalURL, vs...))
}

// OriginalURLNotIn applies the NotIn predicate on the "original_url" field.
func OriginalURLNotIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotIn(FieldOriginalURL, vs...))
}

// OriginalURLGT applies the GT predicate on the "original_url" field.
func OriginalURLGT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGT(FieldOriginalURL, v))
}

// OriginalURLGTE applies the GTE predicate on the "original_url" field.
func OriginalURLGTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGTE(FieldOriginalURL, v))
}

// OriginalURLLT applies the LT predicate on the "original_url" field.
func OriginalURLLT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLT(FieldOriginalURL, v))
}

// OriginalURLLTE applies the LTE predicate on the "original_url" field.
func OriginalURLLTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLTE(FieldOriginalURL, v))
}

// OriginalURLContains applies the Contains predicate on the "original_url" field.
func OriginalURLContains(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContains(FieldOriginalURL, v))
}

// OriginalURLHasPrefix applies the HasPrefix predicate on the "original_url" field.
func OriginalURLHasPrefix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasPrefix(FieldOriginalURL, v))
}

// OriginalURLHasSuffix applies the HasSuffix predicate on the "original_url" field.
func OriginalURLHasSuffix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasSuffix(FieldOriginalURL, v))
}

// OriginalURLEqualFold applies the EqualFold predicate on the "original_url" field.
func OriginalURLEqualFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEqualFold(FieldOriginalURL, v))
}

// OriginalURLContainsFold applies the ContainsFold predicate on the "original_url" field.
func OriginalURLContainsFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContainsFold(FieldOriginalURL, v))
}

// CloudURLEQ applies the EQ predicate on the "cloud_url" field.
func CloudURLEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldCloudURL, v))
}

// CloudURLNEQ applies the NEQ predicate on the "cloud_url" field.
func CloudURLNEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNEQ(FieldCloudURL, v))
}

// CloudURLIn applies the In predicate on the "cloud_url" field.
func CloudURLIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIn(FieldCloudURL, vs...))
}

// CloudURLNotIn applies the NotIn predicate on the "cloud_url" field.
func CloudURLNotIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotIn(FieldCloudURL, vs...))
}

// CloudURLGT applies the GT predicate on the "cloud_url" field.
func CloudURLGT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGT(FieldCloudURL, v))
}

// CloudURLGTE applies the GTE predicate on the "cloud_url" field.
func CloudURLGTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGTE(FieldCloudURL, v))
}

// CloudURLLT applies the LT predicate on the "cloud_url" field.
func CloudURLLT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLT(FieldCloudURL, v))
}

// CloudURLLTE applies the LTE predicate on the "cloud_url" field.
func CloudURLLTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLTE(FieldCloudURL, v))
}

// CloudURLContains applies the Contains predicate on the "cloud_url" field.
func CloudURLContains(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContains(FieldCloudURL, v))
}

// CloudURLHasPrefix applies the HasPrefix predicate on the "cloud_url" field.
func CloudURLHasPrefix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasPrefix(FieldCloudURL, v))
}

// CloudURLHasSuffix applies the HasSuffix predicate on the "cloud_url" field.
func CloudURLHasSuffix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasSuffix(FieldCloudURL, v))
}

// CloudURLIsNil applies the IsNil predicate on the "cloud_url" field.
func CloudURLIsNil() predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIsNull(FieldCloudURL))
}

// CloudURLNotNil applies the NotNil predicate on the "cloud_url" field.
func CloudURLNotNil() predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotNull(FieldCloudURL))
}

// CloudURLEqualFold applies the EqualFold predicate on the "cloud_url" field.
func CloudURLEqualFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEqualFold(FieldCloudURL, v))
}

// CloudURLContainsFold applies the ContainsFold predicate on the "cloud_url" field.
func CloudURLContainsFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContainsFold(FieldCloudURL, v))
}

// LocalPathEQ applies the EQ predicate on the "local_path" field.
func LocalPathEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldLocalPath, v))
}

// LocalPathNEQ applies the NEQ predicate on the "local_path" field.
func LocalPathNEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNEQ(FieldLocalPath, v))
}

// LocalPathIn applies the In predicate on the "local_path" field.
func LocalPathIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIn(FieldLocalPath, vs...))
}

// LocalPathNotIn applies the NotIn predicate on the "local_path" field.
func LocalPathNotIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotIn(FieldLocalPath, vs...))
}

// LocalPathGT applies the GT predicate on the "local_path" field.
func LocalPathGT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGT(FieldLocalPath, v))
}

// LocalPathGTE applies the GTE predicate on the "local_path" field.
func LocalPathGTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGTE(FieldLocalPath, v))
}

// LocalPathLT applies the LT predicate on the "local_path" field.
func LocalPathLT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLT(FieldLocalPath, v))
}

// LocalPathLTE applies the LTE predicate on the "local_path" field.
func LocalPathLTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLTE(FieldLocalPath, v))
}

// LocalPathContains applies the Contains predicate on the "local_path" field.
func LocalPathContains(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContains(FieldLocalPath, v))
}

// LocalPathHasPrefix applies the HasPrefix predicate on the "local_path" field.
func LocalPathHasPrefix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasPrefix(FieldLocalPath, v))
}

// LocalPathHasSuffix applies the HasSuffix predicate on the "local_path" field.
func LocalPathHasSuffix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasSuffix(FieldLocalPath, v))
}

// LocalPathIsNil applies the IsNil predicate on the "local_path" field.
func LocalPathIsNil() predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIsNull(FieldLocalPath))
}

// LocalPathNotNil applies the NotNil predicate on the "local_path" field.
func LocalPathNotNil() predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotNull(FieldLocalPath))
}

// LocalPathEqualFold applies the EqualFold predicate on the "local_path" field.
func LocalPathEqualFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEqualFold(FieldLocalPath, v))
}

// LocalPathContainsFold applies the ContainsFold predicate on the "local_path" field.
func LocalPathContainsFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContainsFold(FieldLocalPath, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameIsNil applies the IsNil predicate on the "filename" field.
func FilenameIsNil() predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIsNull(FieldFilename))
}

// FilenameNotNil applies the NotNil predicate on the "filename" field.
func FilenameNotNil() predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotNull(FieldFilename))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContainsFold(FieldFilename, v))
}

// MimeTypeEQ applies the EQ predicate on the "mime_type" field.
func MimeTypeEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldMimeType, v))
}

// MimeTypeNEQ applies the NEQ predicate on the "mime_type" field.
func MimeTypeNEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNEQ(FieldMimeType, v))
}

// MimeTypeIn applies the In predicate on the "mime_type" field.
func MimeTypeIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIn(FieldMimeType, vs...))
}

// MimeTypeNotIn applies the NotIn predicate on the "mime_type" field.
func MimeTypeNotIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotIn(FieldMimeType, vs...))
}

// MimeTypeGT applies the GT predicate on the "mime_type" field.
func MimeTypeGT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGT(FieldMimeType, v))
}

// MimeTypeGTE applies the GTE predicate on the "mime_type" field.
func MimeTypeGTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGTE(FieldMimeType, v))
}

// MimeTypeLT applies the LT predicate on the "mime_type" field.
func MimeTypeLT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLT(FieldMimeType, v))
}

// MimeTypeLTE applies the LTE predicate on the "mime_type" field.
func MimeTypeLTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLTE(FieldMimeType, v))
}

// MimeTypeContains applies the Contains predicate on the "mime_type" field.
func MimeTypeContains(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContains(FieldMimeType, v))
}

// MimeTypeHasPrefix applies the HasPrefix predicate on the "mime_type" field.
func MimeTypeHasPrefix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasPrefix(FieldMimeType, v))
}

// MimeTypeHasSuffix applies the HasSuffix predicate on the "mime_type" field.
func MimeTypeHasSuffix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasSuffix(FieldMimeType, v))
}

// MimeTypeIsNil applies the IsNil predicate on the "mime_type" field.
func MimeTypeIsNil() predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIsNull(FieldMimeType))
}

// MimeTypeNotNil applies the NotNil predicate on the "mime_type" field.
func MimeTypeNotNil() predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotNull(FieldMimeType))
}

// MimeTypeEqualFold applies the EqualFold predicate on the "mime_type" field.
func MimeTypeEqualFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEqualFold(FieldMimeType, v))
}

// MimeTypeContainsFold applies the ContainsFold predicate on the "mime_type" field.
func MimeTypeContainsFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContainsFold(FieldMimeType, v))
}

// MediaTypeEQ applies the EQ predicate on the "media_type" field.
func MediaTypeEQ(v MediaType) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldMediaType, v))
}

// MediaTypeNEQ applies the NEQ predicate on the "media_type" field.
func MediaTypeNEQ(v MediaType) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNEQ(FieldMediaType, v))
}

// MediaTypeIn applies the In predicate on the "media_type" field.
func MediaTypeIn(vs ...MediaType) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIn(FieldMediaType, vs...))
}

// MediaTypeNotIn applies the NotIn predicate on the "media_type" field.
func MediaTypeNotIn(vs ...MediaType) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotIn(FieldMediaType, vs...))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int64) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int64) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int64) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int64) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int64) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int64) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int64) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int64) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLTE(FieldFileSize, v))
}

// FileSizeIsNil applies the IsNil predicate on the "file_size" field.
func FileSizeIsNil() predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIsNull(FieldFileSize))
}

// FileSizeNotNil applies the NotNil predicate on the "file_size" field.
func FileSizeNotNil() predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotNull(FieldFileSize))
}

// WidthEQ applies the EQ predicate on the "width" field.
func WidthEQ(v int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldWidth, v))
}

// WidthNEQ applies the NEQ predicate on the "width" field.
func WidthNEQ(v int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNEQ(FieldWidth, v))
}

// WidthIn applies the In predicate on the "width" field.
func WidthIn(vs ...int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIn(FieldWidth, vs...))
}

// WidthNotIn applies the NotIn predicate on the "width" field.
func WidthNotIn(vs ...int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotIn(FieldWidth, vs...))
}

// WidthGT applies the GT predicate on the "width" field.
func WidthGT(v int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGT(FieldWidth, v))
}

// WidthGTE applies the GTE predicate on the "width" field.
func WidthGTE(v int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGTE(FieldWidth, v))
}

// WidthLT applies the LT predicate on the "width" field.
func WidthLT(v int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLT(FieldWidth, v))
}

// WidthLTE applies the LTE predicate on the "width" field.
func WidthLTE(v int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLTE(FieldWidth, v))
}

// WidthIsNil applies the IsNil predicate on the "width" field.
func WidthIsNil() predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIsNull(FieldWidth))
}

// WidthNotNil applies the NotNil predicate on the "width" field.
func WidthNotNil() predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotNull(FieldWidth))
}

// HeightEQ applies the EQ predicate on the "height" field.
func HeightEQ(v int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldHeight, v))
}

// HeightNEQ applies the NEQ predicate on the "height" field.
func HeightNEQ(v int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNEQ(FieldHeight, v))
}

// HeightIn applies the In predicate on the "height" field.
func HeightIn(vs ...int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIn(FieldHeight, vs...))
}

// HeightNotIn applies the NotIn predicate on the "height" field.
func HeightNotIn(vs ...int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotIn(FieldHeight, vs...))
}

// HeightGT applies the GT predicate on the "height" field.
func HeightGT(v int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGT(FieldHeight, v))
}

// HeightGTE applies the GTE predicate on the "height" field.
func HeightGTE(v int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGTE(FieldHeight, v))
}

// HeightLT applies the LT predicate on the "height" field.
func HeightLT(v int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLT(FieldHeight, v))
}

// HeightLTE applies the LTE predicate on the "height" field.
func HeightLTE(v int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLTE(FieldHeight, v))
}

// HeightIsNil applies the IsNil predicate on the "height" field.
func HeightIsNil() predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIsNull(FieldHeight))
}

// HeightNotNil applies the NotNil predicate on the "height" field.
func HeightNotNil() predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotNull(FieldHeight))
}

// DurationEQ applies the EQ predicate on the "duration" field.
func DurationEQ(v float64) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldDuration, v))
}

// DurationNEQ applies the NEQ predicate on the "duration" field.
func DurationNEQ(v float64) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNEQ(FieldDuration, v))
}

// DurationIn applies the In predicate on the "duration" field.
func DurationIn(vs ...float64) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIn(FieldDuration, vs...))
}

// DurationNotIn applies the NotIn predicate on the "duration" field.
func DurationNotIn(vs ...float64) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotIn(FieldDuration, vs...))
}

// DurationGT applies the GT predicate on the "duration" field.
func DurationGT(v float64) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGT(FieldDuration, v))
}

// DurationGTE applies the GTE predicate on the "duration" field.
func DurationGTE(v float64) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGTE(FieldDuration, v))
}

// DurationLT applies the LT predicate on the "duration" field.
func DurationLT(v float64) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLT(FieldDuration, v))
}

// DurationLTE applies the LTE predicate on the "duration" field.
func DurationLTE(v float64) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLTE(FieldDuration, v))
}

// DurationIsNil applies the IsNil predicate on the "duration" field.
func DurationIsNil() predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIsNull(FieldDuration))
}

// DurationNotNil applies the NotNil predicate on the "duration" field.
func DurationNotNil() predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotNull(FieldDuration))
}

// ContextBeforeEQ applies the EQ predicate on the "context_before" field.
func ContextBeforeEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldContextBefore, v))
}

// ContextBeforeNEQ applies the NEQ predicate on the "context_before" field.
func ContextBeforeNEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNEQ(FieldContextBefore, v))
}

// ContextBeforeIn applies the In predicate on the "context_before" field.
func ContextBeforeIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIn(FieldContextBefore, vs...))
}

// ContextBeforeNotIn applies the NotIn predicate on the "context_before" field.
func ContextBeforeNotIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotIn(FieldContextBefore, vs...))
}

// ContextBeforeGT applies the GT predicate on the "context_before" field.
func ContextBeforeGT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGT(FieldContextBefore, v))
}

// ContextBeforeGTE applies the GTE predicate on the "context_before" field.
func ContextBeforeGTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGTE(FieldContextBefore, v))
}

// ContextBeforeLT applies the LT predicate on the "context_before" field.
func ContextBeforeLT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLT(FieldContextBefore, v))
}

// ContextBeforeLTE applies the LTE predicate on the "context_before" field.
func ContextBeforeLTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLTE(FieldContextBefore, v))
}

// ContextBeforeContains applies the Contains predicate on the "context_before" field.
func ContextBeforeContains(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContains(FieldContextBefore, v))
}

// ContextBeforeHasPrefix applies the HasPrefix predicate on the "context_before" field.
func ContextBeforeHasPrefix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasPrefix(FieldContextBefore, v))
}

// ContextBeforeHasSuffix applies the HasSuffix predicate on the "context_before" field.
func ContextBeforeHasSuffix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasSuffix(FieldContextBefore, v))
}

// ContextBeforeIsNil applies the IsNil predicate on the "context_before" field.
func ContextBeforeIsNil() predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIsNull(FieldContextBefore))
}

// ContextBeforeNotNil applies the NotNil predicate on the "context_before" field.
func ContextBeforeNotNil() predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotNull(FieldContextBefore))
}

// ContextBeforeEqualFold applies the EqualFold predicate on the "context_before" field.
func ContextBeforeEqualFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEqualFold(FieldContextBefore, v))
}

// ContextBeforeContainsFold applies the ContainsFold predicate on the "context_before" field.
func ContextBeforeContainsFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContainsFold(FieldContextBefore, v))
}

// CaptionEQ applies the EQ predicate on the "caption" field.
func CaptionEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldCaption, v))
}

// CaptionNEQ applies the NEQ predicate on the "caption" field.
func CaptionNEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNEQ(FieldCaption, v))
}

// CaptionIn applies the In predicate on the "caption" field.
func CaptionIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIn(FieldCaption, vs...))
}

// CaptionNotIn applies the NotIn predicate on the "caption" field.
func CaptionNotIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotIn(FieldCaption, vs...))
}

// CaptionGT applies the GT predicate on the "caption" field.
func CaptionGT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGT(FieldCaption, v))
}

// CaptionGTE applies the GTE predicate on the "caption" field.
func CaptionGTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGTE(FieldCaption, v))
}

// CaptionLT applies the LT predicate on the "caption" field.
func CaptionLT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLT(FieldCaption, v))
}

// CaptionLTE applies the LTE predicate on the "caption" field.
func CaptionLTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLTE(FieldCaption, v))
}

// CaptionContains applies the Contains predicate on the "caption" field.
func CaptionContains(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContains(FieldCaption, v))
}

// CaptionHasPrefix applies the HasPrefix predicate on the "caption" field.
func CaptionHasPrefix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasPrefix(FieldCaption, v))
}

// CaptionHasSuffix applies the HasSuffix predicate on the "caption" field.
func CaptionHasSuffix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasSuffix(FieldCaption, v))
}

// CaptionIsNil applies the IsNil predicate on the "caption" field.
func CaptionIsNil() predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIsNull(FieldCaption))
}

// CaptionNotNil applies the NotNil predicate on the "caption" field.
func CaptionNotNil() predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotNull(FieldCaption))
}

// CaptionEqualFold applies the EqualFold predicate on the "caption" field.
func CaptionEqualFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEqualFold(FieldCaption, v))
}

// CaptionContainsFold applies the ContainsFold predicate on the "caption" field.
func CaptionContainsFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContainsFold(FieldCaption, v))
}

// ContextAfterEQ applies the EQ predicate on the "context_after" field.
func ContextAfterEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldContextAfter, v))
}

// ContextAfterNEQ applies the NEQ predicate on the "context_after" field.
func ContextAfterNEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNEQ(FieldContextAfter, v))
}

// ContextAfterIn applies the In predicate on the "context_after" field.
func ContextAfterIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIn(FieldContextAfter, vs...))
}

// ContextAfterNotIn applies the NotIn predicate on the "context_after" field.
func ContextAfterNotIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotIn(FieldContextAfter, vs...))
}

// ContextAfterGT applies the GT predicate on the "context_after" field.
func ContextAfterGT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGT(FieldContextAfter, v))
}

// ContextAfterGTE applies the GTE predicate on the "context_after" field.
func ContextAfterGTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGTE(FieldContextAfter, v))
}

// ContextAfterLT applies the LT predicate on the "context_after" field.
func ContextAfterLT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLT(FieldContextAfter, v))
}

// ContextAfterLTE applies the LTE predicate on the "context_after" field.
func ContextAfterLTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLTE(FieldContextAfter, v))
}

// ContextAfterContains applies the Contains predicate on the "context_after" field.
func ContextAfterContains(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContains(FieldContextAfter, v))
}

// ContextAfterHasPrefix applies the HasPrefix predicate on the "context_after" field.
func ContextAfterHasPrefix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasPrefix(FieldContextAfter, v))
}

// ContextAfterHasSuffix applies the HasSuffix predicate on the "context_after" field.
func ContextAfterHasSuffix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasSuffix(FieldContextAfter, v))
}

// ContextAfterIsNil applies the IsNil predicate on the "context_after" field.
func ContextAfterIsNil() predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIsNull(FieldContextAfter))
}

// ContextAfterNotNil applies the NotNil predicate on the "context_after" field.
func ContextAfterNotNil() predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotNull(FieldContextAfter))
}

// ContextAfterEqualFold applies the EqualFold predicate on the "context_after" field.
func ContextAfterEqualFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEqualFold(FieldContextAfter, v))
}

// ContextAfterContainsFold applies the ContainsFold predicate on the "context_after" field.
func ContextAfterContainsFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContainsFold(FieldContextAfter, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLTE(FieldPosition, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.MediaItem {
	return predicate.MediaItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.MediaItem {
	return predicate.MediaItem(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MediaItem) predicate.MediaItem {
	return predicate.MediaItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MediaItem) predicate.MediaItem {
	return predicate.MediaItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MediaItem) predicate.MediaItem {
	return predicate.MediaItem(sql.NotPredicates(p))
}
