// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/textloom/textloom/ent/materialanalysis"
	"github.com/textloom/textloom/ent/mediaitem"
	"github.com/textloom/textloom/ent/persona"
	"github.com/textloom/textloom/ent/predicate"
	"github.com/textloom/textloom/ent/prompttemplate"
	"github.com/textloom/textloom/ent/scriptcontent"
	"github.com/textloom/textloom/ent/subvideotask"
	"github.com/textloom/textloom/ent/task"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeMaterialAnalysis = "MaterialAnalysis"
	TypeMediaItem        = "MediaItem"
	TypePersona          = "Persona"
	TypePromptTemplate   = "PromptTemplate"
	TypeScriptContent    = "ScriptContent"
	TypeSubVideoTask     = "SubVideoTask"
	TypeTask             = "Task"
)

// MaterialAnalysisMutation represents an operation that mutates the MaterialAnalysis nodes in the graph.
type MaterialAnalysisMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	media_item_id           *string
	original_url            *string
	status                  *materialanalysis.Status
	ai_description          *string
	key_objects             *[]string
	appendkey_objects       []string
	emotional_tone          *string
	visual_style            *string
	quality_score           *float64
	addquality_score        *float64
	quality_level           *string
	usage_suggestions       *[]string
	appendusage_suggestions []string
	keyframe_urls           *[]string
	appendkeyframe_urls     []string
	fps                     *float64
	addfps                  *float64
	width                   *int
	addwidth                *int
	height                  *int
	addheight               *int
	duration                *float64
	addduration             *float64
	raw_response            *string
	error_message           *string
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	task                    *string
	clearedtask             bool
	done                    bool
	oldValue                func(context.Context) (*MaterialAnalysis, error)
	predicates              []predicate.MaterialAnalysis
}

var _ ent.Mutation = (*MaterialAnalysisMutation)(nil)

// materialanalysisOption allows management of the mutation configuration using functional options.
type materialanalysisOption func(*MaterialAnalysisMutation)

// newMaterialAnalysisMutation creates new mutation for the MaterialAnalysis entity.
func newMaterialAnalysisMutation(c config, op Op, opts ...materialanalysisOption) *MaterialAnalysisMutation {
	m := &MaterialAnalysisMutation{
		config:        c,
		op:            op,
		typ:           TypeMaterialAnalysis,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMaterialAnalysisID sets the ID field of the mutation.
func withMaterialAnalysisID(id string) materialanalysisOption {
	return func(m *MaterialAnalysisMutation) {
		var (
			err   error
			once  sync.Once
			value *MaterialAnalysis
		)
		m.oldValue = func(ctx context.Context) (*MaterialAnalysis, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MaterialAnalysis.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMaterialAnalysis sets the old MaterialAnalysis of the mutation.
func withMaterialAnalysis(node *MaterialAnalysis) materialanalysisOption {
	return func(m *MaterialAnalysisMutation) {
		m.oldValue = func(context.Context) (*MaterialAnalysis, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MaterialAnalysisMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MaterialAnalysisMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MaterialAnalysis entities.
func (m *MaterialAnalysisMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MaterialAnalysisMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MaterialAnalysisMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MaterialAnalysis.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *MaterialAnalysisMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *MaterialAnalysisMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the MaterialAnalysis entity.
// If the MaterialAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialAnalysisMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *MaterialAnalysisMutation) ResetTaskID() {
	m.task = nil
}

// SetMediaItemID sets the "media_item_id" field.
func (m *MaterialAnalysisMutation) SetMediaItemID(s string) {
	m.media_item_id = &s
}

// MediaItemID returns the value of the "media_item_id" field in the mutation.
func (m *MaterialAnalysisMutation) MediaItemID() (r string, exists bool) {
	v := m.media_item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMediaItemID returns the old "media_item_id" field's value of the MaterialAnalysis entity.
// If the MaterialAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialAnalysisMutation) OldMediaItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediaItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediaItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediaItemID: %w", err)
	}
	return oldValue.MediaItemID, nil
}

// ResetMediaItemID resets all changes to the "media_item_id" field.
func (m *MaterialAnalysisMutation) ResetMediaItemID() {
	m.media_item_id = nil
}

// SetOriginalURL sets the "original_url" field.
func (m *MaterialAnalysisMutation) SetOriginalURL(s string) {
	m.original_url = &s
}

// OriginalURL returns the value of the "original_url" field in the mutation.
func (m *MaterialAnalysisMutation) OriginalURL() (r string, exists bool) {
	v := m.original_url
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalURL returns the old "original_url" field's value of the MaterialAnalysis entity.
// If the MaterialAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialAnalysisMutation) OldOriginalURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalURL: %w", err)
	}
	return oldValue.OriginalURL, nil
}

// ResetOriginalURL resets all changes to the "original_url" field.
func (m *MaterialAnalysisMutation) ResetOriginalURL() {
	m.original_url = nil
}

// SetStatus sets the "status" field.
func (m *MaterialAnalysisMutation) SetStatus(value materialanalysis.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MaterialAnalysisMutation) Status() (r materialanalysis.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the MaterialAnalysis entity.
// If the MaterialAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialAnalysisMutation) OldStatus(ctx context.Context) (v materialanalysis.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MaterialAnalysisMutation) ResetStatus() {
	m.status = nil
}

// SetAiDescription sets the "ai_description" field.
func (m *MaterialAnalysisMutation) SetAiDescription(s string) {
	m.ai_description = &s
}

// AiDescription returns the value of the "ai_description" field in the mutation.
func (m *MaterialAnalysisMutation) AiDescription() (r string, exists bool) {
	v := m.ai_description
	if v == nil {
		return
	}
	return *v, true
}

// OldAiDescription returns the old "ai_description" field's value of the MaterialAnalysis entity.
// If the MaterialAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialAnalysisMutation) OldAiDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiDescription: %w", err)
	}
	return oldValue.AiDescription, nil
}

// ClearAiDescription clears the value of the "ai_description" field.
func (m *MaterialAnalysisMutation) ClearAiDescription() {
	m.ai_description = nil
	m.clearedFields[materialanalysis.FieldAiDescription] = struct{}{}
}

// AiDescriptionCleared returns if the "ai_description" field was cleared in this mutation.
func (m *MaterialAnalysisMutation) AiDescriptionCleared() bool {
	_, ok := m.clearedFields[materialanalysis.FieldAiDescription]
	return ok
}

// ResetAiDescription resets all changes to the "ai_description" field.
func (m *MaterialAnalysisMutation) ResetAiDescription() {
	m.ai_description = nil
	delete(m.clearedFields, materialanalysis.FieldAiDescription)
}

// SetKeyObjects sets the "key_objects" field.
func (m *MaterialAnalysisMutation) SetKeyObjects(s []string) {
	m.key_objects = &s
	m.appendkey_objects = nil
}

// KeyObjects returns the value of the "key_objects" field in the mutation.
func (m *MaterialAnalysisMutation) KeyObjects() (r []string, exists bool) {
	v := m.key_objects
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyObjects returns the old "key_objects" field's value of the MaterialAnalysis entity.
// If the MaterialAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialAnalysisMutation) OldKeyObjects(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyObjects is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyObjects requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyObjects: %w", err)
	}
	return oldValue.KeyObjects, nil
}

// AppendKeyObjects adds s to the "key_objects" field.
func (m *MaterialAnalysisMutation) AppendKeyObjects(s []string) {
	m.appendkey_objects = append(m.appendkey_objects, s...)
}

// AppendedKeyObjects returns the list of values that were appended to the "key_objects" field in this mutation.
func (m *MaterialAnalysisMutation) AppendedKeyObjects() ([]string, bool) {
	if len(m.appendkey_objects) == 0 {
		return nil, false
	}
	return m.appendkey_objects, true
}

// ClearKeyObjects clears the value of the "key_objects" field.
func (m *MaterialAnalysisMutation) ClearKeyObjects() {
	m.key_objects = nil
	m.appendkey_objects = nil
	m.clearedFields[materialanalysis.FieldKeyObjects] = struct{}{}
}

// KeyObjectsCleared returns if the "key_objects" field was cleared in this mutation.
func (m *MaterialAnalysisMutation) KeyObjectsCleared() bool {
	_, ok := m.clearedFields[materialanalysis.FieldKeyObjects]
	return ok
}

// ResetKeyObjects resets all changes to the "key_objects" field.
func (m *MaterialAnalysisMutation) ResetKeyObjects() {
	m.key_objects = nil
	m.appendkey_objects = nil
	delete(m.clearedFields, materialanalysis.FieldKeyObjects)
}

// SetEmotionalTone sets the "emotional_tone" field.
func (m *MaterialAnalysisMutation) SetEmotionalTone(s string) {
	m.emotional_tone = &s
}

// EmotionalTone returns the value of the "emotional_tone" field in the mutation.
func (m *MaterialAnalysisMutation) EmotionalTone() (r string, exists bool) {
	v := m.emotional_tone
	if v == nil {
		return
	}
	return *v, true
}

// OldEmotionalTone returns the old "emotional_tone" field's value of the MaterialAnalysis entity.
// If the MaterialAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialAnalysisMutation) OldEmotionalTone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmotionalTone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmotionalTone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmotionalTone: %w", err)
	}
	return oldValue.EmotionalTone, nil
}

// ClearEmotionalTone clears the value of the "emotional_tone" field.
func (m *MaterialAnalysisMutation) ClearEmotionalTone() {
	m.emotional_tone = nil
	m.clearedFields[materialanalysis.FieldEmotionalTone] = struct{}{}
}

// EmotionalToneCleared returns if the "emotional_tone" field was cleared in this mutation.
func (m *MaterialAnalysisMutation) EmotionalToneCleared() bool {
	_, ok := m.clearedFields[materialanalysis.FieldEmotionalTone]
	return ok
}

// ResetEmotionalTone resets all changes to the "emotional_tone" field.
func (m *MaterialAnalysisMutation) ResetEmotionalTone() {
	m.emotional_tone = nil
	delete(m.clearedFields, materialanalysis.FieldEmotionalTone)
}

// SetVisualStyle sets the "visual_style" field.
func (m *MaterialAnalysisMutation) SetVisualStyle(s string) {
	m.visual_style = &s
}

// VisualStyle returns the value of the "visual_style" field in the mutation.
func (m *MaterialAnalysisMutation) VisualStyle() (r string, exists bool) {
	v := m.visual_style
	if v == nil {
		return
	}
	return *v, true
}

// OldVisualStyle returns the old "visual_style" field's value of the MaterialAnalysis entity.
// If the MaterialAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialAnalysisMutation) OldVisualStyle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisualStyle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisualStyle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisualStyle: %w", err)
	}
	return oldValue.VisualStyle, nil
}

// ClearVisualStyle clears the value of the "visual_style" field.
func (m *MaterialAnalysisMutation) ClearVisualStyle() {
	m.visual_style = nil
	m.clearedFields[materialanalysis.FieldVisualStyle] = struct{}{}
}

// VisualStyleCleared returns if the "visual_style" field was cleared in this mutation.
func (m *MaterialAnalysisMutation) VisualStyleCleared() bool {
	_, ok := m.clearedFields[materialanalysis.FieldVisualStyle]
	return ok
}

// ResetVisualStyle resets all changes to the "visual_style" field.
func (m *MaterialAnalysisMutation) ResetVisualStyle() {
	m.visual_style = nil
	delete(m.clearedFields, materialanalysis.FieldVisualStyle)
}

// SetQualityScore sets the "quality_score" field.
func (m *MaterialAnalysisMutation) SetQualityScore(f float64) {
	m.quality_score = &f
	m.addquality_score = nil
}

// QualityScore returns the value of the "quality_score" field in the mutation.
func (m *MaterialAnalysisMutation) QualityScore() (r float64, exists bool) {
	v := m.quality_score
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityScore returns the old "quality_score" field's value of the MaterialAnalysis entity.
// If the MaterialAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialAnalysisMutation) OldQualityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityScore: %w", err)
	}
	return oldValue.QualityScore, nil
}

// AddQualityScore adds f to the "quality_score" field.
func (m *MaterialAnalysisMutation) AddQualityScore(f float64) {
	if m.addquality_score != nil {
		*m.addquality_score += f
	} else {
		m.addquality_score = &f
	}
}

// AddedQualityScore returns the value that was added to the "quality_score" field in this mutation.
func (m *MaterialAnalysisMutation) AddedQualityScore() (r float64, exists bool) {
	v := m.addquality_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearQualityScore clears the value of the "quality_score" field.
func (m *MaterialAnalysisMutation) ClearQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
	m.clearedFields[materialanalysis.FieldQualityScore] = struct{}{}
}

// QualityScoreCleared returns if the "quality_score" field was cleared in this mutation.
func (m *MaterialAnalysisMutation) QualityScoreCleared() bool {
	_, ok := m.clearedFields[materialanalysis.FieldQualityScore]
	return ok
}

// ResetQualityScore resets all changes to the "quality_score" field.
func (m *MaterialAnalysisMutation) ResetQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
	delete(m.clearedFields, materialanalysis.FieldQualityScore)
}

// SetQualityLevel sets the "quality_level" field.
func (m *MaterialAnalysisMutation) SetQualityLevel(s string) {
	m.quality_level = &s
}

// QualityLevel returns the value of the "quality_level" field in the mutation.
func (m *MaterialAnalysisMutation) QualityLevel() (r string, exists bool) {
	v := m.quality_level
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityLevel returns the old "quality_level" field's value of the MaterialAnalysis entity.
// If the MaterialAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialAnalysisMutation) OldQualityLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityLevel: %w", err)
	}
	return oldValue.QualityLevel, nil
}

// ClearQualityLevel clears the value of the "quality_level" field.
func (m *MaterialAnalysisMutation) ClearQualityLevel() {
	m.quality_level = nil
	m.clearedFields[materialanalysis.FieldQualityLevel] = struct{}{}
}

// QualityLevelCleared returns if the "quality_level" field was cleared in this mutation.
func (m *MaterialAnalysisMutation) QualityLevelCleared() bool {
	_, ok := m.clearedFields[materialanalysis.FieldQualityLevel]
	return ok
}

// ResetQualityLevel resets all changes to the "quality_level" field.
func (m *MaterialAnalysisMutation) ResetQualityLevel() {
	m.quality_level = nil
	delete(m.clearedFields, materialanalysis.FieldQualityLevel)
}

// SetUsageSuggestions sets the "usage_suggestions" field.
func (m *MaterialAnalysisMutation) SetUsageSuggestions(s []string) {
	m.usage_suggestions = &s
	m.appendusage_suggestions = nil
}

// UsageSuggestions returns the value of the "usage_suggestions" field in the mutation.
func (m *MaterialAnalysisMutation) UsageSuggestions() (r []string, exists bool) {
	v := m.usage_suggestions
	if v == nil {
		return
	}
	return *v, true
}

// OldUsageSuggestions returns the old "usage_suggestions" field's value of the MaterialAnalysis entity.
// If the MaterialAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialAnalysisMutation) OldUsageSuggestions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsageSuggestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsageSuggestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsageSuggestions: %w", err)
	}
	return oldValue.UsageSuggestions, nil
}

// AppendUsageSuggestions adds s to the "usage_suggestions" field.
func (m *MaterialAnalysisMutation) AppendUsageSuggestions(s []string) {
	m.appendusage_suggestions = append(m.appendusage_suggestions, s...)
}

// AppendedUsageSuggestions returns the list of values that were appended to the "usage_suggestions" field in this mutation.
func (m *MaterialAnalysisMutation) AppendedUsageSuggestions() ([]string, bool) {
	if len(m.appendusage_suggestions) == 0 {
		return nil, false
	}
	return m.appendusage_suggestions, true
}

// ClearUsageSuggestions clears the value of the "usage_suggestions" field.
func (m *MaterialAnalysisMutation) ClearUsageSuggestions() {
	m.usage_suggestions = nil
	m.appendusage_suggestions = nil
	m.clearedFields[materialanalysis.FieldUsageSuggestions] = struct{}{}
}

// UsageSuggestionsCleared returns if the "usage_suggestions" field was cleared in this mutation.
func (m *MaterialAnalysisMutation) UsageSuggestionsCleared() bool {
	_, ok := m.clearedFields[materialanalysis.FieldUsageSuggestions]
	return ok
}

// ResetUsageSuggestions resets all changes to the "usage_suggestions" field.
func (m *MaterialAnalysisMutation) ResetUsageSuggestions() {
	m.usage_suggestions = nil
	m.appendusage_suggestions = nil
	delete(m.clearedFields, materialanalysis.FieldUsageSuggestions)
}

// SetKeyframeUrls sets the "keyframe_urls" field.
func (m *MaterialAnalysisMutation) SetKeyframeUrls(s []string) {
	m.keyframe_urls = &s
	m.appendkeyframe_urls = nil
}

// KeyframeUrls returns the value of the "keyframe_urls" field in the mutation.
func (m *MaterialAnalysisMutation) KeyframeUrls() (r []string, exists bool) {
	v := m.keyframe_urls
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyframeUrls returns the old "keyframe_urls" field's value of the MaterialAnalysis entity.
// If the MaterialAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialAnalysisMutation) OldKeyframeUrls(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyframeUrls is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyframeUrls requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyframeUrls: %w", err)
	}
	return oldValue.KeyframeUrls, nil
}

// AppendKeyframeUrls adds s to the "keyframe_urls" field.
func (m *MaterialAnalysisMutation) AppendKeyframeUrls(s []string) {
	m.appendkeyframe_urls = append(m.appendkeyframe_urls, s...)
}

// AppendedKeyframeUrls returns the list of values that were appended to the "keyframe_urls" field in this mutation.
func (m *MaterialAnalysisMutation) AppendedKeyframeUrls() ([]string, bool) {
	if len(m.appendkeyframe_urls) == 0 {
		return nil, false
	}
	return m.appendkeyframe_urls, true
}

// ClearKeyframeUrls clears the value of the "keyframe_urls" field.
func (m *MaterialAnalysisMutation) ClearKeyframeUrls() {
	m.keyframe_urls = nil
	m.appendkeyframe_urls = nil
	m.clearedFields[materialanalysis.FieldKeyframeUrls] = struct{}{}
}

// KeyframeUrlsCleared returns if the "keyframe_urls" field was cleared in this mutation.
func (m *MaterialAnalysisMutation) KeyframeUrlsCleared() bool {
	_, ok := m.clearedFields[materialanalysis.FieldKeyframeUrls]
	return ok
}

// ResetKeyframeUrls resets all changes to the "keyframe_urls" field.
func (m *MaterialAnalysisMutation) ResetKeyframeUrls() {
	m.keyframe_urls = nil
	m.appendkeyframe_urls = nil
	delete(m.clearedFields, materialanalysis.FieldKeyframeUrls)
}

// SetFps sets the "fps" field.
func (m *MaterialAnalysisMutation) SetFps(f float64) {
	m.fps = &f
	m.addfps = nil
}

// Fps returns the value of the "fps" field in the mutation.
func (m *MaterialAnalysisMutation) Fps() (r float64, exists bool) {
	v := m.fps
	if v == nil {
		return
	}
	return *v, true
}

// OldFps returns the old "fps" field's value of the MaterialAnalysis entity.
// If the MaterialAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialAnalysisMutation) OldFps(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFps: %w", err)
	}
	return oldValue.Fps, nil
}

// AddFps adds f to the "fps" field.
func (m *MaterialAnalysisMutation) AddFps(f float64) {
	if m.addfps != nil {
		*m.addfps += f
	} else {
		m.addfps = &f
	}
}

// AddedFps returns the value that was added to the "fps" field in this mutation.
func (m *MaterialAnalysisMutation) AddedFps() (r float64, exists bool) {
	v := m.addfps
	if v == nil {
		return
	}
	return *v, true
}

// ClearFps clears the value of the "fps" field.
func (m *MaterialAnalysisMutation) ClearFps() {
	m.fps = nil
	m.addfps = nil
	m.clearedFields[materialanalysis.FieldFps] = struct{}{}
}

// FpsCleared returns if the "fps" field was cleared in this mutation.
func (m *MaterialAnalysisMutation) FpsCleared() bool {
	_, ok := m.clearedFields[materialanalysis.FieldFps]
	return ok
}

// ResetFps resets all changes to the "fps" field.
func (m *MaterialAnalysisMutation) ResetFps() {
	m.fps = nil
	m.addfps = nil
	delete(m.clearedFields, materialanalysis.FieldFps)
}

// SetWidth sets the "width" field.
func (m *MaterialAnalysisMutation) SetWidth(i int) {
	m.width = &i
	m.addwidth = nil
}

// Width returns the value of the "width" field in the mutation.
func (m *MaterialAnalysisMutation) Width() (r int, exists bool) {
	v := m.width
	if v == nil {
		return
	}
	return *v, true
}

// OldWidth returns the old "width" field's value of the MaterialAnalysis entity.
// If the MaterialAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialAnalysisMutation) OldWidth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWidth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWidth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWidth: %w", err)
	}
	return oldValue.Width, nil
}

// AddWidth adds i to the "width" field.
func (m *MaterialAnalysisMutation) AddWidth(i int) {
	if m.addwidth != nil {
		*m.addwidth += i
	} else {
		m.addwidth = &i
	}
}

// AddedWidth returns the value that was added to the "width" field in this mutation.
func (m *MaterialAnalysisMutation) AddedWidth() (r int, exists bool) {
	v := m.addwidth
	if v == nil {
		return
	}
	return *v, true
}

// ClearWidth clears the value of the "width" field.
func (m *MaterialAnalysisMutation) ClearWidth() {
	m.width = nil
	m.addwidth = nil
	m.clearedFields[materialanalysis.FieldWidth] = struct{}{}
}

// WidthCleared returns if the "width" field was cleared in this mutation.
func (m *MaterialAnalysisMutation) WidthCleared() bool {
	_, ok := m.clearedFields[materialanalysis.FieldWidth]
	return ok
}

// ResetWidth resets all changes to the "width" field.
func (m *MaterialAnalysisMutation) ResetWidth() {
	m.width = nil
	m.addwidth = nil
	delete(m.clearedFields, materialanalysis.FieldWidth)
}

// SetHeight sets the "height" field.
func (m *MaterialAnalysisMutation) SetHeight(i int) {
	m.height = &i
	m.addheight = nil
}

// Height returns the value of the "height" field in the mutation.
func (m *MaterialAnalysisMutation) Height() (r int, exists bool) {
	v := m.height
	if v == nil {
		return
	}
	return *v, true
}

// OldHeight returns the old "height" field's value of the MaterialAnalysis entity.
// If the MaterialAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialAnalysisMutation) OldHeight(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeight: %w", err)
	}
	return oldValue.Height, nil
}

// AddHeight adds i to the "height" field.
func (m *MaterialAnalysisMutation) AddHeight(i int) {
	if m.addheight != nil {
		*m.addheight += i
	} else {
		m.addheight = &i
	}
}

// AddedHeight returns the value that was added to the "height" field in this mutation.
func (m *MaterialAnalysisMutation) AddedHeight() (r int, exists bool) {
	v := m.addheight
	if v == nil {
		return
	}
	return *v, true
}

// ClearHeight clears the value of the "height" field.
func (m *MaterialAnalysisMutation) ClearHeight() {
	m.height = nil
	m.addheight = nil
	m.clearedFields[materialanalysis.FieldHeight] = struct{}{}
}

// HeightCleared returns if the "height" field was cleared in this mutation.
func (m *MaterialAnalysisMutation) HeightCleared() bool {
	_, ok := m.clearedFields[materialanalysis.FieldHeight]
	return ok
}

// ResetHeight resets all changes to the "height" field.
func (m *MaterialAnalysisMutation) ResetHeight() {
	m.height = nil
	m.addheight = nil
	delete(m.clearedFields, materialanalysis.FieldHeight)
}

// SetDuration sets the "duration" field.
func (m *MaterialAnalysisMutation) SetDuration(f float64) {
	m.duration = &f
	m.addduration = nil
}

// Duration returns the value of the "duration" field in the mutation.
func (m *MaterialAnalysisMutation) Duration() (r float64, exists bool) {
	v := m.duration
	if v == nil {
		return
	}
	return *v, true
}

// OldDuration returns the old "duration" field's value of the MaterialAnalysis entity.
// If the MaterialAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialAnalysisMutation) OldDuration(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuration: %w", err)
	}
	return oldValue.Duration, nil
}

// AddDuration adds f to the "duration" field.
func (m *MaterialAnalysisMutation) AddDuration(f float64) {
	if m.addduration != nil {
		*m.addduration += f
	} else {
		m.addduration = &f
	}
}

// AddedDuration returns the value that was added to the "duration" field in this mutation.
func (m *MaterialAnalysisMutation) AddedDuration() (r float64, exists bool) {
	v := m.addduration
	if v == nil {
		return
	}
	return *v, true
}

// ClearDuration clears the value of the "duration" field.
func (m *MaterialAnalysisMutation) ClearDuration() {
	m.duration = nil
	m.addduration = nil
	m.clearedFields[materialanalysis.FieldDuration] = struct{}{}
}

// DurationCleared returns if the "duration" field was cleared in this mutation.
func (m *MaterialAnalysisMutation) DurationCleared() bool {
	_, ok := m.clearedFields[materialanalysis.FieldDuration]
	return ok
}

// ResetDuration resets all changes to the "duration" field.
func (m *MaterialAnalysisMutation) ResetDuration() {
	m.duration = nil
	m.addduration = nil
	delete(m.clearedFields, materialanalysis.FieldDuration)
}

// SetRawResponse sets the "raw_response" field.
func (m *MaterialAnalysisMutation) SetRawResponse(s string) {
	m.raw_response = &s
}

// RawResponse returns the value of the "raw_response" field in the mutation.
func (m *MaterialAnalysisMutation) RawResponse() (r string, exists bool) {
	v := m.raw_response
	if v == nil {
		return
	}
	return *v, true
}

// OldRawResponse returns the old "raw_response" field's value of the MaterialAnalysis entity.
// If the MaterialAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialAnalysisMutation) OldRawResponse(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawResponse: %w", err)
	}
	return oldValue.RawResponse, nil
}

// ClearRawResponse clears the value of the "raw_response" field.
func (m *MaterialAnalysisMutation) ClearRawResponse() {
	m.raw_response = nil
	m.clearedFields[materialanalysis.FieldRawResponse] = struct{}{}
}

// RawResponseCleared returns if the "raw_response" field was cleared in this mutation.
func (m *MaterialAnalysisMutation) RawResponseCleared() bool {
	_, ok := m.clearedFields[materialanalysis.FieldRawResponse]
	return ok
}

// ResetRawResponse resets all changes to the "raw_response" field.
func (m *MaterialAnalysisMutation) ResetRawResponse() {
	m.raw_response = nil
	delete(m.clearedFields, materialanalysis.FieldRawResponse)
}

// SetErrorMessage sets the "error_message" field.
func (m *MaterialAnalysisMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *MaterialAnalysisMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the MaterialAnalysis entity.
// If the MaterialAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialAnalysisMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *MaterialAnalysisMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[materialanalysis.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *MaterialAnalysisMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[materialanalysis.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *MaterialAnalysisMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, materialanalysis.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *MaterialAnalysisMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MaterialAnalysisMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MaterialAnalysis entity.
// If the MaterialAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialAnalysisMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MaterialAnalysisMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MaterialAnalysisMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MaterialAnalysisMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MaterialAnalysis entity.
// If the MaterialAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialAnalysisMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MaterialAnalysisMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *MaterialAnalysisMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[materialanalysis.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *MaterialAnalysisMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *MaterialAnalysisMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *MaterialAnalysisMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the MaterialAnalysisMutation builder.
func (m *MaterialAnalysisMutation) Where(ps ...predicate.MaterialAnalysis) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MaterialAnalysisMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MaterialAnalysisMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MaterialAnalysis, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MaterialAnalysisMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MaterialAnalysisMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MaterialAnalysis).
func (m *MaterialAnalysisMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MaterialAnalysisMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.task != nil {
		fields = append(fields, materialanalysis.FieldTaskID)
	}
	if m.media_item_id != nil {
		fields = append(fields, materialanalysis.FieldMediaItemID)
	}
	if m.original_url != nil {
		fields = append(fields, materialanalysis.FieldOriginalURL)
	}
	if m.status != nil {
		fields = append(fields, materialanalysis.FieldStatus)
	}
	if m.ai_description != nil {
		fields = append(fields, materialanalysis.FieldAiDescription)
	}
	if m.key_objects != nil {
		fields = append(fields, materialanalysis.FieldKeyObjects)
	}
	if m.emotional_tone != nil {
		fields = append(fields, materialanalysis.FieldEmotionalTone)
	}
	if m.visual_style != nil {
		fields = append(fields, materialanalysis.FieldVisualStyle)
	}
	if m.quality_score != nil {
		fields = append(fields, materialanalysis.FieldQualityScore)
	}
	if m.quality_level != nil {
		fields = append(fields, materialanalysis.FieldQualityLevel)
	}
	if m.usage_suggestions != nil {
		fields = append(fields, materialanalysis.FieldUsageSuggestions)
	}
	if m.keyframe_urls != nil {
		fields = append(fields, materialanalysis.FieldKeyframeUrls)
	}
	if m.fps != nil {
		fields = append(fields, materialanalysis.FieldFps)
	}
	if m.width != nil {
		fields = append(fields, materialanalysis.FieldWidth)
	}
	if m.height != nil {
		fields = append(fields, materialanalysis.FieldHeight)
	}
	if m.duration != nil {
		fields = append(fields, materialanalysis.FieldDuration)
	}
	if m.raw_response != nil {
		fields = append(fields, materialanalysis.FieldRawResponse)
	}
	if m.error_message != nil {
		fields = append(fields, materialanalysis.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, materialanalysis.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, materialanalysis.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MaterialAnalysisMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case materialanalysis.FieldTaskID:
		return m.TaskID()
	case materialanalysis.FieldMediaItemID:
		return m.MediaItemID()
	case materialanalysis.FieldOriginalURL:
		return m.OriginalURL()
	case materialanalysis.FieldStatus:
		return m.Status()
	case materialanalysis.FieldAiDescription:
		return m.AiDescription()
	case materialanalysis.FieldKeyObjects:
		return m.KeyObjects()
	case materialanalysis.FieldEmotionalTone:
		return m.EmotionalTone()
	case materialanalysis.FieldVisualStyle:
		return m.VisualStyle()
	case materialanalysis.FieldQualityScore:
		return m.QualityScore()
	case materialanalysis.FieldQualityLevel:
		return m.QualityLevel()
	case materialanalysis.FieldUsageSuggestions:
		return m.UsageSuggestions()
	case materialanalysis.FieldKeyframeUrls:
		return m.KeyframeUrls()
	case materialanalysis.FieldFps:
		return m.Fps()
	case materialanalysis.FieldWidth:
		return m.Width()
	case materialanalysis.FieldHeight:
		return m.Height()
	case materialanalysis.FieldDuration:
		return m.Duration()
	case materialanalysis.FieldRawResponse:
		return m.RawResponse()
	case materialanalysis.FieldErrorMessage:
		return m.ErrorMessage()
	case materialanalysis.FieldCreatedAt:
		return m.CreatedAt()
	case materialanalysis.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MaterialAnalysisMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case materialanalysis.FieldTaskID:
		return m.OldTaskID(ctx)
	case materialanalysis.FieldMediaItemID:
		return m.OldMediaItemID(ctx)
	case materialanalysis.FieldOriginalURL:
		return m.OldOriginalURL(ctx)
	case materialanalysis.FieldStatus:
		return m.OldStatus(ctx)
	case materialanalysis.FieldAiDescription:
		return m.OldAiDescription(ctx)
	case materialanalysis.FieldKeyObjects:
		return m.OldKeyObjects(ctx)
	case materialanalysis.FieldEmotionalTone:
		return m.OldEmotionalTone(ctx)
	case materialanalysis.FieldVisualStyle:
		return m.OldVisualStyle(ctx)
	case materialanalysis.FieldQualityScore:
		return m.OldQualityScore(ctx)
	case materialanalysis.FieldQualityLevel:
		return m.OldQualityLevel(ctx)
	case materialanalysis.FieldUsageSuggestions:
		return m.OldUsageSuggestions(ctx)
	case materialanalysis.FieldKeyframeUrls:
		return m.OldKeyframeUrls(ctx)
	case materialanalysis.FieldFps:
		return m.OldFps(ctx)
	case materialanalysis.FieldWidth:
		return m.OldWidth(ctx)
	case materialanalysis.FieldHeight:
		return m.OldHeight(ctx)
	case materialanalysis.FieldDuration:
		return m.OldDuration(ctx)
	case materialanalysis.FieldRawResponse:
		return m.OldRawResponse(ctx)
	case materialanalysis.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case materialanalysis.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case materialanalysis.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MaterialAnalysis field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MaterialAnalysisMutation) SetField(name string, value ent.Value) error {
	switch name {
	case materialanalysis.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case materialanalysis.FieldMediaItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediaItemID(v)
		return nil
	case materialanalysis.FieldOriginalURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalURL(v)
		return nil
	case materialanalysis.FieldStatus:
		v, ok := value.(materialanalysis.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case materialanalysis.FieldAiDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiDescription(v)
		return nil
	case materialanalysis.FieldKeyObjects:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyObjects(v)
		return nil
	case materialanalysis.FieldEmotionalTone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmotionalTone(v)
		return nil
	case materialanalysis.FieldVisualStyle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisualStyle(v)
		return nil
	case materialanalysis.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityScore(v)
		return nil
	case materialanalysis.FieldQualityLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityLevel(v)
		return nil
	case materialanalysis.FieldUsageSuggestions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsageSuggestions(v)
		return nil
	case materialanalysis.FieldKeyframeUrls:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyframeUrls(v)
		return nil
	case materialanalysis.FieldFps:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFps(v)
		return nil
	case materialanalysis.FieldWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWidth(v)
		return nil
	case materialanalysis.FieldHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeight(v)
		return nil
	case materialanalysis.FieldDuration:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuration(v)
		return nil
	case materialanalysis.FieldRawResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawResponse(v)
		return nil
	case materialanalysis.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case materialanalysis.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case materialanalysis.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MaterialAnalysis field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MaterialAnalysisMutation) AddedFields() []string {
	var fields []string
	if m.addquality_score != nil {
		fields = append(fields, materialanalysis.FieldQualityScore)
	}
	if m.addfps != nil {
		fields = append(fields, materialanalysis.FieldFps)
	}
	if m.addwidth != nil {
		fields = append(fields, materialanalysis.FieldWidth)
	}
	if m.addheight != nil {
		fields = append(fields, materialanalysis.FieldHeight)
	}
	if m.addduration != nil {
		fields = append(fields, materialanalysis.FieldDuration)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MaterialAnalysisMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case materialanalysis.FieldQualityScore:
		return m.AddedQualityScore()
	case materialanalysis.FieldFps:
		return m.AddedFps()
	case materialanalysis.FieldWidth:
		return m.AddedWidth()
	case materialanalysis.FieldHeight:
		return m.AddedHeight()
	case materialanalysis.FieldDuration:
		return m.AddedDuration()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MaterialAnalysisMutation) AddField(name string, value ent.Value) error {
	switch name {
	case materialanalysis.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQualityScore(v)
		return nil
	case materialanalysis.FieldFps:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFps(v)
		return nil
	case materialanalysis.FieldWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWidth(v)
		return nil
	case materialanalysis.FieldHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeight(v)
		return nil
	case materialanalysis.FieldDuration:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDuration(v)
		return nil
	}
	return fmt.Errorf("unknown MaterialAnalysis numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MaterialAnalysisMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(materialanalysis.FieldAiDescription) {
		fields = append(fields, materialanalysis.FieldAiDescription)
	}
	if m.FieldCleared(materialanalysis.FieldKeyObjects) {
		fields = append(fields, materialanalysis.FieldKeyObjects)
	}
	if m.FieldCleared(materialanalysis.FieldEmotionalTone) {
		fields = append(fields, materialanalysis.FieldEmotionalTone)
	}
	if m.FieldCleared(materialanalysis.FieldVisualStyle) {
		fields = append(fields, materialanalysis.FieldVisualStyle)
	}
	if m.FieldCleared(materialanalysis.FieldQualityScore) {
		fields = append(fields, materialanalysis.FieldQualityScore)
	}
	if m.FieldCleared(materialanalysis.FieldQualityLevel) {
		fields = append(fields, materialanalysis.FieldQualityLevel)
	}
	if m.FieldCleared(materialanalysis.FieldUsageSuggestions) {
		fields = append(fields, materialanalysis.FieldUsageSuggestions)
	}
	if m.FieldCleared(materialanalysis.FieldKeyframeUrls) {
		fields = append(fields, materialanalysis.FieldKeyframeUrls)
	}
	if m.FieldCleared(materialanalysis.FieldFps) {
		fields = append(fields, materialanalysis.FieldFps)
	}
	if m.FieldCleared(materialanalysis.FieldWidth) {
		fields = append(fields, materialanalysis.FieldWidth)
	}
	if m.FieldCleared(materialanalysis.FieldHeight) {
		fields = append(fields, materialanalysis.FieldHeight)
	}
	if m.FieldCleared(materialanalysis.FieldDuration) {
		fields = append(fields, materialanalysis.FieldDuration)
	}
	if m.FieldCleared(materialanalysis.FieldRawResponse) {
		fields = append(fields, materialanalysis.FieldRawResponse)
	}
	if m.FieldCleared(materialanalysis.FieldErrorMessage) {
		fields = append(fields, materialanalysis.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MaterialAnalysisMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MaterialAnalysisMutation) ClearField(name string) error {
	switch name {
	case materialanalysis.FieldAiDescription:
		m.ClearAiDescription()
		return nil
	case materialanalysis.FieldKeyObjects:
		m.ClearKeyObjects()
		return nil
	case materialanalysis.FieldEmotionalTone:
		m.ClearEmotionalTone()
		return nil
	case materialanalysis.FieldVisualStyle:
		m.ClearVisualStyle()
		return nil
	case materialanalysis.FieldQualityScore:
		m.ClearQualityScore()
		return nil
	case materialanalysis.FieldQualityLevel:
		m.ClearQualityLevel()
		return nil
	case materialanalysis.FieldUsageSuggestions:
		m.ClearUsageSuggestions()
		return nil
	case materialanalysis.FieldKeyframeUrls:
		m.ClearKeyframeUrls()
		return nil
	case materialanalysis.FieldFps:
		m.ClearFps()
		return nil
	case materialanalysis.FieldWidth:
		m.ClearWidth()
		return nil
	case materialanalysis.FieldHeight:
		m.ClearHeight()
		return nil
	case materialanalysis.FieldDuration:
		m.ClearDuration()
		return nil
	case materialanalysis.FieldRawResponse:
		m.ClearRawResponse()
		return nil
	case materialanalysis.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown MaterialAnalysis nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MaterialAnalysisMutation) ResetField(name string) error {
	switch name {
	case materialanalysis.FieldTaskID:
		m.ResetTaskID()
		return nil
	case materialanalysis.FieldMediaItemID:
		m.ResetMediaItemID()
		return nil
	case materialanalysis.FieldOriginalURL:
		m.ResetOriginalURL()
		return nil
	case materialanalysis.FieldStatus:
		m.ResetStatus()
		return nil
	case materialanalysis.FieldAiDescription:
		m.ResetAiDescription()
		return nil
	case materialanalysis.FieldKeyObjects:
		m.ResetKeyObjects()
		return nil
	case materialanalysis.FieldEmotionalTone:
		m.ResetEmotionalTone()
		return nil
	case materialanalysis.FieldVisualStyle:
		m.ResetVisualStyle()
		return nil
	case materialanalysis.FieldQualityScore:
		m.ResetQualityScore()
		return nil
	case materialanalysis.FieldQualityLevel:
		m.ResetQualityLevel()
		return nil
	case materialanalysis.FieldUsageSuggestions:
		m.ResetUsageSuggestions()
		return nil
	case materialanalysis.FieldKeyframeUrls:
		m.ResetKeyframeUrls()
		return nil
	case materialanalysis.FieldFps:
		m.ResetFps()
		return nil
	case materialanalysis.FieldWidth:
		m.ResetWidth()
		return nil
	case materialanalysis.FieldHeight:
		m.ResetHeight()
		return nil
	case materialanalysis.FieldDuration:
		m.ResetDuration()
		return nil
	case materialanalysis.FieldRawResponse:
		m.ResetRawResponse()
		return nil
	case materialanalysis.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case materialanalysis.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case materialanalysis.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown MaterialAnalysis field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MaterialAnalysisMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, materialanalysis.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MaterialAnalysisMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case materialanalysis.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MaterialAnalysisMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MaterialAnalysisMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MaterialAnalysisMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, materialanalysis.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MaterialAnalysisMutation) EdgeCleared(name string) bool {
	switch name {
	case materialanalysis.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MaterialAnalysisMutation) ClearEdge(name string) error {
	switch name {
	case materialanalysis.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown MaterialAnalysis unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MaterialAnalysisMutation) ResetEdge(name string) error {
	switch name {
	case materialanalysis.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown MaterialAnalysis edge %s", name)
}

// MediaItemMutation represents an operation that mutates the MediaItem nodes in the graph.
type MediaItemMutation struct {
	config
	op             Op
	typ            string
	id             *string
	original_url   *string
	cloud_url      *string
	local_path     *string
	filename       *string
	mime_type      *string
	media_type     *mediaitem.MediaType
	file_size      *int64
	addfile_size   *int64
	width          *int
	addwidth       *int
	height         *int
	addheight      *int
	duration       *float64
	addduration    *float64
	context_before *string
	caption        *string
	context_after  *string
	position       *int
	addposition    *int
	created_at     *time.Time
	clearedFields  map[string]struct{}
	task           *string
	clearedtask    bool
	done           bool
	oldValue       func(context.Context) (*MediaItem, error)
	predicates     []predicate.MediaItem
}

var _ ent.Mutation = (*MediaItemMutation)(nil)

// mediaitemOption allows management of the mutation configuration using functional options.
type mediaitemOption func(*MediaItemMutation)

// newMediaItemMutation creates new mutation for the MediaItem entity.
func newMediaItemMutation(c config, op Op, opts ...mediaitemOption) *MediaItemMutation {
	m := &MediaItemMutation{
		config:        c,
		op:            op,
		typ:           TypeMediaItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMediaItemID sets the ID field of the mutation.
func withMediaItemID(id string) mediaitemOption {
	return func(m *MediaItemMutation) {
		var (
			err   error
			once  sync.Once
			value *MediaItem
		)
		m.oldValue = func(ctx context.Context) (*MediaItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MediaItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMediaItem sets the old MediaItem of the mutation.
func withMediaItem(node *MediaItem) mediaitemOption {
	return func(m *MediaItemMutation) {
		m.oldValue = func(context.Context) (*MediaItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MediaItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MediaItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MediaItem entities.
func (m *MediaItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MediaItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MediaItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MediaItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *MediaItemMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *MediaItemMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the MediaItem entity.
// If the MediaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaItemMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *MediaItemMutation) ResetTaskID() {
	m.task = nil
}

// SetOriginalURL sets the "original_url" field.
func (m *MediaItemMutation) SetOriginalURL(s string) {
	m.original_url = &s
}

// OriginalURL returns the value of the "original_url" field in the mutation.
func (m *MediaItemMutation) OriginalURL() (r string, exists bool) {
	v := m.original_url
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalURL returns the old "original_url" field's value of the MediaItem entity.
// If the MediaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaItemMutation) OldOriginalURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalURL: %w", err)
	}
	return oldValue.OriginalURL, nil
}

// ResetOriginalURL resets all changes to the "original_url" field.
func (m *MediaItemMutation) ResetOriginalURL() {
	m.original_url = nil
}

// SetCloudURL sets the "cloud_url" field.
func (m *MediaItemMutation) SetCloudURL(s string) {
	m.cloud_url = &s
}

// CloudURL returns the value of the "cloud_url" field in the mutation.
func (m *MediaItemMutation) CloudURL() (r string, exists bool) {
	v := m.cloud_url
	if v == nil {
		return
	}
	return *v, true
}

// OldCloudURL returns the old "cloud_url" field's value of the MediaItem entity.
// If the MediaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaItemMutation) OldCloudURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCloudURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCloudURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCloudURL: %w", err)
	}
	return oldValue.CloudURL, nil
}

// ClearCloudURL clears the value of the "cloud_url" field.
func (m *MediaItemMutation) ClearCloudURL() {
	m.cloud_url = nil
	m.clearedFields[mediaitem.FieldCloudURL] = struct{}{}
}

// CloudURLCleared returns if the "cloud_url" field was cleared in this mutation.
func (m *MediaItemMutation) CloudURLCleared() bool {
	_, ok := m.clearedFields[mediaitem.FieldCloudURL]
	return ok
}

// ResetCloudURL resets all changes to the "cloud_url" field.
func (m *MediaItemMutation) ResetCloudURL() {
	m.cloud_url = nil
	delete(m.clearedFields, mediaitem.FieldCloudURL)
}

// SetLocalPath sets the "local_path" field.
func (m *MediaItemMutation) SetLocalPath(s string) {
	m.local_path = &s
}

// LocalPath returns the value of the "local_path" field in the mutation.
func (m *MediaItemMutation) LocalPath() (r string, exists bool) {
	v := m.local_path
	if v == nil {
		return
	}
	return *v, true
}

// OldLocalPath returns the old "local_path" field's value of the MediaItem entity.
// If the MediaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaItemMutation) OldLocalPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocalPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocalPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocalPath: %w", err)
	}
	return oldValue.LocalPath, nil
}

// ClearLocalPath clears the value of the "local_path" field.
func (m *MediaItemMutation) ClearLocalPath() {
	m.local_path = nil
	m.clearedFields[mediaitem.FieldLocalPath] = struct{}{}
}

// LocalPathCleared returns if the "local_path" field was cleared in this mutation.
func (m *MediaItemMutation) LocalPathCleared() bool {
	_, ok := m.clearedFields[mediaitem.FieldLocalPath]
	return ok
}

// ResetLocalPath resets all changes to the "local_path" field.
func (m *MediaItemMutation) ResetLocalPath() {
	m.local_path = nil
	delete(m.clearedFields, mediaitem.FieldLocalPath)
}

// SetFilename sets the "filename" field.
func (m *MediaItemMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *MediaItemMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the MediaItem entity.
// If the MediaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaItemMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ClearFilename clears the value of the "filename" field.
func (m *MediaItemMutation) ClearFilename() {
	m.filename = nil
	m.clearedFields[mediaitem.FieldFilename] = struct{}{}
}

// FilenameCleared returns if the "filename" field was cleared in this mutation.
func (m *MediaItemMutation) FilenameCleared() bool {
	_, ok := m.clearedFields[mediaitem.FieldFilename]
	return ok
}

// ResetFilename resets all changes to the "filename" field.
func (m *MediaItemMutation) ResetFilename() {
	m.filename = nil
	delete(m.clearedFields, mediaitem.FieldFilename)
}

// SetMimeType sets the "mime_type" field.
func (m *MediaItemMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *MediaItemMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the MediaItem entity.
// If the MediaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaItemMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ClearMimeType clears the value of the "mime_type" field.
func (m *MediaItemMutation) ClearMimeType() {
	m.mime_type = nil
	m.clearedFields[mediaitem.FieldMimeType] = struct{}{}
}

// MimeTypeCleared returns if the "mime_type" field was cleared in this mutation.
func (m *MediaItemMutation) MimeTypeCleared() bool {
	_, ok := m.clearedFields[mediaitem.FieldMimeType]
	return ok
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *MediaItemMutation) ResetMimeType() {
	m.mime_type = nil
	delete(m.clearedFields, mediaitem.FieldMimeType)
}

// SetMediaType sets the "media_type" field.
func (m *MediaItemMutation) SetMediaType(mt mediaitem.MediaType) {
	m.media_type = &mt
}

// MediaType returns the value of the "media_type" field in the mutation.
func (m *MediaItemMutation) MediaType() (r mediaitem.MediaType, exists bool) {
	v := m.media_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMediaType returns the old "media_type" field's value of the MediaItem entity.
// If the MediaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaItemMutation) OldMediaType(ctx context.Context) (v mediaitem.MediaType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediaType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediaType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediaType: %w", err)
	}
	return oldValue.MediaType, nil
}

// ResetMediaType resets all changes to the "media_type" field.
func (m *MediaItemMutation) ResetMediaType() {
	m.media_type = nil
}

// SetFileSize sets the "file_size" field.
func (m *MediaItemMutation) SetFileSize(i int64) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *MediaItemMutation) FileSize() (r int64, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the MediaItem entity.
// If the MediaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaItemMutation) OldFileSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *MediaItemMutation) AddFileSize(i int64) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *MediaItemMutation) AddedFileSize() (r int64, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ClearFileSize clears the value of the "file_size" field.
func (m *MediaItemMutation) ClearFileSize() {
	m.file_size = nil
	m.addfile_size = nil
	m.clearedFields[mediaitem.FieldFileSize] = struct{}{}
}

// FileSizeCleared returns if the "file_size" field was cleared in this mutation.
func (m *MediaItemMutation) FileSizeCleared() bool {
	_, ok := m.clearedFields[mediaitem.FieldFileSize]
	return ok
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *MediaItemMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
	delete(m.clearedFields, mediaitem.FieldFileSize)
}

// SetWidth sets the "width" field.
func (m *MediaItemMutation) SetWidth(i int) {
	m.width = &i
	m.addwidth = nil
}

// Width returns the value of the "width" field in the mutation.
func (m *MediaItemMutation) Width() (r int, exists bool) {
	v := m.width
	if v == nil {
		return
	}
	return *v, true
}

// OldWidth returns the old "width" field's value of the MediaItem entity.
// If the MediaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaItemMutation) OldWidth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWidth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWidth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWidth: %w", err)
	}
	return oldValue.Width, nil
}

// AddWidth adds i to the "width" field.
func (m *MediaItemMutation) AddWidth(i int) {
	if m.addwidth != nil {
		*m.addwidth += i
	} else {
		m.addwidth = &i
	}
}

// AddedWidth returns the value that was added to the "width" field in this mutation.
func (m *MediaItemMutation) AddedWidth() (r int, exists bool) {
	v := m.addwidth
	if v == nil {
		return
	}
	return *v, true
}

// ClearWidth clears the value of the "width" field.
func (m *MediaItemMutation) ClearWidth() {
	m.width = nil
	m.addwidth = nil
	m.clearedFields[mediaitem.FieldWidth] = struct{}{}
}

// WidthCleared returns if the "width" field was cleared in this mutation.
func (m *MediaItemMutation) WidthCleared() bool {
	_, ok := m.clearedFields[mediaitem.FieldWidth]
	return ok
}

// ResetWidth resets all changes to the "width" field.
func (m *MediaItemMutation) ResetWidth() {
	m.width = nil
	m.addwidth = nil
	delete(m.clearedFields, mediaitem.FieldWidth)
}

// SetHeight sets the "height" field.
func (m *MediaItemMutation) SetHeight(i int) {
	m.height = &i
	m.addheight = nil
}

// Height returns the value of the "height" field in the mutation.
func (m *MediaItemMutation) Height() (r int, exists bool) {
	v := m.height
	if v == nil {
		return
	}
	return *v, true
}

// OldHeight returns the old "height" field's value of the MediaItem entity.
// If the MediaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaItemMutation) OldHeight(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeight: %w", err)
	}
	return oldValue.Height, nil
}

// AddHeight adds i to the "height" field.
func (m *MediaItemMutation) AddHeight(i int) {
	if m.addheight != nil {
		*m.addheight += i
	} else {
		m.addheight = &i
	}
}

// AddedHeight returns the value that was added to the "height" field in this mutation.
func (m *MediaItemMutation) AddedHeight() (r int, exists bool) {
	v := m.addheight
	if v == nil {
		return
	}
	return *v, true
}

// ClearHeight clears the value of the "height" field.
func (m *MediaItemMutation) ClearHeight() {
	m.height = nil
	m.addheight = nil
	m.clearedFields[mediaitem.FieldHeight] = struct{}{}
}

// HeightCleared returns if the "height" field was cleared in this mutation.
func (m *MediaItemMutation) HeightCleared() bool {
	_, ok := m.clearedFields[mediaitem.FieldHeight]
	return ok
}

// ResetHeight resets all changes to the "height" field.
func (m *MediaItemMutation) ResetHeight() {
	m.height = nil
	m.addheight = nil
	delete(m.clearedFields, mediaitem.FieldHeight)
}

// SetDuration sets the "duration" field.
func (m *MediaItemMutation) SetDuration(f float64) {
	m.duration = &f
	m.addduration = nil
}

// Duration returns the value of the "duration" field in the mutation.
func (m *MediaItemMutation) Duration() (r float64, exists bool) {
	v := m.duration
	if v == nil {
		return
	}
	return *v, true
}

// OldDuration returns the old "duration" field's value of the MediaItem entity.
// If the MediaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaItemMutation) OldDuration(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuration: %w", err)
	}
	return oldValue.Duration, nil
}

// AddDuration adds f to the "duration" field.
func (m *MediaItemMutation) AddDuration(f float64) {
	if m.addduration != nil {
		*m.addduration += f
	} else {
		m.addduration = &f
	}
}

// AddedDuration returns the value that was added to the "duration" field in this mutation.
func (m *MediaItemMutation) AddedDuration() (r float64, exists bool) {
	v := m.addduration
	if v == nil {
		return
	}
	return *v, true
}

// ClearDuration clears the value of the "duration" field.
func (m *MediaItemMutation) ClearDuration() {
	m.duration = nil
	m.addduration = nil
	m.clearedFields[mediaitem.FieldDuration] = struct{}{}
}

// DurationCleared returns if the "duration" field was cleared in this mutation.
func (m *MediaItemMutation) DurationCleared() bool {
	_, ok := m.clearedFields[mediaitem.FieldDuration]
	return ok
}

// ResetDuration resets all changes to the "duration" field.
func (m *MediaItemMutation) ResetDuration() {
	m.duration = nil
	m.addduration = nil
	delete(m.clearedFields, mediaitem.FieldDuration)
}

// SetContextBefore sets the "context_before" field.
func (m *MediaItemMutation) SetContextBefore(s string) {
	m.context_before = &s
}

// ContextBefore returns the value of the "context_before" field in the mutation.
func (m *MediaItemMutation) ContextBefore() (r string, exists bool) {
	v := m.context_before
	if v == nil {
		return
	}
	return *v, true
}

// OldContextBefore returns the old "context_before" field's value of the MediaItem entity.
// If the MediaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaItemMutation) OldContextBefore(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextBefore: %w", err)
	}
	return oldValue.ContextBefore, nil
}

// ClearContextBefore clears the value of the "context_before" field.
func (m *MediaItemMutation) ClearContextBefore() {
	m.context_before = nil
	m.clearedFields[mediaitem.FieldContextBefore] = struct{}{}
}

// ContextBeforeCleared returns if the "context_before" field was cleared in this mutation.
func (m *MediaItemMutation) ContextBeforeCleared() bool {
	_, ok := m.clearedFields[mediaitem.FieldContextBefore]
	return ok
}

// ResetContextBefore resets all changes to the "context_before" field.
func (m *MediaItemMutation) ResetContextBefore() {
	m.context_before = nil
	delete(m.clearedFields, mediaitem.FieldContextBefore)
}

// SetCaption sets the "caption" field.
func (m *MediaItemMutation) SetCaption(s string) {
	m.caption = &s
}

// Caption returns the value of the "caption" field in the mutation.
func (m *MediaItemMutation) Caption() (r string, exists bool) {
	v := m.caption
	if v == nil {
		return
	}
	return *v, true
}

// OldCaption returns the old "caption" field's value of the MediaItem entity.
// If the MediaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaItemMutation) OldCaption(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaption is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaption requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaption: %w", err)
	}
	return oldValue.Caption, nil
}

// ClearCaption clears the value of the "caption" field.
func (m *MediaItemMutation) ClearCaption() {
	m.caption = nil
	m.clearedFields[mediaitem.FieldCaption] = struct{}{}
}

// CaptionCleared returns if the "caption" field was cleared in this mutation.
func (m *MediaItemMutation) CaptionCleared() bool {
	_, ok := m.clearedFields[mediaitem.FieldCaption]
	return ok
}

// ResetCaption resets all changes to the "caption" field.
func (m *MediaItemMutation) ResetCaption() {
	m.caption = nil
	delete(m.clearedFields, mediaitem.FieldCaption)
}

// SetContextAfter sets the "context_after" field.
func (m *MediaItemMutation) SetContextAfter(s string) {
	m.context_after = &s
}

// ContextAfter returns the value of the "context_after" field in the mutation.
func (m *MediaItemMutation) ContextAfter() (r string, exists bool) {
	v := m.context_after
	if v == nil {
		return
	}
	return *v, true
}

// OldContextAfter returns the old "context_after" field's value of the MediaItem entity.
// If the MediaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaItemMutation) OldContextAfter(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextAfter: %w", err)
	}
	return oldValue.ContextAfter, nil
}

// ClearContextAfter clears the value of the "context_after" field.
func (m *MediaItemMutation) ClearContextAfter() {
	m.context_after = nil
	m.clearedFields[mediaitem.FieldContextAfter] = struct{}{}
}

// ContextAfterCleared returns if the "context_after" field was cleared in this mutation.
func (m *MediaItemMutation) ContextAfterCleared() bool {
	_, ok := m.clearedFields[mediaitem.FieldContextAfter]
	return ok
}

// ResetContextAfter resets all changes to the "context_after" field.
func (m *MediaItemMutation) ResetContextAfter() {
	m.context_after = nil
	delete(m.clearedFields, mediaitem.FieldContextAfter)
}

// SetPosition sets the "position" field.
func (m *MediaItemMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *MediaItemMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the MediaItem entity.
// If the MediaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaItemMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *MediaItemMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *MediaItemMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *MediaItemMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MediaItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MediaItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MediaItem entity.
// If the MediaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MediaItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *MediaItemMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[mediaitem.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *MediaItemMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *MediaItemMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *MediaItemMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the MediaItemMutation builder.
func (m *MediaItemMutation) Where(ps ...predicate.MediaItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MediaItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MediaItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MediaItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MediaItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MediaItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MediaItem).
func (m *MediaItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MediaItemMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.task != nil {
		fields = append(fields, mediaitem.FieldTaskID)
	}
	if m.original_url != nil {
		fields = append(fields, mediaitem.FieldOriginalURL)
	}
	if m.cloud_url != nil {
		fields = append(fields, mediaitem.FieldCloudURL)
	}
	if m.local_path != nil {
		fields = append(fields, mediaitem.FieldLocalPath)
	}
	if m.filename != nil {
		fields = append(fields, mediaitem.FieldFilename)
	}
	if m.mime_type != nil {
		fields = append(fields, mediaitem.FieldMimeType)
	}
	if m.media_type != nil {
		fields = append(fields, mediaitem.FieldMediaType)
	}
	if m.file_size != nil {
		fields = append(fields, mediaitem.FieldFileSize)
	}
	if m.width != nil {
		fields = append(fields, mediaitem.FieldWidth)
	}
	if m.height != nil {
		fields = append(fields, mediaitem.FieldHeight)
	}
	if m.duration != nil {
		fields = append(fields, mediaitem.FieldDuration)
	}
	if m.context_before != nil {
		fields = append(fields, mediaitem.FieldContextBefore)
	}
	if m.caption != nil {
		fields = append(fields, mediaitem.FieldCaption)
	}
	if m.context_after != nil {
		fields = append(fields, mediaitem.FieldContextAfter)
	}
	if m.position != nil {
		fields = append(fields, mediaitem.FieldPosition)
	}
	if m.created_at != nil {
		fields = append(fields, mediaitem.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MediaItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mediaitem.FieldTaskID:
		return m.TaskID()
	case mediaitem.FieldOriginalURL:
		return m.OriginalURL()
	case mediaitem.FieldCloudURL:
		return m.CloudURL()
	case mediaitem.FieldLocalPath:
		return m.LocalPath()
	case mediaitem.FieldFilename:
		return m.Filename()
	case mediaitem.FieldMimeType:
		return m.MimeType()
	case mediaitem.FieldMediaType:
		return m.MediaType()
	case mediaitem.FieldFileSize:
		return m.FileSize()
	case mediaitem.FieldWidth:
		return m.Width()
	case mediaitem.FieldHeight:
		return m.Height()
	case mediaitem.FieldDuration:
		return m.Duration()
	case mediaitem.FieldContextBefore:
		return m.ContextBefore()
	case mediaitem.FieldCaption:
		return m.Caption()
	case mediaitem.FieldContextAfter:
		return m.ContextAfter()
	case mediaitem.FieldPosition:
		return m.Position()
	case mediaitem.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MediaItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mediaitem.FieldTaskID:
		return m.OldTaskID(ctx)
	case mediaitem.FieldOriginalURL:
		return m.OldOriginalURL(ctx)
	case mediaitem.FieldCloudURL:
		return m.OldCloudURL(ctx)
	case mediaitem.FieldLocalPath:
		return m.OldLocalPath(ctx)
	case mediaitem.FieldFilename:
		return m.OldFilename(ctx)
	case mediaitem.FieldMimeType:
		return m.OldMimeType(ctx)
	case mediaitem.FieldMediaType:
		return m.OldMediaType(ctx)
	case mediaitem.FieldFileSize:
		return m.OldFileSize(ctx)
	case mediaitem.FieldWidth:
		return m.OldWidth(ctx)
	case mediaitem.FieldHeight:
		return m.OldHeight(ctx)
	case mediaitem.FieldDuration:
		return m.OldDuration(ctx)
	case mediaitem.FieldContextBefore:
		return m.OldContextBefore(ctx)
	case mediaitem.FieldCaption:
		return m.OldCaption(ctx)
	case mediaitem.FieldContextAfter:
		return m.OldContextAfter(ctx)
	case mediaitem.FieldPosition:
		return m.OldPosition(ctx)
	case mediaitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MediaItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MediaItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mediaitem.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case mediaitem.FieldOriginalURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalURL(v)
		return nil
	case mediaitem.FieldCloudURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCloudURL(v)
		return nil
	case mediaitem.FieldLocalPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocalPath(v)
		return nil
	case mediaitem.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case mediaitem.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case mediaitem.FieldMediaType:
		v, ok := value.(mediaitem.MediaType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediaType(v)
		return nil
	case mediaitem.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case mediaitem.FieldWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWidth(v)
		return nil
	case mediaitem.FieldHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeight(v)
		return nil
	case mediaitem.FieldDuration:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuration(v)
		return nil
	case mediaitem.FieldContextBefore:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextBefore(v)
		return nil
	case mediaitem.FieldCaption:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaption(v)
		return nil
	case mediaitem.FieldContextAfter:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextAfter(v)
		return nil
	case mediaitem.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case mediaitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MediaItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MediaItemMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, mediaitem.FieldFileSize)
	}
	if m.addwidth != nil {
		fields = append(fields, mediaitem.FieldWidth)
	}
	if m.addheight != nil {
		fields = append(fields, mediaitem.FieldHeight)
	}
	if m.addduration != nil {
		fields = append(fields, mediaitem.FieldDuration)
	}
	if m.addposition != nil {
		fields = append(fields, mediaitem.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MediaItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mediaitem.FieldFileSize:
		return m.AddedFileSize()
	case mediaitem.FieldWidth:
		return m.AddedWidth()
	case mediaitem.FieldHeight:
		return m.AddedHeight()
	case mediaitem.FieldDuration:
		return m.AddedDuration()
	case mediaitem.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MediaItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mediaitem.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	case mediaitem.FieldWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWidth(v)
		return nil
	case mediaitem.FieldHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeight(v)
		return nil
	case mediaitem.FieldDuration:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDuration(v)
		return nil
	case mediaitem.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown MediaItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MediaItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mediaitem.FieldCloudURL) {
		fields = append(fields, mediaitem.FieldCloudURL)
	}
	if m.FieldCleared(mediaitem.FieldLocalPath) {
		fields = append(fields, mediaitem.FieldLocalPath)
	}
	if m.FieldCleared(mediaitem.FieldFilename) {
		fields = append(fields, mediaitem.FieldFilename)
	}
	if m.FieldCleared(mediaitem.FieldMimeType) {
		fields = append(fields, mediaitem.FieldMimeType)
	}
	if m.FieldCleared(mediaitem.FieldFileSize) {
		fields = append(fields, mediaitem.FieldFileSize)
	}
	if m.FieldCleared(mediaitem.FieldWidth) {
		fields = append(fields, mediaitem.FieldWidth)
	}
	if m.FieldCleared(mediaitem.FieldHeight) {
		fields = append(fields, mediaitem.FieldHeight)
	}
	if m.FieldCleared(mediaitem.FieldDuration) {
		fields = append(fields, mediaitem.FieldDuration)
	}
	if m.FieldCleared(mediaitem.FieldContextBefore) {
		fields = append(fields, mediaitem.FieldContextBefore)
	}
	if m.FieldCleared(mediaitem.FieldCaption) {
		fields = append(fields, mediaitem.FieldCaption)
	}
	if m.FieldCleared(mediaitem.FieldContextAfter) {
		fields = append(fields, mediaitem.FieldContextAfter)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MediaItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MediaItemMutation) ClearField(name string) error {
	switch name {
	case mediaitem.FieldCloudURL:
		m.ClearCloudURL()
		return nil
	case mediaitem.FieldLocalPath:
		m.ClearLocalPath()
		return nil
	case mediaitem.FieldFilename:
		m.ClearFilename()
		return nil
	case mediaitem.FieldMimeType:
		m.ClearMimeType()
		return nil
	case mediaitem.FieldFileSize:
		m.ClearFileSize()
		return nil
	case mediaitem.FieldWidth:
		m.ClearWidth()
		return nil
	case mediaitem.FieldHeight:
		m.ClearHeight()
		return nil
	case mediaitem.FieldDuration:
		m.ClearDuration()
		return nil
	case mediaitem.FieldContextBefore:
		m.ClearContextBefore()
		return nil
	case mediaitem.FieldCaption:
		m.ClearCaption()
		return nil
	case mediaitem.FieldContextAfter:
		m.ClearContextAfter()
		return nil
	}
	return fmt.Errorf("unknown MediaItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MediaItemMutation) ResetField(name string) error {
	switch name {
	case mediaitem.FieldTaskID:
		m.ResetTaskID()
		return nil
	case mediaitem.FieldOriginalURL:
		m.ResetOriginalURL()
		return nil
	case mediaitem.FieldCloudURL:
		m.ResetCloudURL()
		return nil
	case mediaitem.FieldLocalPath:
		m.ResetLocalPath()
		return nil
	case mediaitem.FieldFilename:
		m.ResetFilename()
		return nil
	case mediaitem.FieldMimeType:
		m.ResetMimeType()
		return nil
	case mediaitem.FieldMediaType:
		m.ResetMediaType()
		return nil
	case mediaitem.FieldFileSize:
		m.ResetFileSize()
		return nil
	case mediaitem.FieldWidth:
		m.ResetWidth()
		return nil
	case mediaitem.FieldHeight:
		m.ResetHeight()
		return nil
	case mediaitem.FieldDuration:
		m.ResetDuration()
		return nil
	case mediaitem.FieldContextBefore:
		m.ResetContextBefore()
		return nil
	case mediaitem.FieldCaption:
		m.ResetCaption()
		return nil
	case mediaitem.FieldContextAfter:
		m.ResetContextAfter()
		return nil
	case mediaitem.FieldPosition:
		m.ResetPosition()
		return nil
	case mediaitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MediaItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MediaItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, mediaitem.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MediaItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case mediaitem.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MediaItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MediaItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MediaItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, mediaitem.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MediaItemMutation) EdgeCleared(name string) bool {
	switch name {
	case mediaitem.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MediaItemMutation) ClearEdge(name string) error {
	switch name {
	case mediaitem.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown MediaItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MediaItemMutation) ResetEdge(name string) error {
	switch name {
	case mediaitem.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown MediaItem edge %s", name)
}

// PersonaMutation represents an operation that mutates the Persona nodes in the graph.
type PersonaMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	name                  *string
	persona_type          *string
	style                 *string
	target_audience       *string
	characteristics       *[]string
	appendcharacteristics []string
	tone                  *string
	keywords              *[]string
	appendkeywords        []string
	custom_prompt         *string
	is_preset             *bool
	created_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*Persona, error)
	predicates            []predicate.Persona
}

var _ ent.Mutation = (*PersonaMutation)(nil)

// personaOption allows management of the mutation configuration using functional options.
type personaOption func(*PersonaMutation)

// newPersonaMutation creates new mutation for the Persona entity.
func newPersonaMutation(c config, op Op, opts ...personaOption) *PersonaMutation {
	m := &PersonaMutation{
		config:        c,
		op:            op,
		typ:           TypePersona,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPersonaID sets the ID field of the mutation.
func withPersonaID(id string) personaOption {
	return func(m *PersonaMutation) {
		var (
			err   error
			once  sync.Once
			value *Persona
		)
		m.oldValue = func(ctx context.Context) (*Persona, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Persona.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPersona sets the old Persona of the mutation.
func withPersona(node *Persona) personaOption {
	return func(m *PersonaMutation) {
		m.oldValue = func(context.Context) (*Persona, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PersonaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PersonaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Persona entities.
func (m *PersonaMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PersonaMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PersonaMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Persona.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *PersonaMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PersonaMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PersonaMutation) ResetName() {
	m.name = nil
}

// SetPersonaType sets the "persona_type" field.
func (m *PersonaMutation) SetPersonaType(s string) {
	m.persona_type = &s
}

// PersonaType returns the value of the "persona_type" field in the mutation.
func (m *PersonaMutation) PersonaType() (r string, exists bool) {
	v := m.persona_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonaType returns the old "persona_type" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldPersonaType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonaType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonaType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonaType: %w", err)
	}
	return oldValue.PersonaType, nil
}

// ClearPersonaType clears the value of the "persona_type" field.
func (m *PersonaMutation) ClearPersonaType() {
	m.persona_type = nil
	m.clearedFields[persona.FieldPersonaType] = struct{}{}
}

// PersonaTypeCleared returns if the "persona_type" field was cleared in this mutation.
func (m *PersonaMutation) PersonaTypeCleared() bool {
	_, ok := m.clearedFields[persona.FieldPersonaType]
	return ok
}

// ResetPersonaType resets all changes to the "persona_type" field.
func (m *PersonaMutation) ResetPersonaType() {
	m.persona_type = nil
	delete(m.clearedFields, persona.FieldPersonaType)
}

// SetStyle sets the "style" field.
func (m *PersonaMutation) SetStyle(s string) {
	m.style = &s
}

// Style returns the value of the "style" field in the mutation.
func (m *PersonaMutation) Style() (r string, exists bool) {
	v := m.style
	if v == nil {
		return
	}
	return *v, true
}

// OldStyle returns the old "style" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldStyle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStyle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStyle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStyle: %w", err)
	}
	return oldValue.Style, nil
}

// ClearStyle clears the value of the "style" field.
func (m *PersonaMutation) ClearStyle() {
	m.style = nil
	m.clearedFields[persona.FieldStyle] = struct{}{}
}

// StyleCleared returns if the "style" field was cleared in this mutation.
func (m *PersonaMutation) StyleCleared() bool {
	_, ok := m.clearedFields[persona.FieldStyle]
	return ok
}

// ResetStyle resets all changes to the "style" field.
func (m *PersonaMutation) ResetStyle() {
	m.style = nil
	delete(m.clearedFields, persona.FieldStyle)
}

// SetTargetAudience sets the "target_audience" field.
func (m *PersonaMutation) SetTargetAudience(s string) {
	m.target_audience = &s
}

// TargetAudience returns the value of the "target_audience" field in the mutation.
func (m *PersonaMutation) TargetAudience() (r string, exists bool) {
	v := m.target_audience
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetAudience returns the old "target_audience" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldTargetAudience(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetAudience is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetAudience requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetAudience: %w", err)
	}
	return oldValue.TargetAudience, nil
}

// ClearTargetAudience clears the value of the "target_audience" field.
func (m *PersonaMutation) ClearTargetAudience() {
	m.target_audience = nil
	m.clearedFields[persona.FieldTargetAudience] = struct{}{}
}

// TargetAudienceCleared returns if the "target_audience" field was cleared in this mutation.
func (m *PersonaMutation) TargetAudienceCleared() bool {
	_, ok := m.clearedFields[persona.FieldTargetAudience]
	return ok
}

// ResetTargetAudience resets all changes to the "target_audience" field.
func (m *PersonaMutation) ResetTargetAudience() {
	m.target_audience = nil
	delete(m.clearedFields, persona.FieldTargetAudience)
}

// SetCharacteristics sets the "characteristics" field.
func (m *PersonaMutation) SetCharacteristics(s []string) {
	m.characteristics = &s
	m.appendcharacteristics = nil
}

// Characteristics returns the value of the "characteristics" field in the mutation.
func (m *PersonaMutation) Characteristics() (r []string, exists bool) {
	v := m.characteristics
	if v == nil {
		return
	}
	return *v, true
}

// OldCharacteristics returns the old "characteristics" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldCharacteristics(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCharacteristics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCharacteristics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCharacteristics: %w", err)
	}
	return oldValue.Characteristics, nil
}

// AppendCharacteristics adds s to the "characteristics" field.
func (m *PersonaMutation) AppendCharacteristics(s []string) {
	m.appendcharacteristics = append(m.appendcharacteristics, s...)
}

// AppendedCharacteristics returns the list of values that were appended to the "characteristics" field in this mutation.
func (m *PersonaMutation) AppendedCharacteristics() ([]string, bool) {
	if len(m.appendcharacteristics) == 0 {
		return nil, false
	}
	return m.appendcharacteristics, true
}

// ClearCharacteristics clears the value of the "characteristics" field.
func (m *PersonaMutation) ClearCharacteristics() {
	m.characteristics = nil
	m.appendcharacteristics = nil
	m.clearedFields[persona.FieldCharacteristics] = struct{}{}
}

// CharacteristicsCleared returns if the "characteristics" field was cleared in this mutation.
func (m *PersonaMutation) CharacteristicsCleared() bool {
	_, ok := m.clearedFields[persona.FieldCharacteristics]
	return ok
}

// ResetCharacteristics resets all changes to the "characteristics" field.
func (m *PersonaMutation) ResetCharacteristics() {
	m.characteristics = nil
	m.appendcharacteristics = nil
	delete(m.clearedFields, persona.FieldCharacteristics)
}

// SetTone sets the "tone" field.
func (m *PersonaMutation) SetTone(s string) {
	m.tone = &s
}

// Tone returns the value of the "tone" field in the mutation.
func (m *PersonaMutation) Tone() (r string, exists bool) {
	v := m.tone
	if v == nil {
		return
	}
	return *v, true
}

// OldTone returns the old "tone" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldTone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTone: %w", err)
	}
	return oldValue.Tone, nil
}

// ClearTone clears the value of the "tone" field.
func (m *PersonaMutation) ClearTone() {
	m.tone = nil
	m.clearedFields[persona.FieldTone] = struct{}{}
}

// ToneCleared returns if the "tone" field was cleared in this mutation.
func (m *PersonaMutation) ToneCleared() bool {
	_, ok := m.clearedFields[persona.FieldTone]
	return ok
}

// ResetTone resets all changes to the "tone" field.
func (m *PersonaMutation) ResetTone() {
	m.tone = nil
	delete(m.clearedFields, persona.FieldTone)
}

// SetKeywords sets the "keywords" field.
func (m *PersonaMutation) SetKeywords(s []string) {
	m.keywords = &s
	m.appendkeywords = nil
}

// Keywords returns the value of the "keywords" field in the mutation.
func (m *PersonaMutation) Keywords() (r []string, exists bool) {
	v := m.keywords
	if v == nil {
		return
	}
	return *v, true
}

// OldKeywords returns the old "keywords" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldKeywords(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeywords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeywords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeywords: %w", err)
	}
	return oldValue.Keywords, nil
}

// AppendKeywords adds s to the "keywords" field.
func (m *PersonaMutation) AppendKeywords(s []string) {
	m.appendkeywords = append(m.appendkeywords, s...)
}

// AppendedKeywords returns the list of values that were appended to the "keywords" field in this mutation.
func (m *PersonaMutation) AppendedKeywords() ([]string, bool) {
	if len(m.appendkeywords) == 0 {
		return nil, false
	}
	return m.appendkeywords, true
}

// ClearKeywords clears the value of the "keywords" field.
func (m *PersonaMutation) ClearKeywords() {
	m.keywords = nil
	m.appendkeywords = nil
	m.clearedFields[persona.FieldKeywords] = struct{}{}
}

// KeywordsCleared returns if the "keywords" field was cleared in this mutation.
func (m *PersonaMutation) KeywordsCleared() bool {
	_, ok := m.clearedFields[persona.FieldKeywords]
	return ok
}

// ResetKeywords resets all changes to the "keywords" field.
func (m *PersonaMutation) ResetKeywords() {
	m.keywords = nil
	m.appendkeywords = nil
	delete(m.clearedFields, persona.FieldKeywords)
}

// SetCustomPrompt sets the "custom_prompt" field.
func (m *PersonaMutation) SetCustomPrompt(s string) {
	m.custom_prompt = &s
}

// CustomPrompt returns the value of the "custom_prompt" field in the mutation.
func (m *PersonaMutation) CustomPrompt() (r string, exists bool) {
	v := m.custom_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomPrompt returns the old "custom_prompt" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldCustomPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomPrompt: %w", err)
	}
	return oldValue.CustomPrompt, nil
}

// ClearCustomPrompt clears the value of the "custom_prompt" field.
func (m *PersonaMutation) ClearCustomPrompt() {
	m.custom_prompt = nil
	m.clearedFields[persona.FieldCustomPrompt] = struct{}{}
}

// CustomPromptCleared returns if the "custom_prompt" field was cleared in this mutation.
func (m *PersonaMutation) CustomPromptCleared() bool {
	_, ok := m.clearedFields[persona.FieldCustomPrompt]
	return ok
}

// ResetCustomPrompt resets all changes to the "custom_prompt" field.
func (m *PersonaMutation) ResetCustomPrompt() {
	m.custom_prompt = nil
	delete(m.clearedFields, persona.FieldCustomPrompt)
}

// SetIsPreset sets the "is_preset" field.
func (m *PersonaMutation) SetIsPreset(b bool) {
	m.is_preset = &b
}

// IsPreset returns the value of the "is_preset" field in the mutation.
func (m *PersonaMutation) IsPreset() (r bool, exists bool) {
	v := m.is_preset
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPreset returns the old "is_preset" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldIsPreset(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPreset is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPreset requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPreset: %w", err)
	}
	return oldValue.IsPreset, nil
}

// ResetIsPreset resets all changes to the "is_preset" field.
func (m *PersonaMutation) ResetIsPreset() {
	m.is_preset = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PersonaMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PersonaMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PersonaMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PersonaMutation builder.
func (m *PersonaMutation) Where(ps ...predicate.Persona) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PersonaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PersonaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Persona, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PersonaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PersonaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Persona).
func (m *PersonaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PersonaMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.name != nil {
		fields = append(fields, persona.FieldName)
	}
	if m.persona_type != nil {
		fields = append(fields, persona.FieldPersonaType)
	}
	if m.style != nil {
		fields = append(fields, persona.FieldStyle)
	}
	if m.target_audience != nil {
		fields = append(fields, persona.FieldTargetAudience)
	}
	if m.characteristics != nil {
		fields = append(fields, persona.FieldCharacteristics)
	}
	if m.tone != nil {
		fields = append(fields, persona.FieldTone)
	}
	if m.keywords != nil {
		fields = append(fields, persona.FieldKeywords)
	}
	if m.custom_prompt != nil {
		fields = append(fields, persona.FieldCustomPrompt)
	}
	if m.is_preset != nil {
		fields = append(fields, persona.FieldIsPreset)
	}
	if m.created_at != nil {
		fields = append(fields, persona.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PersonaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case persona.FieldName:
		return m.Name()
	case persona.FieldPersonaType:
		return m.PersonaType()
	case persona.FieldStyle:
		return m.Style()
	case persona.FieldTargetAudience:
		return m.TargetAudience()
	case persona.FieldCharacteristics:
		return m.Characteristics()
	case persona.FieldTone:
		return m.Tone()
	case persona.FieldKeywords:
		return m.Keywords()
	case persona.FieldCustomPrompt:
		return m.CustomPrompt()
	case persona.FieldIsPreset:
		return m.IsPreset()
	case persona.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PersonaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case persona.FieldName:
		return m.OldName(ctx)
	case persona.FieldPersonaType:
		return m.OldPersonaType(ctx)
	case persona.FieldStyle:
		return m.OldStyle(ctx)
	case persona.FieldTargetAudience:
		return m.OldTargetAudience(ctx)
	case persona.FieldCharacteristics:
		return m.OldCharacteristics(ctx)
	case persona.FieldTone:
		return m.OldTone(ctx)
	case persona.FieldKeywords:
		return m.OldKeywords(ctx)
	case persona.FieldCustomPrompt:
		return m.OldCustomPrompt(ctx)
	case persona.FieldIsPreset:
		return m.OldIsPreset(ctx)
	case persona.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Persona field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case persona.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case persona.FieldPersonaType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonaType(v)
		return nil
	case persona.FieldStyle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStyle(v)
		return nil
	case persona.FieldTargetAudience:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetAudience(v)
		return nil
	case persona.FieldCharacteristics:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCharacteristics(v)
		return nil
	case persona.FieldTone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTone(v)
		return nil
	case persona.FieldKeywords:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeywords(v)
		return nil
	case persona.FieldCustomPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomPrompt(v)
		return nil
	case persona.FieldIsPreset:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPreset(v)
		return nil
	case persona.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Persona field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PersonaMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PersonaMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonaMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Persona numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PersonaMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(persona.FieldPersonaType) {
		fields = append(fields, persona.FieldPersonaType)
	}
	if m.FieldCleared(persona.FieldStyle) {
		fields = append(fields, persona.FieldStyle)
	}
	if m.FieldCleared(persona.FieldTargetAudience) {
		fields = append(fields, persona.FieldTargetAudience)
	}
	if m.FieldCleared(persona.FieldCharacteristics) {
		fields = append(fields, persona.FieldCharacteristics)
	}
	if m.FieldCleared(persona.FieldTone) {
		fields = append(fields, persona.FieldTone)
	}
	if m.FieldCleared(persona.FieldKeywords) {
		fields = append(fields, persona.FieldKeywords)
	}
	if m.FieldCleared(persona.FieldCustomPrompt) {
		fields = append(fields, persona.FieldCustomPrompt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PersonaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PersonaMutation) ClearField(name string) error {
	switch name {
	case persona.FieldPersonaType:
		m.ClearPersonaType()
		return nil
	case persona.FieldStyle:
		m.ClearStyle()
		return nil
	case persona.FieldTargetAudience:
		m.ClearTargetAudience()
		return nil
	case persona.FieldCharacteristics:
		m.ClearCharacteristics()
		return nil
	case persona.FieldTone:
		m.ClearTone()
		return nil
	case persona.FieldKeywords:
		m.ClearKeywords()
		return nil
	case persona.FieldCustomPrompt:
		m.ClearCustomPrompt()
		return nil
	}
	return fmt.Errorf("unknown Persona nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PersonaMutation) ResetField(name string) error {
	switch name {
	case persona.FieldName:
		m.ResetName()
		return nil
	case persona.FieldPersonaType:
		m.ResetPersonaType()
		return nil
	case persona.FieldStyle:
		m.ResetStyle()
		return nil
	case persona.FieldTargetAudience:
		m.ResetTargetAudience()
		return nil
	case persona.FieldCharacteristics:
		m.ResetCharacteristics()
		return nil
	case persona.FieldTone:
		m.ResetTone()
		return nil
	case persona.FieldKeywords:
		m.ResetKeywords()
		return nil
	case persona.FieldCustomPrompt:
		m.ResetCustomPrompt()
		return nil
	case persona.FieldIsPreset:
		m.ResetIsPreset()
		return nil
	case persona.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Persona field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PersonaMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PersonaMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PersonaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PersonaMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PersonaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PersonaMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PersonaMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Persona unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PersonaMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Persona edge %s", name)
}

// PromptTemplateMutation represents an operation that mutates the PromptTemplate nodes in the graph.
type PromptTemplateMutation struct {
	config
	op             Op
	typ            string
	id             *string
	template_type  *string
	template_style *string
	name           *string
	content        *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*PromptTemplate, error)
	predicates     []predicate.PromptTemplate
}

var _ ent.Mutation = (*PromptTemplateMutation)(nil)

// prompttemplateOption allows management of the mutation configuration using functional options.
type prompttemplateOption func(*PromptTemplateMutation)

// newPromptTemplateMutation creates new mutation for the PromptTemplate entity.
func newPromptTemplateMutation(c config, op Op, opts ...prompttemplateOption) *PromptTemplateMutation {
	m := &PromptTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypePromptTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPromptTemplateID sets the ID field of the mutation.
func withPromptTemplateID(id string) prompttemplateOption {
	return func(m *PromptTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *PromptTemplate
		)
		m.oldValue = func(ctx context.Context) (*PromptTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PromptTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPromptTemplate sets the old PromptTemplate of the mutation.
func withPromptTemplate(node *PromptTemplate) prompttemplateOption {
	return func(m *PromptTemplateMutation) {
		m.oldValue = func(context.Context) (*PromptTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PromptTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PromptTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PromptTemplate entities.
func (m *PromptTemplateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PromptTemplateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PromptTemplateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PromptTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTemplateType sets the "template_type" field.
func (m *PromptTemplateMutation) SetTemplateType(s string) {
	m.template_type = &s
}

// TemplateType returns the value of the "template_type" field in the mutation.
func (m *PromptTemplateMutation) TemplateType() (r string, exists bool) {
	v := m.template_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateType returns the old "template_type" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldTemplateType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateType: %w", err)
	}
	return oldValue.TemplateType, nil
}

// ResetTemplateType resets all changes to the "template_type" field.
func (m *PromptTemplateMutation) ResetTemplateType() {
	m.template_type = nil
}

// SetTemplateStyle sets the "template_style" field.
func (m *PromptTemplateMutation) SetTemplateStyle(s string) {
	m.template_style = &s
}

// TemplateStyle returns the value of the "template_style" field in the mutation.
func (m *PromptTemplateMutation) TemplateStyle() (r string, exists bool) {
	v := m.template_style
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateStyle returns the old "template_style" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldTemplateStyle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateStyle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateStyle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateStyle: %w", err)
	}
	return oldValue.TemplateStyle, nil
}

// ResetTemplateStyle resets all changes to the "template_style" field.
func (m *PromptTemplateMutation) ResetTemplateStyle() {
	m.template_style = nil
}

// SetName sets the "name" field.
func (m *PromptTemplateMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PromptTemplateMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *PromptTemplateMutation) ClearName() {
	m.name = nil
	m.clearedFields[prompttemplate.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *PromptTemplateMutation) NameCleared() bool {
	_, ok := m.clearedFields[prompttemplate.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *PromptTemplateMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, prompttemplate.FieldName)
}

// SetContent sets the "content" field.
func (m *PromptTemplateMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *PromptTemplateMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *PromptTemplateMutation) ResetContent() {
	m.content = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PromptTemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PromptTemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PromptTemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PromptTemplateMutation builder.
func (m *PromptTemplateMutation) Where(ps ...predicate.PromptTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PromptTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PromptTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PromptTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PromptTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PromptTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PromptTemplate).
func (m *PromptTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PromptTemplateMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.template_type != nil {
		fields = append(fields, prompttemplate.FieldTemplateType)
	}
	if m.template_style != nil {
		fields = append(fields, prompttemplate.FieldTemplateStyle)
	}
	if m.name != nil {
		fields = append(fields, prompttemplate.FieldName)
	}
	if m.content != nil {
		fields = append(fields, prompttemplate.FieldContent)
	}
	if m.created_at != nil {
		fields = append(fields, prompttemplate.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PromptTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case prompttemplate.FieldTemplateType:
		return m.TemplateType()
	case prompttemplate.FieldTemplateStyle:
		return m.TemplateStyle()
	case prompttemplate.FieldName:
		return m.Name()
	case prompttemplate.FieldContent:
		return m.Content()
	case prompttemplate.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PromptTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case prompttemplate.FieldTemplateType:
		return m.OldTemplateType(ctx)
	case prompttemplate.FieldTemplateStyle:
		return m.OldTemplateStyle(ctx)
	case prompttemplate.FieldName:
		return m.OldName(ctx)
	case prompttemplate.FieldContent:
		return m.OldContent(ctx)
	case prompttemplate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PromptTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case prompttemplate.FieldTemplateType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateType(v)
		return nil
	case prompttemplate.FieldTemplateStyle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateStyle(v)
		return nil
	case prompttemplate.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case prompttemplate.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case prompttemplate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PromptTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PromptTemplateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PromptTemplateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PromptTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PromptTemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(prompttemplate.FieldName) {
		fields = append(fields, prompttemplate.FieldName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PromptTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PromptTemplateMutation) ClearField(name string) error {
	switch name {
	case prompttemplate.FieldName:
		m.ClearName()
		return nil
	}
	return fmt.Errorf("unknown PromptTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PromptTemplateMutation) ResetField(name string) error {
	switch name {
	case prompttemplate.FieldTemplateType:
		m.ResetTemplateType()
		return nil
	case prompttemplate.FieldTemplateStyle:
		m.ResetTemplateStyle()
		return nil
	case prompttemplate.FieldName:
		m.ResetName()
		return nil
	case prompttemplate.FieldContent:
		m.ResetContent()
		return nil
	case prompttemplate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PromptTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PromptTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PromptTemplateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PromptTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PromptTemplateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PromptTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PromptTemplateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PromptTemplateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PromptTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PromptTemplateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PromptTemplate edge %s", name)
}

// ScriptContentMutation represents an operation that mutates the ScriptContent nodes in the graph.
type ScriptContentMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	sub_task_id           *string
	persona_id            *string
	style                 *string
	generation_status     *scriptcontent.GenerationStatus
	titles                *[]string
	appendtitles          []string
	narration             *string
	description           *string
	scenes                *[]map[string]interface{}
	appendscenes          []map[string]interface{}
	material_mapping      *map[string]string
	tags                  *[]string
	appendtags            []string
	estimated_duration    *int
	addestimated_duration *int
	word_count            *int
	addword_count         *int
	material_count        *int
	addmaterial_count     *int
	raw_prompt            *string
	raw_response          *string
	error_message         *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	task                  *string
	clearedtask           bool
	done                  bool
	oldValue              func(context.Context) (*ScriptContent, error)
	predicates            []predicate.ScriptContent
}

var _ ent.Mutation = (*ScriptContentMutation)(nil)

// scriptcontentOption allows management of the mutation configuration using functional options.
type scriptcontentOption func(*ScriptContentMutation)

// newScriptContentMutation creates new mutation for the ScriptContent entity.
func newScriptContentMutation(c config, op Op, opts ...scriptcontentOption) *ScriptContentMutation {
	m := &ScriptContentMutation{
		config:        c,
		op:            op,
		typ:           TypeScriptContent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScriptContentID sets the ID field of the mutation.
func withScriptContentID(id string) scriptcontentOption {
	return func(m *ScriptContentMutation) {
		var (
			err   error
			once  sync.Once
			value *ScriptContent
		)
		m.oldValue = func(ctx context.Context) (*ScriptContent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScriptContent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScriptContent sets the old ScriptContent of the mutation.
func withScriptContent(node *ScriptContent) scriptcontentOption {
	return func(m *ScriptContentMutation) {
		m.oldValue = func(context.Context) (*ScriptContent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScriptContentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScriptContentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScriptContent entities.
func (m *ScriptContentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScriptContentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScriptContentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScriptContent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *ScriptContentMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ScriptContentMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the ScriptContent entity.
// If the ScriptContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScriptContentMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ScriptContentMutation) ResetTaskID() {
	m.task = nil
}

// SetSubTaskID sets the "sub_task_id" field.
func (m *ScriptContentMutation) SetSubTaskID(s string) {
	m.sub_task_id = &s
}

// SubTaskID returns the value of the "sub_task_id" field in the mutation.
func (m *ScriptContentMutation) SubTaskID() (r string, exists bool) {
	v := m.sub_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubTaskID returns the old "sub_task_id" field's value of the ScriptContent entity.
// If the ScriptContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScriptContentMutation) OldSubTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubTaskID: %w", err)
	}
	return oldValue.SubTaskID, nil
}

// ResetSubTaskID resets all changes to the "sub_task_id" field.
func (m *ScriptContentMutation) ResetSubTaskID() {
	m.sub_task_id = nil
}

// SetPersonaID sets the "persona_id" field.
func (m *ScriptContentMutation) SetPersonaID(s string) {
	m.persona_id = &s
}

// PersonaID returns the value of the "persona_id" field in the mutation.
func (m *ScriptContentMutation) PersonaID() (r string, exists bool) {
	v := m.persona_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonaID returns the old "persona_id" field's value of the ScriptContent entity.
// If the ScriptContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScriptContentMutation) OldPersonaID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonaID: %w", err)
	}
	return oldValue.PersonaID, nil
}

// ClearPersonaID clears the value of the "persona_id" field.
func (m *ScriptContentMutation) ClearPersonaID() {
	m.persona_id = nil
	m.clearedFields[scriptcontent.FieldPersonaID] = struct{}{}
}

// PersonaIDCleared returns if the "persona_id" field was cleared in this mutation.
func (m *ScriptContentMutation) PersonaIDCleared() bool {
	_, ok := m.clearedFields[scriptcontent.FieldPersonaID]
	return ok
}

// ResetPersonaID resets all changes to the "persona_id" field.
func (m *ScriptContentMutation) ResetPersonaID() {
	m.persona_id = nil
	delete(m.clearedFields, scriptcontent.FieldPersonaID)
}

// SetStyle sets the "style" field.
func (m *ScriptContentMutation) SetStyle(s string) {
	m.style = &s
}

// Style returns the value of the "style" field in the mutation.
func (m *ScriptContentMutation) Style() (r string, exists bool) {
	v := m.style
	if v == nil {
		return
	}
	return *v, true
}

// OldStyle returns the old "style" field's value of the ScriptContent entity.
// If the ScriptContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScriptContentMutation) OldStyle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStyle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStyle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStyle: %w", err)
	}
	return oldValue.Style, nil
}

// ResetStyle resets all changes to the "style" field.
func (m *ScriptContentMutation) ResetStyle() {
	m.style = nil
}

// SetGenerationStatus sets the "generation_status" field.
func (m *ScriptContentMutation) SetGenerationStatus(ss scriptcontent.GenerationStatus) {
	m.generation_status = &ss
}

// GenerationStatus returns the value of the "generation_status" field in the mutation.
func (m *ScriptContentMutation) GenerationStatus() (r scriptcontent.GenerationStatus, exists bool) {
	v := m.generation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldGenerationStatus returns the old "generation_status" field's value of the ScriptContent entity.
// If the ScriptContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScriptContentMutation) OldGenerationStatus(ctx context.Context) (v scriptcontent.GenerationStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenerationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenerationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenerationStatus: %w", err)
	}
	return oldValue.GenerationStatus, nil
}

// ResetGenerationStatus resets all changes to the "generation_status" field.
func (m *ScriptContentMutation) ResetGenerationStatus() {
	m.generation_status = nil
}

// SetTitles sets the "titles" field.
func (m *ScriptContentMutation) SetTitles(s []string) {
	m.titles = &s
	m.appendtitles = nil
}

// Titles returns the value of the "titles" field in the mutation.
func (m *ScriptContentMutation) Titles() (r []string, exists bool) {
	v := m.titles
	if v == nil {
		return
	}
	return *v, true
}

// OldTitles returns the old "titles" field's value of the ScriptContent entity.
// If the ScriptContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScriptContentMutation) OldTitles(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitles: %w", err)
	}
	return oldValue.Titles, nil
}

// AppendTitles adds s to the "titles" field.
func (m *ScriptContentMutation) AppendTitles(s []string) {
	m.appendtitles = append(m.appendtitles, s...)
}

// AppendedTitles returns the list of values that were appended to the "titles" field in this mutation.
func (m *ScriptContentMutation) AppendedTitles() ([]string, bool) {
	if len(m.appendtitles) == 0 {
		return nil, false
	}
	return m.appendtitles, true
}

// ClearTitles clears the value of the "titles" field.
func (m *ScriptContentMutation) ClearTitles() {
	m.titles = nil
	m.appendtitles = nil
	m.clearedFields[scriptcontent.FieldTitles] = struct{}{}
}

// TitlesCleared returns if the "titles" field was cleared in this mutation.
func (m *ScriptContentMutation) TitlesCleared() bool {
	_, ok := m.clearedFields[scriptcontent.FieldTitles]
	return ok
}

// ResetTitles resets all changes to the "titles" field.
func (m *ScriptContentMutation) ResetTitles() {
	m.titles = nil
	m.appendtitles = nil
	delete(m.clearedFields, scriptcontent.FieldTitles)
}

// SetNarration sets the "narration" field.
func (m *ScriptContentMutation) SetNarration(s string) {
	m.narration = &s
}

// Narration returns the value of the "narration" field in the mutation.
func (m *ScriptContentMutation) Narration() (r string, exists bool) {
	v := m.narration
	if v == nil {
		return
	}
	return *v, true
}

// OldNarration returns the old "narration" field's value of the ScriptContent entity.
// If the ScriptContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScriptContentMutation) OldNarration(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNarration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNarration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNarration: %w", err)
	}
	return oldValue.Narration, nil
}

// ClearNarration clears the value of the "narration" field.
func (m *ScriptContentMutation) ClearNarration() {
	m.narration = nil
	m.clearedFields[scriptcontent.FieldNarration] = struct{}{}
}

// NarrationCleared returns if the "narration" field was cleared in this mutation.
func (m *ScriptContentMutation) NarrationCleared() bool {
	_, ok := m.clearedFields[scriptcontent.FieldNarration]
	return ok
}

// ResetNarration resets all changes to the "narration" field.
func (m *ScriptContentMutation) ResetNarration() {
	m.narration = nil
	delete(m.clearedFields, scriptcontent.FieldNarration)
}

// SetDescription sets the "description" field.
func (m *ScriptContentMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ScriptContentMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ScriptContent entity.
// If the ScriptContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScriptContentMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ScriptContentMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[scriptcontent.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ScriptContentMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[scriptcontent.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ScriptContentMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, scriptcontent.FieldDescription)
}

// SetScenes sets the "scenes" field.
func (m *ScriptContentMutation) SetScenes(value []map[string]interface{}) {
	m.scenes = &value
	m.appendscenes = nil
}

// Scenes returns the value of the "scenes" field in the mutation.
func (m *ScriptContentMutation) Scenes() (r []map[string]interface{}, exists bool) {
	v := m.scenes
	if v == nil {
		return
	}
	return *v, true
}

// OldScenes returns the old "scenes" field's value of the ScriptContent entity.
// If the ScriptContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScriptContentMutation) OldScenes(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScenes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScenes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScenes: %w", err)
	}
	return oldValue.Scenes, nil
}

// AppendScenes adds value to the "scenes" field.
func (m *ScriptContentMutation) AppendScenes(value []map[string]interface{}) {
	m.appendscenes = append(m.appendscenes, value...)
}

// AppendedScenes returns the list of values that were appended to the "scenes" field in this mutation.
func (m *ScriptContentMutation) AppendedScenes() ([]map[string]interface{}, bool) {
	if len(m.appendscenes) == 0 {
		return nil, false
	}
	return m.appendscenes, true
}

// ClearScenes clears the value of the "scenes" field.
func (m *ScriptContentMutation) ClearScenes() {
	m.scenes = nil
	m.appendscenes = nil
	m.clearedFields[scriptcontent.FieldScenes] = struct{}{}
}

// ScenesCleared returns if the "scenes" field was cleared in this mutation.
func (m *ScriptContentMutation) ScenesCleared() bool {
	_, ok := m.clearedFields[scriptcontent.FieldScenes]
	return ok
}

// ResetScenes resets all changes to the "scenes" field.
func (m *ScriptContentMutation) ResetScenes() {
	m.scenes = nil
	m.appendscenes = nil
	delete(m.clearedFields, scriptcontent.FieldScenes)
}

// SetMaterialMapping sets the "material_mapping" field.
func (m *ScriptContentMutation) SetMaterialMapping(value map[string]string) {
	m.material_mapping = &value
}

// MaterialMapping returns the value of the "material_mapping" field in the mutation.
func (m *ScriptContentMutation) MaterialMapping() (r map[string]string, exists bool) {
	v := m.material_mapping
	if v == nil {
		return
	}
	return *v, true
}

// OldMaterialMapping returns the old "material_mapping" field's value of the ScriptContent entity.
// If the ScriptContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScriptContentMutation) OldMaterialMapping(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaterialMapping is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaterialMapping requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaterialMapping: %w", err)
	}
	return oldValue.MaterialMapping, nil
}

// ClearMaterialMapping clears the value of the "material_mapping" field.
func (m *ScriptContentMutation) ClearMaterialMapping() {
	m.material_mapping = nil
	m.clearedFields[scriptcontent.FieldMaterialMapping] = struct{}{}
}

// MaterialMappingCleared returns if the "material_mapping" field was cleared in this mutation.
func (m *ScriptContentMutation) MaterialMappingCleared() bool {
	_, ok := m.clearedFields[scriptcontent.FieldMaterialMapping]
	return ok
}

// ResetMaterialMapping resets all changes to the "material_mapping" field.
func (m *ScriptContentMutation) ResetMaterialMapping() {
	m.material_mapping = nil
	delete(m.clearedFields, scriptcontent.FieldMaterialMapping)
}

// SetTags sets the "tags" field.
func (m *ScriptContentMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *ScriptContentMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the ScriptContent entity.
// If the ScriptContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScriptContentMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *ScriptContentMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *ScriptContentMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *ScriptContentMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[scriptcontent.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *ScriptContentMutation) TagsCleared() bool {
	_, ok := m.clearedFields[scriptcontent.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *ScriptContentMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, scriptcontent.FieldTags)
}

// SetEstimatedDuration sets the "estimated_duration" field.
func (m *ScriptContentMutation) SetEstimatedDuration(i int) {
	m.estimated_duration = &i
	m.addestimated_duration = nil
}

// EstimatedDuration returns the value of the "estimated_duration" field in the mutation.
func (m *ScriptContentMutation) EstimatedDuration() (r int, exists bool) {
	v := m.estimated_duration
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedDuration returns the old "estimated_duration" field's value of the ScriptContent entity.
// If the ScriptContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScriptContentMutation) OldEstimatedDuration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedDuration: %w", err)
	}
	return oldValue.EstimatedDuration, nil
}

// AddEstimatedDuration adds i to the "estimated_duration" field.
func (m *ScriptContentMutation) AddEstimatedDuration(i int) {
	if m.addestimated_duration != nil {
		*m.addestimated_duration += i
	} else {
		m.addestimated_duration = &i
	}
}

// AddedEstimatedDuration returns the value that was added to the "estimated_duration" field in this mutation.
func (m *ScriptContentMutation) AddedEstimatedDuration() (r int, exists bool) {
	v := m.addestimated_duration
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedDuration resets all changes to the "estimated_duration" field.
func (m *ScriptContentMutation) ResetEstimatedDuration() {
	m.estimated_duration = nil
	m.addestimated_duration = nil
}

// SetWordCount sets the "word_count" field.
func (m *ScriptContentMutation) SetWordCount(i int) {
	m.word_count = &i
	m.addword_count = nil
}

// WordCount returns the value of the "word_count" field in the mutation.
func (m *ScriptContentMutation) WordCount() (r int, exists bool) {
	v := m.word_count
	if v == nil {
		return
	}
	return *v, true
}

// OldWordCount returns the old "word_count" field's value of the ScriptContent entity.
// If the ScriptContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScriptContentMutation) OldWordCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWordCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWordCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWordCount: %w", err)
	}
	return oldValue.WordCount, nil
}

// AddWordCount adds i to the "word_count" field.
func (m *ScriptContentMutation) AddWordCount(i int) {
	if m.addword_count != nil {
		*m.addword_count += i
	} else {
		m.addword_count = &i
	}
}

// AddedWordCount returns the value that was added to the "word_count" field in this mutation.
func (m *ScriptContentMutation) AddedWordCount() (r int, exists bool) {
	v := m.addword_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetWordCount resets all changes to the "word_count" field.
func (m *ScriptContentMutation) ResetWordCount() {
	m.word_count = nil
	m.addword_count = nil
}

// SetMaterialCount sets the "material_count" field.
func (m *ScriptContentMutation) SetMaterialCount(i int) {
	m.material_count = &i
	m.addmaterial_count = nil
}

// MaterialCount returns the value of the "material_count" field in the mutation.
func (m *ScriptContentMutation) MaterialCount() (r int, exists bool) {
	v := m.material_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMaterialCount returns the old "material_count" field's value of the ScriptContent entity.
// If the ScriptContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScriptContentMutation) OldMaterialCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaterialCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaterialCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaterialCount: %w", err)
	}
	return oldValue.MaterialCount, nil
}

// AddMaterialCount adds i to the "material_count" field.
func (m *ScriptContentMutation) AddMaterialCount(i int) {
	if m.addmaterial_count != nil {
		*m.addmaterial_count += i
	} else {
		m.addmaterial_count = &i
	}
}

// AddedMaterialCount returns the value that was added to the "material_count" field in this mutation.
func (m *ScriptContentMutation) AddedMaterialCount() (r int, exists bool) {
	v := m.addmaterial_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaterialCount resets all changes to the "material_count" field.
func (m *ScriptContentMutation) ResetMaterialCount() {
	m.material_count = nil
	m.addmaterial_count = nil
}

// SetRawPrompt sets the "raw_prompt" field.
func (m *ScriptContentMutation) SetRawPrompt(s string) {
	m.raw_prompt = &s
}

// RawPrompt returns the value of the "raw_prompt" field in the mutation.
func (m *ScriptContentMutation) RawPrompt() (r string, exists bool) {
	v := m.raw_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldRawPrompt returns the old "raw_prompt" field's value of the ScriptContent entity.
// If the ScriptContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScriptContentMutation) OldRawPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawPrompt: %w", err)
	}
	return oldValue.RawPrompt, nil
}

// ClearRawPrompt clears the value of the "raw_prompt" field.
func (m *ScriptContentMutation) ClearRawPrompt() {
	m.raw_prompt = nil
	m.clearedFields[scriptcontent.FieldRawPrompt] = struct{}{}
}

// RawPromptCleared returns if the "raw_prompt" field was cleared in this mutation.
func (m *ScriptContentMutation) RawPromptCleared() bool {
	_, ok := m.clearedFields[scriptcontent.FieldRawPrompt]
	return ok
}

// ResetRawPrompt resets all changes to the "raw_prompt" field.
func (m *ScriptContentMutation) ResetRawPrompt() {
	m.raw_prompt = nil
	delete(m.clearedFields, scriptcontent.FieldRawPrompt)
}

// SetRawResponse sets the "raw_response" field.
func (m *ScriptContentMutation) SetRawResponse(s string) {
	m.raw_response = &s
}

// RawResponse returns the value of the "raw_response" field in the mutation.
func (m *ScriptContentMutation) RawResponse() (r string, exists bool) {
	v := m.raw_response
	if v == nil {
		return
	}
	return *v, true
}

// OldRawResponse returns the old "raw_response" field's value of the ScriptContent entity.
// If the ScriptContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScriptContentMutation) OldRawResponse(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawResponse: %w", err)
	}
	return oldValue.RawResponse, nil
}

// ClearRawResponse clears the value of the "raw_response" field.
func (m *ScriptContentMutation) ClearRawResponse() {
	m.raw_response = nil
	m.clearedFields[scriptcontent.FieldRawResponse] = struct{}{}
}

// RawResponseCleared returns if the "raw_response" field was cleared in this mutation.
func (m *ScriptContentMutation) RawResponseCleared() bool {
	_, ok := m.clearedFields[scriptcontent.FieldRawResponse]
	return ok
}

// ResetRawResponse resets all changes to the "raw_response" field.
func (m *ScriptContentMutation) ResetRawResponse() {
	m.raw_response = nil
	delete(m.clearedFields, scriptcontent.FieldRawResponse)
}

// SetErrorMessage sets the "error_message" field.
func (m *ScriptContentMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ScriptContentMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ScriptContent entity.
// If the ScriptContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScriptContentMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ScriptContentMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[scriptcontent.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ScriptContentMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[scriptcontent.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ScriptContentMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, scriptcontent.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *ScriptContentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScriptContentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScriptContent entity.
// If the ScriptContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScriptContentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScriptContentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ScriptContentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ScriptContentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ScriptContent entity.
// If the ScriptContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScriptContentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ScriptContentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *ScriptContentMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[scriptcontent.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *ScriptContentMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *ScriptContentMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *ScriptContentMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the ScriptContentMutation builder.
func (m *ScriptContentMutation) Where(ps ...predicate.ScriptContent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScriptContentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScriptContentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScriptContent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScriptContentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScriptContentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScriptContent).
func (m *ScriptContentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScriptContentMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.task != nil {
		fields = append(fields, scriptcontent.FieldTaskID)
	}
	if m.sub_task_id != nil {
		fields = append(fields, scriptcontent.FieldSubTaskID)
	}
	if m.persona_id != nil {
		fields = append(fields, scriptcontent.FieldPersonaID)
	}
	if m.style != nil {
		fields = append(fields, scriptcontent.FieldStyle)
	}
	if m.generation_status != nil {
		fields = append(fields, scriptcontent.FieldGenerationStatus)
	}
	if m.titles != nil {
		fields = append(fields, scriptcontent.FieldTitles)
	}
	if m.narration != nil {
		fields = append(fields, scriptcontent.FieldNarration)
	}
	if m.description != nil {
		fields = append(fields, scriptcontent.FieldDescription)
	}
	if m.scenes != nil {
		fields = append(fields, scriptcontent.FieldScenes)
	}
	if m.material_mapping != nil {
		fields = append(fields, scriptcontent.FieldMaterialMapping)
	}
	if m.tags != nil {
		fields = append(fields, scriptcontent.FieldTags)
	}
	if m.estimated_duration != nil {
		fields = append(fields, scriptcontent.FieldEstimatedDuration)
	}
	if m.word_count != nil {
		fields = append(fields, scriptcontent.FieldWordCount)
	}
	if m.material_count != nil {
		fields = append(fields, scriptcontent.FieldMaterialCount)
	}
	if m.raw_prompt != nil {
		fields = append(fields, scriptcontent.FieldRawPrompt)
	}
	if m.raw_response != nil {
		fields = append(fields, scriptcontent.FieldRawResponse)
	}
	if m.error_message != nil {
		fields = append(fields, scriptcontent.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, scriptcontent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, scriptcontent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScriptContentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scriptcontent.FieldTaskID:
		return m.TaskID()
	case scriptcontent.FieldSubTaskID:
		return m.SubTaskID()
	case scriptcontent.FieldPersonaID:
		return m.PersonaID()
	case scriptcontent.FieldStyle:
		return m.Style()
	case scriptcontent.FieldGenerationStatus:
		return m.GenerationStatus()
	case scriptcontent.FieldTitles:
		return m.Titles()
	case scriptcontent.FieldNarration:
		return m.Narration()
	case scriptcontent.FieldDescription:
		return m.Description()
	case scriptcontent.FieldScenes:
		return m.Scenes()
	case scriptcontent.FieldMaterialMapping:
		return m.MaterialMapping()
	case scriptcontent.FieldTags:
		return m.Tags()
	case scriptcontent.FieldEstimatedDuration:
		return m.EstimatedDuration()
	case scriptcontent.FieldWordCount:
		return m.WordCount()
	case scriptcontent.FieldMaterialCount:
		return m.MaterialCount()
	case scriptcontent.FieldRawPrompt:
		return m.RawPrompt()
	case scriptcontent.FieldRawResponse:
		return m.RawResponse()
	case scriptcontent.FieldErrorMessage:
		return m.ErrorMessage()
	case scriptcontent.FieldCreatedAt:
		return m.CreatedAt()
	case scriptcontent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScriptContentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scriptcontent.FieldTaskID:
		return m.OldTaskID(ctx)
	case scriptcontent.FieldSubTaskID:
		return m.OldSubTaskID(ctx)
	case scriptcontent.FieldPersonaID:
		return m.OldPersonaID(ctx)
	case scriptcontent.FieldStyle:
		return m.OldStyle(ctx)
	case scriptcontent.FieldGenerationStatus:
		return m.OldGenerationStatus(ctx)
	case scriptcontent.FieldTitles:
		return m.OldTitles(ctx)
	case scriptcontent.FieldNarration:
		return m.OldNarration(ctx)
	case scriptcontent.FieldDescription:
		return m.OldDescription(ctx)
	case scriptcontent.FieldScenes:
		return m.OldScenes(ctx)
	case scriptcontent.FieldMaterialMapping:
		return m.OldMaterialMapping(ctx)
	case scriptcontent.FieldTags:
		return m.OldTags(ctx)
	case scriptcontent.FieldEstimatedDuration:
		return m.OldEstimatedDuration(ctx)
	case scriptcontent.FieldWordCount:
		return m.OldWordCount(ctx)
	case scriptcontent.FieldMaterialCount:
		return m.OldMaterialCount(ctx)
	case scriptcontent.FieldRawPrompt:
		return m.OldRawPrompt(ctx)
	case scriptcontent.FieldRawResponse:
		return m.OldRawResponse(ctx)
	case scriptcontent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case scriptcontent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case scriptcontent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScriptContent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScriptContentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scriptcontent.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case scriptcontent.FieldSubTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubTaskID(v)
		return nil
	case scriptcontent.FieldPersonaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonaID(v)
		return nil
	case scriptcontent.FieldStyle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStyle(v)
		return nil
	case scriptcontent.FieldGenerationStatus:
		v, ok := value.(scriptcontent.GenerationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenerationStatus(v)
		return nil
	case scriptcontent.FieldTitles:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitles(v)
		return nil
	case scriptcontent.FieldNarration:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNarration(v)
		return nil
	case scriptcontent.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case scriptcontent.FieldScenes:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScenes(v)
		return nil
	case scriptcontent.FieldMaterialMapping:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaterialMapping(v)
		return nil
	case scriptcontent.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case scriptcontent.FieldEstimatedDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedDuration(v)
		return nil
	case scriptcontent.FieldWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWordCount(v)
		return nil
	case scriptcontent.FieldMaterialCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaterialCount(v)
		return nil
	case scriptcontent.FieldRawPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawPrompt(v)
		return nil
	case scriptcontent.FieldRawResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawResponse(v)
		return nil
	case scriptcontent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case scriptcontent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case scriptcontent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScriptContent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScriptContentMutation) AddedFields() []string {
	var fields []string
	if m.addestimated_duration != nil {
		fields = append(fields, scriptcontent.FieldEstimatedDuration)
	}
	if m.addword_count != nil {
		fields = append(fields, scriptcontent.FieldWordCount)
	}
	if m.addmaterial_count != nil {
		fields = append(fields, scriptcontent.FieldMaterialCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScriptContentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scriptcontent.FieldEstimatedDuration:
		return m.AddedEstimatedDuration()
	case scriptcontent.FieldWordCount:
		return m.AddedWordCount()
	case scriptcontent.FieldMaterialCount:
		return m.AddedMaterialCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScriptContentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scriptcontent.FieldEstimatedDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedDuration(v)
		return nil
	case scriptcontent.FieldWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWordCount(v)
		return nil
	case scriptcontent.FieldMaterialCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaterialCount(v)
		return nil
	}
	return fmt.Errorf("unknown ScriptContent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScriptContentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scriptcontent.FieldPersonaID) {
		fields = append(fields, scriptcontent.FieldPersonaID)
	}
	if m.FieldCleared(scriptcontent.FieldTitles) {
		fields = append(fields, scriptcontent.FieldTitles)
	}
	if m.FieldCleared(scriptcontent.FieldNarration) {
		fields = append(fields, scriptcontent.FieldNarration)
	}
	if m.FieldCleared(scriptcontent.FieldDescription) {
		fields = append(fields, scriptcontent.FieldDescription)
	}
	if m.FieldCleared(scriptcontent.FieldScenes) {
		fields = append(fields, scriptcontent.FieldScenes)
	}
	if m.FieldCleared(scriptcontent.FieldMaterialMapping) {
		fields = append(fields, scriptcontent.FieldMaterialMapping)
	}
	if m.FieldCleared(scriptcontent.FieldTags) {
		fields = append(fields, scriptcontent.FieldTags)
	}
	if m.FieldCleared(scriptcontent.FieldRawPrompt) {
		fields = append(fields, scriptcontent.FieldRawPrompt)
	}
	if m.FieldCleared(scriptcontent.FieldRawResponse) {
		fields = append(fields, scriptcontent.FieldRawResponse)
	}
	if m.FieldCleared(scriptcontent.FieldErrorMessage) {
		fields = append(fields, scriptcontent.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScriptContentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScriptContentMutation) ClearField(name string) error {
	switch name {
	case scriptcontent.FieldPersonaID:
		m.ClearPersonaID()
		return nil
	case scriptcontent.FieldTitles:
		m.ClearTitles()
		return nil
	case scriptcontent.FieldNarration:
		m.ClearNarration()
		return nil
	case scriptcontent.FieldDescription:
		m.ClearDescription()
		return nil
	case scriptcontent.FieldScenes:
		m.ClearScenes()
		return nil
	case scriptcontent.FieldMaterialMapping:
		m.ClearMaterialMapping()
		return nil
	case scriptcontent.FieldTags:
		m.ClearTags()
		return nil
	case scriptcontent.FieldRawPrompt:
		m.ClearRawPrompt()
		return nil
	case scriptcontent.FieldRawResponse:
		m.ClearRawResponse()
		return nil
	case scriptcontent.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ScriptContent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScriptContentMutation) ResetField(name string) error {
	switch name {
	case scriptcontent.FieldTaskID:
		m.ResetTaskID()
		return nil
	case scriptcontent.FieldSubTaskID:
		m.ResetSubTaskID()
		return nil
	case scriptcontent.FieldPersonaID:
		m.ResetPersonaID()
		return nil
	case scriptcontent.FieldStyle:
		m.ResetStyle()
		return nil
	case scriptcontent.FieldGenerationStatus:
		m.ResetGenerationStatus()
		return nil
	case scriptcontent.FieldTitles:
		m.ResetTitles()
		return nil
	case scriptcontent.FieldNarration:
		m.ResetNarration()
		return nil
	case scriptcontent.FieldDescription:
		m.ResetDescription()
		return nil
	case scriptcontent.FieldScenes:
		m.ResetScenes()
		return nil
	case scriptcontent.FieldMaterialMapping:
		m.ResetMaterialMapping()
		return nil
	case scriptcontent.FieldTags:
		m.ResetTags()
		return nil
	case scriptcontent.FieldEstimatedDuration:
		m.ResetEstimatedDuration()
		return nil
	case scriptcontent.FieldWordCount:
		m.ResetWordCount()
		return nil
	case scriptcontent.FieldMaterialCount:
		m.ResetMaterialCount()
		return nil
	case scriptcontent.FieldRawPrompt:
		m.ResetRawPrompt()
		return nil
	case scriptcontent.FieldRawResponse:
		m.ResetRawResponse()
		return nil
	case scriptcontent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case scriptcontent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case scriptcontent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ScriptContent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScriptContentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, scriptcontent.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScriptContentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case scriptcontent.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScriptContentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScriptContentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScriptContentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, scriptcontent.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScriptContentMutation) EdgeCleared(name string) bool {
	switch name {
	case scriptcontent.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScriptContentMutation) ClearEdge(name string) error {
	switch name {
	case scriptcontent.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown ScriptContent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScriptContentMutation) ResetEdge(name string) error {
	switch name {
	case scriptcontent.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown ScriptContent edge %s", name)
}

// SubVideoTaskMutation represents an operation that mutates the SubVideoTask nodes in the graph.
type SubVideoTaskMutation struct {
	config
	op              Op
	typ             string
	id              *string
	index           *int
	addindex        *int
	script_style    *string
	status          *subvideotask.Status
	progress        *int
	addprogress     *int
	script_id       *string
	script_data     *map[string]interface{}
	course_media_id *string
	video_url       *string
	thumbnail_url   *string
	duration        *float64
	addduration     *float64
	error_message   *string
	created_at      *time.Time
	updated_at      *time.Time
	completed_at    *time.Time
	clearedFields   map[string]struct{}
	task            *string
	clearedtask     bool
	done            bool
	oldValue        func(context.Context) (*SubVideoTask, error)
	predicates      []predicate.SubVideoTask
}

var _ ent.Mutation = (*SubVideoTaskMutation)(nil)

// subvideotaskOption allows management of the mutation configuration using functional options.
type subvideotaskOption func(*SubVideoTaskMutation)

// newSubVideoTaskMutation creates new mutation for the SubVideoTask entity.
func newSubVideoTaskMutation(c config, op Op, opts ...subvideotaskOption) *SubVideoTaskMutation {
	m := &SubVideoTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeSubVideoTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubVideoTaskID sets the ID field of the mutation.
func withSubVideoTaskID(id string) subvideotaskOption {
	return func(m *SubVideoTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *SubVideoTask
		)
		m.oldValue = func(ctx context.Context) (*SubVideoTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SubVideoTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubVideoTask sets the old SubVideoTask of the mutation.
func withSubVideoTask(node *SubVideoTask) subvideotaskOption {
	return func(m *SubVideoTaskMutation) {
		m.oldValue = func(context.Context) (*SubVideoTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubVideoTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubVideoTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SubVideoTask entities.
func (m *SubVideoTaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubVideoTaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubVideoTaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SubVideoTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *SubVideoTaskMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *SubVideoTaskMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *SubVideoTaskMutation) ResetTaskID() {
	m.task = nil
}

// SetIndex sets the "index" field.
func (m *SubVideoTaskMutation) SetIndex(i int) {
	m.index = &i
	m.addindex = nil
}

// Index returns the value of the "index" field in the mutation.
func (m *SubVideoTaskMutation) Index() (r int, exists bool) {
	v := m.index
	if v == nil {
		return
	}
	return *v, true
}

// OldIndex returns the old "index" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIndex: %w", err)
	}
	return oldValue.Index, nil
}

// AddIndex adds i to the "index" field.
func (m *SubVideoTaskMutation) AddIndex(i int) {
	if m.addindex != nil {
		*m.addindex += i
	} else {
		m.addindex = &i
	}
}

// AddedIndex returns the value that was added to the "index" field in this mutation.
func (m *SubVideoTaskMutation) AddedIndex() (r int, exists bool) {
	v := m.addindex
	if v == nil {
		return
	}
	return *v, true
}

// ResetIndex resets all changes to the "index" field.
func (m *SubVideoTaskMutation) ResetIndex() {
	m.index = nil
	m.addindex = nil
}

// SetScriptStyle sets the "script_style" field.
func (m *SubVideoTaskMutation) SetScriptStyle(s string) {
	m.script_style = &s
}

// ScriptStyle returns the value of the "script_style" field in the mutation.
func (m *SubVideoTaskMutation) ScriptStyle() (r string, exists bool) {
	v := m.script_style
	if v == nil {
		return
	}
	return *v, true
}

// OldScriptStyle returns the old "script_style" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldScriptStyle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScriptStyle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScriptStyle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScriptStyle: %w", err)
	}
	return oldValue.ScriptStyle, nil
}

// ResetScriptStyle resets all changes to the "script_style" field.
func (m *SubVideoTaskMutation) ResetScriptStyle() {
	m.script_style = nil
}

// SetStatus sets the "status" field.
func (m *SubVideoTaskMutation) SetStatus(s subvideotask.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SubVideoTaskMutation) Status() (r subvideotask.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldStatus(ctx context.Context) (v subvideotask.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SubVideoTaskMutation) ResetStatus() {
	m.status = nil
}

// SetProgress sets the "progress" field.
func (m *SubVideoTaskMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *SubVideoTaskMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *SubVideoTaskMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *SubVideoTaskMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *SubVideoTaskMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetScriptID sets the "script_id" field.
func (m *SubVideoTaskMutation) SetScriptID(s string) {
	m.script_id = &s
}

// ScriptID returns the value of the "script_id" field in the mutation.
func (m *SubVideoTaskMutation) ScriptID() (r string, exists bool) {
	v := m.script_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScriptID returns the old "script_id" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldScriptID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScriptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScriptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScriptID: %w", err)
	}
	return oldValue.ScriptID, nil
}

// ClearScriptID clears the value of the "script_id" field.
func (m *SubVideoTaskMutation) ClearScriptID() {
	m.script_id = nil
	m.clearedFields[subvideotask.FieldScriptID] = struct{}{}
}

// ScriptIDCleared returns if the "script_id" field was cleared in this mutation.
func (m *SubVideoTaskMutation) ScriptIDCleared() bool {
	_, ok := m.clearedFields[subvideotask.FieldScriptID]
	return ok
}

// ResetScriptID resets all changes to the "script_id" field.
func (m *SubVideoTaskMutation) ResetScriptID() {
	m.script_id = nil
	delete(m.clearedFields, subvideotask.FieldScriptID)
}

// SetScriptData sets the "script_data" field.
func (m *SubVideoTaskMutation) SetScriptData(value map[string]interface{}) {
	m.script_data = &value
}

// ScriptData returns the value of the "script_data" field in the mutation.
func (m *SubVideoTaskMutation) ScriptData() (r map[string]interface{}, exists bool) {
	v := m.script_data
	if v == nil {
		return
	}
	return *v, true
}

// OldScriptData returns the old "script_data" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldScriptData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScriptData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScriptData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScriptData: %w", err)
	}
	return oldValue.ScriptData, nil
}

// ClearScriptData clears the value of the "script_data" field.
func (m *SubVideoTaskMutation) ClearScriptData() {
	m.script_data = nil
	m.clearedFields[subvideotask.FieldScriptData] = struct{}{}
}

// ScriptDataCleared returns if the "script_data" field was cleared in this mutation.
func (m *SubVideoTaskMutation) ScriptDataCleared() bool {
	_, ok := m.clearedFields[subvideotask.FieldScriptData]
	return ok
}

// ResetScriptData resets all changes to the "script_data" field.
func (m *SubVideoTaskMutation) ResetScriptData() {
	m.script_data = nil
	delete(m.clearedFields, subvideotask.FieldScriptData)
}

// SetCourseMediaID sets the "course_media_id" field.
func (m *SubVideoTaskMutation) SetCourseMediaID(s string) {
	m.course_media_id = &s
}

// CourseMediaID returns the value of the "course_media_id" field in the mutation.
func (m *SubVideoTaskMutation) CourseMediaID() (r string, exists bool) {
	v := m.course_media_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseMediaID returns the old "course_media_id" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldCourseMediaID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseMediaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseMediaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseMediaID: %w", err)
	}
	return oldValue.CourseMediaID, nil
}

// ClearCourseMediaID clears the value of the "course_media_id" field.
func (m *SubVideoTaskMutation) ClearCourseMediaID() {
	m.course_media_id = nil
	m.clearedFields[subvideotask.FieldCourseMediaID] = struct{}{}
}

// CourseMediaIDCleared returns if the "course_media_id" field was cleared in this mutation.
func (m *SubVideoTaskMutation) CourseMediaIDCleared() bool {
	_, ok := m.clearedFields[subvideotask.FieldCourseMediaID]
	return ok
}

// ResetCourseMediaID resets all changes to the "course_media_id" field.
func (m *SubVideoTaskMutation) ResetCourseMediaID() {
	m.course_media_id = nil
	delete(m.clearedFields, subvideotask.FieldCourseMediaID)
}

// SetVideoURL sets the "video_url" field.
func (m *SubVideoTaskMutation) SetVideoURL(s string) {
	m.video_url = &s
}

// VideoURL returns the value of the "video_url" field in the mutation.
func (m *SubVideoTaskMutation) VideoURL() (r string, exists bool) {
	v := m.video_url
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoURL returns the old "video_url" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldVideoURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoURL: %w", err)
	}
	return oldValue.VideoURL, nil
}

// ClearVideoURL clears the value of the "video_url" field.
func (m *SubVideoTaskMutation) ClearVideoURL() {
	m.video_url = nil
	m.clearedFields[subvideotask.FieldVideoURL] = struct{}{}
}

// VideoURLCleared returns if the "video_url" field was cleared in this mutation.
func (m *SubVideoTaskMutation) VideoURLCleared() bool {
	_, ok := m.clearedFields[subvideotask.FieldVideoURL]
	return ok
}

// ResetVideoURL resets all changes to the "video_url" field.
func (m *SubVideoTaskMutation) ResetVideoURL() {
	m.video_url = nil
	delete(m.clearedFields, subvideotask.FieldVideoURL)
}

// SetThumbnailURL sets the "thumbnail_url" field.
func (m *SubVideoTaskMutation) SetThumbnailURL(s string) {
	m.thumbnail_url = &s
}

// ThumbnailURL returns the value of the "thumbnail_url" field in the mutation.
func (m *SubVideoTaskMutation) ThumbnailURL() (r string, exists bool) {
	v := m.thumbnail_url
	if v == nil {
		return
	}
	return *v, true
}

// OldThumbnailURL returns the old "thumbnail_url" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldThumbnailURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThumbnailURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThumbnailURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThumbnailURL: %w", err)
	}
	return oldValue.ThumbnailURL, nil
}

// ClearThumbnailURL clears the value of the "thumbnail_url" field.
func (m *SubVideoTaskMutation) ClearThumbnailURL() {
	m.thumbnail_url = nil
	m.clearedFields[subvideotask.FieldThumbnailURL] = struct{}{}
}

// ThumbnailURLCleared returns if the "thumbnail_url" field was cleared in this mutation.
func (m *SubVideoTaskMutation) ThumbnailURLCleared() bool {
	_, ok := m.clearedFields[subvideotask.FieldThumbnailURL]
	return ok
}

// ResetThumbnailURL resets all changes to the "thumbnail_url" field.
func (m *SubVideoTaskMutation) ResetThumbnailURL() {
	m.thumbnail_url = nil
	delete(m.clearedFields, subvideotask.FieldThumbnailURL)
}

// SetDuration sets the "duration" field.
func (m *SubVideoTaskMutation) SetDuration(f float64) {
	m.duration = &f
	m.addduration = nil
}

// Duration returns the value of the "duration" field in the mutation.
func (m *SubVideoTaskMutation) Duration() (r float64, exists bool) {
	v := m.duration
	if v == nil {
		return
	}
	return *v, true
}

// OldDuration returns the old "duration" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldDuration(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuration: %w", err)
	}
	return oldValue.Duration, nil
}

// AddDuration adds f to the "duration" field.
func (m *SubVideoTaskMutation) AddDuration(f float64) {
	if m.addduration != nil {
		*m.addduration += f
	} else {
		m.addduration = &f
	}
}

// AddedDuration returns the value that was added to the "duration" field in this mutation.
func (m *SubVideoTaskMutation) AddedDuration() (r float64, exists bool) {
	v := m.addduration
	if v == nil {
		return
	}
	return *v, true
}

// ClearDuration clears the value of the "duration" field.
func (m *SubVideoTaskMutation) ClearDuration() {
	m.duration = nil
	m.addduration = nil
	m.clearedFields[subvideotask.FieldDuration] = struct{}{}
}

// DurationCleared returns if the "duration" field was cleared in this mutation.
func (m *SubVideoTaskMutation) DurationCleared() bool {
	_, ok := m.clearedFields[subvideotask.FieldDuration]
	return ok
}

// ResetDuration resets all changes to the "duration" field.
func (m *SubVideoTaskMutation) ResetDuration() {
	m.duration = nil
	m.addduration = nil
	delete(m.clearedFields, subvideotask.FieldDuration)
}

// SetErrorMessage sets the "error_message" field.
func (m *SubVideoTaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SubVideoTaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *SubVideoTaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[subvideotask.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SubVideoTaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[subvideotask.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SubVideoTaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, subvideotask.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *SubVideoTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubVideoTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubVideoTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SubVideoTaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SubVideoTaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SubVideoTaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *SubVideoTaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SubVideoTaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SubVideoTaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[subvideotask.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SubVideoTaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[subvideotask.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SubVideoTaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, subvideotask.FieldCompletedAt)
}

// ClearTask clears the "task" edge to the Task entity.
func (m *SubVideoTaskMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[subvideotask.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *SubVideoTaskMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *SubVideoTaskMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *SubVideoTaskMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the SubVideoTaskMutation builder.
func (m *SubVideoTaskMutation) Where(ps ...predicate.SubVideoTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubVideoTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubVideoTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SubVideoTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubVideoTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubVideoTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SubVideoTask).
func (m *SubVideoTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubVideoTaskMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.task != nil {
		fields = append(fields, subvideotask.FieldTaskID)
	}
	if m.index != nil {
		fields = append(fields, subvideotask.FieldIndex)
	}
	if m.script_style != nil {
		fields = append(fields, subvideotask.FieldScriptStyle)
	}
	if m.status != nil {
		fields = append(fields, subvideotask.FieldStatus)
	}
	if m.progress != nil {
		fields = append(fields, subvideotask.FieldProgress)
	}
	if m.script_id != nil {
		fields = append(fields, subvideotask.FieldScriptID)
	}
	if m.script_data != nil {
		fields = append(fields, subvideotask.FieldScriptData)
	}
	if m.course_media_id != nil {
		fields = append(fields, subvideotask.FieldCourseMediaID)
	}
	if m.video_url != nil {
		fields = append(fields, subvideotask.FieldVideoURL)
	}
	if m.thumbnail_url != nil {
		fields = append(fields, subvideotask.FieldThumbnailURL)
	}
	if m.duration != nil {
		fields = append(fields, subvideotask.FieldDuration)
	}
	if m.error_message != nil {
		fields = append(fields, subvideotask.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, subvideotask.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, subvideotask.FieldUpdatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, subvideotask.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubVideoTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subvideotask.FieldTaskID:
		return m.TaskID()
	case subvideotask.FieldIndex:
		return m.Index()
	case subvideotask.FieldScriptStyle:
		return m.ScriptStyle()
	case subvideotask.FieldStatus:
		return m.Status()
	case subvideotask.FieldProgress:
		return m.Progress()
	case subvideotask.FieldScriptID:
		return m.ScriptID()
	case subvideotask.FieldScriptData:
		return m.ScriptData()
	case subvideotask.FieldCourseMediaID:
		return m.CourseMediaID()
	case subvideotask.FieldVideoURL:
		return m.VideoURL()
	case subvideotask.FieldThumbnailURL:
		return m.ThumbnailURL()
	case subvideotask.FieldDuration:
		return m.Duration()
	case subvideotask.FieldErrorMessage:
		return m.ErrorMessage()
	case subvideotask.FieldCreatedAt:
		return m.CreatedAt()
	case subvideotask.FieldUpdatedAt:
		return m.UpdatedAt()
	case subvideotask.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubVideoTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subvideotask.FieldTaskID:
		return m.OldTaskID(ctx)
	case subvideotask.FieldIndex:
		return m.OldIndex(ctx)
	case subvideotask.FieldScriptStyle:
		return m.OldScriptStyle(ctx)
	case subvideotask.FieldStatus:
		return m.OldStatus(ctx)
	case subvideotask.FieldProgress:
		return m.OldProgress(ctx)
	case subvideotask.FieldScriptID:
		return m.OldScriptID(ctx)
	case subvideotask.FieldScriptData:
		return m.OldScriptData(ctx)
	case subvideotask.FieldCourseMediaID:
		return m.OldCourseMediaID(ctx)
	case subvideotask.FieldVideoURL:
		return m.OldVideoURL(ctx)
	case subvideotask.FieldThumbnailURL:
		return m.OldThumbnailURL(ctx)
	case subvideotask.FieldDuration:
		return m.OldDuration(ctx)
	case subvideotask.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case subvideotask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case subvideotask.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case subvideotask.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SubVideoTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubVideoTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subvideotask.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case subvideotask.FieldIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIndex(v)
		return nil
	case subvideotask.FieldScriptStyle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScriptStyle(v)
		return nil
	case subvideotask.FieldStatus:
		v, ok := value.(subvideotask.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case subvideotask.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case subvideotask.FieldScriptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScriptID(v)
		return nil
	case subvideotask.FieldScriptData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScriptData(v)
		return nil
	case subvideotask.FieldCourseMediaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseMediaID(v)
		return nil
	case subvideotask.FieldVideoURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoURL(v)
		return nil
	case subvideotask.FieldThumbnailURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThumbnailURL(v)
		return nil
	case subvideotask.FieldDuration:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuration(v)
		return nil
	case subvideotask.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case subvideotask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case subvideotask.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case subvideotask.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SubVideoTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubVideoTaskMutation) AddedFields() []string {
	var fields []string
	if m.addindex != nil {
		fields = append(fields, subvideotask.FieldIndex)
	}
	if m.addprogress != nil {
		fields = append(fields, subvideotask.FieldProgress)
	}
	if m.addduration != nil {
		fields = append(fields, subvideotask.FieldDuration)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubVideoTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case subvideotask.FieldIndex:
		return m.AddedIndex()
	case subvideotask.FieldProgress:
		return m.AddedProgress()
	case subvideotask.FieldDuration:
		return m.AddedDuration()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubVideoTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case subvideotask.FieldIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIndex(v)
		return nil
	case subvideotask.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	case subvideotask.FieldDuration:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDuration(v)
		return nil
	}
	return fmt.Errorf("unknown SubVideoTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubVideoTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(subvideotask.FieldScriptID) {
		fields = append(fields, subvideotask.FieldScriptID)
	}
	if m.FieldCleared(subvideotask.FieldScriptData) {
		fields = append(fields, subvideotask.FieldScriptData)
	}
	if m.FieldCleared(subvideotask.FieldCourseMediaID) {
		fields = append(fields, subvideotask.FieldCourseMediaID)
	}
	if m.FieldCleared(subvideotask.FieldVideoURL) {
		fields = append(fields, subvideotask.FieldVideoURL)
	}
	if m.FieldCleared(subvideotask.FieldThumbnailURL) {
		fields = append(fields, subvideotask.FieldThumbnailURL)
	}
	if m.FieldCleared(subvideotask.FieldDuration) {
		fields = append(fields, subvideotask.FieldDuration)
	}
	if m.FieldCleared(subvideotask.FieldErrorMessage) {
		fields = append(fields, subvideotask.FieldErrorMessage)
	}
	if m.FieldCleared(subvideotask.FieldCompletedAt) {
		fields = append(fields, subvideotask.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubVideoTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubVideoTaskMutation) ClearField(name string) error {
	switch name {
	case subvideotask.FieldScriptID:
		m.ClearScriptID()
		return nil
	case subvideotask.FieldScriptData:
		m.ClearScriptData()
		return nil
	case subvideotask.FieldCourseMediaID:
		m.ClearCourseMediaID()
		return nil
	case subvideotask.FieldVideoURL:
		m.ClearVideoURL()
		return nil
	case subvideotask.FieldThumbnailURL:
		m.ClearThumbnailURL()
		return nil
	case subvideotask.FieldDuration:
		m.ClearDuration()
		return nil
	case subvideotask.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case subvideotask.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown SubVideoTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubVideoTaskMutation) ResetField(name string) error {
	switch name {
	case subvideotask.FieldTaskID:
		m.ResetTaskID()
		return nil
	case subvideotask.FieldIndex:
		m.ResetIndex()
		return nil
	case subvideotask.FieldScriptStyle:
		m.ResetScriptStyle()
		return nil
	case subvideotask.FieldStatus:
		m.ResetStatus()
		return nil
	case subvideotask.FieldProgress:
		m.ResetProgress()
		return nil
	case subvideotask.FieldScriptID:
		m.ResetScriptID()
		return nil
	case subvideotask.FieldScriptData:
		m.ResetScriptData()
		return nil
	case subvideotask.FieldCourseMediaID:
		m.ResetCourseMediaID()
		return nil
	case subvideotask.FieldVideoURL:
		m.ResetVideoURL()
		return nil
	case subvideotask.FieldThumbnailURL:
		m.ResetThumbnailURL()
		return nil
	case subvideotask.FieldDuration:
		m.ResetDuration()
		return nil
	case subvideotask.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case subvideotask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case subvideotask.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case subvideotask.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown SubVideoTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubVideoTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, subvideotask.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubVideoTaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case subvideotask.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubVideoTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubVideoTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubVideoTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, subvideotask.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubVideoTaskMutation) EdgeCleared(name string) bool {
	switch name {
	case subvideotask.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubVideoTaskMutation) ClearEdge(name string) error {
	switch name {
	case subvideotask.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown SubVideoTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubVideoTaskMutation) ResetEdge(name string) error {
	switch name {
	case subvideotask.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown SubVideoTask edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	title               *string
	description         *string
	creator_id          *string
	task_type           *string
	status              *task.Status
	progress            *int
	addprogress         *int
	current_stage       *task.CurrentStage
	workspace_dir       *string
	source_file         *string
	script_style        *string
	persona_id          *string
	sub_video_count     *int
	addsub_video_count  *int
	completed_count     *int
	addcompleted_count  *int
	video_results       *[]map[string]interface{}
	appendvideo_results []map[string]interface{}
	error_message       *string
	created_at          *time.Time
	updated_at          *time.Time
	started_at          *time.Time
	completed_at        *time.Time
	pod_id              *string
	last_heartbeat_at   *time.Time
	clearedFields       map[string]struct{}
	sub_tasks           map[string]struct{}
	removedsub_tasks    map[string]struct{}
	clearedsub_tasks    bool
	media_items         map[string]struct{}
	removedmedia_items  map[string]struct{}
	clearedmedia_items  bool
	analyses            map[string]struct{}
	removedanalyses     map[string]struct{}
	clearedanalyses     bool
	scripts             map[string]struct{}
	removedscripts      map[string]struct{}
	clearedscripts      bool
	done                bool
	oldValue            func(context.Context) (*Task, error)
	predicates          []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TaskMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[task.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TaskMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[task.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, task.FieldDescription)
}

// SetCreatorID sets the "creator_id" field.
func (m *TaskMutation) SetCreatorID(s string) {
	m.creator_id = &s
}

// CreatorID returns the value of the "creator_id" field in the mutation.
func (m *TaskMutation) CreatorID() (r string, exists bool) {
	v := m.creator_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatorID returns the old "creator_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatorID: %w", err)
	}
	return oldValue.CreatorID, nil
}

// ClearCreatorID clears the value of the "creator_id" field.
func (m *TaskMutation) ClearCreatorID() {
	m.creator_id = nil
	m.clearedFields[task.FieldCreatorID] = struct{}{}
}

// CreatorIDCleared returns if the "creator_id" field was cleared in this mutation.
func (m *TaskMutation) CreatorIDCleared() bool {
	_, ok := m.clearedFields[task.FieldCreatorID]
	return ok
}

// ResetCreatorID resets all changes to the "creator_id" field.
func (m *TaskMutation) ResetCreatorID() {
	m.creator_id = nil
	delete(m.clearedFields, task.FieldCreatorID)
}

// SetTaskType sets the "task_type" field.
func (m *TaskMutation) SetTaskType(s string) {
	m.task_type = &s
}

// TaskType returns the value of the "task_type" field in the mutation.
func (m *TaskMutation) TaskType() (r string, exists bool) {
	v := m.task_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskType returns the old "task_type" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTaskType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskType: %w", err)
	}
	return oldValue.TaskType, nil
}

// ResetTaskType resets all changes to the "task_type" field.
func (m *TaskMutation) ResetTaskType() {
	m.task_type = nil
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetProgress sets the "progress" field.
func (m *TaskMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *TaskMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *TaskMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *TaskMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *TaskMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetCurrentStage sets the "current_stage" field.
func (m *TaskMutation) SetCurrentStage(ts task.CurrentStage) {
	m.current_stage = &ts
}

// CurrentStage returns the value of the "current_stage" field in the mutation.
func (m *TaskMutation) CurrentStage() (r task.CurrentStage, exists bool) {
	v := m.current_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStage returns the old "current_stage" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCurrentStage(ctx context.Context) (v task.CurrentStage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStage: %w", err)
	}
	return oldValue.CurrentStage, nil
}

// ResetCurrentStage resets all changes to the "current_stage" field.
func (m *TaskMutation) ResetCurrentStage() {
	m.current_stage = nil
}

// SetWorkspaceDir sets the "workspace_dir" field.
func (m *TaskMutation) SetWorkspaceDir(s string) {
	m.workspace_dir = &s
}

// WorkspaceDir returns the value of the "workspace_dir" field in the mutation.
func (m *TaskMutation) WorkspaceDir() (r string, exists bool) {
	v := m.workspace_dir
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceDir returns the old "workspace_dir" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldWorkspaceDir(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceDir is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceDir requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceDir: %w", err)
	}
	return oldValue.WorkspaceDir, nil
}

// ResetWorkspaceDir resets all changes to the "workspace_dir" field.
func (m *TaskMutation) ResetWorkspaceDir() {
	m.workspace_dir = nil
}

// SetSourceFile sets the "source_file" field.
func (m *TaskMutation) SetSourceFile(s string) {
	m.source_file = &s
}

// SourceFile returns the value of the "source_file" field in the mutation.
func (m *TaskMutation) SourceFile() (r string, exists bool) {
	v := m.source_file
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFile returns the old "source_file" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSourceFile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFile: %w", err)
	}
	return oldValue.SourceFile, nil
}

// ResetSourceFile resets all changes to the "source_file" field.
func (m *TaskMutation) ResetSourceFile() {
	m.source_file = nil
}

// SetScriptStyle sets the "script_style" field.
func (m *TaskMutation) SetScriptStyle(s string) {
	m.script_style = &s
}

// ScriptStyle returns the value of the "script_style" field in the mutation.
func (m *TaskMutation) ScriptStyle() (r string, exists bool) {
	v := m.script_style
	if v == nil {
		return
	}
	return *v, true
}

// OldScriptStyle returns the old "script_style" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldScriptStyle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScriptStyle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScriptStyle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScriptStyle: %w", err)
	}
	return oldValue.ScriptStyle, nil
}

// ResetScriptStyle resets all changes to the "script_style" field.
func (m *TaskMutation) ResetScriptStyle() {
	m.script_style = nil
}

// SetPersonaID sets the "persona_id" field.
func (m *TaskMutation) SetPersonaID(s string) {
	m.persona_id = &s
}

// PersonaID returns the value of the "persona_id" field in the mutation.
func (m *TaskMutation) PersonaID() (r string, exists bool) {
	v := m.persona_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonaID returns the old "persona_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPersonaID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonaID: %w", err)
	}
	return oldValue.PersonaID, nil
}

// ClearPersonaID clears the value of the "persona_id" field.
func (m *TaskMutation) ClearPersonaID() {
	m.persona_id = nil
	m.clearedFields[task.FieldPersonaID] = struct{}{}
}

// PersonaIDCleared returns if the "persona_id" field was cleared in this mutation.
func (m *TaskMutation) PersonaIDCleared() bool {
	_, ok := m.clearedFields[task.FieldPersonaID]
	return ok
}

// ResetPersonaID resets all changes to the "persona_id" field.
func (m *TaskMutation) ResetPersonaID() {
	m.persona_id = nil
	delete(m.clearedFields, task.FieldPersonaID)
}

// SetSubVideoCount sets the "sub_video_count" field.
func (m *TaskMutation) SetSubVideoCount(i int) {
	m.sub_video_count = &i
	m.addsub_video_count = nil
}

// SubVideoCount returns the value of the "sub_video_count" field in the mutation.
func (m *TaskMutation) SubVideoCount() (r int, exists bool) {
	v := m.sub_video_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSubVideoCount returns the old "sub_video_count" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSubVideoCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubVideoCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubVideoCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubVideoCount: %w", err)
	}
	return oldValue.SubVideoCount, nil
}

// AddSubVideoCount adds i to the "sub_video_count" field.
func (m *TaskMutation) AddSubVideoCount(i int) {
	if m.addsub_video_count != nil {
		*m.addsub_video_count += i
	} else {
		m.addsub_video_count = &i
	}
}

// AddedSubVideoCount returns the value that was added to the "sub_video_count" field in this mutation.
func (m *TaskMutation) AddedSubVideoCount() (r int, exists bool) {
	v := m.addsub_video_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSubVideoCount resets all changes to the "sub_video_count" field.
func (m *TaskMutation) ResetSubVideoCount() {
	m.sub_video_count = nil
	m.addsub_video_count = nil
}

// SetCompletedCount sets the "completed_count" field.
func (m *TaskMutation) SetCompletedCount(i int) {
	m.completed_count = &i
	m.addcompleted_count = nil
}

// CompletedCount returns the value of the "completed_count" field in the mutation.
func (m *TaskMutation) CompletedCount() (r int, exists bool) {
	v := m.completed_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedCount returns the old "completed_count" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedCount: %w", err)
	}
	return oldValue.CompletedCount, nil
}

// AddCompletedCount adds i to the "completed_count" field.
func (m *TaskMutation) AddCompletedCount(i int) {
	if m.addcompleted_count != nil {
		*m.addcompleted_count += i
	} else {
		m.addcompleted_count = &i
	}
}

// AddedCompletedCount returns the value that was added to the "completed_count" field in this mutation.
func (m *TaskMutation) AddedCompletedCount() (r int, exists bool) {
	v := m.addcompleted_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletedCount resets all changes to the "completed_count" field.
func (m *TaskMutation) ResetCompletedCount() {
	m.completed_count = nil
	m.addcompleted_count = nil
}

// SetVideoResults sets the "video_results" field.
func (m *TaskMutation) SetVideoResults(value []map[string]interface{}) {
	m.video_results = &value
	m.appendvideo_results = nil
}

// VideoResults returns the value of the "video_results" field in the mutation.
func (m *TaskMutation) VideoResults() (r []map[string]interface{}, exists bool) {
	v := m.video_results
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoResults returns the old "video_results" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldVideoResults(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoResults: %w", err)
	}
	return oldValue.VideoResults, nil
}

// AppendVideoResults adds value to the "video_results" field.
func (m *TaskMutation) AppendVideoResults(value []map[string]interface{}) {
	m.appendvideo_results = append(m.appendvideo_results, value...)
}

// AppendedVideoResults returns the list of values that were appended to the "video_results" field in this mutation.
func (m *TaskMutation) AppendedVideoResults() ([]map[string]interface{}, bool) {
	if len(m.appendvideo_results) == 0 {
		return nil, false
	}
	return m.appendvideo_results, true
}

// ClearVideoResults clears the value of the "video_results" field.
func (m *TaskMutation) ClearVideoResults() {
	m.video_results = nil
	m.appendvideo_results = nil
	m.clearedFields[task.FieldVideoResults] = struct{}{}
}

// VideoResultsCleared returns if the "video_results" field was cleared in this mutation.
func (m *TaskMutation) VideoResultsCleared() bool {
	_, ok := m.clearedFields[task.FieldVideoResults]
	return ok
}

// ResetVideoResults resets all changes to the "video_results" field.
func (m *TaskMutation) ResetVideoResults() {
	m.video_results = nil
	m.appendvideo_results = nil
	delete(m.clearedFields, task.FieldVideoResults)
}

// SetErrorMessage sets the "error_message" field.
func (m *TaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[task.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[task.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, task.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[task.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, task.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// SetPodID sets the "pod_id" field.
func (m *TaskMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *TaskMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *TaskMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[task.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *TaskMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[task.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *TaskMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, task.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *TaskMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *TaskMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *TaskMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[task.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *TaskMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[task.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *TaskMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, task.FieldLastHeartbeatAt)
}

// AddSubTaskIDs adds the "sub_tasks" edge to the SubVideoTask entity by ids.
func (m *TaskMutation) AddSubTaskIDs(ids ...string) {
	if m.sub_tasks == nil {
		m.sub_tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.sub_tasks[ids[i]] = struct{}{}
	}
}

// ClearSubTasks clears the "sub_tasks" edge to the SubVideoTask entity.
func (m *TaskMutation) ClearSubTasks() {
	m.clearedsub_tasks = true
}

// SubTasksCleared reports if the "sub_tasks" edge to the SubVideoTask entity was cleared.
func (m *TaskMutation) SubTasksCleared() bool {
	return m.clearedsub_tasks
}

// RemoveSubTaskIDs removes the "sub_tasks" edge to the SubVideoTask entity by IDs.
func (m *TaskMutation) RemoveSubTaskIDs(ids ...string) {
	if m.removedsub_tasks == nil {
		m.removedsub_tasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sub_tasks, ids[i])
		m.removedsub_tasks[ids[i]] = struct{}{}
	}
}

// RemovedSubTasks returns the removed IDs of the "sub_tasks" edge to the SubVideoTask entity.
func (m *TaskMutation) RemovedSubTasksIDs() (ids []string) {
	for id := range m.removedsub_tasks {
		ids = append(ids, id)
	}
	return
}

// SubTasksIDs returns the "sub_tasks" edge IDs in the mutation.
func (m *TaskMutation) SubTasksIDs() (ids []string) {
	for id := range m.sub_tasks {
		ids = append(ids, id)
	}
	return
}

// ResetSubTasks resets all changes to the "sub_tasks" edge.
func (m *TaskMutation) ResetSubTasks() {
	m.sub_tasks = nil
	m.clearedsub_tasks = false
	m.removedsub_tasks = nil
}

// AddMediaItemIDs adds the "media_items" edge to the MediaItem entity by ids.
func (m *TaskMutation) AddMediaItemIDs(ids ...string) {
	if m.media_items == nil {
		m.media_items = make(map[string]struct{})
	}
	for i := range ids {
		m.media_items[ids[i]] = struct{}{}
	}
}

// ClearMediaItems clears the "media_items" edge to the MediaItem entity.
func (m *TaskMutation) ClearMediaItems() {
	m.clearedmedia_items = true
}

// MediaItemsCleared reports if the "media_items" edge to the MediaItem entity was cleared.
func (m *TaskMutation) MediaItemsCleared() bool {
	return m.clearedmedia_items
}

// RemoveMediaItemIDs removes the "media_items" edge to the MediaItem entity by IDs.
func (m *TaskMutation) RemoveMediaItemIDs(ids ...string) {
	if m.removedmedia_items == nil {
		m.removedmedia_items = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.media_items, ids[i])
		m.removedmedia_items[ids[i]] = struct{}{}
	}
}

// RemovedMediaItems returns the removed IDs of the "media_items" edge to the MediaItem entity.
func (m *TaskMutation) RemovedMediaItemsIDs() (ids []string) {
	for id := range m.removedmedia_items {
		ids = append(ids, id)
	}
	return
}

// MediaItemsIDs returns the "media_items" edge IDs in the mutation.
func (m *TaskMutation) MediaItemsIDs() (ids []string) {
	for id := range m.media_items {
		ids = append(ids, id)
	}
	return
}

// ResetMediaItems resets all changes to the "media_items" edge.
func (m *TaskMutation) ResetMediaItems() {
	m.media_items = nil
	m.clearedmedia_items = false
	m.removedmedia_items = nil
}

// AddAnalysisIDs adds the "analyses" edge to the MaterialAnalysis entity by ids.
func (m *TaskMutation) AddAnalysisIDs(ids ...string) {
	if m.analyses == nil {
		m.analyses = make(map[string]struct{})
	}
	for i := range ids {
		m.analyses[ids[i]] = struct{}{}
	}
}

// ClearAnalyses clears the "analyses" edge to the MaterialAnalysis entity.
func (m *TaskMutation) ClearAnalyses() {
	m.clearedanalyses = true
}

// AnalysesCleared reports if the "analyses" edge to the MaterialAnalysis entity was cleared.
func (m *TaskMutation) AnalysesCleared() bool {
	return m.clearedanalyses
}

// RemoveAnalysisIDs removes the "analyses" edge to the MaterialAnalysis entity by IDs.
func (m *TaskMutation) RemoveAnalysisIDs(ids ...string) {
	if m.removedanalyses == nil {
		m.removedanalyses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.analyses, ids[i])
		m.removedanalyses[ids[i]] = struct{}{}
	}
}

// RemovedAnalyses returns the removed IDs of the "analyses" edge to the MaterialAnalysis entity.
func (m *TaskMutation) RemovedAnalysesIDs() (ids []string) {
	for id := range m.removedanalyses {
		ids = append(ids, id)
	}
	return
}

// AnalysesIDs returns the "analyses" edge IDs in the mutation.
func (m *TaskMutation) AnalysesIDs() (ids []string) {
	for id := range m.analyses {
		ids = append(ids, id)
	}
	return
}

// ResetAnalyses resets all changes to the "analyses" edge.
func (m *TaskMutation) ResetAnalyses() {
	m.analyses = nil
	m.clearedanalyses = false
	m.removedanalyses = nil
}

// AddScriptIDs adds the "scripts" edge to the ScriptContent entity by ids.
func (m *TaskMutation) AddScriptIDs(ids ...string) {
	if m.scripts == nil {
		m.scripts = make(map[string]struct{})
	}
	for i := range ids {
		m.scripts[ids[i]] = struct{}{}
	}
}

// ClearScripts clears the "scripts" edge to the ScriptContent entity.
func (m *TaskMutation) ClearScripts() {
	m.clearedscripts = true
}

// ScriptsCleared reports if the "scripts" edge to the ScriptContent entity was cleared.
func (m *TaskMutation) ScriptsCleared() bool {
	return m.clearedscripts
}

// RemoveScriptIDs removes the "scripts" edge to the ScriptContent entity by IDs.
func (m *TaskMutation) RemoveScriptIDs(ids ...string) {
	if m.removedscripts == nil {
		m.removedscripts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.scripts, ids[i])
		m.removedscripts[ids[i]] = struct{}{}
	}
}

// RemovedScripts returns the removed IDs of the "scripts" edge to the ScriptContent entity.
func (m *TaskMutation) RemovedScriptsIDs() (ids []string) {
	for id := range m.removedscripts {
		ids = append(ids, id)
	}
	return
}

// ScriptsIDs returns the "scripts" edge IDs in the mutation.
func (m *TaskMutation) ScriptsIDs() (ids []string) {
	for id := range m.scripts {
		ids = append(ids, id)
	}
	return
}

// ResetScripts resets all changes to the "scripts" edge.
func (m *TaskMutation) ResetScripts() {
	m.scripts = nil
	m.clearedscripts = false
	m.removedscripts = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m.creator_id != nil {
		fields = append(fields, task.FieldCreatorID)
	}
	if m.task_type != nil {
		fields = append(fields, task.FieldTaskType)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.progress != nil {
		fields = append(fields, task.FieldProgress)
	}
	if m.current_stage != nil {
		fields = append(fields, task.FieldCurrentStage)
	}
	if m.workspace_dir != nil {
		fields = append(fields, task.FieldWorkspaceDir)
	}
	if m.source_file != nil {
		fields = append(fields, task.FieldSourceFile)
	}
	if m.script_style != nil {
		fields = append(fields, task.FieldScriptStyle)
	}
	if m.persona_id != nil {
		fields = append(fields, task.FieldPersonaID)
	}
	if m.sub_video_count != nil {
		fields = append(fields, task.FieldSubVideoCount)
	}
	if m.completed_count != nil {
		fields = append(fields, task.FieldCompletedCount)
	}
	if m.video_results != nil {
		fields = append(fields, task.FieldVideoResults)
	}
	if m.error_message != nil {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.pod_id != nil {
		fields = append(fields, task.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, task.FieldLastHeartbeatAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldTitle:
		return m.Title()
	case task.FieldDescription:
		return m.Description()
	case task.FieldCreatorID:
		return m.CreatorID()
	case task.FieldTaskType:
		return m.TaskType()
	case task.FieldStatus:
		return m.Status()
	case task.FieldProgress:
		return m.Progress()
	case task.FieldCurrentStage:
		return m.CurrentStage()
	case task.FieldWorkspaceDir:
		return m.WorkspaceDir()
	case task.FieldSourceFile:
		return m.SourceFile()
	case task.FieldScriptStyle:
		return m.ScriptStyle()
	case task.FieldPersonaID:
		return m.PersonaID()
	case task.FieldSubVideoCount:
		return m.SubVideoCount()
	case task.FieldCompletedCount:
		return m.CompletedCount()
	case task.FieldVideoResults:
		return m.VideoResults()
	case task.FieldErrorMessage:
		return m.ErrorMessage()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	case task.FieldStartedAt:
		return m.StartedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	case task.FieldPodID:
		return m.PodID()
	case task.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldCreatorID:
		return m.OldCreatorID(ctx)
	case task.FieldTaskType:
		return m.OldTaskType(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldProgress:
		return m.OldProgress(ctx)
	case task.FieldCurrentStage:
		return m.OldCurrentStage(ctx)
	case task.FieldWorkspaceDir:
		return m.OldWorkspaceDir(ctx)
	case task.FieldSourceFile:
		return m.OldSourceFile(ctx)
	case task.FieldScriptStyle:
		return m.OldScriptStyle(ctx)
	case task.FieldPersonaID:
		return m.OldPersonaID(ctx)
	case task.FieldSubVideoCount:
		return m.OldSubVideoCount(ctx)
	case task.FieldCompletedCount:
		return m.OldCompletedCount(ctx)
	case task.FieldVideoResults:
		return m.OldVideoResults(ctx)
	case task.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case task.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case task.FieldPodID:
		return m.OldPodID(ctx)
	case task.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldCreatorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatorID(v)
		return nil
	case task.FieldTaskType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskType(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case task.FieldCurrentStage:
		v, ok := value.(task.CurrentStage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStage(v)
		return nil
	case task.FieldWorkspaceDir:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceDir(v)
		return nil
	case task.FieldSourceFile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFile(v)
		return nil
	case task.FieldScriptStyle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScriptStyle(v)
		return nil
	case task.FieldPersonaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonaID(v)
		return nil
	case task.FieldSubVideoCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubVideoCount(v)
		return nil
	case task.FieldCompletedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedCount(v)
		return nil
	case task.FieldVideoResults:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoResults(v)
		return nil
	case task.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case task.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case task.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case task.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addprogress != nil {
		fields = append(fields, task.FieldProgress)
	}
	if m.addsub_video_count != nil {
		fields = append(fields, task.FieldSubVideoCount)
	}
	if m.addcompleted_count != nil {
		fields = append(fields, task.FieldCompletedCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldProgress:
		return m.AddedProgress()
	case task.FieldSubVideoCount:
		return m.AddedSubVideoCount()
	case task.FieldCompletedCount:
		return m.AddedCompletedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	case task.FieldSubVideoCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubVideoCount(v)
		return nil
	case task.FieldCompletedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedCount(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldDescription) {
		fields = append(fields, task.FieldDescription)
	}
	if m.FieldCleared(task.FieldCreatorID) {
		fields = append(fields, task.FieldCreatorID)
	}
	if m.FieldCleared(task.FieldPersonaID) {
		fields = append(fields, task.FieldPersonaID)
	}
	if m.FieldCleared(task.FieldVideoResults) {
		fields = append(fields, task.FieldVideoResults)
	}
	if m.FieldCleared(task.FieldErrorMessage) {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.FieldCleared(task.FieldStartedAt) {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.FieldCleared(task.FieldPodID) {
		fields = append(fields, task.FieldPodID)
	}
	if m.FieldCleared(task.FieldLastHeartbeatAt) {
		fields = append(fields, task.FieldLastHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldDescription:
		m.ClearDescription()
		return nil
	case task.FieldCreatorID:
		m.ClearCreatorID()
		return nil
	case task.FieldPersonaID:
		m.ClearPersonaID()
		return nil
	case task.FieldVideoResults:
		m.ClearVideoResults()
		return nil
	case task.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case task.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case task.FieldPodID:
		m.ClearPodID()
		return nil
	case task.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldCreatorID:
		m.ResetCreatorID()
		return nil
	case task.FieldTaskType:
		m.ResetTaskType()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldProgress:
		m.ResetProgress()
		return nil
	case task.FieldCurrentStage:
		m.ResetCurrentStage()
		return nil
	case task.FieldWorkspaceDir:
		m.ResetWorkspaceDir()
		return nil
	case task.FieldSourceFile:
		m.ResetSourceFile()
		return nil
	case task.FieldScriptStyle:
		m.ResetScriptStyle()
		return nil
	case task.FieldPersonaID:
		m.ResetPersonaID()
		return nil
	case task.FieldSubVideoCount:
		m.ResetSubVideoCount()
		return nil
	case task.FieldCompletedCount:
		m.ResetCompletedCount()
		return nil
	case task.FieldVideoResults:
		m.ResetVideoResults()
		return nil
	case task.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case task.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case task.FieldPodID:
		m.ResetPodID()
		return nil
	case task.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.sub_tasks != nil {
		edges = append(edges, task.EdgeSubTasks)
	}
	if m.media_items != nil {
		edges = append(edges, task.EdgeMediaItems)
	}
	if m.analyses != nil {
		edges = append(edges, task.EdgeAnalyses)
	}
	if m.scripts != nil {
		edges = append(edges, task.EdgeScripts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeSubTasks:
		ids := make([]ent.Value, 0, len(m.sub_tasks))
		for id := range m.sub_tasks {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeMediaItems:
		ids := make([]ent.Value, 0, len(m.media_items))
		for id := range m.media_items {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeAnalyses:
		ids := make([]ent.Value, 0, len(m.analyses))
		for id := range m.analyses {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeScripts:
		ids := make([]ent.Value, 0, len(m.scripts))
		for id := range m.scripts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedsub_tasks != nil {
		edges = append(edges, task.EdgeSubTasks)
	}
	if m.removedmedia_items != nil {
		edges = append(edges, task.EdgeMediaItems)
	}
	if m.removedanalyses != nil {
		edges = append(edges, task.EdgeAnalyses)
	}
	if m.removedscripts != nil {
		edges = append(edges, task.EdgeScripts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeSubTasks:
		ids := make([]ent.Value, 0, len(m.removedsub_tasks))
		for id := range m.removedsub_tasks {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeMediaItems:
		ids := make([]ent.Value, 0, len(m.removedmedia_items))
		for id := range m.removedmedia_items {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeAnalyses:
		ids := make([]ent.Value, 0, len(m.removedanalyses))
		for id := range m.removedanalyses {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeScripts:
		ids := make([]ent.Value, 0, len(m.removedscripts))
		for id := range m.removedscripts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedsub_tasks {
		edges = append(edges, task.EdgeSubTasks)
	}
	if m.clearedmedia_items {
		edges = append(edges, task.EdgeMediaItems)
	}
	if m.clearedanalyses {
		edges = append(edges, task.EdgeAnalyses)
	}
	if m.clearedscripts {
		edges = append(edges, task.EdgeScripts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeSubTasks:
		return m.clearedsub_tasks
	case task.EdgeMediaItems:
		return m.clearedmedia_items
	case task.EdgeAnalyses:
		return m.clearedanalyses
	case task.EdgeScripts:
		return m.clearedscripts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeSubTasks:
		m.ResetSubTasks()
		return nil
	case task.EdgeMediaItems:
		m.ResetMediaItems()
		return nil
	case task.EdgeAnalyses:
		m.ResetAnalyses()
		return nil
	case task.EdgeScripts:
		m.ResetScripts()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}
