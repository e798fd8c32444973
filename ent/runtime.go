// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/textloom/textloom/ent/materialanalysis"
	"github.com/textloom/textloom/ent/mediaitem"
	"github.com/textloom/textloom/ent/persona"
	"github.com/textloom/textloom/ent/prompttemplate"
	"github.com/textloom/textloom/ent/schema"
	"github.com/textloom/textloom/ent/scriptcontent"
	"github.com/textloom/textloom/ent/subvideotask"
	"github.com/textloom/textloom/ent/task"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	materialanalysisFields := schema.MaterialAnalysis{}.Fields()
	_ = materialanalysisFields
	// materialanalysisDescCreatedAt is the schema descriptor for created_at field.
	materialanalysisDescCreatedAt := materialanalysisFields[19].Descriptor()
	// materialanalysis.DefaultCreatedAt holds the default value on creation for the created_at field.
	materialanalysis.DefaultCreatedAt = materialanalysisDescCreatedAt.Default.(func() time.Time)
	// materialanalysisDescUpdatedAt is the schema descriptor for updated_at field.
	materialanalysisDescUpdatedAt := materialanalysisFields[20].Descriptor()
	// materialanalysis.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	materialanalysis.DefaultUpdatedAt = materialanalysisDescUpdatedAt.Default.(func() time.Time)
	// materialanalysis.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	materialanalysis.UpdateDefaultUpdatedAt = materialanalysisDescUpdatedAt.UpdateDefault.(func() time.Time)
	mediaitemFields := schema.MediaItem{}.Fields()
	_ = mediaitemFields
	// mediaitemDescPosition is the schema descriptor for position field.
	mediaitemDescPosition := mediaitemFields[15].Descriptor()
	// mediaitem.DefaultPosition holds the default value on creation for the position field.
	mediaitem.DefaultPosition = mediaitemDescPosition.Default.(int)
	// mediaitemDescCreatedAt is the schema descriptor for created_at field.
	mediaitemDescCreatedAt := mediaitemFields[16].Descriptor()
	// mediaitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	mediaitem.DefaultCreatedAt = mediaitemDescCreatedAt.Default.(func() time.Time)
	personaFields := schema.Persona{}.Fields()
	_ = personaFields
	// personaDescIsPreset is the schema descriptor for is_preset field.
	personaDescIsPreset := personaFields[9].Descriptor()
	// persona.DefaultIsPreset holds the default value on creation for the is_preset field.
	persona.DefaultIsPreset = personaDescIsPreset.Default.(bool)
	// personaDescCreatedAt is the schema descriptor for created_at field.
	personaDescCreatedAt := personaFields[10].Descriptor()
	// persona.DefaultCreatedAt holds the default value on creation for the created_at field.
	persona.DefaultCreatedAt = personaDescCreatedAt.Default.(func() time.Time)
	prompttemplateFields := schema.PromptTemplate{}.Fields()
	_ = prompttemplateFields
	// prompttemplateDescTemplateStyle is the schema descriptor for template_style field.
	prompttemplateDescTemplateStyle := prompttemplateFields[2].Descriptor()
	// prompttemplate.DefaultTemplateStyle holds the default value on creation for the template_style field.
	prompttemplate.DefaultTemplateStyle = prompttemplateDescTemplateStyle.Default.(string)
	// prompttemplateDescCreatedAt is the schema descriptor for created_at field.
	prompttemplateDescCreatedAt := prompttemplateFields[5].Descriptor()
	// prompttemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	prompttemplate.DefaultCreatedAt = prompttemplateDescCreatedAt.Default.(func() time.Time)
	scriptcontentFields := schema.ScriptContent{}.Fields()
	_ = scriptcontentFields
	// scriptcontentDescStyle is the schema descriptor for style field.
	scriptcontentDescStyle := scriptcontentFields[4].Descriptor()
	// scriptcontent.DefaultStyle holds the default value on creation for the style field.
	scriptcontent.DefaultStyle = scriptcontentDescStyle.Default.(string)
	// scriptcontentDescEstimatedDuration is the schema descriptor for estimated_duration field.
	scriptcontentDescEstimatedDuration := scriptcontentFields[12].Descriptor()
	// scriptcontent.DefaultEstimatedDuration holds the default value on creation for the estimated_duration field.
	scriptcontent.DefaultEstimatedDuration = scriptcontentDescEstimatedDuration.Default.(int)
	// scriptcontentDescWordCount is the schema descriptor for word_count field.
	scriptcontentDescWordCount := scriptcontentFields[13].Descriptor()
	// scriptcontent.DefaultWordCount holds the default value on creation for the word_count field.
	scriptcontent.DefaultWordCount = scriptcontentDescWordCount.Default.(int)
	// scriptcontentDescMaterialCount is the schema descriptor for material_count field.
	scriptcontentDescMaterialCount := scriptcontentFields[14].Descriptor()
	// scriptcontent.DefaultMaterialCount holds the default value on creation for the material_count field.
	scriptcontent.DefaultMaterialCount = scriptcontentDescMaterialCount.Default.(int)
	// scriptcontentDescCreatedAt is the schema descriptor for created_at field.
	scriptcontentDescCreatedAt := scriptcontentFields[18].Descriptor()
	// scriptcontent.DefaultCreatedAt holds the default value on creation for the created_at field.
	scriptcontent.DefaultCreatedAt = scriptcontentDescCreatedAt.Default.(func() time.Time)
	// scriptcontentDescUpdatedAt is the schema descriptor for updated_at field.
	scriptcontentDescUpdatedAt := scriptcontentFields[19].Descriptor()
	// scriptcontent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	scriptcontent.DefaultUpdatedAt = scriptcontentDescUpdatedAt.Default.(func() time.Time)
	// scriptcontent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	scriptcontent.UpdateDefaultUpdatedAt = scriptcontentDescUpdatedAt.UpdateDefault.(func() time.Time)
	subvideotaskFields := schema.SubVideoTask{}.Fields()
	_ = subvideotaskFields
	// subvideotaskDescScriptStyle is the schema descriptor for script_style field.
	subvideotaskDescScriptStyle := subvideotaskFields[3].Descriptor()
	// subvideotask.DefaultScriptStyle holds the default value on creation for the script_style field.
	subvideotask.DefaultScriptStyle = subvideotaskDescScriptStyle.Default.(string)
	// subvideotaskDescProgress is the schema descriptor for progress field.
	subvideotaskDescProgress := subvideotaskFields[5].Descriptor()
	// subvideotask.DefaultProgress holds the default value on creation for the progress field.
	subvideotask.DefaultProgress = subvideotaskDescProgress.Default.(int)
	// subvideotaskDescCreatedAt is the schema descriptor for created_at field.
	subvideotaskDescCreatedAt := subvideotaskFields[13].Descriptor()
	// subvideotask.DefaultCreatedAt holds the default value on creation for the created_at field.
	subvideotask.DefaultCreatedAt = subvideotaskDescCreatedAt.Default.(func() time.Time)
	// subvideotaskDescUpdatedAt is the schema descriptor for updated_at field.
	subvideotaskDescUpdatedAt := subvideotaskFields[14].Descriptor()
	// subvideotask.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subvideotask.DefaultUpdatedAt = subvideotaskDescUpdatedAt.Default.(func() time.Time)
	// subvideotask.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subvideotask.UpdateDefaultUpdatedAt = subvideotaskDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescTaskType is the schema descriptor for task_type field.
	taskDescTaskType := taskFields[4].Descriptor()
	// task.DefaultTaskType holds the default value on creation for the task_type field.
	task.DefaultTaskType = taskDescTaskType.Default.(string)
	// taskDescProgress is the schema descriptor for progress field.
	taskDescProgress := taskFields[6].Descriptor()
	// task.DefaultProgress holds the default value on creation for the progress field.
	task.DefaultProgress = taskDescProgress.Default.(int)
	// taskDescScriptStyle is the schema descriptor for script_style field.
	taskDescScriptStyle := taskFields[10].Descriptor()
	// task.DefaultScriptStyle holds the default value on creation for the script_style field.
	task.DefaultScriptStyle = taskDescScriptStyle.Default.(string)
	// taskDescSubVideoCount is the schema descriptor for sub_video_count field.
	taskDescSubVideoCount := taskFields[12].Descriptor()
	// task.DefaultSubVideoCount holds the default value on creation for the sub_video_count field.
	task.DefaultSubVideoCount = taskDescSubVideoCount.Default.(int)
	// taskDescCompletedCount is the schema descriptor for completed_count field.
	taskDescCompletedCount := taskFields[13].Descriptor()
	// task.DefaultCompletedCount holds the default value on creation for the completed_count field.
	task.DefaultCompletedCount = taskDescCompletedCount.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[16].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[17].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
}
