// Package models defines the typed records passed between pipeline stages
// and between the service layer and its callers.
package models

// CreateTaskRequest is the input for persisting a new task row.
// The HTTP collaborator pre-assembles the workspace before submitting.
type CreateTaskRequest struct {
	TaskID        string
	Title         string
	Description   string
	CreatorID     string
	WorkspaceDir  string
	SourceFile    string
	ScriptStyle   string
	PersonaID     *string
	SubVideoCount int
}

// PipelineJob is the payload of one pipeline queue message.
type PipelineJob struct {
	TaskID       string  `json:"task_id"`
	SourceFile   string  `json:"source_file"`
	WorkspaceDir string  `json:"workspace_dir"`
	Mode         string  `json:"mode"`
	PersonaID    *string `json:"persona_id,omitempty"`
	SubCount     int     `json:"sub_count"`
}

// SubtitleJob is the payload handed to the dynamic-subtitle post-processor
// when a merge completes with subtitles enabled.
type SubtitleJob struct {
	TaskID       string `json:"task_id"`
	SubTaskID    string `json:"sub_task_id"`
	VideoURL     string `json:"video_url"`
	SubtitlesURL string `json:"subtitles_url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Duration     float64 `json:"duration,omitempty"`
}

// VideoResult summarizes one finished sub-video for the parent task row.
type VideoResult struct {
	SubTaskID    string  `json:"sub_task_id"`
	Index        int     `json:"index"`
	Status       string  `json:"status"`
	VideoURL     string  `json:"video_url,omitempty"`
	ThumbnailURL string  `json:"thumbnail_url,omitempty"`
	Duration     float64 `json:"duration,omitempty"`
	ErrorMessage string  `json:"error_message,omitempty"`
}

// TaskResult is the terminal outcome of one orchestration run. Intermediate
// state is written progressively to the store; this only reports stages 1-5
// up to merge submission — the reconciler converges the rest asynchronously.
type TaskResult struct {
	TaskID         string
	MediaCount     int
	AnalyzedCount  int
	ScriptCount    int
	SubmittedCount int
}
