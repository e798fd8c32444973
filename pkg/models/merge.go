package models

// MergeScene is one scene of a merge submission: a media URL shown while a
// narration fragment plays.
type MergeScene struct {
	SceneID   int     `json:"scene_id"`
	Narration string  `json:"narration"`
	MediaURL  string  `json:"media_url,omitempty"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
}

// MergeSubmission is the request sent to the external video-merge service.
type MergeSubmission struct {
	TaskID    string       `json:"task_id"`
	SubTaskID string       `json:"sub_task_id"`
	Title     string       `json:"title"`
	Narration string       `json:"narration"`
	Scenes    []MergeScene `json:"scenes"`
	MediaURLs []string     `json:"media_urls"`
	Subtitles bool         `json:"subtitles"`
}

// Merge service status codes. Anything else means still processing.
const (
	MergeStatusSucceeded = 2
	MergeStatusFailed    = 3
)

// MergeStatus is the external merge service's view of one submitted job.
type MergeStatus struct {
	CourseMediaID  string   `json:"course_media_id"`
	Status         int      `json:"status"`
	MergeVideo     string   `json:"merge_video,omitempty"`
	SnapshotURL    string   `json:"snapshot_url,omitempty"`
	Duration       float64  `json:"duration,omitempty"`
	FailureReasons []string `json:"failure_reasons,omitempty"`
	SubtitlesURL   string   `json:"subtitles_url,omitempty"`
}
