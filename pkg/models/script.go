package models

// Scene is one normalized scene of a generated script.
type Scene struct {
	SceneID int `json:"scene_id"`

	// Timing is the scene window formatted "As-Bs", e.g. "0s-12s".
	Timing string `json:"timing"`

	Narration string `json:"narration"`

	// MaterialID references exactly one declared material, or nil for a
	// narration-only scene.
	MaterialID *string `json:"material_id"`

	Description string `json:"description"`
}

// ScriptResult is the normalized LLM output for one sub-task.
type ScriptResult struct {
	Title             string            `json:"title"`
	Titles            []string          `json:"titles"`
	Description       string            `json:"description"`
	Narration         string            `json:"narration"`
	Scenes            []Scene           `json:"scenes"`
	MaterialMapping   map[string]string `json:"material_mapping"`
	Tags              []string          `json:"tags"`
	EstimatedDuration int               `json:"estimated_duration"`
	WordCount         int               `json:"word_count"`
	MaterialCount     int               `json:"material_count"`

	// RawPrompt / RawResponse are kept for audit.
	RawPrompt   string `json:"-"`
	RawResponse string `json:"-"`
}

// CondensedScript is the sub-task script_data blob served to the HTTP
// read surface.
func (r *ScriptResult) CondensedScript() map[string]interface{} {
	return map[string]interface{}{
		"titles":             r.Titles,
		"narration":          r.Narration,
		"scenes":             r.Scenes,
		"material_mapping":   r.MaterialMapping,
		"description":        r.Description,
		"tags":               r.Tags,
		"estimated_duration": r.EstimatedDuration,
		"word_count":         r.WordCount,
		"scene_count":        len(r.Scenes),
		"material_count":     r.MaterialCount,
	}
}

// MaterialContext describes one analyzed material offered to the script LLM.
type MaterialContext struct {
	MaterialID  string
	MediaType   MediaType
	Description string
	URL         string
	Duration    float64
}

// PersonaInfo is the subset of a persona injected into script prompts.
type PersonaInfo struct {
	Name            string
	PersonaType     string
	Style           string
	TargetAudience  string
	Characteristics []string
	Tone            string
	Keywords        []string
	CustomPrompt    string
}
