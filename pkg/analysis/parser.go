package analysis

import (
	"fmt"
	"strings"

	"github.com/textloom/textloom/pkg/jsonx"
)

// rawAnalysis is the decoded model output before alias resolution. Models
// drift between field spellings, so every known alias is accepted.
type rawAnalysis struct {
	VisualDescription     string   `json:"visual_description"`
	Description           string   `json:"description"`
	ContextualMeaning     string   `json:"contextual_meaning"`
	ContextualDescription string   `json:"contextual_description"`
	KeyObjects            []string `json:"key_objects"`
	Keywords              []string `json:"keywords"`
	Tags                  []string `json:"tags"`
	EmotionalTone         string   `json:"emotional_tone"`
	VisualStyle           string   `json:"visual_style"`
	QualityScore          float64  `json:"quality_score"`
	QualityLevel          string   `json:"quality_level"`
	UsageSuggestions      []string `json:"usage_suggestions"`
}

// Parsed is the canonical analysis output.
type Parsed struct {
	Description   string
	KeyObjects    []string
	EmotionalTone string
	VisualStyle   string
	QualityScore  float64
	QualityLevel  string
	Suggestions   []string
}

// ParseResponse decodes one model response, tolerating fenced, prefixed, and
// truncated output, and resolves field aliases to the canonical names.
func ParseResponse(response string) (*Parsed, error) {
	var raw rawAnalysis
	if err := jsonx.Decode(response, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}

	description := firstNonEmpty(raw.VisualDescription, raw.Description)
	contextual := firstNonEmpty(raw.ContextualMeaning, raw.ContextualDescription)
	if description == "" {
		description = contextual
	} else if contextual != "" {
		description = description + " " + contextual
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("analysis response has no description")
	}

	keyObjects := raw.KeyObjects
	if len(keyObjects) == 0 {
		keyObjects = raw.Keywords
	}
	if len(keyObjects) == 0 {
		keyObjects = raw.Tags
	}

	score := raw.QualityScore
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	return &Parsed{
		Description:   strings.TrimSpace(description),
		KeyObjects:    keyObjects,
		EmotionalTone: raw.EmotionalTone,
		VisualStyle:   raw.VisualStyle,
		QualityScore:  score,
		QualityLevel:  raw.QualityLevel,
		Suggestions:   raw.UsageSuggestions,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
