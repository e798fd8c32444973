package script

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/textloom/textloom/pkg/jsonx"
	"github.com/textloom/textloom/pkg/models"
)

// rawScript mirrors the model output before normalization. material_id may
// arrive as a string, a number, or null, so scenes decode leniently.
type rawScript struct {
	Title             string            `json:"title"`
	Titles            []string          `json:"titles"`
	Description       string            `json:"description"`
	Narration         string            `json:"narration"`
	Scenes            []rawScene        `json:"scenes"`
	MaterialMapping   map[string]string `json:"material_mapping"`
	Tags              []string          `json:"tags"`
	EstimatedDuration float64           `json:"estimated_duration"`
}

type rawScene struct {
	SceneID     int             `json:"scene_id"`
	Timing      string          `json:"timing"`
	Narration   string          `json:"narration"`
	MaterialID  json.RawMessage `json:"material_id"`
	Description string          `json:"description"`
}

// ParseResponse decodes and normalizes one script-generation response.
// Declared material ids are the only ones a scene may reference; undeclared
// references are nulled out rather than failing the whole script.
func ParseResponse(response, style string, declaredIDs []string) (*models.ScriptResult, error) {
	var raw rawScript
	if err := jsonx.Decode(response, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse script response: %w", err)
	}

	if strings.TrimSpace(raw.Narration) == "" && len(raw.Scenes) == 0 {
		return nil, fmt.Errorf("script response has neither narration nor scenes")
	}

	declared := make(map[string]bool, len(declaredIDs))
	for _, id := range declaredIDs {
		declared[id] = true
	}

	result := &models.ScriptResult{
		Title:           strings.TrimSpace(raw.Title),
		Titles:          raw.Titles,
		Description:     strings.TrimSpace(raw.Description),
		Narration:       strings.TrimSpace(raw.Narration),
		MaterialMapping: raw.MaterialMapping,
		Tags:            raw.Tags,
		RawResponse:     response,
	}
	if result.Title == "" && len(result.Titles) > 0 {
		result.Title = result.Titles[0]
	}
	if len(result.Titles) == 0 && result.Title != "" {
		result.Titles = []string{result.Title}
	}

	usedMaterials := map[string]bool{}
	cursor := 0.0
	for i, rs := range raw.Scenes {
		scene := models.Scene{
			SceneID:     rs.SceneID,
			Narration:   strings.TrimSpace(rs.Narration),
			Description: strings.TrimSpace(rs.Description),
		}
		if scene.SceneID == 0 {
			scene.SceneID = i + 1
		}
		if scene.Narration == "" {
			// Downstream stages must never see null narration.
			scene.Narration = fmt.Sprintf("[%s narration for scene %d]", style, scene.SceneID)
		}

		if id := decodeMaterialID(rs.MaterialID); id != "" && declared[id] {
			scene.MaterialID = &id
			usedMaterials[id] = true
		}

		scene.Timing, cursor = normalizeTiming(rs.Timing, cursor, scene.Narration)
		result.Scenes = append(result.Scenes, scene)
	}

	// Rebuild the full narration from scenes when the model omitted it.
	if result.Narration == "" {
		parts := make([]string, 0, len(result.Scenes))
		for _, s := range result.Scenes {
			parts = append(parts, s.Narration)
		}
		result.Narration = strings.Join(parts, " ")
	}

	result.WordCount = utf8.RuneCountInString(result.Narration)
	result.MaterialCount = len(usedMaterials)

	result.EstimatedDuration = int(raw.EstimatedDuration)
	if result.EstimatedDuration <= 0 {
		result.EstimatedDuration = estimateDuration(result.Narration)
	}

	return result, nil
}

// decodeMaterialID accepts a string, a number, or null.
func decodeMaterialID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", n), "0"), ".")
	}
	return ""
}

// normalizeTiming forces the "As-Bs" shape. When the model's timing does not
// parse, a window is synthesized from the narration length at speaking pace,
// continuing from the previous scene's end.
func normalizeTiming(timing string, cursor float64, narration string) (string, float64) {
	start, end, ok := parseTiming(timing)
	if !ok || end <= start {
		start = cursor
		end = cursor + float64(estimateDuration(narration))
	}
	return fmt.Sprintf("%ss-%ss", formatSeconds(start), formatSeconds(end)), end
}

// parseTiming accepts "As-Bs" with optional fraction and stray whitespace.
func parseTiming(timing string) (start, end float64, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(timing), "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	start, ok1 := parseSeconds(parts[0])
	end, ok2 := parseSeconds(parts[1])
	return start, end, ok1 && ok2
}

func parseSeconds(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "s"))
	if s == "" {
		return 0, false
	}
	var v float64
	if _, err := fmt.Sscanf(s, "%f", &v); err != nil {
		return 0, false
	}
	return v, true
}

func formatSeconds(v float64) string {
	if v == float64(int(v)) {
		return fmt.Sprintf("%d", int(v))
	}
	return strings.TrimRight(fmt.Sprintf("%.1f", v), "0")
}

// estimateDuration derives a duration in seconds from narration length at a
// 200 chars/minute speaking pace, clamped to [15, 120].
func estimateDuration(narration string) int {
	chars := utf8.RuneCountInString(narration)
	seconds := float64(chars) / 200.0 * 60.0
	if seconds < 15 {
		return 15
	}
	if seconds > 120 {
		return 120
	}
	return int(seconds)
}
