package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	t.Run("canonical fields", func(t *testing.T) {
		parsed, err := ParseResponse(`{
			"visual_description": "A bar chart of quarterly revenue.",
			"contextual_meaning": "Supports the growth claim in the text.",
			"key_objects": ["bar chart", "legend"],
			"emotional_tone": "neutral",
			"visual_style": "clean corporate",
			"quality_score": 0.8,
			"quality_level": "high",
			"usage_suggestions": ["use as an overview shot"]
		}`)
		require.NoError(t, err)
		assert.Equal(t, "A bar chart of quarterly revenue. Supports the growth claim in the text.", parsed.Description)
		assert.Equal(t, []string{"bar chart", "legend"}, parsed.KeyObjects)
		assert.Equal(t, "neutral", parsed.EmotionalTone)
		assert.InDelta(t, 0.8, parsed.QualityScore, 0.001)
	})

	t.Run("field aliases resolve", func(t *testing.T) {
		parsed, err := ParseResponse(`{
			"description": "A terminal screenshot.",
			"contextual_description": "Shows the command being discussed.",
			"keywords": ["terminal", "shell"]
		}`)
		require.NoError(t, err)
		assert.Contains(t, parsed.Description, "terminal screenshot")
		assert.Contains(t, parsed.Description, "command being discussed")
		assert.Equal(t, []string{"terminal", "shell"}, parsed.KeyObjects)
	})

	t.Run("tags alias for key objects", func(t *testing.T) {
		parsed, err := ParseResponse(`{"visual_description": "x", "tags": ["a", "b"]}`)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, parsed.KeyObjects)
	})

	t.Run("fenced response", func(t *testing.T) {
		parsed, err := ParseResponse("```json\n{\"visual_description\": \"a photo of a bridge\"}\n```")
		require.NoError(t, err)
		assert.Equal(t, "a photo of a bridge", parsed.Description)
	})

	t.Run("truncated response", func(t *testing.T) {
		parsed, err := ParseResponse(`{"visual_description": "a photo that was cut off mid-sent`)
		require.NoError(t, err)
		assert.Contains(t, parsed.Description, "cut off")
	})

	t.Run("quality score clamped", func(t *testing.T) {
		parsed, err := ParseResponse(`{"visual_description": "x", "quality_score": 8.5}`)
		require.NoError(t, err)
		assert.Equal(t, 1.0, parsed.QualityScore)
	})

	t.Run("no description fails", func(t *testing.T) {
		_, err := ParseResponse(`{"key_objects": ["a"]}`)
		assert.Error(t, err)
	})

	t.Run("no json fails", func(t *testing.T) {
		_, err := ParseResponse("the image shows a cat")
		assert.Error(t, err)
	})
}
