package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	declared := []string{"mat-1", "mat-2"}

	t.Run("complete response", func(t *testing.T) {
		result, err := ParseResponse(`{
			"title": "How Deployments Work",
			"titles": ["How Deployments Work", "Deployments Explained"],
			"description": "A walkthrough of the deployment flow.",
			"narration": "Deployments move code from commit to production.",
			"scenes": [
				{"scene_id": 1, "timing": "0s-10s", "narration": "First, the commit lands.", "material_id": "mat-1", "description": "diagram"},
				{"scene_id": 2, "timing": "10s-25s", "narration": "Then the pipeline runs.", "material_id": "mat-2", "description": "pipeline"}
			],
			"material_mapping": {"mat-1": "opening shot"},
			"tags": ["ci", "deploy"],
			"estimated_duration": 42
		}`, "professional", declared)
		require.NoError(t, err)

		assert.Equal(t, "How Deployments Work", result.Title)
		assert.Len(t, result.Scenes, 2)
		assert.Equal(t, "0s-10s", result.Scenes[0].Timing)
		require.NotNil(t, result.Scenes[1].MaterialID)
		assert.Equal(t, "mat-2", *result.Scenes[1].MaterialID)
		assert.Equal(t, 42, result.EstimatedDuration)
		assert.Equal(t, 2, result.MaterialCount)
	})

	t.Run("undeclared material id is nulled", func(t *testing.T) {
		result, err := ParseResponse(`{
			"narration": "x",
			"scenes": [{"narration": "a scene", "material_id": "mat-99"}]
		}`, "professional", declared)
		require.NoError(t, err)
		assert.Nil(t, result.Scenes[0].MaterialID)
		assert.Equal(t, 0, result.MaterialCount)
	})

	t.Run("numeric and null material ids", func(t *testing.T) {
		result, err := ParseResponse(`{
			"narration": "x",
			"scenes": [
				{"narration": "a", "material_id": 7},
				{"narration": "b", "material_id": null}
			]
		}`, "professional", []string{"7"})
		require.NoError(t, err)
		require.NotNil(t, result.Scenes[0].MaterialID)
		assert.Equal(t, "7", *result.Scenes[0].MaterialID)
		assert.Nil(t, result.Scenes[1].MaterialID)
	})

	t.Run("missing scene fields are back-filled", func(t *testing.T) {
		result, err := ParseResponse(`{
			"narration": "full narration",
			"scenes": [{"description": "silent b-roll"}, {"narration": "spoken"}]
		}`, "casual", declared)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Scenes[0].SceneID)
		assert.Equal(t, 2, result.Scenes[1].SceneID)
		assert.Equal(t, "[casual narration for scene 1]", result.Scenes[0].Narration)
		assert.Equal(t, "spoken", result.Scenes[1].Narration)
	})

	t.Run("unparseable timing is synthesized from the cursor", func(t *testing.T) {
		result, err := ParseResponse(`{
			"narration": "x",
			"scenes": [
				{"narration": "short", "timing": "0s-20s"},
				{"narration": "short", "timing": "whenever"},
				{"narration": "short"}
			]
		}`, "professional", nil)
		require.NoError(t, err)

		assert.Equal(t, "0s-20s", result.Scenes[0].Timing)
		// Synthesized windows continue from the previous end at the 15s floor.
		assert.Equal(t, "20s-35s", result.Scenes[1].Timing)
		assert.Equal(t, "35s-50s", result.Scenes[2].Timing)
	})

	t.Run("narration rebuilt from scenes", func(t *testing.T) {
		result, err := ParseResponse(`{
			"scenes": [{"narration": "part one."}, {"narration": "part two."}]
		}`, "professional", nil)
		require.NoError(t, err)
		assert.Equal(t, "part one. part two.", result.Narration)
		assert.Equal(t, len([]rune("part one. part two.")), result.WordCount)
	})

	t.Run("title and titles cross-fill", func(t *testing.T) {
		result, err := ParseResponse(`{"titles": ["Only Variant"], "narration": "x"}`, "professional", nil)
		require.NoError(t, err)
		assert.Equal(t, "Only Variant", result.Title)

		result, err = ParseResponse(`{"title": "Solo", "narration": "x"}`, "professional", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"Solo"}, result.Titles)
	})

	t.Run("fenced and truncated responses recover", func(t *testing.T) {
		result, err := ParseResponse("```json\n{\"narration\": \"fenced narration\"}\n```", "professional", nil)
		require.NoError(t, err)
		assert.Equal(t, "fenced narration", result.Narration)

		result, err = ParseResponse(`{"narration": "cut off mid-`, "professional", nil)
		require.NoError(t, err)
		assert.Contains(t, result.Narration, "cut off")
	})

	t.Run("empty response fails", func(t *testing.T) {
		_, err := ParseResponse(`{"title": "only a title"}`, "professional", nil)
		assert.Error(t, err)

		_, err = ParseResponse("no json here", "professional", nil)
		assert.Error(t, err)
	})
}

func TestEstimateDuration(t *testing.T) {
	assert.Equal(t, 15, estimateDuration("short"))
	// 400 runes at 200 chars/min is 120 seconds.
	assert.Equal(t, 120, estimateDuration(makeNarration(400)))
	assert.Equal(t, 120, estimateDuration(makeNarration(4000)))
	assert.Equal(t, 60, estimateDuration(makeNarration(200)))
}

func makeNarration(runes int) string {
	out := make([]rune, runes)
	for i := range out {
		out[i] = 'a'
	}
	return string(out)
}
