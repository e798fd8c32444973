package jsonx

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]interface{}
	}{
		{
			name:  "clean object",
			input: `{"title": "Go 并发", "count": 3}`,
			want:  map[string]interface{}{"title": "Go 并发", "count": float64(3)},
		},
		{
			name:  "fenced with language tag",
			input: "```json\n{\"title\": \"intro\"}\n```",
			want:  map[string]interface{}{"title": "intro"},
		},
		{
			name:  "fenced without language tag",
			input: "```\n{\"ok\": true}\n```",
			want:  map[string]interface{}{"ok": true},
		},
		{
			name:  "leading prose before object",
			input: "Here is the requested analysis:\n{\"quality_score\": 0.8}",
			want:  map[string]interface{}{"quality_score": 0.8},
		},
		{
			name:  "trailing prose after object",
			input: `{"tags": ["a", "b"]} I hope this helps!`,
			want:  map[string]interface{}{"tags": []interface{}{"a", "b"}},
		},
		{
			name:  "braces inside strings are not structure",
			input: `{"narration": "use {} literals", "n": 1}`,
			want:  map[string]interface{}{"narration": "use {} literals", "n": float64(1)},
		},
		{
			name:  "truncated mid string",
			input: `{"title": "unfinished senten`,
			want:  map[string]interface{}{"title": "unfinished senten"},
		},
		{
			name:  "truncated mid array",
			input: `{"tags": ["one", "two"`,
			want:  map[string]interface{}{"tags": []interface{}{"one", "two"}},
		},
		{
			name:  "truncated after key colon",
			input: `{"title": "done", "narration":`,
			want:  map[string]interface{}{"title": "done"},
		},
		{
			name:  "nested truncation",
			input: `{"scenes": [{"scene_id": 1, "narration": "hi"}, {"scene_id": 2`,
			want: map[string]interface{}{
				"scenes": []interface{}{
					map[string]interface{}{"scene_id": float64(1), "narration": "hi"},
					map[string]interface{}{"scene_id": float64(2)},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.input)
			require.NoError(t, err)

			var decoded map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(got), &decoded), "extracted candidate must parse: %q", got)
			assert.Equal(t, tt.want, decoded)
		})
	}
}

func TestExtract_NoObject(t *testing.T) {
	_, err := Extract("the model returned prose only, no braces")
	assert.ErrorIs(t, err, ErrNoObject)
}

func TestDecode(t *testing.T) {
	var out struct {
		Title string   `json:"title"`
		Tags  []string `json:"tags"`
	}
	raw := "```json\n{\"title\": \"clip\", \"tags\": [\"go\", \"video\"]}\n```"
	require.NoError(t, Decode(raw, &out))
	assert.Equal(t, "clip", out.Title)
	assert.Equal(t, []string{"go", "video"}, out.Tags)
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripFences(`{"a":1}`))
}
