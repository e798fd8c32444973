package material

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textloom/textloom/pkg/models"
)

func TestExtractMedia_SandwichContext(t *testing.T) {
	manifest := strings.Join([]string{
		"# Quarterly Review",
		"",
		"Revenue grew 12% over the previous quarter.",
		"",
		"![revenue chart](https://example.com/chart.png)",
		"",
		"Most of the growth came from the enterprise tier.",
	}, "\n")

	result := ExtractMedia(manifest)
	require.Len(t, result.Media, 1)

	m := result.Media[0]
	assert.Equal(t, "https://example.com/chart.png", m.URL)
	assert.Equal(t, models.MediaTypeImage, m.MediaType)
	assert.Equal(t, "revenue chart", m.Caption)
	assert.Equal(t, "Revenue grew 12% over the previous quarter.", m.ContextBefore)
	assert.Equal(t, "Most of the growth came from the enterprise tier.", m.ContextAfter)
	assert.Equal(t, strings.Index(manifest, "!["), m.Position)
}

func TestExtractMedia_MatchedForms(t *testing.T) {
	manifest := strings.Join([]string{
		"Intro paragraph.",
		"",
		"![a](https://example.com/a.png)",
		"",
		`<img src="https://example.com/b.jpg" alt="photo b">`,
		"",
		`<video src="https://example.com/c.mp4"></video>`,
		"",
		`<source src="https://example.com/d.webm">`,
		"",
		"Watch https://example.com/e.mp4 for details.",
		"",
		`<audio src="https://example.com/f.mp3"></audio>`,
		"",
		"Listen at https://example.com/g.wav today.",
	}, "\n")

	result := ExtractMedia(manifest)
	require.Len(t, result.Media, 7)

	byURL := map[string]models.ExtractedMedia{}
	for _, m := range result.Media {
		byURL[m.URL] = m
	}

	assert.Equal(t, models.MediaTypeImage, byURL["https://example.com/a.png"].MediaType)
	assert.Equal(t, models.MediaTypeImage, byURL["https://example.com/b.jpg"].MediaType)
	assert.Equal(t, "photo b", byURL["https://example.com/b.jpg"].Caption)
	assert.Equal(t, models.MediaTypeVideo, byURL["https://example.com/c.mp4"].MediaType)
	assert.Equal(t, models.MediaTypeVideo, byURL["https://example.com/d.webm"].MediaType)
	assert.Equal(t, models.MediaTypeVideo, byURL["https://example.com/e.mp4"].MediaType)
	assert.Equal(t, models.MediaTypeAudio, byURL["https://example.com/f.mp3"].MediaType)
	assert.Equal(t, models.MediaTypeAudio, byURL["https://example.com/g.wav"].MediaType)
}

func TestExtractMedia_MarkdownImageEmbeddingVideo(t *testing.T) {
	result := ExtractMedia("![clip](https://example.com/demo.mp4)")
	require.Len(t, result.Media, 1)
	assert.Equal(t, models.MediaTypeVideo, result.Media[0].MediaType)
}

func TestExtractMedia_DeduplicatesPerType(t *testing.T) {
	manifest := strings.Join([]string{
		"First mention.",
		"",
		"![one](https://example.com/x.png)",
		"",
		"Second mention.",
		"",
		"![two](https://example.com/x.png)",
		"",
		"![other](https://example.com/y.png)",
	}, "\n")

	result := ExtractMedia(manifest)
	require.Len(t, result.Media, 2)
	// First occurrence wins, including its caption.
	assert.Equal(t, "https://example.com/x.png", result.Media[0].URL)
	assert.Equal(t, "one", result.Media[0].Caption)
	assert.Equal(t, "https://example.com/y.png", result.Media[1].URL)
}

func TestExtractMedia_WindowFallback(t *testing.T) {
	// A manifest that is nothing but one long line with a reference in the
	// middle: no paragraph context, no caption.
	padding := strings.Repeat("x", 120)
	manifest := padding + " ![](https://example.com/z.png) " + padding

	result := ExtractMedia(manifest)
	require.Len(t, result.Media, 1)

	m := result.Media[0]
	assert.Empty(t, m.Caption)
	assert.NotEmpty(t, m.ContextBefore)
	// The window is bounded, not the whole document.
	assert.Less(t, len(m.ContextBefore), len(manifest))
	assert.Contains(t, m.ContextBefore, "example.com/z.png")
}

func TestHasEffectiveContent(t *testing.T) {
	assert.True(t, HasEffectiveContent("Just a plain sentence."))
	assert.False(t, HasEffectiveContent(""))
	assert.False(t, HasEffectiveContent("   \n\n  \t"))
	assert.False(t, HasEffectiveContent("<!-- a comment only -->"))
	assert.False(t, HasEffectiveContent("<!-- one -->\n\n  <!-- two\nspans lines -->\n"))
	assert.True(t, HasEffectiveContent("<!-- comment -->\n\nReal text here."))

	// A manifest that is nothing but media references is still usable.
	assert.True(t, HasEffectiveContent("![only media](https://example.com/a.png)"))
	assert.True(t, HasEffectiveContent(`<video src="https://example.com/b.mp4"></video>`))
}

func TestWindowAround_MultiByteText(t *testing.T) {
	padding := strings.Repeat("视频素材说明", 20)
	manifest := padding + " ![](https://example.com/z.png) " + padding

	result := ExtractMedia(manifest)
	require.Len(t, result.Media, 1)

	// The window must not cut through a multi-byte character.
	assert.True(t, utf8.ValidString(result.Media[0].ContextBefore))
	assert.Contains(t, result.Media[0].ContextBefore, "example.com/z.png")
}
