// Package material implements the first pipeline stage: extracting media
// references from a task's Markdown manifest, acquiring the files, probing
// their visual metadata, and persisting MediaItem rows.
package material

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/textloom/textloom/pkg/models"
)

// contextWindow is the fallback window around a reference when no paragraph
// context or caption exists.
const contextWindow = 50

var (
	markdownImageRe = regexp.MustCompile(`!\[([^\]]*)\]\(([^)\s]+)[^)]*\)`)
	htmlImgRe       = regexp.MustCompile(`(?is)<img[^>]*\bsrc\s*=\s*["']([^"']+)["'][^>]*>`)
	htmlImgAltRe    = regexp.MustCompile(`(?is)\balt\s*=\s*["']([^"']*)["']`)
	htmlVideoRe     = regexp.MustCompile(`(?is)<(?:video|source)[^>]*\bsrc\s*=\s*["']([^"']+)["'][^>]*>`)
	htmlAudioRe     = regexp.MustCompile(`(?is)<audio[^>]*\bsrc\s*=\s*["']([^"']+)["'][^>]*>`)
	directVideoRe   = regexp.MustCompile(`https?://[^\s<>"')]+\.(?:mp4|mov|avi|mkv|webm|flv)(?:\?[^\s<>"')]*)?`)
	directAudioRe   = regexp.MustCompile(`https?://[^\s<>"')]+\.(?:mp3|wav|m4a|aac|ogg|flac)(?:\?[^\s<>"')]*)?`)
	htmlCommentRe   = regexp.MustCompile(`(?s)<!--.*?-->`)
)

// block is one blank-line-separated chunk of the manifest with its offsets
// preserved.
type block struct {
	text  string
	start int
	end   int
}

// match is one raw media reference found in a block.
type match struct {
	url       string
	mediaType models.MediaType
	caption   string
	position  int
	length    int
}

// ExtractMedia walks the manifest block by block and returns the media
// references in document order with their sandwich context. Within each
// media type, URLs are de-duplicated keeping the first occurrence.
func ExtractMedia(content string) *models.ExtractionResult {
	blocks := splitBlocks(content)

	var media []models.ExtractedMedia
	seen := map[models.MediaType]map[string]bool{}

	for i, b := range blocks {
		for _, m := range findMatches(b) {
			if seen[m.mediaType] == nil {
				seen[m.mediaType] = map[string]bool{}
			}
			if seen[m.mediaType][m.url] {
				continue
			}
			seen[m.mediaType][m.url] = true

			before, after := paragraphContext(blocks, i)
			item := models.ExtractedMedia{
				URL:           m.url,
				MediaType:     m.mediaType,
				ContextBefore: before,
				Caption:       m.caption,
				ContextAfter:  after,
				Position:      m.position,
			}
			if item.ContextBefore == "" && item.Caption == "" && item.ContextAfter == "" {
				item.ContextBefore = windowAround(content, m.position, m.length)
			}
			media = append(media, item)
		}
	}

	return &models.ExtractionResult{
		Content: content,
		Media:   media,
	}
}

// splitBlocks cuts the document at blank lines, keeping byte offsets.
func splitBlocks(content string) []block {
	var blocks []block
	start := -1

	lineStart := 0
	for lineStart <= len(content) {
		lineEnd := strings.IndexByte(content[lineStart:], '\n')
		var line string
		if lineEnd < 0 {
			line = content[lineStart:]
			lineEnd = len(content)
		} else {
			line = content[lineStart : lineStart+lineEnd]
			lineEnd = lineStart + lineEnd
		}

		if strings.TrimSpace(line) == "" {
			if start >= 0 {
				blocks = append(blocks, block{text: content[start:lineStart], start: start, end: lineStart})
				start = -1
			}
		} else if start < 0 {
			start = lineStart
		}

		if lineEnd == len(content) {
			break
		}
		lineStart = lineEnd + 1
	}
	if start >= 0 {
		blocks = append(blocks, block{text: content[start:], start: start, end: len(content)})
	}

	return blocks
}

// findMatches collects the media references inside one block, in order of
// appearance. Image forms shadow the direct-URL matchers so a URL inside a
// markdown/HTML construct is not double-counted.
func findMatches(b block) []match {
	var matches []match
	taken := map[string]bool{}

	add := func(url string, mt models.MediaType, caption string, offset, length int) {
		if url == "" || taken[url] {
			return
		}
		taken[url] = true
		matches = append(matches, match{
			url:       url,
			mediaType: mt,
			caption:   strings.TrimSpace(caption),
			position:  b.start + offset,
			length:    length,
		})
	}

	for _, loc := range markdownImageRe.FindAllStringSubmatchIndex(b.text, -1) {
		alt := b.text[loc[2]:loc[3]]
		url := b.text[loc[4]:loc[5]]
		add(url, classifyByExtension(url, models.MediaTypeImage), alt, loc[0], loc[1]-loc[0])
	}
	for _, loc := range htmlImgRe.FindAllStringSubmatchIndex(b.text, -1) {
		tag := b.text[loc[0]:loc[1]]
		url := b.text[loc[2]:loc[3]]
		caption := ""
		if altMatch := htmlImgAltRe.FindStringSubmatch(tag); altMatch != nil {
			caption = altMatch[1]
		}
		add(url, models.MediaTypeImage, caption, loc[0], loc[1]-loc[0])
	}
	for _, loc := range htmlVideoRe.FindAllStringSubmatchIndex(b.text, -1) {
		add(b.text[loc[2]:loc[3]], models.MediaTypeVideo, "", loc[0], loc[1]-loc[0])
	}
	for _, loc := range htmlAudioRe.FindAllStringSubmatchIndex(b.text, -1) {
		add(b.text[loc[2]:loc[3]], models.MediaTypeAudio, "", loc[0], loc[1]-loc[0])
	}
	for _, loc := range directVideoRe.FindAllStringIndex(b.text, -1) {
		add(b.text[loc[0]:loc[1]], models.MediaTypeVideo, "", loc[0], loc[1]-loc[0])
	}
	for _, loc := range directAudioRe.FindAllStringIndex(b.text, -1) {
		add(b.text[loc[0]:loc[1]], models.MediaTypeAudio, "", loc[0], loc[1]-loc[0])
	}

	return matches
}

// classifyByExtension resolves media type for markdown image syntax, which
// is sometimes used to embed video links.
func classifyByExtension(url string, fallback models.MediaType) models.MediaType {
	if directVideoRe.MatchString(url) {
		return models.MediaTypeVideo
	}
	if directAudioRe.MatchString(url) {
		return models.MediaTypeAudio
	}
	return fallback
}

// paragraphContext returns the nearest non-empty textual blocks before and
// after index i. Blocks that are themselves pure media references do not
// count as context.
func paragraphContext(blocks []block, i int) (before, after string) {
	for j := i - 1; j >= 0; j-- {
		if t := textualContent(blocks[j].text); t != "" {
			before = t
			break
		}
	}
	for j := i + 1; j < len(blocks); j++ {
		if t := textualContent(blocks[j].text); t != "" {
			after = t
			break
		}
	}
	return before, after
}

// textualContent strips media references out of a block and returns what
// remains, trimmed.
func textualContent(text string) string {
	t := markdownImageRe.ReplaceAllString(text, "")
	t = htmlImgRe.ReplaceAllString(t, "")
	t = htmlVideoRe.ReplaceAllString(t, "")
	t = htmlAudioRe.ReplaceAllString(t, "")
	t = directVideoRe.ReplaceAllString(t, "")
	t = directAudioRe.ReplaceAllString(t, "")
	return strings.TrimSpace(t)
}

// windowAround returns a fixed-width character window around a reference,
// used when no paragraph context exists. Window edges are snapped to rune
// boundaries so multi-byte text never gets split mid-character.
func windowAround(content string, position, length int) string {
	start := position - contextWindow
	if start < 0 {
		start = 0
	}
	for start > 0 && !utf8.RuneStart(content[start]) {
		start--
	}
	end := position + length + contextWindow
	if end > len(content) {
		end = len(content)
	}
	for end < len(content) && !utf8.RuneStart(content[end]) {
		end++
	}
	return strings.TrimSpace(content[start:end])
}

// HasEffectiveContent reports whether the manifest holds anything besides
// whitespace and HTML comments. Media references count: a manifest that is
// nothing but image or video links is still processable.
func HasEffectiveContent(content string) bool {
	return strings.TrimSpace(htmlCommentRe.ReplaceAllString(content, "")) != ""
}
