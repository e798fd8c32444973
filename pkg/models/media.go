package models

// MediaType classifies an extracted media reference.
type MediaType string

// Media type values.
const (
	MediaTypeImage    MediaType = "image"
	MediaTypeVideo    MediaType = "video"
	MediaTypeAudio    MediaType = "audio"
	MediaTypeMarkdown MediaType = "markdown"
)

// ExtractedMedia is one media reference found in the source manifest,
// together with its sandwich context.
type ExtractedMedia struct {
	URL       string
	MediaType MediaType

	// Sandwich context: full prior paragraph, caption/alt text, full next
	// paragraph. When all three are empty the extractor fills ContextBefore
	// with a fixed-width window around the reference.
	ContextBefore string
	Caption       string
	ContextAfter  string

	// Position is the byte offset of the reference in the manifest.
	Position int
}

// ExtractionResult is the output of walking one source manifest.
type ExtractionResult struct {
	// Content is the full manifest text.
	Content string

	// Media lists the extracted references in document order, de-duplicated
	// by URL within each media type (first occurrence wins).
	Media []ExtractedMedia
}

// CreateMediaItemRequest is the input for persisting one media item row.
type CreateMediaItemRequest struct {
	TaskID        string
	OriginalURL   string
	CloudURL      string
	LocalPath     string
	Filename      string
	MimeType      string
	MediaType     MediaType
	FileSize      int64
	Width         int
	Height        int
	Duration      float64
	ContextBefore string
	Caption       string
	ContextAfter  string
	Position      int
}

// ProbeResult carries visual metadata from an ffprobe (or image header) probe.
type ProbeResult struct {
	Width    int
	Height   int
	Duration float64
	FPS      float64
}
