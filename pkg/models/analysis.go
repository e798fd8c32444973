package models

// AnalysisResult is the normalized vision-model output for one media item.
type AnalysisResult struct {
	MediaItemID   string
	OriginalURL   string
	AIDescription string
	KeyObjects    []string
	EmotionalTone string
	VisualStyle   string
	QualityScore  float64
	QualityLevel  string
	Suggestions   []string

	// Video-only enrichment.
	KeyframeURLs []string
	FPS          float64
	Width        int
	Height       int
	Duration     float64

	// RawResponse is the unparsed model output, kept for audit.
	RawResponse string

	// Err records a per-item failure; successful results leave it nil.
	Err error
}

// Valid reports whether the result is usable downstream: a non-empty
// description and a resolvable media-item reference.
func (r *AnalysisResult) Valid() bool {
	return r != nil && r.Err == nil && r.AIDescription != "" && r.MediaItemID != ""
}

// AnalysisSummary aggregates one stage-2 run.
type AnalysisSummary struct {
	Total     int
	Completed int
	Failed    int
}

// FailureRate returns the fraction of failed analyses, 0 for an empty run.
func (s AnalysisSummary) FailureRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Failed) / float64(s.Total)
}
