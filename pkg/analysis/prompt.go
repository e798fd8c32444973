// Package analysis implements the second pipeline stage: vision-model
// analysis of every image and video material with bounded concurrency.
package analysis

import (
	"fmt"
	"strings"

	"github.com/textloom/textloom/ent"
)

// BuildPrompt assembles the deterministic analysis prompt for one material.
// The LLM client is a thin forwarder; all prompt content is built here.
func BuildPrompt(item *ent.MediaItem) string {
	var b strings.Builder

	b.WriteString("You are a visual content analyst. Inspect the attached ")
	b.WriteString(string(item.MediaType))
	b.WriteString(" carefully and describe what it actually shows. Do not speculate beyond the visible content.\n\n")

	b.WriteString(fmt.Sprintf("Material ID: %s\n\n", item.ID))

	if item.ContextBefore != "" || item.Caption != "" || item.ContextAfter != "" {
		b.WriteString("The material appears in a document with the following surrounding text:\n")
		if item.ContextBefore != "" {
			b.WriteString(fmt.Sprintf("- Text before: %s\n", item.ContextBefore))
		}
		if item.Caption != "" {
			b.WriteString(fmt.Sprintf("- Caption: %s\n", item.Caption))
		}
		if item.ContextAfter != "" {
			b.WriteString(fmt.Sprintf("- Text after: %s\n", item.ContextAfter))
		}
		b.WriteString("Use this context to judge what role the material plays in the document.\n\n")
	}

	b.WriteString("Respond with exactly one JSON object, no prose, matching this schema:\n")
	b.WriteString(`{
  "visual_description": "what the material visibly shows, 2-4 sentences",
  "contextual_meaning": "what it contributes to the surrounding document",
  "key_objects": ["the", "main", "visible", "objects"],
  "emotional_tone": "one short phrase",
  "visual_style": "one short phrase",
  "quality_score": 0.0,
  "quality_level": "low | medium | high",
  "usage_suggestions": ["how this material could be used in a video"]
}`)
	b.WriteString("\nquality_score is a float in [0,1].")

	return b.String()
}
