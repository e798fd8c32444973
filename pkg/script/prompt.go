// Package script implements the fourth pipeline stage: generating one
// narration script per sub-task from the source text, the analyzed
// materials, and an optional persona.
package script

import (
	"fmt"
	"strings"

	"github.com/textloom/textloom/pkg/models"
)

// PromptInputs collects everything the prompt builder needs.
type PromptInputs struct {
	SystemRole  string
	CoreTask    string
	Methodology string

	Topic            string
	UserRequirements string

	// SourceContent is truncated to MaxSourceChars before rendering.
	SourceContent  string
	MaxSourceChars int

	Materials []models.MaterialContext
	Persona   *models.PersonaInfo
	Style     string
}

// BuildPrompt assembles the full script-generation prompt. Every section is
// deterministic so identical inputs produce identical prompts.
func BuildPrompt(in PromptInputs) (systemPrompt, userPrompt string) {
	systemPrompt = buildSystemPrompt(in)

	var b strings.Builder

	b.WriteString(in.CoreTask)
	b.WriteString("\n\n")
	b.WriteString(in.Methodology)
	b.WriteString("\n\n")

	if in.Persona != nil {
		writePersonaBlock(&b, in.Persona)
	}

	b.WriteString("## Topic\n")
	b.WriteString(in.Topic)
	b.WriteString("\n")
	if in.UserRequirements != "" {
		b.WriteString("\nAdditional requirements: ")
		b.WriteString(in.UserRequirements)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString("## Source content\n")
	b.WriteString(truncate(in.SourceContent, in.MaxSourceChars))
	b.WriteString("\n\n")

	writeMaterialBlock(&b, in.Materials)
	writeOutputSchema(&b)

	return systemPrompt, b.String()
}

func buildSystemPrompt(in PromptInputs) string {
	role := in.SystemRole
	if in.Persona != nil && in.Persona.CustomPrompt != "" {
		role = role + "\n\n" + in.Persona.CustomPrompt
	}
	if in.Style != "" {
		role = role + fmt.Sprintf("\n\nWrite in a %s style.", in.Style)
	}
	return role
}

func writePersonaBlock(b *strings.Builder, p *models.PersonaInfo) {
	b.WriteString("## Narrator persona\n")
	b.WriteString(fmt.Sprintf("Name: %s\n", p.Name))
	if p.PersonaType != "" {
		b.WriteString(fmt.Sprintf("Type: %s\n", p.PersonaType))
	}
	if p.Style != "" {
		b.WriteString(fmt.Sprintf("Style: %s\n", p.Style))
	}
	if p.TargetAudience != "" {
		b.WriteString(fmt.Sprintf("Target audience: %s\n", p.TargetAudience))
	}
	if len(p.Characteristics) > 0 {
		b.WriteString(fmt.Sprintf("Characteristics: %s\n", strings.Join(p.Characteristics, ", ")))
	}
	if p.Tone != "" {
		b.WriteString(fmt.Sprintf("Tone: %s\n", p.Tone))
	}
	if len(p.Keywords) > 0 {
		b.WriteString(fmt.Sprintf("Signature keywords: %s\n", strings.Join(p.Keywords, ", ")))
	}
	b.WriteString("\n")
}

func writeMaterialBlock(b *strings.Builder, materials []models.MaterialContext) {
	b.WriteString("## Available materials\n")
	if len(materials) == 0 {
		b.WriteString("No visual materials are available; write a narration-only script with material_id set to null in every scene.\n\n")
		return
	}

	for _, m := range materials {
		b.WriteString(fmt.Sprintf("- material_id: %s | type: %s", m.MaterialID, m.MediaType))
		if m.Duration > 0 {
			b.WriteString(fmt.Sprintf(" | duration: %.1fs", m.Duration))
		}
		b.WriteString(fmt.Sprintf(" | url: %s\n  description: %s\n", m.URL, m.Description))
	}

	b.WriteString("\nHard constraints on material usage:\n")
	b.WriteString("1. Each scene references exactly one material_id, never an array of ids.\n")
	b.WriteString("2. Use at least 80% of the materials listed above.\n")
	b.WriteString("3. Video materials MUST be used first, each in its entirety.\n")
	b.WriteString("4. Adapt the number of scenes to the number of materials.\n")
	b.WriteString("5. Reference only the material ids declared above; never invent ids.\n\n")
}

func writeOutputSchema(b *strings.Builder) {
	b.WriteString("## Output format\n")
	b.WriteString("Respond with exactly one JSON object, no prose, matching this schema:\n")
	b.WriteString(`{
  "title": "primary video title",
  "titles": ["title variant 1", "title variant 2", "title variant 3"],
  "description": "one-paragraph video description",
  "narration": "the full narration text",
  "scenes": [
    {
      "scene_id": 1,
      "timing": "0s-12s",
      "narration": "narration spoken during this scene",
      "material_id": "declared material id or null",
      "description": "what is shown on screen"
    }
  ],
  "material_mapping": {"material_id": "how the material is used"},
  "tags": ["tag1", "tag2"],
  "estimated_duration": 60
}`)
	b.WriteString("\n")
}

func truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	return s[:limit]
}
