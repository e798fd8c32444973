package services

import (
	"context"
	"fmt"
	"time"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/persona"
	"github.com/textloom/textloom/ent/prompttemplate"
	"github.com/textloom/textloom/pkg/models"
)

// PersonaService reads narration personas and the prompt-template catalog
// used by script generation.
type PersonaService struct {
	client *ent.Client
}

// NewPersonaService creates a new PersonaService
func NewPersonaService(client *ent.Client) *PersonaService {
	return &PersonaService{client: client}
}

// GetPersona retrieves a persona by ID.
func (s *PersonaService) GetPersona(ctx context.Context, personaID string) (*ent.Persona, error) {
	p, err := s.client.Persona.Get(ctx, personaID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get persona: %w", err)
	}
	return p, nil
}

// GetPersonaInfo resolves a persona into the prompt-facing shape. A nil id
// yields a nil info, which the prompt builder renders as "no persona".
func (s *PersonaService) GetPersonaInfo(ctx context.Context, personaID *string) (*models.PersonaInfo, error) {
	if personaID == nil || *personaID == "" {
		return nil, nil
	}

	p, err := s.GetPersona(ctx, *personaID)
	if err != nil {
		return nil, err
	}

	return &models.PersonaInfo{
		Name:            p.Name,
		PersonaType:     p.PersonaType,
		Style:           p.Style,
		TargetAudience:  p.TargetAudience,
		Characteristics: p.Characteristics,
		Tone:            p.Tone,
		Keywords:        p.Keywords,
		CustomPrompt:    p.CustomPrompt,
	}, nil
}

// ListPersonas lists personas, presets first.
func (s *PersonaService) ListPersonas(ctx context.Context) ([]*ent.Persona, error) {
	personas, err := s.client.Persona.Query().
		Order(ent.Desc(persona.FieldIsPreset), ent.Asc(persona.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list personas: %w", err)
	}
	return personas, nil
}

// GetTemplate returns the prompt fragment for (type, style), falling back to
// the professional style when the requested style has no entry.
func (s *PersonaService) GetTemplate(ctx context.Context, templateType, templateStyle string) (string, error) {
	if templateStyle == "" {
		templateStyle = "professional"
	}

	content, err := s.client.PromptTemplate.Query().
		Where(
			prompttemplate.TemplateTypeEQ(templateType),
			prompttemplate.TemplateStyleEQ(templateStyle),
		).
		Select(prompttemplate.FieldContent).
		String(ctx)
	if err == nil {
		return content, nil
	}
	if !ent.IsNotFound(err) {
		return "", fmt.Errorf("failed to get template: %w", err)
	}
	if templateStyle == "professional" {
		return "", ErrNotFound
	}

	content, err = s.client.PromptTemplate.Query().
		Where(
			prompttemplate.TemplateTypeEQ(templateType),
			prompttemplate.TemplateStyleEQ("professional"),
		).
		Select(prompttemplate.FieldContent).
		String(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get fallback template: %w", err)
	}
	return content, nil
}

// SeedDefaults inserts the preset personas and prompt templates if absent.
// Called once at startup; existing rows are kept.
func (s *PersonaService) SeedDefaults(ctx context.Context) error {
	seedCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for _, p := range presetPersonas {
		err := s.client.Persona.Create().
			SetID(p.id).
			SetName(p.name).
			SetPersonaType(p.personaType).
			SetStyle(p.style).
			SetTargetAudience(p.audience).
			SetCharacteristics(p.characteristics).
			SetTone(p.tone).
			SetKeywords(p.keywords).
			SetIsPreset(true).
			Exec(seedCtx)
		if err != nil && !ent.IsConstraintError(err) {
			return fmt.Errorf("failed to seed persona %s: %w", p.id, err)
		}
	}

	for _, t := range presetTemplates {
		err := s.client.PromptTemplate.Create().
			SetID(fmt.Sprintf("%s_%s", t.templateType, t.style)).
			SetTemplateType(t.templateType).
			SetTemplateStyle(t.style).
			SetName(t.name).
			SetContent(t.content).
			Exec(seedCtx)
		if err != nil && !ent.IsConstraintError(err) {
			return fmt.Errorf("failed to seed template %s/%s: %w", t.templateType, t.style, err)
		}
	}

	return nil
}

type presetPersona struct {
	id              string
	name            string
	personaType     string
	style           string
	audience        string
	characteristics []string
	tone            string
	keywords        []string
}

var presetPersonas = []presetPersona{
	{
		id:              "persona_lecturer",
		name:            "Lecturer",
		personaType:     "educator",
		style:           "professional",
		audience:        "learners and professionals",
		characteristics: []string{"structured", "precise", "patient"},
		tone:            "calm and authoritative",
		keywords:        []string{"explain", "demonstrate", "summarize"},
	},
	{
		id:              "persona_storyteller",
		name:            "Storyteller",
		personaType:     "narrator",
		style:           "casual",
		audience:        "general audience",
		characteristics: []string{"vivid", "engaging", "conversational"},
		tone:            "warm and curious",
		keywords:        []string{"imagine", "discover", "journey"},
	},
	{
		id:              "persona_presenter",
		name:            "Product Presenter",
		personaType:     "marketer",
		style:           "energetic",
		audience:        "prospective customers",
		characteristics: []string{"persuasive", "concise", "benefit-led"},
		tone:            "upbeat and confident",
		keywords:        []string{"highlight", "benefit", "upgrade"},
	},
}

type presetTemplate struct {
	templateType string
	style        string
	name         string
	content      string
}

var presetTemplates = []presetTemplate{
	{
		templateType: "system_role",
		style:        "professional",
		name:         "System role",
		content: "You are a senior video scriptwriter. You turn source documents and " +
			"analyzed visual materials into tight, production-ready narration scripts.",
	},
	{
		templateType: "core_task",
		style:        "professional",
		name:         "Core task",
		content: "Write a complete narration script for a short video based on the source " +
			"content and the material list below. The script must cover the key points of " +
			"the source faithfully without inventing facts.",
	},
	{
		templateType: "methodology",
		style:        "professional",
		name:         "Methodology",
		content: "Work scene by scene. Lead with a hook, develop the core ideas in the " +
			"middle scenes, and close with a concise takeaway. Keep each scene's narration " +
			"speakable in its allotted time.",
	},
	{
		templateType: "core_task",
		style:        "casual",
		name:         "Core task (casual)",
		content: "Write a friendly, conversational narration script for a short video " +
			"based on the source content and the material list below. Keep it light but " +
			"accurate.",
	},
}
