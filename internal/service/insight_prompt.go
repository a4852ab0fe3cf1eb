package service

import (
	"fmt"

	"github.com/MKhiriev/go-scripture-lens/internal/adapter"
	"github.com/MKhiriev/go-scripture-lens/models"
)

const systemInstruction = "You are a helpful research assistant for theology and scripture study. " +
	"Be objective, scholarly, yet accessible."

const promptTemplate = "You are a scholarly and spiritual scripture study assistant. " +
	"Analyze the following research notes. " +
	"Provide 3-5 deep insights that would be valuable for comparison or deeper understanding. " +
	"Focus on historical context, original language nuances (Greek/Hebrew), or cross-references.\n\n" +
	"Note Title: %s\n" +
	"Note Content: %s"

// buildPrompt embeds the note verbatim; no escaping is applied.
func buildPrompt(note models.Note) string {
	return fmt.Sprintf(promptTemplate, note.Title, note.Content)
}

// insightsSchema describes the reply: an object with an "insights" array.
var insightsSchema = &adapter.Schema{
	Type:     adapter.SchemaObject,
	Required: []string{"insights"},
	Properties: map[string]*adapter.Schema{
		"insights": {
			Type: adapter.SchemaArray,
			Items: &adapter.Schema{
				Type:     adapter.SchemaObject,
				Required: []string{"title", "description", "type"},
				Properties: map[string]*adapter.Schema{
					"title": {
						Type:        adapter.SchemaString,
						Description: "A short, catchy title for the insight.",
					},
					"description": {
						Type:        adapter.SchemaString,
						Description: "The detailed insight, historical context, or theological connection.",
					},
					"reference": {
						Type:        adapter.SchemaString,
						Description: "Scripture reference or historical source (e.g., 'Matthew 13', 'Josephus').",
					},
					"type": {
						Type:        adapter.SchemaString,
						Description: "The category of the insight.",
						Enum:        insightTypeNames(),
					},
				},
			},
		},
	},
}

func insightTypeNames() []string {
	names := make([]string, 0, len(models.InsightTypes))
	for _, t := range models.InsightTypes {
		names = append(names, t.String())
	}
	return names
}

func newGenerationRequest(note models.Note) adapter.GenerationRequest {
	return adapter.GenerationRequest{
		SystemInstruction: systemInstruction,
		Prompt:            buildPrompt(note),
		Schema:            insightsSchema,
	}
}
