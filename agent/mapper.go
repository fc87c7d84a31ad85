package agent

import (
	"strings"

	"github.com/Sl1van/parqet-finpension-importer/docs"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// NewMapper creates the mapping expert. It knows the embedded pfi
// documentation; categories are the unmapped categories found in the
// user's report, if a report was given.
func NewMapper(categories []string) *Expert {
	return &Expert{
		Name:      "Mapper",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: mapperInstruction(categories)}}},
		},
	}
}

// mapperInstruction assembles the system prompt from the embedded
// documentation topics and the report's unmapped categories.
func mapperInstruction(categories []string) string {
	var b strings.Builder
	b.WriteString(`
	You are the mapping expert of pfi, a tool converting Finpension
	transaction reports into Parqet activity CSV files.

	The user asks you how Finpension report categories relate to Parqet
	activity types, what the converter does with a given row, and how to
	book movements the converter passes through unmapped. Answer concretely
	and briefly, grounded in the tool documentation below. When a category
	has no Parqet equivalent, suggest how to book it manually in Parqet and
	say so plainly rather than inventing a mapping.
	`)

	if topics, err := docs.GetTopic("*"); err == nil {
		b.WriteString("\n\nTool documentation:\n\n")
		b.WriteString(topics)
	}

	if len(categories) > 0 {
		b.WriteString("\n\nThe user's report contains these unmapped categories:\n")
		for _, c := range categories {
			b.WriteString("- " + c + "\n")
		}
	}

	return b.String()
}
