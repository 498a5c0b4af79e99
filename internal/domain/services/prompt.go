// Package services contains domain business logic.
package services

import (
	"strings"

	"github.com/medicheck/medicheck/internal/domain/ports"
)

// DefaultInstructions is used when the caller gives no custom instructions.
const DefaultInstructions = `You are an expert medical fact-checker and information synthesizer.
1. Provide a concise summary of the key information.
2. Identify and correct any medical or scientific inaccuracies.
3. Ensure corrections are evidence-based and scientifically accurate.`

// validationFormatInstructions is appended to every validation prompt.
const validationFormatInstructions = `Fact-check the text above. Cite the sources listed above where they apply and follow the instructions given.

Return ONLY a valid JSON object with exactly this shape, no other text:
{
  "summary": "a concise summary of the key information",
  "validation_results": [
    {"incorrect_text": "the original incorrect statement", "correct_text": "the corrected and accurate statement"}
  ]
}

Rules:
- Include ONLY statements that are incorrect. Never list statements that are already correct.
- Use an empty array for "validation_results" when nothing is incorrect.
- Return raw JSON. Do not wrap it in markdown code fences.`

// chatInstructions frames every chat turn.
const chatInstructions = `You are a helpful medical information assistant.
Analyze the query, use the conversation context, and provide evidence-based, clear information.`

// ComposeValidationPrompt builds the fact-check prompt. Sections appear in a
// fixed order: query, instructions, tool outputs, output format.
func ComposeValidationPrompt(query, customInstructions string, outputs []ports.ToolOutput) string {
	instructions := strings.TrimSpace(customInstructions)
	if instructions == "" {
		instructions = DefaultInstructions
	}

	var b strings.Builder
	b.WriteString("Text:\n")
	b.WriteString(query)
	b.WriteString("\n\nInstructions:\n")
	b.WriteString(instructions)
	b.WriteString("\n\nSources:\n")
	if len(outputs) == 0 {
		b.WriteString("No additional sources.\n")
	}
	for _, out := range outputs {
		b.WriteString("[")
		b.WriteString(out.Source)
		b.WriteString("]\n")
		b.WriteString(out.Output)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(validationFormatInstructions)
	return b.String()
}

// ComposeChatPrompt builds a conversational prompt from the latest message
// and the rendered session history.
func ComposeChatPrompt(message, history string) string {
	var b strings.Builder
	b.WriteString(chatInstructions)
	b.WriteString("\n\nQuery: ")
	b.WriteString(message)
	b.WriteString("\nContext:\n")
	if strings.TrimSpace(history) == "" {
		b.WriteString("(no previous messages)")
	} else {
		b.WriteString(history)
	}
	b.WriteString("\n\nInstruction: Provide evidence-based, clear information.")
	return b.String()
}
