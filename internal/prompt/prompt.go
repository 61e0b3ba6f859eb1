// Package prompt renders the instruction blocks sent to the model. All
// builders are pure functions of their inputs plus static templates.
package prompt

import (
	"fmt"
	"strings"
)

// AutocompleteSystem is the system instruction for the short-form pipeline.
const AutocompleteSystem = "Autocomplete using ONLY the allowed suggestions."

// RefineSystem is the system instruction for the long-form pipeline.
const RefineSystem = "Refine using ONLY the allowed suggestions. Generate approximately 12 words."

// Autocomplete renders the short-form completion prompt. The allowed phrases
// are embedded literally so the model cannot reach beyond them.
func Autocomplete(sentence string, phrases []string) string {
	var b strings.Builder
	b.WriteString("You are an AUTOCOMPLETE assistant.\n\n")
	b.WriteString("Use ONLY these light_suggestions:\n")
	writePhraseList(&b, phrases)
	b.WriteString("\nRULES:\n")
	b.WriteString("- Continue the sentence EXACTLY from where it ends.\n")
	b.WriteString("- Do NOT change the base sentence.\n")
	b.WriteString("- ONLY use provided light_suggestions to autocomplete.\n")
	b.WriteString("- ONLY natural color/tone language.\n")
	b.WriteString("- ONLY autocomplete using the light_suggestions.\n")
	fmt.Fprintf(&b, "\nComplete: %s\n", sentence)
	return b.String()
}

// Refine renders the long-form completion prompt, targeting roughly 12 words.
func Refine(sentence string, phrases []string) string {
	var b strings.Builder
	b.WriteString("You are a REFINE assistant.\n\n")
	b.WriteString("Use ONLY these light_suggestions:\n")
	writePhraseList(&b, phrases)
	b.WriteString("\nRULES:\n")
	b.WriteString("- Continue the sentence EXACTLY from where it ends.\n")
	b.WriteString("- Do NOT change the base sentence.\n")
	b.WriteString("- ONLY use provided light_suggestions to refine.\n")
	b.WriteString("- ONLY natural color/tone language.\n")
	b.WriteString("- Generate approximately 12 words for the completion.\n")
	b.WriteString("- ONLY refine using the light_suggestions.\n")
	fmt.Fprintf(&b, "\nComplete: %s\n", sentence)
	return b.String()
}

// StyleSuggestions renders the structured-output prompt for the image
// pipeline. formatInstructions describes the exact target JSON shape and is
// embedded verbatim.
func StyleSuggestions(formatInstructions string) string {
	var b strings.Builder
	b.WriteString("Analyze the image carefully and return ONLY a single JSON object ")
	b.WriteString("containing exactly 4 main suggestions (one for each category: Movie Style, Mood, Color Focus, Other) ")
	b.WriteString("and exactly 15 general suggestions, all in natural human language.\n\n")
	b.WriteString("*STRICT FORMAT INSTRUCTIONS*:\n")
	b.WriteString(formatInstructions)
	b.WriteString("\n\n")
	b.WriteString("*RULES FOR ALL 19 SUGGESTIONS*:\n")
	b.WriteString("- The output MUST contain exactly one main_suggestions object with 4 fields, and one normal_suggestions list with exactly 15 elements.\n")
	b.WriteString("- Keep each suggestion short and natural, as if a user wrote it.\n")
	b.WriteString("- NO numbers, NO technical terms, NO percentages, NO stops.\n")
	b.WriteString("- NO crop or composition instructions.\n")
	b.WriteString("- Suggestions MUST relate only to exposure, contrast, tone, temperature, tint, ")
	b.WriteString("highlights, shadows, whites, blacks, saturation, vibrance, or general color feel.\n")
	b.WriteString("- Style should match examples like:\n")
	b.WriteString("  - Main: 'Give this photo a dark, cinematic grade like a Christopher Nolan film.'\n")
	b.WriteString("  - Normal: 'Slightly reduce the overall exposure to add drama.'\n")
	return b.String()
}

func writePhraseList(b *strings.Builder, phrases []string) {
	for _, p := range phrases {
		fmt.Fprintf(b, "- %s\n", p)
	}
}
