package extract

import "strings"

// BuildInstructionPrompt composes the fixed instruction sent with every
// extraction request, regardless of document kind.
func BuildInstructionPrompt() string {
	parts := []string{
		"You are an HR onboarding form parser. Return ONLY JSON that matches the provided JSON Schema exactly.",
		"Extract every field of the new-hire form: personal identity, contact information, emergency contact, education history, employment history, and the HR-assigned fields.",
		"Keep text fields in the document's original language and script; do not translate.",
		"If a scalar field is not present in the document, output an empty string. Never omit a field and never output null.",
		"If the document shows no education or employment entries, output empty arrays for them.",
	}
	return strings.Join(parts, " ")
}

// BuildInsightsPrompt packages a roster snapshot and an operator question
// for the analytics query. rosterJSON is a pre-serialized slice of records.
func BuildInsightsPrompt(question, rosterJSON string) string {
	var b strings.Builder
	b.WriteString("You are a professional HR data analyst. Answer in the language of the question.\n")
	b.WriteString("Here is the new-hire dataset as JSON:\n")
	b.WriteString(rosterJSON)
	b.WriteString("\n\nQuestion: ")
	b.WriteString(strings.TrimSpace(question))
	return b.String()
}
