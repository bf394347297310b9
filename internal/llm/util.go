// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// fenceLen is the width of a fence: three backticks or three double quotes.
const fenceLen = 3

// StripFences removes one leading and one trailing fence from a model response.
// A fence is any run of three characters drawn from ` and ". LLMs wrap JSON in
// ```json ... ``` or """ ... """ even when told not to. When the opening fence
// is followed by a language identifier line (```json), that line is dropped too.
func StripFences(text string) string {
	text = strings.TrimSpace(text)

	if isFence(text[:min(fenceLen, len(text))]) {
		opening := text[:fenceLen]
		text = text[fenceLen:]
		if opening == "```" {
			text = dropLanguageTag(text)
		}
	}

	if len(text) >= fenceLen && isFence(text[len(text)-fenceLen:]) {
		text = text[:len(text)-fenceLen]
	}

	return strings.TrimSpace(text)
}

func isFence(s string) bool {
	if len(s) != fenceLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '`' && s[i] != '"' {
			return false
		}
	}
	return true
}

// dropLanguageTag skips a language identifier on the first line after a fence
func dropLanguageTag(text string) string {
	idx := strings.Index(text, "\n")
	if idx < 0 {
		return text
	}
	firstLine := strings.TrimSpace(text[:idx])
	// A language identifier is short, has no spaces and does not start the payload
	if firstLine == "" || len(firstLine) >= 20 || strings.ContainsAny(firstLine, " {[\"") {
		return text
	}
	return text[idx+1:]
}
