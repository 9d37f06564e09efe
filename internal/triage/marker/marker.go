// Package marker implements the textual protocol shared with the generation
// backend: the BRIEF:/DETAILED: split and the completion phrases.
package marker

import (
	"strings"

	"github.com/elliotchance/pie/v2"
)

const (
	Brief    = "BRIEF:"
	Detailed = "DETAILED:"
)

// CompletionPhrases are the phrases the backend is told to use when it closes a
// consultation. Matching is case-insensitive.
var CompletionPhrases = []string{
	"consultation completed",
	"상담이 완료",
	"相談が完了",
	"consulta completada",
}

// Parse splits raw into its brief and detailed parts. When the markers are
// missing, out of order, or leave an empty part, both results are raw.
func Parse(raw string) (brief, detailed string) {
	bIdx := strings.Index(raw, Brief)
	dIdx := strings.Index(raw, Detailed)
	if bIdx < 0 || dIdx < 0 || bIdx > dIdx {
		return raw, raw
	}

	brief = strings.TrimSpace(strings.Replace(raw[:dIdx], Brief, "", 1))
	detailed = strings.TrimSpace(raw[dIdx+len(Detailed):])
	if brief == "" || detailed == "" {
		return raw, raw
	}
	return brief, detailed
}

// Format renders brief and detailed in the wire format Parse understands.
func Format(brief, detailed string) string {
	return Brief + " " + brief + "\n\n" + Detailed + " " + detailed
}

// HasCompletion reports whether text contains one of CompletionPhrases.
func HasCompletion(text string) bool {
	_, ok := FindAny(text, CompletionPhrases)
	return ok
}

// FindAny returns the first phrase contained in text, ignoring case.
func FindAny(text string, phrases []string) (string, bool) {
	lower := strings.ToLower(text)
	idx := pie.FindFirstUsing(phrases, func(p string) bool {
		return strings.Contains(lower, strings.ToLower(p))
	})
	if idx < 0 {
		return "", false
	}
	return phrases[idx], true
}
