package http

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	unsafePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)<script`),
		regexp.MustCompile(`(?i)javascript:`),
		regexp.MustCompile(`(?i)\bon\w+=`),
		regexp.MustCompile(`(?i)<iframe`),
	}
	htmlTag    = regexp.MustCompile(`<[^>]*>`)
	whitespace = regexp.MustCompile(`\s+`)
)

// sanitizeText trims, rejects script-like content, strips tags and collapses
// whitespace. The length limit applies to the trimmed input in characters.
func sanitizeText(text string, maxLen int) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errEmptyText
	}
	if utf8.RuneCountInString(text) > maxLen {
		return "", errTextTooLong.WithDetails(map[string]any{"max_length": maxLen})
	}
	for _, p := range unsafePatterns {
		if p.MatchString(text) {
			return "", errUnsafeText
		}
	}

	text = htmlTag.ReplaceAllString(text, "")
	text = strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
	if text == "" {
		return "", errEmptyText
	}
	return text, nil
}
