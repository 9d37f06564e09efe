// Package language picks the reply language of a triage turn from script and
// vocabulary cues in the user's text.
package language

import (
	"strings"
	"unicode"

	"github.com/elliotchance/pie/v2"

	"github.com/devkan/FirstAidVox/internal/triage"
)

// spanishIndicators are matched as substrings of the normalized text. Words that
// are also common English (hospital) are left out.
var spanishIndicators = []string{
	"dolor", "cabeza", "estómago", "fiebre", "náuseas", "mareo", "sangre",
	"herida", "quemadura", "fractura", "emergencia", "médico", "ayuda",
	"duele", "siento", "tengo", "estoy", "qué", "cómo", "cuándo", "dónde",
}

// koreanWords are matched as substrings.
var koreanWords = []string{
	"아파", "아픈", "머리", "배", "열", "기침", "감기", "병원", "의사", "약",
}

// romanizedKoreanWords are matched as whole tokens, since they are short enough
// to occur inside English words.
var romanizedKoreanWords = []string{
	"apa", "apun", "meori", "bae", "yeol", "gichim", "gamgi",
}

// Detect returns the language of text. It never fails; text matching no rule is English.
func Detect(text string) triage.Language {
	if hasScript(text, unicode.Hangul) {
		return triage.LanguageKorean
	}
	if hasScript(text, unicode.Hiragana, unicode.Katakana, unicode.Han) {
		return triage.LanguageJapanese
	}

	normalized := normalize(text)
	if containsAny(normalized, spanishIndicators) {
		return triage.LanguageSpanish
	}
	if containsAny(normalized, koreanWords) {
		return triage.LanguageKorean
	}

	tokens := strings.Fields(normalized)
	if pie.FindFirstUsing(tokens, func(tok string) bool {
		return pie.Contains(romanizedKoreanWords, tok)
	}) >= 0 {
		return triage.LanguageKorean
	}

	return triage.LanguageEnglish
}

func hasScript(text string, tables ...*unicode.RangeTable) bool {
	for _, r := range text {
		if unicode.In(r, tables...) {
			return true
		}
	}
	return false
}

// normalize lower-cases text and drops everything but letters, digits, underscores and spaces.
func normalize(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
			return unicode.ToLower(r)
		case unicode.IsSpace(r):
			return r
		default:
			return -1
		}
	}, text)
}

func containsAny(text string, words []string) bool {
	return pie.FindFirstUsing(words, func(w string) bool {
		return strings.Contains(text, w)
	}) >= 0
}
