package usecase

import (
	"fmt"
	"strings"

	"github.com/devkan/FirstAidVox/internal/triage"
)

// buildPrompt assembles the outbound prompt for one turn.
func buildPrompt(text string, lang triage.Language, knowledge string, history []triage.Turn, hasImage bool) string {
	directive, ok := languageDirectives[lang]
	if !ok {
		directive = languageDirectives[triage.LanguageEnglish]
	}

	var sb strings.Builder
	sb.WriteString(systemPrompt)
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf(directive, text))
	sb.WriteString("\n\n")
	sb.WriteString(knowledge)
	sb.WriteString("\n\n")

	if rendered := renderHistory(history); rendered != "" {
		sb.WriteString(rendered)
		sb.WriteString("\n")
	}

	if hasImage {
		sb.WriteString(imageInstruction)
		sb.WriteString("\n\n")
	}

	sb.WriteString("Current user message: ")
	sb.WriteString(text)
	sb.WriteString("\n\n")
	sb.WriteString(completionGuard)
	return sb.String()
}

// renderHistory renders the last MaxHistoryTurns turns as "User:"/"AI:" lines.
func renderHistory(history []triage.Turn) string {
	if len(history) == 0 {
		return ""
	}
	if len(history) > MaxHistoryTurns {
		history = history[len(history)-MaxHistoryTurns:]
	}

	var sb strings.Builder
	sb.WriteString(historyHeader)
	sb.WriteString("\n")
	for _, turn := range history {
		role := "User"
		if turn.Role == triage.RoleAssistant {
			role = "AI"
		}
		// One line per turn.
		content := strings.Join(strings.Fields(turn.Content), " ")
		sb.WriteString(fmt.Sprintf("%s: %s\n", role, content))
	}
	return sb.String()
}

// formatKnowledge renders retrieved documents as prompt context.
func formatKnowledge(docs []triage.Document) string {
	if len(docs) == 0 {
		return noContextDocument
	}

	var sb strings.Builder
	sb.WriteString(contextHeader)
	sb.WriteString("\n\n")
	for i, doc := range docs {
		sb.WriteString(fmt.Sprintf("Document %d:\n", i+1))
		if doc.Title != "" {
			sb.WriteString(fmt.Sprintf("Title: %s\n", doc.Title))
		}
		if doc.Content != "" {
			sb.WriteString(fmt.Sprintf("Content: %s\n", truncateText(doc.Content, MaxCharsPerDocument)))
		}
		if doc.Snippet != "" {
			sb.WriteString(fmt.Sprintf("Key Information: %s\n", doc.Snippet))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(contextFooter)
	return sb.String()
}

// truncateText truncates text to maxLen runes.
func truncateText(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}
