package usecase

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/devkan/FirstAidVox/internal/triage"
)

func TestBuildPrompt(t *testing.T) {
	t.Run("sections in order", func(t *testing.T) {
		history := turns("I have a fever", "Since when?")
		prompt := buildPrompt("since yesterday", triage.LanguageEnglish, noContextDocument, history, false)

		order := []string{
			"You are an efficient medical triage AI assistant",
			"The user wrote in English",
			noContextDocument,
			historyHeader,
			"User: I have a fever",
			"AI: Since when?",
			"Current user message: since yesterday",
			completionGuard,
		}
		last := -1
		for _, s := range order {
			idx := strings.Index(prompt, s)
			if idx < 0 {
				t.Fatalf("prompt missing %q", s)
			}
			if idx < last {
				t.Errorf("%q is out of order", s)
			}
			last = idx
		}
		if strings.Contains(prompt, imageInstruction) {
			t.Error("image instruction without an image")
		}
	})

	t.Run("language directive", func(t *testing.T) {
		tests := map[triage.Language]string{
			triage.LanguageKorean:   "Korean (한국어)",
			triage.LanguageJapanese: "Japanese (日本語)",
			triage.LanguageSpanish:  "Spanish (Español)",
			triage.Language("xx"):   "The user wrote in English",
		}
		for lang, want := range tests {
			if prompt := buildPrompt("text", lang, noContextDocument, nil, false); !strings.Contains(prompt, want) {
				t.Errorf("%s: prompt missing %q", lang, want)
			}
		}
	})

	t.Run("no history section for first turn", func(t *testing.T) {
		if prompt := buildPrompt("hi", triage.LanguageEnglish, noContextDocument, nil, true); strings.Contains(prompt, historyHeader) {
			t.Error("unexpected history header")
		} else if !strings.Contains(prompt, imageInstruction) {
			t.Error("missing image instruction")
		}
	})

	t.Run("only real history lines start with User or AI", func(t *testing.T) {
		prompt := buildPrompt("hi", triage.LanguageEnglish, noContextDocument, turns("a", "b", "c"), false)
		count := 0
		for _, line := range strings.Split(prompt, "\n") {
			if strings.HasPrefix(line, "User:") || strings.HasPrefix(line, "AI:") {
				count++
			}
		}
		if count != 3 {
			t.Errorf("expected 3 history lines, got %d", count)
		}
	})
}

func TestRenderHistory(t *testing.T) {
	var contents []string
	for i := 1; i <= 9; i++ {
		contents = append(contents, fmt.Sprintf("turn %d", i))
	}
	rendered := renderHistory(turns(contents...))

	if strings.Contains(rendered, "turn 3\n") || !strings.Contains(rendered, "turn 4") || !strings.Contains(rendered, "turn 9") {
		t.Errorf("expected only the last %d turns, got:\n%s", MaxHistoryTurns, rendered)
	}
	if got := strings.Count(rendered, "\n"); got != MaxHistoryTurns+1 {
		t.Errorf("expected %d lines, got %d", MaxHistoryTurns+1, got)
	}

	multi := renderHistory([]triage.Turn{{Role: triage.RoleAssistant, Content: "BRIEF: a\n\nDETAILED: b"}})
	if !strings.Contains(multi, "AI: BRIEF: a DETAILED: b\n") {
		t.Errorf("multi-line turn should render on one line, got %q", multi)
	}
}

func TestFormatKnowledge(t *testing.T) {
	if got := formatKnowledge(nil); got != noContextDocument {
		t.Errorf("expected fallback, got %q", got)
	}

	long := strings.Repeat("가", MaxCharsPerDocument+10)
	got := formatKnowledge([]triage.Document{
		{Title: "Cold", Content: long, Snippet: "rest"},
		{Snippet: "fluids"},
	})

	for _, want := range []string{contextHeader, "Document 1:", "Title: Cold", "Key Information: rest", "Document 2:", "Key Information: fluids", contextFooter} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
	if strings.Count(got, "Title:") != 1 {
		t.Error("empty titles should be omitted")
	}
	if !strings.Contains(got, strings.Repeat("가", MaxCharsPerDocument)+"...") || strings.Contains(got, strings.Repeat("가", MaxCharsPerDocument+1)) {
		t.Error("content should be truncated to MaxCharsPerDocument runes")
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("short", 10); got != "short" {
		t.Errorf("unexpected truncation: %q", got)
	}
	got := truncateText("héllo wörld", 5)
	if got != "héllo..." || !utf8.ValidString(got) {
		t.Errorf("unexpected truncation: %q", got)
	}
}
