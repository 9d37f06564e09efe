package marker

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantBrief    string
		wantDetailed string
	}{
		{
			name:         "well formed",
			raw:          "BRIEF: rest and fluids\n\nDETAILED: take acetaminophen",
			wantBrief:    "rest and fluids",
			wantDetailed: "take acetaminophen",
		},
		{
			name:         "preamble is kept in brief",
			raw:          "Okay. BRIEF: see a doctor DETAILED: today if possible",
			wantBrief:    "Okay.  see a doctor",
			wantDetailed: "today if possible",
		},
		{
			name:         "split at first detailed marker",
			raw:          "BRIEF: a\nDETAILED: b DETAILED: c",
			wantBrief:    "a",
			wantDetailed: "b DETAILED: c",
		},
		{
			name:         "no markers",
			raw:          "Just drink water.",
			wantBrief:    "Just drink water.",
			wantDetailed: "Just drink water.",
		},
		{
			name:         "detailed only",
			raw:          "rest DETAILED: sleep",
			wantBrief:    "rest DETAILED: sleep",
			wantDetailed: "rest DETAILED: sleep",
		},
		{
			name:         "brief only",
			raw:          "BRIEF: rest",
			wantBrief:    "BRIEF: rest",
			wantDetailed: "BRIEF: rest",
		},
		{
			name:         "out of order",
			raw:          "DETAILED: x BRIEF: y",
			wantBrief:    "DETAILED: x BRIEF: y",
			wantDetailed: "DETAILED: x BRIEF: y",
		},
		{
			name:         "empty detailed",
			raw:          "BRIEF: rest\nDETAILED:   ",
			wantBrief:    "BRIEF: rest\nDETAILED:   ",
			wantDetailed: "BRIEF: rest\nDETAILED:   ",
		},
		{
			name:         "empty brief",
			raw:          "BRIEF:\nDETAILED: sleep",
			wantBrief:    "BRIEF:\nDETAILED: sleep",
			wantDetailed: "BRIEF:\nDETAILED: sleep",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			brief, detailed := Parse(tt.raw)
			if brief != tt.wantBrief {
				t.Errorf("brief = %q, want %q", brief, tt.wantBrief)
			}
			if detailed != tt.wantDetailed {
				t.Errorf("detailed = %q, want %q", detailed, tt.wantDetailed)
			}
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	raw := Format("short", "long text")
	if raw != "BRIEF: short\n\nDETAILED: long text" {
		t.Fatalf("unexpected format: %q", raw)
	}
	brief, detailed := Parse(raw)
	if brief != "short" || detailed != "long text" {
		t.Errorf("Parse(Format()) = %q, %q", brief, detailed)
	}
}

func TestHasCompletion(t *testing.T) {
	for _, text := range []string{
		"The Consultation Completed. Take care.",
		"상담이 완료되었습니다",
		"相談が完了しました",
		"La consulta completada.",
	} {
		if !HasCompletion(text) {
			t.Errorf("HasCompletion(%q) = false", text)
		}
	}
	if HasCompletion("Can you tell me more about the pain?") {
		t.Errorf("HasCompletion matched a clarifying question")
	}
}
