package llmprovider

import (
	"context"
	"strings"
	"testing"
)

func TestMockProvider_WalksThroughStages(t *testing.T) {
	p := NewMockProvider()

	tests := []struct {
		name     string
		prompt   string
		contains string
	}{
		{name: "no history", prompt: "Current user message: I have a headache", contains: "When did this start"},
		{name: "two lines", prompt: "CONVERSATION HISTORY:\nUser: hi\nAI: hello\n", contains: "fever, cough"},
		{name: "four lines", prompt: "User: a\nAI: b\nUser: c\nAI: d\n", contains: "Consultation completed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := p.GenerateContent(context.Background(), &Request{
				Messages: []Message{TextMessage(RoleUser, tt.prompt)},
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(resp.Text(), tt.contains) {
				t.Errorf("expected reply containing %q, got %q", tt.contains, resp.Text())
			}
			if !strings.HasPrefix(resp.Text(), "BRIEF:") || !strings.Contains(resp.Text(), "DETAILED:") {
				t.Errorf("reply does not follow the marker format: %q", resp.Text())
			}
		})
	}
}

func TestMockProvider_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewMockProvider().GenerateContent(ctx, &Request{}); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}
