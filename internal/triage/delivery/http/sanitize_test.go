package http

import (
	"errors"
	"strings"
	"testing"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{name: "plain", in: "  I cut my finger  ", want: "I cut my finger"},
		{name: "collapses whitespace", in: "my\n\n head   hurts", want: "my head hurts"},
		{name: "strips tags", in: "I have <b>bad</b> pain", want: "I have bad pain"},
		{name: "korean", in: "머리가 아파요", want: "머리가 아파요"},
		{name: "empty", in: "   ", wantErr: errEmptyText},
		{name: "only tags", in: "<b></b>", wantErr: errEmptyText},
		{name: "script", in: "<SCRIPT>alert(1)</script>", wantErr: errUnsafeText},
		{name: "javascript url", in: "click javascript:alert(1)", wantErr: errUnsafeText},
		{name: "event handler", in: `<img onerror=alert(1)>`, wantErr: errUnsafeText},
		{name: "iframe", in: "<iframe src=x>", wantErr: errUnsafeText},
		{name: "word starting with on", in: "only one finger hurts", want: "only one finger hurts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sanitizeText(tt.in, 2000)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSanitizeText_Length(t *testing.T) {
	// Runes, not bytes.
	if _, err := sanitizeText(strings.Repeat("아", 2000), 2000); err != nil {
		t.Fatalf("2000 runes should pass, got %v", err)
	}

	_, err := sanitizeText(strings.Repeat("a", 2001), 2000)
	if err == nil || err.Error() != errTextTooLong.Error() {
		t.Fatalf("expected text too long, got %v", err)
	}
}
