package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/devkan/FirstAidVox/pkg/gemini"
)

func newServer(t *testing.T, reply string, status int, captured *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if captured != nil {
			_ = json.NewDecoder(r.Body).Decode(captured)
		}
		w.WriteHeader(status)
		w.Write([]byte(reply))
	}))
}

func newClient(t *testing.T, url string) *gemini.Client {
	t.Helper()
	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", Model: "gemini-test", APIURL: url})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return client
}

func userText(text string) []gemini.Content {
	return []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: text}}}}
}

func TestGenerateContent(t *testing.T) {
	var body map[string]any
	ts := newServer(t, `{
		"candidates": [{"content": {"role": "model", "parts": [{"text": "BRIEF: rest"}]}, "finishReason": "STOP"}],
		"usageMetadata": {"promptTokenCount": 10, "candidatesTokenCount": 5, "totalTokenCount": 15}
	}`, http.StatusOK, &body)
	defer ts.Close()

	resp, err := newClient(t, ts.URL).GenerateContent(context.Background(), &gemini.Request{
		SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: "be brief"}}},
		Messages: []gemini.Content{{
			Role: "user",
			Parts: []gemini.Part{
				{Text: "look at this burn"},
				{InlineData: &gemini.InlineData{MIMEType: "image/png", Data: []byte{0x89, 0x50}}},
			},
		}},
		Temperature: 0.4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content.Parts[0].Text != "BRIEF: rest" || resp.FinishReason != "STOP" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.Usage.TotalTokens != 15 {
		t.Errorf("expected 15 total tokens, got %d", resp.Usage.TotalTokens)
	}

	parts := body["contents"].([]any)[0].(map[string]any)["parts"].([]any)
	inline := parts[1].(map[string]any)["inlineData"].(map[string]any)
	if inline["mimeType"] != "image/png" || inline["data"] != "iVA=" {
		t.Errorf("unexpected inline data on the wire: %v", inline)
	}
	if body["system_instruction"] == nil {
		t.Error("system instruction not sent")
	}
	safety := body["safetySettings"].([]any)
	if len(safety) == 0 || safety[0].(map[string]any)["threshold"] != gemini.BlockOnlyHigh {
		t.Errorf("unexpected safety settings: %v", safety)
	}
}

func TestGenerateContent_Blocked(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{name: "prompt", reply: `{"promptFeedback": {"blockReason": "SAFETY"}}`},
		{name: "candidate", reply: `{"candidates": [{"content": {"parts": []}, "finishReason": "SAFETY"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newServer(t, tt.reply, http.StatusOK, nil)
			defer ts.Close()

			_, err := newClient(t, ts.URL).GenerateContent(context.Background(), &gemini.Request{Messages: userText("hi")})
			if !errors.Is(err, gemini.ErrBlocked) {
				t.Fatalf("expected ErrBlocked, got %v", err)
			}
		})
	}
}

func TestGenerateContent_APIError(t *testing.T) {
	ts := newServer(t, `{"error": {"code": 429, "message": "quota exceeded", "status": "RESOURCE_EXHAUSTED"}}`, http.StatusTooManyRequests, nil)
	defer ts.Close()

	_, err := newClient(t, ts.URL).GenerateContent(context.Background(), &gemini.Request{Messages: userText("hi")})
	var apiErr *gemini.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusTooManyRequests || apiErr.Status != "RESOURCE_EXHAUSTED" || apiErr.Message != "quota exceeded" {
		t.Errorf("unexpected error: %+v", apiErr)
	}
}

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}
