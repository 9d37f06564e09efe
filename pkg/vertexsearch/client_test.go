package vertexsearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestServingConfig(t *testing.T) {
	got := ServingConfig("proj", "global", "medical")
	want := "projects/proj/locations/global/collections/default_collection/engines/medical/servingConfigs/default_search"
	if got != want {
		t.Errorf("ServingConfig() = %s, want %s", got, want)
	}
}

func TestClient_Search(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		if gotBody["query"] == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"code":500,"message":"boom"}}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"results": [
				{"id": "1", "document": {
					"id": "doc-1",
					"structData": {"title": "Headache", "content": "Tension headaches are common."},
					"derivedStructData": {"snippets": [{"snippet": "rest and hydrate"}, {"snippet": "avoid screens"}]}
				}},
				{"id": "2", "document": {
					"id": "doc-2",
					"derivedStructData": {"title": "Fever", "link": "gs://kb/fever.pdf", "snippets": [{"snippet": "above 38C"}]}
				}},
				{"id": "3"}
			]
		}`))
	}))
	defer ts.Close()

	client, err := New(context.Background(), Config{ProjectID: "proj", EngineID: "medical", Endpoint: ts.URL + "/"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		docs, err := client.Search(context.Background(), "headache", 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasSuffix(gotPath, "servingConfigs/default_search:search") {
			t.Errorf("unexpected path: %s", gotPath)
		}
		if gotBody["pageSize"] != float64(3) {
			t.Errorf("expected pageSize 3, got %v", gotBody["pageSize"])
		}
		if len(docs) != 2 {
			t.Fatalf("expected 2 documents, got %d", len(docs))
		}
		if docs[0].Title != "Headache" || docs[0].Content != "Tension headaches are common." || docs[0].Snippet != "rest and hydrate avoid screens" {
			t.Errorf("unexpected first document: %+v", docs[0])
		}
		if docs[1].Title != "Fever" || docs[1].Snippet != "above 38C" || docs[1].Link != "gs://kb/fever.pdf" {
			t.Errorf("unexpected second document: %+v", docs[1])
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		if _, err := client.Search(context.Background(), "cause_500", 3); err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Missing engine", func(t *testing.T) {
		if _, err := New(context.Background(), Config{ProjectID: "proj"}); err == nil {
			t.Fatalf("expected error for missing engine id")
		}
	})
}
