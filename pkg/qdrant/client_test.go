package qdrant_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/devkan/FirstAidVox/pkg/qdrant"
)

func TestQdrantClient(t *testing.T) {
	var created []string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("api-key") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		path := r.URL.Path

		switch {
		case r.Method == http.MethodGet && path == "/collections/medical_documents":
			w.Write([]byte(`{"result":{"status":"green"},"status":"ok"}`))
		case r.Method == http.MethodGet && strings.HasPrefix(path, "/collections/"):
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"status":{"error":"Not found: Collection doesn't exist!"}}`))
		case r.Method == http.MethodPut && strings.HasSuffix(path, "/points"):
			if r.URL.Query().Get("wait") != "true" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			var req qdrant.UpsertPointsRequest
			json.NewDecoder(r.Body).Decode(&req)
			if len(req.Points) > 0 && req.Points[0].Payload["cause_500"] == true {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"status":{"error":"boom"}}`))
				return
			}
			w.Write([]byte(`{"result":{"status":"completed"},"status":"ok"}`))
		case r.Method == http.MethodPut && strings.HasPrefix(path, "/collections/"):
			created = append(created, strings.TrimPrefix(path, "/collections/"))
			w.Write([]byte(`{"result":true,"status":"ok"}`))
		case r.Method == http.MethodPost && strings.HasSuffix(path, "/points/search"):
			var req qdrant.SearchRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Limit == 999 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{
				"result": [
					{"id": "5c56c793-69f3-4fbf-87e6-c4bf54c28c26", "score": 0.95, "payload": {"title": "Fever"}},
					{"id": 42, "score": 0.5, "payload": {"title": "Cough"}}
				],
				"status": "ok",
				"time": 0.05
			}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	client := qdrant.NewClient(ts.URL + "/").WithAPIKey("secret")
	ctx := context.Background()

	t.Run("CollectionExists", func(t *testing.T) {
		ok, err := client.CollectionExists(ctx, "medical_documents")
		if err != nil || !ok {
			t.Fatalf("expected existing collection, got %v, %v", ok, err)
		}
		ok, err = client.CollectionExists(ctx, "missing")
		if err != nil || ok {
			t.Fatalf("expected missing collection, got %v, %v", ok, err)
		}
	})

	t.Run("EnsureCollection creates only missing", func(t *testing.T) {
		created = nil
		cfg := qdrant.VectorConfig{Size: 1024, Distance: qdrant.DistanceCosine}
		if err := client.EnsureCollection(ctx, qdrant.CreateCollectionRequest{Name: "medical_documents", Vectors: cfg}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := client.EnsureCollection(ctx, qdrant.CreateCollectionRequest{Name: "fresh", Vectors: cfg}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(created) != 1 || created[0] != "fresh" {
			t.Errorf("expected only fresh to be created, got %v", created)
		}
	})

	t.Run("UpsertPoints", func(t *testing.T) {
		err := client.UpsertPoints(ctx, "medical_documents", qdrant.UpsertPointsRequest{
			Points: []qdrant.Point{{ID: "5c56c793-69f3-4fbf-87e6-c4bf54c28c26", Vector: []float32{0.1}, Payload: map[string]any{"title": "Fever"}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("UpsertPoints error carries status message", func(t *testing.T) {
		err := client.UpsertPoints(ctx, "medical_documents", qdrant.UpsertPointsRequest{
			Points: []qdrant.Point{{ID: 1, Payload: map[string]any{"cause_500": true}}},
		})
		if err == nil || !strings.Contains(err.Error(), "boom") {
			t.Fatalf("expected boom error, got %v", err)
		}
	})

	t.Run("SearchPoints", func(t *testing.T) {
		resp, err := client.SearchPoints(ctx, "medical_documents", qdrant.SearchRequest{Limit: 3, WithPayload: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Result) != 2 {
			t.Fatalf("expected 2 results, got %d", len(resp.Result))
		}
		if resp.Result[0].Payload["title"] != "Fever" {
			t.Errorf("unexpected payload: %v", resp.Result[0].Payload)
		}
		if id, ok := resp.Result[1].ID.(float64); !ok || id != 42 {
			t.Errorf("expected numeric id 42, got %#v", resp.Result[1].ID)
		}
	})

	t.Run("SearchPoints error", func(t *testing.T) {
		if _, err := client.SearchPoints(ctx, "medical_documents", qdrant.SearchRequest{Limit: 999}); err == nil {
			t.Fatal("expected error from 500 response")
		}
	})

	t.Run("Context cancelation", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if _, err := client.SearchPoints(cctx, "medical_documents", qdrant.SearchRequest{}); err == nil {
			t.Error("expected error on canceled context")
		}
	})
}
