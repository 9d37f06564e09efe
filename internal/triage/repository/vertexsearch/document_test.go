package vertexsearch

import (
	"context"
	"errors"
	"testing"

	"github.com/devkan/FirstAidVox/internal/triage/repository"
	pkgLog "github.com/devkan/FirstAidVox/pkg/log"
	pkgVertexSearch "github.com/devkan/FirstAidVox/pkg/vertexsearch"
)

type fakeSearcher struct {
	docs      []pkgVertexSearch.Document
	err       error
	calls     int
	lastQuery string
	lastSize  int
}

func (f *fakeSearcher) Search(ctx context.Context, query string, pageSize int) ([]pkgVertexSearch.Document, error) {
	f.calls++
	f.lastQuery = query
	f.lastSize = pageSize
	return f.docs, f.err
}

func TestSearchDocuments(t *testing.T) {
	ctx := context.Background()

	t.Run("maps and filters empty documents", func(t *testing.T) {
		fs := &fakeSearcher{docs: []pkgVertexSearch.Document{
			{ID: "1", Title: "Fever", Content: "Fever care", Snippet: "drink fluids"},
			{ID: "2"},
			{ID: "3", Snippet: "only a snippet"},
		}}
		repo := New(fs, pkgLog.NewNop())

		docs, err := repo.SearchDocuments(ctx, repository.SearchDocumentsOptions{Query: "fever", Limit: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(docs) != 2 {
			t.Fatalf("expected 2 documents, got %d", len(docs))
		}
		if docs[0].Title != "Fever" || docs[0].Snippet != "drink fluids" || docs[1].Snippet != "only a snippet" {
			t.Errorf("unexpected documents: %+v", docs)
		}
		if fs.lastQuery != "fever" || fs.lastSize != 3 {
			t.Errorf("unexpected search call: %q %d", fs.lastQuery, fs.lastSize)
		}
	})

	t.Run("enforces limit", func(t *testing.T) {
		fs := &fakeSearcher{docs: []pkgVertexSearch.Document{{Title: "a"}, {Title: "b"}, {Title: "c"}}}
		docs, err := New(fs, pkgLog.NewNop()).SearchDocuments(ctx, repository.SearchDocumentsOptions{Query: "q", Limit: 2})
		if err != nil || len(docs) != 2 {
			t.Fatalf("expected 2 documents, got %d, %v", len(docs), err)
		}
	})

	t.Run("blank query skips backend", func(t *testing.T) {
		fs := &fakeSearcher{}
		docs, err := New(fs, pkgLog.NewNop()).SearchDocuments(ctx, repository.SearchDocumentsOptions{Query: "  ", Limit: 3})
		if err != nil || docs != nil || fs.calls != 0 {
			t.Fatalf("expected no call, got docs=%v err=%v calls=%d", docs, err, fs.calls)
		}
	})

	t.Run("propagates errors", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := New(&fakeSearcher{err: boom}, pkgLog.NewNop()).SearchDocuments(ctx, repository.SearchDocumentsOptions{Query: "q", Limit: 3})
		if !errors.Is(err, boom) {
			t.Fatalf("expected wrapped boom, got %v", err)
		}
	})
}
