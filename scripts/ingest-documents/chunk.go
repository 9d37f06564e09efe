package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/elliotchance/pie/v2"
	"github.com/google/uuid"
)

const (
	maxChunkChars   = 1000
	maxSnippetChars = 200
)

var documentExtensions = []string{".md", ".txt"}

// chunk is one embeddable piece of a source document.
type chunk struct {
	ID      string
	Title   string
	Content string
	Snippet string
	Source  string
}

// loadChunks reads every .md and .txt file under dir, in lexical order.
func loadChunks(dir string) ([]chunk, error) {
	var chunks []chunk
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !pie.Contains(documentExtensions, strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = path
		}
		chunks = append(chunks, splitDocument(filepath.ToSlash(rel), string(data))...)
		return nil
	})
	return chunks, err
}

// splitDocument packs paragraphs into chunks of at most maxChunkChars. A single
// longer paragraph becomes its own chunk. The title is the first markdown
// heading, or the file name.
func splitDocument(source, text string) []chunk {
	title := documentTitle(source, text)

	paragraphs := pie.Filter(
		pie.Map(strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n"), strings.TrimSpace),
		func(p string) bool { return p != "" },
	)

	var (
		out     []chunk
		current strings.Builder
	)
	flush := func() {
		if current.Len() == 0 {
			return
		}
		content := current.String()
		out = append(out, chunk{
			ID:      uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("%s#%d", source, len(out)))).String(),
			Title:   title,
			Content: content,
			Snippet: snippet(content),
			Source:  source,
		})
		current.Reset()
	}

	for _, p := range paragraphs {
		if current.Len() > 0 && utf8.RuneCountInString(current.String())+utf8.RuneCountInString(p)+2 > maxChunkChars {
			flush()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(p)
	}
	flush()

	return out
}

func documentTitle(source, text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			if t := strings.TrimSpace(strings.TrimLeft(line, "#")); t != "" {
				return t
			}
		}
	}
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func snippet(content string) string {
	flat := strings.Join(strings.Fields(content), " ")
	if utf8.RuneCountInString(flat) <= maxSnippetChars {
		return flat
	}
	return string([]rune(flat)[:maxSnippetChars]) + "..."
}
