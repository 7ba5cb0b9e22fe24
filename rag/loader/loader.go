// Package loader turns local files into already-chunked document units
// ready for ingestion. The chunk boundary rule is deliberately naive
// (blank-line paragraphs for text, rendered blocks for markdown and HTML)
// since the engine treats chunking as an external concern; callers with a
// real chunking pipeline can build rag.DocumentUnit values directly.
package loader // import "github.com/smallnest/docqa/rag/loader"

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/smallnest/docqa/rag"
)

// Loader produces document units from some source.
type Loader interface {
	Load(ctx context.Context) ([]rag.DocumentUnit, error)
}

// ForFile picks a loader by file extension: markdown for .md/.markdown,
// HTML for .html/.htm, plain text for everything else.
func ForFile(path string) Loader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return NewMarkdownLoader(path)
	case ".html", ".htm":
		return NewHTMLLoader(path)
	default:
		return NewTextLoader(path)
	}
}

// TextLoader loads a plain-text file, one unit per blank-line separated
// paragraph.
type TextLoader struct {
	path string
}

// NewTextLoader creates a loader for the file at path.
func NewTextLoader(path string) *TextLoader {
	return &TextLoader{path: path}
}

// Load reads the file and returns its paragraphs as units.
func (l *TextLoader) Load(ctx context.Context) ([]rag.DocumentUnit, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", l.path, err)
	}
	return units(l.path, splitParagraphs(string(data))), nil
}

// splitParagraphs splits text on blank lines and trims each paragraph,
// dropping empty ones.
func splitParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var paragraphs []string
	for _, block := range strings.Split(text, "\n\n") {
		if trimmed := strings.TrimSpace(block); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return paragraphs
}

// units wraps paragraphs as document units. The page number records the
// unit's 1-based position within the file.
func units(source string, paragraphs []string) []rag.DocumentUnit {
	docs := make([]rag.DocumentUnit, len(paragraphs))
	for i, content := range paragraphs {
		docs[i] = rag.DocumentUnit{
			Content: content,
			Metadata: rag.Metadata{
				Source:     source,
				PageNumber: i + 1,
			},
		}
	}
	return docs
}
