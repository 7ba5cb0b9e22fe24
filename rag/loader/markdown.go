package loader

import (
	"context"
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/microcosm-cc/bluemonday"

	"github.com/smallnest/docqa/rag"
)

// MarkdownLoader loads a markdown file, one unit per rendered block. The
// markup is rendered to HTML, stripped of all tags, and the remaining
// lines become units.
type MarkdownLoader struct {
	path string
}

// NewMarkdownLoader creates a loader for the file at path.
func NewMarkdownLoader(path string) *MarkdownLoader {
	return &MarkdownLoader{path: path}
}

// Load reads and renders the file and returns its blocks as units.
func (l *MarkdownLoader) Load(ctx context.Context) ([]rag.DocumentUnit, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", l.path, err)
	}

	rendered := markdown.ToHTML(data, nil, nil)
	stripped := bluemonday.StrictPolicy().Sanitize(string(rendered))

	var blocks []string
	for _, line := range strings.Split(stripped, "\n") {
		if trimmed := strings.TrimSpace(html.UnescapeString(line)); trimmed != "" {
			blocks = append(blocks, trimmed)
		}
	}
	return units(l.path, blocks), nil
}
