package loader

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/smallnest/docqa/rag"
)

// HTMLLoader loads an HTML file, one unit per textual block element.
type HTMLLoader struct {
	path string
}

// NewHTMLLoader creates a loader for the file at path.
func NewHTMLLoader(path string) *HTMLLoader {
	return &HTMLLoader{path: path}
}

// Load parses the file and returns the text of its block elements as
// units, in document order.
func (l *HTMLLoader) Load(ctx context.Context) ([]rag.DocumentUnit, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", l.path, err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", l.path, err)
	}

	var blocks []string
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, pre, blockquote").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})
	return units(l.path, blocks), nil
}
