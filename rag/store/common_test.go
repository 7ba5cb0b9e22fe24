package store

import (
	"context"
	"errors"
	"strings"

	"github.com/smallnest/docqa/rag"
)

// vocabEmbedder embeds text as term counts over a fixed vocabulary. It is
// deterministic, so similarity rankings in tests are fully predictable.
type vocabEmbedder struct {
	vocab []string
	err   error
	calls int
}

func newVocabEmbedder(vocab ...string) *vocabEmbedder {
	return &vocabEmbedder{vocab: vocab}
}

func (e *vocabEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	lower := strings.ToLower(text)
	vec := make([]float32, len(e.vocab))
	for i, word := range e.vocab {
		vec[i] = float32(strings.Count(lower, word))
	}
	return vec, nil
}

var errProviderDown = errors.New("embedding service down")

func doc(content, source string, page int) rag.DocumentUnit {
	return rag.DocumentUnit{
		Content:  content,
		Metadata: rag.Metadata{Source: source, PageNumber: page},
	}
}
