package engine

import (
	"context"
	"strings"

	"github.com/smallnest/docqa/rag"
)

// mockGenerator records every request and replies with a canned answer,
// or with answerFor's result when set.
type mockGenerator struct {
	answer    string
	answerFor func(messages []rag.Message) string
	err       error
	requests  [][]rag.Message
}

func (g *mockGenerator) Complete(ctx context.Context, messages []rag.Message) (string, error) {
	g.requests = append(g.requests, messages)
	if g.err != nil {
		return "", g.err
	}
	if g.answerFor != nil {
		return g.answerFor(messages), nil
	}
	return g.answer, nil
}

// vocabEmbedder embeds text as term counts over a fixed vocabulary.
type vocabEmbedder struct {
	vocab []string
}

func (e *vocabEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	lower := strings.ToLower(text)
	vec := make([]float32, len(e.vocab))
	for i, word := range e.vocab {
		vec[i] = float32(strings.Count(lower, word))
	}
	return vec, nil
}

// userMessage returns the content of the request's user message.
func userMessage(messages []rag.Message) string {
	for _, msg := range messages {
		if msg.Role == rag.RoleUser {
			return msg.Content
		}
	}
	return ""
}

// section extracts the content of one labeled request section.
func section(request, name string) string {
	openTag, closeTag := "<"+name+">", "</"+name+">"
	start := strings.Index(request, openTag)
	end := strings.Index(request, closeTag)
	if start < 0 || end < 0 {
		return ""
	}
	return request[start+len(openTag) : end]
}
