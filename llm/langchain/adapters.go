// Package langchain adapts langchaingo components to the capability
// contracts in package rag, so any embedder or model from that ecosystem
// can back the engine without further glue.
package langchain // import "github.com/smallnest/docqa/llm/langchain"

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms"

	"github.com/smallnest/docqa/rag"
)

// Embedder exposes a langchaingo embeddings.Embedder as a rag.Embedder.
type Embedder struct {
	embedder embeddings.Embedder
}

var _ rag.Embedder = (*Embedder)(nil)

// NewEmbedder wraps embedder.
func NewEmbedder(embedder embeddings.Embedder) *Embedder {
	return &Embedder{embedder: embedder}
}

// Embed returns the embedding vector for text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	embedding, err := e.embedder.EmbedQuery(ctx, text)
	if err != nil {
		return nil, err
	}

	result := make([]float32, len(embedding))
	for i, val := range embedding {
		result[i] = float32(val)
	}
	return result, nil
}

// Generator exposes a langchaingo llms.Model as a rag.Generator.
type Generator struct {
	model llms.Model
}

var _ rag.Generator = (*Generator)(nil)

// NewGenerator wraps model.
func NewGenerator(model llms.Model) *Generator {
	return &Generator{model: model}
}

// Complete sends messages to the model and returns the first choice's
// content.
func (g *Generator) Complete(ctx context.Context, messages []rag.Message) (string, error) {
	content := make([]llms.MessageContent, len(messages))
	for i, msg := range messages {
		content[i] = llms.TextParts(chatMessageType(msg.Role), msg.Content)
	}

	resp, err := g.model.GenerateContent(ctx, content)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model response contained no choices")
	}
	return resp.Choices[0].Content, nil
}

// chatMessageType maps conversation roles onto langchaingo's message
// types ("human"/"ai" rather than "user"/"assistant").
func chatMessageType(role rag.Role) llms.ChatMessageType {
	switch role {
	case rag.RoleSystem:
		return llms.ChatMessageTypeSystem
	case rag.RoleUser:
		return llms.ChatMessageTypeHuman
	case rag.RoleAssistant:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeGeneric
	}
}
