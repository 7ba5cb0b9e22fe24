// Package openai provides rag.Embedder and rag.Generator implementations
// backed by the OpenAI API or any OpenAI-compatible endpoint.
package openai // import "github.com/smallnest/docqa/llm/openai"

import (
	"context"
	"fmt"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/smallnest/docqa/rag"
)

// Config configures the client. APIKey is required; everything else has a
// working default.
type Config struct {
	APIKey string
	// BaseURL overrides the API endpoint for OpenAI-compatible services.
	BaseURL    string
	ChatModel  string
	EmbedModel string
}

// Client implements both capability contracts against one API client:
// Embed through the embeddings endpoint, Complete through chat
// completions. A single Client may serve as embedder, generator and
// summarizer at once.
type Client struct {
	api        *goopenai.Client
	chatModel  string
	embedModel goopenai.EmbeddingModel
}

// NewClient creates a client from cfg.
func NewClient(cfg Config) *Client {
	apiCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}

	chatModel := cfg.ChatModel
	if chatModel == "" {
		chatModel = goopenai.GPT4oMini
	}
	embedModel := cfg.EmbedModel
	if embedModel == "" {
		embedModel = string(goopenai.SmallEmbedding3)
	}

	return &Client{
		api:        goopenai.NewClientWithConfig(apiCfg),
		chatModel:  chatModel,
		embedModel: goopenai.EmbeddingModel(embedModel),
	}
}

// Embed returns the embedding vector for text.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := c.api.CreateEmbeddings(ctx, goopenai.EmbeddingRequest{
		Input: []string{text},
		Model: c.embedModel,
	})
	if err != nil {
		return nil, fmt.Errorf("create embedding: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("embedding response contained no data")
	}
	return resp.Data[0].Embedding, nil
}

// Complete sends messages as a chat completion request and returns the
// first choice's content.
func (c *Client) Complete(ctx context.Context, messages []rag.Message) (string, error) {
	chatMessages := make([]goopenai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		chatMessages[i] = goopenai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}

	resp, err := c.api.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:    c.chatModel,
		Messages: chatMessages,
	})
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion response contained no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
