package rag

import (
	"context"
	"fmt"
	"strings"
)

// Role identifies the author of a history entry or chat message.
type Role string

const (
	// RoleSystem is the fixed instruction message of a generation request.
	RoleSystem Role = "system"
	// RoleUser marks content written by the person asking questions.
	RoleUser Role = "user"
	// RoleAssistant marks content produced by the generator.
	RoleAssistant Role = "assistant"
)

// Metadata carries the provenance of a document unit.
type Metadata struct {
	// Source identifies where the unit came from, typically a file path.
	Source string
	// PageNumber is the 1-based page the unit was extracted from.
	PageNumber int
}

// DocumentUnit is a discrete unit of ingested text. Units are immutable
// once created; the ID is assigned by the vector index at insertion time,
// so duplicate content is stored separately under distinct ids.
type DocumentUnit struct {
	ID       string
	Content  string
	Metadata Metadata
}

// HistoryEntry is one message of the conversation log.
type HistoryEntry struct {
	Role    Role
	Content string
}

// Message is one element of a generation request.
type Message struct {
	Role    Role
	Content string
}

// Result is the outcome of one successful question-answer turn.
// Documents holds the retrieved units in exactly the order the vector
// index returned them, so callers can cross-reference displayed sources.
type Result struct {
	Answer    string
	Documents []DocumentUnit
}

// Embedder maps text to a fixed-dimension vector. Implementations must be
// deterministic for identical input within a session's lifetime.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Generator completes a chat-style request and returns the model's text
// output. The same contract serves answer generation and history
// summarization; only the instruction differs.
type Generator interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// VectorIndex stores document units with their embeddings and supports
// nearest-neighbor search. Implementations own the units after Add and
// never lose or reorder them; Search is read-only.
type VectorIndex interface {
	// Add embeds and inserts all given units, assigning each a fresh
	// unique id. Insertion is all-or-nothing per call: if any embedding
	// fails the index is left unchanged and a *ProviderUnavailableError
	// is returned.
	Add(ctx context.Context, docs []DocumentUnit) error

	// Search returns the top-K units nearest to the query by cosine
	// similarity, ties broken by insertion order (earliest first). An
	// empty index yields an empty result, never an error.
	Search(ctx context.Context, query string) ([]DocumentUnit, error)

	// Len reports the number of stored units.
	Len() int
}

// Transcript serializes history entries in chronological order with role
// tags, e.g. "<user>hi</user><assistant>hello</assistant>". This is the
// wire form embedded in generation and summarization requests.
func Transcript(entries []HistoryEntry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "<%s>%s</%s>", e.Role, e.Content, e.Role)
	}
	return b.String()
}
