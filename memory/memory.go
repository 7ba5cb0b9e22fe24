// Package memory reduces a bounded window of past conversation turns into
// a compact summary used to keep generation grounded in the conversation's
// type and intent without re-sending the full transcript.
package memory // import "github.com/smallnest/docqa/memory"

import (
	"context"

	"github.com/smallnest/docqa/rag"
)

// SummaryInstruction is the fixed instruction sent to the summarizer
// capability together with the serialized long-term window.
const SummaryInstruction = `## Role:
• Act as a conversation analyst producing compact memory digests

## Task:
• Summarize the conversation transcript provided in the user message
• Identify the type of conversation and the user's intent
• Preserve the facts, topics, and decisions needed to continue the discussion

## Guidelines:
• The transcript is serialized as <user>...</user> and <assistant>...</assistant> entries in chronological order
• Output a short plain-text digest, no role tags, no commentary about these instructions
• Never invent content that does not appear in the transcript`

// Window returns the suffix of entries capped at n: the last n entries
// when the log is longer, otherwise the full log. It is a derived view;
// the underlying log is never truncated.
func Window(entries []rag.HistoryEntry, n int) []rag.HistoryEntry {
	if n < 0 {
		n = 0
	}
	if len(entries) > n {
		return entries[len(entries)-n:]
	}
	return entries
}

// Manager produces memory summaries from history windows.
type Manager struct {
	summarizer  rag.Generator
	instruction string
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithInstruction replaces the default summarization instruction.
func WithInstruction(instruction string) ManagerOption {
	return func(m *Manager) {
		m.instruction = instruction
	}
}

// NewManager creates a Manager that summarizes through the given
// capability. The summarizer shares the rag.Generator contract; only the
// instruction differs from answer generation.
func NewManager(summarizer rag.Generator, opts ...ManagerOption) *Manager {
	m := &Manager{
		summarizer:  summarizer,
		instruction: SummaryInstruction,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Summarize re-summarizes the provided window from scratch and returns the
// summarizer's output verbatim. The result is a pure function of the
// window's current contents; nothing is cached between calls. An empty
// window yields an empty memory without invoking the summarizer. A failed
// summarizer call surfaces as *rag.GenerationFailedError.
func (m *Manager) Summarize(ctx context.Context, entries []rag.HistoryEntry) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}

	messages := []rag.Message{
		{Role: rag.RoleSystem, Content: m.instruction},
		{Role: rag.RoleUser, Content: rag.Transcript(entries)},
	}

	summary, err := m.summarizer.Complete(ctx, messages)
	if err != nil {
		return "", &rag.GenerationFailedError{Op: "summarize", Err: err}
	}
	return summary, nil
}
