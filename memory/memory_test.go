package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallnest/docqa/rag"
)

type mockSummarizer struct {
	output   string
	err      error
	requests [][]rag.Message
}

func (m *mockSummarizer) Complete(ctx context.Context, messages []rag.Message) (string, error) {
	m.requests = append(m.requests, messages)
	if m.err != nil {
		return "", m.err
	}
	return m.output, nil
}

func entries(n int) []rag.HistoryEntry {
	out := make([]rag.HistoryEntry, n)
	for i := range out {
		role := rag.RoleUser
		if i%2 == 1 {
			role = rag.RoleAssistant
		}
		out[i] = rag.HistoryEntry{Role: role, Content: fmt.Sprintf("entry %d", i)}
	}
	return out
}

func TestWindow(t *testing.T) {
	t.Run("log longer than cap returns last cap entries", func(t *testing.T) {
		log := entries(10)
		window := Window(log, 4)
		require.Len(t, window, 4)
		assert.Equal(t, log[6:], window)
	})

	t.Run("log shorter than cap returns full log", func(t *testing.T) {
		log := entries(3)
		assert.Equal(t, log, Window(log, 4))
	})

	t.Run("log equal to cap returns full log", func(t *testing.T) {
		log := entries(4)
		assert.Equal(t, log, Window(log, 4))
	})

	t.Run("zero and negative caps yield empty windows", func(t *testing.T) {
		assert.Empty(t, Window(entries(5), 0))
		assert.Empty(t, Window(entries(5), -1))
	})
}

func TestManagerSummarize(t *testing.T) {
	ctx := context.Background()

	t.Run("empty window yields empty memory without a call", func(t *testing.T) {
		summarizer := &mockSummarizer{output: "should not appear"}
		m := NewManager(summarizer)

		memory, err := m.Summarize(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, memory)
		assert.Empty(t, summarizer.requests)
	})

	t.Run("output returned verbatim", func(t *testing.T) {
		summarizer := &mockSummarizer{output: "  a factual chat about geography \n"}
		m := NewManager(summarizer)

		memory, err := m.Summarize(ctx, entries(2))
		require.NoError(t, err)
		assert.Equal(t, "  a factual chat about geography \n", memory)
	})

	t.Run("request carries instruction and transcript", func(t *testing.T) {
		summarizer := &mockSummarizer{output: "ok"}
		m := NewManager(summarizer)

		_, err := m.Summarize(ctx, entries(2))
		require.NoError(t, err)

		require.Len(t, summarizer.requests, 1)
		request := summarizer.requests[0]
		require.Len(t, request, 2)
		assert.Equal(t, rag.RoleSystem, request[0].Role)
		assert.Equal(t, SummaryInstruction, request[0].Content)
		assert.Equal(t, rag.RoleUser, request[1].Role)
		assert.Equal(t, "<user>entry 0</user><assistant>entry 1</assistant>", request[1].Content)
	})

	t.Run("custom instruction", func(t *testing.T) {
		summarizer := &mockSummarizer{output: "ok"}
		m := NewManager(summarizer, WithInstruction("just summarize"))

		_, err := m.Summarize(ctx, entries(2))
		require.NoError(t, err)
		assert.Equal(t, "just summarize", summarizer.requests[0][0].Content)
	})

	t.Run("summarizer failure is a generation failure", func(t *testing.T) {
		cause := errors.New("model unavailable")
		m := NewManager(&mockSummarizer{err: cause})

		_, err := m.Summarize(ctx, entries(2))
		require.Error(t, err)
		assert.True(t, rag.IsGenerationFailed(err))
		assert.ErrorIs(t, err, cause)
	})
}
