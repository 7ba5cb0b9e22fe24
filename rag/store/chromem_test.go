package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallnest/docqa/rag"
)

func TestChromemIndex(t *testing.T) {
	ctx := context.Background()

	t.Run("add and search", func(t *testing.T) {
		idx, err := NewChromemIndex(newVocabEmbedder("paris", "capital", "sky"), 4)
		require.NoError(t, err)

		require.NoError(t, idx.Add(ctx, []rag.DocumentUnit{
			doc("The sky is blue", "notes.txt", 1),
			doc("Paris is the capital of France", "notes.txt", 2),
		}))
		assert.Equal(t, 2, idx.Len())

		results, err := idx.Search(ctx, "capital of paris")
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "Paris is the capital of France", results[0].Content)
		assert.Equal(t, "notes.txt", results[0].Metadata.Source)
		assert.Equal(t, 2, results[0].Metadata.PageNumber)
	})

	t.Run("empty index returns empty list", func(t *testing.T) {
		idx, err := NewChromemIndex(newVocabEmbedder("paris"), 4)
		require.NoError(t, err)

		results, err := idx.Search(ctx, "anything")
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("embedder failure leaves index unchanged", func(t *testing.T) {
		embedder := newVocabEmbedder("paris")
		idx, err := NewChromemIndex(embedder, 4)
		require.NoError(t, err)
		require.NoError(t, idx.Add(ctx, []rag.DocumentUnit{doc("paris", "a", 1)}))

		embedder.err = errProviderDown
		err = idx.Add(ctx, []rag.DocumentUnit{doc("one", "b", 1)})
		require.Error(t, err)
		assert.True(t, rag.IsProviderUnavailable(err))
		assert.Equal(t, 1, idx.Len())
	})
}
