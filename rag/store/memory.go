package store

import (
	"context"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/smallnest/docqa/rag"
)

// MemoryIndex is an in-memory vector index. Documents and their embeddings
// are held in parallel append-only slices, so insertion order is preserved
// and search results are fully deterministic: ranked by cosine similarity,
// ties broken by insertion order (earliest first).
type MemoryIndex struct {
	embedder   rag.Embedder
	topK       int
	documents  []rag.DocumentUnit
	embeddings [][]float32
}

var _ rag.VectorIndex = (*MemoryIndex)(nil)

// NewMemoryIndex creates an empty index that embeds via embedder and
// returns at most topK results per search.
func NewMemoryIndex(embedder rag.Embedder, topK int) *MemoryIndex {
	if topK <= 0 {
		topK = rag.DefaultTopK
	}
	return &MemoryIndex{
		embedder:   embedder,
		topK:       topK,
		documents:  make([]rag.DocumentUnit, 0),
		embeddings: make([][]float32, 0),
	}
}

// Add embeds and inserts all given units. Every unit receives a fresh uuid,
// so repeated calls with identical content store separate entries. All
// embeddings are computed before anything is appended; an embedding failure
// leaves the index unchanged and surfaces as *rag.ProviderUnavailableError.
func (x *MemoryIndex) Add(ctx context.Context, docs []rag.DocumentUnit) error {
	vectors := make([][]float32, len(docs))
	for i, doc := range docs {
		vec, err := x.embedder.Embed(ctx, doc.Content)
		if err != nil {
			return &rag.ProviderUnavailableError{Op: "add", Err: err}
		}
		vectors[i] = vec
	}

	for i, doc := range docs {
		doc.ID = uuid.New().String()
		x.documents = append(x.documents, doc)
		x.embeddings = append(x.embeddings, vectors[i])
	}
	return nil
}

// Search returns the topK units nearest to query. The query is not embedded
// when the index is empty, so an empty index never errors.
func (x *MemoryIndex) Search(ctx context.Context, query string) ([]rag.DocumentUnit, error) {
	if len(x.documents) == 0 {
		return []rag.DocumentUnit{}, nil
	}

	queryVec, err := x.embedder.Embed(ctx, query)
	if err != nil {
		return nil, &rag.ProviderUnavailableError{Op: "search", Err: err}
	}

	order := make([]int, len(x.documents))
	scores := make([]float64, len(x.documents))
	for i := range x.documents {
		order[i] = i
		scores[i] = cosineSimilarity(queryVec, x.embeddings[i])
	}

	// Stable over insertion order, so equal scores keep earliest-first.
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	k := x.topK
	if k > len(order) {
		k = len(order)
	}

	results := make([]rag.DocumentUnit, k)
	for i := 0; i < k; i++ {
		results[i] = x.documents[order[i]]
	}
	return results, nil
}

// Len reports the number of stored units.
func (x *MemoryIndex) Len() int { return len(x.documents) }

// cosineSimilarity computes the cosine similarity of two vectors. Length
// mismatch or a zero vector yields 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
