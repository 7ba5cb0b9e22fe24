package store

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/google/uuid"
	chromem "github.com/philippgille/chromem-go"

	"github.com/smallnest/docqa/rag"
)

// ChromemIndex is a rag.VectorIndex backed by chromem-go, a pure-Go
// embedded vector database. Embeddings are computed through the configured
// rag.Embedder and handed to chromem explicitly; chromem's own embedding
// functions are not used.
type ChromemIndex struct {
	embedder   rag.Embedder
	topK       int
	collection *chromem.Collection
	seq        int
}

var _ rag.VectorIndex = (*ChromemIndex)(nil)

// NewChromemIndex creates an index over a fresh single-collection chromem
// database.
func NewChromemIndex(embedder rag.Embedder, topK int) (*ChromemIndex, error) {
	if topK <= 0 {
		topK = rag.DefaultTopK
	}

	db := chromem.NewDB()
	collection, err := db.CreateCollection("documents", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	return &ChromemIndex{
		embedder:   embedder,
		topK:       topK,
		collection: collection,
	}, nil
}

// Add embeds all units first and only then inserts them, so an embedding
// failure leaves the collection unchanged.
func (x *ChromemIndex) Add(ctx context.Context, docs []rag.DocumentUnit) error {
	chromemDocs := make([]chromem.Document, len(docs))
	for i, doc := range docs {
		vec, err := x.embedder.Embed(ctx, doc.Content)
		if err != nil {
			return &rag.ProviderUnavailableError{Op: "add", Err: err}
		}
		chromemDocs[i] = chromem.Document{
			ID:        uuid.New().String(),
			Content:   doc.Content,
			Embedding: vec,
			Metadata: map[string]string{
				"source":      doc.Metadata.Source,
				"page_number": strconv.Itoa(doc.Metadata.PageNumber),
				"seq":         strconv.Itoa(x.seq + i),
			},
		}
	}

	if err := x.collection.AddDocuments(ctx, chromemDocs, 1); err != nil {
		return fmt.Errorf("add documents: %w", err)
	}
	x.seq += len(docs)
	return nil
}

// Search returns the topK nearest units. chromem does not define the order
// of equal-similarity results, so results are re-sorted with the stored
// insertion sequence as tie-breaker to keep search deterministic.
func (x *ChromemIndex) Search(ctx context.Context, query string) ([]rag.DocumentUnit, error) {
	count := x.collection.Count()
	if count == 0 {
		return []rag.DocumentUnit{}, nil
	}

	queryVec, err := x.embedder.Embed(ctx, query)
	if err != nil {
		return nil, &rag.ProviderUnavailableError{Op: "search", Err: err}
	}

	n := x.topK
	if n > count {
		n = count
	}

	results, err := x.collection.QueryEmbedding(ctx, queryVec, n, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query collection: %w", err)
	}

	sort.SliceStable(results, func(a, b int) bool {
		if results[a].Similarity != results[b].Similarity {
			return results[a].Similarity > results[b].Similarity
		}
		return seqOf(results[a]) < seqOf(results[b])
	})

	units := make([]rag.DocumentUnit, len(results))
	for i, res := range results {
		page, _ := strconv.Atoi(res.Metadata["page_number"])
		units[i] = rag.DocumentUnit{
			ID:      res.ID,
			Content: res.Content,
			Metadata: rag.Metadata{
				Source:     res.Metadata["source"],
				PageNumber: page,
			},
		}
	}
	return units, nil
}

// Len reports the number of stored units.
func (x *ChromemIndex) Len() int { return x.collection.Count() }

func seqOf(res chromem.Result) int {
	seq, _ := strconv.Atoi(res.Metadata["seq"])
	return seq
}
