// Package store provides rag.VectorIndex implementations: MemoryIndex, a
// plain in-memory index with deterministic ordering, and ChromemIndex,
// backed by the embedded chromem-go vector database.
package store // import "github.com/smallnest/docqa/rag/store"
