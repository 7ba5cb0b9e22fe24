// Package rag defines the core data model and capability contracts for
// document question answering: document units with provenance metadata,
// conversation history entries, the embedding/generation capability
// interfaces, the vector index contract, and the typed failures surfaced
// by retrieval and generation.
//
// Concrete capability providers live in llm/openai and llm/langchain,
// vector index implementations in rag/store, and the per-turn
// orchestration in rag/engine.
package rag // import "github.com/smallnest/docqa/rag"
