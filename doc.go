// docqa - Retrieval-Augmented Question Answering over Documents in Go
//
// docqa answers natural-language questions about ingested documents by
// combining semantic retrieval with a language-model generation step,
// while carrying bounded conversational context across turns. Documents
// are embedded into a per-session vector index; each turn retrieves the
// nearest units, summarizes the older history into a compact memory, and
// sends memory, retrieved context, recent transcript and the question as
// one generation request.
//
// # Quick Start
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//		"os"
//
//		"github.com/smallnest/docqa/llm/openai"
//		"github.com/smallnest/docqa/memory"
//		"github.com/smallnest/docqa/rag"
//		"github.com/smallnest/docqa/rag/engine"
//		"github.com/smallnest/docqa/rag/store"
//		"github.com/smallnest/docqa/session"
//	)
//
//	func main() {
//		client := openai.NewClient(openai.Config{APIKey: os.Getenv("OPENAI_API_KEY")})
//		cfg := rag.DefaultConfig()
//
//		sess := session.New(store.NewMemoryIndex(client, cfg.TopK))
//		sess.Index().Add(context.Background(), []rag.DocumentUnit{
//			{Content: "Paris is the capital of France.", Metadata: rag.Metadata{Source: "geo.txt", PageNumber: 1}},
//		})
//
//		e := engine.New(client, memory.NewManager(client), cfg)
//		result, err := e.Answer(context.Background(), "What is the capital of France?", sess)
//		if err != nil {
//			panic(err)
//		}
//		fmt.Println(result.Answer)
//	}
//
// All state is in-memory and scoped to a session's lifetime. Sessions are
// independent; see package session for the concurrency contract.
package docqa // import "github.com/smallnest/docqa"
