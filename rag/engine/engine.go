// Package engine orchestrates one question-answer turn: it derives the
// history windows, summarizes the long-term window into memory, retrieves
// relevant documents from the session's vector index, assembles a single
// generation request and returns the answer together with its supporting
// evidence.
package engine // import "github.com/smallnest/docqa/rag/engine"

import (
	"context"
	"fmt"
	"strings"

	"github.com/smallnest/docqa/log"
	"github.com/smallnest/docqa/memory"
	"github.com/smallnest/docqa/rag"
	"github.com/smallnest/docqa/session"
)

// Engine executes question-answer turns against per-session state. It
// holds no conversation state itself: every call takes the session as an
// explicit argument, and all mutation happens through it.
type Engine struct {
	generator rag.Generator
	memories  *memory.Manager
	cfg       rag.Config
	logger    log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger replaces the default no-op logger.
func WithLogger(logger log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an engine generating answers through generator and
// summarizing history through memories.
func New(generator rag.Generator, memories *memory.Manager, cfg rag.Config, opts ...Option) *Engine {
	e := &Engine{
		generator: generator,
		memories:  memories,
		cfg:       cfg,
		logger:    log.NopLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Answer executes one turn for the given session.
//
// The turn reads the history log once, derives the two capped windows from
// that snapshot, summarizes the long window, searches the session's index
// with the question, and sends a single generation request carrying the
// memory, the retrieved context, the short-term transcript and the
// question. Only after generation succeeds is the (user, assistant) pair
// appended to the log; any failure leaves index and history exactly as
// they were, surfaced as *rag.ProviderUnavailableError or
// *rag.GenerationFailedError.
func (e *Engine) Answer(ctx context.Context, question string, sess *session.Session) (*rag.Result, error) {
	history := sess.History()
	longWindow := memory.Window(history, e.cfg.CapLong)
	shortWindow := memory.Window(history, e.cfg.CapShort)

	memories, err := e.memories.Summarize(ctx, longWindow)
	if err != nil {
		return nil, err
	}

	documents, err := sess.Index().Search(ctx, question)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("retrieved %d documents for session %s", len(documents), sess.ID())

	request := buildRequest(memories, documents, shortWindow, question)
	messages := []rag.Message{
		{Role: rag.RoleSystem, Content: e.cfg.SystemInstruction},
		{Role: rag.RoleUser, Content: request},
	}

	answer, err := e.generator.Complete(ctx, messages)
	if err != nil {
		e.logger.Error("generation failed for session %s: %v", sess.ID(), err)
		return nil, &rag.GenerationFailedError{Op: "answer", Err: err}
	}

	sess.AppendTurn(question, answer)

	return &rag.Result{
		Answer:    answer,
		Documents: documents,
	}, nil
}

// buildRequest assembles the user message of the generation request. The
// four labeled sections mirror what the system instruction refers to:
// prior memory, retrieved context in search-result order, the short-term
// transcript and the current question.
func buildRequest(memories string, documents []rag.DocumentUnit, shortWindow []rag.HistoryEntry, question string) string {
	contents := make([]string, len(documents))
	for i, doc := range documents {
		contents[i] = doc.Content
	}
	context := strings.Join(contents, "\n\n")

	return fmt.Sprintf("<memories>%s</memories><context>%s</context><histories>%s</histories><question>%s</question>",
		memories, context, rag.Transcript(shortWindow), question)
}
