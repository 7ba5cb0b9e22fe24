package rag

import (
	"errors"
	"fmt"
)

// ProviderUnavailableError reports that the embedding provider was
// unreachable or erroring. The operation that surfaced it did not mutate
// any state, so callers may safely retry.
type ProviderUnavailableError struct {
	// Op is the operation that needed the provider, "add" or "search".
	Op  string
	Err error
}

func (e *ProviderUnavailableError) Error() string {
	return fmt.Sprintf("embedding provider unavailable during %s: %v", e.Op, e.Err)
}

func (e *ProviderUnavailableError) Unwrap() error { return e.Err }

// GenerationFailedError reports that a language-model call failed or timed
// out. The conversation history is left unchanged; the turn can be retried.
type GenerationFailedError struct {
	// Op is the failed call, "answer" or "summarize".
	Op  string
	Err error
}

func (e *GenerationFailedError) Error() string {
	return fmt.Sprintf("generation failed during %s: %v", e.Op, e.Err)
}

func (e *GenerationFailedError) Unwrap() error { return e.Err }

// IsProviderUnavailable reports whether err is or wraps a
// *ProviderUnavailableError.
func IsProviderUnavailable(err error) bool {
	var target *ProviderUnavailableError
	return errors.As(err, &target)
}

// IsGenerationFailed reports whether err is or wraps a
// *GenerationFailedError.
func IsGenerationFailed(err error) bool {
	var target *GenerationFailedError
	return errors.As(err, &target)
}
