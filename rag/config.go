package rag

// DefaultFallbackPhrase is the exact answer the generator is instructed to
// emit when the retrieved context cannot support an answer. Receiving it is
// a successful turn, not a failure.
const DefaultFallbackPhrase = "Sorry, I don't know the answer!"

const (
	// DefaultCapShort bounds the short-term window: the most recent
	// history entries sent verbatim in the generation request.
	DefaultCapShort = 6
	// DefaultCapLong bounds the long-term window: the history suffix
	// that gets summarized into memory each turn.
	DefaultCapLong = 20
	// DefaultTopK is the number of nearest documents retrieved per query.
	DefaultTopK = 4
)

// Config is the engine's tuning surface. The zero value is not usable;
// start from DefaultConfig and override fields as needed.
type Config struct {
	// CapShort and CapLong are independent suffix caps over the history
	// log. CapShort <= CapLong is typical but not required.
	CapShort int
	CapLong  int
	// TopK is passed through to the vector index configuration.
	TopK int
	// SystemInstruction is the fixed first message of every generation
	// request. It must restrict the model to the provided context and
	// mandate FallbackPhrase when the context is insufficient.
	SystemInstruction string
	// FallbackPhrase is the literal "don't know" answer the instruction
	// mandates.
	FallbackPhrase string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		CapShort:          DefaultCapShort,
		CapLong:           DefaultCapLong,
		TopK:              DefaultTopK,
		SystemInstruction: SystemInstruction(DefaultFallbackPhrase),
		FallbackPhrase:    DefaultFallbackPhrase,
	}
}
