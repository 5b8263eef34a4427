package llm

import "context"

// TextGenerator is the generation-provider boundary. Implementations
// return the model's raw text verbatim; parsing lives downstream so
// that format resilience stays separate from transport concerns.
type TextGenerator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
	Close() error
}
