package llm

import "context"

// Client abstracts the text-completion backend.
type Client interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}
