package providers

import "context"

type Message struct {
	Role    string
	Content string
}

// Provider is the narrow contract the matcher and insight packages depend on:
// a chat completion and a batch embedding call. Implementations must be safe
// for concurrent use.
type Provider interface {
	Chat(ctx context.Context, messages []Message) (string, error)
	Embed(ctx context.Context, input []string) ([][]float32, error)
	Name() string
}
