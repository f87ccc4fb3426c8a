package provider

import "context"

// Generator defines the interface for generative-text provider clients.
type Generator interface {
	// GenerateText produces text for the given prompt using the client's
	// configured model. The returned text is the raw provider output.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
