package utils

import (
	"context"

	"plingplan/internal/models/domain_models"
)

// AIClientInterface abstracts the generative model behind the chat and
// structured-suggestion endpoints. Implementations exist for Gemini and
// OpenAI, selected by AI_PROVIDER.
type AIClientInterface interface {
	// ConfigError reports why the client is unusable, or nil when a
	// credential is configured. Callers check it before opening a stream
	// so configuration problems surface as plain JSON errors.
	ConfigError() error

	// StreamChat streams one assistant turn. onDelta is invoked for each
	// text fragment in arrival order; the fully accumulated text is
	// returned once the stream completes.
	StreamChat(ctx context.Context, system string, messages []domain_models.ChatMessage, onDelta func(string)) (string, error)

	// GenerateJSON requests a single JSON-mode completion and returns the
	// raw JSON text.
	GenerateJSON(ctx context.Context, system string, prompt string) (string, error)
}

// UnconfiguredClient stands in when no provider credential is set. Every call
// fails with a configuration error naming the missing variable; the process
// keeps running and unrelated endpoints stay usable.
type UnconfiguredClient struct {
	EnvVar string
}

func (c UnconfiguredClient) ConfigError() error {
	return NotConfigured(c.EnvVar)
}

func (c UnconfiguredClient) StreamChat(ctx context.Context, system string, messages []domain_models.ChatMessage, onDelta func(string)) (string, error) {
	return "", NotConfigured(c.EnvVar)
}

func (c UnconfiguredClient) GenerateJSON(ctx context.Context, system string, prompt string) (string, error) {
	return "", NotConfigured(c.EnvVar)
}
