package model

import (
	"context"
)

// Provider abstracts LLM provider implementations (Ollama, OpenAI, OpenRouter, Anthropic)
// using provider-agnostic types from the model layer.
//
// This interface is defined in the model package (not provider package) to avoid
// import cycles: provider implementations import model, and the conversation layer
// can depend on Provider without importing the provider package.
type Provider interface {
	// Chat sends messages and streams the reply back via callback.
	// A "system" role message is passed to the provider as its system instruction.
	Chat(ctx context.Context, messages []Message, callback StreamCallback) error

	// GetModel returns the currently selected model name used for API calls.
	GetModel() string

	// GetDisplayName returns the model name formatted for UI display.
	// For OpenRouter, this strips the vendor prefix (e.g., "meta-llama/llama-3.1-70b" → "llama-3.1-70b").
	GetDisplayName() string

	// SetModel changes the active model.
	SetModel(model string)

	// Ping checks if the provider is reachable.
	Ping(ctx context.Context) error
}

// StreamCallback is called for each chunk of streamed response.
type StreamCallback func(chunk string) error

// Sampling holds the decoding parameters sent with every chat request.
// Providers that lack a knob (OpenAI has no top_k) ignore it.
type Sampling struct {
	Temperature float64
	TopP        float64
	TopK        int
}

// DeterministicSampling keeps strategy framing stable across calls that carry
// identical grounding data.
var DeterministicSampling = Sampling{
	Temperature: 0,
	TopP:        0.5,
	TopK:        32,
}
