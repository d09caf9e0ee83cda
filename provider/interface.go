// Package provider implements the language-model side of a coaching turn.
//
// Gambol can talk to several LLM providers (Ollama, OpenAI, OpenRouter, Anthropic)
// through the common model.Provider interface. The conversation layer stays
// provider-agnostic; this package owns the SDK types and the conversions to them.
//
// # Sampling
//
// Every provider is constructed with a model.Sampling and sends it on each request.
// Gambol uses model.DeterministicSampling so that the same solver output produces the
// same strategy framing across calls. Knobs a provider does not support are dropped:
//   - OpenAI: temperature, top_p
//   - OpenRouter: temperature, top_p, top_k (as an extra JSON field)
//   - Anthropic: temperature, top_k
//   - Ollama: temperature, top_p, top_k
//
// # Usage
//
//	cfg := provider.Config{
//	    Type:     provider.ProviderTypeOllama,
//	    BaseURL:  "http://localhost:11434",
//	    Model:    "llama3.1",
//	    Sampling: model.DeterministicSampling,
//	}
//	p, err := provider.NewProvider(cfg)
//	if err != nil {
//	    // handle error
//	}
//	err = p.Chat(ctx, messages, callback)
package provider

import "gambol/model"

// ProviderType identifies the provider implementation.
type ProviderType string

const (
	ProviderTypeOllama     ProviderType = "ollama"
	ProviderTypeOpenRouter ProviderType = "openrouter"
	ProviderTypeOpenAI     ProviderType = "openai"
	ProviderTypeAnthropic  ProviderType = "anthropic"
)

// Config holds provider-specific configuration.
type Config struct {
	Type     ProviderType
	BaseURL  string
	Model    string
	APIKey   string // For OpenAI/OpenRouter/Anthropic (unused for Ollama)
	Sampling model.Sampling
}
