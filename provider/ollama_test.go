package provider

import (
	"testing"

	"gambol/model"
)

// TestProvidersImplementInterface is a compile-time check that every provider
// implements the model.Provider interface.
func TestProvidersImplementInterface(t *testing.T) {
	var _ model.Provider = (*OllamaProvider)(nil)
	var _ model.Provider = (*OpenAIProvider)(nil)
	var _ model.Provider = (*OpenRouterProvider)(nil)
	var _ model.Provider = (*AnthropicProvider)(nil)
}

func TestOllamaProviderForwardsSampling(t *testing.T) {
	p, err := NewOllamaProvider("http://localhost:11434", "llama3.1", model.DeterministicSampling)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	opts := p.client.Options()
	if opts["temperature"] != 0.0 {
		t.Errorf("temperature = %v, want 0", opts["temperature"])
	}
	if opts["top_p"] != 0.5 {
		t.Errorf("top_p = %v, want 0.5", opts["top_p"])
	}
	if opts["top_k"] != 32 {
		t.Errorf("top_k = %v, want 32", opts["top_k"])
	}
}
