package provider

import (
	"context"
	"fmt"

	"gambol/model"
	"gambol/ollama"
)

// OllamaProvider wraps ollama.Client to implement the model.Provider interface.
//
// It converts model.Message to Ollama's api.Message and forwards the pinned
// sampling options with every request.
type OllamaProvider struct {
	client *ollama.Client
}

// NewOllamaProvider creates a new Ollama provider instance.
//
// Parameters:
//   - baseURL: The Ollama server URL. If empty, defaults to "http://localhost:11434".
//   - model: The model name to use. If empty, defaults to "llama3.1:latest".
//   - sampling: decoding parameters sent as request options.
//
// Returns an error if the baseURL cannot be parsed.
func NewOllamaProvider(baseURL, model string, sampling model.Sampling) (*OllamaProvider, error) {
	client, err := ollama.NewClient(baseURL, model)
	if err != nil {
		return nil, fmt.Errorf("failed to create Ollama client: %w", err)
	}
	client.SetSampling(sampling.Temperature, sampling.TopP, sampling.TopK)

	return &OllamaProvider{
		client: client,
	}, nil
}

// Chat implements Provider.Chat.
//
// The callback is invoked for each chunk of the streamed response.
//
// Example:
//
//	messages := []model.Message{
//	    {Role: "user", Content: "Hello!"},
//	}
//	err := provider.Chat(ctx, messages, func(chunk string) error {
//	    fmt.Print(chunk)
//	    return nil
//	})
func (p *OllamaProvider) Chat(ctx context.Context, messages []model.Message, callback model.StreamCallback) error {
	return p.client.Chat(ctx, ConvertToOllamaMessages(messages), func(chunk string) error {
		if callback == nil {
			return nil
		}
		return callback(chunk)
	})
}

// GetModel implements Provider.GetModel (direct passthrough).
func (p *OllamaProvider) GetModel() string {
	return p.client.GetModel()
}

// GetDisplayName implements Provider.GetDisplayName.
// For Ollama, the display name is the same as the model name.
func (p *OllamaProvider) GetDisplayName() string {
	return p.client.GetModel()
}

// SetModel implements Provider.SetModel (direct passthrough).
func (p *OllamaProvider) SetModel(model string) {
	p.client.SetModel(model)
}

// Ping implements Provider.Ping by listing local models.
func (p *OllamaProvider) Ping(ctx context.Context) error {
	return p.client.Ping(ctx)
}
