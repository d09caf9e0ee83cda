package provider

import (
	"context"
	"fmt"

	"gambol/config"
	"gambol/model"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIProvider implements the Provider interface using OpenAI's official API.
// It uses the official OpenAI Go SDK for direct OpenAI API access.
type OpenAIProvider struct {
	client   openai.Client
	model    string
	baseURL  string
	apiKey   string
	sampling model.Sampling
}

// NewOpenAIProvider creates a new OpenAI provider instance.
//
// Parameters:
//   - baseURL: OpenAI API base URL (default: "https://api.openai.com/v1")
//   - apiKey: OpenAI API key (required)
//   - model: Initial model to use (default: "gpt-4o-mini")
//   - sampling: temperature and top_p are sent; the chat completions API has no top_k
//
// Returns an error if the API key is missing.
func NewOpenAIProvider(baseURL, apiKey, model string, sampling model.Sampling) (*OpenAIProvider, error) {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if model == "" {
		model = "gpt-4o-mini" // Default to affordable model
	}

	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	)

	return &OpenAIProvider{
		client:   client,
		model:    model,
		baseURL:  baseURL,
		apiKey:   apiKey,
		sampling: sampling,
	}, nil
}

// Chat implements Provider.Chat with streaming support.
func (p *OpenAIProvider) Chat(ctx context.Context, messages []model.Message, callback model.StreamCallback) error {
	params := openai.ChatCompletionNewParams{
		Messages:    ConvertToOpenAIMessages(messages),
		Model:       openai.ChatModel(p.model),
		Temperature: openai.Float(p.sampling.Temperature),
		TopP:        openai.Float(p.sampling.TopP),
	}

	if err := streamChatCompletion(ctx, p.client, params, callback); err != nil {
		return fmt.Errorf("OpenAI streaming error: %w", err)
	}
	return nil
}

// GetModel implements Provider.GetModel.
// Returns the full model name for API calls.
func (p *OpenAIProvider) GetModel() string {
	return p.model
}

// GetDisplayName implements Provider.GetDisplayName.
// Returns the model name for UI display (same as GetModel for OpenAI).
func (p *OpenAIProvider) GetDisplayName() string {
	return p.model
}

// SetModel implements Provider.SetModel.
func (p *OpenAIProvider) SetModel(model string) {
	p.model = model
}

// Ping implements Provider.Ping by attempting to list models.
func (p *OpenAIProvider) Ping(ctx context.Context) error {
	_, err := p.client.Models.List(ctx)
	if err != nil {
		return fmt.Errorf("OpenAI ping failed: %w", err)
	}
	return nil
}

// streamChatCompletion runs a streaming chat completion and forwards every
// content delta to callback. Shared by the OpenAI and OpenRouter providers.
func streamChatCompletion(ctx context.Context, client openai.Client, params openai.ChatCompletionNewParams, callback model.StreamCallback, opts ...option.RequestOption) error {
	stream := client.Chat.Completions.NewStreaming(ctx, params, opts...)
	defer stream.Close()

	var chunks int
	for stream.Next() {
		chunk := stream.Current()
		if len(chunk.Choices) == 0 || chunk.Choices[0].Delta.Content == "" {
			continue
		}
		chunks++
		if callback == nil {
			continue
		}
		if err := callback(chunk.Choices[0].Delta.Content); err != nil {
			return err
		}
	}

	if err := stream.Err(); err != nil {
		return err
	}

	if config.DebugLog != nil {
		config.DebugLog.Printf("[OpenAI] Model '%s': stream finished after %d content chunks", params.Model, chunks)
	}
	return nil
}
