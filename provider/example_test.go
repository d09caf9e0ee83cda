package provider_test

import (
	"context"
	"fmt"
	"log"

	"gambol/model"
	"gambol/provider"
)

// ExampleNewProvider demonstrates creating an Ollama provider using the factory.
func ExampleNewProvider() {
	cfg := provider.Config{
		Type:     provider.ProviderTypeOllama,
		BaseURL:  "http://localhost:11434",
		Model:    "llama3.1",
		Sampling: model.DeterministicSampling,
	}

	p, err := provider.NewProvider(cfg)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Provider created: %T\n", p)
	// Output: Provider created: *provider.OllamaProvider
}

// ExampleNewOllamaProvider demonstrates creating an Ollama provider directly.
func ExampleNewOllamaProvider() {
	p, err := provider.NewOllamaProvider("http://localhost:11434", "llama3.1", model.DeterministicSampling)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Current model: %s\n", p.GetModel())

	p.SetModel("llama3.2:latest")
	fmt.Printf("New model: %s\n", p.GetModel())

	// Output:
	// Current model: llama3.1
	// New model: llama3.2:latest
}

// ExampleOpenRouterProvider_GetDisplayName shows vendor prefix stripping.
func ExampleOpenRouterProvider_GetDisplayName() {
	p, err := provider.NewOpenRouterProvider("", "test-key", "meta-llama/llama-3.1-70b-instruct", model.DeterministicSampling)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(p.GetModel())
	fmt.Println(p.GetDisplayName())
	// Output:
	// meta-llama/llama-3.1-70b-instruct
	// llama-3.1-70b-instruct
}

// ExampleOllamaProvider_Chat demonstrates a streamed chat.
//
// Note: This example doesn't actually run because it requires a live Ollama server.
// It's provided for documentation purposes.
func ExampleOllamaProvider_Chat() {
	p, err := provider.NewOllamaProvider("http://localhost:11434", "llama3.1", model.DeterministicSampling)
	if err != nil {
		log.Fatal(err)
	}

	messages := []model.Message{
		{Role: model.RoleSystem, Content: "You are Gambol, a poker coach."},
		{Role: model.RoleUser, Content: "hero (Ah Ad), flop (Ks Th 3c) (2 players) SB checks"},
	}

	err = p.Chat(context.Background(), messages, func(chunk string) error {
		fmt.Print(chunk)
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}
}
