package testutil

import (
	"time"

	"gambol/model"
)

// ExampleHandHistory is the hand history shown as a placeholder in the chat input
const ExampleHandHistory = "hero (Ah Ad), flop (Ks Th 3c) (2 players) SB checks, hero bets one third pot, SB calls turn (4d) SB checks"

// TestMessages returns a sample conversation for testing
func TestMessages() []model.Message {
	return []model.Message{
		{
			Role:      model.RoleUser,
			Content:   ExampleHandHistory,
			Timestamp: time.Now(),
		},
		{
			Role:      model.RoleAssistant,
			Content:   "- fold:  0.0%\n- check/call:  100.0%",
			Timestamp: time.Now(),
		},
		{
			Role:      model.RoleUser,
			Content:   "Why not raise?",
			Timestamp: time.Now(),
		},
	}
}

// SingleUserMessage returns a single user message for simple tests
func SingleUserMessage(content string) []model.Message {
	return []model.Message{
		{
			Role:      model.RoleUser,
			Content:   content,
			Timestamp: time.Now(),
		},
	}
}

// EmptyMessages returns an empty message slice for edge case testing
func EmptyMessages() []model.Message {
	return []model.Message{}
}

// SystemMessage returns a system message for testing
func SystemMessage(content string) model.Message {
	return model.Message{
		Role:      model.RoleSystem,
		Content:   content,
		Timestamp: time.Now(),
	}
}
