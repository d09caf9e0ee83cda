package conversation

import (
	"testing"

	"gambol/model"
	"gambol/prompt"
)

func TestNewSession(t *testing.T) {
	s := NewSession()

	if s.State != StateNewHand {
		t.Errorf("State = %v, want %v", s.State, StateNewHand)
	}
	if len(s.Transcript) != 1 || s.Transcript[0].Content != WelcomeMessage || s.Transcript[0].Role != model.RoleAssistant {
		t.Errorf("Transcript = %+v, want only the welcome turn", s.Transcript)
	}
	if len(s.History) != len(prompt.Exemplars()) {
		t.Errorf("History has %d messages, want the %d exemplar messages", len(s.History), len(prompt.Exemplars()))
	}
	if s.HasStrategy() {
		t.Error("new session should not have a cached strategy")
	}
}

func TestResetClearsEverything(t *testing.T) {
	s := NewSession()
	s.HandHistory = qqHand
	s.HandState = qqResult.HandState
	s.Probability = 0.5
	s.Strategy = qqResult.Strategy
	s.FirstQuestion = true
	s.State = StateFollowUpReady
	s.grounded = true
	s.appendTranscript(model.RoleUser, "hand")
	s.History = append(s.History, model.NewMessage(model.RoleUser, "hand"))

	s.Reset()

	if s.State != StateNewHand || s.HasStrategy() || s.HandHistory != "" || s.HandState != "" || s.Probability != 0 {
		t.Errorf("Reset left hand data behind: %+v", s)
	}
	if s.grounded || s.FirstQuestion || s.Hand != nil {
		t.Error("Reset left per-hand flags behind")
	}
	if len(s.Transcript) != 1 || s.Transcript[0].Content != WelcomeMessage {
		t.Errorf("Transcript after reset = %+v", s.Transcript)
	}
	if len(s.History) != len(prompt.Exemplars()) {
		t.Errorf("History after reset has %d messages", len(s.History))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewSession()
	c := s.Clone()

	c.appendTranscript(model.RoleUser, "hand")
	c.History[0].Content = "changed"
	c.Strategy = "x"

	if len(s.Transcript) != 1 {
		t.Error("appending to the clone's transcript changed the original")
	}
	if s.History[0].Content == "changed" {
		t.Error("editing the clone's history changed the original")
	}
	if s.HasStrategy() {
		t.Error("setting the clone's strategy changed the original")
	}
}

func TestLastReply(t *testing.T) {
	s := NewSession()
	if got, ok := s.LastReply(); !ok || got != WelcomeMessage {
		t.Errorf("LastReply() = (%q, %v), want welcome", got, ok)
	}

	s.appendTranscript(model.RoleAssistant, "check")
	s.appendTranscript(model.RoleUser, "why?")
	if got, _ := s.LastReply(); got != "check" {
		t.Errorf("LastReply() = %q, want %q", got, "check")
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		StateNewHand:       "NEW_HAND",
		StateStrategyReady: "STRATEGY_READY",
		StateFollowUpReady: "FOLLOWUP_READY",
		State(42):          "UNKNOWN",
	}
	for state, want := range tests {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", int(state), got, want)
		}
	}
}
