package conversation

import (
	"gambol/handhistory"
	"gambol/model"
	"gambol/prompt"
)

// WelcomeMessage opens every conversation.
const WelcomeMessage = "I am Gambol, an AI coach for 6-max no-limit Texas Hold'em. " +
	"Feed me a hand history that includes the hero's hole cards, the board, and the post-flop action " +
	"(like the example below) and I'll tell you the GTO strategy. " +
	"Keep in mind that, like you, I'm still learning and my advice is for educational purposes only."

// ExampleHandHistory is shown as the input placeholder.
const ExampleHandHistory = "hero (Ah Ad), flop (Ks Th 3c) (2 players) SB checks, hero bets one third pot, SB calls turn (4d) SB checks"

// Session is one user's conversation. It is not safe for concurrent use; callers
// serialize submissions.
type Session struct {
	// Transcript is what the user sees, starting with the welcome turn.
	Transcript []model.Message
	// History is what the model sees before each new message, starting with the
	// worked examples.
	History []model.Message

	// Cached solver output for the current hand. Empty Strategy means nothing is cached.
	HandHistory string
	HandState   string
	Probability float64
	Strategy    string

	FirstQuestion bool
	State         State

	// Hand is a best-effort read of HandHistory; nil when it could not be parsed.
	Hand *handhistory.Hand

	// grounded is set once History holds the grounding message for this hand.
	grounded bool
}

// NewSession returns a session in StateNewHand holding only the welcome turn.
func NewSession() *Session {
	s := &Session{}
	s.Reset()
	return s
}

// Reset discards the current hand and the conversation about it.
func (s *Session) Reset() {
	*s = Session{
		Transcript: []model.Message{model.NewMessage(model.RoleAssistant, WelcomeMessage)},
		History:    prompt.Exemplars(),
		State:      StateNewHand,
	}
}

// Clone returns a deep copy that can be mutated independently.
func (s *Session) Clone() *Session {
	c := *s
	c.Transcript = append([]model.Message(nil), s.Transcript...)
	c.History = append([]model.Message(nil), s.History...)
	if s.Hand != nil {
		h := *s.Hand
		h.Hero = append([]string(nil), s.Hand.Hero...)
		h.Board = append([]string(nil), s.Hand.Board...)
		c.Hand = &h
	}
	return &c
}

// HasStrategy reports whether a solved strategy is cached for the current hand.
func (s *Session) HasStrategy() bool {
	return s.Strategy != ""
}

// Grounding returns the cached solver data in the form the prompt library renders.
func (s *Session) Grounding() prompt.Grounding {
	return prompt.Grounding{
		HandHistory: s.HandHistory,
		HandState:   s.HandState,
		Probability: s.Probability,
		Strategy:    s.Strategy,
	}
}

// LastReply returns the most recent assistant turn.
func (s *Session) LastReply() (string, bool) {
	for i := len(s.Transcript) - 1; i >= 0; i-- {
		if s.Transcript[i].Role == model.RoleAssistant {
			return s.Transcript[i].Content, true
		}
	}
	return "", false
}

func (s *Session) appendTranscript(role, content string) {
	s.Transcript = append(s.Transcript, model.NewMessage(role, content))
}
