package conversation

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"gambol/config"
	"gambol/handhistory"
	"gambol/model"
	"gambol/prompt"
)

// MaxInputLength caps a submission, in runes.
const MaxInputLength = 512

const (
	// SolveErrorReply is shown when the solver could not handle the hand history.
	SolveErrorReply = "I couldn't solve that hand. Please try rewording the hand history."
	// LLMErrorReply is shown when the language model call failed.
	LLMErrorReply = "Oops! There seems to be an error. Please try again."
)

// Submission is one user action: new text, or a request to start over.
type Submission struct {
	Text  string
	Reset bool
}

// Reply is the assistant turn produced for a submission.
type Reply struct {
	Content string
	State   State
}

// Orchestrator runs one submission end to end: validate, solve if the hand is
// new, render the message, ask the model, record the turns.
type Orchestrator struct {
	cache    *StrategyCache
	provider model.Provider
}

func NewOrchestrator(s Solver, p model.Provider) *Orchestrator {
	return &Orchestrator{
		cache:    NewStrategyCache(s),
		provider: p,
	}
}

// Provider returns the language model the orchestrator talks to.
func (o *Orchestrator) Provider() model.Provider {
	return o.provider
}

// HandleTurn processes sub against s and returns the assistant's reply.
//
// Validation errors (ErrEmptyInput, ErrInputTooLong) leave s unchanged. After
// validation the user turn is always recorded; a solver failure (ErrSolve) or
// model failure (ErrLLM) then adds a fixed error turn, which is also returned
// as the reply's content.
func (o *Orchestrator) HandleTurn(ctx context.Context, s *Session, sub Submission) (Reply, error) {
	if sub.Reset {
		s.Reset()
		if config.DebugLog != nil {
			config.DebugLog.Printf("[Orchestrator] Session reset")
		}
		return Reply{Content: WelcomeMessage, State: s.State}, nil
	}

	text := strings.TrimSpace(sub.Text)
	if text == "" {
		return Reply{}, ErrEmptyInput
	}
	if n := utf8.RuneCountInString(text); n > MaxInputLength {
		return Reply{}, fmt.Errorf("%w: %d characters, limit is %d", ErrInputTooLong, n, MaxInputLength)
	}

	s.appendTranscript(model.RoleUser, text)

	var pending []model.Message
	var message string

	if s.State.AwaitingHand() {
		if _, err := o.cache.GetOrSolve(ctx, s, text); err != nil {
			s.appendTranscript(model.RoleAssistant, SolveErrorReply)
			return Reply{Content: SolveErrorReply, State: s.State}, err
		}
		s.FirstQuestion = true
		s.State = StateStrategyReady
		s.Hand = parseAdvisory(text)
		message = prompt.RenderFirstQuestion(s.Grounding())
	} else {
		s.FirstQuestion = false
		s.State = StateFollowUpReady
		if !s.grounded {
			// The first answer for this hand failed, so the model has not seen the grounding yet.
			pending = append(pending, model.NewMessage(model.RoleUser, prompt.RenderFirstQuestion(s.Grounding())))
		}
		message = prompt.RenderFollowUp(text)
	}

	userMsg := model.NewMessage(model.RoleUser, message)
	reply, err := o.ask(ctx, s, pending, userMsg)
	if err != nil {
		s.appendTranscript(model.RoleAssistant, LLMErrorReply)
		return Reply{Content: LLMErrorReply, State: s.State}, err
	}

	s.History = append(s.History, pending...)
	s.History = append(s.History, userMsg, model.NewMessage(model.RoleAssistant, reply))
	s.grounded = true
	if s.State == StateStrategyReady {
		s.State = StateFollowUpReady
	}
	s.appendTranscript(model.RoleAssistant, reply)

	return Reply{Content: reply, State: s.State}, nil
}

// ask sends the system instruction, the session history, any pending turns and
// msg to the model and returns the full reply.
func (o *Orchestrator) ask(ctx context.Context, s *Session, pending []model.Message, msg model.Message) (string, error) {
	messages := make([]model.Message, 0, len(s.History)+len(pending)+2)
	messages = append(messages, model.Message{Role: model.RoleSystem, Content: prompt.SystemInstruction})
	messages = append(messages, s.History...)
	messages = append(messages, pending...)
	messages = append(messages, msg)

	if config.DebugLog != nil {
		config.DebugLog.Printf("[Orchestrator] Chat with %s: %d messages, first question=%v", o.provider.GetModel(), len(messages), s.FirstQuestion)
	}

	var b strings.Builder
	err := o.provider.Chat(ctx, messages, func(chunk string) error {
		b.WriteString(chunk)
		return nil
	})
	if err != nil {
		if config.DebugLog != nil {
			config.DebugLog.Printf("[Orchestrator] Chat failed: %v", err)
		}
		return "", fmt.Errorf("%w: %w", ErrLLM, err)
	}

	reply := strings.TrimSpace(b.String())
	if reply == "" {
		return "", fmt.Errorf("%w: empty reply", ErrLLM)
	}
	return reply, nil
}

// parseAdvisory reads the hand history for display purposes only.
func parseAdvisory(text string) *handhistory.Hand {
	h, err := handhistory.Parse(text)
	if err != nil {
		if config.DebugLog != nil {
			config.DebugLog.Printf("[Orchestrator] Hand history not parsed: %v", err)
		}
		return nil
	}
	if config.DebugLog != nil {
		config.DebugLog.Printf("[Orchestrator] Parsed hand: %s", h.Summary())
	}
	return h
}
