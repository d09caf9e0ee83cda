package conversation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gambol/model"
	"gambol/prompt"
	"gambol/provider/testutil"
	"gambol/solver"
)

func newTestOrchestrator(fs *fakeSolver) (*Orchestrator, *testutil.MockProvider) {
	mock := testutil.NewMockProvider("test-model")
	mock.Reply = "- fold:  0.0%\nCheck/call is the main line."
	return NewOrchestrator(fs, mock), mock
}

func lastMessage(msgs []model.Message) model.Message {
	return msgs[len(msgs)-1]
}

func TestFirstQuestion(t *testing.T) {
	fs := &fakeSolver{result: qqResult}
	o, mock := newTestOrchestrator(fs)
	s := NewSession()

	reply, err := o.HandleTurn(context.Background(), s, Submission{Text: "  " + qqHand + "\n"})
	if err != nil {
		t.Fatalf("HandleTurn() error = %v", err)
	}

	if reply.Content != mock.Reply {
		t.Errorf("reply = %q, want %q", reply.Content, mock.Reply)
	}
	if fs.calls() != 1 || fs.inputs[0] != qqHand {
		t.Errorf("solver inputs = %q, want one call with the trimmed hand", fs.inputs)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("model called %d times, want 1", mock.CallCount())
	}

	sent := mock.Calls()[0]
	if sent[0].Role != model.RoleSystem || sent[0].Content != prompt.SystemInstruction {
		t.Errorf("first message should be the system instruction, got %+v", sent[0])
	}
	if len(sent) != 1+len(prompt.Exemplars())+1 {
		t.Errorf("sent %d messages, want system + exemplars + question", len(sent))
	}
	want := prompt.RenderFirstQuestion(prompt.Grounding{
		HandHistory: qqHand,
		HandState:   qqResult.HandState,
		Probability: qqResult.Probability,
		Strategy:    qqResult.Strategy,
	})
	if got := lastMessage(sent).Content; got != want {
		t.Errorf("question sent =\n%s\nwant\n%s", got, want)
	}
	if strings.Contains(lastMessage(sent).Content, prompt.DeviationWarning) {
		t.Error("deviation warning sent for probability 1.0")
	}

	if !s.FirstQuestion {
		t.Error("FirstQuestion should be true after the first question")
	}
	if s.State != StateFollowUpReady || reply.State != StateFollowUpReady {
		t.Errorf("State = %v (reply %v), want %v", s.State, reply.State, StateFollowUpReady)
	}
	if len(s.Transcript) != 3 {
		t.Errorf("Transcript has %d turns, want welcome, question, answer", len(s.Transcript))
	}
	if got := len(s.History) - len(prompt.Exemplars()); got != 2 {
		t.Errorf("History grew by %d, want grounding + answer", got)
	}
	if s.Hand == nil || s.Hand.Street != "flop" {
		t.Errorf("Hand = %+v, want a parsed flop hand", s.Hand)
	}
}

func TestFollowUpReusesCache(t *testing.T) {
	fs := &fakeSolver{result: qqResult}
	o, mock := newTestOrchestrator(fs)
	s := NewSession()
	ctx := context.Background()

	if _, err := o.HandleTurn(ctx, s, Submission{Text: qqHand}); err != nil {
		t.Fatalf("first turn: %v", err)
	}
	grounding := s.History[len(s.History)-2].Content

	for i, q := range []string{"Why not raise pot?", "What if the turn is a heart?"} {
		if _, err := o.HandleTurn(ctx, s, Submission{Text: q}); err != nil {
			t.Fatalf("follow-up %d: %v", i, err)
		}

		sent := mock.Calls()[mock.CallCount()-1]
		if got := lastMessage(sent).Content; got != q {
			t.Errorf("follow-up %d sent %q, want raw text %q", i, got, q)
		}
		var sawGrounding bool
		for _, m := range sent {
			if m.Content == grounding {
				sawGrounding = true
			}
		}
		if !sawGrounding {
			t.Errorf("follow-up %d: grounding message missing from history", i)
		}
		if s.FirstQuestion {
			t.Errorf("follow-up %d: FirstQuestion should be false", i)
		}
		if s.State != StateFollowUpReady {
			t.Errorf("follow-up %d: State = %v", i, s.State)
		}
	}

	if fs.calls() != 1 {
		t.Errorf("solver called %d times, want exactly 1 for the hand", fs.calls())
	}
	if s.Strategy != qqResult.Strategy {
		t.Error("follow-ups changed the cached strategy")
	}
}

func TestResetStartsNewHand(t *testing.T) {
	fs := &fakeSolver{result: qqResult}
	o, mock := newTestOrchestrator(fs)
	s := NewSession()
	ctx := context.Background()

	o.HandleTurn(ctx, s, Submission{Text: qqHand})
	o.HandleTurn(ctx, s, Submission{Text: "why?"})

	reply, err := o.HandleTurn(ctx, s, Submission{Text: "ignored", Reset: true})
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if reply.Content != WelcomeMessage || reply.State != StateNewHand {
		t.Errorf("reset reply = %+v", reply)
	}
	if s.State != StateNewHand || s.HasStrategy() || len(s.Transcript) != 1 {
		t.Errorf("session after reset = state %v, strategy %q, %d turns", s.State, s.Strategy, len(s.Transcript))
	}
	if fs.calls() != 1 || mock.CallCount() != 2 {
		t.Errorf("reset made external calls: solver %d, model %d", fs.calls(), mock.CallCount())
	}

	if _, err := o.HandleTurn(ctx, s, Submission{Text: "hero (Kc Jh), flop Ts 9h 4h: BB checks"}); err != nil {
		t.Fatalf("new hand: %v", err)
	}
	if fs.calls() != 2 {
		t.Errorf("solver called %d times, want a fresh solve after reset", fs.calls())
	}
}

func TestSolveFailure(t *testing.T) {
	fs := &fakeSolver{err: solver.ErrNoStrategy}
	o, mock := newTestOrchestrator(fs)
	s := NewSession()

	reply, err := o.HandleTurn(context.Background(), s, Submission{Text: qqHand})
	if !errors.Is(err, ErrSolve) {
		t.Fatalf("error = %v, want ErrSolve", err)
	}
	if reply.Content != SolveErrorReply {
		t.Errorf("reply = %q, want %q", reply.Content, SolveErrorReply)
	}
	if s.State != StateNewHand || s.HasStrategy() {
		t.Errorf("State = %v, strategy cached = %v", s.State, s.HasStrategy())
	}
	if mock.CallCount() != 0 {
		t.Errorf("model called %d times after a failed solve", mock.CallCount())
	}

	var errorTurns int
	for _, m := range s.Transcript[1:] {
		if m.Role == model.RoleAssistant {
			errorTurns++
			if m.Content != SolveErrorReply {
				t.Errorf("assistant turn = %q", m.Content)
			}
		}
	}
	if errorTurns != 1 {
		t.Errorf("got %d assistant turns, want exactly one error turn", errorTurns)
	}

	// The next submission is still treated as a hand history.
	fs.err = nil
	fs.result = qqResult
	if _, err := o.HandleTurn(context.Background(), s, Submission{Text: qqHand}); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if fs.calls() != 2 || !s.FirstQuestion {
		t.Errorf("retry: solver calls %d, FirstQuestion %v", fs.calls(), s.FirstQuestion)
	}
}

func TestValidationLeavesSessionUntouched(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"empty", "", ErrEmptyInput},
		{"whitespace", " \n\t ", ErrEmptyInput},
		{"too long", strings.Repeat("a", MaxInputLength+1), ErrInputTooLong},
		{"too long multibyte", strings.Repeat("♠", MaxInputLength+1), ErrInputTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := &fakeSolver{result: qqResult}
			o, mock := newTestOrchestrator(fs)
			s := NewSession()
			before := s.Clone()

			_, err := o.HandleTurn(context.Background(), s, Submission{Text: tt.text})
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			if !IsValidation(err) {
				t.Error("IsValidation() = false")
			}
			if len(s.Transcript) != len(before.Transcript) || len(s.History) != len(before.History) || s.State != before.State {
				t.Error("validation failure mutated the session")
			}
			if fs.calls() != 0 || mock.CallCount() != 0 {
				t.Error("validation failure made external calls")
			}
		})
	}
}

func TestMaxLengthInputAccepted(t *testing.T) {
	fs := &fakeSolver{result: qqResult}
	o, _ := newTestOrchestrator(fs)

	text := strings.Repeat("♠", MaxInputLength)
	if _, err := o.HandleTurn(context.Background(), NewSession(), Submission{Text: text}); err != nil {
		t.Errorf("input of exactly %d runes rejected: %v", MaxInputLength, err)
	}
}

func TestLLMFailureOnFirstQuestion(t *testing.T) {
	fs := &fakeSolver{result: qqResult}
	o, mock := newTestOrchestrator(fs)
	boom := errors.New("model unavailable")
	mock.ChatFunc = func(ctx context.Context, messages []model.Message, callback model.StreamCallback) error {
		return boom
	}
	s := NewSession()
	historyLen := len(s.History)

	reply, err := o.HandleTurn(context.Background(), s, Submission{Text: qqHand})
	if !errors.Is(err, ErrLLM) || !errors.Is(err, boom) {
		t.Fatalf("error = %v, want ErrLLM wrapping the provider error", err)
	}
	if reply.Content != LLMErrorReply {
		t.Errorf("reply = %q", reply.Content)
	}
	if got, _ := s.LastReply(); got != LLMErrorReply {
		t.Errorf("last transcript turn = %q", got)
	}
	if len(s.History) != historyLen {
		t.Error("failed model call changed the history")
	}
	if s.State != StateStrategyReady || !s.HasStrategy() {
		t.Errorf("State = %v, strategy cached = %v; the solve should be kept", s.State, s.HasStrategy())
	}

	// A follow-up after the failure must not solve again and must carry the grounding.
	mock = testutil.NewMockProvider("test-model")
	o.provider = mock
	if _, err := o.HandleTurn(context.Background(), s, Submission{Text: "try again"}); err != nil {
		t.Fatalf("follow-up: %v", err)
	}
	if fs.calls() != 1 {
		t.Errorf("solver called %d times, want 1", fs.calls())
	}

	sent := mock.Calls()[0]
	if lastMessage(sent).Content != "try again" {
		t.Errorf("follow-up text = %q", lastMessage(sent).Content)
	}
	grounding := sent[len(sent)-2].Content
	if !strings.Contains(grounding, "This is a poker hand history: "+qqHand) {
		t.Errorf("grounding not sent before the follow-up: %q", grounding)
	}
	if got := len(s.History) - historyLen; got != 3 {
		t.Errorf("History grew by %d, want grounding + follow-up + answer", got)
	}
	if s.State != StateFollowUpReady {
		t.Errorf("State = %v", s.State)
	}
}

func TestLLMEmptyReply(t *testing.T) {
	fs := &fakeSolver{result: qqResult}
	o, mock := newTestOrchestrator(fs)
	mock.Reply = "   "

	_, err := o.HandleTurn(context.Background(), NewSession(), Submission{Text: qqHand})
	if !errors.Is(err, ErrLLM) {
		t.Errorf("error = %v, want ErrLLM", err)
	}
}

func TestLowProbabilityAddsDeviationWarning(t *testing.T) {
	low := *qqResult
	low.Probability = 0.001
	fs := &fakeSolver{result: &low}
	o, mock := newTestOrchestrator(fs)

	if _, err := o.HandleTurn(context.Background(), NewSession(), Submission{Text: qqHand}); err != nil {
		t.Fatalf("HandleTurn() error = %v", err)
	}

	question := lastMessage(mock.Calls()[0]).Content
	warnAt := strings.Index(question, prompt.DeviationWarning)
	strategyAt := strings.Index(question, low.Strategy)
	if warnAt < 0 || warnAt > strategyAt {
		t.Errorf("deviation warning at %d, strategy at %d", warnAt, strategyAt)
	}
}
