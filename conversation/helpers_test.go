package conversation

import (
	"context"
	"sync"

	"gambol/prompt"
	"gambol/solver"
)

const qqHand = "hero (Qs Qd), preflop UTG bets $52.98, MP folds, CO folds, BTN folds, SB raises $165.46, BB folds, UTG calls flop 6s 3c Td ($492.28): SB checks"

var qqResult = &solver.Result{
	Strategy:    prompt.FormatStrategy(0.0, 83.8, 2.8, 0.0, 13.3, 0.0, 0.1, 0.0),
	HandState:   "Using both hole cards, with over pair.Someone may be drawing to a straight.",
	Probability: 1.0,
}

// fakeSolver records calls and answers with a fixed result.
type fakeSolver struct {
	mu     sync.Mutex
	inputs []string
	result *solver.Result
	err    error
}

func (f *fakeSolver) Solve(ctx context.Context, handHistory string) (*solver.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, handHistory)
	if f.err != nil {
		return nil, f.err
	}
	r := *f.result
	return &r, nil
}

func (f *fakeSolver) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.inputs)
}
