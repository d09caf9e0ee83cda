package conversation

import (
	"context"
	"fmt"

	"gambol/config"
	"gambol/solver"
)

// Solver turns a hand history into a strategy. *solver.Client implements it.
type Solver interface {
	Solve(ctx context.Context, handHistory string) (*solver.Result, error)
}

// Solution is the cached solver output for one hand.
type Solution struct {
	Strategy    string
	HandState   string
	Probability float64
}

// StrategyCache solves each hand at most once. The cached values live on the
// session, so a reset is the only way to invalidate them.
type StrategyCache struct {
	solver Solver
}

func NewStrategyCache(s Solver) *StrategyCache {
	return &StrategyCache{solver: s}
}

// GetOrSolve returns the session's cached solution, or calls the solver exactly
// once for candidate and caches the result. On failure the session is left
// untouched and the error wraps ErrSolve.
func (c *StrategyCache) GetOrSolve(ctx context.Context, s *Session, candidate string) (Solution, error) {
	if s.HasStrategy() {
		return Solution{Strategy: s.Strategy, HandState: s.HandState, Probability: s.Probability}, nil
	}

	res, err := c.solver.Solve(ctx, candidate)
	if err != nil {
		if config.DebugLog != nil {
			config.DebugLog.Printf("[Cache] Solve failed: %v", err)
		}
		return Solution{}, fmt.Errorf("%w: %w", ErrSolve, err)
	}
	if res == nil || res.Strategy == "" {
		return Solution{}, ErrSolve
	}

	s.HandHistory = candidate
	s.HandState = res.HandState
	s.Probability = res.Probability
	s.Strategy = res.Strategy

	if config.DebugLog != nil {
		config.DebugLog.Printf("[Cache] Cached strategy for hand (prob=%g, info_set=%q)", res.Probability, res.InfoSet)
	}

	return Solution{Strategy: res.Strategy, HandState: res.HandState, Probability: res.Probability}, nil
}
