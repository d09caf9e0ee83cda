package conversation

import (
	"context"
	"errors"
	"testing"

	"gambol/solver"
)

func TestGetOrSolveCallsSolverOnce(t *testing.T) {
	fs := &fakeSolver{result: qqResult}
	cache := NewStrategyCache(fs)
	s := NewSession()

	first, err := cache.GetOrSolve(context.Background(), s, qqHand)
	if err != nil {
		t.Fatalf("GetOrSolve() error = %v", err)
	}
	second, err := cache.GetOrSolve(context.Background(), s, "some other text")
	if err != nil {
		t.Fatalf("GetOrSolve() error = %v", err)
	}

	if fs.calls() != 1 {
		t.Errorf("solver called %d times, want 1", fs.calls())
	}
	if first != second {
		t.Errorf("cached solution %+v differs from first %+v", second, first)
	}
	if s.HandHistory != qqHand {
		t.Errorf("HandHistory = %q, want the solved candidate", s.HandHistory)
	}
	if s.Strategy != qqResult.Strategy || s.HandState != qqResult.HandState || s.Probability != qqResult.Probability {
		t.Errorf("session cache = (%q, %q, %v)", s.Strategy, s.HandState, s.Probability)
	}
}

func TestGetOrSolveFailureLeavesSessionUntouched(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"no strategy", solver.ErrNoStrategy},
		{"transport", errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := &fakeSolver{err: tt.err}
			s := NewSession()

			_, err := NewStrategyCache(fs).GetOrSolve(context.Background(), s, qqHand)
			if !errors.Is(err, ErrSolve) {
				t.Fatalf("error = %v, want ErrSolve", err)
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("error = %v, want it to wrap %v", err, tt.err)
			}
			if s.HasStrategy() || s.HandHistory != "" || s.HandState != "" {
				t.Errorf("failed solve mutated the session: %+v", s)
			}
		})
	}
}

func TestGetOrSolveEmptyStrategy(t *testing.T) {
	fs := &fakeSolver{result: &solver.Result{HandState: "a.b", Probability: 0.3}}
	s := NewSession()

	if _, err := NewStrategyCache(fs).GetOrSolve(context.Background(), s, qqHand); !errors.Is(err, ErrSolve) {
		t.Fatalf("error = %v, want ErrSolve", err)
	}
	if s.HasStrategy() {
		t.Error("empty strategy was cached")
	}
}
