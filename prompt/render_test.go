package prompt

import (
	"strings"
	"testing"
)

var qqGrounding = Grounding{
	HandHistory: "hero (Qs Qd), preflop UTG bets $52.98, MP folds, CO folds, BTN folds, SB raises $165.46, BB folds, UTG calls flop 6s 3c Td ($492.28): SB checks",
	HandState:   "Using both hole cards, with over pair.Someone may be drawing to a straight.",
	Probability: 1.0,
	Strategy:    FormatStrategy(0.0, 83.8, 2.8, 0.0, 13.3, 0.0, 0.1, 0.0),
}

func TestSplitHandState(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantHand  string
		wantBoard string
	}{
		{
			name:      "solver annotation",
			in:        "Using both hole cards, with over pair.Someone may be drawing to a straight.",
			wantHand:  "Using both hole cards, with over pair",
			wantBoard: "Someone may be drawing to a straight.",
		},
		{
			name:      "no delimiter",
			in:        "Using both hole cards, with trips",
			wantHand:  "Using both hole cards, with trips",
			wantBoard: "",
		},
		{
			name:      "only first period splits",
			in:        "Top pair. Flush possible. Straight possible.",
			wantHand:  "Top pair",
			wantBoard: "Flush possible. Straight possible.",
		},
		{
			name:      "empty",
			in:        "",
			wantHand:  Unavailable,
			wantBoard: "",
		},
		{
			name:      "leading period",
			in:        ".Someone may have a flush.",
			wantHand:  Unavailable,
			wantBoard: "Someone may have a flush.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand, board := SplitHandState(tt.in)
			if hand != tt.wantHand {
				t.Errorf("hand = %q, want %q", hand, tt.wantHand)
			}
			if board != tt.wantBoard {
				t.Errorf("board = %q, want %q", board, tt.wantBoard)
			}
		})
	}
}

func TestRenderFirstQuestionEmbedsGrounding(t *testing.T) {
	got := RenderFirstQuestion(qqGrounding)

	wants := []string{
		"This is a poker hand history: " + qqGrounding.HandHistory + ".",
		"**USER'S HAND**: Using both hole cards, with over pair.\n",
		"**BOARD STATE**: Someone may be drawing to a straight.\n",
		"The probability of this hand history is 1.0.",
		qqGrounding.Strategy,
		"Gambol",
		"6-max cash game No-Limit Texas Hold'em",
		"only 2 player spots are supported",
		"try rewording the hand history",
		"less than 0.005",
		"river",
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("rendered prompt missing %q\n---\n%s", want, got)
		}
	}

	if strings.Contains(got, DeviationWarning) {
		t.Error("deviation warning present for probability 1.0")
	}
	if strings.Contains(got, "Someone may be drawing to a straight..") {
		t.Error("board summary rendered with a doubled period")
	}
}

func TestRenderFirstQuestionDeviationWarning(t *testing.T) {
	tests := []struct {
		prob        float64
		wantWarning bool
	}{
		{0.0, true},
		{0.001, true},
		{0.00499, true},
		{0.005, false},
		{0.2, false},
		{1.0, false},
	}

	for _, tt := range tests {
		g := qqGrounding
		g.Probability = tt.prob
		got := RenderFirstQuestion(g)

		warnAt := strings.Index(got, DeviationWarning)
		if (warnAt >= 0) != tt.wantWarning {
			t.Errorf("prob %v: warning present = %v, want %v", tt.prob, warnAt >= 0, tt.wantWarning)
			continue
		}
		if !tt.wantWarning {
			continue
		}
		strategyAt := strings.Index(got, g.Strategy)
		if strategyAt < 0 || warnAt > strategyAt {
			t.Errorf("prob %v: warning at %d must come before strategy at %d", tt.prob, warnAt, strategyAt)
		}
		if historyAt := strings.Index(got, g.HandHistory); warnAt > historyAt {
			t.Errorf("prob %v: warning should precede the hand history", tt.prob)
		}
	}
}

func TestRenderFirstQuestionIsDeterministic(t *testing.T) {
	for _, prob := range []float64{1.0, 0.001} {
		g := qqGrounding
		g.Probability = prob
		if a, b := RenderFirstQuestion(g), RenderFirstQuestion(g); a != b {
			t.Errorf("prob %v: renders differ", prob)
		}
	}
}

func TestRenderFirstQuestionWithoutBoardSummary(t *testing.T) {
	g := qqGrounding
	g.HandState = "Using both hole cards, with over pair"

	got := RenderFirstQuestion(g)
	if !strings.Contains(got, "**USER'S HAND**: Using both hole cards, with over pair.\n") {
		t.Errorf("hand summary missing:\n%s", got)
	}
	if !strings.Contains(got, "**BOARD STATE**: "+Unavailable+".\n") {
		t.Errorf("board placeholder missing:\n%s", got)
	}
}

func TestRenderFollowUp(t *testing.T) {
	in := "Why is check/call better than raising here?"
	if got := RenderFollowUp(in); got != in {
		t.Errorf("RenderFollowUp() = %q, want raw text", got)
	}
}

func TestFormatProbability(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1.0"},
		{0, "0.0"},
		{0.25, "0.25"},
		{0.005, "0.005"},
		{0.0001, "0.0001"},
	}
	for _, tt := range tests {
		if got := FormatProbability(tt.in); got != tt.want {
			t.Errorf("FormatProbability(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
