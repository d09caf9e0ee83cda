package prompt

import (
	"strconv"
	"strings"
)

// Grounding is the solver data a first question is answered from.
type Grounding struct {
	HandHistory string
	HandState   string
	Probability float64
	Strategy    string
}

// BelowThreshold reports whether the hand needs the deviation warning.
func (g Grounding) BelowThreshold() bool {
	return g.Probability < DeviationThreshold
}

// SplitHandState splits the solver's hand-state annotation on its first period
// into the hero's hand summary and the board summary. The board summary keeps
// its own punctuation. Input without a period yields an empty board summary;
// empty input yields Unavailable for the hand summary. It never fails.
func SplitHandState(handState string) (userHand, board string) {
	parts := strings.SplitN(strings.TrimSpace(handState), ".", 2)
	userHand = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		board = strings.TrimSpace(parts[1])
	}
	if userHand == "" {
		userHand = Unavailable
	}
	return userHand, board
}

// RenderFirstQuestion renders the message for the first question on a hand:
// policy restatement, optional deviation instruction, then the grounding block.
func RenderFirstQuestion(g Grounding) string {
	var b strings.Builder
	b.WriteString(policy)
	if g.BelowThreshold() {
		b.WriteString("The probability of this hand history is below ")
		b.WriteString(FormatProbability(DeviationThreshold))
		b.WriteString(". Start your answer with exactly this warning before anything else: ")
		b.WriteString(DeviationWarning)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(renderGrounding(g))
	return b.String()
}

// RenderFollowUp renders a follow-up question. The grounding for the hand is
// already part of the conversation history, so the user's text goes as is.
func RenderFollowUp(userText string) string {
	return userText
}

// renderGrounding is the block shared by first questions and exemplars.
func renderGrounding(g Grounding) string {
	userHand, board := SplitHandState(g.HandState)
	if board == "" {
		board = Unavailable
	}

	var b strings.Builder
	b.WriteString("This is a poker hand history: ")
	b.WriteString(sentence(g.HandHistory))
	b.WriteString("\n**USER'S HAND**: ")
	b.WriteString(sentence(userHand))
	b.WriteString("\n**BOARD STATE**: ")
	b.WriteString(sentence(board))
	b.WriteString("\nThe probability of this hand history is ")
	b.WriteString(FormatProbability(g.Probability))
	b.WriteString(".\nThese are the GTO strategy percentages:\n")
	b.WriteString(sentence(g.Strategy))
	return b.String()
}

// FormatProbability prints p with the shortest exact representation and at
// least one decimal place ("1.0", "0.25", "0.0001").
func FormatProbability(p float64) string {
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// sentence trims s and terminates it with exactly one period.
func sentence(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ". ") + "."
}
