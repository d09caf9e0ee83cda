package conversation

import "errors"

var (
	// ErrEmptyInput is returned for a submission with no text.
	ErrEmptyInput = errors.New("input is empty")
	// ErrInputTooLong is returned for a submission over MaxInputLength runes.
	ErrInputTooLong = errors.New("input is too long")
	// ErrSolve is returned when the solver had no strategy for the hand.
	ErrSolve = errors.New("could not solve hand")
	// ErrLLM is returned when the language model call failed or came back empty.
	ErrLLM = errors.New("language model call failed")
)

// IsValidation reports whether err rejected a submission before any state changed.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyInput) || errors.Is(err, ErrInputTooLong)
}
