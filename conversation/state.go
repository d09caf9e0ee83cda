package conversation

// State is where a session is in the lifecycle of one hand.
type State int

const (
	// StateNewHand means no strategy is cached; the next submission is a hand history.
	StateNewHand State = iota
	// StateStrategyReady means the solver answered but the model has not yet.
	StateStrategyReady
	// StateFollowUpReady means the hand has been discussed at least once.
	StateFollowUpReady
)

func (s State) String() string {
	switch s {
	case StateNewHand:
		return "NEW_HAND"
	case StateStrategyReady:
		return "STRATEGY_READY"
	case StateFollowUpReady:
		return "FOLLOWUP_READY"
	default:
		return "UNKNOWN"
	}
}

// AwaitingHand reports whether the next submission is read as a new hand history.
func (s State) AwaitingHand() bool {
	return s == StateNewHand
}
