package prompt

import (
	"strings"

	"gambol/model"
)

type exemplar struct {
	grounding   Grounding
	explanation string
}

var exemplars = []exemplar{
	{
		grounding: Grounding{
			HandHistory: "hero (Qs Qd), preflop UTG bets $52.98, MP folds, CO folds, BTN folds, SB raises $165.46, BB folds, UTG calls flop 6s 3c Td ($492.28): SB checks",
			HandState:   "Using both hole cards, with over pair.Someone may be drawing to a straight.",
			Probability: 1.0,
			Strategy:    FormatStrategy(0.0, 83.8, 2.8, 0.0, 13.3, 0.0, 0.1, 0.0),
		},
		explanation: `You have a strong hand here, but it's important to consider your opponent's range. They 3-bet preflop from the small blind, indicating strength. Their range likely includes big pairs (AA, KK, QQ, JJ), AK, and potentially some suited connectors like 87s or 76s that flopped a straight draw.

The GTO strategy primarily favors a check/call. This allows you to control the pot size and see how your opponent acts on the turn. If they bet heavily, you can consider folding, but if they check behind, you can try to extract value on the river.

Raising has some merit, but it's riskier. A smaller raise (third pot) might induce bluffs from worse hands, while a larger raise (two-thirds pot) is more for value against weaker pairs or draws that are willing to gamble.`,
	},
	{
		grounding: Grounding{
			HandHistory: "hero (Js Qd), preflop UTG folds, MP folds, CO folds, BTN bets $13.80, SB folds, BB calls flop Jh 8h 2h ($40.76): BB checks",
			HandState:   "Using both hole cards, with top pair and 3 cards to a flush.Someone may have a flush.",
			Probability: 1.0,
			Strategy:    FormatStrategy(0.0, 8.9, 91.1, 0.0, 0.1, 0.0, 0.0, 0.0),
		},
		explanation: `The GTO strategy heavily favors a raise on this flop. Here's why:

* **Value Betting:** You have top pair, which is a strong hand even on this wet board. Your opponent, by calling preflop and checking, is showing weakness. They could have a weak pair, a worse Jack, or a draw. Raising allows you to extract value from these hands.
* **Denial:** The flop is very draw-heavy. By raising, you make it more expensive for your opponent to chase their draws, potentially forcing them to fold hands like gutshot straight draws or even low flush draws.
* **Protection:** Even if your opponent has a hand like middle pair, they might be tempted to call a bet on the flop, hoping to improve on the turn. Raising protects your hand from getting outdrawn.

While checking is an option, it's not optimal in this scenario. It allows your opponent to see the turn and river for a cheaper price, potentially giving them a chance to outdraw you or realize their equity.`,
	},
	{
		grounding: Grounding{
			HandHistory: "I have Td Ah, preflop UTG bets pot, MP folds, CO folds, BTN folds, SB folds, BB calls flop Ts Tc 9h (T23821.39): BB checks, UTG bets two thirds pot",
			HandState:   "Using both hole cards, with trips.7 outs to boat or better.",
			Probability: 1.0,
			Strategy:    FormatStrategy(0.0, 42.4, 0.8, 56.8, 0.0, 0.0, 0.0, 0.0),
		},
		explanation: `Let's break down the GTO strategy:

* **Why Raising is Preferred:** You have a very strong hand here, trips with top kicker. Raising serves two purposes:
    * **Value Extraction:** You want to get value from worse hands like a ten with a weaker kicker that might call one or two bets.
    * **Protection:** A raise makes it more expensive for your opponent to draw to a straight or backdoor flush.

* **Why Check/Calling is Also Viable:** Check/calling has some merit to balance your strategy when you yourself have a draw in this situation and to continue inducing bluffs from weaker hands like AQ, AK, and even overpairs like KK, AA.

The GTO strategy leans towards raising, but both options have their merits in this specific scenario.`,
	},
	{
		grounding: Grounding{
			HandHistory: "hero (Ks Ad), preflop UTG bets $49.31, MP folds, CO folds, BTN folds, SB folds, BB calls flop Js 8c 7h ($146.93): BB checks, UTG bets $95.91",
			HandState:   "Using both hole cards, with over cards.Someone may have a straight.",
			Probability: 1.0,
			Strategy:    FormatStrategy(42.4, 1.0, 44.0, 12.6, 0.0, 0.0, 0.0, 0.0),
		},
		explanation: `This is a tricky spot where the GTO strategy involves a balanced approach between bluff raising for protection, and folding when out of position and facing aggression:

* **Why Folding is a Major Part of the Strategy:** Your hand, while having overcards, is actually quite weak. You don't have a made hand, and the board is very draw-heavy. Your opponent, who raised preflop and is continuation betting, likely has a hand that connects with this board in some way. They could have a pair, a straight draw, or even two pair. Folding protects you from losing more money if they have a stronger hand or hit their draw.

* **Why Raising is Still Part of the Strategy:** Even though folding is a significant part of the GTO strategy, you can't completely abandon raising in order to have a balanced strategy. Bluff raising occasionally protects you in similar spots when you have a strong holding.

The GTO strategy reflects this delicate balance. Folding is the most frequent action, but raising with a range of sizes allows you to sometimes fold out stronger hands and also remain unexploitable.`,
	},
	{
		grounding: Grounding{
			HandHistory: "hero (Kc Jh), preflop UTG bets $83.04, MP folds, CO folds, BTN folds, SB folds, BB calls flop Ts 9h 4h ($251.42): BB checks",
			HandState:   "Using both hole cards, with over cards, 3 cards to a flush, and 4 outs to a straight.Someone may be drawing to a flush.",
			Probability: 1.0,
			Strategy:    FormatStrategy(0.0, 98.2, 1.6, 0.0, 0.0, 0.0, 0.2, 0.0),
		},
		explanation: `While you have a lot of potential draws with your hand, the GTO strategy heavily favors checking and calling in this situation. Here's why:

* **Drawing Thin:** You're currently behind any pair, and even if you hit your straight or flush, there's a chance your opponent could have a higher one. This means you're drawing to a hand that may not even be the best.

* **Pot Control:** Raising in this situation would inflate the pot, making it riskier to chase your draws. By checking and calling, you keep the pot smaller and give yourself a better price to see if you can improve your hand on the turn.

* **Opponent's Range:** Your opponent, by calling a preflop raise and checking the flop, likely has a wide range of hands. They could have a weak pair, a draw, or even a strong made hand. Checking allows you to gain more information about their hand on later streets.

While raising occasionally (1.8% of the time) might seem counterintuitive, it's important for a balanced strategy. This small frequency of bluffing prevents your opponent from exploiting you when you have a very strong hand on a similar board texture.`,
	},
}

// Exemplars returns the worked question/answer pairs that open every new
// conversation history, as alternating user and assistant messages. The
// questions use the same grounding block as real first questions.
func Exemplars() []model.Message {
	out := make([]model.Message, 0, 2*len(exemplars))
	for _, ex := range exemplars {
		out = append(out,
			model.Message{Role: model.RoleUser, Content: renderGrounding(ex.grounding)},
			model.Message{Role: model.RoleAssistant, Content: exemplarAnswer(ex)},
		)
	}
	return out
}

// exemplarAnswer lays out an answer the way the system instruction asks:
// percentages, restated hand and board, then the explanation.
func exemplarAnswer(ex exemplar) string {
	userHand, board := SplitHandState(ex.grounding.HandState)

	var b strings.Builder
	b.WriteString(sentence(ex.grounding.Strategy))
	b.WriteString("\n\n**USER'S HAND**: ")
	b.WriteString(sentence(userHand))
	b.WriteString("\n**BOARD STATE**: ")
	b.WriteString(sentence(board))
	b.WriteString("\n\n")
	b.WriteString(ex.explanation)
	return b.String()
}
