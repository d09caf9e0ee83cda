// Package handhistory reads the hero's cards, the board and the street out of a
// free-text hand history. It is best effort: the solver stays the authority on
// what a hand history means, and a failed parse never blocks a turn.
package handhistory

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/paulhankin/poker"
)

var (
	ErrNoHeroCards   = errors.New("no hero hole cards found")
	ErrDuplicateCard = errors.New("card appears more than once")
)

// Street names in the order they are dealt.
const (
	Preflop = "preflop"
	Flop    = "flop"
	Turn    = "turn"
	River   = "river"
)

var (
	cardPattern    = `[2-9TJQKA][cdhs]`
	cardRe         = regexp.MustCompile(cardPattern)
	heroRe         = regexp.MustCompile(`(?:[Hh]ero\s*\(|\bI have\s+)\s*(` + cardPattern + `)[\s,]+(` + cardPattern + `)`)
	streetRe       = regexp.MustCompile(`\b(flop|turn|river)\b[^A-Za-z0-9(]*\(?((?:` + cardPattern + `[\s,]*)+)\)?`)
	playerCountRe  = regexp.MustCompile(`\((\d+)\s+players?\)`)
	rankFromLetter = map[byte]int{'T': 10, 'J': 11, 'Q': 12, 'K': 13, 'A': 1}
	suitFromLetter = map[byte]int{'c': 0, 'd': 1, 'h': 2, 's': 3}
)

// Hand is what could be read from a hand history.
type Hand struct {
	Hero    []string // hole cards as written, e.g. "Ah"
	Board   []string // community cards in dealing order
	Street  string
	Players int // from an explicit "(N players)" note; 0 when absent

	// Description names the hero's best five-card hand once the flop is out.
	Description string
}

// Parse extracts the hero's hand and the board from text.
func Parse(text string) (*Hand, error) {
	m := heroRe.FindStringSubmatch(text)
	if m == nil {
		return nil, ErrNoHeroCards
	}

	h := &Hand{
		Hero:   []string{m[1], m[2]},
		Street: Preflop,
	}

	for _, sm := range streetRe.FindAllStringSubmatch(text, -1) {
		h.Board = append(h.Board, cardRe.FindAllString(sm[2], -1)...)
		h.Street = sm[1]
	}

	if pm := playerCountRe.FindStringSubmatch(text); pm != nil {
		h.Players, _ = strconv.Atoi(pm[1])
	}

	cards, err := h.cards()
	if err != nil {
		return nil, err
	}

	if len(cards) >= 5 {
		desc, err := describe(cards)
		if err != nil {
			return nil, fmt.Errorf("failed to describe hand: %w", err)
		}
		h.Description = desc
	}

	return h, nil
}

// OnRiver reports whether all five board cards are out.
func (h *Hand) OnRiver() bool {
	return h.Street == River
}

// Multiway reports whether the hand history says more than two players saw the flop.
func (h *Hand) Multiway() bool {
	return h.Players > 2
}

// Summary is a one-line description for status displays.
func (h *Hand) Summary() string {
	var b strings.Builder
	b.WriteString(strings.Join(h.Hero, " "))
	if len(h.Board) > 0 {
		b.WriteString(" on ")
		b.WriteString(strings.Join(h.Board, " "))
	}
	b.WriteString(" (")
	b.WriteString(h.Street)
	if h.Description != "" {
		b.WriteString(", ")
		b.WriteString(h.Description)
	}
	b.WriteString(")")
	if h.Multiway() {
		fmt.Fprintf(&b, " [%d players, heads-up only]", h.Players)
	}
	return b.String()
}

// cards converts hero and board text to poker cards, hero first.
func (h *Hand) cards() ([]poker.Card, error) {
	seen := make(map[string]bool, len(h.Hero)+len(h.Board))
	out := make([]poker.Card, 0, len(h.Hero)+len(h.Board))
	for _, text := range append(append([]string{}, h.Hero...), h.Board...) {
		if seen[text] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, text)
		}
		seen[text] = true

		c, err := parseCard(text)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func parseCard(text string) (poker.Card, error) {
	var card poker.Card
	if len(text) != 2 {
		return card, fmt.Errorf("invalid card %q", text)
	}
	rank, ok := rankFromLetter[text[0]]
	if !ok {
		rank = int(text[0] - '0')
	}
	suit, ok := suitFromLetter[text[1]]
	if !ok || rank < 1 || rank > 13 {
		return card, fmt.Errorf("invalid card %q", text)
	}
	card, err := poker.MakeCard(poker.Suit(suit), poker.Rank(rank))
	if err != nil {
		return card, fmt.Errorf("invalid card %q: %w", text, err)
	}
	return card, nil
}

// describe names the best hand in five to seven cards. The library handles
// five and seven cards itself; on the turn the strongest five of six is picked first.
func describe(cards []poker.Card) (string, error) {
	if len(cards) == 6 {
		best := bestOfSix(cards)
		return poker.Describe(best[:])
	}
	return poker.Describe(cards)
}

// bestOfSix drops the one card whose absence leaves the strongest five.
func bestOfSix(cards []poker.Card) [5]poker.Card {
	var best [5]poker.Card
	bestScore := int16(-1)
	for skip := range cards {
		var hand [5]poker.Card
		n := 0
		for i, c := range cards {
			if i != skip {
				hand[n] = c
				n++
			}
		}
		if score := poker.Eval5(&hand); score > bestScore {
			best, bestScore = hand, score
		}
	}
	return best
}
