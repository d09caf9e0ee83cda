package prompt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Actions is the solver's fixed action vocabulary, in the order it reports them.
var Actions = []string{
	"fold",
	"check/call",
	"raise third pot",
	"raise half pot",
	"raise two thirds pot",
	"raise pot",
	"raise 130 pot",
	"raise all",
}

// FormatStrategy renders percentages in the solver's text layout, one action
// per line. Percentages are matched to Actions by position; extra values are
// ignored and missing ones are left out.
func FormatStrategy(percentages ...float64) string {
	lines := make([]string, 0, len(Actions))
	for i, action := range Actions {
		if i >= len(percentages) {
			break
		}
		lines = append(lines, fmt.Sprintf("- %s:  %.1f%%", action, percentages[i]))
	}
	return strings.Join(lines, "\n")
}

// StrategySumTolerance is how far, in percentage points, a strategy's total may
// drift from 100 before it is reported as malformed. One-decimal rounding over
// eight actions stays well inside it.
const StrategySumTolerance = 1.0

type actionShare struct {
	action     string
	percentage float64
}

// parseShares reads the "- action:  12.3%" lines of a strategy, skipping any
// line that does not parse.
func parseShares(strategy string) []actionShare {
	var shares []actionShare
	for _, line := range strings.Split(strategy, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "-"))
		name, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = strings.TrimRight(strings.TrimSpace(value), "%.")
		pct, err := strconv.ParseFloat(value, 64)
		if err != nil {
			continue
		}
		shares = append(shares, actionShare{action: strings.TrimSpace(name), percentage: pct})
	}
	return shares
}

// TopAction returns the most frequent action in a solver strategy string. The
// first action wins a tie. ok is false when no line could be read.
func TopAction(strategy string) (action string, percentage float64, ok bool) {
	percentage = -1
	for _, s := range parseShares(strategy) {
		if s.percentage > percentage {
			action, percentage, ok = s.action, s.percentage, true
		}
	}
	if !ok {
		return "", 0, false
	}
	return action, percentage, true
}

// CheckStrategy reports a strategy whose percentages are unreadable, negative,
// or do not add up to 100 within StrategySumTolerance.
func CheckStrategy(strategy string) error {
	shares := parseShares(strategy)
	if len(shares) == 0 {
		return fmt.Errorf("no action percentages found")
	}
	var total float64
	for _, s := range shares {
		if s.percentage < 0 {
			return fmt.Errorf("negative percentage %.1f%% for %s", s.percentage, s.action)
		}
		total += s.percentage
	}
	if math.Abs(total-100) > StrategySumTolerance {
		return fmt.Errorf("percentages sum to %.1f%%, want 100%%", total)
	}
	return nil
}
