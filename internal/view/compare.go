package view

import (
	"fmt"
	"strings"
)

// Trend records how one stat moved between two consecutive searches.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendSame Trend = "same"
)

// insightLabels is the fixed subset of stats the comparison sentence covers,
// in phrase order.
var insightLabels = []string{"Attack", "Defense", "Speed"}

// BuildInsight produces a single comparison sentence between the current and
// previous card, or "" when no shared stat qualifies. At most the first two
// phrases are kept.
func BuildInsight(current, previous Pokemon) string {
	phrases := make([]string, 0, len(insightLabels))
	for _, label := range insightLabels {
		if phrase := compareStat(current, previous, label); phrase != "" {
			phrases = append(phrases, phrase)
		}
	}
	if len(phrases) == 0 {
		return ""
	}
	if len(phrases) > 2 {
		phrases = phrases[:2]
	}
	return fmt.Sprintf("Compared to %s, %s %s.",
		previous.DisplayName, current.DisplayName, strings.Join(phrases, " and "))
}

func compareStat(current, previous Pokemon, label string) string {
	cur, ok := current.Stat(label)
	if !ok {
		return ""
	}
	prev, ok := previous.Stat(label)
	if !ok {
		return ""
	}

	// Equal values yield no phrase so a tie never crowds out a real delta.
	lower := strings.ToLower(label)
	switch {
	case cur.Value == prev.Value:
		return ""
	case cur.Value > prev.Value:
		return lower + " is higher"
	default:
		return lower + " is lower"
	}
}

// StatTrends maps each of the current card's stat labels to its movement
// relative to the previous card. Labels absent from the previous card are
// omitted.
func StatTrends(current, previous Pokemon) map[string]Trend {
	previousValues := make(map[string]int, len(previous.Stats))
	for _, s := range previous.Stats {
		previousValues[s.Label] = s.Value
	}

	trends := make(map[string]Trend)
	for _, s := range current.Stats {
		prev, ok := previousValues[s.Label]
		if !ok {
			continue
		}
		switch {
		case s.Value > prev:
			trends[s.Label] = TrendUp
		case s.Value < prev:
			trends[s.Label] = TrendDown
		default:
			trends[s.Label] = TrendSame
		}
	}
	return trends
}
