// Package view derives display-ready aggregates from raw API records. All
// derivations are pure: the same raw record always produces the same view.
package view

import (
	"sort"
	"strings"

	"github.com/dexcard/dexcard/internal/format"
	"github.com/dexcard/dexcard/internal/pokeapi"
)

// MaxStat is the normalization ceiling for stat bars. Base stats above it
// clip at 100%.
const MaxStat = 200

// MoveLimit bounds the moves carried onto the card back. Truncation is
// positional, not significance-ranked.
const MoveLimit = 6

var statLabels = map[string]string{
	"hp":              "HP",
	"attack":          "Attack",
	"defense":         "Defense",
	"special-attack":  "Sp. Attack",
	"special-defense": "Sp. Defense",
	"speed":           "Speed",
}

// StatView is one derived stat with its rank flags. SequenceIndex is the
// stat's position in the API's original order; flags are computed over that
// order so display sorting cannot affect them.
type StatView struct {
	Label         string
	Value         int
	Percent       float64
	IsHighlight   bool
	IsStrongest   bool
	IsWeakest     bool
	SequenceIndex int
}

// Pokemon is the fully derived card aggregate for one queried subject.
// Constructed once per successful fetch and never mutated; a new search
// supersedes it with a fresh value.
type Pokemon struct {
	ID           int
	DisplayID    string
	Name         string
	DisplayName  string
	Types        []string
	PrimaryType  string
	Artwork      string
	ShinyArtwork string
	Stats        []StatView
	Abilities    []string
	Moves        []string
	TotalStats   int
	Balance      Balance
}

// StatLabel maps a raw stat key to its display label, falling back to the
// generic name transform for keys outside the known six.
func StatLabel(key string) string {
	if label, ok := statLabels[key]; ok {
		return label
	}
	return format.FormatName(key)
}

// FromRaw maps a raw API record to its display aggregate.
func FromRaw(raw *pokeapi.RawPokemon) Pokemon {
	official := raw.Sprites.Other.OfficialArtwork
	fallback := raw.Sprites.FrontDefault

	artwork := official.FrontDefault
	if artwork == "" {
		artwork = fallback
	}
	shiny := official.FrontShiny
	if shiny == "" {
		shiny = fallback
	}

	types := make([]string, 0, len(raw.Types))
	for _, slot := range raw.Types {
		types = append(types, slot.Type.Name)
	}
	primary := ""
	if len(types) > 0 {
		primary = types[0]
	}

	values := make([]int, 0, len(raw.Stats))
	total := 0
	for _, s := range raw.Stats {
		values = append(values, s.BaseStat)
		total += s.BaseStat
	}

	stats := make([]StatView, 0, len(raw.Stats))
	strongest, weakest, threshold := rankThresholds(values)
	for i, s := range raw.Stats {
		percent := float64(s.BaseStat) / MaxStat
		if percent > 1 {
			percent = 1
		}
		stats = append(stats, StatView{
			Label:         StatLabel(s.Stat.Name),
			Value:         s.BaseStat,
			Percent:       percent * 100,
			IsHighlight:   s.BaseStat >= threshold,
			IsStrongest:   s.BaseStat == strongest,
			IsWeakest:     s.BaseStat == weakest,
			SequenceIndex: i,
		})
	}

	abilities := make([]string, 0, len(raw.Abilities))
	for _, a := range raw.Abilities {
		abilities = append(abilities, format.FormatName(a.Ability.Name))
	}

	limit := len(raw.Moves)
	if limit > MoveLimit {
		limit = MoveLimit
	}
	moves := make([]string, 0, limit)
	for _, m := range raw.Moves[:limit] {
		moves = append(moves, format.FormatName(m.Move.Name))
	}

	return Pokemon{
		ID:           raw.ID,
		DisplayID:    format.FormatID(raw.ID),
		Name:         raw.Name,
		DisplayName:  format.FormatName(raw.Name),
		Types:        types,
		PrimaryType:  primary,
		Artwork:      artwork,
		ShinyArtwork: shiny,
		Stats:        stats,
		Abilities:    abilities,
		Moves:        moves,
		TotalStats:   total,
		Balance:      ClassifyBalance(values),
	}
}

// rankThresholds returns the max value, the min value, and the highlight
// threshold (the second-highest value, or the highest when only one stat
// exists).
func rankThresholds(values []int) (strongest, weakest, threshold int) {
	if len(values) == 0 {
		return 0, 0, 0
	}
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	strongest = sorted[0]
	weakest = sorted[len(sorted)-1]
	threshold = sorted[0]
	if len(sorted) > 1 {
		threshold = sorted[1]
	}
	return strongest, weakest, threshold
}

// SortedByValue returns the stats in descending value order for display.
// Ties keep their original sequence so the order is stable across renders.
func (p Pokemon) SortedByValue() []StatView {
	sorted := make([]StatView, len(p.Stats))
	copy(sorted, p.Stats)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})
	return sorted
}

// Stat returns the stat with the given label, matched case-insensitively.
func (p Pokemon) Stat(label string) (StatView, bool) {
	for _, s := range p.Stats {
		if strings.EqualFold(s.Label, label) {
			return s, true
		}
	}
	return StatView{}, false
}
