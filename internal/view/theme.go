package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme is the accent pair derived from a type label. Accent drives borders
// and emphasis; AccentSoft is the washed-out companion used for fills.
type Theme struct {
	Accent     lipgloss.Color
	AccentSoft lipgloss.Color
}

// softBlend matches the original palette's 18% overlay on a light surface.
const softBlend = 0.82

var typeAccents = map[string]string{
	"fire":     "#d9776f",
	"water":    "#7aa7d9",
	"grass":    "#7bbf92",
	"electric": "#e5c25b",
	"psychic":  "#c48ad9",
	"ice":      "#8cc9d9",
	"dragon":   "#8f87d9",
	"dark":     "#7c7b8a",
	"fairy":    "#e7a0c7",
	"fighting": "#d08a7f",
	"flying":   "#9db1d6",
	"poison":   "#b27ac5",
	"ground":   "#c8a07a",
	"rock":     "#bca57a",
	"bug":      "#a3c16c",
	"ghost":    "#8e8ab9",
	"steel":    "#9fa9b6",
	"normal":   "#a7a3a3",
}

// ForType resolves the accent pair for a type label. Unknown or empty labels
// resolve to the "normal" pair; the lookup never fails.
func ForType(typeName string) Theme {
	accent, ok := typeAccents[strings.ToLower(typeName)]
	if !ok {
		accent = typeAccents["normal"]
	}
	return Theme{
		Accent:     lipgloss.Color(accent),
		AccentSoft: lipgloss.Color(soften(accent)),
	}
}

// ForPokemon resolves the card's theme. When the primary type is "normal"
// and a second type exists, the second type wins so dual-typed cards keep a
// distinctive accent.
func ForPokemon(p Pokemon) Theme {
	primary := p.PrimaryType
	if primary == "" {
		return ForType("")
	}
	if primary == "normal" && len(p.Types) > 1 {
		return ForType(p.Types[1])
	}
	return ForType(primary)
}

func soften(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	return c.BlendRgb(white, softBlend).Hex()
}
