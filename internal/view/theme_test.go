package view

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestForTypeKnown(t *testing.T) {
	theme := ForType("fire")
	assert.Equal(t, lipgloss.Color("#d9776f"), theme.Accent)
	assert.NotEqual(t, theme.Accent, theme.AccentSoft)
}

func TestForTypeNormalizesCase(t *testing.T) {
	assert.Equal(t, ForType("water"), ForType("WATER"))
}

func TestForTypeUnknownFallsBackToNormal(t *testing.T) {
	normal := ForType("normal")
	assert.Equal(t, normal, ForType("shadow"))
	assert.Equal(t, normal, ForType(""))
}

func TestForPokemonPrefersSecondTypeOverNormal(t *testing.T) {
	p := Pokemon{PrimaryType: "normal", Types: []string{"normal", "flying"}}
	assert.Equal(t, ForType("flying"), ForPokemon(p))
}

func TestForPokemonKeepsPrimaryType(t *testing.T) {
	p := Pokemon{PrimaryType: "grass", Types: []string{"grass", "poison"}}
	assert.Equal(t, ForType("grass"), ForPokemon(p))
}

func TestForPokemonNoTypes(t *testing.T) {
	assert.Equal(t, ForType("normal"), ForPokemon(Pokemon{}))
}

func TestSoftAccentIsValidHex(t *testing.T) {
	for name := range typeAccents {
		theme := ForType(name)
		soft := string(theme.AccentSoft)
		assert.Len(t, soft, 7, name)
		assert.Equal(t, byte('#'), soft[0], name)
	}
}
