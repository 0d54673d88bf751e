package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dexcard/dexcard/internal/logger"
	"github.com/dexcard/dexcard/internal/pokeapi"
	"github.com/dexcard/dexcard/internal/state"
	"github.com/dexcard/dexcard/internal/view"
	apperrors "github.com/dexcard/dexcard/pkg/errors"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	store := state.NewStore(state.NewMemoryStore(), logger.Nop())
	client := pokeapi.NewClient(logger.Nop())
	return NewModel(store, client, logger.Nop())
}

func cardFixture(name, primaryType string, attack, defense, speed int) view.Pokemon {
	return view.Pokemon{
		Name:        name,
		DisplayName: name,
		Types:       []string{primaryType},
		PrimaryType: primaryType,
		Stats: []view.StatView{
			{Label: "Attack", Value: attack},
			{Label: "Defense", Value: defense},
			{Label: "Speed", Value: speed},
		},
	}
}

func submit(t *testing.T, m Model, query string) Model {
	t.Helper()
	m.input.SetValue(query)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model)
}

func TestStaleResponseSuppressed(t *testing.T) {
	m := newTestModel(t)

	m = submit(t, m, "ditto")
	dittoGen := m.generation
	m = submit(t, m, "eevee")
	eeveeGen := m.generation
	require.Greater(t, eeveeGen, dittoGen)

	// Ditto's response arrives after eevee's search started: discarded.
	next, _ := m.Update(fetchCompleteMsg{Gen: dittoGen, Pokemon: cardFixture("ditto", "normal", 48, 48, 48)})
	m = next.(Model)
	assert.Nil(t, m.current)
	assert.True(t, m.loading)

	next, _ = m.Update(fetchCompleteMsg{Gen: eeveeGen, Pokemon: cardFixture("eevee", "normal", 55, 50, 55)})
	m = next.(Model)
	require.NotNil(t, m.current)
	assert.Equal(t, "eevee", m.current.Name)
	assert.False(t, m.loading)
	assert.Equal(t, modeCard, m.mode)
}

func TestStaleErrorSuppressed(t *testing.T) {
	m := newTestModel(t)

	m = submit(t, m, "ditto")
	staleGen := m.generation
	m = submit(t, m, "eevee")

	next, _ := m.Update(fetchErrorMsg{Gen: staleGen, Err: errors.New("boom")})
	m = next.(Model)
	assert.Empty(t, m.errMsg)
	assert.True(t, m.loading)
}

func TestFetchErrorShowsUserMessage(t *testing.T) {
	m := newTestModel(t)

	m = submit(t, m, "missingno")
	next, _ := m.Update(fetchErrorMsg{Gen: m.generation, Err: apperrors.NewNotFoundError("missingno")})
	m = next.(Model)

	assert.Equal(t, "No Pokémon found. Try another name.", m.errMsg)
	assert.False(t, m.loading)
	assert.Equal(t, modeHome, m.mode)
}

func TestApplyFetchedDerivesState(t *testing.T) {
	m := newTestModel(t)

	m = submit(t, m, "charmander")
	next, _ := m.Update(fetchCompleteMsg{Gen: m.generation, Pokemon: cardFixture("charmander", "fire", 52, 43, 65)})
	m = next.(Model)

	assert.Equal(t, view.ForType("fire"), m.theme)
	assert.Equal(t, []string{"charmander"}, m.store.History())
	assert.Empty(t, m.insight)

	// Exact-match confidence tightens the fire profile's 0.9 multiplier.
	assert.InDelta(t, 0.9*0.98, m.tuning.DurationMultiplier, 0.0001)
}

func TestComparisonInsightBetweenSearches(t *testing.T) {
	m := newTestModel(t)

	m = submit(t, m, "machop")
	next, _ := m.Update(fetchCompleteMsg{Gen: m.generation, Pokemon: cardFixture("machop", "fighting", 50, 50, 50)})
	m = next.(Model)

	m.mode = modeHome
	m = submit(t, m, "scyther")
	next, _ = m.Update(fetchCompleteMsg{Gen: m.generation, Pokemon: cardFixture("scyther", "bug", 80, 50, 30)})
	m = next.(Model)

	assert.Equal(t, "Compared to machop, scyther attack is higher and speed is lower.", m.insight)
	assert.Equal(t, view.TrendUp, m.trends["Attack"])
	assert.Equal(t, view.TrendDown, m.trends["Speed"])
	assert.Equal(t, []string{"scyther", "machop"}, m.store.History())
}

func TestRepeatSearchKeepsInsightClear(t *testing.T) {
	m := newTestModel(t)

	for i := 0; i < 2; i++ {
		m.mode = modeHome
		m = submit(t, m, "ditto")
		next, _ := m.Update(fetchCompleteMsg{Gen: m.generation, Pokemon: cardFixture("ditto", "normal", 48, 48, 48)})
		m = next.(Model)
	}

	assert.Empty(t, m.insight)
	assert.Equal(t, []string{"ditto"}, m.store.History())
}

func TestShinyMemoryRestoredPerCard(t *testing.T) {
	m := newTestModel(t)
	shiny := true
	m.store.SetCardState("eevee", state.CardMemoryPatch{Shiny: &shiny})

	m = submit(t, m, "eevee")
	next, _ := m.Update(fetchCompleteMsg{Gen: m.generation, Pokemon: cardFixture("eevee", "normal", 55, 50, 55)})
	m = next.(Model)
	assert.True(t, m.store.Shiny())

	m.mode = modeHome
	m.input.SetValue("")
	m = submit(t, m, "ditto")
	next, _ = m.Update(fetchCompleteMsg{Gen: m.generation, Pokemon: cardFixture("ditto", "normal", 48, 48, 48)})
	m = next.(Model)
	assert.False(t, m.store.Shiny())
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func withCard(t *testing.T, m Model, p view.Pokemon) Model {
	t.Helper()
	m = submit(t, m, p.Name)
	next, _ := m.Update(fetchCompleteMsg{Gen: m.generation, Pokemon: p})
	return next.(Model)
}

func TestCardKeysFavorite(t *testing.T) {
	m := withCard(t, newTestModel(t), cardFixture("pikachu", "electric", 55, 40, 90))

	next, _ := m.Update(keyRune('v'))
	m = next.(Model)
	assert.True(t, m.store.IsFavorite("pikachu"))

	next, _ = m.Update(keyRune('v'))
	m = next.(Model)
	assert.False(t, m.store.IsFavorite("pikachu"))
}

func TestCardKeysCollect(t *testing.T) {
	m := withCard(t, newTestModel(t), cardFixture("pikachu", "electric", 55, 40, 90))

	next, _ := m.Update(keyRune('c'))
	m = next.(Model)
	require.True(t, m.store.IsCollected("pikachu"))
	assert.Equal(t, "electric", m.store.Collection()["pikachu"].PrimaryType)

	// Collecting again is a no-op.
	next, _ = m.Update(keyRune('c'))
	m = next.(Model)
	assert.Equal(t, 1, m.store.CollectionSize())
}

func TestCardKeysFlipRemembersState(t *testing.T) {
	m := withCard(t, newTestModel(t), cardFixture("pikachu", "electric", 55, 40, 90))

	next, _ := m.Update(keyRune('f'))
	m = next.(Model)
	assert.True(t, m.store.CardState("pikachu").Flipped)

	next, _ = m.Update(keyRune('f'))
	m = next.(Model)
	assert.False(t, m.store.CardState("pikachu").Flipped)
}

func TestCardKeysShinyStampsMemory(t *testing.T) {
	m := withCard(t, newTestModel(t), cardFixture("pikachu", "electric", 55, 40, 90))

	next, _ := m.Update(keyRune('s'))
	m = next.(Model)

	assert.True(t, m.store.Shiny())
	mem := m.store.CardState("pikachu")
	assert.True(t, mem.Shiny)
	assert.True(t, mem.UsedShiny)
}

func TestCollectionNavigation(t *testing.T) {
	m := newTestModel(t)
	m.store.MarkCollected("bulbasaur", "grass")
	m.store.MarkCollected("pikachu", "electric")
	m.store.MarkCollected("voltorb", "electric")

	m.mode = modeCollection
	m.lastMode = modeHome

	// Grouped order: electric (pikachu, voltorb), grass (bulbasaur).
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	next, _ = m.Update(keyRune('x'))
	m = next.(Model)

	assert.False(t, m.store.IsCollected("voltorb"))
	assert.Equal(t, 2, m.store.CollectionSize())
}

func TestMoveDetailCached(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(moveDetailMsg{Move: "Pound", Detail: pokeapi.MoveDetail{DamageClass: "physical", Type: "normal"}})
	m = next.(Model)

	assert.Equal(t, "physical", m.moveDetails["Pound"].DamageClass)
}

func TestHelpReturnsToPreviousMode(t *testing.T) {
	m := withCard(t, newTestModel(t), cardFixture("pikachu", "electric", 55, 40, 90))

	next, _ := m.Update(keyRune('?'))
	m = next.(Model)
	assert.Equal(t, modeHelp, m.mode)

	next, _ = m.Update(keyRune('z'))
	m = next.(Model)
	assert.Equal(t, modeCard, m.mode)
}
