// Package tui is the terminal presentation layer: a searchable card browser
// over the view-model core and the UI state store.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dexcard/dexcard/internal/format"
	"github.com/dexcard/dexcard/internal/logger"
	"github.com/dexcard/dexcard/internal/pokeapi"
	"github.com/dexcard/dexcard/internal/state"
	"github.com/dexcard/dexcard/internal/view"
)

// starter is one entry of the home screen's starter orbit.
type starter struct {
	Name  string
	Label string
	Type  string
}

var starters = []starter{
	{Name: "bulbasaur", Label: "Bulbasaur", Type: "grass"},
	{Name: "charmander", Label: "Charmander", Type: "fire"},
	{Name: "squirtle", Label: "Squirtle", Type: "water"},
	{Name: "pikachu", Label: "Pikachu", Type: "electric"},
	{Name: "eevee", Label: "Eevee", Type: "normal"},
	{Name: "jigglypuff", Label: "Jigglypuff", Type: "fairy"},
}

// Model is the bubbletea model for the card browser.
type Model struct {
	store  *state.Store
	client *pokeapi.Client
	log    *logger.Logger

	mode     viewMode
	lastMode viewMode

	input   textinput.Model
	spinner spinner.Model
	loading bool

	// generation counts searches; cancelFetch aborts the in-flight one.
	// A result only applies when its generation is still current.
	generation  int
	cancelFetch context.CancelFunc
	confidence  confidence

	current  *view.Pokemon
	previous *view.Pokemon
	insight  string
	trends   map[string]view.Trend
	theme    view.Theme
	tuning   view.Tuning

	moveDetails      map[string]pokeapi.MoveDetail
	starterIndex     int
	collectionCursor int

	errMsg string
	width  int
	height int
}

// NewModel wires the card browser around its collaborators.
func NewModel(store *state.Store, client *pokeapi.Client, log *logger.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "Search for a Pokémon…"
	ti.CharLimit = 40
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return Model{
		store:        store,
		client:       client,
		log:          log,
		mode:         modeHome,
		input:        ti,
		spinner:      s,
		theme:        view.ForType(""),
		tuning:       view.DefaultTuning,
		moveDetails:  make(map[string]pokeapi.MoveDetail),
		starterIndex: -1,
		width:        80,
		height:       24,
	}
}

// Init starts the spinner tick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// submitSearch normalizes the query and starts a fresh fetch, superseding
// any in-flight one. Last query wins.
func (m *Model) submitSearch(raw string) tea.Cmd {
	name := format.NormalizeQuery(raw)
	if name == "" {
		return nil
	}

	if raw == name {
		m.confidence = confidenceExact
	} else {
		m.confidence = confidenceCorrected
	}

	if m.cancelFetch != nil {
		m.cancelFetch()
	}
	m.generation++
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelFetch = cancel

	m.loading = true
	m.errMsg = ""
	m.log.WithFields(map[string]any{"query": name, "gen": m.generation}).Debug("search submitted")

	return tea.Batch(m.spinner.Tick, fetchCmd(ctx, m.generation, m.client, name))
}

// applyFetched installs a freshly mapped card: derives the accent theme and
// motion tuning, builds the comparison insight against the superseded card,
// records history, and restores the card's session memory.
func (m *Model) applyFetched(p view.Pokemon) {
	if m.current != nil && m.current.Name != p.Name {
		m.previous = m.current
		m.insight = view.BuildInsight(p, *m.previous)
		m.trends = view.StatTrends(p, *m.previous)
	} else if m.current == nil {
		m.insight = ""
		m.trends = nil
	}
	m.current = &p

	m.theme = view.ForPokemon(p)
	m.tuning = m.scaledTuning(p)

	m.store.AddHistory(p.Name)
	m.store.SetShiny(m.store.CardState(p.Name).Shiny)

	m.mode = modeCard
	m.loading = false
}

// scaledTuning applies the search-confidence factor on top of the type
// profile. The resolver stays pure; scaling is this caller's job.
func (m *Model) scaledTuning(p view.Pokemon) view.Tuning {
	t := view.TuningForType(p.PrimaryType)
	if m.confidence == confidenceExact {
		t.DurationMultiplier *= 0.98
	} else {
		t.DurationMultiplier *= 1.05
	}
	return t
}

// Close cancels any in-flight fetch. Called when the program exits.
func (m *Model) Close() {
	if m.cancelFetch != nil {
		m.cancelFetch()
	}
}

// currentCardMemory returns the active card's session memory.
func (m Model) currentCardMemory() state.CardMemory {
	if m.current == nil {
		return state.CardMemory{}
	}
	return m.store.CardState(m.current.Name)
}
