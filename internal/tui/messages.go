package tui

import (
	"github.com/dexcard/dexcard/internal/pokeapi"
	"github.com/dexcard/dexcard/internal/view"
)

// viewMode determines which screen to render.
type viewMode int

const (
	modeHome viewMode = iota
	modeCard
	modeCollection
	modeHelp
)

// confidence reflects how closely the submitted query matched the raw input.
// Corrected queries settle slightly slower to cue the normalization.
type confidence int

const (
	confidenceExact confidence = iota
	confidenceCorrected
)

// fetchCompleteMsg carries a mapped card. Gen ties the result to the search
// that issued it; stale generations are discarded.
type fetchCompleteMsg struct {
	Gen     int
	Pokemon view.Pokemon
}

// fetchErrorMsg carries a fetch failure for the given generation.
type fetchErrorMsg struct {
	Gen int
	Err error
}

// moveDetailMsg carries a best-effort move detail lookup result. The zero
// detail renders as "unknown".
type moveDetailMsg struct {
	Move   string
	Detail pokeapi.MoveDetail
}

// clearErrorMsg dismisses the error notice.
type clearErrorMsg struct{}
