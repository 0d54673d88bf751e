package state

import (
	"encoding/json"
	"sort"
	"sync"

	"github.com/dexcard/dexcard/internal/logger"
	apperrors "github.com/dexcard/dexcard/pkg/errors"
)

// CollectionSchemaVersion stamps the collection blob. A stored stamp that
// does not match resets the collection outright; there is no migration path.
const CollectionSchemaVersion = "3"

// historyLimit bounds the search history to the most recent entries.
const historyLimit = 8

// CardMemory is the per-card interaction state remembered for the session.
// It is deliberately not persisted; every session starts with fresh cards.
type CardMemory struct {
	Shiny     bool
	Flipped   bool
	UsedShiny bool
}

// CardMemoryPatch carries a partial CardMemory update. Nil fields keep the
// current value.
type CardMemoryPatch struct {
	Shiny     *bool
	Flipped   *bool
	UsedShiny *bool
}

// CollectionEntry is the persisted metadata for one collected card.
type CollectionEntry struct {
	PrimaryType string `json:"primaryType"`
}

// TypeGroup is one primary type bucket of the collection, names sorted.
type TypeGroup struct {
	Type  string
	Names []string
}

type prefsBlob struct {
	IsShiny              bool `json:"isShiny"`
	PrefersReducedMotion bool `json:"prefersReducedMotion"`
}

// Store owns the session's UI state. Mutations go through the named methods
// only; each one applies atomically under the mutex and persists its slice
// synchronously before returning. The single Tea event loop never contends
// on the mutex, but it keeps the single-writer invariant on any target.
type Store struct {
	mu  sync.Mutex
	kv  KVStore
	log *logger.Logger

	shiny         bool
	reducedMotion bool
	cardMemory    map[string]CardMemory
	favorites     map[string]bool
	collection    map[string]CollectionEntry
	history       []string
}

// NewStore builds a Store, loading every persisted slice. Malformed or
// absent stored data degrades to that slice's empty default and is never an
// error.
func NewStore(kv KVStore, log *logger.Logger) *Store {
	s := &Store{
		kv:         kv,
		log:        log,
		cardMemory: make(map[string]CardMemory),
		favorites:  make(map[string]bool),
		collection: make(map[string]CollectionEntry),
	}
	s.loadPrefs()
	s.loadFavorites()
	s.loadCollection()
	s.loadHistory()
	return s
}

// Shiny reports the global shiny toggle.
func (s *Store) Shiny() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shiny
}

// SetShiny updates the global shiny toggle. The prefs blob co-persists the
// reduced-motion preference, so the current value rides along instead of
// being clobbered.
func (s *Store) SetShiny(value bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shiny = value
	s.persistPrefs()
}

// ReducedMotion reports the reduced-motion preference.
func (s *Store) ReducedMotion() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reducedMotion
}

// SetReducedMotion updates the reduced-motion preference.
func (s *Store) SetReducedMotion(value bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reducedMotion = value
	s.persistPrefs()
}

// CardState returns the remembered interaction state for a card, zero-valued
// when the card has not been touched this session.
func (s *Store) CardState(name string) CardMemory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cardMemory[name]
}

// SetCardState merges a partial update into the named card's memory,
// creating the entry with all-false defaults on first touch. Entries are
// never deleted.
func (s *Store) SetCardState(name string, patch CardMemoryPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mem := s.cardMemory[name]
	if patch.Shiny != nil {
		mem.Shiny = *patch.Shiny
	}
	if patch.Flipped != nil {
		mem.Flipped = *patch.Flipped
	}
	if patch.UsedShiny != nil {
		mem.UsedShiny = *patch.UsedShiny
	}
	s.cardMemory[name] = mem
}

// IsFavorite reports favorite membership.
func (s *Store) IsFavorite(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites[name]
}

// ToggleFavorite flips favorite membership and returns the new state.
func (s *Store) ToggleFavorite(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.favorites[name] {
		delete(s.favorites, name)
	} else {
		s.favorites[name] = true
	}
	s.persistFavorites()
	return s.favorites[name]
}

// Favorites returns a copy of the favorites set.
func (s *Store) Favorites() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]bool, len(s.favorites))
	for k, v := range s.favorites {
		out[k] = v
	}
	return out
}

// IsCollected reports collection membership.
func (s *Store) IsCollected(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.collection[name]
	return ok
}

// MarkCollected adds a card to the collection. Re-collecting is a no-op and
// leaves the stored primary type untouched.
func (s *Store) MarkCollected(name, primaryType string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collection[name]; ok {
		return
	}
	s.collection[name] = CollectionEntry{PrimaryType: primaryType}
	s.persistCollection()
}

// RemoveCollected deletes a card from the collection; absent names are a
// no-op.
func (s *Store) RemoveCollected(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collection[name]; !ok {
		return
	}
	delete(s.collection, name)
	s.persistCollection()
}

// Collection returns a copy of the collection mapping.
func (s *Store) Collection() map[string]CollectionEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]CollectionEntry, len(s.collection))
	for k, v := range s.collection {
		out[k] = v
	}
	return out
}

// CollectionSize returns the number of collected cards.
func (s *Store) CollectionSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.collection)
}

// GroupedCollection buckets the collection by primary type, groups and names
// both sorted, for the collection overlay.
func (s *Store) GroupedCollection() []TypeGroup {
	s.mu.Lock()
	defer s.mu.Unlock()

	buckets := make(map[string][]string)
	for name, entry := range s.collection {
		buckets[entry.PrimaryType] = append(buckets[entry.PrimaryType], name)
	}

	groups := make([]TypeGroup, 0, len(buckets))
	for typeName, names := range buckets {
		sort.Strings(names)
		groups = append(groups, TypeGroup{Type: typeName, Names: names})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Type < groups[j].Type
	})
	return groups
}

// AddHistory moves-or-inserts a name at the front of the search history and
// truncates to the most recent entries.
func (s *Store) AddHistory(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]string, 0, len(s.history)+1)
	next = append(next, name)
	for _, existing := range s.history {
		if existing != name {
			next = append(next, existing)
		}
	}
	if len(next) > historyLimit {
		next = next[:historyLimit]
	}
	s.history = next
	s.persistHistory()
}

// History returns a copy of the search history, most recent first.
func (s *Store) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// Persistence. Callers hold the mutex.

func (s *Store) persistPrefs() {
	s.persist(KeyPrefs, prefsBlob{IsShiny: s.shiny, PrefersReducedMotion: s.reducedMotion})
}

func (s *Store) persistFavorites() {
	s.persist(KeyFavorites, s.favorites)
}

func (s *Store) persistCollection() {
	s.persist(KeyCollection, s.collection)
	s.kv.Set(KeyCollectionVersion, CollectionSchemaVersion)
}

func (s *Store) persistHistory() {
	s.persist(KeyHistory, s.history)
}

func (s *Store) persist(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.log.Error(apperrors.NewStateError(key, err), "state marshal failed")
		return
	}
	s.kv.Set(key, string(data))
}

func (s *Store) loadPrefs() {
	var prefs prefsBlob
	if s.loadSlice(KeyPrefs, &prefs) {
		s.shiny = prefs.IsShiny
		s.reducedMotion = prefs.PrefersReducedMotion
	}
}

func (s *Store) loadFavorites() {
	favorites := make(map[string]bool)
	if s.loadSlice(KeyFavorites, &favorites) && favorites != nil {
		s.favorites = favorites
	}
}

func (s *Store) loadCollection() {
	stamp, ok := s.kv.Get(KeyCollectionVersion)
	if !ok || stamp != CollectionSchemaVersion {
		// One-way reset: discard whatever is stored and restamp.
		s.collection = make(map[string]CollectionEntry)
		s.persistCollection()
		return
	}

	collection := make(map[string]CollectionEntry)
	if s.loadSlice(KeyCollection, &collection) && collection != nil {
		s.collection = collection
	}
}

func (s *Store) loadHistory() {
	var history []string
	if !s.loadSlice(KeyHistory, &history) {
		return
	}
	if len(history) > historyLimit {
		history = history[:historyLimit]
	}
	s.history = history
}

// loadSlice reads and decodes one stored slice, reporting false on absence
// or malformed JSON so the caller keeps the default.
func (s *Store) loadSlice(key string, out any) bool {
	raw, ok := s.kv.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.log.Error(apperrors.NewStateError(key, err), "discarding malformed stored state")
		return false
	}
	return true
}
