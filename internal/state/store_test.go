package state

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dexcard/dexcard/internal/logger"
)

func newTestStore(t *testing.T) (*Store, *MemoryStore) {
	t.Helper()
	kv := NewMemoryStore()
	return NewStore(kv, logger.Nop()), kv
}

func boolPtr(v bool) *bool { return &v }

func TestStoreDefaults(t *testing.T) {
	s, _ := newTestStore(t)

	assert.False(t, s.Shiny())
	assert.False(t, s.ReducedMotion())
	assert.Empty(t, s.History())
	assert.Empty(t, s.Favorites())
	assert.Equal(t, 0, s.CollectionSize())
	assert.Equal(t, CardMemory{}, s.CardState("pikachu"))
}

func TestPrefsCoPersistWithoutClobbering(t *testing.T) {
	s, kv := newTestStore(t)

	s.SetReducedMotion(true)
	s.SetShiny(true)

	raw, ok := kv.Get(KeyPrefs)
	require.True(t, ok)

	var blob struct {
		IsShiny              bool `json:"isShiny"`
		PrefersReducedMotion bool `json:"prefersReducedMotion"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &blob))
	assert.True(t, blob.IsShiny)
	assert.True(t, blob.PrefersReducedMotion)

	// A fresh session sees both preferences.
	reloaded := NewStore(kv, logger.Nop())
	assert.True(t, reloaded.Shiny())
	assert.True(t, reloaded.ReducedMotion())
}

func TestCardStatePartialMerge(t *testing.T) {
	s, _ := newTestStore(t)

	s.SetCardState("pikachu", CardMemoryPatch{Flipped: boolPtr(true)})
	assert.Equal(t, CardMemory{Flipped: true}, s.CardState("pikachu"))

	s.SetCardState("pikachu", CardMemoryPatch{Shiny: boolPtr(true), UsedShiny: boolPtr(true)})
	assert.Equal(t, CardMemory{Shiny: true, Flipped: true, UsedShiny: true}, s.CardState("pikachu"))

	// An empty patch still creates the entry lazily without changing fields.
	s.SetCardState("eevee", CardMemoryPatch{})
	assert.Equal(t, CardMemory{}, s.CardState("eevee"))
}

func TestCardStateNotPersisted(t *testing.T) {
	s, kv := newTestStore(t)

	s.SetCardState("pikachu", CardMemoryPatch{Flipped: boolPtr(true)})

	reloaded := NewStore(kv, logger.Nop())
	assert.Equal(t, CardMemory{}, reloaded.CardState("pikachu"))
}

func TestToggleFavorite(t *testing.T) {
	s, kv := newTestStore(t)

	assert.True(t, s.ToggleFavorite("pikachu"))
	assert.True(t, s.IsFavorite("pikachu"))

	assert.False(t, s.ToggleFavorite("pikachu"))
	assert.False(t, s.IsFavorite("pikachu"))

	s.ToggleFavorite("eevee")
	reloaded := NewStore(kv, logger.Nop())
	assert.True(t, reloaded.IsFavorite("eevee"))
	assert.False(t, reloaded.IsFavorite("pikachu"))
}

func TestMarkCollectedIdempotent(t *testing.T) {
	s, _ := newTestStore(t)

	s.MarkCollected("pikachu", "electric")
	// Re-collecting must not overwrite the stored category.
	s.MarkCollected("pikachu", "psychic")

	collection := s.Collection()
	require.Len(t, collection, 1)
	assert.Equal(t, "electric", collection["pikachu"].PrimaryType)
}

func TestRemoveCollected(t *testing.T) {
	s, kv := newTestStore(t)

	s.MarkCollected("pikachu", "electric")
	s.RemoveCollected("pikachu")
	s.RemoveCollected("absent")

	assert.Equal(t, 0, s.CollectionSize())

	reloaded := NewStore(kv, logger.Nop())
	assert.Equal(t, 0, reloaded.CollectionSize())
}

func TestCollectionSchemaReset(t *testing.T) {
	kv := NewMemoryStore()
	kv.Set(KeyCollection, `{"pikachu":{"primaryType":"electric"}}`)
	kv.Set(KeyCollectionVersion, "2")

	s := NewStore(kv, logger.Nop())

	assert.Equal(t, 0, s.CollectionSize())
	stamp, ok := kv.Get(KeyCollectionVersion)
	require.True(t, ok)
	assert.Equal(t, CollectionSchemaVersion, stamp)

	// The cleared collection was also rewritten.
	raw, ok := kv.Get(KeyCollection)
	require.True(t, ok)
	assert.JSONEq(t, `{}`, raw)
}

func TestCollectionSurvivesMatchingSchema(t *testing.T) {
	kv := NewMemoryStore()
	kv.Set(KeyCollection, `{"pikachu":{"primaryType":"electric"}}`)
	kv.Set(KeyCollectionVersion, CollectionSchemaVersion)

	s := NewStore(kv, logger.Nop())

	assert.True(t, s.IsCollected("pikachu"))
	assert.Equal(t, "electric", s.Collection()["pikachu"].PrimaryType)
}

func TestGroupedCollection(t *testing.T) {
	s, _ := newTestStore(t)

	s.MarkCollected("pikachu", "electric")
	s.MarkCollected("voltorb", "electric")
	s.MarkCollected("bulbasaur", "grass")

	groups := s.GroupedCollection()
	require.Len(t, groups, 2)
	assert.Equal(t, "electric", groups[0].Type)
	assert.Equal(t, []string{"pikachu", "voltorb"}, groups[0].Names)
	assert.Equal(t, "grass", groups[1].Type)
	assert.Equal(t, []string{"bulbasaur"}, groups[1].Names)
}

func TestAddHistoryDeduplicates(t *testing.T) {
	s, _ := newTestStore(t)

	s.AddHistory("pikachu")
	s.AddHistory("eevee")
	s.AddHistory("pikachu")

	assert.Equal(t, []string{"pikachu", "eevee"}, s.History())
}

func TestAddHistoryBounded(t *testing.T) {
	s, kv := newTestStore(t)

	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	for _, n := range names {
		s.AddHistory(n)
	}

	history := s.History()
	require.Len(t, history, historyLimit)
	assert.Equal(t, "j", history[0])
	assert.Equal(t, "c", history[historyLimit-1])

	reloaded := NewStore(kv, logger.Nop())
	assert.Equal(t, history, reloaded.History())
}

func TestMalformedSlicesDegradeToDefaults(t *testing.T) {
	kv := NewMemoryStore()
	kv.Set(KeyPrefs, "{not json")
	kv.Set(KeyFavorites, `["wrong","shape"]`)
	kv.Set(KeyHistory, `{"also":"wrong"}`)
	kv.Set(KeyCollection, "garbage")
	kv.Set(KeyCollectionVersion, CollectionSchemaVersion)

	s := NewStore(kv, logger.Nop())

	assert.False(t, s.Shiny())
	assert.Empty(t, s.Favorites())
	assert.Empty(t, s.History())
	assert.Equal(t, 0, s.CollectionSize())
}

func TestOversizedStoredHistoryTruncatedOnLoad(t *testing.T) {
	kv := NewMemoryStore()
	kv.Set(KeyHistory, `["a","b","c","d","e","f","g","h","i","j"]`)

	s := NewStore(kv, logger.Nop())

	assert.Len(t, s.History(), historyLimit)
	assert.Equal(t, "a", s.History()[0])
}

func TestCopiesAreDetached(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddHistory("pikachu")
	s.ToggleFavorite("pikachu")
	s.MarkCollected("pikachu", "electric")

	history := s.History()
	history[0] = "mutated"
	favorites := s.Favorites()
	favorites["mutated"] = true
	collection := s.Collection()
	collection["mutated"] = CollectionEntry{}

	assert.Equal(t, []string{"pikachu"}, s.History())
	assert.False(t, s.IsFavorite("mutated"))
	assert.False(t, s.IsCollected("mutated"))
}
