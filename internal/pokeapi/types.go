package pokeapi

// RawStat is one named base stat as returned by the API.
type RawStat struct {
	BaseStat int `json:"base_stat"`
	Stat     struct {
		Name string `json:"name"`
	} `json:"stat"`
}

// RawType is one type slot. Slot order is significant: the first entry is the
// primary type.
type RawType struct {
	Type struct {
		Name string `json:"name"`
	} `json:"type"`
}

// RawArtwork holds the high-resolution artwork URLs, either of which may be
// absent.
type RawArtwork struct {
	FrontDefault string `json:"front_default"`
	FrontShiny   string `json:"front_shiny"`
}

// RawSprites mirrors the sprite section of the API response. Absent URLs
// decode to empty strings.
type RawSprites struct {
	FrontDefault string `json:"front_default"`
	Other        struct {
		OfficialArtwork RawArtwork `json:"official-artwork"`
	} `json:"other"`
}

// RawAbility is one ability slot.
type RawAbility struct {
	Ability struct {
		Name string `json:"name"`
	} `json:"ability"`
}

// RawMove is one learnable move entry.
type RawMove struct {
	Move struct {
		Name string `json:"name"`
	} `json:"move"`
}

// RawPokemon is the subset of the API's pokemon resource the application
// consumes.
type RawPokemon struct {
	ID             int          `json:"id"`
	Name           string       `json:"name"`
	Height         int          `json:"height"`
	Weight         int          `json:"weight"`
	BaseExperience int          `json:"base_experience"`
	Stats          []RawStat    `json:"stats"`
	Types          []RawType    `json:"types"`
	Sprites        RawSprites   `json:"sprites"`
	Abilities      []RawAbility `json:"abilities"`
	Moves          []RawMove    `json:"moves"`
}

// MoveDetail is the best-effort subset of the move resource used by the card
// back's move preview. A zero value means "unknown".
type MoveDetail struct {
	DamageClass string
	Type        string
}

type rawMoveDetail struct {
	DamageClass struct {
		Name string `json:"name"`
	} `json:"damage_class"`
	Type struct {
		Name string `json:"name"`
	} `json:"type"`
}
