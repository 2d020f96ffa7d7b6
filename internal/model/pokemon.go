package model

// NamedResource is a {name, url} reference to another upstream resource.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PokemonListItem is the lightweight list-view projection of a Pokémon.
type PokemonListItem struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// PokemonList is a page of list items plus the upstream total count.
type PokemonList struct {
	Total int
	Items []PokemonListItem
}

// Sprites holds the default front and back sprite URLs, either of which may be null.
type Sprites struct {
	FrontDefault *string `json:"front_default"`
	BackDefault  *string `json:"back_default"`
}

// PokemonDetail is the full detail-view projection of a Pokémon.
type PokemonDetail struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Image     *string   `json:"image"` // sprites.front_default
	Sprites   Sprites   `json:"sprites"`
	Abilities []Ability `json:"abilities"`
	Moves     []Move    `json:"moves"`
	Stats     []Stat    `json:"stats"`
	Types     []Type    `json:"types"`
}

type Ability struct {
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
	Ability  NamedResource `json:"ability"`
}

type Move struct {
	Move                NamedResource        `json:"move"`
	VersionGroupDetails []VersionGroupDetail `json:"version_group_details"`
}

type VersionGroupDetail struct {
	LevelLearnedAt  int           `json:"level_learned_at"`
	MoveLearnMethod NamedResource `json:"move_learn_method"`
	VersionGroup    NamedResource `json:"version_group"`
}

type Stat struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

type Type struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}
