package pokeapi

// Upstream payload types. Pointer fields let validation tell a missing field
// apart from a zero value such as is_hidden=false.

// NamedResource is the upstream {name, url} reference object.
type NamedResource struct {
	Name *string `json:"name" validate:"required"`
	URL  *string `json:"url" validate:"required"`
}

// ListResponse models the upstream paginated list endpoint.
type ListResponse struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []NamedResource `json:"results" validate:"required,dive"`
}

// Pokemon models the upstream detail endpoint. Fields this service never
// exposes (height, weight, species, ...) are not decoded.
type Pokemon struct {
	ID        *int          `json:"id" validate:"required"`
	Name      *string       `json:"name" validate:"required"`
	Sprites   *Sprites      `json:"sprites" validate:"required"`
	Abilities []AbilitySlot `json:"abilities" validate:"required,dive"`
	Moves     []MoveSlot    `json:"moves" validate:"required,dive"`
	Stats     []StatSlot    `json:"stats" validate:"required,dive"`
	Types     []TypeSlot    `json:"types" validate:"required,dive"`
}

type Sprites struct {
	FrontDefault *string `json:"front_default"`
	BackDefault  *string `json:"back_default"`
}

type AbilitySlot struct {
	IsHidden *bool          `json:"is_hidden" validate:"required"`
	Slot     *int           `json:"slot" validate:"required"`
	Ability  *NamedResource `json:"ability" validate:"required"`
}

type MoveSlot struct {
	Move                *NamedResource       `json:"move" validate:"required"`
	VersionGroupDetails []VersionGroupDetail `json:"version_group_details" validate:"required,dive"`
}

type VersionGroupDetail struct {
	LevelLearnedAt  *int           `json:"level_learned_at" validate:"required"`
	MoveLearnMethod *NamedResource `json:"move_learn_method" validate:"required"`
	VersionGroup    *NamedResource `json:"version_group" validate:"required"`
}

type StatSlot struct {
	BaseStat *int           `json:"base_stat" validate:"required"`
	Effort   *int           `json:"effort" validate:"required"`
	Stat     *NamedResource `json:"stat" validate:"required"`
}

type TypeSlot struct {
	Slot *int           `json:"slot" validate:"required"`
	Type *NamedResource `json:"type" validate:"required"`
}
