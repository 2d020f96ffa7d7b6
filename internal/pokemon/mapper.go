package pokemon

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"pokedex-backend/internal/errs"
	"pokedex-backend/internal/model"
	"pokedex-backend/internal/parse"
	"pokedex-backend/internal/pokeapi"
)

var validate = validator.New()

// MapList projects upstream list entries into list items, keeping order and
// length. The image link is built from the ID, unlike the detail view which
// takes it from the sprites.
func MapList(results []pokeapi.NamedResource, imageURL string) ([]model.PokemonListItem, error) {
	items := make([]model.PokemonListItem, 0, len(results))
	for i, entry := range results {
		if err := validate.Struct(entry); err != nil {
			return nil, fmt.Errorf("%w: results[%d]: %v", errs.ErrMalformedUpstream, i, err)
		}

		id, err := parse.ResourceID(*entry.URL)
		if err != nil {
			return nil, fmt.Errorf("results[%d]: %w", i, err)
		}

		items = append(items, model.PokemonListItem{
			ID:    id,
			Name:  *entry.Name,
			Image: fmt.Sprintf("%s/%d.png", imageURL, id),
		})
	}
	return items, nil
}

// MapDetail projects an upstream Pokémon into the detail view. Any missing
// required field fails the whole mapping; only the sprite URLs may be null.
func MapDetail(raw *pokeapi.Pokemon) (model.PokemonDetail, error) {
	if raw == nil {
		return model.PokemonDetail{}, fmt.Errorf("%w: empty pokemon payload", errs.ErrMalformedUpstream)
	}
	if err := validate.Struct(raw); err != nil {
		return model.PokemonDetail{}, fmt.Errorf("%w: %v", errs.ErrMalformedUpstream, err)
	}

	sprites := model.Sprites{
		FrontDefault: cloneString(raw.Sprites.FrontDefault),
		BackDefault:  cloneString(raw.Sprites.BackDefault),
	}

	return model.PokemonDetail{
		ID:        *raw.ID,
		Name:      *raw.Name,
		Image:     cloneString(raw.Sprites.FrontDefault),
		Sprites:   sprites,
		Abilities: mapAbilities(raw.Abilities),
		Moves:     mapMoves(raw.Moves),
		Stats:     mapStats(raw.Stats),
		Types:     mapTypes(raw.Types),
	}, nil
}

func mapAbilities(in []pokeapi.AbilitySlot) []model.Ability {
	out := make([]model.Ability, 0, len(in))
	for _, a := range in {
		out = append(out, model.Ability{
			IsHidden: *a.IsHidden,
			Slot:     *a.Slot,
			Ability:  mapResource(a.Ability),
		})
	}
	return out
}

func mapMoves(in []pokeapi.MoveSlot) []model.Move {
	out := make([]model.Move, 0, len(in))
	for _, m := range in {
		details := make([]model.VersionGroupDetail, 0, len(m.VersionGroupDetails))
		for _, d := range m.VersionGroupDetails {
			details = append(details, model.VersionGroupDetail{
				LevelLearnedAt:  *d.LevelLearnedAt,
				MoveLearnMethod: mapResource(d.MoveLearnMethod),
				VersionGroup:    mapResource(d.VersionGroup),
			})
		}
		out = append(out, model.Move{
			Move:                mapResource(m.Move),
			VersionGroupDetails: details,
		})
	}
	return out
}

func mapStats(in []pokeapi.StatSlot) []model.Stat {
	out := make([]model.Stat, 0, len(in))
	for _, s := range in {
		out = append(out, model.Stat{
			BaseStat: *s.BaseStat,
			Effort:   *s.Effort,
			Stat:     mapResource(s.Stat),
		})
	}
	return out
}

func mapTypes(in []pokeapi.TypeSlot) []model.Type {
	out := make([]model.Type, 0, len(in))
	for _, t := range in {
		out = append(out, model.Type{
			Slot: *t.Slot,
			Type: mapResource(t.Type),
		})
	}
	return out
}

// mapResource keeps name and url only.
func mapResource(r *pokeapi.NamedResource) model.NamedResource {
	return model.NamedResource{Name: *r.Name, URL: *r.URL}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
