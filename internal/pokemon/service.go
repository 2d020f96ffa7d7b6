package pokemon

import (
	"context"
	"fmt"

	"pokedex-backend/internal/errs"
	"pokedex-backend/internal/model"
	"pokedex-backend/internal/pokeapi"
)

// Fetcher retrieves upstream payloads. *pokeapi.Client implements it.
type Fetcher interface {
	FetchList(ctx context.Context, offset, limit int) (*pokeapi.ListResponse, error)
	FetchByID(ctx context.Context, id int) (*pokeapi.Pokemon, error)
}

// Service answers list and detail queries with one upstream call each.
type Service struct {
	fetcher  Fetcher
	imageURL string
}

// NewService creates a Service whose list images are rooted at imageURL.
func NewService(fetcher Fetcher, imageURL string) *Service {
	return &Service{
		fetcher:  fetcher,
		imageURL: imageURL,
	}
}

// List returns one page of list items together with the upstream total.
func (s *Service) List(ctx context.Context, offset, limit int) (*model.PokemonList, error) {
	resp, err := s.fetcher.FetchList(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	if err := validate.Struct(resp); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrMalformedUpstream, err)
	}

	items, err := MapList(resp.Results, s.imageURL)
	if err != nil {
		return nil, err
	}

	return &model.PokemonList{Total: resp.Count, Items: items}, nil
}

// Get returns the detail view of the Pokémon with the given ID.
func (s *Service) Get(ctx context.Context, id int) (*model.PokemonDetail, error) {
	raw, err := s.fetcher.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail, err := MapDetail(raw)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}
