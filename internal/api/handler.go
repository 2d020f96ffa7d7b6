package api

import (
	"context"

	"go.uber.org/zap"

	"pokedex-backend/internal/model"
)

// PokemonService answers the list and detail queries. *pokemon.Service
// implements it.
type PokemonService interface {
	List(ctx context.Context, offset, limit int) (*model.PokemonList, error)
	Get(ctx context.Context, id int) (*model.PokemonDetail, error)
}

// Handler holds shared dependencies for API handlers.
type Handler struct {
	pokemon PokemonService
	sugar   *zap.SugaredLogger
}

// NewHandler creates a new API handler.
func NewHandler(pokemon PokemonService, sugar *zap.SugaredLogger) *Handler {
	return &Handler{
		pokemon: pokemon,
		sugar:   sugar,
	}
}
