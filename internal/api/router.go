package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"pokedex-backend/config"
	"pokedex-backend/internal/mw"
)

// limiterIdleTTL is how long an idle client's rate bucket is kept.
const limiterIdleTTL = 10 * time.Minute

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg config.ServerConfig, pokemon PokemonService, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), mw.RequestID(), mw.Logger(logger))

	handler := NewHandler(pokemon, logger.Sugar())

	r.GET("/health", handler.Health)

	limiter := mw.NewIPRateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst, limiterIdleTTL)
	api := r.Group("/pokemon")
	api.Use(mw.RateLimiter(limiter))
	{
		// GET /pokemon?offset=&limit=
		api.GET("", handler.ListPokemon)

		// GET /pokemon/{id}
		api.GET("/:id", handler.GetPokemon)
	}

	return r
}
