package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pokedex-backend/internal/errs"
	"pokedex-backend/internal/mw"
)

// TotalCountHeader carries the upstream total on list responses.
const TotalCountHeader = "X-Total-Count"

type listPokemonQuery struct {
	Offset int `form:"offset,default=0" binding:"min=0"`
	Limit  int `form:"limit,default=20" binding:"min=1"`
}

// ListPokemon handles the GET /pokemon request.
func (h *Handler) ListPokemon(c *gin.Context) {
	var query listPokemonQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.respondError(c, errs.NewBadRequestError("offset must be an integer >= 0 and limit an integer >= 1"))
		return
	}

	list, err := h.pokemon.List(c.Request.Context(), query.Offset, query.Limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header(TotalCountHeader, strconv.Itoa(list.Total))
	c.JSON(http.StatusOK, list.Items)
}

// GetPokemon handles the GET /pokemon/{id} request.
func (h *Handler) GetPokemon(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		h.respondError(c, errs.NewBadRequestError("Invalid Pokemon ID"))
		return
	}

	detail, err := h.pokemon.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Health handles the GET /health request. It never contacts the upstream.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	httpErr := errs.FromError(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.sugar.Errorw("Request failed", "path", c.Request.URL.Path, mw.RequestIDKey, mw.GetRequestID(c), "error", err)
	} else {
		h.sugar.Debugw("Request rejected", "path", c.Request.URL.Path, mw.RequestIDKey, mw.GetRequestID(c), "error", err)
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(httpErr.Status, httpErr)
}
