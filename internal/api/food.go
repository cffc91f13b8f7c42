package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/ahara/backend/internal/service"
	"github.com/pageza/ahara/backend/internal/types"
)

// FoodHandler serves catalog browsing.
type FoodHandler struct {
	catalog service.ICatalogService
}

func NewFoodHandler(catalog service.ICatalogService) *FoodHandler {
	return &FoodHandler{catalog: catalog}
}

func (h *FoodHandler) RegisterRoutes(router *gin.RouterGroup) {
	foods := router.Group("/foods")
	{
		foods.GET("", h.ListFoods)
		foods.GET("/:id", h.GetFood)
	}
}

// ListFoods returns the catalog, optionally filtered by ?cuisine= and ?benefit=.
func (h *FoodHandler) ListFoods(c *gin.Context) {
	var filter types.FoodFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		badRequest(c, "invalid_request", "invalid query")
		return
	}

	foods, err := h.catalog.ListFoods(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, FoodsResponse{Foods: foods, Count: len(foods)})
}

func (h *FoodHandler) GetFood(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	food, err := h.catalog.GetFood(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, food)
}
