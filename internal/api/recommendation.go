package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/ahara/backend/internal/models"
	"github.com/pageza/ahara/backend/internal/service"
	"github.com/pageza/ahara/backend/internal/types"
	"github.com/pageza/ahara/backend/internal/validation"
)

// RecommendationHandler exposes the recommendation lifecycle and ratings.
type RecommendationHandler struct {
	recs    service.IRecommendationService
	catalog service.ICatalogService
	limiter gin.HandlerFunc
}

// NewRecommendationHandler builds the handler. limiter guards generation and
// may be nil.
func NewRecommendationHandler(recs service.IRecommendationService, catalog service.ICatalogService, limiter gin.HandlerFunc) *RecommendationHandler {
	return &RecommendationHandler{recs: recs, catalog: catalog, limiter: limiter}
}

func (h *RecommendationHandler) RegisterRoutes(router *gin.RouterGroup) {
	recs := router.Group("/recommendations")
	{
		recs.GET("", h.Load)
		if h.limiter != nil {
			recs.POST("/generate", h.limiter, h.Generate)
		} else {
			recs.POST("/generate", h.Generate)
		}
		recs.PUT("/:id/rating", h.Rate)
	}
}

// Load returns the user's latest batch, generating one when none exists.
func (h *RecommendationHandler) Load(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	session, err := h.recs.Load(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.view(c, session))
}

// Generate replaces the session with a fresh batch. A user without a
// profile gets 200 with the no_profile outcome and nothing written.
func (h *RecommendationHandler) Generate(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	session, err := h.recs.Generate(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.view(c, session))
}

func (h *RecommendationHandler) Rate(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	recID, ok := pathID(c)
	if !ok {
		return
	}

	var req types.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request", "invalid request body")
		return
	}
	if req.Rating == nil {
		respondError(c, validation.NewError("rating", "required", "rating is required"))
		return
	}

	rec, err := h.recs.Rate(c.Request.Context(), userID, recID, *req.Rating)
	if err != nil {
		if isStoreFailure(err) {
			c.JSON(http.StatusServiceUnavailable, ErrorBody{Error: "store_unavailable", Message: service.NoticeRatingFailed})
			return
		}
		respondError(c, err)
		return
	}

	recs := []models.Recommendation{rec}
	h.catalog.ResolveImages(c.Request.Context(), recs)
	c.JSON(http.StatusOK, RatingResponse{Notice: service.NoticeRatingSaved, Recommendation: recs[0]})
}

func (h *RecommendationHandler) view(c *gin.Context, session service.Session) types.RecommendationsResponse {
	recs := session.Recommendations
	if recs == nil {
		recs = []models.Recommendation{}
	}
	h.catalog.ResolveImages(c.Request.Context(), recs)
	return types.RecommendationsResponse{
		State:           string(session.State),
		Outcome:         string(session.Outcome),
		Notice:          session.Notice,
		Recommendations: recs,
	}
}
