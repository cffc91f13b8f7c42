package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/ahara/backend/internal/service"
	"github.com/pageza/ahara/backend/internal/validation"
)

// respondError writes the JSON error body matching err.
func respondError(c *gin.Context, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorBody{Error: "validation_failed", Message: verr.Error(), Fields: verr.Fields})
	case errors.Is(err, service.ErrNoProfile):
		c.JSON(http.StatusNotFound, ErrorBody{Error: "no_profile", Message: "no health profile saved for this user"})
	case errors.Is(err, service.ErrFoodNotFound):
		c.JSON(http.StatusNotFound, ErrorBody{Error: "food_not_found", Message: err.Error()})
	case errors.Is(err, service.ErrUnknownRecommendation):
		c.JSON(http.StatusNotFound, ErrorBody{Error: "unknown_recommendation", Message: err.Error()})
	case errors.Is(err, service.ErrSuperseded):
		c.JSON(http.StatusConflict, ErrorBody{Error: "superseded", Message: err.Error()})
	case errors.Is(err, service.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, ErrorBody{Error: "store_unavailable", Message: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorBody{Error: "internal_error", Message: "Internal Server Error"})
	}
}

func badRequest(c *gin.Context, code, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: code, Message: message})
}

func isStoreFailure(err error) bool {
	return errors.Is(err, service.ErrStoreUnavailable)
}
