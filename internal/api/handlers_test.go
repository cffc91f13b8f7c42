package api

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/ahara/backend/internal/middleware"
	"github.com/pageza/ahara/backend/internal/mocks"
	"github.com/pageza/ahara/backend/internal/models"
	"github.com/pageza/ahara/backend/internal/service"
	"github.com/pageza/ahara/backend/internal/testhelpers"
	"github.com/pageza/ahara/backend/internal/types"
	"github.com/pageza/ahara/backend/internal/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// authedGroup returns a router whose /api/v1 group is authenticated as userID.
// A nil userID leaves the group unauthenticated.
func authedGroup(userID uuid.UUID) (*gin.Engine, *gin.RouterGroup) {
	r := gin.New()
	v1 := r.Group("/api/v1")
	if userID != uuid.Nil {
		v1.Use(func(c *gin.Context) {
			c.Set(middleware.UserIDKey, userID)
			c.Next()
		})
	}
	return r, v1
}

func do(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthCheck(t *testing.T) {
	r := gin.New()
	r.GET("/api/health", HealthCheck)

	w := do(r, http.MethodGet, "/api/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Backend running!"}`, w.Body.String())
}

func TestReady(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	r := gin.New()
	r.GET("/api/ready", NewHealthHandler(db, nil).Ready)

	w := do(r, http.MethodGet, "/api/ready", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ready":true`)
}

func TestRespondErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", validation.NewError("age", "required", "age is required"), http.StatusBadRequest, "validation_failed"},
		{"no profile", service.ErrNoProfile, http.StatusNotFound, "no_profile"},
		{"food", service.ErrFoodNotFound, http.StatusNotFound, "food_not_found"},
		{"unknown recommendation", service.ErrUnknownRecommendation, http.StatusNotFound, "unknown_recommendation"},
		{"superseded", service.ErrSuperseded, http.StatusConflict, "superseded"},
		{"store", fmt.Errorf("failed to list foods: %w", service.ErrStoreUnavailable), http.StatusServiceUnavailable, "store_unavailable"},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			respondError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decodeError(t, w).Error)
		})
	}
}

func TestUnauthenticatedRequest(t *testing.T) {
	r, v1 := authedGroup(uuid.Nil)
	NewProfileHandler(new(mocks.MockProfileService)).RegisterRoutes(v1)

	w := do(r, http.MethodGet, "/api/v1/profile", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPathIDRejectsMalformedID(t *testing.T) {
	r, v1 := authedGroup(uuid.New())
	catalog := new(mocks.MockCatalogService)
	NewFoodHandler(catalog).RegisterRoutes(v1)

	w := do(r, http.MethodGet, "/api/v1/foods/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_id", decodeError(t, w).Error)
	catalog.AssertNotCalled(t, "GetFood", mock.Anything, mock.Anything)
}

func TestFoodHandler(t *testing.T) {
	userID := uuid.New()

	t.Run("list passes filters", func(t *testing.T) {
		catalog := new(mocks.MockCatalogService)
		r, v1 := authedGroup(userID)
		NewFoodHandler(catalog).RegisterRoutes(v1)
		foods := []models.Food{testhelpers.NewTestFood("Moong Dal", "diabetes")}
		catalog.On("ListFoods", mock.Anything, types.FoodFilter{Cuisine: "north_indian", Benefit: "diabetes"}).Return(foods, nil)

		w := do(r, http.MethodGet, "/api/v1/foods?cuisine=north_indian&benefit=diabetes", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp FoodsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
		assert.Equal(t, "Moong Dal", resp.Foods[0].NameEnglish)
	})

	t.Run("get missing food", func(t *testing.T) {
		catalog := new(mocks.MockCatalogService)
		r, v1 := authedGroup(userID)
		NewFoodHandler(catalog).RegisterRoutes(v1)
		id := uuid.New()
		catalog.On("GetFood", mock.Anything, id).Return(nil, service.ErrFoodNotFound)

		w := do(r, http.MethodGet, "/api/v1/foods/"+id.String(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
