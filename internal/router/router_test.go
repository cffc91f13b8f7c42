package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/ahara/backend/config"
	"github.com/pageza/ahara/backend/internal/logger"
	"github.com/pageza/ahara/backend/internal/mocks"
	"github.com/pageza/ahara/backend/internal/models"
	"github.com/pageza/ahara/backend/internal/service"
	"github.com/pageza/ahara/backend/internal/testhelpers"
	"github.com/pageza/ahara/backend/internal/types"
)

type fixture struct {
	auth    *mocks.MockAuthService
	recs    *mocks.MockRecommendationService
	catalog *mocks.MockCatalogService
	router  *gin.Engine
}

func setup(t *testing.T) *fixture {
	gin.SetMode(gin.TestMode)
	f := &fixture{
		auth:    new(mocks.MockAuthService),
		recs:    new(mocks.MockRecommendationService),
		catalog: new(mocks.MockCatalogService),
	}
	cfg := &config.Config{Server: config.ServerConfig{CORSOrigins: []string{"http://localhost:5173"}}}
	f.router = SetupRouter(Dependencies{
		Config:          cfg,
		Logger:          logger.NewNop(),
		DB:              testhelpers.SetupSQLite(t),
		Auth:            f.auth,
		Profiles:        new(mocks.MockProfileService),
		Catalog:         f.catalog,
		Recommendations: f.recs,
	})
	return f
}

func serve(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPublicRoutes(t *testing.T) {
	f := setup(t)

	for _, path := range []string{"/api/health", "/api/ready", "/metrics"} {
		w := serve(f.router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
	assert.Equal(t, http.StatusNotFound, serve(f.router, http.MethodGet, "/nowhere", "").Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	f := setup(t)

	for _, path := range []string{"/api/v1/profile", "/api/v1/foods", "/api/v1/recommendations"} {
		w := serve(f.router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestAuthenticatedRecommendationRoute(t *testing.T) {
	f := setup(t)
	userID := uuid.New()
	f.auth.On("ValidateToken", "token").Return(&types.TokenClaims{UserID: userID}, nil)
	f.recs.On("Load", mock.Anything, userID).Return(service.Session{
		UserID:          userID,
		State:           service.StateEmpty,
		Outcome:         service.OutcomeEmptyCatalog,
		Recommendations: []models.Recommendation{},
	}, nil)
	f.catalog.On("ResolveImages", mock.Anything, mock.Anything).Return()

	w := serve(f.router, http.MethodGet, "/api/v1/recommendations", "token")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"empty_catalog"`)
}
