package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/estuaire/backend/internal/domain/identity"
	"github.com/estuaire/backend/internal/infrastructure/auth"
	"github.com/estuaire/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *auth.JWTService {
	t.Helper()
	return auth.NewJWTService(config.JWTConfig{
		Secret:          "test-secret-for-middleware-tests-0123456789",
		TokenExpiration: time.Hour,
		Issuer:          "estuaire-test",
	})
}

func protectedEngine(jwtService *auth.JWTService) *gin.Engine {
	engine := gin.New()
	engine.Use(JWTAuthMiddleware(jwtService))
	engine.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": GetJWTUserID(c),
			"role":    GetJWTRole(c),
		})
	})
	return engine
}

func TestJWTAuthMiddlewareValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := newTestJWTService(t)
	engine := protectedEngine(jwtService)

	userID := uuid.New()
	token, _, err := jwtService.Issue(userID, "vendor", "vendor@example.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
	assert.Contains(t, w.Body.String(), "vendor")
}

func TestJWTAuthMiddlewareMissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := protectedEngine(newTestJWTService(t))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_TOKEN_INVALID")
}

func TestJWTAuthMiddlewareSkipPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := newTestJWTService(t)

	engine := gin.New()
	engine.Use(JWTAuthMiddlewareWithConfig(JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths:  []string{"/public"},
	}))
	engine.GET("/public", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := newTestJWTService(t)

	engine := gin.New()
	engine.Use(JWTAuthMiddleware(jwtService))
	engine.POST("/products", RequireRole(identity.RoleVendor), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	customerToken, _, err := jwtService.Issue(uuid.New(), "customer", "buyer@example.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	req.Header.Set("Authorization", "Bearer "+customerToken)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_FORBIDDEN")

	vendorToken, _, err := jwtService.Issue(uuid.New(), "vendor", "seller@example.com")
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/products", nil)
	req.Header.Set("Authorization", "Bearer "+vendorToken)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}
