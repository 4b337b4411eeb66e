package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/portfolio-backend/database"
	"github.com/portfolio-backend/lib/uploads"
	"github.com/portfolio-backend/models"
	"github.com/portfolio-backend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter wires the full v1 surface against an in-memory database
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db
	t.Cleanup(func() { database.DB = nil })

	gin.SetMode(gin.TestMode)
	router := gin.New()
	manager := uploads.NewManager(t.TempDir(), "/storage")
	RegisterRoutes(router.Group("/api/v1"), manager)
	return router
}

func seedRouterAdmin(t *testing.T) {
	t.Helper()
	hashed, err := utils.HashPassword("admin-password")
	require.NoError(t, err)
	require.NoError(t, database.DB.Create(&models.User{
		Name:     "admin",
		Email:    "admin@example.com",
		Password: hashed,
	}).Error)
}

func doJSON(router *gin.Engine, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(router, http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestContactEndpoint(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(router, http.MethodPost, "/api/v1/public/contact",
		`{"name":"Visitor","email":"v@example.com","subject":"Hi","message":"Hello"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Status string         `json:"status"`
		Data   models.Message `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "Visitor", body.Data.Name)
	assert.False(t, body.Data.IsRead)
}

func TestContactEndpointValidation(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(router, http.MethodPost, "/api/v1/public/contact",
		`{"name":"Visitor","email":"not-an-email","subject":"Hi","message":"Hello"}`, nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Status string            `json:"status"`
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	assert.Contains(t, body.Errors, "email")
}

func TestPublicProjectNotFound(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(router, http.MethodGet, "/api/v1/public/projects/no-such-slug", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboardRequiresAuth(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(router, http.MethodGet, "/api/v1/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(router, http.MethodGet, "/api/v1/dashboard", "", map[string]string{
		"Authorization": "Bearer not-a-token",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginAndProtectedAccess(t *testing.T) {
	router := setupRouter(t)
	seedRouterAdmin(t)

	rec := doJSON(router, http.MethodPost, "/api/v1/auth/login",
		`{"email":"admin@example.com","password":"admin-password"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.Token)

	auth := map[string]string{"Authorization": "Bearer " + body.Data.Token}

	rec = doJSON(router, http.MethodGet, "/api/v1/dashboard", "", auth)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(router, http.MethodGet, "/api/v1/auth/me", "", auth)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin@example.com")
	assert.NotContains(t, rec.Body.String(), "admin-password")
}

func TestLoginBadCredentials(t *testing.T) {
	router := setupRouter(t)
	seedRouterAdmin(t)

	rec := doJSON(router, http.MethodPost, "/api/v1/auth/login",
		`{"email":"admin@example.com","password":"wrong"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	router := setupRouter(t)

	for _, target := range []string{
		"/api/v1/admin/projects",
		"/api/v1/admin/messages",
		"/api/v1/admin/settings",
	} {
		rec := doJSON(router, http.MethodGet, target, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}
