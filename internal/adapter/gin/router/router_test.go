package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"user-api-service/internal/adapter/db/postgres"
	"user-api-service/internal/adapter/gin/handler"
	"user-api-service/internal/usecase/user"
	"user-api-service/pkg/metrics"
)

// setupAPI wires the full stack against an in-memory database: real
// handlers, real usecase, real repository.
func setupAPI(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	log := zaptest.NewLogger(t)
	uc := user.New(postgres.NewUserRepoPG(db, log), log)
	collector := metrics.NewCollector()

	userHandler := handler.NewUserHandler(uc, log)
	systemHandler := handler.NewSystemHandler(uc, collector, "postgresql://postgres:****@db:5432/api_db", "", log)

	return SetupRouter(userHandler, systemHandler, log)
}

func postUser(t *testing.T, r *gin.Engine, name, email string) *httptest.ResponseRecorder {
	body := fmt.Sprintf(`{"name":%q,"email":%q}`, name, email)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/users", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestUserLifecycle(t *testing.T) {
	r := setupAPI(t)

	// Create returns the full record with server-assigned fields.
	w := postUser(t, r, "Ann", "ann@x.com")
	require.Equal(t, http.StatusOK, w.Code)

	var created handler.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Ann", created.Name)
	assert.Equal(t, "ann@x.com", created.Email)
	assert.False(t, created.CreatedAt.IsZero())

	// Repeating the same POST conflicts.
	w = postUser(t, r, "Ann", "ann@x.com")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email already registered")

	// Ids keep increasing.
	w = postUser(t, r, "Bob", "bob@x.com")
	require.Equal(t, http.StatusOK, w.Code)
	var second handler.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.Greater(t, second.ID, created.ID)

	// Get, delete, get again.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/users/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("DELETE", "/users/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "User deleted successfully")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/users/1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("DELETE", "/users/1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateUserAcceptsUnconstrainedStrings(t *testing.T) {
	r := setupAPI(t)

	// Email is any string; no format check rejects the payload.
	w := postUser(t, r, "Ann", "not-an-email")
	require.Equal(t, http.StatusOK, w.Code)

	var created handler.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "not-an-email", created.Email)

	// Name length is unbounded.
	longName := strings.Repeat("n", 150)
	w = postUser(t, r, longName, "long@x.com")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, longName, created.Name)
}

func TestNonPositiveIDsReportNotFound(t *testing.T) {
	r := setupAPI(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/users/0", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("DELETE", "/users/0", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/users/-1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaginationDisjointPages(t *testing.T) {
	r := setupAPI(t)

	for i := 1; i <= 3; i++ {
		w := postUser(t, r, fmt.Sprintf("User %d", i), fmt.Sprintf("user%d@x.com", i))
		require.Equal(t, http.StatusOK, w.Code)
	}

	page := func(skip, limit int) []handler.UserResponse {
		w := httptest.NewRecorder()
		url := fmt.Sprintf("/users?skip=%d&limit=%d", skip, limit)
		r.ServeHTTP(w, httptest.NewRequest("GET", url, nil))
		require.Equal(t, http.StatusOK, w.Code)

		var users []handler.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
		return users
	}

	first := page(0, 1)
	second := page(1, 1)
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.NotEqual(t, first[0].ID, second[0].ID)

	all := page(0, 100)
	assert.Len(t, all, 3)
}

func TestProductsIgnoreDatabaseState(t *testing.T) {
	r := setupAPI(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/products", nil))
	require.Equal(t, http.StatusOK, w.Code)
	before := w.Body.String()

	postUser(t, r, "Ann", "ann@x.com")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/products", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, before, w.Body.String())

	var items []handler.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 3)
}

func TestMetricsEndpoint(t *testing.T) {
	r := setupAPI(t)

	postUser(t, r, "Ann", "ann@x.com")
	postUser(t, r, "Bob", "bob@x.com")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	// Gauge refreshed from the table on scrape.
	assert.Contains(t, body, "users_total 2")
	// Counter carries method, endpoint, and status labels, recorded at
	// the request boundary for every endpoint.
	assert.Contains(t, body, `http_requests_total{endpoint="/users",method="POST",status="200"} 2`)
	assert.Contains(t, body, "http_request_duration_seconds_bucket")
}

func TestRootAndHealth(t *testing.T) {
	r := setupAPI(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome to API Deployment Demo")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "supersecret")
	assert.Contains(t, w.Body.String(), "****")
}
