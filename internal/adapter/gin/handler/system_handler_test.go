package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"user-api-service/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func setupSystemTest(t *testing.T, redactedDSN, apiEnv string) (*gin.Engine, *SystemHandler, *MockUserUsecase) {
	gin.SetMode(gin.TestMode)
	mockUsecase := new(MockUserUsecase)
	h := NewSystemHandler(mockUsecase, metrics.NewCollector(), redactedDSN, apiEnv, zaptest.NewLogger(t))

	r := gin.New()
	return r, h, mockUsecase
}

// clearKubernetesEnv makes the test deterministic regardless of where
// it runs; t.Setenv registers the restore.
func clearKubernetesEnv(t *testing.T) {
	t.Setenv("KUBERNETES_SERVICE_HOST", "")
	os.Unsetenv("KUBERNETES_SERVICE_HOST")
}

func TestRoot(t *testing.T) {
	r, h, _ := setupSystemTest(t, "", "")
	r.GET("/", h.Root)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome to API Deployment Demo")
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestHealth(t *testing.T) {
	t.Run("standalone with redacted dsn", func(t *testing.T) {
		clearKubernetesEnv(t)

		r, h, _ := setupSystemTest(t, "postgresql://postgres:****@db:5432/api_db", "")
		r.GET("/health", h.Health)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "standalone", body["environment"])
		assert.NotEmpty(t, body["timestamp"])
		assert.Equal(t, "postgresql://postgres:****@db:5432/api_db", body["database"])
	})

	t.Run("api env label", func(t *testing.T) {
		clearKubernetesEnv(t)

		r, h, _ := setupSystemTest(t, "", "staging")
		r.GET("/health", h.Health)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "staging", body["environment"])
	})

	t.Run("kubernetes wins", func(t *testing.T) {
		t.Setenv("KUBERNETES_SERVICE_HOST", "10.96.0.1")

		r, h, _ := setupSystemTest(t, "", "staging")
		r.GET("/health", h.Health)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "kubernetes", body["environment"])
	})
}

func TestMetrics(t *testing.T) {
	t.Run("refreshes user gauge on scrape", func(t *testing.T) {
		r, h, mockUsecase := setupSystemTest(t, "", "")
		r.GET("/metrics", h.Metrics)

		mockUsecase.On("CountUsers", mock.Anything).Return(int64(7), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "users_total 7")
		mockUsecase.AssertExpectations(t)
	})

	t.Run("count failure still serves exposition", func(t *testing.T) {
		r, h, mockUsecase := setupSystemTest(t, "", "")
		r.GET("/metrics", h.Metrics)

		mockUsecase.On("CountUsers", mock.Anything).Return(int64(0), assert.AnError)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestProducts(t *testing.T) {
	r, h, _ := setupSystemTest(t, "", "")
	r.GET("/products", h.Products)

	var bodies []string
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/products", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		var items []Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
		assert.Len(t, items, 3)
		bodies = append(bodies, w.Body.String())
	}

	// Fixed catalog: identical on every request.
	assert.Equal(t, bodies[0], bodies[1])
}
