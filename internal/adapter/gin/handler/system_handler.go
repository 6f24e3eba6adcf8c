package handler

import (
	"net/http"
	"os"
	"time"

	"user-api-service/internal/usecase/user"
	"user-api-service/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SystemHandler handles the liveness, health, metrics, and demo
// catalog endpoints.
type SystemHandler struct {
	uc          user.Usecase
	collector   *metrics.Collector
	redactedDSN string
	apiEnv      string
	log         *zap.Logger
}

// NewSystemHandler creates a new SystemHandler. The DSN must already
// be redacted by the caller; it is echoed verbatim in /health.
func NewSystemHandler(uc user.Usecase, collector *metrics.Collector, redactedDSN, apiEnv string, log *zap.Logger) *SystemHandler {
	return &SystemHandler{
		uc:          uc,
		collector:   collector,
		redactedDSN: redactedDSN,
		apiEnv:      apiEnv,
		log:         log,
	}
}

// Collector exposes the metrics collector for middleware wiring.
func (h *SystemHandler) Collector() *metrics.Collector {
	return h.collector
}

// Product is one entry of the fixed demo catalog.
type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// The catalog is hardcoded; /products is not backed by storage.
var products = []Product{
	{ID: 1, Name: "Laptop", Price: 999.99},
	{ID: 2, Name: "Mouse", Price: 29.99},
	{ID: 3, Name: "Keyboard", Price: 79.99},
}

// Root handles GET /
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to API Deployment Demo",
		"status":  "healthy",
	})
}

// Health handles GET /health. The environment classification is best
// effort, based on orchestration signals present in the environment.
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.classifyEnvironment(),
		"database":    h.redactedDSN,
	})
}

func (h *SystemHandler) classifyEnvironment() string {
	if _, ok := os.LookupEnv("KUBERNETES_SERVICE_HOST"); ok {
		return "kubernetes"
	}
	if h.apiEnv != "" {
		return h.apiEnv
	}
	return "standalone"
}

// Metrics handles GET /metrics. Each scrape refreshes the users_total
// gauge by counting rows before emitting the exposition; the count is
// deterministic for a given table state.
func (h *SystemHandler) Metrics(c *gin.Context) {
	count, err := h.uc.CountUsers(c.Request.Context())
	if err != nil {
		h.log.Warn("failed to refresh user count gauge", zap.Error(err))
	} else {
		h.collector.SetUsersTotal(count)
	}

	promhttp.HandlerFor(h.collector.Registry(), promhttp.HandlerOpts{}).
		ServeHTTP(c.Writer, c.Request)
}

// Products handles GET /products. Always returns the same three items
// regardless of database state.
func (h *SystemHandler) Products(c *gin.Context) {
	c.JSON(http.StatusOK, products)
}
