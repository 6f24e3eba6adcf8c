package router

import (
	"user-api-service/internal/adapter/gin/handler"
	"user-api-service/internal/adapter/gin/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter configures and returns a Gin router with all routes and
// middleware. Instrumentation lives in one request-boundary middleware
// so every endpoint is counted consistently.
func SetupRouter(
	userHandler *handler.UserHandler,
	systemHandler *handler.SystemHandler,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.Metrics(systemHandler.Collector()))

	r.GET("/", systemHandler.Root)
	r.GET("/health", systemHandler.Health)
	r.GET("/metrics", systemHandler.Metrics)
	r.GET("/products", systemHandler.Products)

	users := r.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	return r
}
