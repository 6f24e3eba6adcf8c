package di

import (
	"fmt"

	"user-api-service/cmd/api/infrastructure"
	ginhandler "user-api-service/internal/adapter/gin/handler"
	"user-api-service/internal/config"
	"user-api-service/internal/usecase/user"
	"user-api-service/pkg/metrics"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Container holds all application dependencies.
type Container struct {
	Config        *config.Config
	Logger        *zap.Logger
	DB            *gorm.DB
	Collector     *metrics.Collector
	UserUC        user.Usecase
	UserHandler   *ginhandler.UserHandler
	SystemHandler *ginhandler.SystemHandler
}

// NewContainer creates and initializes all application dependencies.
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies;
	// a missing credential aborts startup here.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	collector := metrics.NewCollector()

	userUC := user.New(infrastructure.NewUserRepository(db, l), l)

	userHandler := ginhandler.NewUserHandler(userUC, l)
	systemHandler := ginhandler.NewSystemHandler(
		userUC,
		collector,
		config.RedactDSN(cfg.DB.DSN()),
		cfg.App.Env,
		l,
	)

	return &Container{
		Config:        cfg,
		Logger:        l,
		DB:            db,
		Collector:     collector,
		UserUC:        userUC,
		UserHandler:   userHandler,
		SystemHandler: systemHandler,
	}, nil
}

// Close closes all resources held by the container.
func (c *Container) Close() error {
	if c.DB == nil {
		return nil
	}
	if err := infrastructure.CloseDatabase(c.DB); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
