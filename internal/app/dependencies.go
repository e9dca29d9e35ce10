package app

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"newsletter.app/internal/adapters/database"
	"newsletter.app/internal/adapters/external"
	"newsletter.app/internal/adapters/infrastructure"
	"newsletter.app/internal/config"
	"newsletter.app/internal/ports"
	"newsletter.app/pkg/errors"
)

type DependencyContainer struct {
	config         *config.Config
	db             *gorm.DB
	sessionBackend external.SessionBackend
	metrics        *infrastructure.PrometheusMetricsCollector
	ports          *ports.ApplicationPorts
}

// NewDependencyContainer connects to PostgreSQL, migrates the schema and
// builds every port
func NewDependencyContainer(cfg *config.Config, logger ports.Logger) (*DependencyContainer, error) {
	db, err := openDatabase(cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	container, err := NewDependencyContainerWithDB(cfg, db, logger)
	if err != nil {
		closeDatabase(db, logger)
		return nil, err
	}
	return container, nil
}

// NewDependencyContainerWithDB builds the ports on top of an open database
func NewDependencyContainerWithDB(cfg *config.Config, db *gorm.DB, logger ports.Logger) (*DependencyContainer, error) {
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	container := &DependencyContainer{
		config: cfg,
		db:     db,
	}

	if err := container.initializePorts(logger); err != nil {
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func openDatabase(cfg config.DatabaseConfig, logger ports.Logger) (*gorm.DB, error) {
	logger.Info("Initializing database connection...",
		ports.F("host", cfg.Host),
		ports.F("database", cfg.Name))

	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.NewDatabaseError("failed to connect to database", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.NewDatabaseError("failed to get database handle", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxOpenConns)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectTimeout)*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, errors.NewDatabaseError("database is unreachable", err)
	}

	logger.Info("Database connection established successfully")
	return db, nil
}

func closeDatabase(db *gorm.DB, logger ports.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Warn("Error closing database", ports.F("error", err))
	}
}

func (c *DependencyContainer) initializePorts(logger ports.Logger) error {
	logger.Info("Initializing ports...")

	emailProvider, err := external.NewEmailProviderFactory().CreateEmailProvider(&c.config.Email)
	if err != nil {
		return fmt.Errorf("create email provider: %w", err)
	}

	sessionBackend, err := external.NewCacheProviderFactory().CreateCacheProvider(&c.config.Session)
	if err != nil {
		return fmt.Errorf("create session backend: %w", err)
	}
	c.sessionBackend = sessionBackend

	logger.Info("Session backend initialized",
		ports.F("type", c.config.Session.Store.String()),
		ports.F("emailProvider", c.config.Email.Provider.String()))

	c.metrics = infrastructure.NewPrometheusMetricsCollector()

	c.ports = &ports.ApplicationPorts{
		UserRepository:         database.NewUserRepositoryAdapter(c.db),
		SubscriptionRepository: database.NewSubscriptionRepositoryAdapter(c.db),
		TokenRepository:        database.NewTokenRepositoryAdapter(c.db),
		IdempotencyRepository:  database.NewIdempotencyRepositoryAdapter(c.db),
		Transactor:             database.NewGormTransactor(c.db),

		EmailProvider: emailProvider,

		PasswordHasher: infrastructure.NewArgon2PasswordHasher(infrastructure.DefaultArgon2Params, 0),

		ConfigProvider: infrastructure.NewConfigProviderAdapter(c.config),
		Logger:         logger,
		Metrics:        c.metrics,
		Database:       c.db,
	}

	logger.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// Cleanup releases the session backend and database connections
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	if closer, ok := c.sessionBackend.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			firstErr = err
		}
	}
	if c.db != nil {
		if sqlDB, err := c.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
