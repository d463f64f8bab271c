// Package app builds the application context shared by the binaries: one
// Neo4j driver, the graph repository on top of it, and the metrics collector.
// It is constructed once at startup and closed on shutdown.
package app

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"redesocial/backend/internal/graph"
	"redesocial/backend/internal/metrics"
	"redesocial/backend/pkg/config"
	apperrors "redesocial/backend/pkg/errors"
	"redesocial/backend/pkg/logger"
)

// App owns the long-lived resources
type App struct {
	Config  *config.Config
	Logger  *zap.Logger
	Metrics *metrics.Collector

	// Network is the instrumented access layer handed to presentation layers
	Network graph.Network
	// Repository is the undecorated access layer, for schema setup and tooling
	Repository *graph.Repository

	driver neo4j.DriverWithContext
}

// New creates the driver, verifies that the store is reachable and wires the
// access layer. A store that cannot be reached yields ErrGraphConnectionFailed.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.Named("app")

	driver, err := neo4j.NewDriverWithContext(
		cfg.Neo4jURI,
		neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""),
		func(c *neo4j.Config) {
			if cfg.Neo4jMaxPoolSize > 0 {
				c.MaxConnectionPoolSize = cfg.Neo4jMaxPoolSize
			}
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, apperrors.NewGraphConnectionFailed(cfg.Neo4jURI, err)
	}

	repo := graph.NewRepository(driver, graph.Options{
		URI:      cfg.Neo4jURI,
		Database: cfg.Neo4jDatabase,
	})

	if cfg.Neo4jEnsureSchema {
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = driver.Close(ctx)
			return nil, err
		}
	}

	collector := metrics.NewCollector()

	log.Info("Connected to Neo4j",
		zap.String("uri", cfg.Neo4jURI),
		zap.String("database", cfg.Neo4jDatabase),
	)

	return &App{
		Config:     cfg,
		Logger:     log,
		Metrics:    collector,
		Network:    metrics.Instrument(repo, collector),
		Repository: repo,
		driver:     driver,
	}, nil
}

// Close releases the driver. It is safe to call more than once.
func (a *App) Close(ctx context.Context) error {
	if a.driver == nil {
		return nil
	}
	err := a.driver.Close(ctx)
	a.driver = nil
	if err != nil {
		return fmt.Errorf("failed to close Neo4j driver: %w", err)
	}
	a.Logger.Info("Neo4j driver closed")
	return nil
}
