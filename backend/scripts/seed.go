package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"redesocial/backend/internal/graph"
	"redesocial/backend/pkg/config"
	"redesocial/backend/pkg/logger"
)

func main() {
	reset := flag.Bool("reset", false, "Delete every person and friendship before seeding")
	sample := flag.Bool("sample", true, "Create the sample people Ana and Bia as friends")
	flag.Parse()

	// Initialize logger
	if err := logger.Init("development"); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting database seeding...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize Neo4j driver
	driver, err := neo4j.NewDriverWithContext(
		cfg.Neo4jURI,
		neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""),
	)
	if err != nil {
		log.Fatal("Failed to create Neo4j driver", zap.Error(err))
	}
	defer driver.Close(context.Background())

	// Verify connection
	ctx := context.Background()
	if err := driver.VerifyConnectivity(ctx); err != nil {
		log.Fatal("Failed to verify Neo4j connectivity", zap.Error(err))
	}

	repo := graph.NewRepository(driver, graph.Options{URI: cfg.Neo4jURI, Database: cfg.Neo4jDatabase})

	if *reset {
		log.Info("Removing existing people...")
		removed, err := resetPeople(ctx, driver, cfg.Neo4jDatabase)
		if err != nil {
			log.Fatal("Failed to reset database", zap.Error(err))
		}
		log.Info("Database reset", zap.Int("people_removed", removed))
	}

	log.Info("Creating constraints and indexes...")
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to create schema", zap.Error(err))
	}

	if *sample {
		if err := seedSample(ctx, repo, log); err != nil {
			log.Fatal("Failed to seed sample data", zap.Error(err))
		}
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		log.Fatal("Failed to read stats", zap.Error(err))
	}
	log.Info("Seeding complete",
		zap.Int64("people", stats.People),
		zap.Int64("friendships", stats.Friendships),
	)
}

func resetPeople(ctx context.Context, driver neo4j.DriverWithContext, database string) (int, error) {
	session := driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: database,
	})
	defer session.Close(ctx)

	result, err := session.Run(ctx, "MATCH (p:Person) DETACH DELETE p", nil)
	if err != nil {
		return 0, err
	}
	summary, err := result.Consume(ctx)
	if err != nil {
		return 0, err
	}
	return summary.Counters().NodesDeleted(), nil
}

func seedSample(ctx context.Context, repo *graph.Repository, log *zap.Logger) error {
	ana, err := repo.CreatePerson(ctx, graph.PersonInput{Name: "Ana", Age: 30, Location: "Recife"})
	if err != nil {
		return err
	}
	bia, err := repo.CreatePerson(ctx, graph.PersonInput{Name: "Bia", Age: 25, Location: "Olinda"})
	if err != nil {
		return err
	}

	created, err := repo.CreateFriendship(ctx, ana.ID, bia.ID)
	if err != nil {
		return err
	}

	log.Info("Sample people created",
		zap.String("ana_id", ana.ID),
		zap.String("bia_id", bia.ID),
		zap.Bool("friendship_created", created),
	)
	return nil
}
