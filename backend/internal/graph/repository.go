package graph

import (
	"context"
	"errors"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	apperrors "redesocial/backend/pkg/errors"
	"redesocial/backend/pkg/logger"
)

// Options selects where the repository points
type Options struct {
	// URI is only used to label connection errors
	URI string
	// Database is the Neo4j database name; empty selects the server default
	Database string
}

// Repository handles all Neo4j database operations for people and friendships.
// It holds no state besides the driver: every read goes to the store.
type Repository struct {
	driver neo4j.DriverWithContext
	opts   Options
	logger *zap.Logger
}

var _ Network = (*Repository)(nil)

// NewRepository creates a new graph repository
func NewRepository(driver neo4j.DriverWithContext, opts Options) *Repository {
	return &Repository{
		driver: driver,
		opts:   opts,
		logger: logger.Named("graph"),
	}
}

// Close closes the Neo4j driver connection
func (r *Repository) Close(ctx context.Context) error {
	return r.driver.Close(ctx)
}

func (r *Repository) session(ctx context.Context, mode neo4j.AccessMode) neo4j.SessionWithContext {
	return r.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   mode,
		DatabaseName: r.opts.Database,
	})
}

// read runs one query in its own session and returns every record. The
// result is fully consumed before the session closes.
func (r *Repository) read(ctx context.Context, op, query string, params map[string]any) ([]*neo4j.Record, error) {
	session := r.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	result, err := session.Run(ctx, query, params)
	if err != nil {
		return nil, r.wrapError(op, err)
	}
	records, err := result.Collect(ctx)
	if err != nil {
		return nil, r.wrapError(op, err)
	}
	return records, nil
}

// write runs one query in its own session and returns the update counters
// together with any records the query returned.
func (r *Repository) write(ctx context.Context, op, query string, params map[string]any) ([]*neo4j.Record, neo4j.Counters, error) {
	session := r.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	result, err := session.Run(ctx, query, params)
	if err != nil {
		return nil, nil, r.wrapError(op, err)
	}
	records, err := result.Collect(ctx)
	if err != nil {
		return nil, nil, r.wrapError(op, err)
	}
	summary, err := result.Consume(ctx)
	if err != nil {
		return nil, nil, r.wrapError(op, err)
	}
	return records, summary.Counters(), nil
}

// wrapError sorts driver failures into connectivity and query errors.
func (r *Repository) wrapError(op string, err error) error {
	if isConnectivityError(err) {
		return apperrors.NewGraphConnectionFailed(r.opts.URI, err)
	}
	return apperrors.NewGraphQueryFailed(op, err)
}

// isConnectivityError reports whether the driver could not reach or log into
// the server.
func isConnectivityError(err error) bool {
	var connErr *neo4j.ConnectivityError
	if errors.As(err, &connErr) {
		return true
	}
	var neoErr *neo4j.Neo4jError
	if errors.As(err, &neoErr) {
		return strings.HasPrefix(neoErr.Code, "Neo.ClientError.Security.")
	}
	return false
}

// EnsureSchema creates the id uniqueness constraint and the name index used
// by the lookups. Both statements are idempotent.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	session := r.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	statements := []string{
		"CREATE CONSTRAINT person_id_unique IF NOT EXISTS FOR (p:Person) REQUIRE p.id IS UNIQUE",
		"CREATE INDEX person_name IF NOT EXISTS FOR (p:Person) ON (p.name)",
	}
	for _, stmt := range statements {
		result, err := session.Run(ctx, stmt, nil)
		if err != nil {
			return r.wrapError("ensure_schema", err)
		}
		if _, err := result.Consume(ctx); err != nil {
			return r.wrapError("ensure_schema", err)
		}
	}

	r.logger.Info("Schema ensured")
	return nil
}

// Stats counts people and friendship edges
func (r *Repository) Stats(ctx context.Context) (*Stats, error) {
	query := `
		OPTIONAL MATCH (p:Person)
		WITH count(p) AS people
		OPTIONAL MATCH (:Person)-[f:FRIENDS_WITH]->(:Person)
		RETURN people, count(f) AS friendships
	`

	records, err := r.read(ctx, "stats", query, nil)
	if err != nil {
		return nil, err
	}

	stats := &Stats{}
	if len(records) > 0 {
		stats.People = getInt64FromRecord(records[0], "people")
		stats.Friendships = getInt64FromRecord(records[0], "friendships")
	}
	return stats, nil
}
