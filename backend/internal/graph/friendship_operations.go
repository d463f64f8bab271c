package graph

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ============================================================================
// Friendship Operations
// ============================================================================

// CreateFriendship links two existing people. It matches both ids first and
// only then merges the edge, so an unknown id, a self-link, or an edge that
// already exists in either direction creates nothing and returns false.
func (r *Repository) CreateFriendship(ctx context.Context, personID, friendID string) (bool, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	query := `
		MATCH (a:Person {id: $personID})
		MATCH (b:Person {id: $friendID})
		WHERE a <> b
		MERGE (a)-[f:FRIENDS_WITH]-(b)
		ON CREATE SET
			f.id = $friendshipID,
			f.created_at = datetime($now)
	`

	_, counters, err := r.write(ctx, "create_friendship", query, map[string]any{
		"personID":     personID,
		"friendID":     friendID,
		"friendshipID": uuid.New().String(),
		"now":          now,
	})
	if err != nil {
		return false, err
	}

	created := counters.RelationshipsCreated() > 0
	if created {
		r.logger.Info("Friendship created",
			zap.String("person_id", personID),
			zap.String("friend_id", friendID),
		)
	} else {
		r.logger.Debug("Friendship not created",
			zap.String("person_id", personID),
			zap.String("friend_id", friendID),
		)
	}
	return created, nil
}

// FriendsOf returns everyone linked to the person by FRIENDS_WITH in either
// direction. An unknown id yields an empty slice.
func (r *Repository) FriendsOf(ctx context.Context, personID string) ([]Person, error) {
	query := `
		MATCH (:Person {id: $personID})-[:FRIENDS_WITH]-(p:Person)
		RETURN DISTINCT ` + personProjection

	records, err := r.read(ctx, "friends_of", query, map[string]any{
		"personID": personID,
	})
	if err != nil {
		return nil, err
	}
	return peopleFromRecords(records), nil
}

// Friendships returns the stored edges touching a person, in their stored
// direction.
func (r *Repository) Friendships(ctx context.Context, personID string) ([]Friendship, error) {
	query := `
		MATCH (a:Person)-[f:FRIENDS_WITH]->(b:Person)
		WHERE a.id = $personID OR b.id = $personID
		RETURN f.id AS id, a.id AS from_id, b.id AS to_id, f.created_at AS created_at
	`

	records, err := r.read(ctx, "friendships", query, map[string]any{
		"personID": personID,
	})
	if err != nil {
		return nil, err
	}

	friendships := make([]Friendship, 0, len(records))
	for _, record := range records {
		friendships = append(friendships, Friendship{
			ID:        getStringFromRecord(record, "id"),
			FromID:    getStringFromRecord(record, "from_id"),
			ToID:      getStringFromRecord(record, "to_id"),
			CreatedAt: getTimeFromRecord(record, "created_at"),
		})
	}
	return friendships, nil
}
