package graph

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ============================================================================
// Person Operations
// ============================================================================

// CreatePerson inserts one Person node with a freshly generated id. There is
// no duplicate check: identical inputs produce distinct people.
func (r *Repository) CreatePerson(ctx context.Context, input PersonInput) (*Person, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	input = input.Normalize()

	personID := uuid.New().String()
	now := time.Now().UTC().Format(time.RFC3339Nano)

	query := `
		CREATE (p:Person {
			id: $personID,
			name: $name,
			age: $age,
			location: $location,
			created_at: datetime($now)
		})
		RETURN ` + personProjection

	records, _, err := r.write(ctx, "create_person", query, map[string]any{
		"personID": personID,
		"name":     input.Name,
		"age":      int64(input.Age),
		"location": input.Location,
		"now":      now,
	})
	if err != nil {
		return nil, err
	}

	person := Person{ID: personID, Name: input.Name, Age: input.Age, Location: input.Location}
	if len(records) > 0 {
		person = personFromRecord(records[0])
	}

	r.logger.Info("Person created",
		zap.String("person_id", person.ID),
		zap.String("name", person.Name),
	)
	return &person, nil
}

// ListPeople returns every Person. The order is whatever the store yields.
func (r *Repository) ListPeople(ctx context.Context) ([]Person, error) {
	query := `
		MATCH (p:Person)
		RETURN ` + personProjection

	records, err := r.read(ctx, "list_people", query, nil)
	if err != nil {
		return nil, err
	}
	return peopleFromRecords(records), nil
}

// FindPerson returns all people whose name matches exactly
func (r *Repository) FindPerson(ctx context.Context, name string) ([]Person, error) {
	query := `
		MATCH (p:Person {name: $name})
		RETURN ` + personProjection

	records, err := r.read(ctx, "find_person", query, map[string]any{
		"name": name,
	})
	if err != nil {
		return nil, err
	}
	return peopleFromRecords(records), nil
}

// GetPerson looks a person up by id
func (r *Repository) GetPerson(ctx context.Context, personID string) (*Person, error) {
	query := `
		MATCH (p:Person {id: $personID})
		RETURN ` + personProjection + `
		LIMIT 1`

	records, err := r.read(ctx, "get_person", query, map[string]any{
		"personID": personID,
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrPersonNotFound{PersonID: personID}
	}

	person := personFromRecord(records[0])
	return &person, nil
}

// DeletePerson removes the person and every incident friendship in one
// statement. It reports false when no person had that id.
func (r *Repository) DeletePerson(ctx context.Context, personID string) (bool, error) {
	query := `
		MATCH (p:Person {id: $personID})
		DETACH DELETE p
	`

	_, counters, err := r.write(ctx, "delete_person", query, map[string]any{
		"personID": personID,
	})
	if err != nil {
		return false, err
	}

	deleted := counters.NodesDeleted() > 0
	if deleted {
		r.logger.Info("Person deleted",
			zap.String("person_id", personID),
			zap.Int("friendships_removed", counters.RelationshipsDeleted()),
		)
	}
	return deleted, nil
}
