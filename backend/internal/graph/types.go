package graph

import (
	"context"
	"fmt"
	"time"
)

// Person is a node in the social graph. ID is assigned at creation and is the
// only identity key; Name is a display attribute and may repeat.
type Person struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

// PersonInput carries the attributes needed to create a Person
type PersonInput struct {
	Name     string `json:"name" validate:"required"`
	Age      int    `json:"age" validate:"gte=0"`
	Location string `json:"location" validate:"required"`
}

// Friendship is a FRIENDS_WITH edge. It is stored with a direction but read
// in both.
type Friendship struct {
	ID        string    `json:"id"`
	FromID    string    `json:"from_id"`
	ToID      string    `json:"to_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats summarizes the size of the graph
type Stats struct {
	People      int64 `json:"people"`
	Friendships int64 `json:"friendships"`
}

// Network is the set of operations the presentation layers rely on.
// Lookups that match nothing succeed with an empty result or a false flag.
type Network interface {
	CreatePerson(ctx context.Context, input PersonInput) (*Person, error)
	CreateFriendship(ctx context.Context, personID, friendID string) (bool, error)
	ListPeople(ctx context.Context) ([]Person, error)
	FriendsOf(ctx context.Context, personID string) ([]Person, error)
	FindPerson(ctx context.Context, name string) ([]Person, error)
	DeletePerson(ctx context.Context, personID string) (bool, error)
	GetPerson(ctx context.Context, personID string) (*Person, error)
	Friendships(ctx context.Context, personID string) ([]Friendship, error)
	Stats(ctx context.Context) (*Stats, error)
}

// Errors

// ErrPersonNotFound is returned by GetPerson only; the contract operations
// treat a missing person as an empty result.
type ErrPersonNotFound struct {
	PersonID string
}

func (e ErrPersonNotFound) Error() string {
	return fmt.Sprintf("person not found: %s", e.PersonID)
}
