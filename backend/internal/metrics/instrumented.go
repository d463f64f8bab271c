package metrics

import (
	"context"
	"time"

	"redesocial/backend/internal/graph"
	apperrors "redesocial/backend/pkg/errors"
)

// InstrumentedNetwork decorates a graph.Network with operation metrics. It
// adds no behavior: results and errors pass through untouched.
type InstrumentedNetwork struct {
	next      graph.Network
	collector *Collector
}

var _ graph.Network = (*InstrumentedNetwork)(nil)

// Instrument wraps next so every call is counted by c
func Instrument(next graph.Network, c *Collector) *InstrumentedNetwork {
	return &InstrumentedNetwork{next: next, collector: c}
}

func (n *InstrumentedNetwork) observe(operation string, start time.Time, noop bool, err error) {
	outcome := OutcomeOK
	switch {
	case apperrors.IsValidation(err):
		outcome = OutcomeInvalid
	case err != nil:
		outcome = OutcomeError
	case noop:
		outcome = OutcomeNoop
	}
	n.collector.ObserveGraph(operation, outcome, time.Since(start))
}

func (n *InstrumentedNetwork) CreatePerson(ctx context.Context, input graph.PersonInput) (*graph.Person, error) {
	start := time.Now()
	person, err := n.next.CreatePerson(ctx, input)
	n.observe("create_person", start, false, err)
	return person, err
}

func (n *InstrumentedNetwork) CreateFriendship(ctx context.Context, personID, friendID string) (bool, error) {
	start := time.Now()
	created, err := n.next.CreateFriendship(ctx, personID, friendID)
	n.observe("create_friendship", start, !created, err)
	return created, err
}

func (n *InstrumentedNetwork) ListPeople(ctx context.Context) ([]graph.Person, error) {
	start := time.Now()
	people, err := n.next.ListPeople(ctx)
	n.observe("list_people", start, false, err)
	return people, err
}

func (n *InstrumentedNetwork) FriendsOf(ctx context.Context, personID string) ([]graph.Person, error) {
	start := time.Now()
	friends, err := n.next.FriendsOf(ctx, personID)
	n.observe("friends_of", start, len(friends) == 0, err)
	return friends, err
}

func (n *InstrumentedNetwork) FindPerson(ctx context.Context, name string) ([]graph.Person, error) {
	start := time.Now()
	people, err := n.next.FindPerson(ctx, name)
	n.observe("find_person", start, len(people) == 0, err)
	return people, err
}

func (n *InstrumentedNetwork) DeletePerson(ctx context.Context, personID string) (bool, error) {
	start := time.Now()
	deleted, err := n.next.DeletePerson(ctx, personID)
	n.observe("delete_person", start, !deleted, err)
	return deleted, err
}

func (n *InstrumentedNetwork) GetPerson(ctx context.Context, personID string) (*graph.Person, error) {
	start := time.Now()
	person, err := n.next.GetPerson(ctx, personID)
	if _, ok := err.(graph.ErrPersonNotFound); ok {
		n.observe("get_person", start, true, nil)
		return person, err
	}
	n.observe("get_person", start, false, err)
	return person, err
}

func (n *InstrumentedNetwork) Friendships(ctx context.Context, personID string) ([]graph.Friendship, error) {
	start := time.Now()
	edges, err := n.next.Friendships(ctx, personID)
	n.observe("friendships", start, len(edges) == 0, err)
	return edges, err
}

func (n *InstrumentedNetwork) Stats(ctx context.Context) (*graph.Stats, error) {
	start := time.Now()
	stats, err := n.next.Stats(ctx)
	n.observe("stats", start, false, err)
	return stats, err
}
