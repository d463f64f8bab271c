// Package graphtest provides a testify mock of graph.Network for the
// presentation layer tests.
package graphtest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"redesocial/backend/internal/graph"
)

// MockNetwork is a mock implementation of graph.Network
type MockNetwork struct {
	mock.Mock
}

var _ graph.Network = (*MockNetwork)(nil)

func (m *MockNetwork) CreatePerson(ctx context.Context, input graph.PersonInput) (*graph.Person, error) {
	args := m.Called(ctx, input)
	person, _ := args.Get(0).(*graph.Person)
	return person, args.Error(1)
}

func (m *MockNetwork) CreateFriendship(ctx context.Context, personID, friendID string) (bool, error) {
	args := m.Called(ctx, personID, friendID)
	return args.Bool(0), args.Error(1)
}

func (m *MockNetwork) ListPeople(ctx context.Context) ([]graph.Person, error) {
	args := m.Called(ctx)
	people, _ := args.Get(0).([]graph.Person)
	return people, args.Error(1)
}

func (m *MockNetwork) FriendsOf(ctx context.Context, personID string) ([]graph.Person, error) {
	args := m.Called(ctx, personID)
	people, _ := args.Get(0).([]graph.Person)
	return people, args.Error(1)
}

func (m *MockNetwork) FindPerson(ctx context.Context, name string) ([]graph.Person, error) {
	args := m.Called(ctx, name)
	people, _ := args.Get(0).([]graph.Person)
	return people, args.Error(1)
}

func (m *MockNetwork) DeletePerson(ctx context.Context, personID string) (bool, error) {
	args := m.Called(ctx, personID)
	return args.Bool(0), args.Error(1)
}

func (m *MockNetwork) GetPerson(ctx context.Context, personID string) (*graph.Person, error) {
	args := m.Called(ctx, personID)
	person, _ := args.Get(0).(*graph.Person)
	return person, args.Error(1)
}

func (m *MockNetwork) Friendships(ctx context.Context, personID string) ([]graph.Friendship, error) {
	args := m.Called(ctx, personID)
	edges, _ := args.Get(0).([]graph.Friendship)
	return edges, args.Error(1)
}

func (m *MockNetwork) Stats(ctx context.Context) (*graph.Stats, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(*graph.Stats)
	return stats, args.Error(1)
}
