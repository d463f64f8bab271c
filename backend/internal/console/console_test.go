package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"redesocial/backend/internal/graph"
	"redesocial/backend/internal/graph/graphtest"
	apperrors "redesocial/backend/pkg/errors"
)

func run(t *testing.T, network graph.Network, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, New(network, in, &out).Run(context.Background()))
	return out.String()
}

func TestConsole_AddPerson(t *testing.T) {
	network := &graphtest.MockNetwork{}
	network.On("CreatePerson", mock.Anything, graph.PersonInput{Name: "Ana", Age: 30, Location: "Recife"}).
		Return(&graph.Person{ID: "ana-id", Name: "Ana", Age: 30, Location: "Recife"}, nil)

	out := run(t, network, "1", " Ana ", "30", "Recife", "0")

	assert.Contains(t, out, "Person added with ID ana-id")
	assert.Contains(t, out, "Bye!")
	network.AssertExpectations(t)
}

func TestConsole_AddPerson_InvalidAgeNeverReachesStore(t *testing.T) {
	network := &graphtest.MockNetwork{}

	out := run(t, network,
		"1", "Ana", "thirty", "Recife",
		"1", "Ana", "-3", "Recife",
		"1", "", "30", "Recife",
		"0")

	assert.Equal(t, 2, strings.Count(out, "Invalid input: [validation] age must be a non-negative integer"))
	assert.Contains(t, out, "Invalid input: [validation] name is required")
	network.AssertNotCalled(t, "CreatePerson", mock.Anything, mock.Anything)
}

func TestConsole_ListPeople(t *testing.T) {
	network := &graphtest.MockNetwork{}
	network.On("ListPeople", mock.Anything).Return([]graph.Person{
		{ID: "1", Name: "Ana", Age: 30, Location: "Recife"},
		{ID: "2", Name: "Bia", Age: 25, Location: "Olinda"},
	}, nil).Once()
	network.On("ListPeople", mock.Anything).Return([]graph.Person{}, nil).Once()

	out := run(t, network, "2", "2", "0")

	assert.Contains(t, out, "ID: 1, Name: Ana, Age: 30, Location: Recife")
	assert.Contains(t, out, "ID: 2, Name: Bia, Age: 25, Location: Olinda")
	assert.Contains(t, out, "No people registered.")
	network.AssertExpectations(t)
}

func TestConsole_AddFriendship(t *testing.T) {
	network := &graphtest.MockNetwork{}
	network.On("CreateFriendship", mock.Anything, "a", "b").Return(true, nil)
	network.On("CreateFriendship", mock.Anything, "a", "ghost").Return(false, nil)

	out := run(t, network, "3", "a", "b", "3", "a", "ghost", "0")

	assert.Contains(t, out, "Friendship added.")
	assert.Contains(t, out, "No friendship created")
	network.AssertExpectations(t)
}

func TestConsole_ViewFriends(t *testing.T) {
	network := &graphtest.MockNetwork{}
	network.On("FriendsOf", mock.Anything, "a").Return([]graph.Person{{ID: "b", Name: "Bia", Age: 25, Location: "Olinda"}}, nil)
	network.On("FriendsOf", mock.Anything, "lonely").Return([]graph.Person{}, nil)

	out := run(t, network, "4", "a", "4", "lonely", "0")

	assert.Contains(t, out, "Friends of a:")
	assert.Contains(t, out, "Name: Bia")
	assert.Contains(t, out, "lonely has no friends registered.")
}

func TestConsole_RemovePerson(t *testing.T) {
	network := &graphtest.MockNetwork{}
	network.On("DeletePerson", mock.Anything, "a").Return(true, nil)
	network.On("DeletePerson", mock.Anything, "ghost").Return(false, nil)

	out := run(t, network,
		"5", "a", "n",
		"5", "a", "y",
		"5", "ghost", "yes",
		"0")

	assert.Contains(t, out, "Removal cancelled.")
	assert.Contains(t, out, "Person removed.")
	assert.Contains(t, out, "No person with ID ghost.")
	network.AssertNumberOfCalls(t, "DeletePerson", 2)
}

func TestConsole_SearchPerson(t *testing.T) {
	network := &graphtest.MockNetwork{}
	network.On("FindPerson", mock.Anything, "Alice").Return([]graph.Person{
		{ID: "1", Name: "Alice", Age: 20, Location: "Recife"},
		{ID: "2", Name: "Alice", Age: 41, Location: "Natal"},
	}, nil)
	network.On("FindPerson", mock.Anything, "Zed").Return([]graph.Person{}, nil)

	out := run(t, network, "6", "Alice", "6", "Zed", "6", "", "0")

	assert.Contains(t, out, "ID: 1, Name: Alice")
	assert.Contains(t, out, "ID: 2, Name: Alice")
	assert.Contains(t, out, "No person found with name Zed.")
	assert.Contains(t, out, "name is required")
}

func TestConsole_StoreErrorsAreReported(t *testing.T) {
	network := &graphtest.MockNetwork{}
	network.On("ListPeople", mock.Anything).
		Return(nil, apperrors.NewGraphConnectionFailed("bolt://localhost:7687", errors.New("refused"))).Once()
	network.On("ListPeople", mock.Anything).
		Return(nil, apperrors.NewGraphQueryFailed("list_people", errors.New("boom"))).Once()

	out := run(t, network, "2", "2", "0")

	assert.Contains(t, out, "Could not reach the database.")
	assert.Contains(t, out, "Operation failed:")
	assert.Contains(t, out, "Bye!")
}

func TestConsole_InvalidOptionAndEOF(t *testing.T) {
	network := &graphtest.MockNetwork{}
	var out bytes.Buffer

	err := New(network, strings.NewReader("9\n1\nAna\n"), &out).Run(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Invalid option. Try again.")
	network.AssertNotCalled(t, "CreatePerson", mock.Anything, mock.Anything)
}

func TestParsePersonInput(t *testing.T) {
	input, err := ParsePersonInput(" Ana ", " 30 ", " Recife ")
	require.NoError(t, err)
	assert.Equal(t, graph.PersonInput{Name: "Ana", Age: 30, Location: "Recife"}, input)

	_, err = ParsePersonInput("Ana", "3.5", "Recife")
	assert.True(t, apperrors.IsValidation(err))

	_, err = ParsePersonInput("Ana", "30", "")
	assert.True(t, apperrors.IsValidation(err))
}
