// Package console implements the interactive text menu. It only talks to a
// graph.Network and renders plain results; it never touches the driver.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"redesocial/backend/internal/graph"
	apperrors "redesocial/backend/pkg/errors"
	"redesocial/backend/pkg/logger"
)

const separator = "============================"

// errInputClosed stops the loop when the reader runs dry mid-prompt
var errInputClosed = errors.New("input closed")

// Console runs the menu loop over a reader and a writer
type Console struct {
	network graph.Network
	in      *bufio.Scanner
	out     io.Writer
	logger  *zap.Logger
}

// New creates a console bound to network
func New(network graph.Network, in io.Reader, out io.Writer) *Console {
	return &Console{
		network: network,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logger.Named("console"),
	}
}

// Run shows the menu until the user picks 0 or input ends. Store failures
// are reported and the loop continues.
func (c *Console) Run(ctx context.Context) error {
	for {
		c.printMenu()

		choice, ok := c.prompt("\nChoose an option: ")
		if !ok {
			return c.in.Err()
		}

		var err error
		switch choice {
		case "1":
			err = c.addPerson(ctx)
		case "2":
			err = c.listPeople(ctx)
		case "3":
			err = c.addFriendship(ctx)
		case "4":
			err = c.viewFriends(ctx)
		case "5":
			err = c.removePerson(ctx)
		case "6":
			err = c.searchPerson(ctx)
		case "0":
			c.println("Bye!")
			return nil
		default:
			c.println(separator)
			c.println("Invalid option. Try again.")
			c.println(separator)
			continue
		}

		if err == errInputClosed {
			return c.in.Err()
		}
		if err != nil {
			c.reportError(err)
		}
	}
}

func (c *Console) printMenu() {
	c.println(separator)
	c.println("\n### Menu ###")
	c.println("1. Add person")
	c.println("2. List people")
	c.println("3. Add friendship")
	c.println("4. View friends")
	c.println("5. Remove person")
	c.println("6. Search person")
	c.println("0. Exit")
	c.println(separator)
}

func (c *Console) addPerson(ctx context.Context) error {
	name, ok := c.prompt("Name: ")
	if !ok {
		return errInputClosed
	}
	rawAge, ok := c.prompt("Age: ")
	if !ok {
		return errInputClosed
	}
	location, ok := c.prompt("Location: ")
	if !ok {
		return errInputClosed
	}

	input, err := ParsePersonInput(name, rawAge, location)
	if err != nil {
		return err
	}

	person, err := c.network.CreatePerson(ctx, input)
	if err != nil {
		return err
	}

	c.println(separator)
	c.printf("Person added with ID %s\n", person.ID)
	return nil
}

func (c *Console) listPeople(ctx context.Context) error {
	people, err := c.network.ListPeople(ctx)
	if err != nil {
		return err
	}
	if len(people) == 0 {
		c.println("No people registered.")
		return nil
	}

	c.println("\nPeople:")
	WritePeople(c.out, people)
	return nil
}

func (c *Console) addFriendship(ctx context.Context) error {
	personID, ok := c.prompt("ID of the first person: ")
	if !ok {
		return errInputClosed
	}
	friendID, ok := c.prompt("ID of the second person: ")
	if !ok {
		return errInputClosed
	}

	created, err := c.network.CreateFriendship(ctx, personID, friendID)
	if err != nil {
		return err
	}

	c.println(separator)
	if created {
		c.println("Friendship added.")
	} else {
		c.println("No friendship created: both people must exist, be different and not be friends already.")
	}
	return nil
}

func (c *Console) viewFriends(ctx context.Context) error {
	personID, ok := c.prompt("ID of the person: ")
	if !ok {
		return errInputClosed
	}

	friends, err := c.network.FriendsOf(ctx, personID)
	if err != nil {
		return err
	}
	if len(friends) == 0 {
		c.printf("%s has no friends registered.\n", personID)
		return nil
	}

	c.printf("\nFriends of %s:\n", personID)
	WritePeople(c.out, friends)
	return nil
}

func (c *Console) removePerson(ctx context.Context) error {
	personID, ok := c.prompt("ID of the person to remove: ")
	if !ok {
		return errInputClosed
	}
	if personID == "" {
		return apperrors.NewValidationFailed("id", "is required")
	}

	answer, ok := c.prompt(fmt.Sprintf("Are you sure you want to remove %s? [y/N] ", personID))
	if !ok {
		return errInputClosed
	}
	if a := strings.ToLower(answer); a != "y" && a != "yes" {
		c.println("Removal cancelled.")
		return nil
	}

	deleted, err := c.network.DeletePerson(ctx, personID)
	if err != nil {
		return err
	}

	c.println(separator)
	if deleted {
		c.println("Person removed.")
	} else {
		c.printf("No person with ID %s.\n", personID)
	}
	return nil
}

func (c *Console) searchPerson(ctx context.Context) error {
	name, ok := c.prompt("Name to search: ")
	if !ok {
		return errInputClosed
	}
	if name == "" {
		return apperrors.NewValidationFailed("name", "is required")
	}

	people, err := c.network.FindPerson(ctx, name)
	if err != nil {
		return err
	}
	if len(people) == 0 {
		c.printf("No person found with name %s.\n", name)
		return nil
	}

	WritePeople(c.out, people)
	return nil
}

func (c *Console) reportError(err error) {
	c.println(separator)
	switch {
	case apperrors.IsValidation(err):
		c.printf("Invalid input: %v\n", err)
	case apperrors.IsConnectivity(err):
		c.logger.Error("Store unreachable", zap.Error(err))
		c.println("Could not reach the database. Check the connection settings and try again.")
	default:
		c.logger.Error("Operation failed", zap.Error(err))
		c.printf("Operation failed: %v\n", err)
	}
	c.println(separator)
}

// prompt writes label and reads one trimmed line. It reports false at end
// of input.
func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// ParsePersonInput turns raw text fields into a validated PersonInput. The
// age must parse as a non-negative integer.
func ParsePersonInput(name, rawAge, location string) (graph.PersonInput, error) {
	age, err := strconv.Atoi(strings.TrimSpace(rawAge))
	if err != nil {
		return graph.PersonInput{}, apperrors.NewValidationFailed("age", "must be a non-negative integer")
	}

	input := graph.PersonInput{Name: name, Age: age, Location: location}.Normalize()
	if err := input.Validate(); err != nil {
		return graph.PersonInput{}, err
	}
	return input, nil
}

// WritePeople renders one line per person
func WritePeople(w io.Writer, people []graph.Person) {
	for _, p := range people {
		fmt.Fprintln(w, separator)
		fmt.Fprintf(w, "ID: %s, Name: %s, Age: %d, Location: %s\n", p.ID, p.Name, p.Age, p.Location)
	}
}
