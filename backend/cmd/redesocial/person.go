package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"redesocial/backend/internal/console"
	"redesocial/backend/internal/graph"
)

func newPersonCmd(c *cli) *cobra.Command {
	personCmd := &cobra.Command{
		Use:   "person",
		Short: "Manage people",
	}

	var name, age, location string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a person",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate before opening the store
			input, err := console.ParsePersonInput(name, age, location)
			if err != nil {
				return err
			}
			return c.withNetwork(cmd, func(ctx context.Context, network graph.Network) error {
				person, err := network.CreatePerson(ctx, input)
				if err != nil {
					return err
				}
				fmt.Fprintln(c.out, person.ID)
				return nil
			})
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "person name")
	addCmd.Flags().StringVar(&age, "age", "", "age, a non-negative integer")
	addCmd.Flags().StringVar(&location, "location", "", "city or region")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all people",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withNetwork(cmd, func(ctx context.Context, network graph.Network) error {
				people, err := network.ListPeople(ctx)
				if err != nil {
					return err
				}
				if len(people) == 0 {
					fmt.Fprintln(c.out, "No people registered.")
					return nil
				}
				console.WritePeople(c.out, people)
				return nil
			})
		},
	}

	findCmd := &cobra.Command{
		Use:   "find NAME",
		Short: "Find people by exact name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withNetwork(cmd, func(ctx context.Context, network graph.Network) error {
				people, err := network.FindPerson(ctx, args[0])
				if err != nil {
					return err
				}
				if len(people) == 0 {
					fmt.Fprintf(c.out, "No person found with name %s.\n", args[0])
					return nil
				}
				console.WritePeople(c.out, people)
				return nil
			})
		},
	}

	getCmd := &cobra.Command{
		Use:   "get ID",
		Short: "Show one person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withNetwork(cmd, func(ctx context.Context, network graph.Network) error {
				person, err := network.GetPerson(ctx, args[0])
				var notFound graph.ErrPersonNotFound
				if errors.As(err, &notFound) {
					fmt.Fprintf(c.out, "No person with ID %s.\n", args[0])
					return nil
				}
				if err != nil {
					return err
				}
				console.WritePeople(c.out, []graph.Person{*person})
				return nil
			})
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a person and all of their friendships",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withNetwork(cmd, func(ctx context.Context, network graph.Network) error {
				deleted, err := network.DeletePerson(ctx, args[0])
				if err != nil {
					return err
				}
				if deleted {
					fmt.Fprintln(c.out, "Person removed.")
				} else {
					fmt.Fprintf(c.out, "No person with ID %s.\n", args[0])
				}
				return nil
			})
		},
	}

	personCmd.AddCommand(addCmd, listCmd, findCmd, getCmd, deleteCmd)
	return personCmd
}
