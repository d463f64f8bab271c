package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"redesocial/backend/internal/console"
	"redesocial/backend/internal/graph"
)

func newFriendCmd(c *cli) *cobra.Command {
	friendCmd := &cobra.Command{
		Use:   "friend",
		Short: "Manage friendships",
	}

	addCmd := &cobra.Command{
		Use:   "add ID FRIEND_ID",
		Short: "Make two existing people friends",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withNetwork(cmd, func(ctx context.Context, network graph.Network) error {
				created, err := network.CreateFriendship(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				if created {
					fmt.Fprintln(c.out, "Friendship added.")
				} else {
					fmt.Fprintln(c.out, "No friendship created.")
				}
				return nil
			})
		},
	}

	listCmd := &cobra.Command{
		Use:   "list ID",
		Short: "List the friends of a person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withNetwork(cmd, func(ctx context.Context, network graph.Network) error {
				friends, err := network.FriendsOf(ctx, args[0])
				if err != nil {
					return err
				}
				if len(friends) == 0 {
					fmt.Fprintf(c.out, "%s has no friends registered.\n", args[0])
					return nil
				}
				console.WritePeople(c.out, friends)
				return nil
			})
		},
	}

	friendCmd.AddCommand(addCmd, listCmd)
	return friendCmd
}
