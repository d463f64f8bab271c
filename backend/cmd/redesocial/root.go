package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"redesocial/backend/internal/console"
	"redesocial/backend/internal/graph"
)

// networkOpener yields the access layer and a function that releases it
type networkOpener func(ctx context.Context) (graph.Network, func(), error)

// cli carries what every subcommand needs
type cli struct {
	open networkOpener
	in   io.Reader
	out  io.Writer
}

// withNetwork opens the store for the duration of fn and always closes it
func (c *cli) withNetwork(cmd *cobra.Command, fn func(ctx context.Context, network graph.Network) error) error {
	ctx := cmd.Context()
	network, closeFn, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer closeFn()
	return fn(ctx, network)
}

func newRootCmd(open networkOpener, in io.Reader, out io.Writer) *cobra.Command {
	c := &cli{open: open, in: in, out: out}

	root := &cobra.Command{
		Use:   "redesocial",
		Short: "Manage people and friendships in a Neo4j social graph",
		Long: `redesocial stores people and friendships in Neo4j.

Run without arguments for the interactive menu, or use the subcommands
for one-shot operations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.runMenu,
	}
	root.SetIn(in)
	root.SetOut(out)

	root.AddCommand(
		&cobra.Command{
			Use:   "menu",
			Short: "Start the interactive menu",
			Args:  cobra.NoArgs,
			RunE:  c.runMenu,
		},
		newPersonCmd(c),
		newFriendCmd(c),
		&cobra.Command{
			Use:   "stats",
			Short: "Show how many people and friendships are stored",
			Args:  cobra.NoArgs,
			RunE:  c.runStats,
		},
	)

	return root
}

func (c *cli) runMenu(cmd *cobra.Command, args []string) error {
	return c.withNetwork(cmd, func(ctx context.Context, network graph.Network) error {
		return console.New(network, c.in, c.out).Run(ctx)
	})
}

func (c *cli) runStats(cmd *cobra.Command, args []string) error {
	return c.withNetwork(cmd, func(ctx context.Context, network graph.Network) error {
		stats, err := network.Stats(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "People: %d\nFriendships: %d\n", stats.People, stats.Friendships)
		return nil
	})
}
