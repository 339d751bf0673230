package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	dinnerio "github.com/ang-cai/dinner/pkg/io"
)

// newEdgesCmd creates the edges command, which prints the canonical dislike
// edge set of a guest file. Useful for checking what a one-directional
// dislike list actually means before planning.
func newEdgesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edges <guest-file>",
		Short: "Print the canonical dislike edges of a guest file",
		Long: `Print the canonical dislike edges of a guest file.

Each unordered pair is printed once with endpoints in lexicographic order,
no matter how many directions the file recorded it in:

  dinner edges guests.toml
  Alice -- Bob
  Bob -- Eve`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			g, err := dinnerio.Import(args[0])
			if err != nil {
				printError("%v", err)
				return err
			}

			edges := g.Edges()
			for _, e := range edges {
				fmt.Println(e)
			}
			loggerFromContext(c.Context()).Debug("listed dislike edges",
				"guests", g.GuestCount(), "edges", len(edges))
			return nil
		},
	}
}
