package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ang-cai/dinner/pkg/pipeline"
)

// planOpts holds the command-line flags for the plan command.
type planOpts struct {
	naive    bool   // exhaustive search over all guests instead of the reduced graph
	refresh  bool   // bypass cached results
	noCache  bool   // disable the result cache entirely
	cacheDir string // cache directory override
	output   string // output file path for the invite list (stdout if empty)
}

// newPlanCmd creates the plan command.
func newPlanCmd() *cobra.Command {
	opts := planOpts{cacheDir: defaultCacheDir()}

	cmd := &cobra.Command{
		Use:   "plan <guest-file>",
		Short: "Compute the largest invite list with no disliked pair",
		Long: `Compute the largest invite list with no disliked pair.

The guest file is JSON or TOML, detected by extension:

  dinner plan guests.toml
  dinner plan guests.json --naive
  dinner plan guests.json -o invited.json

By default guests with no dislikes are set aside before the subset search
and re-added to the result, which keeps the exponential enumeration to the
entangled guests only. --naive searches the full guest list instead; both
strategies return invite lists of the same size.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runPlan(c.Context(), &opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.naive, "naive", false, "search all guests, not just the entangled ones")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if a cached result exists")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", opts.cacheDir, "result cache directory")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the invite list as JSON to a file")

	return cmd
}

// runPlan executes the planning pipeline and presents the result.
func runPlan(ctx context.Context, opts *planOpts, path string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner := pipeline.NewRunner(openCache(opts.noCache, opts.cacheDir, logger), nil, logger)
	defer runner.Close()

	result, err := runner.Execute(ctx, pipeline.Options{
		Input:   path,
		Naive:   opts.naive,
		Refresh: opts.refresh,
		Logger:  logger,
	})
	if err != nil {
		printError("%v", err)
		return err
	}

	prog.done(fmt.Sprintf("Planned seating for %d guests", result.Stats.GuestCount))

	fmt.Println(styleTitle.Render("Dinner plan"))
	printInfo("%d guests, %d dislike pairs, %d always seatable",
		result.Stats.GuestCount, result.Stats.EdgeCount, result.Stats.IsolatedCount)
	if result.CacheInfo.SolveHit {
		printDetail("result replayed from cache")
	} else {
		printDetail("searched %d candidate subsets", result.Stats.SubsetCount)
	}
	printSuccess("Invite %d: %s", len(result.InviteList), formatGuestList(result.InviteList))

	if opts.output != "" {
		if err := writeInviteList(opts.output, result.InviteList); err != nil {
			return err
		}
		printDetail("wrote %s", opts.output)
	}
	return nil
}

// writeInviteList writes the invite list to path as a JSON array.
func writeInviteList(path string, list []string) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
