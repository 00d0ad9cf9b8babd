package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/numberlink/pkg/boardio"
	"github.com/matzehuels/numberlink/pkg/pipeline"
)

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		flags   boardFlags
		limit   int
		all     bool
		asJSON  bool
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "solve [board]",
		Short: "Count and print the routings of a board",
		Long: `Count and print the routings of a board.

The board file is read as TOML (.toml), JSON (.json) or the compact text
format (anything else). Every routing joins each selected pair with a simple
path; paths never share a cell and unused cells stay empty.

Summaries are cached locally, so solving the same board again is instant.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				limit = 0
			}
			return c.runSolve(cmd.Context(), args[0], &flags, limit, asJSON, noCache, refresh)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVarP(&limit, "limit", "n", pipeline.DefaultLimit, "number of solutions to print")
	cmd.Flags().BoolVar(&all, "all", false, "print every solution")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if a cached summary exists")

	return cmd
}

// runSolve loads the board, solves it and prints the summary.
func (c *CLI) runSolve(ctx context.Context, input string, flags *boardFlags, limit int, asJSON, noCache, refresh bool) error {
	logger := loggerFromContext(ctx)
	b, err := c.loadBoard(input)
	if err != nil {
		return err
	}
	opts, err := flags.options(b, logger)
	if err != nil {
		return err
	}
	opts.Limit = limit
	opts.Refresh = refresh

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Building diagram...")
	stop := watchSweep(spinner)
	spinner.Start()
	summary, cacheHit, err := runner.SolveWithCacheInfo(ctx, b, opts)
	stop()
	if err != nil {
		spinner.StopWithError("Solve failed")
		return err
	}
	spinner.Stop()

	if asJSON {
		return boardio.WriteSummaryJSON(stdout, summary)
	}

	sols, err := summary.Decode(b)
	if err != nil {
		return err
	}

	if summary.Count.Sign() == 0 {
		printWarning("No routing connects the selected pairs")
		printStats([]string{fmt.Sprintf("%d nodes", summary.Nodes)}, cacheHit)
		return nil
	}

	noun := "routings"
	if summary.Count.IsInt64() && summary.Count.Int64() == 1 {
		noun = "routing"
	}
	printSuccess("%s %s of %dx%d board", StyleNumber.Render(summary.Count.String()), noun, b.Width(), b.Height())
	printStats([]string{
		fmt.Sprintf("%d pairs", len(summary.Pairs)),
		fmt.Sprintf("%d nodes", summary.Nodes),
		fmt.Sprintf("width %d", summary.MaxLevelWidth),
	}, cacheHit)

	for i, sol := range sols {
		printNewline()
		printDetail("#%d", i+1)
		fmt.Fprint(stdout, renderSolution(sol))
	}

	if summary.Truncated() {
		printNewline()
		printInfo("Showing %d of %s routings", len(sols), summary.Count)
		printNextStep("Print all", fmt.Sprintf("%s solve --all %s", appName, input))
		printNextStep("Browse", fmt.Sprintf("%s browse %s", appName, input))
	}
	return nil
}
