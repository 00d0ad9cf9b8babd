package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// browseCommand creates the browse command for paging through solutions.
func (c *CLI) browseCommand() *cobra.Command {
	var (
		flags   boardFlags
		limit   int
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "browse [board]",
		Short: "Page through the routings of a board interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBrowse(cmd.Context(), args[0], &flags, limit, noCache)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVarP(&limit, "limit", "n", defaultBrowseLimit, "number of solutions to load")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runBrowse(ctx context.Context, input string, flags *boardFlags, limit int, noCache bool) error {
	b, err := c.loadBoard(input)
	if err != nil {
		return err
	}
	opts, err := flags.options(b, loggerFromContext(ctx))
	if err != nil {
		return err
	}
	opts.Limit = limit

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Building diagram...")
	stop := watchSweep(spinner)
	spinner.Start()
	summary, err := runner.Solve(ctx, b, opts)
	stop()
	spinner.Stop()
	if err != nil {
		return err
	}

	sols, err := summary.Decode(b)
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewBrowserModel(b, sols, summary.Count), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
