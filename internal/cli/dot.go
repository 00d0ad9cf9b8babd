package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/numberlink/pkg/pipeline"
)

// dotCommand creates the dot command for drawing decision diagrams.
func (c *CLI) dotCommand() *cobra.Command {
	var (
		flags  boardFlags
		output string
		format string
		render pipeline.RenderOptions
	)

	cmd := &cobra.Command{
		Use:   "dot [board]",
		Short: "Draw the decision diagram of a board",
		Long: `Draw the decision diagram of a board as Graphviz DOT or SVG.

Each node decides one board edge: the dashed arc leaves it out, the solid arc
takes it. Only nodes reachable from the root are drawn. Diagrams grow quickly,
so this is meant for small boards.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = formatFromOutput(output)
			}
			render.Format = format
			if err := pipeline.ValidateFormat(render.Format); err != nil {
				return err
			}
			return c.runDot(cmd.Context(), args[0], &flags, render, output)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: dot (default), svg")
	cmd.Flags().BoolVar(&render.Frontier, "frontier", false, "label nodes with their frontier state")
	cmd.Flags().BoolVar(&render.HideReject, "hide-reject", true, "omit the reject terminal and arcs into it")

	return cmd
}

// formatFromOutput picks svg for .svg files and dot otherwise.
func formatFromOutput(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return pipeline.FormatSVG
	}
	return pipeline.FormatDOT
}

// runDot builds the diagram and writes it out.
func (c *CLI) runDot(ctx context.Context, input string, flags *boardFlags, render pipeline.RenderOptions, output string) error {
	logger := loggerFromContext(ctx)
	b, err := c.loadBoard(input)
	if err != nil {
		return err
	}
	opts, err := flags.options(b, logger)
	if err != nil {
		return err
	}
	opts.KeepFrontier = render.Frontier

	prog := newProgress(logger)
	res, err := pipeline.Build(ctx, b, opts)
	if err != nil {
		return err
	}
	prog.done("Built diagram")

	data, err := pipeline.Render(res, render)
	if err != nil {
		return err
	}

	if output == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return err
	}
	printSuccess("Wrote %s diagram with %d nodes", render.Format, res.Stats.Nodes)
	printFile(output)
	return nil
}
