package cli

import (
	"context"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/numberlink/pkg/grid"
	"github.com/matzehuels/numberlink/pkg/ordering"
	"github.com/matzehuels/numberlink/pkg/pipeline"
)

// orderCommand creates the order command for inspecting edge orders.
func (c *CLI) orderCommand() *cobra.Command {
	var (
		flags   boardFlags
		compare bool
	)

	cmd := &cobra.Command{
		Use:   "order [board]",
		Short: "Show the edge order and frontier width of a board",
		Long: `Show the edge order and frontier width of a board.

The frontier after an edge is the set of cells that have been touched by a
decided edge and still have undecided edges. Its largest size bounds the
memory of the sweep, so a good ordering keeps it small.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOrder(cmd.Context(), args[0], &flags, compare)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&compare, "compare", false, "compare the maximum frontier width of every ordering")

	return cmd
}

func (c *CLI) runOrder(ctx context.Context, input string, flags *boardFlags, compare bool) error {
	b, err := c.loadBoard(input)
	if err != nil {
		return err
	}

	if compare {
		rows := make([][]string, 0, len(ordering.Names))
		for _, name := range ordering.Names {
			ord, err := pipeline.Order(b, pipeline.Options{Ordering: name})
			if err != nil {
				return err
			}
			rows = append(rows, []string{name, strconv.Itoa(ordering.MaxWidth(ord))})
		}
		printLine(styledTable("Ordering", "Max width").Rows(rows...).Render())
		return nil
	}

	opts, err := flags.options(b, loggerFromContext(ctx))
	if err != nil {
		return err
	}
	ord, err := pipeline.Order(b, opts)
	if err != nil {
		return err
	}

	printKeyValue("ordering", opts.Ordering)
	printKeyValue("edges", strconv.Itoa(ord.Len()))
	printKeyValue("max width", strconv.Itoa(ordering.MaxWidth(ord)))
	printNewline()
	printLine(orderTable(b, ord).Render())
	return nil
}

// orderTable lists every position with its edge and the frontier width
// after it.
func orderTable(b *grid.Board, ord *ordering.Order) *table.Table {
	widths := ordering.Widths(ord)
	rows := make([][]string, ord.Len())
	for pos := range rows {
		rows[pos] = []string{
			strconv.Itoa(pos),
			b.Edge(ord.EdgeAt(pos)).String(),
			strconv.Itoa(widths[pos]),
		}
	}
	return styledTable("#", "Edge", "Frontier").Rows(rows...)
}

func styledTable(headers ...string) *table.Table {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}
