package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/numberlink/pkg/boardio"
	nlerrors "github.com/matzehuels/numberlink/pkg/errors"
)

// convertCommand creates the convert command for rewriting board files.
func (c *CLI) convertCommand() *cobra.Command {
	var (
		to     string
		output string
	)

	cmd := &cobra.Command{
		Use:   "convert [board]",
		Short: "Convert a board file between text, TOML and JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if to == "" {
				to = string(boardio.FormatOf(output))
			}
			if err := nlerrors.ValidateChoice(nlerrors.ErrCodeUnsupported, "format", to, boardio.Formats); err != nil {
				return err
			}
			return c.runConvert(args[0], boardio.Format(to), output)
		},
	}

	cmd.Flags().StringVarP(&to, "to", "t", "", "target format: text, toml, json (default: from --output extension)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func (c *CLI) runConvert(input string, to boardio.Format, output string) error {
	b, err := c.loadBoard(input)
	if err != nil {
		return err
	}
	if output == "" {
		return boardio.Write(stdout, b, to)
	}

	f, err := os.Create(output)
	if err != nil {
		return nlerrors.Wrap(nlerrors.ErrCodeInvalidPath, err, "create %s", output)
	}
	defer f.Close()
	if err := boardio.Write(f, b, to); err != nil {
		return err
	}
	printSuccess("Converted board to %s", to)
	printFile(output)
	return f.Close()
}
