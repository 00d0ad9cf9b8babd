// Package cli implements the numberlink command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/numberlink/pkg/boardio"
	"github.com/matzehuels/numberlink/pkg/buildinfo"
	"github.com/matzehuels/numberlink/pkg/cache"
	nlerrors "github.com/matzehuels/numberlink/pkg/errors"
	"github.com/matzehuels/numberlink/pkg/grid"
	"github.com/matzehuels/numberlink/pkg/ordering"
	"github.com/matzehuels/numberlink/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "numberlink"

	// defaultBrowseLimit bounds the solutions loaded by browse.
	defaultBrowseLimit = 1000
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Numberlink counts and enumerates grid path routings",
		Long: `Numberlink builds a decision diagram of every way to join the terminal
pairs of a grid puzzle with non-touching paths, then counts, prints, draws or
browses the routings.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.orderCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cc, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Version+":")
	return pipeline.NewRunner(cache.NewObserved(cc, "summary"), keyer, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/numberlink/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// boardFlags are the flags shared by every command that sweeps a board.
type boardFlags struct {
	pairs    string // comma-separated pair numbers or ranges
	ordering string // edge orderer name
}

func (f *boardFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.pairs, "pairs", "p", "", "pairs to route, e.g. 1,3-4 (default: all)")
	cmd.Flags().StringVar(&f.ordering, "ordering", pipeline.DefaultOrdering, "edge ordering: diagonal (default), rowmajor")
	_ = cmd.RegisterFlagCompletionFunc("ordering", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return ordering.Names, cobra.ShellCompDirectiveNoFileComp
	})
}

// options resolves the flags against b. The result is not validated
// yet, so callers may still adjust it.
func (f *boardFlags) options(b *grid.Board, logger *log.Logger) (pipeline.Options, error) {
	pairs, err := nlerrors.ParsePairList(f.pairs, b.PairCount())
	if err != nil {
		return pipeline.Options{}, err
	}
	if err := pipeline.ValidateOrdering(f.ordering); err != nil {
		return pipeline.Options{}, err
	}
	return pipeline.Options{Pairs: pairs, Ordering: f.ordering, Logger: logger}, nil
}

// loadBoard reads a board file and logs its size.
func (c *CLI) loadBoard(path string) (*grid.Board, error) {
	b, err := boardio.Load(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded board", "path", path, "width", b.Width(), "height", b.Height(), "pairs", b.PairCount())
	return b, nil
}
