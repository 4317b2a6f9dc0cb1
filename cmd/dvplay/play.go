package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/npillmayer/dvector"
	"github.com/npillmayer/dvector/visual"
	"github.com/spf13/cobra"
)

type playOptions struct {
	n      int    // number of random insertions
	seed   int64  // random seed
	erase  int    // number of random erasures after the insertions
	format string // text, color or dot
	width  int    // line width for console output; 0 derives it from the terminal
}

var playOpts = playOptions{n: 20, seed: 1, format: "text"}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run a random editing session and show the resulting tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd.OutOrStdout(), playOpts)
	},
}

func init() {
	flags := playCmd.Flags()
	flags.IntVarP(&playOpts.n, "count", "n", playOpts.n, "number of random insertions")
	flags.Int64Var(&playOpts.seed, "seed", playOpts.seed, "random seed")
	flags.IntVar(&playOpts.erase, "erase", 0, "number of random erasures")
	flags.StringVar(&playOpts.format, "format", playOpts.format, "output format (text|color|dot)")
	flags.IntVar(&playOpts.width, "width", 0, "line width for console output")
	rootCmd.AddCommand(playCmd)
}

// runPlay inserts opts.n values at random positions of a vector starting
// with a single element, erases opts.erase of them again and renders the
// resulting tree to w. The structure is checked after every step.
func runPlay(w io.Writer, opts playOptions) error {
	if opts.n < 0 || opts.erase < 0 || opts.erase > opts.n+1 {
		return fmt.Errorf("%w: n=%d erase=%d", dvector.ErrIllegalArguments, opts.n, opts.erase)
	}
	r := rand.New(rand.NewSource(opts.seed))
	vec := dvector.FromSlice([]int{0})
	for i := 1; i <= opts.n; i++ {
		if err := vec.Insert(r.Intn(vec.Len()+1), i); err != nil {
			return err
		}
		if err := vec.Check(); err != nil {
			return fmt.Errorf("after insertion %d: %w", i, err)
		}
	}
	for i := 0; i < opts.erase; i++ {
		if err := vec.Erase(r.Intn(vec.Len())); err != nil {
			return err
		}
		if err := vec.Check(); err != nil {
			return fmt.Errorf("after erasure %d: %w", i, err)
		}
	}
	dvector.T().Infof("session: %d elements in %d leaves, height %d",
		vec.Len(), vec.Tree().LeafCount(), vec.Tree().Height())
	switch opts.format {
	case "text":
		return vec.Dump(w)
	case "color":
		var config *visual.Config
		if opts.width > 0 {
			config = &visual.Config{LineWidth: opts.width, Colored: true}
		}
		return visual.Fprint(visual.NewPrinter(config, nil), w, vec.Tree())
	case "dot":
		return dvector.Vector2Dot(vec, w)
	}
	return fmt.Errorf("%w: unknown format %q", dvector.ErrIllegalArguments, opts.format)
}
