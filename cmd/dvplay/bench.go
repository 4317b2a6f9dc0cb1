package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/npillmayer/dvector"
	"github.com/spf13/cobra"
)

type benchOptions struct {
	n    int // number of insertions
	seed int64
}

var benchOpts = benchOptions{n: 100000, seed: 1}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Compare random insertions into a vector and into a slice",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := runBench(cmd.OutOrStdout(), benchOpts)
		return err
	},
}

func init() {
	benchCmd.Flags().IntVarP(&benchOpts.n, "count", "n", benchOpts.n, "number of insertions")
	benchCmd.Flags().Int64Var(&benchOpts.seed, "seed", benchOpts.seed, "random seed")
	rootCmd.AddCommand(benchCmd)
}

type timing struct {
	vector, slice time.Duration
}

// runBench performs the same sequence of random insertions on a vector and
// on a slice, verifies that both end up equal and reports the timings.
func runBench(w io.Writer, opts benchOptions) (timing, error) {
	var tm timing
	if opts.n <= 0 {
		return tm, fmt.Errorf("%w: n=%d", dvector.ErrIllegalArguments, opts.n)
	}
	positions := make([]int, opts.n)
	r := rand.New(rand.NewSource(opts.seed))
	for i := range positions {
		positions[i] = r.Intn(i + 1)
	}
	start := time.Now()
	vec := dvector.New[int]()
	for i, at := range positions {
		if err := vec.Insert(at, i); err != nil {
			return tm, err
		}
	}
	tm.vector = time.Since(start)
	start = time.Now()
	s := make([]int, 0, opts.n)
	for i, at := range positions {
		s = append(s, 0)
		copy(s[at+1:], s[at:])
		s[at] = i
	}
	tm.slice = time.Since(start)
	for i, x := range vec.All() {
		if s[i] != x {
			return tm, fmt.Errorf("vector and slice differ at index %d: %d != %d", i, x, s[i])
		}
	}
	fmt.Fprintf(w, "%d random insertions\n", opts.n)
	fmt.Fprintf(w, "  vector: %v (%d leaves, height %d)\n", tm.vector,
		vec.Tree().LeafCount(), vec.Tree().Height())
	fmt.Fprintf(w, "  slice:  %v\n", tm.slice)
	return tm, nil
}
