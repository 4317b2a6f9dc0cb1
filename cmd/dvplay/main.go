/*
Command dvplay is a playground for dvector.

It runs random editing sessions on a vector and shows the resulting tree,
either as text, colored for a console, or in Graphviz DOT format. A second
subcommand compares the timing of a vector against a plain slice.

	dvplay play -n 20 --seed 7 --erase 5 --format color
	dvplay play -n 50 --format dot | dot -Tsvg > tree.svg
	dvplay bench -n 100000

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var traceLevel string

// rootCmd is the entry point; subcommands are registered in their init
// functions.
var rootCmd = &cobra.Command{
	Use:           "dvplay",
	Short:         "Playground for balanced-tree vectors",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		gtrace.CoreTracer = gologadapter.New()
		return setTraceLevel(traceLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "info",
		"trace level (debug|info)")
}

func setTraceLevel(s string) error {
	switch s {
	case "debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	case "info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	default:
		return fmt.Errorf("unknown trace level %q", s)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dvplay: %v\n", err)
		os.Exit(1)
	}
}
