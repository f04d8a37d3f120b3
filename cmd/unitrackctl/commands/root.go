// Package commands wires the unitrackctl cobra command tree. unitrackctl is
// not the excluded argument parser / subcommand dispatcher of spec.md §1 —
// it is a thin operational CLI with exactly two subcommands used to
// exercise the library end-to-end (SPEC_FULL.md AMBIENT STACK).
package commands

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "unitrackctl",
	Short: "Operational CLI for the unitrack cache and replay harness",
	Long: `unitrackctl drives two of unitrack's internal subsystems directly:

  cache refresh   repopulate the Context Cache against a configured backend
  replay run      score the call_log.jsonl a Deterministic Replay Harness
                  run left in a scenario directory and print the result

It is not a general tracker CLI: issue/project/article operations belong to
the excluded command dispatcher described in spec.md §1.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
