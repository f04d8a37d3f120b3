// Command unitrackctl is the thin operational CLI described in
// SPEC_FULL.md's ambient stack: it is not the excluded argument parser /
// subcommand dispatcher of spec.md §1, only a way to drive the Context
// Cache refresh cycle and the Replay Harness scorer directly.
package main

import (
	"fmt"
	"os"

	"github.com/jra3/unitrack/cmd/unitrackctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
