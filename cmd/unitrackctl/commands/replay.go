package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jra3/unitrack/internal/replay/fixture"
	"github.com/jra3/unitrack/internal/replay/harness"
	"github.com/jra3/unitrack/internal/replay/score"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Score Deterministic Replay Harness runs",
}

var replayRunCmd = &cobra.Command{
	Use:   "run <scenario-dir>",
	Short: "Score a scenario directory's existing call_log.jsonl and print the result",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplayRun,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.AddCommand(replayRunCmd)
}

// runReplayRun loads a fixture directory and scores whatever
// call_log.jsonl a driving agent already produced against it (spec.md §1
// excludes the agent-LLM tool-use loop itself — that loop is what calls the
// Harness's methods; this command only reports on the resulting
// transcript). It never opens the Harness itself, since doing so truncates
// call_log.jsonl for a fresh run (spec §4.D.1).
func runReplayRun(cmd *cobra.Command, args []string) error {
	dir, err := fixture.Load(args[0])
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}

	log, err := harness.ReadCallLog(dir.CallLogPath())
	if err != nil {
		fmt.Printf("scenario %q loaded (%d response mappings); no call_log.jsonl to score yet\n",
			dir.Scenario.Meta.Name, len(dir.Manifest.Responses))
		return nil
	}

	result := score.Score(dir.Scenario, log)
	fmt.Printf("scenario: %s\n", dir.Scenario.Meta.Name)
	fmt.Printf("success: %t  score: %.1f (%.0f%%)  efficiency: %s  calls: %d\n",
		result.Success, result.Score, result.ScorePercent, result.Efficiency, result.TotalCalls)
	for _, o := range result.Outcomes {
		status := "FAIL"
		if o.Achieved {
			status = "ok"
		}
		fmt.Printf("  [%s] %s\n", status, o.Name)
	}
	return nil
}
