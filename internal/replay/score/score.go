// Package score implements the replay-harness scoring algorithm of spec
// §4.D.3: outcome checking, efficiency rating, and the weighted score
// against a scenario's call log.
package score

import (
	"strings"

	"github.com/jra3/unitrack/internal/replay/fixture"
	"github.com/jra3/unitrack/internal/replay/harness"
)

// Efficiency is the qualitative rating of total call count against a
// scenario's bounds (spec §4.D.3).
type Efficiency string

const (
	Excellent  Efficiency = "Excellent"
	Optimal    Efficiency = "Optimal"
	Acceptable Efficiency = "Acceptable"
	Inefficient Efficiency = "Inefficient"
)

// OutcomeResult records whether one expected outcome was achieved.
type OutcomeResult struct {
	Name     string
	Achieved bool
}

// Result is the full scored transcript (spec §4.D.3).
type Result struct {
	Success        bool
	Score          float64
	ScorePercent   float64
	Efficiency     Efficiency
	TotalCalls     int
	Outcomes       []OutcomeResult
	RedundantFetch int
	Errors         int
}

// Score evaluates log against scenario per spec §4.D.3.
func Score(scenario *fixture.Scenario, log []harness.CallLogEntry) Result {
	outcomes := checkOutcomes(scenario, log)

	failed := 0
	for _, o := range outcomes {
		if !o.Achieved {
			failed++
		}
	}

	total := len(log)
	eff := rateEfficiency(scenario.Scoring, total)

	base := scenario.Scoring.BaseScore
	if base == 0 {
		base = 100
	}

	s := base
	s -= 25 * float64(failed)

	if over := total - scenario.Scoring.MaxCommands; over > 0 {
		s += float64(over) * scenario.Scoring.Penalties.ExtraCommand
	}

	redundant := countRedundantFetches(log)
	s += float64(redundant) * scenario.Scoring.Penalties.RedundantFetch

	errCount := countErrors(log)
	s += float64(errCount) * scenario.Scoring.Penalties.CommandError

	if total < scenario.Scoring.OptimalCommands {
		s += float64(scenario.Scoring.OptimalCommands-total) * scenario.Scoring.Bonuses.UnderOptimal
	}

	if anyCallUsesCache(log) {
		s += scenario.Scoring.Bonuses.CacheUse
	}

	percent := clamp(s/base*100, 0, 100)

	return Result{
		Success:        failed == 0,
		Score:          s,
		ScorePercent:   percent,
		Efficiency:     eff,
		TotalCalls:     total,
		Outcomes:       outcomes,
		RedundantFetch: redundant,
		Errors:         errCount,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// rateEfficiency compares total calls against the scenario's bounds (spec
// §4.D.3).
func rateEfficiency(sc fixture.Scoring, total int) Efficiency {
	switch {
	case total < sc.MinCommands || total < sc.OptimalCommands:
		return Excellent
	case total == sc.OptimalCommands:
		return Optimal
	case total <= sc.MaxCommands:
		return Acceptable
	default:
		return Inefficient
	}
}

// countRedundantFetches counts repeated (method_starting_with("get_"),
// id-or-issue_id) pairs seen after the first occurrence (spec §4.D.3).
func countRedundantFetches(log []harness.CallLogEntry) int {
	seen := make(map[string]bool)
	redundant := 0
	for _, e := range log {
		if !strings.HasPrefix(e.Method, "get_") {
			continue
		}
		id := e.Args["id"]
		if id == "" {
			id = e.Args["issue_id"]
		}
		key := e.Method + ":" + id
		if seen[key] {
			redundant++
		}
		seen[key] = true
	}
	return redundant
}

// countErrors counts calls with a non-empty Error field.
func countErrors(log []harness.CallLogEntry) int {
	n := 0
	for _, e := range log {
		if e.Error != "" {
			n++
		}
	}
	return n
}

// anyCallUsesCache reports whether any call's method name contains "cache".
func anyCallUsesCache(log []harness.CallLogEntry) bool {
	for _, e := range log {
		if strings.Contains(e.Method, "cache") {
			return true
		}
	}
	return false
}
