package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/wardsim/wardsim/sim"
	"github.com/wardsim/wardsim/sim/stats"
)

// printTrialSummary displays the cross-replication aggregates at the end of
// a trial.
func printTrialSummary(cfg sim.RunConfig, ts stats.TrialSummary, elapsed time.Duration) {
	fmt.Println("=== Ward Simulation Results ===")
	fmt.Printf("Beds                 : %d\n", cfg.Beds)
	fmt.Printf("Horizon              : %.1f days (warm-up %.1f)\n", cfg.HorizonDays, cfg.WarmupDays)
	fmt.Printf("Replications         : %d\n", ts.Replications)

	fmt.Printf("Mean occupancy       : %s beds\n", formatInterval(ts.MeanOccupancy, "%.2f"))
	fmt.Printf("Utilization          : %s\n", formatInterval(ts.Utilization, "%.1f%%", 100))
	fmt.Printf("Mean wait for bed    : %s days\n", formatInterval(ts.MeanWaitDays, "%.3f"))
	fmt.Printf("P95 wait for bed     : %s days\n", formatInterval(ts.P95WaitDays, "%.3f"))

	warned := 0
	for _, run := range ts.Runs {
		if len(run.Warnings) > 0 {
			warned++
		}
	}
	if warned > 0 {
		fmt.Printf("Warnings             : %d/%d replications hit the wait-queue sanity bound\n", warned, ts.Replications)
	}
	fmt.Printf("Wall time            : %s\n", elapsed.Round(time.Millisecond))
}

// formatInterval renders "mean (lo – hi)" with the given verb, collapsing to
// the bare mean when there is no interval. scale optionally multiplies the
// values (e.g. 100 for percentages).
func formatInterval(iv stats.Interval, verb string, scale ...float64) string {
	k := 1.0
	if len(scale) > 0 {
		k = scale[0]
	}
	if iv.N < 2 || iv.Lo == iv.Hi {
		return fmt.Sprintf(verb, iv.Mean*k)
	}
	return fmt.Sprintf(verb+" ("+verb+" – "+verb+")", iv.Mean*k, iv.Lo*k, iv.Hi*k)
}

// writeEventLog writes one replication's frozen result as JSON for the
// animation/replay collaborator.
func writeEventLog(result *sim.RunResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
