package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wardsim/wardsim/sim"
	"github.com/wardsim/wardsim/sim/stats"
	"github.com/wardsim/wardsim/sim/workload"
)

var (
	// CLI flags for the ward scenario
	seed           int64   // Seed for the trial's random streams
	horizonDays    float64 // Simulated duration of each replication (days)
	warmupDays     float64 // Warm-up window excluded from statistics (days)
	beds           int     // Number of ward beds
	replications   int     // Number of independent replications
	longStayProb   float64 // Probability a patient is a long-stayer
	shortStayDays  float64 // Mean short-stay length of stay (days)
	longStayDays   float64 // Mean long-stay length of stay (days)
	stayStdevDays  float64 // Stdev of the lognormal stay distributions (days)
	ratePerDay     float64 // Constant arrival rate (patients per day)
	waitQueueBound int     // Wait-queue sanity bound (0 = default)

	logLevel   string  // Log verbosity level
	configPath string  // Optional YAML scenario file
	outputPath string  // Optional path for the replayable event log (JSON)
	confLevel  float64 // Confidence level for cross-replication intervals
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "wardsim",
	Short: "Discrete-event simulator for acute ward bed occupancy",
}

// runCmd executes a trial using parameters from the scenario file and CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the ward occupancy simulation",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := sim.DefaultRunConfig()
		runs := replications
		if configPath != "" {
			cfg, runs, err = LoadScenario(configPath)
			if err != nil {
				logrus.Fatalf("unable to read scenario: %v", err)
			}
			if cmd.Flags().Changed("replications") {
				runs = replications
			}
		}
		applyFlagOverrides(cmd, &cfg)

		logrus.Infof("Starting trial: %d beds, horizon=%.1f days, %d replications, seed=%d",
			cfg.Beds, cfg.HorizonDays, runs, cfg.Seed)

		startTime := time.Now()

		results, err := sim.NewTrial(cfg, runs).Run()
		if err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}
		summary := stats.Aggregate(results, confLevel)
		printTrialSummary(cfg, summary, time.Since(startTime))

		if outputPath != "" {
			// The first replication's log is the one the replay layer animates.
			if err := writeEventLog(results[0], outputPath); err != nil {
				logrus.Fatalf("unable to write event log: %v", err)
			}
			logrus.Infof("Event log written to %s", outputPath)
		}

		logrus.Info("Simulation complete.")
	},
}

// applyFlagOverrides lets explicitly-set flags win over scenario file values.
func applyFlagOverrides(cmd *cobra.Command, cfg *sim.RunConfig) {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("horizon-days") {
		cfg.HorizonDays = horizonDays
	}
	if flags.Changed("warmup-days") {
		cfg.WarmupDays = warmupDays
	}
	if flags.Changed("beds") {
		cfg.Beds = beds
	}
	if flags.Changed("long-stay-prob") {
		cfg.LongStayProb = longStayProb
	}
	if flags.Changed("short-stay-days") {
		cfg.ShortStay.MeanDays = shortStayDays
	}
	if flags.Changed("long-stay-days") {
		cfg.LongStay.MeanDays = longStayDays
	}
	if flags.Changed("stay-stdev-days") {
		cfg.ShortStay.StdevDays = stayStdevDays
		cfg.LongStay.StdevDays = stayStdevDays
	}
	if flags.Changed("rate") {
		cfg.Arrival = workload.ProfileSpec{Process: workload.ProcessConstant, RatePerDay: ratePerDay}
	}
	if flags.Changed("wait-queue-bound") {
		cfg.WaitQueueBound = waitQueueBound
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	defaults := sim.DefaultRunConfig()

	runCmd.Flags().Int64Var(&seed, "seed", defaults.Seed, "Seed for the trial's random streams")
	runCmd.Flags().Float64Var(&horizonDays, "horizon-days", defaults.HorizonDays, "Simulated duration of each replication (days)")
	runCmd.Flags().Float64Var(&warmupDays, "warmup-days", defaults.WarmupDays, "Warm-up window excluded from statistics (days)")
	runCmd.Flags().IntVar(&beds, "beds", defaults.Beds, "Total number of beds in the ward")
	runCmd.Flags().IntVar(&replications, "replications", 10, "Number of independent replications")
	runCmd.Flags().Float64Var(&longStayProb, "long-stay-prob", defaults.LongStayProb, "Probability a patient is a long-stayer")
	runCmd.Flags().Float64Var(&shortStayDays, "short-stay-days", defaults.ShortStay.MeanDays, "Mean length of stay for short-stay patients (days)")
	runCmd.Flags().Float64Var(&longStayDays, "long-stay-days", defaults.LongStay.MeanDays, "Mean length of stay for long-stay patients (days)")
	runCmd.Flags().Float64Var(&stayStdevDays, "stay-stdev-days", defaults.ShortStay.StdevDays, "Stdev of the stay distributions (days)")
	runCmd.Flags().Float64Var(&ratePerDay, "rate", defaults.Arrival.RatePerDay, "Constant arrival rate (patients per day)")
	runCmd.Flags().IntVar(&waitQueueBound, "wait-queue-bound", 0, "Wait-queue sanity bound (0 = default)")

	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML scenario file (flags set explicitly override it)")
	runCmd.Flags().StringVar(&outputPath, "output", "", "Write the first replication's event log as JSON")
	runCmd.Flags().Float64Var(&confLevel, "confidence", 0.95, "Confidence level for cross-replication intervals")

	rootCmd.AddCommand(runCmd)
}
