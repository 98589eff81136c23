package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/grocery-sim/grocery-sim/sim"
)

var (
	// CLI flags for the simulation run
	eventsPath   string // Path to the textual event file
	cashierLines int    // Number of staffed cashier lines
	expressLines int    // Number of express lines
	selfLines    int    // Number of self-checkout lines
	policy       string // Line-selection policy name
	model        string // Checkout-duration model name
	seed         int64  // Seed for the random policy and stochastic model
	countFirst   bool   // Include the in-service customer in least-time projections
	logLevel     string // Log verbosity level

	// CLI flags for the statistics report
	filterBy    string // Lifecycle timestamp the window applies to
	windowStart int64  // Inclusive lower bound of the report window
	windowEnd   int64  // Exclusive upper bound of the report window (0 = unbounded)
	lineIDs     []int  // Restrict the report to these line ids (empty = all)
	resultsPath string // Optional path for the JSON report
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "grocery-sim",
	Short: "Discrete-event simulator for grocery checkout lines",
}

// statsReport is the JSON report printed after a run: one summary per
// criterion, all over the same window, filter and line selection.
type statsReport struct {
	Wait     sim.Summary `json:"wait"`
	Checkout sim.Summary `json:"checkout"`
	Total    sim.Summary `json:"total"`
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the checkout simulation over an event file",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if eventsPath == "" {
			logrus.Fatalf("No event file provided. Exiting simulation.")
		}
		data, err := os.ReadFile(eventsPath)
		if err != nil {
			logrus.Fatalf("unable to read event file: %v", err)
		}

		cfg := sim.Config{
			LineCounts: map[sim.LineCategory]int{
				sim.CategoryCashier: cashierLines,
				sim.CategoryExpress: expressLines,
				sim.CategorySelf:    selfLines,
			},
			Policy:     policy,
			Model:      model,
			Seed:       seed,
			CountFirst: countFirst,
		}

		logrus.Infof("Starting simulation with %d cashier, %d express, %d self-checkout lines, policy=%s, model=%s",
			cashierLines, expressLines, selfLines, policy, model)
		startTime := time.Now()

		s, err := sim.NewSimulator(cfg)
		if err != nil {
			logrus.Fatalf("invalid configuration: %v", err)
		}
		events, err := sim.ParseEvents(string(data), s.Store())
		if err != nil {
			logrus.Fatalf("unable to load events from %s: %v", eventsPath, err)
		}
		if err := s.Run(events); err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}
		logrus.Infof("Simulation complete: %d events in %v, final tick %d",
			s.ExecutedEvents(), time.Since(startTime), s.Clock())

		if err := printReport(s); err != nil {
			logrus.Fatalf("unable to report statistics: %v", err)
		}
	},
}

// printReport queries all three criteria over the flag-selected window and
// prints them as JSON, optionally writing the same report to resultsPath.
func printReport(s *sim.Simulator) error {
	var ids []int
	if len(lineIDs) > 0 {
		ids = lineIDs
	}
	report := statsReport{}
	for _, q := range []struct {
		criterion sim.Criterion
		dest      *sim.Summary
	}{
		{sim.CriterionWait, &report.Wait},
		{sim.CriterionCheckout, &report.Checkout},
		{sim.CriterionTotal, &report.Total},
	} {
		res, err := s.QueryStatistics(sim.StatsQuery{
			Criterion: q.criterion,
			Start:     windowStart,
			End:       windowEnd,
			LineIDs:   ids,
			FilterBy:  sim.FilterField(filterBy),
		})
		if err != nil {
			return err
		}
		*q.dest = res.Summary
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println("=== Checkout Statistics ===")
	fmt.Println(string(out))
	fmt.Println("===========================")

	if resultsPath != "" {
		if err := os.WriteFile(resultsPath, out, 0644); err != nil {
			return err
		}
		logrus.Infof("Report written to %s", resultsPath)
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&eventsPath, "events", "", "Path to the event file (<t>,join,<items> / <t>,open,<id> / <t>,close,<id>)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Store topology
	runCmd.Flags().IntVar(&cashierLines, "cashier-lines", 2, "Number of staffed cashier lines")
	runCmd.Flags().IntVar(&expressLines, "express-lines", 1, "Number of express lines (10 items or fewer)")
	runCmd.Flags().IntVar(&selfLines, "self-lines", 1, "Number of self-checkout lines")

	// Behaviour knobs
	runCmd.Flags().StringVar(&policy, "policy", "least-person", "Line-selection policy ("+strings.Join(sim.AvailableSelectionPolicies(), ", ")+")")
	runCmd.Flags().StringVar(&model, "checkout-model", "deterministic", "Checkout-duration model ("+strings.Join(sim.AvailableCheckoutModels(), ", ")+")")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for the random policy and the stochastic model")
	runCmd.Flags().BoolVar(&countFirst, "count-first", true, "Least-time projections include the customer currently being served")

	// Statistics report
	runCmd.Flags().StringVar(&filterBy, "filter-by", "join", "Timestamp the report window applies to (join, begin, finish)")
	runCmd.Flags().Int64Var(&windowStart, "window-start", 0, "Inclusive lower bound of the report window")
	runCmd.Flags().Int64Var(&windowEnd, "window-end", 0, "Exclusive upper bound of the report window (0 = unbounded)")
	runCmd.Flags().IntSliceVar(&lineIDs, "lines", nil, "Comma-separated line ids to report on (default all)")
	runCmd.Flags().StringVar(&resultsPath, "results", "", "Optional path to also write the JSON report to")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
