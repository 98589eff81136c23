package cmd

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grocery-sim/grocery-sim/sim/workload"
)

var (
	// CLI flags for workload generation
	specPath   string // Path to the YAML workload spec
	outputPath string // Where to write the generated event file
)

// generateCmd renders a workload spec into an event file that `run` accepts.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic arrival event file from a workload spec",
	Run: func(cmd *cobra.Command, args []string) {
		if specPath == "" {
			logrus.Fatalf("No workload spec provided. Exiting.")
		}

		spec, err := workload.LoadWorkloadSpec(specPath)
		if err != nil {
			logrus.Fatalf("unable to load workload spec: %v", err)
		}
		text, err := workload.Generate(spec)
		if err != nil {
			logrus.Fatalf("unable to generate workload: %v", err)
		}
		if err := os.WriteFile(outputPath, []byte(text), 0644); err != nil {
			logrus.Fatalf("unable to write %s: %v", outputPath, err)
		}

		events := 0
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			events = strings.Count(trimmed, "\n") + 1
		}
		logrus.Infof("Wrote %d events to %s", events, outputPath)
	},
}

func init() {
	generateCmd.Flags().StringVar(&specPath, "spec", "", "YAML workload spec with arrival segments")
	generateCmd.Flags().StringVar(&outputPath, "output", "events.txt", "Output event file path")

	rootCmd.AddCommand(generateCmd)
}
