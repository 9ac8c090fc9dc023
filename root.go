package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"solution_calc/internal/logging"
	"solution_calc/metrics"
	"solution_calc/solution"
)

// app holds the per-invocation diagnostics wiring shared by subcommands.
var app struct {
	logger   *slog.Logger
	registry *prometheus.Registry
	sink     solution.Sink
}

var rootCmd = &cobra.Command{
	Use:   "solution_calc",
	Short: "Thermodynamic properties of aqueous solutions",
	Long: `solution_calc builds an aqueous solution from a YAML description and reports
ionic strength, activity coefficients, water activity and mixing energies.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		levelName, _ := cmd.Flags().GetString("log")
		level, err := logging.ParseLevel(levelName)
		if err != nil {
			return err
		}
		app.logger = logging.New(level)
		app.registry = prometheus.NewRegistry()
		app.sink = solution.MultiSink{
			solution.NewLogSink(app.logger),
			metrics.New(app.registry),
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("metrics-out")
		if path == "" {
			return nil
		}
		if err := prometheus.WriteToTextfile(path, app.registry); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
		app.logger.Info("metrics written", "path", path)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log", "warn", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("metrics-out", "", "Write Prometheus metrics to this textfile")
}

// loadSolution reads a description file and builds it with the shared sink.
func loadSolution(path string) (*solution.Solution, error) {
	app.logger.Debug("loading solution", "path", path)
	cfg, err := LoadSolutionConfig(path)
	if err != nil {
		return nil, err
	}
	s, err := cfg.Build(solution.WithSink(app.sink))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
