package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"skyline/internal/config"
	"skyline/internal/loader"
	"skyline/internal/logging"
	"skyline/internal/report"
	"skyline/internal/skyline"
	"skyline/internal/types"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Resolved per invocation in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "skyline <input-file>",
	Short: "Compute the skyline of a set of 2D integer points",
	Long: `Reads a point file and prints the points not dominated by any other
point, in ascending x order.

Input format: the first token is the number of points (advisory only),
followed by whitespace-separated x y pairs until end of file. If the path
cannot be opened, the same path with a ".txt" suffix is tried.

Example:
  skyline input500000
  skyline -c skyline.yaml points.txt`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		base, err := logging.New(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		var runID string
		logger, runID = logging.WithRunID(base)
		logging.Get(logger, logging.CategoryBoot).Debug("skyline starting",
			zap.String("run_id", runID),
			zap.String("config", configPath),
			zap.String("strategy", cfg.Solver.Strategy),
			zap.Int("parallel_depth", cfg.Solver.ParallelDepth),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runSkyline,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (YAML); defaults apply when unset or missing")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		if logger != nil {
			logger.Error("skyline failed", zap.Error(err))
			_ = logger.Sync()
		}
		os.Exit(1)
	}
}

// runSkyline loads the input, sorts it by x once, solves and prints the report.
// Nothing is printed unless loading succeeds.
func runSkyline(cmd *cobra.Command, args []string) error {
	start := time.Now()

	ld := loader.New(loader.Options{
		CoordinateBits:  cfg.Loader.CoordinateBits,
		MaxCapacityHint: cfg.Loader.MaxCapacityHint,
	}, logging.Get(logger, logging.CategoryLoader))

	set, err := ld.LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", errLoad, err)
	}

	points := set.Points
	types.SortByX(points)

	solver := skyline.NewSolver(skyline.Options{
		Strategy:      skyline.Strategy(cfg.Solver.Strategy),
		ParallelDepth: cfg.Solver.ParallelDepth,
	}, logging.Get(logger, logging.CategorySolver))
	result := solver.Solve(points)

	out := cmd.OutOrStdout()
	if err := report.Write(out, result); err != nil {
		return err
	}
	elapsed := time.Since(start)
	if err := report.WriteElapsed(out, elapsed); err != nil {
		return err
	}

	logging.Get(logger, logging.CategoryReport).Info("skyline reported",
		zap.String("source", set.Source),
		zap.Int("declared", set.Declared),
		zap.Int("skyline", len(result)),
		zap.Duration("elapsed", elapsed),
	)
	return nil
}
