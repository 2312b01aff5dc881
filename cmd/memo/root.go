// Package main provides the memo CLI application.
package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/cicd-ai-toolkit/memo/pkg/config"
	"github.com/cicd-ai-toolkit/memo/pkg/errors"
	"github.com/cicd-ai-toolkit/memo/pkg/memo"
	"github.com/cicd-ai-toolkit/memo/pkg/observability"
	"github.com/cicd-ai-toolkit/memo/pkg/version"
	"github.com/cicd-ai-toolkit/memo/pkg/workout"
)

// rootFlags holds the persistent flags shared by every command
type rootFlags struct {
	config   string
	logLevel string
	metrics  bool
}

// app is the state built once per invocation before a command runs.
type app struct {
	flags    rootFlags
	cfg      *config.Config
	logger   observability.Logger
	registry *prometheus.Registry
	metrics  *observability.Metrics
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "memo",
		Short: "Memoized calculation toolkit",
		Long: `memo wraps slow calculations in a memoizing cache.

The workout and batch commands plan workouts whose amounts come from an
expensive calculation; repeated intensities are answered from the cache.
The count and stats commands run the small iterator and list helpers.`,
		Version:           version.Get().String(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.report(cmd)
		},
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.InputError("invalid flags", err)
	})

	rootCmd.PersistentFlags().StringVarP(&a.flags.config, "config", "c", "", "Path to configuration file (default: $HOME/.memo/config.yaml then ./.memo.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&a.flags.metrics, "metrics", false, "Print cache metrics after the command")

	rootCmd.AddCommand(newWorkoutCmd(a))
	rootCmd.AddCommand(newBatchCmd(a))
	rootCmd.AddCommand(newCountCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup loads configuration and builds the logger and metrics.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	loader := config.NewLoader()

	var (
		cfg *config.Config
		err error
	)
	if a.flags.config != "" {
		cfg, err = loader.LoadFromPath(a.flags.config)
	} else {
		cfg, err = loader.Load()
	}
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Global.LogLevel = a.flags.logLevel
	}
	if cmd.Flags().Changed("metrics") {
		cfg.Global.Metrics = a.flags.metrics
	}
	if err := cfg.Global.Validate(); err != nil {
		return errors.ConfigError("invalid flags", err)
	}

	a.cfg = cfg
	a.logger = observability.NewLoggerTo(cmd.ErrOrStderr(), cfg.Global.LogLevel).
		With(observability.String("run_id", uuid.NewString()))
	a.registry = prometheus.NewRegistry()
	a.metrics = observability.NewMetrics(a.registry, cfg.Global.MetricsNamespace)

	a.logger.Debug("configuration loaded",
		observability.String("command", cmd.Name()),
		observability.Duration("delay", cfg.Workout.Delay))
	if env := config.GetEnvConfig(); len(env) > 0 {
		fields := make([]observability.Field, 0, len(env))
		for name, value := range env {
			fields = append(fields, observability.String(name, value))
		}
		a.logger.Debug("environment overrides", fields...)
	}
	return nil
}

// workoutOptions turns the loaded config into planner options.
func (a *app) workoutOptions() workout.Options {
	return workout.Options{
		Delay:             a.cfg.Workout.Delay,
		LowIntensityLimit: a.cfg.Workout.LowIntensityLimit,
		RestNumber:        a.cfg.Workout.RestNumber,
		Logger:            a.logger,
		Observer:          a.metrics,
		Recorder:          a.metrics,
	}
}

// printCacheStats writes a one-line cache summary.
func printCacheStats(cmd *cobra.Command, stats memo.Stats) {
	fmt.Fprintf(cmd.OutOrStdout(), "cache: %s entries, %s hits, %s misses (%s%% hit rate)\n",
		humanize.Comma(int64(stats.Len)),
		humanize.Comma(stats.Hits),
		humanize.Comma(stats.Misses),
		humanize.FtoaWithDigits(stats.HitRate()*100, 1))
}

// report prints the gathered metrics when enabled.
func (a *app) report(cmd *cobra.Command) error {
	if a.cfg == nil || !a.cfg.Global.Metrics {
		return nil
	}

	samples, err := observability.Snapshot(a.registry)
	if err != nil {
		a.logger.Error("gathering metrics failed", observability.Err(err))
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "metrics:")
	for _, s := range samples {
		fmt.Fprintf(out, "  %s %s\n", s.Name, humanize.FtoaWithDigits(s.Value, 3))
	}
	return nil
}
