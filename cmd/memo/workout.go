// Package main provides the memo CLI application.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cicd-ai-toolkit/memo/pkg/errors"
	"github.com/cicd-ai-toolkit/memo/pkg/observability"
	"github.com/cicd-ai-toolkit/memo/pkg/workout"
)

// workoutFlags holds the flags for the workout command
type workoutFlags struct {
	intensity uint32
	random    uint32
	verbose   bool
}

func newWorkoutCmd(a *app) *cobra.Command {
	var opts workoutFlags

	cmd := &cobra.Command{
		Use:   "workout",
		Short: "Generate a workout plan",
		Long: `Generate today's workout plan for an intensity.

Low intensities get pushups and situps; both read the same cached
calculation, so the slow part runs once.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wopts := a.workoutOptions()
			if cmd.Flags().Changed("delay") {
				wcfg := a.cfg.Workout
				wcfg.Delay, _ = cmd.Flags().GetDuration("delay")
				if err := wcfg.Validate(); err != nil {
					return errors.InputError("invalid --delay", err)
				}
				wopts.Delay = wcfg.Delay
			}

			planner, err := workout.NewPlanner(wopts)
			if err != nil {
				return err
			}

			plan := planner.Generate(opts.intensity, opts.random)
			for _, line := range plan.Lines() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			if opts.verbose {
				printCacheStats(cmd, planner.Stats())
			}
			return nil
		},
	}

	cmd.Flags().Uint32VarP(&opts.intensity, "intensity", "i", 0, "Workout intensity")
	cmd.Flags().Uint32VarP(&opts.random, "random", "r", 7, "Random number for the day")
	cmd.Flags().Duration("delay", 0, "Override the calculation delay")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print cache statistics")
	_ = cmd.MarkFlagRequired("intensity")

	return cmd
}

// batchFlags holds the flags for the batch command
type batchFlags struct {
	concurrency int
	verbose     bool
}

func newBatchCmd(a *app) *cobra.Command {
	var opts batchFlags

	cmd := &cobra.Command{
		Use:   "batch INTENSITY[:RANDOM]...",
		Short: "Generate many workout plans concurrently",
		Long: `Generate one plan per argument, several at a time, over one shared cache.

Each argument is an intensity, optionally followed by ":" and the random
number for that day (default 7).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requests, err := parseRequests(args)
			if err != nil {
				return err
			}

			concurrency := a.cfg.Batch.Concurrency
			if cmd.Flags().Changed("concurrency") {
				concurrency = opts.concurrency
			}
			if concurrency < 1 {
				return errors.InputError(fmt.Sprintf("concurrency must be positive, got %d", concurrency), nil)
			}

			planner, err := workout.NewConcurrentPlanner(a.workoutOptions())
			if err != nil {
				return err
			}

			a.logger.Debug("planning batch",
				observability.Int("requests", len(requests)),
				observability.Int("concurrency", concurrency))
			plans, err := planner.GenerateAll(cmd.Context(), requests, concurrency)
			if err != nil {
				a.logger.Warn("batch stopped", observability.Err(err))
				return err
			}

			out := cmd.OutOrStdout()
			for _, plan := range plans {
				fmt.Fprintf(out, "[%d:%d] %s\n", plan.Intensity, plan.Random, strings.Join(plan.Lines(), " "))
			}
			if opts.verbose {
				printCacheStats(cmd, planner.Stats())
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "j", 0, "Plans generated at once (default from config)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print cache statistics")

	return cmd
}

// parseRequests parses INTENSITY[:RANDOM] arguments.
func parseRequests(args []string) ([]workout.Request, error) {
	requests := make([]workout.Request, 0, len(args))
	for _, arg := range args {
		intensityStr, randomStr, hasRandom := strings.Cut(arg, ":")

		intensity, err := strconv.ParseUint(intensityStr, 10, 32)
		if err != nil {
			return nil, errors.InputError(fmt.Sprintf("invalid intensity %q", arg), err).WithContext("arg", arg)
		}

		random := uint64(7)
		if hasRandom {
			random, err = strconv.ParseUint(randomStr, 10, 32)
			if err != nil {
				return nil, errors.InputError(fmt.Sprintf("invalid random number %q", arg), err).WithContext("arg", arg)
			}
		}

		requests = append(requests, workout.Request{Intensity: uint32(intensity), Random: uint32(random)})
	}
	return requests, nil
}
