// Package main provides the memo CLI application.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cicd-ai-toolkit/memo/pkg/counter"
	"github.com/cicd-ai-toolkit/memo/pkg/errors"
	"github.com/cicd-ai-toolkit/memo/pkg/numstat"
)

func newCountCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Run the counting iterator",
		Long: `Print the values of a counter from 1 to --limit, their sum, and the
result of zipping two counters, skipping the first pair, multiplying and
summing the products divisible by three.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return errors.InputError(fmt.Sprintf("limit must not be negative, got %d", limit), nil)
			}

			var values []string
			sum := 0
			for v := range counter.NewWithLimit(limit).All() {
				values = append(values, strconv.Itoa(v))
				sum += v
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "values: %s\n", strings.Join(values, " "))
			fmt.Fprintf(out, "sum: %d\n", sum)

			if chain, ok := counter.SumOfSquaredMultiplesOfThree(counter.NewWithLimit(limit), counter.NewWithLimit(limit)); ok {
				fmt.Fprintf(out, "chain: %d\n", chain)
			} else {
				fmt.Fprintln(out, "chain: none")
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", counter.DefaultLimit, "Last value produced by the counter")
	return cmd
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats NUMBER...",
		Short: "Print mean, median and mode of a list of integers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers := make([]int, 0, len(args))
			for _, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return errors.InputError(fmt.Sprintf("invalid number %q", arg), err).WithContext("arg", arg)
				}
				numbers = append(numbers, n)
			}

			summary, err := numstat.Summarize(numbers)
			if err != nil {
				return errors.InputError("cannot summarize", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "count: %d\n", summary.Count)
			fmt.Fprintf(out, "mean: %d\n", summary.Mean)
			fmt.Fprintf(out, "median: %d\n", summary.Median)
			fmt.Fprintf(out, "mode: %d\n", summary.Mode)
			return nil
		},
	}
}
