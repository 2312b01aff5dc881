// Package numstat computes summary statistics over integer lists.
package numstat

import (
	"errors"
	"slices"
)

// ErrEmpty is returned for statistics over an empty list.
var ErrEmpty = errors.New("numstat: empty list")

// Summary holds the statistics computed by Summarize.
type Summary struct {
	Count  int
	Mean   int
	Median int
	Mode   int
}

// Mean returns the integer mean of numbers, truncated toward zero.
func Mean(numbers []int) (int, error) {
	if len(numbers) == 0 {
		return 0, ErrEmpty
	}
	sum := 0
	for _, n := range numbers {
		sum += n
	}
	return sum / len(numbers), nil
}

// Median returns the middle element of a sorted copy of numbers.
// For an even count it returns the upper of the two middle elements.
func Median(numbers []int) (int, error) {
	if len(numbers) == 0 {
		return 0, ErrEmpty
	}
	sorted := slices.Clone(numbers)
	slices.Sort(sorted)
	return sorted[len(sorted)/2], nil
}

// Mode returns the most frequent value in numbers. Ties go to the
// smallest value.
func Mode(numbers []int) (int, error) {
	if len(numbers) == 0 {
		return 0, ErrEmpty
	}

	counts := make(map[int]int, len(numbers))
	for _, n := range numbers {
		counts[n]++
	}

	mode, best := 0, 0
	for n, c := range counts {
		if c > best || (c == best && n < mode) {
			mode, best = n, c
		}
	}
	return mode, nil
}

// Summarize computes every statistic at once.
func Summarize(numbers []int) (Summary, error) {
	mean, err := Mean(numbers)
	if err != nil {
		return Summary{}, err
	}
	median, _ := Median(numbers)
	mode, _ := Mode(numbers)

	return Summary{
		Count:  len(numbers),
		Mean:   mean,
		Median: median,
		Mode:   mode,
	}, nil
}
