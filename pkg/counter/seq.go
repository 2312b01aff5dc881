package counter

import "iter"

// Pair holds one element from each side of a Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip pairs a and b element by element and stops at the shorter one.
func Zip[A, B any](a iter.Seq[A], b iter.Seq[B]) iter.Seq[Pair[A, B]] {
	return func(yield func(Pair[A, B]) bool) {
		next, stop := iter.Pull(b)
		defer stop()

		for va := range a {
			vb, ok := next()
			if !ok || !yield(Pair[A, B]{First: va, Second: vb}) {
				return
			}
		}
	}
}

// Skip drops the first n elements of seq.
func Skip[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		i := 0
		for v := range seq {
			if i < n {
				i++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Map applies fn to every element of seq.
func Map[T, R any](seq iter.Seq[T], fn func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Filter keeps the elements of seq for which keep returns true.
func Filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// Reduce folds seq with fn, using the first element as the initial value.
// It returns false when seq is empty.
func Reduce[T any](seq iter.Seq[T], fn func(acc, v T) T) (T, bool) {
	var acc T
	first := true
	for v := range seq {
		if first {
			acc, first = v, false
			continue
		}
		acc = fn(acc, v)
	}
	return acc, !first
}

// SumOfSquaredMultiplesOfThree zips two counters, skips the first pair,
// multiplies each pair and sums the products divisible by three.
func SumOfSquaredMultiplesOfThree(a, b *Counter) (int, bool) {
	products := Map(Skip(Zip(a.All(), b.All()), 1), func(p Pair[int, int]) int {
		return p.First * p.Second
	})
	return Reduce(Filter(products, func(x int) bool { return x%3 == 0 }), func(x, y int) int {
		return x + y
	})
}
