package collect

import (
	"iter"
	"strings"

	"github.com/kv-77/resultkit/pkg/result"
)

// Collector describes how to build an aggregate value C from elements of
// type T through an intermediate container A: Supply creates an empty
// container, Accumulate inserts one element, Combine merges two partially
// built containers, Finish turns the container into the final value.
//
// Combine must be associative when partial containers are built
// independently and merged later.
type Collector[T, A, C any] struct {
	Supply     func() A
	Accumulate func(A, T) A
	Combine    func(A, A) A
	Finish     func(A) C
}

// Collect runs a collector over a sequence, returning the finished value.
func Collect[T, A, C any](seq iter.Seq[T], col Collector[T, A, C]) C {
	acc := col.Supply()
	for v := range seq {
		acc = col.Accumulate(acc, v)
	}
	return col.Finish(acc)
}

// CollectSlice runs a collector over a slice, returning the finished value.
func CollectSlice[T, A, C any](items []T, col Collector[T, A, C]) C {
	acc := col.Supply()
	for _, v := range items {
		acc = col.Accumulate(acc, v)
	}
	return col.Finish(acc)
}

// ToSingleResult lifts a collector over plain values into a collector over
// Results, adding all-or-nothing error semantics on top of the unchanged
// aggregation strategy.
//
// Accumulation short-circuits on the first error Result: once the
// accumulator has failed, no further elements are inserted and the first
// error is kept permanently. When two partial accumulators are merged and
// both have failed, the left accumulator's error wins, consistent with
// first-error-wins under a left-to-right merge order.
func ToSingleResult[E, T, A, C any](col Collector[T, A, C]) Collector[result.Result[T, E], result.Result[A, E], result.Result[C, E]] {
	return Collector[result.Result[T, E], result.Result[A, E], result.Result[C, E]]{
		Supply: func() result.Result[A, E] {
			return result.Success[A, E](col.Supply())
		},
		Accumulate: func(acc result.Result[A, E], elem result.Result[T, E]) result.Result[A, E] {
			return result.FlatMap(acc, func(container A) result.Result[A, E] {
				return result.Map(elem, func(v T) A {
					return col.Accumulate(container, v)
				})
			})
		},
		Combine: func(left, right result.Result[A, E]) result.Result[A, E] {
			return result.FlatMap(left, func(c1 A) result.Result[A, E] {
				return result.Map(right, func(c2 A) A {
					return col.Combine(c1, c2)
				})
			})
		},
		Finish: func(acc result.Result[A, E]) result.Result[C, E] {
			return result.Map(acc, col.Finish)
		},
	}
}

// ToSlice collects elements into a slice, preserving encounter order.
func ToSlice[T any]() Collector[T, []T, []T] {
	return Collector[T, []T, []T]{
		Supply:     func() []T { return nil },
		Accumulate: func(acc []T, v T) []T { return append(acc, v) },
		Combine:    func(a, b []T) []T { return append(a, b...) },
		Finish:     func(acc []T) []T { return acc },
	}
}

// Joining concatenates string elements separated by sep.
func Joining(sep string) Collector[string, []string, string] {
	return Collector[string, []string, string]{
		Supply:     func() []string { return nil },
		Accumulate: func(acc []string, s string) []string { return append(acc, s) },
		Combine:    func(a, b []string) []string { return append(a, b...) },
		Finish:     func(acc []string) string { return strings.Join(acc, sep) },
	}
}

// Counting counts elements.
func Counting[T any]() Collector[T, int, int] {
	return Collector[T, int, int]{
		Supply:     func() int { return 0 },
		Accumulate: func(n int, _ T) int { return n + 1 },
		Combine:    func(a, b int) int { return a + b },
		Finish:     func(n int) int { return n },
	}
}

// ToMap collects elements into a map of key(v) to val(v). Later elements
// overwrite earlier ones on key collisions; Combine is right-biased the
// same way.
func ToMap[T any, K comparable, V any](key func(T) K, val func(T) V) Collector[T, map[K]V, map[K]V] {
	return Collector[T, map[K]V, map[K]V]{
		Supply: func() map[K]V { return make(map[K]V) },
		Accumulate: func(acc map[K]V, v T) map[K]V {
			acc[key(v)] = val(v)
			return acc
		},
		Combine: func(a, b map[K]V) map[K]V {
			for k, v := range b {
				a[k] = v
			}
			return a
		},
		Finish: func(acc map[K]V) map[K]V { return acc },
	}
}

// GroupingBy collects elements into slices keyed by key(v), preserving
// encounter order inside each group.
func GroupingBy[T any, K comparable](key func(T) K) Collector[T, map[K][]T, map[K][]T] {
	return Collector[T, map[K][]T, map[K][]T]{
		Supply: func() map[K][]T { return make(map[K][]T) },
		Accumulate: func(acc map[K][]T, v T) map[K][]T {
			k := key(v)
			acc[k] = append(acc[k], v)
			return acc
		},
		Combine: func(a, b map[K][]T) map[K][]T {
			for k, vs := range b {
				a[k] = append(a[k], vs...)
			}
			return a
		},
		Finish: func(acc map[K][]T) map[K][]T { return acc },
	}
}
