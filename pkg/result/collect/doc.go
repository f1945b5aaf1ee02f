// Package collect folds sequences into aggregate values through pluggable
// Collector strategies, and makes any such strategy failure-aware.
//
// ToSingleResult wraps a Collector over plain values into a Collector over
// result.Result elements producing one Result over the finished aggregate:
// all elements succeed and the aggregate is built in order, or the first
// error wins and the partial aggregate is discarded.
//
//	results := []result.Result[int, string]{ ... }
//	r := collect.CollectSlice(results,
//		collect.ToSingleResult[string](collect.ToSlice[int]()))
//	// r is result.Result[[]int, string]
//
// The reducer introduces no locking of its own: a single accumulator must
// not be advanced by more than one accumulation step at a time, and Combine
// of the lifted collector is exactly as concurrency-safe as the underlying
// strategy's Combine.
package collect
