package chain

import (
	"github.com/kv-77/resultkit/pkg/result"
)

// Chain wraps a single result.Result for fluent synchronous composition.
// Like the Result it carries, a Chain is an immutable value; every step
// returns a new Chain.
type Chain[T, E any] struct {
	res result.Result[T, E]
}

func Start[T, E any](r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

func FromValue[T, E any](v T) Chain[T, E] {
	return Start(result.Success[T, E](v))
}

func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.res
}

// Then composes a step that already returns a Result.
func (c Chain[T, E]) Then(onSuccess func(T) result.Result[T, E]) Chain[T, E] {
	if c.res.IsError() {
		return c
	}
	return Chain[T, E]{res: onSuccess(c.res.Value())}
}

// Map transforms the successful value.
func (c Chain[T, E]) Map(onSuccess func(T) T) Chain[T, E] {
	if c.res.IsError() {
		return c
	}
	return Chain[T, E]{res: result.Success[T, E](onSuccess(c.res.Value()))}
}

// MapError transforms the error payload, leaving a success untouched.
func (c Chain[T, E]) MapError(onError func(E) E) Chain[T, E] {
	return Chain[T, E]{res: result.MapError(c.res, onError)}
}

// While keeps applying onSuccess as long as the chain succeeds and the
// condition holds for the current value.
func (c Chain[T, E]) While(onSuccess func(T) result.Result[T, E], while func(T) bool) Chain[T, E] {
	for !c.res.IsError() && while(c.res.Value()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Ensure triggers a side effect for a successful value without changing the
// result.
func (c Chain[T, E]) Ensure(onSuccess func(T)) Chain[T, E] {
	c.res.IfSuccess(onSuccess)
	return c
}

// And sequences this chain with a required one: the first error wins,
// otherwise the required chain's result is kept.
func (c Chain[T, E]) And(required Chain[T, E]) Chain[T, E] {
	return Chain[T, E]{res: result.AndThen(c.res, required.res)}
}

// Or falls back to an alternative chain when this one has failed.
func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	if c.res.IsError() {
		return alternative
	}
	return c
}

// Recover collapses the chain to a plain value, transforming the error
// payload into a replacement value when the chain has failed.
func (c Chain[T, E]) Recover(onError func(E) T) T {
	return c.res.RecoverError(onError)
}

// Finally collapses the chain to a final value via one of the two handlers.
func (c Chain[T, E]) Finally(onSuccess func(T) T, onFailure func(E) T) T {
	if c.res.IsError() {
		return onFailure(c.res.Err())
	}
	return onSuccess(c.res.Value())
}
