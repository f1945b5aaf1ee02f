package result

import (
	"github.com/kv-77/resultkit/pkg/result/opt"
)

// Result is a value that is exactly one of a successful result of type R or
// an error value of type E. Both payloads are immutable once the Result is
// constructed; combinators build new Result values instead of mutating.
//
// Equality is structural over the payloads: two Success values compare equal
// when their values do, two Error values when their error payloads do.
type Result[R, E any] struct {
	value R
	err   E
	isErr bool
}

// Success produces a Result containing the given successful value.
func Success[R, E any](value R) Result[R, E] {
	return Result[R, E]{value: value}
}

// Error produces a Result containing the given error value.
func Error[R, E any](err E) Result[R, E] {
	return Result[R, E]{err: err, isErr: true}
}

// FromOpt produces a successful Result from a present Opt, or an error
// Result carrying errIfNone when the Opt is absent.
func FromOpt[R, E any](o opt.Opt[R], errIfNone E) Result[R, E] {
	if v, ok := o.Get(); ok {
		return Success[R, E](v)
	}
	return Error[R](errIfNone)
}

// FromOptResult inverts an optional Result into a Result of an optional
// value. An absent input becomes Success(None); a present input re-wraps the
// inner success payload as Some, or passes the inner error through.
func FromOptResult[R, E any](o opt.Opt[Result[R, E]]) Result[opt.Opt[R], E] {
	r, ok := o.Get()
	if !ok {
		return Success[opt.Opt[R], E](opt.None[R]())
	}
	return Map(r, opt.Some[R])
}

// IsError reports whether this Result holds an error value.
func (r Result[R, E]) IsError() bool {
	return r.isErr
}

// Value returns the success payload. It is meaningful only when IsError
// reports false; for an error Result it is the zero value of R.
func (r Result[R, E]) Value() R {
	return r.value
}

// Err returns the error payload. It is meaningful only when IsError reports
// true; for a successful Result it is the zero value of E.
func (r Result[R, E]) Err() E {
	return r.err
}

// IfSuccess invokes consume with the success payload, as a side effect.
// It does nothing for an error Result.
func (r Result[R, E]) IfSuccess(consume func(R)) {
	if !r.isErr {
		consume(r.value)
	}
}

// RecoverError returns the success payload, or produces a replacement value
// by transforming the error payload. It never fails.
func (r Result[R, E]) RecoverError(transform func(E) R) R {
	if r.isErr {
		return transform(r.err)
	}
	return r.value
}

// ThrowError returns the success payload with a nil error, or converts the
// error payload into a plain Go error via transform. This is the boundary
// operation for re-entering error-returning control flow.
func (r Result[R, E]) ThrowError(transform func(E) error) (R, error) {
	if r.isErr {
		var zero R
		return zero, transform(r.err)
	}
	return r.value, nil
}

// DiscardError projects the Result onto an optional value, dropping the
// error payload: Some(value) for a success, None for an error.
func (r Result[R, E]) DiscardError() opt.Opt[R] {
	if r.isErr {
		return opt.None[R]()
	}
	return opt.Some(r.value)
}

// Map transforms the success payload, passing an error Result through with
// its payload unchanged. The transformation must be total; use FlatMap to
// chain operations that can themselves fail.
func Map[T, U, E any](r Result[T, E], transform func(T) U) Result[U, E] {
	if r.isErr {
		return Error[U](r.err)
	}
	return Success[U, E](transform(r.value))
}

// FlatMap transforms the success payload with a transformation that can
// itself fail, passing an error Result through with its payload unchanged.
// This is the monadic bind over Result.
func FlatMap[T, U, E any](r Result[T, E], transform func(T) Result[U, E]) Result[U, E] {
	if r.isErr {
		return Error[U](r.err)
	}
	return transform(r.value)
}

// MapError transforms the error payload, passing a successful Result through
// with its value unchanged. The dual of Map, it adapts a lower-level error
// type to a higher-level one without touching the success path.
func MapError[T, E1, E2 any](r Result[T, E1], transform func(E1) E2) Result[T, E2] {
	if r.isErr {
		return Error[T](transform(r.err))
	}
	return Success[T, E2](r.value)
}

// AndThen combines this Result with a successor: a successful Result yields
// the successor verbatim, an error Result keeps its own error and discards
// the successor. Only the leftmost error survives sequencing.
func AndThen[T, U, E any](r Result[T, E], next Result[U, E]) Result[U, E] {
	if r.isErr {
		return Error[U](r.err)
	}
	return next
}

// Mapping partially applies Map, producing a unary function over Results
// that can be plugged into generic sequence pipelines.
func Mapping[T, U, E any](transform func(T) U) func(Result[T, E]) Result[U, E] {
	return func(r Result[T, E]) Result[U, E] {
		return Map(r, transform)
	}
}

// FlatMapping partially applies FlatMap, producing a unary function over
// Results.
func FlatMapping[T, U, E any](transform func(T) Result[U, E]) func(Result[T, E]) Result[U, E] {
	return func(r Result[T, E]) Result[U, E] {
		return FlatMap(r, transform)
	}
}

// ErrorMapping partially applies MapError, producing a unary function over
// Results.
func ErrorMapping[T, E1, E2 any](transform func(E1) E2) func(Result[T, E1]) Result[T, E2] {
	return func(r Result[T, E1]) Result[T, E2] {
		return MapError(r, transform)
	}
}
