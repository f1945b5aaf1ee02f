package catch

import (
	"errors"
	"fmt"

	"github.com/kv-77/resultkit/pkg/result"
)

// Unit is the success payload of adapted operations that produce no value.
type Unit struct{}

// Supplier is a nullary operation that produces a value or fails.
type Supplier[R any] func() (R, error)

// Func is a unary operation that produces a value or fails.
type Func[T, R any] func(T) (R, error)

// BiFunc is a binary operation that produces a value or fails.
type BiFunc[T, U, R any] func(T, U) (R, error)

// Consumer is a unary side-effecting operation that can fail.
type Consumer[T any] func(T) error

// BiConsumer is a binary side-effecting operation that can fail.
type BiConsumer[T, U any] func(T, U) error

// Runnable is a nullary side-effecting operation that can fail.
type Runnable func() error

// UnexpectedError is the panic payload raised when an adapted operation
// fails with an error outside the adapter's declared type. Such a failure is
// a contract violation on the caller's side, not a business-level error, so
// it is never converted into a Result.
type UnexpectedError struct {
	Cause error
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("error does not match the adapter's declared type: %v", e.Cause)
}

func (e *UnexpectedError) Unwrap() error {
	return e.Cause
}

// Adapter converts operations failing with errors of type S into total
// functions returning Results carrying error payloads of type D. An Adapter
// holds only the declared error type and a pure conversion; it is immutable
// and safe to share and reuse across any number of adapted operations.
type Adapter[S error, D any] struct {
	convert func(S) D
}

// As produces the identity Adapter for the declared error type S: captured
// errors are carried in the Result unconverted. As[error]() declares the
// error interface itself and therefore captures every returned error.
func As[S error]() Adapter[S, S] {
	return Adapter[S, S]{
		convert: func(caught S) S { return caught },
	}
}

// Map derives a new Adapter with the same declared error type and a
// conversion extended by conv. The receiver is left untouched.
func Map[S error, D, E any](a Adapter[S, D], conv func(D) E) Adapter[S, E] {
	inner := a.convert
	return Adapter[S, E]{
		convert: func(caught S) E { return conv(inner(caught)) },
	}
}

// adapt applies the adapter's failure policy to a non-nil returned error:
//
//   - an error matching the declared type S (directly or through its wrap
//     chain, per errors.As) is converted into the Result error payload;
//   - any other returned error is a contract violation and raises an
//     *UnexpectedError fault carrying the original as its cause.
//
// Panics raised by the wrapped operation itself never reach adapt: the
// adapter does not recover, so runtime faults propagate past it untouched.
func (a Adapter[S, D]) adapt(err error) D {
	var caught S
	if errors.As(err, &caught) {
		return a.convert(caught)
	}
	panic(&UnexpectedError{Cause: err})
}

// ForSupplier adapts a nullary operation into a total function returning a
// Result.
func ForSupplier[R any, S error, D any](a Adapter[S, D], op Supplier[R]) func() result.Result[R, D] {
	return func() result.Result[R, D] {
		v, err := op()
		if err != nil {
			return result.Error[R](a.adapt(err))
		}
		return result.Success[R, D](v)
	}
}

// ForFunc adapts a unary operation into a total function returning a Result.
func ForFunc[T, R any, S error, D any](a Adapter[S, D], op Func[T, R]) func(T) result.Result[R, D] {
	return func(arg T) result.Result[R, D] {
		v, err := op(arg)
		if err != nil {
			return result.Error[R](a.adapt(err))
		}
		return result.Success[R, D](v)
	}
}

// ForBiFunc adapts a binary operation into a total function returning a
// Result.
func ForBiFunc[T, U, R any, S error, D any](a Adapter[S, D], op BiFunc[T, U, R]) func(T, U) result.Result[R, D] {
	return func(arg1 T, arg2 U) result.Result[R, D] {
		v, err := op(arg1, arg2)
		if err != nil {
			return result.Error[R](a.adapt(err))
		}
		return result.Success[R, D](v)
	}
}

// ForConsumer adapts a unary side-effecting operation into a total function
// returning a Result over Unit.
func ForConsumer[T any, S error, D any](a Adapter[S, D], op Consumer[T]) func(T) result.Result[Unit, D] {
	return func(arg T) result.Result[Unit, D] {
		if err := op(arg); err != nil {
			return result.Error[Unit](a.adapt(err))
		}
		return result.Success[Unit, D](Unit{})
	}
}

// ForBiConsumer adapts a binary side-effecting operation into a total
// function returning a Result over Unit.
func ForBiConsumer[T, U any, S error, D any](a Adapter[S, D], op BiConsumer[T, U]) func(T, U) result.Result[Unit, D] {
	return func(arg1 T, arg2 U) result.Result[Unit, D] {
		if err := op(arg1, arg2); err != nil {
			return result.Error[Unit](a.adapt(err))
		}
		return result.Success[Unit, D](Unit{})
	}
}

// ForRunnable adapts a nullary side-effecting operation into a total
// function returning a Result over Unit.
func ForRunnable[S error, D any](a Adapter[S, D], op Runnable) func() result.Result[Unit, D] {
	return func() result.Result[Unit, D] {
		if err := op(); err != nil {
			return result.Error[Unit](a.adapt(err))
		}
		return result.Success[Unit, D](Unit{})
	}
}
