// Package resulttest provides fluent test assertions over result.Result
// values, built on stretchr/testify. It consumes the result package only
// through IsError and the two payload accessors.
package resulttest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kv-77/resultkit/pkg/result"
)

// ResultAssert accumulates fluent assertions over one Result value.
type ResultAssert[R, E any] struct {
	t   testing.TB
	res result.Result[R, E]
}

// Assert starts a fluent assertion over the given Result.
func Assert[R, E any](t testing.TB, r result.Result[R, E]) *ResultAssert[R, E] {
	t.Helper()
	return &ResultAssert[R, E]{t: t, res: r}
}

// IsSuccess fails the test when the Result holds an error.
func (a *ResultAssert[R, E]) IsSuccess() *ResultAssert[R, E] {
	a.t.Helper()
	if a.res.IsError() {
		a.t.Fatalf("expected Result to be Success, but was Error: %v", a.res.Err())
	}
	return a
}

// IsError fails the test when the Result holds a successful value.
func (a *ResultAssert[R, E]) IsError() *ResultAssert[R, E] {
	a.t.Helper()
	if !a.res.IsError() {
		a.t.Fatalf("expected Result to be Error, but was Success: %v", a.res.Value())
	}
	return a
}

// HasValue asserts that the Result is successful and its value equals want.
func (a *ResultAssert[R, E]) HasValue(want R) *ResultAssert[R, E] {
	a.t.Helper()
	a.IsSuccess()
	assert.Equal(a.t, want, a.res.Value())
	return a
}

// HasError asserts that the Result is an error and its payload equals want.
func (a *ResultAssert[R, E]) HasError(want E) *ResultAssert[R, E] {
	a.t.Helper()
	a.IsError()
	assert.Equal(a.t, want, a.res.Err())
	return a
}

// ValueSatisfies asserts that the Result is successful and hands its value
// to check for further assertions.
func (a *ResultAssert[R, E]) ValueSatisfies(check func(t testing.TB, value R)) *ResultAssert[R, E] {
	a.t.Helper()
	a.IsSuccess()
	check(a.t, a.res.Value())
	return a
}

// ErrorSatisfies asserts that the Result is an error and hands its payload
// to check for further assertions.
func (a *ResultAssert[R, E]) ErrorSatisfies(check func(t testing.TB, err E)) *ResultAssert[R, E] {
	a.t.Helper()
	a.IsError()
	check(a.t, a.res.Err())
	return a
}
