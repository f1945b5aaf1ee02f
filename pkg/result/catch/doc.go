// Package catch bridges ordinary Go operations that return (value, error)
// into total functions returning result.Result values.
//
// An Adapter is configured once with the error type it is willing to
// capture and an optional conversion of that error into a higher-level
// payload:
//
//	parse := catch.ForFunc(catch.As[*strconv.NumError](), strconv.Atoi)
//	r := parse("123") // result.Result[int, *strconv.NumError]
//
// Adapters follow a strict three-way policy when an adapted operation fails:
//
//   - a returned error matching the declared type is captured and becomes
//     the Result's error payload;
//   - a panic inside the operation propagates untouched, because capturing
//     it would mask a programming error as a business-level value;
//   - a returned error of any other type is a contract violation and raises
//     an *UnexpectedError fault at the first mismatched invocation.
//
// One ForXxx wrapper exists per operation shape (supplier, function,
// bi-function, consumer, bi-consumer, runnable); all of them share the same
// adapter and differ only in the shape of the function they produce.
package catch
