// Package result provides a two-variant Result value for error handling as
// values: a Result is either a successful value or an error payload, never
// both. Combinators (Map, FlatMap, MapError, AndThen) transform Results
// without ever raising; terminal operations (RecoverError, ThrowError,
// DiscardError, IfSuccess) leave the Result world again.
//
// Transformations that change a payload type are package-level generic
// functions, since Go methods cannot introduce type parameters; same-type
// operations are methods on the value.
//
// Subpackages build on the core value:
//   - catch: adapts (T, error)-returning operations into total functions
//     returning Results
//   - collect: folds sequences of Results into a single Result over an
//     aggregate container
//   - chain: a fluent synchronous wrapper over a single Result
//   - opt: the minimal optional value used for the conversions
//   - resulttest: fluent test assertions over Results
package result
