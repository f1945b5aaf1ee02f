// Package chain provides a minimal fluent Chain[T, E] for synchronous
// composition of result.Result values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/Map/MapError: compose result-returning or pure steps
// - While: repeat a step under a condition
// - Ensure: trigger side effects on success only
// - And/Or: sequence with, or fall back to, another chain
// - Recover/Finally: reduce to a concrete value via handlers
//
// Chain is ideal for small services or tests where lightweight synchronous
// chaining improves readability over nested combinator calls.
package chain
