// Package chain provides a fluent wrapper around tea.Result[T, error]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// Key operations:
// - Start/FromValue/FromCall: begin a chain from a Result, a value or a fallible call
// - Then: switch to a new Result[U, error] via a function
// - ThenTry: call a function (U, error) and convert error or panic to failure
// - Map: transform the successful value (T -> U)
// - Ensure/OnError: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
