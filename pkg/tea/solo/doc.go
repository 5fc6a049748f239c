// Package solo contains single-value, synchronous primitives that operate
// on tea.Result[T, E] and may change its value or error type.
//
// Highlights:
// - Map/MapErr/MapOr/MapOrElse: transform the Ok or Err payload
// - And/AndThen: move from Result[T, E] to Result[U, E]
// - Or/OrElse: recover into a Result with another error type
// - Try: call a function (U, error) and convert error to failure
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Tee/DoubleTee: side-effect helpers
// - Transpose/Flatten: reshape nested results
// - Join/JoinAll: collect many results into one
// - Finally: reduce to a concrete value via Ok/Err handlers
package solo
