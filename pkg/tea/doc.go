// Package tea contains the core value types used across the library:
// Option[T] for presence/absence and Result[T, E] for success/failure.
//
// Highlights:
// - Some/None, Ok/Err: construct values
// - IsSome/IsNone, IsOk/IsErr: discriminant checks
// - Unwrap/Expect: the only accessors that panic (with *UnwrapError)
// - Get/UnwrapOr/UnwrapOrElse: total accessors
// - Take/Replace/Insert/GetOrInsert: in-place Option slot mutation
// - Call: run a function that may fail or panic and capture the outcome as a Result
//
// Type-changing combinators (T -> U) live in the maybe (Option) and solo (Result)
// packages because Go methods cannot declare their own type parameters.
package tea
