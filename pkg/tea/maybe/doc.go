// Package maybe contains type-changing combinators over tea.Option[T].
//
// Highlights:
// - Map/MapOr/MapOrElse: transform the Some value (T -> U)
// - And/AndThen: chain to an Option of another type
// - Zip/ZipWith/Unzip: combine or split paired options
// - OkOr/OkOrElse/Transpose: move between Option and Result
// - Flatten: remove one level of nesting
// - Match: reduce to a concrete value via Some/None handlers
package maybe
