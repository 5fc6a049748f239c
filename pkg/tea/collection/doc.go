// Package collection provides Collection[K, V], an insertion-ordered map with
// unique keys whose lookups return tea.Option and whose fallible operations
// return tea.Result.
//
// Highlights:
// - Get/Has/Set/Delete/Clear: basic access; overwriting a key keeps its position
// - GetOrInsert/GetOrInsertWith/Replace: upsert helpers
// - Diff/SymDiff/Intersect/Union: set algebra on keys, with resolvers for shared keys
// - Map/Filter/Find/Every/Some/Reduce/ForEach/Inspect: traversal in insertion order
// - Clone/ToJSON/FromJSON: deep copy and array-of-pairs JSON, failures as Err
// - Iter: peekable iterator whose Next returns None once exhausted
//
// A Collection is not safe for concurrent use.
package collection
