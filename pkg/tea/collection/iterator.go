package collection

import "github.com/ib-77/tea/pkg/tea"

// Iterator walks a collection once, in insertion order. After the last entry
// Next keeps returning None. Entries deleted before the cursor reaches them are
// skipped; entries appended after the cursor passed the tail are not seen.
type Iterator[K comparable, V any] struct {
	next *node[K, V]
	done bool
}

func (c *Collection[K, V]) Iter() *Iterator[K, V] {
	return &Iterator[K, V]{next: c.head, done: c.head == nil}
}

func (it *Iterator[K, V]) Next() tea.Option[tea.Pair[K, V]] {
	out := it.Peek()
	if out.IsNone() {
		return out
	}
	it.next = it.next.next
	if it.next == nil {
		it.done = true
	}
	return out
}

// Peek returns the entry Next would return without consuming it.
func (it *Iterator[K, V]) Peek() tea.Option[tea.Pair[K, V]] {
	if it.done {
		return tea.None[tea.Pair[K, V]]()
	}
	it.next = live(it.next)
	if it.next == nil {
		it.done = true
		return tea.None[tea.Pair[K, V]]()
	}
	return tea.Some(tea.PairOf(it.next.key, it.next.value))
}

func (it *Iterator[K, V]) Done() bool {
	return it.Peek().IsNone()
}
