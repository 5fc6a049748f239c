package collection

import "github.com/ib-77/tea/pkg/tea"

// Map returns a collection with the same keys, in the same order, and values
// transformed by f.
func Map[K comparable, V, U any](c *Collection[K, V], f func(value V, key K, c *Collection[K, V]) U) *Collection[K, U] {
	out := NewWithOptions[K](carry[V, U](c.opts))
	for k, v := range c.All() {
		out.Set(k, f(v, k, c))
	}
	return out
}

func Reduce[K comparable, V, R any](c *Collection[K, V], f func(acc R, value V, key K, c *Collection[K, V]) R, init R) R {
	acc := init
	for k, v := range c.All() {
		acc = f(acc, v, k, c)
	}
	return acc
}

func (c *Collection[K, V]) Filter(predicate func(value V, key K, c *Collection[K, V]) bool) *Collection[K, V] {
	out := c.derive()
	for k, v := range c.All() {
		if predicate(v, k, c) {
			out.Set(k, v)
		}
	}
	return out
}

// Find returns the first entry, in insertion order, matching predicate.
func (c *Collection[K, V]) Find(predicate func(value V, key K, c *Collection[K, V]) bool) tea.Option[tea.Pair[K, V]] {
	for k, v := range c.All() {
		if predicate(v, k, c) {
			return tea.Some(tea.PairOf(k, v))
		}
	}
	return tea.None[tea.Pair[K, V]]()
}

// Every is true for an empty collection.
func (c *Collection[K, V]) Every(predicate func(value V, key K, c *Collection[K, V]) bool) bool {
	for k, v := range c.All() {
		if !predicate(v, k, c) {
			return false
		}
	}
	return true
}

// Some is false for an empty collection.
func (c *Collection[K, V]) Some(predicate func(value V, key K, c *Collection[K, V]) bool) bool {
	for k, v := range c.All() {
		if predicate(v, k, c) {
			return true
		}
	}
	return false
}

func (c *Collection[K, V]) ForEach(f func(value V, key K, c *Collection[K, V])) {
	for k, v := range c.All() {
		f(v, k, c)
	}
}

// Inspect is ForEach returning c for chaining.
func (c *Collection[K, V]) Inspect(f func(value V, key K, c *Collection[K, V])) *Collection[K, V] {
	c.ForEach(f)
	return c
}
