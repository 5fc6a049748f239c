package collection

// Resolver picks the value stored for a key present on both sides of
// Intersect or Union. mine comes from the receiver, theirs from the argument.
type Resolver[K comparable, V any] func(mine, theirs V, key K) V

// KeepMine is the Resolver that keeps the receiver's value.
func KeepMine[K comparable, V any](mine, _ V, _ K) V {
	return mine
}

// KeepTheirs is the Resolver that keeps the argument's value.
func KeepTheirs[K comparable, V any](_, theirs V, _ K) V {
	return theirs
}

// Diff returns the entries of c whose keys are absent from other.
func (c *Collection[K, V]) Diff(other *Collection[K, V]) *Collection[K, V] {
	out := c.derive()
	for k, v := range c.All() {
		if !other.Has(k) {
			out.Set(k, v)
		}
	}
	return out
}

// SymDiff returns the entries whose keys appear on exactly one side:
// c.Diff(other) followed by other.Diff(c).
func (c *Collection[K, V]) SymDiff(other *Collection[K, V]) *Collection[K, V] {
	out := c.Diff(other)
	for k, v := range other.All() {
		if !c.Has(k) {
			out.Set(k, v)
		}
	}
	return out
}

// Intersect keeps the keys present on both sides, in c's order, with values
// chosen by resolve. A nil resolve keeps c's values.
func (c *Collection[K, V]) Intersect(other *Collection[K, V], resolve Resolver[K, V]) *Collection[K, V] {
	if resolve == nil {
		resolve = KeepMine[K, V]
	}

	out := c.derive()
	for k, v := range c.All() {
		if theirs, ok := other.Get(k).Get(); ok {
			out.Set(k, resolve(v, theirs, k))
		}
	}
	return out
}

// Union starts from a copy of c and adds every entry of other. When a key exists
// on both sides and the values differ, resolve decides the stored value.
// Values differ when Options.Equal (reflect.DeepEqual by default) reports false.
// A nil resolve keeps c's values.
func (c *Collection[K, V]) Union(other *Collection[K, V], resolve Resolver[K, V]) *Collection[K, V] {
	if resolve == nil {
		resolve = KeepMine[K, V]
	}

	out := c.derive()
	for k, v := range c.All() {
		out.Set(k, v)
	}

	for k, theirs := range other.All() {
		n, ok := out.index[k]
		if !ok {
			out.Set(k, theirs)
			continue
		}
		if !out.equal(n.value, theirs) {
			n.value = resolve(n.value, theirs, k)
		}
	}
	return out
}
