package collection

import (
	"fmt"
	"iter"
	"strings"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"

	"github.com/ib-77/tea/pkg/tea"
)

type node[K comparable, V any] struct {
	key        K
	value      V
	prev, next *node[K, V]
	// removed nodes keep next so cursors parked on them can resume
	removed bool
}

// live returns n or its nearest successor still in the collection.
func live[K comparable, V any](n *node[K, V]) *node[K, V] {
	for n != nil && n.removed {
		n = n.next
	}
	return n
}

// Collection is an insertion-ordered map. The zero value is an empty collection
// ready to use. A Collection must not be copied after first use.
type Collection[K comparable, V any] struct {
	id         uuid.UUID
	index      map[K]*node[K, V]
	head, tail *node[K, V]
	opts       Options[V]
	log        log.FieldLogger
	equal      func(a, b V) bool
	json       jsoniter.API
}

func New[K comparable, V any]() *Collection[K, V] {
	return NewWithOptions[K](Options[V]{})
}

func NewWithOptions[K comparable, V any](opts Options[V]) *Collection[K, V] {
	c := &Collection[K, V]{opts: opts}
	c.lazyInit()
	return c
}

// From builds a collection from a sequence of pairs; later duplicates overwrite earlier values.
func From[K comparable, V any](seq iter.Seq2[K, V]) *Collection[K, V] {
	c := New[K, V]()
	for k, v := range seq {
		c.Set(k, v)
	}
	return c
}

func FromEntries[K comparable, V any](entries ...tea.Pair[K, V]) *Collection[K, V] {
	c := New[K, V]()
	for _, e := range entries {
		c.Set(e.First, e.Second)
	}
	return c
}

func (c *Collection[K, V]) lazyInit() {
	if c.index != nil {
		return
	}
	c.id = uuid.New()
	c.index = make(map[K]*node[K, V])
	c.log = c.opts.GetLogger(log.StandardLogger()).WithField("collection", c.id)
	c.equal = c.opts.GetEqual(deepEqual[V])
	c.json = c.opts.GetJSON(jsoniter.ConfigCompatibleWithStandardLibrary)
}

// derive returns an empty collection sharing c's options.
func (c *Collection[K, V]) derive() *Collection[K, V] {
	return NewWithOptions[K](c.opts)
}

func (c *Collection[K, V]) Id() uuid.UUID {
	c.lazyInit()
	return c.id
}

func (c *Collection[K, V]) Len() int {
	return len(c.index)
}

func (c *Collection[K, V]) Get(key K) tea.Option[V] {
	if n, ok := c.index[key]; ok {
		return tea.Some(n.value)
	}
	return tea.None[V]()
}

func (c *Collection[K, V]) Has(key K) bool {
	_, ok := c.index[key]
	return ok
}

// Set inserts or overwrites key and returns c for chaining.
func (c *Collection[K, V]) Set(key K, value V) *Collection[K, V] {
	c.lazyInit()
	if n, ok := c.index[key]; ok {
		n.value = value
		return c
	}
	n := &node[K, V]{key: key, value: value}
	c.index[key] = n
	c.pushBack(n)
	return c
}

func (c *Collection[K, V]) Insert(key K, value V) {
	c.Set(key, value)
}

// Delete reports whether an entry was removed.
func (c *Collection[K, V]) Delete(key K) bool {
	n, ok := c.index[key]
	if !ok {
		return false
	}
	delete(c.index, key)
	c.unlink(n)
	return true
}

func (c *Collection[K, V]) Clear() {
	for n := c.head; n != nil; n = n.next {
		n.prev = nil
		n.removed = true
	}
	clear(c.index)
	c.head, c.tail = nil, nil
}

// GetOrInsert returns the existing value for key or stores and returns value.
func (c *Collection[K, V]) GetOrInsert(key K, value V) V {
	if n, ok := c.index[key]; ok {
		return n.value
	}
	c.Set(key, value)
	return value
}

// GetOrInsertWith is GetOrInsert computing the value only when key is absent.
func (c *Collection[K, V]) GetOrInsertWith(key K, f func(K) V) V {
	if n, ok := c.index[key]; ok {
		return n.value
	}
	value := f(key)
	c.Set(key, value)
	return value
}

// Replace stores value and returns the previous one, if any.
func (c *Collection[K, V]) Replace(key K, value V) tea.Option[V] {
	prev := c.Get(key)
	c.Set(key, value)
	return prev
}

func (c *Collection[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := live(c.head); n != nil; n = live(n.next) {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

func (c *Collection[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range c.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (c *Collection[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range c.All() {
			if !yield(v) {
				return
			}
		}
	}
}

func (c *Collection[K, V]) Entries() []tea.Pair[K, V] {
	out := make([]tea.Pair[K, V], 0, c.Len())
	for k, v := range c.All() {
		out = append(out, tea.PairOf(k, v))
	}
	return out
}

func (c *Collection[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("Collection{")
	first := true
	for k, v := range c.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v: %v", k, v)
	}
	sb.WriteString("}")
	return sb.String()
}

func (c *Collection[K, V]) pushBack(n *node[K, V]) {
	n.prev = c.tail
	if c.tail != nil {
		c.tail.next = n
	} else {
		c.head = n
	}
	c.tail = n
}

func (c *Collection[K, V]) unlink(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev = nil
	n.removed = true
}
