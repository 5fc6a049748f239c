package collection

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	jsoniter "github.com/json-iterator/go"

	"github.com/ib-77/tea/pkg/tea"
)

// Cloner lets a value control its own deep copy. Values that do not implement
// it are copied through a JSON round-trip, so they must be made of exported
// fields and survive that round-trip unchanged. Anything else is a clone error.
type Cloner[V any] interface {
	CloneValue() (V, error)
}

var jsonMarshalerType = reflect.TypeFor[json.Marshaler]()

// Clone deep-copies every value. The copy gets a new Id and the same options.
func (c *Collection[K, V]) Clone() tea.Result[*Collection[K, V], error] {
	c.lazyInit()

	out := c.derive()
	for k, v := range c.All() {
		cp := tea.Call(func() (V, error) { return c.copyValue(v) })
		if err, isErr := cp.GetErr(); isErr {
			c.log.Debugf("Clone: failed to copy value, key=%v, err=%v", k, err)
			return tea.Err[*Collection[K, V]](error(&CloneError{Collection: c.id, Key: k, Err: err}))
		}
		out.Set(k, cp.Unwrap())
	}
	return tea.Ok[*Collection[K, V], error](out)
}

func (c *Collection[K, V]) copyValue(v V) (V, error) {
	if cl, ok := any(v).(Cloner[V]); ok {
		return cl.CloneValue()
	}
	if tea.IsNil(v) {
		return v, nil
	}
	if err := copyable(reflect.ValueOf(any(v)), make(map[uintptr]bool)); err != nil {
		return v, err
	}

	data, err := c.json.Marshal(v)
	if err != nil {
		return v, err
	}

	// decode into the dynamic type so interface-typed values keep it
	ptr := reflect.New(reflect.TypeOf(any(v)))
	if err := c.json.Unmarshal(data, ptr.Interface()); err != nil {
		return v, err
	}

	out, ok := ptr.Elem().Interface().(V)
	if !ok {
		return v, fmt.Errorf("copy of %T is not assignable to %T", v, out)
	}
	if !reflect.DeepEqual(v, out) {
		return v, fmt.Errorf("copy of %T differs from the original", v)
	}
	return out, nil
}

// copyable rejects values the JSON round-trip would silently lose part of.
// Types with their own MarshalJSON are trusted and checked after the copy.
func copyable(v reflect.Value, seen map[uintptr]bool) error {
	if !v.IsValid() {
		return nil
	}
	t := v.Type()
	if t.Implements(jsonMarshalerType) {
		return nil
	}

	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return fmt.Errorf("%s value cannot be copied", t)
	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		if seen[v.Pointer()] {
			return fmt.Errorf("cyclic %s value cannot be copied", t)
		}
		seen[v.Pointer()] = true
		defer delete(seen, v.Pointer())
		return copyable(v.Elem(), seen)
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return copyable(v.Elem(), seen)
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() && !(f.Anonymous && f.Type.Kind() == reflect.Struct) {
				return fmt.Errorf("%s has unexported field %s", t, f.Name)
			}
			if err := copyable(v.Field(i), seen); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := copyable(v.Index(i), seen); err != nil {
				return err
			}
		}
	case reflect.Map:
		if seen[v.Pointer()] {
			return fmt.Errorf("cyclic %s value cannot be copied", t)
		}
		seen[v.Pointer()] = true
		defer delete(seen, v.Pointer())
		iter := v.MapRange()
		for iter.Next() {
			if err := copyable(iter.Key(), seen); err != nil {
				return err
			}
			if err := copyable(iter.Value(), seen); err != nil {
				return err
			}
		}
	}
	return nil
}

// ToJSON encodes the collection as an array of [key, value] pairs in insertion order.
func (c *Collection[K, V]) ToJSON() tea.Result[string, error] {
	c.lazyInit()

	stream := c.json.BorrowStream(nil)
	defer c.json.ReturnStream(stream)

	stream.WriteArrayStart()
	first := true
	for k, v := range c.All() {
		if !first {
			stream.WriteMore()
		}
		first = false

		stream.WriteArrayStart()
		stream.WriteVal(k)
		stream.WriteMore()
		stream.WriteVal(v)
		stream.WriteArrayEnd()

		if stream.Error != nil {
			break
		}
	}
	stream.WriteArrayEnd()

	if stream.Error != nil {
		c.log.Debugf("ToJSON: failed to encode, err=%v", stream.Error)
		return tea.Err[string](error(&EncodeError{Collection: c.id, Err: stream.Error}))
	}
	return tea.Ok[string, error](string(stream.Buffer()))
}

// FromJSON decodes the array-of-pairs form produced by ToJSON.
func FromJSON[K comparable, V any](text string) tea.Result[*Collection[K, V], error] {
	return FromJSONWithOptions[K](text, Options[V]{})
}

func FromJSONWithOptions[K comparable, V any](text string, opts Options[V]) tea.Result[*Collection[K, V], error] {
	c := NewWithOptions[K](opts)

	var pairs []jsoniter.RawMessage
	if err := c.json.UnmarshalFromString(text, &pairs); err != nil {
		return decodeFailure[K, V](err)
	}

	for i, raw := range pairs {
		var pair []jsoniter.RawMessage
		if err := c.json.Unmarshal(raw, &pair); err != nil {
			return decodeFailure[K, V](fmt.Errorf("entry %d: %w", i, err))
		}
		if len(pair) != 2 {
			return decodeFailure[K, V](fmt.Errorf("entry %d: expected [key, value], got %d elements", i, len(pair)))
		}

		k, err := c.decodeKey(pair[0])
		if err != nil {
			return decodeFailure[K, V](fmt.Errorf("entry %d key: %w", i, err))
		}
		var v V
		if err := c.json.Unmarshal(pair[1], &v); err != nil {
			return decodeFailure[K, V](fmt.Errorf("entry %d value: %w", i, err))
		}
		c.Set(k, v)
	}
	return tea.Ok[*Collection[K, V], error](c)
}

// decodeKey decodes into K. When K is an interface, integral JSON numbers come
// back as int rather than float64, so int keys survive a round-trip. Other
// dynamic key types are not recorded in the JSON form and are not restored.
func (c *Collection[K, V]) decodeKey(raw jsoniter.RawMessage) (K, error) {
	var k K
	if reflect.TypeFor[K]().Kind() == reflect.Interface {
		it := c.json.BorrowIterator(raw)
		defer c.json.ReturnIterator(it)
		if it.WhatIsNext() == jsoniter.NumberValue {
			n := it.ReadNumber()
			if i, err := n.Int64(); it.Error == nil && err == nil {
				if key, ok := any(int(i)).(K); ok {
					return key, nil
				}
			}
		}
	}
	err := c.json.Unmarshal(raw, &k)
	return k, err
}

func decodeFailure[K comparable, V any](err error) tea.Result[*Collection[K, V], error] {
	return tea.Err[*Collection[K, V]](errors.Join(ErrDecode, err))
}
