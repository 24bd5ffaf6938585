// Package orderedmap provides a generic map which remembers insertion order.
package orderedmap

import "container/list"

// OrderedMap stores key-value pairs in insertion order. Overwriting a key keeps its original position.
type OrderedMap[K comparable, V any] struct {
	store map[K]*list.Element
	keys  *list.List
}

// Iterator points at one entry of an OrderedMap
type Iterator[K comparable, V any] struct {
	Key   *K
	Value V
	e     *list.Element
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// NewOrderedMap creates an empty OrderedMap
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		store: map[K]*list.Element{},
		keys:  list.New(),
	}
}

// Set stores val under key. An existing key keeps its position and gets the new value.
func (o *OrderedMap[K, V]) Set(key K, val V) {
	if e, exists := o.store[key]; exists {
		e.Value = entry[K, V]{key: key, value: val}
		return
	}
	o.store[key] = o.keys.PushBack(entry[K, V]{key: key, value: val})
}

// SetIfAbsent stores val under key unless key is already present. It reports whether val was stored.
func (o *OrderedMap[K, V]) SetIfAbsent(key K, val V) bool {
	if _, exists := o.store[key]; exists {
		return false
	}
	o.Set(key, val)
	return true
}

// Get returns the value stored under key and whether the key exists
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	e, exists := o.store[key]
	if !exists {
		return *new(V), false
	}
	return e.Value.(entry[K, V]).value, true
}

// Has reports whether key exists
func (o *OrderedMap[K, V]) Has(key K) bool {
	_, exists := o.store[key]
	return exists
}

// Delete removes key and its value
func (o *OrderedMap[K, V]) Delete(key K) {
	e, exists := o.store[key]
	if !exists {
		return
	}
	o.keys.Remove(e)
	delete(o.store, key)
}

// Len returns the number of stored keys
func (o *OrderedMap[K, V]) Len() int {
	if o == nil {
		return 0
	}
	return o.keys.Len()
}

// Keys returns the keys in insertion order
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, o.Len())
	for it := o.Front(); it != nil; it = it.Next() {
		keys = append(keys, *it.Key)
	}
	return keys
}

// Values returns the values in key insertion order
func (o *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, o.Len())
	for it := o.Front(); it != nil; it = it.Next() {
		values = append(values, it.Value)
	}
	return values
}

// Front returns an iterator at the first inserted entry, or nil when the map is empty
func (o *OrderedMap[K, V]) Front() *Iterator[K, V] {
	if o == nil {
		return nil
	}
	return newIterator[K, V](o.keys.Front())
}

// Next advances to the following entry and returns nil past the last one
func (it *Iterator[K, V]) Next() *Iterator[K, V] {
	if it == nil || it.e == nil {
		return nil
	}
	return newIterator[K, V](it.e.Next())
}

func newIterator[K comparable, V any](e *list.Element) *Iterator[K, V] {
	if e == nil {
		return nil
	}
	kv := e.Value.(entry[K, V])
	return &Iterator[K, V]{Key: &kv.key, Value: kv.value, e: e}
}
