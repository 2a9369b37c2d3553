// Package pkg is a package that provides utilities for unprint.
package pkg

// OrderedMap is a generic mapping that remembers the order in which keys
// were first inserted. Iteration is always in insertion order, never the
// incidental ordering of Go's built-in maps.
type OrderedMap[K comparable, V any] interface {
	Len() int
	Keys() []K
	Get(key K) (V, bool)
	Set(key K, value V)
	Range(f func(key K, value V) error) error
}

type orderedMapImpl[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap[K comparable, V any]() OrderedMap[K, V] {
	return &orderedMapImpl[K, V]{
		keys:   make([]K, 0),
		values: make(map[K]V),
	}
}

// Len implements OrderedMap.
func (om *orderedMapImpl[K, V]) Len() int {
	return len(om.keys)
}

// Keys implements OrderedMap. The returned slice is a copy in insertion order.
func (om *orderedMapImpl[K, V]) Keys() []K {
	keys := make([]K, len(om.keys))
	copy(keys, om.keys)

	return keys
}

// Get implements OrderedMap.
func (om *orderedMapImpl[K, V]) Get(key K) (V, bool) {
	value, ok := om.values[key]
	return value, ok
}

// Set implements OrderedMap. Re-setting an existing key overwrites its value
// but keeps the key's original position.
func (om *orderedMapImpl[K, V]) Set(key K, value V) {
	if _, exists := om.values[key]; !exists {
		om.keys = append(om.keys, key)
	}

	om.values[key] = value
}

// Range implements OrderedMap. It visits entries in insertion order and stops
// at the first error returned by f.
func (om *orderedMapImpl[K, V]) Range(f func(key K, value V) error) error {
	for _, key := range om.keys {
		if err := f(key, om.values[key]); err != nil {
			return err
		}
	}

	return nil
}
