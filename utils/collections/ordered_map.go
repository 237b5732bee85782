package collections

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type orderedMap[K comparable, V any] struct {
	entries map[K]V
	order   []K
}

func NewOrderedMap[K comparable, V any]() Map[K, V] {
	return &orderedMap[K, V]{
		entries: make(map[K]V),
		order:   make([]K, 0),
	}
}

func (m *orderedMap[K, V]) Contains(k K) bool {
	_, ok := m.entries[k]
	return ok
}

// Put overwrites an existing key in place when forced, otherwise it fails with
// ErrKeyExisted. New keys go to the back.
func (m *orderedMap[K, V]) Put(k K, v V, forced bool) error {
	if m.Contains(k) {
		if !forced {
			return ErrKeyExisted
		}
		m.entries[k] = v
		return nil
	}
	m.entries[k] = v
	m.order = append(m.order, k)
	return nil
}

func (m *orderedMap[K, V]) Get(k K) (v V, err error) {
	v, ok := m.entries[k]
	if !ok {
		return v, ErrKeyNotExisted
	}
	return v, nil
}

func (m *orderedMap[K, V]) Delete(k K) error {
	if !m.Contains(k) {
		return ErrKeyNotExisted
	}
	delete(m.entries, k)
	if i := slices.Index(m.order, k); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}
	return nil
}

func (m *orderedMap[K, V]) Size() int {
	return len(m.order)
}

func (m *orderedMap[K, V]) Keys() []K {
	arr := make([]K, len(m.order))
	copy(arr, m.order)
	return arr
}

func (m *orderedMap[K, V]) Values() []V {
	arr := make([]V, 0, m.Size())
	for _, k := range m.order {
		arr = append(arr, m.entries[k])
	}
	return arr
}

func (m *orderedMap[K, V]) Front() (k K, ok bool) {
	if len(m.order) == 0 {
		return k, false
	}
	return m.order[0], true
}

func (m *orderedMap[K, V]) Back() (k K, ok bool) {
	n := len(m.order)
	if n == 0 {
		return k, false
	}
	return m.order[n-1], true
}

func (m *orderedMap[K, V]) Clone() Map[K, V] {
	return &orderedMap[K, V]{
		entries: maps.Clone(m.entries),
		order:   slices.Clone(m.order),
	}
}
