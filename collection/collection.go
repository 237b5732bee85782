// Package collection wraps an insertion ordered key/value mapping with a
// fluent API. A Collection is not safe for concurrent use.
package collection

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tuannh982/go-collection/utils/collections"

	log "github.com/sirupsen/logrus"
)

type Collection[V any] struct {
	items collections.Map[Key, V]
	// next integer key used by Push
	next int
	log  *log.Entry
}

func New[V any](opts ...Option) *Collection[V] {
	o := newOptions(opts)
	return &Collection[V]{
		items: collections.NewOrderedMap[Key, V](),
		log:   o.logger,
	}
}

// Of builds a list keyed 0..n-1.
func Of[V any](values ...V) *Collection[V] {
	c := New[V]()
	for _, v := range values {
		c.Push(v)
	}
	return c
}

// FromEntries keeps the given order. A repeated key overwrites the earlier
// value in place.
func FromEntries[V any](entries []Entry[V], opts ...Option) *Collection[V] {
	c := New[V](opts...)
	for _, e := range entries {
		c.Set(e.Key, e.Value)
	}
	return c
}

// FromMap inserts m in key order: integer keys first, then names.
func FromMap[V any](m map[string]V, opts ...Option) *Collection[V] {
	entries := make([]Entry[V], 0, len(m))
	for k, v := range m {
		entries = append(entries, Entry[V]{Key: Name(k), Value: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key.less(entries[j].Key)
	})
	return FromEntries(entries, opts...)
}

func (c *Collection[V]) index() collections.Map[Key, V] {
	if c.items == nil {
		c.items = collections.NewOrderedMap[Key, V]()
	}
	return c.items
}

func (c *Collection[V]) logger() *log.Entry {
	if c.log == nil {
		return defaultLogger
	}
	return c.log
}

// derive creates an empty collection sharing c's logger.
func derive[V, R any](c *Collection[V]) *Collection[R] {
	return New[R](WithLogger(c.logger()))
}

// All returns a copy of the entries in order.
func (c *Collection[V]) All() []Entry[V] {
	items := c.index()
	keys := items.Keys()
	arr := make([]Entry[V], 0, len(keys))
	for _, k := range keys {
		v, _ := items.Get(k)
		arr = append(arr, Entry[V]{Key: k, Value: v})
	}
	return arr
}

func (c *Collection[V]) Keys() []Key {
	return c.index().Keys()
}

func (c *Collection[V]) Items() []V {
	return c.index().Values()
}

func (c *Collection[V]) Count() int {
	return c.index().Size()
}

func (c *Collection[V]) IsEmpty() bool {
	return c.Count() == 0
}

func (c *Collection[V]) First() (v V, ok bool) {
	k, ok := c.index().Front()
	if !ok {
		return v, false
	}
	return c.Lookup(k)
}

func (c *Collection[V]) Last() (v V, ok bool) {
	k, ok := c.index().Back()
	if !ok {
		return v, false
	}
	return c.Lookup(k)
}

func (c *Collection[V]) Has(k Key) bool {
	return c.index().Contains(k)
}

func (c *Collection[V]) Lookup(k Key) (v V, ok bool) {
	v, err := c.index().Get(k)
	return v, err == nil
}

// Get fails with ErrKeyNotFound when k is absent.
func (c *Collection[V]) Get(k Key) (V, error) {
	v, ok := c.Lookup(k)
	if !ok {
		return v, fmt.Errorf("%w: %s", ErrKeyNotFound, k)
	}
	return v, nil
}

func (c *Collection[V]) Set(k Key, v V) {
	_ = c.index().Put(k, v, true)
	if i, ok := k.Int(); ok && i >= c.next {
		c.next = i + 1
	}
}

// Push appends v under the next free integer key.
func (c *Collection[V]) Push(v V) {
	c.Set(Index(c.next), v)
}

// Delete removes k. Absent keys are ignored.
func (c *Collection[V]) Delete(k Key) {
	_ = c.index().Delete(k)
}

// Shift removes and returns the first value, then renumbers integer keys
// from 0. Name keys are kept.
func (c *Collection[V]) Shift() (v V, ok bool) {
	items := c.index()
	k, ok := items.Front()
	if !ok {
		return v, false
	}
	v, _ = items.Get(k)
	_ = items.Delete(k)
	c.renumber()
	return v, true
}

// Pop removes and returns the last value.
func (c *Collection[V]) Pop() (v V, ok bool) {
	items := c.index()
	k, ok := items.Back()
	if !ok {
		return v, false
	}
	v, _ = items.Get(k)
	_ = items.Delete(k)
	if i, isIndex := k.Int(); isIndex && c.next > 0 && i >= c.next-1 {
		c.next--
	}
	return v, true
}

func (c *Collection[V]) renumber() {
	old := c.index()
	items := collections.NewOrderedMap[Key, V]()
	n := 0
	for _, k := range old.Keys() {
		v, _ := old.Get(k)
		if k.IsIndex() {
			k = Index(n)
			n++
		}
		_ = items.Put(k, v, true)
	}
	c.items = items
	c.next = n
}

// Each calls fn for every entry in order and returns c.
func (c *Collection[V]) Each(fn func(V, Key)) *Collection[V] {
	for _, e := range c.All() {
		fn(e.Value, e.Key)
	}
	return c
}

// Map returns fn applied to every entry, in order. The result is a plain
// slice, not a Collection.
func Map[V, R any](c *Collection[V], fn func(V, Key) R) []R {
	entries := c.All()
	arr := make([]R, 0, len(entries))
	for _, e := range entries {
		arr = append(arr, fn(e.Value, e.Key))
	}
	return arr
}

// Filter keeps the entries fn accepts. Keys are preserved.
func (c *Collection[V]) Filter(fn func(V, Key) bool) *Collection[V] {
	items := collections.NewOrderedMap[Key, V]()
	next := 0
	for _, e := range c.All() {
		if !fn(e.Value, e.Key) {
			continue
		}
		_ = items.Put(e.Key, e.Value, true)
		if i, ok := e.Key.Int(); ok && i >= next {
			next = i + 1
		}
	}
	c.items = items
	c.next = next
	return c
}

// Values drops the keys and renumbers every entry from 0.
func (c *Collection[V]) Values() *Collection[V] {
	items := collections.NewOrderedMap[Key, V]()
	for i, v := range c.Items() {
		_ = items.Put(Index(i), v, true)
	}
	c.items = items
	c.next = items.Size()
	return c
}

// Fetch plucks the value at a dot separated path from every element. Elements
// missing a segment are skipped.
func (c *Collection[V]) Fetch(path string) *Collection[any] {
	results := make([]any, 0, c.Count())
	for _, v := range c.Items() {
		results = append(results, v)
	}
	for _, segment := range strings.Split(path, ".") {
		next := make([]any, 0, len(results))
		for i, v := range results {
			found, ok := lookupSegment(v, segment)
			if !ok {
				c.logger().Debug("fetch skipped element ", i, ": segment ", segment, " not found")
				continue
			}
			next = append(next, found)
		}
		results = next
	}
	out := derive[V, any](c)
	for _, v := range results {
		out.Push(v)
	}
	return out
}

// Flatten walks nested collections, slices, arrays and maps depth first and
// returns the leaves in order.
func (c *Collection[V]) Flatten() []any {
	arr := make([]any, 0, c.Count())
	for _, v := range c.Items() {
		arr = flatten(any(v), arr)
	}
	return arr
}

func flatten(v any, arr []any) []any {
	entries, ok := entriesOf(v)
	if !ok {
		return append(arr, v)
	}
	for _, e := range entries {
		arr = flatten(e.Value, arr)
	}
	return arr
}

// Merge combines every element into one collection. Integer keys are
// appended and renumbered, name keys overwrite earlier values in place.
func (c *Collection[V]) Merge() (*Collection[any], error) {
	out := derive[V, any](c)
	for _, e := range c.All() {
		entries, ok := entriesOf(any(e.Value))
		if !ok {
			err := fmt.Errorf("%w: element %s is %T", ErrTypeMismatch, e.Key, e.Value)
			c.logger().Debug("merge failed: ", err)
			return nil, err
		}
		for _, x := range entries {
			if x.Key.IsIndex() {
				out.Push(x.Value)
			} else {
				out.Set(x.Key, x.Value)
			}
		}
	}
	return out, nil
}
