package collection

// Iterator walks a snapshot of a collection taken when it was created.
//
//	for it := c.Iterator(); it.Next(); {
//		k, v := it.Key(), it.Value()
//	}
type Iterator[V any] struct {
	entries []Entry[V]
	pos     int
}

func (c *Collection[V]) Iterator() *Iterator[V] {
	return &Iterator[V]{
		entries: c.All(),
		pos:     -1,
	}
}

// Next advances to the next entry and reports whether there is one.
func (it *Iterator[V]) Next() bool {
	if it.pos < len(it.entries) {
		it.pos++
	}
	return it.pos < len(it.entries)
}

func (it *Iterator[V]) Entry() (e Entry[V]) {
	if it.pos < 0 || it.pos >= len(it.entries) {
		return e
	}
	return it.entries[it.pos]
}

func (it *Iterator[V]) Key() Key {
	return it.Entry().Key
}

func (it *Iterator[V]) Value() V {
	return it.Entry().Value
}

func (it *Iterator[V]) Len() int {
	return len(it.entries)
}

// Reset rewinds the iterator to before the first entry.
func (it *Iterator[V]) Reset() {
	it.pos = -1
}
