package collection

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Key addresses an entry, either by integer index or by string name.
type Key struct {
	name    string
	index   int
	isIndex bool
}

func Index[T constraints.Integer](i T) Key {
	return Key{index: int(i), isIndex: true}
}

// Name returns a string key. Canonical decimal strings such as "7" or "-3"
// become integer keys, so Name("7") == Index(7).
func Name(s string) Key {
	if i, ok := canonicalInt(s); ok {
		return Index(i)
	}
	return Key{name: s}
}

func canonicalInt(s string) (int, bool) {
	if s == "" || s == "-0" || len(s) > 1 && (s[0] == '0' || s[0] == '+' || s[0] == '-' && s[1] == '0') {
		return 0, false
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return i, true
}

func (k Key) IsIndex() bool {
	return k.isIndex
}

func (k Key) Int() (int, bool) {
	return k.index, k.isIndex
}

func (k Key) String() string {
	if k.isIndex {
		return strconv.Itoa(k.index)
	}
	return k.name
}

// less orders integer keys before names, integers numerically and names
// lexically.
func (k Key) less(o Key) bool {
	if k.isIndex != o.isIndex {
		return k.isIndex
	}
	if k.isIndex {
		return k.index < o.index
	}
	return k.name < o.name
}

// Entry is a single key/value pair.
type Entry[V any] struct {
	Key   Key
	Value V
}
