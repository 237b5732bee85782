package collection

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Arrayable is implemented by values that can describe themselves as plain
// data: nil, booleans, numbers, strings, slices, maps or collections of those.
type Arrayable interface {
	ToArray() (any, error)
}

// container is implemented by every Collection instantiation so nested
// collections can be walked without knowing their value type.
type container interface {
	anyEntries() []Entry[any]
	anyLookup(k Key) (any, bool)
}

func (c *Collection[V]) anyEntries() []Entry[any] {
	entries := c.All()
	arr := make([]Entry[any], 0, len(entries))
	for _, e := range entries {
		arr = append(arr, Entry[any]{Key: e.Key, Value: e.Value})
	}
	return arr
}

func (c *Collection[V]) anyLookup(k Key) (any, bool) {
	return c.Lookup(k)
}

var bytesType = reflect.TypeOf([]byte(nil))

// maxDepth bounds nesting in plain; self-referencing values hit it.
const maxDepth = 512

// isNil reports nil interfaces and nil pointers.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// entriesOf lists the entries of a mapping or sequence: a collection, a slice
// or array (except []byte), or a Go map with string or integer keys. Map
// entries come back sorted by key.
func entriesOf(v any) ([]Entry[any], bool) {
	if isNil(v) {
		return nil, false
	}
	if c, ok := v.(container); ok {
		return c.anyEntries(), true
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type() == bytesType {
			return nil, false
		}
		arr := make([]Entry[any], 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			arr = append(arr, Entry[any]{Key: Index(i), Value: rv.Index(i).Interface()})
		}
		return arr, true
	case reflect.Map:
		arr := make([]Entry[any], 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k, ok := keyOf(iter.Key())
			if !ok {
				return nil, false
			}
			arr = append(arr, Entry[any]{Key: k, Value: iter.Value().Interface()})
		}
		sort.Slice(arr, func(i, j int) bool {
			return arr[i].Key.less(arr[j].Key)
		})
		return arr, true
	}
	return nil, false
}

func keyOf(rv reflect.Value) (Key, bool) {
	for rv.Kind() == reflect.Interface && !rv.IsNil() {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.String:
		return Name(rv.String()), true
	// Integers outside the int range stay names.
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Name(strconv.FormatInt(rv.Int(), 10)), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Name(strconv.FormatUint(rv.Uint(), 10)), true
	}
	return Key{}, false
}

// lookupSegment reads one path segment from v. Mappings and sequences are
// addressed by key, structs by exported field name or json tag.
func lookupSegment(v any, segment string) (any, bool) {
	if isNil(v) {
		return nil, false
	}
	k := Name(segment)
	if c, ok := v.(container); ok {
		return c.anyLookup(k)
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Struct {
		return structField(rv, segment)
	}
	entries, ok := entriesOf(rv.Interface())
	if !ok {
		return nil, false
	}
	for _, e := range entries {
		if e.Key == k {
			return e.Value, true
		}
	}
	return nil, false
}

func structField(rv reflect.Value, name string) (any, bool) {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := strings.Split(f.Tag.Get("json"), ",")[0]
		if tag == "-" {
			continue
		}
		if tag == name || tag == "" && f.Name == name {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}

// plain converts v into plain data. Containers become *Collection[any];
// Arrayable values are converted through ToArray.
func plain(v any) (any, error) {
	return plainAt(v, 0)
}

func plainAt(v any, depth int) (any, error) {
	if isNil(v) {
		return nil, nil
	}
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: %T nested deeper than %d", ErrMissingCapability, v, maxDepth)
	}
	if c, ok := v.(container); ok {
		return plainEntries(c.anyEntries(), depth+1)
	}
	switch x := v.(type) {
	case Arrayable:
		arr, err := x.ToArray()
		if err != nil {
			return nil, err
		}
		return plainAt(arr, depth+1)
	case json.Marshaler, encoding.TextMarshaler, []byte:
		return v, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return v, nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return plainAt(rv.Elem().Interface(), depth+1)
	}
	if entries, ok := entriesOf(v); ok {
		return plainEntries(entries, depth+1)
	}
	return nil, fmt.Errorf("%w: %T", ErrMissingCapability, v)
}

func plainEntries(entries []Entry[any], depth int) (*Collection[any], error) {
	out := New[any]()
	for _, e := range entries {
		p, err := plainAt(e.Value, depth)
		if err != nil {
			return nil, err
		}
		out.Set(e.Key, p)
	}
	return out, nil
}

// native turns plain data back into Go built-ins: lists become []any and
// other collections map[string]any.
func native(v any) any {
	c, ok := v.(*Collection[any])
	if !ok {
		return v
	}
	entries := c.All()
	if isList(entries) {
		arr := make([]any, 0, len(entries))
		for _, e := range entries {
			arr = append(arr, native(e.Value))
		}
		return arr
	}
	m := make(map[string]any, len(entries))
	for _, e := range entries {
		m[e.Key.String()] = native(e.Value)
	}
	return m
}

// isList reports whether the keys are exactly 0..n-1 in order.
func isList[V any](entries []Entry[V]) bool {
	for i, e := range entries {
		if k, ok := e.Key.Int(); !ok || k != i {
			return false
		}
	}
	return true
}
