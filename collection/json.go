package collection

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

const defaultIndent = "    "

// JSONOptions controls ToJSON output.
type JSONOptions struct {
	// Pretty indents nested values with Indent.
	Pretty bool
	// Indent defaults to four spaces.
	Indent string
	// EscapeHTML escapes <, > and & inside strings.
	EscapeHTML bool
	// ForceObject encodes lists as objects too.
	ForceObject bool
}

var (
	_ Arrayable        = (*Collection[any])(nil)
	_ json.Marshaler   = (*Collection[any])(nil)
	_ json.Unmarshaler = (*Collection[any])(nil)
)

// ToArray converts every value into plain data and returns them as a
// *Collection[any] with the same keys. A value that is neither plain nor
// Arrayable fails with ErrMissingCapability.
func (c *Collection[V]) ToArray() (any, error) {
	return c.toArray()
}

func (c *Collection[V]) toArray() (*Collection[any], error) {
	out := derive[V, any](c)
	for _, e := range c.All() {
		p, err := plain(any(e.Value))
		if err != nil {
			err = fmt.Errorf("element %s: %w", e.Key, err)
			c.logger().Debug("to array failed: ", err)
			return nil, err
		}
		out.Set(e.Key, p)
	}
	return out, nil
}

// ToJSON encodes ToArray. Collections keyed 0..n-1 become arrays, anything
// else becomes an object with keys in order.
func (c *Collection[V]) ToJSON(opts JSONOptions) (string, error) {
	arr, err := c.toArray()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := encodeJSON(&buf, arr, opts); err != nil {
		return "", err
	}
	if !opts.Pretty {
		return buf.String(), nil
	}
	indent := opts.Indent
	if indent == "" {
		indent = defaultIndent
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", indent); err != nil {
		return "", err
	}
	return out.String(), nil
}

func (c *Collection[V]) String() string {
	s, err := c.ToJSON(JSONOptions{})
	if err != nil {
		c.logger().Warn("could not encode collection: ", err)
		return ""
	}
	return s
}

func (c *Collection[V]) MarshalJSON() ([]byte, error) {
	s, err := c.ToJSON(JSONOptions{})
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func encodeJSON(buf *bytes.Buffer, v any, opts JSONOptions) error {
	c, ok := v.(*Collection[any])
	if !ok {
		return encodeScalar(buf, v, opts)
	}
	entries := c.All()
	if !opts.ForceObject && isList(entries) {
		buf.WriteByte('[')
		for i, e := range entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeJSON(buf, e.Value, opts); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	}
	buf.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeScalar(buf, e.Key.String(), opts); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := encodeJSON(buf, e.Value, opts); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func encodeScalar(buf *bytes.Buffer, v any, opts JSONOptions) error {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(opts.EscapeHTML)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(b.Bytes(), "\n"))
	return nil
}

// FromJSON decodes a JSON array or object into a new collection.
func FromJSON[V any](data []byte, opts ...Option) (*Collection[V], error) {
	c := New[V](opts...)
	if err := c.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return c, nil
}

// UnmarshalJSON replaces the content of c with a JSON array or object. Object
// keys go through Name. For Collection[any], nested objects decode as
// *Collection[any], arrays as []any and integral numbers as int. On error c
// is left untouched.
func (c *Collection[V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	var zero V
	_, dynamic := any(&zero).(*any)
	if dynamic {
		dec.UseNumber()
	}
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode collection: %w", err)
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '[' && delim != '{' {
		return fmt.Errorf("%w: JSON %v", ErrTypeMismatch, tok)
	}
	out := derive[V, V](c)
	for i := 0; dec.More(); i++ {
		k := Index(i)
		if delim == '{' {
			kt, err := dec.Token()
			if err != nil {
				return fmt.Errorf("decode collection: %w", err)
			}
			k = Name(kt.(string))
		}
		var v V
		if dynamic {
			x, err := decodeAny(dec)
			if err != nil {
				return fmt.Errorf("decode collection: key %s: %w", k, err)
			}
			if x != nil {
				v = x.(V)
			}
		} else if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("decode collection: key %s: %w", k, err)
		}
		out.Set(k, v)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode collection: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("decode collection: trailing data after JSON value")
	}
	c.items = out.items
	c.next = out.next
	if c.log == nil {
		c.log = out.log
	}
	return nil
}

func decodeAny(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '{':
			obj := New[any]()
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				v, err := decodeAny(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(Name(kt.(string)), v)
			}
			_, err := dec.Token()
			return obj, err
		case '[':
			arr := make([]any, 0)
			for dec.More() {
				v, err := decodeAny(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, v)
			}
			_, err := dec.Token()
			return arr, err
		}
		return nil, fmt.Errorf("unexpected delimiter %v", x)
	case json.Number:
		return number(x)
	}
	return tok, nil
}

func number(n json.Number) (any, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := n.Int64(); err == nil && i >= math.MinInt && i <= math.MaxInt {
			return int(i), nil
		}
	}
	return n.Float64()
}
