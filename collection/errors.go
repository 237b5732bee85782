package collection

import "errors"

var (
	ErrKeyNotFound       = errors.New("key not found")
	ErrMissingCapability = errors.New("value is not arrayable")
	ErrTypeMismatch      = errors.New("value is not a mapping or sequence")
)
