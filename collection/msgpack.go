package collection

import (
	"github.com/shamaton/msgpack/v2"
)

// ToMsgpack encodes ToArray as MessagePack. Lists become arrays and other
// collections maps with string keys; map key order is not kept.
func (c *Collection[V]) ToMsgpack() ([]byte, error) {
	arr, err := c.toArray()
	if err != nil {
		return nil, err
	}
	return msgpack.Marshal(native(arr))
}
