package collection

import (
	"errors"
	"testing"

	"github.com/shamaton/msgpack/v2"
	"github.com/stretchr/testify/require"
)

func TestCollectionToMsgpack(t *testing.T) {
	b, err := Of(1, 2, 3).ToMsgpack()
	require.Nil(t, err)
	var list []int
	require.Nil(t, msgpack.Unmarshal(b, &list))
	require.Equal(t, []int{1, 2, 3}, list)

	b, err = FromEntries([]Entry[int]{
		{Key: Name("a"), Value: 1},
		{Key: Index(4), Value: 2},
	}).ToMsgpack()
	require.Nil(t, err)
	var m map[string]int
	require.Nil(t, msgpack.Unmarshal(b, &m))
	require.Equal(t, map[string]int{"a": 1, "4": 2}, m)

	_, err = Of[any](opaque{}).ToMsgpack()
	require.True(t, errors.Is(err, ErrMissingCapability))
}
