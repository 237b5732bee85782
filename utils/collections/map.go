package collections

// Map is an insertion ordered map. Keys and Values report entries in the
// order their keys were first put.
type Map[K comparable, V any] interface {
	Contains(k K) bool
	Put(k K, v V, forced bool) error
	Get(k K) (V, error)
	Delete(k K) error
	Size() int
	Keys() []K
	Values() []V
	Front() (K, bool)
	Back() (K, bool)
	Clone() Map[K, V]
}
