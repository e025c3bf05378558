// Package container defines the common interface of the key-value
// map implementations and hosts their shared test and benchmark suite.
package container

type KeyInterface interface{ string | []byte }

// Mapper is a string-keyed associative container.
// Put reports the previous value and true on overwrite,
// the stored value and false on fresh insert.
type Mapper[K KeyInterface, V any] interface {
	Put(K, V) (V, bool)
	Get(K) (v V, ok bool)
	Delete(K) (v V, ok bool)
	Clear()
	Len() int
	Visit(func(K, V) bool)
}
