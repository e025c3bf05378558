// Package chmap provides a fixed-capacity hashmap implementation
// resolving collisions through per-slot chaining rather than growth.
// The slot array is sized once at creation and is never resized or
// rehashed: when the number of entries approaches the capacity the
// default times-33 hash keeps the slot spread even, and chains absorb
// the rest. Keys are byte strings and are copied at insertion; values
// are opaque to the map and remain owned by the caller.
// Any custom hasher can be provided during initialization.
// By default, a zero-seeded variant of the djb2 string hash is used.
//
// A Map is not safe for concurrent use. Callers sharing one across
// goroutines must synchronize externally.
package chmap
