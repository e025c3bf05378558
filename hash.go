package chmap

import (
	xxhash "github.com/cespare/xxhash/v2"
	xxHash32 "github.com/pierrec/xxHash/xxHash32"
	"github.com/zeebo/xxh3"
)

// Hasher maps a key to a 64-bit hash value. Equal keys must always
// produce equal hashes. The map reduces the hash modulo its capacity
// to select a slot.
type Hasher[K KeyInterface] interface{ Hash(K) uint64 }

// HasherTimes33 is the default hasher: a variant of the classic djb2
// string hash seeded at 0 instead of the conventional prime 5381.
// The zero seed spreads keys more evenly across slots when the number
// of entries is close to the capacity, trading away avalanche quality
// on adversarial inputs. Overflow wraps around as part of normal
// operation. The empty key hashes to 0.
type HasherTimes33[K KeyInterface] struct{}

// Hash hashes k to a 64-bit hash value.
func (HasherTimes33[K]) Hash(k K) uint64 {
	var h uint64
	for i := 0; i < len(k); i++ {
		h = h*33 + uint64(k[i])
	}
	return h
}

// HasherXXH3 hashes keys with XXH3 from github.com/zeebo/xxh3
// and can be used to provide custom seeds during initialization.
type HasherXXH3[K KeyInterface] struct {
	Seed uint64
}

// Hash hashes k to a 64-bit hash value.
func (h *HasherXXH3[K]) Hash(k K) uint64 {
	return xxh3.HashSeed([]byte(k), h.Seed)
}

// HasherXXH64 hashes keys with XXH64 from github.com/cespare/xxhash.
type HasherXXH64[K KeyInterface] struct{}

// Hash hashes k to a 64-bit hash value.
func (HasherXXH64[K]) Hash(k K) uint64 {
	return xxhash.Sum64([]byte(k))
}

// HasherXXH32 hashes keys with 32-bit XXH from github.com/pierrec/xxHash.
type HasherXXH32[K KeyInterface] struct {
	Seed uint32
}

// Hash hashes k to a 64-bit hash value.
func (h *HasherXXH32[K]) Hash(k K) uint64 {
	return uint64(xxHash32.Checksum([]byte(k), h.Seed))
}
