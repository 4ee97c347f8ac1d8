package hashdict

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
	"golang.org/x/exp/constraints"
)

// Hasher computes the probe origin of a key. Implementations must be
// deterministic: equal keys always hash to the same value.
type Hasher[K any] interface {
	Hash(key K) uint64
}

// HasherFunc adapts an ordinary function to the Hasher interface.
type HasherFunc[K any] func(key K) uint64

func (f HasherFunc[K]) Hash(key K) uint64 { return f(key) }

// XXHash hashes textual keys with 64-bit xxHash. It is the default for
// string-keyed dictionaries.
type XXHash[K ~string] struct{}

func (XXHash[K]) Hash(key K) uint64 { return xxhash.Sum64String(string(key)) }

// XXH3 hashes textual keys with 64-bit XXH3.
type XXH3[K ~string] struct{}

func (XXH3[K]) Hash(key K) uint64 { return xxh3.HashString(string(key)) }

const (
	offset64 = 14695981039346656037
	prime64  = 1099511628211
)

// FNV1a computes the 64-bit FNV-1a hash of textual keys.
type FNV1a[K ~string] struct{}

func (FNV1a[K]) Hash(key K) uint64 {
	hash := uint64(offset64)
	for i := 0; i < len(key); i++ {
		hash ^= uint64(key[i])
		hash *= prime64
	}
	return hash
}

// Integer hashes integer keys through xxHash of their little-endian 8-byte form.
type Integer[K constraints.Integer] struct{}

func (Integer[K]) Hash(key K) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(key))
	return xxhash.Sum64(buf[:])
}
