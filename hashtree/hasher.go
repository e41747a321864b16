package hashtree

// Hasher produces the 64-bit hash for a key. A Tree caches the hash per
// node, so a Hasher is consulted once per key per insert or lookup.
type Hasher[K any] func(K) uint64

// Equal reports whether two keys are the same key. It must be consistent
// with the Hasher in use: equal keys must hash identically.
type Equal[K any] func(K, K) bool

// FNV-1a 64-bit parameters.
const (
	fnvBasis64 uint64 = 14695981039346656037
	fnvPrime64 uint64 = 1099511628211
)

// fnv64a hashes the raw bytes of s without allocating.
func fnv64a(s string) uint64 {
	h := fnvBasis64
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime64
	}
	return h
}
