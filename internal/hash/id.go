package hash

import "github.com/cespare/xxhash/v2"

// Sum computes the xxHash64 of the given bytes.
// It is used to fingerprint encoded documents for caching and dedup.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
