package ir

import (
	"fmt"

	"github.com/minio/highwayhash"
)

var hashKey = []byte("specforge-ir-hash-key-32bytes!!!")

// Hash computes a keyed 64-bit hash of data. The key is fixed so the result
// is stable across processes and platforms.
func Hash(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}

// ShortHash derives a 4-character lowercase hex digest of s, used to
// disambiguate truncated or fully-stripped identifiers.
func ShortHash(s string) string {
	h, err := Hash([]byte(s))
	if err != nil {
		// New64 only fails on a bad key length; the key is a compile-time constant.
		return "0000"
	}
	return fmt.Sprintf("%04x", h&0xffff)
}
