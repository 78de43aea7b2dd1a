package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 of data.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// ChecksumString computes the xxHash64 of s without copying it.
func ChecksumString(s string) uint64 {
	return xxhash.Sum64String(s)
}
