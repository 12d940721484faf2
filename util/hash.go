package util

import "hash/fnv"

// Digest returns a 64-bit FNV-1a hash of the given payload.
func Digest(payload []byte) uint64 {
	h := fnv.New64a()
	h.Write(payload)
	return h.Sum64()
}
