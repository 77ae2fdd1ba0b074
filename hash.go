// Checksums of written plugins and keys for cross references.
//
// Three algorithms are supported for checksums. RefKey always uses xxHash3
// so that keys stored in Writer.Context agree between Save implementations.
package tes3

import (
	"encoding/binary"
	"hash/fnv"
	"strings"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Hash algorithm constants.
const (
	AlgXXHash3 = 1 // Default, fastest
	AlgFNV1a   = 2 // No external dependencies
	AlgBlake2b = 3 // Best distribution
)

var algNames = map[string]int{
	"xxh3":    AlgXXHash3,
	"xxhash3": AlgXXHash3,
	"fnv1a":   AlgFNV1a,
	"blake2b": AlgBlake2b,
}

// ParseAlgorithm resolves an algorithm name ("xxh3", "fnv1a", "blake2b").
func ParseAlgorithm(name string) (int, error) {
	if alg, ok := algNames[strings.ToLower(name)]; ok {
		return alg, nil
	}
	return 0, ErrUnknownAlgorithm
}

// Checksum returns a 64-bit digest of data.
func Checksum(data []byte, alg int) (uint64, error) {
	switch alg {
	case AlgXXHash3:
		return xxh3.Hash(data), nil
	case AlgFNV1a:
		h := fnv.New64a()
		h.Write(data)
		return h.Sum64(), nil
	case AlgBlake2b:
		h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
		h.Write(data)
		return binary.BigEndian.Uint64(h.Sum(nil)), nil
	default:
		return 0, ErrUnknownAlgorithm
	}
}

// Checksum digests everything written so far.
func (w *Writer) Checksum(alg int) (uint64, error) {
	return Checksum(w.buf, alg)
}

// RefKey maps a record id to the key used for it in Writer.Context.
// Ids are matched case-insensitively, as the game does.
func RefKey(id string) uint64 {
	return xxh3.HashString(strings.ToLower(id))
}
