// Fixed-width primitives.
//
// All multi-byte values are little-endian, matching the plugin format on
// every platform.
package tes3

import (
	"encoding/binary"
	"fmt"
)

// FixedInteger is an integer type with a platform-independent width.
type FixedInteger interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is any integer type, including the platform-width ones.
type Integer interface {
	FixedInteger | ~int | ~uint | ~uintptr
}

// Fixed is a value with an exact on-disk width.
type Fixed interface {
	FixedInteger | ~float32 | ~float64 | ~bool
}

// Put appends the little-endian representation of v.
func Put[T Fixed](w *Writer, v T) {
	// binary.Append only fails for values without a fixed size, which the
	// constraint rules out.
	w.buf, _ = binary.Append(w.buf, binary.LittleEndian, v)
}

// PutAs converts v to S and writes it. The conversion must be exact: if v
// does not survive the round trip, or its sign changes, nothing is written
// and ErrConversion is returned. The typical use is a length held in an int
// that is stored as a uint32.
func PutAs[S FixedInteger, V Integer](w *Writer, v V) error {
	s := S(v)
	if V(s) != v || (s < 0) != (v < 0) {
		return fmt.Errorf("%w: %d does not fit %T", ErrConversion, v, s)
	}
	Put(w, s)
	return nil
}
