// Dense matrices.
//
// Matrix values are stored column-major and written as their raw backing
// bytes, in the host's byte order, with no header.
package tes3

import (
	"fmt"
	"unsafe"
)

// Numeric is a plain number type: no padding, no pointers, so its memory is
// its byte representation.
type Numeric interface {
	FixedInteger | ~float32 | ~float64
}

// Matrix is a dense rows×cols matrix stored column-major, the layout the
// plugin format uses for rotation and transform blocks.
type Matrix[T Numeric] struct {
	rows, cols int
	data       []T
}

// NewMatrix returns a zero rows×cols matrix.
func NewMatrix[T Numeric](rows, cols int) *Matrix[T] {
	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

// MatrixFrom wraps column-major data without copying.
func MatrixFrom[T Numeric](rows, cols int, data []T) (*Matrix[T], error) {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %d values for a %dx%d matrix", ErrInvalidData, len(data), rows, cols)
	}
	return &Matrix[T]{rows: rows, cols: cols, data: data}, nil
}

// Dims returns the number of rows and columns.
func (m *Matrix[T]) Dims() (rows, cols int) { return m.rows, m.cols }

// At returns the element at row r, column c.
func (m *Matrix[T]) At(r, c int) T { return m.data[c*m.rows+r] }

// Set stores v at row r, column c.
func (m *Matrix[T]) Set(r, c int, v T) { m.data[c*m.rows+r] = v }

// RawData returns the backing column-major slice.
func (m *Matrix[T]) RawData() []T { return m.data }

// PutMatrix appends the matrix storage as raw bytes in native memory order.
// No dimensions or length are written.
func PutMatrix[T Numeric](w *Writer, m *Matrix[T]) {
	PutSlice(w, m.data)
}

// PutSlice appends the memory of s verbatim.
func PutSlice[T Numeric](w *Writer, s []T) {
	if len(s) == 0 {
		return
	}
	size := int(unsafe.Sizeof(s[0]))
	w.buf = append(w.buf, unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*size)...) //nolint:gosec // T is a plain number type
}
