// Package tes3 writes records of the legacy TES3 plugin format.
//
// A Writer is an append-only byte buffer with one active legacy codepage
// (Windows-1252, Windows-1250 or Windows-1251). Strings are stored as a
// 4-byte little-endian length followed by the encoded bytes and a single
// zero terminator. Records serialize themselves onto a Writer through the
// Saver interface; the Writer knows nothing about their layouts.
//
// Before a plugin is written its objects are put into canonical order:
// a stable sort over (category, hint, id) computed into an index
// permutation, which is then applied to the object slice in place by
// following its cycles. No copy of the objects is made.
package tes3

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic handling. ErrEncode and ErrConversion
// both wrap ErrInvalidData, so callers can test for the broad kind or the
// specific cause with errors.Is.
var (
	ErrInvalidData      = errors.New("invalid data")
	ErrEncode           = fmt.Errorf("%w: encode error", ErrInvalidData)
	ErrConversion       = fmt.Errorf("%w: Invalid Save Conversion", ErrInvalidData)
	ErrPermutation      = errors.New("invalid permutation")
	ErrUnknownTag       = errors.New("unknown record tag")
	ErrUnknownCodepage  = errors.New("unknown codepage")
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")
	ErrDecompress       = errors.New("decompression failed")
)
