// Compression for archived plugins.
//
// Encoded plugins can be kept as Zstd frames, for backups and transfer.
// The frame is self-delimiting, so no header is added.
package tes3

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Shared encoder/decoder: both are documented as safe for concurrent use,
// and construction is expensive.
var (
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	zstdDecoder, _ = zstd.NewReader(nil)
)

// Compress returns data as a Zstd frame. Empty input yields nil.
func Compress(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	return zstdEncoder.EncodeAll(data, nil)
}

// Decompress reverses Compress. Empty input yields nil.
func Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	out, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %w", ErrDecompress, err)
	}
	return out, nil
}
