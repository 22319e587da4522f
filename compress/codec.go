// Package compress provides the compression codecs applied to chunk value
// payloads.
//
// Decimal slot data is fixed-width binary with long runs of repeated high
// bytes (sign extension), which compresses well under all provided codecs.
// Zstd favors ratio, S2 and LZ4 favor speed, and None bypasses compression
// entirely.
package compress

import (
	"fmt"

	"github.com/arloliu/columna/types"
)

// Compressor compresses one payload at a time.
type Compressor interface {
	// Compress compresses data and returns a newly allocated result. The
	// input is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores payloads produced by the matching Compressor.
type Decompressor interface {
	// Decompress restores data previously compressed with the same codec.
	// It returns an error if the payload is corrupted or was produced by an
	// incompatible codec.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[types.CompressionType]Codec{
	types.CompressionNone: NewNoOpCodec(),
	types.CompressionZstd: NewZstdCodec(),
	types.CompressionS2:   NewS2Codec(),
	types.CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves the built-in Codec for the given compression type.
func GetCodec(compressionType types.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
