// Package chunk serializes a single column into a self-describing binary
// chunk and restores it.
//
// A chunk captures everything needed to rebuild the array: the data-type
// descriptor, the element count, the validity bitmap, and the value payload,
// optionally compressed. An xxHash64 checksum over the bitmap and value
// payloads detects corruption at decode time.
//
// Layout (header fields in the configured byte order, lengths as uvarints):
//
//	offset  size  field
//	0       2     magic 0xC0 0x17
//	2       1     format version (currently 1)
//	3       1     flags: bits 0-3 compression, bit 4 big-endian, bit 5 has-bitmap
//	4       1     data-type kind
//	5       2     slot byte width
//	7       1     decimal precision (0 for non-decimal)
//	8       1     decimal scale (0 for non-decimal)
//	9       -     element count (uvarint)
//	-       -     null count (uvarint)
//	-       -     bitmap payload: uvarint length + packed bits (if has-bitmap)
//	-       -     value payload: uvarint length + compressed slot bytes
//	-       8     xxHash64 over bitmap payload then value payload
package chunk

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/columna/array"
	"github.com/arloliu/columna/compress"
	"github.com/arloliu/columna/endian"
	"github.com/arloliu/columna/errs"
	"github.com/arloliu/columna/internal/hash"
	"github.com/arloliu/columna/internal/options"
	"github.com/arloliu/columna/internal/pool"
	"github.com/arloliu/columna/types"
)

const (
	magicByte0 = 0xC0
	magicByte1 = 0x17

	formatVersion = 1

	flagCompressionMask = 0x0F
	flagBigEndian       = 1 << 4
	flagHasBitmap       = 1 << 5
)

// Encode serializes the array into a chunk.
//
// Decimal and fixed-size-binary arrays are supported; other kinds report
// ErrUnsupportedType. The returned slice is freshly allocated and owned by
// the caller.
func Encode(a array.Array, opts ...Option) ([]byte, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	slots, err := slotBytes(a)
	if err != nil {
		return nil, err
	}

	compression := cfg.compression
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compression)
	}
	payload, err := codec.Compress(slots)
	if err != nil {
		return nil, fmt.Errorf("failed to compress value payload: %w", err)
	}
	// LZ4 signals incompressible input with an empty block; store such
	// payloads raw so the chunk still round-trips.
	if len(payload) == 0 && len(slots) > 0 {
		compression = types.CompressionNone
		payload = slots
	}

	var bits []byte
	validity := a.Validity()
	if validity != nil {
		bits = validity.Packed()
	}

	dt := a.DataType()
	if dt.ByteWidth() > math.MaxUint16 {
		return nil, fmt.Errorf("%w: slot width %d does not fit the chunk header", errs.ErrInvalidWidth, dt.ByteWidth())
	}
	if dt.Scale() < 0 || dt.Scale() > math.MaxUint8 {
		return nil, fmt.Errorf("%w: scale %d does not fit the chunk header", errs.ErrInvalidChunk, dt.Scale())
	}

	flags := byte(compression) & flagCompressionMask
	if cfg.engine == endian.GetBigEndianEngine() {
		flags |= flagBigEndian
	}
	if validity != nil {
		flags |= flagHasBitmap
	}

	buf := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(buf)

	buf.B = append(buf.B, magicByte0, magicByte1, formatVersion, flags, byte(dt.Kind()))
	buf.B = cfg.engine.AppendUint16(buf.B, uint16(dt.ByteWidth()))
	buf.B = append(buf.B, byte(dt.Precision()), byte(dt.Scale()))
	buf.B = binary.AppendUvarint(buf.B, uint64(a.Len()))
	buf.B = binary.AppendUvarint(buf.B, uint64(a.NullCount()))

	if validity != nil {
		buf.B = binary.AppendUvarint(buf.B, uint64(len(bits)))
		buf.B = append(buf.B, bits...)
	}
	buf.B = binary.AppendUvarint(buf.B, uint64(len(payload)))
	buf.B = append(buf.B, payload...)

	digest := hash.NewDigest()
	digest.Write(bits)
	digest.Write(payload)
	buf.B = cfg.engine.AppendUint64(buf.B, digest.Sum64())

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// slotBytes returns the raw fixed-width slot buffer of a supported array.
func slotBytes(a array.Array) ([]byte, error) {
	switch arr := a.(type) {
	case *array.DecimalArray:
		return arr.Data().ValueBytes(), nil
	case *array.FixedSizeBinaryArray:
		return arr.ValueBytes(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedType, a.DataType())
	}
}

// dataTypeFor rebuilds the data-type descriptor recorded in a chunk header.
func dataTypeFor(kind types.Kind, width, precision, scale int) (types.DataType, error) {
	switch kind {
	case types.KindFixedSizeBinary:
		if width < 1 {
			return types.DataType{}, fmt.Errorf("%w: slot width %d", errs.ErrInvalidWidth, width)
		}
		return types.FixedSizeBinary(width), nil
	case types.KindDecimal:
		if precision < 1 || precision > array.MaxDecimalPrecision {
			return types.DataType{}, fmt.Errorf("%w: decimal precision %d", errs.ErrInvalidPrecision, precision)
		}
		if width != 16 {
			return types.DataType{}, fmt.Errorf("%w: decimal slot width %d, want 16", errs.ErrInvalidWidth, width)
		}
		return types.Decimal(precision, scale), nil
	default:
		return types.DataType{}, fmt.Errorf("%w: kind 0x%x", errs.ErrUnsupportedType, uint8(kind))
	}
}
