package chunk

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/columna/array"
	"github.com/arloliu/columna/bitmap"
	"github.com/arloliu/columna/compress"
	"github.com/arloliu/columna/endian"
	"github.com/arloliu/columna/errs"
	"github.com/arloliu/columna/internal/hash"
	"github.com/arloliu/columna/types"
)

// reader walks a chunk buffer, tracking the remaining bytes.
type reader struct {
	data []byte
}

func (r *reader) bytes(n int) ([]byte, error) {
	if n < 0 || n > len(r.data) {
		return nil, fmt.Errorf("%w: truncated at %d remaining bytes, need %d", errs.ErrInvalidChunk, len(r.data), n)
	}
	b := r.data[:n]
	r.data = r.data[n:]

	return b, nil
}

func (r *reader) uvarint() (uint64, error) {
	v, n := binary.Uvarint(r.data)
	if n <= 0 {
		return 0, fmt.Errorf("%w: malformed varint", errs.ErrInvalidChunk)
	}
	r.data = r.data[n:]

	return v, nil
}

// Decode restores the array serialized in a chunk.
//
// The concrete kind behind the returned Array matches the encoded data type:
// *array.DecimalArray for decimal chunks, *array.FixedSizeBinaryArray for
// fixed-size-binary chunks. The payload checksum is verified before any
// array is built.
func Decode(data []byte) (array.Array, error) {
	r := &reader{data: data}

	header, err := r.bytes(9)
	if err != nil {
		return nil, err
	}
	if header[0] != magicByte0 || header[1] != magicByte1 {
		return nil, fmt.Errorf("%w: bad magic 0x%02x%02x", errs.ErrInvalidChunk, header[0], header[1])
	}
	if header[2] != formatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", errs.ErrInvalidChunk, header[2])
	}

	flags := header[3]
	engine := endian.GetLittleEndianEngine()
	if flags&flagBigEndian != 0 {
		engine = endian.GetBigEndianEngine()
	}

	kind := types.Kind(header[4])
	width := int(engine.Uint16(header[5:7]))
	precision := int(header[7])
	scale := int(header[8])

	dt, err := dataTypeFor(kind, width, precision, scale)
	if err != nil {
		return nil, err
	}

	length, err := r.uvarint()
	if err != nil {
		return nil, err
	}
	nullCount, err := r.uvarint()
	if err != nil {
		return nil, err
	}

	var bits []byte
	if flags&flagHasBitmap != 0 {
		bitmapLen, err := r.uvarint()
		if err != nil {
			return nil, err
		}
		if bits, err = r.bytes(int(bitmapLen)); err != nil {
			return nil, err
		}
	}

	payloadLen, err := r.uvarint()
	if err != nil {
		return nil, err
	}
	payload, err := r.bytes(int(payloadLen))
	if err != nil {
		return nil, err
	}

	checksumBytes, err := r.bytes(8)
	if err != nil {
		return nil, err
	}
	digest := hash.NewDigest()
	digest.Write(bits)
	digest.Write(payload)
	if digest.Sum64() != engine.Uint64(checksumBytes) {
		return nil, fmt.Errorf("%w: payload digest differs from recorded checksum", errs.ErrChecksumMismatch)
	}

	codec, err := compress.GetCodec(types.CompressionType(flags & flagCompressionMask))
	if err != nil {
		return nil, fmt.Errorf("%w: flag 0x%x", errs.ErrUnsupportedCompression, flags&flagCompressionMask)
	}
	slots, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidChunk, err)
	}

	// Divide instead of multiplying so a huge recorded element count cannot
	// overflow the comparison and slip through.
	if uint64(len(slots))/uint64(width) != length || len(slots)%width != 0 {
		return nil, fmt.Errorf("%w: %d slot bytes for %d elements of width %d",
			errs.ErrInvalidChunk, len(slots), length, width)
	}

	var validity *bitmap.Bitmap
	if flags&flagHasBitmap != 0 {
		if len(bits)*8 < int(length) {
			return nil, fmt.Errorf("%w: bitmap holds %d bits for %d elements", errs.ErrInvalidChunk, len(bits)*8, length)
		}
		// Re-home the bits so the array does not alias the caller's buffer.
		owned := make([]byte, len(bits))
		copy(owned, bits)
		validity = bitmap.New(owned, int(length))
		if validity.ClearCount() != int(nullCount) {
			return nil, fmt.Errorf("%w: bitmap has %d nulls, header records %d",
				errs.ErrInvalidChunk, validity.ClearCount(), nullCount)
		}
	} else if nullCount != 0 {
		return nil, fmt.Errorf("%w: %d nulls recorded without a bitmap", errs.ErrInvalidChunk, nullCount)
	}

	// An uncompressed payload still aliases the input; copy so the immutable
	// array owns its storage.
	owned := slots
	if len(payload) == len(slots) && len(slots) > 0 && &payload[0] == &slots[0] {
		owned = make([]byte, len(slots))
		copy(owned, slots)
	}

	fsb := array.NewFixedSizeBinary(types.FixedSizeBinary(width), owned, validity)
	if kind == types.KindDecimal {
		return array.NewDecimal(dt.Precision(), dt.Scale(), fsb), nil
	}

	return fsb, nil
}

// DecodeDecimal restores a decimal chunk, failing with ErrUnsupportedType if
// the chunk holds a different kind.
func DecodeDecimal(data []byte) (*array.DecimalArray, error) {
	a, err := Decode(data)
	if err != nil {
		return nil, err
	}
	dec, ok := a.(*array.DecimalArray)
	if !ok {
		return nil, fmt.Errorf("%w: chunk holds %s, not a decimal column", errs.ErrUnsupportedType, a.DataType())
	}

	return dec, nil
}
