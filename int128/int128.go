// Package int128 provides a signed 128-bit integer in two's complement,
// together with its fixed 16-byte little-endian codec.
//
// Int128 is the value type of decimal columns: a decimal is an Int128
// interpreted as value × 10^-scale. This package deals only with the integer
// representation; it performs no decimal arithmetic and no decimal formatting.
//
// The type is a 16-byte value, cheap to copy and comparable with ==.
package int128

import (
	"encoding/binary"
	"math"
	"math/big"
)

// ByteWidth is the fixed encoded size of an Int128 in bytes.
const ByteWidth = 16

// Int128 represents a signed 128-bit integer in two's complement.
type Int128 struct {
	lo uint64 // low 64 bits
	hi int64  // high 64 bits, carries the sign
}

var (
	// Max is the largest representable Int128 (2^127 - 1).
	Max = Int128{lo: math.MaxUint64, hi: math.MaxInt64}
	// Min is the smallest representable Int128 (-2^127).
	Min = Int128{lo: 0, hi: math.MinInt64}
)

// New returns the Int128 with the given high and low bits.
func New(hi int64, lo uint64) Int128 {
	return Int128{lo: lo, hi: hi}
}

// FromInt64 returns the Int128 equal to v.
func FromInt64(v int64) Int128 {
	switch {
	case v > 0:
		return Int128{lo: uint64(v)}
	case v < 0:
		return Int128{lo: uint64(v), hi: -1}
	default:
		return Int128{}
	}
}

// mask128 keeps the low 128 bits of a magnitude before encoding.
var mask128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

func fromBigPositive(v *big.Int) Int128 {
	if v.BitLen() > 128 {
		v = new(big.Int).And(v, mask128)
	}

	var buf [ByteWidth]byte
	v.FillBytes(buf[:])

	return Int128{
		lo: binary.BigEndian.Uint64(buf[8:]),
		hi: int64(binary.BigEndian.Uint64(buf[:8])),
	}
}

// FromBig returns the Int128 equal to v, truncated to 128 bits.
// Values outside the Int128 range wrap around.
func FromBig(v *big.Int) Int128 {
	if v.Sign() < 0 {
		n := fromBigPositive(new(big.Int).Abs(v))

		return n.negate()
	}

	return fromBigPositive(v)
}

func (n Int128) negate() Int128 {
	n.lo = ^n.lo + 1
	n.hi = ^n.hi
	if n.lo == 0 {
		n.hi++
	}

	return n
}

// HighBits returns the high 64 bits of the two's complement representation.
func (n Int128) HighBits() int64 { return n.hi }

// LowBits returns the low 64 bits of the two's complement representation.
func (n Int128) LowBits() uint64 { return n.lo }

// Sign returns -1 if n < 0, 0 if n == 0, and +1 if n > 0.
func (n Int128) Sign() int {
	if n == (Int128{}) {
		return 0
	}

	return int(1 | (n.hi >> 63))
}

// Cmp compares n and other, returning -1, 0, or +1.
func (n Int128) Cmp(other Int128) int {
	switch {
	case n.hi < other.hi:
		return -1
	case n.hi > other.hi:
		return 1
	case n.lo < other.lo:
		return -1
	case n.lo > other.lo:
		return 1
	default:
		return 0
	}
}

// Less reports whether n < other.
func (n Int128) Less(other Int128) bool { return n.Cmp(other) < 0 }

// Greater reports whether n > other.
func (n Int128) Greater(other Int128) bool { return n.Cmp(other) > 0 }

// Big returns n as a new big.Int.
func (n Int128) Big() *big.Int {
	if n.Sign() < 0 {
		abs := n.negate()
		ret := abs.bigPositive()

		return ret.Neg(ret)
	}

	return n.bigPositive()
}

func (n Int128) bigPositive() *big.Int {
	hi := big.NewInt(n.hi)

	return hi.Lsh(hi, 64).Add(hi, new(big.Int).SetUint64(n.lo))
}

// String returns the decimal text of the raw integer value.
// It is intended for diagnostics; decimal-point formatting is out of scope.
func (n Int128) String() string {
	return n.Big().String()
}

// AppendBytes appends the 16-byte little-endian two's complement encoding of n
// to dst and returns the extended slice.
func (n Int128) AppendBytes(dst []byte) []byte {
	dst = binary.LittleEndian.AppendUint64(dst, n.lo)

	return binary.LittleEndian.AppendUint64(dst, uint64(n.hi))
}

// PutBytes writes the 16-byte little-endian encoding of n into dst.
// It panics if len(dst) < 16.
func (n Int128) PutBytes(dst []byte) {
	binary.LittleEndian.PutUint64(dst[0:8], n.lo)
	binary.LittleEndian.PutUint64(dst[8:16], uint64(n.hi))
}

// Bytes returns the 16-byte little-endian encoding of n.
func (n Int128) Bytes() [ByteWidth]byte {
	var buf [ByteWidth]byte
	n.PutBytes(buf[:])

	return buf
}

// FromBytes decodes a 16-byte little-endian two's complement slice.
// It panics if len(b) != 16; slots produced by columna builders always hold
// exactly 16 bytes, so a mismatch indicates a corrupted or foreign buffer.
func FromBytes(b []byte) Int128 {
	if len(b) != ByteWidth {
		panic("int128: encoded value must be exactly 16 bytes")
	}

	return Int128{
		lo: binary.LittleEndian.Uint64(b[0:8]),
		hi: int64(binary.LittleEndian.Uint64(b[8:16])),
	}
}
