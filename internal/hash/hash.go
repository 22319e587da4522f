// Package hash provides the xxHash64 helpers used for chunk payload checksums
// and schema fingerprints.
package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 of the given bytes.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Fingerprint folds a sequence of strings into a single xxHash64 digest.
// A zero byte separates the parts so that ("ab", "c") and ("a", "bc") hash
// differently.
func Fingerprint(parts ...string) uint64 {
	d := xxhash.New()
	for _, part := range parts {
		_, _ = d.WriteString(part)
		_, _ = d.Write([]byte{0})
	}

	return d.Sum64()
}

// Digest accumulates xxHash64 over multiple writes. It wraps xxhash.Digest so
// callers outside internal packages do not import the library directly.
type Digest struct {
	d xxhash.Digest
}

// NewDigest returns a ready-to-use Digest.
func NewDigest() *Digest {
	d := &Digest{}
	d.d.Reset()

	return d
}

// Write adds data to the running hash.
func (d *Digest) Write(data []byte) {
	_, _ = d.d.Write(data)
}

// Sum64 returns the current hash value.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}
