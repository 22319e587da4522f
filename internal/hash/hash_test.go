package hash

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestSum64(t *testing.T) {
	data := []byte("columna chunk payload")
	require.Equal(t, xxhash.Sum64(data), Sum64(data))
	require.Equal(t, xxhash.Sum64(nil), Sum64(nil))
}

func TestDigest_MatchesSingleShot(t *testing.T) {
	d := NewDigest()
	d.Write([]byte("bitmap bytes"))
	d.Write([]byte("value payload"))

	require.Equal(t, Sum64([]byte("bitmap bytesvalue payload")), d.Sum64())
}

func TestFingerprint_SeparatesParts(t *testing.T) {
	require.Equal(t, Fingerprint("a", "b"), Fingerprint("a", "b"))
	require.NotEqual(t, Fingerprint("ab", "c"), Fingerprint("a", "bc"))
	require.NotEqual(t, Fingerprint("a"), Fingerprint("a", ""))
}
