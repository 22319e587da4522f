package compress

// NoOpCodec passes payloads through untouched. It serves uncompressed chunks
// and baseline benchmarks.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns the input slice as-is, without copying. The result aliases
// the input.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is, without copying. The result
// aliases the input.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
