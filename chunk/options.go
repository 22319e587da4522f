package chunk

import (
	"fmt"

	"github.com/arloliu/columna/endian"
	"github.com/arloliu/columna/internal/options"
	"github.com/arloliu/columna/types"
)

// config holds the resolved encoder settings.
type config struct {
	compression types.CompressionType
	engine      endian.EndianEngine
}

func newConfig() *config {
	return &config{
		compression: types.CompressionNone,
		engine:      endian.GetLittleEndianEngine(),
	}
}

// Option configures chunk encoding.
type Option = options.Option[*config]

// WithCompression selects the compression codec applied to the value payload.
func WithCompression(compression types.CompressionType) Option {
	return options.New(func(cfg *config) error {
		switch compression {
		case types.CompressionNone, types.CompressionZstd, types.CompressionS2, types.CompressionLZ4:
			cfg.compression = compression
			return nil
		default:
			return fmt.Errorf("invalid chunk compression: %s", compression)
		}
	})
}

// WithLittleEndian encodes header fields in little-endian byte order.
// This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(cfg *config) {
		cfg.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian encodes header fields in big-endian byte order.
func WithBigEndian() Option {
	return options.NoError(func(cfg *config) {
		cfg.engine = endian.GetBigEndianEngine()
	})
}
